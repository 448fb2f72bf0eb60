package meshdiag

import "github.com/taigrr/meshdiag/internal/spatialhash"

// topologicalNeighbors returns the set of vertices that share a triangle
// with v.
func (s *state) topologicalNeighbors(v uint32) map[uint32]bool {
	neighbors := make(map[uint32]bool)
	for _, t := range s.vertexTris[v] {
		a, b, c := s.triVerts(int(t))
		for _, idx := range [3]uint32{a, b, c} {
			if idx != v {
				neighbors[idx] = true
			}
		}
	}
	return neighbors
}

// thinWallCount counts vertices that have a non-topological-neighbor
// vertex closer than the thin-wall threshold (P12).
func (s *state) thinWallCount(fraction float64) int {
	threshold := s.bbox.Diagonal * fraction
	if threshold <= 0 {
		return 0
	}
	cellSize := 3 * threshold
	grid := spatialhash.NewGrid(cellSize)
	for v := range s.v {
		p := s.vertex(uint32(v))
		grid.Insert(p.X, p.Y, p.Z, v)
	}

	threshold2 := threshold * threshold
	count := 0
	for v := range s.v {
		p := s.vertex(uint32(v))
		neighbors := s.topologicalNeighbors(uint32(v))
		found := false
		for _, candidate := range grid.QueryNeighborhood(p.X, p.Y, p.Z) {
			if candidate == v || neighbors[uint32(candidate)] {
				continue
			}
			q := s.vertex(uint32(candidate))
			dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
			d2 := dx*dx + dy*dy + dz*dz
			if d2 < threshold2 && d2 > 1e-20 {
				found = true
				break
			}
		}
		if found {
			count++
		}
	}
	return count
}
