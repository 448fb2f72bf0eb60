package meshdiag

import "github.com/taigrr/meshdiag/internal/spatialhash"

// duplicateVertices counts vertices that are near-coincident duplicates of
// an earlier-indexed vertex (P7). The spatial hash has cell size 10·ε and
// only the owning cell is probed: a duplicate that straddles a cell
// boundary is missed by design, matching the documented deviation in §9.
func (s *state) duplicateVertices(eps float64) int {
	cellSize := 10 * eps
	grid := spatialhash.NewGrid(cellSize)
	eps2 := eps * eps

	count := 0
	for v := range s.v {
		p := s.vertex(uint32(v))
		isDup := false
		for _, candidate := range grid.QueryCell(p.X, p.Y, p.Z) {
			q := s.vertex(uint32(candidate))
			dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
			if dx*dx+dy*dy+dz*dz < eps2 {
				isDup = true
				break
			}
		}
		if isDup {
			count++
		}
		grid.Insert(p.X, p.Y, p.Z, v)
	}
	return count
}
