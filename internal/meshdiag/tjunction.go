package meshdiag

import (
	"github.com/taigrr/meshdiag/internal/spatialhash"
	"gonum.org/v1/gonum/spatial/r3"
)

type edgeEndpoints struct {
	a, b uint32
}

// tJunctionVertices returns the indices of vertices that lie on the
// interior of some other edge's span without being topologically
// connected to it (P11). Requires s.edgeFaces.
func (s *state) tJunctionVertices() []uint32 {
	if s.t == 0 {
		return nil
	}

	tolerance := s.bbox.Diagonal * 1e-4
	if tolerance <= 0 {
		return nil
	}
	cellSize := 10 * tolerance
	grid := spatialhash.NewGrid(cellSize)

	edges := make([]edgeEndpoints, 0, len(s.edgeFaces))
	for key := range s.edgeFaces {
		a, b := decodeEdge(key)
		edges = append(edges, edgeEndpoints{a, b})
	}
	for idx, e := range edges {
		pa, pb := s.vertex(e.a), s.vertex(e.b)
		mid := r3.Scale(0.5, r3.Add(pa, pb))
		grid.Insert(pa.X, pa.Y, pa.Z, idx)
		grid.Insert(pb.X, pb.Y, pb.Z, idx)
		grid.Insert(mid.X, mid.Y, mid.Z, idx)
	}

	tol2 := tolerance * tolerance
	var result []uint32
	for v := range s.v {
		p := s.vertex(uint32(v))
		found := false
		for _, edgeIdx := range grid.QueryNeighborhood(p.X, p.Y, p.Z) {
			e := edges[edgeIdx]
			if uint32(v) == e.a || uint32(v) == e.b {
				continue
			}
			e0, e1 := s.vertex(e.a), s.vertex(e.b)
			dir := r3.Sub(e1, e0)
			lenSq := r3.Dot(dir, dir)
			if lenSq < 1e-20 {
				continue
			}
			t := r3.Dot(r3.Sub(p, e0), dir) / lenSq
			if t <= 0.01 || t >= 0.99 {
				continue
			}
			closest := r3.Add(e0, r3.Scale(t, dir))
			d := r3.Sub(p, closest)
			if r3.Dot(d, d) >= tol2 {
				continue
			}
			if s.vertexIncidentOnEdgeTriangle(uint32(v), e.a, e.b) {
				continue
			}
			found = true
			break
		}
		if found {
			result = append(result, uint32(v))
		}
	}
	return result
}

// vertexIncidentOnEdgeTriangle reports whether v is a vertex of some
// triangle that also contains both endpoints of edge {a,b} — in which case
// v is a legitimate triangle corner, not a T-junction.
func (s *state) vertexIncidentOnEdgeTriangle(v, a, b uint32) bool {
	tris := s.edgeFaces[encodeEdge(a, b)]
	for _, t := range tris {
		ta, tb, tc := s.triVerts(int(t))
		if ta == v || tb == v || tc == v {
			return true
		}
	}
	return false
}
