package meshdiag

import (
	"math"

	"github.com/taigrr/meshdiag/internal/spatialhash"
	"gonum.org/v1/gonum/spatial/r3"
)

// coincidentFaceCount counts triangle pairs lying on the same plane with
// overlapping support and no shared vertices (P13). Requires
// s.faceNormals.
func (s *state) coincidentFaceCount() int {
	if s.t == 0 {
		return 0
	}

	cellSize := math.Max(s.bbox.Diagonal/math.Sqrt(float64(s.t)/10), 1e-6)
	grid := spatialhash.NewGrid(cellSize)

	centroids := make([]r3.Vec, s.t)
	for t := range s.t {
		a, b, c := s.triVerts(t)
		v0, v1, v2 := s.vertex(a), s.vertex(b), s.vertex(c)
		centroids[t] = r3.Scale(1.0/3.0, r3.Add(v0, r3.Add(v1, v2)))
		grid.Insert(centroids[t].X, centroids[t].Y, centroids[t].Z, t)
	}

	planeTolerance := s.bbox.Diagonal * 1e-5
	count := 0
	reported := make(map[uint64]bool)
	for t1 := range s.t {
		c1 := centroids[t1]
		for _, t2 := range grid.QueryNeighborhood(c1.X, c1.Y, c1.Z) {
			if t2 <= t1 {
				continue
			}
			key := uint64(t1)<<32 | uint64(t2)
			if reported[key] {
				continue
			}
			reported[key] = true

			if s.sharedVertexCount(t1, t2) > 0 {
				continue
			}

			n1, n2 := s.faceNormals[t1], s.faceNormals[t2]
			len1, len2 := r3.Norm(n1), r3.Norm(n2)
			if len1 < 1e-12 || len2 < 1e-12 {
				continue
			}
			n1hat := r3.Scale(1/len1, n1)
			n2hat := r3.Scale(1/len2, n2)
			if math.Abs(r3.Dot(n1hat, n2hat)) <= 0.999 {
				continue
			}

			c2 := centroids[t2]
			dist := r3.Norm(r3.Sub(c2, c1))
			if dist > cellSize {
				continue
			}

			planeDist := r3.Dot(n1, r3.Sub(c2, c1)) / len1
			if math.Abs(planeDist) >= planeTolerance {
				continue
			}

			count++
		}
	}
	return count
}
