package meshdiag

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// dihedralResult holds the output of P9.
type dihedralResult struct {
	sharpCount    int
	coplanarCount int
	angleStats    *DistributionStats
}

// dihedralAnalysis computes, for every edge with exactly two incident
// triangles and non-degenerate normals, the dihedral angle between the two
// faces (P9). Requires s.edgeFaces and s.faceNormals to already be built.
func (s *state) dihedralAnalysis() dihedralResult {
	var r dihedralResult
	var angles []float64

	for _, tris := range s.edgeFaces {
		if len(tris) != 2 {
			continue
		}
		n1, n2 := s.faceNormals[tris[0]], s.faceNormals[tris[1]]
		len1, len2 := r3.Norm(n1), r3.Norm(n2)
		if len1 < 1e-10 || len2 < 1e-10 {
			continue
		}
		n1 = r3.Scale(1/len1, n1)
		n2 = r3.Scale(1/len2, n2)

		cosTheta := r3.Dot(n1, n2)
		cosTheta = math.Max(-1, math.Min(1, cosTheta))
		alpha := math.Acos(cosTheta) * 180 / math.Pi
		delta := 180 - alpha

		angles = append(angles, delta)
		if delta < 30 {
			r.sharpCount++
		}
		if delta > 170 {
			r.coplanarCount++
		}
	}

	r.angleStats = distStats(angles)
	return r
}
