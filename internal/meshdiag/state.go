package meshdiag

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// state holds the shared, read-only-derived intermediates that most passes
// need: the edge-face map (P1), per-triangle unnormalized face normals, and
// per-vertex incident-triangle lists. Building these once and sharing them
// avoids the duplicated work the spec's data-flow section calls out.
type state struct {
	positions []float32
	indices   []uint32
	cfg       Config

	v, t int // vertex count, triangle count

	edgeFaces  map[uint64][]int32 // undirected edge key -> incident triangle indices (P1)
	vertexTris [][]int32          // per-vertex incident triangle indices

	faceNormals []r3.Vec // unnormalized, per triangle
	bbox        BoundingBox
}

func validate(positions []float32, indices []uint32) error {
	if len(positions)%3 != 0 {
		return &InputError{Cause: ErrRaggedArray, Index: len(positions), Msg: "positions length is not a multiple of 3"}
	}
	if len(indices)%3 != 0 {
		return &InputError{Cause: ErrRaggedArray, Index: len(indices), Msg: "indices length is not a multiple of 3"}
	}
	v := uint32(len(positions) / 3)
	for i, idx := range indices {
		if idx >= v {
			return &InputError{Cause: ErrIndexOutOfRange, Index: i, Msg: "index out of range for vertex count"}
		}
	}
	for i := 0; i < len(positions); i++ {
		if math.IsNaN(float64(positions[i])) || math.IsInf(float64(positions[i]), 0) {
			return &InputError{Cause: ErrNonFiniteCoordinate, Index: i, Msg: "non-finite coordinate"}
		}
	}
	return nil
}

func (s *state) vertex(i uint32) r3.Vec {
	o := 3 * int(i)
	return r3.Vec{X: float64(s.positions[o]), Y: float64(s.positions[o+1]), Z: float64(s.positions[o+2])}
}

func (s *state) triVerts(t int) (a, b, c uint32) {
	o := 3 * t
	return s.indices[o], s.indices[o+1], s.indices[o+2]
}

// encodeEdge canonicalizes an undirected edge {a,b} into a dense 64-bit key.
func encodeEdge(a, b uint32) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

func decodeEdge(key uint64) (a, b uint32) {
	return uint32(key >> 32), uint32(key)
}

// buildEdgeFaces constructs the undirected edge-face incidence map (P1):
// for each triangle, its three edges each get the triangle index appended.
func (s *state) buildEdgeFaces() {
	s.edgeFaces = make(map[uint64][]int32, s.t*3/2+1)
	for t := range s.t {
		a, b, c := s.triVerts(t)
		for _, e := range [3][2]uint32{{a, b}, {b, c}, {c, a}} {
			k := encodeEdge(e[0], e[1])
			s.edgeFaces[k] = append(s.edgeFaces[k], int32(t))
		}
	}
}

// buildVertexTriangles constructs, for every vertex, the list of triangles
// incident on it. Shared by the non-manifold, valence, and thin-wall
// passes.
func (s *state) buildVertexTriangles() {
	s.vertexTris = make([][]int32, s.v)
	for t := range s.t {
		a, b, c := s.triVerts(t)
		for _, idx := range [3]uint32{a, b, c} {
			s.vertexTris[idx] = append(s.vertexTris[idx], int32(t))
		}
	}
}

// buildFaceNormals precomputes each triangle's unnormalized normal
// (v1-v0) x (v2-v0), reused by the quality, dihedral, self-intersection,
// and coincident-face passes.
func (s *state) buildFaceNormals() {
	s.faceNormals = make([]r3.Vec, s.t)
	for t := range s.t {
		a, b, c := s.triVerts(t)
		v0, v1, v2 := s.vertex(a), s.vertex(b), s.vertex(c)
		s.faceNormals[t] = r3.Cross(r3.Sub(v1, v0), r3.Sub(v2, v0))
	}
}

// buildBoundingBox computes the axis-aligned bounding box over all
// vertices (P2). An empty mesh yields an all-zero box.
func (s *state) buildBoundingBox() {
	if s.v == 0 {
		return
	}
	min := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := range s.v {
		p := s.vertex(uint32(i))
		for axis, c := range [3]float64{p.X, p.Y, p.Z} {
			if c < min[axis] {
				min[axis] = c
			}
			if c > max[axis] {
				max[axis] = c
			}
		}
	}
	size := [3]float64{max[0] - min[0], max[1] - min[1], max[2] - min[2]}
	diag := math.Sqrt(size[0]*size[0] + size[1]*size[1] + size[2]*size[2])
	s.bbox = BoundingBox{Min: min, Max: max, Size: size, Diagonal: diag}
}

// distStats computes {min,max,mean,median,stdDev} over a non-empty sample,
// returning nil for an empty one (per §3, absent when inputs are empty).
// Mean, median (the 0.5 quantile), and standard deviation are computed with
// gonum/stat rather than hand-rolled reductions.
func distStats(samples []float64) *DistributionStats {
	if len(samples) == 0 {
		return nil
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)
	return &DistributionStats{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		StdDev: stat.StdDev(sorted, nil),
	}
}

// medianOf returns the median of an unsorted sample, used by passes (P6's
// tiny-triangle classification) that need a standalone median rather than
// a full stats block.
func medianOf(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
