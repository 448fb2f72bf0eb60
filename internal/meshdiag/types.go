// Package meshdiag analyzes a single indexed triangle mesh and produces a
// diagnostics report describing topological defects (holes, non-manifold
// edges, pinch points, winding inconsistency), geometric defects
// (degenerate/tiny/needle triangles, duplicate vertices, self-intersections,
// T-junctions, thin walls, coincident faces), and distributional summaries
// (edge lengths, aspect ratios, vertex valence, dihedral angles, bounding
// volume). For a subset of defects it also produces an overlay: the
// coordinates of the offending geometry, for a viewer to highlight.
//
// The engine is a pure, synchronous computation over borrowed read-only
// input; it performs no I/O, no parsing, and no repair. See Analyze.
package meshdiag

// BoundingBox is an axis-aligned bounding box over a mesh's vertices.
type BoundingBox struct {
	Min, Max [3]float64
	Size     [3]float64
	Diagonal float64
}

// DistributionStats summarizes a non-empty sequence of reals.
type DistributionStats struct {
	Min, Max, Mean, Median, StdDev float64
}

// Diagnostics is the full report produced by Analyze.
type Diagnostics struct {
	VertexCount   int
	TriangleCount int

	EdgeCount              int
	BoundaryEdgeCount      int
	NonManifoldEdgeCount   int
	NonManifoldVertexCount int
	ConnectedComponents    int
	EulerCharacteristic    int
	IsolatedVertexCount    int

	DegenerateTriangleCount int
	TinyTriangleCount       int
	NeedleTriangleCount     int

	WindingInconsistentEdgeCount int
	WindingConsistencyPercent    float64
	WindingCheckSkipped          bool

	DuplicateVertexCount int

	SharpEdgeCount   int
	CoplanarEdgeCount int

	SelfIntersectionCount int
	TJunctionCount        int
	ThinWallCount         int
	ThinWallThreshold     float64
	CoincidentFaceCount   int

	EdgeLengthStats    *DistributionStats
	AspectRatioStats   *DistributionStats
	DihedralAngleStats *DistributionStats
	ValenceDistribution map[int]int
	BoundingBox        *BoundingBox

	IsWatertight           bool
	IsManifold             bool
	HasNonManifoldVertices bool
	HasConsistentWinding   bool
}

// Overlay carries the actual coordinates of offending geometry, so a
// viewer can highlight it. Each field is absent (nil) when its
// corresponding diagnostic count is zero.
type Overlay struct {
	// BoundaryEdges and NonManifoldEdges are runs of six floats per edge
	// (two endpoint positions).
	BoundaryEdges    []float32
	NonManifoldEdges []float32

	// NonManifoldVertices, SelfIntersectionCentroids, and TJunctionVertices
	// are runs of three floats per point.
	NonManifoldVertices       []float32
	SelfIntersectionCentroids []float32
	TJunctionVertices         []float32
}

// Result bundles the two records Analyze produces from one snapshot of the
// input.
type Result struct {
	Diagnostics Diagnostics
	Overlay     Overlay
}

// Summary renders a short human-readable digest of the watertight and
// manifold flags. The CLI's plain-text report is rendered separately and
// does not use it.
func (d *Diagnostics) Summary() string {
	status := "watertight"
	if !d.IsWatertight {
		status = "has holes"
	}
	if d.IsManifold {
		status += ", manifold"
	} else {
		status += ", non-manifold"
	}
	return status
}
