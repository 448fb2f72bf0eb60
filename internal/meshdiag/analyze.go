package meshdiag

// Analyze runs the full diagnostic pipeline over a mesh with the default
// Config and returns the diagnostics and overlay records.
func Analyze(positions []float32, indices []uint32) (*Result, error) {
	return AnalyzeWithConfig(positions, indices, Default())
}

// AnalyzeWithConfig runs the full diagnostic pipeline with caller-supplied
// thresholds; any zero-valued field of cfg is filled from Default().
//
// positions and indices are borrowed read-only for the duration of the
// call; the returned Result owns all of its own memory.
func AnalyzeWithConfig(positions []float32, indices []uint32, cfg Config) (*Result, error) {
	if err := validate(positions, indices); err != nil {
		return nil, err
	}
	cfg = cfg.Resolve()

	s := &state{
		positions: positions,
		indices:   indices,
		cfg:       cfg,
		v:         len(positions) / 3,
		t:         len(indices) / 3,
	}

	s.buildBoundingBox()

	if s.t > cfg.CapacityCap {
		return capacityLimitedResult(s), nil
	}

	s.buildEdgeFaces()
	s.buildVertexTriangles()
	s.buildFaceNormals()

	topo := s.computeTopology()
	nonManifoldVerts := s.nonManifoldVertices()
	winding := s.computeWinding()
	quality := s.triangleQuality(cfg)
	dupCount := s.duplicateVertices(cfg.DuplicateVertexEpsilon)
	valence := s.valenceHistogram()
	dihedral := s.dihedralAnalysis()
	intersectingPairs := s.findSelfIntersections()
	tJunctions := s.tJunctionVertices()
	thinWalls := s.thinWallCount(cfg.ThinWallFraction)
	coincident := s.coincidentFaceCount()

	d := Diagnostics{
		VertexCount:   s.v,
		TriangleCount: s.t,

		EdgeCount:              topo.edgeCount,
		BoundaryEdgeCount:      topo.boundaryEdgeCount,
		NonManifoldEdgeCount:   topo.nonManifoldEdgeCount,
		NonManifoldVertexCount: len(nonManifoldVerts),
		ConnectedComponents:    topo.connectedComponents,
		EulerCharacteristic:    topo.eulerCharacteristic,
		IsolatedVertexCount:    topo.isolatedVertexCount,

		DegenerateTriangleCount: quality.degenerateCount,
		TinyTriangleCount:       quality.tinyCount,
		NeedleTriangleCount:     quality.needleCount,

		WindingInconsistentEdgeCount: winding.inconsistentEdgeCount,
		WindingConsistencyPercent:    winding.consistencyPercent,
		WindingCheckSkipped:          false,

		DuplicateVertexCount: dupCount,

		SharpEdgeCount:    dihedral.sharpCount,
		CoplanarEdgeCount: dihedral.coplanarCount,

		SelfIntersectionCount: len(intersectingPairs),
		TJunctionCount:        len(tJunctions),
		ThinWallCount:         thinWalls,
		ThinWallThreshold:     cfg.ThinWallFraction,
		CoincidentFaceCount:   coincident,

		EdgeLengthStats:     quality.edgeLengthStats,
		AspectRatioStats:    quality.aspectRatioStats,
		DihedralAngleStats:  dihedral.angleStats,
		ValenceDistribution: valence,
	}
	if s.v > 0 {
		bbox := s.bbox
		d.BoundingBox = &bbox
	}

	d.IsWatertight = d.BoundaryEdgeCount == 0
	d.IsManifold = d.NonManifoldEdgeCount == 0
	d.HasNonManifoldVertices = d.NonManifoldVertexCount > 0
	d.HasConsistentWinding = !d.WindingCheckSkipped && d.WindingConsistencyPercent >= 99.5

	var overlay Overlay
	if d.BoundaryEdgeCount > 0 || d.NonManifoldEdgeCount > 0 {
		overlay.BoundaryEdges, overlay.NonManifoldEdges = s.boundaryAndNonManifoldEdges()
	}
	if d.NonManifoldVertexCount > 0 {
		overlay.NonManifoldVertices = s.nonManifoldVertexPositions(nonManifoldVerts)
	}
	if d.SelfIntersectionCount > 0 {
		overlay.SelfIntersectionCentroids = s.selfIntersectionCentroidPositions(intersectingPairs)
	}
	if d.TJunctionCount > 0 {
		overlay.TJunctionVertices = s.tJunctionVertexPositions(tJunctions)
	}

	return &Result{Diagnostics: d, Overlay: overlay}, nil
}

// capacityLimitedResult builds the sentinel diagnostics record returned
// when the triangle count exceeds the configured capacity cap (§4.1): every
// integer count is -1, every derived boolean false, and only vertex count,
// triangle count, and bounding box are populated.
func capacityLimitedResult(s *state) *Result {
	d := Diagnostics{
		VertexCount:   s.v,
		TriangleCount: s.t,

		EdgeCount:              -1,
		BoundaryEdgeCount:      -1,
		NonManifoldEdgeCount:   -1,
		NonManifoldVertexCount: -1,
		ConnectedComponents:    -1,
		EulerCharacteristic:    -1,
		IsolatedVertexCount:    -1,

		DegenerateTriangleCount: -1,
		TinyTriangleCount:       -1,
		NeedleTriangleCount:     -1,

		WindingInconsistentEdgeCount: -1,
		WindingConsistencyPercent:    -1,
		WindingCheckSkipped:          true,

		DuplicateVertexCount: -1,

		SharpEdgeCount:    -1,
		CoplanarEdgeCount: -1,

		SelfIntersectionCount: -1,
		TJunctionCount:        -1,
		ThinWallCount:         -1,
		ThinWallThreshold:     s.cfg.ThinWallFraction,
		CoincidentFaceCount:   -1,
	}
	if s.v > 0 {
		bbox := s.bbox
		d.BoundingBox = &bbox
	}
	return &Result{Diagnostics: d}
}
