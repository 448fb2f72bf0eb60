package meshdiag

import "testing"

// cubePositions returns the 8 corners of a unit cube centered at the
// origin.
func cubePositions() []float32 {
	return []float32{
		-0.5, -0.5, -0.5, // 0
		0.5, -0.5, -0.5, // 1
		0.5, 0.5, -0.5, // 2
		-0.5, 0.5, -0.5, // 3
		-0.5, -0.5, 0.5, // 4
		0.5, -0.5, 0.5, // 5
		0.5, 0.5, 0.5, // 6
		-0.5, 0.5, 0.5, // 7
	}
}

// closedCubeIndices triangulates all six faces of cubePositions with
// outward, consistent winding.
func closedCubeIndices() []uint32 {
	return []uint32{
		0, 2, 1, 0, 3, 2, // back
		4, 5, 6, 4, 6, 7, // front
		0, 1, 5, 0, 5, 4, // bottom
		3, 7, 6, 3, 6, 2, // top
		0, 4, 7, 0, 7, 3, // left
		1, 2, 6, 1, 6, 5, // right
	}
}

func TestAnalyzeClosedCube(t *testing.T) {
	r, err := Analyze(cubePositions(), closedCubeIndices())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	d := r.Diagnostics
	if d.VertexCount != 8 {
		t.Errorf("VertexCount = %d, want 8", d.VertexCount)
	}
	if d.TriangleCount != 12 {
		t.Errorf("TriangleCount = %d, want 12", d.TriangleCount)
	}
	if d.BoundaryEdgeCount != 0 {
		t.Errorf("BoundaryEdgeCount = %d, want 0", d.BoundaryEdgeCount)
	}
	if !d.IsWatertight {
		t.Error("expected IsWatertight")
	}
	if !d.IsManifold {
		t.Error("expected IsManifold")
	}
	if d.ConnectedComponents != 1 {
		t.Errorf("ConnectedComponents = %d, want 1", d.ConnectedComponents)
	}
	// Euler characteristic of a topological sphere is 2.
	if d.EulerCharacteristic != 2 {
		t.Errorf("EulerCharacteristic = %d, want 2", d.EulerCharacteristic)
	}
	if !d.HasConsistentWinding {
		t.Error("expected HasConsistentWinding")
	}
	if d.BoundingBox == nil {
		t.Fatal("expected a bounding box")
	}
	if d.BoundingBox.Size != [3]float64{1, 1, 1} {
		t.Errorf("BoundingBox.Size = %v, want {1,1,1}", d.BoundingBox.Size)
	}
}

func TestAnalyzeOpenCubeHasBoundary(t *testing.T) {
	indices := closedCubeIndices()
	// Drop the right face (last 6 indices) to open the cube.
	open := indices[:len(indices)-6]
	r, err := Analyze(cubePositions(), open)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	d := r.Diagnostics
	if d.BoundaryEdgeCount == 0 {
		t.Error("expected a nonzero boundary edge count after removing a face")
	}
	if d.IsWatertight {
		t.Error("expected IsWatertight to be false")
	}
	if len(r.Overlay.BoundaryEdges) == 0 {
		t.Error("expected boundary-edge overlay data")
	}
}

// bowtiePositions forms two triangles sharing a single apex vertex, so that
// vertex has two disjoint fans around it.
func bowtiePositions() []float32 {
	return []float32{
		0, 0, 0, // 0: shared apex
		-1, -1, 0, // 1
		-1, 1, 0, // 2
		1, -1, 0, // 3
		1, 1, 0, // 4
	}
}

func bowtieIndices() []uint32 {
	return []uint32{
		0, 1, 2,
		0, 3, 4,
	}
}

func TestAnalyzeBowtieIsNonManifoldVertex(t *testing.T) {
	r, err := Analyze(bowtiePositions(), bowtieIndices())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	d := r.Diagnostics
	if d.NonManifoldVertexCount != 1 {
		t.Errorf("NonManifoldVertexCount = %d, want 1", d.NonManifoldVertexCount)
	}
	if !d.HasNonManifoldVertices {
		t.Error("expected HasNonManifoldVertices")
	}
	if len(r.Overlay.NonManifoldVertices) != 3 {
		t.Errorf("expected 3 floats of non-manifold-vertex overlay, got %d", len(r.Overlay.NonManifoldVertices))
	}
}

// TestAnalyzeBowtieWithDuplicateIndexTriangleStaysNonManifold guards against
// linkGraph mistaking a triangle with a repeated corner (here, the shared
// apex appears twice) for a normal two-other-vertex fan contribution: two
// such triangles, one touching each fan, must not fabricate a bridge
// between the bowtie's two otherwise-disjoint fans.
func TestAnalyzeBowtieWithDuplicateIndexTriangleStaysNonManifold(t *testing.T) {
	indices := append(bowtieIndices(), 0, 0, 1, 0, 0, 3)
	r, err := Analyze(bowtiePositions(), indices)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	d := r.Diagnostics
	if d.NonManifoldVertexCount != 1 {
		t.Errorf("NonManifoldVertexCount = %d, want 1", d.NonManifoldVertexCount)
	}
	if !d.HasNonManifoldVertices {
		t.Error("expected HasNonManifoldVertices")
	}
}

func TestAnalyzeFlippedFaceBreaksWinding(t *testing.T) {
	indices := closedCubeIndices()
	// Flip the winding of the first triangle only.
	indices[1], indices[2] = indices[2], indices[1]
	r, err := Analyze(cubePositions(), indices)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	d := r.Diagnostics
	if d.WindingInconsistentEdgeCount == 0 {
		t.Error("expected a nonzero winding-inconsistent edge count")
	}
	if d.HasConsistentWinding {
		t.Error("expected HasConsistentWinding to be false")
	}
}

func TestAnalyzeDuplicateVertexQuads(t *testing.T) {
	// Two triangles that share an edge by position but not by index: the
	// second triangle re-declares the shared edge's two vertices as new,
	// coincident positions.
	positions := []float32{
		0, 0, 0, // 0
		1, 0, 0, // 1
		0, 1, 0, // 2
		0, 0, 0, // 3 (duplicate of 0)
		1, 0, 0, // 4 (duplicate of 1)
		1, 1, 0, // 5
	}
	indices := []uint32{
		0, 1, 2,
		3, 5, 4,
	}
	r, err := Analyze(positions, indices)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if r.Diagnostics.DuplicateVertexCount != 2 {
		t.Errorf("DuplicateVertexCount = %d, want 2", r.Diagnostics.DuplicateVertexCount)
	}
}

func TestAnalyzeCrossingTrianglesSelfIntersect(t *testing.T) {
	// Two triangles that pass through each other like an X in cross
	// section: one spans the XZ plane, the other the YZ plane, both
	// straddling the origin.
	positions := []float32{
		-1, 0, -1, // 0
		1, 0, -1, // 1
		0, 0, 1, // 2
		0, -1, -1, // 3
		0, 1, -1, // 4
		0, 0, 1, // 5
	}
	indices := []uint32{
		0, 1, 2,
		3, 4, 5,
	}
	r, err := Analyze(positions, indices)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if r.Diagnostics.SelfIntersectionCount == 0 {
		t.Error("expected a nonzero self-intersection count")
	}
	if len(r.Overlay.SelfIntersectionCentroids) == 0 {
		t.Error("expected self-intersection overlay data")
	}
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	r, err := Analyze(nil, nil)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if r.Diagnostics.VertexCount != 0 || r.Diagnostics.TriangleCount != 0 {
		t.Errorf("expected zero counts on an empty mesh, got %+v", r.Diagnostics)
	}
	if r.Diagnostics.BoundingBox != nil {
		t.Error("expected a nil bounding box for an empty mesh")
	}
}

func TestAnalyzeRejectsRaggedPositions(t *testing.T) {
	_, err := Analyze([]float32{0, 0}, nil)
	if err == nil {
		t.Fatal("expected an error for a ragged positions array")
	}
}

func TestAnalyzeRejectsOutOfRangeIndex(t *testing.T) {
	_, err := Analyze(cubePositions(), []uint32{0, 1, 99})
	if err == nil {
		t.Fatal("expected an error for an out-of-range index")
	}
}

func TestAnalyzeRejectsNonFiniteCoordinate(t *testing.T) {
	positions := cubePositions()
	positions[0] = float32(posInf())
	_, err := Analyze(positions, closedCubeIndices())
	if err == nil {
		t.Fatal("expected an error for a non-finite coordinate")
	}
}

func posInf() float64 {
	var zero float64
	return 1 / zero
}

func TestAnalyzeCapacityCapShortCircuits(t *testing.T) {
	cfg := Default()
	cfg.CapacityCap = 1 // force the short circuit with a trivially small cap
	r, err := AnalyzeWithConfig(cubePositions(), closedCubeIndices(), cfg)
	if err != nil {
		t.Fatalf("AnalyzeWithConfig: %v", err)
	}
	d := r.Diagnostics
	if !d.WindingCheckSkipped {
		t.Error("expected WindingCheckSkipped")
	}
	if d.EdgeCount != -1 || d.BoundaryEdgeCount != -1 || d.ConnectedComponents != -1 {
		t.Errorf("expected sentinel -1 counts, got %+v", d)
	}
	if d.VertexCount != 8 || d.TriangleCount != 12 {
		t.Errorf("vertex/triangle counts should still be reported, got v=%d t=%d", d.VertexCount, d.TriangleCount)
	}
	if d.BoundingBox == nil {
		t.Error("expected the bounding box to still be computed")
	}
}

func TestAnalyzePermutationInvariantEulerCharacteristic(t *testing.T) {
	a, err := Analyze(cubePositions(), closedCubeIndices())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	// Reverse the triangle order; the mesh is the same set of triangles.
	indices := closedCubeIndices()
	reversed := make([]uint32, len(indices))
	for t := 0; t < len(indices)/3; t++ {
		src := len(indices)/3 - 1 - t
		reversed[3*t], reversed[3*t+1], reversed[3*t+2] = indices[3*src], indices[3*src+1], indices[3*src+2]
	}
	b, err := Analyze(cubePositions(), reversed)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if a.Diagnostics.EulerCharacteristic != b.Diagnostics.EulerCharacteristic {
		t.Errorf("Euler characteristic changed under triangle reordering: %d vs %d",
			a.Diagnostics.EulerCharacteristic, b.Diagnostics.EulerCharacteristic)
	}
	if a.Diagnostics.BoundaryEdgeCount != b.Diagnostics.BoundaryEdgeCount {
		t.Errorf("boundary edge count changed under triangle reordering: %d vs %d",
			a.Diagnostics.BoundaryEdgeCount, b.Diagnostics.BoundaryEdgeCount)
	}
}
