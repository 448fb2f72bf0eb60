package models

import (
	"strings"
	"testing"
)

func TestLoadOBJTriangle(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`
	mesh, err := LoadOBJ(strings.NewReader(src), "tri")
	if err != nil {
		t.Fatalf("LoadOBJ() error = %v", err)
	}
	if mesh.VertexCount() != 3 {
		t.Errorf("VertexCount() = %d, want 3", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("TriangleCount() = %d, want 1", mesh.TriangleCount())
	}
}

func TestLoadOBJQuadFanTriangulation(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	mesh, err := LoadOBJ(strings.NewReader(src), "quad")
	if err != nil {
		t.Fatalf("LoadOBJ() error = %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2 (fan-triangulated quad)", mesh.TriangleCount())
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`
	mesh, err := LoadOBJ(strings.NewReader(src), "neg")
	if err != nil {
		t.Fatalf("LoadOBJ() error = %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("TriangleCount() = %d, want 1", mesh.TriangleCount())
	}
}

func TestLoadOBJFaceWithNormalsAndUVs(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
`
	mesh, err := LoadOBJ(strings.NewReader(src), "attrs")
	if err != nil {
		t.Fatalf("LoadOBJ() error = %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Errorf("TriangleCount() = %d, want 1", mesh.TriangleCount())
	}
}

func TestLoadOBJDeduplicatesSharedPositions(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
f 1 2 3
f 2 4 3
`
	mesh, err := LoadOBJ(strings.NewReader(src), "shared")
	if err != nil {
		t.Fatalf("LoadOBJ() error = %v", err)
	}
	if mesh.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4 (two triangles sharing an edge)", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", mesh.TriangleCount())
	}
}

func TestLoadOBJInvalidVertex(t *testing.T) {
	src := "v 0 0\n"
	if _, err := LoadOBJ(strings.NewReader(src), "bad"); err == nil {
		t.Error("LoadOBJ() error = nil, want error for malformed vertex")
	}
}

func TestResolveIndex(t *testing.T) {
	tests := []struct {
		name  string
		idx   int
		count int
		want  int
	}{
		{"1-indexed first", 1, 5, 0},
		{"1-indexed last", 5, 5, 4},
		{"negative last", -1, 5, 4},
		{"negative first", -5, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveIndex(tt.idx, tt.count); got != tt.want {
				t.Errorf("resolveIndex(%d, %d) = %d, want %d", tt.idx, tt.count, got, tt.want)
			}
		})
	}
}
