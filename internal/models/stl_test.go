package models

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestSTLLoaderASCII(t *testing.T) {
	asciiSTL := `solid cube
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 1 1 0
    endloop
  endfacet
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 1 1 0
      vertex 0 1 0
    endloop
  endfacet
endsolid cube`

	loader := NewSTLLoader()
	mesh, err := loader.Load(bytes.NewReader([]byte(asciiSTL)), "test.stl")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if mesh.Name != "cube" {
		t.Errorf("Name = %q, want %q", mesh.Name, "cube")
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", mesh.TriangleCount())
	}
	if mesh.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4 (welded)", mesh.VertexCount())
	}
}

func TestSTLLoaderBinary(t *testing.T) {
	var buf bytes.Buffer

	header := make([]byte, 80)
	copy(header, []byte("Binary STL test"))
	buf.Write(header)

	binary.Write(&buf, binary.LittleEndian, uint32(1))

	binary.Write(&buf, binary.LittleEndian, float32(0))
	binary.Write(&buf, binary.LittleEndian, float32(0))
	binary.Write(&buf, binary.LittleEndian, float32(1))

	binary.Write(&buf, binary.LittleEndian, float32(0))
	binary.Write(&buf, binary.LittleEndian, float32(0))
	binary.Write(&buf, binary.LittleEndian, float32(0))

	binary.Write(&buf, binary.LittleEndian, float32(1))
	binary.Write(&buf, binary.LittleEndian, float32(0))
	binary.Write(&buf, binary.LittleEndian, float32(0))

	binary.Write(&buf, binary.LittleEndian, float32(0))
	binary.Write(&buf, binary.LittleEndian, float32(1))
	binary.Write(&buf, binary.LittleEndian, float32(0))

	binary.Write(&buf, binary.LittleEndian, uint16(0))

	loader := NewSTLLoader()
	mesh, err := loader.LoadBytes(buf.Bytes(), "test.stl")
	if err != nil {
		t.Fatalf("LoadBytes() error = %v", err)
	}

	if mesh.TriangleCount() != 1 {
		t.Errorf("TriangleCount() = %d, want 1", mesh.TriangleCount())
	}
	if mesh.VertexCount() != 3 {
		t.Errorf("VertexCount() = %d, want 3", mesh.VertexCount())
	}
}

func TestSTLDetection(t *testing.T) {
	ascii := []byte("solid test\nfacet normal 0 0 1\n")
	if isBinarySTL(ascii) {
		t.Error("ASCII STL detected as binary")
	}

	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	if !isBinarySTL(buf.Bytes()) {
		t.Error("binary STL not detected")
	}
}

func TestSTLVertexWelding(t *testing.T) {
	asciiSTL := `solid test
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 1 0 0
      vertex 1 1 0
      vertex 0 1 0
    endloop
  endfacet
endsolid test`

	loader := NewSTLLoader()
	mesh, err := loader.Load(bytes.NewReader([]byte(asciiSTL)), "test.stl")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if mesh.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4 (welded)", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("TriangleCount() = %d, want 2", mesh.TriangleCount())
	}
}

func TestSTLNoWeldKeepsDuplicateCorners(t *testing.T) {
	asciiSTL := `solid test
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 1 0 0
      vertex 1 1 0
      vertex 0 1 0
    endloop
  endfacet
endsolid test`

	loader := NewSTLLoader()
	loader.NoWeld = true
	mesh, err := loader.Load(bytes.NewReader([]byte(asciiSTL)), "test.stl")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if mesh.VertexCount() != 6 {
		t.Errorf("VertexCount() = %d, want 6 (unwelded soup)", mesh.VertexCount())
	}
}

func TestQuantize(t *testing.T) {
	a := quantize(1.0000001, 2.0, 3.0, 1e-4)
	b := quantize(1.0000002, 2.0, 3.0, 1e-4)
	if a != b {
		t.Errorf("quantize() not stable within tolerance: %v != %v", a, b)
	}

	c := quantize(1.01, 2.0, 3.0, 1e-4)
	if a == c {
		t.Errorf("quantize() merged points outside tolerance")
	}
}
