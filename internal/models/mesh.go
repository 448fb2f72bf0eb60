// Package models loads triangle meshes from on-disk model formats (OBJ, STL,
// GLTF/GLB) into the flat (positions, indices) representation consumed by
// the meshdiag analysis engine. Per-vertex attributes other than position
// (normals, UVs, materials) are not extracted: the engine is attribute-blind
// by design.
package models

import "fmt"

// Mesh is an indexed triangle soup: positions is a flat run of 3D
// coordinates (vertex v occupies positions[3v:3v+3]) and indices is a flat
// run of triangle vertex indices (triangle t occupies indices[3t:3t+3]).
type Mesh struct {
	Name      string
	Positions []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate reports the first structural problem found in the mesh: a
// ragged positions or indices array, or an index referencing a vertex
// beyond VertexCount. It does not check for non-finite coordinates; callers
// that need that guarantee should scan Positions themselves.
func (m *Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("models: positions length %d is not a multiple of 3", len(m.Positions))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("models: indices length %d is not a multiple of 3", len(m.Indices))
	}
	v := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= v {
			return fmt.Errorf("models: index %d at position %d is out of range for %d vertices", idx, i, v)
		}
	}
	return nil
}

// appendVertex appends a position and returns its new index.
func appendVertex(positions *[]float32, x, y, z float32) uint32 {
	idx := uint32(len(*positions) / 3)
	*positions = append(*positions, x, y, z)
	return idx
}
