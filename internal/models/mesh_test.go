package models

import "testing"

func TestMeshCounts(t *testing.T) {
	m := &Mesh{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:   []uint32{0, 1, 2},
	}
	if got := m.VertexCount(); got != 3 {
		t.Errorf("VertexCount() = %d, want 3", got)
	}
	if got := m.TriangleCount(); got != 1 {
		t.Errorf("TriangleCount() = %d, want 1", got)
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name    string
		mesh    *Mesh
		wantErr bool
	}{
		{
			name:    "valid",
			mesh:    &Mesh{Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, Indices: []uint32{0, 1, 2}},
			wantErr: false,
		},
		{
			name:    "ragged positions",
			mesh:    &Mesh{Positions: []float32{0, 0}, Indices: []uint32{}},
			wantErr: true,
		},
		{
			name:    "ragged indices",
			mesh:    &Mesh{Positions: []float32{0, 0, 0}, Indices: []uint32{0, 1}},
			wantErr: true,
		},
		{
			name:    "index out of range",
			mesh:    &Mesh{Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, Indices: []uint32{0, 1, 3}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAppendVertex(t *testing.T) {
	var positions []float32
	i0 := appendVertex(&positions, 1, 2, 3)
	i1 := appendVertex(&positions, 4, 5, 6)
	if i0 != 0 || i1 != 1 {
		t.Errorf("appendVertex indices = %d, %d, want 0, 1", i0, i1)
	}
	want := []float32{1, 2, 3, 4, 5, 6}
	for i, v := range want {
		if positions[i] != v {
			t.Errorf("positions[%d] = %v, want %v", i, positions[i], v)
		}
	}
}
