package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/taigrr/meshdiag/internal/models"
)

// loadMesh dispatches to the right loader by file extension and logs the
// load time, mirroring the timing/warning logging the analyzer itself never
// performs (it is a pure function).
func loadMesh(path string) (*models.Mesh, error) {
	start := time.Now()
	ext := strings.ToLower(filepath.Ext(path))

	var mesh *models.Mesh
	var err error
	switch ext {
	case ".obj":
		mesh, err = models.LoadOBJFile(path)
	case ".stl":
		mesh, err = models.LoadSTLFile(path)
	case ".glb", ".gltf":
		mesh, err = models.LoadGLTFFile(path)
	default:
		return nil, fmt.Errorf("unsupported model format %q (use .obj, .stl, .glb, or .gltf)", ext)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("loaded mesh",
		"path", path,
		"format", strings.TrimPrefix(ext, "."),
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount(),
		"elapsed", time.Since(start),
	)
	return mesh, nil
}
