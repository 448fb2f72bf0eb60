package models

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// STLLoader loads STL (stereolithography) files in both ASCII and binary
// formats. STL stores an unindexed triangle soup: every triangle repeats
// its three corner coordinates, so the loader welds coincident corners back
// into shared vertices to recover the mesh's topology.
type STLLoader struct {
	NoWeld        bool    // If true, skip welding: every corner becomes its own vertex.
	WeldTolerance float64 // Quantization tolerance for welding coincident corners (default 1e-6).
}

// NewSTLLoader creates a new STL loader with default settings.
func NewSTLLoader() *STLLoader {
	return &STLLoader{WeldTolerance: 1e-6}
}

// LoadSTLFile loads an STL file from disk with default settings.
func LoadSTLFile(path string) (*Mesh, error) {
	return NewSTLLoader().LoadFile(path)
}

// LoadFile loads an STL file from disk.
func (l *STLLoader) LoadFile(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("models: read STL file: %w", err)
	}
	return l.LoadBytes(data, path)
}

// Load parses STL from a reader. The entire content is read into memory to
// detect ASCII vs. binary format.
func (l *STLLoader) Load(r io.Reader, name string) (*Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("models: read STL data: %w", err)
	}
	return l.LoadBytes(data, name)
}

// LoadBytes parses STL from a byte slice.
func (l *STLLoader) LoadBytes(data []byte, name string) (*Mesh, error) {
	if isBinarySTL(data) {
		return l.loadBinary(data, name)
	}
	return l.loadASCII(data, name)
}

// quantizedKey is a hashable key produced by snapping a position to a grid
// of the weld tolerance, to absorb float32 round-trip noise.
type quantizedKey struct {
	x, y, z int64
}

func quantize(x, y, z float64, tolerance float64) quantizedKey {
	if tolerance <= 0 {
		tolerance = 1e-12
	}
	scale := 1.0 / tolerance
	return quantizedKey{
		int64(math.Round(x * scale)),
		int64(math.Round(y * scale)),
		int64(math.Round(z * scale)),
	}
}

func isBinarySTL(data []byte) bool {
	if len(data) < 84 {
		return false
	}
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("solid")) {
		triCount := binary.LittleEndian.Uint32(data[80:84])
		expectedSize := 84 + triCount*50
		return uint32(len(data)) == expectedSize
	}
	return true
}

func (l *STLLoader) weldVertex(mesh *Mesh, vertexMap map[quantizedKey]uint32, x, y, z float32) uint32 {
	if l.NoWeld {
		return appendVertex(&mesh.Positions, x, y, z)
	}
	key := quantize(float64(x), float64(y), float64(z), l.WeldTolerance)
	if idx, ok := vertexMap[key]; ok {
		return idx
	}
	idx := appendVertex(&mesh.Positions, x, y, z)
	vertexMap[key] = idx
	return idx
}

func (l *STLLoader) loadBinary(data []byte, name string) (*Mesh, error) {
	if len(data) < 84 {
		return nil, fmt.Errorf("models: binary STL too short: %d bytes", len(data))
	}

	triCount := binary.LittleEndian.Uint32(data[80:84])
	expectedSize := 84 + triCount*50
	if uint32(len(data)) < expectedSize {
		return nil, fmt.Errorf("models: binary STL truncated: expected %d bytes, got %d", expectedSize, len(data))
	}

	mesh := &Mesh{Name: name}
	vertexMap := make(map[quantizedKey]uint32)

	offset := 84
	for range triCount {
		offset += 12 // skip facet normal

		var faceVerts [3]uint32
		for v := range 3 {
			x := readFloat32LE(data[offset:])
			y := readFloat32LE(data[offset+4:])
			z := readFloat32LE(data[offset+8:])
			offset += 12
			faceVerts[v] = l.weldVertex(mesh, vertexMap, x, y, z)
		}

		offset += 2 // skip attribute byte count
		mesh.Indices = append(mesh.Indices, faceVerts[0], faceVerts[1], faceVerts[2])
	}

	return mesh, nil
}

func readFloat32LE(data []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data))
}

func (l *STLLoader) loadASCII(data []byte, name string) (*Mesh, error) {
	mesh := &Mesh{Name: name}
	vertexMap := make(map[quantizedKey]uint32)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0

	var faceVerts []uint32
	inFacet := false
	inLoop := false

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "solid":
			if len(fields) > 1 {
				mesh.Name = fields[1]
			}

		case "facet":
			inFacet = true
			faceVerts = nil

		case "outer":
			if len(fields) >= 2 && strings.ToLower(fields[1]) == "loop" {
				inLoop = true
			}

		case "vertex":
			if !inFacet || !inLoop {
				return nil, fmt.Errorf("models: line %d: vertex outside facet/loop", lineNum)
			}
			if len(fields) < 4 {
				return nil, fmt.Errorf("models: line %d: vertex needs x y z", lineNum)
			}
			var xyz [3]float64
			for i := range 3 {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("models: line %d: invalid vertex coordinate: %w", lineNum, err)
				}
				xyz[i] = v
			}
			idx := l.weldVertex(mesh, vertexMap, float32(xyz[0]), float32(xyz[1]), float32(xyz[2]))
			faceVerts = append(faceVerts, idx)

		case "endloop":
			inLoop = false

		case "endfacet":
			if len(faceVerts) >= 3 {
				mesh.Indices = append(mesh.Indices, faceVerts[0], faceVerts[1], faceVerts[2])
			}
			inFacet = false
			faceVerts = nil

		case "endsolid":
			// Done.

		default:
			// Ignore unknown directives.
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("models: error reading ASCII STL: %w", err)
	}

	return mesh, nil
}
