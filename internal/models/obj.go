package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOBJFile loads a Wavefront OBJ file from disk.
func LoadOBJFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("models: open OBJ file: %w", err)
	}
	defer f.Close()

	return LoadOBJ(f, path)
}

// LoadOBJ parses an OBJ document from r. Faces with more than three vertices
// are fan-triangulated. Only geometric position ("v") and face ("f")
// directives contribute geometry, and the first "o"/"g" name becomes the
// mesh name; normals, UVs, and materials are ignored, since
// the engine this mesh feeds is attribute-blind.
func LoadOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := &Mesh{Name: name}

	var objPositions [][3]float64
	positionIndex := make(map[[3]float64]uint32)

	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("models: line %d: invalid vertex (need x y z)", lineNum)
			}
			var xyz [3]float64
			for i := range 3 {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("models: line %d: invalid coordinate: %w", lineNum, err)
				}
				xyz[i] = v
			}
			objPositions = append(objPositions, xyz)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("models: line %d: face needs at least 3 vertices", lineNum)
			}

			faceVerts := make([]uint32, 0, len(fields)-1)
			for i := 1; i < len(fields); i++ {
				posIdx, err := parseFaceVertexPosition(fields[i])
				if err != nil {
					return nil, fmt.Errorf("models: line %d: %w", lineNum, err)
				}
				posIdx = resolveIndex(posIdx, len(objPositions))
				if posIdx < 0 || posIdx >= len(objPositions) {
					return nil, fmt.Errorf("models: line %d: position index %d out of range", lineNum, posIdx+1)
				}

				xyz := objPositions[posIdx]
				idx, ok := positionIndex[xyz]
				if !ok {
					idx = appendVertex(&mesh.Positions, float32(xyz[0]), float32(xyz[1]), float32(xyz[2]))
					positionIndex[xyz] = idx
				}
				faceVerts = append(faceVerts, idx)
			}

			for i := 1; i < len(faceVerts)-1; i++ {
				mesh.Indices = append(mesh.Indices, faceVerts[0], faceVerts[i], faceVerts[i+1])
			}

		case "o", "g":
			if len(fields) > 1 && mesh.Name == name {
				mesh.Name = fields[1]
			}

		case "vt", "vn", "mtllib", "usemtl", "s":
			// Attribute and material directives: not consulted (§ attribute-blind engine).

		default:
			// Unknown directive, ignored.
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("models: error reading OBJ: %w", err)
	}

	return mesh, nil
}

// parseFaceVertexPosition parses a face vertex reference in the form
// v, v/vt, v/vt/vn, or v//vn, returning only the 1-indexed position index.
func parseFaceVertexPosition(s string) (int, error) {
	parts := strings.SplitN(s, "/", 2)
	pos, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid vertex index: %s", parts[0])
	}
	return pos, nil
}

// resolveIndex converts an OBJ 1-indexed (or negative, counted from the end)
// index to a 0-indexed one.
func resolveIndex(idx, count int) int {
	if idx < 0 {
		return count + idx
	}
	return idx - 1
}
