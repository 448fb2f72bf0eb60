package models

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/meshdiag/math3d"
)

// LoadGLTFFile loads a GLTF (.gltf) or binary GLTF (.glb) file, merging all
// mesh primitives across the node hierarchy into one flat indexed mesh. Per
// the collaborator contract the analysis engine assumes: primitives with an
// index buffer are re-indexed by adding the running vertex offset;
// primitives without one are assumed to be a flat triangle list
// (0..vertexCount-1). Materials, normals, and UVs are not extracted.
func LoadGLTFFile(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("models: open gltf: %w", err)
	}

	mesh := &Mesh{Name: filepath.Base(path)}
	processed := make(map[int]bool)

	if len(doc.Scenes) > 0 {
		sceneIdx := 0
		if doc.Scene != nil {
			sceneIdx = int(*doc.Scene)
		}
		for _, nodeIdx := range doc.Scenes[sceneIdx].Nodes {
			if err := processNode(doc, int(nodeIdx), math3d.Identity(), mesh, processed); err != nil {
				return nil, err
			}
		}
	} else {
		roots := rootNodes(doc)
		for _, idx := range roots {
			if err := processNode(doc, idx, math3d.Identity(), mesh, processed); err != nil {
				return nil, err
			}
		}
	}

	return mesh, nil
}

func rootNodes(doc *gltf.Document) []int {
	isChild := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			isChild[int(c)] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !isChild[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// processNode recursively walks a node and its children, accumulating the
// affine transform, and flattens each mesh it references into mesh.
func processNode(doc *gltf.Document, nodeIdx int, parent math3d.Mat4, mesh *Mesh, processed map[int]bool) error {
	node := doc.Nodes[nodeIdx]
	local := math3d.Identity()

	if node.Matrix != [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1} {
		local = math3d.Mat4FromSlice(node.Matrix[:])
	} else {
		if node.Translation != [3]float64{0, 0, 0} {
			local = local.Mul(math3d.Translate(math3d.V3(node.Translation[0], node.Translation[1], node.Translation[2])))
		}
		if node.Rotation != [4]float64{0, 0, 0, 1} {
			local = local.Mul(math3d.QuatToMat4(node.Rotation[0], node.Rotation[1], node.Rotation[2], node.Rotation[3]))
		}
		if node.Scale != [3]float64{1, 1, 1} && node.Scale != [3]float64{0, 0, 0} {
			local = local.Mul(math3d.Scale(math3d.V3(node.Scale[0], node.Scale[1], node.Scale[2])))
		}
	}

	world := parent.Mul(local)

	if node.Mesh != nil {
		meshIdx := int(*node.Mesh)
		if err := processMesh(doc, doc.Meshes[meshIdx], mesh, world); err != nil {
			return err
		}
		processed[meshIdx] = true
	}

	for _, childIdx := range node.Children {
		if err := processNode(doc, int(childIdx), world, mesh, processed); err != nil {
			return err
		}
	}
	return nil
}

// processMesh extracts geometry from a GLTF mesh's triangle primitives,
// applying transform to each position and appending into mesh.
func processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh, transform math3d.Mat4) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("models: read positions: %w", err)
		}

		baseVertex := uint32(mesh.VertexCount())
		for _, p := range positions {
			wp := transform.MulVec3(p)
			appendVertex(&mesh.Positions, float32(wp.X), float32(wp.Y), float32(wp.Z))
		}

		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("models: read indices: %w", err)
			}
			for _, idx := range indices {
				mesh.Indices = append(mesh.Indices, baseVertex+uint32(idx))
			}
		} else {
			for i := range uint32(len(positions)) {
				mesh.Indices = append(mesh.Indices, baseVertex+i)
			}
		}
	}
	return nil
}

func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	raw, err := readAccessorFloats(doc, accessor, 3)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, len(raw))
	for i, f := range raw {
		result[i] = math3d.V3(float64(f[0]), float64(f[1]), float64(f[2]))
	}
	return result, nil
}

// readAccessorFloats reads a stream of width-component float32 tuples from
// an accessor's backing buffer view, honoring a non-zero byte stride.
func readAccessorFloats(doc *gltf.Document, accessor *gltf.Accessor, width int) ([][3]float32, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	bv := doc.BufferViews[*accessor.BufferView]
	buf := doc.Buffers[bv.Buffer]
	if buf.Data == nil {
		return nil, fmt.Errorf("external glTF buffers are not supported")
	}

	stride := bv.ByteStride
	if stride == 0 {
		stride = width * 4
	}
	start := bv.ByteOffset + accessor.ByteOffset
	count := accessor.Count

	result := make([][3]float32, count)
	for i := range count {
		offset := start + i*stride
		for j := range width {
			result[i][j] = readFloat32(buf.Data[offset+j*4:])
		}
	}
	return result, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("index accessor has no buffer view")
	}
	bv := doc.BufferViews[*accessor.BufferView]
	buf := doc.Buffers[bv.Buffer]
	if buf.Data == nil {
		return nil, fmt.Errorf("external glTF buffers are not supported")
	}

	start := bv.ByteOffset + accessor.ByteOffset
	count := accessor.Count
	result := make([]int, count)

	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		stride := bv.ByteStride
		if stride == 0 {
			stride = 1
		}
		for i := range count {
			result[i] = int(buf.Data[start+i*stride])
		}
	case gltf.ComponentUshort:
		stride := bv.ByteStride
		if stride == 0 {
			stride = 2
		}
		for i := range count {
			o := start + i*stride
			result[i] = int(uint16(buf.Data[o]) | uint16(buf.Data[o+1])<<8)
		}
	case gltf.ComponentUint:
		stride := bv.ByteStride
		if stride == 0 {
			stride = 4
		}
		for i := range count {
			o := start + i*stride
			result[i] = int(uint32(buf.Data[o]) | uint32(buf.Data[o+1])<<8 | uint32(buf.Data[o+2])<<16 | uint32(buf.Data[o+3])<<24)
		}
	default:
		return nil, fmt.Errorf("unsupported index component type: %v", accessor.ComponentType)
	}
	return result, nil
}

func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
