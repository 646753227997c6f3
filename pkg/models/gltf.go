package models

import (
	"encoding/binary"
	"fmt"
	"image"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/scanline/internal/imageio"
	"github.com/taigrr/scanline/internal/logging"
	"github.com/taigrr/scanline/pkg/math3d"
)

// LoadGLTF loads every triangle primitive of a .gltf or .glb file.
// Positions are returned in the file's own axes; Load applies the remap.
// Vertices take their color from COLOR_0 when present, otherwise base.
func LoadGLTF(path string, base Color) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path), nil)
	for _, m := range doc.Meshes {
		if err := appendGLTFMesh(doc, m, base, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	return mesh, nil
}

// LoadGLB loads a binary glTF file with white vertices.
func LoadGLB(path string) (*Mesh, error) {
	return LoadGLTF(path, White)
}

// appendGLTFMesh flattens the indexed primitives of m into triangles.
func appendGLTFMesh(doc *gltf.Document, m *gltf.Mesh, base Color, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Lines and points have no area to fill.
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var uvs []math3d.Vec2
		if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			uvs, err = readVec2Accessor(doc, uvIdx)
			if err != nil {
				return fmt.Errorf("read uvs: %w", err)
			}
		}

		var colors []Color
		if colIdx, ok := prim.Attributes["COLOR_0"]; ok {
			colors, err = readColorAccessor(doc, colIdx)
			if err != nil {
				// Vertex colors are decoration; fall back to the base color.
				logging.Logger().Warn("ignoring COLOR_0", "mesh", m.Name, "err", err)
				colors = nil
			}
		}

		vertex := func(i int) (Vertex, error) {
			if i < 0 || i >= len(positions) {
				return Vertex{}, fmt.Errorf("index %d out of range (%d vertices)", i, len(positions))
			}
			v := Vertex{Position: positions[i], Color: base}
			if i < len(colors) {
				v.Color = colors[i]
			}
			if i < len(uvs) {
				// glTF puts V=0 at the top of the image; samplers expect it at the bottom.
				v.UV = math3d.V2(uvs[i].X, 1-uvs[i].Y)
				v.HasUV = true
			}
			return v, nil
		}

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			var corners [3]Vertex
			for k := range 3 {
				if corners[k], err = vertex(indices[i+k]); err != nil {
					return err
				}
			}
			mesh.Triangles = append(mesh.Triangles, Tri(corners[0], corners[1], corners[2]))
		}
	}

	return nil
}

// readVec3Accessor reads Vec3 data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	floats, err := readFloatAccessor(doc, accessorIdx, gltf.AccessorVec3)
	if err != nil {
		return nil, err
	}
	result := make([]math3d.Vec3, len(floats))
	for i, f := range floats {
		result[i] = math3d.V3(f[0], f[1], f[2])
	}
	return result, nil
}

// readVec2Accessor reads Vec2 data from a glTF accessor.
func readVec2Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec2, error) {
	floats, err := readFloatAccessor(doc, accessorIdx, gltf.AccessorVec2)
	if err != nil {
		return nil, err
	}
	result := make([]math3d.Vec2, len(floats))
	for i, f := range floats {
		result[i] = math3d.V2(f[0], f[1])
	}
	return result, nil
}

// readColorAccessor reads float RGB or RGBA vertex colors.
func readColorAccessor(doc *gltf.Document, accessorIdx int) ([]Color, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	typ := doc.Accessors[accessorIdx].Type
	if typ != gltf.AccessorVec3 && typ != gltf.AccessorVec4 {
		return nil, fmt.Errorf("expected VEC3 or VEC4 color, got %v", typ)
	}
	floats, err := readFloatAccessor(doc, accessorIdx, typ)
	if err != nil {
		return nil, err
	}
	result := make([]Color, len(floats))
	for i, f := range floats {
		result[i] = Color{clampChannel(f[0] * 255), clampChannel(f[1] * 255), clampChannel(f[2] * 255)}
	}
	return result, nil
}

// readIndices reads index data from a glTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index component type: %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		b := data[i*stride:]
		switch size {
		case 1:
			result[i] = int(b[0])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(b))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(b))
		}
	}
	return result, nil
}

// componentCount returns the number of floats per element of typ.
func componentCount(typ gltf.AccessorType) int {
	switch typ {
	case gltf.AccessorScalar:
		return 1
	case gltf.AccessorVec2:
		return 2
	case gltf.AccessorVec3:
		return 3
	case gltf.AccessorVec4:
		return 4
	}
	return 0
}

// readFloatAccessor reads a float32 accessor of the wanted type, widening
// each element to float64. Elements are padded to four components.
func readFloatAccessor(doc *gltf.Document, accessorIdx int, want gltf.AccessorType) ([][4]float64, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != want {
		return nil, fmt.Errorf("expected %v, got %v", want, accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float components, got %v", accessor.ComponentType)
	}

	n := componentCount(want)
	data, stride, err := accessorBytes(doc, accessor, 4*n)
	if err != nil {
		return nil, err
	}

	result := make([][4]float64, accessor.Count)
	for i := range result {
		offset := i * stride
		for j := range n {
			bits := binary.LittleEndian.Uint32(data[offset+j*4:])
			result[i][j] = float64(math.Float32frombits(bits))
		}
	}
	return result, nil
}

// accessorBytes returns the bytes backing accessor starting at its first
// element, plus the element stride. elemSize is the tightly packed size.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}
	if *accessor.BufferView >= len(doc.BufferViews) {
		return nil, 0, fmt.Errorf("buffer view %d out of range", *accessor.BufferView)
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer >= len(doc.Buffers) {
		return nil, 0, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}

	// gltf.Open resolves both embedded GLB chunks and external .bin files.
	bufData := doc.Buffers[bufferView.Buffer].Data
	if bufData == nil {
		return nil, 0, fmt.Errorf("buffer has no data")
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	end := start
	if accessor.Count > 0 {
		end = start + (accessor.Count-1)*stride + elemSize
	}
	if end > len(bufData) {
		return nil, 0, fmt.Errorf("accessor reads past end of buffer (%d > %d)", end, len(bufData))
	}
	return bufData[start:end], stride, nil
}

// LoadGLTFWithTextures loads a glTF file and extracts its images as
// encoded bytes keyed by image index.
func LoadGLTFWithTextures(path string, base Color) (*Mesh, map[int][]byte, error) {
	mesh, err := LoadGLTF(path, base)
	if err != nil {
		return nil, nil, err
	}

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open gltf: %w", err)
	}

	textures := make(map[int][]byte)
	for i, img := range doc.Images {
		if img.BufferView != nil {
			bv := doc.BufferViews[*img.BufferView]
			buf := doc.Buffers[bv.Buffer]
			if buf.Data != nil {
				start := bv.ByteOffset
				textures[i] = buf.Data[start : start+bv.ByteLength]
			}
		} else if img.URI != "" {
			data, err := os.ReadFile(filepath.Join(filepath.Dir(path), img.URI))
			if err != nil {
				logging.Logger().Warn("skipping external texture", "uri", img.URI, "err", err)
				continue
			}
			textures[i] = data
		}
	}

	return mesh, textures, nil
}

// LoadGLBWithTexture loads a glTF file and decodes its first usable image.
// The image is nil when the file embeds none.
func LoadGLBWithTexture(path string, base Color) (*Mesh, image.Image, error) {
	mesh, textures, err := LoadGLTFWithTextures(path, base)
	if err != nil {
		return nil, nil, err
	}

	for _, i := range slices.Sorted(maps.Keys(textures)) {
		data := textures[i]
		if len(data) == 0 {
			continue
		}
		img, _, err := imageio.Decode(data, false)
		if err == nil {
			return mesh, img, nil
		}
		logging.Logger().Warn("skipping undecodable image", "path", path, "image", i, "err", err)
	}
	return mesh, nil, nil
}
