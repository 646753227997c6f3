package models

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/scanline/pkg/math3d"
)

// writeTestGLB saves a single textured, vertex-colored triangle.
func writeTestGLB(t *testing.T, withImage bool) string {
	t.Helper()

	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	uv := modeler.WriteTextureCoord(doc, [][2]float32{{0, 0}, {1, 0}, {0, 1}})
	col := modeler.WriteColor(doc, [][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	idx := modeler.WriteIndices(doc, []uint16{0, 1, 2})

	doc.Meshes = []*gltf.Mesh{{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(idx),
			Attributes: map[string]int{
				gltf.POSITION:   pos,
				gltf.TEXCOORD_0: uv,
				"COLOR_0":       col,
			},
		}},
	}}

	if withImage {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		img.Set(0, 0, color.RGBA{255, 0, 0, 255})
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatal(err)
		}
		if _, err := modeler.WriteImage(doc, "tex.png", "image/png", &buf); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "tri.glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}
	return path
}

func TestLoadGLBInvalidPath(t *testing.T) {
	if _, err := LoadGLB("/nonexistent/path.glb"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadGLTF(t *testing.T) {
	m, err := LoadGLTF(writeTestGLB(t, false), White)
	if err != nil {
		t.Fatalf("LoadGLTF: %v", err)
	}
	if m.TriangleCount() != 1 {
		t.Fatalf("TriangleCount = %d, want 1", m.TriangleCount())
	}

	tri := m.Triangles[0]
	if tri.B.Position != math3d.V3(1, 0, 0) {
		t.Errorf("B = %v", tri.B.Position)
	}
	if tri.A.Color != Red || tri.B.Color != Green || tri.C.Color != Blue {
		t.Errorf("colors = %v %v %v", tri.A.Color, tri.B.Color, tri.C.Color)
	}
	// V is flipped to a bottom-left origin.
	if !tri.C.HasUV || tri.C.UV != math3d.V2(0, 0) || tri.A.UV != math3d.V2(0, 1) {
		t.Errorf("uvs = %v %v", tri.A.UV, tri.C.UV)
	}
	// Winding is kept: counter-clockwise in XY faces +Z.
	if n, _ := tri.Normal(); !n.ApproxEqual(math3d.V3(0, 0, 1), 1e-9) {
		t.Errorf("normal = %v", n)
	}
}

func TestLoadGLBWithTexture(t *testing.T) {
	m, img, err := LoadGLBWithTexture(writeTestGLB(t, true), White)
	if err != nil {
		t.Fatalf("LoadGLBWithTexture: %v", err)
	}
	if m.TriangleCount() != 1 {
		t.Errorf("TriangleCount = %d", m.TriangleCount())
	}
	if img == nil {
		t.Fatal("expected embedded image")
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("image bounds = %v", b)
	}

	_, img, err = LoadGLBWithTexture(writeTestGLB(t, false), White)
	if err != nil || img != nil {
		t.Errorf("untextured file: img=%v err=%v", img, err)
	}
}

func TestLoadWithImage(t *testing.T) {
	opts := DefaultLoadOptions()
	opts.FitSize = 10
	m, img, err := LoadWithImage(writeTestGLB(t, true), opts)
	if err != nil {
		t.Fatalf("LoadWithImage: %v", err)
	}
	if img == nil {
		t.Error("expected embedded image")
	}
	if s := m.Size(); math.Max(s.X, math.Max(s.Y, s.Z)) < 10-1e-9 {
		t.Errorf("model not fitted: size %v", s)
	}
}
