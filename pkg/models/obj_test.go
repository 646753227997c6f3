package models

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/scanline/pkg/math3d"
)

const quadOBJ = `# textured quad
v 0 0 0
v 1 0 0 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`

func TestParseOBJ(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader(quadOBJ), Gray)
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("TriangleCount = %d, want 2 (fan of a quad)", m.TriangleCount())
	}

	first := m.Triangles[0]
	if first.B.Color != Red {
		t.Errorf("vertex color = %v, want red from extension", first.B.Color)
	}
	if first.A.Color != Gray {
		t.Errorf("uncolored vertex = %v, want base", first.A.Color)
	}
	if !first.C.HasUV || first.C.UV != math3d.V2(1, 1) {
		t.Errorf("texcoord = %v (has=%v)", first.C.UV, first.C.HasUV)
	}
	if n, _ := first.Normal(); !n.ApproxEqual(math3d.V3(0, 0, 1), 1e-12) {
		t.Errorf("winding normal = %v, want +z", n)
	}
}

func TestParseOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad number", "v 1 x 3\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n"},
		{"two corners", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
		{"bad texcoord ref", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/1 2/1 3/1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOBJ(strings.NewReader(tt.src), White); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseOBJNegativeIndices(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"), White)
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if got := m.Triangles[0].C.Position; got != math3d.V3(0, 1, 0) {
		t.Errorf("C = %v", got)
	}
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "quad.obj")
	if err := os.WriteFile(objPath, []byte(quadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	opts := DefaultLoadOptions()
	opts.FitSize = 2
	m, err := Load(objPath, opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Name != "quad.obj" {
		t.Errorf("Name = %q", m.Name)
	}

	// The quad lies in the file's XY plane; after the Y-up remap it spans
	// scene Y (from file X) and Z (from file -Y), and faces the camera at -X.
	size := m.Size()
	if !size.ApproxEqual(math3d.V3(0, 2, 2), 1e-9) {
		t.Errorf("Size = %v, want (0,2,2)", size)
	}
	if n, _ := m.Triangles[0].Normal(); !n.ApproxEqual(math3d.V3(-1, 0, 0), 1e-9) {
		t.Errorf("normal = %v, want -x", n)
	}

	if _, err := Load(filepath.Join(dir, "model.stl"), opts); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("stl err = %v, want ErrUnsupportedFormat", err)
	}

	empty := filepath.Join(dir, "empty.obj")
	if err := os.WriteFile(empty, []byte("# nothing\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty, opts); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("empty err = %v, want ErrNoGeometry", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.obj"), opts); err == nil {
		t.Error("expected error for missing file")
	}
}
