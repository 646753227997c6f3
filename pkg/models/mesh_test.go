package models

import (
	"math"
	"testing"

	"github.com/taigrr/scanline/pkg/math3d"
)

func TestMeshRotateRoundTrip(t *testing.T) {
	m := NewUVSphere(3, 6, 8, White)
	before := m.Posed(5)

	tests := []struct {
		name   string
		rotate func(float64)
	}{
		{"x", m.RotateX},
		{"y", m.RotateY},
		{"z", m.RotateZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.rotate(0.7)
			if m.Posed(5) == before {
				t.Fatal("rotation had no effect")
			}
			tt.rotate(-0.7)
			after := m.Posed(5)
			for i, v := range after.Vertices() {
				if !v.Position.ApproxEqual(before.Vertices()[i].Position, 1e-9) {
					t.Errorf("vertex %d = %v, want %v", i, v.Position, before.Vertices()[i].Position)
				}
			}
		})
	}
}

func TestMeshRotationKeepsRestPose(t *testing.T) {
	m := NewCube(2, CubePalette)
	rest := m.Triangles[0]

	for range 100 {
		m.RotateY(0.1)
	}

	if m.Triangles[0] != rest {
		t.Error("rotation mutated rest-pose triangles")
	}
	want := rest.RotateZYX(m.Rotation)
	if got := m.Posed(0); got != want {
		t.Errorf("Posed = %v, want %v", got, want)
	}
}

func TestMeshPosedAppliesCenterAfterRotation(t *testing.T) {
	m := NewMesh("t", []Triangle{flatTri(math3d.V3(1, 0, 0), math3d.V3(0, 1, 0), math3d.V3(0, 0, 1))})
	m.RotateZ(math.Pi / 2)
	m.Translate(math3d.V3(10, 0, 0))

	got := m.Posed(0).A.Position
	if want := math3d.V3(10, 1, 0); !got.ApproxEqual(want, 1e-12) {
		t.Errorf("Posed A = %v, want %v", got, want)
	}
}

func TestMeshWrapsAngles(t *testing.T) {
	m := NewMesh("t", nil)
	for range 1000 {
		m.RotateX(0.1)
	}
	if math.Abs(m.Rotation.X) > 2*math.Pi {
		t.Errorf("Rotation.X = %v, want within ±2π", m.Rotation.X)
	}
}

func TestMeshFit(t *testing.T) {
	m := NewCube(4, CubePalette)
	m.Transform(math3d.Translate(math3d.V3(10, 20, 30)))
	m.Fit(1)

	lo, hi := m.Bounds()
	if !lo.ApproxEqual(math3d.V3(-0.5, -0.5, -0.5), 1e-12) || !hi.ApproxEqual(math3d.V3(0.5, 0.5, 0.5), 1e-12) {
		t.Errorf("Bounds = %v..%v, want unit cube at origin", lo, hi)
	}
}

func TestMeshTransformMirrorKeepsWinding(t *testing.T) {
	m := NewCube(2, CubePalette)
	m.Transform(math3d.Scale(math3d.V3(-1, 1, 1)))

	for i, tri := range m.Triangles {
		n, ok := tri.Normal()
		if !ok {
			t.Fatalf("triangle %d degenerate", i)
		}
		if n.Dot(tri.Centroid()) <= 0 {
			t.Errorf("triangle %d faces inward after mirror", i)
		}
	}
}

func TestMeshClone(t *testing.T) {
	m := NewCube(2, CubePalette)
	c := m.Clone()
	c.Triangles[0].A.Color = Black
	c.RotateX(1)

	if m.Triangles[0].A.Color == Black {
		t.Error("clone shares triangle storage")
	}
	if m.Rotation != (math3d.Vec3{}) {
		t.Error("clone shares rotation")
	}
}

type solidSampler Color

func (s solidSampler) Sample(u, v float64) Color { return Color(s) }

func TestMeshTextured(t *testing.T) {
	m := NewCube(2, CubePalette)
	if m.Textured() {
		t.Error("mesh without sampler reports textured")
	}
	m.Texture = solidSampler(Red)
	if !m.Textured() {
		t.Error("cube with sampler and UVs should be textured")
	}

	plain := NewMesh("plain", []Triangle{flatTri(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0))})
	plain.Texture = solidSampler(Red)
	if plain.Textured() {
		t.Error("mesh without UVs should not be textured")
	}
}
