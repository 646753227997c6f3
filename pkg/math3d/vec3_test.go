package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestAxisRotations(t *testing.T) {
	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"x quarter turn", V3(0, 1, 0).RotateX(math.Pi / 2), V3(0, 0, 1)},
		{"y quarter turn", V3(0, 0, 1).RotateY(math.Pi / 2), V3(1, 0, 0)},
		{"z quarter turn", V3(1, 0, 0).RotateZ(math.Pi / 2), V3(0, 1, 0)},
		{"x leaves x", V3(3, 0, 0).RotateX(1.234), V3(3, 0, 0)},
		{"z half turn", V3(1, 2, 5).RotateZ(math.Pi), V3(-1, -2, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(tt.want, eps) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := V3(3, -4, 12)
	for _, r := range []Vec3{V3(0.1, 0.2, 0.3), V3(-2, 5, 1), V3(math.Pi, 0, -math.Pi/3)} {
		got := v.RotateZYX(r).Len()
		if math.Abs(got-13) > eps {
			t.Errorf("RotateZYX(%v) length = %v, want 13", r, got)
		}
	}
}

func TestRotateZYXOrder(t *testing.T) {
	v := V3(1, 2, 3)
	r := V3(0.4, -1.1, 2.2)

	want := v.RotateZ(r.Z).RotateY(r.Y).RotateX(r.X)
	if got := v.RotateZYX(r); !got.ApproxEqual(want, eps) {
		t.Errorf("RotateZYX = %v, want %v", got, want)
	}
	if got := EulerZYX(r).MulVec3(v); !got.ApproxEqual(want, eps) {
		t.Errorf("EulerZYX matrix = %v, want %v", got, want)
	}
}

func TestInverseRotateZYX(t *testing.T) {
	v := V3(-7, 0.5, 2)
	r := V3(0.9, 0.3, -2.5)

	if got := v.RotateZYX(r).InverseRotateZYX(r); !got.ApproxEqual(v, 1e-12) {
		t.Errorf("round trip = %v, want %v", got, v)
	}
}

func TestCross(t *testing.T) {
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); got != V3(0, 0, 1) {
		t.Errorf("x × y = %v, want z", got)
	}
	// y component: a.Z*b.X - a.X*b.Z
	if got := V3(0, 0, 1).Cross(V3(1, 0, 0)); got != V3(0, 1, 0) {
		t.Errorf("z × x = %v, want y", got)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(0) = %v, want zero", got)
	}
}

func TestVec2Det(t *testing.T) {
	if got := V2(1, 0).Det(V2(0, 1)); got != 1 {
		t.Errorf("Det = %v, want 1", got)
	}
	if got := (Vec2i{2, 0}).Det(Vec2i{0, -3}); got != -6 {
		t.Errorf("Vec2i.Det = %v, want -6", got)
	}
	if got := V2(-0.5, 2.7).Floor(); got != (Vec2i{-1, 2}) {
		t.Errorf("Floor = %v", got)
	}
}

func TestMat4(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(ScaleUniform(2))
	if got := m.MulVec3(V3(1, 1, 1)); got != V3(3, 4, 5) {
		t.Errorf("MulVec3 = %v", got)
	}
	if got := m.MulVec3Dir(V3(1, 1, 1)); got != V3(2, 2, 2) {
		t.Errorf("MulVec3Dir = %v", got)
	}
	if got := Scale(V3(-1, 1, 1)).Determinant3(); got != -1 {
		t.Errorf("Determinant3 = %v, want -1", got)
	}
	if got := m.Translation(); got != V3(1, 2, 3) {
		t.Errorf("Translation = %v", got)
	}
}
