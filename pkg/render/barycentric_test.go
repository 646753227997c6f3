package render

import (
	"math"
	"testing"

	"github.com/taigrr/scanline/pkg/math3d"
)

func TestBarycentric(t *testing.T) {
	a, b, c := math3d.V2(0, 0), math3d.V2(12, 0), math3d.V2(0, 9)
	bc, ok := NewBarycentric(a, b, c)
	if !ok {
		t.Fatal("triangle reported degenerate")
	}

	tests := []struct {
		name   string
		px, py int
		want   math3d.Vec3
	}{
		{"vertex a", 0, 0, math3d.V3(1, 0, 0)},
		{"vertex b", 12, 0, math3d.V3(0, 1, 0)},
		{"vertex c", 0, 9, math3d.V3(0, 0, 1)},
		{"centroid", 4, 3, math3d.V3(1.0/3, 1.0/3, 1.0/3)},
		{"outside", -3, 0, math3d.V3(1.25, -0.25, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w1, w2, w3 := bc.Weights(tc.px, tc.py)
			got := math3d.V3(w1, w2, w3)
			if !got.ApproxEqual(tc.want, 1e-12) {
				t.Errorf("Weights(%d,%d) = %v, want %v", tc.px, tc.py, got, tc.want)
			}
			if s := w1 + w2 + w3; math.Abs(s-1) > 1e-12 {
				t.Errorf("weights sum to %v", s)
			}
		})
	}
}

func TestBarycentricWindingIndependent(t *testing.T) {
	a, b, c := math3d.V2(3, 1), math3d.V2(40, 17), math3d.V2(9, 30)
	cw, _ := NewBarycentric(a, b, c)
	ccw, _ := NewBarycentric(a, c, b)

	w1, w2, w3 := cw.Weights(15, 15)
	v1, v3, v2 := ccw.Weights(15, 15)
	if math.Abs(w1-v1) > 1e-12 || math.Abs(w2-v2) > 1e-12 || math.Abs(w3-v3) > 1e-12 {
		t.Errorf("weights depend on winding: %v %v %v vs %v %v %v", w1, w2, w3, v1, v2, v3)
	}
}

func TestBarycentricDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c math3d.Vec2
	}{
		{"collinear", math3d.V2(0, 0), math3d.V2(5, 5), math3d.V2(10, 10)},
		{"repeated vertex", math3d.V2(1, 2), math3d.V2(1, 2), math3d.V2(7, 3)},
		{"horizontal line", math3d.V2(0, 4), math3d.V2(3, 4), math3d.V2(9, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := NewBarycentric(tt.a, tt.b, tt.c); ok {
				t.Error("expected degenerate triangle to be rejected")
			}
		})
	}
}
