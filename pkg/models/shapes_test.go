package models

import "testing"

func TestShapesFaceOutward(t *testing.T) {
	tests := []struct {
		name string
		mesh *Mesh
		tris int
	}{
		{"cube", NewCube(2, CubePalette), 12},
		{"sphere", NewUVSphere(50, 12, 24, White), 2 * 24 * 11},
		{"clamped sphere", NewUVSphere(1, 0, 0, White), 2 * 3 * 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.TriangleCount(); got != tt.tris {
				t.Errorf("TriangleCount = %d, want %d", got, tt.tris)
			}
			for i, tri := range tt.mesh.Triangles {
				n, ok := tri.Normal()
				if !ok {
					t.Fatalf("triangle %d is degenerate", i)
				}
				if n.Dot(tri.Centroid()) <= 0 {
					t.Errorf("triangle %d faces inward", i)
				}
			}
		})
	}
}

func TestSphereRadius(t *testing.T) {
	m := NewUVSphere(50, 16, 32, White)
	for _, tri := range m.Triangles {
		for _, v := range tri.Vertices() {
			if d := v.Position.Len(); d < 50-1e-9 || d > 50+1e-9 {
				t.Fatalf("vertex at distance %v, want 50", d)
			}
		}
	}
}
