package models

import (
	"github.com/taigrr/scanline/pkg/math3d"
)

// Vertex holds the attributes carried by a triangle corner.
type Vertex struct {
	Position math3d.Vec3
	Color    Color
	UV       math3d.Vec2
	HasUV    bool
}

// V creates an untextured vertex.
func V(p math3d.Vec3, c Color) Vertex {
	return Vertex{Position: p, Color: c}
}

// VT creates a textured vertex.
func VT(p math3d.Vec3, c Color, uv math3d.Vec2) Vertex {
	return Vertex{Position: p, Color: c, UV: uv, HasUV: true}
}

// Triangle is three vertices in winding order. The order a, b, c fixes the
// normal direction; front faces are counter-clockwise seen from outside.
type Triangle struct {
	A, B, C Vertex
}

// Tri creates a triangle.
func Tri(a, b, c Vertex) Triangle {
	return Triangle{a, b, c}
}

// Vertices returns the three corners in order.
func (t Triangle) Vertices() [3]Vertex {
	return [3]Vertex{t.A, t.B, t.C}
}

// mapPositions returns a copy of t with f applied to every position.
func (t Triangle) mapPositions(f func(math3d.Vec3) math3d.Vec3) Triangle {
	t.A.Position = f(t.A.Position)
	t.B.Position = f(t.B.Position)
	t.C.Position = f(t.C.Position)
	return t
}

// RotateX returns t rotated about the X axis.
func (t Triangle) RotateX(angle float64) Triangle {
	return t.mapPositions(func(p math3d.Vec3) math3d.Vec3 { return p.RotateX(angle) })
}

// RotateY returns t rotated about the Y axis.
func (t Triangle) RotateY(angle float64) Triangle {
	return t.mapPositions(func(p math3d.Vec3) math3d.Vec3 { return p.RotateY(angle) })
}

// RotateZ returns t rotated about the Z axis.
func (t Triangle) RotateZ(angle float64) Triangle {
	return t.mapPositions(func(p math3d.Vec3) math3d.Vec3 { return p.RotateZ(angle) })
}

// RotateZYX returns t rotated by r in z, y, x order.
func (t Triangle) RotateZYX(r math3d.Vec3) Triangle {
	if r == (math3d.Vec3{}) {
		return t
	}
	return t.mapPositions(func(p math3d.Vec3) math3d.Vec3 { return p.RotateZYX(r) })
}

// Translate returns t moved by d.
func (t Triangle) Translate(d math3d.Vec3) Triangle {
	return t.mapPositions(func(p math3d.Vec3) math3d.Vec3 { return p.Add(d) })
}

// Transform returns t with m applied to every position.
func (t Triangle) Transform(m math3d.Mat4) Triangle {
	return t.mapPositions(m.MulVec3)
}

// minNormalLen is the cross product length below which a triangle has no
// usable normal.
const minNormalLen = 1e-12

// Normal returns the unit normal (a-b) × (a-c). ok is false when the
// triangle has (near) zero area, in which case the normal is undefined.
func (t Triangle) Normal() (n math3d.Vec3, ok bool) {
	ab := t.A.Position.Sub(t.B.Position)
	ac := t.A.Position.Sub(t.C.Position)
	n = ab.Cross(ac)
	l := n.Len()
	if l < minNormalLen {
		return math3d.Vec3{}, false
	}
	return n.Div(l), true
}

// LongLeft reports whether, in a triangle already projected to screen space
// (X, Y) and sorted so that A.Y >= B.Y >= C.Y, the full-height edge A→C lies
// to the left of B. It is the signed area test det(a-b, a-c) <= 0.
func (t Triangle) LongLeft() bool {
	a := math3d.V2(t.A.Position.X, t.A.Position.Y)
	b := math3d.V2(t.B.Position.X, t.B.Position.Y)
	c := math3d.V2(t.C.Position.X, t.C.Position.Y)
	return a.Sub(b).Det(a.Sub(c)) <= 0
}

// Centroid returns the average of the three positions.
func (t Triangle) Centroid() math3d.Vec3 {
	return t.A.Position.Add(t.B.Position).Add(t.C.Position).Scale(1.0 / 3)
}
