package math3d

import "math"

// Vec2 is a 2D floating point vector, used for screen positions and texture coordinates.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Det returns the 2D cross product (signed parallelogram area) of a and b.
func (a Vec2) Det(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Len returns the length of the vector.
func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// Floor returns the integer point below a.
func (a Vec2) Floor() Vec2i {
	return Vec2i{int(math.Floor(a.X)), int(math.Floor(a.Y))}
}

// Vec2i is an integer pixel coordinate.
type Vec2i struct {
	X, Y int
}

// Vec2 converts p to floating point.
func (p Vec2i) Vec2() Vec2 {
	return Vec2{float64(p.X), float64(p.Y)}
}

// Sub returns p - q.
func (p Vec2i) Sub(q Vec2i) Vec2i {
	return Vec2i{p.X - q.X, p.Y - q.Y}
}

// Det returns the integer 2D cross product of p and q.
func (p Vec2i) Det(q Vec2i) int {
	return p.X*q.Y - p.Y*q.X
}
