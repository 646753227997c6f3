package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// minArea is the smallest |den| treated as a real triangle. Projected
// vertices are snapped to pixels, so any non-collinear triangle has
// |den| >= 1.
const minArea = 1e-9

// Barycentric evaluates barycentric weights of a fixed screen triangle.
type Barycentric struct {
	a, b, c math3d.Vec2
	invDen  float64
}

// NewBarycentric precomputes the inverse signed area of triangle abc.
// ok is false for (near) zero-area triangles, which have no stable weights.
func NewBarycentric(a, b, c math3d.Vec2) (bc Barycentric, ok bool) {
	den := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if math.Abs(den) < minArea {
		return Barycentric{}, false
	}
	return Barycentric{a: a, b: b, c: c, invDen: 1 / den}, true
}

// Weights returns the weights of a, b and c at pixel (x, y). They sum to
// one; all three are non-negative only inside the triangle.
func (bc Barycentric) Weights(x, y int) (w1, w2, w3 float64) {
	return bc.WeightsAt(math3d.V2(float64(x), float64(y)))
}

// WeightsAt is Weights for a non-integer point.
func (bc Barycentric) WeightsAt(p math3d.Vec2) (w1, w2, w3 float64) {
	a, b, c := bc.a, bc.b, bc.c
	w1 = ((b.Y-c.Y)*(p.X-c.X) + (c.X-b.X)*(p.Y-c.Y)) * bc.invDen
	w2 = ((c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y)) * bc.invDen
	return w1, w2, 1 - w1 - w2
}
