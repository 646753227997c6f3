package models

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// NewUVSphere builds a latitude/longitude sphere centered on the origin
// with its poles on the Z axis. Triangles face outward and carry UVs.
// rings is clamped to at least 2 and segments to at least 3.
func NewUVSphere(radius float64, rings, segments int, c Color) *Mesh {
	rings = max(rings, 2)
	segments = max(segments, 3)

	point := func(i, j int) Vertex {
		theta := math.Pi * float64(i) / float64(rings)
		phi := 2 * math.Pi * float64(j) / float64(segments)
		st, ct := math.Sincos(theta)
		sp, cp := math.Sincos(phi)
		return VT(
			math3d.V3(radius*st*cp, radius*st*sp, radius*ct),
			c,
			math3d.V2(float64(j)/float64(segments), 1-float64(i)/float64(rings)),
		)
	}

	tris := make([]Triangle, 0, 2*segments*(rings-1))
	for i := range rings {
		for j := range segments {
			p00, p10 := point(i, j), point(i+1, j)
			p11, p01 := point(i+1, j+1), point(i, j+1)
			// The first and last rings collapse to a pole; drop the
			// zero-area half of each quad there.
			if i != rings-1 {
				tris = append(tris, Tri(p00, p10, p11))
			}
			if i != 0 {
				tris = append(tris, Tri(p00, p11, p01))
			}
		}
	}
	return NewMesh("sphere", tris)
}

// cubeFaces lists, per face, a corner and two edges whose cross product
// points out of the cube. Coordinates are for a cube of side 2.
var cubeFaces = [6]struct{ p, u, v math3d.Vec3 }{
	{math3d.V3(1, -1, -1), math3d.V3(0, 2, 0), math3d.V3(0, 0, 2)},   // +X
	{math3d.V3(-1, -1, -1), math3d.V3(0, 0, 2), math3d.V3(0, 2, 0)},  // -X
	{math3d.V3(-1, 1, -1), math3d.V3(0, 0, 2), math3d.V3(2, 0, 0)},   // +Y
	{math3d.V3(-1, -1, -1), math3d.V3(2, 0, 0), math3d.V3(0, 0, 2)},  // -Y
	{math3d.V3(-1, -1, 1), math3d.V3(2, 0, 0), math3d.V3(0, 2, 0)},   // +Z
	{math3d.V3(-1, -1, -1), math3d.V3(0, 2, 0), math3d.V3(2, 0, 0)},  // -Z
}

// CubePalette is the default per-face coloring for NewCube.
var CubePalette = [6]Color{Red, Cyan, Green, Magenta, Blue, Yellow}

// NewCube builds an origin-centered cube with edge length size. Each face
// is colored from palette and mapped to the full [0,1] UV square.
func NewCube(size float64, palette [6]Color) *Mesh {
	h := size / 2
	tris := make([]Triangle, 0, 12)
	for i, f := range cubeFaces {
		p, u, v := f.p.Scale(h), f.u.Scale(h), f.v.Scale(h)
		c := palette[i]
		a := VT(p, c, math3d.V2(0, 0))
		b := VT(p.Add(u), c, math3d.V2(1, 0))
		cc := VT(p.Add(u).Add(v), c, math3d.V2(1, 1))
		d := VT(p.Add(v), c, math3d.V2(0, 1))
		tris = append(tris, Tri(a, b, cc), Tri(a, cc, d))
	}
	return NewMesh("cube", tris)
}
