package render

import (
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/models"
)

// RenderWireframe draws the edges of every front-facing triangle of m in
// color c. Lines ignore and do not write depth.
func (r *Renderer) RenderWireframe(m *models.Mesh, c Color) {
	for i := range m.Triangles {
		sv, _, ok := r.prepare(m.Posed(i))
		if !ok {
			continue
		}
		r.Stats.Drawn++
		for k := range 3 {
			p, q := sv[k].pos, sv[(k+1)%3].pos
			r.fb.DrawLine(int(p.X), int(p.Y), int(q.X), int(q.Y), c)
		}
	}
}

// DrawAxes draws the world X (red), Y (green) and Z (blue) axes of the
// given length from origin. Axes crossing the camera plane are skipped.
func (r *Renderer) DrawAxes(origin math3d.Vec3, length float64) {
	axes := [3]struct {
		dir math3d.Vec3
		c   Color
	}{
		{math3d.V3(1, 0, 0), ColorRed},
		{math3d.V3(0, 1, 0), ColorGreen},
		{math3d.V3(0, 0, 1), ColorBlue},
	}
	o, _, ok := r.Project(origin)
	if !ok {
		return
	}
	for _, a := range axes {
		e, _, ok := r.Project(origin.Add(a.dir.Scale(length)))
		if !ok {
			continue
		}
		r.fb.DrawLine(int(o.X), int(o.Y), int(e.X), int(e.Y), a.c)
	}
}
