package render

import "github.com/taigrr/scanline/pkg/math3d"

// EdgeTracer walks the integer points of a line segment with Bresenham's
// error accumulator, one step per call. It is a value type; make one per
// edge and drop it when the edge is done.
type EdgeTracer struct {
	cur, end math3d.Vec2i
	dx, dy   int
	sx, sy   int
	err      int
	finished bool // Row has reported the end point
}

// NewEdgeTracer starts a walk from from to to. Both endpoints are floored
// to pixel coordinates.
func NewEdgeTracer(from, to math3d.Vec2) EdgeTracer {
	start, end := from.Floor(), to.Floor()
	e := EdgeTracer{
		cur: start,
		end: end,
		dx:  abs(end.X - start.X),
		dy:  -abs(end.Y - start.Y),
		sx:  1,
		sy:  1,
	}
	if start.X > end.X {
		e.sx = -1
	}
	if start.Y > end.Y {
		e.sy = -1
	}
	e.err = e.dx + e.dy
	return e
}

// Current returns the point the tracer is on.
func (e *EdgeTracer) Current() math3d.Vec2i {
	return e.cur
}

// Done reports whether the end point has been reached.
func (e *EdgeTracer) Done() bool {
	return e.cur == e.end
}

// StepOnce advances one point along the line and returns it.
// ok is false once the end point has already been reached.
func (e *EdgeTracer) StepOnce() (p math3d.Vec2i, ok bool) {
	if e.cur == e.end {
		return e.cur, false
	}
	e2 := 2 * e.err
	if e2 >= e.dy {
		e.err += e.dy
		e.cur.X += e.sx
	}
	if e2 <= e.dx {
		e.err += e.dx
		e.cur.Y += e.sy
	}
	return e.cur, true
}

// StepConstant steps until the y coordinate changes and returns the first
// point on the new row. ok is false if the edge ends first.
func (e *EdgeTracer) StepConstant() (p math3d.Vec2i, ok bool) {
	y := e.cur.Y
	for {
		p, ok = e.StepOnce()
		if !ok || p.Y != y {
			return p, ok
		}
	}
}

// Row reports the x extent of every point on the tracer's current row and
// moves on to the first point of the next row. A shallow edge covers
// several pixels per row; a span that stops at the first of them would
// leave a gap against the neighbouring triangle. ok is false once the last
// row has been reported.
func (e *EdgeTracer) Row() (y, x0, x1 int, ok bool) {
	if e.finished {
		return 0, 0, 0, false
	}
	y, x0, x1 = e.cur.Y, e.cur.X, e.cur.X
	for {
		p, more := e.StepOnce()
		if !more {
			e.finished = true
			return y, x0, x1, true
		}
		if p.Y != y {
			return y, x0, x1, true
		}
		x0, x1 = min(x0, p.X), max(x1, p.X)
	}
}

// Points returns every point after the start, up to and including the end.
func (e EdgeTracer) Points() []math3d.Vec2i {
	pts := make([]math3d.Vec2i, 0, max(e.dx, -e.dy))
	for {
		p, ok := e.StepOnce()
		if !ok {
			return pts
		}
		pts = append(pts, p)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
