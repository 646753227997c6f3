package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/models"
)

// maxScreenCoord bounds projected coordinates. Anything beyond it comes
// from a vertex grazing the camera plane and would make the edge walker
// crawl through millions of off-screen pixels.
const maxScreenCoord = 1 << 16

// Options configures a Renderer. Zero fields take the DefaultOptions value,
// except the booleans and DepthBias whose zero values are meaningful.
type Options struct {
	// FOV is the horizontal field of view in radians, in (0, π).
	FOV float64
	// LightDir is the direction light travels toward. It is normalized.
	LightDir math3d.Vec3
	// LightFloor is the minimum lighting factor, so unlit faces stay visible.
	LightFloor float64
	// ViewAxis is the camera-space viewing direction used for culling.
	ViewAxis math3d.Vec3
	// DepthBias is how much nearer a sample must be to replace a stored one.
	DepthBias float64
	// LinearDepth interpolates depth and attributes in screen space instead
	// of through inverse depth.
	LinearDepth bool
	// DisableBackfaceCulling rasterizes faces pointing away from the camera.
	DisableBackfaceCulling bool
	// Background is the clear color used by RenderFrame.
	Background Color
}

// DefaultOptions returns a 90° field of view, the light used by the demo
// scenes and a 5% ambient floor.
func DefaultOptions() Options {
	return Options{
		FOV:        math.Pi / 2,
		LightDir:   math3d.V3(-6, 2, -2),
		LightFloor: 0.05,
		ViewAxis:   math3d.Forward(),
		Background: ColorBlack,
	}
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.FOV <= 0 || o.FOV >= math.Pi {
		o.FOV = def.FOV
	}
	if o.LightDir.LenSq() == 0 {
		o.LightDir = def.LightDir
	}
	if o.LightFloor <= 0 {
		o.LightFloor = def.LightFloor
	}
	if o.ViewAxis.LenSq() == 0 {
		o.ViewAxis = def.ViewAxis
	}
	o.LightDir = o.LightDir.Normalize()
	o.ViewAxis = o.ViewAxis.Normalize()
	return o
}

// Renderer rasterizes meshes seen from a camera into a frame buffer.
// It is not safe for concurrent use.
type Renderer struct {
	camera *Camera
	fb     *FrameBuffer
	opts   Options

	// Stats holds the counters of the current frame.
	Stats FrameStats
}

// NewRenderer creates a renderer drawing into fb.
func NewRenderer(camera *Camera, fb *FrameBuffer, opts Options) *Renderer {
	return &Renderer{
		camera: camera,
		fb:     fb,
		opts:   opts.withDefaults(),
	}
}

// Camera returns the camera.
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// SetCamera replaces the camera.
func (r *Renderer) SetCamera(c *Camera) {
	r.camera = c
}

// FrameBuffer returns the target buffer.
func (r *Renderer) FrameBuffer() *FrameBuffer {
	return r.fb
}

// Options returns the effective options, with defaults applied.
func (r *Renderer) Options() Options {
	return r.opts
}

// SetBackground changes the clear color.
func (r *Renderer) SetBackground(c Color) {
	r.opts.Background = c
}

// RenderFrame clears the buffer, resets Stats and draws every mesh.
func (r *Renderer) RenderFrame(meshes ...*models.Mesh) {
	r.fb.Clear(r.opts.Background)
	r.Stats = FrameStats{}
	for _, m := range meshes {
		r.RenderMesh(m)
	}
	Logger().Debug("frame rendered",
		"triangles", r.Stats.Triangles,
		"drawn", r.Stats.Drawn,
		"culled", r.Stats.Culled,
		"out_of_view", r.Stats.OutOfView,
		"degenerate", r.Stats.Degenerate,
		"pixels", r.Stats.PixelsWritten)
}

// RenderMesh draws m without clearing. Each rest-pose triangle is posed
// by the mesh rotation and center on a copy.
func (r *Renderer) RenderMesh(m *models.Mesh) {
	for i := range m.Triangles {
		r.drawTriangle(m.Posed(i), m.Texture)
	}
}

// RenderTriangle draws one rest-pose triangle as if it belonged to m.
func (r *Renderer) RenderTriangle(m *models.Mesh, tri models.Triangle) {
	r.drawTriangle(tri.RotateZYX(m.Rotation).Translate(m.Center), m.Texture)
}

// scale returns the projection scale for the current buffer width.
func (r *Renderer) scale() float64 {
	return float64(r.fb.Width) / 2 / math.Tan(r.opts.FOV/2)
}

// projectView projects a camera-space point. ok is false for points at or
// behind the camera plane and for coordinates too large to rasterize.
func (r *Renderer) projectView(p math3d.Vec3) (s math3d.Vec2, ok bool) {
	if !(p.X > 0) {
		return s, false
	}
	scale := r.scale()
	s.X = p.Y/p.X*scale + float64(r.fb.Width)/2
	s.Y = -p.Z/p.X*scale + float64(r.fb.Height)/2
	if math.Abs(s.X) > maxScreenCoord || math.Abs(s.Y) > maxScreenCoord {
		return s, false
	}
	return s, true
}

// Project maps a world-space point to (unsnapped) screen coordinates and
// returns its camera-space depth.
func (r *Renderer) Project(p math3d.Vec3) (s math3d.Vec2, depth float64, ok bool) {
	v := r.camera.ToView(p)
	s, ok = r.projectView(v)
	return s, v.X, ok
}

// screenVertex is a projected triangle corner.
type screenVertex struct {
	pos   math3d.Vec2 // rounded to whole pixels
	depth float64     // camera-space x
	inv   float64     // 1 / depth
	color Color
	uv    math3d.Vec2
	hasUV bool
}

// prepare runs the per-triangle stages up to and including projection.
// It returns the world-space normal for lighting.
func (r *Renderer) prepare(tri models.Triangle) (sv [3]screenVertex, normal math3d.Vec3, ok bool) {
	r.Stats.Triangles++

	normal, ok = tri.Normal()
	if !ok {
		r.Stats.Degenerate++
		return sv, normal, false
	}
	if !r.opts.DisableBackfaceCulling && r.camera.ViewDir(normal).Dot(r.opts.ViewAxis) >= 0 {
		r.Stats.Culled++
		return sv, normal, false
	}

	for k, v := range tri.Vertices() {
		p := r.camera.ToView(v.Position)
		s, ok := r.projectView(p)
		if !ok {
			r.Stats.OutOfView++
			return sv, normal, false
		}
		sv[k] = screenVertex{
			pos:   math3d.V2(math.Round(s.X), math.Round(s.Y)),
			depth: p.X,
			inv:   1 / p.X,
			color: v.Color,
			uv:    v.UV,
			hasUV: v.HasUV,
		}
	}
	return sv, normal, true
}

// sortByY orders the vertices so that sv[0].pos.Y >= sv[1].pos.Y >= sv[2].pos.Y.
func sortByY(sv *[3]screenVertex) {
	if sv[0].pos.Y < sv[1].pos.Y {
		sv[0], sv[1] = sv[1], sv[0]
	}
	if sv[1].pos.Y < sv[2].pos.Y {
		sv[1], sv[2] = sv[2], sv[1]
	}
	if sv[0].pos.Y < sv[1].pos.Y {
		sv[0], sv[1] = sv[1], sv[0]
	}
}

func (r *Renderer) drawTriangle(tri models.Triangle, tex models.Sampler) {
	sv, normal, ok := r.prepare(tri)
	if !ok {
		return
	}

	sortByY(&sv)
	bc, ok := NewBarycentric(sv[0].pos, sv[1].pos, sv[2].pos)
	if !ok {
		r.Stats.Degenerate++
		return
	}
	r.Stats.Drawn++

	light := max(r.opts.LightDir.Dot(normal), r.opts.LightFloor)
	shade := r.shaderFor(&sv, tex)

	r.scanTriangle(&sv, func(x, y int) {
		w1, w2, w3 := bc.Weights(x, y)
		var depth float64
		if r.opts.LinearDepth {
			depth = w1*sv[0].depth + w2*sv[1].depth + w3*sv[2].depth
		} else {
			inv := w1*sv[0].inv + w2*sv[1].inv + w3*sv[2].inv
			if inv <= 0 {
				return
			}
			depth = 1 / inv
			// Rescale so attribute weights follow the surface, not the screen.
			w1, w2, w3 = w1*sv[0].inv*depth, w2*sv[1].inv*depth, w3*sv[2].inv*depth
		}
		c := shade(w1, w2, w3).Attenuate(light)
		if r.fb.PlotBias(x, y, depth, r.opts.DepthBias, c) {
			r.Stats.PixelsWritten++
		} else {
			r.Stats.PixelsOccluded++
		}
	})
}

// scanTriangle walks the sorted triangle top to bottom and calls plot for
// every covered pixel inside the buffer.
//
// The long edge a→c is walked row by row alongside the short edges a→b and
// then b→c. Each row is filled between the outermost pixels any of those
// edges touches on it, so the vertex rows and flat tops and bottoms need no
// special case. Every edge is traced from its upper end, which gives a
// shared edge the same pixels in both of its triangles.
func (r *Renderer) scanTriangle(sv *[3]screenVertex, plot func(x, y int)) {
	a, b, c := sv[0].pos, sv[1].pos, sv[2].pos
	long := NewEdgeTracer(a, c)
	short := [2]EdgeTracer{NewEdgeTracer(a, b), NewEdgeTracer(b, c)}
	var next [2]edgeRow
	for i := range short {
		next[i] = nextRow(&short[i])
	}

	for {
		y, l0, l1, ok := long.Row()
		if !ok {
			return
		}
		// The long edge bounds one side and the short edges the other.
		// Which side is which does not matter once the outer extremes
		// are taken, and near a vertex the two sides overlap anyway.
		x0, x1 := l0, l1
		for i := range short {
			for next[i].ok && next[i].y == y {
				x0, x1 = min(x0, next[i].x0), max(x1, next[i].x1)
				next[i] = nextRow(&short[i])
			}
		}
		r.fillSpan(y, x0, x1, plot)
	}
}

type edgeRow struct {
	y, x0, x1 int
	ok        bool
}

func nextRow(e *EdgeTracer) edgeRow {
	y, x0, x1, ok := e.Row()
	return edgeRow{y, x0, x1, ok}
}

// fillSpan plots x in [x0, x1] on row y, clipped to the buffer.
func (r *Renderer) fillSpan(y, x0, x1 int, plot func(x, y int)) {
	n := x1 - x0 + 1
	if y < 0 || y >= r.fb.Height {
		r.Stats.PixelsClipped += n
		return
	}
	lo, hi := max(x0, 0), min(x1, r.fb.Width-1)
	if lo > hi {
		r.Stats.PixelsClipped += n
		return
	}
	r.Stats.PixelsClipped += n - (hi - lo + 1)
	for x := lo; x <= hi; x++ {
		plot(x, y)
	}
}
