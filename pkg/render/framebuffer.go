// Package render rasterizes triangle meshes into a color and depth buffer
// on the CPU and hands the result to terminal, window or image sinks.
package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// FrameBuffer is a color grid with a parallel depth grid.
//
// Coordinates passed to its methods have y = 0 at the bottom scanline.
// Storage is kept in display order, top row first, so Pixels can be blitted
// directly: (x, y) lives at index (Height-1-y)*Width + x.
type FrameBuffer struct {
	Width  int
	Height int

	pixels []Color
	depth  []float64
}

// NewFrameBuffer creates a cleared frame buffer. Non-positive dimensions
// yield an empty buffer.
func NewFrameBuffer(width, height int) *FrameBuffer {
	width, height = max(width, 0), max(height, 0)
	fb := &FrameBuffer{
		Width:  width,
		Height: height,
		pixels: make([]Color, width*height),
		depth:  make([]float64, width*height),
	}
	fb.ClearDepth()
	return fb
}

// Resize reallocates the buffer if the size changed, then clears it to black.
func (fb *FrameBuffer) Resize(width, height int) {
	if width == fb.Width && height == fb.Height {
		return
	}
	*fb = *NewFrameBuffer(width, height)
}

// Clear fills every pixel with c and resets depth to +Inf.
func (fb *FrameBuffer) Clear(c Color) {
	if len(fb.pixels) == 0 {
		return
	}
	// Fill with doubling copies.
	fb.pixels[0] = c
	for filled := 1; filled < len(fb.pixels); filled *= 2 {
		copy(fb.pixels[filled:], fb.pixels[:filled])
	}
	fb.ClearDepth()
}

// ClearDepth resets every depth sample to +Inf.
func (fb *FrameBuffer) ClearDepth() {
	if len(fb.depth) == 0 {
		return
	}
	fb.depth[0] = math.Inf(1)
	for filled := 1; filled < len(fb.depth); filled *= 2 {
		copy(fb.depth[filled:], fb.depth[:filled])
	}
}

// InBounds reports whether (x, y) addresses a pixel.
func (fb *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// index maps bottom-origin coordinates to storage. Callers check bounds.
func (fb *FrameBuffer) index(x, y int) int {
	return (fb.Height-1-y)*fb.Width + x
}

// Set writes c at (x, y) without touching depth.
// It returns false if the pixel is out of bounds.
func (fb *FrameBuffer) Set(x, y int, c Color) bool {
	if !fb.InBounds(x, y) {
		return false
	}
	fb.pixels[fb.index(x, y)] = c
	return true
}

// Plot writes c and depth at (x, y) if depth is nearer than the stored
// sample. It returns false when the pixel is out of bounds or occluded.
func (fb *FrameBuffer) Plot(x, y int, depth float64, c Color) bool {
	return fb.PlotBias(x, y, depth, 0, c)
}

// PlotBias is Plot with the new sample required to be nearer by more than
// bias. Equal depths never overwrite, so redrawing is idempotent.
func (fb *FrameBuffer) PlotBias(x, y int, depth, bias float64, c Color) bool {
	if !fb.InBounds(x, y) {
		return false
	}
	i := fb.index(x, y)
	if !(depth+bias < fb.depth[i]) {
		return false
	}
	fb.depth[i] = depth
	fb.pixels[i] = c
	return true
}

// At returns the color at (x, y), or black if out of bounds.
func (fb *FrameBuffer) At(x, y int) Color {
	if !fb.InBounds(x, y) {
		return Color{}
	}
	return fb.pixels[fb.index(x, y)]
}

// DepthAt returns the stored depth at (x, y), or +Inf if out of bounds.
func (fb *FrameBuffer) DepthAt(x, y int) float64 {
	if !fb.InBounds(x, y) {
		return math.Inf(1)
	}
	return fb.depth[fb.index(x, y)]
}

// Pixels returns the color grid in display order: the first Width entries
// are the top scanline. The slice aliases the buffer.
func (fb *FrameBuffer) Pixels() []Color {
	return fb.pixels
}

// Row returns display row r (0 is the top of the image).
func (fb *FrameBuffer) Row(r int) []Color {
	if r < 0 || r >= fb.Height {
		return nil
	}
	return fb.pixels[r*fb.Width : (r+1)*fb.Width]
}

// Covered counts pixels that hold a depth sample.
func (fb *FrameBuffer) Covered() int {
	n := 0
	for _, d := range fb.depth {
		if !math.IsInf(d, 1) {
			n++
		}
	}
	return n
}

// DrawLine draws a line between two pixels with the edge walker, ignoring depth.
func (fb *FrameBuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	fb.Set(x0, y0, c)
	e := NewEdgeTracer(math3d.V2(float64(x0), float64(y0)), math3d.V2(float64(x1), float64(y1)))
	for {
		p, ok := e.StepOnce()
		if !ok {
			return
		}
		fb.Set(p.X, p.Y, c)
	}
}

// DrawRect draws a filled rectangle with its lower-left corner at (x, y).
func (fb *FrameBuffer) DrawRect(x, y, w, h int, c Color) {
	for py := max(y, 0); py < min(y+h, fb.Height); py++ {
		for px := max(x, 0); px < min(x+w, fb.Width); px++ {
			fb.pixels[fb.index(px, py)] = c
		}
	}
}
