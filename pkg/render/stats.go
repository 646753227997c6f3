package render

import "fmt"

// FrameStats counts what happened to the triangles and pixels of a frame.
// Skipped work is never an error; these counters are the only record of it.
type FrameStats struct {
	Triangles  int // triangles submitted
	Culled     int // facing away from the camera
	OutOfView  int // a vertex at or behind the camera plane, or projected out of range
	Degenerate int // zero area, in world or screen space
	Drawn      int // reached scan conversion

	PixelsWritten  int // passed the depth test
	PixelsOccluded int // failed the depth test
	PixelsClipped  int // span pixels outside the buffer
}

// Add accumulates o into s.
func (s *FrameStats) Add(o FrameStats) {
	s.Triangles += o.Triangles
	s.Culled += o.Culled
	s.OutOfView += o.OutOfView
	s.Degenerate += o.Degenerate
	s.Drawn += o.Drawn
	s.PixelsWritten += o.PixelsWritten
	s.PixelsOccluded += o.PixelsOccluded
	s.PixelsClipped += o.PixelsClipped
}

// Skipped returns the number of triangles that produced no pixels.
func (s FrameStats) Skipped() int {
	return s.Culled + s.OutOfView + s.Degenerate
}

func (s FrameStats) String() string {
	return fmt.Sprintf("tris %d drawn %d culled %d offview %d degenerate %d px %d",
		s.Triangles, s.Drawn, s.Culled, s.OutOfView, s.Degenerate, s.PixelsWritten)
}
