package render

import (
	"math"
	"testing"
)

func TestFrameBufferRowFlip(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.Set(0, 0, ColorRed)
	fb.Set(3, 2, ColorBlue)

	// y = 0 is the bottom scanline, so it is the last display row.
	if got := fb.Row(2)[0]; got != ColorRed {
		t.Errorf("bottom-left = %v, want red", got)
	}
	if got := fb.Pixels()[3]; got != ColorBlue {
		t.Errorf("top-right = %v, want blue", got)
	}
	if got := fb.At(0, 0); got != ColorRed {
		t.Errorf("At(0,0) = %v", got)
	}
}

func TestFrameBufferClear(t *testing.T) {
	fb := NewFrameBuffer(7, 5)
	if len(fb.Pixels()) != 35 {
		t.Fatalf("len(Pixels) = %d, want 35", len(fb.Pixels()))
	}
	fb.Plot(2, 2, 1, ColorWhite)
	fb.Clear(ColorSky)

	for i, c := range fb.Pixels() {
		if c != ColorSky {
			t.Fatalf("pixel %d = %v after Clear", i, c)
		}
	}
	for y := range fb.Height {
		for x := range fb.Width {
			if d := fb.DepthAt(x, y); !math.IsInf(d, 1) {
				t.Fatalf("depth(%d,%d) = %v after Clear", x, y, d)
			}
		}
	}
	if fb.Covered() != 0 {
		t.Errorf("Covered = %d after Clear", fb.Covered())
	}
}

func TestFrameBufferPlotDepthTest(t *testing.T) {
	fb := NewFrameBuffer(2, 2)

	tests := []struct {
		name  string
		depth float64
		c     Color
		wrote bool
		want  Color
	}{
		{"first sample", 5, ColorRed, true, ColorRed},
		{"farther loses", 6, ColorGreen, false, ColorRed},
		{"equal loses", 5, ColorGreen, false, ColorRed},
		{"nearer wins", 4, ColorBlue, true, ColorBlue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fb.Plot(1, 0, tt.depth, tt.c); got != tt.wrote {
				t.Errorf("Plot = %v, want %v", got, tt.wrote)
			}
			if got := fb.At(1, 0); got != tt.want {
				t.Errorf("color = %v, want %v", got, tt.want)
			}
		})
	}

	if fb.PlotBias(1, 0, 3.95, 0.1, ColorWhite) {
		t.Error("sample within bias should lose")
	}
	if !fb.PlotBias(1, 0, 3.5, 0.1, ColorWhite) {
		t.Error("sample beyond bias should win")
	}
}

func TestFrameBufferBounds(t *testing.T) {
	fb := NewFrameBuffer(3, 3)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {1 << 30, 1}} {
		if fb.Set(p[0], p[1], ColorRed) {
			t.Errorf("Set(%v) succeeded", p)
		}
		if fb.Plot(p[0], p[1], 0, ColorRed) {
			t.Errorf("Plot(%v) succeeded", p)
		}
		if got := fb.At(p[0], p[1]); got != (Color{}) {
			t.Errorf("At(%v) = %v", p, got)
		}
	}
	if fb.Row(3) != nil || fb.Row(-1) != nil {
		t.Error("Row out of range should be nil")
	}

	empty := NewFrameBuffer(-5, 10)
	empty.Clear(ColorRed)
	if empty.Width != 0 || len(empty.Pixels()) != 0 {
		t.Errorf("negative width buffer = %dx%d", empty.Width, empty.Height)
	}
}

func TestFrameBufferResize(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Clear(ColorRed)
	fb.Resize(2, 2)
	if fb.At(0, 0) != ColorRed {
		t.Error("same-size Resize should keep contents")
	}
	fb.Resize(5, 4)
	if fb.Width != 5 || fb.Height != 4 || len(fb.Pixels()) != 20 {
		t.Errorf("Resize = %dx%d (%d px)", fb.Width, fb.Height, len(fb.Pixels()))
	}
	if !math.IsInf(fb.DepthAt(4, 3), 1) {
		t.Error("resized depth not cleared")
	}
}

func TestFrameBufferDrawLine(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.DrawLine(1, 1, 8, 1, ColorGreen)

	for x := 1; x <= 8; x++ {
		if fb.At(x, 1) != ColorGreen {
			t.Errorf("pixel (%d,1) not drawn", x)
		}
	}
	if fb.At(0, 1) != ColorBlack || fb.At(9, 1) != ColorBlack {
		t.Error("line overshoots its endpoints")
	}

	// Clipped lines must not panic.
	fb.DrawLine(-20, -20, 30, 30, ColorRed)
	if fb.At(5, 5) != ColorRed {
		t.Error("clipped diagonal missing interior pixel")
	}
}

func TestFrameBufferDrawRect(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.DrawRect(2, 2, 10, 10, ColorYellow)
	want := 4
	got := 0
	for _, c := range fb.Pixels() {
		if c == ColorYellow {
			got++
		}
	}
	if got != want {
		t.Errorf("rect covered %d pixels, want %d", got, want)
	}
}

func BenchmarkFrameBufferClear(b *testing.B) {
	fb := NewFrameBuffer(320, 200)
	for b.Loop() {
		fb.Clear(ColorSky)
	}
}
