package render

import (
	"math"
	"testing"

	"github.com/taigrr/scanline/pkg/math3d"
)

func TestCameraViewRoundTrip(t *testing.T) {
	c := NewCamera(math3d.V3(-10, 2, 3))
	c.SetRotation(math3d.V3(0.2, -0.4, 1.3))

	p := math3d.V3(4, -5, 6)
	if got := c.ToWorld(c.ToView(p)); !got.ApproxEqual(p, 1e-12) {
		t.Errorf("round trip = %v, want %v", got, p)
	}
}

func TestCameraForward(t *testing.T) {
	c := NewCamera(math3d.V3(0, 0, 0))
	if got := c.Forward(); !got.ApproxEqual(math3d.V3(1, 0, 0), 1e-12) {
		t.Errorf("default forward = %v", got)
	}

	c.Rotate(math3d.V3(0, 0, math.Pi/2))
	// The point straight ahead in view space is where MoveForward goes.
	c.MoveForward(3)
	ahead := c.ToView(c.Position.Add(c.Forward()))
	if !ahead.ApproxEqual(math3d.V3(1, 0, 0), 1e-12) {
		t.Errorf("forward in view space = %v, want +X", ahead)
	}
	if !c.Position.ApproxEqual(math3d.V3(0, -3, 0), 1e-12) {
		t.Errorf("position = %v", c.Position)
	}
}

func TestCameraMove(t *testing.T) {
	c := NewCamera(math3d.V3(1, 1, 1))
	c.Move(math3d.V3(0.5, 0, -1))
	c.SetPosition(c.Position.Add(math3d.V3(0, 1, 0)))
	if c.Position != math3d.V3(1.5, 2, 0) {
		t.Errorf("position = %v", c.Position)
	}
	if v := c.ToView(c.Position); v != (math3d.Vec3{}) {
		t.Errorf("camera position in view space = %v", v)
	}
}
