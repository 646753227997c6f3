package viewer

import (
	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/scanline/pkg/math3d"
)

// axis is one rotation axis whose velocity decays toward zero on a
// critically damped spring.
type axis struct {
	velocity float64
	accel    float64 // spring velocity of velocity
	spring   harmonica.Spring
}

func newAxis(fps int) axis {
	// Frequency 4 settles in well under a second without overshoot.
	return axis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *axis) step() float64 {
	d := a.velocity
	a.velocity, a.accel = a.spring.Update(a.velocity, a.accel, 0)
	return d
}

// Spin turns key presses into smoothly decaying mesh rotation.
type Spin struct {
	x, y, z axis
	fps     int
}

// NewSpin creates a spin at rest, stepped fps times per second.
func NewSpin(fps int) *Spin {
	fps = max(fps, 1)
	return &Spin{x: newAxis(fps), y: newAxis(fps), z: newAxis(fps), fps: fps}
}

// Impulse adds to the per-frame angular velocity about each axis.
func (s *Spin) Impulse(d math3d.Vec3) {
	s.x.velocity += d.X
	s.y.velocity += d.Y
	s.z.velocity += d.Z
}

// Step returns the rotation to apply this frame and decays the velocity.
func (s *Spin) Step() math3d.Vec3 {
	return math3d.V3(s.x.step(), s.y.step(), s.z.step())
}

// Velocity returns the current per-frame angular velocity.
func (s *Spin) Velocity() math3d.Vec3 {
	return math3d.V3(s.x.velocity, s.y.velocity, s.z.velocity)
}

// Reset stops all rotation.
func (s *Spin) Reset() {
	*s = *NewSpin(s.fps)
}
