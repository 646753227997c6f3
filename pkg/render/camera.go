package render

import (
	"github.com/taigrr/scanline/pkg/math3d"
)

// Camera is a viewpoint looking down its local +X axis.
//
// The view transform subtracts Position and then rotates by Rotation in
// z, y, x order. Rotation therefore turns the world around the camera:
// a positive Rotation.Z swings world points toward +Y, which reads on
// screen as the camera turning left.
type Camera struct {
	Position math3d.Vec3
	Rotation math3d.Vec3
}

// NewCamera creates a camera at pos with no rotation.
func NewCamera(pos math3d.Vec3) *Camera {
	return &Camera{Position: pos}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
}

// SetRotation sets the view rotation in radians.
func (c *Camera) SetRotation(r math3d.Vec3) {
	c.Rotation = r
}

// Move translates the camera in world space.
func (c *Camera) Move(d math3d.Vec3) {
	c.Position = c.Position.Add(d)
}

// Rotate adds to the view rotation.
func (c *Camera) Rotate(d math3d.Vec3) {
	c.Rotation = c.Rotation.Add(d)
}

// MoveForward moves along the current viewing direction.
func (c *Camera) MoveForward(dist float64) {
	c.Move(c.Forward().Scale(dist))
}

// Forward returns the world-space viewing direction.
func (c *Camera) Forward() math3d.Vec3 {
	return math3d.Forward().InverseRotateZYX(c.Rotation)
}

// ToView transforms a world-space point into camera space.
func (c *Camera) ToView(p math3d.Vec3) math3d.Vec3 {
	return p.Sub(c.Position).RotateZYX(c.Rotation)
}

// ToWorld is the inverse of ToView.
func (c *Camera) ToWorld(p math3d.Vec3) math3d.Vec3 {
	return p.InverseRotateZYX(c.Rotation).Add(c.Position)
}

// ViewDir rotates a world-space direction into camera space.
func (c *Camera) ViewDir(d math3d.Vec3) math3d.Vec3 {
	return d.RotateZYX(c.Rotation)
}
