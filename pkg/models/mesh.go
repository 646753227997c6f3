// Package models provides the triangle mesh data model and its loaders.
//
// A Mesh keeps its triangles in rest pose. Rotation is accumulated on the
// mesh and re-applied to copies of the rest pose each frame, so repeated
// rotation never drifts the stored geometry.
package models

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// Sampler looks up a color for normalized texture coordinates.
// The renderer wraps coordinates into [0, 1) before every call, so
// implementations only see that range. Sample must be pure.
type Sampler interface {
	Sample(u, v float64) Color
}

// Mesh is a renderable triangle list with an object transform.
type Mesh struct {
	Name      string
	Triangles []Triangle

	// Center is added after rotation.
	Center math3d.Vec3
	// Rotation is the accumulated rotation in radians, applied z, y, x.
	Rotation math3d.Vec3
	// Texture is optional. Nil means vertex colors are used.
	Texture Sampler
}

// NewMesh creates a mesh from rest-pose triangles.
func NewMesh(name string, tris []Triangle) *Mesh {
	return &Mesh{
		Name:      name,
		Triangles: tris,
	}
}

// RotateX accumulates a rotation about the X axis.
func (m *Mesh) RotateX(angle float64) {
	m.Rotation.X = wrapAngle(m.Rotation.X + angle)
}

// RotateY accumulates a rotation about the Y axis.
func (m *Mesh) RotateY(angle float64) {
	m.Rotation.Y = wrapAngle(m.Rotation.Y + angle)
}

// RotateZ accumulates a rotation about the Z axis.
func (m *Mesh) RotateZ(angle float64) {
	m.Rotation.Z = wrapAngle(m.Rotation.Z + angle)
}

// Rotate accumulates a rotation on all three axes.
func (m *Mesh) Rotate(delta math3d.Vec3) {
	m.RotateX(delta.X)
	m.RotateY(delta.Y)
	m.RotateZ(delta.Z)
}

// ResetRotation returns the mesh to its rest orientation.
func (m *Mesh) ResetRotation() {
	m.Rotation = math3d.Vec3{}
}

// Translate moves the mesh center.
func (m *Mesh) Translate(d math3d.Vec3) {
	m.Center = m.Center.Add(d)
}

// wrapAngle keeps accumulated angles in (-2π, 2π) so long sessions do not
// lose precision. Values already in range are returned untouched.
func wrapAngle(a float64) float64 {
	if a > 2*math.Pi || a < -2*math.Pi {
		return math.Mod(a, 2*math.Pi)
	}
	return a
}

// Posed returns triangle i with the mesh rotation and center applied.
// The stored triangle is not modified.
func (m *Mesh) Posed(i int) Triangle {
	return m.Triangles[i].RotateZYX(m.Rotation).Translate(m.Center)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Textured reports whether the mesh has a texture and UVs to use it with.
func (m *Mesh) Textured() bool {
	if m.Texture == nil {
		return false
	}
	for _, t := range m.Triangles {
		if t.A.HasUV && t.B.HasUV && t.C.HasUV {
			return true
		}
	}
	return false
}

// Bounds returns the axis-aligned bounding box of the rest pose.
func (m *Mesh) Bounds() (lo, hi math3d.Vec3) {
	if len(m.Triangles) == 0 {
		return
	}
	lo = m.Triangles[0].A.Position
	hi = lo
	for _, t := range m.Triangles {
		for _, v := range t.Vertices() {
			lo = lo.Min(v.Position)
			hi = hi.Max(v.Position)
		}
	}
	return lo, hi
}

// Size returns the dimensions of the rest-pose bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	lo, hi := m.Bounds()
	return hi.Sub(lo)
}

// Transform bakes mat into the rest pose.
// Mirroring transforms swap b and c so front faces stay front faces.
func (m *Mesh) Transform(mat math3d.Mat4) {
	flip := mat.Determinant3() < 0
	for i, t := range m.Triangles {
		t = t.Transform(mat)
		if flip {
			t.B, t.C = t.C, t.B
		}
		m.Triangles[i] = t
	}
}

// Fit recenters the rest pose on the origin and scales it uniformly so its
// largest dimension equals size.
func (m *Mesh) Fit(size float64) {
	lo, hi := m.Bounds()
	ext := hi.Sub(lo)
	largest := math.Max(ext.X, math.Max(ext.Y, ext.Z))
	if largest == 0 {
		return
	}
	center := lo.Add(hi).Scale(0.5)
	m.Transform(math3d.ScaleUniform(size / largest).Mul(math3d.Translate(center.Negate())))
}

// SetColor paints every vertex with c.
func (m *Mesh) SetColor(c Color) {
	for i := range m.Triangles {
		m.Triangles[i].A.Color = c
		m.Triangles[i].B.Color = c
		m.Triangles[i].C.Color = c
	}
}

// Clone creates a deep copy of the mesh. The texture is shared.
func (m *Mesh) Clone() *Mesh {
	clone := *m
	clone.Triangles = make([]Triangle, len(m.Triangles))
	copy(clone.Triangles, m.Triangles)
	return &clone
}
