// Package viewer holds the interactive state shared by the terminal and
// window front ends: the scene, key handling and spin.
package viewer

import (
	"fmt"
	"math/rand/v2"

	"github.com/taigrr/scanline/internal/config"
	"github.com/taigrr/scanline/internal/logging"
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/models"
	"github.com/taigrr/scanline/pkg/render"
)

// Key step sizes.
const (
	spinStep      = 0.02 // radians per frame added to the spin velocity
	randomSpin    = 0.15
	cameraStep    = 0.5
	cameraTurnRad = 0.05
)

// WireColor is the line color of wireframe mode.
var WireColor = models.RGB(0, 255, 128)

// Viewer owns a mesh, the renderer drawing it and the view toggles.
type Viewer struct {
	Mesh     *models.Mesh
	Renderer *render.Renderer
	// Texture is applied to the mesh while texturing is enabled.
	Texture models.Sampler

	Wireframe bool
	textured  bool

	spin    *Spin
	frames  int
	total   render.FrameStats
	homePos math3d.Vec3
	homeRot math3d.Vec3
}

// New creates a viewer for mesh. The camera's current pose becomes the
// pose R returns to.
func New(mesh *models.Mesh, r *render.Renderer, fps int) *Viewer {
	cam := r.Camera()
	v := &Viewer{
		Mesh:     mesh,
		Renderer: r,
		Texture:  mesh.Texture,
		textured: true,
		spin:     NewSpin(fps),
		homePos:  cam.Position,
		homeRot:  cam.Rotation,
	}
	return v
}

// FromConfig loads the configured model, or builds the configured shape,
// and sets up a renderer of the given size around it.
func FromConfig(cfg config.Config, width, height int) (*Viewer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mesh, err := loadMesh(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Texture != "" {
		tex, err := render.LoadTexture(cfg.Texture)
		if err != nil {
			return nil, fmt.Errorf("load texture: %w", err)
		}
		mesh.Texture = tex
	}
	if mesh.Texture == nil && hasUVs(mesh) && cfg.Shape != config.ShapeCube {
		mesh.Texture = render.NewCheckerTexture(64, 64, 8, render.RGB(200, 200, 200), render.RGB(100, 100, 100))
	}

	cam := render.NewCamera(cfg.CameraPosition())
	fb := render.NewFrameBuffer(width, height)
	r := render.NewRenderer(cam, fb, cfg.RenderOptions())

	logging.Logger().Info("scene ready",
		"mesh", mesh.Name,
		"triangles", mesh.TriangleCount(),
		"textured", mesh.Texture != nil,
		"width", width,
		"height", height)
	return New(mesh, r, cfg.FPS), nil
}

func loadMesh(cfg config.Config) (*models.Mesh, error) {
	if cfg.Model == "" {
		switch cfg.Shape {
		case config.ShapeCube:
			return models.NewCube(cfg.ModelSize, models.CubePalette), nil
		default:
			return models.NewUVSphere(cfg.ModelSize/2, 24, 48, models.White), nil
		}
	}

	mesh, img, err := models.LoadWithImage(cfg.Model, cfg.LoadOptions())
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if img != nil {
		mesh.Texture = render.TextureFromImage(img)
	}
	return mesh, nil
}

func hasUVs(m *models.Mesh) bool {
	for _, t := range m.Triangles {
		if t.A.HasUV && t.B.HasUV && t.C.HasUV {
			return true
		}
	}
	return false
}

// Camera returns the renderer's camera.
func (v *Viewer) Camera() *render.Camera {
	return v.Renderer.Camera()
}

// Textured reports whether texturing is enabled.
func (v *Viewer) Textured() bool {
	return v.textured
}

// Spin returns the mesh spin state.
func (v *Viewer) Spin() *Spin {
	return v.spin
}

// Apply performs a. It reports false once a asks to quit.
func (v *Viewer) Apply(a Action) bool {
	cam := v.Camera()
	switch a {
	case ActionSpinYUp:
		v.spin.Impulse(math3d.V3(0, spinStep, 0))
	case ActionSpinYDown:
		v.spin.Impulse(math3d.V3(0, -spinStep, 0))
	case ActionSpinZLeft:
		v.spin.Impulse(math3d.V3(0, 0, spinStep))
	case ActionSpinZRight:
		v.spin.Impulse(math3d.V3(0, 0, -spinStep))
	case ActionSpinXLeft:
		v.spin.Impulse(math3d.V3(spinStep, 0, 0))
	case ActionSpinXRight:
		v.spin.Impulse(math3d.V3(-spinStep, 0, 0))
	case ActionCameraForward:
		cam.Position.X += cameraStep
	case ActionCameraBack:
		cam.Position.X -= cameraStep
	case ActionCameraTurnLeft:
		cam.Rotation.Z += cameraTurnRad
	case ActionCameraTurnRight:
		cam.Rotation.Z -= cameraTurnRad
	case ActionRandomSpin:
		v.spin.Impulse(math3d.V3(
			(rand.Float64()-0.5)*randomSpin,
			(rand.Float64()-0.5)*randomSpin,
			(rand.Float64()-0.5)*randomSpin,
		))
	case ActionReset:
		v.Reset()
	case ActionToggleTexture:
		v.textured = !v.textured
	case ActionToggleWireframe:
		v.Wireframe = !v.Wireframe
	case ActionQuit:
		return false
	}
	if a != ActionNone {
		logging.Logger().Debug("action", "action", a.String())
	}
	return true
}

// Reset stops the spin, restores the rest pose and the home camera.
func (v *Viewer) Reset() {
	v.spin.Reset()
	v.Mesh.ResetRotation()
	cam := v.Camera()
	cam.SetPosition(v.homePos)
	cam.SetRotation(v.homeRot)
}

// Step advances the spin by one frame.
func (v *Viewer) Step() {
	v.Mesh.Rotate(v.spin.Step())
}

// Frame renders the current view and returns its statistics. They are
// also added to the running totals.
func (v *Viewer) Frame() render.FrameStats {
	stats := v.render()
	v.frames++
	v.total.Add(stats)
	return stats
}

func (v *Viewer) render() render.FrameStats {
	r := v.Renderer
	if v.Wireframe {
		r.FrameBuffer().Clear(r.Options().Background)
		r.Stats = render.FrameStats{}
		r.RenderWireframe(v.Mesh, WireColor)
		return r.Stats
	}

	v.Mesh.Texture = nil
	if v.textured {
		v.Mesh.Texture = v.Texture
	}
	r.RenderFrame(v.Mesh)
	return r.Stats
}

// Totals returns the number of frames rendered and their summed statistics.
func (v *Viewer) Totals() (int, render.FrameStats) {
	return v.frames, v.total
}

// LogTotals logs the running totals at info level.
func (v *Viewer) LogTotals() {
	logging.Logger().Info("session totals",
		"frames", v.frames, "stats", v.total.String(), "skipped", v.total.Skipped())
}

// Resize changes the frame buffer size, for terminal or window resizes.
func (v *Viewer) Resize(width, height int) {
	v.Renderer.FrameBuffer().Resize(width, height)
}

// Save renders a frame and writes it to path as PNG or WebP, enlarged
// upscale times.
func (v *Viewer) Save(path string, upscale int) error {
	stats := v.Frame()
	if err := render.Save(path, v.Renderer.FrameBuffer().Scaled(upscale)); err != nil {
		return err
	}
	logging.Logger().Info("frame written", "path", path, "stats", stats.String(), "skipped", stats.Skipped())
	return nil
}
