package models

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/taigrr/scanline/internal/logging"
	"github.com/taigrr/scanline/pkg/math3d"
)

var (
	// ErrUnsupportedFormat is returned for file extensions no loader handles.
	ErrUnsupportedFormat = errors.New("unsupported model format")
	// ErrNoGeometry is returned when a file parses but yields no triangles.
	ErrNoGeometry = errors.New("model has no triangles")
)

// YUpToScene maps the Y-up, -Z-forward convention of glTF and most OBJ
// exports into the renderer's frame (X forward, Y right, Z down), so a
// model's front faces the default camera. It is a proper rotation and
// preserves winding.
var YUpToScene = math3d.Mat4{
	0, 1, 0, 0,
	0, 0, -1, 0,
	-1, 0, 0, 0,
	0, 0, 0, 1,
}

// LoadOptions controls post-processing applied by Load.
type LoadOptions struct {
	// Scale multiplies every position after the axis remap. Zero means 1.
	Scale float64
	// FitSize, when positive, recenters the model and scales its largest
	// dimension to this size. It is applied after Scale.
	FitSize float64
	// Color is used for vertices the file does not color.
	Color Color
	// KeepAxes skips the YUpToScene remap.
	KeepAxes bool
}

// DefaultLoadOptions returns options for a white model of unit scale.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{Scale: 1, Color: White}
}

// Load reads a model file, choosing the loader by extension.
func Load(path string, opts LoadOptions) (*Mesh, error) {
	mesh, _, err := load(path, opts, false)
	return mesh, err
}

// LoadWithImage is Load that also returns the first image embedded in a
// glTF file, or nil when there is none or the format cannot carry one.
func LoadWithImage(path string, opts LoadOptions) (*Mesh, image.Image, error) {
	return load(path, opts, true)
}

func load(path string, opts LoadOptions, wantImage bool) (*Mesh, image.Image, error) {
	var (
		mesh *Mesh
		img  image.Image
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		if wantImage {
			mesh, img, err = LoadGLBWithTexture(path, opts.Color)
		} else {
			mesh, err = LoadGLTF(path, opts.Color)
		}
	case ".obj":
		mesh, err = LoadOBJ(path, opts.Color)
	default:
		return nil, nil, fmt.Errorf("load %s: %w: %q", path, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, nil, err
	}
	if mesh.TriangleCount() == 0 {
		return nil, nil, fmt.Errorf("load %s: %w", path, ErrNoGeometry)
	}

	opts.apply(mesh)
	logging.Logger().Debug("model loaded", "path", path, "triangles", mesh.TriangleCount(), "size", mesh.Size(), "image", img != nil)
	return mesh, img, nil
}

func (o LoadOptions) apply(m *Mesh) {
	xf := math3d.Identity()
	if !o.KeepAxes {
		xf = YUpToScene
	}
	if o.Scale != 0 && o.Scale != 1 {
		xf = math3d.ScaleUniform(o.Scale).Mul(xf)
	}
	m.Transform(xf)
	if o.FitSize > 0 {
		m.Fit(o.FitSize)
	}
}
