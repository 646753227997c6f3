// Package config holds the settings shared by the scanline viewers. Values
// come from an optional JSON file, then command-line flags, then defaults.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/models"
	"github.com/taigrr/scanline/pkg/render"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Inputs
	Model   string `json:"model"`
	Texture string `json:"texture"`
	Shape   string `json:"shape"`

	// Output
	Out     string `json:"out"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Upscale int    `json:"upscale"`
	FPS     int    `json:"fps"`

	// Scene
	FOV            float64    `json:"fov"` // degrees
	Light          [3]float64 `json:"light"`
	LightFloor     float64    `json:"light_floor"`
	Background     string     `json:"background"` // "R,G,B"
	ModelSize      float64    `json:"model_size"`
	CameraDistance float64    `json:"camera_distance"`
	LinearDepth    bool       `json:"linear_depth"`
	NoCull         bool       `json:"no_cull"`
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file setting alone.
type Flags struct {
	Model      string
	Texture    string
	Shape      string
	Out        string
	Width      int
	Height     int
	Upscale    int
	FPS        int
	FOV        float64
	Background string
}

// Shapes built in when no model file is given.
const (
	ShapeSphere = "sphere"
	ShapeCube   = "cube"
)

// Default returns a Config with every default filled in.
func Default() Config {
	var c Config
	c.Resolve(Flags{})
	return c
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Paths in the file are relative to the file.
	dir := filepath.Dir(path)
	for _, p := range []*string{&cfg.Model, &cfg.Texture} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
	return cfg, nil
}

// Resolve applies flags over the file values, then fills in anything
// still unset.
func (c *Config) Resolve(flags Flags) {
	if flags.Model != "" {
		c.Model = flags.Model
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Shape != "" {
		c.Shape = flags.Shape
	}
	if flags.Out != "" {
		c.Out = flags.Out
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Upscale > 0 {
		c.Upscale = flags.Upscale
	}
	if flags.FPS > 0 {
		c.FPS = flags.FPS
	}
	if flags.FOV > 0 {
		c.FOV = flags.FOV
	}
	if flags.Background != "" {
		c.Background = flags.Background
	}

	if c.Shape == "" {
		c.Shape = ShapeSphere
	}
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 240
	}
	if c.Upscale <= 0 {
		c.Upscale = 1
	}
	if c.FPS <= 0 {
		c.FPS = 60
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		c.FOV = 90
	}
	if c.Light == [3]float64{} {
		c.Light = [3]float64{-6, 2, -2}
	}
	if c.LightFloor <= 0 {
		c.LightFloor = 0.05
	}
	if c.Background == "" {
		c.Background = "30,30,40"
	}
	if c.ModelSize <= 0 {
		c.ModelSize = 100
	}
	if c.CameraDistance <= 0 {
		c.CameraDistance = 150
	}
}

// Validate reports settings that Resolve cannot repair.
func (c Config) Validate() error {
	switch c.Shape {
	case ShapeSphere, ShapeCube:
	default:
		return fmt.Errorf("config: unknown shape %q", c.Shape)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses the "R,G,B" background setting.
func (c Config) BackgroundColor() (models.Color, error) {
	return ParseColor(c.Background)
}

// ParseColor parses an "R,G,B" triple of 0-255 values.
func ParseColor(s string) (models.Color, error) {
	var r, g, b int
	if n, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil || n != 3 {
		return models.Color{}, fmt.Errorf("config: bad color %q: want R,G,B", s)
	}
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return models.Color{}, fmt.Errorf("config: bad color %q: channel %d out of range", s, v)
		}
	}
	return models.RGB(uint8(r), uint8(g), uint8(b)), nil
}

// CameraPosition places the camera CameraDistance behind the origin on
// the viewing axis.
func (c Config) CameraPosition() math3d.Vec3 {
	return math3d.V3(-c.CameraDistance, 0, 0)
}

// RenderOptions converts the scene settings into renderer options.
// An unparsable background falls back to black; call Validate first.
func (c Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.FOV = c.FOV * math.Pi / 180
	opts.LightDir = math3d.V3(c.Light[0], c.Light[1], c.Light[2])
	opts.LightFloor = c.LightFloor
	opts.LinearDepth = c.LinearDepth
	opts.DisableBackfaceCulling = c.NoCull
	if bg, err := c.BackgroundColor(); err == nil {
		opts.Background = bg
	}
	return opts
}

// LoadOptions returns the model loading options for this config.
func (c Config) LoadOptions() models.LoadOptions {
	opts := models.DefaultLoadOptions()
	opts.FitSize = c.ModelSize
	return opts
}
