package render

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/scanline/internal/imageio"
	"github.com/taigrr/scanline/pkg/models"
)

// WrapMode determines how texture coordinates outside [0,1] are handled.
type WrapMode int

const (
	WrapRepeat WrapMode = iota // Tile the texture
	WrapClamp                  // Clamp to edge
)

// FilterMode determines how texture sampling is performed.
type FilterMode int

const (
	FilterNearest  FilterMode = iota // Nearest-neighbor (pixelated)
	FilterBilinear                   // Bilinear interpolation (smooth)
)

// Texture is an image sampled by UV coordinates. It implements
// models.Sampler. V = 0 is the bottom row of the image.
type Texture struct {
	Width      int
	Height     int
	Pixels     []Color // Row-major, top row first
	WrapU      WrapMode
	WrapV      WrapMode
	FilterMode FilterMode
}

var _ models.Sampler = (*Texture)(nil)

// NewTexture creates a black texture. Dimensions are raised to at least 1.
func NewTexture(width, height int) *Texture {
	width, height = max(width, 1), max(height, 1)
	return &Texture{
		Width:      width,
		Height:     height,
		Pixels:     make([]Color, width*height),
		WrapU:      WrapRepeat,
		WrapV:      WrapRepeat,
		FilterMode: FilterNearest,
	}
}

// LoadTexture loads a texture from a PNG, JPEG, GIF, TGA, BMP, TIFF or
// WebP file.
func LoadTexture(path string) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}

	isTGA := strings.EqualFold(filepath.Ext(path), ".tga")
	img, format, err := imageio.Decode(data, isTGA)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	tex := TextureFromImage(img)
	Logger().Debug("texture loaded", "path", path, "format", format, "width", tex.Width, "height", tex.Height)
	return tex, nil
}

// TextureFromImage creates a texture from an image.Image. Alpha is dropped.
func TextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	tex := NewTexture(bounds.Dx(), bounds.Dy())

	for y := range bounds.Dy() {
		for x := range bounds.Dx() {
			tex.SetPixel(x, y, models.FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return tex
}

// NewCheckerTexture creates a procedural checkerboard texture.
func NewCheckerTexture(width, height, checkSize int, c1, c2 Color) *Texture {
	checkSize = max(checkSize, 1)
	tex := NewTexture(width, height)
	for y := range tex.Height {
		for x := range tex.Width {
			if (x/checkSize+y/checkSize)%2 == 0 {
				tex.SetPixel(x, y, c1)
			} else {
				tex.SetPixel(x, y, c2)
			}
		}
	}
	return tex
}

// NewGradientTexture creates a horizontal gradient texture.
func NewGradientTexture(width, height int, left, right Color) *Texture {
	tex := NewTexture(width, height)
	for y := range tex.Height {
		for x := range tex.Width {
			t := 0.0
			if tex.Width > 1 {
				t = float64(x) / float64(tex.Width-1)
			}
			tex.SetPixel(x, y, left.Lerp(right, t))
		}
	}
	return tex
}

// SetPixel sets a pixel in the texture.
func (t *Texture) SetPixel(x, y int, c Color) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return
	}
	t.Pixels[y*t.Width+x] = c
}

// GetPixel returns the pixel at (x, y) with bounds checking.
func (t *Texture) GetPixel(x, y int) Color {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return Color{}
	}
	return t.Pixels[y*t.Width+x]
}

// Sample returns the color at (u, v). Coordinates outside [0,1) are
// wrapped or clamped per the texture's wrap modes; NaN samples the origin.
func (t *Texture) Sample(u, v float64) Color {
	if math.IsNaN(u) || math.IsInf(u, 0) {
		u = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	u = wrapCoord(u, t.WrapU)
	v = wrapCoord(v, t.WrapV)

	// Image rows run top-down, V runs bottom-up.
	v = 1 - v

	if t.FilterMode == FilterBilinear {
		return t.sampleBilinear(u, v)
	}
	return t.sampleNearest(u, v)
}

// wrapCoord applies the wrap mode to a coordinate.
func wrapCoord(coord float64, mode WrapMode) float64 {
	switch mode {
	case WrapClamp:
		return math.Max(0, math.Min(1, coord))
	default:
		return coord - math.Floor(coord)
	}
}

// sampleNearest returns the nearest pixel.
func (t *Texture) sampleNearest(u, v float64) Color {
	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)
	return t.GetPixel(x, y)
}

// sampleBilinear returns bilinearly interpolated color.
func (t *Texture) sampleBilinear(u, v float64) Color {
	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := wrapPixelCoord(x0+1, t.Width, t.WrapU)
	y1 := wrapPixelCoord(y0+1, t.Height, t.WrapV)
	x0 = wrapPixelCoord(x0, t.Width, t.WrapU)
	y0 = wrapPixelCoord(y0, t.Height, t.WrapV)

	top := t.GetPixel(x0, y0).Lerp(t.GetPixel(x1, y0), tx)
	bot := t.GetPixel(x0, y1).Lerp(t.GetPixel(x1, y1), tx)
	return top.Lerp(bot, ty)
}

// wrapPixelCoord wraps a pixel coordinate.
func wrapPixelCoord(x, size int, mode WrapMode) int {
	if mode == WrapClamp {
		return min(max(x, 0), size-1)
	}
	x %= size
	if x < 0 {
		x += size
	}
	return x
}
