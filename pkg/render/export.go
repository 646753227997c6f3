package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// ToImage copies the frame buffer into an RGBA image, top row first.
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, c := range fb.pixels {
		o := i * 4
		img.Pix[o] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = 255
	}
	return img
}

// Scaled returns the frame as an image enlarged factor times with
// nearest-neighbor sampling, keeping pixels crisp.
func (fb *FrameBuffer) Scaled(factor int) *image.RGBA {
	src := fb.ToImage()
	if factor <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, fb.Width*factor, fb.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG writes the frame to a PNG file.
func (fb *FrameBuffer) SavePNG(path string) error {
	return saveImage(path, fb.ToImage(), "png")
}

// SaveWebP writes the frame to a lossless WebP file.
func (fb *FrameBuffer) SaveWebP(path string) error {
	return saveImage(path, fb.ToImage(), "webp")
}

// Save writes img to path, choosing PNG or WebP by extension.
func Save(path string, img image.Image) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return saveImage(path, img, "png")
	case ".webp":
		return saveImage(path, img, "webp")
	default:
		return fmt.Errorf("save %s: unsupported image format %q", path, ext)
	}
}

func saveImage(path string, img image.Image, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	switch format {
	case "webp":
		err = nativewebp.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	Logger().Debug("frame saved", "path", path, "format", format)
	return nil
}
