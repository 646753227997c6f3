// Package imageio decodes texture images without going through the
// image.Decode registry. The tga package registers itself with an empty
// magic string, which claims every input once it is linked in, so formats
// are sniffed here and handed to their decoders directly.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ErrUnknownFormat is returned when data matches no known signature.
var ErrUnknownFormat = errors.New("unknown image format")

type format struct {
	name   string
	match  func([]byte) bool
	decode func(io.Reader) (image.Image, error)
}

func prefix(p string) func([]byte) bool {
	return func(b []byte) bool { return bytes.HasPrefix(b, []byte(p)) }
}

var formats = []format{
	{"png", prefix("\x89PNG\r\n\x1a\n"), png.Decode},
	{"jpeg", prefix("\xff\xd8"), jpeg.Decode},
	{"gif", prefix("GIF8"), gif.Decode},
	{"bmp", prefix("BM"), bmp.Decode},
	{"tiff", func(b []byte) bool {
		return bytes.HasPrefix(b, []byte("II*\x00")) || bytes.HasPrefix(b, []byte("MM\x00*"))
	}, tiff.Decode},
	{"webp", func(b []byte) bool {
		return len(b) >= 12 && string(b[:4]) == "RIFF" && string(b[8:12]) == "WEBP"
	}, webp.Decode},
}

// Decode decodes data and reports the format name. TGA has no signature,
// so it is tried when the caller says the data is TGA or when nothing else
// matches.
func Decode(data []byte, isTGA bool) (image.Image, string, error) {
	if !isTGA {
		for _, f := range formats {
			if f.match(data) {
				img, err := f.decode(bytes.NewReader(data))
				if err != nil {
					return nil, f.name, fmt.Errorf("decode %s: %w", f.name, err)
				}
				return img, f.name, nil
			}
		}
	}

	img, err := tga.Decode(bytes.NewReader(data))
	if err != nil {
		if isTGA {
			return nil, "tga", fmt.Errorf("decode tga: %w", err)
		}
		return nil, "", ErrUnknownFormat
	}
	return img, "tga", nil
}
