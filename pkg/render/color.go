package render

import "github.com/taigrr/scanline/pkg/models"

// Color is the pixel type of the frame buffer.
type Color = models.Color

// Colors for convenience.
var (
	ColorBlack   = models.Black
	ColorWhite   = models.White
	ColorRed     = models.Red
	ColorGreen   = models.Green
	ColorBlue    = models.Blue
	ColorYellow  = models.Yellow
	ColorCyan    = models.Cyan
	ColorMagenta = models.Magenta
	ColorGray    = models.Gray
	ColorSky     = models.RGB(135, 206, 235)
	ColorNight   = models.RGB(16, 16, 24)
)

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) Color {
	return models.RGB(r, g, b)
}
