package models

import (
	"image/color"
	"math"
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// Common colors.
var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Gray    = Color{128, 128, 128}
	Yellow  = Color{255, 255, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
)

// clampChannel rounds v and clamps it into [0,255].
func clampChannel(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Attenuate scales every channel by s. Results saturate at 0 and 255.
func (c Color) Attenuate(s float64) Color {
	return Color{
		clampChannel(float64(c.R) * s),
		clampChannel(float64(c.G) * s),
		clampChannel(float64(c.B) * s),
	}
}

// Modulate multiplies two colors channel by channel.
func (c Color) Modulate(o Color) Color {
	return Color{
		uint8(uint16(c.R) * uint16(o.R) / 255),
		uint8(uint16(c.G) * uint16(o.G) / 255),
		uint8(uint16(c.B) * uint16(o.B) / 255),
	}
}

// Lerp interpolates between c and o by t.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		clampChannel(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		clampChannel(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		clampChannel(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

// Blend3 returns w1*a + w2*b + w3*c, clamped per channel.
func Blend3(a, b, c Color, w1, w2, w3 float64) Color {
	return Color{
		clampChannel(float64(a.R)*w1 + float64(b.R)*w2 + float64(c.R)*w3),
		clampChannel(float64(a.G)*w1 + float64(b.G)*w2 + float64(c.G)*w3),
		clampChannel(float64(a.B)*w1 + float64(b.B)*w2 + float64(c.B)*w3),
	}
}

// RGBA converts to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// Uint32 packs the color as 0x00RRGGBB.
func (c Color) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
