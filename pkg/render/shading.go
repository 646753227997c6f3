package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/models"
)

// shadeFunc returns the unlit color of a pixel from its attribute weights.
type shadeFunc func(w1, w2, w3 float64) Color

// shaderFor picks the shading variant of a triangle once, before any
// pixel is visited. Texturing needs a sampler and UVs on all three corners;
// anything else falls back to blending vertex colors.
func (r *Renderer) shaderFor(sv *[3]screenVertex, tex models.Sampler) shadeFunc {
	if tex != nil && sv[0].hasUV && sv[1].hasUV && sv[2].hasUV {
		return textureShader(sv, tex)
	}
	return vertexShader(sv)
}

func vertexShader(sv *[3]screenVertex) shadeFunc {
	c0, c1, c2 := sv[0].color, sv[1].color, sv[2].color
	if c0 == c1 && c1 == c2 {
		return func(_, _, _ float64) Color { return c0 }
	}
	return func(w1, w2, w3 float64) Color {
		return models.Blend3(c0, c1, c2, w1, w2, w3)
	}
}

func textureShader(sv *[3]screenVertex, tex models.Sampler) shadeFunc {
	t0, t1, t2 := sv[0].uv, sv[1].uv, sv[2].uv
	return func(w1, w2, w3 float64) Color {
		u := w1*t0.X + w2*t1.X + w3*t2.X
		v := w1*t0.Y + w2*t1.Y + w3*t2.Y
		return tex.Sample(wrapUnit(u), wrapUnit(v))
	}
}

// wrapUnit maps a texture coordinate into [0, 1). A positive whole number
// such as 1 keeps the far edge instead of wrapping to the near one.
func wrapUnit(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	f := x - math.Floor(x)
	if f >= 1 {
		f = 0
	}
	if f == 0 && x > 0 {
		return lastUnit
	}
	return f
}

// lastUnit is the largest float64 below 1.
var lastUnit = math.Nextafter(1, 0)
