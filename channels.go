package dotfx

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV returns hue in degrees [0, 360), saturation and brightness in [0, 1].
func (c RGBA) HSV() (h, s, v float64) {
	h, s, v = colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hsv()
	if h >= 360 {
		h = 0
	}
	return h, s, v
}

// HSV creates an opaque color from hue (degrees), saturation and
// brightness. Hue wraps; saturation and brightness are clamped to [0, 1].
func HSV(h, s, v float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	col := colorful.Hsv(h, clamp01(s), clamp01(v))
	return RGB(col.R, col.G, col.B)
}

// WithHue returns the color with its hue replaced, keeping saturation,
// brightness and alpha.
func (c RGBA) WithHue(h float64) RGBA {
	_, s, v := c.HSV()
	return HSV(h, s, v).WithAlpha(c.A)
}

// WithSaturation returns the color with its saturation replaced.
func (c RGBA) WithSaturation(s float64) RGBA {
	h, _, v := c.HSV()
	return HSV(h, s, v).WithAlpha(c.A)
}

// WithBrightness returns the color with its brightness (HSV value) replaced.
func (c RGBA) WithBrightness(v float64) RGBA {
	h, s, _ := c.HSV()
	return HSV(h, s, v).WithAlpha(c.A)
}

// lerpLinear interpolates two colors in linear RGB space, which keeps
// gradient midpoints from darkening. Alpha is interpolated directly.
func lerpLinear(c1, c2 RGBA, t float64) RGBA {
	a := colorful.Color{R: clamp01(c1.R), G: clamp01(c1.G), B: clamp01(c1.B)}
	b := colorful.Color{R: clamp01(c2.R), G: clamp01(c2.G), B: clamp01(c2.B)}
	m := a.BlendLinearRgb(b, t)
	return RGBA{R: m.R, G: m.G, B: m.B, A: c1.A + (c2.A-c1.A)*t}
}
