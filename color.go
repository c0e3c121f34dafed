package dotfx

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/dotfx/internal/cache"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for literals it cannot read.
var ErrInvalidColor = errors.New("dotfx: invalid color value")

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements color.Color. Components are alpha-premultiplied.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A)*0xffff + 0.5)
	r = uint32(clamp01(c.R)*clamp01(c.A)*0xffff + 0.5)
	g = uint32(clamp01(c.G)*clamp01(c.A)*0xffff + 0.5)
	b = uint32(clamp01(c.B)*clamp01(c.A)*0xffff + 0.5)
	return r, g, b, a
}

// Color converts RGBA to a non-premultiplied color.NRGBA.
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// String formats the color as a CSS rgba() literal. It is also the
// comparison key used by ColorCapability.
func (c RGBA) String() string {
	n := c.Color()
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", n.R, n.G, n.B,
		strconv.FormatFloat(math.Round(clamp01(c.A)*1000)/1000, 'f', -1, 64))
}

func (c RGBA) declKey() string { return c.String() }

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// ParseColor reads a CSS-style color literal: a named color ("red",
// "transparent"), a hex form ("#rgb", "#rgba", "#rrggbb", "#rrggbbaa") or
// a functional form ("rgb(255,0,0)", "rgba(255,0,0,0.5)").
// Unreadable input yields an error wrapping ErrInvalidColor.
//
// Successfully parsed literals are memoized.
func ParseColor(s string) (RGBA, error) {
	if c, ok := literals.Get(s); ok {
		return c, nil
	}
	c, err := parseLiteral(s)
	if err != nil {
		return RGBA{}, err
	}
	literals.Put(s, c)
	return c, nil
}

// literals memoizes ParseColor. Bindings resolve the same literal on
// every frame.
var literals = cache.New[string, RGBA](256)

func parseLiteral(s string) (RGBA, error) {
	lit := strings.ToLower(strings.TrimSpace(s))
	switch {
	case lit == "":
		return RGBA{}, fmt.Errorf("%w: empty literal", ErrInvalidColor)
	case lit == "transparent":
		return Transparent, nil
	case lit[0] == '#':
		if c, ok := parseHex(lit[1:]); ok {
			return c, nil
		}
	case strings.HasPrefix(lit, "rgb"):
		if c, ok := parseFunctional(lit); ok {
			return c, nil
		}
	default:
		if n, ok := colornames.Map[lit]; ok {
			return FromColor(n), nil
		}
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// Hex creates a color from a hex string, with or without a leading '#'.
// Unreadable input yields opaque black.
func Hex(hex string) RGBA {
	c, ok := parseHex(strings.TrimPrefix(hex, "#"))
	if !ok {
		return Black
	}
	return c
}

func parseHex(hex string) (RGBA, bool) {
	var digits [8]uint64
	for i := 0; i < len(hex) && i < len(digits); i++ {
		d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
		if err != nil {
			return RGBA{}, false
		}
		digits[i] = d
	}

	var r, g, b, a uint64
	a = 255
	switch len(hex) {
	case 3, 4:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
		if len(hex) == 4 {
			a = digits[3] * 17
		}
	case 6, 8:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		if len(hex) == 8 {
			a = digits[6]<<4 | digits[7]
		}
	default:
		return RGBA{}, false
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

// parseFunctional reads rgb(r,g,b) and rgba(r,g,b,a). Channels are 0-255,
// alpha is 0-1.
func parseFunctional(lit string) (RGBA, bool) {
	open, end := strings.IndexByte(lit, '('), strings.LastIndexByte(lit, ')')
	if open < 0 || end < open {
		return RGBA{}, false
	}
	name, args := lit[:open], strings.Split(lit[open+1:end], ",")
	if (name == "rgb" && len(args) != 3) || (name == "rgba" && len(args) != 4) || (name != "rgb" && name != "rgba") {
		return RGBA{}, false
	}

	var v [4]float64
	v[3] = 1
	for i, arg := range args {
		f, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return RGBA{}, false
		}
		v[i] = f
	}
	return RGBA{
		R: clamp255(v[0]) / 255,
		G: clamp255(v[1]) / 255,
		B: clamp255(v[2]) / 255,
		A: clamp01(v[3]),
	}, true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)
