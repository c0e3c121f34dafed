package dotfx

import (
	"fmt"
	"strings"
)

// ColorDecl is a color declaration accepted by ColorCapability.SetColor.
// This is a sealed interface implemented by:
//   - RGBA: a literal color
//   - Literal: a CSS-style color string, parsed on assignment
//   - ColorFunc: computed from the surface and the owner on assignment
//   - *ColorBinding: an anchored gradient, stored as is
//   - *GradientTemplate: bound to the owner on assignment
type ColorDecl interface {
	declKey() string
}

// Literal is a CSS-style color string such as "#ff0", "rgba(0,0,0,0.5)"
// or "steelblue". See ParseColor.
type Literal string

func (l Literal) declKey() string {
	return strings.ToLower(strings.TrimSpace(string(l)))
}

// ColorFunc computes a declaration from the drawing surface and the owner
// of the capability. It is evaluated each time it is assigned.
type ColorFunc func(s Surface, owner BoundsSource) ColorDecl

func (ColorFunc) declKey() string { return "" }

func bindingIdentity(b *ColorBinding) string {
	return fmt.Sprintf("binding:%p", b)
}

type colorState int

const (
	colorUnset colorState = iota
	colorSolid
	colorBinding
	colorInvalid
)

// ColorCapability attaches a color to an owner. It keeps the raw
// declaration and its resolved value, and skips re-resolution when the
// same declaration is assigned again, so a live dynamic binding survives
// per-frame reassignment.
//
// Invalid literals do not fail: they are kept, logged, and resolve to no
// brush, which leaves a surface's current style untouched when applied.
//
// A ColorCapability is not safe for concurrent use.
type ColorCapability struct {
	owner   BoundsSource
	surface Surface

	initColor ColorDecl
	decl      ColorDecl
	key       string

	state   colorState
	solid   RGBA
	binding *ColorBinding

	recomputes int
}

// NewColorCapability creates a capability owned by owner (which may be
// nil). initColor is resolved by Initialize.
func NewColorCapability(owner BoundsSource, initColor ColorDecl) *ColorCapability {
	return &ColorCapability{owner: owner, initColor: initColor}
}

// SetSurface sets the surface passed to ColorFunc declarations.
func (c *ColorCapability) SetSurface(s Surface) { c.surface = s }

// InitColor returns the declaration Initialize resolves.
func (c *ColorCapability) InitColor() ColorDecl { return c.initColor }

// SetInitColor replaces the declaration used by future Initialize calls.
func (c *ColorCapability) SetInitColor(d ColorDecl) { c.initColor = d }

// Initialize resolves the initial declaration, discarding any current value.
func (c *ColorCapability) Initialize() {
	c.state = colorUnset
	c.SetColor(c.initColor)
}

// SetColor assigns a declaration.
//
// Pre: none. Post: if d describes the same declaration as the current one
// and a value exists, nothing changes (Recomputes is not incremented).
// Otherwise d is resolved: templates are bound to the owner, functions are
// evaluated, literals are parsed.
func (c *ColorCapability) SetColor(d ColorDecl) {
	if d == nil {
		c.decl, c.key, c.state, c.binding = nil, "", colorUnset, nil
		return
	}
	_, isFunc := d.(ColorFunc)
	key := d.declKey()
	if !isFunc && c.state != colorUnset && key == c.key {
		return
	}

	c.decl, c.key = d, key
	c.recomputes++
	c.resolve(d, true)
}

// resolve sets the resolved value for d. A function result is resolved
// once more, but never another function.
func (c *ColorCapability) resolve(d ColorDecl, allowFunc bool) {
	c.binding = nil
	switch v := d.(type) {
	case RGBA:
		c.state, c.solid = colorSolid, v
	case Literal:
		col, err := ParseColor(string(v))
		if err != nil {
			c.state = colorInvalid
			Logger().Warn("dotfx: color left unresolved", "literal", string(v), "err", err)
			return
		}
		c.state, c.solid = colorSolid, col
	case *ColorBinding:
		if v == nil {
			c.state = colorInvalid
			return
		}
		c.state, c.binding = colorBinding, v
	case *GradientTemplate:
		if v == nil {
			c.state = colorInvalid
			return
		}
		if c.owner == nil {
			c.state = colorInvalid
			Logger().Warn("dotfx: gradient template has no owner to bind to", "template", v.String())
			return
		}
		c.state, c.binding = colorBinding, v.BindTo(c.owner)
	case ColorFunc:
		if !allowFunc || v == nil {
			c.state = colorInvalid
			Logger().Warn("dotfx: color function did not produce a color")
			return
		}
		res := v(c.surface, c.owner)
		if res == nil {
			c.state = colorInvalid
			Logger().Warn("dotfx: color function did not produce a color")
			return
		}
		c.resolve(res, false)
	}
	Logger().Debug("dotfx: color resolved", "decl", c.key)
}

// Color returns the resolved brush, or nil if nothing valid is assigned.
// Dynamic bindings are recomputed by this call.
func (c *ColorCapability) Color() Brush {
	switch c.state {
	case colorSolid:
		return Solid(c.solid)
	case colorBinding:
		return c.binding.Value()
	default:
		return nil
	}
}

// ColorObject returns the resolved object: an RGBA, a *ColorBinding, or
// nil when unset or invalid.
func (c *ColorCapability) ColorObject() ColorDecl {
	switch c.state {
	case colorSolid:
		return c.solid
	case colorBinding:
		return c.binding
	default:
		return nil
	}
}

// Declaration returns the raw declaration last assigned.
func (c *ColorCapability) Declaration() ColorDecl { return c.decl }

// Binding returns the held binding, or nil for solid colors.
func (c *ColorCapability) Binding() *ColorBinding { return c.binding }

// Valid reports whether the current declaration resolved to a brush.
func (c *ColorCapability) Valid() bool {
	return c.state == colorSolid || c.state == colorBinding
}

// Recomputes returns how many assignments actually re-resolved the color.
func (c *ColorCapability) Recomputes() int { return c.recomputes }

// RGBA returns the resolved solid color. ok is false when a gradient or
// nothing valid is held.
func (c *ColorCapability) RGBA() (col RGBA, ok bool) {
	if c.state != colorSolid {
		return RGBA{}, false
	}
	return c.solid, true
}

// Channel accessors read and write the resolved solid color. They read 0
// and ignore writes while a gradient is held. Writes never touch the
// declaration.

// R returns the red channel in [0, 1].
func (c *ColorCapability) R() float64 { col, _ := c.RGBA(); return col.R }

// G returns the green channel in [0, 1].
func (c *ColorCapability) G() float64 { col, _ := c.RGBA(); return col.G }

// B returns the blue channel in [0, 1].
func (c *ColorCapability) B() float64 { col, _ := c.RGBA(); return col.B }

// A returns the alpha channel in [0, 1].
func (c *ColorCapability) A() float64 { col, _ := c.RGBA(); return col.A }

// Hue returns the hue of the resolved color in degrees.
func (c *ColorCapability) Hue() float64 {
	col, ok := c.RGBA()
	if !ok {
		return 0
	}
	h, _, _ := col.HSV()
	return h
}

// Saturation returns the HSV saturation of the resolved color in [0, 1].
func (c *ColorCapability) Saturation() float64 {
	col, ok := c.RGBA()
	if !ok {
		return 0
	}
	_, s, _ := col.HSV()
	return s
}

// Brightness returns the HSV value of the resolved color in [0, 1].
func (c *ColorCapability) Brightness() float64 {
	col, ok := c.RGBA()
	if !ok {
		return 0
	}
	_, _, v := col.HSV()
	return v
}

// SetR sets the red channel, clamped to [0, 1].
func (c *ColorCapability) SetR(v float64) { c.mutate(func(col RGBA) RGBA { col.R = clamp01(v); return col }) }

// SetG sets the green channel, clamped to [0, 1].
func (c *ColorCapability) SetG(v float64) { c.mutate(func(col RGBA) RGBA { col.G = clamp01(v); return col }) }

// SetB sets the blue channel, clamped to [0, 1].
func (c *ColorCapability) SetB(v float64) { c.mutate(func(col RGBA) RGBA { col.B = clamp01(v); return col }) }

// SetA sets the alpha channel, clamped to [0, 1].
func (c *ColorCapability) SetA(v float64) { c.mutate(func(col RGBA) RGBA { col.A = clamp01(v); return col }) }

// SetHue replaces the hue of the resolved color.
func (c *ColorCapability) SetHue(h float64) { c.mutate(func(col RGBA) RGBA { return col.WithHue(h) }) }

// SetSaturation replaces the saturation of the resolved color.
func (c *ColorCapability) SetSaturation(s float64) {
	c.mutate(func(col RGBA) RGBA { return col.WithSaturation(s) })
}

// SetBrightness replaces the brightness of the resolved color.
func (c *ColorCapability) SetBrightness(v float64) {
	c.mutate(func(col RGBA) RGBA { return col.WithBrightness(v) })
}

func (c *ColorCapability) mutate(f func(RGBA) RGBA) {
	if c.state != colorSolid {
		return
	}
	c.solid = f(c.solid)
}
