package dotfx

import "math"

// Entity is a positioned object with a radius. Capabilities are attached
// records rather than base types: the radius lives in a Radial and an
// optional color in a ColorCapability.
//
// Example:
//
//	dot := dotfx.NewEntity(dotfx.Pt(100, 100),
//	    dotfx.WithInitRadius(dotfx.FixedRadius(10)),
//	    dotfx.WithColor(dotfx.Literal("steelblue")))
//	dot.Initialize()
//	hit := dot.IsWithin(mouse, 1)
//
// An Entity is not safe for concurrent use.
type Entity struct {
	pos     Point
	anchor  Point
	parent  *Entity
	surface Surface

	radial Radial
	color  *ColorCapability

	initialized bool
}

// NewEntity creates an entity at pos. Its radius stays 0 until Initialize.
func NewEntity(pos Point, opts ...EntityOption) *Entity {
	o := defaultEntityOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Entity{
		pos:     pos,
		anchor:  o.anchor,
		parent:  o.parent,
		surface: o.surface,
		radial:  Radial{init: o.initRadius},
	}
	if o.hasColor {
		e.color = NewColorCapability(e, o.color)
		e.color.SetSurface(o.surface)
	}
	return e
}

// Initialize resolves the radius from the initial declaration, calling a
// RadiusFunc with (parent or self, self), and resolves the initial color
// if a color capability is attached. Calling it again recomputes both from
// the original declarations, not from current values.
func (e *Entity) Initialize() {
	parent := e.parent
	if parent == nil {
		parent = e
	}
	e.radial.SetRadius(e.radial.init.resolve(parent, e))
	if e.color != nil {
		e.color.Initialize()
	}
	e.initialized = true
}

// Initialized reports whether Initialize has run.
func (e *Entity) Initialized() bool { return e.initialized }

// X returns the horizontal position.
func (e *Entity) X() float64 { return e.pos.X }

// Y returns the vertical position.
func (e *Entity) Y() float64 { return e.pos.Y }

// Pos returns the position.
func (e *Entity) Pos() Point { return e.pos }

// SetPos moves the entity. Dynamic gradients anchored to it follow on
// their next read.
func (e *Entity) SetPos(p Point) { e.pos = p }

// AnchorPos returns the anchor position, the origin offsets are taken from.
func (e *Entity) AnchorPos() Point { return e.anchor }

// Parent returns the parent entity, or nil.
func (e *Entity) Parent() *Entity { return e.parent }

// Surface returns the surface the entity is drawn on, or nil.
func (e *Entity) Surface() Surface { return e.surface }

// Radial returns the radius record.
func (e *Entity) Radial() *Radial { return &e.radial }

// Color returns the attached color capability, or nil.
func (e *Entity) Color() *ColorCapability { return e.color }

// AttachColor attaches a color capability with the given initial color,
// replacing any existing one. It resolves immediately if the entity is
// already initialized.
func (e *Entity) AttachColor(initColor ColorDecl) *ColorCapability {
	e.color = NewColorCapability(e, initColor)
	e.color.SetSurface(e.surface)
	if e.initialized {
		e.color.Initialize()
	}
	return e.color
}

// Radius returns the current radius.
func (e *Entity) Radius() float64 { return e.radial.Radius() }

// SetRadius sets the current radius; negatives clamp to 0.
func (e *Entity) SetRadius(r float64) { e.radial.SetRadius(r) }

// InitRadius returns the initial radius declaration.
func (e *Entity) InitRadius() RadiusInit { return e.radial.InitRadius() }

// SetInitRadius replaces the initial declaration for later Initialize calls.
func (e *Entity) SetInitRadius(ri RadiusInit) { e.radial.SetInitRadius(ri) }

// Top returns the top edge of the entity's box.
func (e *Entity) Top() float64 { return e.pos.Y - e.radial.radius }

// Bottom returns the bottom edge of the entity's box.
func (e *Entity) Bottom() float64 { return e.pos.Y + e.radial.radius }

// Left returns the left edge of the entity's box.
func (e *Entity) Left() float64 { return e.pos.X - e.radial.radius }

// Right returns the right edge of the entity's box.
func (e *Entity) Right() float64 { return e.pos.X + e.radial.radius }

// Width returns the box width, twice the current radius.
func (e *Entity) Width() float64 { return 2 * e.radial.radius }

// Height returns the box height, twice the current radius.
func (e *Entity) Height() float64 { return 2 * e.radial.radius }

// Bounds returns the current bounding box. It makes an entity a live
// anchor for gradients.
func (e *Entity) Bounds() Rect {
	return boxAround(e.pos, e.radial.radius)
}

// IsWithin reports whether pos hits the entity. An undefined coordinate
// never hits. With circularDetection 0 or NaN the test is the inclusive
// bounding box; otherwise it is distance <= radius*multiplier, where the
// multiplier is circularDetection, or CircularTolerance when it is 1.
func (e *Entity) IsWithin(pos Point, circularDetection float64) bool {
	if !pos.IsDefined() {
		return false
	}
	if circularDetection == 0 || math.IsNaN(circularDetection) {
		return withinBox(pos, e.Bounds())
	}
	return pos.Distance(e.pos) <= e.radial.radius*hitMultiplier(circularDetection)
}

// PosDistances returns the distances from an entity-sized box centered at
// pos to the edges of the entity's surface. Without a surface, the surface
// is treated as 0x0.
func (e *Entity) PosDistances(pos Point) Edges {
	var sw, sh float64
	if e.surface != nil {
		sw, sh = float64(e.surface.Width()), float64(e.surface.Height())
	}
	half := e.radial.radius
	return Edges{
		Top:    pos.Y - half,
		Right:  sw - (pos.X + half),
		Bottom: sh - (pos.Y + half),
		Left:   pos.X - half,
	}
}
