package dotfx

import (
	"math"
)

// Positions anchors a gradient to a rectangular region: either two literal
// corner points, or a live BoundsSource read on demand.
type Positions struct {
	corners [2]Point
	source  BoundsSource
}

// Corners anchors a gradient to a fixed rectangle.
func Corners(p0, p1 Point) Positions {
	return Positions{corners: [2]Point{p0, p1}}
}

// Live anchors a gradient to the current bounds of src.
func Live(src BoundsSource) Positions {
	return Positions{source: src}
}

// IsLive reports whether the positions follow a live source.
func (p Positions) IsLive() bool {
	return p.source != nil
}

// Source returns the live source, or nil for literal corners.
func (p Positions) Source() BoundsSource {
	return p.source
}

// Resolve returns the current corners.
func (p Positions) Resolve() (Point, Point) {
	if p.source != nil {
		b := p.source.Bounds()
		return b.Min, b.Max
	}
	return p.corners[0], p.corners[1]
}

// bindingKey is the memo key of a ColorBinding: everything update reads.
type bindingKey struct {
	p0, p1   Point
	rotation float64
	extend   ExtendMode
}

// ColorBinding is a gradient anchored to a rectangular region with an
// optional rotation. A binding whose initial positions are live is
// dynamic: its value is recomputed on every read. Otherwise it is static
// and recomputed only when SetPositions or SetRotation is called.
//
// A ColorBinding is not safe for concurrent use.
type ColorBinding struct {
	kind          GradientKind
	stops         []ColorStop
	initPositions Positions
	positions     Positions
	rotation      float64
	extend        ExtendMode
	dynamic       bool

	value      Brush
	lastChange bindingKey
	hasValue   bool

	// updates counts update calls, builds counts actual recomputations.
	updates int
	builds  int
}

// NewGradient creates a binding of the given kind. rotation is in degrees.
// Whether the binding is dynamic is decided here, from positions.
func NewGradient(kind GradientKind, positions Positions, rotation float64, stops ...ColorStop) *ColorBinding {
	b := &ColorBinding{
		kind:          kind,
		stops:         sortStops(stops),
		initPositions: positions,
		positions:     positions,
		rotation:      normalizeRotation(rotation),
		dynamic:       positions.IsLive(),
	}
	if !b.dynamic {
		b.update()
	}
	return b
}

// NewLinearGradient creates an unrotated linear binding.
func NewLinearGradient(positions Positions, stops ...ColorStop) *ColorBinding {
	return NewGradient(GradientLinear, positions, 0, stops...)
}

// NewRadialGradient creates a radial binding.
func NewRadialGradient(positions Positions, stops ...ColorStop) *ColorBinding {
	return NewGradient(GradientRadial, positions, 0, stops...)
}

// NewConicGradient creates an unrotated conic binding.
func NewConicGradient(positions Positions, stops ...ColorStop) *ColorBinding {
	return NewGradient(GradientConic, positions, 0, stops...)
}

// Kind returns the gradient kind.
func (b *ColorBinding) Kind() GradientKind { return b.kind }

// Stops returns a copy of the color stops, sorted by offset.
func (b *ColorBinding) Stops() []ColorStop {
	return append([]ColorStop(nil), b.stops...)
}

// IsDynamic reports whether the binding recomputes on every read.
func (b *ColorBinding) IsDynamic() bool { return b.dynamic }

// InitPositions returns the positions the binding was created with.
func (b *ColorBinding) InitPositions() Positions { return b.initPositions }

// Positions returns the current positions.
func (b *ColorBinding) Positions() Positions { return b.positions }

// Rotation returns the rotation in degrees, in [0, 360).
func (b *ColorBinding) Rotation() float64 { return b.rotation }

// Extend returns how the gradient continues past its anchor region.
func (b *ColorBinding) Extend() ExtendMode { return b.extend }

// Value returns the resolved brush. Dynamic bindings recompute from their
// live source first; static bindings return the memoized value.
func (b *ColorBinding) Value() Brush {
	if b.dynamic || !b.hasValue {
		return b.update()
	}
	return b.value
}

// SetPositions stores new positions. A static binding recomputes
// immediately; a dynamic one defers to the next Value call.
func (b *ColorBinding) SetPositions(p Positions) {
	b.positions = p
	if !b.dynamic {
		b.update()
	}
}

// SetRotation stores deg rounded to two decimals and normalized into
// [0, 360), with the same eager/lazy recomputation split as SetPositions.
func (b *ColorBinding) SetRotation(deg float64) {
	b.rotation = normalizeRotation(deg)
	if !b.dynamic {
		b.update()
	}
}

// SetExtend sets how linear and radial gradients continue past their
// anchor region. Conic gradients always cover one full turn.
func (b *ColorBinding) SetExtend(mode ExtendMode) {
	b.extend = mode
	if !b.dynamic {
		b.update()
	}
}

// Clone returns an independent copy with the same declaration.
func (b *ColorBinding) Clone() *ColorBinding {
	c := *b
	c.stops = b.Stops()
	c.updates, c.builds = 0, 0
	return &c
}

// update resolves the brush for the current positions and rotation.
// It reads state only and never assigns positions or rotation, so it is
// safe to reach from within Value.
func (b *ColorBinding) update() Brush {
	b.updates++
	p0, p1 := b.positions.Resolve()
	key := bindingKey{p0: p0, p1: p1, rotation: b.rotation, extend: b.extend}
	if b.hasValue && key == b.lastChange {
		return b.value
	}

	b.builds++
	b.value = buildGradient(b.kind, b.stops, p0, p1, b.rotation, b.extend)
	b.lastChange = key
	b.hasValue = true
	Logger().Debug("dotfx: gradient recomputed",
		"kind", b.kind.String(), "dynamic", b.dynamic, "rotation", b.rotation)
	return b.value
}

// buildGradient maps an anchor rectangle and rotation to a brush.
func buildGradient(kind GradientKind, stops []ColorStop, p0, p1 Point, rotation float64, extend ExtendMode) Brush {
	rect := Rect{Min: p0, Max: p1}
	center := rect.Center()
	dx, dy := rect.Size()
	rad := rotation * math.Pi / 180

	switch kind {
	case GradientRadial:
		return &RadialGradientBrush{
			Center:    center,
			EndRadius: math.Max(math.Abs(dx), math.Abs(dy)) / 2,
			Stops:     stops,
			Extend:    extend,
		}
	case GradientConic:
		return &ConicGradientBrush{Center: center, StartAngle: rad, Stops: stops}
	default:
		cos, sin := math.Cos(rad), math.Sin(rad)
		half := (math.Abs(dx*cos) + math.Abs(dy*sin)) / 2
		dir := Pt(cos, sin).Mul(half)
		return &LinearGradientBrush{
			Start:  center.Sub(dir),
			End:    center.Add(dir),
			Stops:  stops,
			Extend: extend,
		}
	}
}

// normalizeRotation rounds to two decimals then wraps into [0, 360).
func normalizeRotation(deg float64) float64 {
	r := math.Mod(math.Round(deg*100)/100, 360)
	if r < 0 {
		r += 360
	}
	if r == 0 || r == 360 {
		return 0
	}
	return r
}

func (b *ColorBinding) declKey() string {
	return bindingIdentity(b)
}
