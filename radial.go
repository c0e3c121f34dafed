package dotfx

import "math"

// DefaultRadius is used when a derived radius yields no value.
const DefaultRadius = 5.0

// CircularTolerance is the multiplier used by IsWithin when circular
// detection is requested with a multiplier of exactly 1. It enlarges the
// hit circle by 2.5% so edge hits on small dots register.
const CircularTolerance = 1.025

// RadiusFunc derives an initial radius from the parent (or the entity
// itself when it has none) and the entity. ok false means no value.
type RadiusFunc func(parent, self *Entity) (r float64, ok bool)

// RadiusInit declares an initial radius: a fixed value or a RadiusFunc.
type RadiusInit struct {
	value float64
	fn    RadiusFunc
}

// FixedRadius declares a literal initial radius.
func FixedRadius(r float64) RadiusInit {
	return RadiusInit{value: r}
}

// DerivedRadius declares an initial radius computed at initialization.
func DerivedRadius(fn RadiusFunc) RadiusInit {
	return RadiusInit{fn: fn}
}

// IsDerived reports whether the radius comes from a function.
func (ri RadiusInit) IsDerived() bool { return ri.fn != nil }

// Value returns the literal radius; zero for derived radii.
func (ri RadiusInit) Value() float64 { return ri.value }

// resolve evaluates the declaration.
func (ri RadiusInit) resolve(parent, self *Entity) float64 {
	if ri.fn == nil {
		return ri.value
	}
	r, ok := ri.fn(parent, self)
	if !ok || math.IsNaN(r) {
		return DefaultRadius
	}
	return r
}

// Radial is the radius record of an entity. The current radius is never
// negative.
type Radial struct {
	init   RadiusInit
	radius float64
}

// Radius returns the current radius.
func (r *Radial) Radius() float64 { return r.radius }

// SetRadius sets the current radius, clamping negatives to 0.
func (r *Radial) SetRadius(v float64) {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	r.radius = v
}

// InitRadius returns the initial radius declaration.
func (r *Radial) InitRadius() RadiusInit { return r.init }

// SetInitRadius replaces the declaration. It only affects later
// initializations; the current radius is untouched.
func (r *Radial) SetInitRadius(ri RadiusInit) { r.init = ri }

// Edges are distances from a box to the four edges of a surface.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// boxAround returns the inclusive box of half-size r centered at p.
func boxAround(p Point, r float64) Rect {
	return Rect{Min: Pt(p.X-r, p.Y-r), Max: Pt(p.X+r, p.Y+r)}
}

// withinBox reports whether p lies in b, boundaries included.
func withinBox(p Point, b Rect) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// hitMultiplier maps a circular detection argument to a radius multiplier.
func hitMultiplier(circularDetection float64) float64 {
	if circularDetection == 1 {
		return CircularTolerance
	}
	return circularDetection
}
