package dotfx

import "math"

// Point represents a 2D position. A NaN coordinate marks it as undefined,
// which hit-tests treat as "nowhere".
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Undefined returns a point with both coordinates undefined.
// Pointer code uses it while the pointer is outside the surface.
func Undefined() Point {
	return Point{X: math.NaN(), Y: math.NaN()}
}

// IsDefined reports whether both coordinates are defined.
func (p Point) IsDefined() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Swap returns the point with its coordinates exchanged.
func (p Point) Swap() Point {
	return Point{X: p.Y, Y: p.X}
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Rect is an axis-aligned rectangle given by two corners.
type Rect struct {
	Min, Max Point
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Size returns the signed extent of the rectangle.
func (r Rect) Size() (dx, dy float64) {
	return r.Max.X - r.Min.X, r.Max.Y - r.Min.Y
}

// Positioner is implemented by anything with a position on the surface.
type Positioner interface {
	X() float64
	Y() float64
	Pos() Point
	AnchorPos() Point
}

// BoundsSource is a live position source a gradient can be anchored to.
// Bounds is read every time a dynamic binding resolves its value.
type BoundsSource interface {
	Bounds() Rect
}
