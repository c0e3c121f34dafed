package dotfx

import (
	"fmt"
	"math"
)

// PathKind tags the variant of a PathDescriptor.
type PathKind int

const (
	// PathLinear is a straight line from Start to End.
	PathLinear PathKind = iota
	// PathQuadratic is a quadratic Bezier curve with one control point.
	PathQuadratic
	// PathCubic is a cubic Bezier curve with two control points.
	PathCubic
	// PathArc is a circular arc around Center.
	PathArc
)

// String returns the kind name.
func (k PathKind) String() string {
	switch k {
	case PathLinear:
		return "linear"
	case PathQuadratic:
		return "quadratic"
	case PathCubic:
		return "cubic"
	case PathArc:
		return "arc"
	default:
		return fmt.Sprintf("PathKind(%d)", int(k))
	}
}

// DefaultQuadControlOffset is added to the start point when a quadratic
// curve is built without a control point.
var DefaultQuadControlOffset = Pt(50, 50)

// PathDescriptor is a deferred path: a line, curve or arc closing over its
// control points. It is a plain value and can be traced any number of
// times against any surface.
type PathDescriptor struct {
	Kind PathKind

	Start, End         Point // PathLinear, PathQuadratic, PathCubic
	Control1, Control2 Point // Control1 for quadratic; both for cubic

	Center               Point // PathArc
	Radius               float64
	StartAngle, EndAngle float64
}

// Line describes a straight line.
func Line(start, end Point) PathDescriptor {
	return PathDescriptor{Kind: PathLinear, Start: start, End: end}
}

// QuadraticCurve describes a quadratic curve. Without a control point the
// control is start + DefaultQuadControlOffset. Extra points are ignored.
func QuadraticCurve(start, end Point, control ...Point) PathDescriptor {
	c := start.Add(DefaultQuadControlOffset)
	if len(control) > 0 {
		c = control[0]
	}
	return PathDescriptor{Kind: PathQuadratic, Start: start, End: end, Control1: c}
}

// CubicCurve describes a cubic curve. A missing first control defaults to
// start with its coordinates swapped; a missing second control defaults to
// end with its coordinates swapped.
func CubicCurve(start, end Point, controls ...Point) PathDescriptor {
	c1, c2 := start.Swap(), end.Swap()
	if len(controls) > 0 {
		c1 = controls[0]
	}
	if len(controls) > 1 {
		c2 = controls[1]
	}
	return PathDescriptor{Kind: PathCubic, Start: start, End: end, Control1: c1, Control2: c2}
}

// Arc describes a circular arc. angles are start and end in radians and
// default to 0 and 2π, a full circle.
func Arc(center Point, radius float64, angles ...float64) PathDescriptor {
	a0, a1 := 0.0, 2*math.Pi
	if len(angles) > 0 {
		a0 = angles[0]
	}
	if len(angles) > 1 {
		a1 = angles[1]
	}
	return PathDescriptor{Kind: PathArc, Center: center, Radius: radius, StartAngle: a0, EndAngle: a1}
}

// Trace replays the path construction against s. It does not begin a
// path or paint; see Stroke and Fill.
func (p PathDescriptor) Trace(s Surface) {
	switch p.Kind {
	case PathLinear:
		s.MoveTo(p.Start.X, p.Start.Y)
		s.LineTo(p.End.X, p.End.Y)
	case PathQuadratic:
		s.MoveTo(p.Start.X, p.Start.Y)
		s.QuadraticTo(p.Control1.X, p.Control1.Y, p.End.X, p.End.Y)
	case PathCubic:
		s.MoveTo(p.Start.X, p.Start.Y)
		s.CubicTo(p.Control1.X, p.Control1.Y, p.Control2.X, p.Control2.Y, p.End.X, p.End.Y)
	case PathArc:
		s.Arc(p.Center.X, p.Center.Y, math.Max(p.Radius, 0), p.StartAngle, p.EndAngle)
	}
}

// ArcSegments approximates a circular arc with cubic Bezier segments of at
// most 90 degrees each. Each segment is {start, control1, control2, end}.
// Surfaces without a native arc primitive use it.
func ArcSegments(cx, cy, r, angle1, angle2 float64) [][4]Point {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}
	sweep := angle2 - angle1
	if sweep > twoPi {
		sweep = twoPi
	}
	n := int(math.Ceil(sweep / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	// Control distance for a circular segment of angle step.
	k := 4.0 / 3.0 * math.Tan(step/4)

	segs := make([][4]Point, 0, n)
	a := angle1
	for i := 0; i < n; i++ {
		b := a + step
		cosA, sinA := math.Cos(a), math.Sin(a)
		cosB, sinB := math.Cos(b), math.Sin(b)
		p0 := Pt(cx+r*cosA, cy+r*sinA)
		p3 := Pt(cx+r*cosB, cy+r*sinB)
		segs = append(segs, [4]Point{
			p0,
			Pt(p0.X-k*r*sinA, p0.Y+k*r*cosA),
			Pt(p3.X+k*r*sinB, p3.Y-k*r*cosB),
			p3,
		})
		a = b
	}
	return segs
}
