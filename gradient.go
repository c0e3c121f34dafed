package dotfx

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// GradientKind selects the gradient geometry a ColorBinding produces.
type GradientKind int

const (
	// GradientLinear blends along a line through the anchor's center.
	GradientLinear GradientKind = iota
	// GradientRadial blends outward from the anchor's center.
	GradientRadial
	// GradientConic blends around the anchor's center.
	GradientConic
)

// String returns the kind name.
func (k GradientKind) String() string {
	switch k {
	case GradientLinear:
		return "linear"
	case GradientRadial:
		return "radial"
	case GradientConic:
		return "conic"
	default:
		return "GradientKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// String returns the lowercase mode name.
func (m ExtendMode) String() string {
	switch m {
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	default:
		return "pad"
	}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Stop is a convenience function to create a ColorStop.
func Stop(offset float64, c RGBA) ColorStop {
	return ColorStop{Offset: offset, Color: c}
}

// sortStops returns a copy of stops ordered by offset. The sort is stable
// so coincident stops keep their declaration order.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// stopsKey renders stops as text for change detection.
func stopsKey(stops []ColorStop) string {
	var sb strings.Builder
	for i, s := range stops {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, "%g:%s", s.Offset, s.Color)
	}
	return sb.String()
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

// colorAtOffset returns the interpolated color at offset t.
// stops must be sorted.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	t = applyExtendMode(t, mode)
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	return lerpLinear(s1.Color, s2.Color, (t-s1.Offset)/(s2.Offset-s1.Offset))
}

// LinearGradientBrush blends colors along the line from Start to End.
type LinearGradientBrush struct {
	Start  Point
	End    Point
	Stops  []ColorStop // sorted by offset
	Extend ExtendMode
}

func (*LinearGradientBrush) brushMarker() {}

// ColorAt projects (x, y) onto the gradient line.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	d := g.End.Sub(g.Start)
	lengthSq := d.X*d.X + d.Y*d.Y
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}
	t := ((x-g.Start.X)*d.X + (y-g.Start.Y)*d.Y) / lengthSq
	return colorAtOffset(g.Stops, t, g.Extend)
}

// RadialGradientBrush blends colors outward from Center, between
// StartRadius (t=0) and EndRadius (t=1).
type RadialGradientBrush struct {
	Center      Point
	StartRadius float64
	EndRadius   float64
	Stops       []ColorStop // sorted by offset
	Extend      ExtendMode
}

func (*RadialGradientBrush) brushMarker() {}

// ColorAt returns the color for the distance of (x, y) from Center.
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	span := g.EndRadius - g.StartRadius
	if span == 0 {
		return firstStopColor(g.Stops)
	}
	t := (g.Center.Distance(Pt(x, y)) - g.StartRadius) / span
	return colorAtOffset(g.Stops, t, g.Extend)
}

// ConicGradientBrush blends colors around Center, starting at StartAngle
// (radians) and sweeping one full turn.
type ConicGradientBrush struct {
	Center     Point
	StartAngle float64
	Stops      []ColorStop // sorted by offset
}

func (*ConicGradientBrush) brushMarker() {}

// ColorAt returns the color for the angle of (x, y) around Center.
func (g *ConicGradientBrush) ColorAt(x, y float64) RGBA {
	a := math.Atan2(y-g.Center.Y, x-g.Center.X) - g.StartAngle
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return colorAtOffset(g.Stops, a/(2*math.Pi), ExtendPad)
}

// firstStopColor returns the lowest-offset stop color or Transparent.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return stops[0].Color
}
