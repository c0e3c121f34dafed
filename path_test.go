package dotfx

import (
	"math"
	"testing"
)

func TestPathDefaults(t *testing.T) {
	start, end := Pt(10, 20), Pt(30, 5)

	q := QuadraticCurve(start, end)
	if q.Control1 != Pt(60, 70) {
		t.Errorf("quadratic default control = %v, want start + (50,50)", q.Control1)
	}
	if q := QuadraticCurve(start, end, Pt(1, 1), Pt(9, 9)); q.Control1 != Pt(1, 1) {
		t.Errorf("explicit control = %v", q.Control1)
	}

	c := CubicCurve(start, end)
	if c.Control1 != Pt(20, 10) || c.Control2 != Pt(5, 30) {
		t.Errorf("cubic defaults = %v %v, want swapped endpoints", c.Control1, c.Control2)
	}
	c = CubicCurve(start, end, Pt(0, 0))
	if c.Control1 != Pt(0, 0) || c.Control2 != Pt(5, 30) {
		t.Errorf("cubic with one control = %v %v", c.Control1, c.Control2)
	}

	a := Arc(start, 4)
	if a.StartAngle != 0 || a.EndAngle != 2*math.Pi {
		t.Errorf("arc angles = %v..%v, want full circle", a.StartAngle, a.EndAngle)
	}
	if a := Arc(start, 4, 1); a.StartAngle != 1 || a.EndAngle != 2*math.Pi {
		t.Errorf("arc with start only = %v..%v", a.StartAngle, a.EndAngle)
	}
}

func TestPathKindString(t *testing.T) {
	if PathCubic.String() != "cubic" || PathKind(42).String() != "PathKind(42)" {
		t.Errorf("String() = %q, %q", PathCubic.String(), PathKind(42).String())
	}
}

func TestArcSegments(t *testing.T) {
	segs := ArcSegments(0, 0, 10, 0, 2*math.Pi)
	if len(segs) != 4 {
		t.Fatalf("full circle split into %d segments, want 4", len(segs))
	}
	for i, s := range segs {
		for _, p := range []Point{s[0], s[3]} {
			if math.Abs(math.Hypot(p.X, p.Y)-10) > 1e-9 {
				t.Errorf("segment %d endpoint %v is off the circle", i, p)
			}
		}
		// The curve midpoint of a good approximation stays close to the circle.
		mid := s[0].Mul(0.125).Add(s[1].Mul(0.375)).Add(s[2].Mul(0.375)).Add(s[3].Mul(0.125))
		if math.Abs(math.Hypot(mid.X, mid.Y)-10) > 0.01 {
			t.Errorf("segment %d midpoint radius %v", i, math.Hypot(mid.X, mid.Y))
		}
	}
	if last := segs[3][3]; math.Abs(last.X-10) > 1e-9 || math.Abs(last.Y) > 1e-9 {
		t.Errorf("full circle ends at %v, want (10,0)", last)
	}

	wrapped := ArcSegments(0, 0, 1, math.Pi, math.Pi/2)
	if len(wrapped) != 3 {
		t.Errorf("arc with end before start split into %d segments, want 3", len(wrapped))
	}
}
