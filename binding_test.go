package dotfx

import (
	"math"
	"testing"
)

type movingBox struct {
	rect Rect
}

func (m *movingBox) Bounds() Rect { return m.rect }

var redBlue = []ColorStop{Stop(0, Red), Stop(1, Blue)}

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{45, 45},
		{370, 10},
		{-10, 350},
		{360, 0},
		{-360, 0},
		{720.004, 0},
		{12.346, 12.35},
		{-0.001, 0},
	}
	for _, tt := range tests {
		if got := normalizeRotation(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeRotation(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStaticBindingMemoizes(t *testing.T) {
	b := NewLinearGradient(Corners(Pt(0, 0), Pt(100, 50)), redBlue...)
	if b.IsDynamic() {
		t.Fatal("binding with literal corners is dynamic")
	}
	if b.builds != 1 {
		t.Fatalf("builds after construction = %d, want 1", b.builds)
	}

	v1 := b.Value()
	v2 := b.Value()
	if v1 != v2 {
		t.Error("static Value() returned a different brush on a second read")
	}
	if b.builds != 1 {
		t.Errorf("builds = %d after reads, want 1", b.builds)
	}
}

func TestStaticBindingEagerUpdates(t *testing.T) {
	b := NewLinearGradient(Corners(Pt(0, 0), Pt(100, 0)), redBlue...)

	b.SetPositions(Corners(Pt(0, 0), Pt(200, 0)))
	if b.builds != 2 {
		t.Errorf("SetPositions did not recompute eagerly (builds %d)", b.builds)
	}
	g := b.Value().(*LinearGradientBrush)
	if g.Start != Pt(0, 0) || g.End != Pt(200, 0) {
		t.Errorf("gradient line = %v -> %v, want (0,0) -> (200,0)", g.Start, g.End)
	}

	b.SetRotation(370)
	if b.Rotation() != 10 {
		t.Errorf("Rotation() = %v, want 10", b.Rotation())
	}
	if b.builds != 3 {
		t.Errorf("SetRotation did not recompute eagerly (builds %d)", b.builds)
	}

	b.SetRotation(10)
	if b.builds != 3 {
		t.Errorf("same rotation rebuilt the gradient (builds %d)", b.builds)
	}
}

func TestDynamicBindingFollowsSource(t *testing.T) {
	box := &movingBox{rect: Rect{Min: Pt(0, 0), Max: Pt(10, 10)}}
	b := NewRadialGradient(Live(box), redBlue...)
	if !b.IsDynamic() {
		t.Fatal("live binding is not dynamic")
	}
	if b.builds != 0 {
		t.Errorf("dynamic binding built eagerly (builds %d)", b.builds)
	}

	first := b.Value().(*RadialGradientBrush)
	if first.Center != Pt(5, 5) || first.EndRadius != 5 {
		t.Errorf("first value center %v radius %v", first.Center, first.EndRadius)
	}

	box.rect = Rect{Min: Pt(100, 100), Max: Pt(140, 120)}
	second := b.Value().(*RadialGradientBrush)
	if second.Center != Pt(120, 110) || second.EndRadius != 20 {
		t.Errorf("moved value center %v radius %v", second.Center, second.EndRadius)
	}

	updates := b.updates
	third := b.Value()
	if b.updates != updates+1 {
		t.Error("dynamic Value() did not run an update")
	}
	if third != Brush(second) {
		t.Error("unchanged source produced a new brush")
	}
}

func TestDynamicBindingLazySetters(t *testing.T) {
	box := &movingBox{rect: Rect{Max: Pt(10, 10)}}
	b := NewConicGradient(Live(box), redBlue...)
	b.SetRotation(90)
	b.SetPositions(Live(box))
	if b.updates != 0 {
		t.Errorf("setters on a dynamic binding ran %d updates", b.updates)
	}
	g := b.Value().(*ConicGradientBrush)
	if math.Abs(g.StartAngle-math.Pi/2) > 1e-12 {
		t.Errorf("StartAngle = %v, want pi/2", g.StartAngle)
	}
}

func TestDynamicDecidedAtConstruction(t *testing.T) {
	box := &movingBox{rect: Rect{Max: Pt(4, 4)}}
	b := NewLinearGradient(Corners(Pt(0, 0), Pt(1, 1)), redBlue...)
	b.SetPositions(Live(box))
	if b.IsDynamic() {
		t.Error("SetPositions changed a static binding to dynamic")
	}
	if b.InitPositions().IsLive() {
		t.Error("InitPositions changed")
	}
}

func TestLinearGradientRotation(t *testing.T) {
	b := NewGradient(GradientLinear, Corners(Pt(0, 0), Pt(100, 40)), 90, redBlue...)
	g := b.Value().(*LinearGradientBrush)
	// Rotated 90 degrees, the gradient runs vertically across the box height.
	if math.Abs(g.Start.X-50) > 1e-9 || math.Abs(g.Start.Y-0) > 1e-9 ||
		math.Abs(g.End.X-50) > 1e-9 || math.Abs(g.End.Y-40) > 1e-9 {
		t.Errorf("gradient line = %v -> %v, want (50,0) -> (50,40)", g.Start, g.End)
	}
}

func TestBindingClone(t *testing.T) {
	b := NewLinearGradient(Corners(Pt(0, 0), Pt(10, 0)), redBlue...)
	c := b.Clone()
	if c == b {
		t.Fatal("Clone returned the receiver")
	}
	c.SetRotation(45)
	if b.Rotation() != 0 {
		t.Error("changing the clone changed the original")
	}
	if c.declKey() == b.declKey() {
		t.Error("clone shares identity with the original")
	}
	if len(c.Stops()) != 2 || c.Kind() != GradientLinear {
		t.Errorf("clone lost its declaration: %v %v", c.Kind(), c.Stops())
	}
}

func TestTemplateBindTo(t *testing.T) {
	tmpl := NewGradientTemplate(GradientRadial, -90, redBlue...)
	if got := tmpl.String(); got != NewGradientTemplate(GradientRadial, 270, redBlue...).String() {
		t.Errorf("equal templates describe differently: %q", got)
	}

	box := &movingBox{rect: Rect{Max: Pt(8, 8)}}
	b1, b2 := tmpl.BindTo(box), tmpl.BindTo(box)
	if b1 == b2 {
		t.Error("BindTo returned a shared binding")
	}
	if !b1.IsDynamic() || b1.Rotation() != 270 || b1.Kind() != GradientRadial {
		t.Errorf("bound binding: dynamic %v rotation %v kind %v", b1.IsDynamic(), b1.Rotation(), b1.Kind())
	}
	if b1.Positions().Source() != BoundsSource(box) {
		t.Error("binding not anchored to the source")
	}
}

func TestBindingExtend(t *testing.T) {
	b := NewLinearGradient(Corners(Pt(0, 0), Pt(10, 0)), redBlue...)
	if b.Extend() != ExtendPad {
		t.Fatalf("Extend() = %v, want pad", b.Extend())
	}
	builds := b.builds
	b.SetExtend(ExtendRepeat)
	if b.builds != builds+1 {
		t.Error("static binding did not rebuild on SetExtend")
	}
	g := b.Value().(*LinearGradientBrush)
	if g.Extend != ExtendRepeat {
		t.Errorf("brush extend = %v, want repeat", g.Extend)
	}
	// One period past the end repeats the start color.
	if got := g.ColorAt(10.5, 0); !colorsEqual(got, g.ColorAt(0.5, 0), 1e-9) {
		t.Errorf("ColorAt(10.5) = %v, want the color at 0.5", got)
	}
}

func TestTemplateWithExtend(t *testing.T) {
	base := NewGradientTemplate(GradientRadial, 0, redBlue...)
	mirrored := base.WithExtend(ExtendReflect)
	if base.String() == mirrored.String() {
		t.Error("templates differing in extend describe equally")
	}

	box := &movingBox{rect: Rect{Max: Pt(10, 10)}}
	g := mirrored.BindTo(box).Value().(*RadialGradientBrush)
	if g.Extend != ExtendReflect {
		t.Errorf("bound brush extend = %v, want reflect", g.Extend)
	}
	if base.BindTo(box).Extend() != ExtendPad {
		t.Error("WithExtend changed the original template")
	}
}
