package dotfx

import "fmt"

// GradientTemplate is an unbound gradient: kind, rotation and stops
// without an anchor. Assigning it to a ColorCapability binds it to the
// capability's owner, so the gradient follows whatever it decorates.
//
// Example:
//
//	glow := dotfx.NewGradientTemplate(dotfx.GradientRadial, 0,
//	    dotfx.Stop(0, dotfx.White), dotfx.Stop(1, dotfx.Transparent))
//	dot.Color().SetColor(glow) // anchored to the dot's own bounds
type GradientTemplate struct {
	kind     GradientKind
	rotation float64
	extend   ExtendMode
	stops    []ColorStop
}

// NewGradientTemplate creates an unbound gradient.
func NewGradientTemplate(kind GradientKind, rotation float64, stops ...ColorStop) *GradientTemplate {
	return &GradientTemplate{
		kind:     kind,
		rotation: normalizeRotation(rotation),
		stops:    sortStops(stops),
	}
}

// WithExtend returns a copy of the template using mode past the anchor
// region.
func (t *GradientTemplate) WithExtend(mode ExtendMode) *GradientTemplate {
	c := *t
	c.extend = mode
	return &c
}

// BindTo returns a new dynamic binding anchored to src.
func (t *GradientTemplate) BindTo(src BoundsSource) *ColorBinding {
	b := NewGradient(t.kind, Live(src), t.rotation, t.stops...)
	b.extend = t.extend
	return b
}

// Kind returns the gradient kind.
func (t *GradientTemplate) Kind() GradientKind { return t.kind }

// String describes the template; equal templates describe equally.
func (t *GradientTemplate) String() string {
	return fmt.Sprintf("%s-gradient(%gdeg;%s;%s)", t.kind, t.rotation, t.extend, stopsKey(t.stops))
}

func (t *GradientTemplate) declKey() string {
	if t == nil {
		return "template:nil"
	}
	return t.String()
}
