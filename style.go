package dotfx

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// Ptr returns a pointer to a copy of c, for LineStyle.Cap.
func (c LineCap) Ptr() *LineCap { return &c }

// String returns the canvas name of the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Ptr returns a pointer to a copy of j, for LineStyle.Join.
func (j LineJoin) Ptr() *LineJoin { return &j }

// String returns the canvas name of the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// Styler sets a surface's paint attributes before a path is painted.
// It is implemented by *StyleProfile and StylePatch.
type Styler interface {
	ApplyStyles(s Surface)
}

type styleField uint8

const (
	fieldColor styleField = 1 << iota
	fieldLineWidth
	fieldLineCap
	fieldLineJoin
	fieldDash
	fieldDashOffset
)

// StylePatch is a partial set of paint attributes. Only attributes set
// through its With methods are applied; every other attribute keeps the
// surface's current value. The zero value changes nothing.
//
// Example:
//
//	patch := dotfx.Patch().WithColor(dotfx.Red).WithLineWidth(3)
type StylePatch struct {
	set        styleField
	color      ColorDecl
	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	dash       []float64
	dashOffset float64
}

// Patch returns an empty StylePatch.
func Patch() StylePatch { return StylePatch{} }

// WithColor sets the stroke and fill color.
func (p StylePatch) WithColor(c ColorDecl) StylePatch {
	p.set |= fieldColor
	p.color = c
	return p
}

// WithLineWidth sets the line width.
func (p StylePatch) WithLineWidth(w float64) StylePatch {
	p.set |= fieldLineWidth
	p.lineWidth = w
	return p
}

// WithLineCap sets the line cap.
func (p StylePatch) WithLineCap(c LineCap) StylePatch {
	p.set |= fieldLineCap
	p.lineCap = c
	return p
}

// WithLineJoin sets the line join.
func (p StylePatch) WithLineJoin(j LineJoin) StylePatch {
	p.set |= fieldLineJoin
	p.lineJoin = j
	return p
}

// WithDash sets the dash list; see NormalizeDash. No lengths means solid.
func (p StylePatch) WithDash(lengths ...float64) StylePatch {
	p.set |= fieldDash
	p.dash = NormalizeDash(lengths...)
	return p
}

// WithDashOffset sets the dash offset.
func (p StylePatch) WithDashOffset(offset float64) StylePatch {
	p.set |= fieldDashOffset
	p.dashOffset = offset
	return p
}

// IsEmpty reports whether the patch sets nothing.
func (p StylePatch) IsEmpty() bool { return p.set == 0 }

func (p StylePatch) has(f styleField) bool { return p.set&f != 0 }

// ApplyStyles applies the attributes the patch sets and nothing else.
// A color that does not resolve to a brush is skipped.
func (p StylePatch) ApplyStyles(s Surface) {
	if p.has(fieldColor) {
		if b := resolveDecl(p.color, s); b != nil {
			s.SetStrokeStyle(b)
			s.SetFillStyle(b)
		}
	}
	if p.has(fieldLineWidth) {
		s.SetLineWidth(p.lineWidth)
	}
	if p.has(fieldLineCap) {
		s.SetLineCap(p.lineCap)
	}
	if p.has(fieldLineJoin) {
		s.SetLineJoin(p.lineJoin)
	}
	if p.has(fieldDash) {
		s.SetLineDash(p.dash)
	}
	if p.has(fieldDashOffset) {
		s.SetLineDashOffset(p.dashOffset)
	}
}

// resolveDecl turns a one-off declaration into a brush without an owner.
func resolveDecl(d ColorDecl, s Surface) Brush {
	cc := NewColorCapability(nil, d)
	cc.SetSurface(s)
	cc.Initialize()
	return cc.Color()
}

// StyleProfile is a named bundle of paint attributes. Its color is held by
// a ColorCapability, so a profile can carry a dynamic gradient.
//
// A StyleProfile is not safe for concurrent use.
type StyleProfile struct {
	name       string
	color      *ColorCapability
	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	dash       []float64
	dashOffset float64
}

// NewStyleProfile creates a profile with canvas defaults (width 1, butt
// caps, miter joins, solid) and the given color, then applies patches in
// order.
func NewStyleProfile(name string, color ColorDecl, patches ...StylePatch) *StyleProfile {
	p := &StyleProfile{
		name:      name,
		color:     NewColorCapability(nil, color),
		lineWidth: 1,
		lineCap:   LineCapButt,
		lineJoin:  LineJoinMiter,
	}
	p.color.Initialize()
	for _, patch := range patches {
		p.Update(patch)
	}
	return p
}

// Name returns the profile name.
func (p *StyleProfile) Name() string { return p.name }

// Color returns the capability holding the profile color.
func (p *StyleProfile) Color() *ColorCapability { return p.color }

// LineWidth returns the stored line width.
func (p *StyleProfile) LineWidth() float64 { return p.lineWidth }

// LineCap returns the stored line cap.
func (p *StyleProfile) LineCap() LineCap { return p.lineCap }

// LineJoin returns the stored line join.
func (p *StyleProfile) LineJoin() LineJoin { return p.lineJoin }

// Dash returns a copy of the stored dash list.
func (p *StyleProfile) Dash() []float64 { return append([]float64(nil), p.dash...) }

// DashOffset returns the stored dash offset.
func (p *StyleProfile) DashOffset() float64 { return p.dashOffset }

// Update accumulates the attributes set in patch into the profile.
func (p *StyleProfile) Update(patch StylePatch) {
	if patch.has(fieldColor) {
		p.color.SetColor(patch.color)
	}
	if patch.has(fieldLineWidth) {
		p.lineWidth = patch.lineWidth
	}
	if patch.has(fieldLineCap) {
		p.lineCap = patch.lineCap
	}
	if patch.has(fieldLineJoin) {
		p.lineJoin = patch.lineJoin
	}
	if patch.has(fieldDash) {
		p.dash = patch.dash
	}
	if patch.has(fieldDashOffset) {
		p.dashOffset = patch.dashOffset
	}
}

// ApplyStyles sets every stored attribute on s. The color becomes both the
// stroke and fill style; an unresolved color leaves them unchanged.
// A nil profile changes nothing.
func (p *StyleProfile) ApplyStyles(s Surface) {
	if p == nil {
		return
	}
	p.color.SetSurface(s)
	if b := p.color.Color(); b != nil {
		s.SetStrokeStyle(b)
		s.SetFillStyle(b)
	}
	s.SetLineWidth(p.lineWidth)
	s.SetLineCap(p.lineCap)
	s.SetLineJoin(p.lineJoin)
	s.SetLineDash(p.dash)
	s.SetLineDashOffset(p.dashOffset)
}

// With returns a Styler applying the profile and then overrides, leaving
// the profile itself unchanged.
func (p *StyleProfile) With(overrides StylePatch) Styler {
	return profileOverlay{profile: p, overrides: overrides}
}

type profileOverlay struct {
	profile   *StyleProfile
	overrides StylePatch
}

func (o profileOverlay) ApplyStyles(s Surface) {
	o.profile.ApplyStyles(s)
	o.overrides.ApplyStyles(s)
}
