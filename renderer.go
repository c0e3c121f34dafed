package dotfx

// Stroke applies style to s, traces path as a new path and strokes it.
// A nil style leaves the surface's current attributes in place.
//
// Style application and path replay always happen together: no path is
// traced without its style applied immediately before.
func Stroke(s Surface, path PathDescriptor, style Styler) error {
	prepare(s, path, style)
	return s.Stroke()
}

// Fill applies style to s, traces path as a new path and fills it.
func Fill(s Surface, path PathDescriptor, style Styler) error {
	prepare(s, path, style)
	return s.Fill()
}

func prepare(s Surface, path PathDescriptor, style Styler) {
	if style != nil {
		style.ApplyStyles(s)
	}
	s.BeginPath()
	path.Trace(s)
}

// LineStyle holds direct line parameters. Zero, empty or nil fields are
// treated as absent and leave the surface's current value for that
// attribute. Cap and Join are pointers so the butt and miter values can be
// given explicitly; use LineCap.Ptr and LineJoin.Ptr.
//
// LineStyle predates StylePatch and is kept for callers that pass raw
// parameters; Patch converts it.
type LineStyle struct {
	Color      ColorDecl
	Width      float64
	Cap        *LineCap
	Join       *LineJoin
	Dash       []float64
	DashOffset float64
}

// Patch converts the parameters into a StylePatch holding only the ones
// that are provided.
func (ls LineStyle) Patch() StylePatch {
	p := Patch()
	if ls.Color != nil {
		p = p.WithColor(ls.Color)
	}
	if ls.Width != 0 {
		p = p.WithLineWidth(ls.Width)
	}
	if ls.Cap != nil {
		p = p.WithLineCap(*ls.Cap)
	}
	if ls.Join != nil {
		p = p.WithLineJoin(*ls.Join)
	}
	if len(ls.Dash) > 0 {
		p = p.WithDash(ls.Dash...)
	}
	if ls.DashOffset != 0 {
		p = p.WithDashOffset(ls.DashOffset)
	}
	return p
}

// StrokeLine strokes a straight line using direct parameters.
func StrokeLine(s Surface, start, end Point, ls LineStyle) error {
	return Stroke(s, Line(start, end), ls.Patch())
}
