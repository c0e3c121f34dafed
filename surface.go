package dotfx

// Surface is the 2D drawing context paths are traced on and painted to.
// It mirrors an HTML canvas context: path construction, paint commands and
// settable paint attributes that persist until changed.
//
// Implementations in this module:
//   - recording.Recorder captures calls as typed commands
//   - raster.Canvas rasterizes onto an *image.RGBA
type Surface interface {
	// Width and Height are the surface size in pixels.
	Width() int
	Height() int

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	// Arc adds a circular arc around (cx, cy) from angle1 to angle2
	// (radians, clockwise in screen space), connected to the current point.
	Arc(cx, cy, r, angle1, angle2 float64)
	ClosePath()

	// Stroke and Fill paint the current path with the current attributes.
	Stroke() error
	Fill() error

	SetStrokeStyle(b Brush)
	SetFillStyle(b Brush)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetLineJoin(j LineJoin)
	SetLineDash(d []float64)
	SetLineDashOffset(offset float64)
}
