// Package raster provides a CPU dotfx.Surface that paints into an
// *image.RGBA.
//
// Fills are rasterized with golang.org/x/image/vector using the non-zero
// winding rule. Strokes are first expanded into polygons by the internal
// stroke package (flatten, dash, outline) and then filled the same way.
// Brushes are sampled at pixel centers, so gradients line up with the
// coordinates they were built for.
//
// # Example
//
//	c := raster.NewCanvas(200, 200, raster.WithBackground(dotfx.White))
//	e := dotfx.NewEntity(dotfx.Pt(100, 100), dotfx.WithSurface(c))
//	e.Initialize()
//	_ = dotfx.Stroke(c, dotfx.Arc(e.Pos(), e.Radius()), nil)
//	_ = c.SavePNG("dot.png")
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/gogpu/dotfx"
	"github.com/gogpu/dotfx/internal/stroke"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

type opKind uint8

const (
	opMove opKind = iota
	opLine
	opQuad
	opCubic
	opClose
)

// pathOp is one path construction call. pts holds control points
// followed by the end point.
type pathOp struct {
	kind opKind
	pts  [3]dotfx.Point
}

// Canvas is a dotfx.Surface backed by an *image.RGBA.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	opts canvasOptions

	path       []pathOp
	hasCurrent bool

	strokeBrush dotfx.Brush
	fillBrush   dotfx.Brush
	lineWidth   float64
	lineCap     dotfx.LineCap
	lineJoin    dotfx.LineJoin
	dash        []float64
	dashOffset  float64
}

var _ dotfx.Surface = (*Canvas)(nil)

// NewCanvas creates a width x height canvas filled with the background
// color. Negative sizes are treated as zero.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}
	black := dotfx.Solid(dotfx.Black)
	c := &Canvas{
		img:         image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		opts:        o,
		strokeBrush: black,
		fillBrush:   black,
		lineWidth:   1,
	}
	c.Clear(o.background)
	return c
}

// Width implements dotfx.Surface.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height implements dotfx.Surface.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Image returns the backing image. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Pixel returns the color at (x, y), or Transparent outside the canvas.
func (c *Canvas) Pixel(x, y int) dotfx.RGBA {
	if !image.Pt(x, y).In(c.img.Bounds()) {
		return dotfx.Transparent
	}
	return dotfx.FromColor(c.img.RGBAAt(x, y))
}

// Clear fills the whole canvas with col, replacing what was there.
func (c *Canvas) Clear(col dotfx.RGBA) {
	xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, xdraw.Src)
}

// Reset clears to the background color and discards the current path.
// Paint attributes are kept.
func (c *Canvas) Reset() {
	c.Clear(c.opts.background)
	c.BeginPath()
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
	c.hasCurrent = false
}

// MoveTo implements dotfx.Surface. Non-finite coordinates are ignored.
func (c *Canvas) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	c.path = append(c.path, pathOp{kind: opMove, pts: [3]dotfx.Point{dotfx.Pt(x, y)}})
	c.hasCurrent = true
}

// LineTo implements dotfx.Surface. Without a current point it behaves
// as MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	if !c.hasCurrent {
		c.MoveTo(x, y)
		return
	}
	c.path = append(c.path, pathOp{kind: opLine, pts: [3]dotfx.Point{dotfx.Pt(x, y)}})
}

// QuadraticTo adds a quadratic curve. Non-finite input is ignored.
func (c *Canvas) QuadraticTo(cx, cy, x, y float64) {
	if !finite(cx, cy, x, y) {
		return
	}
	if !c.hasCurrent {
		c.MoveTo(cx, cy)
	}
	c.path = append(c.path, pathOp{kind: opQuad, pts: [3]dotfx.Point{dotfx.Pt(cx, cy), dotfx.Pt(x, y)}})
}

// CubicTo adds a cubic curve. Non-finite input is ignored.
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !finite(c1x, c1y, c2x, c2y, x, y) {
		return
	}
	if !c.hasCurrent {
		c.MoveTo(c1x, c1y)
	}
	c.path = append(c.path, pathOp{
		kind: opCubic,
		pts:  [3]dotfx.Point{dotfx.Pt(c1x, c1y), dotfx.Pt(c2x, c2y), dotfx.Pt(x, y)},
	})
}

// Arc implements dotfx.Surface. The arc is approximated with cubic
// segments and joined to the current point by a straight line.
func (c *Canvas) Arc(cx, cy, r, angle1, angle2 float64) {
	if !finite(cx, cy, r, angle1, angle2) || r < 0 {
		return
	}
	segs := dotfx.ArcSegments(cx, cy, r, angle1, angle2)
	start := segs[0][0]
	if c.hasCurrent {
		c.LineTo(start.X, start.Y)
	} else {
		c.MoveTo(start.X, start.Y)
	}
	for _, s := range segs {
		c.CubicTo(s[1].X, s[1].Y, s[2].X, s[2].Y, s[3].X, s[3].Y)
	}
}

// ClosePath closes the current subpath, if any.
func (c *Canvas) ClosePath() {
	if !c.hasCurrent {
		return
	}
	c.path = append(c.path, pathOp{kind: opClose})
}

// SetStrokeStyle implements dotfx.Surface. A nil brush is ignored.
func (c *Canvas) SetStrokeStyle(b dotfx.Brush) {
	if b != nil {
		c.strokeBrush = b
	}
}

// SetFillStyle implements dotfx.Surface. A nil brush is ignored.
func (c *Canvas) SetFillStyle(b dotfx.Brush) {
	if b != nil {
		c.fillBrush = b
	}
}

// SetLineWidth implements dotfx.Surface. Zero, negative and non-finite
// widths are ignored.
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 && finite(w) {
		c.lineWidth = w
	}
}

// SetLineCap sets the cap used by Stroke.
func (c *Canvas) SetLineCap(lc dotfx.LineCap) { c.lineCap = lc }

// SetLineJoin sets the join used by Stroke.
func (c *Canvas) SetLineJoin(lj dotfx.LineJoin) { c.lineJoin = lj }

// SetLineDash implements dotfx.Surface. The list is normalized with
// dotfx.NormalizeDash; a list with a non-finite entry is ignored.
func (c *Canvas) SetLineDash(d []float64) {
	if !finite(d...) {
		return
	}
	c.dash = dotfx.NormalizeDash(d...)
}

// SetLineDashOffset sets the dash phase. Non-finite offsets are ignored.
func (c *Canvas) SetLineDashOffset(offset float64) {
	if finite(offset) {
		c.dashOffset = offset
	}
}

// LineWidth returns the current line width.
func (c *Canvas) LineWidth() float64 { return c.lineWidth }

// LineDash returns the current, normalized dash list.
func (c *Canvas) LineDash() []float64 { return append([]float64(nil), c.dash...) }

// Fill implements dotfx.Surface. Open subpaths are closed implicitly.
func (c *Canvas) Fill() error {
	if len(c.path) == 0 {
		return nil
	}
	z := c.newRasterizer()
	open := false
	for _, op := range c.path {
		switch op.kind {
		case opMove:
			if open {
				z.ClosePath()
			}
			z.MoveTo(f32(op.pts[0]))
			open = true
		case opLine:
			z.LineTo(f32(op.pts[0]))
		case opQuad:
			cx, cy := f32(op.pts[0])
			x, y := f32(op.pts[1])
			z.QuadTo(cx, cy, x, y)
		case opCubic:
			c1x, c1y := f32(op.pts[0])
			c2x, c2y := f32(op.pts[1])
			x, y := f32(op.pts[2])
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case opClose:
			z.ClosePath()
		}
	}
	if open {
		z.ClosePath()
	}
	c.paint(z, c.fillBrush)
	dotfx.Logger().Debug("raster: fill", "ops", len(c.path))
	return nil
}

// Stroke implements dotfx.Surface.
func (c *Canvas) Stroke() error {
	if len(c.path) == 0 {
		return nil
	}
	f := stroke.NewFlattener(c.opts.tolerance)
	for _, op := range c.path {
		switch op.kind {
		case opMove:
			f.MoveTo(sp(op.pts[0]))
		case opLine:
			f.LineTo(sp(op.pts[0]))
		case opQuad:
			f.QuadTo(sp(op.pts[0]), sp(op.pts[1]))
		case opCubic:
			f.CubicTo(sp(op.pts[0]), sp(op.pts[1]), sp(op.pts[2]))
		case opClose:
			f.Close()
		}
	}

	style := stroke.Style{
		Width:      c.lineWidth,
		Cap:        strokeCap(c.lineCap),
		Join:       strokeJoin(c.lineJoin),
		MiterLimit: c.opts.miterLimit,
		Dash:       c.dash,
		DashOffset: c.dashOffset,
	}
	lines := stroke.Dash(f.Polylines(), style.Dash, style.DashOffset)
	polys := stroke.Outline(lines, style, c.opts.tolerance)
	if len(polys) == 0 {
		return nil
	}

	z := c.newRasterizer()
	for _, poly := range polys {
		z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}
	c.paint(z, c.strokeBrush)
	dotfx.Logger().Debug("raster: stroke", "polylines", len(lines), "polygons", len(polys))
	return nil
}

func (c *Canvas) newRasterizer() *vector.Rasterizer {
	z := vector.NewRasterizer(c.Width(), c.Height())
	z.DrawOp = xdraw.Over
	return z
}

func (c *Canvas) paint(z *vector.Rasterizer, b dotfx.Brush) {
	z.Draw(c.img, c.img.Bounds(), source(b, c.img.Bounds()), image.Point{})
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file at path.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("raster: save png: %w", err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("raster: save png: %w", err)
	}
	return nil
}

func f32(p dotfx.Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}

func sp(p dotfx.Point) stroke.Point {
	return stroke.Point{X: p.X, Y: p.Y}
}

func strokeCap(lc dotfx.LineCap) stroke.Cap {
	switch lc {
	case dotfx.LineCapRound:
		return stroke.CapRound
	case dotfx.LineCapSquare:
		return stroke.CapSquare
	default:
		return stroke.CapButt
	}
}

func strokeJoin(lj dotfx.LineJoin) stroke.Join {
	switch lj {
	case dotfx.LineJoinRound:
		return stroke.JoinRound
	case dotfx.LineJoinBevel:
		return stroke.JoinBevel
	default:
		return stroke.JoinMiter
	}
}

// brushImage exposes a Brush as an image.Image sampled at pixel centers.
type brushImage struct {
	brush  dotfx.Brush
	bounds image.Rectangle
}

func (i brushImage) ColorModel() color.Model { return color.RGBA64Model }

func (i brushImage) Bounds() image.Rectangle { return i.bounds }

func (i brushImage) At(x, y int) color.Color {
	return i.brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
}

func source(b dotfx.Brush, bounds image.Rectangle) image.Image {
	if s, ok := b.(dotfx.SolidBrush); ok {
		return image.NewUniform(s.Color)
	}
	return brushImage{brush: b, bounds: bounds}
}
