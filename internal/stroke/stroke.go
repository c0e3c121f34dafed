package stroke

import "math"

// Point is a 2D point in device space.
type Point struct {
	X, Y float64
}

func (p Point) add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) scale(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }
func (p Point) cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
func (p Point) length() float64 { return math.Hypot(p.X, p.Y) }
func (p Point) perp() Point { return Point{-p.Y, p.X} }
func (p Point) lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

func (p Point) normalize() Point {
	l := p.length()
	if l == 0 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Cap is the shape at the ends of open subpaths.
type Cap uint8

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join is the shape at corners between segments.
type Join uint8

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// DefaultTolerance is the flattening tolerance in device pixels.
const DefaultTolerance = 0.25

// maxDepth bounds curve subdivision.
const maxDepth = 16

// Style describes how a path is stroked.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
	Dash       []float64
	DashOffset float64
}

// DefaultStyle returns a 1px style with butt caps, miter joins and a
// miter limit of 10.
func DefaultStyle() Style {
	return Style{Width: 1, MiterLimit: 10}
}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flattener converts path commands into polylines.
type Flattener struct {
	// Tolerance is the maximum distance between a curve and its
	// flattened polyline. Zero or negative means DefaultTolerance.
	Tolerance float64

	lines []Polyline
	cur   []Point
	start Point
	open  bool
}

// NewFlattener creates a Flattener with the given tolerance.
func NewFlattener(tolerance float64) *Flattener {
	return &Flattener{Tolerance: tolerance}
}

func (f *Flattener) tolerance() float64 {
	if f.Tolerance <= 0 || math.IsNaN(f.Tolerance) {
		return DefaultTolerance
	}
	return f.Tolerance
}

func (f *Flattener) last() Point {
	return f.cur[len(f.cur)-1]
}

func (f *Flattener) flush(closed bool) {
	if len(f.cur) >= 2 {
		f.lines = append(f.lines, Polyline{Points: f.cur, Closed: closed})
	}
	f.cur = nil
}

func (f *Flattener) push(p Point) {
	if p == f.last() {
		return
	}
	f.cur = append(f.cur, p)
}

// MoveTo starts a new subpath at p.
func (f *Flattener) MoveTo(p Point) {
	f.flush(false)
	f.cur = []Point{p}
	f.start = p
	f.open = true
}

// ensure starts a subpath at p when there is no current point.
func (f *Flattener) ensure(p Point) bool {
	if f.open {
		return true
	}
	f.MoveTo(p)
	return false
}

// LineTo adds a line to p. Without a current point it behaves as MoveTo.
func (f *Flattener) LineTo(p Point) {
	if !f.ensure(p) {
		return
	}
	f.push(p)
}

// QuadTo adds a quadratic Bezier curve with control point c.
func (f *Flattener) QuadTo(c, p Point) {
	f.ensure(c)
	f.flattenQuad(f.last(), c, p, 0)
}

// CubicTo adds a cubic Bezier curve with control points c1 and c2.
func (f *Flattener) CubicTo(c1, c2, p Point) {
	f.ensure(c1)
	f.flattenCubic(f.last(), c1, c2, p, 0)
}

// Close closes the current subpath. The next segment starts at the
// subpath's first point.
func (f *Flattener) Close() {
	if !f.open {
		return
	}
	f.flush(true)
	f.cur = []Point{f.start}
}

// Polylines finishes the current subpath and returns all polylines.
func (f *Flattener) Polylines() []Polyline {
	f.flush(false)
	f.open = false
	return f.lines
}

// Reset discards all subpaths.
func (f *Flattener) Reset() {
	f.lines = nil
	f.cur = nil
	f.open = false
}

func (f *Flattener) flattenQuad(p0, p1, p2 Point, depth int) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) <= f.tolerance() {
		f.push(p2)
		return
	}
	p01 := p0.lerp(p1, 0.5)
	p12 := p1.lerp(p2, 0.5)
	mid := p01.lerp(p12, 0.5)
	f.flattenQuad(p0, p01, mid, depth+1)
	f.flattenQuad(mid, p12, p2, depth+1)
}

func (f *Flattener) flattenCubic(p0, p1, p2, p3 Point, depth int) {
	tol := f.tolerance()
	if depth >= maxDepth || (distanceToLine(p1, p0, p3) <= tol && distanceToLine(p2, p0, p3) <= tol) {
		f.push(p3)
		return
	}
	p01 := p0.lerp(p1, 0.5)
	p12 := p1.lerp(p2, 0.5)
	p23 := p2.lerp(p3, 0.5)
	p012 := p01.lerp(p12, 0.5)
	p123 := p12.lerp(p23, 0.5)
	mid := p012.lerp(p123, 0.5)
	f.flattenCubic(p0, p01, p012, mid, depth+1)
	f.flattenCubic(mid, p123, p23, p3, depth+1)
}

// distanceToLine returns the distance from p to the line through a and b.
func distanceToLine(p, a, b Point) float64 {
	d := b.sub(a)
	l := d.length()
	if l == 0 {
		return p.sub(a).length()
	}
	return math.Abs(d.cross(p.sub(a))) / l
}

// Dash splits lines into the "on" intervals of pattern, starting offset
// units into the pattern. The phase restarts for every polyline. An odd
// pattern is repeated to make it even. A pattern without a positive
// length leaves lines unchanged.
func Dash(lines []Polyline, pattern []float64, offset float64) []Polyline {
	var total float64
	for _, v := range pattern {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return lines
		}
		total += v
	}
	if total <= 0 {
		return lines
	}
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
		total *= 2
	}
	offset = math.Mod(offset, total)
	if offset < 0 {
		offset += total
	}

	var out []Polyline
	for _, line := range lines {
		out = append(out, dashOne(line, pattern, offset)...)
	}
	return out
}

func dashOne(line Polyline, pattern []float64, offset float64) []Polyline {
	pts := line.Points
	if line.Closed && len(pts) > 0 && pts[0] != pts[len(pts)-1] {
		pts = append(append([]Point(nil), pts...), pts[0])
	}
	if len(pts) < 2 {
		return nil
	}

	idx := 0
	for offset >= pattern[idx] {
		offset -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remain := pattern[idx] - offset
	on := idx%2 == 0
	startsOn := on
	broken := false

	var out []Polyline
	var cur []Point
	if on {
		cur = []Point{pts[0]}
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := b.sub(a).length()
		pos := 0.0
		for segLen-pos > remain {
			pos += remain
			p := a.lerp(b, pos/segLen)
			if on {
				cur = append(cur, p)
				out = append(out, Polyline{Points: cur})
				cur = nil
			} else {
				cur = []Point{p}
			}
			broken = true
			idx = (idx + 1) % len(pattern)
			remain = pattern[idx]
			on = idx%2 == 0
		}
		remain -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}

	if !broken {
		if on {
			return []Polyline{line}
		}
		return nil
	}
	if on && len(cur) >= 2 {
		if line.Closed && startsOn && len(out) > 0 {
			// The dash running over the start point continues the first dash.
			out[0].Points = append(cur, out[0].Points[1:]...)
		} else {
			out = append(out, Polyline{Points: cur})
		}
	}
	return out
}

// Outline returns polygons covering the stroke of lines. Every polygon
// has positive signed area, so filling all of them with the non-zero
// rule paints the stroke.
func Outline(lines []Polyline, style Style, tolerance float64) [][]Point {
	hw := style.Width / 2
	if !(hw > 0) || math.IsInf(hw, 0) {
		return nil
	}
	if tolerance <= 0 || math.IsNaN(tolerance) {
		tolerance = DefaultTolerance
	}
	o := outliner{style: style, hw: hw, tol: tolerance}
	for _, line := range lines {
		o.polyline(line)
	}
	return o.polys
}

type outliner struct {
	style Style
	hw    float64
	tol   float64
	polys [][]Point
}

func (o *outliner) emit(poly ...Point) {
	if signedArea(poly) < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	o.polys = append(o.polys, poly)
}

func (o *outliner) polyline(line Polyline) {
	pts := make([]Point, 0, len(line.Points)+1)
	for _, p := range line.Points {
		if len(pts) == 0 || pts[len(pts)-1] != p {
			pts = append(pts, p)
		}
	}
	closed := line.Closed
	if closed && len(pts) > 1 && pts[0] != pts[len(pts)-1] {
		pts = append(pts, pts[0])
	}
	if len(pts) < 2 {
		return
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		n := b.sub(a).normalize().perp().scale(o.hw)
		o.emit(a.add(n), b.add(n), b.sub(n), a.sub(n))
	}
	for i := 1; i < len(pts)-1; i++ {
		o.join(pts[i], pts[i].sub(pts[i-1]).normalize(), pts[i+1].sub(pts[i]).normalize())
	}

	last := len(pts) - 1
	if closed {
		if last >= 2 {
			o.join(pts[0], pts[0].sub(pts[last-1]).normalize(), pts[1].sub(pts[0]).normalize())
		}
		return
	}
	o.cap(pts[0], pts[0].sub(pts[1]).normalize())
	o.cap(pts[last], pts[last].sub(pts[last-1]).normalize())
}

func (o *outliner) join(p, d0, d1 Point) {
	cross := d0.cross(d1)
	dot := d0.dot(d1)
	if math.Abs(cross) < 1e-9 && dot > 0 {
		return
	}

	switch o.style.Join {
	case JoinRound:
		o.emit(circle(p, o.hw, o.tol)...)
		return
	case JoinMiter:
		ml := o.style.MiterLimit
		if ml < 1 {
			ml = 1
		}
		if 2 <= (1+dot)*ml*ml {
			s := 1.0
			if cross > 0 {
				s = -1
			}
			n0 := d0.perp().scale(o.hw * s)
			n1 := d1.perp().scale(o.hw * s)
			tip := p.add(n0.add(n1).scale(1 / (1 + dot)))
			o.emit(p, p.add(n0), tip, p.add(n1))
			return
		}
	}

	s := 1.0
	if cross > 0 {
		s = -1
	}
	o.emit(p, p.add(d0.perp().scale(o.hw*s)), p.add(d1.perp().scale(o.hw*s)))
}

// cap adds the cap at p; d points away from the line.
func (o *outliner) cap(p, d Point) {
	switch o.style.Cap {
	case CapRound:
		o.emit(circle(p, o.hw, o.tol)...)
	case CapSquare:
		n := d.perp().scale(o.hw)
		ext := d.scale(o.hw)
		o.emit(p.add(n), p.add(n).add(ext), p.sub(n).add(ext), p.sub(n))
	}
}

// circle approximates a circle with a polygon whose sagitta stays within tol.
func circle(c Point, r, tol float64) []Point {
	n := 8
	if r > tol {
		n = int(math.Ceil(math.Pi / math.Acos(1-tol/r)))
	}
	n = max(8, min(n, 256))
	poly := make([]Point, n)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / float64(n)
		poly[i] = Point{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)}
	}
	return poly
}

func signedArea(poly []Point) float64 {
	var a float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}
