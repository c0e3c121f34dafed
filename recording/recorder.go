package recording

import (
	"fmt"

	"github.com/gogpu/dotfx"
)

// Recorder is a dotfx.Surface that captures every call as a Command.
// It also tracks the current paint attributes so tests can inspect the
// state a sequence of calls leaves behind.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	strokeStyle dotfx.Brush
	fillStyle   dotfx.Brush
	lineWidth   float64
	lineCap     dotfx.LineCap
	lineJoin    dotfx.LineJoin
	dash        []float64
	dashOffset  float64
}

var _ dotfx.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder for the given dimensions. It starts with
// canvas defaults: black stroke and fill, 1px line width, butt caps,
// miter joins, no dash.
func NewRecorder(width, height int) *Recorder {
	black := dotfx.Solid(dotfx.Black)
	return &Recorder{
		width:       width,
		height:      height,
		commands:    make([]Command, 0, 64),
		strokeStyle: black,
		fillStyle:   black,
		lineWidth:   1.0,
	}
}

// Width implements dotfx.Surface.
func (r *Recorder) Width() int { return r.width }

// Height implements dotfx.Surface.
func (r *Recorder) Height() int { return r.height }

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command { return r.commands }

// Types returns the types of the recorded commands in call order.
func (r *Recorder) Types() []CommandType {
	types := make([]CommandType, len(r.commands))
	for i, c := range r.commands {
		types[i] = c.Type()
	}
	return types
}

// Reset drops recorded commands. Paint attributes are kept, as a real
// surface keeps them across frames.
func (r *Recorder) Reset() { r.commands = r.commands[:0] }

func (r *Recorder) record(c Command) { r.commands = append(r.commands, c) }

// BeginPath records a BeginPathCommand.
func (r *Recorder) BeginPath() { r.record(BeginPathCommand{}) }

// MoveTo records a MoveToCommand.
func (r *Recorder) MoveTo(x, y float64) {
	r.record(MoveToCommand{Point: dotfx.Pt(x, y)})
}

// LineTo records a LineToCommand.
func (r *Recorder) LineTo(x, y float64) {
	r.record(LineToCommand{Point: dotfx.Pt(x, y)})
}

// QuadraticTo records a QuadraticToCommand.
func (r *Recorder) QuadraticTo(cx, cy, x, y float64) {
	r.record(QuadraticToCommand{Control: dotfx.Pt(cx, cy), Point: dotfx.Pt(x, y)})
}

// CubicTo records a CubicToCommand.
func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.record(CubicToCommand{
		Control1: dotfx.Pt(c1x, c1y),
		Control2: dotfx.Pt(c2x, c2y),
		Point:    dotfx.Pt(x, y),
	})
}

// Arc records an ArcCommand.
func (r *Recorder) Arc(cx, cy, radius, angle1, angle2 float64) {
	r.record(ArcCommand{Center: dotfx.Pt(cx, cy), Radius: radius, StartAngle: angle1, EndAngle: angle2})
}

// ClosePath records a ClosePathCommand.
func (r *Recorder) ClosePath() { r.record(ClosePathCommand{}) }

// Stroke implements dotfx.Surface. It never fails.
func (r *Recorder) Stroke() error {
	r.record(StrokeCommand{})
	return nil
}

// Fill implements dotfx.Surface. It never fails.
func (r *Recorder) Fill() error {
	r.record(FillCommand{})
	return nil
}

// SetStrokeStyle records the brush and makes it the current stroke style.
func (r *Recorder) SetStrokeStyle(b dotfx.Brush) {
	r.strokeStyle = b
	r.record(SetStrokeStyleCommand{Brush: b})
}

// SetFillStyle records the brush and makes it the current fill style.
func (r *Recorder) SetFillStyle(b dotfx.Brush) {
	r.fillStyle = b
	r.record(SetFillStyleCommand{Brush: b})
}

// SetLineWidth records and stores the line width.
func (r *Recorder) SetLineWidth(w float64) {
	r.lineWidth = w
	r.record(SetLineWidthCommand{Width: w})
}

// SetLineCap records and stores the line cap.
func (r *Recorder) SetLineCap(c dotfx.LineCap) {
	r.lineCap = c
	r.record(SetLineCapCommand{Cap: c})
}

// SetLineJoin records and stores the line join.
func (r *Recorder) SetLineJoin(j dotfx.LineJoin) {
	r.lineJoin = j
	r.record(SetLineJoinCommand{Join: j})
}

// SetLineDash records and stores a copy of the dash list.
func (r *Recorder) SetLineDash(d []float64) {
	r.dash = append([]float64(nil), d...)
	r.record(SetLineDashCommand{Dash: r.dash})
}

// SetLineDashOffset records and stores the dash offset.
func (r *Recorder) SetLineDashOffset(offset float64) {
	r.dashOffset = offset
	r.record(SetLineDashOffsetCommand{Offset: offset})
}

// StrokeStyle returns the current stroke brush.
func (r *Recorder) StrokeStyle() dotfx.Brush { return r.strokeStyle }

// FillStyle returns the current fill brush.
func (r *Recorder) FillStyle() dotfx.Brush { return r.fillStyle }

// LineWidth returns the current line width.
func (r *Recorder) LineWidth() float64 { return r.lineWidth }

// LineCap returns the current line cap.
func (r *Recorder) LineCap() dotfx.LineCap { return r.lineCap }

// LineJoin returns the current line join.
func (r *Recorder) LineJoin() dotfx.LineJoin { return r.lineJoin }

// LineDash returns the current dash list.
func (r *Recorder) LineDash() []float64 { return r.dash }

// LineDashOffset returns the current dash offset.
func (r *Recorder) LineDashOffset() float64 { return r.dashOffset }

// Playback replays the recorded commands onto dst in order. It stops at
// the first paint error.
func (r *Recorder) Playback(dst dotfx.Surface) error {
	for i, cmd := range r.commands {
		if err := replay(dst, cmd); err != nil {
			return fmt.Errorf("recording: command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}

func replay(dst dotfx.Surface, cmd Command) error {
	switch c := cmd.(type) {
	case BeginPathCommand:
		dst.BeginPath()
	case MoveToCommand:
		dst.MoveTo(c.Point.X, c.Point.Y)
	case LineToCommand:
		dst.LineTo(c.Point.X, c.Point.Y)
	case QuadraticToCommand:
		dst.QuadraticTo(c.Control.X, c.Control.Y, c.Point.X, c.Point.Y)
	case CubicToCommand:
		dst.CubicTo(c.Control1.X, c.Control1.Y, c.Control2.X, c.Control2.Y, c.Point.X, c.Point.Y)
	case ArcCommand:
		dst.Arc(c.Center.X, c.Center.Y, c.Radius, c.StartAngle, c.EndAngle)
	case ClosePathCommand:
		dst.ClosePath()
	case StrokeCommand:
		return dst.Stroke()
	case FillCommand:
		return dst.Fill()
	case SetStrokeStyleCommand:
		dst.SetStrokeStyle(c.Brush)
	case SetFillStyleCommand:
		dst.SetFillStyle(c.Brush)
	case SetLineWidthCommand:
		dst.SetLineWidth(c.Width)
	case SetLineCapCommand:
		dst.SetLineCap(c.Cap)
	case SetLineJoinCommand:
		dst.SetLineJoin(c.Join)
	case SetLineDashCommand:
		dst.SetLineDash(c.Dash)
	case SetLineDashOffsetCommand:
		dst.SetLineDashOffset(c.Offset)
	}
	return nil
}
