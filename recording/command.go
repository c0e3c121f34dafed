// Package recording provides a dotfx.Surface that records drawing calls.
//
// Calls are captured as typed command structs instead of being rasterized,
// which makes them inspectable in tests and replayable onto any other
// surface with Playback.
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	_ = dotfx.Stroke(rec, dotfx.Line(dotfx.Pt(0, 0), dotfx.Pt(10, 10)), nil)
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//	_ = rec.Playback(canvas)
package recording

import "github.com/gogpu/dotfx"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Path commands
	CmdBeginPath CommandType = iota
	CmdMoveTo
	CmdLineTo
	CmdQuadraticTo
	CmdCubicTo
	CmdArc
	CmdClosePath

	// Paint commands
	CmdStroke
	CmdFill

	// Style commands
	CmdSetStrokeStyle
	CmdSetFillStyle
	CmdSetLineWidth
	CmdSetLineCap
	CmdSetLineJoin
	CmdSetLineDash
	CmdSetLineDashOffset
)

var commandTypeNames = [...]string{
	CmdBeginPath:         "BeginPath",
	CmdMoveTo:            "MoveTo",
	CmdLineTo:            "LineTo",
	CmdQuadraticTo:       "QuadraticTo",
	CmdCubicTo:           "CubicTo",
	CmdArc:               "Arc",
	CmdClosePath:         "ClosePath",
	CmdStroke:            "Stroke",
	CmdFill:              "Fill",
	CmdSetStrokeStyle:    "SetStrokeStyle",
	CmdSetFillStyle:      "SetFillStyle",
	CmdSetLineWidth:      "SetLineWidth",
	CmdSetLineCap:        "SetLineCap",
	CmdSetLineJoin:       "SetLineJoin",
	CmdSetLineDash:       "SetLineDash",
	CmdSetLineDashOffset: "SetLineDashOffset",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all recorded command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// BeginPathCommand discards the current path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// MoveToCommand starts a subpath at Point.
type MoveToCommand struct {
	Point dotfx.Point
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a line to Point.
type LineToCommand struct {
	Point dotfx.Point
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// QuadraticToCommand adds a quadratic curve.
type QuadraticToCommand struct {
	Control dotfx.Point
	Point   dotfx.Point
}

// Type implements Command.
func (QuadraticToCommand) Type() CommandType { return CmdQuadraticTo }

// CubicToCommand adds a cubic curve.
type CubicToCommand struct {
	Control1 dotfx.Point
	Control2 dotfx.Point
	Point    dotfx.Point
}

// Type implements Command.
func (CubicToCommand) Type() CommandType { return CmdCubicTo }

// ArcCommand adds a circular arc.
type ArcCommand struct {
	Center               dotfx.Point
	Radius               float64
	StartAngle, EndAngle float64
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// FillCommand fills the current path.
type FillCommand struct{}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// SetStrokeStyleCommand sets the stroke brush.
type SetStrokeStyleCommand struct {
	Brush dotfx.Brush
}

// Type implements Command.
func (SetStrokeStyleCommand) Type() CommandType { return CmdSetStrokeStyle }

// SetFillStyleCommand sets the fill brush.
type SetFillStyleCommand struct {
	Brush dotfx.Brush
}

// Type implements Command.
func (SetFillStyleCommand) Type() CommandType { return CmdSetFillStyle }

// SetLineWidthCommand sets the line width.
type SetLineWidthCommand struct {
	Width float64
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// SetLineCapCommand sets the line cap.
type SetLineCapCommand struct {
	Cap dotfx.LineCap
}

// Type implements Command.
func (SetLineCapCommand) Type() CommandType { return CmdSetLineCap }

// SetLineJoinCommand sets the line join.
type SetLineJoinCommand struct {
	Join dotfx.LineJoin
}

// Type implements Command.
func (SetLineJoinCommand) Type() CommandType { return CmdSetLineJoin }

// SetLineDashCommand sets the dash list. Nil means solid.
type SetLineDashCommand struct {
	Dash []float64
}

// Type implements Command.
func (SetLineDashCommand) Type() CommandType { return CmdSetLineDash }

// SetLineDashOffsetCommand sets the dash offset.
type SetLineDashOffsetCommand struct {
	Offset float64
}

// Type implements Command.
func (SetLineDashOffsetCommand) Type() CommandType { return CmdSetLineDashOffset }
