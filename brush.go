package dotfx

// Brush is a resolved paint value: what a Surface strokes or fills with.
// This is a sealed interface; only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single color
//   - *LinearGradientBrush, *RadialGradientBrush, *ConicGradientBrush
//
// Brushes are produced by ColorCapability and ColorBinding; surfaces
// sample them with ColorAt.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the color at the given surface coordinates.
	ColorAt(x, y float64) RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// Solid creates a SolidBrush from an RGBA color.
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}
