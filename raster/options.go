package raster

import (
	"github.com/gogpu/dotfx"
	"github.com/gogpu/dotfx/internal/stroke"
)

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	c := raster.NewCanvas(800, 600,
//	    raster.WithBackground(dotfx.White),
//	    raster.WithTolerance(0.1))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	tolerance  float64
	miterLimit float64
	background dotfx.RGBA
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		tolerance:  stroke.DefaultTolerance,
		miterLimit: 10,
		background: dotfx.Transparent,
	}
}

// WithTolerance sets the curve flattening tolerance in pixels used when
// stroking. Non-positive values are ignored.
func WithTolerance(tol float64) CanvasOption {
	return func(o *canvasOptions) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithMiterLimit sets the miter limit for LineJoinMiter. Values below 1
// are ignored.
func WithMiterLimit(limit float64) CanvasOption {
	return func(o *canvasOptions) {
		if limit >= 1 {
			o.miterLimit = limit
		}
	}
}

// WithBackground sets the color the canvas starts with and Reset clears to.
func WithBackground(c dotfx.RGBA) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}
