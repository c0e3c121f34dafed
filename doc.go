// Package dotfx provides the geometry, dynamic color and path rendering
// core of an animated 2D dot drawing library.
//
// # Overview
//
// dotfx sits beneath interactive scenes made of dots and shapes that move
// every frame. It supplies three things the scene code calls each frame:
//
//   - Entity: a positioned object with a radius, bounding-box edges and
//     box or circular hit-testing.
//   - ColorCapability and ColorBinding: a fill or stroke color that is
//     either fixed or a gradient that recomputes as the geometry it
//     decorates moves.
//   - Stroke and Fill: a single interpreter that paints line, quadratic,
//     cubic and arc path descriptors with a style profile or patch.
//
// # Quick Start
//
//	canvas := raster.NewCanvas(400, 300)
//
//	dot := dotfx.NewEntity(dotfx.Pt(100, 100),
//	    dotfx.WithSurface(canvas),
//	    dotfx.WithInitRadius(dotfx.FixedRadius(10)),
//	    dotfx.WithColor(dotfx.NewGradientTemplate(dotfx.GradientRadial, 0,
//	        dotfx.Stop(0, dotfx.White), dotfx.Stop(1, dotfx.Blue))))
//	dot.Initialize()
//
//	_ = dotfx.Fill(canvas, dotfx.Arc(dot.Pos(), dot.Radius()),
//	    dotfx.Patch().WithColor(dot.Color().ColorObject()))
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Path
// angles are radians; gradient rotations are degrees.
//
// # Concurrency
//
// Everything here is driven synchronously by an external frame loop and is
// not safe for concurrent use. Only SetLogger and Logger are atomic.
package dotfx
