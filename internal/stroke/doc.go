// Package stroke converts stroked paths into polygons that, filled with the
// non-zero rule, cover the stroke.
//
// # Pipeline
//
//  1. Flattener turns path commands into polylines, subdividing curves
//     until they are within Tolerance of the true curve.
//  2. Dash splits polylines into the "on" pieces of a dash pattern.
//  3. Outline emits, for every polyline, one quad per segment plus join
//     and cap polygons. All polygons are wound counter-clockwise so that
//     overlaps add up instead of cancelling.
//
// # Line Caps
//
//   - CapButt: flat cap ending exactly at the endpoint
//   - CapRound: semicircular cap with radius = width/2
//   - CapSquare: square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - JoinMiter: sharp corner, falling back to bevel past MiterLimit
//   - JoinRound: circular arc at corners
//   - JoinBevel: straight line across the corner
//
// # References
//
// Join geometry and the miter limit test follow kurbo (src/stroke.rs) and
// tiny-skia (path/src/stroker.rs).
package stroke
