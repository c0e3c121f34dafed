package dotfx

import "math"

// NormalizeDash prepares a dash list the way a canvas setLineDash does:
// negative lengths become absolute, an odd-length list is repeated to make
// it even, and a list with no positive length means solid (nil).
//
// Examples:
//
//	NormalizeDash(5, 3)    // [5 3]
//	NormalizeDash(5)       // [5 5]
//	NormalizeDash(0, 0)    // nil, solid
func NormalizeDash(lengths ...float64) []float64 {
	positive := false
	out := make([]float64, 0, 2*len(lengths))
	for _, l := range lengths {
		l = math.Abs(l)
		if l > 0 {
			positive = true
		}
		out = append(out, l)
	}
	if !positive {
		return nil
	}
	if len(out)%2 != 0 {
		out = append(out, out...)
	}
	return out
}

// DashPatternLength returns the length of one full cycle of a normalized
// dash list.
func DashPatternLength(dash []float64) float64 {
	var total float64
	for _, l := range dash {
		total += l
	}
	return total
}
