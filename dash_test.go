package dotfx

import (
	"slices"
	"testing"
)

func TestNormalizeDash(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"even", []float64{5, 3}, []float64{5, 3}},
		{"odd repeats", []float64{5}, []float64{5, 5}},
		{"odd three", []float64{1, 2, 3}, []float64{1, 2, 3, 1, 2, 3}},
		{"negative made absolute", []float64{-4, 2}, []float64{4, 2}},
		{"all zero is solid", []float64{0, 0}, nil},
		{"empty is solid", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDash(tt.in...); !slices.Equal(got, tt.want) {
				t.Errorf("NormalizeDash(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDashPatternLength(t *testing.T) {
	if got := DashPatternLength(NormalizeDash(2, 3, 1)); got != 12 {
		t.Errorf("DashPatternLength = %v, want 12", got)
	}
	if got := DashPatternLength(nil); got != 0 {
		t.Errorf("DashPatternLength(nil) = %v, want 0", got)
	}
}
