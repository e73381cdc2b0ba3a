package util

import (
	"testing"

	"github.com/fogleman/ease"
)

func TestGenerateLut(t *testing.T) {
	lut := GenerateLut(11, ease.InOutQuad)
	if len(lut) != 11 {
		t.Fatalf("len = %d, want 11", len(lut))
	}
	if lut[0] != 0 || lut[10] != 1 || lut[5] != 0.5 {
		t.Errorf("lut = %v", lut)
	}
	for i := 1; i < len(lut); i++ {
		if lut[i] < lut[i-1] {
			t.Errorf("lut not monotonic at %d: %v", i, lut)
		}
	}
}

func TestSampleLut(t *testing.T) {
	lut := GenerateLut(5, ease.Linear)
	tests := []struct {
		t, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{0.3, 0.25},
		{2, 1},
	}
	for _, tt := range tests {
		if got := SampleLut(lut, tt.t); got != tt.want {
			t.Errorf("SampleLut(%g) = %g, want %g", tt.t, got, tt.want)
		}
	}
	if got := SampleLut(nil, 0.7); got != 0.7 {
		t.Errorf("SampleLut(nil) = %g, want 0.7", got)
	}
}
