package motion

import (
	"math"
	"testing"
)

func TestClampOpacity(t *testing.T) {
	tests := []struct {
		in   float64
		want Opacity
	}{
		{-10, Transparent},
		{0, Transparent},
		{0.4, 0},
		{0.5, 1},
		{127.5, 128},
		{254.6, Opaque},
		{300, Opaque},
		{math.NaN(), Transparent},
	}
	for _, tt := range tests {
		if got := ClampOpacity(tt.in); got != tt.want {
			t.Errorf("ClampOpacity(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestOpacityAlpha(t *testing.T) {
	if got := Opaque.Alpha(); got != 1 {
		t.Errorf("Opaque.Alpha() = %v, want 1", got)
	}
	if got := OpacityFromAlpha(0.5); got != 128 {
		t.Errorf("OpacityFromAlpha(0.5) = %d, want 128", got)
	}
}

func TestLuminance(t *testing.T) {
	if got := White.Luminance(); math.Abs(got-1) > 1e-9 {
		t.Errorf("White.Luminance() = %v, want 1", got)
	}
	if got := Black.Luminance(); got != 0 {
		t.Errorf("Black.Luminance() = %v, want 0", got)
	}
}

func TestPointLerp(t *testing.T) {
	p := Pt(0, 10).Lerp(Pt(10, 20), 1.5)
	if want := Pt(15, 25); p != want {
		t.Errorf("Lerp(1.5) = %v, want %v", p, want)
	}
	if d := Pt(0, 0).Distance(Pt(3, 4)); d != 5 {
		t.Errorf("Distance() = %v, want 5", d)
	}
}
