package motion

// Color is an 8-bit RGB triple as exchanged with hosts.
type Color struct {
	R, G, B uint8
}

// RGB creates a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors.
var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
)

// Luminance returns the Rec. 709 relative luminance in [0, 1], the
// quantity luma track mattes sample.
func (c Color) Luminance() float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}

// Opacity is an integer opacity where 0 is fully transparent and 255 fully
// opaque.
type Opacity uint8

const (
	Transparent Opacity = 0
	Opaque      Opacity = 255
)

// Alpha returns the opacity as a fraction in [0, 1].
func (o Opacity) Alpha() float64 {
	return float64(o) / 255
}

// OpacityFromAlpha converts a fraction to the nearest Opacity, clamping to
// [Transparent, Opaque].
func OpacityFromAlpha(a float64) Opacity {
	return ClampOpacity(a * 255)
}

// ClampOpacity rounds v to the nearest integer and clamps it to 0..255.
func ClampOpacity(v float64) Opacity {
	switch {
	case v != v || v <= 0:
		return Transparent
	case v >= 255:
		return Opaque
	}
	return Opacity(v + 0.5)
}
