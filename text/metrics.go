package text

// Metrics describes the extent of laid out text, in the vocabulary of the
// HTML canvas TextMetrics interface.
type Metrics struct {
	Width float64

	ActualBoundingBoxLeft    float64
	ActualBoundingBoxRight   float64
	ActualBoundingBoxAscent  float64
	ActualBoundingBoxDescent float64

	FontBoundingBoxAscent  float64
	FontBoundingBoxDescent float64

	EmHeightAscent  float64
	EmHeightDescent float64
}

// fontBox derives font box and em box metrics from ascent and descent
// magnitudes, spreading one line height in proportion to them.
func fontBox(m *Metrics, fontSize, ascent, descent float64) {
	lineHeight := fontSize * LineHeightFactor
	sum := ascent + descent
	if sum <= 0 {
		m.FontBoundingBoxAscent = lineHeight * 0.8
		m.FontBoundingBoxDescent = lineHeight * 0.2
		m.EmHeightAscent = fontSize * 0.8
		m.EmHeightDescent = fontSize * 0.2
		return
	}
	bottom := descent / sum * lineHeight
	m.FontBoundingBoxDescent = bottom
	m.FontBoundingBoxAscent = lineHeight - bottom
	m.EmHeightAscent = fontSize * ascent / sum
	m.EmHeightDescent = fontSize * descent / sum
}
