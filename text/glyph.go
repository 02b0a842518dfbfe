package text

import (
	"unicode"
	"unicode/utf8"
)

// Glyph is one positioned glyph of a layout.
type Glyph struct {
	// Name is the source text of the glyph's cluster.
	Name string
	// ID is the font glyph index, 0 when the layouter has no font.
	ID uint16
	// X and Y locate the glyph origin relative to the layout origin. Y is
	// the baseline of the glyph's line.
	X, Y float64
	// Advance is the horizontal advance.
	Advance float64
	// Cluster is the byte offset of the cluster in the normalised text.
	Cluster int
	// Line is the zero-based line index.
	Line int
}

// IsNewline reports whether the glyph is a line break marker.
func (g Glyph) IsNewline() bool {
	return g.Name == "\n" || g.Name == "\r"
}

// IsWhitespace reports whether a glyph name denotes whitespace: a line
// break, or exactly one rune that Unicode classifies as space.
// Multi-rune clusters are never whitespace.
func IsWhitespace(name string) bool {
	if name == "" {
		return false
	}
	if name == "\n" || name == "\r" {
		return true
	}
	r, size := utf8.DecodeRuneInString(name)
	if size != len(name) || r == utf8.RuneError {
		return false
	}
	return unicode.IsSpace(r)
}

// Layouter lays out text at a font size.
type Layouter interface {
	Layout(text string, fontSize float64) []Glyph
}

// Measurer is implemented by layouters that can report text metrics.
type Measurer interface {
	Measure(text string, fontSize float64) Metrics
}

// LineHeightFactor is the line spacing relative to the font size when no
// leading is set.
const LineHeightFactor = 1.2
