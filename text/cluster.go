package text

import (
	"github.com/rivo/uniseg"
)

// MonospaceAdvance is the advance of a single-width cluster relative to the
// font size in ClusterLayouter.
const MonospaceAdvance = 0.6

// ClusterLayouter lays out one glyph per extended grapheme cluster with
// monospace advances. Wide clusters (East Asian wide characters, emoji)
// advance twice as far. It needs no font data.
type ClusterLayouter struct {
	// Leading overrides the baseline distance between lines when positive.
	Leading float64
}

// NewClusterLayouter returns a ClusterLayouter with default spacing.
func NewClusterLayouter() *ClusterLayouter {
	return &ClusterLayouter{}
}

// Layout implements Layouter.
func (l *ClusterLayouter) Layout(s string, fontSize float64) []Glyph {
	_, lines := splitLines(s)
	adv := lineAdvance(fontSize, l.Leading)
	var out []Glyph
	var x float64
	for i, ln := range lines {
		y := float64(i) * adv
		if i > 0 {
			prev := lines[i-1]
			out = append(out, newlineGlyph(x, y-adv, prev.offset+len(prev.text), i-1))
		}
		x = 0
		g := uniseg.NewGraphemes(ln.text)
		for g.Next() {
			from, _ := g.Positions()
			w := float64(g.Width()) * MonospaceAdvance * fontSize
			out = append(out, Glyph{
				Name:    g.Str(),
				X:       x,
				Y:       y,
				Advance: w,
				Cluster: ln.offset + from,
				Line:    i,
			})
			x += w
		}
	}
	return out
}

// Measure implements Measurer with nominal ascent 0.8 and descent 0.2 of
// the font size.
func (l *ClusterLayouter) Measure(s string, fontSize float64) Metrics {
	glyphs := l.Layout(s, fontSize)
	var m Metrics
	ascent, descent := 0.8*fontSize, 0.2*fontSize
	lastLine := 0
	inked := false
	for _, g := range glyphs {
		if right := g.X + g.Advance; right > m.Width {
			m.Width = right
		}
		if g.Line > lastLine {
			lastLine = g.Line
		}
		if !IsWhitespace(g.Name) && g.Advance > 0 {
			inked = true
		}
	}
	if inked {
		m.ActualBoundingBoxRight = m.Width
		m.ActualBoundingBoxAscent = ascent
		m.ActualBoundingBoxDescent = float64(lastLine)*lineAdvance(fontSize, l.Leading) + descent
	}
	fontBox(&m, fontSize, ascent, descent)
	return m
}
