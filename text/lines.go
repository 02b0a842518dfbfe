package text

import "golang.org/x/text/unicode/norm"

// line is one line of normalised text and its byte offset.
type line struct {
	text   string
	offset int
}

// splitLines NFC-normalises s and splits it on \n, \r\n and \r.
func splitLines(s string) (string, []line) {
	s = norm.NFC.String(s)
	var lines []line
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, line{text: s[start:i], offset: start})
			start = i + 1
		case '\r':
			lines = append(lines, line{text: s[start:i], offset: start})
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	lines = append(lines, line{text: s[start:], offset: start})
	return s, lines
}

// newlineGlyph is the marker emitted between lines.
func newlineGlyph(x, y float64, offset, lineIndex int) Glyph {
	return Glyph{Name: "\n", X: x, Y: y, Cluster: offset, Line: lineIndex}
}

// lineAdvance returns the baseline distance between lines.
func lineAdvance(fontSize, leading float64) float64 {
	if leading > 0 {
		return leading
	}
	return fontSize * LineHeightFactor
}
