package textmotion

import (
	"github.com/gogpu/motion/text"
)

// Range is a half-open span [Start, End) of glyph indices.
type Range struct {
	Start, End int
}

// BuildRanges groups glyphs into animation ranges. EffectLetter yields one
// range per non-whitespace glyph and EffectWord one per maximal run of
// non-whitespace glyphs; whitespace and line breaks belong to no range.
// EffectNone, and any effect that finds no ranges, yields a single range
// over every glyph. An empty layout yields no ranges.
func BuildRanges(effect Effect, glyphs []text.Glyph) []Range {
	if len(glyphs) == 0 {
		return nil
	}
	var ranges []Range
	switch effect {
	case EffectLetter:
		for i, g := range glyphs {
			if !text.IsWhitespace(g.Name) {
				ranges = append(ranges, Range{Start: i, End: i + 1})
			}
		}
	case EffectWord:
		start := -1
		for i, g := range glyphs {
			if text.IsWhitespace(g.Name) {
				if start >= 0 {
					ranges = append(ranges, Range{Start: start, End: i})
					start = -1
				}
				continue
			}
			if start < 0 {
				start = i
			}
		}
		if start >= 0 {
			ranges = append(ranges, Range{Start: start, End: len(glyphs)})
		}
	}
	if len(ranges) == 0 {
		ranges = append(ranges, Range{Start: 0, End: len(glyphs)})
	}
	return ranges
}

// startOffsets returns the start offset of each of n ranges.
func startOffsets(opts Options, n int) []float64 {
	offsets := make([]float64, n)
	if opts.Effect == EffectNone || n <= 1 {
		return offsets
	}
	delay := max(opts.EffectDelay, 0)
	total := delay * float64(n-1)
	for i := range offsets {
		if opts.EffectSmooth == SmoothNone {
			offsets[i] = delay * float64(i)
			continue
		}
		offsets[i] = opts.EffectSmooth.curve(float64(i)/float64(n-1)) * total
	}
	return offsets
}
