package layer

import (
	"math"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/recording"
	"github.com/gogpu/motion/text"
	"github.com/gogpu/motion/timeline"
)

// GlyphStates evaluates the text animators and the glyph provider at a
// content frame and returns one drawable glyph per layout glyph, line
// breaks included.
func (t *TextLayer) GlyphStates(contentFrame timeline.Frame) []recording.Glyph {
	d := t.lock()
	defer d.mu.Unlock()
	return t.glyphStatesLocked(contentFrame)
}

type glyphDelta struct {
	scale    motion.Point
	offset   motion.Point
	rotation float64
	alpha    float64
}

func (t *TextLayer) glyphStatesLocked(contentFrame timeline.Frame) []recording.Glyph {
	glyphs := t.glyphsLocked()
	n := len(glyphs)
	states := make([]recording.Glyph, n)
	for i, g := range glyphs {
		states[i] = recording.Glyph{
			Name:     g.Name,
			ID:       g.ID,
			Position: motion.Pt(g.X, g.Y),
			Scale:    motion.Pt(1, 1),
			Alpha:    1,
		}
	}
	if n == 0 {
		return states
	}
	if len(t.animators) > 0 {
		t.applyAnimatorsLocked(glyphs, states, t.startFrame+contentFrame)
	}
	if t.provider != nil {
		dx := make([]float32, n)
		dy := make([]float32, n)
		alpha := make([]float32, n)
		for i := range alpha {
			alpha[i] = 1
		}
		timeUS := timeline.FrameToTime(contentFrame, t.frameRate)
		if t.provider.Compute(timeUS, n, dx, dy, alpha) {
			for i := range states {
				states[i].Position.X += float64(dx[i])
				states[i].Position.Y += float64(dy[i])
				states[i].Alpha *= float64(alpha[i])
			}
		}
	}
	return states
}

func (t *TextLayer) applyAnimatorsLocked(glyphs []text.Glyph, states []recording.Glyph, frame timeline.Frame) {
	words, wordCount := wordIndices(glyphs)
	deltas := make([]glyphDelta, len(glyphs))
	for i := range deltas {
		deltas[i] = glyphDelta{scale: motion.Pt(1, 1), alpha: 1}
	}
	for _, a := range t.animators {
		if a.Selector == nil {
			continue
		}
		cover := a.Selector.glyphCoverage(glyphs, words, wordCount, frame)
		p := a.Properties
		for i, c := range cover {
			if c == 0 {
				continue
			}
			dl := &deltas[i]
			if p.Scale != nil {
				s := p.Scale.ValueAt(frame)
				dl.scale.X *= 1 + (s.X-1)*c
				dl.scale.Y *= 1 + (s.Y-1)*c
			}
			if p.Position != nil {
				dl.offset = dl.offset.Add(p.Position.ValueAt(frame).Mul(c))
			}
			if p.Rotation != nil {
				dl.rotation += p.Rotation.ValueAt(frame) * c
			}
			if p.Opacity != nil {
				dl.alpha *= 1 + (p.Opacity.ValueAt(frame).Alpha()-1)*c
			}
		}
	}
	anchors := t.groupAnchorsLocked(glyphs, words, frame)
	for i := range states {
		dl := deltas[i]
		origin := states[i].Position
		a := anchors[i]
		m := motion.Rotate(dl.rotation * math.Pi / 180).Multiply(motion.Scale(dl.scale.X, dl.scale.Y))
		states[i].Position = a.Add(m.TransformPoint(origin.Sub(a))).Add(dl.offset)
		states[i].Scale = dl.scale
		states[i].Rotation = dl.rotation
		states[i].Alpha = min(max(dl.alpha, 0), 1)
	}
}

// groupAnchorsLocked returns the point each glyph scales and rotates
// around. Without more-options that is the glyph origin.
func (t *TextLayer) groupAnchorsLocked(glyphs []text.Glyph, words []int, frame timeline.Frame) []motion.Point {
	anchors := make([]motion.Point, len(glyphs))
	opts := t.moreOptions
	if opts == nil {
		for i, g := range glyphs {
			anchors[i] = motion.Pt(g.X, g.Y)
		}
		return anchors
	}
	size := t.doc.FontSize
	box := func(g text.Glyph) motion.Rect {
		return motion.XYWH(g.X, g.Y-0.8*size, max(g.Advance, 0), size)
	}
	groupOf := func(i int) int {
		switch opts.Grouping {
		case GroupWord:
			if words[i] >= 0 {
				return words[i]
			}
			return -1 - i
		case GroupLine:
			return glyphs[i].Line
		case GroupAll:
			return 0
		}
		return i
	}
	groups := make(map[int]motion.Rect)
	for i, g := range glyphs {
		k := groupOf(i)
		r, ok := groups[k]
		if !ok {
			r = box(g)
		} else {
			r = unionBox(r, box(g))
		}
		groups[k] = r
	}
	align := motion.Pt(0.5, 0.5)
	if opts.GroupingAlignment != nil {
		align = opts.GroupingAlignment.ValueAt(frame)
	}
	for i := range glyphs {
		r := groups[groupOf(i)]
		anchors[i] = motion.Pt(r.Left+r.Width()*align.X, r.Top+r.Height()*align.Y)
	}
	return anchors
}

// unionBox unions boxes that may have zero width.
func unionBox(a, b motion.Rect) motion.Rect {
	return motion.Rect{
		Left:   min(a.Left, b.Left),
		Top:    min(a.Top, b.Top),
		Right:  max(a.Right, b.Right),
		Bottom: max(a.Bottom, b.Bottom),
	}
}

// wordIndices assigns each glyph the index of the whitespace-delimited
// word it belongs to, or -1 for whitespace.
func wordIndices(glyphs []text.Glyph) ([]int, int) {
	words := make([]int, len(glyphs))
	count := 0
	inWord := false
	for i, g := range glyphs {
		if text.IsWhitespace(g.Name) {
			words[i] = -1
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
		words[i] = count - 1
	}
	return words, count
}
