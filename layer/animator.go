package layer

import (
	"math/rand/v2"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/text"
	"github.com/gogpu/motion/timeline"
)

// SelectorUnits is the unit of a range selector's Start, End and Offset.
type SelectorUnits uint8

const (
	// UnitsPercentage measures the range as fractions of the unit count.
	UnitsPercentage SelectorUnits = iota
	// UnitsIndex measures the range in whole units.
	UnitsIndex
)

// SelectorBasis is what a range selector counts.
type SelectorBasis uint8

const (
	BasedOnCharacters SelectorBasis = iota
	// BasedOnWords selects whole words: every glyph of a word takes the
	// word's average character coverage. Whitespace is never selected.
	BasedOnWords
)

// SelectorMode combines the selection with the unselected state.
type SelectorMode uint8

const (
	ModeAdd SelectorMode = iota
	ModeSubtract
)

// SelectorShape distributes the selection across the range.
type SelectorShape uint8

const (
	ShapeSquare SelectorShape = iota
	ShapeRampUp
	ShapeRampDown
	ShapeTriangle
)

// RangeSelector picks the glyphs a text animator applies to.
type RangeSelector struct {
	Start, End, Offset *keyframe.Property[float64]

	Units   SelectorUnits
	BasedOn SelectorBasis
	Mode    SelectorMode
	Amount  float64
	Shape   SelectorShape

	RandomizeOrder bool
	RandomSeed     uint64
}

// NewRangeSelector returns a selector covering every character.
func NewRangeSelector() *RangeSelector {
	return &RangeSelector{
		Start:  keyframe.NewScalar(0),
		End:    keyframe.NewScalar(1),
		Offset: keyframe.NewScalar(0),
		Amount: 1,
	}
}

// Clone returns a deep copy.
func (s *RangeSelector) Clone() *RangeSelector {
	if s == nil {
		return nil
	}
	c := *s
	c.Start = s.Start.Clone()
	c.End = s.End.Clone()
	c.Offset = s.Offset.Clone()
	return &c
}

// coverage returns how strongly unit u of count units is selected.
func (s *RangeSelector) coverage(u, count int, frame timeline.Frame) float64 {
	if count == 0 {
		return 0
	}
	start, end, off := s.Start.ValueAt(frame), s.End.ValueAt(frame), s.Offset.ValueAt(frame)
	if s.Units == UnitsPercentage {
		n := float64(count)
		start, end, off = start*n, end*n, off*n
	}
	start += off
	end += off
	if start > end {
		start, end = end, start
	}
	lo, hi := float64(u), float64(u+1)
	var c float64
	switch s.Shape {
	case ShapeSquare:
		c = max(0, min(hi, end)-max(lo, start))
	default:
		center := (lo + hi) / 2
		if end > start && center >= start && center <= end {
			p := (center - start) / (end - start)
			switch s.Shape {
			case ShapeRampUp:
				c = p
			case ShapeRampDown:
				c = 1 - p
			case ShapeTriangle:
				c = 1 - abs(2*p-1)
			}
		}
	}
	if s.Mode == ModeSubtract {
		c = 1 - c
	}
	return min(max(c*s.Amount, -1), 1)
}

// glyphCoverage evaluates the selector for every glyph.
func (s *RangeSelector) glyphCoverage(glyphs []text.Glyph, words []int, wordCount int, frame timeline.Frame) []float64 {
	n := len(glyphs)
	order := identity(n)
	if s.RandomizeOrder {
		order = rand.New(rand.NewPCG(s.RandomSeed, s.RandomSeed)).Perm(n)
	}
	out := make([]float64, n)
	for i := range glyphs {
		out[i] = s.coverage(order[i], n, frame)
	}
	if s.BasedOn != BasedOnWords {
		return out
	}
	sums := make([]float64, wordCount)
	counts := make([]int, wordCount)
	for i, w := range words {
		if w >= 0 {
			sums[w] += out[i]
			counts[w]++
		}
	}
	for i, w := range words {
		if w < 0 {
			out[i] = 0
			continue
		}
		out[i] = sums[w] / float64(counts[w])
	}
	return out
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TypographyProperties are the per-glyph deltas of a text animator. Nil
// properties do not animate. Scale is the glyph scale at full selection,
// Position an offset, Rotation degrees and Opacity the glyph opacity at
// full selection.
type TypographyProperties struct {
	Scale    *keyframe.Property[motion.Point]
	Position *keyframe.Property[motion.Point]
	Rotation *keyframe.Property[float64]
	Opacity  *keyframe.Property[motion.Opacity]
}

// AnimatorOrigin records who created an animator.
type AnimatorOrigin uint8

const (
	OriginUser AnimatorOrigin = iota
	OriginPreset
)

// TextAnimator applies typography deltas to the glyphs its selector picks.
type TextAnimator struct {
	Selector   *RangeSelector
	Properties TypographyProperties
	Origin     AnimatorOrigin

	// StartTimeUS and EndTimeUS are the scheduled offsets from the layer
	// start of a preset animator's keyframe.
	StartTimeUS, EndTimeUS int64
}

// Clone returns a deep copy.
func (a *TextAnimator) Clone() *TextAnimator {
	if a == nil {
		return nil
	}
	c := *a
	c.Selector = a.Selector.Clone()
	c.Properties = TypographyProperties{
		Scale:    a.Properties.Scale.Clone(),
		Position: a.Properties.Position.Clone(),
		Rotation: a.Properties.Rotation.Clone(),
		Opacity:  a.Properties.Opacity.Clone(),
	}
	return &c
}

// AnchorPointGrouping selects the box glyphs scale and rotate around.
type AnchorPointGrouping uint8

const (
	GroupCharacter AnchorPointGrouping = iota
	GroupWord
	GroupLine
	GroupAll
)

// TextMoreOptions holds text layer options shared by all animators.
type TextMoreOptions struct {
	Grouping AnchorPointGrouping
	// GroupingAlignment places the anchor inside the group box, as
	// fractions of its width and height.
	GroupingAlignment *keyframe.Property[motion.Point]
}

// Clone returns a deep copy.
func (o *TextMoreOptions) Clone() *TextMoreOptions {
	if o == nil {
		return nil
	}
	return &TextMoreOptions{Grouping: o.Grouping, GroupingAlignment: o.GroupingAlignment.Clone()}
}

// TextEdit is the animation state of a text layer handed to
// UpdateAnimators. Glyphs and the timing fields are read-only.
type TextEdit struct {
	Animators   []*TextAnimator
	MoreOptions *TextMoreOptions

	Glyphs        []text.Glyph
	FontSize      float64
	StartFrame    timeline.Frame
	FrameDuration timeline.Frame
	FrameRate     float64
}

// NumAnimators returns the number of text animators.
func (t *TextLayer) NumAnimators() int {
	d := t.lock()
	defer d.mu.Unlock()
	return len(t.animators)
}

// Animators returns deep copies of the text animators.
func (t *TextLayer) Animators() []*TextAnimator {
	d := t.lock()
	defer d.mu.Unlock()
	out := make([]*TextAnimator, len(t.animators))
	for i, a := range t.animators {
		out[i] = a.Clone()
	}
	return out
}

// MoreOptions returns a copy of the text more-options, or nil.
func (t *TextLayer) MoreOptions() *TextMoreOptions {
	d := t.lock()
	defer d.mu.Unlock()
	return t.moreOptions.Clone()
}

// UpdateAnimators runs fn on the layer's animation state under the
// layer's lock. When fn reports a change, the edited animators and
// more-options are stored and the layer is marked modified. It returns
// fn's result.
func (t *TextLayer) UpdateAnimators(fn func(e *TextEdit) bool) bool {
	d := t.lock()
	defer d.mu.Unlock()
	e := &TextEdit{
		Animators:     append([]*TextAnimator(nil), t.animators...),
		MoreOptions:   t.moreOptions,
		Glyphs:        t.glyphsLocked(),
		FontSize:      t.doc.FontSize,
		StartFrame:    t.startFrame,
		FrameDuration: t.frameDuration,
		FrameRate:     t.frameRate,
	}
	if !fn(e) {
		return false
	}
	t.animators = e.Animators
	t.moreOptions = e.MoreOptions
	t.notifyModifiedLocked(true)
	t.invalidateCacheScaleLocked()
	return true
}
