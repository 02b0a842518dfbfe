package textmotion

import (
	"math"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/layer"
	"github.com/gogpu/motion/timeline"
)

// Preset builds text animators on one text layer. Animators that existed
// when the preset was created are kept below a base count; everything the
// preset adds sits above it.
//
// A preset's state is only touched under its layer's lock.
type Preset struct {
	layer *layer.TextLayer

	baseCount          int
	createdMoreOptions bool
	originalGrouping   layer.AnchorPointGrouping
}

// NewPreset binds a preset to l, recording its current animator count and
// grouping. It returns nil for a nil layer.
func NewPreset(l *layer.TextLayer) *Preset {
	if l == nil {
		return nil
	}
	p := &Preset{layer: l, originalGrouping: layer.GroupCharacter}
	l.UpdateAnimators(func(e *layer.TextEdit) bool {
		p.baseCount = len(e.Animators)
		if e.MoreOptions != nil {
			p.originalGrouping = e.MoreOptions.Grouping
		}
		return false
	})
	return p
}

// Layer returns the bound text layer.
func (p *Preset) Layer() *layer.TextLayer {
	return p.layer
}

// Clear removes every animator the preset created and restores the
// grouping it changed.
func (p *Preset) Clear() {
	p.layer.UpdateAnimators(p.clearLocked)
}

func (p *Preset) clearLocked(e *layer.TextEdit) bool {
	changed := false
	if p.createdMoreOptions {
		e.MoreOptions = nil
		p.createdMoreOptions = false
		changed = true
	} else if e.MoreOptions != nil && e.MoreOptions.Grouping != p.originalGrouping {
		e.MoreOptions.Grouping = p.originalGrouping
		changed = true
	}
	if len(e.Animators) > p.baseCount {
		e.Animators = e.Animators[:p.baseCount]
		changed = true
	}
	return changed
}

// Apply replaces the preset's animators with ones built from opts. It
// reports false, leaving only the base animators, when the layer has no
// glyphs.
func (p *Preset) Apply(opts Options) bool {
	created := 0
	ranges := 0
	p.layer.UpdateAnimators(func(e *layer.TextEdit) bool {
		changed := p.clearLocked(e)
		if len(e.Glyphs) == 0 {
			return changed
		}
		rs := BuildRanges(opts.Effect, e.Glyphs)
		ranges = len(rs)
		p.setGroupingLocked(e, opts.Effect)
		offsets := startOffsets(opts, len(rs))
		for i, r := range rs {
			a := p.buildAnimator(e, opts, r, offsets[i])
			if a == nil {
				continue
			}
			e.Animators = append(e.Animators, a)
			created++
		}
		return true
	})
	motion.Logger().Debug("text motion preset applied",
		"layer", p.layer.ID(), "type", opts.Type, "effect", opts.Effect,
		"ranges", ranges, "animators", created)
	return created > 0
}

func (p *Preset) setGroupingLocked(e *layer.TextEdit, effect Effect) {
	grouping := layer.GroupCharacter
	switch effect {
	case EffectWord:
		grouping = layer.GroupWord
	case EffectNone:
		grouping = layer.GroupAll
	}
	if e.MoreOptions == nil {
		e.MoreOptions = &layer.TextMoreOptions{}
		p.createdMoreOptions = true
	}
	if e.MoreOptions.GroupingAlignment == nil {
		e.MoreOptions.GroupingAlignment = keyframe.NewPoint(motion.Pt(0.5, 0.5))
	}
	e.MoreOptions.Grouping = grouping
}

// frameSpan converts a range's start offset to its keyframe frames on the
// layer's timeline.
func frameSpan(e *layer.TextEdit, offsetUS, durationUS float64) (start, end timeline.Frame) {
	start = e.StartFrame + timeline.TimeToFrame(int64(math.Round(offsetUS)), e.FrameRate)
	end = e.StartFrame + timeline.TimeToFrame(int64(math.Round(offsetUS+durationUS)), e.FrameRate)
	if end <= start {
		end = start + 1
	}
	if last := e.StartFrame + e.FrameDuration; end > last {
		end = max(last, start+1)
	}
	return start, end
}

func (p *Preset) buildAnimator(e *layer.TextEdit, opts Options, r Range, offsetUS float64) *layer.TextAnimator {
	n := len(e.Glyphs)
	r.Start, r.End = min(r.Start, n), min(r.End, n)
	if r.Start >= r.End {
		return nil
	}
	duration := max(opts.Duration, 0)
	start, end := frameSpan(e, offsetUS, duration)

	sel := layer.NewRangeSelector()
	sel.Start.SetValue(float64(r.Start) / float64(n))
	sel.End.SetValue(float64(r.End) / float64(n))
	if opts.Effect == EffectWord {
		sel.BasedOn = layer.BasedOnWords
	}

	out, in := opts.Easing.controlPoints()
	var props layer.TypographyProperties
	var err error
	switch opts.Type {
	case Scale:
		props.Scale, err = keyframe.AnimatedPoint(pointKeyframe(start, end, motion.Pt(0, 0), motion.Pt(1, 1), out, in))
	case Slide:
		props.Position, err = keyframe.AnimatedPoint(pointKeyframe(start, end, slideOffset(opts, e.FontSize), motion.Point{}, out, in))
	case Swing:
		props.Rotation, err = keyframe.AnimatedScalar(&keyframe.Keyframe[float64]{
			StartValue: swingAngle(opts.Direction), EndValue: 0,
			StartFrame: start, EndFrame: end,
			Interpolation: keyframe.Bezier,
			BezierOut:     []motion.Point{out}, BezierIn: []motion.Point{in},
		})
	default:
		props.Opacity, err = keyframe.AnimatedOpacity(&keyframe.Keyframe[motion.Opacity]{
			StartValue: motion.Transparent, EndValue: motion.Opaque,
			StartFrame: start, EndFrame: end,
			Interpolation: keyframe.Bezier,
			BezierOut:     []motion.Point{out}, BezierIn: []motion.Point{in},
		})
	}
	if err != nil {
		motion.Logger().Warn("text motion keyframe rejected", "layer", p.layer.ID(), "err", err)
		return nil
	}
	return &layer.TextAnimator{
		Selector:    sel,
		Properties:  props,
		Origin:      layer.OriginPreset,
		StartTimeUS: int64(math.Round(offsetUS)),
		EndTimeUS:   int64(math.Round(offsetUS + duration)),
	}
}

func pointKeyframe(start, end timeline.Frame, from, to, out, in motion.Point) *keyframe.Keyframe[motion.Point] {
	return &keyframe.Keyframe[motion.Point]{
		StartValue: from, EndValue: to,
		StartFrame: start, EndFrame: end,
		Interpolation: keyframe.Bezier,
		BezierOut:     []motion.Point{out, out},
		BezierIn:      []motion.Point{in, in},
	}
}

func slideOffset(opts Options, fontSize float64) motion.Point {
	m := opts.Distance * fontSize
	switch opts.Direction {
	case Up:
		return motion.Pt(0, -m)
	case Down:
		return motion.Pt(0, m)
	case Left:
		return motion.Pt(-m, 0)
	}
	return motion.Pt(m, 0)
}

func swingAngle(d Direction) float64 {
	switch d {
	case Up:
		return -20
	case Down:
		return 20
	case Left:
		return -15
	case Right:
		return 15
	}
	return 12
}

// SetOptions applies opts to l through the preset bound to it, creating
// and binding one when needed. Nil opts clears and unbinds the preset.
func SetOptions(l *layer.TextLayer, opts *Options) bool {
	if l == nil {
		return false
	}
	current := l.MotionPreset()
	if opts == nil {
		if current != nil {
			current.Clear()
			l.SetMotionPreset(nil)
		}
		return true
	}
	p, ok := current.(*Preset)
	if !ok || p.layer != l {
		if current != nil {
			current.Clear()
		}
		p = NewPreset(l)
		l.SetMotionPreset(p)
	}
	return p.Apply(*opts)
}
