package textmotion

import (
	"math"
	"sync"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/layer"
	"github.com/gogpu/motion/transform"
)

const (
	// DefaultStagger is the share of the duration spent staggering glyph
	// starts.
	DefaultStagger = 0.6
	// DefaultTrailing scales how far glyphs lead or lag the layer.
	DefaultTrailing = 1.0

	maxStagger = 0.95
	epsilon    = 1e-6
)

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}

func easeOutCubic(t float64) float64 {
	inv := 1 - clampUnit(t)
	return 1 - inv*inv*inv
}

// SlideLeftProvider is a glyph offset/alpha provider that cascades glyphs
// behind a sliding layer. Each glyph eases in after a per-glyph delay and
// is offset by how far its own progress differs from the layer's.
type SlideLeftProvider struct {
	durationUS int64
	deltaX     float64
	stagger    float64
	trailing   float64

	mu       sync.Mutex
	manualUS float64 // < 0 when time drives the provider
}

// NewSlideLeftProvider returns a provider for a slide of deltaX pixels
// lasting durationUS. Stagger is clamped to [0, 0.95], trailing to at
// least 0 and the duration to at least 1µs.
func NewSlideLeftProvider(durationUS int64, deltaX, stagger, trailing float64) *SlideLeftProvider {
	return &SlideLeftProvider{
		durationUS: max(durationUS, 1),
		deltaX:     deltaX,
		stagger:    min(max(stagger, 0), maxStagger),
		trailing:   max(trailing, 0),
		manualUS:   -1,
	}
}

// Duration returns the slide duration in microseconds.
func (p *SlideLeftProvider) Duration() int64 {
	return p.durationUS
}

// SetProgress pins the provider to progress (clamped to [0, 1]) regardless
// of the time passed to Compute.
func (p *SlideLeftProvider) SetProgress(progress float64) {
	p.mu.Lock()
	p.manualUS = clampUnit(progress) * float64(p.durationUS)
	p.mu.Unlock()
}

// Compute implements layer.GlyphOffsetAlphaProvider.
func (p *SlideLeftProvider) Compute(localTimeUS int64, n int, dx, dy, alpha []float32) bool {
	if n <= 0 || len(dx) < n || len(dy) < n || len(alpha) < n {
		return false
	}
	p.mu.Lock()
	t := p.manualUS
	p.mu.Unlock()
	if t < 0 {
		t = float64(localTimeUS)
	}
	duration := float64(p.durationUS)
	t = min(max(t, 0), duration)

	base := easeOutCubic(t / duration)
	totalDelay := duration * p.stagger
	var perGlyph float64
	if n > 1 {
		perGlyph = totalDelay / float64(n-1)
	}
	active := duration - totalDelay
	if active <= epsilon {
		active = duration
	}

	applied := false
	for i := range n {
		local := t - perGlyph*float64(i)
		var g float64
		switch {
		case local <= 0:
			g = 0
		case local >= active:
			g = 1
		default:
			g = local / active
		}
		eased := easeOutCubic(g)
		offset := float32((eased - base) * p.deltaX * p.trailing)
		dx[i] = offset
		dy[i] = 0
		alpha[i] = float32(clampUnit(eased))
		if math.Abs(float64(offset)) > epsilon || alpha[i] > 0 {
			applied = true
		}
	}
	return applied
}

// SlideLeftPreset slides a text layer horizontally from startX to endX
// while its glyphs cascade in through a SlideLeftProvider.
type SlideLeftPreset struct {
	layer      *layer.TextLayer
	provider   *SlideLeftProvider
	durationUS int64

	anchor   motion.Point
	scale    motion.Point
	rotation float64
	opacity  motion.Opacity
	from, to motion.Point

	mu       sync.Mutex
	progress float64
}

// NewSlideLeftPreset installs a slide-left provider on l and resets the
// layer to the start of the slide. It returns nil for a nil layer or a
// non-positive duration.
func NewSlideLeftPreset(l *layer.TextLayer, durationUS int64, startX, endX, stagger, trailing float64) *SlideLeftPreset {
	if l == nil || durationUS <= 0 {
		return nil
	}
	base := l.Transform2D()
	pos := base.StaticPosition()
	p := &SlideLeftPreset{
		layer:      l,
		durationUS: durationUS,
		anchor:     base.AnchorPoint().Value(),
		scale:      base.Scale().Value(),
		rotation:   base.Rotation().Value(),
		opacity:    base.Opacity().Value(),
		from:       motion.Pt(startX, pos.Y),
		to:         motion.Pt(endX, pos.Y),
	}
	p.provider = NewSlideLeftProvider(durationUS, endX-startX, stagger, trailing)
	p.provider.SetProgress(0)
	l.SetGlyphProvider(p.provider)
	l.SetProgress(0)
	p.updateTransform(0)
	return p
}

// Provider returns the installed glyph provider.
func (p *SlideLeftPreset) Provider() *SlideLeftProvider {
	return p.provider
}

// Apply moves the slide to progress, clamped to [0, 1].
func (p *SlideLeftPreset) Apply(progress float64) {
	progress = clampUnit(progress)
	p.mu.Lock()
	p.progress = progress
	p.mu.Unlock()
	p.layer.SetProgress(progress)
	p.provider.SetProgress(progress)
	p.updateTransform(easeOutCubic(progress))
}

// Reset returns the slide to its start.
func (p *SlideLeftPreset) Reset() {
	p.Apply(0)
}

// Progress returns the last applied progress.
func (p *SlideLeftPreset) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progress
}

// Duration returns the slide duration in microseconds.
func (p *SlideLeftPreset) Duration() int64 {
	return p.durationUS
}

// Close removes the glyph provider from the layer when it is still the
// preset's.
func (p *SlideLeftPreset) Close() {
	if p.layer.GlyphProvider() == layer.GlyphOffsetAlphaProvider(p.provider) {
		p.layer.SetGlyphProvider(nil)
	}
}

func (p *SlideLeftPreset) updateTransform(eased float64) {
	t := transform.Default()
	t.AnchorPoint().SetValue(p.anchor)
	t.Scale().SetValue(p.scale)
	t.Rotation().SetValue(p.rotation)
	t.Opacity().SetValue(p.opacity)
	t.SetPosition(keyframe.NewPoint(p.from.Lerp(p.to, eased)))
	p.layer.SetTransform2D(t)
}
