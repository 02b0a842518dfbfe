package text

import (
	"bytes"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/motion/cache"
)

// Option configures a GoTextLayouter.
type Option func(*config)

type config struct {
	fontData      []byte
	cacheCapacity int
	language      string
	leading       float64
}

// WithFont sets the TrueType or OpenType font to shape with. The default
// is Go Regular.
func WithFont(data []byte) Option {
	return func(c *config) { c.fontData = data }
}

// WithCacheCapacity sets how many layouts are memoised. Zero selects the
// cache default.
func WithCacheCapacity(n int) Option {
	return func(c *config) { c.cacheCapacity = n }
}

// WithLanguage sets the BCP 47 language tag passed to the shaper.
func WithLanguage(tag string) Option {
	return func(c *config) { c.language = tag }
}

// WithLeading sets the baseline distance between lines.
func WithLeading(px float64) Option {
	return func(c *config) { c.leading = px }
}

type layoutKey struct {
	text string
	size float64
}

// GoTextLayouter shapes text with HarfBuzz through go-text/typesetting.
//
// It is safe for concurrent use: the parsed font is shared read-only, a
// face is created per call, and shapers are pooled.
type GoTextLayouter struct {
	font    *font.Font
	lang    language.Language
	leading float64

	shapers sync.Pool
	layouts *cache.Sharded[layoutKey, []Glyph]
}

// NewGoTextLayouter parses the configured font and returns a layouter.
func NewGoTextLayouter(opts ...Option) (*GoTextLayouter, error) {
	cfg := config{fontData: goregular.TTF, language: "en"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.fontData) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(cfg.fontData))
	if err != nil {
		return nil, err
	}
	l := &GoTextLayouter{
		font:    face.Font,
		lang:    language.NewLanguage(cfg.language),
		leading: cfg.leading,
		layouts: cache.NewSharded[layoutKey, []Glyph](cfg.cacheCapacity),
	}
	l.shapers.New = func() any { return &shaping.HarfbuzzShaper{} }
	return l, nil
}

// CacheStats reports layout cache counters.
func (l *GoTextLayouter) CacheStats() cache.Stats {
	return l.layouts.Stats()
}

// Layout implements Layouter. The returned slice belongs to the caller.
func (l *GoTextLayouter) Layout(s string, fontSize float64) []Glyph {
	if s == "" || fontSize <= 0 {
		return nil
	}
	glyphs := l.layouts.GetOrCreate(layoutKey{s, fontSize}, func() []Glyph {
		return l.layout(s, fontSize)
	})
	return slices.Clone(glyphs)
}

func (l *GoTextLayouter) layout(s string, fontSize float64) []Glyph {
	_, lines := splitLines(s)
	adv := lineAdvance(fontSize, l.leading)
	var out []Glyph
	var x float64
	for i, ln := range lines {
		y := float64(i) * adv
		if i > 0 {
			prev := lines[i-1]
			out = append(out, newlineGlyph(x, y-adv, prev.offset+len(prev.text), i-1))
		}
		x = 0
		if ln.text == "" {
			continue
		}
		runes := []rune(ln.text)
		output := l.shape(runes, fontSize)
		names, offsets := clusterText(runes, output.Glyphs)
		for _, g := range output.Glyphs {
			out = append(out, Glyph{
				Name:    names[g.TextIndex()],
				ID:      uint16(g.GlyphID), //nolint:gosec // glyph indices fit in uint16
				X:       x + fixedToFloat(g.XOffset),
				Y:       y - fixedToFloat(g.YOffset),
				Advance: fixedToFloat(g.Advance),
				Cluster: ln.offset + offsets[g.TextIndex()],
				Line:    i,
			})
			x += fixedToFloat(g.Advance)
		}
	}
	return out
}

func (l *GoTextLayouter) shape(runes []rune, fontSize float64) shaping.Output {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(l.font),
		Size:      floatToFixed(fontSize),
		Script:    detectScript(runes),
		Language:  l.lang,
	}
	hb := l.shapers.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	l.shapers.Put(hb)
	return output
}

// Measure implements Measurer using the font's line metrics and the ink
// extents of the shaped glyphs.
func (l *GoTextLayouter) Measure(s string, fontSize float64) Metrics {
	var m Metrics
	if fontSize <= 0 {
		return m
	}
	_, lines := splitLines(s)
	adv := lineAdvance(fontSize, l.leading)
	var ascent, descent float64
	top, bottom, left, right := 0.0, 0.0, 0.0, 0.0
	inked := false
	for i, ln := range lines {
		runes := []rune(ln.text)
		output := l.shape(runes, fontSize)
		ascent = fixedToFloat(output.LineBounds.Ascent)
		descent = -fixedToFloat(output.LineBounds.Descent)
		if w := fixedToFloat(output.Advance); w > m.Width {
			m.Width = w
		}
		baseline := float64(i) * adv
		var x float64
		for _, g := range output.Glyphs {
			if g.Width != 0 && g.Height != 0 {
				gl := x + fixedToFloat(g.XOffset+g.XBearing)
				gr := gl + fixedToFloat(g.Width)
				gt := baseline - fixedToFloat(g.YOffset+g.YBearing)
				gb := gt - fixedToFloat(g.Height)
				if !inked {
					left, right, top, bottom = gl, gr, gt, gb
					inked = true
				} else {
					left, right = min(left, gl), max(right, gr)
					top, bottom = min(top, gt), max(bottom, gb)
				}
			}
			x += fixedToFloat(g.Advance)
		}
	}
	if inked {
		m.ActualBoundingBoxLeft = -left
		m.ActualBoundingBoxRight = right
		m.ActualBoundingBoxAscent = -top
		m.ActualBoundingBoxDescent = bottom
	}
	fontBox(&m, fontSize, ascent, descent)
	return m
}

// clusterText maps each cluster start (a rune index) to the cluster's text
// and byte offset. A cluster extends to the next cluster start.
func clusterText(runes []rune, glyphs []shaping.Glyph) (map[int]string, map[int]int) {
	starts := make([]int, 0, len(glyphs))
	for _, g := range glyphs {
		starts = append(starts, g.TextIndex())
	}
	slices.Sort(starts)
	starts = slices.Compact(starts)

	byteOffset := make([]int, len(runes)+1)
	for i, r := range runes {
		byteOffset[i+1] = byteOffset[i] + utf8.RuneLen(r)
	}

	names := make(map[int]string, len(starts))
	offsets := make(map[int]int, len(starts))
	for i, start := range starts {
		end := len(runes)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		names[start] = string(runes[start:end])
		offsets[start] = byteOffset[start]
	}
	return names, offsets
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
