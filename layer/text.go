package layer

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/recording"
	"github.com/gogpu/motion/text"
	"github.com/gogpu/motion/timeline"
)

// Justification aligns lines horizontally around the layer origin.
type Justification uint8

const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
)

var justificationNames = [...]string{
	JustifyLeft:   "left",
	JustifyCenter: "center",
	JustifyRight:  "right",
}

func (j Justification) String() string {
	if int(j) < len(justificationNames) {
		return justificationNames[j]
	}
	return "unknown"
}

// ParseJustification returns the justification with the given name.
func ParseJustification(s string) (Justification, bool) {
	for i, name := range justificationNames {
		if name == s {
			return Justification(i), true
		}
	}
	return JustifyLeft, false
}

// TextDocument is the styled text of a text layer.
type TextDocument struct {
	Text       string
	FontSize   float64
	FontFamily string
	FontStyle  string

	ApplyFill   bool
	FillColor   motion.Color
	ApplyStroke bool
	StrokeColor motion.Color
	StrokeWidth float64
	FauxBold    bool
	FauxItalic  bool

	BackgroundColor motion.Color
	BackgroundAlpha motion.Opacity

	Justification Justification
	// Leading is the baseline distance in pixels; 0 selects the layouter's
	// default.
	Leading float64
	// Tracking is extra spacing between glyphs in thousandths of an em.
	Tracking float64
}

// DefaultTextDocument returns black filled 24px text.
func DefaultTextDocument() TextDocument {
	return TextDocument{
		FontSize:    24,
		ApplyFill:   true,
		FillColor:   motion.Black,
		StrokeColor: motion.Black,
		StrokeWidth: 1,
	}
}

// MotionPreset is an animation generator bound to a text layer.
type MotionPreset interface {
	Clear()
}

var defaultLayouter text.Layouter = text.NewClusterLayouter()

// TextLayer draws a text document, optionally animated per glyph by text
// animators and a glyph offset/alpha provider.
type TextLayer struct {
	Layer

	doc      TextDocument
	original TextDocument
	layouter text.Layouter

	animators   []*TextAnimator
	moreOptions *TextMoreOptions
	provider    GlyphOffsetAlphaProvider
	preset      MotionPreset
}

// NewTextLayer creates a text layer lasting durationUS at 60 fps, with its
// position at (0, fontSize) so the first baseline sits inside the layer.
// It returns nil for a non-positive duration.
func NewTextLayer(durationUS int64, content string, fontSize float64, family, style string) *TextLayer {
	if durationUS <= 0 {
		return nil
	}
	doc := DefaultTextDocument()
	doc.Text = content
	doc.FontSize = fontSize
	doc.FontFamily = family
	doc.FontStyle = style
	t := &TextLayer{doc: doc, original: doc, layouter: defaultLayouter}
	t.init(t, KindText, timeline.TimeToFrame(durationUS, timeline.DefaultFrameRate), timeline.DefaultFrameRate)
	t.transform.Position().SetValue(motion.Pt(0, fontSize))
	return t
}

// SetLayouter replaces the glyph layouter. Nil restores the default
// grapheme cluster layouter.
func (t *TextLayer) SetLayouter(l text.Layouter) {
	if l == nil {
		l = defaultLayouter
	}
	d := t.lock()
	defer d.mu.Unlock()
	t.layouter = l
	t.notifyModifiedLocked(true)
	t.invalidateCacheScaleLocked()
}

// TextDocument returns a copy of the current document.
func (t *TextLayer) TextDocument() TextDocument {
	d := t.lock()
	defer d.mu.Unlock()
	return t.doc
}

// SetTextDocument replaces the document. Nil restores the document the
// layer was created with.
func (t *TextLayer) SetTextDocument(doc *TextDocument) {
	t.updateDocument(func(cur *TextDocument) bool {
		next := t.original
		if doc != nil {
			next = *doc
		}
		if *cur == next {
			return false
		}
		*cur = next
		return true
	})
}

func (t *TextLayer) updateDocument(fn func(doc *TextDocument) bool) {
	d := t.lock()
	defer d.mu.Unlock()
	if fn(&t.doc) {
		t.notifyModifiedLocked(true)
		t.invalidateCacheScaleLocked()
	}
}

// Text returns the document text.
func (t *TextLayer) Text() string {
	d := t.lock()
	defer d.mu.Unlock()
	return t.doc.Text
}

// SetText replaces the document text, keeping its style.
func (t *TextLayer) SetText(s string) {
	t.updateDocument(func(doc *TextDocument) bool {
		if doc.Text == s {
			return false
		}
		doc.Text = s
		return true
	})
}

// FontSize returns the font size in pixels.
func (t *TextLayer) FontSize() float64 {
	d := t.lock()
	defer d.mu.Unlock()
	return t.doc.FontSize
}

// SetFontSize sets the font size in pixels.
func (t *TextLayer) SetFontSize(size float64) {
	t.updateDocument(func(doc *TextDocument) bool {
		if doc.FontSize == size {
			return false
		}
		doc.FontSize = size
		return true
	})
}

// Font returns the font family and style.
func (t *TextLayer) Font() (family, style string) {
	d := t.lock()
	defer d.mu.Unlock()
	return t.doc.FontFamily, t.doc.FontStyle
}

// SetFont sets the font family and style recorded in the document.
func (t *TextLayer) SetFont(family, style string) {
	t.updateDocument(func(doc *TextDocument) bool {
		if doc.FontFamily == family && doc.FontStyle == style {
			return false
		}
		doc.FontFamily, doc.FontStyle = family, style
		return true
	})
}

// FillColor returns the glyph fill color.
func (t *TextLayer) FillColor() motion.Color {
	d := t.lock()
	defer d.mu.Unlock()
	return t.doc.FillColor
}

// SetFillColor sets the glyph fill color.
func (t *TextLayer) SetFillColor(c motion.Color) {
	t.updateDocument(func(doc *TextDocument) bool {
		if doc.FillColor == c {
			return false
		}
		doc.FillColor = c
		return true
	})
}

// StrokeColor returns the glyph stroke color.
func (t *TextLayer) StrokeColor() motion.Color {
	d := t.lock()
	defer d.mu.Unlock()
	return t.doc.StrokeColor
}

// SetStrokeColor sets the glyph stroke color.
func (t *TextLayer) SetStrokeColor(c motion.Color) {
	t.updateDocument(func(doc *TextDocument) bool {
		if doc.StrokeColor == c {
			return false
		}
		doc.StrokeColor = c
		return true
	})
}

// Glyphs returns the current layout with tracking and justification
// applied. Line breaks appear as glyphs named "\n".
func (t *TextLayer) Glyphs() []text.Glyph {
	d := t.lock()
	defer d.mu.Unlock()
	return t.glyphsLocked()
}

func (t *TextLayer) glyphsLocked() []text.Glyph {
	glyphs := t.layouter.Layout(t.doc.Text, t.doc.FontSize)
	if len(glyphs) == 0 {
		return nil
	}
	if t.doc.Tracking != 0 {
		shift := t.doc.Tracking * t.doc.FontSize / 1000
		col, line := 0, -1
		for i := range glyphs {
			if glyphs[i].Line != line {
				line, col = glyphs[i].Line, 0
			}
			glyphs[i].X += float64(col) * shift
			col++
		}
	}
	if t.doc.Justification != JustifyLeft {
		widths := make(map[int]float64)
		for _, g := range glyphs {
			widths[g.Line] = max(widths[g.Line], g.X+g.Advance)
		}
		for i := range glyphs {
			w := widths[glyphs[i].Line]
			if t.doc.Justification == JustifyCenter {
				w /= 2
			}
			glyphs[i].X -= w
		}
	}
	return glyphs
}

// MeasureText measures the text with the layouter. It reports false when
// the layouter cannot measure.
func (t *TextLayer) MeasureText() (text.Metrics, bool) {
	d := t.lock()
	defer d.mu.Unlock()
	m, ok := t.layouter.(text.Measurer)
	if !ok {
		return text.Metrics{}, false
	}
	return m.Measure(t.doc.Text, t.doc.FontSize), true
}

// GlyphProvider returns the registered glyph offset/alpha provider.
func (t *TextLayer) GlyphProvider() GlyphOffsetAlphaProvider {
	d := t.lock()
	defer d.mu.Unlock()
	return t.provider
}

// SetGlyphProvider registers p, replacing any previous provider. Nil
// removes the provider.
func (t *TextLayer) SetGlyphProvider(p GlyphOffsetAlphaProvider) {
	d := t.lock()
	defer d.mu.Unlock()
	t.provider = p
	t.notifyModifiedLocked(true)
}

// MotionPreset returns the preset bound to the layer.
func (t *TextLayer) MotionPreset() MotionPreset {
	d := t.lock()
	defer d.mu.Unlock()
	return t.preset
}

// SetMotionPreset binds p to the layer. It does not clear a previous
// preset.
func (t *TextLayer) SetMotionPreset(p MotionPreset) {
	d := t.lock()
	defer d.mu.Unlock()
	t.preset = p
}

func (t *TextLayer) isStaticLocked() bool {
	return t.transform.IsStatic() && len(t.animators) == 0 && t.provider == nil
}

func (t *TextLayer) contentBoundsLocked() motion.Rect {
	var r motion.Rect
	size := t.doc.FontSize
	for _, g := range t.glyphsLocked() {
		if g.IsNewline() {
			continue
		}
		r = r.Union(motion.XYWH(g.X, g.Y-0.8*size, g.Advance, size))
	}
	return r
}

func (t *TextLayer) drawContentLocked(rec recording.Recorder) {
	states := t.glyphStatesLocked(t.contentFrame)
	drawn := states[:0]
	for _, s := range states {
		if s.Name == "\n" || s.Name == "\r" || s.Alpha <= 0 {
			continue
		}
		drawn = append(drawn, s)
	}
	if t.doc.BackgroundAlpha > 0 {
		if bg := t.contentBoundsLocked(); !bg.IsEmpty() {
			rec.Save()
			rec.SetAlpha(t.doc.BackgroundAlpha.Alpha())
			rec.FillRect(bg, t.doc.BackgroundColor)
			rec.Restore()
		}
	}
	if len(drawn) == 0 {
		return
	}
	if t.doc.ApplyStroke && t.doc.StrokeWidth > 0 {
		rec.DrawGlyphs(drawn, t.doc.FontSize, t.doc.StrokeColor)
	}
	if t.doc.ApplyFill {
		rec.DrawGlyphs(drawn, t.doc.FontSize, t.doc.FillColor)
	}
}
