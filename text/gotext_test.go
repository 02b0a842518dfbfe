package text

import (
	"errors"
	"sync"
	"testing"
)

func newTestLayouter(t *testing.T, opts ...Option) *GoTextLayouter {
	t.Helper()
	l, err := NewGoTextLayouter(opts...)
	if err != nil {
		t.Fatalf("NewGoTextLayouter() error = %v", err)
	}
	return l
}

func TestNewGoTextLayouterEmptyFont(t *testing.T) {
	_, err := NewGoTextLayouter(WithFont(nil))
	if !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewGoTextLayouter(WithFont(nil)) error = %v, want %v", err, ErrEmptyFontData)
	}
	if _, err := NewGoTextLayouter(WithFont([]byte("not a font"))); err == nil {
		t.Error("NewGoTextLayouter(garbage) error = nil, want error")
	}
}

func TestGoTextLayout(t *testing.T) {
	l := newTestLayouter(t)
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "H|e|l|l|o"},
		{"a b", "a| |b"},
		{"ab\ncd", "a|b|\n|c|d"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := glyphNames(l.Layout(tt.in, 24)); got != tt.want {
			t.Errorf("Layout(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGoTextLayoutPositions(t *testing.T) {
	l := newTestLayouter(t)
	glyphs := l.Layout("AV\nA", 20)
	if len(glyphs) != 4 {
		t.Fatalf("Layout() = %d glyphs, want 4", len(glyphs))
	}
	for i := 1; i < 2; i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d X = %v, want > %v", i, glyphs[i].X, glyphs[i-1].X)
		}
	}
	if glyphs[0].ID == 0 {
		t.Error("glyph ID = 0, want a mapped glyph")
	}
	last := glyphs[3]
	if last.Line != 1 || last.Y != 24 || last.X != 0 {
		t.Errorf("second line glyph = %+v, want line 1 at (0, 24)", last)
	}
}

func TestGoTextLayoutLeading(t *testing.T) {
	l := newTestLayouter(t, WithLeading(40))
	glyphs := l.Layout("a\nb", 20)
	if got := glyphs[len(glyphs)-1].Y; got != 40 {
		t.Errorf("second line Y = %v, want 40", got)
	}
}

func TestGoTextLayoutCache(t *testing.T) {
	l := newTestLayouter(t, WithCacheCapacity(16))
	first := l.Layout("cached", 12)
	first[0].Name = "mutated"
	second := l.Layout("cached", 12)
	if second[0].Name != "c" {
		t.Errorf("cached glyph name = %q, want %q", second[0].Name, "c")
	}
	if stats := l.CacheStats(); stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("CacheStats() = %+v, want 1 hit and 1 miss", stats)
	}
}

func TestGoTextMeasure(t *testing.T) {
	l := newTestLayouter(t)
	m := l.Measure("Hello", 32)
	if m.Width <= 0 {
		t.Errorf("Width = %v, want > 0", m.Width)
	}
	if m.ActualBoundingBoxAscent <= 0 || m.ActualBoundingBoxAscent > 32 {
		t.Errorf("ActualBoundingBoxAscent = %v, want in (0, 32]", m.ActualBoundingBoxAscent)
	}
	if m.FontBoundingBoxAscent+m.FontBoundingBoxDescent < 38.39 {
		t.Errorf("font box height = %v, want line height 38.4",
			m.FontBoundingBoxAscent+m.FontBoundingBoxDescent)
	}
	wide := l.Measure("Hello Hello", 32)
	if wide.Width <= m.Width {
		t.Errorf("longer text Width = %v, want > %v", wide.Width, m.Width)
	}
}

func TestGoTextConcurrent(t *testing.T) {
	l := newTestLayouter(t)
	want := glyphNames(l.Layout("concurrent", 18))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				if got := glyphNames(l.Layout("concurrent", 18)); got != want {
					t.Errorf("Layout() = %q, want %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
