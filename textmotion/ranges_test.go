package textmotion

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/motion/text"
)

func glyphs(names ...string) []text.Glyph {
	out := make([]text.Glyph, len(names))
	for i, n := range names {
		out[i] = text.Glyph{Name: n}
	}
	return out
}

func TestBuildRanges(t *testing.T) {
	mixed := glyphs("a", "b", " ", "c", "d", "\n", "e", "f")
	tests := []struct {
		name   string
		effect Effect
		glyphs []text.Glyph
		want   []Range
	}{
		{"none", EffectNone, mixed, []Range{{0, 8}}},
		{"letters", EffectLetter, mixed, []Range{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {6, 7}, {7, 8}}},
		{"words", EffectWord, mixed, []Range{{0, 2}, {3, 5}, {6, 8}}},
		{"leading and trailing space", EffectWord, glyphs(" ", "a", "\t"), []Range{{1, 2}}},
		{"spaces only letters", EffectLetter, glyphs(" ", " ", "\r"), []Range{{0, 3}}},
		{"spaces only words", EffectWord, glyphs(" "), []Range{{0, 1}}},
		{"cluster is a letter", EffectLetter, glyphs("👍🏽", " ", "é"), []Range{{0, 1}, {2, 3}}},
		{"empty", EffectLetter, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRanges(tt.effect, tt.glyphs)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildRanges() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLetterRangesCoverNonWhitespace(t *testing.T) {
	g := glyphs("H", "i", " ", " ", "t", "h", "e", "r", "e", "\n", "!")
	covered := make([]int, len(g))
	for _, r := range BuildRanges(EffectLetter, g) {
		for i := r.Start; i < r.End; i++ {
			covered[i]++
		}
	}
	for i, c := range covered {
		want := 1
		if text.IsWhitespace(g[i].Name) {
			want = 0
		}
		if c != want {
			t.Errorf("glyph %d (%q) covered %d times, want %d", i, g[i].Name, c, want)
		}
	}
}

func TestStartOffsets(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		n    int
		want []float64
	}{
		{"linear", Options{Effect: EffectLetter, EffectDelay: 50}, 4, []float64{0, 50, 100, 150}},
		{"no effect", Options{Effect: EffectNone, EffectDelay: 50}, 3, []float64{0, 0, 0}},
		{"single range", Options{Effect: EffectWord, EffectDelay: 50}, 1, []float64{0}},
		{"negative delay", Options{Effect: EffectLetter, EffectDelay: -10}, 3, []float64{0, 0, 0}},
		{"ease in", Options{Effect: EffectLetter, EffectDelay: 100, EffectSmooth: SmoothEaseIn}, 3, []float64{0, 50, 200}},
		{"ease out", Options{Effect: EffectLetter, EffectDelay: 100, EffectSmooth: SmoothEaseOut}, 3, []float64{0, 150, 200}},
		{"smooth", Options{Effect: EffectLetter, EffectDelay: 100, EffectSmooth: SmoothSmooth}, 3, []float64{0, 100, 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := startOffsets(tt.opts, tt.n)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("startOffsets() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStaggerMonotonic(t *testing.T) {
	const delay = 37.5
	offsets := startOffsets(Options{Effect: EffectLetter, EffectDelay: delay}, 12)
	for i := 1; i < len(offsets); i++ {
		if d := offsets[i] - offsets[i-1]; d != delay {
			t.Errorf("offset step %d = %v, want %v", i, d, delay)
		}
	}
}

func TestParseEnums(t *testing.T) {
	for ty := Fade; ty <= Swing; ty++ {
		if got, ok := ParseType(ty.String()); !ok || got != ty {
			t.Errorf("ParseType(%q) = %v, %v", ty, got, ok)
		}
	}
	for d := Up; d <= Side; d++ {
		if got, ok := ParseDirection(d.String()); !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d, got, ok)
		}
	}
	for e := Smooth; e <= Spring; e++ {
		if got, ok := ParseEasing(e.String()); !ok || got != e {
			t.Errorf("ParseEasing(%q) = %v, %v", e, got, ok)
		}
	}
	for e := EffectNone; e <= EffectWord; e++ {
		if got, ok := ParseEffect(e.String()); !ok || got != e {
			t.Errorf("ParseEffect(%q) = %v, %v", e, got, ok)
		}
	}
	for s := SmoothNone; s <= SmoothEaseOut; s++ {
		if got, ok := ParseEffectSmooth(s.String()); !ok || got != s {
			t.Errorf("ParseEffectSmooth(%q) = %v, %v", s, got, ok)
		}
	}
	if _, ok := ParseType("spin"); ok {
		t.Error("ParseType(spin) ok = true")
	}
}

func TestDefaultOptions(t *testing.T) {
	want := Options{Type: Fade, Direction: Up, Distance: 0.5, Easing: Smooth}
	if diff := cmp.Diff(want, DefaultOptions()); diff != "" {
		t.Errorf("DefaultOptions() mismatch (-want +got):\n%s", diff)
	}
}
