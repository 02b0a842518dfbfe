package textmotion

import (
	"math"
	"testing"

	"github.com/gogpu/motion/layer"
)

const (
	slideDuration = 3 * second
	slideStartX   = 240.0
	slideEndX     = 40.0
)

func computeSlide(p *SlideLeftProvider, timeUS int64, n int) (dx, dy, alpha []float32, ok bool) {
	dx, dy, alpha = make([]float32, n), make([]float32, n), make([]float32, n)
	ok = p.Compute(timeUS, n, dx, dy, alpha)
	return dx, dy, alpha, ok
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSlideLeftProviderHalfway(t *testing.T) {
	p := NewSlideLeftProvider(slideDuration, slideEndX-slideStartX, DefaultStagger, DefaultTrailing)
	dx, dy, alpha, ok := computeSlide(p, slideDuration/2, 5)
	if !ok {
		t.Fatal("Compute() = false")
	}
	// The first glyph has finished and leads the layer, the last has not
	// started and trails it.
	if !near(float64(dx[0]), -25, 1e-3) || !near(float64(alpha[0]), 1, 1e-6) {
		t.Errorf("glyph 0 = dx %v alpha %v, want -25, 1", dx[0], alpha[0])
	}
	if !near(float64(dx[4]), 175, 1e-3) || alpha[4] != 0 {
		t.Errorf("glyph 4 = dx %v alpha %v, want 175, 0", dx[4], alpha[4])
	}
	for i := 1; i < 5; i++ {
		if dx[i] < dx[i-1] {
			t.Errorf("dx not cascading at %d: %v < %v", i, dx[i], dx[i-1])
		}
		if dy[i] != 0 {
			t.Errorf("dy[%d] = %v, want 0", i, dy[i])
		}
	}
}

func TestSlideLeftProviderSettles(t *testing.T) {
	p := NewSlideLeftProvider(slideDuration, slideEndX-slideStartX, DefaultStagger, DefaultTrailing)
	dx, _, alpha, _ := computeSlide(p, slideDuration, 5)
	for i := range dx {
		if !near(float64(dx[i]), 0, 1e-3) || !near(float64(alpha[i]), 1, 1e-3) {
			t.Errorf("glyph %d = dx %v alpha %v, want settled", i, dx[i], alpha[i])
		}
	}
	dx, _, alpha, _ = computeSlide(p, 10*slideDuration, 5)
	if !near(float64(dx[4]), 0, 1e-3) || !near(float64(alpha[4]), 1, 1e-3) {
		t.Error("time past the end not clamped")
	}
}

func TestSlideLeftProviderManualProgress(t *testing.T) {
	p := NewSlideLeftProvider(slideDuration, slideEndX-slideStartX, DefaultStagger, DefaultTrailing)
	p.SetProgress(0.75)
	dx, _, alpha, _ := computeSlide(p, 0, 5)
	if dx[0] >= 0 || dx[4] <= 0 || alpha[4] >= 1 {
		t.Errorf("manual progress ignored: dx %v alpha %v", dx, alpha)
	}
	p.SetProgress(2)
	dx, _, _, _ = computeSlide(p, 0, 5)
	if !near(float64(dx[4]), 0, 1e-3) {
		t.Errorf("progress not clamped: dx[4] = %v", dx[4])
	}
}

func TestSlideLeftProviderEdges(t *testing.T) {
	tests := []struct {
		name     string
		duration int64
		stagger  float64
		trailing float64
		timeUS   int64
		n        int
		ok       bool
	}{
		{"no glyphs", slideDuration, 0.6, 1, 0, 0, false},
		{"start is transparent and still", slideDuration, 0.6, 1, 0, 3, false},
		{"single glyph", slideDuration, 0.6, 1, slideDuration / 2, 1, true},
		{"zero duration", 0, 0.6, 1, 0, 2, false},
		{"stagger clamped", slideDuration, 3, 1, slideDuration / 2, 4, true},
		{"negative trailing", slideDuration, 0.6, -1, slideDuration / 2, 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewSlideLeftProvider(tt.duration, -200, tt.stagger, tt.trailing)
			_, _, _, ok := computeSlide(p, tt.timeUS, tt.n)
			if ok != tt.ok {
				t.Errorf("Compute() = %v, want %v", ok, tt.ok)
			}
		})
	}

	p := NewSlideLeftProvider(0, -200, 3, -1)
	if p.Duration() != 1 || p.stagger != maxStagger || p.trailing != 0 {
		t.Errorf("clamped provider = %d, %v, %v", p.Duration(), p.stagger, p.trailing)
	}
	if p.Compute(0, 4, make([]float32, 2), make([]float32, 4), make([]float32, 4)) {
		t.Error("Compute() with short buffers = true")
	}
}

func TestSlideLeftPreset(t *testing.T) {
	l := layer.NewTextLayer(slideDuration, "Hello", 48, "Sans", "Regular")
	if NewSlideLeftPreset(nil, slideDuration, slideStartX, slideEndX, DefaultStagger, DefaultTrailing) != nil {
		t.Error("NewSlideLeftPreset(nil) != nil")
	}
	if NewSlideLeftPreset(l, 0, slideStartX, slideEndX, DefaultStagger, DefaultTrailing) != nil {
		t.Error("NewSlideLeftPreset(zero duration) != nil")
	}
	p := NewSlideLeftPreset(l, slideDuration, slideStartX, slideEndX, DefaultStagger, DefaultTrailing)
	if p == nil {
		t.Fatal("NewSlideLeftPreset() = nil")
	}
	if l.GlyphProvider() != layer.GlyphOffsetAlphaProvider(p.Provider()) {
		t.Fatal("provider not installed")
	}
	if p.Duration() != slideDuration {
		t.Errorf("Duration() = %d", p.Duration())
	}

	tests := []struct {
		progress float64
		x        float64
		layerP   float64
	}{
		{0, slideStartX, 0},
		{0.5, slideStartX + (slideEndX-slideStartX)*0.875, 0.5},
		{1, slideEndX, 1},
		{1.5, slideEndX, 1},
	}
	for _, tt := range tests {
		p.Apply(tt.progress)
		pos := l.Position()
		if !near(pos.X, tt.x, 1e-9) {
			t.Errorf("Apply(%v): x = %v, want %v", tt.progress, pos.X, tt.x)
		}
		if pos.Y != 48 {
			t.Errorf("Apply(%v): y = %v, want 48", tt.progress, pos.Y)
		}
		if !near(l.Progress(), tt.layerP, 0.01) {
			t.Errorf("Apply(%v): layer progress = %v, want %v", tt.progress, l.Progress(), tt.layerP)
		}
	}
	if p.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", p.Progress())
	}

	p.Reset()
	if p.Progress() != 0 || !near(l.Position().X, slideStartX, 1e-9) {
		t.Error("Reset() did not return to the start")
	}

	p.Close()
	if l.GlyphProvider() != nil {
		t.Error("Close() left the provider installed")
	}
}
