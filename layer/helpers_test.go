package layer

import (
	"testing"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/recording"
)

const second = 1_000_000

func newSolid(t *testing.T, durationUS int64) *SolidLayer {
	t.Helper()
	s := NewSolidLayer(durationUS, 10, 10, motion.RGB(255, 0, 0), motion.Opaque)
	if s == nil {
		t.Fatal("NewSolidLayer() = nil")
	}
	return s
}

func newComp(t *testing.T, durationUS int64, rate float64) *Composition {
	t.Helper()
	c := NewComposition(100, 100, durationUS, rate)
	if c == nil {
		t.Fatal("NewComposition() = nil")
	}
	return c
}

func sameDomain(a, b Node) bool {
	return a.base().domain.Load() == b.base().domain.Load()
}

type stubContent struct {
	bounds motion.Rect
}

func (c *stubContent) Draw(rec recording.Recorder) {
	rec.DrawContent("stub", c.bounds)
}

func (c *stubContent) Bounds() motion.Rect { return c.bounds }

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func approxPt(a, b motion.Point) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}
