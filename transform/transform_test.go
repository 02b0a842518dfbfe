package transform

import (
	"math"
	"testing"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
)

func TestDefaultIsIdentity(t *testing.T) {
	m, alpha := Default().Evaluate(0)
	if !m.IsIdentity() {
		t.Errorf("Default().Matrix() = %+v, want identity", m)
	}
	if alpha != 1 {
		t.Errorf("Default() alpha = %v, want 1", alpha)
	}
	if !Default().IsStatic() {
		t.Error("Default().IsStatic() = false")
	}
}

func TestMatrixOrder(t *testing.T) {
	tr := Default()
	tr.SetAnchorPoint(keyframe.NewPoint(motion.Pt(10, 10)))
	tr.SetPosition(keyframe.NewPoint(motion.Pt(100, 50)))
	tr.SetScale(keyframe.NewPoint(motion.Pt(2, 2)))
	tr.SetRotation(keyframe.NewScalar(90))

	m := tr.Matrix(0)
	// The anchor maps onto the position.
	if got := m.TransformPoint(motion.Pt(10, 10)); got.Distance(motion.Pt(100, 50)) > 1e-9 {
		t.Errorf("anchor maps to %v, want (100,50)", got)
	}
	// One unit right of the anchor: scaled to 2, rotated 90 degrees to +y.
	if got := m.TransformPoint(motion.Pt(11, 10)); got.Distance(motion.Pt(100, 52)) > 1e-9 {
		t.Errorf("(11,10) maps to %v, want (100,52)", got)
	}
}

func TestPositionRepresentationIsExclusive(t *testing.T) {
	tr := Default()
	tr.SetPosition(keyframe.NewPoint(motion.Pt(3, 4)))

	tr.SetXPosition(keyframe.NewScalar(7))
	if tr.Position() != nil {
		t.Fatal("SetXPosition() left the unified position active")
	}
	if got := tr.StaticPosition(); got != motion.Pt(7, 4) {
		t.Errorf("after SetXPosition position = %v, want (7,4)", got)
	}

	tr.SetPosition(keyframe.NewPoint(motion.Pt(1, 2)))
	if tr.XPosition() != nil || tr.YPosition() != nil {
		t.Fatal("SetPosition() left split components active")
	}
	if tr.SplitPosition() {
		t.Error("SplitPosition() = true after SetPosition")
	}
}

func TestPositionRoundTrip(t *testing.T) {
	values := []motion.Point{{X: 0.1, Y: 0.2}, {X: -1e9, Y: 1e-9}, {X: 33.333333333, Y: 7}}
	for _, p := range values {
		tr := Default()
		tr.SetPosition(keyframe.NewPoint(p))
		tr.SetPosition(keyframe.NewPoint(tr.StaticPosition()))
		if got := tr.PositionAt(0); got != p {
			t.Errorf("position round trip = %v, want %v", got, p)
		}
	}
}

func TestSplitPositionMissingComponentIsZero(t *testing.T) {
	tr := Default()
	tr.SetSplitPosition(keyframe.NewScalar(5), nil)
	tr.yPosition = nil
	if got := tr.PositionAt(0); got != motion.Pt(5, 0) {
		t.Errorf("PositionAt() = %v, want (5,0)", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	tr := Default()
	op, err := keyframe.AnimatedOpacity(&keyframe.Keyframe[motion.Opacity]{
		StartValue: 0, EndValue: 255, EndFrame: 10, Interpolation: keyframe.Linear,
	})
	if err != nil {
		t.Fatal(err)
	}
	tr.SetOpacity(op)
	c := tr.Clone()
	if !c.Equal(tr) {
		t.Fatal("Clone() not equal")
	}
	c.Opacity().SetValue(motion.Opaque)
	if !tr.Opacity().Animated() {
		t.Error("mutating clone changed source")
	}
	if tr.IsStatic() {
		t.Error("IsStatic() = true with animated opacity")
	}
	_, alpha := tr.Evaluate(5)
	if math.Abs(alpha-128.0/255) > 1e-12 {
		t.Errorf("alpha at 5 = %v, want 128/255", alpha)
	}
}
