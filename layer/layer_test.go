package layer

import (
	"testing"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/timeline"
	"github.com/gogpu/motion/transform"
)

func TestNewLayer(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		duration int64
		wantNil  bool
	}{
		{"null", KindNull, second, false},
		{"shape", KindShape, second, false},
		{"image", KindImage, second, false},
		{"text kind", KindText, second, true},
		{"composition kind", KindComposition, second, true},
		{"zero duration", KindNull, 0, true},
		{"negative duration", KindNull, -5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayer(tt.kind, tt.duration)
			if (l == nil) != tt.wantNil {
				t.Fatalf("NewLayer(%v, %d) nil = %v, want %v", tt.kind, tt.duration, l == nil, tt.wantNil)
			}
			if l != nil && l.FrameDuration() != 60 {
				t.Errorf("FrameDuration() = %d, want 60", l.FrameDuration())
			}
		})
	}
}

func TestLayerIDsUnique(t *testing.T) {
	a := NewLayer(KindNull, second)
	b := NewLayer(KindNull, second)
	if a.ID() == b.ID() {
		t.Errorf("IDs equal: %d", a.ID())
	}
}

func TestParseKind(t *testing.T) {
	for k := KindNull; k <= KindComposition; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("camera"); ok {
		t.Error("ParseKind(camera) ok = true")
	}
}

func TestSetterVersions(t *testing.T) {
	root := newComp(t, 2*second, 60)
	s := newSolid(t, second)
	root.AddLayer(s)

	tests := []struct {
		name    string
		mutate  func()
		changed bool
	}{
		{"alpha", func() { s.SetAlpha(0.5) }, true},
		{"same alpha", func() { s.SetAlpha(0.5) }, false},
		{"visible", func() { s.SetVisible(false) }, true},
		{"same visible", func() { s.SetVisible(false) }, false},
		{"matrix", func() { s.SetMatrix(motion.Translate(1, 2)) }, true},
		{"same matrix", func() { s.SetMatrix(motion.Translate(1, 2)) }, false},
		{"position", func() { s.SetPosition(motion.Pt(3, 4)) }, true},
		{"same position", func() { s.SetPosition(motion.Pt(3, 4)) }, false},
		{"color", func() { s.SetSolidColor(motion.White) }, true},
		{"same color", func() { s.SetSolidColor(motion.White) }, false},
		{"motion blur", func() { s.SetMotionBlur(true) }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			own, parent := s.ContentVersion(), root.ContentVersion()
			tt.mutate()
			gotOwn := s.ContentVersion() != own
			gotParent := root.ContentVersion() != parent
			if gotOwn != tt.changed || gotParent != tt.changed {
				t.Errorf("versions changed own=%v parent=%v, want %v", gotOwn, gotParent, tt.changed)
			}
		})
	}
}

func TestPositionRoundTrip(t *testing.T) {
	l := NewLayer(KindNull, second)
	for _, p := range []motion.Point{{X: 0.1, Y: 0.2}, {X: -1e9, Y: 3.3333333}, {}} {
		l.SetPosition(p)
		l.SetPosition(l.Position())
		if got := l.Position(); got != p {
			t.Errorf("Position() = %v, want %v", got, p)
		}
	}
}

func TestSetPositionLeavesSplit(t *testing.T) {
	l := NewLayer(KindNull, second)
	tf := transform.Default()
	tf.SetXPosition(keyframe.NewScalar(7))
	l.SetTransform2D(tf)
	if !l.Transform2D().SplitPosition() {
		t.Fatal("transform not split")
	}
	l.SetPosition(motion.Pt(1, 2))
	got := l.Transform2D()
	if got.SplitPosition() || got.XPosition() != nil || got.YPosition() != nil {
		t.Error("SetPosition left split components active")
	}
	if l.Position() != motion.Pt(1, 2) {
		t.Errorf("Position() = %v, want (1, 2)", l.Position())
	}
}

func TestTransform2DIsCopied(t *testing.T) {
	l := NewLayer(KindNull, second)
	tf := transform.Default()
	tf.Rotation().SetValue(45)
	if !l.SetTransform2D(tf) {
		t.Fatal("SetTransform2D() = false")
	}
	tf.Rotation().SetValue(90)
	if got := l.Rotation(); got != 45 {
		t.Errorf("Rotation() = %v after mutating the source, want 45", got)
	}
	out := l.Transform2D()
	out.Rotation().SetValue(10)
	if got := l.Rotation(); got != 45 {
		t.Errorf("Rotation() = %v after mutating the copy, want 45", got)
	}
	if l.SetTransform2D(nil) {
		t.Error("SetTransform2D(nil) = true")
	}
}

func TestGetTransform(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *SolidLayer)
		ok     bool
	}{
		{"default", func(*SolidLayer) {}, true},
		{"zero alpha", func(s *SolidLayer) { s.SetAlpha(0) }, false},
		{"transparent", func(s *SolidLayer) { s.SetOpacity(motion.Transparent) }, false},
		{"singular matrix", func(s *SolidLayer) { s.SetMatrix(motion.Scale(0, 1)) }, false},
		{"zero scale", func(s *SolidLayer) { s.SetScale(motion.Pt(0, 0)) }, false},
		{"past the end", func(s *SolidLayer) { s.SetCurrentTime(5 * second) }, false},
		{"before start", func(s *SolidLayer) { s.SetStartTime(second) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSolid(t, second)
			tt.mutate(s)
			if _, _, ok := s.GetTransform(); ok != tt.ok {
				t.Errorf("GetTransform() ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}

func TestGetTransformComposes(t *testing.T) {
	s := newSolid(t, second)
	s.SetPosition(motion.Pt(10, 0))
	s.SetMatrix(motion.Scale(2, 2))
	s.SetAlpha(0.5)
	s.SetOpacity(motion.Opacity(51))
	m, alpha, ok := s.GetTransform()
	if !ok {
		t.Fatal("GetTransform() ok = false")
	}
	// Transform first, then the host matrix.
	if got := m.TransformPoint(motion.Pt(1, 1)); got != motion.Pt(22, 2) {
		t.Errorf("TransformPoint() = %v, want (22, 2)", got)
	}
	if want := 0.1; alpha < want-1e-9 || alpha > want+1e-9 {
		t.Errorf("alpha = %v, want %v", alpha, want)
	}
}

func TestTransformUsesLayerFrame(t *testing.T) {
	s := newSolid(t, 2*second)
	tf := transform.Default()
	x, err := keyframe.AnimatedScalar(&keyframe.Keyframe[float64]{
		StartValue: 0, EndValue: 100, StartFrame: 60, EndFrame: 70, Interpolation: keyframe.Linear,
	})
	if err != nil {
		t.Fatal(err)
	}
	tf.SetXPosition(x)
	s.SetTransform2D(tf)
	s.SetStartTime(second)
	// Content frame 5 is layer frame 65.
	s.SetCurrentTime(timeline.FrameToTime(65, 60))
	m, _, ok := s.GetTransform()
	if !ok {
		t.Fatal("GetTransform() ok = false")
	}
	if m.C != 50 {
		t.Errorf("x translation = %v, want 50", m.C)
	}
}

func TestTotalMatrixAndGlobalToLocal(t *testing.T) {
	root := newComp(t, second, 60)
	root.SetPosition(motion.Pt(100, 0))
	inner := newComp(t, second, 60)
	inner.SetScale(motion.Pt(2, 2))
	root.AddLayer(inner)
	s := newSolid(t, second)
	s.SetPosition(motion.Pt(5, 5))
	inner.AddLayer(s)

	m := s.TotalMatrix()
	if got := m.TransformPoint(motion.Pt(0, 0)); got != motion.Pt(110, 10) {
		t.Errorf("TotalMatrix maps origin to %v, want (110, 10)", got)
	}
	if got := s.GlobalToLocalPoint(motion.Pt(110, 10)); got != motion.Pt(0, 0) {
		t.Errorf("GlobalToLocalPoint() = %v, want origin", got)
	}
	if got := s.Bounds(); got != motion.XYWH(5, 5, 10, 10) {
		t.Errorf("Bounds() = %v, want (5,5,10,10)", got)
	}
}

func TestRenderScale(t *testing.T) {
	root := newComp(t, second, 60)
	s := newSolid(t, second)
	root.AddLayer(s)
	if got := s.RenderScale(); got != 1 {
		t.Errorf("RenderScale() = %v, want 1", got)
	}
	root.SetMatrix(motion.Scale(3, 2))
	if got := s.RenderScale(); got != 3 {
		t.Errorf("RenderScale() after parent scale = %v, want 3", got)
	}
	s.SetScale(motion.Pt(1, 2))
	if got := s.RenderScale(); got != 4 {
		t.Errorf("RenderScale() after own scale = %v, want 4", got)
	}
}

func TestContentDraws(t *testing.T) {
	l := NewLayer(KindShape, second)
	c := &stubContent{bounds: motion.XYWH(0, 0, 4, 4)}
	v := l.ContentVersion()
	l.SetContent(c)
	if l.ContentVersion() == v {
		t.Error("SetContent did not bump the version")
	}
	if l.Content() != c {
		t.Error("Content() did not return the installed content")
	}
	if got := l.Bounds(); got != motion.XYWH(0, 0, 4, 4) {
		t.Errorf("Bounds() = %v", got)
	}
}
