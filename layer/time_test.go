package layer

import (
	"testing"

	"github.com/gogpu/motion/timeline"
)

func TestScenarioMixedRates(t *testing.T) {
	root := newComp(t, 10*second, 60)
	child := newComp(t, 5*second, 30)
	root.AddLayer(child)

	if got := child.LocalFrameToGlobal(30); got != 60 {
		t.Errorf("LocalFrameToGlobal(30) = %d, want 60", got)
	}
	if got := child.LocalTimeToGlobal(second); got != second {
		t.Errorf("LocalTimeToGlobal(1s) = %d, want 1s", got)
	}
}

func TestTimeMappingInverse(t *testing.T) {
	tests := []struct {
		name                string
		rootRate, childRate float64
		rootStart           int64
	}{
		{"half rate", 60, 30, 0},
		{"same rate", 30, 30, 0},
		{"rate above owner", 24, 24, 0},
		{"offset root", 60, 30, second / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newComp(t, 10*second, tt.rootRate)
			root.SetStartTime(tt.rootStart)
			child := newComp(t, 2*second, tt.childRate)
			root.AddLayer(child)
			for f := timeline.Frame(0); f < child.FrameDuration(); f++ {
				if got := child.GlobalToLocalFrame(child.LocalFrameToGlobal(f)); got != f {
					t.Fatalf("frame round trip %d -> %d", f, got)
				}
				ts := timeline.FrameToTime(f, tt.childRate)
				if got := child.GlobalToLocalTime(child.LocalTimeToGlobal(ts)); got != ts {
					t.Fatalf("time round trip %d -> %d", ts, got)
				}
			}
		})
	}
}

func TestNestedTimeMapping(t *testing.T) {
	root := newComp(t, 10*second, 60)
	mid := newComp(t, 5*second, 30)
	mid.SetStartTime(second) // frame 30 at 30 fps
	root.AddLayer(mid)
	leaf := newComp(t, 2*second, 30)
	mid.AddLayer(leaf)

	// leaf frame 3 at 30 fps -> mid frame 3 + 30 -> root frame 66
	if got := leaf.LocalFrameToGlobal(3); got != 66 {
		t.Errorf("LocalFrameToGlobal(3) = %d, want 66", got)
	}
	if got := leaf.GlobalToLocalFrame(66); got != 3 {
		t.Errorf("GlobalToLocalFrame(66) = %d, want 3", got)
	}
}

func TestCompositionSeeksChildren(t *testing.T) {
	root := newComp(t, 2*second, 60)
	s := newSolid(t, second)
	s.SetStartTime(second / 2)
	root.AddLayer(s)

	root.SetCurrentTime(second)
	if got := s.ContentFrame(); got != 30 {
		t.Errorf("ContentFrame() = %d, want 30", got)
	}
	if !s.FrameVisible() {
		t.Error("FrameVisible() = false, want true")
	}
	if got := s.CurrentTime(); got != second {
		t.Errorf("CurrentTime() = %d, want 1s", got)
	}

	root.SetCurrentTime(second / 10)
	if s.FrameVisible() {
		t.Errorf("FrameVisible() = true at content frame %d", s.ContentFrame())
	}
}

func TestExcludedFromTimeline(t *testing.T) {
	root := newComp(t, 2*second, 60)
	s := newSolid(t, 2*second)
	root.AddLayer(s)
	s.SetExcludedFromTimeline(true)
	root.SetCurrentTime(second)
	if got := s.ContentFrame(); got != 0 {
		t.Errorf("ContentFrame() = %d, want 0", got)
	}
}

func TestSetStartTimeKeepsLayerFrame(t *testing.T) {
	root := newComp(t, 4*second, 60)
	s := newSolid(t, second)
	root.AddLayer(s)
	s.SetStartTime(second / 2)
	root.SetCurrentTime(second)
	audio := root.AudioVersion()

	s.SetStartTime(0)
	if got := s.StartTime(); got != 0 {
		t.Errorf("StartTime() = %d, want 0", got)
	}
	if got := s.CurrentTime(); got != second {
		t.Errorf("CurrentTime() = %d, want 1s", got)
	}
	if got := s.ContentFrame(); got != 60 {
		t.Errorf("ContentFrame() = %d, want 60", got)
	}
	if root.AudioVersion() == audio {
		t.Error("SetStartTime did not bump the parent audio version")
	}
}

func TestProgress(t *testing.T) {
	s := newSolid(t, second) // 60 frames
	tests := []struct {
		progress float64
		frame    timeline.Frame
	}{
		{0, 0},
		{0.5, 30},
		{1, 59},
		{-0.25, 44},
		{1.5, 30},
	}
	for _, tt := range tests {
		s.SetProgress(tt.progress)
		if got := s.ContentFrame(); got != tt.frame {
			t.Errorf("SetProgress(%v): ContentFrame() = %d, want %d", tt.progress, got, tt.frame)
		}
	}
	s.SetProgress(1)
	if got := s.Progress(); got != 1 {
		t.Errorf("Progress() = %v, want 1", got)
	}
}

func TestFrameStepping(t *testing.T) {
	s := newSolid(t, second)
	s.PreFrame()
	if got := s.ContentFrame(); got != 59 {
		t.Errorf("PreFrame from 0: ContentFrame() = %d, want 59", got)
	}
	s.NextFrame()
	if got := s.ContentFrame(); got != 0 {
		t.Errorf("NextFrame from 59: ContentFrame() = %d, want 0", got)
	}
	s.NextFrame()
	if got := s.ContentFrame(); got != 1 {
		t.Errorf("NextFrame: ContentFrame() = %d, want 1", got)
	}

	short := newSolid(t, timeline.FrameToTime(1, 60))
	short.NextFrame()
	short.PreFrame()
	if got := short.ContentFrame(); got != 0 {
		t.Errorf("single frame layer moved to %d", got)
	}
}

func TestStaticLayerSeekReportsNoChange(t *testing.T) {
	s := newSolid(t, second)
	if s.SetCurrentTime(timeline.FrameToTime(10, 60)) {
		t.Error("static visible seek reported a change")
	}
	if !s.SetCurrentTime(5 * second) {
		t.Error("seek out of range reported no change")
	}
	if s.SetCurrentTime(6 * second) {
		t.Error("seek between invisible frames reported a change")
	}
}
