package layer

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/recording"
	"github.com/gogpu/motion/timeline"
)

// SolidLayer fills a rectangle with a single color.
type SolidLayer struct {
	Layer

	width, height float64
	color         motion.Color
}

// NewSolidLayer creates a width×height solid lasting durationUS at the
// default frame rate, with the given color and transform opacity. It
// returns nil for a non-positive duration or size.
func NewSolidLayer(durationUS int64, width, height float64, color motion.Color, opacity motion.Opacity) *SolidLayer {
	if durationUS <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	s := &SolidLayer{width: width, height: height, color: color}
	s.init(s, KindSolid, timeline.TimeToFrame(durationUS, timeline.DefaultFrameRate), timeline.DefaultFrameRate)
	s.transform.SetOpacity(keyframe.NewOpacity(opacity))
	return s
}

// SolidColor returns the fill color.
func (s *SolidLayer) SolidColor() motion.Color {
	d := s.lock()
	defer d.mu.Unlock()
	return s.color
}

func (s *SolidLayer) SetSolidColor(c motion.Color) {
	d := s.lock()
	defer d.mu.Unlock()
	if s.color == c {
		return
	}
	s.color = c
	s.notifyModifiedLocked(true)
}

// Size returns the solid's width and height.
func (s *SolidLayer) Size() (width, height float64) {
	d := s.lock()
	defer d.mu.Unlock()
	return s.width, s.height
}

func (s *SolidLayer) contentBoundsLocked() motion.Rect {
	return motion.XYWH(0, 0, s.width, s.height)
}

func (s *SolidLayer) drawContentLocked(rec recording.Recorder) {
	rec.FillRect(motion.XYWH(0, 0, s.width, s.height), s.color)
}
