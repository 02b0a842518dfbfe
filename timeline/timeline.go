package timeline

import "math"

// Frame is a frame index at some frame rate.
type Frame = int64

// MicrosPerSecond is the number of microseconds in one second.
const MicrosPerSecond = 1_000_000

// DefaultFrameRate is the rate of layers that are not bound to a document.
const DefaultFrameRate = 60.0

// TimeToFrame returns the frame displayed at timeUS: floor(t * rate / 1e6).
func TimeToFrame(timeUS int64, rate float64) Frame {
	return Frame(math.Floor(float64(timeUS) * rate / MicrosPerSecond))
}

// FrameToTime returns the first microsecond at which frame is displayed:
// ceil(frame * 1e6 / rate). TimeToFrame(FrameToTime(f)) == f for any
// positive rate.
func FrameToTime(frame Frame, rate float64) int64 {
	if rate <= 0 {
		return 0
	}
	return int64(math.Ceil(float64(frame) * MicrosPerSecond / rate))
}

// Round rounds half to even. It is the single rounding rule used when
// converting frames between rates.
func Round(v float64) Frame {
	return Frame(math.RoundToEven(v))
}

// Rescale converts a frame count from one rate to another.
func Rescale(frame Frame, fromRate, toRate float64) Frame {
	if fromRate <= 0 || fromRate == toRate {
		return frame
	}
	return Round(float64(frame) * toRate / fromRate)
}

// LocalToParent maps a frame at childRate to the parent's rate:
// round(childFrame * parentRate / childRate).
func LocalToParent(childFrame Frame, childRate, parentRate float64) Frame {
	return Rescale(childFrame, childRate, parentRate)
}

// ParentToLocal maps a parent frame into the child's scope:
// round(parentFrame * childRate / parentRate) + startFrame.
func ParentToLocal(parentFrame Frame, childRate, parentRate float64, startFrame Frame) Frame {
	return Rescale(parentFrame, parentRate, childRate) + startFrame
}

// ChildFrameToOwner maps a frame of a child running at childRate into the
// local frame space of its owner, whose content starts at ownerStart.
func ChildFrameToOwner(childFrame Frame, childRate, ownerRate float64, ownerStart Frame) Frame {
	return Rescale(childFrame, childRate, ownerRate) + ownerStart
}

// OwnerFrameToChild is the inverse of ChildFrameToOwner up to rounding.
func OwnerFrameToChild(ownerFrame Frame, childRate, ownerRate float64, ownerStart Frame) Frame {
	return Rescale(ownerFrame-ownerStart, ownerRate, childRate)
}

// wrapUnit maps progress onto (0, 1], keeping exact 0 at 0. Values beyond
// one wrap around so scripted scrubbing can loop.
func wrapUnit(progress float64) float64 {
	if math.IsNaN(progress) || math.IsInf(progress, 0) {
		return 0
	}
	p := math.Mod(progress, 1)
	if p <= 0 && progress != 0 {
		p++
	}
	return p
}

// FrameToProgress maps a content frame to progress, where frame 0 is 0 and
// the last frame (totalFrames-1) is 1. Durations of one frame or less
// always report 0.
func FrameToProgress(frame, totalFrames Frame) float64 {
	if totalFrames <= 1 {
		return 0
	}
	p := float64(frame) / float64(totalFrames-1)
	return math.Max(0, math.Min(1, p))
}

// ProgressToFrame is the inverse of FrameToProgress. Progress outside
// [0, 1] wraps around.
func ProgressToFrame(progress float64, totalFrames Frame) Frame {
	if totalFrames <= 1 {
		return 0
	}
	return Round(wrapUnit(progress) * float64(totalFrames-1))
}

// ProgressToTime maps progress to a content time within [0, totalTime).
// Progress of exactly 1 lands on the last microsecond.
func ProgressToTime(progress float64, totalTime int64) int64 {
	if totalTime <= 1 {
		return 0
	}
	t := int64(math.Floor(wrapUnit(progress) * float64(totalTime)))
	if t >= totalTime {
		t = totalTime - 1
	}
	return t
}

// PrevFrame returns the content frame before frame, wrapping to the last
// frame. It reports false without moving when totalFrames <= 1.
func PrevFrame(frame, totalFrames Frame) (Frame, bool) {
	if totalFrames <= 1 {
		return frame, false
	}
	frame--
	if frame < 0 {
		frame = totalFrames - 1
	}
	return frame, true
}

// NextFrame returns the content frame after frame, wrapping to 0.
func NextFrame(frame, totalFrames Frame) (Frame, bool) {
	if totalFrames <= 1 {
		return frame, false
	}
	frame++
	if frame >= totalFrames {
		frame = 0
	}
	return frame, true
}

// InRange reports whether a content frame lies within [0, totalFrames).
func InRange(frame, totalFrames Frame) bool {
	return frame >= 0 && frame < totalFrames
}
