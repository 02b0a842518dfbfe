package layer

import (
	"github.com/gogpu/motion/timeline"
)

// gotoTimeLocked seeks the layer to layerTime on its owner's timeline and
// reports whether the rendered result may have changed. The track matte
// seeks first.
func (l *Layer) gotoTimeLocked(layerTime int64) bool {
	changed := false
	if l.trackMatte != nil {
		changed = l.trackMatte.gotoTimeLocked(layerTime)
	}
	old := l.contentFrame
	l.contentFrame = timeline.TimeToFrame(layerTime, l.frameRate) - l.startFrame
	if !changed {
		changed = l.frameChangedLocked(old, l.contentFrame)
	}
	return changed
}

// frameChangedLocked decides whether moving between content frames
// changes what the layer draws.
func (l *Layer) frameChangedLocked(oldFrame, newFrame timeline.Frame) bool {
	if oldFrame == newFrame {
		return false
	}
	oldVisible := timeline.InRange(oldFrame, l.frameDuration)
	newVisible := timeline.InRange(newFrame, l.frameDuration)
	if oldVisible != newVisible {
		return true
	}
	if !newVisible {
		return false
	}
	return !l.node.isStaticLocked()
}

func (l *Layer) gotoTimeAndNotifyLocked(layerTime int64) bool {
	changed := l.node.gotoTimeLocked(layerTime)
	if changed {
		l.notifyModifiedLocked(true)
	}
	return changed
}

// layerFrameLocked is the frame property keyframes are evaluated at.
func (l *Layer) layerFrameLocked() timeline.Frame {
	return l.startFrame + l.contentFrame
}

// FrameRate returns the layer's frame rate.
func (l *Layer) FrameRate() float64 {
	d := l.lock()
	defer d.mu.Unlock()
	return l.frameRate
}

// StartTime returns the time, in microseconds on the owner's timeline, at
// which the layer's content starts.
func (l *Layer) StartTime() int64 {
	d := l.lock()
	defer d.mu.Unlock()
	return timeline.FrameToTime(l.startFrame, l.frameRate)
}

// SetStartTime moves the layer on its owner's timeline, keeping the
// current layer frame.
func (l *Layer) SetStartTime(timeUS int64) {
	d := l.lock()
	defer d.mu.Unlock()
	l.setStartTimeLocked(timeUS)
}

func (l *Layer) setStartTimeLocked(timeUS int64) {
	target := timeline.TimeToFrame(timeUS, l.frameRate)
	if target == l.startFrame {
		return
	}
	layerFrame := l.layerFrameLocked()
	l.startFrame = target
	if l.parent != nil && l.parent.empty {
		l.parent.updateDurationAndFrameRateLocked()
	}
	l.gotoTimeAndNotifyLocked(timeline.FrameToTime(layerFrame, l.frameRate))
	l.notifyAudioModifiedLocked()
}

// StartFrame returns the start frame in the layer's frame rate.
func (l *Layer) StartFrame() timeline.Frame {
	d := l.lock()
	defer d.mu.Unlock()
	return l.startFrame
}

// Duration returns the content duration in microseconds.
func (l *Layer) Duration() int64 {
	d := l.lock()
	defer d.mu.Unlock()
	return l.durationLocked()
}

func (l *Layer) durationLocked() int64 {
	return timeline.FrameToTime(l.frameDuration, l.frameRate)
}

// FrameDuration returns the content duration in frames.
func (l *Layer) FrameDuration() timeline.Frame {
	d := l.lock()
	defer d.mu.Unlock()
	return l.frameDuration
}

// ContentFrame returns the current content frame. Values outside
// [0, FrameDuration()) mean the layer is not visible.
func (l *Layer) ContentFrame() timeline.Frame {
	d := l.lock()
	defer d.mu.Unlock()
	return l.contentFrame
}

// CurrentTime returns the current time on the owner's timeline.
func (l *Layer) CurrentTime() int64 {
	d := l.lock()
	defer d.mu.Unlock()
	return timeline.FrameToTime(l.layerFrameLocked(), l.frameRate)
}

// SetCurrentTime seeks to timeUS on the owner's timeline.
func (l *Layer) SetCurrentTime(timeUS int64) bool {
	d := l.lock()
	defer d.mu.Unlock()
	return l.gotoTimeAndNotifyLocked(timeUS)
}

// Progress returns the position of the content frame within the
// duration, in [0, 1].
func (l *Layer) Progress() float64 {
	d := l.lock()
	defer d.mu.Unlock()
	return timeline.FrameToProgress(l.contentFrame, l.frameDuration)
}

// SetProgress seeks to the content frame nearest to progress p. Progress
// outside [0, 1] wraps.
func (l *Layer) SetProgress(p float64) {
	d := l.lock()
	defer d.mu.Unlock()
	target := timeline.ProgressToFrame(p, l.frameDuration)
	if target == l.contentFrame {
		return
	}
	l.gotoTimeAndNotifyLocked(timeline.FrameToTime(l.startFrame+target, l.frameRate))
}

// PreFrame steps one content frame back, wrapping to the last frame.
func (l *Layer) PreFrame() {
	d := l.lock()
	defer d.mu.Unlock()
	if f, ok := timeline.PrevFrame(l.contentFrame, l.frameDuration); ok {
		l.gotoTimeAndNotifyLocked(timeline.FrameToTime(l.startFrame+f, l.frameRate))
	}
}

// NextFrame steps one content frame forward, wrapping to the first frame.
func (l *Layer) NextFrame() {
	d := l.lock()
	defer d.mu.Unlock()
	if f, ok := timeline.NextFrame(l.contentFrame, l.frameDuration); ok {
		l.gotoTimeAndNotifyLocked(timeline.FrameToTime(l.startFrame+f, l.frameRate))
	}
}

// FrameVisible reports whether the current content frame is in range.
func (l *Layer) FrameVisible() bool {
	d := l.lock()
	defer d.mu.Unlock()
	return timeline.InRange(l.contentFrame, l.frameDuration)
}

// LocalTimeToGlobal converts a time on the layer's owner timeline to the
// root's timeline.
func (l *Layer) LocalTimeToGlobal(localTime int64) int64 {
	d := l.lock()
	defer d.mu.Unlock()
	rate := l.frameRate
	for owner := l.timelineOwnerLocked(); owner != nil; owner = owner.timelineOwnerLocked() {
		frame := timeline.TimeToFrame(localTime, rate)
		frame = timeline.ChildFrameToOwner(frame, rate, owner.frameRate, owner.startFrame)
		localTime = timeline.FrameToTime(frame, owner.frameRate)
		rate = owner.frameRate
	}
	return localTime
}

// GlobalToLocalTime converts a time on the root's timeline to the
// layer's owner timeline.
func (l *Layer) GlobalToLocalTime(globalTime int64) int64 {
	d := l.lock()
	defer d.mu.Unlock()
	owners := l.timelineOwnersLocked()
	localTime := globalTime
	for i := len(owners) - 1; i >= 0; i-- {
		childRate := l.frameRate
		if i > 0 {
			childRate = owners[i-1].frameRate
		}
		o := owners[i]
		frame := timeline.TimeToFrame(localTime, o.frameRate)
		frame = timeline.OwnerFrameToChild(frame, childRate, o.frameRate, o.startFrame)
		localTime = timeline.FrameToTime(frame, childRate)
	}
	return localTime
}

// LocalFrameToGlobal converts a frame in the layer's rate on its owner's
// timeline to a frame on the root's timeline.
func (l *Layer) LocalFrameToGlobal(frame timeline.Frame) timeline.Frame {
	d := l.lock()
	defer d.mu.Unlock()
	rate := l.frameRate
	for owner := l.timelineOwnerLocked(); owner != nil; owner = owner.timelineOwnerLocked() {
		frame = timeline.ChildFrameToOwner(frame, rate, owner.frameRate, owner.startFrame)
		rate = owner.frameRate
	}
	return frame
}

// GlobalToLocalFrame is the inverse of LocalFrameToGlobal.
func (l *Layer) GlobalToLocalFrame(frame timeline.Frame) timeline.Frame {
	d := l.lock()
	defer d.mu.Unlock()
	owners := l.timelineOwnersLocked()
	for i := len(owners) - 1; i >= 0; i-- {
		childRate := l.frameRate
		if i > 0 {
			childRate = owners[i-1].frameRate
		}
		frame = timeline.OwnerFrameToChild(frame, childRate, owners[i].frameRate, owners[i].startFrame)
	}
	return frame
}

// timelineOwnersLocked lists the timeline owners from nearest to root.
func (l *Layer) timelineOwnersLocked() []*Layer {
	var owners []*Layer
	for o := l.timelineOwnerLocked(); o != nil; o = o.timelineOwnerLocked() {
		owners = append(owners, o)
	}
	return owners
}
