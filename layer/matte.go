package layer

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/recording"
	"github.com/gogpu/motion/timeline"
)

// TrackMatteType selects how a track matte masks its owner.
type TrackMatteType = recording.MatteMode

const (
	TrackMatteNone          = recording.MatteNone
	TrackMatteAlpha         = recording.MatteAlpha
	TrackMatteAlphaInverted = recording.MatteAlphaInverted
	TrackMatteLuma          = recording.MatteLuma
	TrackMatteLumaInverted  = recording.MatteLumaInverted
)

// TrackMatte returns the layer's track matte and its mode.
func (l *Layer) TrackMatte() (Node, TrackMatteType) {
	d := l.lock()
	defer d.mu.Unlock()
	return l.trackMatte, l.matteMode
}

// SetTrackMatte makes matte the track matte of l. The matte is taken out
// of any composition or matte slot it occupies and any previous matte of l
// is detached. It fails when matte is nil, l itself, above l in the tree
// or the root of a live stage.
func (l *Layer) SetTrackMatte(matte Node, mode TrackMatteType) bool {
	if matte == nil {
		return false
	}
	m := matte.base()
	unlock := lockPair(l, m)
	defer unlock()

	if m.isAncestorOfLocked(l) {
		motion.Logger().Warn("track matte rejected: would create a cycle", "owner", l.id, "matte", m.id)
		return false
	}
	if m.isStageRootLocked() {
		motion.Logger().Warn("track matte rejected: matte is a stage root", "owner", l.id, "matte", m.id)
		return false
	}
	if l.trackMatte == matte {
		if l.matteMode != mode {
			l.matteMode = mode
			l.notifyModifiedLocked(true)
		}
		return true
	}
	if old := l.trackMatte; old != nil {
		l.unlinkMatteLocked()
		releaseDomainLocked(old)
	}
	m.unlinkLocked()
	m.trackMatteOwner = l
	l.trackMatte = matte
	l.matteMode = mode
	if l.stage != nil {
		l.stage.addLocked(matte)
	}
	setDomainLocked(matte, l.domain.Load())
	matte.gotoTimeLocked(timeline.FrameToTime(l.layerFrameLocked(), l.frameRate))
	l.notifyModifiedLocked(true)
	motion.Logger().Debug("track matte set", "owner", l.id, "matte", m.id, "mode", mode)
	return true
}

// ClearTrackMatte detaches the track matte, leaving it an unattached root.
func (l *Layer) ClearTrackMatte() {
	d := l.lock()
	defer d.mu.Unlock()
	m := l.trackMatte
	if m == nil {
		return
	}
	l.unlinkMatteLocked()
	releaseDomainLocked(m)
}

// unlinkMatteLocked drops the matte link without touching the matte's lock
// domain.
func (l *Layer) unlinkMatteLocked() {
	m := l.trackMatte
	if m == nil {
		return
	}
	mb := m.base()
	mb.trackMatteOwner = nil
	if mb.stage != nil {
		mb.stage.removeLocked(m)
	}
	l.trackMatte = nil
	l.matteMode = TrackMatteNone
	l.notifyModifiedLocked(true)
	motion.Logger().Debug("track matte cleared", "owner", l.id, "matte", mb.id)
}
