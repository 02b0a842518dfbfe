package layer

import (
	"github.com/gogpu/motion/recording"
)

// Draw renders root and everything below it into rec at the current
// frame. The root's lock domain is held for the whole pass.
func Draw(root Node, rec recording.Recorder) {
	if root == nil || rec == nil {
		return
	}
	d := root.base().lock()
	defer d.mu.Unlock()
	drawLocked(root, rec)
}

func drawLocked(n Node, rec recording.Recorder) {
	l := n.base()
	if !l.visible {
		return
	}
	drawLayerLocked(n, rec)
}

// drawLayerLocked draws n ignoring its visible flag, which hidden track
// mattes rely on.
func drawLayerLocked(n Node, rec recording.Recorder) {
	l := n.base()
	m, alpha, ok := l.transformLocked()
	if !ok {
		return
	}
	rec.Save()
	defer rec.Restore()

	if matte := l.trackMatte; matte != nil && l.matteMode != TrackMatteNone {
		if _, _, matteOK := matte.base().transformLocked(); matteOK {
			rec.BeginMatte(l.matteMode)
			drawLayerLocked(matte, rec)
			rec.EndMatte(l.matteMode)
		} else if l.matteMode == TrackMatteAlpha || l.matteMode == TrackMatteLuma {
			// Nothing of the owner shows through an undrawable matte.
			return
		}
	}
	rec.Concat(m)
	rec.SetAlpha(alpha)
	n.drawContentLocked(rec)
}
