package layer

import "math"

// notifyModifiedLocked bumps the content version of every layer above l
// and, when contentChanged, of l itself.
func (l *Layer) notifyModifiedLocked(contentChanged bool) {
	if contentChanged {
		l.contentVersion++
	}
	for p := l.parentOrOwnerLocked(); p != nil; p = p.parentOrOwnerLocked() {
		p.contentVersion++
	}
}

// notifyAudioModifiedLocked bumps the audio version of l and everything
// above it.
func (l *Layer) notifyAudioModifiedLocked() {
	for p := l; p != nil; p = p.parentOrOwnerLocked() {
		p.audioVersion++
	}
}

// invalidateCacheScaleLocked drops the cached render scale of l and of
// everything drawn through it.
func (l *Layer) invalidateCacheScaleLocked() {
	walkLocked(l.node, func(n Node) {
		n.base().scaleValid = false
	})
}

// RenderScale returns the largest axis scale of the layer's total matrix.
// The value is cached until a matrix, transform or content size change
// above or at the layer invalidates it.
func (l *Layer) RenderScale() float64 {
	d := l.lock()
	defer d.mu.Unlock()
	if !l.scaleValid {
		m := l.totalMatrixLocked()
		l.scale = math.Max(math.Hypot(m.A, m.D), math.Hypot(m.B, m.E))
		l.scaleValid = true
	}
	return l.scale
}
