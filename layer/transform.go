package layer

import (
	"github.com/gogpu/motion"
	"github.com/gogpu/motion/keyframe"
	"github.com/gogpu/motion/timeline"
	"github.com/gogpu/motion/transform"
)

// Transform2D returns a deep copy of the layer's transform.
func (l *Layer) Transform2D() *transform.Transform2D {
	d := l.lock()
	defer d.mu.Unlock()
	return l.transform.Clone()
}

// SetTransform2D replaces the layer's transform with a deep copy of t.
// It reports false for nil.
func (l *Layer) SetTransform2D(t *transform.Transform2D) bool {
	if t == nil {
		return false
	}
	t = t.Clone()
	d := l.lock()
	defer d.mu.Unlock()
	if l.transform.Equal(t) {
		return true
	}
	l.transform = t
	l.notifyModifiedLocked(true)
	l.invalidateCacheScaleLocked()
	return true
}

// updateTransform runs fn on the live transform and notifies when it
// reports a change.
func (l *Layer) updateTransform(fn func(t *transform.Transform2D) bool) {
	d := l.lock()
	defer d.mu.Unlock()
	if fn(l.transform) {
		l.notifyModifiedLocked(true)
		l.invalidateCacheScaleLocked()
	}
}

// Position returns the static position.
func (l *Layer) Position() motion.Point {
	d := l.lock()
	defer d.mu.Unlock()
	return l.transform.StaticPosition()
}

// SetPosition makes the position a constant p, switching to the unified
// representation.
func (l *Layer) SetPosition(p motion.Point) {
	l.updateTransform(func(t *transform.Transform2D) bool {
		if t.SplitPosition() {
			t.SetPosition(keyframe.NewPoint(p))
			return true
		}
		return t.Position().SetValue(p)
	})
}

// AnchorPoint returns the static anchor point.
func (l *Layer) AnchorPoint() motion.Point {
	d := l.lock()
	defer d.mu.Unlock()
	return l.transform.AnchorPoint().Value()
}

// SetAnchorPoint sets a static anchor point, replacing any keyframes.
func (l *Layer) SetAnchorPoint(p motion.Point) {
	l.updateTransform(func(t *transform.Transform2D) bool {
		return t.AnchorPoint().SetValue(p)
	})
}

// Scale returns the static scale.
func (l *Layer) Scale() motion.Point {
	d := l.lock()
	defer d.mu.Unlock()
	return l.transform.Scale().Value()
}

// SetScale sets a static scale, replacing any keyframes.
func (l *Layer) SetScale(s motion.Point) {
	l.updateTransform(func(t *transform.Transform2D) bool {
		return t.Scale().SetValue(s)
	})
}

// Rotation returns the static rotation in degrees.
func (l *Layer) Rotation() float64 {
	d := l.lock()
	defer d.mu.Unlock()
	return l.transform.Rotation().Value()
}

// SetRotation sets a static rotation in degrees, replacing any keyframes.
func (l *Layer) SetRotation(deg float64) {
	l.updateTransform(func(t *transform.Transform2D) bool {
		return t.Rotation().SetValue(deg)
	})
}

// Opacity returns the static transform opacity.
func (l *Layer) Opacity() motion.Opacity {
	d := l.lock()
	defer d.mu.Unlock()
	return l.transform.Opacity().Value()
}

// SetOpacity sets a static transform opacity, replacing any keyframes.
func (l *Layer) SetOpacity(o motion.Opacity) {
	l.updateTransform(func(t *transform.Transform2D) bool {
		return t.Opacity().SetValue(o)
	})
}

// GetTransform returns the layer's matrix and alpha at the current frame.
// It reports false when the layer cannot be drawn this frame: the content
// frame is out of range, the matrix is not invertible or the alpha is 0.
func (l *Layer) GetTransform() (motion.Matrix, float64, bool) {
	d := l.lock()
	defer d.mu.Unlock()
	return l.transformLocked()
}

func (l *Layer) transformLocked() (motion.Matrix, float64, bool) {
	if !timeline.InRange(l.contentFrame, l.frameDuration) || l.alpha == 0 || !l.matrix.Invertible() {
		return motion.Matrix{}, 0, false
	}
	m, a := l.transform.Evaluate(l.layerFrameLocked())
	if a == 0 {
		return motion.Matrix{}, 0, false
	}
	m = l.matrix.Multiply(m)
	if !m.Invertible() {
		return motion.Matrix{}, 0, false
	}
	return m, a * l.alpha, true
}

// localMatrixLocked is the layer's matrix at the current frame regardless
// of visibility.
func (l *Layer) localMatrixLocked() motion.Matrix {
	return l.matrix.Multiply(l.transform.Matrix(l.layerFrameLocked()))
}

// TotalMatrix returns the matrix from the layer's content space to the
// root's space. Track mattes use their owner's parent chain.
func (l *Layer) TotalMatrix() motion.Matrix {
	d := l.lock()
	defer d.mu.Unlock()
	return l.totalMatrixLocked()
}

func (l *Layer) totalMatrixLocked() motion.Matrix {
	m := l.localMatrixLocked()
	for o := l.timelineOwnerLocked(); o != nil; o = o.timelineOwnerLocked() {
		m = o.localMatrixLocked().Multiply(m)
	}
	return m
}

// GlobalToLocalPoint maps a point in root space to the layer's content
// space. It returns p unchanged when the total matrix is singular.
func (l *Layer) GlobalToLocalPoint(p motion.Point) motion.Point {
	d := l.lock()
	defer d.mu.Unlock()
	inv, ok := l.totalMatrixLocked().Invert()
	if !ok {
		return p
	}
	return inv.TransformPoint(p)
}

// Bounds returns the content bounds in the parent's space at the current
// frame.
func (l *Layer) Bounds() motion.Rect {
	d := l.lock()
	defer d.mu.Unlock()
	return l.boundsLocked()
}

func (l *Layer) boundsLocked() motion.Rect {
	b := l.node.contentBoundsLocked()
	if b.IsEmpty() {
		return motion.Rect{}
	}
	return b.Transform(l.localMatrixLocked())
}
