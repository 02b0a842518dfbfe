package layer

import (
	"sync/atomic"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/recording"
	"github.com/gogpu/motion/timeline"
	"github.com/gogpu/motion/transform"
)

// Node is a layer of any kind: *Layer, *SolidLayer, *TextLayer or
// *Composition.
type Node interface {
	ID() uint32
	Kind() Kind
	Name() string

	base() *Layer
	gotoTimeLocked(layerTime int64) bool
	isStaticLocked() bool
	contentBoundsLocked() motion.Rect
	drawContentLocked(rec recording.Recorder)
}

// Content is opaque render content drawn by a plain layer.
type Content interface {
	Draw(rec recording.Recorder)
	Bounds() motion.Rect
}

var layerIDs atomic.Uint32

// Layer is a node of the scene graph. Layers of kind Null, Shape and Image
// are plain *Layer values; other kinds embed Layer.
type Layer struct {
	node   Node
	id     uint32
	kind   Kind
	domain atomic.Pointer[lockDomain]

	name    string
	content Content

	transform  *transform.Transform2D
	matrix     motion.Matrix
	alpha      float64
	visible    bool
	motionBlur bool
	excluded   bool

	frameRate     float64
	startFrame    timeline.Frame
	contentFrame  timeline.Frame
	frameDuration timeline.Frame

	parent          *Composition
	trackMatteOwner *Layer
	trackMatte      Node
	matteMode       recording.MatteMode
	stage           *Stage

	contentVersion uint64
	audioVersion   uint64

	scale      float64
	scaleValid bool
}

func (l *Layer) init(node Node, kind Kind, frameDuration timeline.Frame, rate float64) {
	l.node = node
	l.id = layerIDs.Add(1)
	l.kind = kind
	l.domain.Store(newDomain())
	l.transform = transform.Default()
	l.matrix = motion.Identity()
	l.alpha = 1
	l.visible = true
	l.frameRate = rate
	l.frameDuration = frameDuration
}

// NewLayer creates a plain layer of kind Null, Shape or Image lasting
// durationUS at the default frame rate. It returns nil for other kinds or
// a non-positive duration.
func NewLayer(kind Kind, durationUS int64) *Layer {
	switch kind {
	case KindNull, KindShape, KindImage:
	default:
		return nil
	}
	if durationUS <= 0 {
		return nil
	}
	l := &Layer{}
	l.init(l, kind, timeline.TimeToFrame(durationUS, timeline.DefaultFrameRate), timeline.DefaultFrameRate)
	return l
}

// ID returns the process-unique layer id.
func (l *Layer) ID() uint32 { return l.id }

// Kind returns the layer kind.
func (l *Layer) Kind() Kind { return l.kind }

func (l *Layer) base() *Layer { return l }

// Name returns the layer name.
func (l *Layer) Name() string {
	d := l.lock()
	defer d.mu.Unlock()
	return l.name
}

// SetName sets the layer name. Names need not be unique.
func (l *Layer) SetName(name string) {
	d := l.lock()
	defer d.mu.Unlock()
	l.name = name
}

// Content returns the layer's render content, if any.
func (l *Layer) Content() Content {
	d := l.lock()
	defer d.mu.Unlock()
	return l.content
}

// SetContent replaces the render content of a plain layer.
func (l *Layer) SetContent(c Content) {
	d := l.lock()
	defer d.mu.Unlock()
	if l.content == c {
		return
	}
	l.content = c
	l.notifyModifiedLocked(true)
}

// Matrix returns the extra host matrix applied after the transform.
func (l *Layer) Matrix() motion.Matrix {
	d := l.lock()
	defer d.mu.Unlock()
	return l.matrix
}

// SetMatrix sets the extra host matrix and drops cached rasterizations
// whose scale depended on it.
func (l *Layer) SetMatrix(m motion.Matrix) {
	d := l.lock()
	defer d.mu.Unlock()
	if l.matrix == m {
		return
	}
	l.matrix = m
	l.notifyModifiedLocked(true)
	l.invalidateCacheScaleLocked()
}

// ResetMatrix restores the identity host matrix.
func (l *Layer) ResetMatrix() {
	l.SetMatrix(motion.Identity())
}

// Alpha returns the layer alpha in [0, 1].
func (l *Layer) Alpha() float64 {
	d := l.lock()
	defer d.mu.Unlock()
	return l.alpha
}

// SetAlpha sets the layer alpha, clamped to [0, 1].
func (l *Layer) SetAlpha(a float64) {
	a = min(max(a, 0), 1)
	d := l.lock()
	defer d.mu.Unlock()
	if l.alpha == a {
		return
	}
	l.alpha = a
	l.notifyModifiedLocked(true)
}

// Visible reports whether the layer is drawn.
func (l *Layer) Visible() bool {
	d := l.lock()
	defer d.mu.Unlock()
	return l.visible
}

// SetVisible shows or hides the layer.
func (l *Layer) SetVisible(v bool) {
	d := l.lock()
	defer d.mu.Unlock()
	if l.visible == v {
		return
	}
	l.visible = v
	l.notifyModifiedLocked(true)
}

func (l *Layer) MotionBlur() bool {
	d := l.lock()
	defer d.mu.Unlock()
	return l.motionBlur
}

func (l *Layer) SetMotionBlur(v bool) {
	d := l.lock()
	defer d.mu.Unlock()
	if l.motionBlur == v {
		return
	}
	l.motionBlur = v
	l.notifyModifiedLocked(true)
}

// ExcludedFromTimeline reports whether the owning composition skips this
// layer when it seeks.
func (l *Layer) ExcludedFromTimeline() bool {
	d := l.lock()
	defer d.mu.Unlock()
	return l.excluded
}

func (l *Layer) SetExcludedFromTimeline(v bool) {
	d := l.lock()
	defer d.mu.Unlock()
	if l.excluded == v {
		return
	}
	l.excluded = v
	l.notifyAudioModifiedLocked()
}

// Parent returns the composition holding the layer in its paint list.
func (l *Layer) Parent() *Composition {
	d := l.lock()
	defer d.mu.Unlock()
	return l.parent
}

// TrackMatteOwner returns the layer this layer is the matte of.
func (l *Layer) TrackMatteOwner() Node {
	d := l.lock()
	defer d.mu.Unlock()
	if l.trackMatteOwner == nil {
		return nil
	}
	return l.trackMatteOwner.node
}

// Stage returns the stage the layer is registered with.
func (l *Layer) Stage() *Stage {
	d := l.lock()
	defer d.mu.Unlock()
	return l.stage
}

// ContentVersion increases whenever the layer or anything below it
// changes in a way that affects rendering.
func (l *Layer) ContentVersion() uint64 {
	d := l.lock()
	defer d.mu.Unlock()
	return l.contentVersion
}

// AudioVersion increases whenever the timeline arrangement below the
// layer changes.
func (l *Layer) AudioVersion() uint64 {
	d := l.lock()
	defer d.mu.Unlock()
	return l.audioVersion
}

// Release unlinks the layer: it leaves its parent or matte owner and
// gives up its own track matte.
func (l *Layer) Release() {
	d := l.lock()
	defer d.mu.Unlock()
	if m := l.trackMatte; m != nil {
		l.unlinkMatteLocked()
		releaseDomainLocked(m)
	}
	if l.parent != nil || l.trackMatteOwner != nil {
		l.unlinkLocked()
		releaseDomainLocked(l.node)
	}
	motion.Logger().Debug("layer released", "id", l.id, "kind", l.kind)
}

// Default hooks for plain layers.

func (l *Layer) isStaticLocked() bool {
	return l.transform.IsStatic()
}

func (l *Layer) contentBoundsLocked() motion.Rect {
	if l.content == nil {
		return motion.Rect{}
	}
	return l.content.Bounds()
}

func (l *Layer) drawContentLocked(rec recording.Recorder) {
	if l.content != nil {
		l.content.Draw(rec)
	}
}
