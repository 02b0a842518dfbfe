package layer

import (
	"slices"

	"github.com/gogpu/motion"
	"github.com/gogpu/motion/recording"
	"github.com/gogpu/motion/timeline"
)

// Composition is a layer that owns an ordered list of child layers. Child
// order is paint order.
type Composition struct {
	Layer

	children      []Node
	width, height float64
	// empty compositions derive duration and frame rate from children.
	empty bool
}

// NewComposition creates a composition of the given size lasting
// durationUS at frameRate. It returns nil for a non-positive duration or
// frame rate.
func NewComposition(width, height float64, durationUS int64, frameRate float64) *Composition {
	if durationUS <= 0 || frameRate <= 0 {
		return nil
	}
	c := &Composition{width: width, height: height}
	c.init(c, KindComposition, timeline.TimeToFrame(durationUS, frameRate), frameRate)
	return c
}

// NewEmptyComposition creates a composition whose duration and frame rate
// follow its children: the highest child frame rate and the latest child
// end time.
func NewEmptyComposition(width, height float64) *Composition {
	c := &Composition{width: width, height: height, empty: true}
	c.init(c, KindComposition, 1, timeline.DefaultFrameRate)
	return c
}

// updateDurationAndFrameRateLocked recomputes an empty composition's
// timing from its children and propagates to empty ancestors.
func (c *Composition) updateDurationAndFrameRateLocked() {
	rate := 0.0
	var end int64
	for _, child := range c.children {
		l := child.base()
		rate = max(rate, l.frameRate)
		end = max(end, timeline.FrameToTime(l.startFrame, l.frameRate)+l.durationLocked())
	}
	if rate == 0 {
		rate = timeline.DefaultFrameRate
	}
	duration := max(timeline.TimeToFrame(end, rate), 1)
	if rate == c.frameRate && duration == c.frameDuration {
		return
	}
	c.frameRate = rate
	c.frameDuration = duration
	c.notifyAudioModifiedLocked()
	if c.parent != nil && c.parent.empty {
		c.parent.updateDurationAndFrameRateLocked()
	}
}

// childTimeLocked is the time children are seeked to for the current
// frame.
func (c *Composition) childTimeLocked() int64 {
	return timeline.FrameToTime(c.layerFrameLocked(), c.frameRate) -
		timeline.FrameToTime(c.startFrame, c.frameRate)
}

func (c *Composition) gotoTimeLocked(layerTime int64) bool {
	changed := c.Layer.gotoTimeLocked(layerTime)
	childTime := layerTime - timeline.FrameToTime(c.startFrame, c.frameRate)
	for _, child := range c.children {
		l := child.base()
		if l.excluded {
			continue
		}
		if child.gotoTimeLocked(childTime) {
			l.contentVersion++
			changed = true
		}
	}
	return changed
}

func (c *Composition) contentBoundsLocked() motion.Rect {
	if c.width > 0 && c.height > 0 {
		return motion.XYWH(0, 0, c.width, c.height)
	}
	var r motion.Rect
	for _, child := range c.children {
		r = r.Union(child.base().boundsLocked())
	}
	return r
}

func (c *Composition) drawContentLocked(rec recording.Recorder) {
	for _, child := range c.children {
		drawLocked(child, rec)
	}
}

// Width returns the composition width.
func (c *Composition) Width() float64 {
	d := c.lock()
	defer d.mu.Unlock()
	return c.width
}

// Height returns the composition height.
func (c *Composition) Height() float64 {
	d := c.lock()
	defer d.mu.Unlock()
	return c.height
}

// SetContentSize resizes the composition.
func (c *Composition) SetContentSize(width, height float64) {
	d := c.lock()
	defer d.mu.Unlock()
	if c.width == width && c.height == height {
		return
	}
	c.width, c.height = width, height
	c.notifyModifiedLocked(true)
	c.invalidateCacheScaleLocked()
}

// NumChildren returns the number of layers in the paint list.
func (c *Composition) NumChildren() int {
	d := c.lock()
	defer d.mu.Unlock()
	return len(c.children)
}

// LayerAt returns the child at index, or nil when out of range.
func (c *Composition) LayerAt(index int) Node {
	d := c.lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(c.children) {
		return nil
	}
	return c.children[index]
}

// Layers returns a copy of the paint list.
func (c *Composition) Layers() []Node {
	d := c.lock()
	defer d.mu.Unlock()
	return slices.Clone(c.children)
}

// LayerIndex returns the index of n, or -1 if n is not a child.
func (c *Composition) LayerIndex(n Node) int {
	d := c.lock()
	defer d.mu.Unlock()
	return c.indexLocked(n)
}

func (c *Composition) indexLocked(n Node) int {
	return slices.Index(c.children, n)
}

// SetLayerIndex moves child n to index. Out of range indices move it to
// the end.
func (c *Composition) SetLayerIndex(n Node, index int) bool {
	d := c.lock()
	defer d.mu.Unlock()
	return c.setIndexLocked(n, index)
}

func (c *Composition) setIndexLocked(n Node, index int) bool {
	if index < 0 || index >= len(c.children) {
		index = len(c.children) - 1
	}
	old := c.indexLocked(n)
	if old < 0 {
		return false
	}
	if old == index {
		return true
	}
	c.children = slices.Delete(c.children, old, old+1)
	c.children = slices.Insert(c.children, index, n)
	c.notifyModifiedLocked(true)
	return true
}

// AddLayer appends n to the paint list.
func (c *Composition) AddLayer(n Node) bool {
	return c.AddLayerAt(n, -1)
}

// AddLayerAt inserts n at index, first taking it out of any composition or
// matte slot it occupies. An out of range index appends. Adding the
// composition itself, one of its ancestors or the root of a live stage
// fails.
func (c *Composition) AddLayerAt(n Node, index int) bool {
	if n == nil {
		return false
	}
	l := n.base()
	unlock := lockPair(&c.Layer, l)
	defer unlock()

	if l.isAncestorOfLocked(&c.Layer) {
		motion.Logger().Warn("add layer rejected: would create a cycle", "composition", c.id, "layer", l.id)
		return false
	}
	if l.isStageRootLocked() {
		motion.Logger().Warn("add layer rejected: layer is a stage root", "composition", c.id, "layer", l.id)
		return false
	}
	if l.parent == c {
		return c.setIndexLocked(n, index)
	}
	l.unlinkLocked()
	if index < 0 || index > len(c.children) {
		index = len(c.children)
	}
	c.children = slices.Insert(c.children, index, n)
	l.parent = c
	if c.stage != nil {
		c.stage.addLocked(n)
	}
	setDomainLocked(n, c.domain.Load())
	if c.empty {
		c.updateDurationAndFrameRateLocked()
	}
	n.gotoTimeLocked(c.childTimeLocked())
	c.notifyModifiedLocked(true)
	c.notifyAudioModifiedLocked()
	return true
}

// Contains reports whether n is the composition or lies below it.
func (c *Composition) Contains(n Node) bool {
	if n == nil {
		return false
	}
	d := c.lock()
	defer d.mu.Unlock()
	for p := n.base(); p != nil; p = p.parentOrOwnerLocked() {
		if p == &c.Layer {
			return true
		}
	}
	return false
}

// RemoveLayer removes child n and leaves it as a detached root.
func (c *Composition) RemoveLayer(n Node) bool {
	if n == nil {
		return false
	}
	d := c.lock()
	defer d.mu.Unlock()
	if n.base().parent != c {
		return false
	}
	c.unlinkChildLocked(n)
	releaseDomainLocked(n)
	return true
}

// RemoveLayerAt removes and returns the child at index, or nil when out of
// range.
func (c *Composition) RemoveLayerAt(index int) Node {
	d := c.lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(c.children) {
		return nil
	}
	n := c.children[index]
	c.unlinkChildLocked(n)
	releaseDomainLocked(n)
	return n
}

// RemoveAllLayers empties the paint list.
func (c *Composition) RemoveAllLayers() {
	d := c.lock()
	defer d.mu.Unlock()
	for len(c.children) > 0 {
		n := c.children[len(c.children)-1]
		c.unlinkChildLocked(n)
		releaseDomainLocked(n)
	}
}

// unlinkChildLocked drops n from the paint list without touching its lock
// domain.
func (c *Composition) unlinkChildLocked(n Node) {
	i := c.indexLocked(n)
	if i < 0 {
		return
	}
	c.children = slices.Delete(c.children, i, i+1)
	l := n.base()
	l.parent = nil
	if l.stage != nil {
		l.stage.removeLocked(n)
	}
	if c.empty {
		c.updateDurationAndFrameRateLocked()
	}
	c.notifyModifiedLocked(true)
	c.notifyAudioModifiedLocked()
}

// SwapLayer exchanges the positions of two children.
func (c *Composition) SwapLayer(a, b Node) bool {
	d := c.lock()
	defer d.mu.Unlock()
	return c.swapLocked(c.indexLocked(a), c.indexLocked(b))
}

// SwapLayerAt exchanges the children at two indices.
func (c *Composition) SwapLayerAt(i, j int) bool {
	d := c.lock()
	defer d.mu.Unlock()
	return c.swapLocked(i, j)
}

func (c *Composition) swapLocked(i, j int) bool {
	n := len(c.children)
	if i < 0 || j < 0 || i >= n || j >= n {
		return false
	}
	if i == j {
		return true
	}
	c.children[i], c.children[j] = c.children[j], c.children[i]
	c.notifyModifiedLocked(true)
	return true
}

// LayersByName returns every layer below the composition with the given
// name, depth first in paint order.
func (c *Composition) LayersByName(name string) []Node {
	d := c.lock()
	defer d.mu.Unlock()
	var out []Node
	for _, child := range c.children {
		walkChildrenLocked(child, func(n Node) {
			if n.base().name == name {
				out = append(out, n)
			}
		})
	}
	return out
}

// walkChildrenLocked visits n and its paint-list descendants, skipping
// track mattes.
func walkChildrenLocked(n Node, fn func(Node)) {
	fn(n)
	for _, c := range childrenLocked(n) {
		walkChildrenLocked(c, fn)
	}
}
