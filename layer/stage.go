package layer

import "github.com/gogpu/motion"

// Stage tracks every layer attached below a root composition, track
// mattes included, so layers can be looked up by id while they are part
// of the tree.
type Stage struct {
	root   *Composition
	layers map[uint32]Node
}

// NewStage registers root and everything below it. It returns nil when
// root is nil, is part of another tree or already has a stage.
func NewStage(root *Composition) *Stage {
	if root == nil {
		return nil
	}
	d := root.lock()
	defer d.mu.Unlock()
	if root.parent != nil || root.trackMatteOwner != nil || root.stage != nil {
		return nil
	}
	s := &Stage{root: root, layers: make(map[uint32]Node)}
	s.addLocked(root)
	return s
}

// isStageRootLocked reports whether l is the root of a live stage.
func (l *Layer) isStageRootLocked() bool {
	return l.stage != nil && &l.stage.root.Layer == l
}

// Root returns the stage's root composition.
func (s *Stage) Root() *Composition {
	return s.root
}

func (s *Stage) addLocked(n Node) {
	walkLocked(n, func(m Node) {
		l := m.base()
		l.stage = s
		s.layers[l.id] = m
	})
	motion.Logger().Debug("stage add", "layer", n.base().id, "registered", len(s.layers))
}

func (s *Stage) removeLocked(n Node) {
	walkLocked(n, func(m Node) {
		l := m.base()
		if l.stage == s {
			l.stage = nil
			delete(s.layers, l.id)
		}
	})
	motion.Logger().Debug("stage remove", "layer", n.base().id, "registered", len(s.layers))
}

// Len returns the number of registered layers.
func (s *Stage) Len() int {
	d := s.root.lock()
	defer d.mu.Unlock()
	return len(s.layers)
}

// Lookup returns the registered layer with the given id.
func (s *Stage) Lookup(id uint32) (Node, bool) {
	d := s.root.lock()
	defer d.mu.Unlock()
	n, ok := s.layers[id]
	return n, ok
}

// Close unregisters every layer.
func (s *Stage) Close() {
	d := s.root.lock()
	defer d.mu.Unlock()
	s.removeLocked(s.root)
}
