package layer

// parentOrOwnerLocked returns the parent composition, or the matte owner
// for a track matte.
func (l *Layer) parentOrOwnerLocked() *Layer {
	if l.parent != nil {
		return &l.parent.Layer
	}
	return l.trackMatteOwner
}

// timelineOwnerLocked returns the layer whose timeline this layer lives
// on: the parent, or the matte owner's parent for a track matte.
func (l *Layer) timelineOwnerLocked() *Layer {
	if l.parent != nil {
		return &l.parent.Layer
	}
	if l.trackMatteOwner != nil && l.trackMatteOwner.parent != nil {
		return &l.trackMatteOwner.parent.Layer
	}
	return nil
}

// isAncestorOfLocked reports whether l is o or lies above o on the
// parent-or-owner chain.
func (l *Layer) isAncestorOfLocked(o *Layer) bool {
	for p := o; p != nil; p = p.parentOrOwnerLocked() {
		if p == l {
			return true
		}
	}
	return false
}

// childrenLocked returns the paint list of a composition.
func childrenLocked(n Node) []Node {
	if c, ok := n.(*Composition); ok {
		return c.children
	}
	return nil
}

// walkLocked visits n, its track matte subtree and its children subtrees.
func walkLocked(n Node, fn func(Node)) {
	fn(n)
	if m := n.base().trackMatte; m != nil {
		walkLocked(m, fn)
	}
	for _, c := range childrenLocked(n) {
		walkLocked(c, fn)
	}
}

// unlinkLocked takes the layer out of its composition or off its matte
// owner. The layer keeps its current lock domain; callers either attach it
// elsewhere or move it onto a fresh domain with releaseDomainLocked.
func (l *Layer) unlinkLocked() {
	switch {
	case l.parent != nil:
		l.parent.unlinkChildLocked(l.node)
	case l.trackMatteOwner != nil:
		l.trackMatteOwner.unlinkMatteLocked()
	}
}

// releaseDomainLocked moves a detached subtree onto a fresh domain. It must
// be the last step of a restructuring so lockers of the old domain never
// observe a half-moved subtree.
func releaseDomainLocked(n Node) {
	setDomainLocked(n, newDomain())
}
