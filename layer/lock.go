package layer

import (
	"sync"
	"sync/atomic"
)

// lockDomain is the mutex shared by every layer of an attached tree.
type lockDomain struct {
	mu sync.Mutex
	id uint64
}

var domainIDs atomic.Uint64

func newDomain() *lockDomain {
	return &lockDomain{id: domainIDs.Add(1)}
}

// lock acquires the layer's current domain. The domain pointer may be
// swapped while waiting, in which case the stale domain is released and
// acquisition is retried.
func (l *Layer) lock() *lockDomain {
	for {
		d := l.domain.Load()
		d.mu.Lock()
		if l.domain.Load() == d {
			return d
		}
		d.mu.Unlock()
	}
}

// lockPair acquires the domains of a and b in id order and returns the
// matching unlock function.
func lockPair(a, b *Layer) (unlock func()) {
	for {
		da, db := a.domain.Load(), b.domain.Load()
		if da == db {
			da.mu.Lock()
			if a.domain.Load() == da && b.domain.Load() == db {
				return da.mu.Unlock
			}
			da.mu.Unlock()
			continue
		}
		first, second := da, db
		if second.id < first.id {
			first, second = second, first
		}
		first.mu.Lock()
		second.mu.Lock()
		if a.domain.Load() == da && b.domain.Load() == db {
			return func() {
				second.mu.Unlock()
				first.mu.Unlock()
			}
		}
		second.mu.Unlock()
		first.mu.Unlock()
	}
}

// setDomainLocked points n, its children and its matte subtree at d.
func setDomainLocked(n Node, d *lockDomain) {
	walkLocked(n, func(m Node) {
		m.base().domain.Store(d)
	})
}
