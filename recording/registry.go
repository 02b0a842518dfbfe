package recording

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new Recorder instance.
type Factory func() Recorder

var (
	registryMu sync.RWMutex
	sinks      = make(map[string]Factory)
)

func init() {
	Register("commands", func() Recorder { return NewCommandRecorder() })
	Register("discard", func() Recorder { return Discard })
}

// Register registers a sink factory under name. It is typically called
// from init().
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := sinks[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	sinks[name] = factory
}

// Unregister removes a sink. It is a no-op for unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(sinks, name)
}

// New creates a recorder by sink name.
func New(name string) (Recorder, error) {
	registryMu.RLock()
	factory, ok := sinks[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown sink %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Sinks returns the registered sink names, sorted.
func Sinks() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(sinks))
	for name := range sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a sink with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := sinks[name]
	return ok
}
