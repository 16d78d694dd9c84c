// Package weakmap provides a map that holds its keys weakly: once a key
// becomes unreachable to everything else, the Go garbage collector may
// collect it, and the map forgets the entry on its own.
//
// This backs the non-virtual side of vom.WeakStore (see SPEC_FULL.md
// §10, the runtime.SetFinalizer entry). Keys are arbitrary
// pointer values carried as any, which rules out the generic
// weak.Pointer[T]/runtime.AddCleanup[T,S] pair added in Go 1.24: both are
// parameterized on the pointee type T, which must be known at the call
// site, and this map's callers only ever have an any. runtime.SetFinalizer
// predates that generic API and, being reflection-based internally,
// is the one stdlib tool that already operates on "any" keys — so it is
// the correct fit here, not a downgrade from the newer API.
//
// The map itself never stores key, only its pointer identity: keying on
// key directly would keep it strongly reachable through the map forever,
// and the finalizer that is supposed to forget the entry would never
// fire.
package weakmap

import (
	"reflect"
	"runtime"
	"sync"
)

// Map holds values keyed by pointer identity. Keys must be non-nil
// pointers; anything else is silently rejected by Set, Has, Get, and
// Delete.
//
// Safe for concurrent use.
type Map[V any] struct {
	mu      sync.Mutex
	entries map[uintptr]V
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{entries: make(map[uintptr]V)}
}

// Has reports whether key is currently present.
func (m *Map[V]) Has(key any) bool {
	id, ok := identity(key)
	if !ok {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok = m.entries[id]
	return ok
}

// Get returns the value stored for key.
func (m *Map[V]) Get(key any) (V, bool) {
	id, ok := identity(key)
	if !ok {
		var zero V
		return zero, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[id]
	return v, ok
}

// Set stores v for key, arranging for the entry to be forgotten once key
// is no longer reachable from anywhere else. Returns false if key already
// had an entry (the caller decides whether that's an error).
func (m *Map[V]) Set(key any, v V) bool {
	id, ok := identity(key)
	if !ok {
		return false
	}
	m.mu.Lock()
	_, existed := m.entries[id]
	m.entries[id] = v
	m.mu.Unlock()

	if !existed {
		// The finalizer closure captures id, not key itself: closing
		// over key would keep it alive forever and the finalizer would
		// never run. SetFinalizer already hands the collected object
		// back as the argument, which this map has no use for.
		runtime.SetFinalizer(key, func(any) { m.forget(id) })
	}
	return !existed
}

// Delete removes key's entry, if any, and cancels its finalizer.
func (m *Map[V]) Delete(key any) {
	id, ok := identity(key)
	if !ok {
		return
	}
	runtime.SetFinalizer(key, nil)
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
}

// Len returns the number of currently tracked entries. Best-effort: an
// entry whose key was just collected may still be counted until its
// finalizer runs.
func (m *Map[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Map[V]) forget(id uintptr) {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
}

// identity extracts a pointer-identity key from key without retaining a
// reference to key itself, the same convention slottable.Table uses.
func identity(key any) (uintptr, bool) {
	if key == nil {
		return 0, false
	}
	v := reflect.ValueOf(key)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return 0, false
	}
	return v.Pointer(), true
}
