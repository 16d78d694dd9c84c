// Package slottable maintains the association between in-memory
// representatives and the slot strings that identify them durably.
// Representatives are looked up by pointer identity, never by value
// equality, so two distinct representatives with identical field values
// never collide.
package slottable

import (
	"reflect"
	"runtime"
	"sync"
)

// Table is a bidirectional-in-spirit association: callers set a
// representative's slot once at construction time and look it up by
// identity afterward (the inverse direction, slot→representative, is the
// concern of the cache and kind registry, not of this package).
//
// Entries are kept by identity (uintptr), not by holding the
// representative itself, so a Table never forces representatives to
// outlive their natural lifetime. That leaves a stale-address hazard
// once a representative is collected and its address reused by some
// later, unrelated allocation: Set arranges for a finalizer to call
// Delete first, closing that window the same way internal/weakmap
// forgets its own entries.
//
// Safe for concurrent use, mirroring the registries elsewhere in this
// module (e.g. a weak store or kind registry may be shared across
// goroutines even though the VOM core itself is single-threaded).
type Table struct {
	mu      sync.RWMutex
	entries map[uintptr]string
}

// New returns an empty Table.
func New() *Table {
	return &Table{entries: make(map[uintptr]string)}
}

// Set records rep's slot. rep must be a non-nil pointer; non-pointer
// values have no stable identity and are silently ignored (Get will
// simply report them absent, i.e. non-virtual).
func (t *Table) Set(rep any, slotStr string) {
	id, ok := identity(rep)
	if !ok {
		return
	}
	t.mu.Lock()
	_, existed := t.entries[id]
	t.entries[id] = slotStr
	t.mu.Unlock()

	if !existed {
		// Captures id, not rep: closing over rep would keep it
		// reachable forever and the finalizer would never run.
		runtime.SetFinalizer(rep, func(any) { t.deleteID(id) })
	}
}

// Get returns the slot registered for rep, if any.
func (t *Table) Get(rep any) (string, bool) {
	id, ok := identity(rep)
	if !ok {
		return "", false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.entries[id]
	return s, ok
}

// Delete forgets rep's slot, if recorded, and cancels its finalizer.
func (t *Table) Delete(rep any) {
	id, ok := identity(rep)
	if !ok {
		return
	}
	runtime.SetFinalizer(rep, nil)
	t.deleteID(id)
}

func (t *Table) deleteID(id uintptr) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, id)
}

// identity extracts a stable pointer identity from rep.
func identity(rep any) (uintptr, bool) {
	if rep == nil {
		return 0, false
	}
	v := reflect.ValueOf(rep)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return 0, false
	}
	return v.Pointer(), true
}
