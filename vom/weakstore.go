package vom

import (
	"fmt"

	"github.com/kvouter/vom/codec"
	"github.com/kvouter/vom/internal/weakmap"
	"github.com/kvouter/vom/metrics"
	"github.com/kvouter/vom/slot"
	"github.com/kvouter/vom/slottable"
	"github.com/kvouter/vom/vatstore"
)

// WeakStore is a map-like association whose storage discipline depends
// on what kind of thing the key is. A key that names a virtual object
// persists alongside it in the vatstore, under a store-qualified key, so
// the association survives across a flush and a process restart just
// like the object it's attached to. Any other key is held in an
// in-memory weak map (internal/weakmap): the association disappears once
// the key itself becomes unreachable, with no vatstore footprint at all.
type WeakStore struct {
	id      string
	keyName string
	store   vatstore.Store
	codec   codec.Codec
	slots   *slottable.Table
	weak    *weakmap.Map[codec.Ground]
	metrics metrics.Metrics
}

func newWeakStore(id, keyName string, store vatstore.Store, cd codec.Codec, slots *slottable.Table, m metrics.Metrics) *WeakStore {
	if m == nil {
		m = metrics.Noop{}
	}
	return &WeakStore{id: id, keyName: keyName, store: store, codec: cd, slots: slots, weak: weakmap.New[codec.Ground](), metrics: m}
}

// vatKey returns the store-qualified key for a virtual-object slot
// string, so distinct WeakStores made by the same VOM never collide with
// each other or with the instances' own entries. Store ids are allocated
// per VOM, so WeakStores of two VOMs sharing one vatstore can share an id.
func (w *WeakStore) vatKey(slotStr string) string {
	return fmt.Sprintf("ws%s.%s", w.id, slotStr)
}

// classify reports the vatstore key for key if key names a virtual
// object, or ok=false if key should be routed to the in-memory weak map.
func (w *WeakStore) classify(key any) (vatKey string, ok bool) {
	s, tracked := w.slots.Get(key)
	if !tracked {
		return "", false
	}
	ref, err := slot.Parse(s)
	if err != nil || !ref.Virtual {
		return "", false
	}
	return w.vatKey(s), true
}

// Has reports whether key currently has an associated value.
func (w *WeakStore) Has(key any) bool {
	if vk, virtual := w.classify(key); virtual {
		_, ok, err := w.store.Get(vk)
		w.hitOrMiss(err == nil && ok)
		return err == nil && ok
	}
	ok := w.weak.Has(key)
	w.hitOrMiss(ok)
	return ok
}

// Init associates value with key, failing with ErrAlreadyRegistered if
// key already has a value.
func (w *WeakStore) Init(key any, value any) error {
	if vk, virtual := w.classify(key); virtual {
		_, present, err := w.store.Get(vk)
		if err != nil {
			return err
		}
		if present {
			return alreadyRegisteredErr(w.keyName)
		}
		g, err := w.codec.Serialize(value)
		if err != nil {
			return nonSerializableErr(w.keyName, err)
		}
		return w.store.Set(vk, string(g))
	}

	if w.weak.Has(key) {
		return alreadyRegisteredErr(w.keyName)
	}
	g, err := w.codec.Serialize(value)
	if err != nil {
		return nonSerializableErr(w.keyName, err)
	}
	w.weak.Set(key, g)
	return nil
}

// Get decodes the value associated with key into out, failing with
// ErrNotFound if there is none.
func (w *WeakStore) Get(key any, out any) error {
	if vk, virtual := w.classify(key); virtual {
		s, present, err := w.store.Get(vk)
		if err != nil {
			return err
		}
		w.hitOrMiss(present)
		if !present {
			return notFoundErr(w.keyName)
		}
		return w.codec.Unserialize(codec.Ground(s), out)
	}

	g, ok := w.weak.Get(key)
	w.hitOrMiss(ok)
	if !ok {
		return notFoundErr(w.keyName)
	}
	return w.codec.Unserialize(g, out)
}

// hitOrMiss reports a found/not-found lookup to the configured metrics
// sink, the same Hit/Miss signal vom.Cache reports for its own resident
// lookups.
func (w *WeakStore) hitOrMiss(found bool) {
	if found {
		w.metrics.Hit()
		return
	}
	w.metrics.Miss()
}

// Set overwrites the value associated with key, failing with
// ErrNotFound if key has never been Init'd.
func (w *WeakStore) Set(key any, value any) error {
	if vk, virtual := w.classify(key); virtual {
		_, present, err := w.store.Get(vk)
		if err != nil {
			return err
		}
		if !present {
			return notFoundErr(w.keyName)
		}
		g, err := w.codec.Serialize(value)
		if err != nil {
			return nonSerializableErr(w.keyName, err)
		}
		return w.store.Set(vk, string(g))
	}

	if !w.weak.Has(key) {
		return notFoundErr(w.keyName)
	}
	g, err := w.codec.Serialize(value)
	if err != nil {
		return nonSerializableErr(w.keyName, err)
	}
	w.weak.Set(key, g)
	return nil
}

// Delete removes the association for key, failing with ErrNotFound if
// there is none. For a virtual-object key this tombstones the
// vatstore entry rather than physically removing it, same as any other
// vatstore delete.
func (w *WeakStore) Delete(key any) error {
	if vk, virtual := w.classify(key); virtual {
		_, present, err := w.store.Get(vk)
		if err != nil {
			return err
		}
		if !present {
			return notFoundErr(w.keyName)
		}
		return w.store.Delete(vk)
	}

	if !w.weak.Has(key) {
		return notFoundErr(w.keyName)
	}
	w.weak.Delete(key)
	return nil
}
