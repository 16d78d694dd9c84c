package vom

import (
	"sync"

	"github.com/kvouter/vom/codec"
	"github.com/kvouter/vom/internal/idgen"
	"github.com/kvouter/vom/slot"
	"github.com/kvouter/vom/slottable"
)

// Reanimator rebuilds a representative of some kind from the durable key
// of one of its instances.
type Reanimator func(InstanceKey) (any, error)

// KindRegistry holds every kind a VOM has declared with MakeKind. A VOM
// exposes its registry through Registry so MakeKind — a free function,
// not a method, because Go methods cannot carry their own type
// parameters — can be called against it.
type KindRegistry struct {
	mu    sync.RWMutex
	kinds map[string]Reanimator
	ids   idgen.Allocator

	cache *Cache
	codec codec.Codec
	slots *slottable.Table
}

func newKindRegistry(cache *Cache, cd codec.Codec, slots *slottable.Table) *KindRegistry {
	return &KindRegistry{kinds: make(map[string]Reanimator), cache: cache, codec: cd, slots: slots}
}

func (r *KindRegistry) reanimator(kindID string) (Reanimator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.kinds[kindID]
	return fn, ok
}

// Kind is the declaration MakeKind returns: a family of instances
// sharing a kind id and a maker function.
type Kind[T any] struct {
	id    string
	seq   idgen.Allocator
	maker func(*Handle) T
	reg   *KindRegistry
}

// MakeKind declares a new kind against reg and returns the Kind[T] used
// to mint instances of it. maker wires a freshly resolved Handle into a
// value of T; T is expected to hold onto that Handle (typically by
// embedding it) so its own accessor methods can call Handle.Get/Set.
//
// MakeKind must be a free function rather than a method on KindRegistry:
// Go does not allow a method to introduce its own type parameter.
func MakeKind[T any](reg *KindRegistry, maker func(*Handle) T) *Kind[T] {
	reg.mu.Lock()
	id := reg.ids.NextString()
	k := &Kind[T]{id: id, maker: maker, reg: reg}
	reg.kinds[id] = func(key InstanceKey) (any, error) { return k.reanimate(key) }
	reg.mu.Unlock()
	return k
}

func (k *Kind[T]) reanimate(key InstanceKey) (T, error) {
	var zero T
	if _, err := k.reg.cache.Lookup(key); err != nil {
		return zero, err
	}
	h := newHandle(key, k.reg.cache, k.reg.codec)
	rep := k.maker(h)
	k.reg.slots.Set(rep, string(key))
	return rep, nil
}

// New mints a fresh instance of kind k. If init is non-nil it is called
// once with the new representative to populate its initial state; if it
// returns an error (typically a wrapped ErrNonSerializable surfaced from
// a Handle.Set call), the instance is rolled back and never reaches the
// vatstore.
func (k *Kind[T]) New(init func(T) error) (T, error) {
	var zero T

	key := InstanceKey(slot.Format(k.id, k.seq.Next()))
	inner := &innerSelf{key: key, raw: RawData{}, initializing: true}
	if err := k.reg.cache.Remember(inner); err != nil {
		return zero, err
	}

	h := newHandle(key, k.reg.cache, k.reg.codec)
	rep := k.maker(h)

	if init != nil {
		if err := init(rep); err != nil {
			k.reg.cache.forget(key)
			return zero, err
		}
	}

	inner.initializing = false
	k.reg.slots.Set(rep, string(key))
	return rep, nil
}
