package vom

import (
	"fmt"

	"github.com/kvouter/vom/codec"
)

// Handle is the stable, cheap-to-copy reference every representative
// holds in place of a direct pointer to its inner self. Get and Set
// always resolve the live inner self afresh through Cache.Lookup, which
// is this module's replacement for the source's ensure_state rebind
// trick: there is no captured reference to go stale, because nothing
// about an inner self is ever captured.
type Handle struct {
	key   InstanceKey
	cache *Cache
	codec codec.Codec
}

func newHandle(key InstanceKey, c *Cache, cd codec.Codec) *Handle {
	return &Handle{key: key, cache: c, codec: cd}
}

// InstanceKey returns the durable key naming this handle's instance.
func (h *Handle) InstanceKey() InstanceKey { return h.key }

// Get decodes the named property's current value into out.
func (h *Handle) Get(prop string, out any) error {
	n, err := h.cache.Lookup(h.key)
	if err != nil {
		return err
	}
	g, ok := n.raw[prop]
	if !ok {
		return fmt.Errorf("vom: %s: property %q not set", h.key, prop)
	}
	return h.codec.Unserialize(g, out)
}

// Set serializes value and writes it to the named property. Serialization
// happens before the cache is consulted, so a Lookup that rotates the
// tail (possibly evicting some other instance entirely) can never see a
// half-written property: by the time the inner self is resolved, value
// is already a self-contained Ground blob ready to store.
func (h *Handle) Set(prop string, value any) error {
	g, err := h.codec.Serialize(value)
	if err != nil {
		return nonSerializableErr(prop, err)
	}
	n, err := h.cache.Lookup(h.key)
	if err != nil {
		return err
	}
	n.raw[prop] = g
	return nil
}
