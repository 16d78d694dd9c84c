// Package vom implements the Virtual Object Manager: a runtime facility
// that projects a potentially unbounded population of long-lived virtual
// objects onto a bounded in-memory working set, with the remainder
// durably resident in an external vatstore.
//
// Design
//
//   - Cache: a single unsharded LRU of inner selves (see cache.go), one
//     policy only (LRU with initializing-tail protection). Shard fan-out
//     and policy pluggability have no home here, because the VOM core is
//     single-threaded and its eviction rule (never evict a
//     mid-initialization entry) is not something a generic policy
//     interface can express without leaking the initializing bit into
//     the policy contract.
//
//   - Handle: every representative holds a Handle instead of a live
//     pointer into cache state. Handle.Get/Set always resolve the current
//     inner self through Cache.Lookup, so eviction and rehydration are
//     invisible to anything holding a Handle.
//
//   - Kind[T]/MakeKind: a kind is declared once with a maker function
//     that wires a freshly resolved Handle into a representative value of
//     type T. New instances are minted with Kind[T].New; existing ones are
//     rebuilt from a durable reference via the VOM facade's
//     MakeRepresentative.
//
//   - WeakStore: a map whose keys are classified by slottable.Table —
//     virtual-object keys persist in the vatstore under a store-qualified
//     key; everything else lives in a garbage-collectable weak map
//     (internal/weakmap).
//
// Basic usage
//
//	store := vatstore.NewMemStore()
//	v := vom.New(vom.Options{CacheSize: 64, Store: store})
//
//	type Counter struct{ h *vom.Handle }
//	func (c *Counter) Count() int {
//	    var n int
//	    _ = c.h.Get("count", &n)
//	    return n
//	}
//	func (c *Counter) Initialize(n int) error { return c.h.Set("count", n) }
//
//	counterKind := vom.MakeKind(v.Registry(), func(h *vom.Handle) *Counter {
//	    return &Counter{h: h}
//	})
//	c, _ := counterKind.New(func(c *Counter) error { return c.Initialize(7) })
//	_ = v.FlushCache()
//	rep, _ := v.MakeRepresentative(string(c.h.InstanceKey()))
//	reanimated := rep.(*Counter)
//	_ = reanimated.Count() // 7
package vom
