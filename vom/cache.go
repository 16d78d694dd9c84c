package vom

import (
	"fmt"

	"github.com/kvouter/vom/metrics"
)

// FetchFunc retrieves the durable state of an instance that is not
// currently resident, either because it was evicted or because it is
// being reanimated for the first time this process.
type FetchFunc func(InstanceKey) (RawData, error)

// StoreFunc persists the state of an instance being evicted.
type StoreFunc func(InstanceKey, RawData) error

// Cache is the bounded, unsharded LRU of inner selves every VOM keeps
// resident in memory. It carries no internal locking: the VOM core runs
// on a single logical turn, so nothing ever observes a half-updated LRU
// list or live map, and there is no concurrency for a lock to guard
// against.
type Cache struct {
	size int
	live map[InstanceKey]*innerSelf
	head *innerSelf // most recently used
	tail *innerSelf // least recently used

	fetch   FetchFunc
	store   StoreFunc
	metrics metrics.Metrics
}

// NewCache builds a cache holding at most size inner selves resident at
// once. fetch is consulted on a miss, store on an eviction.
func NewCache(size int, fetch FetchFunc, store StoreFunc, m metrics.Metrics) *Cache {
	if size <= 0 {
		panic("vom: cache size must be > 0")
	}
	if m == nil {
		m = metrics.Noop{}
	}
	return &Cache{
		size:    size,
		live:    make(map[InstanceKey]*innerSelf),
		fetch:   fetch,
		store:   store,
		metrics: m,
	}
}

// Lookup returns the resident inner self for key, fetching it from the
// vatstore on a miss.
func (c *Cache) Lookup(key InstanceKey) (*innerSelf, error) {
	if n, ok := c.live[key]; ok {
		c.refresh(n)
		c.metrics.Hit()
		return n, nil
	}

	c.metrics.Miss()
	raw, err := c.fetch(key)
	if err != nil {
		return nil, fmt.Errorf("vom: fetch %s: %w", key, err)
	}
	n := &innerSelf{key: key, raw: raw}
	if err := c.Remember(n); err != nil {
		return nil, err
	}
	return n, nil
}

// Remember inserts n at the head of the LRU if its key is not already
// resident. A no-op if it is.
func (c *Cache) Remember(n *innerSelf) error {
	if _, ok := c.live[n.key]; ok {
		return nil
	}
	// Free a slot for n itself: make_room's target is one below the
	// budget, not the budget, since n is about to occupy the freed slot.
	if err := c.makeRoom(c.size-1, metrics.EvictLRU); err != nil {
		return err
	}
	c.live[n.key] = n
	c.linkFront(n)
	c.metrics.Size(len(c.live))
	return nil
}

// forget hard-removes key without persisting it, for rolling back an
// instance whose maker failed before it could be committed.
func (c *Cache) forget(key InstanceKey) {
	n, ok := c.live[key]
	if !ok {
		return
	}
	delete(c.live, key)
	c.unlink(n)
	c.metrics.Size(len(c.live))
}

// Flush evicts every resident inner self to the vatstore. It does so by
// temporarily dropping the size budget to zero and running the ordinary
// make_room pass, so the same initializing-tail protection applies: a
// flush while anything is still initializing fails with
// ErrCacheOverflow rather than silently leaving it behind.
func (c *Cache) Flush() error {
	orig := c.size
	c.size = 0
	err := c.makeRoom(0, metrics.EvictFlush)
	c.size = orig
	return err
}

// refresh moves n to the head of the LRU if it is not already there.
func (c *Cache) refresh(n *innerSelf) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.linkFront(n)
}

// makeRoom evicts from the tail until at most limit entries remain
// resident. Remember passes size-1 (room for the entry about to be
// inserted); Flush passes 0 directly. A tail entry that is still
// initializing cannot be evicted; it is instead refreshed to the head so
// the next-oldest entry becomes the eviction candidate. Once a pass has
// made more such refreshes than the current size budget, it fails with
// ErrCacheOverflow. On the Remember path no more than size entries are
// resident, so that means every slot is stuck initializing; during
// Flush the budget is 0, so the first initializing tail already fails.
func (c *Cache) makeRoom(limit int, reason metrics.EvictReason) error {
	refreshCount := 0
	for len(c.live) > limit {
		tail := c.tail
		if tail == nil {
			break
		}
		if tail.initializing {
			c.refresh(tail)
			refreshCount++
			if refreshCount > c.size {
				return ErrCacheOverflow
			}
			continue
		}
		if err := c.evict(tail, reason); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) evict(n *innerSelf, reason metrics.EvictReason) error {
	if err := c.store(n.key, n.raw); err != nil {
		return fmt.Errorf("vom: store %s: %w", n.key, err)
	}
	delete(c.live, n.key)
	c.unlink(n)
	n.raw = nil
	c.metrics.Evict(reason)
	c.metrics.Size(len(c.live))
	return nil
}

func (c *Cache) linkFront(n *innerSelf) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *Cache) unlink(n *innerSelf) {
	if n.prev != nil {
		n.prev.next = n.next
	} else if c.head == n {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else if c.tail == n {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
