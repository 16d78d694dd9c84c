// Package metrics exposes the observability hooks vom.Cache and
// vom.WeakStore report through. A VOM can run metrics-free by default
// and be wired to a real backend (see metrics/prom) when it matters.
package metrics

// EvictReason explains why a resident inner self was evicted.
type EvictReason int

const (
	// EvictLRU — the entry was the least-recently-used resident while the
	// cache was over its size budget.
	EvictLRU EvictReason = iota
	// EvictFlush — the entry was evicted by an explicit FlushCache.
	EvictFlush
)

// Metrics receives hit/miss/eviction/size signals from a running VOM.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(resident int)
}

// Noop is a Metrics that discards everything; the default when no
// observability backend is configured.
type Noop struct{}

func (Noop) Hit()              {}
func (Noop) Miss()             {}
func (Noop) Evict(EvictReason) {}
func (Noop) Size(int)          {}

var _ Metrics = Noop{}
