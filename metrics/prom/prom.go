// Package prom adapts metrics.Metrics to Prometheus: four signals
// (hits, misses, evictions-by-reason, a resident-size gauge). There is
// no cost-accounting gauge, since the VOM core has no cost-based
// eviction to report on.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kvouter/vom/metrics"
)

// Adapter implements metrics.Metrics and exports Prometheus counters and
// a gauge. Safe for concurrent use; all Prometheus metric types are
// goroutine-safe.
type Adapter struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	evicts   *prometheus.CounterVec
	resident prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Inner-self cache hits",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "misses_total",
			Help:        "Inner-self cache misses (fetched from the vatstore)",
			ConstLabels: constLabels,
		}),
		evicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   sub,
				Name:        "evictions_total",
				Help:        "Inner-self evictions by reason",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
		resident: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "resident_entries",
			Help:        "Number of inner selves currently resident",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.evicts, a.resident)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Evict increments the eviction counter with a reason label.
func (a *Adapter) Evict(r metrics.EvictReason) {
	a.evicts.WithLabelValues(reason(r)).Inc()
}

// Size updates the resident-entries gauge.
func (a *Adapter) Size(resident int) {
	a.resident.Set(float64(resident))
}

// reason maps EvictReason to a stable label value.
func reason(r metrics.EvictReason) string {
	switch r {
	case metrics.EvictFlush:
		return "flush"
	default:
		return "lru"
	}
}

// Compile-time check: ensure Adapter implements metrics.Metrics.
var _ metrics.Metrics = (*Adapter)(nil)
