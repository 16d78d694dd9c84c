package vom

import (
	"github.com/kvouter/vom/codec"
	"github.com/kvouter/vom/metrics"
	"github.com/kvouter/vom/vatstore"
)

// Options configures a new VOM: required fields first, everything else
// defaulted.
type Options struct {
	// CacheSize is the maximum number of inner selves resident at once.
	// Required, must be > 0.
	CacheSize int

	// Store is the durable vatstore backing every instance and WeakStore
	// entry keyed by a virtual object. Required.
	Store vatstore.Store

	// Codec serializes property and WeakStore values. Defaults to
	// codec.JSON{}.
	Codec codec.Codec

	// Metrics receives hit/miss/eviction/size signals. Defaults to
	// metrics.Noop{}.
	Metrics metrics.Metrics
}
