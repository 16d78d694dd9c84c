// Package idgen allocates the monotonically increasing identifiers this
// module hands out: kind ids, per-kind instance sequence numbers, and
// weak-store ids. None of these are part of the VOM core's single-threaded
// hot path — a process may run many VOMs, each minting kinds and stores
// independently — so allocation is a plain atomic counter, padded to a
// cache line to avoid false sharing between unrelated allocators living
// in the same struct.
package idgen

import (
	"strconv"
	"sync/atomic"
)

// cacheLineSize is a conservative, portable guess at the L1 cache line
// size of the host CPU.
const cacheLineSize = 64

// Allocator hands out a monotonically increasing sequence of uint64s
// starting at 1. Zero is reserved as "never allocated" so callers can use
// it as a sentinel.
type Allocator struct {
	n atomic.Uint64
	_ [cacheLineSize - 8]byte
}

// Next returns the next id in the sequence.
func (a *Allocator) Next() uint64 { return a.n.Add(1) }

// NextString returns the next id formatted as a base-10 string, the form
// every identifier in this module (kind ids, store ids) is carried in.
func (a *Allocator) NextString() string {
	return strconv.FormatUint(a.Next(), 10)
}
