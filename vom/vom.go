package vom

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kvouter/vom/codec"
	"github.com/kvouter/vom/internal/idgen"
	"github.com/kvouter/vom/metrics"
	"github.com/kvouter/vom/slot"
	"github.com/kvouter/vom/slottable"
	"github.com/kvouter/vom/vatstore"
)

// VOM is the facade a host process builds once and shares across every
// kind it declares: it owns the resident cache, the kind registry, and
// the identity table tracking which live representatives name virtual
// objects.
type VOM struct {
	cache    *Cache
	registry *KindRegistry
	slots    *slottable.Table
	codec    codec.Codec
	vatstore vatstore.Store
	storeIDs idgen.Allocator
	metrics  metrics.Metrics
}

// New builds a VOM from opt. It panics if a required field is missing —
// a misconfigured VOM is a programming error, not a runtime condition
// to recover from.
func New(opt Options) *VOM {
	if opt.CacheSize <= 0 {
		panic("vom: Options.CacheSize must be > 0")
	}
	if opt.Store == nil {
		panic("vom: Options.Store must be set")
	}
	if opt.Codec == nil {
		opt.Codec = codec.JSON{}
	}
	if opt.Metrics == nil {
		opt.Metrics = metrics.Noop{}
	}

	v := &VOM{
		slots:    slottable.New(),
		codec:    opt.Codec,
		vatstore: opt.Store,
		metrics:  opt.Metrics,
	}
	v.cache = NewCache(opt.CacheSize, v.fetch, v.persist, opt.Metrics)
	v.registry = newKindRegistry(v.cache, opt.Codec, v.slots)
	return v
}

// Registry exposes the kind registry MakeKind declares new kinds
// against.
func (v *VOM) Registry() *KindRegistry { return v.registry }

// FlushCache writes every resident inner self back to the vatstore.
func (v *VOM) FlushCache() error { return v.cache.Flush() }

// MakeWeakStore creates a WeakStore layered on this VOM's vatstore and
// codec. keyName tags this store's error messages ("<keyName> not
// found", ...) and defaults to "key".
func (v *VOM) MakeWeakStore(keyName string) *WeakStore {
	if keyName == "" {
		keyName = "key"
	}
	return newWeakStore(v.storeIDs.NextString(), keyName, v.vatstore, v.codec, v.slots, v.metrics)
}

// MakeRepresentative reanimates the virtual object named by vref, which
// must be a slot reference previously handed out by a Handle's
// InstanceKey (e.g. the key of an instance minted by some Kind[T].New).
func (v *VOM) MakeRepresentative(vref string) (any, error) {
	ref, err := slot.Parse(vref)
	if err != nil {
		return nil, err
	}
	if !ref.Virtual {
		return nil, fmt.Errorf("%w: %s does not name a virtual object", ErrUnknownKind, vref)
	}
	kindID, _, ok := strings.Cut(ref.ID, "/")
	if !ok {
		return nil, fmt.Errorf("vom: malformed instance id %q", ref.ID)
	}
	reanimate, ok := v.registry.reanimator(kindID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kindID)
	}
	return reanimate(InstanceKey(vref))
}

func (v *VOM) fetch(key InstanceKey) (RawData, error) {
	s, ok, err := v.vatstore.Get(string(key))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("vom: %s: not found in vatstore", key)
	}
	raw := RawData{}
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("vom: %s: corrupt vatstore entry: %w", key, err)
	}
	return raw, nil
}

func (v *VOM) persist(key InstanceKey, raw RawData) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("vom: %s: %w", key, err)
	}
	return v.vatstore.Set(string(key), string(b))
}
