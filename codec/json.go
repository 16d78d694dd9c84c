package codec

import (
	"encoding/json"
	"fmt"
)

// JSON is the default Codec. It round-trips through encoding/json:
// Ground is defined as JSON-compatible, so this is the natural fit at
// the vatstore boundary rather than a stand-in chosen for lack of a
// third-party alternative.
type JSON struct{}

// Serialize encodes v as JSON. json.Marshal already names the offending
// type on failure (e.g. "json: unsupported type: chan int"), which this
// wraps so callers can attribute the failure to the property being set.
func (JSON) Serialize(v any) (Ground, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("codec: serialize: %w", err)
	}
	return Ground(b), nil
}

// Unserialize decodes g into out.
func (JSON) Unserialize(g Ground, out any) error {
	if len(g) == 0 {
		return fmt.Errorf("codec: unserialize: empty ground value")
	}
	if err := json.Unmarshal(g, out); err != nil {
		return fmt.Errorf("codec: unserialize: %w", err)
	}
	return nil
}

// compile-time check
var _ Codec = JSON{}
