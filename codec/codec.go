// Package codec serializes Go values to and from the ground data form
// that crosses the vatstore boundary.
package codec

import "encoding/json"

// Ground is the wire representation of a serialized value: JSON-compatible
// and string-encoded at the vatstore boundary, so json.RawMessage (a
// []byte holding valid JSON text) is the exact fit.
type Ground = json.RawMessage

// Codec serializes and deserializes user values to and from Ground.
type Codec interface {
	// Serialize encodes v into its ground form. Values that cannot be
	// represented (channels, funcs, cyclic graphs, ...) return an error
	// naming the failure.
	Serialize(v any) (Ground, error)

	// Unserialize decodes g into out, which must be a non-nil pointer.
	Unserialize(g Ground, out any) error
}
