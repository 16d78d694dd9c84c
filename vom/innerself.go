package vom

import "github.com/kvouter/vom/codec"

// InstanceKey names one virtual object instance. Its textual form is a
// slot reference ("o+<kindID>/<seq>") so it doubles as the vatstore key
// and as the virtual reference handed out by MakeRepresentative.
type InstanceKey string

// RawData is the decoded property bag of an inner self: one Ground blob
// per property name, the unit Handle.Get/Set read and write.
type RawData map[string]codec.Ground

// innerSelf is the cache-resident half of a virtual object. The
// representative half never points at one directly — see Handle.
type innerSelf struct {
	key          InstanceKey
	raw          RawData
	initializing bool
	prev, next   *innerSelf
}
