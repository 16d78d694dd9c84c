// Package slot parses slot reference strings into their constituent
// {id, type, virtual} triple. A slot names something a representative can
// be bound to; this module only ever mints and parses the "object" kind of
// slot ("o+<kindID>/<seq>"), but the parser keeps the general shape the
// host's slot grammar uses so that a non-virtual or non-object slot is
// classified correctly rather than assumed away.
package slot

import (
	"fmt"
	"strconv"
	"strings"
)

// Ref is the parsed form of a slot string.
type Ref struct {
	// ID is the slot's payload after the type sigil (e.g. "7/12" for an
	// object slot, or a bare export id for other slot kinds).
	ID string
	// Type names the slot kind: "object", "promise", or "device".
	Type string
	// Virtual reports whether the referent is a virtual object whose
	// state may be evicted and must be fetched through a Cache.
	Virtual bool
}

// sigils maps the leading character of a slot string to its Type and
// whether that type denotes a virtual object. Only "o" (object) slots are
// virtual in this module; the others are recognized so that Parse can
// correctly reject them as non-virtual rather than erroring.
var sigils = map[byte]struct {
	typ     string
	virtual bool
}{
	'o': {"object", true},
	'p': {"promise", false},
	'd': {"device", false},
}

// Parse decodes a slot string of the form "<sigil>+<id>" into a Ref.
func Parse(s string) (Ref, error) {
	if len(s) < 2 || s[1] != '+' {
		return Ref{}, fmt.Errorf("slot: malformed slot %q", s)
	}
	info, ok := sigils[s[0]]
	if !ok {
		return Ref{}, fmt.Errorf("slot: unknown slot sigil %q in %q", s[0], s)
	}
	return Ref{ID: s[2:], Type: info.typ, Virtual: info.virtual}, nil
}

// Format builds an object slot string ("o+<kindID>/<seq>") for a virtual
// object instance. It is the inverse of Parse for the only slot kind this
// module mints.
func Format(kindID string, seq uint64) string {
	var b strings.Builder
	b.WriteString("o+")
	b.WriteString(kindID)
	b.WriteByte('/')
	b.WriteString(strconv.FormatUint(seq, 10))
	return b.String()
}
