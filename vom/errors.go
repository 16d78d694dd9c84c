package vom

import (
	"errors"
	"fmt"
)

var (
	// ErrCacheOverflow is returned when every resident slot a make_room
	// pass could consider is still initializing, so nothing can be
	// evicted to make space for the entry being remembered.
	ErrCacheOverflow = errors.New("vom: cache overflow: every resident slot is mid-initialization")

	// ErrUnknownKind is returned when a virtual reference names a kind id
	// no MakeKind call has registered.
	ErrUnknownKind = errors.New("vom: unknown kind")

	// ErrAlreadyRegistered is returned by WeakStore.Init when the key is
	// already present.
	ErrAlreadyRegistered = errors.New("vom: already registered")

	// ErrNotFound is returned by WeakStore.Get/Set/Delete when the key is
	// absent.
	ErrNotFound = errors.New("vom: not found")

	// ErrNonSerializable is returned when a Handle.Set or WeakStore value
	// cannot be encoded by the configured codec.
	ErrNonSerializable = errors.New("vom: non-serializable property")

	// ErrStillInitializing names the condition of an operation that
	// requires a fully initialized instance being attempted against one
	// whose maker has not yet returned. No operation in this package
	// returns it.
	ErrStillInitializing = errors.New("vom: still initializing")
)

func alreadyRegisteredErr(keyName string) error {
	return fmt.Errorf("%w: %s already registered", ErrAlreadyRegistered, keyName)
}

func notFoundErr(keyName string) error {
	return fmt.Errorf("%w: %s not found", ErrNotFound, keyName)
}

func nonSerializableErr(prop string, cause error) error {
	return fmt.Errorf("%w: property %q: %v", ErrNonSerializable, prop, cause)
}
