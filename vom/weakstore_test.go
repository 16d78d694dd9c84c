package vom

import (
	"errors"
	"testing"

	"github.com/kvouter/vom/vatstore"
)

type plainKey struct{ id int }

func TestWeakStore_NonVirtualKeyRoundTrips(t *testing.T) {
	t.Parallel()

	v := newTestVOM(t, 4)
	ws := v.MakeWeakStore("tag")
	key := &plainKey{id: 1}

	if ws.Has(key) {
		t.Fatal("fresh key must be absent")
	}
	if err := ws.Init(key, "hello"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	var got string
	if err := ws.Get(key, &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "hello" {
		t.Fatalf("want hello, got %q", got)
	}
}

func TestWeakStore_InitTwiceFails(t *testing.T) {
	t.Parallel()

	v := newTestVOM(t, 4)
	ws := v.MakeWeakStore("tag")
	key := &plainKey{id: 1}

	if err := ws.Init(key, 1); err != nil {
		t.Fatalf("first Init: %v", err)
	}
	if err := ws.Init(key, 2); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("want ErrAlreadyRegistered, got %v", err)
	}
}

func TestWeakStore_DeleteThenGetFails(t *testing.T) {
	t.Parallel()

	v := newTestVOM(t, 4)
	ws := v.MakeWeakStore("tag")
	key := &plainKey{id: 1}
	ws.Init(key, 1)

	if err := ws.Delete(key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var out int
	if err := ws.Get(key, &out); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestWeakStore_SetOnUnknownKeyFails(t *testing.T) {
	t.Parallel()

	v := newTestVOM(t, 4)
	ws := v.MakeWeakStore("tag")
	if err := ws.Set(&plainKey{id: 2}, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestWeakStore_VirtualKeyPersistsAcrossEviction(t *testing.T) {
	t.Parallel()

	v := newTestVOM(t, 1)
	kind := MakeKind(v.Registry(), func(h *Handle) *counter { return &counter{h: h} })
	ws := v.MakeWeakStore("tag")

	c, err := kind.New(func(c *counter) error { return c.SetN(3) })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := ws.Init(c, "attached"); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// Evict c by minting a second instance, since cache size is 1.
	if _, err := kind.New(func(c *counter) error { return c.SetN(9) }); err != nil {
		t.Fatalf("New(second): %v", err)
	}

	var got string
	if err := ws.Get(c, &got); err != nil {
		t.Fatalf("Get after eviction: %v", err)
	}
	if got != "attached" {
		t.Fatalf("want attached, got %q", got)
	}
}

func TestWeakStore_DeleteThenGetFailsForVirtualKey(t *testing.T) {
	t.Parallel()

	v := newTestVOM(t, 4)
	kind := MakeKind(v.Registry(), func(h *Handle) *counter { return &counter{h: h} })
	ws := v.MakeWeakStore("tag")

	c, err := kind.New(func(c *counter) error { return c.SetN(1) })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := ws.Init(c, "attached"); err != nil {
		t.Fatalf("Init: %v", err)
	}

	if err := ws.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if ws.Has(c) {
		t.Fatal("virtual key must be absent after Delete")
	}
	var out string
	if err := ws.Get(c, &out); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestWeakStore_TwoStoresDoNotCollideOnSameVatstore(t *testing.T) {
	t.Parallel()

	store := vatstore.NewMemStore()
	v1 := New(Options{CacheSize: 4, Store: store})
	v2 := New(Options{CacheSize: 4, Store: store})

	ws1 := v1.MakeWeakStore("a")
	ws2 := v2.MakeWeakStore("b")
	key := &plainKey{id: 1}

	ws1.Init(key, "from-1")
	if ws2.Has(key) {
		t.Fatal("ws2 must not see ws1's non-virtual association; each WeakStore has its own weak map")
	}
}
