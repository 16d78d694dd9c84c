package vatstore

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_SetGetDelete(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)

	if _, ok, err := s.Get("o+1/1"); err != nil || ok {
		t.Fatalf("fresh store must miss, got ok=%v err=%v", ok, err)
	}
	if err := s.Set("o+1/1", `{"count":1}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get("o+1/1")
	if err != nil || !ok || v != `{"count":1}` {
		t.Fatalf("got %q ok=%v err=%v", v, ok, err)
	}
	if err := s.Delete("o+1/1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get("o+1/1"); ok {
		t.Fatal("tombstoned key must read as absent")
	}
}

// Concurrent Gets for the same key must not race the underlying
// singleflight.Group; this exercises the driver's own locking, not the
// (single-threaded) VOM core.
func TestSQLiteStore_ConcurrentGetsSeeSameValue(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	if err := s.Set("o+1/1", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			v, ok, err := s.Get("o+1/1")
			if err != nil {
				return err
			}
			if !ok || v != "v" {
				return fmt.Errorf("got %q ok=%v", v, ok)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
