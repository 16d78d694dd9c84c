package weakmap

import "testing"

type probe struct{ n int }

func TestMap_SetGetHasDelete(t *testing.T) {
	t.Parallel()

	m := New[int]()
	a := &probe{n: 1}

	if m.Has(a) {
		t.Fatal("fresh map must not have a")
	}
	if !m.Set(a, 10) {
		t.Fatal("first Set must report inserted")
	}
	if m.Set(a, 20) {
		t.Fatal("second Set on same key must report not-inserted")
	}
	v, ok := m.Get(a)
	if !ok || v != 20 {
		t.Fatalf("got %d, %v", v, ok)
	}
	m.Delete(a)
	if m.Has(a) {
		t.Fatal("a must be absent after Delete")
	}
}

func TestMap_NonPointerKeyIsRejected(t *testing.T) {
	t.Parallel()

	m := New[int]()
	if m.Set(42, 1) {
		t.Fatal("Set on a non-pointer key must report not-inserted")
	}
	if m.Has(42) {
		t.Fatal("non-pointer key must never be tracked")
	}
}

func TestMap_DistinctPointersDoNotCollide(t *testing.T) {
	t.Parallel()

	m := New[string]()
	a := &probe{n: 1}
	b := &probe{n: 1}

	m.Set(a, "a")
	m.Set(b, "b")

	va, _ := m.Get(a)
	vb, _ := m.Get(b)
	if va != "a" || vb != "b" {
		t.Fatalf("equal-valued but distinct keys must not collide: va=%q vb=%q", va, vb)
	}
	if m.Len() != 2 {
		t.Fatalf("want 2 entries, got %d", m.Len())
	}
}
