package slottable

import "testing"

type fakeRep struct{ n int }

func TestTable_SetGetDelete(t *testing.T) {
	t.Parallel()

	tbl := New()
	a := &fakeRep{n: 1}
	b := &fakeRep{n: 1} // same value, distinct identity

	tbl.Set(a, "o+1/1")
	if _, ok := tbl.Get(b); ok {
		t.Fatal("b must not share a's slot despite equal value")
	}
	got, ok := tbl.Get(a)
	if !ok || got != "o+1/1" {
		t.Fatalf("got %q, %v", got, ok)
	}

	tbl.Delete(a)
	if _, ok := tbl.Get(a); ok {
		t.Fatal("a must be absent after Delete")
	}
}

func TestTable_NonPointerIsIgnored(t *testing.T) {
	t.Parallel()

	tbl := New()
	tbl.Set(42, "o+1/1")
	if _, ok := tbl.Get(42); ok {
		t.Fatal("non-pointer keys must never be tracked")
	}
}
