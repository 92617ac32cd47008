package slots

import (
	"math/rand"
	"testing"
)

func TestNewOrder(t *testing.T) {
	tbl := New(4)
	for want := range 4 {
		got, ok := tbl.Alloc()
		if !ok || got != want {
			t.Fatalf("Alloc() = (%d, %v), want (%d, true)", got, ok, want)
		}
	}
	if _, ok := tbl.Alloc(); ok {
		t.Error("Alloc() on exhausted table should fail")
	}
}

func TestEmptyTable(t *testing.T) {
	tbl := New(0)
	if _, ok := tbl.Alloc(); ok {
		t.Error("Alloc() on empty table should fail")
	}
	if len(tbl.Free()) != 0 {
		t.Error("Free() on empty table should be empty")
	}
}

func TestReleaseIsLIFO(t *testing.T) {
	tbl := New(4)
	a, _ := tbl.Alloc()
	b, _ := tbl.Alloc()

	tbl.Release(a)
	tbl.Release(b)

	if got, _ := tbl.Alloc(); got != b {
		t.Errorf("Alloc() = %d, want most recently released %d", got, b)
	}
	if got, _ := tbl.Alloc(); got != a {
		t.Errorf("Alloc() = %d, want %d", got, a)
	}
}

func TestReleaseRejects(t *testing.T) {
	tbl := New(3)
	i, _ := tbl.Alloc()

	if !tbl.Release(i) {
		t.Fatal("Release() of allocated slot should succeed")
	}
	if tbl.Release(i) {
		t.Error("double Release() should be rejected")
	}
	if tbl.Release(-1) || tbl.Release(3) {
		t.Error("Release() out of range should be rejected")
	}
	if got := len(tbl.Free()); got != 3 {
		t.Errorf("len(Free()) = %d, want 3", got)
	}
}

// checkInvariant verifies that allocated and free slots partition the table.
func checkInvariant(t *testing.T, tbl *Table, live map[int]bool) {
	t.Helper()

	seen := make(map[int]bool)
	for _, i := range tbl.Free() {
		if seen[i] {
			t.Fatalf("slot %d linked twice into the free list", i)
		}
		seen[i] = true
		if live[i] || tbl.Allocated(i) {
			t.Fatalf("slot %d is both allocated and free", i)
		}
	}
	for i := range live {
		if !tbl.Allocated(i) {
			t.Fatalf("slot %d handed out but not marked allocated", i)
		}
	}
	if len(seen)+len(live) != tbl.Len() {
		t.Fatalf("free %d + live %d != len %d", len(seen), len(live), tbl.Len())
	}
	if tbl.InUse() != len(live) {
		t.Fatalf("InUse() = %d, want %d", tbl.InUse(), len(live))
	}
}

func TestRandomAllocRelease(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tbl := New(16)
	live := make(map[int]bool)

	for step := range 2000 {
		if rng.Intn(2) == 0 {
			i, ok := tbl.Alloc()
			if ok {
				if live[i] {
					t.Fatalf("step %d: slot %d handed out twice", step, i)
				}
				live[i] = true
			} else if len(live) != tbl.Len() {
				t.Fatalf("step %d: Alloc() failed with %d live slots", step, len(live))
			}
		} else {
			for i := range live {
				tbl.Release(i)
				delete(live, i)
				break
			}
		}
		checkInvariant(t, tbl, live)
	}
}
