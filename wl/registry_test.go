package wl

import "testing"

func TestNewRegistrySeedsSlotsZeroAndOne(t *testing.T) {
	r := newRegistry()
	if tag, err := r.lookup(1); err != nil || tag != TagWlDisplay {
		t.Fatalf("lookup(1) = %v, %v, want TagWlDisplay, nil", tag, err)
	}
	if _, err := r.lookup(0); err == nil {
		t.Fatal("lookup(0) should fail: slot 0 is permanently Null")
	}
}

// TestIdAllocationProperty checks that after N allocations and K deletes
// followed by K further allocations, no id exceeds N and every live id
// maps to exactly one slot with the correct tag.
func TestIdAllocationProperty(t *testing.T) {
	r := newRegistry()
	const n = 10
	ids := make([]uint32, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, r.allocate(TagWlSurface))
	}
	const k = 3
	for i := 0; i < k; i++ {
		r.delete(ids[i])
	}
	reallocated := make([]uint32, 0, k)
	for i := 0; i < k; i++ {
		reallocated = append(reallocated, r.allocate(TagWlRegion))
	}
	for _, id := range reallocated {
		if id > n+1 { // +1 accounts for slot 1 (display) already occupied
			t.Fatalf("reallocated id %d exceeds bound of %d allocations", id, n)
		}
		tag, err := r.lookup(id)
		if err != nil {
			t.Fatalf("lookup(%d) failed: %v", id, err)
		}
		if tag != TagWlRegion {
			t.Fatalf("lookup(%d) = %v, want TagWlRegion", id, tag)
		}
	}
}

// TestDeleteRecycle checks that allocating id X, deleting it, then
// allocating again returns X with the new tag.
func TestDeleteRecycle(t *testing.T) {
	r := newRegistry()
	x := r.allocate(TagWlSurface)
	r.delete(x)
	y := r.allocate(TagWlBuffer)
	if y != x {
		t.Fatalf("recycled id = %d, want %d", y, x)
	}
	tag, err := r.lookup(y)
	if err != nil {
		t.Fatalf("lookup(%d) failed: %v", y, err)
	}
	if tag != TagWlBuffer {
		t.Fatalf("lookup(%d) = %v, want TagWlBuffer", y, tag)
	}
}

// TestReplaceRequiresSameKind checks that replace only accepts a new tag
// matching the kind already occupying the slot.
func TestReplaceRequiresSameKind(t *testing.T) {
	r := newRegistry()
	if err := r.replace(1, TagWlDisplay); err != nil {
		t.Fatalf("replace with same tag should succeed: %v", err)
	}
	if err := r.replace(1, TagWlRegistry); err == nil {
		t.Fatal("replace with a different tag should fail")
	}
}

func TestLookupRejectsOutOfRangeAndFreed(t *testing.T) {
	r := newRegistry()
	if _, err := r.lookup(999); err == nil {
		t.Fatal("lookup of out-of-range id should fail")
	}
	id := r.allocate(TagWlSurface)
	r.delete(id)
	if _, err := r.lookup(id); err == nil {
		t.Fatal("lookup of freed id should fail")
	}
}
