package host

import "testing"

func TestInstIDAllocatorReusesLowestFreeSlot(t *testing.T) {
	var a instIDAllocator
	first := a.alloc("inst")
	second := a.alloc("inst")
	if first != "inst0" || second != "inst1" {
		t.Fatalf("alloc sequence = %q, %q, want inst0, inst1", first, second)
	}

	a.free("inst", first)
	third := a.alloc("inst")
	if third != "inst0" {
		t.Fatalf("alloc after free = %q, want inst0 (lowest free slot reused)", third)
	}

	fourth := a.alloc("inst")
	if fourth != "inst2" {
		t.Fatalf("alloc after slots 0,1 taken = %q, want inst2", fourth)
	}
}

func TestInstIDAllocatorFreeUnknownIDIsNoop(t *testing.T) {
	var a instIDAllocator
	a.free("inst", "not-a-valid-id")
	a.free("mem", "inst0")
	if got := a.alloc("inst"); got != "inst0" {
		t.Fatalf("alloc after bogus frees = %q, want inst0", got)
	}
}
