package host

import "fmt"

// instIDAllocator hands out small, reusable string identifiers for
// Instances and ImageMemory handles: a destroyed instance's slot
// becomes available to the next CreateInstance call rather than
// growing the map key space forever (spec.md §5 "instance_uid …
// recycled"). slots[i] is true while index i is in use; alloc always
// reclaims the lowest free index before extending slots.
type instIDAllocator struct {
	slots []bool
}

// alloc reserves and returns the lowest free slot, prefixed by prefix
// (e.g. "inst7", "mem3").
func (a *instIDAllocator) alloc(prefix string) string {
	for i, used := range a.slots {
		if !used {
			a.slots[i] = true
			return fmt.Sprintf("%s%d", prefix, i)
		}
	}
	idx := len(a.slots)
	a.slots = append(a.slots, true)
	return fmt.Sprintf("%s%d", prefix, idx)
}

// free releases the slot named by id (as produced by alloc with the
// same prefix), making it available for reuse.
func (a *instIDAllocator) free(prefix, id string) {
	var idx int
	if _, err := fmt.Sscanf(id, prefix+"%d", &idx); err != nil {
		return
	}
	if idx >= 0 && idx < len(a.slots) {
		a.slots[idx] = false
	}
}
