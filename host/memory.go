package host

import (
	"fmt"
	"unsafe"

	"github.com/gviegas/ofxhost/handle"
)

// ImageMemory is a scratch buffer allocated through ImageEffectSuite's
// imageMemoryAlloc, addressable by its own handle (spec.md §3
// "Host.Active.Memory", §4.6). Unlike the raw Memory suite below, a
// plugin must Lock it to obtain a usable address and Unlock/Free it in
// matching pairs.
type ImageMemory struct {
	base
	Owner     *Instance // nil for a host-wide allocation
	Buf       []byte
	LockCount int
}

// ImageMemoryAlloc implements imageMemoryAlloc: reserves n bytes and
// records lock_count=0 (spec.md §4.6).
func (h *Host) ImageMemoryAlloc(owner *Instance, n int) (*ImageMemory, error) {
	uid := h.memIDs.alloc("mem")
	instanceUID := ""
	if owner != nil {
		instanceUID = owner.UID
	}
	m := &ImageMemory{
		base: base{H: handle.New(handle.ImageMemory, "", "", "", instanceUID, uid)},
		Owner: owner,
		Buf:   make([]byte, n),
	}
	h.Active.Memory[uid] = m
	return m, nil
}

// ImageMemoryLock implements imageMemoryLock: increments lock_count and
// returns the buffer's address.
func (h *Host) ImageMemoryLock(m *ImageMemory) (uintptr, error) {
	m.LockCount++
	if len(m.Buf) == 0 {
		return 0, nil
	}
	return uintptr(unsafe.Pointer(&m.Buf[0])), nil
}

// ImageMemoryUnlock implements imageMemoryUnlock: decrements lock_count
// with a floor of 0 (spec.md §4.6).
func (h *Host) ImageMemoryUnlock(m *ImageMemory) error {
	if m.LockCount > 0 {
		m.LockCount--
	}
	return nil
}

// ImageMemoryFree implements imageMemoryFree: succeeds only when
// lock_count == 0 (spec.md §8 scenario 6 "Lock discipline").
func (h *Host) ImageMemoryFree(m *ImageMemory) error {
	if _, live := h.Active.Memory[m.Ident().Name]; !live {
		return fmt.Errorf("%w: image memory already freed", ErrBadHandle)
	}
	if m.LockCount != 0 {
		return fmt.Errorf("%w: image memory still locked (count=%d)", ErrLocked, m.LockCount)
	}
	delete(h.Active.Memory, m.Ident().Name)
	h.memIDs.free("mem", m.Ident().Name)
	return nil
}

// rawAlloc backs the plain Memory suite (spec.md §4.7), which is
// pointer-keyed rather than handle-keyed: memoryAlloc returns a raw
// address, and memoryFree takes that address back with no intervening
// lock/unlock discipline.
type rawAlloc struct {
	bufs map[uintptr][]byte
}

// MemoryAlloc implements Memory suite's memoryAlloc.
func (h *Host) MemoryAlloc(n int) uintptr {
	if h.raw.bufs == nil {
		h.raw.bufs = make(map[uintptr][]byte)
	}
	buf := make([]byte, n)
	var addr uintptr
	if n > 0 {
		addr = uintptr(unsafe.Pointer(&buf[0]))
	} else {
		// A zero-length allocation still needs a unique, freeable
		// address; borrow the slice header's own address.
		addr = uintptr(unsafe.Pointer(&buf))
	}
	h.raw.bufs[addr] = buf
	return addr
}

// MemoryFree implements Memory suite's memoryFree.
func (h *Host) MemoryFree(addr uintptr) error {
	if _, ok := h.raw.bufs[addr]; !ok {
		return fmt.Errorf("%w: unknown memory address", ErrBadHandle)
	}
	delete(h.raw.bufs, addr)
	return nil
}
