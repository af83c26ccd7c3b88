package ofxc

import (
	"runtime/cgo"
	"unsafe"

	"github.com/gviegas/ofxhost/host"
)

// CGOTokenizer mints the ABI-facing tokens a real dlopen'd plugin
// receives in place of a raw object pointer. A Handle's string fields
// make it unsafe to pass a Go pointer straight across cgo (the garbage
// collector is free to move or invalidate it under cgo rules), so each
// object is instead boxed behind a runtime/cgo.Handle and that handle's
// own uintptr-sized representation is what crosses the C boundary.
//
// This mirrors gviegas-neo3's driver/vk object-table pattern, adapted
// for per-object identity instead of a single driver-wide table.
type CGOTokenizer struct{}

// Token mints the token for obj.
func (CGOTokenizer) Token(obj host.Object) unsafe.Pointer {
	h := cgo.NewHandle(obj)
	return unsafe.Pointer(h)
}

// Resolve recovers the Object tok was minted for.
func (CGOTokenizer) Resolve(tok unsafe.Pointer) (host.Object, bool) {
	if tok == nil {
		return nil, false
	}
	h := cgo.Handle(tok)
	defer func() { recover() }()
	obj, ok := h.Value().(host.Object)
	return obj, ok
}

// Release frees tok's underlying cgo.Handle.
func (CGOTokenizer) Release(tok unsafe.Pointer) {
	if tok == nil {
		return
	}
	defer func() { recover() }()
	cgo.Handle(tok).Delete()
}
