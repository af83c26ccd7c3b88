package host

import "unsafe"

// Tokenizer mints and resolves the opaque tokens handed across the
// simulated ABI boundary in place of a raw object pointer (see
// ofxc.CGOTokenizer, which backs every Token with a runtime/cgo.Handle;
// DESIGN.md explains why a raw Go pointer is unsafe here).
type Tokenizer interface {
	Token(obj Object) unsafe.Pointer
	Resolve(tok unsafe.Pointer) (Object, bool)
	Release(tok unsafe.Pointer)
}
