// Package host implements the host-side ownership tree, the six OFX
// suites, and the action driver that sequences a plugin through its
// lifecycle (spec.md §3, §4, §9). It is pure Go: the C ABI boundary
// (dlopen, the plugin's native mainEntry, the suite vtables a plugin
// calls through) lives in the sibling ofxc package, which depends on
// this one rather than the reverse.
package host

import (
	"github.com/gviegas/ofxhost/handle"
	"github.com/gviegas/ofxhost/property"
)

// Object is any host-side object a plugin can address: it carries a
// Handle identity and, where applicable, a property set.
type Object interface {
	Ident() handle.Handle
	Properties() *property.Store
}

// base is embedded by every addressable host object. Its Handle field
// records the object's logical identity (spec.md §3); the object's
// address is never itself the wire-level handle — see ofxc, which
// wraps a runtime/cgo.Handle around the object before handing anything
// to a plugin, since Handle's string fields make a raw pointer to it
// unsafe to pass across cgo (DESIGN.md "Open Question decisions",
// "cgo.Handle vs. a raw Go pointer for ABI tokens").
type base struct {
	H     handle.Handle
	Props *property.Store
}

func (b *base) Ident() handle.Handle        { return b.H }
func (b *base) Properties() *property.Store { return b.Props }
