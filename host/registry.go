package host

import "unsafe"

// Suite name constants, as passed to fetchSuite (spec.md §4.8).
const (
	SuiteImageEffect = "OfxImageEffectSuite"
	SuiteProperty    = "OfxPropertySuite"
	SuiteParameter   = "OfxParameterSuite"
	SuiteMemory      = "OfxMemorySuite"
	SuiteMultiThread = "OfxMultiThreadSuite"
	SuiteMessage     = "OfxMessageSuite"
)

// FetchSuite implements the fetchSuite half of the OfxHost record every
// bundle receives via setHost (spec.md §4.8) for in-process callers such
// as tests: it returns a Go pointer to the matching suite struct. A
// dlopen'd plugin does not reach this method; it calls through
// ofxc.FetchSuite, which returns the address of ofxc's C vtables.
//
// An unrecognized name returns nil and logs a warning rather than
// failing the whole load (spec.md §8 "fetchSuite with an unknown name
// returns 0 and emits a warning").
func (h *Host) FetchSuite(name string, version int) unsafe.Pointer {
	switch name {
	case SuiteImageEffect:
		return unsafe.Pointer(h.ImageEffectSuite())
	case SuiteProperty:
		return unsafe.Pointer(h.PropertySuite())
	case SuiteParameter:
		return unsafe.Pointer(h.ParameterSuite())
	case SuiteMemory:
		return unsafe.Pointer(h.MemorySuite())
	case SuiteMultiThread:
		return unsafe.Pointer(h.MultiThreadSuite())
	case SuiteMessage:
		return unsafe.Pointer(h.MessageSuite())
	}
	h.Logf("fetchSuite: unknown suite %q v%d", name, version)
	return nil
}
