package ofxc

import (
	"log"

	"github.com/gviegas/ofxhost/host"
)

// NewHost builds a Host wired to the real cgo ABI boundary: bundles are
// resolved via dlopen (DLLoader) and objects are tokenized via
// runtime/cgo.Handle (CGOTokenizer). It also binds the new Host as the
// process-wide activeHost every loaded plugin's suite calls dispatch
// through, so callers never need to call Bind themselves.
func NewHost(logger *log.Logger) *host.Host {
	h := host.New(DLLoader{}, CGOTokenizer{}, logger)
	Bind(h)
	return h
}
