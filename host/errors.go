package host

import (
	"errors"

	"github.com/gviegas/ofxhost/property"
	"github.com/gviegas/ofxhost/status"
)

// Sentinel errors for conditions host-internal code detects directly
// (not already wrapped by the property package).
var (
	ErrBadHandle      = errors.New("host: handle does not resolve to a live object")
	ErrUnsupported    = errors.New("host: feature not supported by this host")
	ErrNotConnected   = errors.New("host: clip is not connected to an image")
	ErrLocked         = errors.New("host: image memory is still locked")
	ErrUnknownPlugin  = errors.New("host: no plugin matches the given identifier")
	ErrUnknownContext = errors.New("host: plugin does not support the given context")
	ErrRequiredClip   = errors.New("host: required clip has no bound image")
	ErrBadAction      = errors.New("host: action not valid from the current state")
)

// ToStatus translates an internal error into the OFX status code a
// suite entry point or mainEntry call returns to the plugin (spec.md
// §7). A nil error maps to status.OK.
func ToStatus(err error) status.Code {
	switch {
	case err == nil:
		return status.OK
	case errors.Is(err, ErrBadHandle):
		return status.ErrBadHandle
	case errors.Is(err, property.ErrUnknown):
		return status.ErrUnknown
	case errors.Is(err, property.ErrBadIndex):
		return status.ErrBadIndex
	case errors.Is(err, property.ErrValue):
		return status.ErrValue
	case errors.Is(err, property.ErrExists):
		return status.ErrExists
	case errors.Is(err, ErrUnsupported):
		return status.ErrUnsupported
	default:
		return status.Failed
	}
}
