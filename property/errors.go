package property

import "errors"

// Sentinel errors returned by Store and Schema operations. Callers at
// the suite boundary (host package) translate these into status.Code
// values; see ToStatus in host/errors.go.
var (
	ErrUnknown  = errors.New("property: unknown name")
	ErrExists   = errors.New("property: already exists")
	ErrBadIndex = errors.New("property: index out of range")
	ErrValue    = errors.New("property: schema violation")
)
