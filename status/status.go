// Package status defines the OFX status codes that cross the simulated
// plugin ABI boundary.
//
// These are distinct from Go's own error type: a suite call always
// returns a Code to the plugin, the same way the real OFX C API returns
// an int from every suite entry point. Host-internal code keeps using
// error; Code only appears at the boundary (ofxc, host's suite
// implementations).
package status

// Code is an OFX status code, returned from every suite entry point and
// from the plugin's mainEntry.
type Code int32

// Status codes, per spec.md §7.
const (
	OK                    Code = 0
	Failed                Code = 1
	ErrFatal              Code = 2
	ErrUnknown            Code = 3
	ErrMissingHostFeature Code = 4
	ErrUnsupported        Code = 5
	ErrExists             Code = 6
	ErrFormat             Code = 7
	ErrMemory             Code = 8
	ErrBadHandle          Code = 9
	ErrBadIndex           Code = 10
	ErrValue              Code = 11
	ReplyYes              Code = 12
	ReplyNo               Code = 13
	ReplyDefault          Code = 14
)

// String returns the OFX wire name of the status code, e.g. "kOfxStatOK".
func (c Code) String() string {
	switch c {
	case OK:
		return "kOfxStatOK"
	case Failed:
		return "kOfxStatFailed"
	case ErrFatal:
		return "kOfxStatErrFatal"
	case ErrUnknown:
		return "kOfxStatErrUnknown"
	case ErrMissingHostFeature:
		return "kOfxStatErrMissingHostFeature"
	case ErrUnsupported:
		return "kOfxStatErrUnsupported"
	case ErrExists:
		return "kOfxStatErrExists"
	case ErrFormat:
		return "kOfxStatErrImageFormat"
	case ErrMemory:
		return "kOfxStatErrMemory"
	case ErrBadHandle:
		return "kOfxStatErrBadHandle"
	case ErrBadIndex:
		return "kOfxStatErrBadIndex"
	case ErrValue:
		return "kOfxStatErrValue"
	case ReplyYes:
		return "kOfxStatReplyYes"
	case ReplyNo:
		return "kOfxStatReplyNo"
	case ReplyDefault:
		return "kOfxStatReplyDefault"
	}
	return "kOfxStatUnknown"
}

// Ok reports whether c represents success (OK or one of the message
// reply codes, all of which are non-failure outcomes of a Message
// suite call).
func (c Code) Ok() bool {
	switch c {
	case OK, ReplyYes, ReplyNo, ReplyDefault:
		return true
	}
	return false
}
