// Package handle defines the fixed-layout identity record embedded in
// every host-side object a plugin can address (spec.md §3 "Handle",
// §4.3 "Handle Identity & Dispatch").
//
// A Handle records an object's logical identity; its address is not
// what the plugin receives. The opaque pointer passed across the ABI is
// a token minted by host.Tokenizer (in ofxc, a runtime/cgo.Handle
// boxing the owning object), and it resolves back to that object rather
// than to a *Handle.
package handle

// Kind discriminates the class of object a Handle names.
type Kind int

const (
	ImageEffectHost Kind = iota
	ImageEffect
	ImageEffectContext
	ImageEffectInstance
	Clip
	ClipInstance
	Parameter
	ParameterInstance
	Image
	RenderAction
	SequenceRenderAction
	ImageMemory
	Mutex
)

func (k Kind) String() string {
	switch k {
	case ImageEffectHost:
		return "ImageEffectHost"
	case ImageEffect:
		return "ImageEffect"
	case ImageEffectContext:
		return "ImageEffectContext"
	case ImageEffectInstance:
		return "ImageEffectInstance"
	case Clip:
		return "Clip"
	case ClipInstance:
		return "ClipInstance"
	case Parameter:
		return "Parameter"
	case ParameterInstance:
		return "ParameterInstance"
	case Image:
		return "Image"
	case RenderAction:
		return "RenderAction"
	case SequenceRenderAction:
		return "SequenceRenderAction"
	case ImageMemory:
		return "ImageMemory"
	case Mutex:
		return "Mutex"
	}
	return "Unknown"
}

// Handle is the six-field locator embedded in every addressable host
// object. Neither &obj nor &obj.H is handed to a plugin: objects cross
// the ABI as Tokenizer tokens, and a Handle only records which object a
// token names.
//
// Descriptor handles (created during Describe/DescribeInContext) carry
// InstanceUID == "". Instance handles carry it populated (spec.md §3
// invariants).
type Handle struct {
	Kind        Kind
	Bundle      string
	Plugin      string
	Context     string
	InstanceUID string
	Name        string
}

// New builds a Handle. Fields not meaningful for kind are left zero;
// callers follow the dispatch table in spec.md §4.3 when deciding which
// fields to populate.
func New(kind Kind, bundle, plugin, context, instanceUID, name string) Handle {
	return Handle{
		Kind:        kind,
		Bundle:      bundle,
		Plugin:      plugin,
		Context:     context,
		InstanceUID: instanceUID,
		Name:        name,
	}
}

// IsInstance reports whether h names a live-instance object rather than
// a describe-time descriptor.
func (h Handle) IsInstance() bool {
	switch h.Kind {
	case ImageEffectInstance, ClipInstance, ParameterInstance, Image, RenderAction, SequenceRenderAction, ImageMemory, Mutex:
		return true
	}
	return h.InstanceUID != ""
}
