package host

import (
	"fmt"
	"unsafe"

	"github.com/gviegas/ofxhost/handle"
	"github.com/gviegas/ofxhost/property"
)

// Instance is a live, configured plugin ready to render (spec.md §3
// "Host.Active.Instances").
type Instance struct {
	base
	Plugin  *Plugin
	Context *Context
	UID     string

	Clips     map[string]*ClipInstance
	clipOrder []string

	Params     map[string]*ParamInstance
	paramOrder []string

	sequenceOpen bool
}

// ClipInstance is a named image port bound to an Instance. It holds the
// currently connected Image, if any (spec.md §3 "Connected=1 iff it
// holds a bound image").
type ClipInstance struct {
	base
	Instance *Instance
	Name     string
	Image    *Image
}

// ParamInstance is a parameter's live value cell group, seeded from its
// descriptor's Default (spec.md §4.5).
type ParamInstance struct {
	base
	Instance *Instance
	Desc     *ParamDesc
	Type     string
}

// Image is a bound clip's pixel buffer (spec.md §4.6).
type Image struct {
	base
	Clip   *ClipInstance
	Width  int
	Height int
	Data   []byte
}

// CreateInstance implements OfxActionCreateInstance: instantiates every
// clip and parameter declared under ctx, seeding each instance property
// set from its descriptor (spec.md §9 "Describe-vs-instance property
// templates") and each parameter's value from its Default.
func (h *Host) CreateInstance(p *Plugin, ctx *Context) (*Instance, error) {
	uid := h.instIDs.alloc("inst")
	inst := &Instance{
		base: base{
			H:     handle.New(handle.ImageEffectInstance, p.H.Bundle, p.H.Plugin, ctx.Name, uid, ""),
			Props: cloneStore(p.Properties(), h.schema),
		},
		Plugin:  p,
		Context: ctx,
		UID:     uid,
		Clips:   make(map[string]*ClipInstance),
		Params:  make(map[string]*ParamInstance),
	}

	for _, name := range ctx.clipOrder {
		cd := ctx.Clips[name]
		props := cloneStore(cd.Properties(), h.schema)
		must(props.Add(property.ImageClipPropConnected, property.Int, 1, false))
		must(props.Update(property.ImageClipPropConnected, 0, i32(0)))
		ci := &ClipInstance{
			base:     base{H: handle.New(handle.ClipInstance, p.H.Bundle, p.H.Plugin, ctx.Name, uid, name), Props: props},
			Instance: inst,
			Name:     name,
		}
		inst.Clips[name] = ci
		inst.clipOrder = append(inst.clipOrder, name)
	}

	for _, name := range ctx.paramOrder {
		pd := ctx.Params[name]
		props := cloneStore(pd.Properties(), h.schema)
		typ, dim := paramLayout(pd.Type)
		must(props.Add(property.ParamInstancePropValue, typ, dim, false))
		for i := 0; i < dim; i++ {
			v, err := pd.Properties().Get(property.ParamPropDefault, i)
			if err != nil {
				v = property.Value{Type: typ}
			}
			must(props.Update(property.ParamInstancePropValue, i, v))
		}
		pi := &ParamInstance{
			base:     base{H: handle.New(handle.ParameterInstance, p.H.Bundle, p.H.Plugin, ctx.Name, uid, name), Props: props},
			Instance: inst,
			Desc:     pd,
			Type:     pd.Type,
		}
		inst.Params[name] = pi
		inst.paramOrder = append(inst.paramOrder, name)
	}

	h.Active.Instances[uid] = inst

	tok := h.Token(inst)
	defer h.tok.Release(tok)
	if st := p.Binding.MainEntry("OfxActionCreateInstance", tok, nil, nil); !st.Ok() {
		delete(h.Active.Instances, uid)
		h.instIDs.free("inst", uid)
		return nil, fmt.Errorf("%w: OfxActionCreateInstance returned %s", ErrBadAction, st)
	}
	return inst, nil
}

// DestroyInstance implements OfxActionDestroyInstance and releases uid
// back to the allocator (spec.md §3 "Instances: … destroyed by
// DestroyInstance").
func (h *Host) DestroyInstance(inst *Instance) error {
	if inst.sequenceOpen {
		return fmt.Errorf("%w: DestroyInstance while a render sequence is open", ErrBadAction)
	}
	tok := h.Token(inst)
	defer h.tok.Release(tok)
	if st := inst.Plugin.Binding.MainEntry("OfxActionDestroyInstance", tok, nil, nil); !st.Ok() {
		return fmt.Errorf("%w: OfxActionDestroyInstance returned %s", ErrBadAction, st)
	}
	delete(h.Active.Instances, inst.UID)
	h.instIDs.free("inst", inst.UID)
	return nil
}

// ClipHandle implements ImageEffectSuite's clipGetHandle.
func (h *Host) ClipHandle(inst *Instance, name string) (*ClipInstance, error) {
	ci, ok := inst.Clips[name]
	if !ok {
		return nil, fmt.Errorf("%w: clip %q", ErrBadHandle, name)
	}
	return ci, nil
}

// ParamHandle implements ParameterSuite's paramGetHandle.
func (h *Host) ParamHandle(inst *Instance, name string) (*ParamInstance, error) {
	pi, ok := inst.Params[name]
	if !ok {
		return nil, fmt.Errorf("%w: parameter %q", ErrBadHandle, name)
	}
	return pi, nil
}

// ConnectImage implements the host-side half of "connect(Source)" in
// the §4.9 filter-render sequence: binds w×h rgba pixel data (owned by
// the caller, e.g. imageio.Read) to clip as its current Image.
func (h *Host) ConnectImage(ci *ClipInstance, w, hgt int, data []byte) (*Image, error) {
	if len(data) < w*hgt*4 {
		return nil, fmt.Errorf("%w: image buffer too small for %dx%d RGBA", ErrBadAction, w, hgt)
	}
	var addr uintptr
	if len(data) > 0 {
		addr = uintptr(unsafe.Pointer(&data[0]))
	}
	img := &Image{
		base: base{
			H:     handle.New(handle.Image, ci.Instance.Plugin.H.Bundle, ci.Instance.Plugin.H.Plugin, ci.Instance.Context.Name, ci.Instance.UID, ci.Name),
			Props: newImageProps(h.schema, w, hgt, addr),
		},
		Clip:   ci,
		Width:  w,
		Height: hgt,
		Data:   data,
	}
	ci.Image = img
	must(ci.Properties().Update(property.ImageClipPropConnected, 0, i32(1)))
	return img, nil
}

// ConnectBuffer binds a host-allocated scratch buffer (e.g. the render
// output, sized to match the render window) as clip's bound image. It
// is ConnectImage's counterpart for the Output clip, which has no
// externally supplied pixels until after Render runs.
func (h *Host) ConnectBuffer(ci *ClipInstance, w, hgt int, buf []byte) (*Image, error) {
	return h.ConnectImage(ci, w, hgt, buf)
}

// Disconnect implements "disconnect": releases ci's bound image
// (spec.md §3 "Clip-bound Images … destroyed by matching disconnect").
func (h *Host) Disconnect(ci *ClipInstance) error {
	if ci.Image == nil {
		return fmt.Errorf("%w: clip %q", ErrNotConnected, ci.Name)
	}
	ci.Image = nil
	return ci.Properties().Update(property.ImageClipPropConnected, 0, i32(0))
}
