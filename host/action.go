package host

import (
	"fmt"

	"github.com/gviegas/ofxhost/property"
)

// Unload implements OfxActionUnload: the terminal transition from
// LOADED, DESCRIBED or CONTEXT_READY back to UNLOADED (spec.md §4.9).
// A plugin with live instances cannot be unloaded.
func (h *Host) Unload(p *Plugin) error {
	for _, inst := range h.Active.Instances {
		if inst.Plugin == p {
			return fmt.Errorf("%w: plugin has live instances", ErrBadAction)
		}
	}
	tok := h.Token(p)
	defer h.tok.Release(tok)
	if st := p.Binding.MainEntry("OfxActionUnload", tok, nil, nil); !st.Ok() {
		return fmt.Errorf("%w: OfxActionUnload returned %s", ErrBadAction, st)
	}
	return nil
}

// renderArgs builds the argument property set shared by
// BeginSequenceRender, Render and EndSequenceRender (spec.md §4.9).
func renderArgs(schema *property.Schema, frame int, w, hgt int, interactive bool) *property.Store {
	s := property.NewStore(schema)
	addScalar(s, property.PropTime, property.Double, f64(float64(frame)))
	addTuple(s, property.ImageEffectPropRenderWindow, property.Int, i32(0), i32(0), i32(int32(w)), i32(int32(hgt)))
	addTuple(s, property.ImageEffectPropRenderScale, property.Double, f64(1), f64(1))
	iv := int32(0)
	if interactive {
		iv = 1
	}
	addScalar(s, property.PropIsInteractive, property.Int, i32(iv))
	addScalar(s, property.ImageEffectPropSequentialRenderStatus, property.Int, i32(1))
	addTuple(s, property.ImageEffectPropFrameRange, property.Double, f64(float64(frame)), f64(float64(frame)))
	addScalar(s, property.ImageEffectPropFrameStep, property.Double, f64(1))
	addScalar(s, property.ImageEffectPropFieldToRender, property.String, str(property.FieldNone))
	return s
}

// BeginSequenceRender implements OfxImageEffectActionBeginSequenceRender,
// transitioning inst from INSTANCE_IDLE to SEQUENCE_OPEN.
func (h *Host) BeginSequenceRender(inst *Instance, frame, w, hgt int) error {
	if inst.sequenceOpen {
		return fmt.Errorf("%w: BeginSequenceRender called with a sequence already open", ErrBadAction)
	}
	args := renderArgs(h.schema, frame, w, hgt, false)
	tok := h.Token(inst)
	defer h.tok.Release(tok)
	if st := inst.Plugin.Binding.MainEntry("OfxImageEffectActionBeginSequenceRender", tok, args, nil); !st.Ok() {
		return fmt.Errorf("%w: OfxImageEffectActionBeginSequenceRender returned %s", ErrBadAction, st)
	}
	inst.sequenceOpen = true
	return nil
}

// Render implements OfxImageEffectActionRender. inst must have its
// required clips connected (spec.md §4 "Supplemented features" — an
// unbound required clip aborts rather than entering the plugin).
func (h *Host) Render(inst *Instance, frame, w, hgt int) error {
	if !inst.sequenceOpen {
		return fmt.Errorf("%w: Render called outside an open sequence", ErrBadAction)
	}
	for _, name := range inst.clipOrder {
		ci := inst.Clips[name]
		optional, _ := ci.Properties().Get(property.ImageClipPropOptional, 0)
		if optional.I == 0 && ci.Image == nil {
			return fmt.Errorf("%w: clip %q", ErrRequiredClip, name)
		}
	}
	args := renderArgs(h.schema, frame, w, hgt, false)
	tok := h.Token(inst)
	defer h.tok.Release(tok)
	if st := inst.Plugin.Binding.MainEntry("OfxImageEffectActionRender", tok, args, nil); !st.Ok() {
		return fmt.Errorf("%w: OfxImageEffectActionRender returned %s", ErrBadAction, st)
	}
	return nil
}

// EndSequenceRender implements OfxImageEffectActionEndSequenceRender,
// transitioning inst from SEQUENCE_OPEN back to INSTANCE_IDLE.
func (h *Host) EndSequenceRender(inst *Instance, frame, w, hgt int) error {
	if !inst.sequenceOpen {
		return fmt.Errorf("%w: EndSequenceRender called outside an open sequence", ErrBadAction)
	}
	args := renderArgs(h.schema, frame, w, hgt, false)
	tok := h.Token(inst)
	defer h.tok.Release(tok)
	if st := inst.Plugin.Binding.MainEntry("OfxImageEffectActionEndSequenceRender", tok, args, nil); !st.Ok() {
		return fmt.Errorf("%w: OfxImageEffectActionEndSequenceRender returned %s", ErrBadAction, st)
	}
	inst.sequenceOpen = false
	return nil
}

// RunFilter drives the high-level single-frame filter sequence of
// spec.md §4.9: Load → Describe → DescribeInContext → CreateInstance →
// BeginSequenceRender → connect(Source) → connect(Output) → Render →
// disconnect → EndSequenceRender → DestroyInstance. It does not Unload
// p, since a caller may render several frames/plugins against the same
// loaded bundle before shutting down.
//
// source holds the decoded input pixels; output is a pre-sized buffer
// the caller reads back after RunFilter returns. Both must match
// (w,h) exactly (spec.md §9 "the core does NOT resize").
func (h *Host) RunFilter(p *Plugin, contextName string, w, hgt int, source, output []byte) error {
	if err := h.Describe(p); err != nil {
		return err
	}
	ctx, err := h.DescribeInContext(p, contextName)
	if err != nil {
		return err
	}
	inst, err := h.CreateInstance(p, ctx)
	if err != nil {
		return err
	}
	if err := h.BeginSequenceRender(inst, 0, w, hgt); err != nil {
		return err
	}
	if src, ok := inst.Clips[property.ClipSource]; ok {
		if _, err := h.ConnectImage(src, w, hgt, source); err != nil {
			return err
		}
		defer h.Disconnect(src)
	}
	out, ok := inst.Clips[property.ClipOutput]
	if !ok {
		return fmt.Errorf("%w: plugin declares no %q clip", ErrRequiredClip, property.ClipOutput)
	}
	if _, err := h.ConnectBuffer(out, w, hgt, output); err != nil {
		return err
	}
	defer h.Disconnect(out)

	if err := h.Render(inst, 0, w, hgt); err != nil {
		return err
	}
	// Disconnect before EndSequenceRender; the deferred Disconnect calls
	// above then find nothing bound and only matter on an early return.
	if src, ok := inst.Clips[property.ClipSource]; ok {
		_ = h.Disconnect(src)
	}
	_ = h.Disconnect(out)
	if err := h.EndSequenceRender(inst, 0, w, hgt); err != nil {
		return err
	}
	return h.DestroyInstance(inst)
}
