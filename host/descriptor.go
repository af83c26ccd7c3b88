package host

import (
	"fmt"

	"github.com/gviegas/ofxhost/handle"
	"github.com/gviegas/ofxhost/property"
)

// Bundle is a loaded OFX shared library (spec.md §3 ownership tree).
// Bundles are never themselves addressed by a plugin — only the
// Plugin descriptors they contain are (handle.Kind ImageEffect) — so
// Bundle carries no handle.Handle of its own.
type Bundle struct {
	Name    string
	Path    string
	Plugins map[string]*Plugin
}

// Plugin is a plugin descriptor: everything the library advertised
// about one of its plugins, filled in across Describe and one
// DescribeInContext call per supported context.
type Plugin struct {
	base
	Bundle   *Bundle
	Binding  PluginBinding
	Contexts map[string]*Context

	apiVersion   int
	versionMajor uint32
	versionMinor uint32

	// describingContext is set for the duration of a DescribeInContext
	// mainEntry call so that re-entrant clipDefine/paramDefine suite
	// calls know which Context to populate (spec.md §4.3: clip/param
	// descriptors "belong to exactly one (plugin, context)", but the
	// real OFX ABI passes only the effect handle to clipDefine/
	// paramDefine, not a context handle).
	describingContext *Context
}

// Context is a usage mode of a plugin (Filter, General, …), scoping
// its own clip and parameter descriptor sets.
type Context struct {
	base
	Plugin *Plugin
	Name   string

	Clips     map[string]*ClipDesc
	clipOrder []string

	Params     map[string]*ParamDesc
	paramOrder []string
}

// ClipDesc is a named image-input/output port declared by a plugin
// within one Context.
type ClipDesc struct {
	base
	Context *Context
	Name    string
}

// ParamDesc is a parameter declared by a plugin within one Context.
type ParamDesc struct {
	base
	Context    *Context
	Type       string
	ScriptName string
}

// Describe runs the describe-phase actions for p: mainEntry(Load),
// then mainEntry(Describe). It is idempotent for compliant plugins
// (spec.md §8): calling it twice re-runs Load and Describe against the
// descriptor's existing property set, which a compliant plugin
// overwrites with the same values. The property set is not reset to a
// fresh template between calls.
func (h *Host) Describe(p *Plugin) error {
	if st := p.Binding.MainEntry("OfxActionLoad", nil, nil, nil); !st.Ok() {
		return fmt.Errorf("%w: OfxActionLoad returned %s", ErrBadAction, st)
	}
	tok := h.Token(p)
	defer h.tok.Release(tok)
	if st := p.Binding.MainEntry("OfxActionDescribe", tok, nil, nil); !st.Ok() {
		return fmt.Errorf("%w: OfxActionDescribe returned %s", ErrBadAction, st)
	}
	return nil
}

// DescribeInContext runs mainEntry(DescribeInContext) for p, creating
// (or replacing) the Context named contextName. During the call,
// ImageEffectSuite.clipDefine and ParameterSuite.paramDefine calls the
// plugin makes are routed to this Context (spec.md §4.9).
func (h *Host) DescribeInContext(p *Plugin, contextName string) (*Context, error) {
	ctx := &Context{
		base: base{H: handle.New(handle.ImageEffectContext, p.H.Bundle, p.H.Plugin, contextName, "", "")},
		Plugin: p,
		Name:   contextName,
		Clips:  make(map[string]*ClipDesc),
		Params: make(map[string]*ParamDesc),
	}
	p.describingContext = ctx
	defer func() { p.describingContext = nil }()

	in := property.NewStore(nil)
	_ = in.Add("kOfxImageEffectPropContext", property.String, 1, false)
	_ = in.Update("kOfxImageEffectPropContext", 0, property.Value{Type: property.String, S: contextName})

	tok := h.Token(p)
	defer h.tok.Release(tok)
	if st := p.Binding.MainEntry("OfxImageEffectActionDescribeInContext", tok, in, nil); !st.Ok() {
		return nil, fmt.Errorf("%w: OfxImageEffectActionDescribeInContext returned %s", ErrBadAction, st)
	}

	existing := mustStrings(p.Properties(), property.ImageEffectPropSupportedContexts)
	alreadyListed := false
	for _, c := range existing {
		if c == contextName {
			alreadyListed = true
			break
		}
	}
	if !alreadyListed {
		must(p.Properties().Update(property.ImageEffectPropSupportedContexts, len(existing),
			property.Value{Type: property.String, S: contextName}))
	}

	p.Contexts[contextName] = ctx
	return ctx, nil
}

// ClipNames returns ctx's clip names in declaration order.
func (ctx *Context) ClipNames() []string {
	out := make([]string, len(ctx.clipOrder))
	copy(out, ctx.clipOrder)
	return out
}

// ParamNames returns ctx's parameter names in declaration order.
func (ctx *Context) ParamNames() []string {
	out := make([]string, len(ctx.paramOrder))
	copy(out, ctx.paramOrder)
	return out
}

func mustStrings(s *property.Store, name string) []string {
	n, err := s.Length(name)
	if err != nil {
		return nil
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		v, _ := s.Get(name, i)
		out[i] = v.S
	}
	return out
}

// DefineClip implements ImageEffectSuite's clipDefine: creates a clip
// descriptor under the Context currently being described by effect.
func (h *Host) DefineClip(effect Object, name string) (*ClipDesc, error) {
	p, ctx, err := h.describing(effect)
	if err != nil {
		return nil, err
	}
	c := &ClipDesc{
		base:    base{H: handle.New(handle.Clip, p.H.Bundle, p.H.Plugin, ctx.Name, "", name), Props: newClipDescProps(h.schema, name)},
		Context: ctx,
		Name:    name,
	}
	if _, exists := ctx.Clips[name]; !exists {
		ctx.clipOrder = append(ctx.clipOrder, name)
	}
	ctx.Clips[name] = c
	return c, nil
}

// DefineParam implements ParameterSuite's paramDefine: creates a
// parameter descriptor of the given type under the Context currently
// being described by effect.
func (h *Host) DefineParam(effect Object, paramType, name string) (*ParamDesc, error) {
	p, ctx, err := h.describing(effect)
	if err != nil {
		return nil, err
	}
	d := &ParamDesc{
		base:       base{H: handle.New(handle.Parameter, p.H.Bundle, p.H.Plugin, ctx.Name, "", name), Props: newParamDescProps(h.schema, paramType, name)},
		Context:    ctx,
		Type:       paramType,
		ScriptName: name,
	}
	if _, exists := ctx.Params[name]; !exists {
		ctx.paramOrder = append(ctx.paramOrder, name)
	}
	ctx.Params[name] = d
	return d, nil
}

func (h *Host) describing(effect Object) (*Plugin, *Context, error) {
	p, ok := effect.(*Plugin)
	if !ok || p.describingContext == nil {
		return nil, nil, fmt.Errorf("%w: clip/param definition outside DescribeInContext", ErrBadHandle)
	}
	return p, p.describingContext, nil
}
