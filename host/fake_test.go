package host

import (
	"unsafe"

	"github.com/gviegas/ofxhost/handle"
	"github.com/gviegas/ofxhost/property"
	"github.com/gviegas/ofxhost/status"
)

// fakeTokenizer is a minimal in-process Tokenizer, avoiding any
// dependency on cgo to exercise the action driver.
type fakeTokenizer struct {
	objs map[uintptr]Object
	next uintptr
}

func newFakeTokenizer() *fakeTokenizer {
	return &fakeTokenizer{objs: make(map[uintptr]Object), next: 1}
}

func (t *fakeTokenizer) Token(obj Object) unsafe.Pointer {
	id := t.next
	t.next++
	t.objs[id] = obj
	return unsafe.Pointer(id)
}

func (t *fakeTokenizer) Resolve(tok unsafe.Pointer) (Object, bool) {
	obj, ok := t.objs[uintptr(tok)]
	return obj, ok
}

func (t *fakeTokenizer) Release(tok unsafe.Pointer) { delete(t.objs, uintptr(tok)) }

type fakeClipSpec struct {
	name     string
	optional bool
}

type fakeParamSpec struct {
	name, typ string
}

// fakePlugin implements PluginBinding the way a compliant native
// plugin would, but in pure Go: it calls back into the same
// DefineClip/DefineParam/suite entry points a real mainEntry
// invocation would trigger.
type fakePlugin struct {
	h      *Host
	id     string
	clips  []fakeClipSpec
	params []fakeParamSpec

	loadCalled, describeCalled bool
	createCount, destroyCount  int
	renderCount                int
	failRender                 bool
}

func (f *fakePlugin) Identifier() string   { return f.id }
func (f *fakePlugin) APIVersion() int      { return 1 }
func (f *fakePlugin) VersionMajor() uint32 { return 1 }
func (f *fakePlugin) VersionMinor() uint32 { return 0 }
func (f *fakePlugin) SetHost(FetchSuiteFunc) {}

func (f *fakePlugin) MainEntry(action string, handleTok unsafe.Pointer, inArgs, outArgs *property.Store) status.Code {
	switch action {
	case "OfxActionLoad":
		f.loadCalled = true
	case "OfxActionDescribe":
		f.describeCalled = true
	case "OfxImageEffectActionDescribeInContext":
		effect, ok := f.h.Resolve(handleTok)
		if !ok {
			return status.ErrBadHandle
		}
		for _, c := range f.clips {
			cd, err := f.h.DefineClip(effect, c.name)
			if err != nil {
				return status.Failed
			}
			if c.optional {
				if err := cd.Properties().Update(property.ImageClipPropOptional, 0,
					property.Value{Type: property.Int, I: 1}); err != nil {
					return status.Failed
				}
			}
		}
		for _, p := range f.params {
			if _, err := f.h.DefineParam(effect, p.typ, p.name); err != nil {
				return status.Failed
			}
		}
	case "OfxActionCreateInstance":
		f.createCount++
	case "OfxActionDestroyInstance":
		f.destroyCount++
	case "OfxImageEffectActionRender":
		f.renderCount++
		if f.failRender {
			return status.Failed
		}
		// A well-behaved filter copies Source into Output when both
		// are connected, so render-path tests can assert on pixels.
		obj, ok := f.h.Resolve(handleTok)
		if !ok {
			return status.ErrBadHandle
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return status.ErrBadHandle
		}
		src, srcOK := inst.Clips[property.ClipSource]
		dst, dstOK := inst.Clips[property.ClipOutput]
		if srcOK && dstOK && src.Image != nil && dst.Image != nil {
			copy(dst.Image.Data, src.Image.Data)
		}
	}
	return status.OK
}

type fakeLoader struct{ bindings []PluginBinding }

func (f fakeLoader) Load(bundleDir, bundleName string) ([]PluginBinding, error) {
	return f.bindings, nil
}

func newTestHostAndPlugin(clips []fakeClipSpec, params []fakeParamSpec) (*Host, *fakePlugin) {
	fp := &fakePlugin{id: "org.example.test", clips: clips, params: params}
	h := New(fakeLoader{bindings: []PluginBinding{fp}}, newFakeTokenizer(), nil)
	fp.h = h
	return h, fp
}

// argSetForTest mirrors ofxc's internal argSet wrapper, used here only
// so a bare *property.Store can satisfy Object for suite-level tests
// that don't need a full descriptor/instance object.
type argSetForTest struct{ s *property.Store }

func (a argSetForTest) Ident() handle.Handle        { return handle.Handle{} }
func (a argSetForTest) Properties() *property.Store { return a.s }
