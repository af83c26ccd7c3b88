package host

import (
	"testing"

	"github.com/gviegas/ofxhost/property"
	"github.com/gviegas/ofxhost/status"
)

func TestParameterSuiteGetSetValue(t *testing.T) {
	h, p, ctx := describedContext(t, nil,
		[]fakeParamSpec{{name: "gain", typ: property.ParamTypeDouble}})
	inst, err := h.CreateInstance(p, ctx)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}

	ps := h.ParameterSuite()
	tok, st := ps.GetHandle(h.Token(inst), "gain")
	if st != status.OK {
		t.Fatalf("GetHandle: %s", st)
	}

	if st := ps.SetValue(tok, []property.Value{{Type: property.Double, D: 3.5}}); st != status.OK {
		t.Fatalf("SetValue: %s", st)
	}
	vs, st := ps.GetValue(tok)
	if st != status.OK {
		t.Fatalf("GetValue: %s", st)
	}
	if len(vs) != 1 || vs[0].D != 3.5 {
		t.Fatalf("GetValue = %v, want [3.5]", vs)
	}

	// Parameters do not animate: GetValueAtTime/SetValueAtTime behave
	// exactly like GetValue/SetValue regardless of time.
	if vs, st := ps.GetValueAtTime(tok, 42); st != status.OK || vs[0].D != 3.5 {
		t.Fatalf("GetValueAtTime = %v, %s", vs, st)
	}
	if st := ps.SetValueAtTime(tok, 42, []property.Value{{Type: property.Double, D: 9}}); st != status.OK {
		t.Fatalf("SetValueAtTime: %s", st)
	}
	if vs, _ := ps.GetValue(tok); vs[0].D != 9 {
		t.Fatalf("value after SetValueAtTime = %v, want 9", vs)
	}
}

func TestParameterSuitePropertySetIsSameToken(t *testing.T) {
	h, p, ctx := describedContext(t, nil,
		[]fakeParamSpec{{name: "gain", typ: property.ParamTypeDouble}})
	inst, err := h.CreateInstance(p, ctx)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}

	ps := h.ParameterSuite()
	tok, st := ps.GetHandle(h.Token(inst), "gain")
	if st != status.OK {
		t.Fatalf("GetHandle: %s", st)
	}
	propTok, st := ps.PropertySet(tok)
	if st != status.OK {
		t.Fatalf("PropertySet: %s", st)
	}
	if propTok != tok {
		t.Fatalf("PropertySet returned a different token than GetHandle")
	}
}

func TestParameterSuiteCopy(t *testing.T) {
	h, p, ctx := describedContext(t, nil, []fakeParamSpec{
		{name: "gainA", typ: property.ParamTypeDouble},
		{name: "gainB", typ: property.ParamTypeDouble},
	})
	inst, err := h.CreateInstance(p, ctx)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}

	ps := h.ParameterSuite()
	srcTok, _ := ps.GetHandle(h.Token(inst), "gainA")
	dstTok, _ := ps.GetHandle(h.Token(inst), "gainB")

	if st := ps.SetValue(srcTok, []property.Value{{Type: property.Double, D: 7}}); st != status.OK {
		t.Fatalf("SetValue: %s", st)
	}
	if st := ps.Copy(dstTok, srcTok); st != status.OK {
		t.Fatalf("Copy: %s", st)
	}
	vs, _ := ps.GetValue(dstTok)
	if vs[0].D != 7 {
		t.Fatalf("gainB after Copy = %v, want 7", vs)
	}
}

func TestParameterSuiteNoAnimationAndNoDerivatives(t *testing.T) {
	h, p, ctx := describedContext(t, nil,
		[]fakeParamSpec{{name: "gain", typ: property.ParamTypeDouble}})
	inst, err := h.CreateInstance(p, ctx)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}

	ps := h.ParameterSuite()
	tok, _ := ps.GetHandle(h.Token(inst), "gain")

	if n, st := ps.GetNumKeys(tok); st != status.OK || n != 0 {
		t.Fatalf("GetNumKeys = %d, %s, want 0, OK", n, st)
	}
	if idx, st := ps.GetKeyIndex(tok, 0, 0); st != status.OK || idx != -1 {
		t.Fatalf("GetKeyIndex = %d, %s, want -1, OK", idx, st)
	}
	if st := ps.DeleteKey(tok, 0); st != status.OK {
		t.Fatalf("DeleteKey: %s", st)
	}
	if st := ps.DeleteAllKeys(tok); st != status.OK {
		t.Fatalf("DeleteAllKeys: %s", st)
	}
	if _, st := ps.GetDerivative(tok, 0); st != status.Failed {
		t.Fatalf("GetDerivative = %s, want Failed", st)
	}
	if _, st := ps.GetIntegral(tok, 0, 1); st != status.Failed {
		t.Fatalf("GetIntegral = %s, want Failed", st)
	}
	if st := ps.EditBegin(tok, "gain"); st != status.OK {
		t.Fatalf("EditBegin: %s", st)
	}
	if st := ps.EditEnd(tok); st != status.OK {
		t.Fatalf("EditEnd: %s", st)
	}
}

func TestParameterSuiteDefineOutsideDescribeInContext(t *testing.T) {
	h, fp := newTestHostAndPlugin(nil, nil)
	b, err := h.LoadBundle("/bundles", "test", nil)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	p := b.Plugins[fp.id]

	ps := h.ParameterSuite()
	if _, st := ps.Define(h.Token(p), property.ParamTypeDouble, "stray"); st == status.OK {
		t.Fatal("want error defining a parameter outside DescribeInContext")
	}
}

func TestParameterSuiteUnknownHandle(t *testing.T) {
	h := New(fakeLoader{}, newFakeTokenizer(), nil)
	ps := h.ParameterSuite()
	if _, st := ps.GetValue(nil); st != status.ErrBadHandle {
		t.Fatalf("GetValue on nil token = %s, want ErrBadHandle", st)
	}
}
