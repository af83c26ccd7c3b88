package host

import (
	"testing"

	"github.com/gviegas/ofxhost/property"
)

func describedContext(t *testing.T, clips []fakeClipSpec, params []fakeParamSpec) (*Host, *Plugin, *Context) {
	t.Helper()
	h, fp := newTestHostAndPlugin(clips, params)
	b, err := h.LoadBundle("/bundles", "test", nil)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	p := b.Plugins[fp.id]
	if err := h.Describe(p); err != nil {
		t.Fatalf("Describe: %v", err)
	}
	ctx, err := h.DescribeInContext(p, property.ContextFilter)
	if err != nil {
		t.Fatalf("DescribeInContext: %v", err)
	}
	return h, p, ctx
}

func TestCreateInstanceSeedsParamDefaults(t *testing.T) {
	h, p, ctx := describedContext(t,
		[]fakeClipSpec{{name: property.ClipSource}, {name: property.ClipOutput}},
		[]fakeParamSpec{{name: "gain", typ: property.ParamTypeDouble}},
	)
	// Seed a non-zero default on the descriptor before instantiating.
	pd := ctx.Params["gain"]
	if err := pd.Properties().Update(property.ParamPropDefault, 0, property.Value{Type: property.Double, D: 2.5}); err != nil {
		t.Fatalf("Update default: %v", err)
	}

	inst, err := h.CreateInstance(p, ctx)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	v, err := inst.Params["gain"].Properties().Get(property.ParamInstancePropValue, 0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if v.D != 2.5 {
		t.Errorf("seeded value = %v, want 2.5", v.D)
	}

	if err := h.DestroyInstance(inst); err != nil {
		t.Fatalf("DestroyInstance: %v", err)
	}
	if _, ok := h.Active.Instances[inst.UID]; ok {
		t.Error("instance still tracked as active after DestroyInstance")
	}
}

func TestConnectDisconnectImage(t *testing.T) {
	h, p, ctx := describedContext(t,
		[]fakeClipSpec{{name: property.ClipSource}, {name: property.ClipOutput}}, nil)
	inst, err := h.CreateInstance(p, ctx)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	ci, err := h.ClipHandle(inst, property.ClipSource)
	if err != nil {
		t.Fatalf("ClipHandle: %v", err)
	}
	data := make([]byte, 4*2*2)
	if _, err := h.ConnectImage(ci, 2, 2, data); err != nil {
		t.Fatalf("ConnectImage: %v", err)
	}
	connected, _ := ci.Properties().Get(property.ImageClipPropConnected, 0)
	if connected.I != 1 {
		t.Error("Connected should be 1 after ConnectImage")
	}
	if err := h.Disconnect(ci); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	connected, _ = ci.Properties().Get(property.ImageClipPropConnected, 0)
	if connected.I != 0 {
		t.Error("Connected should be 0 after Disconnect")
	}
	if err := h.Disconnect(ci); err == nil {
		t.Fatal("want error disconnecting an already-disconnected clip")
	}
}

func TestConnectImageBufferTooSmall(t *testing.T) {
	h, p, ctx := describedContext(t, []fakeClipSpec{{name: property.ClipSource}}, nil)
	inst, err := h.CreateInstance(p, ctx)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	ci, _ := h.ClipHandle(inst, property.ClipSource)
	if _, err := h.ConnectImage(ci, 4, 4, make([]byte, 4)); err == nil {
		t.Fatal("want error for undersized buffer")
	}
}
