package host

import (
	"errors"
	"testing"

	"github.com/gviegas/ofxhost/property"
)

func TestRunFilterCopiesSourceToOutput(t *testing.T) {
	h, fp := newTestHostAndPlugin(
		[]fakeClipSpec{{name: property.ClipSource}, {name: property.ClipOutput}}, nil)
	b, err := h.LoadBundle("/bundles", "test", nil)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	p := b.Plugins[fp.id]

	const w, hgt = 2, 2
	source := []byte{
		10, 20, 30, 255, 11, 21, 31, 255,
		12, 22, 32, 255, 13, 23, 33, 255,
	}
	output := make([]byte, len(source))

	if err := h.RunFilter(p, property.ContextFilter, w, hgt, source, output); err != nil {
		t.Fatalf("RunFilter: %v", err)
	}
	for i, want := range source {
		if output[i] != want {
			t.Fatalf("output[%d] = %d, want %d", i, output[i], want)
		}
	}
	if fp.renderCount != 1 {
		t.Errorf("renderCount = %d, want 1", fp.renderCount)
	}
	if len(h.Active.Instances) != 0 {
		t.Error("instance should be destroyed after RunFilter returns")
	}
}

func TestRunFilterMissingOutputClip(t *testing.T) {
	h, fp := newTestHostAndPlugin([]fakeClipSpec{{name: property.ClipSource}}, nil)
	b, _ := h.LoadBundle("/bundles", "test", nil)
	p := b.Plugins[fp.id]

	err := h.RunFilter(p, property.ContextFilter, 1, 1, make([]byte, 4), make([]byte, 4))
	if !errors.Is(err, ErrRequiredClip) {
		t.Fatalf("err = %v, want ErrRequiredClip", err)
	}
}

func TestRenderRequiresConnectedNonOptionalClips(t *testing.T) {
	h, fp := newTestHostAndPlugin(
		[]fakeClipSpec{{name: property.ClipSource}, {name: property.ClipOutput}}, nil)
	b, _ := h.LoadBundle("/bundles", "test", nil)
	p := b.Plugins[fp.id]
	if err := h.Describe(p); err != nil {
		t.Fatalf("Describe: %v", err)
	}
	ctx, err := h.DescribeInContext(p, property.ContextFilter)
	if err != nil {
		t.Fatalf("DescribeInContext: %v", err)
	}
	inst, err := h.CreateInstance(p, ctx)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	if err := h.BeginSequenceRender(inst, 0, 1, 1); err != nil {
		t.Fatalf("BeginSequenceRender: %v", err)
	}
	// Neither clip connected: Render must refuse.
	if err := h.Render(inst, 0, 1, 1); !errors.Is(err, ErrRequiredClip) {
		t.Fatalf("Render err = %v, want ErrRequiredClip", err)
	}
}

func TestSequenceStateOrdering(t *testing.T) {
	h, fp := newTestHostAndPlugin(nil, nil)
	b, _ := h.LoadBundle("/bundles", "test", nil)
	p := b.Plugins[fp.id]
	if err := h.Describe(p); err != nil {
		t.Fatalf("Describe: %v", err)
	}
	ctx, err := h.DescribeInContext(p, property.ContextFilter)
	if err != nil {
		t.Fatalf("DescribeInContext: %v", err)
	}
	inst, err := h.CreateInstance(p, ctx)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}

	if err := h.EndSequenceRender(inst, 0, 1, 1); err == nil {
		t.Fatal("want error ending a sequence that was never begun")
	}
	if err := h.BeginSequenceRender(inst, 0, 1, 1); err != nil {
		t.Fatalf("BeginSequenceRender: %v", err)
	}
	if err := h.BeginSequenceRender(inst, 0, 1, 1); err == nil {
		t.Fatal("want error beginning a sequence twice")
	}
	if err := h.DestroyInstance(inst); err == nil {
		t.Fatal("want error destroying an instance with an open sequence")
	}
	if err := h.EndSequenceRender(inst, 0, 1, 1); err != nil {
		t.Fatalf("EndSequenceRender: %v", err)
	}
	if err := h.DestroyInstance(inst); err != nil {
		t.Fatalf("DestroyInstance: %v", err)
	}
}

func TestUnloadRefusesWithLiveInstances(t *testing.T) {
	h, fp := newTestHostAndPlugin(nil, nil)
	b, _ := h.LoadBundle("/bundles", "test", nil)
	p := b.Plugins[fp.id]
	if err := h.Describe(p); err != nil {
		t.Fatalf("Describe: %v", err)
	}
	ctx, err := h.DescribeInContext(p, property.ContextFilter)
	if err != nil {
		t.Fatalf("DescribeInContext: %v", err)
	}
	inst, err := h.CreateInstance(p, ctx)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	if err := h.Unload(p); err == nil {
		t.Fatal("want error unloading a plugin with a live instance")
	}
	if err := h.DestroyInstance(inst); err != nil {
		t.Fatalf("DestroyInstance: %v", err)
	}
	if err := h.Unload(p); err != nil {
		t.Fatalf("Unload: %v", err)
	}
}
