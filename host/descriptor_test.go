package host

import (
	"testing"

	"github.com/gviegas/ofxhost/property"
)

func TestDescribeAndDescribeInContext(t *testing.T) {
	h, fp := newTestHostAndPlugin(
		[]fakeClipSpec{{name: property.ClipSource}, {name: property.ClipOutput}},
		[]fakeParamSpec{{name: "gain", typ: property.ParamTypeDouble}},
	)
	b, err := h.LoadBundle("/bundles", "test", nil)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	p := b.Plugins[fp.id]

	if err := h.Describe(p); err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if !fp.loadCalled || !fp.describeCalled {
		t.Fatal("Describe must run OfxActionLoad then OfxActionDescribe")
	}

	ctx, err := h.DescribeInContext(p, property.ContextFilter)
	if err != nil {
		t.Fatalf("DescribeInContext: %v", err)
	}
	if len(ctx.Clips) != 2 || len(ctx.Params) != 1 {
		t.Fatalf("got %d clips, %d params", len(ctx.Clips), len(ctx.Params))
	}

	existing := mustStrings(p.Properties(), property.ImageEffectPropSupportedContexts)
	if len(existing) != 1 || existing[0] != property.ContextFilter {
		t.Fatalf("SupportedContexts = %v", existing)
	}

	// Re-running DescribeInContext for the same context must not
	// duplicate the SupportedContexts entry.
	if _, err := h.DescribeInContext(p, property.ContextFilter); err != nil {
		t.Fatalf("DescribeInContext (2nd): %v", err)
	}
	existing = mustStrings(p.Properties(), property.ImageEffectPropSupportedContexts)
	if len(existing) != 1 {
		t.Fatalf("SupportedContexts grew on re-describe: %v", existing)
	}
}

func TestFindPluginExactThenSubstring(t *testing.T) {
	h, _ := newTestHostAndPlugin(nil, nil)
	if _, err := h.LoadBundle("/bundles", "test", nil); err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}

	if _, err := h.FindPlugin("org.example.test"); err != nil {
		t.Fatalf("exact match: %v", err)
	}
	if _, err := h.FindPlugin("example"); err != nil {
		t.Fatalf("substring match: %v", err)
	}
	if _, err := h.FindPlugin("nonexistent"); err == nil {
		t.Fatal("want error for unknown plugin")
	}
}

func TestDefineClipOutsideDescribeInContext(t *testing.T) {
	h, fp := newTestHostAndPlugin(nil, nil)
	b, err := h.LoadBundle("/bundles", "test", nil)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	p := b.Plugins[fp.id]
	if _, err := h.DefineClip(p, "Stray"); err == nil {
		t.Fatal("want error defining a clip outside DescribeInContext")
	}
}
