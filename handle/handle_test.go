package handle

import "testing"

func TestNewPopulatesAllFields(t *testing.T) {
	h := New(Clip, "bundleA", "pluginB", "Filter", "inst-1", "Source")
	want := Handle{
		Kind:        Clip,
		Bundle:      "bundleA",
		Plugin:      "pluginB",
		Context:     "Filter",
		InstanceUID: "inst-1",
		Name:        "Source",
	}
	if h != want {
		t.Fatalf("New(...) = %+v, want %+v", h, want)
	}
}

func TestKindStringNamesEveryKind(t *testing.T) {
	kinds := []Kind{
		ImageEffectHost, ImageEffect, ImageEffectContext, ImageEffectInstance,
		Clip, ClipInstance, Parameter, ParameterInstance, Image,
		RenderAction, SequenceRenderAction, ImageMemory, Mutex,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		s := k.String()
		if s == "" || s == "Unknown" {
			t.Errorf("Kind(%d).String() = %q, want a real name", k, s)
		}
		if seen[s] {
			t.Errorf("Kind %q has a duplicate String() representation", s)
		}
		seen[s] = true
	}
}

func TestKindStringUnknown(t *testing.T) {
	if s := Kind(999).String(); s != "Unknown" {
		t.Fatalf("Kind(999).String() = %q, want Unknown", s)
	}
}

func TestIsInstanceByInstanceUID(t *testing.T) {
	// A descriptor-kind handle with no InstanceUID is not an instance.
	h := New(Clip, "b", "p", "Filter", "", "Source")
	if h.IsInstance() {
		t.Fatal("descriptor handle with empty InstanceUID reports IsInstance")
	}
	h.InstanceUID = "inst-1"
	if !h.IsInstance() {
		t.Fatal("handle with a populated InstanceUID should report IsInstance")
	}
}

func TestIsInstanceByKind(t *testing.T) {
	instanceKinds := []Kind{
		ImageEffectInstance, ClipInstance, ParameterInstance, Image,
		RenderAction, SequenceRenderAction, ImageMemory, Mutex,
	}
	for _, k := range instanceKinds {
		h := New(k, "b", "p", "Filter", "", "x")
		if !h.IsInstance() {
			t.Errorf("Kind %s should always report IsInstance, even with no InstanceUID", k)
		}
	}

	descriptorKinds := []Kind{ImageEffectHost, ImageEffect, ImageEffectContext, Clip, Parameter}
	for _, k := range descriptorKinds {
		h := New(k, "b", "p", "Filter", "", "x")
		if h.IsInstance() {
			t.Errorf("Kind %s with no InstanceUID should not report IsInstance", k)
		}
	}
}
