package host

import (
	"testing"
	"unsafe"

	"github.com/gviegas/ofxhost/property"
	"github.com/gviegas/ofxhost/status"
)

func TestPropertySuiteGetSetScalars(t *testing.T) {
	h := New(fakeLoader{}, newFakeTokenizer(), nil)
	s := property.NewStore(nil)
	if err := s.Add("myInt", property.Int, 1, false); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add("myStr", property.String, 1, false); err != nil {
		t.Fatalf("Add: %v", err)
	}

	obj := argSetForTest{s}
	tok := h.Token(obj)
	defer h.Release(tok)

	ps := h.PropertySuite()
	if st := ps.SetInt(tok, "myInt", 0, 7); st != status.OK {
		t.Fatalf("SetInt: %s", st)
	}
	if v, st := ps.GetInt(tok, "myInt", 0); st != status.OK || v != 7 {
		t.Fatalf("GetInt = %d, %s", v, st)
	}
	if st := ps.SetString(tok, "myStr", 0, "hello"); st != status.OK {
		t.Fatalf("SetString: %s", st)
	}
	if v, err := s.Get("myStr", 0); err != nil || v.S != "hello" {
		t.Fatalf("store value after SetString = %q, %v", v.S, err)
	}
	if ptr, st := ps.GetString(tok, "myStr", 0); st != status.OK || ptr == nil {
		t.Fatalf("GetString pointer = %v, %s", ptr, st)
	}
	if n, st := ps.GetDimension(tok, "myInt"); st != status.OK || n != 1 {
		t.Fatalf("GetDimension = %d, %s", n, st)
	}
}

func TestPropertySuiteStringNRoundTrip(t *testing.T) {
	h := New(fakeLoader{}, newFakeTokenizer(), nil)
	s := property.NewStore(nil)
	if err := s.Add("contexts", property.String, property.Variable, false); err != nil {
		t.Fatalf("Add: %v", err)
	}
	obj := argSetForTest{s}
	tok := h.Token(obj)
	defer h.Release(tok)

	ps := h.PropertySuite()
	want := []string{property.ContextFilter, property.ContextGeneral}
	if st := ps.SetStringN(tok, "contexts", want); st != status.OK {
		t.Fatalf("SetStringN: %s", st)
	}
	if n, st := ps.GetDimension(tok, "contexts"); st != status.OK || n != len(want) {
		t.Fatalf("GetDimension = %d, %s, want %d", n, st, len(want))
	}

	ptrs, st := ps.GetStringN(tok, "contexts", len(want))
	if st != status.OK {
		t.Fatalf("GetStringN: %s", st)
	}
	for i, ptr := range ptrs {
		if ptr == nil {
			t.Fatalf("GetStringN[%d] = nil pointer", i)
		}
		got, err := s.Get("contexts", i)
		if err != nil || got.S != want[i] {
			t.Fatalf("store value[%d] = %q, %v, want %q", i, got.S, err, want[i])
		}
	}
}

func TestPropertySuitePointerNRoundTrip(t *testing.T) {
	h := New(fakeLoader{}, newFakeTokenizer(), nil)
	s := property.NewStore(nil)
	if err := s.Add("ptrs", property.Pointer, property.Variable, false); err != nil {
		t.Fatalf("Add: %v", err)
	}
	obj := argSetForTest{s}
	tok := h.Token(obj)
	defer h.Release(tok)

	var a, b int
	ps := h.PropertySuite()
	want := []unsafe.Pointer{unsafe.Pointer(&a), unsafe.Pointer(&b)}
	if st := ps.SetPointerN(tok, "ptrs", want); st != status.OK {
		t.Fatalf("SetPointerN: %s", st)
	}
	got, st := ps.GetPointerN(tok, "ptrs", len(want))
	if st != status.OK {
		t.Fatalf("GetPointerN: %s", st)
	}
	for i, p := range got {
		if p != want[i] {
			t.Fatalf("GetPointerN[%d] = %v, want %v", i, p, want[i])
		}
	}
}

func TestPropertySuiteUnknownHandle(t *testing.T) {
	h := New(fakeLoader{}, newFakeTokenizer(), nil)
	ps := h.PropertySuite()
	if _, st := ps.GetInt(nil, "whatever", 0); st != status.ErrBadHandle {
		t.Fatalf("GetInt on nil token = %s, want ErrBadHandle", st)
	}
}

func TestPropertySuiteUnknownName(t *testing.T) {
	h := New(fakeLoader{}, newFakeTokenizer(), nil)
	s := property.NewStore(nil)
	obj := argSetForTest{s}
	tok := h.Token(obj)
	defer h.Release(tok)

	ps := h.PropertySuite()
	if _, st := ps.GetInt(tok, "nope", 0); st != status.ErrUnknown {
		t.Fatalf("GetInt on unknown name = %s, want ErrUnknown", st)
	}
}
