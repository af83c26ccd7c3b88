package host

import (
	"unsafe"

	"github.com/gviegas/ofxhost/property"
	"github.com/gviegas/ofxhost/status"
)

// PropertySuite is OfxPropertySuiteV1: 18 entry points for getting and
// setting int, double, string and pointer properties on any
// addressable object, scalar and N-ary, plus getDimension and reset
// (spec.md §4.4). Every entry decodes tok through the host's Tokenizer
// before touching a Property Store.
type PropertySuite struct{ h *Host }

// PropertySuite returns the vtable bound to h.
func (h *Host) PropertySuite() *PropertySuite { return &PropertySuite{h} }

func (s *PropertySuite) store(tok unsafe.Pointer) (*property.Store, status.Code) {
	obj, ok := s.h.Resolve(tok)
	if !ok {
		return nil, status.ErrBadHandle
	}
	return obj.Properties(), status.OK
}

func (s *PropertySuite) set(tok unsafe.Pointer, name string, index int, v property.Value) status.Code {
	p, st := s.store(tok)
	if st != status.OK {
		return st
	}
	if !p.Contains(name) {
		return status.ErrUnknown
	}
	if err := p.Update(name, index, v); err != nil {
		return ToStatus(err)
	}
	return status.OK
}

func (s *PropertySuite) get(tok unsafe.Pointer, name string, index int) (property.Value, status.Code) {
	p, st := s.store(tok)
	if st != status.OK {
		return property.Value{}, st
	}
	if !p.Contains(name) {
		return property.Value{}, status.ErrUnknown
	}
	v, err := p.Get(name, index)
	if err != nil {
		return property.Value{}, ToStatus(err)
	}
	return v, status.OK
}

// SetInt implements propSetInt.
func (s *PropertySuite) SetInt(tok unsafe.Pointer, name string, index int, v int32) status.Code {
	return s.set(tok, name, index, property.Value{Type: property.Int, I: v})
}

// SetDouble implements propSetDouble.
func (s *PropertySuite) SetDouble(tok unsafe.Pointer, name string, index int, v float64) status.Code {
	return s.set(tok, name, index, property.Value{Type: property.Double, D: v})
}

// SetString implements propSetString.
func (s *PropertySuite) SetString(tok unsafe.Pointer, name string, index int, v string) status.Code {
	return s.set(tok, name, index, property.Value{Type: property.String, S: v})
}

// SetPointer implements propSetPointer. A nil v is accepted and stores
// the zero pointer (spec.md §8 "Pointer set with NULL stores 0").
func (s *PropertySuite) SetPointer(tok unsafe.Pointer, name string, index int, v unsafe.Pointer) status.Code {
	return s.set(tok, name, index, property.Value{Type: property.Pointer, P: uintptr(v)})
}

// GetInt implements propGetInt.
func (s *PropertySuite) GetInt(tok unsafe.Pointer, name string, index int) (int32, status.Code) {
	v, st := s.get(tok, name, index)
	return v.I, st
}

// GetDouble implements propGetDouble.
func (s *PropertySuite) GetDouble(tok unsafe.Pointer, name string, index int) (float64, status.Code) {
	v, st := s.get(tok, name, index)
	return v.D, st
}

// GetString implements propGetString: the caller receives the address
// of the store's own string buffer (spec.md §4.4 item 4), so the
// returned pointer tracks p.Address rather than copying v.S.
func (s *PropertySuite) GetString(tok unsafe.Pointer, name string, index int) (unsafe.Pointer, status.Code) {
	p, st := s.store(tok)
	if st != status.OK {
		return nil, st
	}
	if !p.Contains(name) {
		return nil, status.ErrUnknown
	}
	addr, err := p.Address(name, index)
	if err != nil {
		return nil, ToStatus(err)
	}
	buf, ok := addr.(*[]byte)
	if !ok || len(*buf) == 0 {
		return nil, status.OK
	}
	return unsafe.Pointer(&(*buf)[0]), status.OK
}

// GetPointer implements propGetPointer.
func (s *PropertySuite) GetPointer(tok unsafe.Pointer, name string, index int) (unsafe.Pointer, status.Code) {
	v, st := s.get(tok, name, index)
	return unsafe.Pointer(v.P), st
}

// SetIntN implements propSetIntN.
func (s *PropertySuite) SetIntN(tok unsafe.Pointer, name string, vs []int32) status.Code {
	for i, v := range vs {
		if st := s.SetInt(tok, name, i, v); st != status.OK {
			return st
		}
	}
	return status.OK
}

// SetDoubleN implements propSetDoubleN.
func (s *PropertySuite) SetDoubleN(tok unsafe.Pointer, name string, vs []float64) status.Code {
	for i, v := range vs {
		if st := s.SetDouble(tok, name, i, v); st != status.OK {
			return st
		}
	}
	return status.OK
}

// SetStringN implements propSetStringN.
func (s *PropertySuite) SetStringN(tok unsafe.Pointer, name string, vs []string) status.Code {
	for i, v := range vs {
		if st := s.SetString(tok, name, i, v); st != status.OK {
			return st
		}
	}
	return status.OK
}

// SetPointerN implements propSetPointerN.
func (s *PropertySuite) SetPointerN(tok unsafe.Pointer, name string, vs []unsafe.Pointer) status.Code {
	for i, v := range vs {
		if st := s.SetPointer(tok, name, i, v); st != status.OK {
			return st
		}
	}
	return status.OK
}

// GetIntN implements propGetIntN.
func (s *PropertySuite) GetIntN(tok unsafe.Pointer, name string, count int) ([]int32, status.Code) {
	out := make([]int32, count)
	for i := range out {
		v, st := s.GetInt(tok, name, i)
		if st != status.OK {
			return nil, st
		}
		out[i] = v
	}
	return out, status.OK
}

// GetDoubleN implements propGetDoubleN.
func (s *PropertySuite) GetDoubleN(tok unsafe.Pointer, name string, count int) ([]float64, status.Code) {
	out := make([]float64, count)
	for i := range out {
		v, st := s.GetDouble(tok, name, i)
		if st != status.OK {
			return nil, st
		}
		out[i] = v
	}
	return out, status.OK
}

// GetStringN implements propGetStringN: used for the variable-length
// String properties the host's templates declare with Dim: Variable
// (e.g. SupportedContexts, SupportedComponents, SupportedPixelDepths),
// which a plugin retrieves one index at a time up to GetDimension's
// count rather than through a single scalar Get (spec.md §4.4 item 5).
func (s *PropertySuite) GetStringN(tok unsafe.Pointer, name string, count int) ([]unsafe.Pointer, status.Code) {
	out := make([]unsafe.Pointer, count)
	for i := range out {
		ptr, st := s.GetString(tok, name, i)
		if st != status.OK {
			return nil, st
		}
		out[i] = ptr
	}
	return out, status.OK
}

// GetPointerN implements propGetPointerN.
func (s *PropertySuite) GetPointerN(tok unsafe.Pointer, name string, count int) ([]unsafe.Pointer, status.Code) {
	out := make([]unsafe.Pointer, count)
	for i := range out {
		v, st := s.GetPointer(tok, name, i)
		if st != status.OK {
			return nil, st
		}
		out[i] = v
	}
	return out, status.OK
}

// GetDimension implements propGetDimension.
func (s *PropertySuite) GetDimension(tok unsafe.Pointer, name string) (int, status.Code) {
	p, st := s.store(tok)
	if st != status.OK {
		return 0, st
	}
	if !p.Contains(name) {
		return 0, status.ErrUnknown
	}
	n, _ := p.Length(name)
	return n, status.OK
}

// Reset implements propReset: a no-op (spec.md §4.4 item 6).
func (s *PropertySuite) Reset(tok unsafe.Pointer, name string) status.Code {
	p, st := s.store(tok)
	if st != status.OK {
		return st
	}
	if err := p.Reset(name); err != nil {
		return ToStatus(err)
	}
	return status.OK
}
