package host

import (
	"unsafe"

	"github.com/gviegas/ofxhost/property"
	"github.com/gviegas/ofxhost/status"
)

// ParameterSuite is OfxParameterSuiteV1 (spec.md §4.5). paramGetValue
// and paramSetValue are variadic in the published C ABI; ofxc's vtable
// instead declares them with a pointer to a fixed-capacity
// OfxParamValueArgs struct (4 doubles, 4 ints and one string pointer)
// and converts between that struct and the []property.Value this layer
// consumes, keyed off the parameter's declared Type via paramDims
// (ofxc's copy of paramLayout). This layer itself only ever sees a
// properly-shaped slice, so it stays ordinary Go.
type ParameterSuite struct{ h *Host }

// ParameterSuite returns the vtable bound to h.
func (h *Host) ParameterSuite() *ParameterSuite { return &ParameterSuite{h} }

// Define implements paramDefine.
func (s *ParameterSuite) Define(effectTok unsafe.Pointer, paramType, name string) (unsafe.Pointer, status.Code) {
	obj, ok := s.h.Resolve(effectTok)
	if !ok {
		return nil, status.ErrBadHandle
	}
	d, err := s.h.DefineParam(obj, paramType, name)
	if err != nil {
		return nil, ToStatus(err)
	}
	return s.h.Token(d), status.OK
}

// GetHandle implements paramGetHandle.
func (s *ParameterSuite) GetHandle(instTok unsafe.Pointer, name string) (unsafe.Pointer, status.Code) {
	obj, ok := s.h.Resolve(instTok)
	if !ok {
		return nil, status.ErrBadHandle
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, status.ErrBadHandle
	}
	pi, err := s.h.ParamHandle(inst, name)
	if err != nil {
		return nil, ToStatus(err)
	}
	return s.h.Token(pi), status.OK
}

// PropertySet implements paramGetPropertySet/paramSetGetPropertySet: a
// parameter IS its property set, so the identity is the same token
// (spec.md §4.5).
func (s *ParameterSuite) PropertySet(tok unsafe.Pointer) (unsafe.Pointer, status.Code) {
	if _, ok := s.h.Resolve(tok); !ok {
		return nil, status.ErrBadHandle
	}
	return tok, status.OK
}

func (s *ParameterSuite) resolve(tok unsafe.Pointer) (*ParamInstance, status.Code) {
	obj, ok := s.h.Resolve(tok)
	if !ok {
		return nil, status.ErrBadHandle
	}
	pi, ok := obj.(*ParamInstance)
	if !ok {
		return nil, status.ErrBadHandle
	}
	return pi, status.OK
}

// GetValue implements paramGetValue: returns one property.Value per
// cell in the parameter's per-type layout (spec.md §4.5 table).
func (s *ParameterSuite) GetValue(tok unsafe.Pointer) ([]property.Value, status.Code) {
	pi, st := s.resolve(tok)
	if st != status.OK {
		return nil, st
	}
	n, _ := pi.Properties().Length(property.ParamInstancePropValue)
	out := make([]property.Value, n)
	for i := range out {
		v, err := pi.Properties().Get(property.ParamInstancePropValue, i)
		if err != nil {
			return nil, ToStatus(err)
		}
		out[i] = v
	}
	return out, status.OK
}

// SetValue implements paramSetValue.
func (s *ParameterSuite) SetValue(tok unsafe.Pointer, vs []property.Value) status.Code {
	pi, st := s.resolve(tok)
	if st != status.OK {
		return st
	}
	for i, v := range vs {
		if err := pi.Properties().Update(property.ParamInstancePropValue, i, v); err != nil {
			return ToStatus(err)
		}
	}
	return status.OK
}

// GetValueAtTime implements paramGetValueAtTime: parameters do not
// animate, so time is ignored and this behaves as GetValue (spec.md
// §4.5).
func (s *ParameterSuite) GetValueAtTime(tok unsafe.Pointer, time float64) ([]property.Value, status.Code) {
	return s.GetValue(tok)
}

// SetValueAtTime implements paramSetValueAtTime: forwards to SetValue.
func (s *ParameterSuite) SetValueAtTime(tok unsafe.Pointer, time float64, vs []property.Value) status.Code {
	return s.SetValue(tok, vs)
}

// GetNumKeys implements paramGetNumKeys: always 0 (no animation).
func (s *ParameterSuite) GetNumKeys(tok unsafe.Pointer) (int, status.Code) { return 0, status.OK }

// GetKeyTime implements paramGetKeyTime: always 0.
func (s *ParameterSuite) GetKeyTime(tok unsafe.Pointer, index int) (float64, status.Code) {
	return 0, status.OK
}

// GetKeyIndex implements paramGetKeyIndex: always -1 (no such key).
func (s *ParameterSuite) GetKeyIndex(tok unsafe.Pointer, time float64, dir int) (int, status.Code) {
	return -1, status.OK
}

// DeleteKey implements paramDeleteKey: a no-op that reports success.
func (s *ParameterSuite) DeleteKey(tok unsafe.Pointer, time float64) status.Code { return status.OK }

// DeleteAllKeys implements paramDeleteAllKeys: a no-op that reports success.
func (s *ParameterSuite) DeleteAllKeys(tok unsafe.Pointer) status.Code { return status.OK }

// Copy implements paramCopy: overwrites dstTok's value cells with
// srcTok's.
func (s *ParameterSuite) Copy(dstTok, srcTok unsafe.Pointer) status.Code {
	dst, st := s.resolve(dstTok)
	if st != status.OK {
		return st
	}
	src, st := s.resolve(srcTok)
	if st != status.OK {
		return st
	}
	n, _ := src.Properties().Length(property.ParamInstancePropValue)
	for i := 0; i < n; i++ {
		v, err := src.Properties().Get(property.ParamInstancePropValue, i)
		if err != nil {
			return ToStatus(err)
		}
		if err := dst.Properties().Update(property.ParamInstancePropValue, i, v); err != nil {
			return ToStatus(err)
		}
	}
	return status.OK
}

// EditBegin implements paramEditBegin: a no-op (no undo/redo grouping).
func (s *ParameterSuite) EditBegin(tok unsafe.Pointer, name string) status.Code { return status.OK }

// EditEnd implements paramEditEnd: a no-op.
func (s *ParameterSuite) EditEnd(tok unsafe.Pointer) status.Code { return status.OK }

// GetDerivative implements paramGetDerivative: parametric parameters
// are unsupported (spec.md §4.5, Non-goals).
func (s *ParameterSuite) GetDerivative(tok unsafe.Pointer, time float64) (float64, status.Code) {
	return 0, status.Failed
}

// GetIntegral implements paramGetIntegral: unsupported, as above.
func (s *ParameterSuite) GetIntegral(tok unsafe.Pointer, t1, t2 float64) (float64, status.Code) {
	return 0, status.Failed
}
