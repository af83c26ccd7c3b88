package host

import (
	"errors"
	"unsafe"

	"github.com/gviegas/ofxhost/status"
)

// ImageEffectSuite is OfxImageEffectSuiteV1 (spec.md §4.6).
type ImageEffectSuite struct{ h *Host }

// ImageEffectSuite returns the vtable bound to h.
func (h *Host) ImageEffectSuite() *ImageEffectSuite { return &ImageEffectSuite{h} }

// GetPropertySet implements getPropertySet: the effect IS its property
// set, disambiguated only by Handle.Kind, so the identity token is
// returned unchanged.
func (s *ImageEffectSuite) GetPropertySet(tok unsafe.Pointer) (unsafe.Pointer, status.Code) {
	if _, ok := s.h.Resolve(tok); !ok {
		return nil, status.ErrBadHandle
	}
	return tok, status.OK
}

// GetParamSet implements getParamSet: same identity rule as GetPropertySet.
func (s *ImageEffectSuite) GetParamSet(tok unsafe.Pointer) (unsafe.Pointer, status.Code) {
	return s.GetPropertySet(tok)
}

// ClipDefine implements clipDefine.
func (s *ImageEffectSuite) ClipDefine(effectTok unsafe.Pointer, name string) (unsafe.Pointer, status.Code) {
	obj, ok := s.h.Resolve(effectTok)
	if !ok {
		return nil, status.ErrBadHandle
	}
	c, err := s.h.DefineClip(obj, name)
	if err != nil {
		return nil, ToStatus(err)
	}
	return s.h.Token(c), status.OK
}

// ClipGetHandle implements clipGetHandle.
func (s *ImageEffectSuite) ClipGetHandle(instTok unsafe.Pointer, name string) (unsafe.Pointer, status.Code) {
	obj, ok := s.h.Resolve(instTok)
	if !ok {
		return nil, status.ErrBadHandle
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, status.ErrBadHandle
	}
	ci, err := s.h.ClipHandle(inst, name)
	if err != nil {
		return nil, ToStatus(err)
	}
	return s.h.Token(ci), status.OK
}

// ClipGetPropertySet implements clipGetPropertySet: identity, as above.
func (s *ImageEffectSuite) ClipGetPropertySet(tok unsafe.Pointer) (unsafe.Pointer, status.Code) {
	return s.GetPropertySet(tok)
}

// ClipGetImage implements clipGetImage: returns the clip's currently
// bound image handle, or Failed if Connected=0 (spec.md §4.6). time and
// region are accepted but unused (Non-goals: animation, tiled
// rendering).
func (s *ImageEffectSuite) ClipGetImage(clipTok unsafe.Pointer, time float64) (unsafe.Pointer, status.Code) {
	obj, ok := s.h.Resolve(clipTok)
	if !ok {
		return nil, status.ErrBadHandle
	}
	ci, ok := obj.(*ClipInstance)
	if !ok {
		return nil, status.ErrBadHandle
	}
	if ci.Image == nil {
		return nil, status.Failed
	}
	return s.h.Token(ci.Image), status.OK
}

// ClipReleaseImage implements clipReleaseImage: a no-op, since an
// Image's lifetime is tied to its Instance rather than released
// per-call (spec.md §4.6).
func (s *ImageEffectSuite) ClipReleaseImage(imageTok unsafe.Pointer) status.Code {
	if _, ok := s.h.Resolve(imageTok); !ok {
		return status.ErrBadHandle
	}
	return status.OK
}

// ClipGetRegionOfDefinition implements clipGetRegionOfDefinition:
// unsupported (spec.md §4.6, Non-goals: tiled rendering).
func (s *ImageEffectSuite) ClipGetRegionOfDefinition(clipTok unsafe.Pointer, time float64) status.Code {
	return status.Failed
}

// ImageMemoryAlloc implements imageMemoryAlloc. instTok may be nil for
// a host-wide allocation.
func (s *ImageEffectSuite) ImageMemoryAlloc(instTok unsafe.Pointer, n int) (unsafe.Pointer, status.Code) {
	var owner *Instance
	if instTok != nil {
		obj, ok := s.h.Resolve(instTok)
		if !ok {
			return nil, status.ErrBadHandle
		}
		owner, ok = obj.(*Instance)
		if !ok {
			return nil, status.ErrBadHandle
		}
	}
	m, err := s.h.ImageMemoryAlloc(owner, n)
	if err != nil {
		return nil, ToStatus(err)
	}
	return s.h.Token(m), status.OK
}

func (s *ImageEffectSuite) memory(tok unsafe.Pointer) (*ImageMemory, status.Code) {
	obj, ok := s.h.Resolve(tok)
	if !ok {
		return nil, status.ErrBadHandle
	}
	m, ok := obj.(*ImageMemory)
	if !ok {
		return nil, status.ErrBadHandle
	}
	return m, status.OK
}

// ImageMemoryLock implements imageMemoryLock.
func (s *ImageEffectSuite) ImageMemoryLock(tok unsafe.Pointer) (unsafe.Pointer, status.Code) {
	m, st := s.memory(tok)
	if st != status.OK {
		return nil, st
	}
	addr, _ := s.h.ImageMemoryLock(m)
	return unsafe.Pointer(addr), status.OK
}

// ImageMemoryUnlock implements imageMemoryUnlock.
func (s *ImageEffectSuite) ImageMemoryUnlock(tok unsafe.Pointer) status.Code {
	m, st := s.memory(tok)
	if st != status.OK {
		return st
	}
	s.h.ImageMemoryUnlock(m)
	return status.OK
}

// ImageMemoryFree implements imageMemoryFree: Failed while still
// locked, BadHandle if already freed (spec.md §8 "Lock discipline").
func (s *ImageEffectSuite) ImageMemoryFree(tok unsafe.Pointer) status.Code {
	m, st := s.memory(tok)
	if st != status.OK {
		return st
	}
	if err := s.h.ImageMemoryFree(m); err != nil {
		if errors.Is(err, ErrLocked) {
			return status.Failed
		}
		return ToStatus(err)
	}
	return status.OK
}
