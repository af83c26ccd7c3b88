package host

import (
	"unsafe"

	"github.com/gviegas/ofxhost/handle"
	"github.com/gviegas/ofxhost/status"
)

// MemorySuite is OfxMemorySuiteV1 (spec.md §4.7): raw, pointer-keyed
// allocation with no lock discipline, distinct from ImageEffectSuite's
// handle-keyed ImageMemory.
type MemorySuite struct{ h *Host }

// MemorySuite returns the vtable bound to h.
func (h *Host) MemorySuite() *MemorySuite { return &MemorySuite{h} }

// Alloc implements memoryAlloc. instTok is accepted but unused: this
// host tracks raw allocations globally rather than per-instance.
func (s *MemorySuite) Alloc(instTok unsafe.Pointer, n int) (unsafe.Pointer, status.Code) {
	return unsafe.Pointer(s.h.MemoryAlloc(n)), status.OK
}

// Free implements memoryFree.
func (s *MemorySuite) Free(ptr unsafe.Pointer) status.Code {
	if err := s.h.MemoryFree(uintptr(ptr)); err != nil {
		return ToStatus(err)
	}
	return status.OK
}

// ThreadFunc is the callback signature multiThread invokes: the
// plugin-supplied function, given its index and the total thread
// count (spec.md §4.7).
type ThreadFunc func(threadIndex, threadMax int, args unsafe.Pointer) status.Code

// MultiThreadSuite is OfxMultiThreadSuiteV1, implemented sequentially
// (spec.md §4.7, §5 "this choice avoids needing to lock the Property
// Store"). The real vtable bundles the thread and mutex entry points
// together, so MutexSuite is embedded rather than fetched separately.
type MultiThreadSuite struct {
	h *Host
	*MutexSuite
}

// MultiThreadSuite returns the vtable bound to h.
func (h *Host) MultiThreadSuite() *MultiThreadSuite {
	return &MultiThreadSuite{h: h, MutexSuite: &MutexSuite{h: h}}
}

// MultiThread implements multiThread: calls fn(0, 1, args) once,
// regardless of nThreads requested.
func (s *MultiThreadSuite) MultiThread(fn ThreadFunc, nThreads int, args unsafe.Pointer) status.Code {
	return fn(0, 1, args)
}

// NumCPUs implements multiThreadNumCPUs: always 1.
func (s *MultiThreadSuite) NumCPUs() int { return 1 }

// ThreadIndex implements multiThreadIndex: always 0 (the only thread).
func (s *MultiThreadSuite) ThreadIndex() int { return 0 }

// IsSpawnedThread implements multiThreadIsSpawnedThread: always false,
// since multiThread never actually spawns.
func (s *MultiThreadSuite) IsSpawnedThread() bool { return false }

// Mutex is a counting semaphore addressable via handle.Mutex (spec.md
// §4.7). The host never itself blocks on one: lock/unlock only
// maintain the count a well-behaved plugin expects to read back.
type Mutex struct {
	base
	held int
}

// MutexCreate implements mutexCreate; count is the initial lock count.
func (h *Host) MutexCreate(count int) *Mutex {
	uid := h.mutexIDs.alloc("mutex")
	m := &Mutex{base: base{H: handle.New(handle.Mutex, "", "", "", "", uid)}, held: count}
	h.Active.Mutexes[uid] = m
	return m
}

// MutexDestroy implements mutexDestroy.
func (h *Host) MutexDestroy(m *Mutex) {
	delete(h.Active.Mutexes, m.Ident().Name)
	h.mutexIDs.free("mutex", m.Ident().Name)
}

// MutexLock implements mutexLock: the caller's own thread, so this never
// actually blocks (spec.md §5 "the host's own code never waits").
func (h *Host) MutexLock(m *Mutex) { m.held++ }

// MutexUnlock implements mutexUnlock.
func (h *Host) MutexUnlock(m *Mutex) {
	if m.held > 0 {
		m.held--
	}
}

// MutexTryLock implements mutexTryLock: always succeeds, since no other
// thread can ever hold the lock in this host.
func (h *Host) MutexTryLock(m *Mutex) bool {
	m.held++
	return true
}

// MutexSuite is OfxMultiThreadSuiteV1's mutex half.
type MutexSuite struct{ h *Host }

// MutexSuite returns the vtable bound to h.
func (h *Host) MutexSuite() *MutexSuite { return &MutexSuite{h} }

func (s *MutexSuite) resolve(tok unsafe.Pointer) (*Mutex, status.Code) {
	obj, ok := s.h.Resolve(tok)
	if !ok {
		return nil, status.ErrBadHandle
	}
	m, ok := obj.(*Mutex)
	if !ok {
		return nil, status.ErrBadHandle
	}
	if _, live := s.h.Active.Mutexes[m.Ident().Name]; !live {
		return nil, status.ErrBadHandle
	}
	return m, status.OK
}

// Create implements mutexCreate.
func (s *MutexSuite) Create(count int) unsafe.Pointer {
	return s.h.Token(s.h.MutexCreate(count))
}

// Destroy implements mutexDestroy.
func (s *MutexSuite) Destroy(tok unsafe.Pointer) status.Code {
	m, st := s.resolve(tok)
	if st != status.OK {
		return st
	}
	s.h.MutexDestroy(m)
	return status.OK
}

// Lock implements mutexLock.
func (s *MutexSuite) Lock(tok unsafe.Pointer) status.Code {
	m, st := s.resolve(tok)
	if st != status.OK {
		return st
	}
	s.h.MutexLock(m)
	return status.OK
}

// Unlock implements mutexUnlock.
func (s *MutexSuite) Unlock(tok unsafe.Pointer) status.Code {
	m, st := s.resolve(tok)
	if st != status.OK {
		return st
	}
	s.h.MutexUnlock(m)
	return status.OK
}

// TryLock implements mutexTryLock.
func (s *MutexSuite) TryLock(tok unsafe.Pointer) status.Code {
	m, st := s.resolve(tok)
	if st != status.OK {
		return st
	}
	s.h.MutexTryLock(m)
	return status.OK
}

// MessageSuite is OfxMessageSuiteV1 (spec.md §4.7). The native entry
// points take a variadic printf-style format; ofxc's vtable declares
// them with a plain text argument instead and passes that string
// through as-is, so Message/SetPersistentMessage receive the format
// string unrendered and any format arguments are not read.
type MessageSuite struct{ h *Host }

// MessageSuite returns the vtable bound to h.
func (h *Host) MessageSuite() *MessageSuite { return &MessageSuite{h} }

// Message implements message: logs at the level msgType maps to and,
// for a Question, replies Yes (spec.md §4.7 — there is no interactive
// prompt to ask, so the host answers in the affirmative rather than
// blocking).
func (s *MessageSuite) Message(msgType, id, text string) status.Code {
	s.h.Logf("[%s] %s: %s", messageLevel(msgType), id, text)
	if msgType == messageTypeQuestion {
		return status.ReplyYes
	}
	return status.OK
}

// SetPersistentMessage implements setPersistentMessage: logged the same
// way as a transient Message, since this host has no persistent UI
// panel to park it in.
func (s *MessageSuite) SetPersistentMessage(msgType, id, text string) status.Code {
	return s.Message(msgType, id, text)
}

// ClearPersistentMessage implements clearPersistentMessage: a no-op.
func (s *MessageSuite) ClearPersistentMessage() status.Code { return status.OK }

const (
	messageTypeFatal   = "kOfxMessageFatal"
	messageTypeError   = "kOfxMessageError"
	messageTypeWarning = "kOfxMessageWarning"
	messageTypeLog     = "kOfxMessageLog"
	messageTypeMessage = "kOfxMessageMessage"
	messageTypeQuestion = "kOfxMessageQuestion"
)

func messageLevel(msgType string) string {
	switch msgType {
	case messageTypeFatal:
		return "critical"
	case messageTypeError:
		return "error"
	case messageTypeWarning:
		return "warning"
	case messageTypeLog:
		return "info"
	case messageTypeMessage, messageTypeQuestion:
		return "stdout"
	}
	return "stdout"
}
