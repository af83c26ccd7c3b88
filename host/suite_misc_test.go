package host

import (
	"testing"
	"unsafe"

	"github.com/gviegas/ofxhost/status"
)

func TestMemorySuiteAllocFree(t *testing.T) {
	h := New(fakeLoader{}, newFakeTokenizer(), nil)
	s := h.MemorySuite()
	ptr, st := s.Alloc(nil, 64)
	if st != status.OK || ptr == nil {
		t.Fatalf("Alloc = %v, %s", ptr, st)
	}
	if st := s.Free(ptr); st != status.OK {
		t.Fatalf("Free: %s", st)
	}
	if st := s.Free(ptr); st == status.OK {
		t.Fatal("want error freeing an unknown address twice")
	}
}

func TestMultiThreadSuiteRunsSequentially(t *testing.T) {
	h := New(fakeLoader{}, newFakeTokenizer(), nil)
	s := h.MultiThreadSuite()

	if n := s.NumCPUs(); n != 1 {
		t.Fatalf("NumCPUs = %d, want 1", n)
	}
	if i := s.ThreadIndex(); i != 0 {
		t.Fatalf("ThreadIndex = %d, want 0", i)
	}
	if s.IsSpawnedThread() {
		t.Fatal("IsSpawnedThread should always be false")
	}

	var calls []int
	fn := func(idx, max int, args unsafe.Pointer) status.Code {
		calls = append(calls, idx)
		if max != 1 {
			t.Errorf("threadMax = %d, want 1", max)
		}
		return status.OK
	}
	if st := s.MultiThread(fn, 8, nil); st != status.OK {
		t.Fatalf("MultiThread: %s", st)
	}
	if len(calls) != 1 || calls[0] != 0 {
		t.Fatalf("calls = %v, want a single call with index 0", calls)
	}
}

func TestMutexSuiteLockUnlockDiscipline(t *testing.T) {
	h := New(fakeLoader{}, newFakeTokenizer(), nil)
	s := h.MutexSuite()

	tok := s.Create(0)
	if st := s.Lock(tok); st != status.OK {
		t.Fatalf("Lock: %s", st)
	}
	if st := s.TryLock(tok); st != status.OK {
		t.Fatalf("TryLock: %s", st)
	}
	if st := s.Unlock(tok); st != status.OK {
		t.Fatalf("Unlock: %s", st)
	}
	if st := s.Destroy(tok); st != status.OK {
		t.Fatalf("Destroy: %s", st)
	}
	if st := s.Lock(tok); st != status.ErrBadHandle {
		t.Fatalf("Lock after Destroy = %s, want ErrBadHandle", st)
	}
}

func TestMultiThreadSuiteEmbedsMutexSuite(t *testing.T) {
	h := New(fakeLoader{}, newFakeTokenizer(), nil)
	s := h.MultiThreadSuite()
	tok := s.Create(0)
	if st := s.Lock(tok); st != status.OK {
		t.Fatalf("Lock via embedded MutexSuite: %s", st)
	}
	if st := s.Unlock(tok); st != status.OK {
		t.Fatalf("Unlock via embedded MutexSuite: %s", st)
	}
}

func TestMessageSuiteQuestionRepliesYes(t *testing.T) {
	h := New(fakeLoader{}, newFakeTokenizer(), nil)
	s := h.MessageSuite()
	if st := s.Message("kOfxMessageQuestion", "id", "proceed?"); st != status.ReplyYes {
		t.Fatalf("Message(Question) = %s, want ReplyYes", st)
	}
	if st := s.Message("kOfxMessageLog", "id", "hello"); st != status.OK {
		t.Fatalf("Message(Log) = %s, want OK", st)
	}
	if st := s.SetPersistentMessage("kOfxMessageError", "id", "bad"); st != status.OK {
		t.Fatalf("SetPersistentMessage: %s", st)
	}
	if st := s.ClearPersistentMessage(); st != status.OK {
		t.Fatalf("ClearPersistentMessage: %s", st)
	}
}
