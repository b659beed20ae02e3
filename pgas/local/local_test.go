package local

import (
	"sync"
	"testing"

	"github.com/xtaci/shreduce/pgas"
)

func TestRegisterAssignsMatchingHandles(t *testing.T) {
	reg := NewRegistry(3)
	var wg sync.WaitGroup
	handles := make([]pgas.Handle, 3)
	for pe := 0; pe < 3; pe++ {
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			fab := New(reg, pe)
			h, err := fab.Register(make([]byte, 64))
			if err != nil {
				t.Errorf("PE %d Register: %v", pe, err)
				return
			}
			handles[pe] = h
		}(pe)
	}
	wg.Wait()
	for pe := 1; pe < 3; pe++ {
		if handles[pe] != handles[0] {
			t.Fatalf("PE %d got handle %d, want %d", pe, handles[pe], handles[0])
		}
	}
}

func TestRegisterRejectsLengthMismatch(t *testing.T) {
	reg := NewRegistry(2)
	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = New(reg, 0).Register(make([]byte, 8))
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = New(reg, 1).Register(make([]byte, 16))
	}()
	wg.Wait()
	if errs[0] == nil && errs[1] == nil {
		t.Fatalf("expected a length-mismatch error from at least one PE")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	reg := NewRegistry(2)
	fab0 := New(reg, 0)
	fab1 := New(reg, 1)

	var h0, h1 pgas.Handle
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); h0, _ = fab0.Register(make([]byte, 32)) }()
	go func() { defer wg.Done(); h1, _ = fab1.Register(make([]byte, 32)) }()
	wg.Wait()
	if h0 != h1 {
		t.Fatalf("handles diverged: %d vs %d", h0, h1)
	}

	payload := []byte("0123456789abcdef")
	fab0.Put(h0, 0, payload, 1)

	out := make([]byte, len(payload))
	fab0.Get(out, h0, 0, 1)
	if string(out) != string(payload) {
		t.Fatalf("Get after Put = %q, want %q", out, payload)
	}
}

func TestAtomicAddAndWaitUntil(t *testing.T) {
	reg := NewRegistry(2)
	fab0 := New(reg, 0)
	fab1 := New(reg, 1)

	var h pgas.Handle
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); h, _ = fab0.Register(make([]byte, 8)) }()
	go func() { defer wg.Done(); _, _ = fab1.Register(make([]byte, 8)) }()
	wg.Wait()

	done := make(chan int64, 1)
	go func() {
		done <- fab1.WaitUntil(h, 0, pgas.CmpGE, 3)
	}()

	fab0.AtomicAdd(h, 0, 1, 1)
	fab0.AtomicAdd(h, 0, 1, 1)
	fab0.AtomicAdd(h, 0, 1, 1)

	if got := <-done; got < 3 {
		t.Fatalf("WaitUntil returned %d, want >= 3", got)
	}
}

func TestFabricIdentity(t *testing.T) {
	reg := NewRegistry(4)
	fab := New(reg, 2)
	if fab.MyPE() != 2 {
		t.Fatalf("MyPE() = %d, want 2", fab.MyPE())
	}
	if fab.NumPEs() != 4 {
		t.Fatalf("NumPEs() = %d, want 4", fab.NumPEs())
	}
}
