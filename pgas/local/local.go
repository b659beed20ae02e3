// Package local backs pgas.Fabric with an in-process simulation: PEs are
// goroutines sharing one Go heap, symmetric buffers are plain byte slices
// registered collectively through a Registry, and the remote-atomic words
// are backed by sync/atomic so that a Put followed by an AtomicAdd/P
// notification and a WaitUntil/AtomicFetch observation on the other side
// synchronizes correctly under the Go memory model (atomic operations form
// a total order and transfer a happens-before edge for everything the
// writer did before the atomic write — the same guarantee a hardware
// fence() gives a one-sided RMA consumer on a real network fabric).
//
// This is the backend the reduce package's test suite runs against; it has
// no network dependency and no failure modes beyond what Go itself has.
package local

import (
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/xtaci/shreduce/pgas"
)

// Registry is the collective symmetric allocator shared by every PE in a
// job. All PEs must be constructed against the same Registry.
type Registry struct {
	numPEs int

	mu       sync.Mutex
	cond     *sync.Cond
	forming  [][]byte
	arrived  int
	genIndex int
	genErr   error
	byHandle [][][]byte // byHandle[h][pe] = registered buffer
}

// NewRegistry creates a Registry for a job of numPEs PEs.
func NewRegistry(numPEs int) *Registry {
	r := &Registry{numPEs: numPEs}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// Fabric is one PE's view of a Registry.
type Fabric struct {
	reg    *Registry
	myPE   int
	numPEs int
}

// New returns the Fabric for PE myPE in reg's job.
func New(reg *Registry, myPE int) *Fabric {
	return &Fabric{reg: reg, myPE: myPE, numPEs: reg.numPEs}
}

func (f *Fabric) MyPE() int   { return f.myPE }
func (f *Fabric) NumPEs() int { return f.numPEs }

// Register performs the collective symmetric allocation: it blocks until
// every PE in the job has called Register the same number of times.
func (f *Fabric) Register(buf []byte) (pgas.Handle, error) {
	r := f.reg
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.forming == nil {
		r.forming = make([][]byte, r.numPEs)
	}
	if r.forming[f.myPE] != nil {
		return 0, errors.Errorf("local: PE %d registered twice in the same generation", f.myPE)
	}
	r.forming[f.myPE] = buf
	r.arrived++
	myGen := r.genIndex

	if r.arrived == r.numPEs {
		forming := r.forming
		want := len(buf)
		var genErr error
		for pe, b := range forming {
			if len(b) != want {
				genErr = errors.Errorf("local: symmetric buffer length mismatch: PE %d has %d bytes, PE %d has %d", f.myPE, want, pe, len(b))
				break
			}
		}
		r.genErr = genErr
		if genErr == nil {
			r.byHandle = append(r.byHandle, forming)
		}
		r.forming = nil
		r.arrived = 0
		r.genIndex++
		r.cond.Broadcast()
	} else {
		for r.genIndex == myGen {
			r.cond.Wait()
		}
	}
	if r.genErr != nil {
		return 0, r.genErr
	}
	return pgas.Handle(myGen), nil
}

func (f *Fabric) bufAt(h pgas.Handle, pe int) ([]byte, error) {
	r := f.reg
	r.mu.Lock()
	defer r.mu.Unlock()
	if int(h) < 0 || int(h) >= len(r.byHandle) {
		return nil, pgas.ErrNotRegistered
	}
	if pe < 0 || pe >= len(r.byHandle[h]) {
		return nil, pgas.ErrNotRegistered
	}
	return r.byHandle[h][pe], nil
}

func (f *Fabric) Get(local []byte, h pgas.Handle, off int, targetPE int) {
	buf, err := f.bufAt(h, targetPE)
	if err != nil {
		panic(err)
	}
	copy(local, buf[off:off+len(local)])
}

func (f *Fabric) Put(h pgas.Handle, off int, local []byte, targetPE int) {
	buf, err := f.bufAt(h, targetPE)
	if err != nil {
		panic(err)
	}
	copy(buf[off:off+len(local)], local)
}

func cellPtr(buf []byte, off int) *int64 {
	return (*int64)(unsafe.Pointer(&buf[off]))
}

func (f *Fabric) P(h pgas.Handle, off int, value int64, targetPE int) {
	buf, err := f.bufAt(h, targetPE)
	if err != nil {
		panic(err)
	}
	atomic.StoreInt64(cellPtr(buf, off), value)
}

func (f *Fabric) AtomicAdd(h pgas.Handle, off int, delta int64, targetPE int) {
	buf, err := f.bufAt(h, targetPE)
	if err != nil {
		panic(err)
	}
	atomic.AddInt64(cellPtr(buf, off), delta)
}

func (f *Fabric) AtomicFetch(h pgas.Handle, off int, pe int) int64 {
	buf, err := f.bufAt(h, pe)
	if err != nil {
		panic(err)
	}
	return atomic.LoadInt64(cellPtr(buf, off))
}

func (f *Fabric) WaitUntil(h pgas.Handle, off int, cmp pgas.Cmp, value int64) int64 {
	buf, err := f.bufAt(h, f.myPE)
	if err != nil {
		panic(err)
	}
	ptr := cellPtr(buf, off)
	for {
		v := atomic.LoadInt64(ptr)
		ok := false
		switch cmp {
		case pgas.CmpNE:
			ok = v != value
		case pgas.CmpGT:
			ok = v > value
		case pgas.CmpGE:
			ok = v >= value
		}
		if ok {
			return v
		}
		runtime.Gosched()
	}
}

// Fence is a no-op: the Go memory model already gives the atomic
// operations above the synchronizes-with edge a real fence() would
// provide, so there is nothing left to order.
func (f *Fabric) Fence(targetPE int) {}
