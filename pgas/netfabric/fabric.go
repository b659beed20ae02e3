// Package netfabric is a multi-process pgas.Fabric: one process per PE,
// talking to every other PE over an encrypted kcp session multiplexed with
// smux, bootstrapped by a Coordinator that plays the role
// pgas/local.Registry plays for the in-process simulation.
package netfabric

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/xtaci/smux"

	"github.com/xtaci/shreduce/internal/stats"
	"github.com/xtaci/shreduce/pgas"
)

// Fabric is the netfabric implementation of pgas.Fabric.
type Fabric struct {
	myPE   int
	numPEs int
	cfg    Config

	coord *coordClient
	ln    *listener

	mu       sync.Mutex
	sessions map[int]*smux.Session // sessions[pe] = session to/from PE pe
	buffers  [][]byte              // buffers[handle] = this PE's copy of a registered buffer

	stats *stats.Counters
}

// Dial bootstraps a Fabric: it registers with the coordinator, learns every
// peer's address, listens for incoming peer sessions on listenAddr, and
// connects out to every peer with a smaller PE id (peers with a larger id
// connect to us, so every unordered pair gets exactly one session).
func Dial(coordAddr, listenAddr string, myPE, numPEs int, cfg Config) (*Fabric, error) {
	coord, err := dialCoordinator(coordAddr)
	if err != nil {
		return nil, err
	}

	ln, err := listen(listenAddr, cfg)
	if err != nil {
		coord.Close()
		return nil, err
	}

	f := &Fabric{
		myPE:     myPE,
		numPEs:   numPEs,
		cfg:      cfg,
		coord:    coord,
		ln:       ln,
		sessions: make(map[int]*smux.Session, numPEs-1),
		stats:    stats.New(),
	}

	peerAddrs, err := coord.hello(myPE, ln.Addr().String())
	if err != nil {
		return nil, err
	}

	go ln.serve(f.acceptSession)

	for pe, addr := range peerAddrs {
		if pe >= myPE {
			continue
		}
		sess, err := dial(addr, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "netfabric: connecting to PE %d", pe)
		}
		if err := identify(sess, myPE); err != nil {
			return nil, err
		}
		f.mu.Lock()
		f.sessions[pe] = sess
		f.mu.Unlock()
		go f.serveSession(pe, sess)
	}

	// Wait for every higher-numbered peer to connect to us.
	for {
		f.mu.Lock()
		n := len(f.sessions)
		f.mu.Unlock()
		if n == numPEs-1 {
			break
		}
		spin()
	}
	return f, nil
}

func (f *Fabric) MyPE() int   { return f.myPE }
func (f *Fabric) NumPEs() int { return f.numPEs }

// Stats exposes the running RMA call/byte counters for this Fabric, so a
// caller can periodically dump them to a log the way kcptun periodically
// dumps kcp's DefaultSnmp.
func (f *Fabric) Stats() *stats.Counters { return f.stats }

// Register is the collective symmetric allocation, delegated to the
// Coordinator exactly as pgas/local.Registry does in-process.
func (f *Fabric) Register(buf []byte) (pgas.Handle, error) {
	handle, err := f.coord.register(f.myPE, len(buf))
	if err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for len(f.buffers) <= handle {
		f.buffers = append(f.buffers, nil)
	}
	f.buffers[handle] = buf
	return pgas.Handle(handle), nil
}

func (f *Fabric) bufAt(h pgas.Handle) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if int(h) < 0 || int(h) >= len(f.buffers) || f.buffers[h] == nil {
		return nil, pgas.ErrNotRegistered
	}
	return f.buffers[h], nil
}

func (f *Fabric) sessionFor(pe int) *smux.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions[pe]
}

func (f *Fabric) Get(local []byte, h pgas.Handle, off int, targetPE int) {
	if targetPE == f.myPE {
		buf, err := f.bufAt(h)
		if err != nil {
			panic(err)
		}
		copy(local, buf[off:off+len(local)])
		return
	}
	resp, payload, err := f.roundTrip(targetPE, requestHeader{op: opGet, handle: int32(h), off: int32(off), length: int32(len(local))}, nil)
	if err != nil {
		panic(err)
	}
	copy(local, payload)
	f.stats.AddGet(len(local))
	_ = resp
}

func (f *Fabric) Put(h pgas.Handle, off int, local []byte, targetPE int) {
	if targetPE == f.myPE {
		buf, err := f.bufAt(h)
		if err != nil {
			panic(err)
		}
		copy(buf[off:off+len(local)], local)
		return
	}
	if _, _, err := f.roundTrip(targetPE, requestHeader{op: opPut, handle: int32(h), off: int32(off), length: int32(len(local))}, local); err != nil {
		panic(err)
	}
	f.stats.AddPut(len(local))
}

func (f *Fabric) P(h pgas.Handle, off int, value int64, targetPE int) {
	if targetPE == f.myPE {
		buf, err := f.bufAt(h)
		if err != nil {
			panic(err)
		}
		atomic.StoreInt64(cellPtr(buf, off), value)
		return
	}
	if _, _, err := f.roundTrip(targetPE, requestHeader{op: opP, handle: int32(h), off: int32(off), value: value}, nil); err != nil {
		panic(err)
	}
	f.stats.AddAtomic()
}

func (f *Fabric) AtomicAdd(h pgas.Handle, off int, delta int64, targetPE int) {
	if targetPE == f.myPE {
		buf, err := f.bufAt(h)
		if err != nil {
			panic(err)
		}
		atomic.AddInt64(cellPtr(buf, off), delta)
		return
	}
	if _, _, err := f.roundTrip(targetPE, requestHeader{op: opAtomicAdd, handle: int32(h), off: int32(off), value: delta}, nil); err != nil {
		panic(err)
	}
	f.stats.AddAtomic()
}

func (f *Fabric) AtomicFetch(h pgas.Handle, off int, pe int) int64 {
	if pe == f.myPE {
		buf, err := f.bufAt(h)
		if err != nil {
			panic(err)
		}
		return atomic.LoadInt64(cellPtr(buf, off))
	}
	resp, _, err := f.roundTrip(pe, requestHeader{op: opAtomicFetch, handle: int32(h), off: int32(off)}, nil)
	if err != nil {
		panic(err)
	}
	f.stats.AddAtomic()
	return resp.value
}

// WaitUntil only ever polls this PE's own buffer, which incoming P/
// AtomicAdd requests update with sync/atomic — the same busy-poll
// pgas/local.Fabric uses, just fed by the network instead of a sibling
// goroutine.
func (f *Fabric) WaitUntil(h pgas.Handle, off int, cmp pgas.Cmp, value int64) int64 {
	buf, err := f.bufAt(h)
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
		spin()
	}
}

// Fence is a no-op: every Put/P/AtomicAdd above is a synchronous round
// trip that has already been applied and acknowledged by targetPE before
// the call returns, so there is no outstanding traffic left to order.
func (f *Fabric) Fence(targetPE int) {}

func cellPtr(buf []byte, off int) *int64 {
	return (*int64)(unsafe.Pointer(&buf[off]))
}

// roundTrip opens one stream to targetPE, sends a request, and waits for
// the matching response. RMA calls here are not pipelined: each one is a
// full open-stream/write/read/close cycle, trading throughput for a
// protocol simple enough to reason about without a request-id mux.
func (f *Fabric) roundTrip(targetPE int, req requestHeader, payload []byte) (responseHeader, []byte, error) {
	sess := f.sessionFor(targetPE)
	if sess == nil {
		return responseHeader{}, nil, errors.Errorf("netfabric: no session to PE %d", targetPE)
	}
	stream, err := sess.OpenStream()
	if err != nil {
		return responseHeader{}, nil, errors.Wrapf(err, "netfabric: open stream to PE %d", targetPE)
	}
	defer stream.Close()

	if err := writeRequest(stream, req, payload); err != nil {
		return responseHeader{}, nil, err
	}
	resp, body, err := readResponse(stream)
	if err != nil {
		return responseHeader{}, nil, err
	}
	if resp.status != 0 {
		return responseHeader{}, nil, errors.Errorf("netfabric: PE %d rejected request: status %d", targetPE, resp.status)
	}
	return resp, body, nil
}
