package netfabric

import (
	"net"
	"sync"
	"testing"

	"github.com/xtaci/shreduce/pgas"
)

func startTestCoordinator(t *testing.T, numPEs int) (addr string, stop func()) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	c := NewCoordinator(numPEs)
	go c.Serve(ln)
	return ln.Addr().String(), func() { ln.Close() }
}

func dialTestFabrics(t *testing.T, numPEs int, cfg Config) []*Fabric {
	t.Helper()
	coordAddr, _ := startTestCoordinator(t, numPEs)

	fabrics := make([]*Fabric, numPEs)
	errs := make([]error, numPEs)
	var wg sync.WaitGroup
	for pe := 0; pe < numPEs; pe++ {
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			f, err := Dial(coordAddr, "127.0.0.1:0", pe, numPEs, cfg)
			fabrics[pe] = f
			errs[pe] = err
		}(pe)
	}
	wg.Wait()

	for pe, err := range errs {
		if err != nil {
			t.Fatalf("PE %d: Dial: %v", pe, err)
		}
	}
	t.Cleanup(func() {
		for _, f := range fabrics {
			f.ln.Close()
			f.coord.Close()
		}
	})
	return fabrics
}

func TestFabricPutGetRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Key = "test-key"
	fabrics := dialTestFabrics(t, 2, cfg)

	bufs := make([][]byte, 2)
	var handle pgas.Handle
	for pe, f := range fabrics {
		bufs[pe] = make([]byte, 8)
		h, err := f.Register(bufs[pe])
		if err != nil {
			t.Fatalf("PE %d: Register: %v", pe, err)
		}
		handle = h
	}

	copy(bufs[1], []byte{1, 2, 3, 4, 5, 6, 7, 8})

	local := make([]byte, 8)
	fabrics[0].Get(local, handle, 0, 1)
	for i, b := range local {
		if b != byte(i+1) {
			t.Fatalf("Get: byte %d = %d, want %d", i, b, i+1)
		}
	}

	fabrics[0].Put(handle, 0, []byte{9, 9, 9, 9, 9, 9, 9, 9}, 1)
	for i, b := range bufs[1] {
		if b != 9 {
			t.Fatalf("Put: PE1 buf[%d] = %d, want 9", i, b)
		}
	}
}

func TestFabricAtomicOps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Key = "test-key"
	fabrics := dialTestFabrics(t, 2, cfg)

	var handle pgas.Handle
	bufs := make([][]byte, 2)
	for pe, f := range fabrics {
		bufs[pe] = make([]byte, 8)
		h, err := f.Register(bufs[pe])
		if err != nil {
			t.Fatalf("PE %d: Register: %v", pe, err)
		}
		handle = h
	}

	fabrics[0].P(handle, 0, 5, 1)
	if got := fabrics[0].AtomicFetch(handle, 0, 1); got != 5 {
		t.Fatalf("AtomicFetch after P: got %d, want 5", got)
	}

	fabrics[0].AtomicAdd(handle, 0, 3, 1)
	if got := fabrics[0].AtomicFetch(handle, 0, 1); got != 8 {
		t.Fatalf("AtomicFetch after AtomicAdd: got %d, want 8", got)
	}

	got := fabrics[0].WaitUntil(handle, 0, pgas.CmpGE, 8)
	if got != 8 {
		t.Fatalf("WaitUntil: got %d, want 8", got)
	}
}

func TestFabricLocalOpsBypassNetwork(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Key = "test-key"
	fabrics := dialTestFabrics(t, 2, cfg)

	buf := make([]byte, 8)
	h, err := fabrics[0].Register(buf)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := fabrics[1].Register(make([]byte, 8)); err != nil {
		t.Fatalf("PE1 Register: %v", err)
	}

	fabrics[0].Put(h, 0, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 0)
	local := make([]byte, 8)
	fabrics[0].Get(local, h, 0, 0)
	for i, b := range local {
		if b != byte(i+1) {
			t.Fatalf("local Get: byte %d = %d, want %d", i, b, i+1)
		}
	}
}
