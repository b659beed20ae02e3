package netfabric

import (
	"encoding/json"
	"net"
	"sync"
	"testing"
)

// dialingPE is a minimal stand-in for coordClient that talks JSON directly
// to a Coordinator over a loopback connection, used to test the barrier
// logic without pulling in kcp/smux.
type dialingPE struct {
	enc *json.Encoder
	dec *json.Decoder
}

func dialPE(t *testing.T, addr string) *dialingPE {
	t.Helper()
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatalf("dial coordinator: %v", err)
	}
	return &dialingPE{enc: json.NewEncoder(conn), dec: json.NewDecoder(conn)}
}

func (p *dialingPE) hello(pe int, addr string) helloAck {
	p.enc.Encode(helloMsg{PE: pe, Addr: addr})
	var ack helloAck
	p.dec.Decode(&ack)
	return ack
}

func (p *dialingPE) register(pe, length int) registerAck {
	p.enc.Encode(registerMsg{PE: pe, Length: length})
	var ack registerAck
	p.dec.Decode(&ack)
	return ack
}

func startCoordinator(t *testing.T, numPEs int) (addr string, stop func()) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	c := NewCoordinator(numPEs)
	go c.Serve(ln)
	return ln.Addr().String(), func() { ln.Close() }
}

func TestCoordinatorHelloBarrier(t *testing.T) {
	const numPEs = 3
	addr, stop := startCoordinator(t, numPEs)
	defer stop()

	var wg sync.WaitGroup
	acks := make([]helloAck, numPEs)
	for pe := 0; pe < numPEs; pe++ {
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			client := dialPE(t, addr)
			acks[pe] = client.hello(pe, peerAddrForTest(pe))
		}(pe)
	}
	wg.Wait()

	for pe, ack := range acks {
		if len(ack.Peers) != numPEs {
			t.Fatalf("PE %d: got %d peer addrs, want %d", pe, len(ack.Peers), numPEs)
		}
		for i, a := range ack.Peers {
			if a != peerAddrForTest(i) {
				t.Fatalf("PE %d: peer %d addr = %q, want %q", pe, i, a, peerAddrForTest(i))
			}
		}
	}
}

func TestCoordinatorRegisterAssignsMatchingHandles(t *testing.T) {
	const numPEs = 4
	addr, stop := startCoordinator(t, numPEs)
	defer stop()

	var wg sync.WaitGroup
	handles := make([]int, numPEs)
	for pe := 0; pe < numPEs; pe++ {
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			client := dialPE(t, addr)
			client.hello(pe, peerAddrForTest(pe))
			ack := client.register(pe, 64)
			if ack.Err != "" {
				t.Errorf("PE %d: register error: %s", pe, ack.Err)
			}
			handles[pe] = ack.Handle
		}(pe)
	}
	wg.Wait()

	for pe := 1; pe < numPEs; pe++ {
		if handles[pe] != handles[0] {
			t.Fatalf("PE %d handle = %d, want %d", pe, handles[pe], handles[0])
		}
	}
}

func TestCoordinatorRegisterRejectsLengthMismatch(t *testing.T) {
	const numPEs = 2
	addr, stop := startCoordinator(t, numPEs)
	defer stop()

	var wg sync.WaitGroup
	acks := make([]registerAck, numPEs)
	lengths := []int{32, 48}
	for pe := 0; pe < numPEs; pe++ {
		wg.Add(1)
		go func(pe int) {
			defer wg.Done()
			client := dialPE(t, addr)
			client.hello(pe, peerAddrForTest(pe))
			acks[pe] = client.register(pe, lengths[pe])
		}(pe)
	}
	wg.Wait()

	for pe, ack := range acks {
		if ack.Err == "" {
			t.Fatalf("PE %d: expected length-mismatch error, got handle %d", pe, ack.Handle)
		}
	}
}

func peerAddrForTest(pe int) string {
	return "127.0.0.1:" + string(rune('0'+pe))
}
