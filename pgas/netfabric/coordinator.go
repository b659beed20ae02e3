package netfabric

import (
	"encoding/json"
	"net"
	"sync"

	"github.com/pkg/errors"
)

// helloMsg is the first message a peer sends the coordinator: its PE id
// and the address other peers should dial to reach it directly.
type helloMsg struct {
	PE   int
	Addr string
}

// helloAck carries the full address table back once every PE has checked
// in; Peers[i] is PE i's advertised address.
type helloAck struct {
	Peers []string
}

// registerMsg mirrors pgas/local.Registry.Register's collective call: every
// PE must call it the same number of times, with matching lengths, for the
// coordinator to hand out a consistent Handle.
type registerMsg struct {
	PE     int
	Length int
}

type registerAck struct {
	Handle int
	Err    string
}

// Coordinator is the network analogue of pgas/local.Registry: instead of
// goroutines blocking on a shared sync.Cond, peers block on a JSON message
// round trip over a TCP-like stream, but the barrier-then-assign logic is
// the same shape.
type Coordinator struct {
	numPEs int

	mu        sync.Mutex
	hellosCnt int
	addrs     []string
	helloGen  int
	helloCond *sync.Cond

	forming  []int // forming[pe] = requested length this generation, -1 if not yet arrived
	arrived  int
	genIndex int
	genErr   error
	genCond  *sync.Cond
}

// NewCoordinator creates a Coordinator for a job of numPEs PEs.
func NewCoordinator(numPEs int) *Coordinator {
	c := &Coordinator{
		numPEs: numPEs,
		addrs:  make([]string, numPEs),
		forming: newForming(numPEs),
	}
	c.helloCond = sync.NewCond(&c.mu)
	c.genCond = sync.NewCond(&c.mu)
	return c
}

func newForming(numPEs int) []int {
	f := make([]int, numPEs)
	for i := range f {
		f[i] = -1
	}
	return f
}

// Serve accepts connections on ln until it is closed or returns an error.
func (c *Coordinator) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return errors.Wrap(err, "netfabric: coordinator accept")
		}
		go c.handleConn(conn)
	}
}

func (c *Coordinator) handleConn(conn net.Conn) {
	defer conn.Close()
	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)

	var hello helloMsg
	if err := dec.Decode(&hello); err != nil {
		return
	}
	peers, err := c.recordHello(hello)
	if err != nil {
		return
	}
	if err := enc.Encode(helloAck{Peers: peers}); err != nil {
		return
	}

	for {
		var reg registerMsg
		if err := dec.Decode(&reg); err != nil {
			return
		}
		handle, err := c.recordRegister(reg)
		ack := registerAck{Handle: handle}
		if err != nil {
			ack.Err = err.Error()
		}
		if err := enc.Encode(ack); err != nil {
			return
		}
	}
}

func (c *Coordinator) recordHello(h helloMsg) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if h.PE < 0 || h.PE >= c.numPEs {
		return nil, errors.Errorf("netfabric: PE id %d out of range [0,%d)", h.PE, c.numPEs)
	}
	if c.addrs[h.PE] == "" {
		c.addrs[h.PE] = h.Addr
		c.hellosCnt++
	}
	myGen := c.helloGen
	if c.hellosCnt == c.numPEs {
		c.helloGen++
		c.helloCond.Broadcast()
	} else {
		for c.helloGen == myGen {
			c.helloCond.Wait()
		}
	}
	out := make([]string, c.numPEs)
	copy(out, c.addrs)
	return out, nil
}

func (c *Coordinator) recordRegister(r registerMsg) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r.PE < 0 || r.PE >= c.numPEs {
		return 0, errors.Errorf("netfabric: PE id %d out of range [0,%d)", r.PE, c.numPEs)
	}
	if c.forming[r.PE] != -1 {
		return 0, errors.Errorf("netfabric: PE %d registered twice in generation %d", r.PE, c.genIndex)
	}
	c.forming[r.PE] = r.Length
	c.arrived++
	myGen := c.genIndex

	if c.arrived == c.numPEs {
		want := c.forming[0]
		var genErr error
		for pe, n := range c.forming {
			if n != want {
				genErr = errors.Errorf("netfabric: symmetric buffer length mismatch: PE 0 has %d bytes, PE %d has %d", want, pe, n)
				break
			}
		}
		c.genErr = genErr
		c.forming = newForming(c.numPEs)
		c.arrived = 0
		c.genIndex++
		c.genCond.Broadcast()
	} else {
		for c.genIndex == myGen {
			c.genCond.Wait()
		}
	}
	if c.genErr != nil {
		return 0, c.genErr
	}
	return myGen, nil
}
