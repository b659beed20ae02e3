package netfabric

import (
	"encoding/json"
	"net"
	"sync"

	"github.com/pkg/errors"
)

// coordClient is a peer's persistent connection to the Coordinator: one
// hello at startup, then one registerMsg round trip per collective
// allocation for the lifetime of the job.
type coordClient struct {
	conn net.Conn
	enc  *json.Encoder
	dec  *json.Decoder
	mu   sync.Mutex
}

func dialCoordinator(addr string) (*coordClient, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "netfabric: dial coordinator %s", addr)
	}
	return &coordClient{conn: conn, enc: json.NewEncoder(conn), dec: json.NewDecoder(conn)}, nil
}

func (c *coordClient) hello(myPE int, myAddr string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.enc.Encode(helloMsg{PE: myPE, Addr: myAddr}); err != nil {
		return nil, errors.Wrap(err, "netfabric: send hello")
	}
	var ack helloAck
	if err := c.dec.Decode(&ack); err != nil {
		return nil, errors.Wrap(err, "netfabric: read hello ack")
	}
	return ack.Peers, nil
}

func (c *coordClient) register(myPE, length int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.enc.Encode(registerMsg{PE: myPE, Length: length}); err != nil {
		return 0, errors.Wrap(err, "netfabric: send register")
	}
	var ack registerAck
	if err := c.dec.Decode(&ack); err != nil {
		return 0, errors.Wrap(err, "netfabric: read register ack")
	}
	if ack.Err != "" {
		return 0, errors.New(ack.Err)
	}
	return ack.Handle, nil
}

func (c *coordClient) Close() error { return c.conn.Close() }
