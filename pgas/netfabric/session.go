package netfabric

import (
	"encoding/binary"
	"io"
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/xtaci/smux"

	"github.com/xtaci/shreduce/pgas"
)

// identify sends this PE's id down a one-shot stream so the accepting side
// can file the session under the right PE in its sessions map; smux lets
// both client and server sides of a session open streams, so the dialer
// uses this to announce itself before the acceptor starts treating further
// streams as RMA requests.
func identify(sess *smux.Session, myPE int) error {
	stream, err := sess.OpenStream()
	if err != nil {
		return errors.Wrap(err, "netfabric: open identify stream")
	}
	defer stream.Close()
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(myPE))
	if _, err := stream.Write(buf[:]); err != nil {
		return errors.Wrap(err, "netfabric: send identify")
	}
	return nil
}

// acceptSession is the listener's onSession callback: the first stream on
// a freshly accepted session is always an identify stream, after which
// every further stream is one RMA request.
func (f *Fabric) acceptSession(sess *smux.Session) {
	stream, err := sess.AcceptStream()
	if err != nil {
		sess.Close()
		return
	}
	var buf [4]byte
	if _, err := io.ReadFull(stream, buf[:]); err != nil {
		stream.Close()
		sess.Close()
		return
	}
	stream.Close()
	remotePE := int(binary.BigEndian.Uint32(buf[:]))

	f.mu.Lock()
	f.sessions[remotePE] = sess
	f.mu.Unlock()

	f.serveSession(remotePE, sess)
}

// serveSession answers every RMA request arriving on sess until it closes.
func (f *Fabric) serveSession(remotePE int, sess *smux.Session) {
	for {
		stream, err := sess.AcceptStream()
		if err != nil {
			return
		}
		go f.serveRequest(stream)
	}
}

func (f *Fabric) serveRequest(stream io.ReadWriteCloser) {
	defer stream.Close()
	req, payload, err := readRequest(stream)
	if err != nil {
		return
	}

	buf, err := f.bufAt(pgas.Handle(req.handle))
	if err != nil {
		writeResponse(stream, responseHeader{status: 1}, nil)
		return
	}

	switch req.op {
	case opGet:
		out := make([]byte, req.length)
		copy(out, buf[req.off:int(req.off)+int(req.length)])
		writeResponse(stream, responseHeader{length: int32(len(out))}, out)
	case opPut:
		copy(buf[req.off:int(req.off)+len(payload)], payload)
		writeResponse(stream, responseHeader{}, nil)
	case opP:
		atomic.StoreInt64(cellPtr(buf, int(req.off)), req.value)
		writeResponse(stream, responseHeader{}, nil)
	case opAtomicAdd:
		prev := atomic.AddInt64(cellPtr(buf, int(req.off)), req.value) - req.value
		writeResponse(stream, responseHeader{value: prev}, nil)
	case opAtomicFetch:
		v := atomic.LoadInt64(cellPtr(buf, int(req.off)))
		writeResponse(stream, responseHeader{value: v}, nil)
	default:
		writeResponse(stream, responseHeader{status: 1}, nil)
	}
}

func spin() { runtime.Gosched() }
