package netfabric

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Every peer-to-peer session carries one logical request/response stream
// per outstanding RMA call. A frame's header is fixed width so both ends
// can read it with a single io.ReadFull before learning the payload length.
type opcode uint8

const (
	opGet opcode = iota
	opPut
	opP
	opAtomicAdd
	opAtomicFetch
)

const headerSize = 1 + 4 + 4 + 4 + 8 // opcode, handle, off, payloadLen, value

type requestHeader struct {
	op      opcode
	handle  int32
	off     int32
	length  int32 // payload length for Get/Put, unused otherwise
	value   int64 // P's value, AtomicAdd's delta
}

func writeRequest(w io.Writer, h requestHeader, payload []byte) error {
	var buf [headerSize]byte
	buf[0] = byte(h.op)
	binary.BigEndian.PutUint32(buf[1:5], uint32(h.handle))
	binary.BigEndian.PutUint32(buf[5:9], uint32(h.off))
	binary.BigEndian.PutUint32(buf[9:13], uint32(h.length))
	binary.BigEndian.PutUint64(buf[13:21], uint64(h.value))
	if _, err := w.Write(buf[:]); err != nil {
		return errors.WithStack(err)
	}
	if len(payload) > 0 {
		if _, err := w.Write(payload); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func readRequest(r io.Reader) (requestHeader, []byte, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return requestHeader{}, nil, errors.WithStack(err)
	}
	h := requestHeader{
		op:     opcode(buf[0]),
		handle: int32(binary.BigEndian.Uint32(buf[1:5])),
		off:    int32(binary.BigEndian.Uint32(buf[5:9])),
		length: int32(binary.BigEndian.Uint32(buf[9:13])),
		value:  int64(binary.BigEndian.Uint64(buf[13:21])),
	}
	var payload []byte
	if h.op == opPut && h.length > 0 {
		payload = make([]byte, h.length)
		if _, err := io.ReadFull(r, payload); err != nil {
			return requestHeader{}, nil, errors.WithStack(err)
		}
	}
	return h, payload, nil
}

// responseHeader carries a Get's returned bytes or an AtomicFetch/
// AtomicAdd's returned int64 (for AtomicAdd, the pre-update value, unused
// by pgas.Fabric but cheap to report and useful for diagnostics); a Put or
// P response carries neither.
type responseHeader struct {
	status byte // 0 = ok, nonzero = error
	length int32
	value  int64
}

const responseHeaderSize = 1 + 4 + 8

func writeResponse(w io.Writer, h responseHeader, payload []byte) error {
	var buf [responseHeaderSize]byte
	buf[0] = h.status
	binary.BigEndian.PutUint32(buf[1:5], uint32(h.length))
	binary.BigEndian.PutUint64(buf[5:13], uint64(h.value))
	if _, err := w.Write(buf[:]); err != nil {
		return errors.WithStack(err)
	}
	if len(payload) > 0 {
		if _, err := w.Write(payload); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func readResponse(r io.Reader) (responseHeader, []byte, error) {
	var buf [responseHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return responseHeader{}, nil, errors.WithStack(err)
	}
	h := responseHeader{
		status: buf[0],
		length: int32(binary.BigEndian.Uint32(buf[1:5])),
		value:  int64(binary.BigEndian.Uint64(buf[5:13])),
	}
	var payload []byte
	if h.length > 0 {
		payload = make([]byte, h.length)
		if _, err := io.ReadFull(r, payload); err != nil {
			return responseHeader{}, nil, errors.WithStack(err)
		}
	}
	return h, payload, nil
}
