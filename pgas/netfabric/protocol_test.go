package netfabric

import (
	"bytes"
	"testing"
)

func TestRequestRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		req     requestHeader
		payload []byte
	}{
		{"get", requestHeader{op: opGet, handle: 3, off: 16, length: 40}, nil},
		{"put", requestHeader{op: opPut, handle: 1, off: 0, length: 8}, []byte("12345678")},
		{"p", requestHeader{op: opP, handle: 2, off: 8, value: 99}, nil},
		{"atomicAdd", requestHeader{op: opAtomicAdd, handle: 2, off: 8, value: -5}, nil},
		{"atomicFetch", requestHeader{op: opAtomicFetch, handle: 0, off: 0}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeRequest(&buf, c.req, c.payload); err != nil {
				t.Fatalf("writeRequest: %v", err)
			}
			got, payload, err := readRequest(&buf)
			if err != nil {
				t.Fatalf("readRequest: %v", err)
			}
			if got != c.req {
				t.Fatalf("got %+v, want %+v", got, c.req)
			}
			if c.req.op == opPut {
				if !bytes.Equal(payload, c.payload) {
					t.Fatalf("payload: got %q, want %q", payload, c.payload)
				}
			} else if len(payload) != 0 {
				t.Fatalf("unexpected payload for op %d: %q", c.req.op, payload)
			}
		})
	}
}

func TestResponseRoundTrip(t *testing.T) {
	payload := []byte("hello-world-payload")
	resp := responseHeader{status: 0, length: int32(len(payload)), value: 42}

	var buf bytes.Buffer
	if err := writeResponse(&buf, resp, payload); err != nil {
		t.Fatalf("writeResponse: %v", err)
	}
	got, gotPayload, err := readResponse(&buf)
	if err != nil {
		t.Fatalf("readResponse: %v", err)
	}
	if got != resp {
		t.Fatalf("got %+v, want %+v", got, resp)
	}
	if !bytes.Equal(gotPayload, payload) {
		t.Fatalf("payload: got %q, want %q", gotPayload, payload)
	}
}

func TestResponseErrorStatusCarriesNoPayload(t *testing.T) {
	var buf bytes.Buffer
	if err := writeResponse(&buf, responseHeader{status: 1}, nil); err != nil {
		t.Fatalf("writeResponse: %v", err)
	}
	got, payload, err := readResponse(&buf)
	if err != nil {
		t.Fatalf("readResponse: %v", err)
	}
	if got.status != 1 {
		t.Fatalf("status = %d, want 1", got.status)
	}
	if len(payload) != 0 {
		t.Fatalf("unexpected payload: %q", payload)
	}
}
