// Package pgas is the PGAS transport the reduction algorithms in package
// reduce are written against, kept deliberately out of scope of the
// algorithms themselves. It states the contract as a Go interface so that
// algorithm code never depends on which backend actually moves the bytes —
// pgas/local backs the unit-test suite with an in-process simulation;
// pgas/netfabric backs cmd/shreduce-coord and cmd/shreduce-peer with a real
// multi-process transport.
package pgas

import "github.com/pkg/errors"

// Cmp is a wait_until comparison operator.
type Cmp int

const (
	CmpNE Cmp = iota // not-equal
	CmpGT             // greater-than
	CmpGE             // greater-or-equal
)

func (c Cmp) String() string {
	switch c {
	case CmpNE:
		return "!="
	case CmpGT:
		return ">"
	case CmpGE:
		return ">="
	default:
		return "?"
	}
}

// Handle names a symmetric allocation. All PEs that Register a buffer of
// the same length, in the same collective call order, receive the same
// Handle for it — mirroring a symmetric heap, where every PE's allocator
// hands out the same offset for the n-th collective allocation.
type Handle int

// ErrNotRegistered is returned by operations that name an unknown Handle.
var ErrNotRegistered = errors.New("pgas: handle not registered")

// Fabric is the one-sided RMA + remote-atomic contract consumed by package
// reduce. Every RMA method besides WaitUntil is non-blocking in
// the sense of never suspending the caller on another PE's progress; it may
// still block briefly on local fabric resources. WaitUntil is the only
// suspension point among them; Register, the collective allocation, blocks
// until every PE has made the matching call.
type Fabric interface {
	// MyPE is this process's global PE id.
	MyPE() int
	// NumPEs is the total number of PEs in the job (not the active set).
	NumPEs() int

	// Register declares a local byte buffer as symmetric. Every PE must
	// call Register the same number of times, with matching lengths, in
	// matching order; mismatched calls are a precondition violation
	// and manifest as a returned error here rather than a
	// silent miscompute, since registration is local-metadata work and
	// cheap to validate.
	Register(buf []byte) (Handle, error)

	// Get copies nbytes from targetPE's registered buffer at (h, off)
	// into local. len(local) is nbytes.
	Get(local []byte, h Handle, off int, targetPE int)
	// Put copies local into targetPE's registered buffer at (h, off).
	Put(h Handle, off int, local []byte, targetPE int)
	// P writes a single 64-bit word to targetPE's buffer at (h, off).
	P(h Handle, off int, value int64, targetPE int)
	// AtomicAdd adds delta to the 64-bit word at targetPE's (h, off).
	AtomicAdd(h Handle, off int, delta int64, targetPE int)
	// AtomicFetch reads the 64-bit word at pe's (h, off).
	AtomicFetch(h Handle, off int, pe int) int64

	// WaitUntil polls the CALLER's own registered buffer at (h, off) until
	// the 64-bit word there satisfies cmp against value, then returns the
	// observed value. Only a PE's own memory can be waited on; there is no
	// cross-PE suspension primitive.
	WaitUntil(h Handle, off int, cmp Cmp, value int64) int64

	// Fence orders every prior Put/P/AtomicAdd this PE issued to targetPE
	// before any subsequent traffic this PE sends to targetPE.
	Fence(targetPE int)
}
