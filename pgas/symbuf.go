package pgas

import (
	"github.com/xtaci/shreduce/internal/byteview"
)

// SymBuf is a symmetric buffer of T: a local slice plus the Handle the rest
// of the active set can reach it through. All of dest, source, pWrk and
// pSync in the public reduce API are SymBuf values (the
// "symmetric, caller-owned" buffers).
type SymBuf[T any] struct {
	Local  []T
	Handle Handle
}

// NewSymBuf registers local as a symmetric buffer on fab and wraps it. It
// must be called collectively: every PE in the job calls NewSymBuf (or
// Register directly) the same number of times, in the same order, with
// buffers of matching byte length.
func NewSymBuf[T any](fab Fabric, local []T) (SymBuf[T], error) {
	h, err := fab.Register(byteview.Bytes(local))
	if err != nil {
		return SymBuf[T]{}, err
	}
	return SymBuf[T]{Local: local, Handle: h}, nil
}

// Len is the number of T elements in the buffer.
func (b SymBuf[T]) Len() int { return len(b.Local) }

// Get copies n elements starting at elemOff from targetPE's copy of this
// symmetric buffer into dst.
func Get[T any](fab Fabric, dst []T, b SymBuf[T], elemOff, n int, targetPE int) {
	var zero T
	sz := sizeOf(zero)
	fab.Get(byteview.Bytes(dst[:n]), b.Handle, elemOff*sz, targetPE)
}

// Put copies src into targetPE's copy of this symmetric buffer, starting at
// elemOff.
func Put[T any](fab Fabric, b SymBuf[T], elemOff int, src []T, targetPE int) {
	var zero T
	sz := sizeOf(zero)
	fab.Put(b.Handle, elemOff*sz, byteview.Bytes(src), targetPE)
}

func sizeOf[T any](zero T) int {
	return len(byteview.Bytes([]T{zero}))
}
