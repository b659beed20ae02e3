// Package activeset implements the pure index arithmetic underlying every
// collective: mapping a global PE id to its position within an active set,
// and mapping an active set onto its largest power-of-two "core" subset for
// rec_dbl and rabenseifner.
package activeset

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Set describes the participating PEs as {PEStart + i*2^LogPEStride | 0 <= i < PESize}.
type Set struct {
	PEStart     int
	LogPEStride int
	PESize      int
}

// Validate rejects active sets that no algorithm here can run over.
func (s Set) Validate() error {
	if s.PESize < 1 {
		return errors.Errorf("activeset: PE_size must be >= 1, got %d", s.PESize)
	}
	if s.LogPEStride < 0 {
		return errors.Errorf("activeset: logPE_stride must be >= 0, got %d", s.LogPEStride)
	}
	if s.PEStart < 0 {
		return errors.Errorf("activeset: PE_start must be >= 0, got %d", s.PEStart)
	}
	return nil
}

// Stride is 2^LogPEStride.
func (s Set) Stride() int { return 1 << uint(s.LogPEStride) }

// ActiveIndex returns myPE's position in [0, PESize) within the active set.
func (s Set) ActiveIndex(myPE int) int {
	return (myPE - s.PEStart) / s.Stride()
}

// PE maps an active-set index back to a global PE id.
func (s Set) PE(activeIdx int) int {
	return s.PEStart + activeIdx*s.Stride()
}

// P2SSize returns the size of the largest power-of-two subset of the active
// set, and its base-2 logarithm.
func (s Set) P2SSize() (p2sSize, logP2sSize int) {
	logP2sSize = bits.Len(uint(s.PESize)) - 1
	p2sSize = 1 << uint(logP2sSize)
	return
}

// ToP2S maps an active-set index to its power-of-two-subset index, per the
// one-to-one core mapping. ok is false for "extra" PEs, which have no p2s
// index of their own.
func (s Set) ToP2S(activeIdx int) (p2s int, ok bool) {
	p2sSize, _ := s.P2SSize()
	meP2s := activeIdx * p2sSize / s.PESize
	// ceil(meP2s * PESize / p2sSize)
	ceil := (meP2s*s.PESize + p2sSize - 1) / p2sSize
	if ceil != activeIdx {
		return -1, false
	}
	return meP2s, true
}

// FromP2S maps a power-of-two-subset index back to its active-set index.
func (s Set) FromP2S(p2s int) int {
	p2sSize, _ := s.P2SSize()
	return (p2s*s.PESize + p2sSize - 1) / p2sSize
}

// Sibling returns the core active-set index that is the designated sibling
// of the extra at active-set index extraIdx: the PE immediately before it
// in active-set order.
func Sibling(extraIdx int) int {
	return extraIdx - 1
}

// LowestSetBit returns x & -x: the least significant set bit of x, used by
// the binomial reducer to pick the next child to drain from a pending mask.
func LowestSetBit(x int64) int64 {
	return x & (-x)
}
