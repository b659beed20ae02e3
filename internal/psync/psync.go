// Package psync names the lifecycle states of a pSync cell, defines the
// quiescent wire value SYNC_VALUE, and carries the pSync sizing contract
// for each algorithm.
package psync

import "github.com/pkg/errors"

// SyncValue is the caller-supplied quiescent value for every pSync cell,
// and the value every cell must hold again once a collective returns.
const SyncValue int64 = 0

// State names the lifecycle of a single pSync cell, independent of which
// integer is on the wire for it. The protocols in package reduce (barrier,
// binomial bitmask, rec_dbl handshake, rabenseifner rounds) do not use
// State: they write and compare the integer wire values directly
// (SyncValue, SyncValue+1, SyncValue+2, or a child bitmask).
type State int

const (
	// Quiescent is the cell's value before and after every collective.
	Quiescent State = iota
	// Armed means a peer has signalled it is ready to send or receive.
	Armed
	// DataReady means the payload transfer preceding this signal has completed.
	DataReady
	// Done means the round that owns this cell has been fully drained.
	Done
)

// Validate checks that every cell is at SyncValue, the precondition every
// pSync array passed into a collective must satisfy on entry.
func Validate(pSync []int64) error {
	for i, v := range pSync {
		if v != SyncValue {
			return errors.Errorf("psync: cell %d is %d, want quiescent value %d", i, v, SyncValue)
		}
	}
	return nil
}

// LinearSize is the pSync cell count the linear reducer needs: one for its
// bracketing barrier, one for the trailing linear broadcast.
func LinearSize() int { return 2 }

// BinomialSize is the pSync cell count the binomial reducer needs: one for
// the up-tree bitmask, plus a linear barrier and a binomial broadcast.
func BinomialSize() int { return 1 + 1 + BroadcastBinomialSize() }

// BroadcastBinomialSize is the cell count broadcast8_binomial_tree needs on
// its own: one per level of the tree, sized generously for any PE_size this
// library accepts (64 covers PE_size up to 2^64).
func BroadcastBinomialSize() int { return 64 }

// RecDblSize is the pSync cell count recursive doubling needs: one for the
// extras/sibling pre-round handshake, plus one per exchange round.
func RecDblSize(logP2sSize int) int { return logP2sSize + 1 }

// RabenseifnerSize is the pSync cell count Rabenseifner needs: two for the
// extras pre- and post-phase, logP2sSize for the reduce-scatter, logP2sSize for
// the allgather (numbered from logP2sSize+2 per the REDESIGN FLAG so the
// two phases never alias a cell).
func RabenseifnerSize(logP2sSize int) int { return 2*logP2sSize + 2 }
