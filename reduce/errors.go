// Package reduce is the core of the library: the four distributed
// reduction algorithms (linear, binomial tree, recursive doubling and
// Rabenseifner reduce-scatter/allgather), their synchronisation protocols,
// and the per-(type,op) public entry points generated in ops_gen.go.
package reduce

import "github.com/pkg/errors"

// Precondition violations this package can detect cheaply. Everything else
// a caller might get wrong (divergent PE_size across the active set, a
// non-quiescent pSync, aliasing rules broken in a way that isn't simple
// dest==source identity) is undefined behaviour that manifests as deadlock
// or silent miscompute rather than an error return — there is no
// wire-level error channel to report it through.
var (
	// ErrInvalidActiveSet is returned when the active-set triple fails
	// validation.
	ErrInvalidActiveSet = errors.New("reduce: invalid active set")
	// ErrPSyncTooSmall is returned when the caller's pSync is shorter
	// than the algorithm's sizing contract.
	ErrPSyncTooSmall = errors.New("reduce: pSync array smaller than required")
	// ErrPSyncNotQuiescent names a pSync that is not all SYNC_VALUE on
	// entry. No entry point returns it: precheck does not inspect pSync
	// contents, since a peer's signal may legitimately arrive first.
	ErrPSyncNotQuiescent = errors.New("reduce: pSync is not quiescent on entry")
	// ErrNReduceNonPositive is returned for nreduce <= 0.
	ErrNReduceNonPositive = errors.New("reduce: nreduce must be positive")
)
