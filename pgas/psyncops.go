package pgas

import "github.com/xtaci/shreduce/internal/psync"

// Helpers that address a pSync SymBuf[int64] by cell index rather than byte
// offset, since every algorithm in package reduce talks about "pSync[i]",
// never raw bytes.

const cellSize = 8 // sizeof(int64)

// PCell is the single-word p() write, addressed by cell index.
func PCell(fab Fabric, b SymBuf[int64], cell int, value int64, targetPE int) {
	fab.P(b.Handle, cell*cellSize, value, targetPE)
}

// AtomicAddCell is atomic_add, addressed by cell index.
func AtomicAddCell(fab Fabric, b SymBuf[int64], cell int, delta int64, targetPE int) {
	fab.AtomicAdd(b.Handle, cell*cellSize, delta, targetPE)
}

// AtomicFetchCell is atomic_fetch, addressed by cell index.
func AtomicFetchCell(fab Fabric, b SymBuf[int64], cell int, pe int) int64 {
	return fab.AtomicFetch(b.Handle, cell*cellSize, pe)
}

// WaitUntilCell polls the caller's own pSync[cell] until cmp holds against
// value, returning the observed value.
func WaitUntilCell(fab Fabric, b SymBuf[int64], cell int, cmp Cmp, value int64) int64 {
	return fab.WaitUntil(b.Handle, cell*cellSize, cmp, value)
}

// ResetCell restores pSync[cell] to psync.SyncValue by writing it locally
// and locally only: the quiescent-on-exit invariant is restored by
// the round-owner, who always owns the cell it last observed, so a local
// write suffices — no peer is still armed to race it.
func ResetCell(b SymBuf[int64], cell int) {
	b.Local[cell] = psync.SyncValue
}
