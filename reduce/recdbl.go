package reduce

import (
	"github.com/xtaci/shreduce/internal/activeset"
	"github.com/xtaci/shreduce/internal/fold"
	"github.com/xtaci/shreduce/internal/psync"
	"github.com/xtaci/shreduce/pgas"
)

const recDblExtraCell = 0

// ToAllRecDbl is recursive doubling. It runs only on the largest
// power-of-two subset of the active set; PEs outside that subset ("extras")
// and their designated sibling perform a pre- and post-round handshake to
// fold the extra's contribution in and deliver the final result back out.
//
// tmp is function-scoped Go heap scratch that is never returned or stored
// anywhere outside this call, so it needs no explicit release.
func ToAllRecDbl[T any](fab pgas.Fabric, as activeset.Set, dest, source pgas.SymBuf[T], nreduce int, pWrk pgas.SymBuf[T], pSync pgas.SymBuf[int64], op fold.Op[T]) error {
	p2sSize, logP2s := as.P2SSize()
	if err := precheck(as, nreduce, pSync.Local, psync.RecDblSize(logP2s)); err != nil {
		return err
	}

	meAS := as.ActiveIndex(fab.MyPE())
	meP2s, isCore := as.ToP2S(meAS)

	if !isCore {
		siblingPE := as.PE(activeset.Sibling(meAS))
		pgas.PCell(fab, pSync, recDblExtraCell, psync.SyncValue+1, siblingPE)
		pgas.WaitUntilCell(fab, pSync, recDblExtraCell, pgas.CmpNE, psync.SyncValue)
		pgas.ResetCell(pSync, recDblExtraCell)
		return nil
	}

	hasExtra, extraPE := extraOf(as, meAS)

	tmp := make([]T, nreduce)
	if hasExtra {
		pgas.WaitUntilCell(fab, pSync, recDblExtraCell, pgas.CmpNE, psync.SyncValue)
		pgas.ResetCell(pSync, recDblExtraCell)
		staging := make([]T, nreduce)
		pgas.Get(fab, staging, source, 0, nreduce, extraPE)
		fold.Local(tmp, source.Local[:nreduce], staging, nreduce, op)
	} else {
		copy(tmp, source.Local[:nreduce])
	}

	for i := 0; i < logP2s; i++ {
		cell := i + 1
		peerAS := as.FromP2S(meP2s ^ (1 << uint(i)))
		peerPE := as.PE(peerAS)

		pgas.PCell(fab, pSync, cell, psync.SyncValue+1, peerPE)
		pgas.WaitUntilCell(fab, pSync, cell, pgas.CmpGT, psync.SyncValue)
		pgas.Put(fab, dest, 0, tmp[:nreduce], peerPE)
		fab.Fence(peerPE)
		pgas.PCell(fab, pSync, cell, psync.SyncValue+2, peerPE)
		pgas.WaitUntilCell(fab, pSync, cell, pgas.CmpGT, psync.SyncValue+1)
		fold.Local(tmp, tmp, dest.Local, nreduce, op)
		pgas.ResetCell(pSync, cell)
	}
	_ = p2sSize

	copy(dest.Local[:nreduce], tmp[:nreduce])

	if hasExtra {
		pgas.Put(fab, dest, 0, dest.Local[:nreduce], extraPE)
		fab.Fence(extraPE)
		pgas.PCell(fab, pSync, recDblExtraCell, psync.SyncValue+1, extraPE)
	}
	return nil
}

// extraOf reports whether the core PE at active-set index meAS has an
// attached extra (the PE at meAS+1, if that index lies outside the
// power-of-two subset), and that extra's global PE id.
func extraOf(as activeset.Set, meAS int) (bool, int) {
	extraAS := meAS + 1
	if extraAS >= as.PESize {
		return false, 0
	}
	if _, ok := as.ToP2S(extraAS); ok {
		return false, 0
	}
	return true, as.PE(extraAS)
}
