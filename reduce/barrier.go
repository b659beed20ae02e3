package reduce

import (
	"github.com/xtaci/shreduce/internal/activeset"
	"github.com/xtaci/shreduce/internal/psync"
	"github.com/xtaci/shreduce/pgas"
)

// LinearBarrier is a centralised rendezvous: every non-root PE signals
// arrival to active-set index 0 with a single atomic_add, the root waits
// for all of them, then releases each PE individually. On return the
// single pSync cell it used is back at SYNC_VALUE on every PE.
func LinearBarrier(fab pgas.Fabric, as activeset.Set, pSync pgas.SymBuf[int64], cell int) {
	meAS := as.ActiveIndex(fab.MyPE())
	rootPE := as.PE(0)

	if meAS != 0 {
		pgas.AtomicAddCell(fab, pSync, cell, 1, rootPE)
		pgas.WaitUntilCell(fab, pSync, cell, pgas.CmpNE, psync.SyncValue)
		pgas.ResetCell(pSync, cell)
		return
	}

	if as.PESize > 1 {
		pgas.WaitUntilCell(fab, pSync, cell, pgas.CmpGE, int64(as.PESize-1))
	}
	pgas.ResetCell(pSync, cell)
	for i := 1; i < as.PESize; i++ {
		pgas.PCell(fab, pSync, cell, psync.SyncValue+1, as.PE(i))
	}
}
