package reduce

import (
	"math/bits"

	"github.com/xtaci/shreduce/internal/activeset"
	"github.com/xtaci/shreduce/internal/psync"
	"github.com/xtaci/shreduce/pgas"
)

// BroadcastLinear fans a root's dest out to every other active-set member
// by direct point-to-point puts, used as the final phase of the linear
// reducer.
func BroadcastLinear[T any](fab pgas.Fabric, as activeset.Set, dest pgas.SymBuf[T], n, rootActiveIdx int, pSync pgas.SymBuf[int64], cell int) {
	meAS := as.ActiveIndex(fab.MyPE())
	if meAS == rootActiveIdx {
		for i := 0; i < as.PESize; i++ {
			if i == rootActiveIdx {
				continue
			}
			peerPE := as.PE(i)
			pgas.Put(fab, dest, 0, dest.Local[:n], peerPE)
			fab.Fence(peerPE)
			pgas.PCell(fab, pSync, cell, psync.SyncValue+1, peerPE)
		}
		return
	}
	pgas.WaitUntilCell(fab, pSync, cell, pgas.CmpNE, psync.SyncValue)
	pgas.ResetCell(pSync, cell)
}

// BroadcastBinomialTree fans a root's dest out in ceil(log2(PE_size))
// rounds using a binomial tree rooted at rootActiveIdx, tolerant of
// non-power-of-two PE_size. It needs one pSync cell per round, starting at
// baseCell.
func BroadcastBinomialTree[T any](fab pgas.Fabric, as activeset.Set, dest pgas.SymBuf[T], n, rootActiveIdx int, pSync pgas.SymBuf[int64], baseCell int) {
	rel := (as.ActiveIndex(fab.MyPE()) - rootActiveIdx + as.PESize) % as.PESize
	rounds := 0
	if as.PESize > 1 {
		rounds = bits.Len(uint(as.PESize - 1))
	}

	for r := 0; r < rounds; r++ {
		d := 1 << uint(r)
		cell := baseCell + r
		switch {
		case rel < d:
			target := rel + d
			if target >= as.PESize {
				continue
			}
			targetAS := (rootActiveIdx + target) % as.PESize
			targetPE := as.PE(targetAS)
			pgas.Put(fab, dest, 0, dest.Local[:n], targetPE)
			fab.Fence(targetPE)
			pgas.PCell(fab, pSync, cell, psync.SyncValue+1, targetPE)
		case rel < 2*d:
			pgas.WaitUntilCell(fab, pSync, cell, pgas.CmpNE, psync.SyncValue)
			pgas.ResetCell(pSync, cell)
		}
	}
}
