package reduce

import (
	"github.com/xtaci/shreduce/internal/activeset"
	"github.com/xtaci/shreduce/internal/fold"
	"github.com/xtaci/shreduce/internal/psync"
	"github.com/xtaci/shreduce/pgas"
)

// ToAllLinear is the linear reducer: two barriers bracket a centralised
// fold at active-set index 0, followed by a linear broadcast. The root
// folds each peer's contribution directly into dest as it arrives, rather
// than through a separate scratch buffer copied to dest only at the end.
func ToAllLinear[T any](fab pgas.Fabric, as activeset.Set, dest, source pgas.SymBuf[T], nreduce int, pWrk pgas.SymBuf[T], pSync pgas.SymBuf[int64], op fold.Op[T]) error {
	if err := precheck(as, nreduce, pSync.Local, psync.LinearSize()); err != nil {
		return err
	}

	meAS := as.ActiveIndex(fab.MyPE())

	LinearBarrier(fab, as, pSync, 0)

	if meAS == 0 {
		copy(dest.Local[:nreduce], source.Local[:nreduce])
		staging := make([]T, nreduce)
		for i := 1; i < as.PESize; i++ {
			peerPE := as.PE(i)
			pgas.Get(fab, staging, source, 0, nreduce, peerPE)
			fold.Local(dest.Local, dest.Local, staging, nreduce, op)
		}
	}

	LinearBarrier(fab, as, pSync, 0)
	BroadcastLinear(fab, as, dest, nreduce, 0, pSync, 1)
	return nil
}
