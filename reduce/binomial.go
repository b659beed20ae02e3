package reduce

import (
	"math/bits"

	"github.com/xtaci/shreduce/internal/activeset"
	"github.com/xtaci/shreduce/internal/fold"
	"github.com/xtaci/shreduce/internal/psync"
	"github.com/xtaci/shreduce/pgas"
)

const (
	binomialBitmaskCell = 0
	binomialBarrierCell = 1
	binomialBcastBase   = 2
)

// ToAllBinomial is the up-tree binomial reducer. Children signal their
// parent with a single atomic_add of a distinct power-of-two bit; since a
// binomial tree gives every child of a given parent a unique bit position,
// the sum the parent observes in pSync[0] equals the OR of every child
// that has arrived so far, with no ordering requirement between concurrent
// children.
func ToAllBinomial[T any](fab pgas.Fabric, as activeset.Set, dest, source pgas.SymBuf[T], nreduce int, pWrk pgas.SymBuf[T], pSync pgas.SymBuf[int64], op fold.Op[T]) error {
	if err := precheck(as, nreduce, pSync.Local, psync.BinomialSize()); err != nil {
		return err
	}

	meAS := as.ActiveIndex(fab.MyPE())

	if &dest.Local[0] != &source.Local[0] {
		copy(dest.Local[:nreduce], source.Local[:nreduce])
	}

	toReceive := childMask(meAS, as.PESize)
	staging := make([]T, nreduce)

	var observed int64
	for toReceive != 0 {
		observed = pgas.WaitUntilCell(fab, pSync, binomialBitmaskCell, pgas.CmpNE, observed)
		available := observed & toReceive
		for available != 0 {
			bit := activeset.LowestSetBit(available)
			childAS := meAS | int(bit)
			childPE := as.PE(childAS)
			pgas.Get(fab, staging, dest, 0, nreduce, childPE)
			fold.Local(dest.Local, dest.Local, staging, nreduce, op)
			toReceive &^= bit
			available &^= bit
		}
	}
	pgas.ResetCell(pSync, binomialBitmaskCell)

	if meAS != 0 {
		parentAS := meAS & (meAS - 1)
		bit := int64(meAS ^ parentAS)
		// The child's own dest is already stable locally before this
		// notification is posted, so no fence is needed here: the
		// parent reads dest with a Get, not via a put this PE issues.
		pgas.AtomicAddCell(fab, pSync, binomialBitmaskCell, bit, as.PE(parentAS))
	}

	LinearBarrier(fab, as, pSync, binomialBarrierCell)
	BroadcastBinomialTree(fab, as, dest, nreduce, 0, pSync, binomialBcastBase)
	return nil
}

// childMask computes to_receive: the set of bit positions k below meAS's
// lowest set bit (every k when meAS is 0) such that meAS|(1<<k) names a
// valid active-set index. These are exactly the indices c whose parent
// c&(c-1) is meAS.
func childMask(meAS, peSize int) int64 {
	var mask int64
	maxBit := bits.Len(uint(peSize))
	for k := 0; k < maxBit; k++ {
		if meAS&(1<<uint(k)) != 0 {
			break
		}
		if meAS|(1<<uint(k)) < peSize {
			mask |= 1 << uint(k)
		}
	}
	return mask
}
