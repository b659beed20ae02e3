package reduce

import (
	"github.com/xtaci/shreduce/internal/activeset"
	"github.com/xtaci/shreduce/internal/fold"
	"github.com/xtaci/shreduce/internal/psync"
	"github.com/xtaci/shreduce/pgas"
)

const (
	rabenseifnerExtraPreCell  = 0
	rabenseifnerExtraPostCell = 1
)

// block is a half-open element range [lo, hi) of the nreduce-length vector,
// the unit both the reduce-scatter and allgather phases operate on.
type block struct{ lo, hi int }

func (b block) len() int { return b.hi - b.lo }

// ToAllRabenseifner is reduce-scatter followed by allgather. It runs only
// on the largest power-of-two subset of the active set; extras and their
// sibling handshake at the start and end exactly as in rec_dbl.
//
// reduce-scatter halves its working block MSB-first over logP2sSize
// rounds, ending with each core PE owning a distinct 1/p2sSize slice fully
// reduced across the whole core; allgather then widens that slice back to
// each round's parent block LSB-first, the mirror image of the split order
// (halves may differ in length by one element), so the two phases never
// re-pair PEs that already exchanged data. Rounds are numbered
// 0..logP2sSize-1 and given disjoint cell ranges — reduce-scatter in
// [2, 2+logP2sSize), allgather in [2+logP2sSize, 2+2*logP2sSize) — sized
// off logP2sSize itself rather than the machine word width, so the two
// phases never alias a cell regardless of nreduce or word size.
func ToAllRabenseifner[T any](fab pgas.Fabric, as activeset.Set, dest, source pgas.SymBuf[T], nreduce int, pWrk pgas.SymBuf[T], pSync pgas.SymBuf[int64], op fold.Op[T]) error {
	_, logP2s := as.P2SSize()
	if err := precheck(as, nreduce, pSync.Local, psync.RabenseifnerSize(logP2s)); err != nil {
		return err
	}

	meAS := as.ActiveIndex(fab.MyPE())
	meP2s, isCore := as.ToP2S(meAS)

	if !isCore {
		siblingPE := as.PE(activeset.Sibling(meAS))
		pgas.PCell(fab, pSync, rabenseifnerExtraPreCell, psync.SyncValue+1, siblingPE)
		pgas.WaitUntilCell(fab, pSync, rabenseifnerExtraPostCell, pgas.CmpNE, psync.SyncValue)
		pgas.ResetCell(pSync, rabenseifnerExtraPostCell)
		return nil
	}

	hasExtra, extraPE := extraOf(as, meAS)

	work := make([]T, nreduce)
	if hasExtra {
		pgas.WaitUntilCell(fab, pSync, rabenseifnerExtraPreCell, pgas.CmpNE, psync.SyncValue)
		pgas.ResetCell(pSync, rabenseifnerExtraPreCell)
		staging := make([]T, nreduce)
		pgas.Get(fab, staging, source, 0, nreduce, extraPE)
		fold.Local(work, source.Local[:nreduce], staging, nreduce, op)
	} else {
		copy(work, source.Local[:nreduce])
	}
	copy(dest.Local[:nreduce], work)

	cur := block{0, nreduce}
	parents := make([]block, logP2s)
	for i := 0; i < logP2s; i++ {
		cell := 2 + i
		distance := 1 << uint(logP2s-1-i)
		peerPE := as.PE(as.FromP2S(meP2s ^ distance))

		parents[i] = cur
		mid := cur.lo + cur.len()/2
		var mine block
		if meP2s&distance == 0 {
			mine = block{cur.lo, mid}
		} else {
			mine = block{mid, cur.hi}
		}

		// A single mutual signal establishes that both sides' dest is the
		// fully combined value for cur before either reads from the
		// other: every fold this round only ever overwrites the caller's
		// own mine range, which is exactly the range the peer does NOT
		// read, so no further handshake is needed once this fires.
		pgas.PCell(fab, pSync, cell, psync.SyncValue+1, peerPE)
		pgas.WaitUntilCell(fab, pSync, cell, pgas.CmpGT, psync.SyncValue)
		pgas.ResetCell(pSync, cell)

		staging := make([]T, mine.len())
		pgas.Get(fab, staging, dest, mine.lo, mine.len(), peerPE)
		fold.Local(dest.Local[mine.lo:mine.hi], dest.Local[mine.lo:mine.hi], staging, mine.len(), op)

		cur = mine
	}

	for i := 0; i < logP2s; i++ {
		cell := 2 + logP2s + i
		distance := 1 << uint(i)
		peerPE := as.PE(as.FromP2S(meP2s ^ distance))

		// Each side writes its own slice into the peer's buffer at that
		// slice's absolute position, which is exactly the half of this
		// round's parent block the peer does not hold yet: the two halves
		// never overlap, so the two directions of this exchange never race
		// each other's write.
		pgas.Put(fab, dest, cur.lo, dest.Local[cur.lo:cur.hi], peerPE)
		fab.Fence(peerPE)
		pgas.PCell(fab, pSync, cell, psync.SyncValue+1, peerPE)
		pgas.WaitUntilCell(fab, pSync, cell, pgas.CmpGT, psync.SyncValue)
		pgas.ResetCell(pSync, cell)

		cur = parents[logP2s-1-i]
	}

	if hasExtra {
		pgas.Put(fab, dest, 0, dest.Local[:nreduce], extraPE)
		fab.Fence(extraPE)
		pgas.PCell(fab, pSync, rabenseifnerExtraPostCell, psync.SyncValue+1, extraPE)
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
