package reduce

import (
	"sync"
	"testing"

	"github.com/xtaci/shreduce/internal/activeset"
	"github.com/xtaci/shreduce/internal/fold"
	"github.com/xtaci/shreduce/internal/psync"
	"github.com/xtaci/shreduce/pgas"
	"github.com/xtaci/shreduce/pgas/local"
)

// peerFabric is everything one simulated PE needs to run a collective: its
// pgas.Fabric handle and its own view of every symmetric buffer.
type peerFabric struct {
	fab    pgas.Fabric
	source pgas.SymBuf[int32]
	dest   pgas.SymBuf[int32]
	pWrk   pgas.SymBuf[int32]
	pSync  pgas.SymBuf[int64]
}

// runCollective registers one set of symmetric buffers per PE and calls fn
// on every PE concurrently, collecting each goroutine's error.
func runCollective(t *testing.T, numPEs, nreduce, pSyncLen int, seed func(peID int) []int32, fn func(pf peerFabric) error) [][]int32 {
	t.Helper()
	reg := local.NewRegistry(numPEs)

	peers := make([]peerFabric, numPEs)
	var wg sync.WaitGroup
	wg.Add(numPEs)
	for pe := 0; pe < numPEs; pe++ {
		go func(pe int) {
			defer wg.Done()
			fab := local.New(reg, pe)
			source := seed(pe)
			dest := make([]int32, nreduce)
			pWrk := make([]int32, nreduce)
			pSync := make([]int64, pSyncLen)

			sb, err := pgas.NewSymBuf(fab, source)
			if err != nil {
				t.Errorf("PE %d NewSymBuf(source): %v", pe, err)
				return
			}
			db, err := pgas.NewSymBuf(fab, dest)
			if err != nil {
				t.Errorf("PE %d NewSymBuf(dest): %v", pe, err)
				return
			}
			wb, err := pgas.NewSymBuf(fab, pWrk)
			if err != nil {
				t.Errorf("PE %d NewSymBuf(pWrk): %v", pe, err)
				return
			}
			psb, err := pgas.NewSymBuf(fab, pSync)
			if err != nil {
				t.Errorf("PE %d NewSymBuf(pSync): %v", pe, err)
				return
			}
			peers[pe] = peerFabric{fab: fab, source: sb, dest: db, pWrk: wb, pSync: psb}
		}(pe)
	}
	wg.Wait()

	wg.Add(numPEs)
	errs := make([]error, numPEs)
	for pe := 0; pe < numPEs; pe++ {
		go func(pe int) {
			defer wg.Done()
			errs[pe] = fn(peers[pe])
		}(pe)
	}
	wg.Wait()

	for pe, err := range errs {
		if err != nil {
			t.Fatalf("PE %d collective returned error: %v", pe, err)
		}
	}

	out := make([][]int32, numPEs)
	for pe := range peers {
		out[pe] = peers[pe].dest.Local
	}
	return out
}

func expectedSum(numPEs int) int32 {
	var want int32
	for i := 0; i < numPEs; i++ {
		want += int32(i + 1)
	}
	return want
}

func seedIota(pe int) []int32 {
	return []int32{int32(pe + 1), int32(pe+1) * 10}
}

func assertUniformSum(t *testing.T, got [][]int32, nreduce int, numPEs int) {
	t.Helper()
	wantBase := expectedSum(numPEs)
	for pe, row := range got {
		for i := 0; i < nreduce; i++ {
			want := wantBase
			if i == 1 {
				want = wantBase * 10
			}
			if row[i] != want {
				t.Fatalf("PE %d dest[%d] = %d, want %d", pe, i, row[i], want)
			}
		}
	}
}

func TestToAllLinear(t *testing.T) {
	const numPEs = 5
	got := runCollective(t, numPEs, 2, psync.LinearSize(), seedIota, func(pf peerFabric) error {
		as := activeset.Set{PEStart: 0, LogPEStride: 0, PESize: numPEs}
		return ToAllLinear(pf.fab, as, pf.dest, pf.source, 2, pf.pWrk, pf.pSync, fold.Sum[int32]())
	})
	assertUniformSum(t, got, 2, numPEs)
}

func TestToAllBinomialPowerOfTwo(t *testing.T) {
	const numPEs = 8
	got := runCollective(t, numPEs, 2, psync.BinomialSize(), seedIota, func(pf peerFabric) error {
		as := activeset.Set{PEStart: 0, LogPEStride: 0, PESize: numPEs}
		return ToAllBinomial(pf.fab, as, pf.dest, pf.source, 2, pf.pWrk, pf.pSync, fold.Sum[int32]())
	})
	assertUniformSum(t, got, 2, numPEs)
}

func TestToAllBinomialNonPowerOfTwo(t *testing.T) {
	const numPEs = 6
	got := runCollective(t, numPEs, 2, psync.BinomialSize(), seedIota, func(pf peerFabric) error {
		as := activeset.Set{PEStart: 0, LogPEStride: 0, PESize: numPEs}
		return ToAllBinomial(pf.fab, as, pf.dest, pf.source, 2, pf.pWrk, pf.pSync, fold.Sum[int32]())
	})
	assertUniformSum(t, got, 2, numPEs)
}

func TestToAllRecDblPowerOfTwo(t *testing.T) {
	const numPEs = 4
	got := runCollective(t, numPEs, 3, psync.RecDblSize(2), seedIota3, func(pf peerFabric) error {
		as := activeset.Set{PEStart: 0, LogPEStride: 0, PESize: numPEs}
		return ToAllRecDbl(pf.fab, as, pf.dest, pf.source, 3, pf.pWrk, pf.pSync, fold.Sum[int32]())
	})
	assertUniformSum3(t, got, numPEs)
}

func TestToAllRecDblWithExtras(t *testing.T) {
	const numPEs = 5 // p2sSize=4, one extra
	got := runCollective(t, numPEs, 3, psync.RecDblSize(2), seedIota3, func(pf peerFabric) error {
		as := activeset.Set{PEStart: 0, LogPEStride: 0, PESize: numPEs}
		return ToAllRecDbl(pf.fab, as, pf.dest, pf.source, 3, pf.pWrk, pf.pSync, fold.Sum[int32]())
	})
	assertUniformSum3(t, got, numPEs)
}

func TestToAllRabenseifnerPowerOfTwo(t *testing.T) {
	const numPEs = 4
	got := runCollective(t, numPEs, 4, psync.RabenseifnerSize(2), seedIota4, func(pf peerFabric) error {
		as := activeset.Set{PEStart: 0, LogPEStride: 0, PESize: numPEs}
		return ToAllRabenseifner(pf.fab, as, pf.dest, pf.source, 4, pf.pWrk, pf.pSync, fold.Sum[int32]())
	})
	assertUniformSum4(t, got, numPEs)
}

func TestToAllRabenseifnerWithExtras(t *testing.T) {
	const numPEs = 6 // p2sSize=4, two extras
	got := runCollective(t, numPEs, 4, psync.RabenseifnerSize(2), seedIota4, func(pf peerFabric) error {
		as := activeset.Set{PEStart: 0, LogPEStride: 0, PESize: numPEs}
		return ToAllRabenseifner(pf.fab, as, pf.dest, pf.source, 4, pf.pWrk, pf.pSync, fold.Sum[int32]())
	})
	assertUniformSum4(t, got, numPEs)
}

func seedIota3(pe int) []int32 {
	return []int32{int32(pe + 1), int32(pe+1) * 10, int32(pe+1) * 100}
}

func seedIota4(pe int) []int32 {
	return []int32{int32(pe + 1), int32(pe+1) * 10, int32(pe+1) * 100, int32(pe+1) * 1000}
}

func assertUniformSum3(t *testing.T, got [][]int32, numPEs int) {
	t.Helper()
	base := expectedSum(numPEs)
	want := []int32{base, base * 10, base * 100}
	for pe, row := range got {
		for i, w := range want {
			if row[i] != w {
				t.Fatalf("PE %d dest[%d] = %d, want %d", pe, i, row[i], w)
			}
		}
	}
}

func assertUniformSum4(t *testing.T, got [][]int32, numPEs int) {
	t.Helper()
	base := expectedSum(numPEs)
	want := []int32{base, base * 10, base * 100, base * 1000}
	for pe, row := range got {
		for i, w := range want {
			if row[i] != w {
				t.Fatalf("PE %d dest[%d] = %d, want %d", pe, i, row[i], w)
			}
		}
	}
}

// TestToAllBinomialSingletonActiveSet exercises PE_size == 1: no peers to
// receive from, the broadcast touches nobody, dest should equal source.
func TestToAllBinomialSingletonActiveSet(t *testing.T) {
	got := runCollective(t, 1, 2, psync.BinomialSize(), seedIota, func(pf peerFabric) error {
		as := activeset.Set{PEStart: 0, LogPEStride: 0, PESize: 1}
		return ToAllBinomial(pf.fab, as, pf.dest, pf.source, 2, pf.pWrk, pf.pSync, fold.Sum[int32]())
	})
	if got[0][0] != 1 || got[0][1] != 10 {
		t.Fatalf("singleton dest = %v, want [1 10]", got[0])
	}
}

// TestPSyncRestoredToQuiescent checks the binomial reducer leaves pSync back
// at SyncValue on every PE, the precondition the next collective call relies on.
func TestPSyncRestoredToQuiescent(t *testing.T) {
	const numPEs = 4
	reg := local.NewRegistry(numPEs)
	peers := make([]peerFabric, numPEs)
	var wg sync.WaitGroup
	wg.Add(numPEs)
	for pe := 0; pe < numPEs; pe++ {
		go func(pe int) {
			defer wg.Done()
			fab := local.New(reg, pe)
			source := seedIota(pe)
			dest := make([]int32, 2)
			pWrk := make([]int32, 2)
			pSync := make([]int64, psync.BinomialSize())
			sb, _ := pgas.NewSymBuf(fab, source)
			db, _ := pgas.NewSymBuf(fab, dest)
			wb, _ := pgas.NewSymBuf(fab, pWrk)
			psb, _ := pgas.NewSymBuf(fab, pSync)
			peers[pe] = peerFabric{fab: fab, source: sb, dest: db, pWrk: wb, pSync: psb}
		}(pe)
	}
	wg.Wait()

	as := activeset.Set{PEStart: 0, LogPEStride: 0, PESize: numPEs}
	wg.Add(numPEs)
	for pe := 0; pe < numPEs; pe++ {
		go func(pe int) {
			defer wg.Done()
			if err := ToAllBinomial(peers[pe].fab, as, peers[pe].dest, peers[pe].source, 2, peers[pe].pWrk, peers[pe].pSync, fold.Sum[int32]()); err != nil {
				t.Errorf("PE %d: %v", pe, err)
			}
		}(pe)
	}
	wg.Wait()

	for pe, p := range peers {
		if err := psync.Validate(p.pSync.Local); err != nil {
			t.Fatalf("PE %d pSync not quiescent after collective: %v", pe, err)
		}
	}
}

// TestInvalidActiveSetRejected checks the cheap precondition path without
// needing a live fabric on the other side.
func TestInvalidActiveSetRejected(t *testing.T) {
	fab := local.New(local.NewRegistry(1), 0)
	dest := make([]int32, 1)
	source := make([]int32, 1)
	pWrk := make([]int32, 1)
	pSync := make([]int64, psync.LinearSize())
	db, _ := pgas.NewSymBuf(fab, dest)
	sb, _ := pgas.NewSymBuf(fab, source)
	wb, _ := pgas.NewSymBuf(fab, pWrk)
	psb, _ := pgas.NewSymBuf(fab, pSync)

	as := activeset.Set{PEStart: 0, LogPEStride: 0, PESize: 0}
	err := ToAllLinear(fab, as, db, sb, 1, wb, psb, fold.Sum[int32]())
	if err == nil {
		t.Fatalf("ToAllLinear with PESize=0 returned nil error")
	}
}
