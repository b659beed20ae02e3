package reduce

import (
	"github.com/pkg/errors"
	"github.com/xtaci/shreduce/internal/activeset"
)

// precheck runs the cheap preconditions every algorithm entry point shares:
// active-set shape, nreduce positivity, and pSync sizing. It does not
// inspect pSync contents: a faster peer's one-sided signal for this call
// may already have landed in the local pSync before this PE enters, so a
// cell away from SyncValue on entry is not by itself a caller error.
func precheck(as activeset.Set, nreduce int, pSync []int64, minPSync int) error {
	if err := as.Validate(); err != nil {
		return errors.Wrap(ErrInvalidActiveSet, err.Error())
	}
	if nreduce <= 0 {
		return ErrNReduceNonPositive
	}
	if len(pSync) < minPSync {
		return errors.Wrapf(ErrPSyncTooSmall, "have %d cells, need %d", len(pSync), minPSync)
	}
	return nil
}
