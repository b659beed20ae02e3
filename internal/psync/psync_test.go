package psync

import "testing"

func TestValidateRejectsNonQuiescent(t *testing.T) {
	if err := Validate([]int64{0, 0, 0}); err != nil {
		t.Fatalf("Validate(all zero) = %v, want nil", err)
	}
	if err := Validate([]int64{0, 1, 0}); err == nil {
		t.Fatalf("Validate(non-quiescent) = nil, want error")
	}
}

func TestSizing(t *testing.T) {
	if got := LinearSize(); got != 2 {
		t.Fatalf("LinearSize() = %d, want 2", got)
	}
	if got := BinomialSize(); got != 66 {
		t.Fatalf("BinomialSize() = %d, want 66", got)
	}
	if got := RecDblSize(3); got != 4 {
		t.Fatalf("RecDblSize(3) = %d, want 4", got)
	}
	if got := RabenseifnerSize(3); got != 8 {
		t.Fatalf("RabenseifnerSize(3) = %d, want 8", got)
	}
}

func TestRabenseifnerCellRangesDisjoint(t *testing.T) {
	logP2s := 4
	// reduce-scatter uses cells [2, 2+logP2s), allgather [2+logP2s, 2+2*logP2s).
	size := RabenseifnerSize(logP2s)
	if size != 2+2*logP2s {
		t.Fatalf("RabenseifnerSize(%d) = %d, want %d", logP2s, size, 2+2*logP2s)
	}
}
