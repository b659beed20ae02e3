package activeset

import "testing"

func TestActiveIndexAndPE(t *testing.T) {
	s := Set{PEStart: 4, LogPEStride: 1, PESize: 5} // PEs 4,6,8,10,12
	for i := 0; i < s.PESize; i++ {
		pe := s.PE(i)
		got := s.ActiveIndex(pe)
		if got != i {
			t.Fatalf("ActiveIndex(PE(%d)=%d) = %d, want %d", i, pe, got, i)
		}
	}
	if s.Stride() != 2 {
		t.Fatalf("Stride() = %d, want 2", s.Stride())
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		s       Set
		wantErr bool
	}{
		{Set{PEStart: 0, LogPEStride: 0, PESize: 1}, false},
		{Set{PEStart: 0, LogPEStride: 0, PESize: 0}, true},
		{Set{PEStart: -1, LogPEStride: 0, PESize: 1}, true},
		{Set{PEStart: 0, LogPEStride: -1, PESize: 1}, true},
	}
	for _, c := range cases {
		err := c.s.Validate()
		if (err != nil) != c.wantErr {
			t.Fatalf("Validate(%+v) err = %v, wantErr %v", c.s, err, c.wantErr)
		}
	}
}

func TestP2SSizePowerOfTwo(t *testing.T) {
	s := Set{PESize: 8}
	p2sSize, logP2s := s.P2SSize()
	if p2sSize != 8 || logP2s != 3 {
		t.Fatalf("P2SSize() = (%d, %d), want (8, 3)", p2sSize, logP2s)
	}
	for i := 0; i < 8; i++ {
		p2s, ok := s.ToP2S(i)
		if !ok || p2s != i {
			t.Fatalf("ToP2S(%d) = (%d, %v), want (%d, true)", i, p2s, ok, i)
		}
		if back := s.FromP2S(p2s); back != i {
			t.Fatalf("FromP2S(%d) = %d, want %d", p2s, back, i)
		}
	}
}

func TestP2SSizeNonPowerOfTwo(t *testing.T) {
	// PESize=5: largest power of two subset has size 4, log 2.
	s := Set{PESize: 5}
	p2sSize, logP2s := s.P2SSize()
	if p2sSize != 4 || logP2s != 2 {
		t.Fatalf("P2SSize() = (%d, %d), want (4, 2)", p2sSize, logP2s)
	}
	coreCount := 0
	for i := 0; i < s.PESize; i++ {
		if p2s, ok := s.ToP2S(i); ok {
			coreCount++
			if back := s.FromP2S(p2s); back != i {
				t.Fatalf("FromP2S(ToP2S(%d)=%d) = %d, want %d", i, p2s, back, i)
			}
		}
	}
	if coreCount != p2sSize {
		t.Fatalf("found %d core PEs, want %d", coreCount, p2sSize)
	}
}

func TestSiblingIsPredecessor(t *testing.T) {
	if got := Sibling(3); got != 2 {
		t.Fatalf("Sibling(3) = %d, want 2", got)
	}
}

func TestLowestSetBit(t *testing.T) {
	if got := LowestSetBit(0b0110); got != 0b0010 {
		t.Fatalf("LowestSetBit(0b0110) = %b, want %b", got, 0b0010)
	}
	if got := LowestSetBit(0); got != 0 {
		t.Fatalf("LowestSetBit(0) = %d, want 0", got)
	}
}
