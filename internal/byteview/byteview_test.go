package byteview

import "testing"

func TestBytesRoundTrip(t *testing.T) {
	src := []int32{1, 2, 3, 4}
	b := Bytes(src)
	if len(b) != 16 {
		t.Fatalf("len(b) = %d, want 16", len(b))
	}
	back := Of[int32](b)
	if len(back) != len(src) {
		t.Fatalf("len(back) = %d, want %d", len(back), len(src))
	}
	for i := range src {
		if back[i] != src[i] {
			t.Fatalf("back[%d] = %d, want %d", i, back[i], src[i])
		}
	}
}

func TestBytesAliasesBackingArray(t *testing.T) {
	src := []int64{10, 20}
	b := Bytes(src)
	b[0] = 0xFF
	if src[0] == 10 {
		t.Fatalf("Bytes did not alias the backing array")
	}
}

func TestBytesEmpty(t *testing.T) {
	if Bytes[int32](nil) != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func TestOfPanicsOnMisalignedLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for misaligned length")
		}
	}()
	Of[int32]([]byte{1, 2, 3})
}
