package fold

import "testing"

func TestSumLocal(t *testing.T) {
	a := []int32{1, 2, 3, 4}
	b := []int32{10, 20, 30, 40}
	dest := make([]int32, 4)
	Local(dest, a, b, 4, Sum[int32]())
	want := []int32{11, 22, 33, 44}
	for i := range want {
		if dest[i] != want[i] {
			t.Fatalf("dest[%d] = %d, want %d", i, dest[i], want[i])
		}
	}
}

func TestLocalAliasesDest(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	Local(a, a, b, 3, Sum[float64]())
	want := []float64{5, 7, 9}
	for i := range want {
		if a[i] != want[i] {
			t.Fatalf("a[%d] = %v, want %v", i, a[i], want[i])
		}
	}
}

func TestMinMax(t *testing.T) {
	a := []int{3, 9, -1}
	b := []int{5, 2, 7}
	dest := make([]int, 3)

	Local(dest, a, b, 3, Min[int]())
	wantMin := []int{3, 2, -1}
	for i := range wantMin {
		if dest[i] != wantMin[i] {
			t.Fatalf("min dest[%d] = %d, want %d", i, dest[i], wantMin[i])
		}
	}

	Local(dest, a, b, 3, Max[int]())
	wantMax := []int{5, 9, 7}
	for i := range wantMax {
		if dest[i] != wantMax[i] {
			t.Fatalf("max dest[%d] = %d, want %d", i, dest[i], wantMax[i])
		}
	}
}

func TestBitwiseOps(t *testing.T) {
	a := []uint8{0b1100}
	b := []uint8{0b1010}
	dest := make([]uint8, 1)

	Local(dest, a, b, 1, And[uint8]())
	if dest[0] != 0b1000 {
		t.Fatalf("and = %b, want %b", dest[0], 0b1000)
	}
	Local(dest, a, b, 1, Or[uint8]())
	if dest[0] != 0b1110 {
		t.Fatalf("or = %b, want %b", dest[0], 0b1110)
	}
	Local(dest, a, b, 1, Xor[uint8]())
	if dest[0] != 0b0110 {
		t.Fatalf("xor = %b, want %b", dest[0], 0b0110)
	}
}

func TestProdComplex(t *testing.T) {
	a := []complex128{complex(2, 0)}
	b := []complex128{complex(0, 3)}
	dest := make([]complex128, 1)
	Local(dest, a, b, 1, Prod[complex128]())
	want := complex(0, 6)
	if dest[0] != want {
		t.Fatalf("prod = %v, want %v", dest[0], want)
	}
}
