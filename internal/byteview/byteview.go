// Package byteview reinterprets typed numeric slices as raw byte slices
// without copying, so symmetric buffers can cross the pgas.Fabric's
// byte-oriented Get/Put/atomic boundary at zero cost.
package byteview

import "unsafe"

// Bytes views s as a byte slice of len(s)*sizeof(T) bytes. T must be a
// fixed-size value type with no pointers (the numeric and complex kinds
// fold.Op is instantiated over); passing a pointer-containing T corrupts
// the GC's scan and is undefined.
func Bytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	sz := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*sz)
}

// Of is the inverse of Bytes: it views b as a slice of T, panicking if b's
// length is not a whole multiple of sizeof(T).
func Of[T any](b []byte) []T {
	if len(b) == 0 {
		return nil
	}
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if len(b)%sz != 0 {
		panic("byteview: byte length not a multiple of element size")
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/sz)
}
