// Package fold implements the local reduction kernel and the supported
// operator table as a generic capability: a small Op[T] value instead of
// one emitted function per (type, op) pair.
package fold

// Integer is the set of element types AND/OR/XOR accept.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Float is the set of real element types.
type Float interface {
	~float32 | ~float64
}

// Numeric is every element type MIN/MAX accept.
type Numeric interface {
	Integer | Float
}

// Complex is the set of element types SUM/PROD additionally accept.
type Complex interface {
	~complex64 | ~complex128
}

// Addable is every element type SUM/PROD accept.
type Addable interface {
	Numeric | Complex
}

// Op is an associative binary operator with a name, for error messages and
// the generated per-(type,op) wrappers in reduce/ops_gen.go.
type Op[T any] struct {
	Name  string
	Apply func(a, b T) T
}

// Sum is SUM: associative and commutative for every Addable type.
func Sum[T Addable]() Op[T] {
	return Op[T]{Name: "sum", Apply: func(a, b T) T { return a + b }}
}

// Prod is PROD.
func Prod[T Addable]() Op[T] {
	return Op[T]{Name: "prod", Apply: func(a, b T) T { return a * b }}
}

// Min is MIN, integer and real types only.
func Min[T Numeric]() Op[T] {
	return Op[T]{Name: "min", Apply: func(a, b T) T {
		if a < b {
			return a
		}
		return b
	}}
}

// Max is MAX.
func Max[T Numeric]() Op[T] {
	return Op[T]{Name: "max", Apply: func(a, b T) T {
		if a > b {
			return a
		}
		return b
	}}
}

// And is AND, integer types only.
func And[T Integer]() Op[T] {
	return Op[T]{Name: "and", Apply: func(a, b T) T { return a & b }}
}

// Or is OR.
func Or[T Integer]() Op[T] {
	return Op[T]{Name: "or", Apply: func(a, b T) T { return a | b }}
}

// Xor is XOR.
func Xor[T Integer]() Op[T] {
	return Op[T]{Name: "xor", Apply: func(a, b T) T { return a ^ b }}
}

// Local computes dest[i] = op(a[i], b[i]) for i in [0, n). dest may alias a
// or b (the arithmetic is element-local, so aliasing within a single index
// is always safe); partial aliasing across indices is the caller's bug.
func Local[T any](dest, a, b []T, n int, op Op[T]) {
	for i := 0; i < n; i++ {
		dest[i] = op.Apply(a[i], b[i])
	}
}
