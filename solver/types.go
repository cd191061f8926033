// Package solver provides dense linear-algebra kernels with lane-parallel
// execution and runtime CPU dispatch.
//
// It follows the structure of hardware solver libraries: the root package
// holds shared numeric constraints and platform detection, while the actual
// decomposition kernels live in subpackages under contrib, for example
// contrib/lu for LU factorization.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-solver/solver/contrib/lu"
//
//	a := []float64{4, 3, 6, 3} // row-major 2x2
//	lu.Getrf(a, 2, 2, 2, 1)
//	// a now holds L (strict lower triangle, unit diagonal implicit)
//	// and U (upper triangle) combined.
package solver

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Numeric is a constraint for all element types the kernels operate on.
type Numeric interface {
	Floats | Integers
}
