package crmath

import "github.com/ajroetker/go-crmath/fp"

// IsGreaterEqual reports x >= y. It is false if either operand is NaN.
func IsGreaterEqual[T Native](x, y T) bool {
	return x >= y
}

// IsLessGreater reports x < y || x > y. Unlike x != y it is false when
// either operand is NaN.
func IsLessGreater[T Native](x, y T) bool {
	return x < y || x > y
}

// IsFinite reports whether x is neither infinite nor NaN.
func IsFinite[T Float](x T) bool {
	return fp.FromValue(x).IsFinite()
}

// IsNaN reports whether x is a NaN.
func IsNaN[T Float](x T) bool {
	return fp.FromValue(x).IsNaN()
}

// Signbit reports whether the sign bit of x is set, including for -0 and
// negative NaNs.
func Signbit[T Float](x T) bool {
	return fp.FromValue(x).IsNeg()
}
