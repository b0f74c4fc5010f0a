package crmath

import (
	"math"

	"github.com/ajroetker/go-crmath/fp"
)

// NaNPolicy selects the sign of the NaN returned for invalid operands of
// Log2.
type NaNPolicy uint8

const (
	// NegativeNaN returns the x86 default NaN, with the sign bit set.
	NegativeNaN NaNPolicy = iota
	// PositiveNaN returns a NaN with the sign bit clear, as Apple's libm does.
	PositiveNaN
)

// Log2 returns the binary logarithm of x with NegativeNaN policy.
func Log2[T Native](x T) T {
	return Log2Policy(x, NegativeNaN)
}

// Log2Policy returns the binary logarithm of x.
//
// Special cases are:
//
//	Log2(±0) = -Inf
//	Log2(1) = +0
//	Log2(NaN) = NaN (x unchanged)
//	Log2(x < 0) = NaN, signed per policy
//	Log2(+Inf) = +Inf
//
// The finite case is computed by math.Log2 and is not guaranteed to be
// correctly rounded.
func Log2Policy[T Native](x T, policy NaNPolicy) T {
	b := fp.FromValue(x)
	switch {
	case b.IsZero():
		return fp.Inf[T](fp.Neg).Value()
	case x == 1:
		return 0
	case b.IsNaN():
		return x
	case b.IsNeg():
		if policy == PositiveNaN {
			return fp.QuietNaN[T](fp.Pos).Value()
		}
		return fp.QuietNaN[T](fp.Neg).Value()
	case b.IsInf():
		return x
	}
	return T(math.Log2(float64(x)))
}
