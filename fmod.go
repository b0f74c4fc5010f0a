package crmath

import (
	"math"

	"github.com/ajroetker/go-crmath/fp"
	"github.com/ajroetker/go-crmath/internal/gen"
)

// Fmod returns the floating-point remainder of x/y, with the sign of x.
// The result is always exact.
//
// Special cases are:
//
//	Fmod(±0, y) = ±0 for y != 0, including y NaN
//	Fmod(±Inf, y) = -NaN for y not NaN
//	Fmod(x, 0) = -NaN for x not NaN
//	Fmod(x, ±Inf) = x for finite x
//	Fmod(x, NaN) = Fmod(NaN, y) = NaN for non-zero x
func Fmod[T Native](x, y T) T {
	xb, yb := fp.FromValue(x), fp.FromValue(y)
	switch {
	case xb.IsZero() && !yb.IsZero():
		return x
	case (xb.IsInf() && !yb.IsNaN()) || (yb.IsZero() && !xb.IsNaN()):
		return gen.DefaultNaN[T]()
	case yb.IsInf() && xb.IsFinite():
		return x
	case xb.IsNaN() || yb.IsNaN():
		return fp.QuietNaN[T](fp.Pos).Value()
	}
	return T(math.Mod(float64(x), float64(y)))
}
