package crmath

import (
	"github.com/ajroetker/go-crmath/fenv"
	"github.com/ajroetker/go-crmath/fp"
)

// Frexp breaks x into a normalized fraction and an integral power of two,
// x == frac × 2^exp with |frac| in [0.5, 1). Subnormal inputs are
// normalized first.
//
// Special cases are:
//
//	Frexp(±0) = ±0, 0
//	Frexp(±Inf) = ±Inf, 0
//	Frexp(NaN) = NaN, 0
func Frexp[T Float](x T) (frac T, exp int) {
	b := fp.FromValue(x)
	if b.IsZero() || b.IsInfOrNaN() {
		return x, 0
	}
	f := b.Format()
	e, mant := b.ExplicitExponent(), b.Significand()
	if b.BiasedExponent() == 0 || !b.ImplicitBit() {
		e, mant = fp.Normalize[T](e, mant)
	}
	// mant × 2^(e-FractionBits) = (mant × 2^-(FractionBits+1)) × 2^(e+1)
	return fp.Assemble[T](b.Sign(), f.ExponentBias()-1, mant).Value(), e + 1
}

// Ldexp is the inverse of Frexp, frac × 2^exp, correctly rounded to
// nearest when the result is subnormal.
func Ldexp[T Float](frac T, exp int) T {
	b := fp.FromValue(frac)
	if b.IsZero() || b.IsInfOrNaN() {
		return frac
	}
	e, mant := b.ExplicitExponent(), b.Significand()
	if b.BiasedExponent() == 0 || !b.ImplicitBit() {
		e, mant = fp.Normalize[T](e, mant)
	}
	return fp.Round[T](b.Sign(), e+exp, mant, false, fenv.ToNearest).Value()
}
