// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gen holds the generic, host-independent implementations of the
// correctly-rounded operations. They work on the raw encoding through
// fp.Bits and never touch the hardware floating-point unit, so their
// results are identical on every platform and in every build.
package gen

import (
	"lukechampine.com/uint128"

	"github.com/ajroetker/go-crmath/fenv"
	"github.com/ajroetker/go-crmath/fp"
)

// Sqrt returns the square root of x correctly rounded under mode.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(NaN) = NaN (x unchanged)
//	Sqrt(x < 0) = -NaN (the default NaN)
//	Sqrt(unnormal) = -NaN
func Sqrt[T fp.Float](x T, mode fenv.RoundingMode) T {
	if r, ok := SqrtSpecial(x); ok {
		return r
	}
	return SqrtFinite(x, mode)
}

// SqrtSpecial returns the result for operands that need no arithmetic.
// The boolean is false when x is a positive finite non-zero value.
func SqrtSpecial[T fp.Float](x T) (T, bool) {
	b := fp.FromValue(x)
	switch b.Classify() {
	case fp.ClassNaN, fp.ClassZero:
		return x, true
	case fp.ClassInfinite:
		if b.IsNeg() {
			return DefaultNaN[T](), true
		}
		return x, true
	}
	if b.IsNeg() || b.IsUnnormal() {
		return DefaultNaN[T](), true
	}
	return x, false
}

// DefaultNaN is the NaN produced by invalid operations. It carries the
// sign bit, matching x86 hardware.
func DefaultNaN[T fp.Float]() T {
	return fp.QuietNaN[T](fp.Neg).Value()
}

// SqrtFinite computes the square root of a positive, finite, non-zero x
// digit by digit, one result bit per iteration, with a final guard
// iteration yielding the round and sticky bits.
func SqrtFinite[T fp.Float](x T, mode fenv.RoundingMode) T {
	b := fp.FromValue(x)
	f := b.Format()
	frac := uint(f.FractionBits)

	exp := b.ExplicitExponent()
	mant := b.Significand()
	if b.BiasedExponent() == 0 {
		exp, mant = fp.Normalize[T](exp, mant)
	}

	// sqrt(m × 2^e) = sqrt(2m) × 2^((e-1)/2) for odd e.
	if exp&1 != 0 {
		exp--
		mant = mant.Lsh(1)
	}

	one := uint128.From64(1).Lsh(frac)
	y := one
	r := mant.Sub(one)

	// Invariant: r = mant - y², scaled by the current bit position.
	for bit := one.Rsh(1); !bit.IsZero(); bit = bit.Rsh(1) {
		r = r.Lsh(1)
		tmp := y.Lsh(1).Add(bit)
		if r.Cmp(tmp) >= 0 {
			r = r.Sub(tmp)
			y = y.Add(bit)
		}
	}

	// Guard iteration, one more bit at quarter scale.
	r = r.Lsh(2)
	tmp := y.Lsh(2).Add64(1)
	round := r.Cmp(tmp) >= 0
	if round {
		r = r.Sub(tmp)
	}
	sticky := !r.IsZero()

	if fenv.RoundAway(mode, false, y.Lo&1 == 1, round, sticky) {
		y = y.Add64(1)
	}

	biased := exp>>1 + f.ExponentBias()
	if y.Rsh(frac + 1).Lo != 0 {
		// Rounded up to 2.0.
		y = y.Rsh(1)
		biased++
	}
	return fp.Assemble[T](fp.Pos, biased, y).Value()
}
