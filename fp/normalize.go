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

package fp

import (
	"lukechampine.com/uint128"

	"github.com/ajroetker/go-crmath/fenv"
)

// Normalize shifts a non-zero significand left until its leading bit sits
// at FractionBits of T's format, lowering the exponent to match. It is
// used to bring subnormal operands into normal form. A zero significand
// is returned unchanged.
func Normalize[T Float](exponent int, mantissa uint128.Uint128) (int, uint128.Uint128) {
	if mantissa.IsZero() {
		return exponent, mantissa
	}
	shift := mantissa.LeadingZeros() - (128 - 1 - FormatOf[T]().FractionBits)
	switch {
	case shift > 0:
		mantissa = mantissa.Lsh(uint(shift))
	case shift < 0:
		mantissa = mantissa.Rsh(uint(-shift))
	}
	return exponent - shift, mantissa
}

// Round rounds sign × sig × 2^(exponent - (sig.Len()-1)) to T under mode.
// That is, exponent is the scale of the leading set bit of sig. sticky
// reports discarded non-zero bits below sig. Overflow, gradual underflow
// and carries out of the significand are handled per IEEE-754.
func Round[T Float](s Sign, exponent int, sig uint128.Uint128, sticky bool, mode fenv.RoundingMode) Bits[T] {
	f := FormatOf[T]()
	neg := s == Neg
	if sig.IsZero() {
		if sticky && fenv.RoundAway(mode, neg, false, false, true) {
			return MinSubnormal[T](s)
		}
		return Zero[T](s)
	}
	if exponent > f.MaxExponent() {
		return overflow[T](s, mode)
	}

	lead := sig.Len() - 1
	keep := f.FractionBits
	if exponent < f.MinExponent() {
		keep -= f.MinExponent() - exponent
	}

	var m uint128.Uint128
	var round bool
	if shift := lead - keep; shift > 0 {
		round = bitAt(sig, shift-1)
		sticky = sticky || !sig.And(lowMask(uint(shift-1))).IsZero()
		m = sig.Rsh(uint(shift))
	} else {
		m = sig.Lsh(uint(-shift))
	}
	if fenv.RoundAway(mode, neg, bitAt(m, 0), round, sticky) {
		m = m.Add64(1)
	}

	biased := 0
	if exponent >= f.MinExponent() {
		biased = exponent + f.ExponentBias()
		if bitAt(m, f.FractionBits+1) {
			m = m.Rsh(1)
			biased++
		}
	} else if bitAt(m, f.FractionBits) {
		// Rounded up into the smallest normal.
		biased = 1
	}
	if biased >= f.MaxBiasedExponent() {
		return overflow[T](s, mode)
	}
	if m.IsZero() {
		return Zero[T](s)
	}
	return Assemble[T](s, biased, m)
}

func overflow[T Float](s Sign, mode fenv.RoundingMode) Bits[T] {
	if fenv.OverflowsToInf(mode, s == Neg) {
		return Inf[T](s)
	}
	return MaxNormal[T](s)
}

func bitAt(u uint128.Uint128, i int) bool {
	if i < 0 || i >= 128 {
		return false
	}
	return u.Rsh(uint(i)).Lo&1 == 1
}
