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

// Convert converts x to the format of To, rounding to nearest even.
func Convert[To, From Float](x From) To {
	return ConvertRound[To](x, fenv.ToNearest).Value()
}

// ConvertRound converts x to the format of To under mode.
//
// Widening is exact. NaN payloads are carried over from the top of the
// fraction and the result is always quiet. 80-bit unnormals convert to
// the default NaN.
func ConvertRound[To, From Float](x From, mode fenv.RoundingMode) Bits[To] {
	src := FromValue(x)
	s := src.Sign()
	switch src.Classify() {
	case ClassZero:
		return Zero[To](s)
	case ClassInfinite:
		return Inf[To](s)
	case ClassNaN:
		return convertNaN[To](src)
	}
	if src.IsUnnormal() {
		return QuietNaN[To](s)
	}
	sf := src.Format()
	sig := src.Significand()
	lead := sig.Len() - 1
	return Round[To](s, src.ExplicitExponent()-sf.FractionBits+lead, sig, false, mode)
}

func convertNaN[To, From Float](src Bits[From]) Bits[To] {
	sf, df := src.Format(), FormatOf[To]()
	payload := src.Mantissa()
	if df.FractionBits >= sf.FractionBits {
		payload = payload.Lsh(uint(df.FractionBits - sf.FractionBits))
	} else {
		payload = payload.Rsh(uint(sf.FractionBits - df.FractionBits))
	}
	return QuietNaN[To](src.Sign()).WithMantissa(payload.Or(df.quietBitMask))
}

// FromInt converts n to T, rounding to nearest even.
func FromInt[T Float](n int64) T {
	return FromIntRound[T](n, fenv.ToNearest).Value()
}

// FromIntRound converts n to T under mode.
func FromIntRound[T Float](n int64, mode fenv.RoundingMode) Bits[T] {
	s := Pos
	mag := uint64(n)
	if n < 0 {
		s = Neg
		mag = uint64(-n)
	}
	return FromUintRound[T](s, mag, mode)
}

// FromUintRound converts s × mag to T under mode.
func FromUintRound[T Float](s Sign, mag uint64, mode fenv.RoundingMode) Bits[T] {
	if mag == 0 {
		return Zero[T](s)
	}
	sig := uint128.From64(mag)
	return Round[T](s, sig.Len()-1, sig, false, mode)
}
