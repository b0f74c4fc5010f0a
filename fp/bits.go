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
	"fmt"
	"math/big"

	"lukechampine.com/uint128"
)

// Class is the IEEE-754 class of a value, ignoring its sign.
type Class uint8

const (
	ClassZero Class = iota
	ClassSubnormal
	ClassNormal
	ClassInfinite
	ClassNaN
)

func (c Class) String() string {
	switch c {
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	case ClassInfinite:
		return "infinite"
	case ClassNaN:
		return "nan"
	default:
		return "unknown"
	}
}

// Bits is a view over the raw encoding of a T.
//
// Bits is a value type: the With* methods return a modified copy and
// never touch fields other than the one they name.
type Bits[T Float] struct {
	raw uint128.Uint128
}

// FromValue returns the bit view of x.
func FromValue[T Float](x T) Bits[T] {
	return Bits[T]{raw: toRaw(x)}
}

// FromRaw wraps a raw encoding. Bits above the format width are dropped.
func FromRaw[T Float](raw uint128.Uint128) Bits[T] {
	return Bits[T]{raw: raw.And(FormatOf[T]().encodingMask)}
}

// Value returns the T encoded by b.
func (b Bits[T]) Value() T {
	return fromRaw[T](b.raw)
}

// Raw returns the raw encoding.
func (b Bits[T]) Raw() uint128.Uint128 {
	return b.raw
}

// Format returns the layout of T.
func (b Bits[T]) Format() *Format {
	return FormatOf[T]()
}

// Sign returns the sign bit.
func (b Bits[T]) Sign() Sign {
	if b.raw.And(b.Format().signMask).IsZero() {
		return Pos
	}
	return Neg
}

// BiasedExponent returns the stored exponent field.
func (b Bits[T]) BiasedExponent() int {
	f := b.Format()
	return int(b.raw.And(f.exponentMask).Rsh(uint(f.SignificandBits())).Lo)
}

// Exponent returns the unbiased exponent field. It is meaningful only
// for normal values.
func (b Bits[T]) Exponent() int {
	return b.BiasedExponent() - b.Format().ExponentBias()
}

// ExplicitExponent returns the exponent the value is actually scaled by:
// subnormals report the minimum exponent and zero reports 0.
func (b Bits[T]) ExplicitExponent() int {
	if b.BiasedExponent() != 0 {
		return b.Exponent()
	}
	if b.IsZero() {
		return 0
	}
	return b.Format().MinExponent()
}

// Mantissa returns the fraction field, excluding any explicit integer bit.
func (b Bits[T]) Mantissa() uint128.Uint128 {
	return b.raw.And(b.Format().fractionMask)
}

// StoredSignificand returns the whole significand field, including the
// explicit integer bit of the 80-bit format.
func (b Bits[T]) StoredSignificand() uint128.Uint128 {
	return b.raw.And(b.Format().significandMask)
}

// Significand returns the significand with its leading bit in place:
// the stored integer bit for explicit formats, the implied bit otherwise.
func (b Bits[T]) Significand() uint128.Uint128 {
	f := b.Format()
	if f.ExplicitLeadingBit {
		return b.StoredSignificand()
	}
	if b.BiasedExponent() == 0 {
		return b.Mantissa()
	}
	return b.Mantissa().Or(uint128.From64(1).Lsh(uint(f.FractionBits)))
}

// ImplicitBit returns the integer bit of the significand. For formats
// where it is implied, that is whether the exponent field is non-zero.
func (b Bits[T]) ImplicitBit() bool {
	f := b.Format()
	if f.ExplicitLeadingBit {
		return !b.raw.And(f.explicitBitMask).IsZero()
	}
	return b.BiasedExponent() != 0
}

// WithSign returns b with its sign replaced.
func (b Bits[T]) WithSign(s Sign) Bits[T] {
	m := b.Format().signMask
	raw := b.raw.And(m.Xor(uint128.Max))
	if s == Neg {
		raw = raw.Or(m)
	}
	return Bits[T]{raw: raw}
}

// WithBiasedExponent returns b with its exponent field replaced. Bits of
// e beyond the field width are dropped.
func (b Bits[T]) WithBiasedExponent(e int) Bits[T] {
	f := b.Format()
	field := uint128.From64(uint64(e)).Lsh(uint(f.SignificandBits())).And(f.exponentMask)
	return Bits[T]{raw: b.raw.And(f.exponentMask.Xor(uint128.Max)).Or(field)}
}

// WithMantissa returns b with its fraction field replaced.
func (b Bits[T]) WithMantissa(m uint128.Uint128) Bits[T] {
	f := b.Format()
	return Bits[T]{raw: b.raw.And(f.fractionMask.Xor(uint128.Max)).Or(m.And(f.fractionMask))}
}

// WithImplicitBit returns b with its explicit integer bit set or cleared.
// It is a no-op for formats where the bit is implied.
func (b Bits[T]) WithImplicitBit(bit bool) Bits[T] {
	f := b.Format()
	if !f.ExplicitLeadingBit {
		return b
	}
	raw := b.raw.And(f.explicitBitMask.Xor(uint128.Max))
	if bit {
		raw = raw.Or(f.explicitBitMask)
	}
	return Bits[T]{raw: raw}
}

// Classify returns the class of b from its exponent and fraction fields.
func (b Bits[T]) Classify() Class {
	switch b.BiasedExponent() {
	case 0:
		if b.StoredSignificand().IsZero() {
			return ClassZero
		}
		return ClassSubnormal
	case b.Format().MaxBiasedExponent():
		if b.Mantissa().IsZero() {
			return ClassInfinite
		}
		return ClassNaN
	default:
		return ClassNormal
	}
}

func (b Bits[T]) IsZero() bool      { return b.Classify() == ClassZero }
func (b Bits[T]) IsSubnormal() bool { return b.Classify() == ClassSubnormal }
func (b Bits[T]) IsNormal() bool    { return b.Classify() == ClassNormal }
func (b Bits[T]) IsInf() bool       { return b.Classify() == ClassInfinite }
func (b Bits[T]) IsNaN() bool       { return b.Classify() == ClassNaN }
func (b Bits[T]) IsNeg() bool       { return b.Sign() == Neg }

// IsFinite reports whether b is zero, subnormal or normal.
func (b Bits[T]) IsFinite() bool {
	return b.BiasedExponent() != b.Format().MaxBiasedExponent()
}

// IsInfOrNaN reports whether the exponent field is all ones.
func (b Bits[T]) IsInfOrNaN() bool {
	return !b.IsFinite()
}

// IsQuietNaN reports whether b is a NaN with the quiet bit set.
func (b Bits[T]) IsQuietNaN() bool {
	return b.IsNaN() && !b.raw.And(b.Format().quietBitMask).IsZero()
}

// IsSignalingNaN reports whether b is a NaN with the quiet bit clear.
func (b Bits[T]) IsSignalingNaN() bool {
	return b.IsNaN() && b.raw.And(b.Format().quietBitMask).IsZero()
}

// IsUnnormal reports whether b is an 80-bit encoding with a non-zero,
// non-maximal exponent and a clear integer bit. Such encodings are
// invalid operands. Always false for other formats.
func (b Bits[T]) IsUnnormal() bool {
	if !b.Format().ExplicitLeadingBit {
		return false
	}
	e := b.BiasedExponent()
	return e != 0 && e != b.Format().MaxBiasedExponent() && !b.ImplicitBit()
}

// Assemble builds an encoding from a sign, a biased exponent and a
// significand whose leading bit, if any, sits at FractionBits.
func Assemble[T Float](s Sign, biasedExp int, significand uint128.Uint128) Bits[T] {
	f := FormatOf[T]()
	return Bits[T]{}.WithSign(s).
		WithBiasedExponent(biasedExp).
		WithImplicitBit(!significand.And(uint128.From64(1).Lsh(uint(f.FractionBits))).IsZero()).
		WithMantissa(significand)
}

// Zero returns a zero with sign s.
func Zero[T Float](s Sign) Bits[T] {
	return Bits[T]{}.WithSign(s)
}

// Inf returns an infinity with sign s.
func Inf[T Float](s Sign) Bits[T] {
	f := FormatOf[T]()
	return Assemble[T](s, f.MaxBiasedExponent(), uint128.From64(1).Lsh(uint(f.FractionBits)))
}

// QuietNaN returns the default quiet NaN with sign s.
func QuietNaN[T Float](s Sign) Bits[T] {
	f := FormatOf[T]()
	return Inf[T](s).WithMantissa(f.quietBitMask)
}

// MinSubnormal returns the smallest positive subnormal with sign s.
func MinSubnormal[T Float](s Sign) Bits[T] {
	return Bits[T]{raw: uint128.From64(1)}.WithSign(s)
}

// MinNormal returns the smallest normal magnitude with sign s.
func MinNormal[T Float](s Sign) Bits[T] {
	f := FormatOf[T]()
	return Assemble[T](s, 1, uint128.From64(1).Lsh(uint(f.FractionBits)))
}

// MaxNormal returns the largest finite magnitude with sign s.
func MaxNormal[T Float](s Sign) Bits[T] {
	f := FormatOf[T]()
	return Assemble[T](s, f.MaxBiasedExponent()-1, lowMask(uint(f.FractionBits+1)))
}

// One returns 1.0 with sign s.
func One[T Float](s Sign) Bits[T] {
	f := FormatOf[T]()
	return Assemble[T](s, f.ExponentBias(), uint128.From64(1).Lsh(uint(f.FractionBits)))
}

// Hex returns the raw encoding as fixed-width hexadecimal.
func (b Bits[T]) Hex() string {
	f := b.Format()
	digits := (f.TotalBits + 3) / 4
	if digits <= 16 {
		return fmt.Sprintf("0x%0*x", digits, b.raw.Lo)
	}
	return fmt.Sprintf("0x%0*x%016x", digits-16, b.raw.Hi, b.raw.Lo)
}

// BigFloat returns the exact value of b, or nil for NaN.
func (b Bits[T]) BigFloat() *big.Float {
	f := b.Format()
	out := new(big.Float).SetPrec(uint(f.Precision()))
	switch b.Classify() {
	case ClassNaN:
		return nil
	case ClassInfinite:
		return out.SetInf(b.IsNeg())
	case ClassZero:
		if b.IsNeg() {
			out.Neg(out)
		}
		return out
	}
	out.SetInt(b.Significand().Big())
	out.SetMantExp(out, b.ExplicitExponent()-f.FractionBits)
	if b.IsNeg() {
		out.Neg(out)
	}
	return out
}

// Text formats the value like big.Float.Text. NaNs print as "NaN".
func (b Bits[T]) Text(format byte, prec int) string {
	v := b.BigFloat()
	if v == nil {
		if b.IsNeg() {
			return "-NaN"
		}
		return "NaN"
	}
	return v.Text(format, prec)
}

func (b Bits[T]) String() string {
	return fmt.Sprintf("%s(%s %s)", b.Format().Name, b.Hex(), b.Text('g', -1))
}
