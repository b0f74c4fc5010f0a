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

import "lukechampine.com/uint128"

// Format describes the layout of an IEEE-754 interchange format.
//
// Fields are laid out from the most significant bit: sign, exponent,
// stored significand. For formats with an explicit leading bit the
// stored significand is the integer bit followed by the fraction;
// otherwise it is the fraction alone.
type Format struct {
	// Name is a short identifier such as "binary64".
	Name string

	// TotalBits is the width of the encoding.
	TotalBits int

	// StorageBits is the width of the container holding the encoding.
	// It exceeds TotalBits only for the 80-bit format.
	StorageBits int

	// ExponentBits is the width of the biased exponent field.
	ExponentBits int

	// FractionBits is the number of significand bits after the binary point.
	FractionBits int

	// ExplicitLeadingBit is set when the integer bit of the significand is
	// stored rather than implied.
	ExplicitLeadingBit bool

	signMask        uint128.Uint128
	exponentMask    uint128.Uint128
	significandMask uint128.Uint128
	fractionMask    uint128.Uint128
	explicitBitMask uint128.Uint128
	quietBitMask    uint128.Uint128
	encodingMask    uint128.Uint128
}

func newFormat(name string, total, storage, exp, frac int, explicit bool) *Format {
	f := &Format{
		Name:               name,
		TotalBits:          total,
		StorageBits:        storage,
		ExponentBits:       exp,
		FractionBits:       frac,
		ExplicitLeadingBit: explicit,
	}
	sig := uint(f.SignificandBits())
	one := uint128.From64(1)
	f.significandMask = lowMask(sig)
	f.fractionMask = lowMask(uint(frac))
	f.exponentMask = lowMask(uint(exp)).Lsh(sig)
	f.signMask = one.Lsh(uint(total - 1))
	if explicit {
		f.explicitBitMask = one.Lsh(uint(frac))
	}
	f.quietBitMask = one.Lsh(uint(frac - 1))
	f.encodingMask = lowMask(uint(total))
	return f
}

var (
	// Binary16 is IEEE-754 half precision.
	Binary16 = newFormat("binary16", 16, 16, 5, 10, false)

	// BFloat16Format is the brain floating-point format: binary32 with a
	// truncated fraction.
	BFloat16Format = newFormat("bfloat16", 16, 16, 8, 7, false)

	// Binary32 is IEEE-754 single precision.
	Binary32 = newFormat("binary32", 32, 32, 8, 23, false)

	// Binary64 is IEEE-754 double precision.
	Binary64 = newFormat("binary64", 64, 64, 11, 52, false)

	// X87Extended is the Intel 80-bit extended precision format, stored in
	// a 128-bit container.
	X87Extended = newFormat("x87extended", 80, 128, 15, 63, true)

	// Binary128 is IEEE-754 quadruple precision.
	Binary128 = newFormat("binary128", 128, 128, 15, 112, false)
)

// Formats lists every supported format.
var Formats = []*Format{Binary16, BFloat16Format, Binary32, Binary64, X87Extended, Binary128}

// SignificandBits is the width of the stored significand field.
func (f *Format) SignificandBits() int {
	if f.ExplicitLeadingBit {
		return f.FractionBits + 1
	}
	return f.FractionBits
}

// Precision is the number of significant bits of a normal value,
// counting the leading bit.
func (f *Format) Precision() int {
	return f.FractionBits + 1
}

// ExponentBias is the bias applied to the stored exponent.
func (f *Format) ExponentBias() int {
	return 1<<(f.ExponentBits-1) - 1
}

// MaxBiasedExponent is the all-ones exponent used by infinities and NaNs.
func (f *Format) MaxBiasedExponent() int {
	return 1<<f.ExponentBits - 1
}

// MinExponent is the unbiased exponent of the smallest normal value.
func (f *Format) MinExponent() int {
	return 1 - f.ExponentBias()
}

// MaxExponent is the unbiased exponent of the largest finite value.
func (f *Format) MaxExponent() int {
	return f.ExponentBias()
}

func (f *Format) String() string {
	return f.Name
}

// lowMask returns a value with the low n bits set.
func lowMask(n uint) uint128.Uint128 {
	if n >= 128 {
		return uint128.Max
	}
	return uint128.Max.Rsh(128 - n)
}
