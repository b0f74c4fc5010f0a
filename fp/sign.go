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

// Package fp exposes the bit-level structure of IEEE-754 floating-point
// values.
//
// Every supported format (binary16, bfloat16, binary32, binary64, the x87
// 80-bit extended format and binary128) is described by a Format value,
// and Bits[T] gives a uniform sign / exponent / mantissa view over the raw
// encoding of a value of type T. Go has no native 16, 80 or 128-bit
// floats; Float16, BFloat16, Float80 and Float128 are storage types for
// those encodings.
//
// Basic usage:
//
//	b := fp.FromValue(2.0)
//	b.BiasedExponent()        // 1024
//	b.WithSign(fp.Neg).Value() // -2
package fp

// Sign is the sign bit of a floating-point value.
type Sign uint8

const (
	// Pos is a clear sign bit.
	Pos Sign = iota
	// Neg is a set sign bit.
	Neg
)

// IsPos reports whether the sign bit is clear.
func (s Sign) IsPos() bool {
	return s == Pos
}

// IsNeg reports whether the sign bit is set.
func (s Sign) IsNeg() bool {
	return s == Neg
}

// Negate returns the opposite sign.
func (s Sign) Negate() Sign {
	if s == Neg {
		return Pos
	}
	return Neg
}

func (s Sign) String() string {
	if s == Neg {
		return "-"
	}
	return "+"
}
