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
	"math"

	"lukechampine.com/uint128"
)

// Float16 is an IEEE-754 binary16 value held in its raw encoding.
type Float16 uint16

// BFloat16 is a bfloat16 value held in its raw encoding.
type BFloat16 uint16

// Float80 is an x87 extended precision value. Lo holds the 64-bit
// significand including the explicit integer bit; Hi holds the sign and
// the 15-bit exponent.
type Float80 struct {
	Lo uint64
	Hi uint16
}

// Float128 is an IEEE-754 binary128 value held in its raw encoding.
type Float128 struct {
	Lo, Hi uint64
}

// Float is the set of types with a Bits view.
type Float interface {
	float32 | float64 | Float16 | BFloat16 | Float80 | Float128
}

// FormatOf returns the format of T.
func FormatOf[T Float]() *Format {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Binary32
	case float64:
		return Binary64
	case Float16:
		return Binary16
	case BFloat16:
		return BFloat16Format
	case Float80:
		return X87Extended
	case Float128:
		return Binary128
	}
	panic("fp: unsupported type")
}

func toRaw[T Float](x T) uint128.Uint128 {
	switch v := any(x).(type) {
	case float32:
		return uint128.From64(uint64(math.Float32bits(v)))
	case float64:
		return uint128.From64(math.Float64bits(v))
	case Float16:
		return uint128.From64(uint64(v))
	case BFloat16:
		return uint128.From64(uint64(v))
	case Float80:
		return uint128.New(v.Lo, uint64(v.Hi))
	case Float128:
		return uint128.New(v.Lo, v.Hi)
	}
	panic("fp: unsupported type")
}

func fromRaw[T Float](raw uint128.Uint128) T {
	var zero T
	var out any
	switch any(zero).(type) {
	case float32:
		out = math.Float32frombits(uint32(raw.Lo))
	case float64:
		out = math.Float64frombits(raw.Lo)
	case Float16:
		out = Float16(raw.Lo)
	case BFloat16:
		out = BFloat16(raw.Lo)
	case Float80:
		out = Float80{Lo: raw.Lo, Hi: uint16(raw.Hi)}
	case Float128:
		out = Float128{Lo: raw.Lo, Hi: raw.Hi}
	default:
		panic("fp: unsupported type")
	}
	return out.(T)
}

// Float32 widens h exactly.
func (h Float16) Float32() float32 {
	return Convert[float32](h)
}

// Float32 widens b exactly.
func (b BFloat16) Float32() float32 {
	return Convert[float32](b)
}

// Float16FromFloat32 narrows f to binary16, rounding to nearest even.
func Float16FromFloat32(f float32) Float16 {
	return Convert[Float16](f)
}

// BFloat16FromFloat32 narrows f to bfloat16, rounding to nearest even.
func BFloat16FromFloat32(f float32) BFloat16 {
	return Convert[BFloat16](f)
}

// Float64 rounds x to the nearest binary64 value.
func (x Float80) Float64() float64 {
	return Convert[float64](x)
}

// Float64 rounds x to the nearest binary64 value.
func (x Float128) Float64() float64 {
	return Convert[float64](x)
}

// Float80FromFloat64 widens f exactly.
func Float80FromFloat64(f float64) Float80 {
	return Convert[Float80](f)
}

// Float128FromFloat64 widens f exactly.
func Float128FromFloat64(f float64) Float128 {
	return Convert[Float128](f)
}

func (h Float16) String() string  { return FromValue(h).Text('g', -1) }
func (b BFloat16) String() string { return FromValue(b).Text('g', -1) }
func (x Float80) String() string  { return FromValue(x).Text('g', -1) }
func (x Float128) String() string { return FromValue(x).Text('g', -1) }
