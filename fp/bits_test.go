package fp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestFormatLayout(t *testing.T) {
	for _, f := range Formats {
		t.Run(f.Name, func(t *testing.T) {
			assert.Equal(t, f.TotalBits, f.SignificandBits()+f.ExponentBits+1)
			assert.GreaterOrEqual(t, f.StorageBits, f.TotalBits)
			assert.Equal(t, f.MaxBiasedExponent(), 2*f.ExponentBias()+1)
		})
	}
	assert.Equal(t, 64, X87Extended.SignificandBits())
	assert.Equal(t, 64, X87Extended.Precision())
	assert.Equal(t, 1023, Binary64.ExponentBias())
	assert.Equal(t, 16383, Binary128.ExponentBias())
}

func TestRoundTripFloat64(t *testing.T) {
	values := []uint64{
		0, 1 << 63, 1, 0x000fffffffffffff, 0x0010000000000000,
		0x3ff0000000000000, 0x7fefffffffffffff, 0x7ff0000000000000,
		0xfff0000000000000, 0x7ff8000000000001, 0x7ff0000000000001,
		0xbfc4000000000000,
	}
	for _, v := range values {
		got := FromValue(math.Float64frombits(v)).Value()
		assert.Equal(t, v, math.Float64bits(got), "0x%016x", v)
	}
}

func TestRoundTripAllWidths(t *testing.T) {
	for _, v := range []uint32{0, 0x80000000, 1, 0x7f7fffff, 0x7fc00000, 0x7f800001, 0x3e200000} {
		assert.Equal(t, v, math.Float32bits(FromValue(math.Float32frombits(v)).Value()))
	}
	for _, v := range []uint16{0, 0x8000, 1, 0x7bff, 0x7c00, 0x7e00, 0x7c01, 0x3c00} {
		assert.Equal(t, Float16(v), FromValue(Float16(v)).Value())
		assert.Equal(t, BFloat16(v), FromValue(BFloat16(v)).Value())
	}
	for _, v := range []Float80{
		{}, {Hi: 0x8000}, {Lo: 1}, {Lo: 1 << 63, Hi: 0x3fff},
		{Lo: 1 << 63, Hi: 0x7fff}, {Lo: 0xc000000000000000, Hi: 0xffff},
		{Lo: 0x4000000000000000, Hi: 0x4000},
	} {
		assert.Equal(t, v, FromValue(v).Value())
	}
	for _, v := range []Float128{
		{}, {Hi: 1 << 63}, {Lo: 1}, {Hi: 0x3fff000000000000},
		{Lo: math.MaxUint64, Hi: 0x7ffeffffffffffff}, {Hi: 0x7fff800000000000},
	} {
		assert.Equal(t, v, FromValue(v).Value())
	}
}

func TestAccessors(t *testing.T) {
	b := FromValue(2.0)
	assert.Equal(t, Pos, b.Sign())
	assert.Equal(t, 1024, b.BiasedExponent())
	assert.Equal(t, 1, b.Exponent())
	assert.True(t, b.Mantissa().IsZero())
	assert.True(t, b.ImplicitBit())

	b = FromValue(-0.15625)
	assert.Equal(t, Neg, b.Sign())
	assert.Equal(t, -3, b.Exponent())
	assert.Equal(t, uint64(1)<<50, b.Mantissa().Lo)
	assert.Equal(t, uint64(5)<<50, b.Significand().Lo)

	sub := FromValue(math.SmallestNonzeroFloat64)
	assert.Equal(t, 0, sub.BiasedExponent())
	assert.Equal(t, -1022, sub.ExplicitExponent())
	assert.False(t, sub.ImplicitBit())
	assert.Equal(t, 0, FromValue(0.0).ExplicitExponent())

	x := FromValue(Float80{Lo: 0xb504f333f9de6484, Hi: 0x3fff})
	assert.True(t, x.ImplicitBit())
	assert.Equal(t, uint64(0x3504f333f9de6484), x.Mantissa().Lo)
	assert.Equal(t, uint64(0xb504f333f9de6484), x.StoredSignificand().Lo)
	assert.Equal(t, 0, x.Exponent())
}

func TestMutatorsTouchOneField(t *testing.T) {
	b := FromValue(-3.5)
	e := b.WithBiasedExponent(1000)
	assert.Equal(t, b.Sign(), e.Sign())
	assert.Equal(t, b.Mantissa(), e.Mantissa())
	assert.Equal(t, 1000, e.BiasedExponent())

	m := b.WithMantissa(uint128.From64(7))
	assert.Equal(t, b.Sign(), m.Sign())
	assert.Equal(t, b.BiasedExponent(), m.BiasedExponent())
	assert.Equal(t, uint64(7), m.Mantissa().Lo)

	s := b.WithSign(Pos)
	assert.Equal(t, 3.5, s.Value())
	assert.Equal(t, -3.5, s.WithSign(Neg).Value())

	// Implicit formats ignore the integer bit.
	assert.Equal(t, b, b.WithImplicitBit(false))

	x := FromValue(Float80{Lo: 1 << 63, Hi: 0xbfff})
	cleared := x.WithImplicitBit(false)
	assert.False(t, cleared.ImplicitBit())
	assert.Equal(t, x.Sign(), cleared.Sign())
	assert.Equal(t, x.BiasedExponent(), cleared.BiasedExponent())
	assert.Equal(t, x.Mantissa(), cleared.Mantissa())
	assert.True(t, cleared.IsUnnormal())
	assert.Equal(t, x, cleared.WithImplicitBit(true))

	// Mantissa bits beyond the field are dropped.
	wide := FromValue(float32(1)).WithMantissa(uint128.Max)
	assert.Equal(t, uint32(0x3fffffff), math.Float32bits(wide.Value()))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		got  Class
		want Class
	}{
		{"f64 zero", FromValue(0.0).Classify(), ClassZero},
		{"f64 neg zero", FromValue(math.Copysign(0, -1)).Classify(), ClassZero},
		{"f64 subnormal", FromValue(math.SmallestNonzeroFloat64).Classify(), ClassSubnormal},
		{"f64 normal", FromValue(1.5).Classify(), ClassNormal},
		{"f64 inf", FromValue(math.Inf(-1)).Classify(), ClassInfinite},
		{"f64 nan", FromValue(math.NaN()).Classify(), ClassNaN},
		{"f32 subnormal", FromValue(float32(1e-40)).Classify(), ClassSubnormal},
		{"f16 inf", FromValue(Float16(0x7c00)).Classify(), ClassInfinite},
		{"f16 nan", FromValue(Float16(0x7c01)).Classify(), ClassNaN},
		{"bf16 subnormal", FromValue(BFloat16(0x0001)).Classify(), ClassSubnormal},
		{"f80 zero", FromValue(Float80{}).Classify(), ClassZero},
		{"f80 pseudo denormal", FromValue(Float80{Lo: 1 << 63}).Classify(), ClassSubnormal},
		{"f80 inf", FromValue(Float80{Lo: 1 << 63, Hi: 0x7fff}).Classify(), ClassInfinite},
		{"f80 pseudo inf", FromValue(Float80{Hi: 0x7fff}).Classify(), ClassInfinite},
		{"f80 nan", FromValue(Float80{Lo: 0xc000000000000000, Hi: 0x7fff}).Classify(), ClassNaN},
		{"f128 normal", FromValue(Float128{Hi: 0x3fff000000000000}).Classify(), ClassNormal},
		{"f128 nan", FromValue(Float128{Lo: 1, Hi: 0x7fff000000000000}).Classify(), ClassNaN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got, "got %s", tt.got)
		})
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, FromValue(math.NaN()).IsQuietNaN())
	assert.True(t, FromValue(math.Float64frombits(0x7ff0000000000001)).IsSignalingNaN())
	assert.True(t, FromValue(math.Inf(1)).IsInfOrNaN())
	assert.True(t, FromValue(-1.0).IsNeg())
	assert.True(t, FromValue(-1.0).IsFinite())
	assert.False(t, FromValue(math.Inf(1)).IsFinite())
	assert.False(t, FromValue(1.0).IsUnnormal())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, math.Inf(1), Inf[float64](Pos).Value())
	assert.Equal(t, math.Inf(-1), Inf[float64](Neg).Value())
	assert.Equal(t, uint64(0x7ff8000000000000), math.Float64bits(QuietNaN[float64](Pos).Value()))
	assert.Equal(t, uint64(0xfff8000000000000), math.Float64bits(QuietNaN[float64](Neg).Value()))
	assert.Equal(t, math.MaxFloat64, MaxNormal[float64](Pos).Value())
	assert.Equal(t, math.SmallestNonzeroFloat64, MinSubnormal[float64](Pos).Value())
	assert.Equal(t, 0x1p-1022, MinNormal[float64](Pos).Value())
	assert.Equal(t, -1.0, One[float64](Neg).Value())
	assert.Equal(t, uint64(1<<63), math.Float64bits(Zero[float64](Neg).Value()))

	assert.Equal(t, uint32(0x7fc00000), math.Float32bits(QuietNaN[float32](Pos).Value()))
	assert.Equal(t, Float16(0x7bff), MaxNormal[Float16](Pos).Value())
	assert.Equal(t, Float16(0x7e00), QuietNaN[Float16](Pos).Value())
	assert.Equal(t, BFloat16(0x7fc0), QuietNaN[BFloat16](Pos).Value())
	assert.Equal(t, BFloat16(0x3f80), One[BFloat16](Pos).Value())

	assert.Equal(t, Float80{Lo: 1 << 63, Hi: 0x3fff}, One[Float80](Pos).Value())
	assert.Equal(t, Float80{Lo: 1 << 63, Hi: 0x7fff}, Inf[Float80](Pos).Value())
	assert.Equal(t, Float80{Lo: 0xc000000000000000, Hi: 0xffff}, QuietNaN[Float80](Neg).Value())
	assert.Equal(t, Float80{Lo: math.MaxUint64, Hi: 0x7ffe}, MaxNormal[Float80](Pos).Value())
	assert.Equal(t, Float80{Lo: 1 << 63, Hi: 0x0001}, MinNormal[Float80](Pos).Value())

	assert.Equal(t, Float128{Hi: 0x3fff000000000000}, One[Float128](Pos).Value())
	assert.Equal(t, Float128{Hi: 0x7fff800000000000}, QuietNaN[Float128](Pos).Value())
	assert.Equal(t, Float128{Lo: math.MaxUint64, Hi: 0x7ffeffffffffffff}, MaxNormal[Float128](Pos).Value())
}

func TestFromRawMasks(t *testing.T) {
	b := FromRaw[Float16](uint128.New(0xffffffff3c00, 1))
	assert.Equal(t, Float16(0x3c00), b.Value())

	x := FromRaw[Float80](uint128.New(1<<63, 0xffff3fff))
	assert.Equal(t, Float80{Lo: 1 << 63, Hi: 0x3fff}, x.Value())
}

func TestNormalize(t *testing.T) {
	sub := FromValue(math.SmallestNonzeroFloat64)
	exp, mant := Normalize[float64](sub.ExplicitExponent(), sub.Significand())
	assert.Equal(t, -1074, exp)
	assert.Equal(t, uint64(1)<<52, mant.Lo)

	// The value is preserved: mant × 2^(exp-52).
	sub = FromValue(math.Float64frombits(0x000000000000abcd))
	exp, mant = Normalize[float64](sub.ExplicitExponent(), sub.Significand())
	assert.Equal(t, 52, mant.Len()-1)
	assert.Equal(t, math.Float64frombits(0xabcd), math.Ldexp(float64(mant.Lo), exp-52))

	exp, mant = Normalize[Float80](-16382, uint128.From64(1))
	assert.Equal(t, -16382-63, exp)
	assert.Equal(t, uint64(1)<<63, mant.Lo)

	exp, mant = Normalize[Float128](7, uint128.Zero)
	assert.Equal(t, 7, exp)
	assert.True(t, mant.IsZero())
}

func TestTextAndHex(t *testing.T) {
	assert.Equal(t, "0.15625", FromValue(0.15625).Text('g', -1))
	assert.Equal(t, "0x3fc4000000000000", FromValue(0.15625).Hex())
	assert.Equal(t, "0x40008000000000000000", FromValue(Float80FromFloat64(2)).Hex())
	assert.Equal(t, "0x40000000000000000000000000000000", FromValue(Float128FromFloat64(2)).Hex())
	assert.Equal(t, "NaN", FromValue(math.NaN()).Text('g', -1))
	assert.Equal(t, "-Inf", FromValue(math.Inf(-1)).Text('g', -1))
	assert.Equal(t, "1.5", Float80FromFloat64(1.5).String())
	assert.Contains(t, FromValue(1.0).String(), "binary64")

	f := FromValue(Float80{Lo: 1 << 63, Hi: 0x3fff}).BigFloat()
	require.NotNil(t, f)
	v, _ := f.Float64()
	assert.Equal(t, 1.0, v)
}
