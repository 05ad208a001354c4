package bigint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroWidthPanics(t *testing.T) {
	require.Panics(t, func() { Zero[uint64](0, false) })
	require.Panics(t, func() { FromUint64[uint32](0, false, 1) })
}

func TestLayout(t *testing.T) {
	a := Zero[uint32](96, true)
	require.Equal(t, uint(96), a.Bits())
	require.True(t, a.Signed())
	require.Len(t, a.Words(), 3)

	// Widths that are not a word multiple round the array up.
	b := Zero[uint64](96, false)
	require.Len(t, b.Words(), 2)

	c := Zero[uint16](40, false)
	require.Len(t, c.Words(), 3)
}

func TestWordsCopies(t *testing.T) {
	a := u128(1, 2)
	w := a.Words()
	w[0] = 99
	require.True(t, a.Equal(u128(1, 2)))
}

func TestMinMax(t *testing.T) {
	require.True(t, Min[uint64](128, false).IsZero())
	require.True(t, Max[uint64](128, false).Equal(AllOnes[uint64](128, false)))

	min, max := Min[uint64](128, true), Max[uint64](128, true)
	require.True(t, min.Equal(FromWords[uint64](128, true, 0, 0x8000000000000000)))
	require.True(t, max.Equal(FromWords[uint64](128, true, 0xffffffffffffffff, 0x7fffffffffffffff)))
	require.True(t, min.LessThan(max))
	require.True(t, max.Inc().Equal(min))
	require.True(t, min.Dec().Equal(max))

	min32 := Min[uint32](48, true)
	require.True(t, min32.Equal(FromWords[uint32](48, true, 0, 0x8000)))
}

func TestFromUint64(t *testing.T) {
	a := FromUint64[uint16](96, false, 0x8899aabbccddeeff)
	require.True(t, a.Equal(FromWords[uint16](96, false, 0xeeff, 0xccdd, 0xaabb, 0x8899, 0, 0)))

	// Always zero-extends, even into signed layouts.
	b := FromUint64[uint64](128, true, 0xffffffffffffffff)
	require.False(t, b.IsNeg())
	require.True(t, b.Equal(FromWords[uint64](128, true, 0xffffffffffffffff, 0)))

	// Truncates when the width is narrower than the scalar.
	c := FromUint64[uint64](32, false, 0x1_0000_0001)
	require.Equal(t, uint64(1), c.AsUint64())
}

func TestFromInt64(t *testing.T) {
	a := FromInt64[uint16](96, true, -1)
	require.True(t, a.Equal(AllOnes[uint16](96, true)))

	b := FromInt64[uint32](96, true, -0x123456789)
	require.True(t, b.Equal(FromWords[uint32](96, true, 0xdcba9877, 0xfffffffe, 0xffffffff)))
	require.True(t, b.Neg().Equal(FromInt64[uint32](96, true, 0x123456789)))

	// Sign extension happens even into unsigned layouts; the pattern
	// then reads back as a large positive value.
	c := FromInt64[uint64](96, false, -123)
	require.False(t, c.IsNeg())
	require.Equal(t, int64(-123), c.AsInt64())
	require.False(t, c.IsInt64())
}

func TestFromWords(t *testing.T) {
	a := FromWords[uint64](192, false, 1, 2)
	require.True(t, a.Equal(u64x(192, 1, 2, 0)))

	require.Panics(t, func() { FromWords[uint64](128, false, 1, 2, 3) })

	// Padding bits in the top word are discarded, not sign-extended.
	b := FromWords[uint32](40, false, 0, 0xffff)
	require.True(t, b.Equal(FromWords[uint32](40, false, 0, 0xff)))
}

func TestConvertWidth(t *testing.T) {
	a := u128(0x8899aabbccddeeff, 0x0011223344556677)

	wide := Convert[uint64](a, 256, false)
	require.True(t, wide.Equal(u64x(256, 0x8899aabbccddeeff, 0x0011223344556677, 0, 0)))

	narrow := Convert[uint64](a, 64, false)
	require.Equal(t, uint64(0x8899aabbccddeeff), narrow.AsUint64())

	odd := Convert[uint64](a, 72, false)
	require.True(t, odd.Equal(FromWords[uint64](72, false, 0x8899aabbccddeeff, 0x77)))
}

func TestConvertWordSize(t *testing.T) {
	a := FromWords[uint32](96, false, 123, 456, 789)

	b := Convert[uint64](a, 128, false)
	require.True(t, b.Equal(u128(123|456<<32, 789)))

	c := Convert[uint16](a, 96, false)
	require.True(t, c.Equal(FromWords[uint16](96, false, 123, 0, 456, 0, 789, 0)))

	// Round trip through the narrower word type.
	back := Convert[uint32](c, 96, false)
	require.True(t, back.Equal(a))
}

func TestConvertSigned(t *testing.T) {
	plus := FromWords[uint16](48, true, 0x1234, 0x5678, 0x1abc)
	minus := plus.Neg()

	widePlus := Convert[uint16](plus, 64, true)
	require.True(t, widePlus.Equal(FromWords[uint16](64, true, 0x1234, 0x5678, 0x1abc, 0)))

	wideMinus := Convert[uint16](minus, 64, true)
	require.True(t, wideMinus.Equal(widePlus.Neg()))

	// A negative source sign-extends across word sizes too.
	neg := FromInt64[uint32](96, true, -12345)
	require.Equal(t, int64(-12345), Convert[uint64](neg, 192, true).AsInt64())
	require.Equal(t, int64(-12345), Convert[uint16](neg, 48, true).AsInt64())

	// An unsigned source zero-extends no matter the pattern.
	u := AllOnes[uint32](32, false)
	require.True(t, Convert[uint64](u, 128, false).Equal(u128(0xffffffff, 0)))
}

func TestAsUnsignedAsSigned(t *testing.T) {
	a := FromInt64[uint64](128, true, -1)
	u := a.AsUnsigned()
	require.False(t, u.Signed())
	require.True(t, u.Equal(Max[uint64](128, false)))
	require.True(t, u.AsSigned().Equal(a))
}

func TestRand(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := Rand[uint64](127, false, globalRNG)
		require.Equal(t, uint(127), a.Bits())
		require.Len(t, a.Words(), 2)
		require.True(t, a.LessOrEqualTo(Max[uint64](127, false)))

		s := Rand[uint16](48, true, globalRNG)
		require.True(t, s.GreaterOrEqualTo(Min[uint16](48, true)))
		require.True(t, s.LessOrEqualTo(Max[uint16](48, true)))
	}
}

func TestStringer(t *testing.T) {
	for _, tc := range []struct {
		in   fmt.Stringer
		want string
	}{
		{u128(0, 0), "0"},
		{u128(12345, 0), "12345"},
		{u128(0, 1), "18446744073709551616"},
		{Max[uint64](128, false), "340282366920938463463374607431768211455"},
		{FromInt64[uint32](96, true, -1), "-1"},
		{Min[uint64](128, true), "-170141183460469231731687303715884105728"},
	} {
		require.Equal(t, tc.want, tc.in.String())
	}
}
