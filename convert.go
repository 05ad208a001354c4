package bigint

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

var bigOne = new(big.Int).SetUint64(1)

// AsUint64 returns the low 64 bits of x. Negative values are sign-extended
// into the result, so the returned pattern equals uint64(int64(x)) for
// in-range signed values.
func (x Int[W]) AsUint64() uint64 {
	wb := wordBits[W]()
	var v uint64
	for i := range x.words {
		sh := uint(i) * wb
		if sh >= 64 {
			break
		}
		v |= uint64(x.words[i]) << sh
	}
	if total := uint(len(x.words)) * wb; total < 64 && x.IsNeg() {
		v |= ^uint64(0) << total
	}
	return v
}

// AsInt64 returns the low 64 bits of x as a signed scalar.
func (x Int[W]) AsInt64() int64 {
	return int64(x.AsUint64())
}

// IsUint64 reports whether x can be represented as a uint64 without loss.
func (x Int[W]) IsUint64() bool {
	return !x.IsNeg() && FromUint64[W](x.bits, x.signed, x.AsUint64()).Equal(x)
}

// IsInt64 reports whether x can be represented as an int64 without loss.
func (x Int[W]) IsInt64() bool {
	v := x.AsInt64()
	if !x.signed && v < 0 {
		return false
	}
	return FromInt64[W](x.bits, x.signed, v).Equal(x)
}

// IntoBigInt copies the value of x into b.
func (x Int[W]) IntoBigInt(b *big.Int) {
	wb := wordBits[W]()
	wby := int(wb / 8)
	buf := make([]byte, len(x.words)*wby)
	for i := range x.words {
		w := uint64(x.patWord(i))
		off := len(buf) - (i+1)*wby
		for j := 0; j < wby; j++ {
			buf[off+wby-1-j] = byte(w >> (8 * uint(j)))
		}
	}
	b.SetBytes(buf)
	if x.IsNeg() {
		b.Sub(b, new(big.Int).Lsh(bigOne, x.bits))
	}
}

// AsBigInt returns the value of x as a big.Int.
func (x Int[W]) AsBigInt() *big.Int {
	b := new(big.Int)
	x.IntoBigInt(b)
	return b
}

func bigRange(bits uint, signed bool) (lo, hi *big.Int) {
	if signed {
		hi = new(big.Int).Lsh(bigOne, bits-1)
		lo = new(big.Int).Neg(hi)
		hi.Sub(hi, bigOne)
	} else {
		lo = new(big.Int)
		hi = new(big.Int).Lsh(bigOne, bits)
		hi.Sub(hi, bigOne)
	}
	return lo, hi
}

// FromBigInt builds a value of the given layout from b. Values outside the
// layout's range clamp to Min or Max, reported by accurate == false.
func FromBigInt[W Word](bits uint, signed bool, b *big.Int) (out Int[W], accurate bool) {
	lo, hi := bigRange(bits, signed)
	if b.Cmp(lo) < 0 {
		return Min[W](bits, signed), false
	}
	if b.Cmp(hi) > 0 {
		return Max[W](bits, signed), false
	}
	v := b
	if b.Sign() < 0 {
		v = new(big.Int).Add(b, new(big.Int).Lsh(bigOne, bits))
	}
	out = Zero[W](bits, signed)
	wb := wordBits[W]()
	raw := v.Bytes()
	for bi := range raw {
		bit := uint(len(raw)-1-bi) * 8
		wi := int(bit / wb)
		if wi >= len(out.words) {
			continue
		}
		out.words[wi] |= W(raw[bi]) << (bit % wb)
	}
	return out.norm(), true
}

// FromString builds a value of the given layout from s, which may use any
// base accepted by big.Int.SetString with base 0. Out-of-range values clamp
// the way FromBigInt does.
func FromString[W Word](bits uint, signed bool, s string) (out Int[W], accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Zero[W](bits, signed), false, fmt.Errorf("bigint: string %q invalid", s)
	}
	out, accurate = FromBigInt[W](bits, signed, b)
	return out, accurate, nil
}

// MustFromString builds a value from s and panics on a malformed or
// out-of-range input. Intended for static initialisers.
func MustFromString[W Word](bits uint, signed bool, s string) Int[W] {
	out, accurate, err := FromString[W](bits, signed, s)
	if err != nil {
		panic(err)
	}
	if !accurate {
		panic(fmt.Errorf("bigint: string %q out of range", s))
	}
	return out
}

func (x Int[W]) String() string {
	if x.IsZero() {
		return "0"
	}
	if x.IsUint64() {
		return strconv.FormatUint(x.AsUint64(), 10)
	}
	return x.AsBigInt().String()
}

func (x Int[W]) Format(s fmt.State, c rune) {
	x.AsBigInt().Format(s, c)
}

func (x Int[W]) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Int[W]) UnmarshalText(b []byte) error {
	if x.bits == 0 {
		return fmt.Errorf("bigint: cannot unmarshal into unsized value")
	}
	v, _, err := FromString[W](x.bits, x.signed, string(b))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Int[W]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + x.String() + `"`), nil
}

func (x *Int[W]) UnmarshalJSON(b []byte) error {
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	return x.UnmarshalText(b)
}

// FromFloat64Bits returns the 64-bit unsigned value holding the bit pattern
// of f.
func FromFloat64Bits[W Word](f float64) Int[W] {
	return FromUint64[W](64, false, math.Float64bits(f))
}

// FromFloat32Bits returns the 32-bit unsigned value holding the bit pattern
// of f.
func FromFloat32Bits[W Word](f float32) Int[W] {
	return FromUint64[W](32, false, uint64(math.Float32bits(f)))
}

// AsFloat64Bits reinterprets x's bits as a float64. The width must be
// exactly 64.
func (x Int[W]) AsFloat64Bits() float64 {
	if x.bits != 64 {
		panic("bigint: bit cast size mismatch")
	}
	return math.Float64frombits(x.AsUint64())
}

// AsFloat32Bits reinterprets x's bits as a float32. The width must be
// exactly 32.
func (x Int[W]) AsFloat32Bits() float32 {
	if x.bits != 32 {
		panic("bigint: bit cast size mismatch")
	}
	return math.Float32frombits(uint32(x.AsUint64()))
}
