package bigint

// Int is a fixed-width integer backed by an ordered sequence of words,
// least significant word first. The bit width and signedness are fixed when
// the value is constructed; the word type is fixed by the type parameter.
//
// Negative values are stored in two's complement over the full width. When
// the width is not a multiple of the word size, the bits of the top word
// above the logical boundary hold zero for unsigned values and copies of the
// sign bit for signed values; every operation re-establishes this.
//
// Int values are immutable: operations return new values and never modify
// their operands. Binary operations require both operands to share the same
// width and signedness and panic otherwise; convert first if they do not.
type Int[W Word] struct {
	bits   uint
	signed bool
	words  []W
}

// Zero returns the zero value of the given width and signedness. The width
// must be at least 1.
func Zero[W Word](bits uint, signed bool) Int[W] {
	if bits == 0 {
		panic("bigint: zero bit width")
	}
	wb := wordBits[W]()
	return Int[W]{
		bits:   bits,
		signed: signed,
		words:  make([]W, (bits+wb-1)/wb),
	}
}

// One returns the value 1 of the given width and signedness.
func One[W Word](bits uint, signed bool) Int[W] {
	return FromUint64[W](bits, signed, 1)
}

// AllOnes returns the value with every bit of the width set: the maximum
// unsigned value, or -1 for signed layouts.
func AllOnes[W Word](bits uint, signed bool) Int[W] {
	out := Zero[W](bits, signed)
	for i := range out.words {
		out.words[i] = ^W(0)
	}
	return out.norm()
}

// Min returns the smallest representable value: zero for unsigned layouts,
// -(2^(bits-1)) for signed ones.
func Min[W Word](bits uint, signed bool) Int[W] {
	if !signed {
		return Zero[W](bits, false)
	}
	return One[W](bits, true).Lsh(bits - 1)
}

// Max returns the largest representable value.
func Max[W Word](bits uint, signed bool) Int[W] {
	if !signed {
		return AllOnes[W](bits, false)
	}
	return Min[W](bits, true).Not()
}

// FromUint64 creates an Int of the given layout from v. The remaining high
// bits are zero-filled regardless of the target's signedness.
func FromUint64[W Word](bits uint, signed bool, v uint64) Int[W] {
	out := Zero[W](bits, signed)
	wb := wordBits[W]()
	for i := range out.words {
		if v == 0 {
			break
		}
		out.words[i] = W(v)
		v >>= wb
	}
	return out.norm()
}

// FromInt64 creates an Int of the given layout from v, sign-extending
// through the remaining high bits when v is negative.
func FromInt64[W Word](bits uint, signed bool, v int64) Int[W] {
	out := Zero[W](bits, signed)
	wb := wordBits[W]()
	for i := range out.words {
		out.words[i] = W(uint64(v))
		v >>= wb
	}
	return out.norm()
}

// FromWords creates an Int of the given layout from words given in order
// from least to most significant. Missing high words are zero-filled; no
// sign is inferred from the last given word. Passing more words than the
// width stores is a panic.
func FromWords[W Word](bits uint, signed bool, words ...W) Int[W] {
	out := Zero[W](bits, signed)
	if len(words) > len(out.words) {
		panic("bigint: too many words for width")
	}
	copy(out.words, words)
	return out.norm()
}

// Convert re-chunks the logical bit pattern of x into an Int with the given
// word type, width and signedness. The pattern is zero- or sign-extended
// according to x's own signedness and sign; high bits are dropped when the
// destination is narrower, even if that discards the sign.
func Convert[Dst Word, Src Word](x Int[Src], bits uint, signed bool) Int[Dst] {
	out := Zero[Dst](bits, signed)
	sw, dw := wordBits[Src](), wordBits[Dst]()

	var fill Src
	if x.IsNeg() {
		fill = ^Src(0)
	}
	src := func(i uint) Src {
		if i < uint(len(x.words)) {
			return x.words[i]
		}
		return fill
	}

	for i := range out.words {
		var w Dst
		base := uint(i) * dw
		for got := uint(0); got < dw; {
			pos := base + got
			w |= Dst(src(pos/sw)>>(pos%sw)) << got
			got += sw - pos%sw
		}
		out.words[i] = w
	}
	return out.norm()
}

// RandSource is a source of random bits for Rand.
type RandSource interface {
	Uint64() uint64
}

// Rand generates a random bit pattern of the given layout from an external
// source. Signed layouts may produce negative values.
func Rand[W Word](bits uint, signed bool, source RandSource) Int[W] {
	out := Zero[W](bits, signed)
	wb := wordBits[W]()
	var buf uint64
	var have uint
	for i := range out.words {
		if have == 0 {
			buf = source.Uint64()
			have = 64
		}
		out.words[i] = W(buf)
		buf >>= wb
		have -= wb
	}
	return out.norm()
}

// Bits returns the width of x in bits.
func (x Int[W]) Bits() uint { return x.bits }

// Signed reports whether x is interpreted as a two's complement signed
// value.
func (x Int[W]) Signed() bool { return x.signed }

// Words returns a copy of x's words, least significant first. For signed
// layouts whose width is not a multiple of the word size, the top word
// carries the sign extension above the logical boundary.
func (x Int[W]) Words() []W {
	out := make([]W, len(x.words))
	copy(out, x.words)
	return out
}

// AsUnsigned reinterprets x's bit pattern as an unsigned value of the same
// width. See Convert for value-preserving conversions.
func (x Int[W]) AsUnsigned() Int[W] {
	out := x.clone()
	out.signed = false
	return out.norm()
}

// AsSigned reinterprets x's bit pattern as a two's complement signed value
// of the same width. See Convert for value-preserving conversions.
func (x Int[W]) AsSigned() Int[W] {
	out := x.clone()
	out.signed = true
	return out.norm()
}

// IsZero reports whether x is zero.
func (x Int[W]) IsZero() bool {
	for _, w := range x.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsNeg reports whether x is negative. Unsigned values are never negative.
func (x Int[W]) IsNeg() bool {
	if !x.signed {
		return false
	}
	return x.words[len(x.words)-1]>>(wordBits[W]()-1) == 1
}

// Sign returns -1 for negative x, 0 for zero and 1 otherwise.
func (x Int[W]) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.IsNeg() {
		return -1
	}
	return 1
}

func (x Int[W]) clone() Int[W] {
	words := make([]W, len(x.words))
	copy(words, x.words)
	x.words = words
	return x
}

// norm re-establishes the top word invariant: padding bits above the logical
// boundary are zero for unsigned values and copies of the sign bit for
// signed ones. The receiver's word slice must not be shared.
func (x Int[W]) norm() Int[W] {
	top := x.bits % wordBits[W]()
	if top == 0 {
		return x
	}
	last := len(x.words) - 1
	if x.signed && x.words[last]>>(top-1)&1 == 1 {
		x.words[last] |= ^W(0) << top
	} else {
		x.words[last] &= ^(^W(0) << top)
	}
	return x
}

// patWord returns word i of the logical bit pattern, with any sign
// extension above the top of the width masked away.
func (x Int[W]) patWord(i int) W {
	w := x.words[i]
	if i == len(x.words)-1 {
		if top := x.bits % wordBits[W](); top != 0 {
			w &= ^(^W(0) << top)
		}
	}
	return w
}

// check panics unless n shares x's layout. Operations across layouts
// require an explicit conversion first.
func (x Int[W]) check(n Int[W]) {
	if x.bits != n.bits || x.signed != n.signed {
		panic("bigint: mismatched operand layouts")
	}
}

// ucmp compares the logical bit patterns of x and n as unsigned values.
func (x Int[W]) ucmp(n Int[W]) int {
	for i := len(x.words) - 1; i >= 0; i-- {
		a, b := x.patWord(i), n.patWord(i)
		if a > b {
			return 1
		} else if a < b {
			return -1
		}
	}
	return 0
}

// magnitude returns |x| as an unsigned pattern of the same width. The most
// negative value is its own magnitude, which is exact in the unsigned
// interpretation.
func (x Int[W]) magnitude() Int[W] {
	if x.IsNeg() {
		x = x.Neg()
	}
	return x.AsUnsigned()
}

// withSigned reinterprets x with the given signedness flag.
func (x Int[W]) withSigned(signed bool) Int[W] {
	if signed {
		return x.AsSigned()
	}
	return x.AsUnsigned()
}
