package bigint

import (
	"math/bits"
)

// Not returns the bitwise complement of x.
func (x Int[W]) Not() Int[W] {
	out := Zero[W](x.bits, x.signed)
	for i := range out.words {
		out.words[i] = ^x.words[i]
	}
	return out.norm()
}

// And returns x & n.
func (x Int[W]) And(n Int[W]) Int[W] {
	x.check(n)
	out := Zero[W](x.bits, x.signed)
	for i := range out.words {
		out.words[i] = x.words[i] & n.words[i]
	}
	return out.norm()
}

// AndNot returns x &^ n.
func (x Int[W]) AndNot(n Int[W]) Int[W] {
	x.check(n)
	out := Zero[W](x.bits, x.signed)
	for i := range out.words {
		out.words[i] = x.words[i] &^ n.words[i]
	}
	return out.norm()
}

// Or returns x | n.
func (x Int[W]) Or(n Int[W]) Int[W] {
	x.check(n)
	out := Zero[W](x.bits, x.signed)
	for i := range out.words {
		out.words[i] = x.words[i] | n.words[i]
	}
	return out.norm()
}

// Xor returns x ^ n.
func (x Int[W]) Xor(n Int[W]) Int[W] {
	x.check(n)
	out := Zero[W](x.bits, x.signed)
	for i := range out.words {
		out.words[i] = x.words[i] ^ n.words[i]
	}
	return out.norm()
}

// AndUint64 returns x & v, zero-extending v to x's width.
func (x Int[W]) AndUint64(v uint64) Int[W] {
	return x.And(FromUint64[W](x.bits, x.signed, v))
}

// OrUint64 returns x | v, zero-extending v to x's width.
func (x Int[W]) OrUint64(v uint64) Int[W] {
	return x.Or(FromUint64[W](x.bits, x.signed, v))
}

// XorUint64 returns x ^ v, zero-extending v to x's width.
func (x Int[W]) XorUint64(v uint64) Int[W] {
	return x.Xor(FromUint64[W](x.bits, x.signed, v))
}

// AndInt64 returns x & v, sign-extending v to x's width.
func (x Int[W]) AndInt64(v int64) Int[W] {
	return x.And(FromInt64[W](x.bits, x.signed, v))
}

// OrInt64 returns x | v, sign-extending v to x's width.
func (x Int[W]) OrInt64(v int64) Int[W] {
	return x.Or(FromInt64[W](x.bits, x.signed, v))
}

// XorInt64 returns x ^ v, sign-extending v to x's width.
func (x Int[W]) XorInt64(v int64) Int[W] {
	return x.Xor(FromInt64[W](x.bits, x.signed, v))
}

// Lsh returns x shifted left by n bits, zero-filling the vacated low bits.
// Shifting by the width or more yields zero.
func (x Int[W]) Lsh(n uint) Int[W] {
	out := Zero[W](x.bits, x.signed)
	if n >= x.bits {
		return out
	}
	wb := wordBits[W]()
	ws, bs := int(n/wb), n%wb
	if bs == 0 {
		for i := len(out.words) - 1; i >= ws; i-- {
			out.words[i] = x.words[i-ws]
		}
	} else {
		for i := len(out.words) - 1; i > ws; i-- {
			out.words[i] = x.words[i-ws]<<bs | x.words[i-ws-1]>>(wb-bs)
		}
		out.words[ws] = x.words[0] << bs
	}
	return out.norm()
}

// Rsh returns x shifted right by n bits. For unsigned layouts the vacated
// high bits are zero-filled; for signed layouts the shift is arithmetic,
// propagating the sign, and shifting by the width or more saturates to zero
// or minus one depending on the sign.
func (x Int[W]) Rsh(n uint) Int[W] {
	var fill W
	if x.IsNeg() {
		fill = ^W(0)
	}
	out := Zero[W](x.bits, x.signed)
	if n >= x.bits {
		for i := range out.words {
			out.words[i] = fill
		}
		return out.norm()
	}
	wb := wordBits[W]()
	ws, bs := int(n/wb), n%wb
	src := func(i int) W {
		if i < len(x.words) {
			return x.words[i]
		}
		return fill
	}
	if bs == 0 {
		for i := range out.words {
			out.words[i] = src(i + ws)
		}
	} else {
		for i := range out.words {
			out.words[i] = src(i+ws)>>bs | src(i+ws+1)<<(wb-bs)
		}
	}
	return out.norm()
}

// LeadingZeros returns the number of zero bits at the top of x's width.
// It returns the full width for zero.
func (x Int[W]) LeadingZeros() uint {
	wb := wordBits[W]()
	pad := uint(len(x.words))*wb - x.bits
	for i := len(x.words) - 1; i >= 0; i-- {
		if w := x.patWord(i); w != 0 {
			return uint(len(x.words)-1-i)*wb + (wb - uint(bits.Len64(uint64(w)))) - pad
		}
	}
	return x.bits
}

// TrailingZeros returns the number of zero bits at the bottom of x. It
// returns the full width for zero.
func (x Int[W]) TrailingZeros() uint {
	wb := wordBits[W]()
	for i := range x.words {
		if w := x.patWord(i); w != 0 {
			return uint(i)*wb + uint(bits.TrailingZeros64(uint64(w)))
		}
	}
	return x.bits
}

// LeadingOnes returns the number of one bits at the top of x's width.
func (x Int[W]) LeadingOnes() uint {
	return x.Not().LeadingZeros()
}

// TrailingOnes returns the number of one bits at the bottom of x.
func (x Int[W]) TrailingOnes() uint {
	return x.Not().TrailingZeros()
}

// MaskTrailingOnes returns the unsigned value of the given width whose low
// count bits are set. Counts at or above the width produce all ones.
func MaskTrailingOnes[W Word](bits, count uint) Int[W] {
	if count >= bits {
		return AllOnes[W](bits, false)
	}
	return AllOnes[W](bits, false).Rsh(bits - count)
}

// MaskLeadingOnes returns the unsigned value of the given width whose high
// count bits are set. Counts at or above the width produce all ones.
func MaskLeadingOnes[W Word](bits, count uint) Int[W] {
	if count >= bits {
		return AllOnes[W](bits, false)
	}
	return AllOnes[W](bits, false).Lsh(bits - count)
}

// MaskTrailingZeros returns the complement of MaskTrailingOnes.
func MaskTrailingZeros[W Word](bits, count uint) Int[W] {
	return MaskTrailingOnes[W](bits, count).Not()
}

// MaskLeadingZeros returns the complement of MaskLeadingOnes.
func MaskLeadingZeros[W Word](bits, count uint) Int[W] {
	return MaskLeadingOnes[W](bits, count).Not()
}
