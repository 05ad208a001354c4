package bigint

import (
	"math/bits"
)

// Word is the set of unsigned integer types usable as the storage unit of an
// Int. The word type is fixed at compile time; operands with different word
// types cannot be mixed without an explicit Convert.
type Word interface {
	~uint16 | ~uint32 | ~uint64
}

// wordBits returns the number of bits in W.
func wordBits[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

// addWW adds two words and a carry, returning the sum and the carry out.
// carry must be 0 or 1.
func addWW[W Word](x, y, carry W) (sum, carryOut W) {
	s := x + y
	if s < x {
		carryOut = 1
	}
	sum = s + carry
	if sum < s {
		carryOut = 1
	}
	return sum, carryOut
}

// subWW subtracts y and a borrow from x, returning the difference and the
// borrow out. borrow must be 0 or 1.
func subWW[W Word](x, y, borrow W) (diff, borrowOut W) {
	d := x - y
	if d > x {
		borrowOut = 1
	}
	diff = d - borrow
	if diff > d {
		borrowOut = 1
	}
	return diff, borrowOut
}

// mulWW returns the full 2*wordBits product of u and v.
//
// Adapted from Warren, Hacker's Delight, p. 132: break the multiplication
// into (x1 << h + x0)(y1 << h + y0), which is
// x1*y1 << 2h + (x0*y1 + x1*y0) << h + x0*y0, so the partial products fit in
// a single word and can be shifted into the right place.
func mulWW[W Word](u, v W) (hi, lo W) {
	h := wordBits[W]() / 2
	mask := ^W(0) >> h

	u0, u1 := u&mask, u>>h
	v0, v1 := v&mask, v>>h

	t := u1*v0 + (u0*v0)>>h
	w1 := (t & mask) + u0*v1
	hi = u1*v1 + (t >> h) + (w1 >> h)
	lo = u * v
	return hi, lo
}

// divWWHalf divides the two-word value r<<wordBits | u by d, one half word at
// a time. d must fit in half a word and r must be less than d, which keeps
// every intermediate dividend inside a single word.
func divWWHalf[W Word](r, u, d W) (q, rem W) {
	h := wordBits[W]() / 2
	mask := ^W(0) >> h

	cur := r<<h | u>>h
	q1 := cur / d
	cur = (cur%d)<<h | u&mask
	q0 := cur / d
	return q1<<h | q0, cur % d
}
