package bigint

// Inc returns x + 1, wrapping to the minimum representable pattern on
// overflow from all ones.
func (x Int[W]) Inc() Int[W] {
	out := x.clone()
	for i := range out.words {
		out.words[i]++
		if out.words[i] != 0 {
			break
		}
	}
	return out.norm()
}

// Dec returns x - 1, wrapping on underflow.
func (x Int[W]) Dec() Int[W] {
	out := x.clone()
	for i := range out.words {
		out.words[i]--
		if out.words[i] != ^W(0) {
			break
		}
	}
	return out.norm()
}

// Add returns x + n. Overflow wraps silently; the bit-level algorithm is the
// same for signed and unsigned layouts.
func (x Int[W]) Add(n Int[W]) Int[W] {
	x.check(n)
	out := Zero[W](x.bits, x.signed)
	var carry W
	for i := range out.words {
		out.words[i], carry = addWW(x.words[i], n.words[i], carry)
	}
	return out.norm()
}

// AddOverflow returns x + n along with an indicator reporting carry out of
// the logical width.
func (x Int[W]) AddOverflow(n Int[W]) (Int[W], bool) {
	out := x.Add(n)
	return out, out.ucmp(x) < 0
}

// Sub returns x - n. Underflow wraps silently.
func (x Int[W]) Sub(n Int[W]) Int[W] {
	x.check(n)
	out := Zero[W](x.bits, x.signed)
	var borrow W
	for i := range out.words {
		out.words[i], borrow = subWW(x.words[i], n.words[i], borrow)
	}
	return out.norm()
}

// SubOverflow returns x - n along with an indicator reporting borrow out of
// the logical width.
func (x Int[W]) SubOverflow(n Int[W]) (Int[W], bool) {
	return x.Sub(n), x.ucmp(n) < 0
}

// Neg returns the two's complement negation of x. It is defined for
// unsigned layouts too, producing the wraparound bit pattern, and the most
// negative signed value negates to itself.
func (x Int[W]) Neg() Int[W] {
	return x.Not().Inc()
}

// Abs returns the absolute value of x. The most negative signed value is
// its own absolute value.
func (x Int[W]) Abs() Int[W] {
	if x.IsNeg() {
		return x.Neg()
	}
	return x
}

// Mul returns the product x * n truncated to the operand width. Overflow
// wraps; signed and unsigned layouts share the bit-level algorithm.
func (x Int[W]) Mul(n Int[W]) Int[W] {
	x.check(n)
	out := Zero[W](x.bits, x.signed)
	k := len(out.words)
	for i := 0; i < k; i++ {
		a := x.patWord(i)
		if a == 0 {
			continue
		}
		var carry W
		for j := 0; i+j < k; j++ {
			hi, lo := mulWW(a, n.patWord(j))
			lo, c := addWW(lo, carry, 0)
			hi += c
			out.words[i+j], c = addWW(out.words[i+j], lo, 0)
			carry = hi + c
		}
	}
	return out.norm()
}

// FullMul returns the exact product of x and n as a value of width
// x.Bits() + n.Bits(). The operands may have different widths but must
// share signedness; their bit patterns are multiplied as unsigned
// magnitudes, so FullMul is commutative.
func (x Int[W]) FullMul(n Int[W]) Int[W] {
	if x.signed != n.signed {
		panic("bigint: mismatched operand layouts")
	}
	out := Zero[W](x.bits+n.bits, x.signed)
	nw := len(n.words)
	for i := range x.words {
		a := x.patWord(i)
		if a == 0 {
			continue
		}
		var carry W
		for j := 0; j < nw; j++ {
			hi, lo := mulWW(a, n.patWord(j))
			lo, c := addWW(lo, carry, 0)
			hi += c
			out.words[i+j], c = addWW(out.words[i+j], lo, 0)
			carry = hi + c
		}
		// The top row's carry can land past the array when neither width
		// is a word multiple; the product fits regardless, so it is zero.
		if i+nw < len(out.words) {
			out.words[i+nw] = carry
		}
	}
	return out.norm()
}

// QuickMulHi computes a cheap approximation of the high half of the full
// product x * n. It keeps every partial product of the word diagonal that
// straddles the half-way boundary but discards all lower columns, so the
// result never exceeds the exact high half and understates it by at most
// wordCount-1: for 64-bit words that is 1 at 128 bits, 2 at 192, 3 at 256
// and 7 at 512. The high half is taken at the word-count boundary, which
// coincides with the bit width when the width is a multiple of the word
// size.
func (x Int[W]) QuickMulHi(n Int[W]) Int[W] {
	x.check(n)
	k := len(x.words)

	// buf covers columns k-1 .. 2k-1 of the full product.
	buf := make([]W, k+1)
	addAt := func(w W, col int) {
		for ; w != 0 && col < len(buf); col++ {
			buf[col], w = addWW(buf[col], w, 0)
		}
	}
	for i := 0; i < k; i++ {
		a := x.patWord(i)
		if a == 0 {
			continue
		}
		for j := k - 1 - i; j < k; j++ {
			hi, lo := mulWW(a, n.patWord(j))
			addAt(lo, i+j-(k-1))
			addAt(hi, i+j-(k-1)+1)
		}
	}

	out := Zero[W](x.bits, x.signed)
	copy(out.words, buf[1:])
	return out.norm()
}

// Pow returns x^n truncated to x's width, computed by binary
// exponentiation. Overflow wraps silently; 0^0 is 1.
func (x Int[W]) Pow(n uint) Int[W] {
	out := One[W](x.bits, x.signed)
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(x)
		}
		x = x.Mul(x)
		n >>= 1
	}
	return out
}

// Div returns the quotient and remainder of x / by. A zero divisor yields
// ok == false and zero results; Div never panics. Division truncates toward
// zero: the quotient's sign is the XOR of the operand signs and the
// remainder takes the dividend's sign.
func (x Int[W]) Div(by Int[W]) (q, r Int[W], ok bool) {
	x.check(by)
	if by.IsZero() {
		return Zero[W](x.bits, x.signed), Zero[W](x.bits, x.signed), false
	}
	q, r = x.quoRem(by)
	return q, r, true
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs; use Div to test for it instead.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/by     with the result truncated toward zero
//	r = x - by*q
func (x Int[W]) QuoRem(by Int[W]) (q, r Int[W]) {
	x.check(by)
	if by.IsZero() {
		panic("bigint: division by zero")
	}
	return x.quoRem(by)
}

// Quo returns the quotient x / by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. See QuoRem for the semantics.
func (x Int[W]) Quo(by Int[W]) Int[W] {
	q, _ := x.QuoRem(by)
	return q
}

// Rem returns the remainder of x % by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. See QuoRem for the semantics.
func (x Int[W]) Rem(by Int[W]) Int[W] {
	_, r := x.QuoRem(by)
	return r
}

func (x Int[W]) quoRem(by Int[W]) (q, r Int[W]) {
	if !x.signed {
		return uquorem(x, by)
	}

	qNeg := x.IsNeg() != by.IsNeg()
	rNeg := x.IsNeg()

	uq, ur := uquorem(x.magnitude(), by.magnitude())
	q, r = uq.AsSigned(), ur.AsSigned()
	if qNeg {
		q = q.Neg()
	}
	if rNeg {
		r = r.Neg()
	}
	return q, r
}

// uquorem performs unsigned long division over the word arrays. Both
// operands must be unsigned layouts of the same width and by must be
// nonzero.
func uquorem[W Word](u, by Int[W]) (q, r Int[W]) {
	q = Zero[W](u.bits, false)
	r = Zero[W](u.bits, false)

	// Both values in a single word: native division suffices.
	if single(u) && single(by) {
		q.words[0] = u.words[0] / by.words[0]
		r.words[0] = u.words[0] % by.words[0]
		return q, r
	}

	byLeading0 := by.LeadingZeros()
	if byLeading0 == u.bits-1 { // divisor is 1
		return u, r
	}

	byTrailing0 := by.TrailingZeros()
	if byLeading0+byTrailing0 == u.bits-1 { // divisor is a power of two
		q = u.Rsh(byTrailing0)
		r = by.Dec().And(u)
		return q, r
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		q.words[0] = 1 // dividend and divisor are the same
		return q, r
	}

	// Binary shift-subtract over the word array.
	shift := int(byLeading0 - u.LeadingZeros())
	by = by.Lsh(uint(shift))
	for {
		q = q.Lsh(1)
		if u.Cmp(by) >= 0 {
			u = u.Sub(by)
			q.words[0] |= 1
		}
		by = by.Rsh(1)
		if shift <= 0 {
			break
		}
		shift--
	}
	return q, u
}

// single reports whether every word of x above the first is zero.
func single[W Word](x Int[W]) bool {
	for i := 1; i < len(x.words); i++ {
		if x.patWord(i) != 0 {
			return false
		}
	}
	return true
}

// DivScaled returns the quotient and remainder of dividing x's bit pattern
// by v << shift, without a full long division. v must fit in half a word
// (panic otherwise); a zero v yields ok == false. The pattern is treated as
// unsigned regardless of the layout's signedness.
func (x Int[W]) DivScaled(v W, shift uint) (q, r Int[W], ok bool) {
	if v > ^W(0)>>(wordBits[W]()/2) {
		panic("bigint: divisor does not fit in half a word")
	}
	if v == 0 {
		return Zero[W](x.bits, x.signed), Zero[W](x.bits, x.signed), false
	}

	p := x.AsUnsigned()
	shifted := p.Rsh(shift)

	uq := Zero[W](x.bits, false)
	var rem W
	for i := len(uq.words) - 1; i >= 0; i-- {
		uq.words[i], rem = divWWHalf(rem, shifted.words[i], v)
	}

	// The remainder is the short-division remainder scaled back up, plus
	// the low bits the shift removed.
	ur := Zero[W](x.bits, false)
	ur.words[0] = rem
	ur = ur.norm().Lsh(shift).Or(p.And(MaskTrailingOnes[W](x.bits, shift)))

	return uq.withSigned(x.signed), ur.withSigned(x.signed), true
}
