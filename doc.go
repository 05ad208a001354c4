/*
Package bigint provides fixed-width integer arithmetic over an arbitrary
multiple of a machine word, in both unsigned and two's complement signed
flavours.

A value is parameterised by its limb type (uint16, uint32 or uint64) and
carries its bit width and signedness, fixed at construction:

	a := bigint.FromUint64[uint64](256, false, 1)
	b := a.Lsh(200)
	q, r, ok := b.Div(a)

Values are immutable. Every operation returns a fresh value with the same
layout as its receiver, and operations that take a second operand require it
to share that layout. Overflow wraps, matching the behaviour of Go's native
unsigned integers at any width; Add and Sub also come in Overflow variants
that report the carry out.

Division is fallible rather than panicking: Div returns ok == false for a
zero divisor, while the Quo, Rem and QuoRem convenience forms panic the way
the native operators do. Signed division truncates toward zero.

Conversion to and from math/big, strings, JSON and native scalars is
provided, along with lossless bit casts of float32 and float64 payloads.
*/
package bigint
