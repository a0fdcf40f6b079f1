package sinteger

import (
	"github.com/aarith-go/aarith"
	"github.com/aarith-go/aarith/uinteger"
	"github.com/aarith-go/aarith/word"
)

// ExpandingAdd adds a and b (sign-extended to their common max width) with
// an optional carry-in, returning a result one bit wider than that common
// width. Addition is bit-identical between signed and unsigned integers;
// only the interpretation of the result differs, so this delegates to
// uinteger.ExpandingAdd on the sign-extended bit patterns.
func ExpandingAdd[T aarith.Word](a, b Int[T], carryIn bool) Int[T] {
	n := maxInt(a.Width(), b.Width())
	aw := uinteger.FromBits(a.WidthCast(n).bits)
	bw := uinteger.FromBits(b.WidthCast(n).bits)
	return Int[T]{bits: uinteger.ExpandingAdd(aw, bw, carryIn).Bits()}
}

// Add returns a+b at the declared width of a and b, which must be equal.
// Overflow wraps modulo 2^Width() (two's-complement semantics).
func (a Int[T]) Add(b Int[T]) Int[T] {
	a.checkSameWidth(b, "Add")
	return ExpandingAdd(a, b, false).WidthCast(a.Width())
}

// Neg returns -a, computed as add(~a, 1).
func (a Int[T]) Neg() Int[T] {
	notA := Int[T]{bits: a.bits.Not()}
	return notA.Add(One[T](a.Width()))
}

// Sub returns a-b, computed as add(a, -b).
func (a Int[T]) Sub(b Int[T]) Int[T] {
	a.checkSameWidth(b, "Sub")
	return a.Add(b.Neg())
}

// Abs returns the absolute value of a at its own width; for the most
// negative value this overflows back to itself (two's-complement
// semantics), the same way Neg does. Use ExpandingAbs to avoid that.
func (a Int[T]) Abs() Int[T] {
	if a.IsNegative() {
		return a.Neg()
	}
	return a
}

// ExpandingAbs returns the absolute value of a as an unsigned integer of
// the same width, which is always enough room even for the most negative
// value (e.g. abs(int8(-128)) == uint8(128)).
func ExpandingAbs[T aarith.Word](a Int[T]) uinteger.Uint[T] {
	if !a.IsNegative() {
		return uinteger.FromBits(a.bits)
	}
	n := a.Width()
	wide := a.WidthCast(n + 1).Neg()
	return uinteger.FromBits(wide.bits.WidthCast(n))
}

// Cmp compares a and b at their common sign-extended width. Returns -1,
// 0, or 1.
func (a Int[T]) Cmp(b Int[T]) int {
	n := maxInt(a.Width(), b.Width())
	aw := a.WidthCast(n)
	bw := b.WidthCast(n)
	aNeg, bNeg := aw.IsNegative(), bw.IsNegative()
	if aNeg != bNeg {
		if aNeg {
			return -1
		}
		return 1
	}
	for i := aw.bits.WordCount() - 1; i >= 0; i-- {
		wa, wb := aw.bits.Word(i), bw.bits.Word(i)
		if wa != wb {
			if wa > wb {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Eq reports whether a == b.
func (a Int[T]) Eq(b Int[T]) bool { return a.Cmp(b) == 0 }

// Lt reports whether a < b.
func (a Int[T]) Lt(b Int[T]) bool { return a.Cmp(b) < 0 }

// Le reports whether a <= b.
func (a Int[T]) Le(b Int[T]) bool { return a.Cmp(b) <= 0 }

// Gt reports whether a > b.
func (a Int[T]) Gt(b Int[T]) bool { return a.Cmp(b) > 0 }

// Ge reports whether a >= b.
func (a Int[T]) Ge(b Int[T]) bool { return a.Cmp(b) >= 0 }

// Shl returns a logically shifted left by k bits at its declared width.
func (a Int[T]) Shl(k int) Int[T] { return Int[T]{bits: a.bits.Shl(k)} }

// Shr returns a arithmetically shifted right by k bits, preserving the
// sign bit (filling with ones when negative). Property: Shr(-1, k) == -1
// for every k and every width.
func (a Int[T]) Shr(k int) Int[T] {
	n := a.Width()
	if !a.IsNegative() {
		return Int[T]{bits: a.bits.Shr(k)}
	}
	if k >= n {
		return MinusOne[T](n)
	}
	logical := a.bits.Shr(k)
	ones := word.LowMask[T](n, k).Shl(n - k)
	return Int[T]{bits: logical.Or(ones)}
}
