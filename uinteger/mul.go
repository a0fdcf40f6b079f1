package uinteger

import "github.com/aarith-go/aarith"

// ExpandingMul computes the full a.Width()+b.Width()-bit schoolbook
// product: the multiplicand, shifted, is accumulated whenever the
// corresponding multiplier bit is one.
func ExpandingMul[T aarith.Word](a, b Uint[T]) Uint[T] {
	resultWidth := a.Width() + b.Width()
	acc := New[T](resultWidth)
	widenedA := Uint[T]{bits: a.bits.WidthCast(resultWidth)}
	for i := 0; i < b.Width(); i++ {
		if b.Bit(i) {
			shifted := Uint[T]{bits: widenedA.bits.Shl(i)}
			acc = acc.Add(shifted)
		}
	}
	return acc
}

// Mul returns a*b truncated to the declared width of a and b, which must
// be equal.
func (a Uint[T]) Mul(b Uint[T]) Uint[T] {
	a.checkSameWidth(b, "Mul")
	return ExpandingMul(a, b).WidthCast(a.Width())
}

// ExpandingMulKaratsuba computes the same a.Width()+b.Width()-bit product
// as ExpandingMul, using a single level of the Karatsuba split-multiply-
// combine identity: x = xHi*2^h + xLo, y likewise, and
//
//	x*y = xHi*yHi*2^2h + (xHi*yLo + xLo*yHi)*2^h + xLo*yLo
//
// computed as three schoolbook products (xHi*yHi, xLo*yLo, and the
// sum-of-sums cross term) so the result must agree bit-exactly with
// ExpandingMul. a and b must have equal width.
func ExpandingMulKaratsuba[T aarith.Word](a, b Uint[T]) Uint[T] {
	a.checkSameWidth(b, "ExpandingMulKaratsuba")
	n := a.Width()
	if n < 2 {
		return ExpandingMul(a, b)
	}
	half := n / 2
	aHi, aLo := a.Split(half - 1)
	bHi, bLo := b.Split(half - 1)

	z0 := ExpandingMul(aLo, bLo) // width 2*half
	z2 := ExpandingMul(aHi, bHi) // width 2*(n-half)
	sumA := ExpandingAdd(aHi, aLo, false)
	sumB := ExpandingAdd(bHi, bLo, false)
	zCross := ExpandingMul(sumA, sumB)

	total := 2 * n
	z0w := z0.WidthCast(total)
	z2plain := z2.WidthCast(total)
	zCrossW := zCross.WidthCast(total)
	z1 := zCrossW.Sub(z0w).Sub(z2plain).Shl(half)

	return z0w.Add(z1).Add(z2plain.Shl(2 * half))
}

// MulKaratsuba returns a*b via ExpandingMulKaratsuba, truncated to the
// declared width of a and b, which must be equal.
func (a Uint[T]) MulKaratsuba(b Uint[T]) Uint[T] {
	a.checkSameWidth(b, "MulKaratsuba")
	return ExpandingMulKaratsuba(a, b).WidthCast(a.Width())
}

// Shl returns a logically shifted left by k bits at its declared width.
func (a Uint[T]) Shl(k int) Uint[T] { return Uint[T]{bits: a.bits.Shl(k)} }

// Shr returns a logically shifted right by k bits at its declared width.
func (a Uint[T]) Shr(k int) Uint[T] { return Uint[T]{bits: a.bits.Shr(k)} }
