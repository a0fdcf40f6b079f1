package uinteger

import "github.com/aarith-go/aarith"

// DivMod computes the quotient and remainder of a/b by restoring division,
// after a handful of fast paths (divisor zero, numerator zero, divisor
// one, equal operands, numerator < divisor). Returns aarith.ErrDivideByZero
// if b is zero. a and b must have equal width.
func (a Uint[T]) DivMod(b Uint[T]) (quo, rem Uint[T], err error) {
	a.checkSameWidth(b, "DivMod")
	n := a.Width()
	if b.IsZero() {
		return Uint[T]{}, Uint[T]{}, aarith.ErrDivideByZero
	}
	if a.IsZero() {
		return Zero[T](n), Zero[T](n), nil
	}
	if b.Eq(One[T](n)) {
		return a, Zero[T](n), nil
	}
	if a.Eq(b) {
		return One[T](n), Zero[T](n), nil
	}
	if a.Cmp(b) < 0 {
		return Zero[T](n), a, nil
	}

	rn := n + 1
	divisor := Uint[T]{bits: b.bits.WidthCast(rn)}
	remainder := New[T](rn)
	quotient := New[T](n)
	for i := n - 1; i >= 0; i-- {
		remainder = Uint[T]{bits: remainder.bits.Shl(1).SetBit(0, a.Bit(i))}
		if remainder.Cmp(divisor) >= 0 {
			remainder = remainder.Sub(divisor)
			quotient = quotient.SetBit(i, true)
		}
	}
	return quotient, remainder.WidthCast(n), nil
}

// Div returns a/b (quotient only). See DivMod.
func (a Uint[T]) Div(b Uint[T]) (Uint[T], error) {
	q, _, err := a.DivMod(b)
	return q, err
}

// Rem returns a%b (remainder only). See DivMod.
func (a Uint[T]) Rem(b Uint[T]) (Uint[T], error) {
	_, r, err := a.DivMod(b)
	return r, err
}
