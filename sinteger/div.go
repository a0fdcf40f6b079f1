package sinteger

import "github.com/aarith-go/aarith"

// DivMod computes the quotient and remainder of a/b, truncating toward
// zero (the remainder takes the sign of the numerator, matching Go's own
// integer division). It dispatches to uinteger.DivMod on the operands'
// absolute values (via ExpandingAbs, so the most negative value's
// magnitude doesn't overflow), then restores the sign of each result.
// Returns aarith.ErrDivideByZero if b is zero.
func (a Int[T]) DivMod(b Int[T]) (quo, rem Int[T], err error) {
	a.checkSameWidth(b, "DivMod")
	n := a.Width()
	if b.IsZero() {
		return Int[T]{}, Int[T]{}, aarith.ErrDivideByZero
	}
	aAbs := ExpandingAbs(a)
	bAbs := ExpandingAbs(b)
	uq, ur, err := aAbs.DivMod(bAbs)
	if err != nil {
		return Int[T]{}, Int[T]{}, err
	}
	quo = Int[T]{bits: uq.Bits()}.WidthCast(n)
	rem = Int[T]{bits: ur.Bits()}.WidthCast(n)
	if a.IsNegative() != b.IsNegative() {
		quo = quo.Neg()
	}
	if a.IsNegative() {
		rem = rem.Neg()
	}
	return quo, rem, nil
}

// Div returns a/b (quotient only). See DivMod.
func (a Int[T]) Div(b Int[T]) (Int[T], error) {
	q, _, err := a.DivMod(b)
	return q, err
}

// Rem returns a%b (remainder only). See DivMod.
func (a Int[T]) Rem(b Int[T]) (Int[T], error) {
	_, r, err := a.DivMod(b)
	return r, err
}
