package nfloat

import (
	"github.com/aarith-go/aarith"
	"github.com/aarith-go/aarith/uinteger"
	"github.com/aarith-go/aarith/word"
)

func checkShape[T aarith.Word](a, b Float[T], op string) {
	if a.e != b.e || a.m != b.m {
		panic("nfloat: " + op + ": shape mismatch")
	}
}

// shiftRightSticky shifts x right by k bits, OR-ing every bit shifted
// past the new LSB into that LSB so no information needed for correct
// rounding is lost. x's width is unchanged; the vacated high bits are
// zero-filled.
func shiftRightSticky[T aarith.Word](x uinteger.Uint[T], k int) uinteger.Uint[T] {
	if k <= 0 {
		return x
	}
	width := x.Width()
	if k >= width {
		sticky := !x.IsZero()
		r := uinteger.Zero[T](width)
		if sticky {
			r = r.SetBit(0, true)
		}
		return r
	}
	shiftedOut := x.BitRange(k-1, 0)
	sticky := !shiftedOut.IsZero()
	shifted := x.Shr(k)
	if sticky {
		shifted = shifted.SetBit(0, true)
	}
	return shifted
}

// shiftRightStickyTo is shiftRightSticky generalized to also shrink (or,
// if newWidth is larger, zero-extend) x's declared width.
func shiftRightStickyTo[T aarith.Word](x uinteger.Uint[T], newWidth int) uinteger.Uint[T] {
	if newWidth >= x.Width() {
		return x.WidthCast(newWidth)
	}
	k := x.Width() - newWidth
	shiftedOut := x.BitRange(k-1, 0)
	sticky := !shiftedOut.IsZero()
	shifted := x.Shr(k).WidthCast(newWidth)
	if sticky {
		shifted = shifted.SetBit(0, true)
	}
	return shifted
}

// Add returns a+b, round-to-nearest-even. a and b must share shape (e,m).
func Add[T aarith.Word](a, b Float[T]) Float[T] {
	checkShape(a, b, "Add")
	if a.IsNaN() || b.IsNaN() {
		return NaN[T](a.e, a.m)
	}
	if a.IsInf() || b.IsInf() {
		return addInf(a, b)
	}
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	if a.absLess(b) {
		return Add(b, a)
	}
	if a.Sign() != b.Sign() {
		return Sub(a, b.negate())
	}
	return addSameSign(a, b)
}

// Sub returns a-b, round-to-nearest-even. a and b must share shape (e,m).
func Sub[T aarith.Word](a, b Float[T]) Float[T] {
	checkShape(a, b, "Sub")
	if a.IsNaN() || b.IsNaN() {
		return NaN[T](a.e, a.m)
	}
	if a.IsInf() || b.IsInf() {
		return subInf(a, b)
	}
	if b.IsZero() {
		return a
	}
	if a.IsZero() {
		return b.negate()
	}
	if a.absLess(b) {
		return Add(b.negate(), a)
	}
	if a.Sign() != b.Sign() {
		return Add(a, b.negate())
	}
	return subSameSign(a, b)
}

func addInf[T aarith.Word](a, b Float[T]) Float[T] {
	switch {
	case a.IsInf() && b.IsInf():
		if a.Sign() != b.Sign() {
			return NaN[T](a.e, a.m)
		}
		return a
	case a.IsInf():
		return a
	default:
		return b
	}
}

func subInf[T aarith.Word](a, b Float[T]) Float[T] {
	switch {
	case a.IsInf() && b.IsInf():
		if a.Sign() == b.Sign() {
			return NaN[T](a.e, a.m)
		}
		return a
	case a.IsInf():
		return a
	default:
		return b.negate()
	}
}

// addSameSign computes a+b assuming both finite, nonzero, equal sign, and
// |a| >= |b|: align b's significand to a's exponent (capturing the
// shifted-off bits in the sticky position), add, then normalize/round.
func addSameSign[T aarith.Word](a, b Float[T]) Float[T] {
	delta := a.exponentValue() - b.exponentValue()
	extA := a.extendedSignificand()
	extB := shiftRightSticky(b.extendedSignificand(), delta)
	sum := uinteger.ExpandingAdd(extA, extB, false) // one bit wider than extA/extB
	return normalizeAndRound[T](a.e, a.m, a.Sign(), a.exponentValue(), sum.WidthCast(a.m+5))
}

// subSameSign computes a-b assuming both finite, nonzero, equal sign, and
// |a| >= |b|.
func subSameSign[T aarith.Word](a, b Float[T]) Float[T] {
	delta := a.exponentValue() - b.exponentValue()
	extA := a.extendedSignificand()
	extB := shiftRightSticky(b.extendedSignificand(), delta)
	diff := uinteger.ExpandingSub(extA, extB).WidthCast(a.m + 5)
	return normalizeAndRound[T](a.e, a.m, a.Sign(), a.exponentValue(), diff)
}

// normalizeAndRound takes sig in the canonical m+5 layout (1 carry bit,
// 1 hidden bit, m fraction bits, 3 guard/round/sticky bits, from high to
// low), renormalizes so the hidden bit sits at position m+3, rounds to
// nearest-even on the guard/round/sticky bits, and reassembles the
// result at exponent exp with the given sign.
func normalizeAndRound[T aarith.Word](e, m int, sign bool, exp int, sig uinteger.Uint[T]) Float[T] {
	carryPos := m + 4
	hiddenPos := m + 3

	if sig.IsZero() {
		return Zero[T](e, m)
	}

	if sig.Bit(carryPos) {
		sig = shiftRightSticky(sig, 1)
		exp++
	} else {
		for exp > 0 && !sig.Bit(hiddenPos) && !sig.IsZero() {
			sig = sig.Shl(1)
			exp--
		}
		if sig.IsZero() {
			exp = 0
		}
	}

	if exp <= 0 {
		return Zero[T](e, m)
	}

	mantissa, carried := roundToNearestEven(sig, m)
	if carried {
		mantissa = shiftRightSticky(mantissa, 1)
		exp++
	}

	if exp >= 1<<uint(e)-1 {
		return Inf[T](e, m, sign)
	}

	frac := mantissa.Bits().WidthCast(m)
	exponent := word.FromUint64[T](e, uint64(exp))
	return FromParts[T](e, m, sign, exponent, frac)
}

// roundToNearestEven rounds sig (canonical m+5 layout, carry bit already
// resolved to 0) to an m+1-bit hidden+fraction mantissa, reporting
// whether the round pushed a new carry into a would-be (m+2)th bit.
func roundToNearestEven[T aarith.Word](sig uinteger.Uint[T], m int) (mantissa uinteger.Uint[T], carried bool) {
	guard := sig.Bit(2)
	round := sig.Bit(1)
	sticky := sig.Bit(0)
	// sig is m+5 wide with a guaranteed-zero top carry bit at this point
	// (normalizeAndRound already resolved it); drop it and the three
	// guard/round/sticky bits so the hidden bit lands at position m, with
	// the mantissa's own LSB left untouched for the tie-to-even test.
	truncated := sig.WidthCast(m + 4).Shr(3).WidthCast(m + 2)
	if guard && (round || sticky || truncated.Bit(0)) {
		truncated = truncated.Add(uinteger.One[T](m + 2))
	}
	return truncated, truncated.Bit(m + 1)
}

// Mul returns a*b, round-to-nearest-even. a and b must share shape (e,m).
func Mul[T aarith.Word](a, b Float[T]) Float[T] {
	checkShape(a, b, "Mul")
	if a.IsNaN() || b.IsNaN() {
		return NaN[T](a.e, a.m)
	}
	sign := a.Sign() != b.Sign()
	if a.IsInf() || b.IsInf() {
		if a.IsZero() || b.IsZero() {
			return NaN[T](a.e, a.m)
		}
		return Inf[T](a.e, a.m, sign)
	}
	if a.IsZero() || b.IsZero() {
		return Zero[T](a.e, a.m).withSign(sign)
	}

	sigA := uinteger.FromBits(a.hiddenAndFraction())
	sigB := uinteger.FromBits(b.hiddenAndFraction())
	product := uinteger.ExpandingMul(sigA, sigB) // width 2*(m+1), exact

	aligned := shiftRightStickyTo(product, a.m+5)
	exp := a.exponentValue() + b.exponentValue() - a.bias()
	return normalizeAndRound[T](a.e, a.m, sign, exp, aligned)
}

// Div returns a/b, round-to-nearest-even. a and b must share shape
// (e,m). Division by zero produces a signed infinity (or NaN for 0/0),
// matching float semantics rather than aarith.Error.
func Div[T aarith.Word](a, b Float[T]) Float[T] {
	checkShape(a, b, "Div")
	if a.IsNaN() || b.IsNaN() {
		return NaN[T](a.e, a.m)
	}
	sign := a.Sign() != b.Sign()
	if b.IsZero() {
		if a.IsZero() {
			return NaN[T](a.e, a.m)
		}
		return Inf[T](a.e, a.m, sign)
	}
	if a.IsInf() {
		if b.IsInf() {
			return NaN[T](a.e, a.m)
		}
		return Inf[T](a.e, a.m, sign)
	}
	if b.IsInf() || a.IsZero() {
		return Zero[T](a.e, a.m).withSign(sign)
	}

	m := a.m
	wide := 2*m + 4
	dividend := uinteger.FromBits(a.hiddenAndFraction()).WidthCast(wide).Shl(m + 3)
	divisor := uinteger.FromBits(b.hiddenAndFraction()).WidthCast(wide)
	quotient, remainder, err := dividend.DivMod(divisor)
	if err != nil {
		return NaN[T](a.e, a.m)
	}

	// quotient's significant bits sit at the bottom of its wide register
	// (the ratio of two values each in [1,2) scaled by 2^(m+3)), so
	// bringing it down to the canonical width is a truncation, not a
	// realigning shift; anything DivMod couldn't represent exactly folds
	// into the sticky bit via the remainder.
	aligned := quotient.WidthCast(m + 5)
	if !remainder.IsZero() {
		aligned = aligned.SetBit(0, true)
	}
	exp := a.exponentValue() - b.exponentValue() + a.bias()
	return normalizeAndRound[T](a.e, a.m, sign, exp, aligned)
}
