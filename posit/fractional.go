package posit

import (
	"github.com/aarith-go/aarith/uinteger"
	"github.com/aarith-go/aarith/word"
)

// fractionBits is the width of the fraction field inside a Fractional's
// fixed 64-bit storage: one spare carry bit and one hidden bit leave 62
// bits free, ample headroom for the (N,ES) shapes this package exercises.
const fractionBits = 62

// Fractional is the fixed-point container positparams arithmetic works
// over: a 2-bit integer part (bit 1 catches an addition carry, bit 0 is
// the implicit hidden bit) followed by 62 explicit fraction bits, packed
// into one word.Array[uint64] regardless of the posit's own storage type
// T. Every accessor below returns a freshly computed word array rather
// than aliasing internal state.
type Fractional struct {
	bits word.Array[uint64]
}

// NewFractional builds a Fractional from a hidden-bit flag and an
// explicit fraction field, placing fracBits at the high end of the
// 62-bit fraction region (most-significant-first) and zero-filling the
// rest. Panics if fracBits is wider than the internal precision allows.
func NewFractional(hidden bool, fracBits word.Array[uint64]) Fractional {
	w := fracBits.Width()
	if w > fractionBits {
		panic("posit: fraction field exceeds internal precision")
	}
	frac := fracBits.WidthCast(fractionBits).Shl(fractionBits - w)
	hiddenArr := word.New[uint64](1)
	if hidden {
		hiddenArr = hiddenArr.SetBit(0, true)
	}
	carryArr := word.New[uint64](1)
	bits := word.Concat(carryArr, word.Concat(hiddenArr, frac))
	return Fractional{bits: bits}
}

// ZeroFractional is the canonical all-zero fraction (hidden bit also
// zero). Params.Add does not use it: an exact cancellation there returns
// ParamsZero().
func ZeroFractional() Fractional {
	return Fractional{bits: word.New[uint64](1 + 1 + fractionBits)}
}

// HiddenBit reports the implicit leading-1 bit.
func (f Fractional) HiddenBit() bool { return f.bits.Bit(fractionBits) }

// IntegerBits returns the 2-bit integer part: bit 0 is the hidden bit,
// bit 1 is the carry bit an addition may have set.
func (f Fractional) IntegerBits() word.Array[uint64] {
	return f.bits.BitRange(fractionBits+1, fractionBits)
}

// FractionBits returns the 62-bit explicit fraction field,
// most-significant-first.
func (f Fractional) FractionBits() word.Array[uint64] {
	return f.bits.BitRange(fractionBits-1, 0)
}

// IsZero reports whether every bit, including the hidden bit, is zero.
func (f Fractional) IsZero() bool { return f.bits.IsZero() }

// Cmp compares f and g as plain 64-bit unsigned magnitudes; meaningful
// only when both share the same scale, exactly as positparams uses it.
func (f Fractional) Cmp(g Fractional) int {
	return uinteger.FromBits(f.bits).Cmp(uinteger.FromBits(g.bits))
}

// Shl shifts the whole fixed-point pattern (hidden bit included) left by
// k bits, losing precision off the top if it runs out of room.
func (f Fractional) Shl(k int) Fractional { return Fractional{bits: f.bits.Shl(k)} }

// Shr shifts the whole fixed-point pattern right by k bits, the way
// matchScaleOf realigns the smaller-scale operand.
func (f Fractional) Shr(k int) Fractional { return Fractional{bits: f.bits.Shr(k)} }

// Add returns f+g along with whether the result carried into the integer
// part's overflow bit (bit 1).
func (f Fractional) Add(g Fractional) (Fractional, bool) {
	sum := uinteger.FromBits(f.bits).Add(uinteger.FromBits(g.bits))
	return Fractional{bits: sum.Bits()}, sum.Bit(fractionBits + 1)
}

// Sub returns f-g, assuming f >= g — subFractionsNormalize only ever calls
// this after establishing that ordering.
func (f Fractional) Sub(g Fractional) Fractional {
	diff := uinteger.FromBits(f.bits).Sub(uinteger.FromBits(g.bits))
	return Fractional{bits: diff.Bits()}
}
