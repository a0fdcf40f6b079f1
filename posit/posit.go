// Package posit implements Type III unums (posits) of arbitrary (N,ES)
// width over a word.Array, together with the positparams intermediate
// representation used to decode and re-encode them and the one arithmetic
// operator, addition, implemented beyond the decode/encode skeleton.
package posit

import (
	"fmt"

	"github.com/aarith-go/aarith"
	"github.com/aarith-go/aarith/sinteger"
	"github.com/aarith-go/aarith/uinteger"
	"github.com/aarith-go/aarith/word"
)

// Posit is a width-N word.Array interpreted per the posit standard: a sign
// bit, a unary-coded regime run, up to ES exponent bits, and an explicit
// fraction with an implicit leading 1.
type Posit[T aarith.Word] struct {
	n, es int
	bits  word.Array[T]
}

// New returns the width-N zero posit.
func New[T aarith.Word](n, es int) Posit[T] {
	return Posit[T]{n: n, es: es, bits: word.New[T](n)}
}

// Zero returns the zero posit of shape (n,es).
func Zero[T aarith.Word](n, es int) Posit[T] { return New[T](n, es) }

// NaR returns "Not a Real", the posit's single non-numeric value: the
// sign-only bit pattern (MSB set, every other bit zero).
func NaR[T aarith.Word](n, es int) Posit[T] {
	return Posit[T]{n: n, es: es, bits: word.MsbOne[T](n)}
}

// FromBits wraps an existing N-bit pattern as a posit of shape (n,es).
func FromBits[T aarith.Word](n, es int, bits word.Array[T]) Posit[T] {
	return Posit[T]{n: n, es: es, bits: bits}
}

// MaxPos returns the largest finite positive posit of shape (n,es):
// 0111...1.
func MaxPos[T aarith.Word](n, es int) Posit[T] {
	bits := word.AllOnes[T](n).SetBit(n-1, false)
	return Posit[T]{n: n, es: es, bits: bits}
}

// MinPos returns the smallest finite positive posit of shape (n,es):
// 0000...1.
func MinPos[T aarith.Word](n, es int) Posit[T] {
	bits := word.New[T](n).SetBit(0, true)
	return Posit[T]{n: n, es: es, bits: bits}
}

// One returns the posit representing the exact value 1.0, built by
// encoding the positparams for scale 0 rather than hand-assembling bits.
func One[T aarith.Word](n, es int) Posit[T] {
	var empty word.Array[uint64]
	pm := Params{Scale: 0, Frac: NewFractional(true, empty)}
	return Encode[T](pm, n, es)
}

// N returns the declared total width.
func (p Posit[T]) N() int { return p.n }

// ES returns the exponent field width.
func (p Posit[T]) ES() int { return p.es }

// Width returns the declared total width (same as N).
func (p Posit[T]) Width() int { return p.bits.Width() }

// Bits returns the underlying word.Array.
func (p Posit[T]) Bits() word.Array[T] { return p.bits }

// IsNaR reports whether p is the sign-only non-numeric value.
func (p Posit[T]) IsNaR() bool { return p.bits.Equal(word.MsbOne[T](p.n)) }

// IsZero reports whether p is the all-zero bit pattern.
func (p Posit[T]) IsZero() bool { return p.bits.IsZero() }

// IsNegative reports whether p's sign bit is set. NaR and zero are
// neither positive nor negative.
func (p Posit[T]) IsNegative() bool {
	return !p.IsNaR() && !p.IsZero() && p.bits.Bit(p.n-1)
}

// Eq reports bit-for-bit equality.
func (p Posit[T]) Eq(q Posit[T]) bool { return p.bits.Equal(q.bits) }

// Neg returns -p, the two's complement of p's bit pattern. NaR and zero
// negate to themselves.
func (p Posit[T]) Neg() Posit[T] {
	if p.IsNaR() || p.IsZero() {
		return p
	}
	neg := sinteger.FromBits(p.bits).Neg()
	return Posit[T]{n: p.n, es: p.es, bits: neg.Bits()}
}

// incrementedReal adds one to p's bit pattern, clamping to MaxPos rather
// than letting the increment roll over into the NaR bit pattern.
func (p Posit[T]) incrementedReal() Posit[T] {
	incremented := uinteger.FromBits(p.bits).Add(uinteger.One[T](p.n))
	candidate := Posit[T]{n: p.n, es: p.es, bits: incremented.Bits()}
	if candidate.IsNaR() {
		return MaxPos[T](p.n, p.es)
	}
	return candidate
}

// Add returns p+q by decoding both to positparams, adding there, and
// re-encoding.
func (p Posit[T]) Add(q Posit[T]) Posit[T] {
	sum := Decode(p).Add(Decode(q))
	return Encode[T](sum, p.n, p.es)
}

func (p Posit[T]) String() string {
	switch {
	case p.IsNaR():
		return "NaR"
	case p.IsZero():
		return "0"
	default:
		sign := ""
		if p.IsNegative() {
			sign = "-"
		}
		return fmt.Sprintf("%sposit<%d,%d>(%s)", sign, p.n, p.es, p.bits.ToBinary())
	}
}

func (p Posit[T]) GoString() string {
	return fmt.Sprintf("posit.Posit[%d,%d]{%s}", p.n, p.es, p.bits.ToBinary())
}
