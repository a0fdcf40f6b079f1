// Package uinteger implements fixed-width unsigned integer arithmetic over
// a word.Array: addition, subtraction, schoolbook and Karatsuba
// multiplication, restoring division, comparisons, and their
// width-expanding variants.
package uinteger

import (
	"github.com/aarith-go/aarith"
	"github.com/aarith-go/aarith/word"
)

// Uint is a word.Array interpreted as a non-negative integer in positional
// binary, bit 0 least significant.
type Uint[T aarith.Word] struct {
	bits word.Array[T]
}

// New returns the zero value of width n.
func New[T aarith.Word](n int) Uint[T] { return Uint[T]{bits: word.New[T](n)} }

// Zero returns the zero value of width n.
func Zero[T aarith.Word](n int) Uint[T] { return New[T](n) }

// One returns the value 1 at width n.
func One[T aarith.Word](n int) Uint[T] { return Uint[T]{bits: word.New[T](n).SetBit(0, true)} }

// Min returns the minimum value representable at width n (always zero).
func Min[T aarith.Word](n int) Uint[T] { return Zero[T](n) }

// Max returns the maximum value representable at width n (all bits set).
func Max[T aarith.Word](n int) Uint[T] { return Uint[T]{bits: word.AllOnes[T](n)} }

// AllOnes is an alias for Max, named after the word-array constructor it
// wraps.
func AllOnes[T aarith.Word](n int) Uint[T] { return Max[T](n) }

// MsbOne returns the width-n value with only the most significant bit set.
func MsbOne[T aarith.Word](n int) Uint[T] { return Uint[T]{bits: word.MsbOne[T](n)} }

// FromUint64 builds a width-n value from the low bits of v.
func FromUint64[T aarith.Word](n int, v uint64) Uint[T] {
	return Uint[T]{bits: word.FromUint64[T](n, v)}
}

// FromBits wraps an existing word.Array as an unsigned integer.
func FromBits[T aarith.Word](bits word.Array[T]) Uint[T] { return Uint[T]{bits: bits} }

// Bits returns the underlying word.Array.
func (a Uint[T]) Bits() word.Array[T] { return a.bits }

// Width returns the declared bit width.
func (a Uint[T]) Width() int { return a.bits.Width() }

// Bit reports whether bit i is set.
func (a Uint[T]) Bit(i int) bool { return a.bits.Bit(i) }

// SetBit returns a copy of a with bit i set to b.
func (a Uint[T]) SetBit(i int, b bool) Uint[T] { return Uint[T]{bits: a.bits.SetBit(i, b)} }

// Word returns the j-th storage word.
func (a Uint[T]) Word(j int) T { return a.bits.Word(j) }

// SetWord returns a copy of a with the j-th storage word replaced.
func (a Uint[T]) SetWord(j int, v T) Uint[T] { return Uint[T]{bits: a.bits.SetWord(j, v)} }

// CountLeadingZeros delegates to the underlying word.Array.
func (a Uint[T]) CountLeadingZeros(offset int) int { return a.bits.CountLeadingZeros(offset) }

// CountLeadingOnes delegates to the underlying word.Array.
func (a Uint[T]) CountLeadingOnes(offset int) int { return a.bits.CountLeadingOnes(offset) }

// FirstSetBit delegates to the underlying word.Array.
func (a Uint[T]) FirstSetBit() (int, bool) { return a.bits.FirstSetBit() }

// FirstUnsetBit delegates to the underlying word.Array.
func (a Uint[T]) FirstUnsetBit() (int, bool) { return a.bits.FirstUnsetBit() }

// BitRange delegates to the underlying word.Array.
func (a Uint[T]) BitRange(s, e int) Uint[T] { return Uint[T]{bits: a.bits.BitRange(s, e)} }

// WidthCast zero-extends or truncates a to width m.
func (a Uint[T]) WidthCast(m int) Uint[T] { return Uint[T]{bits: a.bits.WidthCast(m)} }

// Flip delegates to the underlying word.Array.
func (a Uint[T]) Flip() Uint[T] { return Uint[T]{bits: a.bits.Flip()} }

// IsZero reports whether a is the zero value.
func (a Uint[T]) IsZero() bool { return a.bits.IsZero() }

// Concat concatenates hi and lo, hi occupying the high bits.
func Concat[T aarith.Word](hi, lo Uint[T]) Uint[T] {
	return Uint[T]{bits: word.Concat(hi.bits, lo.bits)}
}

// Split splits a at bit s, returning the high and low parts.
func (a Uint[T]) Split(s int) (hi, lo Uint[T]) {
	h, l := a.bits.Split(s)
	return Uint[T]{bits: h}, Uint[T]{bits: l}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (a Uint[T]) checkSameWidth(b Uint[T], op string) {
	if a.Width() != b.Width() {
		panic("uinteger: " + op + ": width mismatch")
	}
}

// Cmp compares a and b at their common width-cast to max(a.Width(),
// b.Width()), big-endian word-by-word. Returns -1, 0, or 1.
func (a Uint[T]) Cmp(b Uint[T]) int {
	n := maxInt(a.Width(), b.Width())
	aw := a.bits.WidthCast(n)
	bw := b.bits.WidthCast(n)
	for i := aw.WordCount() - 1; i >= 0; i-- {
		if aw.Word(i) != bw.Word(i) {
			if aw.Word(i) > bw.Word(i) {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Eq reports whether a == b.
func (a Uint[T]) Eq(b Uint[T]) bool { return a.Cmp(b) == 0 }

// Lt reports whether a < b.
func (a Uint[T]) Lt(b Uint[T]) bool { return a.Cmp(b) < 0 }

// Le reports whether a <= b.
func (a Uint[T]) Le(b Uint[T]) bool { return a.Cmp(b) <= 0 }

// Gt reports whether a > b.
func (a Uint[T]) Gt(b Uint[T]) bool { return a.Cmp(b) > 0 }

// Ge reports whether a >= b.
func (a Uint[T]) Ge(b Uint[T]) bool { return a.Cmp(b) >= 0 }

func addWord[T aarith.Word](x, y T, carry bool) (T, bool) {
	partial := x + y
	carryOut := partial < x || partial < y
	var cIn T
	if carry {
		cIn = 1
	}
	sum := partial + cIn
	carryOut = carryOut || sum < partial
	return sum, carryOut
}

// ExpandingAdd adds a and b (first width-cast to their common max width)
// with an optional carry-in, returning a result one bit wider than that
// common width so the final carry is never lost.
func ExpandingAdd[T aarith.Word](a, b Uint[T], carryIn bool) Uint[T] {
	// Adding at width n+1 keeps the carry out of bit n-1 even when n is not
	// a multiple of the storage word width; the sum of two n-bit values and
	// a carry-in always fits in n+1 bits.
	n := maxInt(a.Width(), b.Width()) + 1
	aw := a.bits.WidthCast(n)
	bw := b.bits.WidthCast(n)
	sumBits, _ := word.ZipWithState(aw, bw, carryIn, addWord[T])
	return Uint[T]{bits: sumBits}
}

// Add returns a+b at the declared width of a and b, which must be equal.
// Overflow wraps modulo 2^Width().
func (a Uint[T]) Add(b Uint[T]) Uint[T] {
	a.checkSameWidth(b, "Add")
	return ExpandingAdd(a, b, false).WidthCast(a.Width())
}

// ExpandingSub computes a-b at width max(a.Width(), b.Width()).
func ExpandingSub[T aarith.Word](a, b Uint[T]) Uint[T] {
	n := maxInt(a.Width(), b.Width())
	aw := Uint[T]{bits: a.bits.WidthCast(n)}
	bw := Uint[T]{bits: b.bits.WidthCast(n)}
	return aw.Sub(bw)
}

// Sub returns a-b at the declared width of a and b, which must be equal.
// Underflow wraps modulo 2^Width() (two's-complement semantics).
func (a Uint[T]) Sub(b Uint[T]) Uint[T] {
	a.checkSameWidth(b, "Sub")
	n := a.Width()
	notB := Uint[T]{bits: b.bits.Not()}
	negB := notB.Add(One[T](n))
	return a.Add(negB)
}
