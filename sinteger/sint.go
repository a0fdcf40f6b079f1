// Package sinteger implements fixed-width two's-complement signed integer
// arithmetic over a word.Array, built on top of package uinteger for the
// ripple-carry adder and restoring division that signed and unsigned
// integers share bit-for-bit.
package sinteger

import (
	"github.com/aarith-go/aarith"
	"github.com/aarith-go/aarith/internal/bitutil"
	"github.com/aarith-go/aarith/uinteger"
	"github.com/aarith-go/aarith/word"
)

// Int is a word.Array interpreted in two's complement; bit Width()-1 is
// the sign bit.
type Int[T aarith.Word] struct {
	bits word.Array[T]
}

// New returns the zero value of width n.
func New[T aarith.Word](n int) Int[T] { return Int[T]{bits: word.New[T](n)} }

// Zero returns the zero value of width n.
func Zero[T aarith.Word](n int) Int[T] { return New[T](n) }

// One returns the value 1 at width n.
func One[T aarith.Word](n int) Int[T] { return Int[T]{bits: word.New[T](n).SetBit(0, true)} }

// MinusOne returns the value -1 at width n (all bits set).
func MinusOne[T aarith.Word](n int) Int[T] { return Int[T]{bits: word.AllOnes[T](n)} }

// AllOnes is an alias for MinusOne, named after the word-array
// constructor it wraps.
func AllOnes[T aarith.Word](n int) Int[T] { return MinusOne[T](n) }

// Min returns the most negative value representable at width n.
func Min[T aarith.Word](n int) Int[T] { return Int[T]{bits: word.MsbOne[T](n)} }

// MsbOne is an alias for Min, named after the word-array constructor it
// wraps.
func MsbOne[T aarith.Word](n int) Int[T] { return Min[T](n) }

// Max returns the most positive value representable at width n.
func Max[T aarith.Word](n int) Int[T] {
	return Int[T]{bits: word.AllOnes[T](n).SetBit(n-1, false)}
}

// FromUint64 builds a width-n value by reinterpreting the low bits of v as
// a two's-complement bit pattern.
func FromUint64[T aarith.Word](n int, v uint64) Int[T] {
	return Int[T]{bits: word.FromUint64[T](n, v)}
}

// FromInt64 builds a width-n value with the same numeric value as v (for
// v representable at width n).
func FromInt64[T aarith.Word](n int, v int64) Int[T] {
	neg := v < 0
	mag := uint64(bitutil.AbsInt64(v))
	result := Int[T]{bits: uinteger.FromUint64[T](n, mag).Bits()}
	if neg {
		result = result.Neg()
	}
	return result
}

// FromBits wraps an existing word.Array as a signed integer.
func FromBits[T aarith.Word](bits word.Array[T]) Int[T] { return Int[T]{bits: bits} }

// Bits returns the underlying word.Array.
func (a Int[T]) Bits() word.Array[T] { return a.bits }

// Width returns the declared bit width.
func (a Int[T]) Width() int { return a.bits.Width() }

// Bit reports whether bit i is set.
func (a Int[T]) Bit(i int) bool { return a.bits.Bit(i) }

// SetBit returns a copy of a with bit i set to b.
func (a Int[T]) SetBit(i int, b bool) Int[T] { return Int[T]{bits: a.bits.SetBit(i, b)} }

// Word returns the j-th storage word.
func (a Int[T]) Word(j int) T { return a.bits.Word(j) }

// SetWord returns a copy of a with the j-th storage word replaced.
func (a Int[T]) SetWord(j int, v T) Int[T] { return Int[T]{bits: a.bits.SetWord(j, v)} }

// IsZero reports whether a is the zero value.
func (a Int[T]) IsZero() bool { return a.bits.IsZero() }

// IsNegative reports whether a's sign bit is set.
func (a Int[T]) IsNegative() bool { return a.bits.Bit(a.Width() - 1) }

// Sign returns -1, 0, or 1.
func (a Int[T]) Sign() int {
	switch {
	case a.IsZero():
		return 0
	case a.IsNegative():
		return -1
	default:
		return 1
	}
}

// CountLeadingZeros delegates to the underlying word.Array.
func (a Int[T]) CountLeadingZeros(offset int) int { return a.bits.CountLeadingZeros(offset) }

// CountLeadingOnes delegates to the underlying word.Array.
func (a Int[T]) CountLeadingOnes(offset int) int { return a.bits.CountLeadingOnes(offset) }

// FirstSetBit delegates to the underlying word.Array.
func (a Int[T]) FirstSetBit() (int, bool) { return a.bits.FirstSetBit() }

// FirstUnsetBit delegates to the underlying word.Array.
func (a Int[T]) FirstUnsetBit() (int, bool) { return a.bits.FirstUnsetBit() }

// BitRange delegates to the underlying word.Array.
func (a Int[T]) BitRange(s, e int) Int[T] { return Int[T]{bits: a.bits.BitRange(s, e)} }

// Flip delegates to the underlying word.Array.
func (a Int[T]) Flip() Int[T] { return Int[T]{bits: a.bits.Flip()} }

// Split splits a at bit s, returning the high and low parts (both
// reinterpreted as signed; callers typically only care about the sign on
// the full-width value).
func (a Int[T]) Split(s int) (hi, lo Int[T]) {
	h, l := a.bits.Split(s)
	return Int[T]{bits: h}, Int[T]{bits: l}
}

// Concat concatenates hi and lo, hi occupying the high bits.
func Concat[T aarith.Word](hi, lo Int[T]) Int[T] {
	return Int[T]{bits: word.Concat(hi.bits, lo.bits)}
}

// WidthCast sign-extends (m > Width()) or truncates (m < Width()) a to a
// new width m.
func (a Int[T]) WidthCast(m int) Int[T] {
	n := a.Width()
	if m == n {
		return Int[T]{bits: a.bits.WidthCast(m)}
	}
	if m < n {
		return Int[T]{bits: a.bits.WidthCast(m)}
	}
	grown := a.bits.WidthCast(m)
	if a.IsNegative() {
		grown = grown.Or(word.LowMask[T](m, m).Shr(n).Shl(n))
	}
	return Int[T]{bits: grown}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (a Int[T]) checkSameWidth(b Int[T], op string) {
	if a.Width() != b.Width() {
		panic("sinteger: " + op + ": width mismatch")
	}
}
