// Package nfloat implements normalized binary floating-point numbers of
// arbitrary (E,M) exponent/fraction width over a word.Array, built on top
// of package uinteger for the significand arithmetic that the four basic
// operations share.
package nfloat

import (
	"math"

	"github.com/aarith-go/aarith"
	"github.com/aarith-go/aarith/uinteger"
	"github.com/aarith-go/aarith/word"
)

// Float is a width-(1+E+M) word.Array interpreted as sign | exponent |
// fraction, IEEE-754 style: a biased exponent and an explicit fraction
// with an implicit leading 1 for normal numbers.
type Float[T aarith.Word] struct {
	e, m int
	bits word.Array[T]
}

// New returns the width-(1+e+m) zero value (positive zero).
func New[T aarith.Word](e, m int) Float[T] {
	return Float[T]{e: e, m: m, bits: word.New[T](1 + e + m)}
}

// FromParts assembles a Float from its sign bit and exponent/fraction
// fields, which must have widths e and m respectively.
func FromParts[T aarith.Word](e, m int, sign bool, exponent, fraction word.Array[T]) Float[T] {
	signBit := word.New[T](1)
	if sign {
		signBit = signBit.SetBit(0, true)
	}
	res := word.Concat(word.Concat(signBit, exponent), fraction)
	return Float[T]{e: e, m: m, bits: res}
}

// E returns the exponent field width.
func (a Float[T]) E() int { return a.e }

// M returns the fraction field width.
func (a Float[T]) M() int { return a.m }

// Width returns the total declared bit width, 1+E+M.
func (a Float[T]) Width() int { return a.bits.Width() }

// Bits returns the underlying word.Array.
func (a Float[T]) Bits() word.Array[T] { return a.bits }

// Sign reports the sign bit (true means negative).
func (a Float[T]) Sign() bool { return a.bits.Bit(a.e + a.m) }

// Exponent returns the e-bit biased exponent field.
func (a Float[T]) Exponent() word.Array[T] { return a.bits.BitRange(a.e+a.m-1, a.m) }

// Fraction returns the m-bit explicit fraction field.
func (a Float[T]) Fraction() word.Array[T] { return a.bits.BitRange(a.m-1, 0) }

func (a Float[T]) bias() int { return (1 << uint(a.e-1)) - 1 }

func (a Float[T]) exponentValue() int {
	return int(uinteger.FromBits(a.Exponent()).ToUint64())
}

func (a Float[T]) fractionValue() uint64 {
	return uinteger.FromBits(a.Fraction()).ToUint64()
}

func (a Float[T]) expAllOnes() bool {
	return a.exponentValue() == (1<<uint(a.e))-1
}

// IsZero reports whether a represents positive or negative zero.
func (a Float[T]) IsZero() bool {
	return a.exponentValue() == 0 && a.fractionValue() == 0
}

// IsNaN reports whether a is Not-a-Number (all-ones exponent, nonzero
// fraction).
func (a Float[T]) IsNaN() bool {
	return a.expAllOnes() && a.fractionValue() != 0
}

// IsInf reports whether a is an infinity (all-ones exponent, zero
// fraction).
func (a Float[T]) IsInf() bool {
	return a.expAllOnes() && a.fractionValue() == 0
}

// IsNormal reports whether a is an ordinary finite, nonzero value.
func (a Float[T]) IsNormal() bool {
	return !a.IsZero() && !a.IsNaN() && !a.IsInf()
}

func (a Float[T]) withSign(sign bool) Float[T] {
	return FromParts[T](a.e, a.m, sign, a.Exponent(), a.Fraction())
}

func (a Float[T]) negate() Float[T] { return a.withSign(!a.Sign()) }

// Neg returns -a.
func (a Float[T]) Neg() Float[T] { return a.negate() }

// Zero returns the positive zero value of shape (e,m).
func Zero[T aarith.Word](e, m int) Float[T] { return New[T](e, m) }

// NaN returns a NaN value of shape (e,m).
func NaN[T aarith.Word](e, m int) Float[T] {
	exponent := word.AllOnes[T](e)
	fraction := word.MsbOne[T](m)
	return FromParts[T](e, m, false, exponent, fraction)
}

// Inf returns a signed infinity of shape (e,m).
func Inf[T aarith.Word](e, m int, sign bool) Float[T] {
	exponent := word.AllOnes[T](e)
	fraction := word.New[T](m)
	return FromParts[T](e, m, sign, exponent, fraction)
}

// absLess reports whether |a| < |b|, both assumed finite.
func (a Float[T]) absLess(b Float[T]) bool {
	ae, be := a.exponentValue(), b.exponentValue()
	if ae != be {
		return ae < be
	}
	return a.fractionValue() < b.fractionValue()
}

// hiddenAndFraction returns the (m+1)-bit significand: an implicit
// leading 1 followed by the m explicit fraction bits. Only meaningful
// for normal (non-zero, non-NaN, non-Inf) values.
func (a Float[T]) hiddenAndFraction() word.Array[T] {
	hidden := word.New[T](1).SetBit(0, true)
	return word.Concat(hidden, a.Fraction())
}

// extendedSignificand returns the canonical m+5-bit working form used by
// every arithmetic operation: one spare high bit (catches a carry out of
// the hidden bit), the hidden bit, the m fraction bits, and three low
// guard/round/sticky bits (initially zero, since a itself carries no
// rounding residue yet).
func (a Float[T]) extendedSignificand() uinteger.Uint[T] {
	sig := uinteger.FromBits(a.hiddenAndFraction()) // width m+1
	return sig.WidthCast(a.m + 5).Shl(3)
}

// FromNativeFloat64 decodes f into a Float of shape (e,m), rebiasing the
// exponent and widening or truncating the 52-bit native fraction with
// high-bit preservation (truncation of low bits loses information; there
// is no rounding on decode).
func FromNativeFloat64[T aarith.Word](e, m int, f float64) Float[T] {
	bits := math.Float64bits(f)
	sign := bits>>63&1 == 1
	nativeExp := int(bits>>52) & 0x7ff
	nativeFrac := bits & (1<<52 - 1)
	return fromNativeFields[T](e, m, sign, nativeExp, 11, nativeFrac, 52)
}

// FromNativeFloat32 decodes f into a Float of shape (e,m). See
// FromNativeFloat64.
func FromNativeFloat32[T aarith.Word](e, m int, f float32) Float[T] {
	bits := math.Float32bits(f)
	sign := bits>>31&1 == 1
	nativeExp := int(bits>>23) & 0xff
	nativeFrac := uint64(bits) & (1<<23 - 1)
	return fromNativeFields[T](e, m, sign, nativeExp, 8, nativeFrac, 23)
}

func fromNativeFields[T aarith.Word](e, m int, sign bool, nativeExp, nativeE int, nativeFrac uint64, nativeM int) Float[T] {
	nativeBias := 1<<uint(nativeE-1) - 1
	targetBias := 1<<uint(e-1) - 1
	nativeAllOnes := 1<<uint(nativeE) - 1

	var newExp int
	switch {
	case nativeExp == 0:
		newExp = 0
		if nativeFrac != 0 {
			nativeFrac = 0 // subnormal inputs collapse to zero; gradual underflow is out of scope
		}
	case nativeExp == nativeAllOnes:
		newExp = 1<<uint(e) - 1
	default:
		unbiased := nativeExp - nativeBias
		newExp = unbiased + targetBias
		switch {
		case newExp < 1:
			newExp = 0
			nativeFrac = 0
		case newExp > 1<<uint(e)-2:
			newExp = 1<<uint(e) - 1
			nativeFrac = 0
		}
	}

	frac := widenOrNarrowFraction[T](nativeFrac, nativeM, m)
	exponent := word.FromUint64[T](e, uint64(newExp))
	return FromParts[T](e, m, sign, exponent, frac)
}

func widenOrNarrowFraction[T aarith.Word](nativeFrac uint64, nativeM, m int) word.Array[T] {
	if m >= nativeM {
		return word.FromUint64[T](m, nativeFrac<<uint(m-nativeM))
	}
	return word.FromUint64[T](m, nativeFrac>>uint(nativeM-m))
}

// ToNativeFloat64 converts a to a float64. Per this module's resolution
// of the narrower-only conversion question, a's shape must fit within a
// float64's 11 exponent bits and 52 fraction bits or this returns a
// DomainError rather than guessing at a truncation scheme.
func (a Float[T]) ToNativeFloat64() (float64, error) {
	if a.e > 11 || a.m > 52 {
		return 0, aarith.NewDomainError("nfloat: ToNativeFloat64: shape (%d,%d) exceeds float64", a.e, a.m)
	}
	bits := a.toNativeBits(11, 52, 1023)
	return math.Float64frombits(bits), nil
}

// ToNativeFloat32 converts a to a float32. See ToNativeFloat64.
func (a Float[T]) ToNativeFloat32() (float32, error) {
	if a.e > 8 || a.m > 23 {
		return 0, aarith.NewDomainError("nfloat: ToNativeFloat32: shape (%d,%d) exceeds float32", a.e, a.m)
	}
	bits := a.toNativeBits(8, 23, 127)
	return math.Float32frombits(uint32(bits)), nil
}

func (a Float[T]) toNativeBits(nativeE, nativeM int, nativeBias int) uint64 {
	var nativeExp uint64
	switch {
	case a.IsZero():
		nativeExp = 0
	case a.IsNaN() || a.IsInf():
		nativeExp = uint64(1<<uint(nativeE) - 1)
	default:
		nativeExp = uint64(a.exponentValue() - a.bias() + nativeBias)
	}
	nativeFrac := a.fractionValue() << uint(nativeM-a.m)
	var signBit uint64
	if a.Sign() {
		signBit = 1
	}
	return signBit<<uint(nativeE+nativeM) | nativeExp<<uint(nativeM) | nativeFrac
}
