package posit

import (
	"github.com/aarith-go/aarith"
	"github.com/aarith-go/aarith/internal/bitutil"
	"github.com/aarith-go/aarith/uinteger"
	"github.com/aarith-go/aarith/word"
)

// Params is positparams: the scale/fraction decomposition a posit decodes
// to and a posit re-encodes from. It carries no width of its own — N and
// ES are supplied at Encode time, so decode/encode stay a bidirectional
// function pair rather than types holding intrusive links to each other.
type Params struct {
	IsNaR  bool
	IsZero bool
	Sign   bool
	Scale  int
	Frac   Fractional
}

// ParamsZero returns the positparams for the zero posit.
func ParamsZero() Params { return Params{IsZero: true} }

// ParamsNaR returns the positparams for NaR.
func ParamsNaR() Params { return Params{IsNaR: true} }

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func absMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func twosComplementBits[T aarith.Word](w word.Array[T]) word.Array[T] {
	width := w.Width()
	return uinteger.FromBits(w.Not()).Add(uinteger.One[T](width)).Bits()
}

// zeroArray returns the n-bit zero Array, or the width-0 zero value when
// n <= 0 (word.New panics on a non-positive width, but a 0-bit exponent
// or fraction field is a legitimate shape here, e.g. posit<N,0>).
func zeroArray[T aarith.Word](n int) word.Array[T] {
	if n <= 0 {
		var z word.Array[T]
		return z
	}
	return word.New[T](n)
}

func toUint64Bits[T aarith.Word](a word.Array[T]) word.Array[uint64] {
	return word.FromUint64[uint64](a.Width(), uinteger.FromBits(a).ToUint64())
}

// Decode extracts the positparams of p: NaR and zero are handled up front;
// otherwise the sign bit is removed (two's-complementing the remainder if
// it was set), the regime run is measured, up to ES exponent bits follow,
// and whatever bits remain form the explicit fraction.
func Decode[T aarith.Word](p Posit[T]) Params {
	if p.IsNaR() {
		return ParamsNaR()
	}
	if p.IsZero() {
		return ParamsZero()
	}

	n, es := p.n, p.es
	sign := p.bits.Bit(n - 1)
	remaining := p.bits.BitRange(n-2, 0) // width n-1
	if sign {
		remaining = twosComplementBits(remaining)
	}

	pos := n - 2
	firstBit := remaining.Bit(pos)
	r := 0
	for pos >= 0 && remaining.Bit(pos) == firstBit {
		r++
		pos--
	}
	if pos >= 0 {
		pos-- // consume the single terminating regime bit
	}
	k := r - 1
	if !firstBit {
		k = -r
	}

	exponent := zeroArray[T](es)
	for j := 0; j < es && pos >= 0; j++ {
		exponent = exponent.SetBit(es-1-j, remaining.Bit(pos))
		pos--
	}

	var fracField word.Array[uint64]
	if pos >= 0 {
		fracField = toUint64Bits(remaining.BitRange(pos, 0))
	} else {
		fracField = zeroArray[uint64](0)
	}

	scale := k*(1<<uint(es)) + int(uinteger.FromBits(exponent).ToUint64())

	return Params{
		Sign:  sign,
		Scale: scale,
		Frac:  NewFractional(true, fracField),
	}
}

// Encode rebuilds a posit of shape (n,es) from positparams: assemble a wide
// working bitstring (regime bits, exponent bits, fraction bits, in that
// order) wide enough to carry rounding information, slice it into the
// candidate posit and a rounding residue, round to nearest even, and apply
// the sign.
func Encode[T aarith.Word](pm Params, n, es int) Posit[T] {
	if pm.IsNaR {
		return NaR[T](n, es)
	}
	if pm.IsZero {
		return Zero[T](n, es)
	}

	powes := 1 << uint(es)
	regime := floorDiv(pm.Scale, powes)
	exponent := absMod(pm.Scale, powes)

	wide := n + es + 3
	bits := word.New[T](wide)
	i := wide - 1
	i-- // sign placeholder; the bit pattern is built unsigned and negated at the end

	var nregime int
	firstRegimeBit := false
	if pm.Scale < 0 {
		nregime = bitutil.AbsInt(regime) + 1
		firstRegimeBit = false
	} else {
		nregime = regime + 2
		firstRegimeBit = true
	}

	for ridx := 0; ridx < nregime && i >= 0; ridx++ {
		last := ridx == nregime-1
		bitVal := firstRegimeBit
		if last {
			bitVal = !firstRegimeBit
		}
		bits = bits.SetBit(i, bitVal)
		i--
	}

	for eprinted := 0; eprinted < es && i >= 0; eprinted++ {
		eidx := es - 1 - eprinted
		bitVal := (exponent>>uint(eidx))&1 == 1
		bits = bits.SetBit(i, bitVal)
		i--
	}

	fracBits := pm.Frac.FractionBits()
	for fidx := fracBits.Width() - 1; fidx >= 0 && i >= 0; fidx-- {
		bits = bits.SetBit(i, fracBits.Bit(fidx))
		i--
	}

	positBits := bits.Shr(es + 3).WidthCast(n)
	truncated := bits.WidthCast(es + 3)

	x := FromBits[T](n, es, positBits)

	last := positBits.Bit(0)
	after := truncated.Bit(es + 3 - 1)
	tail := false
	if es+3-1 > 0 {
		tail = !truncated.WidthCast(es+3-1).IsZero()
	}

	if (last && after) || (after && tail) {
		x = x.incrementedReal()
	}

	if pm.Sign {
		x = x.Neg()
	}

	return x
}

// Add returns pm+other: NaR absorbs on either side, zero is the additive
// identity, and otherwise the two operands' scales are matched before
// their fractions are combined according to their sign pattern. See
// DESIGN.md for why NaR absorbs on either side rather than only the left,
// which a naive reading of the reference algorithm might suggest.
func (pm Params) Add(other Params) Params {
	if pm.IsNaR || other.IsNaR {
		return ParamsNaR()
	}
	if pm.IsZero {
		return other
	}
	if other.IsZero {
		return pm
	}

	lhs, rhs := pm, other
	matchScaleOf(&lhs, &rhs)
	return sumFractions(lhs, rhs)
}

// matchScaleOf aligns the smaller-scale operand's fraction to the
// larger's scale by shifting it right by the scale delta.
func matchScaleOf(p, q *Params) {
	bigger, smaller := p, q
	if q.Scale > p.Scale {
		bigger, smaller = q, p
	}
	diff := bigger.Scale - smaller.Scale
	smaller.Scale = bigger.Scale
	smaller.Frac = smaller.Frac.Shr(diff)
}

// sumFractions combines two scale-matched operands' fractions according
// to their sign pattern.
func sumFractions(lhs, rhs Params) Params {
	dest := Params{Scale: lhs.Scale}

	switch {
	case lhs.Sign == rhs.Sign:
		dest.Frac = addFractionsNormalize(lhs.Frac, rhs.Frac, &dest.Scale)
		dest.Sign = lhs.Sign
	case !lhs.Sign && rhs.Sign:
		switch lhs.Frac.Cmp(rhs.Frac) {
		case 1:
			dest.Frac = subFractionsNormalize(lhs.Frac, rhs.Frac, &dest.Scale)
			dest.Sign = false
		case 0:
			return ParamsZero()
		default:
			dest.Frac = subFractionsNormalize(rhs.Frac, lhs.Frac, &dest.Scale)
			dest.Sign = true
		}
	default: // lhs.Sign && !rhs.Sign
		switch lhs.Frac.Cmp(rhs.Frac) {
		case -1:
			dest.Frac = subFractionsNormalize(rhs.Frac, lhs.Frac, &dest.Scale)
			dest.Sign = false
		case 0:
			return ParamsZero()
		default:
			dest.Frac = subFractionsNormalize(lhs.Frac, rhs.Frac, &dest.Scale)
			dest.Sign = true
		}
	}

	return dest
}

// addFractionsNormalize adds two fractions and, while the result carries
// into the integer part's overflow bit, shifts right and bumps scale.
func addFractionsNormalize(l, r Fractional, scale *int) Fractional {
	sum, _ := l.Add(r)
	for sum.IntegerBits().Bit(1) {
		sum = sum.Shr(1)
		*scale++
	}
	return sum
}

// subFractionsNormalize subtracts two fractions (assuming l >= r) and,
// unless the result is an exact integer, shifts left and drops scale
// while the hidden bit is still zero.
func subFractionsNormalize(l, r Fractional, scale *int) Fractional {
	diff := l.Sub(r)
	if !diff.FractionBits().IsZero() {
		for !diff.IntegerBits().Bit(0) {
			diff = diff.Shl(1)
			*scale--
		}
	}
	return diff
}
