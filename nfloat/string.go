package nfloat

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aarith-go/aarith/uinteger"
	"github.com/aarith-go/aarith/word"
)

// ToDecimalString renders a in scientific notation, "[-]m.mmmE[-]eee"
// using the unbiased exponent, for display purposes only — arithmetic
// never routes through this, staying on the bit-exact guard/round/sticky
// path instead.
func (a Float[T]) ToDecimalString() string {
	switch {
	case a.IsNaN():
		return "NaN"
	case a.IsInf():
		if a.Sign() {
			return "-Inf"
		}
		return "Inf"
	case a.IsZero():
		if a.Sign() {
			return "-0"
		}
		return "0"
	}

	unbiased := a.exponentValue() - a.bias()
	frac := decimal.NewFromBigInt(uinteger.FromBits(a.Fraction()).ToBigInt(), 0)
	denom := decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(a.m)), 0)
	mantissa := decimal.NewFromInt(1).Add(frac.DivRound(denom, int32(a.m)+4))
	if a.Sign() {
		mantissa = mantissa.Neg()
	}
	return fmt.Sprintf("%sE%d", mantissa.String(), unbiased)
}

// String implements fmt.Stringer using the scientific decimal form.
func (a Float[T]) String() string { return a.ToDecimalString() }

// GoString implements fmt.GoStringer.
func (a Float[T]) GoString() string {
	return fmt.Sprintf("nfloat.Float[%d,%d]{%s}", a.e, a.m, a.ToDecimalString())
}

// MarshalJSON renders a as a quoted scientific-notation string.
func (a Float[T]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.ToDecimalString() + `"`), nil
}

// UnmarshalJSON parses the quoted form ToDecimalString produces — "NaN",
// "[-]Inf", "[-]0", or "[-]m.mmmE[-]eee" — into a, preserving a's existing
// (e,m) shape.
func (a *Float[T]) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	e, m := a.e, a.m
	switch s {
	case "NaN":
		*a = NaN[T](e, m)
		return nil
	case "Inf":
		*a = Inf[T](e, m, false)
		return nil
	case "-Inf":
		*a = Inf[T](e, m, true)
		return nil
	case "0":
		*a = Zero[T](e, m)
		return nil
	case "-0":
		*a = Zero[T](e, m).withSign(true)
		return nil
	}

	idx := strings.IndexByte(s, 'E')
	if idx < 0 {
		return fmt.Errorf("nfloat: invalid scientific string %q", s)
	}
	mantissaStr, expStr := s[:idx], s[idx+1:]

	mantissa, err := decimal.NewFromString(mantissaStr)
	if err != nil {
		return fmt.Errorf("nfloat: invalid mantissa %q: %w", mantissaStr, err)
	}
	unbiased, err := strconv.Atoi(expStr)
	if err != nil {
		return fmt.Errorf("nfloat: invalid exponent %q: %w", expStr, err)
	}

	sign := mantissa.Sign() < 0
	mantissa = mantissa.Abs()
	frac := mantissa.Sub(decimal.NewFromInt(1))
	pow2m := decimal.NewFromBigInt(new(big.Int).Lsh(big.NewInt(1), uint(m)), 0)
	fracStr := frac.Mul(pow2m).Round(0).String()
	fracBig, ok := new(big.Int).SetString(fracStr, 10)
	if !ok {
		return fmt.Errorf("nfloat: invalid fraction string %q", fracStr)
	}

	newExp := unbiased + (1<<uint(e-1) - 1)
	exponent := word.FromUint64[T](e, uint64(newExp))
	fraction := uinteger.FromBigInt[T](m, fracBig).Bits()
	*a = FromParts[T](e, m, sign, exponent, fraction)
	return nil
}
