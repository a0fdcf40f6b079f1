package sinteger

import (
	"fmt"
	"math/big"

	"github.com/aarith-go/aarith"
)

// ToInt64 returns a's value as an int64, or a DomainError if a doesn't fit
// in that range.
func (a Int[T]) ToInt64() (int64, error) {
	mag := ExpandingAbs(a).ToBigInt()
	if a.IsNegative() {
		mag.Neg(mag)
	}
	if !mag.IsInt64() {
		return 0, aarith.NewDomainError("sinteger: ToInt64: %s does not fit in int64", mag.String())
	}
	return mag.Int64(), nil
}

// ToBigInt returns a's value as a math/big.Int, sign and all.
func (a Int[T]) ToBigInt() *big.Int {
	mag := ExpandingAbs(a).ToBigInt()
	if a.IsNegative() {
		mag.Neg(mag)
	}
	return mag
}

// FromBigInt builds a width-n value from v, truncated to n bits of
// two's-complement if v doesn't fit.
func FromBigInt[T aarith.Word](n int, v *big.Int) Int[T] {
	mag := new(big.Int).Abs(v)
	result := FromUint64[T](n, 0)
	ww := result.bits.WordWidth()
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(ww)), big.NewInt(1))
	tmp := new(big.Int).Set(mag)
	chunk := new(big.Int)
	for i := 0; i < result.bits.WordCount(); i++ {
		chunk.And(tmp, mask)
		result = result.SetWord(i, T(chunk.Uint64()))
		tmp.Rsh(tmp, uint(ww))
	}
	if v.Sign() < 0 {
		result = result.Neg()
	}
	return result
}

// ToDecimal returns a's decimal string representation, with a leading
// "-" for negative values.
func (a Int[T]) ToDecimal() string { return a.ToBigInt().String() }

// String implements fmt.Stringer using the decimal form.
func (a Int[T]) String() string { return a.ToDecimal() }

// GoString implements fmt.GoStringer, showing the width alongside the
// decimal value.
func (a Int[T]) GoString() string {
	return fmt.Sprintf("sinteger.Int[%d]{%s}", a.Width(), a.ToDecimal())
}

// MarshalJSON renders a as a quoted decimal string.
func (a Int[T]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.ToDecimal() + `"`), nil
}

// UnmarshalJSON parses a quoted (or bare) decimal string into a,
// preserving a's existing width.
func (a *Int[T]) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("sinteger: invalid decimal string %q", s)
	}
	n := a.Width()
	if n == 0 {
		return fmt.Errorf("sinteger: UnmarshalJSON: target has zero width")
	}
	*a = FromBigInt[T](n, v)
	return nil
}
