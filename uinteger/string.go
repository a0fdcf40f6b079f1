package uinteger

import (
	"fmt"
	"math/big"

	"github.com/aarith-go/aarith"
)

// ToUint64 returns the low 64 bits of a as a uint64.
func (a Uint[T]) ToUint64() uint64 {
	ww := a.bits.WordWidth()
	var result uint64
	for i := a.bits.WordCount() - 1; i >= 0; i-- {
		if i*ww < 64 {
			result |= uint64(a.Word(i)) << uint(i*ww)
		}
	}
	return result
}

// ToU8 returns a as a uint8, or a DomainError if a doesn't fit in 8 bits.
func (a Uint[T]) ToU8() (uint8, error) {
	if a.ToBigInt().BitLen() > 8 {
		return 0, aarith.NewDomainError("uinteger: ToU8: %s does not fit in 8 bits", a.ToDecimal())
	}
	return uint8(a.ToUint64()), nil
}

// ToU16 returns a as a uint16, or a DomainError if a doesn't fit in 16 bits.
func (a Uint[T]) ToU16() (uint16, error) {
	if a.ToBigInt().BitLen() > 16 {
		return 0, aarith.NewDomainError("uinteger: ToU16: %s does not fit in 16 bits", a.ToDecimal())
	}
	return uint16(a.ToUint64()), nil
}

// ToU32 returns a as a uint32, or a DomainError if a doesn't fit in 32 bits.
func (a Uint[T]) ToU32() (uint32, error) {
	if a.ToBigInt().BitLen() > 32 {
		return 0, aarith.NewDomainError("uinteger: ToU32: %s does not fit in 32 bits", a.ToDecimal())
	}
	return uint32(a.ToUint64()), nil
}

// ToU64 returns a as a uint64, or a DomainError if a doesn't fit in 64 bits.
func (a Uint[T]) ToU64() (uint64, error) {
	if a.ToBigInt().BitLen() > 64 {
		return 0, aarith.NewDomainError("uinteger: ToU64: %s does not fit in 64 bits", a.ToDecimal())
	}
	return a.ToUint64(), nil
}

// ToBigInt composes a's words into a math/big.Int. Widths can exceed 64
// bits, so decimal formatting is delegated to math/big rather than
// hand-rolled digit tables.
func (a Uint[T]) ToBigInt() *big.Int {
	result := new(big.Int)
	ww := a.bits.WordWidth()
	for i := a.bits.WordCount() - 1; i >= 0; i-- {
		result.Lsh(result, uint(ww))
		result.Or(result, new(big.Int).SetUint64(uint64(a.Word(i))))
	}
	return result
}

// FromBigInt builds a width-n value from the low n bits of v.
func FromBigInt[T aarith.Word](n int, v *big.Int) Uint[T] {
	result := New[T](n)
	ww := result.bits.WordWidth()
	tmp := new(big.Int).Set(v)
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(ww)), big.NewInt(1))
	chunk := new(big.Int)
	for i := 0; i < result.bits.WordCount(); i++ {
		chunk.And(tmp, mask)
		result = result.SetWord(i, T(chunk.Uint64()))
		tmp.Rsh(tmp, uint(ww))
	}
	return result
}

// ToDecimal returns a's decimal string representation.
func (a Uint[T]) ToDecimal() string { return a.ToBigInt().String() }

// String implements fmt.Stringer using the decimal form.
func (a Uint[T]) String() string { return a.ToDecimal() }

// GoString implements fmt.GoStringer, showing the width alongside the
// decimal value.
func (a Uint[T]) GoString() string {
	return fmt.Sprintf("uinteger.Uint[%d]{%s}", a.Width(), a.ToDecimal())
}

// MarshalJSON renders a as a quoted decimal string, since a's value can
// exceed what a bare JSON number can round-trip without loss.
func (a Uint[T]) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.ToDecimal() + `"`), nil
}

// UnmarshalJSON parses a quoted (or bare) decimal string into a,
// preserving a's existing width.
func (a *Uint[T]) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("uinteger: invalid decimal string %q", s)
	}
	n := a.Width()
	if n == 0 {
		return fmt.Errorf("uinteger: UnmarshalJSON: target has zero width")
	}
	*a = FromBigInt[T](n, v)
	return nil
}
