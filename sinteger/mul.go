package sinteger

import "github.com/aarith-go/aarith"

// ExpandingMul computes the full a.Width()+b.Width()-bit two's-complement
// product of a and b via Booth's algorithm: a shift-add register holding
// the running product alongside the multiplier and one guard bit below it,
// scanned one bit at a time. Each step either adds the multiplicand,
// subtracts it, or does nothing, depending on the pair of bits currently
// straddling the guard bit, then shifts the whole register right by one
// arithmetically, so the accumulated product's sign is preserved.
func ExpandingMul[T aarith.Word](a, b Int[T]) Int[T] {
	w, v := a.Width(), b.Width()
	lowWidth := v + 1 // multiplier plus guard bit
	accWidth := w + 1 // one extra bit so the most-negative multiplicand doesn't overflow the accumulator
	k := accWidth + lowWidth
	multiplicand := a.WidthCast(k)
	reg := Concat(Zero[T](accWidth), Concat(b, Zero[T](1)))
	for i := 0; i < v; i++ {
		lowTwo := (boolToInt(reg.Bit(1)) << 1) | boolToInt(reg.Bit(0))
		switch lowTwo {
		case 0b01:
			reg = addToHigh(reg, multiplicand, lowWidth)
		case 0b10:
			reg = addToHigh(reg, multiplicand.Neg(), lowWidth)
		}
		reg = reg.Shr(1)
	}
	return reg.Shr(1).WidthCast(w + v)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// addToHigh adds delta into the high accumulator bits of reg (above the
// lowWidth-bit multiplier/guard field), leaving the low bits untouched.
func addToHigh[T aarith.Word](reg, delta Int[T], lowWidth int) Int[T] {
	hi, lo := reg.Split(lowWidth - 1)
	hi = hi.Add(delta.WidthCast(hi.Width()))
	return Concat(hi, lo)
}

// Mul returns a*b truncated to the declared width of a and b, which must
// be equal.
func (a Int[T]) Mul(b Int[T]) Int[T] {
	a.checkSameWidth(b, "Mul")
	return ExpandingMul(a, b).WidthCast(a.Width())
}
