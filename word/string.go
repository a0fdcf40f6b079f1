package word

import (
	"fmt"
	"strings"
)

const base2NAlphabet = "0123456789abcdefghijklmnopqrstuv"

// ToBase2N renders w as a string in base 2^k (k bits per digit), most
// significant digit first, zero-padded to cover every significant bit.
// Panics if k is not in [1,5] (the alphabet covers bases up to 32).
func (w Array[T]) ToBase2N(k int) string {
	if k < 1 || k > 5 {
		panic(fmt.Sprintf("word: ToBase2N: k=%d out of supported range [1,5]", k))
	}
	digits := (w.n + k - 1) / k
	var b strings.Builder
	b.Grow(digits)
	for d := digits - 1; d >= 0; d-- {
		start := d * k
		end := start + k
		if end > w.n {
			end = w.n
		}
		var v uint64
		for i := end - 1; i >= start; i-- {
			v <<= 1
			if w.Bit(i) {
				v |= 1
			}
		}
		b.WriteByte(base2NAlphabet[v])
	}
	return b.String()
}

// ToBinary renders w in base 2, one character per bit.
func (w Array[T]) ToBinary() string { return w.ToBase2N(1) }

// ToOctal renders w in base 8, grouped 3 bits per digit.
func (w Array[T]) ToOctal() string { return w.ToBase2N(3) }

// ToHex renders w in base 16, grouped 4 bits per digit.
func (w Array[T]) ToHex() string { return w.ToBase2N(4) }

// String renders w as a width-tagged hex literal, e.g. "W24:0x1a2b3c".
func (w Array[T]) String() string {
	return fmt.Sprintf("W%d:0x%s", w.n, w.ToHex())
}

// GoString renders w's internal representation for debugging.
func (w Array[T]) GoString() string {
	return fmt.Sprintf("word.Array[width=%d, words=%v]", w.n, w.words)
}
