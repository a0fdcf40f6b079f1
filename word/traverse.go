// This file gathers the bit-range/offset helpers and the higher-order
// traversal suite (Map/ZipWith/Reduce and friends) into one place rather
// than splitting them across headers.
package word

import (
	"fmt"

	"github.com/aarith-go/aarith"
	"github.com/aarith-go/aarith/internal/bitutil"
)

// CountLeadingZeros counts the zero bits starting at bit Width()-1-offset
// and going down to bit 0, stopping at the first one bit. Returns
// Width()-offset if no one bit is found. offset >= Width() returns 0.
//
// Scans a word at a time (via bitutil.BitLen64) from the top down instead
// of walking bit by bit.
func (w Array[T]) CountLeadingZeros(offset int) int {
	n := w.n
	if offset >= n {
		return 0
	}
	topLimit := n - offset
	ww := wordBits[T]()
	numWords := wordCount(topLimit, ww)
	for idx := numWords - 1; idx >= 0; idx-- {
		v := uint64(w.words[idx])
		if idx == numWords-1 {
			bitsInWord := topLimit - idx*ww
			v &= bitutil.LowMask64(bitsInWord)
		}
		if blen := bitutil.BitLen64(v); blen > 0 {
			highestSetBit := idx*ww + blen - 1
			return topLimit - (highestSetBit + 1)
		}
	}
	return topLimit
}

// CountLeadingOnes counts the one bits starting at bit Width()-1-offset,
// stopping at the first zero bit.
func (w Array[T]) CountLeadingOnes(offset int) int {
	return w.Not().CountLeadingZeros(offset)
}

// FirstSetBit returns the index (MSB-to-LSB search, but the index itself is
// LSB-based like Bit) of the highest set bit, and false if w is all zeros.
func (w Array[T]) FirstSetBit() (int, bool) {
	lz := w.CountLeadingZeros(0)
	if lz == w.n {
		return 0, false
	}
	return w.n - (lz + 1), true
}

// FirstUnsetBit is the FirstSetBit symmetric counterpart for zero bits.
func (w Array[T]) FirstUnsetBit() (int, bool) {
	lo := w.CountLeadingOnes(0)
	if lo == w.n {
		return 0, false
	}
	return w.n - (lo + 1), true
}

// LowMask returns a width-width Array with the low n bits set (all
// width-many bits if n >= width).
func LowMask[T aarith.Word](width, n int) Array[T] {
	w := New[T](width)
	if n <= 0 {
		return w
	}
	ww := wordBits[T]()
	full, rem := n/ww, n%ww
	for i := range w.words {
		switch {
		case i < full:
			w.words[i] = ^T(0)
		case i == full && rem > 0:
			w.words[i] = T(bitutil.LowMask64(rem))
		}
	}
	maskTop(w.words, width)
	return w
}

// BitRange extracts the inclusive range [e,s] (e <= s < Width()), returning
// a width-(s-e+1) Array. Panics if the range is invalid: the index
// arguments are a caller contract, not recoverable user input.
func (w Array[T]) BitRange(s, e int) Array[T] {
	if !(e <= s && s < w.n) {
		panic(fmt.Sprintf("word: BitRange: invalid range [%d:%d] for width %d", s, e, w.n))
	}
	return w.Shr(e).WidthCast(s - e + 1)
}

// DynamicBitRange copies bits [start,end) into a fresh width-preserving
// Array (all other bits zero), returning a DomainError if start > end or
// either index exceeds Width().
func (w Array[T]) DynamicBitRange(start, endExclusive int) (Array[T], error) {
	if endExclusive < start {
		return Array[T]{}, aarith.NewDomainError("dynamic_bit_range: end %d < start %d", endExclusive, start)
	}
	if start > w.n {
		return Array[T]{}, aarith.NewDomainError("dynamic_bit_range: start %d out of range for width %d", start, w.n)
	}
	if endExclusive > w.n {
		return Array[T]{}, aarith.NewDomainError("dynamic_bit_range: end %d out of range for width %d", endExclusive, w.n)
	}
	res := New[T](w.n)
	for i := start; i < endExclusive; i++ {
		res = res.SetBit(i, w.Bit(i))
	}
	return res, nil
}

// WidthCast zero-extends (m > Width()) or truncates (m < Width()) w to a
// new width m.
func (w Array[T]) WidthCast(m int) Array[T] {
	if m == w.n {
		return w.clone()
	}
	res := New[T](m)
	n := len(w.words)
	if len(res.words) < n {
		n = len(res.words)
	}
	copy(res.words, w.words[:n])
	maskTop(res.words, m)
	return res
}

// Concat returns a width a.Width()+b.Width() Array with a occupying the
// high bits and b the low bits.
func Concat[T aarith.Word](a, b Array[T]) Array[T] {
	total := a.n + b.n
	res := a.WidthCast(total).Shl(b.n)
	res = res.Or(b.WidthCast(total))
	return res
}

// Split splits w at s (0 <= s < Width()-1), returning the high part
// word[Width()-1:s+1] and the low part word[s:0].
func (w Array[T]) Split(s int) (hi, lo Array[T]) {
	if !(s >= 0 && s < w.n-1) {
		panic(fmt.Sprintf("word: Split: invalid split point %d for width %d", s, w.n))
	}
	hi = w.Shr(s + 1).WidthCast(w.n - (s + 1))
	lo = w.WidthCast(s + 1)
	return hi, lo
}

// Flip reverses the bit order of w (bit 0 becomes bit Width()-1, etc).
func (w Array[T]) Flip() Array[T] {
	res := New[T](w.n)
	for i := 0; i < w.n; i++ {
		if w.Bit(i) {
			res = res.SetBit(w.n-1-i, true)
		}
	}
	return res
}

// Map returns a new Array with f applied to every storage word.
func (w Array[T]) Map(f func(T) T) Array[T] {
	res := w.clone()
	for i := range res.words {
		res.words[i] = f(res.words[i])
	}
	maskTop(res.words, res.n)
	return res
}

// ZipWith combines a and b word-wise with f. Panics if widths differ.
func ZipWith[T aarith.Word](a, b Array[T], f func(x, y T) T) Array[T] {
	a.checkSameWidth(b, "ZipWith")
	res := a.clone()
	for i := range res.words {
		res.words[i] = f(a.words[i], b.words[i])
	}
	maskTop(res.words, res.n)
	return res
}

// ZipWithState combines a and b word-wise with f, threading a fold state
// (e.g. a carry) from the lowest-order word to the highest. Returns the
// combined Array and the final state.
func ZipWithState[T aarith.Word, S any](a, b Array[T], init S, f func(x, y T, state S) (T, S)) (Array[T], S) {
	a.checkSameWidth(b, "ZipWithState")
	res := a.clone()
	state := init
	for i := range res.words {
		res.words[i], state = f(a.words[i], b.words[i], state)
	}
	maskTop(res.words, res.n)
	return res, state
}

// ZipWithExpand zero-extends the narrower of a, b to the wider's width
// before combining word-wise with f.
func ZipWithExpand[T aarith.Word](a, b Array[T], f func(x, y T) T) Array[T] {
	n := a.n
	if b.n > n {
		n = b.n
	}
	return ZipWith(a.WidthCast(n), b.WidthCast(n), f)
}

// Reduce folds f over every storage word of w in storage order (index 0,
// the least significant word, first), carrying an accumulator of any type.
func Reduce[T aarith.Word, R any](w Array[T], init R, f func(acc R, word T) R) R {
	acc := init
	for _, word := range w.words {
		acc = f(acc, word)
	}
	return acc
}

// ZipReduce folds f over the word-wise pairing of a and b. Panics if
// widths differ.
func ZipReduce[T aarith.Word, R any](a, b Array[T], init R, f func(acc R, x, y T) R) R {
	a.checkSameWidth(b, "ZipReduce")
	acc := init
	for i := range a.words {
		acc = f(acc, a.words[i], b.words[i])
	}
	return acc
}

// ZipReduceExpand zero-extends the narrower of a, b before ZipReduce.
func ZipReduceExpand[T aarith.Word, R any](a, b Array[T], init R, f func(acc R, x, y T) R) R {
	n := a.n
	if b.n > n {
		n = b.n
	}
	return ZipReduce(a.WidthCast(n), b.WidthCast(n), init, f)
}
