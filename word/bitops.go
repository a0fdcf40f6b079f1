package word

// And returns the word-wise AND of w and v. Panics if widths differ.
func (w Array[T]) And(v Array[T]) Array[T] {
	w.checkSameWidth(v, "And")
	res := w.clone()
	for i := range res.words {
		res.words[i] &= v.words[i]
	}
	return res
}

// Or returns the word-wise OR of w and v. Panics if widths differ.
func (w Array[T]) Or(v Array[T]) Array[T] {
	w.checkSameWidth(v, "Or")
	res := w.clone()
	for i := range res.words {
		res.words[i] |= v.words[i]
	}
	return res
}

// Xor returns the word-wise XOR of w and v. Panics if widths differ.
func (w Array[T]) Xor(v Array[T]) Array[T] {
	w.checkSameWidth(v, "Xor")
	res := w.clone()
	for i := range res.words {
		res.words[i] ^= v.words[i]
	}
	return res
}

// Not returns the bit-wise complement of w, re-masking the top word so the
// width invariant holds.
func (w Array[T]) Not() Array[T] {
	res := w.clone()
	for i := range res.words {
		res.words[i] = ^res.words[i]
	}
	maskTop(res.words, res.n)
	return res
}

// Shl returns w logically shifted left by k bits, zero-filling from the
// LSB. Shifts of k >= Width() produce all zeros. Panics if k < 0.
func (w Array[T]) Shl(k int) Array[T] {
	if k < 0 {
		panic("word: Shl: negative shift")
	}
	res := New[T](w.n)
	if k >= w.n {
		return res
	}
	ww := w.WordWidth()
	kw, r := k/ww, k%ww
	wc := len(w.words)
	for i := len(res.words) - 1; i >= 0; i-- {
		var v T
		if src := i - kw; src >= 0 && src < wc {
			v = w.words[src] << uint(r)
		}
		if r > 0 {
			if src := i - kw - 1; src >= 0 && src < wc {
				v |= w.words[src] >> uint(ww-r)
			}
		}
		res.words[i] = v
	}
	maskTop(res.words, res.n)
	return res
}

// Shr returns w logically shifted right by k bits, zero-filling from the
// MSB. Shifts of k >= Width() produce all zeros. Panics if k < 0.
func (w Array[T]) Shr(k int) Array[T] {
	if k < 0 {
		panic("word: Shr: negative shift")
	}
	res := New[T](w.n)
	if k >= w.n {
		return res
	}
	ww := w.WordWidth()
	kw, r := k/ww, k%ww
	wc := len(w.words)
	for i := 0; i < len(res.words); i++ {
		var v T
		if src := i + kw; src < wc {
			v = w.words[src] >> uint(r)
		}
		if r > 0 {
			if src := i + kw + 1; src < wc {
				v |= w.words[src] << uint(ww-r)
			}
		}
		res.words[i] = v
	}
	maskTop(res.words, res.n)
	return res
}
