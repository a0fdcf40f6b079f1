// Package valid implements tiles and valids, a posit-based interval
// arithmetic skeleton: every comparison is implemented, and the four
// arithmetic operators are declared but not yet implemented.
package valid

import (
	"fmt"

	"github.com/aarith-go/aarith"
	"github.com/aarith-go/aarith/posit"
	"github.com/aarith-go/aarith/sinteger"
)

// Tile pairs a posit with an "uncertain" flag marking an open interval
// endpoint.
type Tile[T aarith.Word] struct {
	P         posit.Posit[T]
	Uncertain bool
}

// TileFrom builds a Tile from a posit value and its uncertain flag.
func TileFrom[T aarith.Word](p posit.Posit[T], uncertain bool) Tile[T] {
	return Tile[T]{P: p, Uncertain: uncertain}
}

// TileZero returns the exact (certain) zero tile.
func TileZero[T aarith.Word](n, es int) Tile[T] {
	return Tile[T]{P: posit.Zero[T](n, es), Uncertain: false}
}

// TileOne returns the exact (certain) one tile.
func TileOne[T aarith.Word](n, es int) Tile[T] {
	return Tile[T]{P: posit.One[T](n, es), Uncertain: false}
}

// TileNaR returns the NaR tile.
func TileNaR[T aarith.Word](n, es int) Tile[T] {
	return Tile[T]{P: posit.NaR[T](n, es), Uncertain: false}
}

// Equal reports component-wise equality.
func (t Tile[T]) Equal(o Tile[T]) bool {
	return t.P.Eq(o.P) && t.Uncertain == o.Uncertain
}

// IsNegative reports whether the underlying posit is negative.
func (t Tile[T]) IsNegative() bool { return t.P.IsNegative() }

// Valid is an ordered pair of tiles: Start and End. The canonical empty
// set is (0_uncertain, 0_uncertain); NaR is (NaR, NaR).
type Valid[T aarith.Word] struct {
	Start, End Tile[T]
}

// From builds a Valid from its two endpoint tiles, canonicalizing the
// empty-set representation the way the source constructor does.
func From[T aarith.Word](start, end Tile[T]) Valid[T] {
	v := Valid[T]{Start: start, End: end}
	return v.ensureCanonicalized()
}

// Zero returns the valid representing the exact value 0.
func Zero[T aarith.Word](n, es int) Valid[T] {
	z := TileZero[T](n, es)
	return From(z, z)
}

// One returns the valid representing the exact value 1.
func One[T aarith.Word](n, es int) Valid[T] {
	o := TileOne[T](n, es)
	return From(o, o)
}

// Empty returns the canonical empty set: an open interval (p, p) at
// p = 0. The source picks p = 0 arbitrarily; this module does the same.
func Empty[T aarith.Word](n, es int) Valid[T] {
	open := TileFrom(posit.Zero[T](n, es), true)
	return Valid[T]{Start: open, End: open}
}

// NaR returns the NaR valid: (NaR, NaR).
func NaR[T aarith.Word](n, es int) Valid[T] {
	nar := TileNaR[T](n, es)
	return Valid[T]{Start: nar, End: nar}
}

// Exact returns the degenerate valid representing a single exact posit
// value.
func Exact[T aarith.Word](p posit.Posit[T]) Valid[T] {
	t := TileFrom(p, false)
	return From(t, t)
}

func (v Valid[T]) isEmptyShape() bool {
	return v.Start.Uncertain && v.End.Uncertain && v.Start.P.Eq(v.End.P)
}

func (v Valid[T]) ensureCanonicalized() Valid[T] {
	if v.isEmptyShape() {
		return Empty[T](v.Start.P.N(), v.Start.P.ES())
	}
	return v
}

// Equal reports component-wise equality of Start and End.
func (v Valid[T]) Equal(o Valid[T]) bool {
	return v.Start.Equal(o.Start) && v.End.Equal(o.End)
}

// IsZero reports whether v is the exact-zero valid.
func (v Valid[T]) IsZero() bool {
	return v.Equal(Zero[T](v.Start.P.N(), v.Start.P.ES()))
}

// IsEmpty reports whether v is the canonical empty set.
func (v Valid[T]) IsEmpty() bool { return v.isEmptyShape() }

// IsNaR reports whether v is the NaR valid.
func (v Valid[T]) IsNaR() bool {
	return v.Start.P.IsNaR() && v.End.P.IsNaR()
}

// Less compares the right end of v against the left end of o; if the
// endpoints straddle zero, the operand whose compared endpoint is
// negative is the smaller one; any NaR operand makes the comparison
// false. Endpoints of the same sign compare by posit value (the order of
// their bit patterns read as two's-complement integers); the uncertain
// flags are not consulted. See DESIGN.md for the reasoning behind this
// ordering.
func (v Valid[T]) Less(o Valid[T]) bool {
	if v.Equal(o) {
		return false
	}
	if v.IsNaR() || o.IsNaR() {
		return false
	}

	right := v.End
	left := o.Start

	if right.IsNegative() != left.IsNegative() {
		return right.IsNegative()
	}

	return sinteger.FromBits(right.P.Bits()).Lt(sinteger.FromBits(left.P.Bits()))
}

// LessOrEqual returns v < o || v == o.
func (v Valid[T]) LessOrEqual(o Valid[T]) bool { return v.Less(o) || v.Equal(o) }

// Greater returns o < v.
func (v Valid[T]) Greater(o Valid[T]) bool { return o.Less(v) }

// GreaterOrEqual returns v > o || v == o.
func (v Valid[T]) GreaterOrEqual(o Valid[T]) bool { return v.Greater(o) || v.Equal(o) }

// Add is declared but not implemented: valid interval arithmetic is an
// unimplemented extension point beyond this skeleton.
func (v Valid[T]) Add(o Valid[T]) (Valid[T], error) {
	return Valid[T]{}, aarith.NotImplementedError("valid.Add")
}

// Sub is declared but not implemented. See Add.
func (v Valid[T]) Sub(o Valid[T]) (Valid[T], error) {
	return Valid[T]{}, aarith.NotImplementedError("valid.Sub")
}

// Mul is declared but not implemented. See Add.
func (v Valid[T]) Mul(o Valid[T]) (Valid[T], error) {
	return Valid[T]{}, aarith.NotImplementedError("valid.Mul")
}

// Div is declared but not implemented. See Add.
func (v Valid[T]) Div(o Valid[T]) (Valid[T], error) {
	return Valid[T]{}, aarith.NotImplementedError("valid.Div")
}

func (v Valid[T]) String() string {
	switch {
	case v.IsNaR():
		return "NaR"
	case v.IsEmpty():
		return "{}"
	default:
		return fmt.Sprintf("[%s, %s]", v.Start.P, v.End.P)
	}
}

func (v Valid[T]) GoString() string {
	return fmt.Sprintf("valid.Valid{Start: %#v, End: %#v}", v.Start.P, v.End.P)
}
