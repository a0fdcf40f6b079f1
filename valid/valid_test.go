package valid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aarith-go/aarith"
	"github.com/aarith-go/aarith/posit"
)

func TestZeroOneEquality(t *testing.T) {
	a := assert.New(t)
	z1 := Zero[uint64](8, 0)
	z2 := Zero[uint64](8, 0)
	a.True(z1.Equal(z2))
	a.False(z1.Equal(One[uint64](8, 0)))
}

func TestCanonicalEmptySet(t *testing.T) {
	a := assert.New(t)
	open := TileFrom(posit.Zero[uint64](8, 0), true)
	v := From(open, open)
	a.True(v.IsEmpty())
	a.True(v.Equal(Empty[uint64](8, 0)))
}

func TestNaRValid(t *testing.T) {
	a := assert.New(t)
	n := NaR[uint64](8, 0)
	a.True(n.IsNaR())
	a.False(n.Less(Zero[uint64](8, 0)))
	a.False(Zero[uint64](8, 0).Less(n))
}

func TestLessStraddlingZero(t *testing.T) {
	a := assert.New(t)
	negOne := Exact(posit.One[uint64](8, 0).Neg())
	posOne := Exact(posit.One[uint64](8, 0))
	a.True(negOne.Less(posOne))
	a.False(posOne.Less(negOne))
}

func TestArithmeticNotImplemented(t *testing.T) {
	a := assert.New(t)
	one := One[uint64](8, 0)

	_, err := one.Add(one)
	a.True(aarith.IsKind(err, aarith.NotImplemented))

	_, err = one.Sub(one)
	a.True(aarith.IsKind(err, aarith.NotImplemented))

	_, err = one.Mul(one)
	a.True(aarith.IsKind(err, aarith.NotImplemented))

	_, err = one.Div(one)
	a.True(aarith.IsKind(err, aarith.NotImplemented))
}

func TestExactValueSelfEquality(t *testing.T) {
	a := assert.New(t)
	one := Exact(posit.One[uint64](8, 0))
	a.True(one.Equal(One[uint64](8, 0)))
}
