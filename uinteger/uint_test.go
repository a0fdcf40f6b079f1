package uinteger

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarith-go/aarith"
)

func TestExpandingAddOverflow(t *testing.T) {
	a := assert.New(t)
	// S1: expanding_add(u8(255), u8(1)) == u9(256); add(u8(255), u8(1)) == u8(0).
	x := FromUint64[uint64](8, 255)
	y := FromUint64[uint64](8, 1)
	exp := ExpandingAdd(x, y, false)
	a.Equal(9, exp.Width())
	a.Equal(uint64(256), exp.ToUint64())
	a.Equal(uint64(0), x.Add(y).ToUint64())
}

func TestRestoringDivision(t *testing.T) {
	a := assert.New(t)
	// S3: restoring_division(u32(1000), u32(7)) == (142, 6).
	n := FromUint64[uint64](32, 1000)
	d := FromUint64[uint64](32, 7)
	q, r, err := n.DivMod(d)
	require.NoError(t, err)
	a.Equal(uint64(142), q.ToUint64())
	a.Equal(uint64(6), r.ToUint64())
}

func TestDivByZero(t *testing.T) {
	a := assert.New(t)
	n := FromUint64[uint64](8, 5)
	_, _, err := n.DivMod(Zero[uint64](8))
	a.Error(err)
}

func TestDivFastPaths(t *testing.T) {
	a := assert.New(t)
	eight := FromUint64[uint64](8, 8)
	zero := Zero[uint64](8)
	one := One[uint64](8)

	q, r, err := zero.DivMod(eight)
	require.NoError(t, err)
	a.True(q.IsZero())
	a.True(r.IsZero())

	q, r, err = eight.DivMod(one)
	require.NoError(t, err)
	a.Equal(uint64(8), q.ToUint64())
	a.True(r.IsZero())

	q, r, err = eight.DivMod(eight)
	require.NoError(t, err)
	a.Equal(uint64(1), q.ToUint64())
	a.True(r.IsZero())

	three := FromUint64[uint64](8, 3)
	q, r, err = three.DivMod(eight)
	require.NoError(t, err)
	a.True(q.IsZero())
	a.Equal(uint64(3), r.ToUint64())
}

func TestMulSchoolbook(t *testing.T) {
	a := assert.New(t)
	x := FromUint64[uint64](8, 200)
	y := FromUint64[uint64](8, 200)
	full := ExpandingMul(x, y)
	a.Equal(16, full.Width())
	a.Equal(uint64(40000), full.ToUint64())
}

func TestKaratsubaAgreesWithSchoolbook(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		x := FromUint64[uint64](32, uint64(r.Uint32()))
		y := FromUint64[uint64](32, uint64(r.Uint32()))
		sb := ExpandingMul(x, y)
		kt := ExpandingMulKaratsuba(x, y)
		a.True(sb.Eq(kt), "mismatch for %d * %d", x.ToUint64(), y.ToUint64())
	}
}

func TestCommutativity(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		x := FromUint64[uint64](16, uint64(r.Intn(1<<16)))
		y := FromUint64[uint64](16, uint64(r.Intn(1<<16)))
		a.True(x.Add(y).Eq(y.Add(x)))
		a.True(x.Mul(y).Eq(y.Mul(x)))
	}
}

func TestIdentities(t *testing.T) {
	a := assert.New(t)
	x := FromUint64[uint64](16, 12345)
	a.True(x.Add(Zero[uint64](16)).Eq(x))
	a.True(x.Mul(One[uint64](16)).Eq(x))
}

func TestDivisionRemainderLaw(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		n := FromUint64[uint64](16, uint64(r.Intn(1<<16)))
		d := FromUint64[uint64](16, uint64(r.Intn(1<<16-1)+1))
		q, rem, err := n.DivMod(d)
		require.NoError(t, err)
		reconstructed := q.Mul(d).Add(rem)
		a.True(reconstructed.Eq(n))
		a.True(rem.Lt(d))
	}
}

func TestShiftMultiplyCorrespondence(t *testing.T) {
	a := assert.New(t)
	x := FromUint64[uint64](16, 37)
	for k := 0; k < 16; k++ {
		shifted := x.Shl(k)
		two := FromUint64[uint64](16, 2)
		pow := One[uint64](16)
		for i := 0; i < k; i++ {
			pow = pow.Mul(two)
		}
		a.True(shifted.Eq(x.Mul(pow)), "k=%d", k)
	}
}

func TestRoundTripAndWidthCast(t *testing.T) {
	a := assert.New(t)
	x := FromUint64[uint64](8, 200)
	grown := x.WidthCast(16)
	a.True(grown.WidthCast(8).Eq(x))
}

func TestDecimalString(t *testing.T) {
	a := assert.New(t)
	x := FromUint64[uint64](128, 1)
	shifted := x.Shl(100)
	a.Equal("1267650600228229401496703205376", shifted.ToDecimal())
}

func TestNarrowingConversionsFit(t *testing.T) {
	a := assert.New(t)
	x := FromUint64[uint64](16, 255)
	u8, err := x.ToU8()
	require.NoError(t, err)
	a.Equal(uint8(255), u8)

	y := FromUint64[uint64](32, 65535)
	u16, err := y.ToU16()
	require.NoError(t, err)
	a.Equal(uint16(65535), u16)
}

func TestNarrowingConversionsOverflow(t *testing.T) {
	a := assert.New(t)
	x := FromUint64[uint64](16, 256)
	_, err := x.ToU8()
	a.True(aarith.IsKind(err, aarith.DomainError))

	y := FromUint64[uint64](128, 1)
	wide := y.Shl(100)
	_, err = wide.ToU64()
	a.True(aarith.IsKind(err, aarith.DomainError))
}
