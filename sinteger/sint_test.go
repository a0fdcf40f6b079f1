package sinteger

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aarith-go/aarith"
)

func mustInt64(t *testing.T, x Int[uint64]) int64 {
	t.Helper()
	v, err := x.ToInt64()
	require.NoError(t, err)
	return v
}

func TestWidthCastSignExtension(t *testing.T) {
	a := assert.New(t)
	// S2: width_cast(i8(-1), 16) == i16(-1); width_cast(i8(-1), 4) == i4(-1).
	neg1 := FromInt64[uint64](8, -1)
	a.Equal(int64(-1), mustInt64(t, neg1.WidthCast(16)))
	a.Equal(int64(-1), mustInt64(t, neg1.WidthCast(4)))
}

func TestAddOverflowWraps(t *testing.T) {
	a := assert.New(t)
	maxV := Max[uint64](8)
	one := One[uint64](8)
	a.True(maxV.Add(one).Eq(Min[uint64](8)))
}

func TestNegAndAbsMostNegative(t *testing.T) {
	a := assert.New(t)
	minV := Min[uint64](8) // -128
	a.True(minV.Neg().Eq(minV), "int8 -128 negates back to itself")
	abs := ExpandingAbs(minV)
	a.Equal(uint64(128), abs.ToUint64())
}

func TestSubAndCmp(t *testing.T) {
	a := assert.New(t)
	x := FromInt64[uint64](8, 5)
	y := FromInt64[uint64](8, -3)
	a.Equal(int64(8), mustInt64(t, x.Sub(y)))
	a.True(y.Lt(x))
	a.True(x.Gt(y))
	a.True(x.Eq(x))
}

func TestArithmeticShiftPreservesNegativeOne(t *testing.T) {
	a := assert.New(t)
	// property #9: shr(-1, k) == -1 for every k and width.
	for _, width := range []int{4, 8, 16, 32} {
		minusOne := MinusOne[uint64](width)
		for k := 0; k < width+2; k++ {
			a.Equal(int64(-1), mustInt64(t, minusOne.Shr(k)), "width=%d k=%d", width, k)
		}
	}
}

func TestShiftOnPositiveAndNegative(t *testing.T) {
	a := assert.New(t)
	pos := FromInt64[uint64](8, 40)
	a.Equal(int64(20), mustInt64(t, pos.Shr(1)))
	neg := FromInt64[uint64](8, -40)
	a.Equal(int64(-20), mustInt64(t, neg.Shr(1)))
}

func TestMulAgreesWithInt64(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		x := int64(r.Intn(256) - 128)
		y := int64(r.Intn(256) - 128)
		xs := FromInt64[uint64](8, x)
		ys := FromInt64[uint64](8, y)
		full := ExpandingMul(xs, ys)
		a.Equal(x*y, mustInt64(t, full), "x=%d y=%d", x, y)
	}
}

func TestMulMostNegativeMultiplicand(t *testing.T) {
	a := assert.New(t)
	// property #11 / S2: expanding_mul(i8(-128), i8(-1)) == i16(128), not
	// the sign-flipped -128 an undersized Booth accumulator would produce.
	minV := FromInt64[uint64](8, -128)
	negOne := FromInt64[uint64](8, -1)
	a.Equal(int64(128), mustInt64(t, ExpandingMul(minV, negOne)))
	a.Equal(int64(128), mustInt64(t, ExpandingMul(negOne, minV)))
}

func TestDivModTruncatesTowardZero(t *testing.T) {
	a := assert.New(t)
	cases := []struct{ n, d int64 }{
		{7, 2}, {-7, 2}, {7, -2}, {-7, -2}, {0, 5},
	}
	for _, c := range cases {
		n := FromInt64[uint64](8, c.n)
		d := FromInt64[uint64](8, c.d)
		q, rem, err := n.DivMod(d)
		require.NoError(t, err)
		a.Equal(c.n/c.d, mustInt64(t, q), "quotient for %d/%d", c.n, c.d)
		a.Equal(c.n%c.d, mustInt64(t, rem), "remainder for %d/%d", c.n, c.d)
	}
}

func TestDivByZero(t *testing.T) {
	a := assert.New(t)
	n := FromInt64[uint64](8, 5)
	_, _, err := n.DivMod(Zero[uint64](8))
	a.Error(err)
}

func TestConcatSplitRoundTrip(t *testing.T) {
	a := assert.New(t)
	x := FromInt64[uint64](16, -1234)
	hi, lo := x.Split(7)
	rebuilt := Concat(hi, lo)
	a.True(rebuilt.Eq(x))
}

func TestDecimalStringNegative(t *testing.T) {
	a := assert.New(t)
	x := FromInt64[uint64](64, -123456789)
	a.Equal("-123456789", x.ToDecimal())
}

func TestToInt64Overflow(t *testing.T) {
	a := assert.New(t)
	big2to100 := new(big.Int).Lsh(big.NewInt(1), 100)
	x := FromBigInt[uint64](128, big2to100)
	_, err := x.ToInt64()
	a.True(aarith.IsKind(err, aarith.DomainError))
}

func TestJSONRoundTrip(t *testing.T) {
	a := assert.New(t)
	x := FromInt64[uint64](32, -42)
	data, err := x.MarshalJSON()
	require.NoError(t, err)
	a.Equal(`"-42"`, string(data))

	var y Int[uint64]
	y = New[uint64](32)
	require.NoError(t, y.UnmarshalJSON(data))
	a.True(y.Eq(x))
}
