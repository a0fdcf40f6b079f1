package nfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTrip(t *testing.T) {
	a := assert.New(t)
	for _, f := range []float64{0.5, 1.0, -2.25, 100.0, -0.0001} {
		nf := FromNativeFloat64[uint64](11, 52, f)
		back, err := nf.ToNativeFloat64()
		require.NoError(t, err)
		a.Equal(f, back, "round trip for %v", f)
	}
}

func TestAddHalfPlusQuarter(t *testing.T) {
	a := assert.New(t)
	// S4: add(NF<8,23>(0.5), NF<8,23>(0.25)) converts to native float 0.75f.
	x := FromNativeFloat32[uint64](8, 23, 0.5)
	y := FromNativeFloat32[uint64](8, 23, 0.25)
	sum := Add(x, y)
	f, err := sum.ToNativeFloat32()
	require.NoError(t, err)
	a.Equal(float32(0.75), f)
}

func TestAddCommutativity(t *testing.T) {
	a := assert.New(t)
	vals := []float64{1.5, -3.25, 0.125, 42.0, -7.0}
	for _, x := range vals {
		for _, y := range vals {
			fx := FromNativeFloat64[uint64](11, 52, x)
			fy := FromNativeFloat64[uint64](11, 52, y)
			lr, _ := Add(fx, fy).ToNativeFloat64()
			rl, _ := Add(fy, fx).ToNativeFloat64()
			a.InDelta(lr, rl, 1e-9, "x=%v y=%v", x, y)
		}
	}
}

func TestAddZeroIdentity(t *testing.T) {
	a := assert.New(t)
	x := FromNativeFloat64[uint64](11, 52, 3.5)
	zero := Zero[uint64](11, 52)
	sum, err := Add(x, zero).ToNativeFloat64()
	require.NoError(t, err)
	a.Equal(3.5, sum)
}

func TestMulCommutativity(t *testing.T) {
	a := assert.New(t)
	vals := []float64{1.5, -3.25, 0.125, 42.0, -7.0, 2.0}
	for _, x := range vals {
		for _, y := range vals {
			fx := FromNativeFloat64[uint64](11, 52, x)
			fy := FromNativeFloat64[uint64](11, 52, y)
			lr, _ := Mul(fx, fy).ToNativeFloat64()
			rl, _ := Mul(fy, fx).ToNativeFloat64()
			a.InDelta(lr, rl, 1e-6, "x=%v y=%v", x, y)
		}
	}
}

func TestMulSimple(t *testing.T) {
	a := assert.New(t)
	x := FromNativeFloat32[uint64](8, 23, 0.5)
	y := FromNativeFloat32[uint64](8, 23, 0.5)
	prod, err := Mul(x, y).ToNativeFloat32()
	require.NoError(t, err)
	a.Equal(float32(0.25), prod)
}

func TestDivSimple(t *testing.T) {
	a := assert.New(t)
	x := FromNativeFloat32[uint64](8, 23, 1.0)
	y := FromNativeFloat32[uint64](8, 23, 4.0)
	q, err := Div(x, y).ToNativeFloat32()
	require.NoError(t, err)
	a.Equal(float32(0.25), q)
}

func TestSubCancellation(t *testing.T) {
	a := assert.New(t)
	x := FromNativeFloat64[uint64](11, 52, 5.0)
	y := FromNativeFloat64[uint64](11, 52, 5.0)
	diff, err := Sub(x, y).ToNativeFloat64()
	require.NoError(t, err)
	a.Equal(0.0, diff)
}

func TestNaNPropagation(t *testing.T) {
	a := assert.New(t)
	nan := FromNativeFloat64[uint64](11, 52, math.NaN())
	x := FromNativeFloat64[uint64](11, 52, 1.0)
	a.True(Add(nan, x).IsNaN())
	a.True(Mul(nan, x).IsNaN())
}

func TestInfArithmetic(t *testing.T) {
	a := assert.New(t)
	inf := Inf[uint64](11, 52, false)
	one := FromNativeFloat64[uint64](11, 52, 1.0)
	a.True(Add(inf, one).IsInf())
	a.True(Sub(inf, inf).IsNaN())
}

func TestDivByZero(t *testing.T) {
	a := assert.New(t)
	one := FromNativeFloat64[uint64](11, 52, 1.0)
	zero := Zero[uint64](11, 52)
	a.True(Div(one, zero).IsInf())
	a.True(Div(zero, zero).IsNaN())
}

func TestClassification(t *testing.T) {
	a := assert.New(t)
	a.True(Zero[uint64](8, 23).IsZero())
	a.True(NaN[uint64](8, 23).IsNaN())
	a.True(Inf[uint64](8, 23, false).IsInf())
	a.True(FromNativeFloat32[uint64](8, 23, 1.0).IsNormal())
}

func TestJSONRoundTrip(t *testing.T) {
	a := assert.New(t)
	for _, f := range []float64{0.5, 1.0, -2.25, 100.0, -0.0001} {
		x := FromNativeFloat64[uint64](11, 52, f)
		data, err := x.MarshalJSON()
		require.NoError(t, err)

		y := New[uint64](11, 52)
		require.NoError(t, y.UnmarshalJSON(data))
		back, err := y.ToNativeFloat64()
		require.NoError(t, err)
		a.Equal(f, back, "json round trip for %v", f)
	}
}

func TestJSONRoundTripSpecialValues(t *testing.T) {
	a := assert.New(t)
	specials := []Float[uint64]{
		NaN[uint64](11, 52),
		Inf[uint64](11, 52, false),
		Inf[uint64](11, 52, true),
		Zero[uint64](11, 52),
		Zero[uint64](11, 52).Neg(),
	}
	for _, x := range specials {
		data, err := x.MarshalJSON()
		require.NoError(t, err)

		y := New[uint64](11, 52)
		require.NoError(t, y.UnmarshalJSON(data))
		a.Equal(x.ToDecimalString(), y.ToDecimalString())
	}
}
