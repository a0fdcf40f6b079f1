package posit

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"

	"github.com/aarith-go/aarith/word"
)

func TestOneIsOneZeroBits(t *testing.T) {
	a := assert.New(t)
	// S5: P<8,0> decoded from bits 01000000 is the exact value 1.0.
	bits := word.FromUint64[uint64](8, 0b01000000)
	p := FromBits[uint64](8, 0, bits)
	one := One[uint64](8, 0)
	a.True(p.Eq(one))
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	a := assert.New(t)
	for v := uint64(1); v < 256; v++ {
		bits := word.FromUint64[uint64](8, v)
		p := FromBits[uint64](8, 2, bits)
		if p.IsNaR() {
			continue
		}
		pm := Decode(p)
		back := Encode[uint64](pm, 8, 2)
		if !p.Eq(back) {
			t.Logf("mid-round positparams: %s", spew.Sdump(pm))
		}
		a.True(p.Eq(back), "round trip for bits %08b", v)
	}
}

func TestRoundingIsIdempotent(t *testing.T) {
	a := assert.New(t)
	for v := uint64(1); v < 256; v++ {
		bits := word.FromUint64[uint64](8, v)
		p := FromBits[uint64](8, 2, bits)
		if p.IsNaR() {
			continue
		}
		pm := Decode(p)
		once := Encode[uint64](pm, 8, 2)
		twice := Encode[uint64](Decode(once), 8, 2)
		a.True(once.Eq(twice), "rounding not idempotent for bits %08b", v)
	}
}

func TestZeroAndNaREncode(t *testing.T) {
	a := assert.New(t)
	a.True(Encode[uint64](ParamsZero(), 8, 2).IsZero())
	a.True(Encode[uint64](ParamsNaR(), 8, 2).IsNaR())
}

func TestAddIdentityAndAbsorption(t *testing.T) {
	a := assert.New(t)
	one := One[uint64](8, 0)
	zero := Zero[uint64](8, 0)
	nar := NaR[uint64](8, 0)

	a.True(one.Add(zero).Eq(one))
	a.True(zero.Add(one).Eq(one))
	a.True(one.Add(nar).Eq(nar))
	a.True(nar.Add(one).Eq(nar))
}

func TestAddOneOnePositive(t *testing.T) {
	a := assert.New(t)
	one := One[uint64](8, 0)
	sum := one.Add(one)
	pm := Decode(sum)
	a.Equal(1, pm.Scale) // 1+1 = 2 = 2^1
}

func TestAddCancellationYieldsZero(t *testing.T) {
	a := assert.New(t)
	one := One[uint64](8, 0)
	negOne := one.Neg()
	sum := one.Add(negOne)
	a.True(sum.IsZero())
}

func TestNegRoundTrip(t *testing.T) {
	a := assert.New(t)
	one := One[uint64](8, 2)
	a.True(one.Neg().Neg().Eq(one))
	a.True(one.Neg().IsNegative())
}

func TestMaxPosIncrementClampsInsteadOfWrapping(t *testing.T) {
	a := assert.New(t)
	max := MaxPos[uint64](8, 0)
	a.True(max.incrementedReal().Eq(max))
}
