package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsInt(t *testing.T) {
	a := assert.New(t)
	a.Equal(5, AbsInt(5))
	a.Equal(5, AbsInt(-5))
	a.Equal(0, AbsInt(0))
}

func TestAbsInt64(t *testing.T) {
	a := assert.New(t)
	a.Equal(int64(5), AbsInt64(5))
	a.Equal(int64(5), AbsInt64(-5))
	a.Equal(int64(0), AbsInt64(0))
}

func TestLowMask64(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(0), LowMask64(0))
	a.Equal(uint64(0b111), LowMask64(3))
	a.Equal(^uint64(0), LowMask64(64))
	a.Equal(^uint64(0), LowMask64(100))
	a.Equal(uint64(0), LowMask64(-1))
}

func TestBitLen64(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, BitLen64(0))
	a.Equal(1, BitLen64(1))
	a.Equal(8, BitLen64(0xff))
	a.Equal(64, BitLen64(^uint64(0)))
}
