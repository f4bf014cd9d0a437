package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytesRoundTrip(t *testing.T) {
	assert := assert.New(t)

	buf := []byte{0b10110010, 0b00000001}
	s := FromBytes(buf)
	assert.Equal(16, s.Len())

	want := []bool{true, false, true, true, false, false, true, false, false, false, false, false, false, false, false, true}
	for i, w := range want {
		assert.Equalf(w, s.Get(i), "bit %d", i)
	}
}

func TestFromBitsRoundTrip(t *testing.T) {
	assert := assert.New(t)
	bits := []bool{true, true, false, true, false}
	s := FromBits(bits)
	assert.Equal(5, s.Len())
	for i, b := range bits {
		assert.Equal(b, s.Get(i))
	}
}

func TestStrictAndLossyAgreeOnCleanInput(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	in := "1011010101"
	strict, err := FromStringStrict(in)
	require.NoError(err)
	lossy := FromStringLossy(in)

	assert.Equal(strict.Len(), lossy.Len())
	for i := 0; i < strict.Len(); i++ {
		assert.Equal(strict.Get(i), lossy.Get(i))
	}
}

func TestStrictRejectsInvalidByte(t *testing.T) {
	_, err := FromStringStrict("101x010")
	assert.Error(t, err)
	assert.ErrorIs(t, err, errInvalidParameter)
}

func TestLossySkipsInvalidBytes(t *testing.T) {
	assert := assert.New(t)
	s := FromStringLossy("1 0 1 x 1")
	assert.Equal(4, s.Len())
	assert.Equal([]bool{true, false, true, true}, s.Bits())
}

func TestFromStringMaxStopsEarly(t *testing.T) {
	assert := assert.New(t)
	s := FromStringMax("1111000011110000", 6)
	assert.Equal(6, s.Len())
	assert.Equal([]bool{true, true, true, true, false, false}, s.Bits())
}

func TestCropOnlyShrinks(t *testing.T) {
	assert := assert.New(t)
	s := FromBytes([]byte{0xFF, 0xFF})
	s.Crop(32) // grow request, ignored
	assert.Equal(16, s.Len())
	s.Crop(5)
	assert.Equal(5, s.Len())
	s.Crop(20) // grow request post-shrink, still ignored
	assert.Equal(5, s.Len())
}

func TestCloneIsIndependent(t *testing.T) {
	assert := assert.New(t)
	s := FromBits([]bool{true, false, true})
	c := s.Clone()
	c.Crop(1)
	assert.Equal(3, s.Len())
	assert.Equal(1, c.Len())
}

func TestGroupsMostSignificantBitFirst(t *testing.T) {
	assert := assert.New(t)
	s, err := FromStringStrict("101101")
	require.NoError(t, err)
	var got []uint64
	s.Groups(3, func(_ int, v uint64) { got = append(got, v) })
	assert.Equal([]uint64{0b101, 0b101}, got)
}

func TestCyclicGroupWrapsAround(t *testing.T) {
	assert := assert.New(t)
	s, err := FromStringStrict("110")
	require.NoError(t, err)
	// starting at index 2, width 3, wraps to bits [2,0,1] = 0,1,1 = 0b011
	got := s.CyclicGroup(2, 3)
	assert.Equal(uint64(0b011), got)
}
