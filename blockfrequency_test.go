package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestFrequencyWithinABlockWorkedExample(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	seq, err := FromStringStrict("0110011010")
	require.NoError(err)

	res, err := TestFrequencyWithinABlock(seq, FrequencyBlockArgs{BlockLength: 3})
	require.NoError(err)
	assert.InDelta(0.801252, res.PValue, 1e-5)
}

func TestTestFrequencyWithinABlockRejectsNonPositiveBlockLength(t *testing.T) {
	seq := FromBits(make([]bool, 1000))
	_, err := TestFrequencyWithinABlock(seq, FrequencyBlockArgs{BlockLength: 0})
	assert.Error(t, err)
	assert.ErrorIs(t, err, errInvalidParameter)
}

func TestTestFrequencyWithinABlockRejectsTooFewBits(t *testing.T) {
	seq := FromBits(make([]bool, 5))
	_, err := TestFrequencyWithinABlock(seq, FrequencyBlockArgs{BlockLength: 20})
	assert.Error(t, err)
}

func TestTestFrequencyWithinABlockDefaultSucceedsOnLargeInput(t *testing.T) {
	bits := make([]bool, 20000)
	for i := range bits {
		bits[i] = i%2 == 0
	}
	seq := FromBits(bits)
	res, err := TestFrequencyWithinABlock(seq, DefaultFrequencyBlockArgs())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.PValue, 0.0)
	assert.LessOrEqual(t, res.PValue, 1.0)
}
