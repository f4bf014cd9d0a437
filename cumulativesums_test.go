package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestCumulativeSumsRejectsDegenerateSequence(t *testing.T) {
	seq := FromBits(make([]bool, 1))
	_, err := TestCumulativeSums(seq)
	assert.Error(t, err)
	assert.ErrorIs(t, err, errInvalidParameter)
}

func TestTestCumulativeSumsRejectsBelowMinimumLength(t *testing.T) {
	seq := pseudorandomSequence(99, 20)
	_, err := TestCumulativeSums(seq)
	assert.Error(t, err)
	assert.ErrorIs(t, err, errInvalidParameter)

	seq = pseudorandomSequence(100, 21)
	_, err = TestCumulativeSums(seq)
	assert.NoError(t, err)
}

func TestTestCumulativeSumsEmitsForwardAndBackward(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	seq := pseudorandomSequence(1000, 17)
	results, err := TestCumulativeSums(seq)
	require.NoError(err)
	require.Len(results, 2)
	assert.Equal("forward", results[0].Comment)
	assert.Equal("backward", results[1].Comment)
	for _, r := range results {
		assert.GreaterOrEqual(r.PValue, 0.0)
		assert.LessOrEqual(r.PValue, 1.0)
	}
}

func TestTestCumulativeSumsAllOnesIsExtreme(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	bits := make([]bool, 500)
	for i := range bits {
		bits[i] = true
	}
	seq := FromBits(bits)
	results, err := TestCumulativeSums(seq)
	require.NoError(err)
	for _, r := range results {
		assert.Less(r.PValue, 0.001)
	}
}

func TestCumulativeSumsExcursionOfAlternatingSequenceIsOne(t *testing.T) {
	// 0101...: partial sums oscillate between -1 and 0, so |S_k| never
	// exceeds 1 in either direction.
	bits := make([]bool, 100)
	for i := range bits {
		bits[i] = i%2 == 1
	}
	seq := FromBits(bits)
	assert.Equal(t, 1, cumulativeSumsExcursion(seq, false))
	assert.Equal(t, 1, cumulativeSumsExcursion(seq, true))
}
