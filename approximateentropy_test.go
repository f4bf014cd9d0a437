package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhiStatisticOfZeroLengthIsZero(t *testing.T) {
	seq := pseudorandomSequence(100, 13)
	assert.Equal(t, 0.0, phiStatistic(seq, 0))
}

func TestTestApproximateEntropyRejectsNegativeBlockLength(t *testing.T) {
	seq := pseudorandomSequence(1000, 14)
	_, err := TestApproximateEntropy(seq, ApproximateEntropyArgs{BlockLength: -1})
	assert.Error(t, err)
	assert.ErrorIs(t, err, errInvalidParameter)
}

func TestTestApproximateEntropyRejectsBlockLengthBelowTwo(t *testing.T) {
	seq := pseudorandomSequence(1000, 17)
	_, err := TestApproximateEntropy(seq, ApproximateEntropyArgs{BlockLength: 1})
	assert.Error(t, err)
	assert.ErrorIs(t, err, errInvalidParameter)

	_, err = TestApproximateEntropy(seq, ApproximateEntropyArgs{BlockLength: 0})
	assert.Error(t, err)
	assert.ErrorIs(t, err, errInvalidParameter)
}

func TestTestApproximateEntropyRejectsBlockLengthAtExactBoundary(t *testing.T) {
	// floor(log2(1024))-5 = 5: m must be strictly less than 5.
	seq := pseudorandomSequence(1024, 18)
	_, err := TestApproximateEntropy(seq, ApproximateEntropyArgs{BlockLength: 5})
	assert.Error(t, err)
	assert.ErrorIs(t, err, errInvalidParameter)

	_, err = TestApproximateEntropy(seq, ApproximateEntropyArgs{BlockLength: 4})
	assert.NoError(t, err)
}

func TestTestApproximateEntropyRejectsBlockLengthTooLargeForN(t *testing.T) {
	seq := pseudorandomSequence(100, 15)
	_, err := TestApproximateEntropy(seq, ApproximateEntropyArgs{BlockLength: 10})
	assert.Error(t, err)
}

func TestTestApproximateEntropyOnPseudorandomInput(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	seq := pseudorandomSequence(100000, 16)
	res, err := TestApproximateEntropy(seq, DefaultApproximateEntropyArgs())
	require.NoError(err)
	assert.GreaterOrEqual(res.PValue, 0.0)
	assert.LessOrEqual(res.PValue, 1.0)
}

func TestTestApproximateEntropyConstantSequenceIsExtreme(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	bits := make([]bool, 100000)
	seq := FromBits(bits)
	res, err := TestApproximateEntropy(seq, DefaultApproximateEntropyArgs())
	require.NoError(err)
	assert.Less(res.PValue, 0.001)
}
