package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestRunsWorkedExampleSmallN(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	seq, err := FromStringStrict("1001101011")
	require.NoError(err)

	res, err := TestRuns(seq)
	require.NoError(err)
	assert.InDelta(0.147232, res.PValue, 1e-5)
}

func TestTestRunsRejectsDegenerateSequence(t *testing.T) {
	seq := FromBits(make([]bool, 1))
	_, err := TestRuns(seq)
	assert.Error(t, err)
	assert.ErrorIs(t, err, errInvalidParameter)
}

func TestTestRunsRejectsSkewedProportion(t *testing.T) {
	bits := make([]bool, 1000)
	for i := range bits {
		bits[i] = i < 950 // far more ones than zeros, fails the pi precondition
	}
	seq := FromBits(bits)

	res, err := TestRuns(seq)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.PValue)
	assert.NotEmpty(t, res.Comment)
}

func TestTestRunsAlternatingSequenceHasManyRuns(t *testing.T) {
	bits := make([]bool, 1000)
	for i := range bits {
		bits[i] = i%2 == 0
	}
	seq := FromBits(bits)
	res, err := TestRuns(seq)
	require.NoError(t, err)
	assert.Less(t, res.PValue, 0.01)
}
