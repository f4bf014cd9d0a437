package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestMaurersUniversalStatisticalRejectsBelowHardFloor(t *testing.T) {
	seq := FromBits(make([]bool, 2019))
	_, err := TestMaurersUniversalStatistical(seq)
	assert.Error(t, err)
	assert.ErrorIs(t, err, errInvalidParameter)
}

func TestTestMaurersUniversalStatisticalRejectsBelowSmallestTableEntry(t *testing.T) {
	seq := FromBits(make([]bool, 300000))
	_, err := TestMaurersUniversalStatistical(seq)
	assert.Error(t, err)
}

func TestTestMaurersUniversalStatisticalOnPseudorandomInput(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	seq := pseudorandomSequence(400000, 3)
	res, err := TestMaurersUniversalStatistical(seq)
	require.NoError(err)
	assert.GreaterOrEqual(res.PValue, 0.0)
	assert.LessOrEqual(res.PValue, 1.0)
}

func TestSelectUniversalProfilePicksLargestFeasibleL(t *testing.T) {
	assert := assert.New(t)

	p, err := selectUniversalProfile(387840)
	require.NoError(t, err)
	assert.Equal(6, p.l)

	p, err = selectUniversalProfile(904960)
	require.NoError(t, err)
	assert.Equal(7, p.l)
}
