package nist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pseudorandomSequence(n int, seed int64) *BitSequence {
	rng := rand.New(rand.NewSource(seed))
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = rng.Intn(2) == 1
	}
	return FromBits(bits)
}

func TestTestOverlappingTemplateMatchingRejectsShortSequence(t *testing.T) {
	seq := FromBits(make([]bool, 999999))
	_, err := TestOverlappingTemplateMatching(seq, DefaultOverlappingTemplateArgs())
	assert.Error(t, err)
	assert.ErrorIs(t, err, errInvalidParameter)
}

func TestTestOverlappingTemplateMatchingCorrectedPath(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	seq := pseudorandomSequence(1000000, 1)
	res, err := TestOverlappingTemplateMatching(seq, DefaultOverlappingTemplateArgs())
	require.NoError(err)
	assert.GreaterOrEqual(res.PValue, 0.0)
	assert.LessOrEqual(res.PValue, 1.0)
}

func TestTestOverlappingTemplateMatchingHistoricalPath(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	seq := pseudorandomSequence(1000000, 2)
	args := DefaultOverlappingTemplateArgs()
	args.NISTBehaviour = true
	res, err := TestOverlappingTemplateMatching(seq, args)
	require.NoError(err)
	assert.GreaterOrEqual(res.PValue, 0.0)
	assert.LessOrEqual(res.PValue, 1.0)
}

func TestCorrectedOverlappingPiSumsToOne(t *testing.T) {
	assert := assert.New(t)
	pi := correctedOverlappingPi(9, 1032, 6)
	var sum float64
	for _, p := range pi {
		sum += p
	}
	assert.InDelta(1.0, sum, 1e-9)
}

func TestAllOnes(t *testing.T) {
	assert.Equal(t, uint64(0b111), allOnes(3))
	assert.Equal(t, uint64(0b1), allOnes(1))
}
