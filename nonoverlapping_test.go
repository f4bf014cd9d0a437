package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestNonOverlappingTemplateMatchingWorkedExample(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	bits := FromStringMax("10100100101110010110101001001011100101101010010010111001011010100100101110010110", 128)
	results, err := TestNonOverlappingTemplateMatching(bits, NonOverlappingTemplateArgs{TemplateLen: 2, BlockCount: 2})
	require.NoError(err)
	assert.NotEmpty(results)
	for _, r := range results {
		assert.Equal(NonOverlappingTemplateMatching, r.Test)
		assert.GreaterOrEqual(r.PValue, 0.0)
		assert.LessOrEqual(r.PValue, 1.0)
		assert.NotEmpty(r.Comment)
	}
}

func TestTestNonOverlappingTemplateMatchingRejectsInvalidArgs(t *testing.T) {
	seq := FromBits(make([]bool, 1000))

	_, err := TestNonOverlappingTemplateMatching(seq, NonOverlappingTemplateArgs{TemplateLen: 1, BlockCount: 8})
	assert.Error(t, err)

	_, err = TestNonOverlappingTemplateMatching(seq, NonOverlappingTemplateArgs{TemplateLen: 9, BlockCount: 0})
	assert.Error(t, err)
}

func TestCountTemplateMatchesAdvancesByMOnMatch(t *testing.T) {
	// "1111" with template "11" (m=2): a non-overlapping scan matches at
	// position 0, then advances by m=2 to position 2, matching again.
	seq := FromBits([]bool{true, true, true, true})
	w := countTemplateMatches(seq, 0, 4, 0b11, 2)
	assert.Equal(t, 2, w)
}

func TestWindowValueReadsMostSignificantBitFirst(t *testing.T) {
	seq := FromBits([]bool{true, false, true})
	assert.Equal(t, uint64(0b101), windowValue(seq, 0, 3))
	assert.Equal(t, uint64(0b10), windowValue(seq, 0, 2))
}
