package capi

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nist "github.com/stsgo/nist80022"
	"github.com/stsgo/nist80022/runner"
)

func pseudorandomBits(n int, seed int64) []bool {
	rng := rand.New(rand.NewSource(seed))
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = rng.Intn(2) == 1
	}
	return bits
}

func TestBitSequenceLifecycle(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	before := liveCount()
	h := NewBitSequenceFromBits(pseudorandomBits(100, 1))
	assert.Equal(before+1, liveCount())

	n, err := BitSequenceLen(h)
	require.NoError(err)
	assert.Equal(100, n)

	require.NoError(DestroyBitSequence(h))
	assert.Equal(before, liveCount())

	_, err = BitSequenceLen(h)
	assert.Error(err)
}

func TestNewBitSequenceFromStringStrictRejectsInvalidByte(t *testing.T) {
	_, err := NewBitSequenceFromString("102", true)
	assert.Error(t, err)
}

func TestNewBitSequenceFromStringLossySkipsInvalidBytes(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	h, err := NewBitSequenceFromString("1x0y1", false)
	require.NoError(err)
	n, err := BitSequenceLen(h)
	require.NoError(err)
	assert.Equal(3, n)
}

func TestDestroyBitSequenceTwiceReportsInvalidParameter(t *testing.T) {
	h := NewBitSequenceFromBits([]bool{true})
	require.NoError(t, DestroyBitSequence(h))
	assert.Error(t, DestroyBitSequence(h))
}

func TestRunnerLifecycleThroughCapi(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	seqH := NewBitSequenceFromBits(pseudorandomBits(50000, 2))
	runnerH := NewRunner()

	status, err := RunnerRunSelected(runnerH, seqH, []nist.TestIdentity{nist.Frequency})
	require.NoError(err)
	assert.Equal(runner.StatusOK, status)

	results, err := RunnerGetResult(runnerH, nist.Frequency)
	require.NoError(err)
	require.Len(results, 1)

	require.NoError(DestroyRunner(runnerH))
	require.NoError(DestroyBitSequence(seqH))
}

func TestLastErrorTwoPhaseRetrieval(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	ClearLastError()
	_, err := NewBitSequenceFromString("12", true)
	require.Error(err)

	n := LastErrorMessageLength()
	require.Greater(n, 0)

	buf := make([]byte, n)
	written, total := LastErrorMessage(buf)
	assert.Equal(n, total)
	assert.Equal(n, written)
	assert.NotEmpty(string(buf[:written]))
}

func TestLastErrorMessageTruncatesIntoUndersizedBuffer(t *testing.T) {
	assert := assert.New(t)

	ClearLastError()
	_, _ = NewBitSequenceFromString("12", true)

	buf := make([]byte, 4)
	written, total := LastErrorMessage(buf)
	assert.Equal(4, written)
	assert.Greater(total, 4)
}

func TestHandleLookupRejectsWrongKind(t *testing.T) {
	runnerH := NewRunner()
	defer DestroyRunner(runnerH)

	_, err := BitSequenceLen(runnerH)
	assert.Error(t, err)
}
