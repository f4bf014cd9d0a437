package nist

import (
	"math"

	"github.com/stsgo/nist80022/internal/specfunc"
)

// TestFrequency is the monobit test (spec §4.3.1): p = erfc(|S|/sqrt(2n))
// where S = sum(2*bi - 1).
func TestFrequency(seq *BitSequence) (TestResult, error) {
	n := seq.Len()
	if n < 1 {
		return TestResult{}, invalidParameter("Frequency: n=%d, need n>=1", n)
	}

	var sum int64
	for _, b := range seq.SignedBits() {
		sum += int64(b)
	}

	arg := math.Abs(float64(sum)) / math.Sqrt(2*float64(n))
	p, err := finalizeP(Frequency, specfunc.Erfc(arg))
	if err != nil {
		return TestResult{}, err
	}
	return TestResult{Test: Frequency, PValue: p}, nil
}
