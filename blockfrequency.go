package nist

import (
	"github.com/stsgo/nist80022/internal/specfunc"
)

// TestFrequencyWithinABlock partitions the sequence into N=floor(n/M)
// blocks and tests the per-block proportions' chi-square against the
// expected 0.5 (spec §4.3.2). NIST recommends M>=20, M>0.01*n, N<100 for a
// statistically meaningful result, but those are sample-size advice, not
// hard preconditions; the worked example in spec §8 deliberately runs with
// M=3 on a 10-bit input, so only the formula's actual minimum (at least
// one complete block) is enforced here.
func TestFrequencyWithinABlock(seq *BitSequence, args FrequencyBlockArgs) (TestResult, error) {
	n := seq.Len()
	m := args.BlockLength
	if m < 1 {
		return TestResult{}, invalidParameter("FrequencyWithinABlock: block length M=%d must be positive", m)
	}
	blocks := n / m
	if blocks < 1 {
		return TestResult{}, invalidParameter("FrequencyWithinABlock: n=%d too short for block length M=%d", n, m)
	}

	var chi2 float64
	for j := 0; j < blocks; j++ {
		var ones int
		for i := 0; i < m; i++ {
			if seq.Get(j*m + i) {
				ones++
			}
		}
		pi := float64(ones) / float64(m)
		diff := pi - 0.5
		chi2 += diff * diff
	}
	chi2 *= 4 * float64(m)

	p, err := igamcOrFail(FrequencyWithinABlock, float64(blocks)/2.0, chi2/2.0, specfunc.Igamc)
	if err != nil {
		return TestResult{}, err
	}
	return TestResult{Test: FrequencyWithinABlock, PValue: p}, nil
}
