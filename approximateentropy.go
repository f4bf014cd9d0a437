package nist

import (
	"math"

	"github.com/stsgo/nist80022/internal/specfunc"
)

// phiStatistic computes NIST's phi(m): the sum of freq*ln(freq) (the
// negated Shannon entropy, natural log) over the empirical distribution of
// cyclic m-bit patterns, matching
// psiSquared's cyclic windowing convention (spec §4.3.12).
func phiStatistic(seq *BitSequence, m int) float64 {
	if m == 0 {
		return 0
	}
	n := seq.Len()
	counts := make([]int, 1<<uint(m))
	for i := 0; i < n; i++ {
		counts[seq.CyclicGroup(i, m)]++
	}
	var sum float64
	nF := float64(n)
	for _, c := range counts {
		if c == 0 {
			continue
		}
		freq := float64(c) / nF
		sum += freq * math.Log(freq)
	}
	return sum
}

// TestApproximateEntropy compares the regularity of overlapping m-bit and
// (m+1)-bit patterns via ApEn(m) = phi(m) - phi(m+1), reporting a
// chi-square p-value with 2^m degrees of freedom (spec §4.3.12).
func TestApproximateEntropy(seq *BitSequence, args ApproximateEntropyArgs) (TestResult, error) {
	m := args.BlockLength
	n := seq.Len()
	if m < 2 {
		return TestResult{}, invalidParameter("ApproximateEntropy: block length m=%d must be >=2", m)
	}
	if m >= int(math.Log2(float64(n)))-5 {
		return TestResult{}, invalidParameter("ApproximateEntropy: block length m=%d too large for n=%d (need m < floor(log2(n))-5)", m, n)
	}

	apEn := phiStatistic(seq, m) - phiStatistic(seq, m+1)
	chi2 := 2.0 * float64(n) * (math.Ln2 - apEn)

	p, err := igamcOrFail(ApproximateEntropy, math.Pow(2, float64(m-1)), chi2/2.0, specfunc.Igamc)
	if err != nil {
		return TestResult{}, err
	}
	return TestResult{Test: ApproximateEntropy, PValue: p}, nil
}
