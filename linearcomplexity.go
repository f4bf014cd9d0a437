package nist

import (
	"github.com/stsgo/nist80022/internal/specfunc"
)

// linearComplexityPi are the theoretical probabilities of the seven
// ticket buckets that the Berlekamp-Massey linear complexity of a truly
// random block falls into, relative to its expected complexity (spec
// §4.3.10).
var linearComplexityPi = []float64{0.01047, 0.03125, 0.12500, 0.50000, 0.25000, 0.06250, 0.020833}

// berlekampMassey computes the linear complexity (minimal LFSR length) of
// the given bit sequence over GF(2).
func berlekampMassey(bits []bool) int {
	n := len(bits)
	c := make([]bool, n)
	b := make([]bool, n)
	c[0] = true
	b[0] = true

	l := 0
	m := -1
	t := make([]bool, n)

	for i := 0; i < n; i++ {
		discrepancy := bits[i]
		for j := 1; j <= l; j++ {
			discrepancy = discrepancy != (c[j] && bits[i-j])
		}
		if discrepancy {
			copy(t, c)
			shift := i - m
			for j := 0; j+shift < n; j++ {
				if b[j] {
					c[j+shift] = !c[j+shift]
				}
			}
			if l <= i/2 {
				l = i + 1 - l
				m = i
				copy(b, t)
			}
		}
	}
	return l
}

// linearComplexityMean is NIST's closed-form expected complexity of an
// M-bit block of truly random bits: M/2 + (9 + (-1)^(M+1)) / 36.
func linearComplexityMean(m int) float64 {
	parity := 1.0
	if m%2 == 0 {
		parity = -1.0
	}
	return float64(m)/2.0 + (9.0+parity)/36.0
}

// ticketBucket maps a signed ticket statistic T to one of the seven
// NIST-defined bucket indices over {-2.5,...,2.5} (spec §4.3.10).
func ticketBucket(t float64) int {
	switch {
	case t <= -2.5:
		return 0
	case t <= -1.5:
		return 1
	case t <= -0.5:
		return 2
	case t <= 0.5:
		return 3
	case t <= 1.5:
		return 4
	case t <= 2.5:
		return 5
	default:
		return 6
	}
}

// TestLinearComplexity runs Berlekamp-Massey over each of N disjoint
// blocks of length M, buckets each block's signed deviation from the
// theoretical expected complexity into seven categories, and chi-square
// tests the bucket counts (spec §4.3.10). M is resolved from
// LinearComplexityArgs, including the "auto" policy (spec §9).
func TestLinearComplexity(seq *BitSequence, args LinearComplexityArgs) (TestResult, error) {
	n := seq.Len()
	if n < 1000000 {
		return TestResult{}, invalidParameter("LinearComplexity: n=%d, need n>=1000000", n)
	}
	m, err := args.resolve(n)
	if err != nil {
		return TestResult{}, err
	}
	blocks := n / m
	mean := linearComplexityMean(m)

	parity := -1.0
	if m%2 == 0 {
		parity = 1.0
	}

	counts := make([]int, 7)
	bits := make([]bool, m)
	for b := 0; b < blocks; b++ {
		for j := 0; j < m; j++ {
			bits[j] = seq.Get(b*m + j)
		}
		lc := berlekampMassey(bits)
		t := parity*(float64(lc)-mean) + 2.0/9.0
		counts[ticketBucket(t)]++
	}

	var chi2 float64
	nF := float64(blocks)
	for i, pi := range linearComplexityPi {
		expected := nF * pi
		diff := float64(counts[i]) - expected
		chi2 += diff * diff / expected
	}

	p, err := igamcOrFail(LinearComplexity, 3.0, chi2/2.0, specfunc.Igamc)
	if err != nil {
		return TestResult{}, err
	}
	return TestResult{Test: LinearComplexity, PValue: p}, nil
}
