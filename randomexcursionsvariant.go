package nist

import (
	"fmt"
	"math"

	"github.com/stsgo/nist80022/internal/specfunc"
)

// randomExcursionsVariantStates are the eighteen non-zero states x in
// [-9,9] the variant test tracks (spec §4.3.15).
var randomExcursionsVariantStates = []int{-9, -8, -7, -6, -5, -4, -3, -2, -1, 1, 2, 3, 4, 5, 6, 7, 8, 9}

// TestRandomExcursionsVariant counts, across the entire random walk (not
// per-cycle), how many times each of eighteen states is visited, and
// compares that total against its expectation under J cycles via a
// two-sided normal approximation (spec §4.3.15).
func TestRandomExcursionsVariant(seq *BitSequence) ([]TestResult, error) {
	n := seq.Len()
	if n < 1000000 {
		return nil, invalidParameter("RandomExcursionsVariant: n=%d, need n>=1000000", n)
	}

	cycles := randomExcursionsCycles(seq)
	j := len(cycles)
	// A single cycle holding all n partial sums means the walk never
	// returned to zero; only the trailing pad closed it.
	if j < 1 || len(cycles[0]) == n {
		return nil, invalidParameter("RandomExcursionsVariant: sequence contains no complete cycles (J=%d)", j)
	}

	visits := make(map[int]int, len(randomExcursionsVariantStates))
	for _, cycle := range cycles {
		for _, v := range cycle {
			visits[v]++
		}
	}

	jF := float64(j)
	results := make([]TestResult, len(randomExcursionsVariantStates))
	for si, x := range randomExcursionsVariantStates {
		xi := float64(visits[x])
		denom := math.Sqrt(2 * jF * (4*math.Abs(float64(x)) - 2))
		pv := specfunc.Erfc(math.Abs(xi-jF) / denom)

		p, err := finalizeP(RandomExcursionsVariant, pv)
		if err != nil {
			return nil, err
		}
		results[si] = TestResult{Test: RandomExcursionsVariant, PValue: p, Comment: fmt.Sprintf("x=%+d", x)}
	}
	return results, nil
}
