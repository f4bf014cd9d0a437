package nist

import (
	"fmt"
	"math"

	"github.com/stsgo/nist80022/internal/specfunc"
)

// randomExcursionStates are the eight non-zero states NIST's Random
// Excursions test tracks (spec §4.3.14).
var randomExcursionStates = []int{-4, -3, -2, -1, 1, 2, 3, 4}

// randomExcursionPi holds the theoretical probability that a cycle visits
// state x exactly v times, v=0..4 and v>=5 (bucket index 5), indexed by
// |x|-1. These are NIST's reference constants for the closed-form pi(x,k)
// formula.
var randomExcursionPi = [4][6]float64{
	{0.5000000000, 0.25000000000, 0.12500000000, 0.06250000000, 0.03125000000, 0.0312500000},
	{0.7500000000, 0.06250000000, 0.04687500000, 0.03515625000, 0.02636718750, 0.0791015625},
	{0.8333333333, 0.02777777778, 0.02314814815, 0.01929012346, 0.01607510288, 0.0803755143},
	{0.8750000000, 0.01562500000, 0.01367187500, 0.01196289063, 0.01046752930, 0.0732727051},
}

// randomExcursionsCycles builds the padded random walk (a leading 0 before
// the ±1 partial sums, and a trailing 0 when the walk does not already end
// at zero) and splits it into cycles, a cycle being the open interval
// between two consecutive zero crossings (spec §4.3.14).
func randomExcursionsCycles(seq *BitSequence) [][]int {
	n := seq.Len()
	walk := make([]int, n+1)
	s := 0
	for i := 0; i < n; i++ {
		if seq.Get(i) {
			s++
		} else {
			s--
		}
		walk[i+1] = s
	}
	if s != 0 {
		walk = append(walk, 0)
	}

	var cycles [][]int
	start := 0
	for i := 1; i < len(walk); i++ {
		if walk[i] == 0 {
			cycles = append(cycles, walk[start+1:i])
			start = i
		}
	}
	return cycles
}

// TestRandomExcursions buckets, for each of the eight non-zero states, how
// many of the walk's cycles visit that state exactly 0,1,2,3,4, or 5-or-more
// times, and chi-square tests the bucket counts against their theoretical
// probabilities (spec §4.3.14). One TestResult is emitted per state.
func TestRandomExcursions(seq *BitSequence) ([]TestResult, error) {
	cycles := randomExcursionsCycles(seq)
	j := len(cycles)

	minCycles := 500.0
	if v := 0.005 * math.Sqrt(float64(seq.Len())); v > minCycles {
		minCycles = v
	}
	if float64(j) < minCycles {
		results := make([]TestResult, len(randomExcursionStates))
		for si, x := range randomExcursionStates {
			results[si] = TestResult{
				Test:    RandomExcursions,
				PValue:  0,
				Comment: fmt.Sprintf("x=%+d, skipped: only %d cycles, need >=%.0f", x, j, minCycles),
			}
		}
		return results, nil
	}

	results := make([]TestResult, len(randomExcursionStates))
	for si, x := range randomExcursionStates {
		nu := make([]int, 6)
		for _, cycle := range cycles {
			count := 0
			for _, v := range cycle {
				if v == x {
					count++
				}
			}
			if count > 5 {
				count = 5
			}
			nu[count]++
		}

		piRow := randomExcursionPi[absInt(x)-1]
		var chi2 float64
		jF := float64(j)
		for v := 0; v < 6; v++ {
			expected := jF * piRow[v]
			diff := float64(nu[v]) - expected
			chi2 += diff * diff / expected
		}

		p, err := igamcOrFail(RandomExcursions, 2.5, chi2/2.0, specfunc.Igamc)
		if err != nil {
			return nil, err
		}
		results[si] = TestResult{Test: RandomExcursions, PValue: p, Comment: fmt.Sprintf("x=%+d", x)}
	}
	return results, nil
}
