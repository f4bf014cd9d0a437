package nist

import (
	"github.com/stsgo/nist80022/internal/specfunc"
)

// longestRunProfile bundles the NIST-tabulated parameters for a given input
// length: block size M, the category boundaries (lower bound of each
// bucket, with the last bucket open-ended), and the expected probabilities
// pi for each of K+1 categories (spec §4.3.4).
type longestRunProfile struct {
	blockLength int
	bounds      []int // len K+1; bounds[i] is the lower edge of category i
	pi          []float64
}

func longestRunProfileFor(n int) (longestRunProfile, error) {
	switch {
	case n >= 750000:
		return longestRunProfile{
			blockLength: 10000,
			bounds:      []int{0, 11, 12, 13, 14, 15, 16},
			pi:          []float64{0.0882, 0.2092, 0.2483, 0.1933, 0.1208, 0.0675, 0.0727},
		}, nil
	case n >= 6272:
		return longestRunProfile{
			blockLength: 128,
			bounds:      []int{0, 5, 6, 7, 8, 9},
			pi:          []float64{0.1174, 0.2430, 0.2493, 0.1752, 0.1027, 0.1124},
		}, nil
	case n >= 128:
		return longestRunProfile{
			blockLength: 8,
			bounds:      []int{0, 2, 3, 4},
			pi:          []float64{0.2148, 0.3672, 0.2305, 0.1875},
		}, nil
	default:
		return longestRunProfile{}, invalidParameter("LongestRunOfOnes: n=%d, need n>=128", n)
	}
}

// categoryIndex buckets a block's longest run length v into one of the
// profile's K+1 categories: below bounds[1] -> 0, at/above the last bound
// -> K, otherwise the matching interior bucket.
func (p longestRunProfile) categoryIndex(v int) int {
	last := len(p.bounds) - 1
	if v < p.bounds[1] {
		return 0
	}
	for i := 1; i < last; i++ {
		if v >= p.bounds[i] && v < p.bounds[i+1] {
			return i
		}
	}
	return last
}

// TestLongestRunOfOnes partitions the sequence into N=n/M blocks, finds the
// longest run of ones within each block, buckets those lengths into K+1
// categories, and chi-square tests the bucket counts against NIST's
// tabulated probabilities (spec §4.3.4).
func TestLongestRunOfOnes(seq *BitSequence) (TestResult, error) {
	n := seq.Len()
	profile, err := longestRunProfileFor(n)
	if err != nil {
		return TestResult{}, err
	}
	m := profile.blockLength
	blocks := n / m
	k := len(profile.pi) - 1

	counts := make([]int, k+1)
	for j := 0; j < blocks; j++ {
		longest, run := 0, 0
		for i := 0; i < m; i++ {
			if seq.Get(j*m + i) {
				run++
				if run > longest {
					longest = run
				}
			} else {
				run = 0
			}
		}
		counts[profile.categoryIndex(longest)]++
	}

	var chi2 float64
	for i, pi := range profile.pi {
		expected := float64(blocks) * pi
		diff := float64(counts[i]) - expected
		chi2 += diff * diff / expected
	}

	p, err := igamcOrFail(LongestRunOfOnes, float64(k)/2.0, chi2/2.0, specfunc.Igamc)
	if err != nil {
		return TestResult{}, err
	}
	return TestResult{Test: LongestRunOfOnes, PValue: p}, nil
}
