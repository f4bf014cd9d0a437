package nist

import (
	"fmt"
	"math"

	"github.com/stsgo/nist80022/internal/specfunc"
	"github.com/stsgo/nist80022/internal/template"
)

// TestNonOverlappingTemplateMatching scans each of N blocks with a sliding
// window per template, advancing by m on a match and by 1 otherwise, and
// chi-square tests the per-block match counts against their expected mean
// and variance (spec §4.3.7). Emits one TestResult per template in the
// catalogue for the requested length.
func TestNonOverlappingTemplateMatching(seq *BitSequence, args NonOverlappingTemplateArgs) ([]TestResult, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}
	n := seq.Len()
	m, blocks := args.TemplateLen, args.BlockCount
	blockLen := n / blocks
	if blockLen <= m {
		return nil, invalidParameter("NonOverlappingTemplateMatching: block length M=%d too short for template length m=%d", blockLen, m)
	}

	templates, err := template.Get().Templates(m)
	if err != nil {
		return nil, invalidParameter("NonOverlappingTemplateMatching: %v", err)
	}

	mu := float64(blockLen-m+1) / math.Pow(2, float64(m))
	variance := float64(blockLen) * (math.Pow(2, -float64(m)) - float64(2*m-1)*math.Pow(2, -2*float64(m)))

	results := make([]TestResult, len(templates))
	for ti, tpl := range templates {
		var chi2 float64
		for b := 0; b < blocks; b++ {
			w := countTemplateMatches(seq, b*blockLen, blockLen, tpl.Value, m)
			diff := float64(w) - mu
			chi2 += diff * diff / variance
		}

		p, err := igamcOrFail(NonOverlappingTemplateMatching, float64(blocks)/2.0, chi2/2.0, specfunc.Igamc)
		if err != nil {
			return nil, err
		}
		results[ti] = TestResult{
			Test:    NonOverlappingTemplateMatching,
			PValue:  p,
			Comment: fmt.Sprintf("template %d/%d (m=%d, value=%#0*b)", ti, len(templates), m, m, tpl.Value),
		}
	}
	return results, nil
}

// countTemplateMatches scans a block of length blockLen starting at
// `start`, advancing by m bits after a match and by 1 bit otherwise — the
// defining property of "non-overlapping" matching.
func countTemplateMatches(seq *BitSequence, start, blockLen int, templateValue uint32, m int) int {
	var w int
	i := 0
	for i <= blockLen-m {
		if uint32(windowValue(seq, start+i, m)) == templateValue {
			w++
			i += m
		} else {
			i++
		}
	}
	return w
}

// windowValue reads the m-bit, most-significant-bit-first value starting
// at logical index `start` (no wraparound, unlike BitSequence.CyclicGroup).
func windowValue(seq *BitSequence, start, m int) uint64 {
	var v uint64
	for j := 0; j < m; j++ {
		v <<= 1
		if seq.Get(start + j) {
			v |= 1
		}
	}
	return v
}
