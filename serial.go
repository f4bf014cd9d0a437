package nist

import (
	"math"

	"github.com/stsgo/nist80022/internal/specfunc"
)

// psiSquared computes NIST's psi^2_m statistic: the chi-square-flavoured
// sum of squared frequencies of every cyclic m-bit pattern, scaled by
// 2^m/n and centred by n. Lengths <= 0 are defined as contributing 0 (spec
// §4.3.11's del1/del2 differencing needs psi^2 at m, m-1, m-2).
func psiSquared(seq *BitSequence, m int) float64 {
	if m <= 0 {
		return 0
	}
	n := seq.Len()
	counts := make([]int, 1<<uint(m))
	for i := 0; i < n; i++ {
		counts[seq.CyclicGroup(i, m)]++
	}
	var sumSq float64
	for _, c := range counts {
		sumSq += float64(c) * float64(c)
	}
	return (math.Pow(2, float64(m))/float64(n))*sumSq - float64(n)
}

// TestSerial computes psi^2 at block lengths m, m-1, m-2 over overlapping
// cyclic windows, forms the first and second discrete differences del1,
// del2, and reports one p-value per difference (spec §4.3.11).
func TestSerial(seq *BitSequence, args SerialArgs) ([]TestResult, error) {
	m := args.BlockLength
	n := seq.Len()
	if m < 2 {
		return nil, invalidParameter("Serial: block length m=%d must be >=2", m)
	}
	if m >= int(math.Log2(float64(n)))-2 {
		return nil, invalidParameter("Serial: block length m=%d too large for n=%d (need m < floor(log2(n))-2)", m, n)
	}

	psiM := psiSquared(seq, m)
	psiM1 := psiSquared(seq, m-1)
	psiM2 := psiSquared(seq, m-2)

	del1 := psiM - psiM1
	del2 := psiM - 2*psiM1 + psiM2

	p1, err := igamcOrFail(Serial, math.Pow(2, float64(m-2)), del1/2.0, specfunc.Igamc)
	if err != nil {
		return nil, err
	}
	p2, err := igamcOrFail(Serial, math.Pow(2, float64(m-3)), del2/2.0, specfunc.Igamc)
	if err != nil {
		return nil, err
	}

	return []TestResult{
		{Test: Serial, PValue: p1, Comment: "del1 (m)"},
		{Test: Serial, PValue: p2, Comment: "del2 (m-1)"},
	}, nil
}
