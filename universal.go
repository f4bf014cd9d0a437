package nist

import (
	"math"

	"github.com/stsgo/nist80022/internal/specfunc"
)

// universalProfile bundles L, the initialization-table size Q, and the
// NIST-recommended minimum sequence length for that L (spec §4.3.9).
type universalProfile struct {
	l       int
	q       int
	minSize int
}

// universalTable is indexed by L-6 for L in [6,16], the range NIST
// recommends; each entry's minSize is the sequence length at which that L
// becomes the appropriate (largest feasible) choice.
var universalTable = []universalProfile{
	{l: 6, q: 640, minSize: 387840},
	{l: 7, q: 1280, minSize: 904960},
	{l: 8, q: 2560, minSize: 2068480},
	{l: 9, q: 5120, minSize: 4654080},
	{l: 10, q: 10240, minSize: 10342400},
	{l: 11, q: 20480, minSize: 22753280},
	{l: 12, q: 40960, minSize: 49643520},
	{l: 13, q: 81920, minSize: 107560960},
	{l: 14, q: 163840, minSize: 231669760},
	{l: 15, q: 327680, minSize: 496435200},
	{l: 16, q: 655360, minSize: 1059061760},
}

// universalExpectedValue and universalVariance are NIST's tabulated
// theoretical mean and variance of the Maurer statistic for each L,
// indexed by L (so index 0 is unused/zero).
var universalExpectedValue = [17]float64{
	0, 0.7326495, 1.5374383, 2.4016068, 3.3112247, 4.2534266, 5.2177052,
	6.1962507, 7.1836656, 8.1764248, 9.1723243, 10.170032, 11.168765,
	12.168070, 13.167693, 14.167488, 15.167379,
}

var universalVariance = [17]float64{
	0, 0.690, 1.338, 1.901, 2.358, 2.705, 2.954, 3.125, 3.238, 3.311,
	3.356, 3.384, 3.401, 3.410, 3.416, 3.419, 3.421,
}

// selectUniversalProfile picks the largest L whose minSize the sequence
// satisfies. A sequence shorter than the smallest table entry's minSize
// cannot run Maurer's test at all, regardless of the spec's absolute
// floor of n>=2020 (see DESIGN.md: that floor is a pre-check constant,
// not by itself sufficient for any L in the table).
func selectUniversalProfile(n int) (universalProfile, error) {
	if n < 2020 {
		return universalProfile{}, invalidParameter("MaurersUniversalStatistical: n=%d, need n>=2020", n)
	}
	best := -1
	for i, p := range universalTable {
		if n >= p.minSize {
			best = i
		}
	}
	if best == -1 {
		return universalProfile{}, invalidParameter(
			"MaurersUniversalStatistical: n=%d is below the smallest table entry's minimum (%d bits, L=%d)",
			n, universalTable[0].minSize, universalTable[0].l)
	}
	return universalTable[best], nil
}

// TestMaurersUniversalStatistical implements Maurer's universal
// statistical test: an initialization phase builds a most-recent-position
// table from the first Q L-bit blocks, then a test phase over the next K
// L-bit blocks averages log2(i - T[value]) (spec §4.3.9).
func TestMaurersUniversalStatistical(seq *BitSequence) (TestResult, error) {
	n := seq.Len()
	profile, err := selectUniversalProfile(n)
	if err != nil {
		return TestResult{}, err
	}
	l, q := profile.l, profile.q

	totalBlocks := n / l
	k := totalBlocks - q
	if k <= 0 {
		return TestResult{}, invalidParameter("MaurersUniversalStatistical: n=%d yields only %d blocks, need more than Q=%d", n, totalBlocks, q)
	}

	tableSize := 1 << uint(l)
	lastPos := make([]int, tableSize)

	blockAt := func(i int) uint64 { return seq.CyclicGroup(i*l, l) }

	for i := 0; i < q; i++ {
		lastPos[blockAt(i)] = i + 1
	}

	var sum float64
	for i := q; i < q+k; i++ {
		v := blockAt(i)
		gap := float64(i+1) - float64(lastPos[v])
		sum += math.Log2(gap)
		lastPos[v] = i + 1
	}
	fn := sum / float64(k)

	c := 0.7 - 0.8/float64(l) + (4+32/float64(l))*math.Pow(float64(k), -3/float64(l))/15
	sigma := c * math.Sqrt(universalVariance[l]/float64(k))

	arg := math.Abs((fn - universalExpectedValue[l]) / (math.Sqrt2 * sigma))
	p, err := finalizeP(MaurersUniversalStatistical, specfunc.Erfc(arg))
	if err != nil {
		return TestResult{}, err
	}
	return TestResult{Test: MaurersUniversalStatistical, PValue: p}, nil
}
