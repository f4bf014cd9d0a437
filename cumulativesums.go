package nist

import (
	"math"
)

// cumulativeSumsExcursion returns the maximum absolute partial sum of the
// ±1-valued sequence, walked either forward or in reverse (spec §4.3.13).
func cumulativeSumsExcursion(seq *BitSequence, reverse bool) int {
	n := seq.Len()
	var s, z int
	for i := 0; i < n; i++ {
		idx := i
		if reverse {
			idx = n - 1 - i
		}
		if seq.Get(idx) {
			s++
		} else {
			s--
		}
		if abs := absInt(s); abs > z {
			z = abs
		}
	}
	return z
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// normalCDF is the standard normal cumulative distribution function,
// expressed via erfc the way NIST's reference "cephes_normal" does.
func normalCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// cumulativeSumsPValue evaluates NIST's closed-form series for the
// distribution of the maximal excursion z of a length-n random walk (spec
// §4.3.13). The summation bounds use truncating integer division,
// matching the reference derivation exactly.
func cumulativeSumsPValue(n, z int) float64 {
	nF := float64(n)
	zF := float64(z)
	sqrtN := math.Sqrt(nF)

	var sum1 float64
	start1 := (-n/z + 1) / 4
	end1 := (n/z - 1) / 4
	for k := start1; k <= end1; k++ {
		sum1 += normalCDF((4*float64(k)+1) * zF / sqrtN)
		sum1 -= normalCDF((4*float64(k)-1) * zF / sqrtN)
	}

	var sum2 float64
	start2 := (-n/z - 3) / 4
	end2 := (n/z - 1) / 4
	for k := start2; k <= end2; k++ {
		sum2 += normalCDF((4*float64(k)+3) * zF / sqrtN)
		sum2 -= normalCDF((4*float64(k)+1) * zF / sqrtN)
	}

	return 1.0 - sum1 + sum2
}

// TestCumulativeSums walks the ±1-valued sequence both forward and in
// reverse, reporting one p-value per direction from the maximal excursion
// of each walk (spec §4.3.13).
func TestCumulativeSums(seq *BitSequence) ([]TestResult, error) {
	n := seq.Len()
	if n < 100 {
		return nil, invalidParameter("CumulativeSums: n=%d, need n>=100", n)
	}

	forwardZ := cumulativeSumsExcursion(seq, false)
	backwardZ := cumulativeSumsExcursion(seq, true)

	results := make([]TestResult, 2)
	for i, spec := range []struct {
		z       int
		comment string
	}{{forwardZ, "forward"}, {backwardZ, "backward"}} {
		var pv float64
		if spec.z == 0 {
			pv = 1.0
		} else {
			pv = cumulativeSumsPValue(n, spec.z)
		}
		p, err := finalizeP(CumulativeSums, pv)
		if err != nil {
			return nil, err
		}
		results[i] = TestResult{Test: CumulativeSums, PValue: p, Comment: spec.comment}
	}
	return results, nil
}
