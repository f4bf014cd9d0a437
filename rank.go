package nist

import (
	"github.com/stsgo/nist80022/internal/specfunc"
)

const (
	rankMatrixSize = 32
	rankBlockBits  = rankMatrixSize * rankMatrixSize

	rankProbFull   = 0.2888 // P(rank == 32)
	rankProbMinus1 = 0.5775 // P(rank == 31)
	rankProbRest   = 0.1337 // P(rank <= 30)
)

// gf2Rank computes the rank over GF(2) of a square bit matrix given as
// bit-packed rows (row i's bit (size-1-c) holds column c), using
// elementary row operations (XOR) with partial pivoting, generalizing the
// lane-packing idiom used throughout this module's bit-level code.
func gf2Rank(rows []uint32, size int) int {
	rank := 0
	for col := 0; col < size; col++ {
		mask := uint32(1) << uint(size-1-col)
		pivot := -1
		for r := rank; r < len(rows); r++ {
			if rows[r]&mask != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for r := range rows {
			if r != rank && rows[r]&mask != 0 {
				rows[r] ^= rows[rank]
			}
		}
		rank++
	}
	return rank
}

// TestBinaryMatrixRank partitions the sequence into N=n/1024 disjoint
// 32x32 bit matrices and chi-square tests the distribution of their GF(2)
// ranks against the standard NIST constants for P(rank=32), P(rank=31),
// and P(rank<=30) (spec §4.3.5). Requires n >= 38912.
func TestBinaryMatrixRank(seq *BitSequence) (TestResult, error) {
	n := seq.Len()
	if n < 38912 {
		return TestResult{}, invalidParameter("BinaryMatrixRank: n=%d, need n>=38912", n)
	}

	numMatrices := n / rankBlockBits
	var full, minus1 int
	rows := make([]uint32, rankMatrixSize)

	for mIdx := 0; mIdx < numMatrices; mIdx++ {
		base := mIdx * rankBlockBits
		for r := 0; r < rankMatrixSize; r++ {
			var row uint32
			for c := 0; c < rankMatrixSize; c++ {
				row <<= 1
				if seq.Get(base + r*rankMatrixSize + c) {
					row |= 1
				}
			}
			rows[r] = row
		}

		switch rank := gf2Rank(rows, rankMatrixSize); rank {
		case rankMatrixSize:
			full++
		case rankMatrixSize - 1:
			minus1++
		}
	}

	rest := numMatrices - full - minus1
	nF := float64(numMatrices)
	chi2 := sq(float64(full)-rankProbFull*nF)/(rankProbFull*nF) +
		sq(float64(minus1)-rankProbMinus1*nF)/(rankProbMinus1*nF) +
		sq(float64(rest)-rankProbRest*nF)/(rankProbRest*nF)

	p, err := igamcOrFail(BinaryMatrixRank, 1.0, chi2/2.0, specfunc.Igamc)
	if err != nil {
		return TestResult{}, err
	}
	return TestResult{Test: BinaryMatrixRank, PValue: p}, nil
}

func sq(x float64) float64 { return x * x }
