package runner

import (
	nist "github.com/stsgo/nist80022"
	"github.com/stsgo/nist80022/errs"
)

// dispatch runs the single test identified by t against seq, using the
// matching slice of args, and normalizes every test's outcome to
// ([]nist.TestResult, error) regardless of whether the underlying test
// function returns one result or several.
func dispatch(t nist.TestIdentity, seq *nist.BitSequence, args nist.RunnerTestArgs) ([]nist.TestResult, error) {
	switch t {
	case nist.Frequency:
		return one(nist.TestFrequency(seq))
	case nist.FrequencyWithinABlock:
		return one(nist.TestFrequencyWithinABlock(seq, args.FrequencyBlock))
	case nist.Runs:
		return one(nist.TestRuns(seq))
	case nist.LongestRunOfOnes:
		return one(nist.TestLongestRunOfOnes(seq))
	case nist.BinaryMatrixRank:
		return one(nist.TestBinaryMatrixRank(seq))
	case nist.SpectralDFT:
		return one(nist.TestSpectralDFT(seq))
	case nist.NonOverlappingTemplateMatching:
		return nist.TestNonOverlappingTemplateMatching(seq, args.NonOverlappingTemplate)
	case nist.OverlappingTemplateMatching:
		return one(nist.TestOverlappingTemplateMatching(seq, args.OverlappingTemplate))
	case nist.MaurersUniversalStatistical:
		return one(nist.TestMaurersUniversalStatistical(seq))
	case nist.LinearComplexity:
		return one(nist.TestLinearComplexity(seq, args.LinearComplexity))
	case nist.Serial:
		return nist.TestSerial(seq, args.Serial)
	case nist.ApproximateEntropy:
		return one(nist.TestApproximateEntropy(seq, args.ApproximateEntropy))
	case nist.CumulativeSums:
		return nist.TestCumulativeSums(seq)
	case nist.RandomExcursions:
		return nist.TestRandomExcursions(seq)
	case nist.RandomExcursionsVariant:
		return nist.TestRandomExcursionsVariant(seq)
	default:
		return nil, errs.New(errs.CodeInvalidTest, "runner: unknown test identity %d", int(t))
	}
}

func one(r nist.TestResult, err error) ([]nist.TestResult, error) {
	if err != nil {
		return nil, err
	}
	return []nist.TestResult{r}, nil
}
