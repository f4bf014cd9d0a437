package nist

// FrequencyBlockArgs parameterises FrequencyWithinABlock.
type FrequencyBlockArgs struct {
	BlockLength int
}

// DefaultFrequencyBlockArgs matches NIST's usual M=128 recommendation. The
// test itself only requires M>=1 and at least one complete block, checked
// at test time since it also depends on n (spec §4.3.2).
func DefaultFrequencyBlockArgs() FrequencyBlockArgs {
	return FrequencyBlockArgs{BlockLength: 128}
}

// NonOverlappingTemplateArgs parameterises NonOverlappingTemplateMatching.
type NonOverlappingTemplateArgs struct {
	TemplateLen int // m, 2..21
	BlockCount  int // N, 1..99
}

// DefaultNonOverlappingTemplateArgs is (m=9, N=8), per spec §3.
func DefaultNonOverlappingTemplateArgs() NonOverlappingTemplateArgs {
	return NonOverlappingTemplateArgs{TemplateLen: 9, BlockCount: 8}
}

func (a NonOverlappingTemplateArgs) validate() error {
	if a.TemplateLen < 2 || a.TemplateLen > 21 {
		return invalidParameter("NonOverlappingTemplateMatching: template length m=%d out of range [2,21]", a.TemplateLen)
	}
	if a.BlockCount < 1 || a.BlockCount > 99 {
		return invalidParameter("NonOverlappingTemplateMatching: block count N=%d out of range [1,99]", a.BlockCount)
	}
	return nil
}

// OverlappingTemplateArgs parameterises OverlappingTemplateMatching.
type OverlappingTemplateArgs struct {
	TemplateLen      int // m, 2..21
	BlockLength      int // M
	DegreesOfFreedom int // K
	NISTBehaviour    bool
}

// DefaultOverlappingTemplateArgs is (m=9, M=1032, K=6, nist-behaviour=false),
// per spec §3.
func DefaultOverlappingTemplateArgs() OverlappingTemplateArgs {
	return OverlappingTemplateArgs{TemplateLen: 9, BlockLength: 1032, DegreesOfFreedom: 6, NISTBehaviour: false}
}

func (a OverlappingTemplateArgs) validate() error {
	if a.TemplateLen < 2 || a.TemplateLen > 21 {
		return invalidParameter("OverlappingTemplateMatching: template length m=%d out of range [2,21]", a.TemplateLen)
	}
	if a.BlockLength <= 0 {
		return invalidParameter("OverlappingTemplateMatching: block length M=%d must be positive", a.BlockLength)
	}
	if a.DegreesOfFreedom <= 0 {
		return invalidParameter("OverlappingTemplateMatching: degrees of freedom K=%d must be positive", a.DegreesOfFreedom)
	}
	return nil
}

// LinearComplexityArgs parameterises LinearComplexity.
type LinearComplexityArgs struct {
	// BlockLength is 500..5000, or Auto=true to pick it from n per spec §9.
	BlockLength int
	Auto        bool
}

// DefaultLinearComplexityArgs requests automatic block-length selection.
func DefaultLinearComplexityArgs() LinearComplexityArgs {
	return LinearComplexityArgs{Auto: true}
}

func (a LinearComplexityArgs) resolve(n int) (int, error) {
	if a.Auto {
		return autoLinearComplexityBlockLength(n)
	}
	if a.BlockLength < 500 || a.BlockLength > 5000 {
		return 0, invalidParameter("LinearComplexity: block length M=%d out of range [500,5000]", a.BlockLength)
	}
	if n/a.BlockLength < 200 {
		return 0, invalidParameter("LinearComplexity: block length M=%d yields N=%d blocks, need N>=200", a.BlockLength, n/a.BlockLength)
	}
	return a.BlockLength, nil
}

// autoLinearComplexityBlockLength chooses M in [500,5000] maximizing M
// subject to N = n/M >= 200 (spec §9 open-question resolution).
func autoLinearComplexityBlockLength(n int) (int, error) {
	best := 0
	for m := 500; m <= 5000; m++ {
		if n/m >= 200 && m > best {
			best = m
		}
	}
	if best == 0 {
		return 0, invalidParameter("LinearComplexity: no block length in [500,5000] yields N>=200 blocks for n=%d", n)
	}
	return best, nil
}

// SerialArgs parameterises Serial.
type SerialArgs struct {
	BlockLength int // m, >= 2
}

// DefaultSerialArgs is m=16, per spec §3.
func DefaultSerialArgs() SerialArgs { return SerialArgs{BlockLength: 16} }

// ApproximateEntropyArgs parameterises ApproximateEntropy.
type ApproximateEntropyArgs struct {
	BlockLength int // m, >= 2
}

// DefaultApproximateEntropyArgs is m=10, per spec §3.
func DefaultApproximateEntropyArgs() ApproximateEntropyArgs {
	return ApproximateEntropyArgs{BlockLength: 10}
}

// RunnerTestArgs holds one configuration slot per parameterised test,
// pre-populated with the defaults above (spec §3).
type RunnerTestArgs struct {
	FrequencyBlock        FrequencyBlockArgs
	NonOverlappingTemplate NonOverlappingTemplateArgs
	OverlappingTemplate   OverlappingTemplateArgs
	LinearComplexity      LinearComplexityArgs
	Serial                SerialArgs
	ApproximateEntropy    ApproximateEntropyArgs
}

// DefaultRunnerTestArgs returns a RunnerTestArgs with every slot set to its
// documented default.
func DefaultRunnerTestArgs() RunnerTestArgs {
	return RunnerTestArgs{
		FrequencyBlock:         DefaultFrequencyBlockArgs(),
		NonOverlappingTemplate: DefaultNonOverlappingTemplateArgs(),
		OverlappingTemplate:    DefaultOverlappingTemplateArgs(),
		LinearComplexity:       DefaultLinearComplexityArgs(),
		Serial:                 DefaultSerialArgs(),
		ApproximateEntropy:     DefaultApproximateEntropyArgs(),
	}
}
