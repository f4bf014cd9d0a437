package nist

import "fmt"

// TestResult is the immutable outcome of one statistical test, or one of
// several results for tests that emit more than one p-value (spec §3).
type TestResult struct {
	// Test identifies which test produced this result.
	Test TestIdentity
	// PValue is finite and lies in [0, 1].
	PValue float64
	// Comment is an optional free-form annotation, e.g. "x = -3" for
	// Random Excursions, or a template identifier for Non-overlapping
	// Template Matching, or a skip explanation.
	Comment string
}

func (r TestResult) String() string {
	if r.Comment == "" {
		return fmt.Sprintf("%s: p=%.6f", r.Test, r.PValue)
	}
	return fmt.Sprintf("%s: p=%.6f (%s)", r.Test, r.PValue, r.Comment)
}

// DefaultAlpha is the default significance threshold from spec §6. Tests
// never apply it themselves; it is exposed for callers building a
// pass/fail predicate on top of raw p-values.
const DefaultAlpha = 0.01

// Passed reports whether p clears DefaultAlpha.
func Passed(p float64) bool { return PassedAt(p, DefaultAlpha) }

// PassedAt reports whether p clears the given significance threshold.
func PassedAt(p, alpha float64) bool { return p >= alpha }

// TestIdentity is a stable integer tag over the fifteen tests, used by the
// TestRunner and the binding surface for foreign-traversal (spec §6).
type TestIdentity int

const (
	Frequency TestIdentity = iota
	FrequencyWithinABlock
	Runs
	LongestRunOfOnes
	BinaryMatrixRank
	SpectralDFT
	NonOverlappingTemplateMatching
	OverlappingTemplateMatching
	MaurersUniversalStatistical
	LinearComplexity
	Serial
	ApproximateEntropy
	CumulativeSums
	RandomExcursions
	RandomExcursionsVariant

	testIdentityCount
)

var testIdentityNames = [testIdentityCount]string{
	"Frequency",
	"FrequencyWithinABlock",
	"Runs",
	"LongestRunOfOnes",
	"BinaryMatrixRank",
	"SpectralDFT",
	"NonOverlappingTemplateMatching",
	"OverlappingTemplateMatching",
	"MaurersUniversalStatistical",
	"LinearComplexity",
	"Serial",
	"ApproximateEntropy",
	"CumulativeSums",
	"RandomExcursions",
	"RandomExcursionsVariant",
}

func (t TestIdentity) String() string {
	if t < 0 || t >= testIdentityCount {
		return fmt.Sprintf("TestIdentity(%d)", int(t))
	}
	return testIdentityNames[t]
}

// Valid reports whether t is one of the fifteen defined identities.
func (t TestIdentity) Valid() bool { return t >= 0 && t < testIdentityCount }

// ParseTestIdentity is the inverse of String, used by the (out-of-scope)
// CLI/CSV front end and by the binding surface's enumeration helpers.
func ParseTestIdentity(name string) (TestIdentity, bool) {
	for i, n := range testIdentityNames {
		if n == name {
			return TestIdentity(i), true
		}
	}
	return -1, false
}

// AllTestIdentities returns every defined TestIdentity in stable order.
func AllTestIdentities() []TestIdentity {
	out := make([]TestIdentity, testIdentityCount)
	for i := range out {
		out[i] = TestIdentity(i)
	}
	return out
}
