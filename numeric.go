package nist

import (
	"math"

	"github.com/stsgo/nist80022/errs"
)

// nonFiniteFromP classifies a non-finite computed p-value into the NaN or
// Infinite taxonomy code and records/returns the corresponding error. Every
// test calls this at the single point where its p-value is assembled (spec
// §4.1, §9 design note 4): non-finite results are never silently returned.
func nonFiniteFromP(t TestIdentity, p float64) error {
	if math.IsNaN(p) {
		return nonFinite(errs.CodeNaN, "%s: computed p-value is NaN", t)
	}
	return nonFinite(errs.CodeInfinite, "%s: computed p-value is %v", t, p)
}

// finalizeP checks p for finiteness before a test returns it, per spec §7
// ("a non-finite result is an error, not a fallback").
func finalizeP(t TestIdentity, p float64) (float64, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, nonFiniteFromP(t, p)
	}
	return p, nil
}

// igamcOrFail wraps specfunc.Igamc, translating a convergence failure into
// the GammaFunctionFailed taxonomy code.
func igamcOrFail(t TestIdentity, a, x float64, igamc func(a, x float64) (float64, bool)) (float64, error) {
	v, ok := igamc(a, x)
	if !ok {
		return 0, gammaFailed("%s: igamc(%v, %v) failed to converge", t, a, x)
	}
	return finalizeP(t, v)
}
