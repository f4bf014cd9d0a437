package capi

import (
	nist "github.com/stsgo/nist80022"
	"github.com/stsgo/nist80022/errs"
	"github.com/stsgo/nist80022/runner"
)

// NewRunner constructs a TestRunner and returns its handle.
func NewRunner() Handle {
	return register(runner.New())
}

// DestroyRunner releases h.
func DestroyRunner(h Handle) error {
	return release(h)
}

func testRunner(h Handle) (*runner.Runner, error) {
	obj, err := lookup(h)
	if err != nil {
		return nil, err
	}
	r, ok := obj.(*runner.Runner)
	if !ok {
		return nil, errs.New(errs.CodeInvalidParameter, "capi: handle %d is not a Runner", uint64(h))
	}
	return r, nil
}

// RunnerSetArgs replaces the runner's RunnerTestArgs bundle.
func RunnerSetArgs(h Handle, args nist.RunnerTestArgs) error {
	r, err := testRunner(h)
	if err != nil {
		return err
	}
	r.SetArgs(args)
	return nil
}

// RunnerRunAll runs every defined test against the BitSequence behind
// seqHandle.
func RunnerRunAll(h Handle, seqHandle Handle) (runner.Status, error) {
	r, err := testRunner(h)
	if err != nil {
		return runner.StatusValidationRejected, err
	}
	seq, err := bitSequence(seqHandle)
	if err != nil {
		return runner.StatusValidationRejected, err
	}
	return r.RunAll(seq), nil
}

// RunnerRunSelected runs exactly the given tests against the BitSequence
// behind seqHandle.
func RunnerRunSelected(h Handle, seqHandle Handle, tests []nist.TestIdentity) (runner.Status, error) {
	r, err := testRunner(h)
	if err != nil {
		return runner.StatusValidationRejected, err
	}
	seq, err := bitSequence(seqHandle)
	if err != nil {
		return runner.StatusValidationRejected, err
	}
	return r.RunSelected(seq, tests), nil
}

// RunnerGetResult fetches and removes the stored outcome for t, per
// runner.Runner.GetResult's ownership-transferring contract.
func RunnerGetResult(h Handle, t nist.TestIdentity) ([]nist.TestResult, error) {
	r, err := testRunner(h)
	if err != nil {
		return nil, err
	}
	return r.GetResult(t)
}
