package runner

import (
	"sync"

	"golang.org/x/sync/errgroup"

	nist "github.com/stsgo/nist80022"
	"github.com/stsgo/nist80022/errs"
)

// slot holds one test's stored outcome until GetResult transfers it out.
type slot struct {
	results []nist.TestResult
	err     error
}

// Runner is the TestRunner (spec §4.4): it holds one RunnerTestArgs
// configuration, executes a selected set of tests concurrently over the
// shared worker pool (spec §5), and stores each test's outcome keyed by
// identity until fetched.
type Runner struct {
	mu      sync.Mutex
	args    nist.RunnerTestArgs
	results map[nist.TestIdentity]slot
}

// New returns a Runner pre-populated with nist.DefaultRunnerTestArgs.
func New() *Runner {
	return &Runner{
		args:    nist.DefaultRunnerTestArgs(),
		results: make(map[nist.TestIdentity]slot),
	}
}

// SetArgs replaces the runner's RunnerTestArgs bundle, affecting every
// subsequent run (not any run already in progress).
func (r *Runner) SetArgs(args nist.RunnerTestArgs) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.args = args
}

// RunAll runs every defined test against seq.
func (r *Runner) RunAll(seq *nist.BitSequence) Status {
	return r.RunSelected(seq, nist.AllTestIdentities())
}

// RunSelected validates the requested test set up front — every identity
// must be defined and none may repeat — rejecting with
// StatusValidationRejected before running anything if not. Otherwise each
// test runs exactly once, concurrently, over the shared worker pool; a
// test's own error is stored against its slot and does not abort sibling
// tests (spec §4.4, §7).
func (r *Runner) RunSelected(seq *nist.BitSequence, tests []nist.TestIdentity) Status {
	seen := make(map[nist.TestIdentity]bool, len(tests))
	for _, t := range tests {
		if !t.Valid() {
			errs.New(errs.CodeInvalidTest, "runner: unknown test identity %d", int(t))
			return StatusValidationRejected
		}
		if seen[t] {
			errs.New(errs.CodeDuplicateTest, "runner: test %s submitted more than once in a single run", t)
			return StatusValidationRejected
		}
		seen[t] = true
	}

	r.mu.Lock()
	args := r.args
	r.mu.Unlock()

	sem := make(chan struct{}, maxWorkers())
	var g errgroup.Group
	var errored bool

	for _, t := range tests {
		t := t
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			results, err := dispatch(t, seq, args)

			r.mu.Lock()
			r.results[t] = slot{results: results, err: err}
			if err != nil {
				errored = true
			}
			r.mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if errored {
		return StatusSomeTestsErrored
	}
	return StatusOK
}

// GetResult fetches the stored outcome for t, transferring ownership: the
// slot is emptied on return, so a second fetch for the same identity
// reports TestWasNotRun. A test that errored returns that error here
// instead of results.
func (r *Runner) GetResult(t nist.TestIdentity) ([]nist.TestResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.results[t]
	if !ok {
		return nil, errs.New(errs.CodeTestWasNotRun, "runner: %s was not run or its result was already fetched", t)
	}
	delete(r.results, t)
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}
