package runner

import "fmt"

// Status is the TestRunner's three-state outcome (spec §4.4, §7): a run
// either validated and executed cleanly, was rejected before any test ran
// (bad selection or arguments), or ran but one or more tests individually
// failed (details retrievable per-test via GetResult).
type Status int

const (
	// StatusOK: every selected test ran and returned results.
	StatusOK Status = iota
	// StatusValidationRejected: the run never started — duplicate test or
	// unknown identity. Arguments are not checked against the data up
	// front; an invalid argument surfaces as that test's own error under
	// StatusSomeTestsErrored.
	StatusValidationRejected
	// StatusSomeTestsErrored: the run started; at least one test's own
	// outcome is an error rather than results. Sibling tests still ran.
	StatusSomeTestsErrored
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusValidationRejected:
		return "ValidationRejected"
	case StatusSomeTestsErrored:
		return "SomeTestsErrored"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
