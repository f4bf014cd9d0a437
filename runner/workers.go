// Package runner implements the TestRunner: test selection, argument
// bundling, one-shot worker-pool sizing, and concurrent execution of the
// fifteen statistical tests with per-test error isolation (spec §4.4, §5).
package runner

import (
	"runtime"
	"sync"

	"github.com/stsgo/nist80022/errs"
)

// workerMu guards the process-wide worker pool configuration (spec §5:
// "Worker pool size is fixed process-wide; it can be set exactly once
// before any test executes").
var (
	workerMu         sync.Mutex
	workerSize       int
	workerConfigured bool
)

// SetMaxWorkers fixes the process-wide worker pool size that bounds the
// runner's concurrent test scheduling (the tests themselves run their
// blocks sequentially). It may be called at most once; every
// subsequent call, whether or not the size differs, reports
// SetMaxThreads.
func SetMaxWorkers(n int) error {
	if n < 1 {
		return errs.New(errs.CodeInvalidParameter, "runner: worker count %d must be positive", n)
	}
	workerMu.Lock()
	defer workerMu.Unlock()
	if workerConfigured {
		return errs.New(errs.CodeSetMaxThreads, "runner: worker pool size already fixed at %d", workerSize)
	}
	workerSize = n
	workerConfigured = true
	return nil
}

// maxWorkers returns the configured pool size, defaulting to and locking
// in runtime.NumCPU() on first use if SetMaxWorkers was never called.
func maxWorkers() int {
	workerMu.Lock()
	defer workerMu.Unlock()
	if !workerConfigured {
		workerSize = runtime.NumCPU()
		workerConfigured = true
	}
	return workerSize
}

// resetWorkersForTest undoes the one-shot configuration; it exists only
// so tests can exercise SetMaxWorkers's rejection path deterministically
// without cross-contaminating other tests in the same process.
func resetWorkersForTest() {
	workerMu.Lock()
	defer workerMu.Unlock()
	workerConfigured = false
	workerSize = 0
}
