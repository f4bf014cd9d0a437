package errs

import "sync"

// lastErrorStore approximates the thread-local "last error" slot that the
// reference C API exposes. Go has no public thread-local-storage primitive,
// so this is a single mutex-guarded slot shared by the whole process: the
// most recent error recorded from any goroutine overwrites it.
var (
	mu   sync.Mutex
	last *Error
)

func record(e *Error) {
	mu.Lock()
	last = e
	mu.Unlock()
}

// Last returns the most recently recorded error, or nil if none has been
// recorded (or it has already been cleared).
func Last() *Error {
	mu.Lock()
	defer mu.Unlock()
	return last
}

// Clear resets the last-error slot to NoError.
func Clear() {
	mu.Lock()
	last = nil
	mu.Unlock()
}
