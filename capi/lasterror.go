package capi

import "github.com/stsgo/nist80022/errs"

// LastErrorCode returns the code of the most recently recorded error
// across this process, or CodeNoError if none has been recorded (or it
// was already cleared). Every entry point in this package that returns an
// error has already recorded it here via errs.New before returning, so a
// foreign caller that cannot carry a Go error value can still recover the
// structured (code, message) pair afterward (spec §4.5).
func LastErrorCode() errs.Code {
	if e := errs.Last(); e != nil {
		return e.Code
	}
	return errs.CodeNoError
}

// LastErrorMessageLength reports the byte length of the last recorded
// error's message, the first phase of the two-phase retrieval protocol
// (spec §6): a caller with a null/absent buffer calls this to learn how
// large a buffer to allocate.
func LastErrorMessageLength() int {
	if e := errs.Last(); e != nil {
		return len(e.Message)
	}
	return 0
}

// LastErrorMessage is the second phase: it copies as much of the last
// recorded error's message as fits in buf, returning the number of bytes
// written and the message's full length (so the caller can detect
// truncation if buf was undersized relative to what
// LastErrorMessageLength reported).
func LastErrorMessage(buf []byte) (written, total int) {
	e := errs.Last()
	if e == nil {
		return 0, 0
	}
	total = len(e.Message)
	written = copy(buf, e.Message)
	return written, total
}

// ClearLastError empties the last-error slot.
func ClearLastError() {
	errs.Clear()
}
