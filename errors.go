package nist

import "github.com/stsgo/nist80022/errs"

// errInvalidParameter is the package-local sentinel other files compare
// against with errors.Is, mirroring the teacher's ErrInvalidBuffer /
// ErrNotLoaded convention (reader_slim.go).
var errInvalidParameter = errs.ErrInvalidParameter

// invalidParameter builds an error describing what constraint was violated
// and what value was observed (spec §7); errors.Is(err, errInvalidParameter)
// and errors.Is(err, errs.ErrInvalidParameter) both succeed against it.
func invalidParameter(format string, args ...any) error {
	return errs.New(errs.CodeInvalidParameter, format, args...)
}

func gammaFailed(format string, args ...any) error {
	return errs.New(errs.CodeGammaFunctionFailed, format, args...)
}

func nonFinite(code errs.Code, format string, args ...any) error {
	return errs.New(code, format, args...)
}
