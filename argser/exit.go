package argser

import "errors"

// ExitError requests a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// Default exit codes
const (
	ExitSuccess  = 0
	ExitFailure  = 1
	ExitMisusage = 2
)

// ExitCode maps an error to a process exit code.
// Precedence:
//  1. *ExitError (requested code)
//  2. *Error (unknown or incomplete option) -> ExitMisusage
//  3. anything else -> ExitFailure
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *Error
	if errors.As(err, &parseErr) {
		return ExitMisusage
	}

	return ExitFailure
}
