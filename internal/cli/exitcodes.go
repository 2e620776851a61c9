package cli

import (
	"errors"
)

// Exit codes for gojscs.
const (
	// ExitSuccess indicates a run without style errors.
	ExitSuccess = 0

	// ExitFailure indicates style errors or a fatal error such as a
	// missing configuration.
	ExitFailure = 1

	// ExitUsage indicates invalid command-line usage.
	ExitUsage = 2
)

// ErrViolationsFound is returned when the run reported style errors or
// files that could not be checked.
var ErrViolationsFound = errors.New("code style errors found")

// UsageError wraps an invalid flag or argument.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode maps the error returned by the root command to a process exit
// code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	return ExitFailure
}
