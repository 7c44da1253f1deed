package domain

import "errors"

// Domain errors
var (
	ErrUnknownSeverity = errors.New("unknown severity")
	ErrInvalidPattern  = errors.New("invalid substitution pattern")
	ErrConfigNotFound  = errors.New("config file not found")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// Process exit codes
const (
	ExitOK    = 0
	ExitError = 1
)

// ExitCode returns the process exit status for the error that ended a run.
// An unknown severity stops the stream but is not reported as a failure.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUnknownSeverity):
		return ExitOK
	default:
		return ExitError
	}
}
