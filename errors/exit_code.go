package errors

import (
	"github.com/cockroachdb/errors"
)

// Exit codes used by the CLI.
const (
	ExitCodeSuccess       = 0
	ExitCodeFailure       = 1
	ExitCodeUsage         = 2
	ExitCodeInterrupted   = 130
	signalExitCodeBase    = 128
	defaultSignalExitCode = ExitCodeInterrupted
)

// exitCoder wraps an error and specifies an exit code.
type exitCoder struct {
	cause error
	code  int
}

func (e *exitCoder) Error() string {
	return e.cause.Error()
}

func (e *exitCoder) Cause() error {
	return e.cause
}

func (e *exitCoder) Unwrap() error {
	return e.cause
}

// ExitCode returns the exit code.
func (e *exitCoder) ExitCode() int {
	return e.code
}

// WithExitCode attaches an exit code to an error.
// The exit code can be retrieved later using GetExitCode.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{
		cause: err,
		code:  code,
	}
}

// GetExitCode extracts the exit code from an error chain.
// Returns 0 if err is nil, the attached exit code if present, 1 otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var ec *exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	return ExitCodeFailure
}

// SignalExitCode returns the POSIX exit code for a terminating signal number.
func SignalExitCode(signal int) int {
	if signal <= 0 {
		return defaultSignalExitCode
	}
	return signalExitCodeBase + signal
}
