package cli

import (
	"errors"
	"fmt"
)

// Exit codes reported by the binary
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitInput       = 2
	ExitEnvironment = 3
	ExitOther       = 4
)

// ExitError carries the exit code a command failure maps to
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// InputError wraps a problem with user-provided input (exit code 2)
func InputError(format string, args ...interface{}) error {
	return &ExitError{Code: ExitInput, Err: fmt.Errorf(format, args...)}
}

// EnvironmentError wraps a problem with the operator's environment, such as
// missing credentials or a missing project root (exit code 3).
func EnvironmentError(format string, args ...interface{}) error {
	return &ExitError{Code: ExitEnvironment, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned from command execution to a process exit
// code. Errors without an explicit code are "other" failures.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitOther
}
