package shell

import (
	"context"
	"fmt"
)

// Runner provides an abstraction over external command execution.
//
// Every invocation is a single blocking call with no retry. A non-zero exit
// status is reported through CommandError so callers can distinguish "the
// command ran and failed" from "the command could not be run at all".
type Runner interface {
	// Run executes name with args in dir (empty dir = current directory)
	// and returns the combined stdout/stderr output.
	Run(ctx context.Context, dir string, name string, args ...string) (string, error)
}

// CommandError reports a command that ran but exited non-zero. The captured
// output is attached so callers can surface it.
type CommandError struct {
	Command string
	Status  int
	Output  string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.Status)
}
