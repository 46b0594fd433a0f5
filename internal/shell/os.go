package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// OSRunner implements Runner using os/exec
type OSRunner struct{}

// NewOSRunner creates a new OSRunner
func NewOSRunner() *OSRunner {
	return &OSRunner{}
}

func (r *OSRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	output := out.String()

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return output, &CommandError{
				Command: strings.Join(append([]string{name}, args...), " "),
				Status:  exitErr.ExitCode(),
				Output:  output,
			}
		}
		// The command could not be started at all (e.g. binary missing).
		return output, err
	}

	return output, nil
}
