package shell

import (
	"context"
	"os/exec"
	"strings"
)

// MockRunner implements Runner with scripted responses for testing
type MockRunner struct {
	// Responses maps a command line (name + args joined by spaces) to its
	// scripted output.
	Responses map[string]MockResponse

	// Calls records every command line that was run
	Calls []string
}

// MockResponse is a scripted result for a single command line
type MockResponse struct {
	Output string
	Status int
	// NotFound simulates a binary missing from PATH
	NotFound bool
}

// NewMockRunner creates a new MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Responses: make(map[string]MockResponse),
	}
}

// Script registers a response for the given command line
func (r *MockRunner) Script(commandLine string, response MockResponse) {
	r.Responses[commandLine] = response
}

func (r *MockRunner) Run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	commandLine := strings.Join(append([]string{name}, args...), " ")
	r.Calls = append(r.Calls, commandLine)

	response, ok := r.Responses[commandLine]
	if !ok {
		return "", &CommandError{Command: commandLine, Status: 127, Output: ""}
	}

	if response.NotFound {
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}

	if response.Status != 0 {
		return response.Output, &CommandError{
			Command: commandLine,
			Status:  response.Status,
			Output:  response.Output,
		}
	}

	return response.Output, nil
}
