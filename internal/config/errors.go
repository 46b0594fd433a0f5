package config

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the configuration file does not exist. Callers treat
// this as a recoverable condition, never a crash.
var ErrNotFound = errors.New("configuration file does not exist")

// ParseError indicates the configuration file exists but its content is
// malformed. Bulk scans downgrade it to an error flag on the owning entity.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
