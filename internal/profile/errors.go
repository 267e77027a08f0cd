package profile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a view, profile or handler type is
	// absent from the tables.
	ErrNotFound = errors.New("not found")

	// ErrUnknownMode is returned when a mode outside a handler type's mode
	// set is requested.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrConfig is the sentinel wrapped by *ConfigError.
	ErrConfig = errors.New("invalid interaction configuration")

	// ErrPanelMismatch is returned when a handler is created for a panel it
	// cannot operate on.
	ErrPanelMismatch = errors.New("panel does not support handler")
)

// Issue is a single configuration problem.
type Issue struct {
	// Handler is the handler type the issue belongs to, if any.
	Handler string

	// Message describes the problem.
	Message string
}

func (i Issue) String() string {
	if i.Handler == "" {
		return i.Message
	}
	return i.Handler + ": " + i.Message
}

// ConfigError reports every problem found while validating tables.
// A ConfigError indicates a programming error in the tables and is fatal at
// start-up.
type ConfigError struct {
	Issues []Issue
}

func (e *ConfigError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("%v: %s", ErrConfig, e.Issues[0])
	}
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%v: %d issues: %s", ErrConfig, len(e.Issues), strings.Join(parts, "; "))
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

// issues accumulates validation problems.
type issues []Issue

func (is *issues) addf(handler, format string, args ...any) {
	*is = append(*is, Issue{Handler: handler, Message: fmt.Sprintf(format, args...)})
}

func (is issues) err() error {
	if len(is) == 0 {
		return nil
	}
	return &ConfigError{Issues: is}
}
