// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Unified error handling for sched commands.
//
// STANDARDIZED PATTERN:
//   - Commands always return errors, never print and return nil
//   - Execute prints the error once and maps it to an exit code
//
// ERROR HANDLING: Errors must not be silently ignored

package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/jeranaias/sched/internal/config"
	"github.com/jeranaias/sched/internal/schedule"
	"github.com/jeranaias/sched/internal/ui/styles"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid flags or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file or settings error
	ExitConfigError = 3
	// ExitDataError indicates a malformed schedule or palette
	ExitDataError = 4
	// ExitNotFoundError indicates a missing input file
	ExitNotFoundError = 7
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError represents a failed command step with context.
type CommandError struct {
	Command string // e.g. "watch", "config init"
	Reason  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Command, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Command, e.Reason)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ValidationError represents bad user input on the command line.
type ValidationError struct {
	Field   string // flag or argument
	Value   string
	Reason  string
	Example string // optional
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	if e.Value != "" {
		msg += fmt.Sprintf(" (got: %s)", e.Value)
	}
	if e.Example != "" {
		msg += fmt.Sprintf("\nExample: %s", e.Example)
	}
	return msg
}

// ConfigError wraps a failure to load or validate the configuration.
type ConfigError struct {
	Path string // "" for the default location
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NotFoundError represents a missing input.
type NotFoundError struct {
	Resource string // e.g. "schedule", "palette"
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// =============================================================================
// ERROR CONSTRUCTION HELPERS
// =============================================================================

// NewValidationError creates a new validation error.
func NewValidationError(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// NewValidationErrorWithExample creates a validation error with an example.
func NewValidationErrorWithExample(field, value, reason, example string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason, Example: example}
}

// notFoundOr turns a missing-file error into a NotFoundError and returns
// any other error unchanged.
func notFoundOr(err error, resource, path string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{Resource: resource, ID: path}
	}
	return err
}

// =============================================================================
// EXIT CODE MAPPING
// =============================================================================

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ExitUsageError
	}

	var configErr *ConfigError
	var configValidation config.ValidateErrors
	if errors.As(err, &configErr) || errors.As(err, &configValidation) {
		return ExitConfigError
	}

	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) || errors.Is(err, fs.ErrNotExist) {
		return ExitNotFoundError
	}

	var missingErr *schedule.MissingColumnsError
	var rowErr *schedule.RowError
	if errors.As(err, &missingErr) || errors.As(err, &rowErr) ||
		errors.Is(err, schedule.ErrBadWeekday) || errors.Is(err, styles.ErrInvalidColor) {
		return ExitDataError
	}

	return ExitGeneralError
}

// =============================================================================
// ERROR DISPLAY
// =============================================================================

// DisplayError writes err to w in the standard format.
func DisplayError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("error:"), err.Error())
}

// HandleError displays err and returns its exit code.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}
	DisplayError(w, err)
	return ExitCodeFor(err)
}
