package errors

import (
	"errors"
	"fmt"
)

// Exit codes for rackline
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitSchemaError  = 2
	ExitConfigError  = 3
	ExitIngestError  = 4
	ExitRenderError  = 5
)

// RacklineError is the base error type for rackline
type RacklineError struct {
	Code    int
	Message string
	Cause   error
}

func (e *RacklineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *RacklineError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *RacklineError) ExitCode() int {
	return e.Code
}

// New creates a new RacklineError
func New(code int, message string) *RacklineError {
	return &RacklineError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a RacklineError
func Wrap(code int, message string, cause error) *RacklineError {
	return &RacklineError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// SchemaError returns a fatal error for unresolvable input columns.
// Schema failures abort the run before any output is produced.
func SchemaError(cause error) *RacklineError {
	return Wrap(ExitSchemaError, "column detection failed", cause)
}

// ConfigError returns an error for rack configuration issues
func ConfigError(message string, cause error) *RacklineError {
	return Wrap(ExitConfigError, message, cause)
}

// IngestError returns an error for input file reading failures
func IngestError(path string, cause error) *RacklineError {
	return Wrap(ExitIngestError, fmt.Sprintf("failed to read %s", path), cause)
}

// RenderError returns an error for label output failures
func RenderError(op string, cause error) *RacklineError {
	return Wrap(ExitRenderError, fmt.Sprintf("label %s failed", op), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *RacklineError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var rlErr *RacklineError
	if errors.As(err, &rlErr) {
		return rlErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
