package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scriptdex
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitConfigError    = 2
	ExitScanError      = 3
	ExitRenderError    = 4
	ExitScriptNotFound = 5
)

// CatalogError is the base error type for scriptdex
type CatalogError struct {
	Code    int
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *CatalogError) ExitCode() int {
	return e.Code
}

// New creates a new CatalogError
func New(code int, message string) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a CatalogError
func Wrap(code int, message string, cause error) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *CatalogError {
	return Wrap(ExitConfigError, message, cause)
}

// ScanFailed returns an error for a directory or file that could not be read
func ScanFailed(path string, cause error) *CatalogError {
	return Wrap(ExitScanError, fmt.Sprintf("failed to scan %s", path), cause)
}

// RenderFailed returns an error for document rendering failures
func RenderFailed(cause error) *CatalogError {
	return Wrap(ExitRenderError, "failed to render document", cause)
}

// WriteFailed returns an error for output files that could not be written
func WriteFailed(path string, cause error) *CatalogError {
	return Wrap(ExitGeneralError, fmt.Sprintf("failed to write %s", path), cause)
}

// ScriptNotFound returns an error for a script missing from the catalog
func ScriptNotFound(ref string) *CatalogError {
	return New(ExitScriptNotFound, fmt.Sprintf("script not found: %s", ref))
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *CatalogError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var catalogErr *CatalogError
	if errors.As(err, &catalogErr) {
		return catalogErr.ExitCode()
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
