package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/thenoetrevino/kanbo/internal/api"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, server errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found (HTTP 404).
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable stdin or responses that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates the API rejected the input (HTTP 400).
	ExitValidation = 5

	// ExitAuth indicates a missing, expired, or rejected token (HTTP 401/403).
	ExitAuth = 6
)

// CodedError carries the process exit code a command failed with
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an explicit exit code
func Exit(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}

// ExitCodeForStatus maps an HTTP status to an exit code
func ExitCodeForStatus(status int) int {
	switch status {
	case http.StatusNotFound:
		return ExitNotFound
	case http.StatusBadRequest:
		return ExitValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return ExitAuth
	default:
		return ExitError
	}
}

// ExitCode returns the exit code for err: the code of a CodedError,
// the mapped HTTP status of an api error, ExitError otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	if status := api.StatusCode(err); status != 0 {
		return ExitCodeForStatus(status)
	}
	return ExitError
}
