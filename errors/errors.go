// Package errors defines the typed failures the weather command can end with
// and how each maps to a process exit code.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	APIError        ErrorType = "API_ERROR"
	MismatchError   ErrorType = "LOCATION_MISMATCH"
	UnexpectedError ErrorType = "UNEXPECTED_ERROR"
	UsageError      ErrorType = "USAGE_ERROR"
)

// Process exit codes
const (
	ExitOK              = 0
	ExitFailure         = 1
	ExitInvalidArgument = 9
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType
	Message    string
	Detail     string
	HTTPStatus int
	StatusText string
	Raw        error
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// APIFailure describes a non-2xx response from the provider. providerMessage is the
// message from the provider's error body, if it sent one.
func APIFailure(status int, statusText, providerMessage string) *AppError {
	if statusText == "" {
		statusText = http.StatusText(status)
	}
	return &AppError{
		Type:       APIError,
		Message:    fmt.Sprintf("Request failed with status code %d", status),
		Detail:     providerMessage,
		HTTPStatus: status,
		StatusText: statusText,
	}
}

// LocationMismatch is returned when the provider resolved the query to a different city.
func LocationMismatch(requested, resolved string) *AppError {
	return &AppError{
		Type:    MismatchError,
		Message: fmt.Sprintf("No weather data for %q found. Perhaps you meant %s? Please check your spelling.", requested, resolved),
		Detail:  resolved,
	}
}

// Unexpected wraps a transport, decoding or other fault. err may be nil when
// there is no underlying cause.
func Unexpected(err error, message string) *AppError {
	appErr := &AppError{
		Type:    UnexpectedError,
		Message: message,
		Raw:     err,
	}
	if err != nil {
		appErr.Detail = err.Error()
	}
	return appErr
}

func Usage(message string) *AppError {
	return &AppError{
		Type:    UsageError,
		Message: message,
	}
}

// As returns the AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if appErr, ok := As(err); ok && appErr.Type == MismatchError {
		return ExitInvalidArgument
	}
	return ExitFailure
}
