package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	APIError        ErrorType = "API_ERROR"
	ServerError     ErrorType = "SERVER_ERROR"
)

// AppError represents a structured client error
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
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

// New creates a new AppError
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// InvalidArgument is raised locally, before any network activity, when a
// caller supplies a malformed value.
func InvalidArgument(field string, detail string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Code:       field,
		Message:    fmt.Sprintf("invalid %s", field),
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

// APIFailure is raised when the remote call completed without a usable body
// and the transport reported an unsuccessful status.
func APIFailure(status int, message string, detail string) *AppError {
	return &AppError{
		Type:       APIError,
		Code:       fmt.Sprintf("%d", status),
		Message:    message,
		Detail:     detail,
		HTTPStatus: status,
	}
}

// IsInvalidArgument reports whether err (or anything it wraps) is a validation error.
func IsInvalidArgument(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Type == ValidationError
}

// AsAPIError extracts the API failure carried by err, if any.
func AsAPIError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr.Type == APIError {
		return appErr, true
	}
	return nil, false
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case APIError, ServerError:
		// The gateway fails on its own only when the weather service is unreachable.
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
