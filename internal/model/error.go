// internal/model/error.go
package model

import "errors"

// Application-wide sentinel errors. webutil maps these to HTTP status codes.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrUserNotFound   = errors.New("user not found or invalid")
	ErrConflict       = errors.New("resource conflict")
)

// ErrorDetail is the error payload sent to API clients.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse wraps an ErrorDetail for JSON error responses.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError carries a machine-readable code and a user-facing message while
// wrapping the underlying sentinel for errors.Is checks.
type AppError struct {
	Detail ErrorDetail
	err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		err: err,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return e.Detail.Code + ": " + e.Detail.Message + " (" + e.err.Error() + ")"
	}
	return e.Detail.Code + ": " + e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}
