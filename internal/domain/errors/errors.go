package errors

import (
	"fmt"
	"net/http"
	"time"

	"uiagate/internal/errors"
)

// Matrix error codes surfaced to clients.
const (
	CodeBadJSON         = "M_BAD_JSON"
	CodeInvalidParam    = "M_INVALID_PARAM"
	CodeForbidden       = "M_FORBIDDEN"
	CodeUnauthorized    = "M_UNAUTHORIZED"
	CodeMissingToken    = "M_MISSING_TOKEN"
	CodeInvalidUsername = "M_INVALID_USERNAME"
	CodeUserInUse       = "M_USER_IN_USE"
	CodeNotFound        = "M_NOT_FOUND"
	CodeUnrecognized    = "M_UNRECOGNIZED"
	CodeTooLarge        = "M_TOO_LARGE"
	CodeUnknown         = "M_UNKNOWN"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Matrix errcode
	Message() string   // Human-readable reason
	Details() string   // Server-side detail, never rendered for 5xx
}

// RetryAfter is implemented by errors that tell the client when to try again.
type RetryAfter interface {
	RetryAfter() time.Duration
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithMessage returns a copy carrying a different client-facing message.
func (e *BaseError) WithMessage(format string, args ...any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   fmt.Sprintf(format, args...),
		details:   e.details,
	}
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same status and errcode, so copies made by
// WithMessage still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.httpCode == t.httpCode && e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Request shape
	ErrBadJSON = NewBaseError(
		http.StatusBadRequest,
		CodeBadJSON,
		"Could not parse request",
		"",
	)

	ErrInvalidParam = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidParam,
		"Invalid parameter",
		"",
	)

	// Gate outcomes
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		CodeForbidden,
		"Forbidden",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthorized,
		"Invalid access token",
		"",
	)

	ErrMissingToken = NewBaseError(
		http.StatusUnauthorized,
		CodeMissingToken,
		"Missing access token",
		"",
	)

	// ErrStageNotAdvertised rejects a submission for a stage no flow of the
	// route offers.
	ErrStageNotAdvertised = NewBaseError(
		http.StatusForbidden,
		CodeInvalidParam,
		"Invalid auth type",
		"",
	)

	ErrSessionNotFound = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidParam,
		"Unknown UIA session",
		"",
	)

	// Username enrollment
	ErrInvalidUsername = NewBaseError(
		http.StatusForbidden,
		CodeInvalidUsername,
		"Invalid username",
		"",
	)

	ErrUsernameCharset = NewBaseError(
		http.StatusBadRequest,
		CodeInvalidUsername,
		"Username must consist of ONLY alphanumeric characters and dot, dash, and underscore",
		"",
	)

	ErrUsernameUnavailable = NewBaseError(
		http.StatusForbidden,
		CodeInvalidUsername,
		"Username is not available",
		"",
	)

	ErrReservationLost = NewBaseError(
		http.StatusForbidden,
		CodeUserInUse,
		"Username reservation is no longer held by this session",
		"",
	)

	// Registration tokens
	ErrRegistrationTokenInvalid = NewBaseError(
		http.StatusForbidden,
		CodeForbidden,
		"Invalid registration token",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"Not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeUnknown,
		"Internal server error",
		"",
	)
)

// PendingError reports a username someone else is actively registering.
type PendingError struct {
	retryAfter time.Duration
}

// NewPendingError creates a pending-reservation rejection that expires after retryAfter.
func NewPendingError(retryAfter time.Duration) *PendingError {
	if retryAfter < 0 {
		retryAfter = 0
	}

	return &PendingError{retryAfter: retryAfter}
}

func (e *PendingError) Error() string {
	return e.Message()
}

func (e *PendingError) HTTPCode() int {
	return http.StatusForbidden
}

func (e *PendingError) ErrorCode() string {
	return CodeInvalidUsername
}

func (e *PendingError) Message() string {
	return fmt.Sprintf("Username is pending. Try again in %d seconds.", int(e.retryAfter.Round(time.Second).Seconds()))
}

func (e *PendingError) Details() string {
	return ""
}

// RetryAfter returns how long until the competing claim goes stale.
func (e *PendingError) RetryAfter() time.Duration {
	return e.retryAfter
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is / errors.As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeUnknown
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
