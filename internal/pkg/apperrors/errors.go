package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied   = errors.New("permission denied")
	ErrAccountNotVerified = errors.New("account not verified by admin yet")
	ErrAccountDeactivated = errors.New("account has been deactivated")

	// Validation errors
	ErrBadRequest = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound              = errors.New("user not found")
	ErrEmailAlreadyExists        = errors.New("email already registered")
	ErrCollegeEmailAlreadyExists = errors.New("college email already registered")
)

// Job errors
var (
	ErrJobNotFound         = errors.New("job not found")
	ErrJobInactive         = errors.New("job not found or inactive")
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrApplicationNotFound = errors.New("application not found")
)

// Chat errors
var (
	ErrMessageNotFound = errors.New("message not found")
)

// CustomError carries an application error with a client-facing message
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the wrapped sentinel for errors.Is
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewForbiddenError wraps ErrPermissionDenied with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError wraps ErrBadRequest with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewUnauthorizedError wraps ErrInvalidCredentials with a message
func NewUnauthorizedError(message string) error {
	return &CustomError{Err: ErrInvalidCredentials, Message: message}
}
