package apperrors

import "errors"

// Resource errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
)

// Authentication and authorization errors
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrPermissionDenied   = errors.New("permission denied")
)

// Input errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrUploadRejected   = errors.New("upload rejected")
)

// Domain specific errors
var (
	ErrAccountNotFound    = NewResourceNotFoundError("User not found")
	ErrJobNotFound        = NewResourceNotFoundError("Job not found")
	ErrEmailAlreadyExists = NewConflictError("User already exists")
	ErrAlreadyApplied     = NewConflictError("Already applied to this job")
	ErrJobNotApproved     = NewForbiddenError("Job not approved yet")
	ErrJobExpired         = NewForbiddenError("Job has expired")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a validation error, optionally with per-field messages
func NewValidationError(message string, fields map[string]string) error {
	e := &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
	if len(fields) > 0 {
		details := make(map[string]interface{}, len(fields))
		for k, v := range fields {
			details[k] = v
		}
		e.Details = details
	}
	return e
}

// NewMalformedPayloadError reports a structured form field that is not valid JSON
func NewMalformedPayloadError(field string, cause error) error {
	return &CustomError{
		Err:     ErrMalformedPayload,
		Message: "Invalid JSON in field '" + field + "'",
		Details: map[string]interface{}{"field": field, "reason": cause.Error()},
	}
}

// NewUploadRejectedError reports a file that failed type or integrity checks
func NewUploadRejectedError(message string) error {
	return &CustomError{
		Err:     ErrUploadRejected,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// As extracts the outermost CustomError from an error chain
func As(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
