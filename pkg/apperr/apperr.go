package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of failure across all workflows.
type Code string

const (
	// Generic
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"

	// Authentication
	CodeAuthHeaderMissing   Code = "AUTH_HEADER_MISSING"
	CodeAuthHeaderMalformed Code = "AUTH_HEADER_MALFORMED"
	CodeTokenMissing        Code = "TOKEN_MISSING"
	CodeTokenInvalid        Code = "TOKEN_INVALID"
	CodeCredentialMismatch  Code = "CREDENTIAL_MISMATCH"
	CodeNotVerified         Code = "NOT_VERIFIED"

	// Registration / verification
	CodeUsernameExists  Code = "USERNAME_EXISTS"
	CodeEmailExists     Code = "EMAIL_EXISTS"
	CodePasswordPolicy  Code = "PASSWORD_POLICY"
	CodeCodeMismatch    Code = "CODE_MISMATCH"
	CodeOTPMismatch     Code = "OTP_MISMATCH"
	CodeContactConflict Code = "CONTACT_EXISTS"

	// Collaborators
	CodeStore Code = "STORE_ERROR"
	CodeMail  Code = "MAIL_ERROR"
)

// Error is a structured error carrying a code, a caller-facing message and an
// optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatusCode returns the HTTP status this error maps to.
func (e *Error) HTTPStatusCode() int {
	return StatusForCode(e.Code)
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a code and message. Returns nil when err
// is nil so call sites can wrap unconditionally.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the code from an error, defaulting to CodeInternal for
// unstructured errors.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// StatusForCode maps error codes to HTTP status codes. The mapping follows
// the API surface: missing input, conflicts and store failures answer 400,
// missing tokens 401, invalid tokens 403.
func StatusForCode(code Code) int {
	switch code {
	case CodeInvalidInput, CodeAuthHeaderMissing, CodeAuthHeaderMalformed,
		CodeCredentialMismatch, CodeCodeMismatch, CodeConflict,
		CodeUsernameExists, CodeEmailExists, CodeContactConflict,
		CodeStore, CodeMail:
		return http.StatusBadRequest

	case CodeTokenMissing, CodeOTPMismatch, CodePasswordPolicy:
		return http.StatusUnauthorized

	case CodeTokenInvalid, CodeNotVerified:
		return http.StatusForbidden

	case CodeNotFound:
		return http.StatusNotFound

	case CodeInternal:
		fallthrough
	default:
		return http.StatusInternalServerError
	}
}
