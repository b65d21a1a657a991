package engines

import (
	"errors"
	"fmt"
)

// Error codes classifying backend failures.
const (
	CodeResourceExhausted = "resource_exhausted"
	CodeTimeout           = "timeout"
	CodeBackendError      = "backend_error"
	CodeBadResponse       = "bad_response"
)

// ErrBackendUnavailable is returned when the model runner cannot be
// reached at all.
var ErrBackendUnavailable = errors.New("model backend unavailable")

// Error is a classified engine failure. Resource and timeout errors are
// retryable; the orchestrator responds by halving the batch once.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsRetryable reports whether retrying at a reduced batch size can help.
func (e *Error) IsRetryable() bool {
	switch e.Code {
	case CodeResourceExhausted, CodeTimeout:
		return true
	}
	return false
}

// NewError creates a classified engine error.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError creates a classified engine error around a cause.
func WrapError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// IsResourceError reports whether err is a retryable resource failure.
func IsResourceError(err error) bool {
	var engineErr *Error
	if errors.As(err, &engineErr) {
		return engineErr.IsRetryable()
	}
	return false
}
