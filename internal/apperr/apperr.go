package apperr

import "errors"

// Machine-readable error codes returned to API clients.
const (
	CodeNotFound  = "not_found"
	CodeInvalid   = "invalid_argument"
	CodeEmptyCart = "empty_cart"
	CodeConflict  = "conflict"
	CodeInternal  = "internal"
)

// Error is the failure type every service operation returns. Message is
// safe to show to a client; the wrapped cause is not.
type Error struct {
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

func NotFound(msg string) *Error  { return &Error{Code: CodeNotFound, Message: msg} }
func Invalid(msg string) *Error   { return &Error{Code: CodeInvalid, Message: msg} }
func EmptyCart(msg string) *Error { return &Error{Code: CodeEmptyCart, Message: msg} }
func Conflict(msg string) *Error  { return &Error{Code: CodeConflict, Message: msg} }

// Internal wraps a storage or infrastructure failure. The client only
// ever sees the generic message.
func Internal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: "internal error", cause: cause}
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// anything that is not an *Error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
