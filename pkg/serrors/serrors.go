// Package serrors implements semantic errors: a sentinel Kind describing what
// went wrong from the caller's point of view, optionally wrapping the concrete
// cause. The HTTP boundary only ever looks at the Kind; causes are for logs.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel).
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrUnauthorized indicates missing or invalid authentication that is not a
	// credentials check, e.g. an anonymous request to a session-only page.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL")
	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewKind("RATE_LIMITED")

	// ErrInvalidCredentials covers a missing user, a wrong password, a malformed
	// stored hash and a malformed Authorization header alike.
	ErrInvalidCredentials = NewKind("INVALID_CREDENTIALS")
	// ErrTokenNotFound indicates an unknown subscription confirmation token.
	ErrTokenNotFound = NewKind("TOKEN_NOT_FOUND")
	// ErrDispatchPartialFailure indicates one or more recipients of a newsletter
	// issue could not be reached. It never fails the publish request itself.
	ErrDispatchPartialFailure = NewKind("DISPATCH_PARTIAL_FAILURE")
)

// Error represents a semantic error carrying a kind, an optional wrapped cause
// and an optional message.
//
// errors.Is(err, target) matches either the kind or anything in the cause
// chain, and so does errors.As.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the kind or the wrapped cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the kind associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the outermost Kind found in err's chain. Errors without a
// kind are unexpected and reported as ErrInternal.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// Status maps the kind of err to the HTTP status code the boundary responds with.
func Status(err error) int {
	switch KindOf(err) {
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrUnauthorized, ErrInvalidCredentials, ErrTokenNotFound:
		return http.StatusUnauthorized
	case ErrRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the fixed, client-safe description of err's kind.
// It never includes the cause.
func PublicMessage(err error) string {
	switch KindOf(err) {
	case ErrBadRequest:
		return "invalid request"
	case ErrUnauthorized:
		return "authentication required"
	case ErrInvalidCredentials:
		return "authentication failed"
	case ErrTokenNotFound:
		return "unknown subscription token"
	case ErrRateLimited:
		return "too many requests"
	default:
		return "internal error"
	}
}
