// Package apperr declares the error kinds surfaced to HTTP clients (spec §7)
// and the internal kinds that never cross the HTTP boundary directly.
package apperr

import (
	"errors"
	"net/http"
)

// Kind is one of the five client-visible error categories.
type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindUnauthorized    Kind = "unauthorized"
	KindBadRequest      Kind = "bad_request"
	KindNotFound        Kind = "not_found"
	KindInternal        Kind = "internal"
)

// HTTPStatus maps a Kind to its response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindUnauthorized:
		return http.StatusForbidden
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a client-visible error: a kind plus the message shown verbatim
// to the caller (spec §7 — "everything else surfaces the raw error
// message").
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// New builds a client-visible error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Unauthenticated(message string) *Error { return New(KindUnauthenticated, message) }
func Unauthorized(message string) *Error    { return New(KindUnauthorized, message) }
func BadRequest(message string) *Error      { return New(KindBadRequest, message) }
func NotFound(message string) *Error        { return New(KindNotFound, message) }
func Internal(message string) *Error        { return New(KindInternal, message) }

// As extracts an *Error from err, if present.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// ── Internal kinds — never returned directly to an HTTP caller ──

// ErrProviderHTTP is returned when the FIDS provider responds with a
// non-success status. It aborts the current sync run (spec §4.3, §7).
var ErrProviderHTTP = errors.New("fids provider returned a non-success response")

// ErrProviderParse marks a single unparseable FIDS row. The Sync Engine
// skips the row and continues; it never escapes the sync package.
var ErrProviderParse = errors.New("fids row could not be parsed")
