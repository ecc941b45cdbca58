package gwerr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a gateway failure for status-code mapping.
type Kind int

const (
	// KindInvalidRequest covers caller-correctable problems: malformed
	// payloads, missing required fields, unknown operation types, and
	// client-facing rejections relayed from Stripe.
	KindInvalidRequest Kind = iota
	// KindTransport covers network failures reaching Stripe.
	KindTransport
	// KindSecretStore covers failed credential-store calls.
	KindSecretStore
	// KindSerialization covers structural JSON decode/encode failures.
	KindSerialization
	// KindUnexpected covers everything not otherwise classified.
	KindUnexpected
)

var kindPrefix = map[Kind]string{
	KindInvalidRequest: "invalid request",
	KindTransport:      "stripe api error",
	KindSecretStore:    "secret store error",
	KindSerialization:  "serialization error",
	KindUnexpected:     "unexpected error",
}

// Error is the single error type every gateway stage returns.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return kindPrefix[e.Kind] + ": " + msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidRequest builds a caller-correctable error.
func InvalidRequest(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

// Transport wraps a network failure reaching Stripe.
func Transport(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}

// SecretStore wraps a failed credential-store call.
func SecretStore(err error) *Error {
	return &Error{Kind: KindSecretStore, Err: err}
}

// Serialization wraps a structural JSON failure.
func Serialization(err error) *Error {
	return &Error{Kind: KindSerialization, Err: err}
}

// Unexpected builds an unclassified error.
func Unexpected(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnexpected, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err when it is (or wraps) a gateway error.
func KindOf(err error) (Kind, bool) {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Kind, true
	}
	return KindUnexpected, false
}

// StatusOf maps err to the envelope status code. Errors that did not come
// from a gateway stage map to 500.
func StatusOf(err error) int {
	kind, ok := KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case KindInvalidRequest, KindSerialization:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
