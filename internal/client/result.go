package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches failures caused by a 404 from the backend.
var ErrNotFound = errors.New("not found")

// FailureKind classifies why a call failed.
type FailureKind string

const (
	// FailureTransport means the request never got a response.
	FailureTransport FailureKind = "transport"
	// FailureNotFound means the backend answered 404.
	FailureNotFound FailureKind = "not_found"
	// FailureStatus means the backend answered with another non-2xx status.
	FailureStatus FailureKind = "status"
	// FailureDecode means the response body could not be decoded.
	FailureDecode FailureKind = "decode"
	// FailureCanceled means the caller's context ended first.
	FailureCanceled FailureKind = "canceled"
)

// Failure describes a failed service call.
type Failure struct {
	Op     string
	Kind   FailureKind
	Status int
	Err    error
}

func (f *Failure) Error() string {
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is reports a not-found failure as ErrNotFound.
func (f *Failure) Is(target error) bool {
	return target == ErrNotFound && f.Kind == FailureNotFound
}

func statusFailure(method, path string, status int) *Failure {
	kind := FailureStatus
	if status == http.StatusNotFound {
		kind = FailureNotFound
	}
	return &Failure{
		Kind:   kind,
		Status: status,
		Err:    fmt.Errorf("http failure response for %s %s: %d %s", method, path, status, http.StatusText(status)),
	}
}

// Ack is the empty acknowledgement returned by update and delete.
type Ack struct{}

// Result carries either a value or a failure.
// On failure Value holds the fallback the service substituted,
// so callers that accept the default can read Value directly.
type Result[T any] struct {
	Value T
	Err   error
}

// Failed reports whether the call failed.
func (r Result[T]) Failed() bool {
	return r.Err != nil
}

// Or returns Value on success and fallback on failure.
func (r Result[T]) Or(fallback T) T {
	if r.Err != nil {
		return fallback
	}
	return r.Value
}

// Failure returns the classified failure, or nil on success.
func (r Result[T]) Failure() *Failure {
	var f *Failure
	if errors.As(r.Err, &f) {
		return f
	}
	return nil
}

func ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}
