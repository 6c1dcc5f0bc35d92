package core

import "errors"

// Error codes returned in API error bodies.
const (
	ErrCodeHeroNotFound = "hero_not_found"
	ErrCodeBadRequest   = "bad_request"
	ErrCodeRateLimited  = "rate_limited"
	ErrCodeInternal     = "internal"
)

var (
	ErrHeroNotFound = errors.New("hero not found")
	ErrBadRequest   = errors.New("bad request")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

// Is lets errors.Is match a CoreError against the package sentinels by code.
func (e *CoreError) Is(target error) bool {
	switch target {
	case ErrHeroNotFound:
		return e.Code == ErrCodeHeroNotFound
	case ErrBadRequest:
		return e.Code == ErrCodeBadRequest
	}
	return false
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}
