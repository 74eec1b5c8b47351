package core

import (
	"errors"

	"github.com/vovakirdan/ircbar/internal/baritem"
	"github.com/vovakirdan/ircbar/internal/info"
	"github.com/vovakirdan/ircbar/internal/relay"
)

// Error codes for domain errors.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnknownItem   = "unknown_item"
	ErrCodeUnknownBuffer = "unknown_buffer"
	ErrCodeUnknownInfo   = "unknown_info"
	ErrCodeInvalidFilter = "invalid_filter"
	ErrCodeNotFound      = "not_found"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeRateLimited   = "rate_limited"
	ErrCodeUnavailable   = "unavailable"
	ErrCodeInternal      = "internal"
)

var (
	ErrUnknownBuffer = errors.New("unknown buffer")
	ErrBadRequest    = errors.New("bad request")
)

// CoreError wraps a code and human-readable message.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func coreError(code, msg string) *CoreError {
	return &CoreError{Code: code, Message: msg}
}

// Classify maps an error returned by the engine to a CoreError.
func Classify(err error) *CoreError {
	var ce *CoreError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &ce):
		return ce
	case errors.Is(err, ErrBadRequest):
		return coreError(ErrCodeBadRequest, err.Error())
	case errors.Is(err, baritem.ErrUnknownProvider):
		return coreError(ErrCodeUnknownItem, err.Error())
	case errors.Is(err, ErrUnknownBuffer):
		return coreError(ErrCodeUnknownBuffer, err.Error())
	case errors.Is(err, info.ErrUnknownInfo):
		return coreError(ErrCodeUnknownInfo, err.Error())
	case errors.Is(err, relay.ErrInvalidStatus):
		return coreError(ErrCodeInvalidFilter, err.Error())
	case errors.Is(err, relay.ErrStaleClient):
		return coreError(ErrCodeNotFound, err.Error())
	case errors.Is(err, ErrStopped):
		return coreError(ErrCodeUnavailable, err.Error())
	default:
		return coreError(ErrCodeInternal, "internal error")
	}
}
