package goAuthClient

import (
	"errors"
	"fmt"
)

var (
	// ErrClientNotReady is an exported constant or variable used by the authentication client.
	ErrClientNotReady = errors.New("client not initialized")
	// ErrRequestInFlight is an exported constant or variable used by the authentication client.
	ErrRequestInFlight = errors.New("request already in flight")
	// ErrValidationFailed is an exported constant or variable used by the authentication client.
	ErrValidationFailed = errors.New("registration validation failed")
	// ErrRequestFailed is an exported constant or variable used by the authentication client.
	ErrRequestFailed = errors.New("request failed")
	// ErrTokenInvalid is an exported constant or variable used by the authentication client.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrNoToken is an exported constant or variable used by the authentication client.
	ErrNoToken = errors.New("no token present")
)

// RequestError is a failed API round trip: a transport failure or a non-2xx
// response. Message is the human-readable text for the UI, taken from the
// response body's "error" field when present, else the per-operation
// fallback. RequestError matches [ErrRequestFailed] under [errors.Is].
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
}

// Error describes the error operation and its observable behavior.
func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap describes the unwrap operation and its observable behavior.
func (e *RequestError) Unwrap() error {
	return ErrRequestFailed
}

// requestMessage extracts the UI message from err, falling back when err is
// not a RequestError.
func requestMessage(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}
