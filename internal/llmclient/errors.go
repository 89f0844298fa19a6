package llmclient

import (
	"errors"
	"fmt"
)

// ErrNotConfigured reports a missing gateway credential. The condition is
// detected when a client is built; AI-backed features surface it on every
// call while the deterministic footprint path stays available.
var ErrNotConfigured = errors.New("chat gateway api key is not configured")

// RequestError reports a transport failure, timeout, or non-2xx status from
// the chat gateway.
type RequestError struct {
	StatusCode int    // zero when the request never completed
	Body       string // response body excerpt when available
	Err        error  // transport error when the request never completed
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("chat gateway request failed: %v", e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("chat gateway returned status %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("chat gateway returned status %d", e.StatusCode)
}

func (e *RequestError) Unwrap() error { return e.Err }

// FormatError reports a success status whose body lacks the expected reply
// field. Callers treat it identically to a failed call.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "unexpected chat gateway response format: " + e.Reason
}
