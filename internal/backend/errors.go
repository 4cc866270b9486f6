package backend

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAuthRequired means the request had no usable ID token or the
	// server rejected it. The user must re-authenticate; nothing is
	// retried automatically.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAlreadyCompleted means the server reports the session as
	// finalized. Callers treat this as a success path and fall back to
	// a locally synthesized summary.
	ErrAlreadyCompleted = errors.New("session already completed")

	// ErrClientOutdated means the server's minimum supported client
	// version is newer than this build.
	ErrClientOutdated = errors.New("client version no longer supported")
)

// RequestError describes a failed API call. Network errors carry a zero
// StatusCode.
type RequestError struct {
	Endpoint   string
	StatusCode int
	Body       string
	RetryAfter time.Duration
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("%s: HTTP %d", e.Endpoint, e.StatusCode)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Retryable reports whether the failure is worth offering a retry for:
// network errors, rate limits, and server-side errors. Client errors
// (4xx other than 429) indicate a bad request and retrying the same
// payload cannot succeed.
func (e *RequestError) Retryable() bool {
	if e.StatusCode == 0 {
		return true
	}
	return e.StatusCode == 429 || e.StatusCode >= 500
}
