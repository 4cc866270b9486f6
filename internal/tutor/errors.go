package tutor

import (
	"fmt"
	"time"
)

// ErrThrottled indicates the provider rate-limited the request (429).
type ErrThrottled struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrThrottled) Error() string {
	return fmt.Sprintf("tutor rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrThrottled) Unwrap() error { return e.Err }

// ErrUnavailable indicates the provider is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tutor unavailable: %v", e.Err)
	}
	return "tutor unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrEmptyReply indicates the provider returned no usable text.
type ErrEmptyReply struct{}

func (e *ErrEmptyReply) Error() string { return "tutor returned an empty reply" }
