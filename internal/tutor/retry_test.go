package tutor

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrUnavailable{Err: errors.New("503")}},
		MockReply{Err: &ErrThrottled{Err: errors.New("429")}},
		MockReply{Text: "here is why"},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	reply, err := p.Chat(context.Background(), ChatRequest{
		Messages: []Message{{Role: RoleStudent, Content: "why b?"}},
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply.Text != "here is why" {
		t.Errorf("reply = %q, want %q", reply.Text, "here is why")
	}
	if got := mock.CallCount(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrUnavailable{}},
		MockReply{Err: &ErrUnavailable{}},
	)
	p := WithRetry(mock, fastRetryConfig(2))

	_, err := p.Chat(context.Background(), ChatRequest{})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want *ErrUnavailable", err)
	}
	if got := mock.CallCount(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: context.Canceled},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Chat(context.Background(), ChatRequest{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if got := mock.CallCount(); got != 1 {
		t.Errorf("calls = %d, want 1 (no retry on cancellation)", got)
	}
}

func TestRetryEmptyReplyOnlyOnce(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrEmptyReply{}},
		MockReply{Err: &ErrEmptyReply{}},
		MockReply{Text: "never reached"},
	)
	p := WithRetry(mock, fastRetryConfig(5))

	_, err := p.Chat(context.Background(), ChatRequest{})
	var empty *ErrEmptyReply
	if !errors.As(err, &empty) {
		t.Fatalf("err = %v, want *ErrEmptyReply", err)
	}
	if got := mock.CallCount(); got != 2 {
		t.Errorf("calls = %d, want 2 (one retry for empty replies)", got)
	}
}

func TestBackoffRespectsRetryAfter(t *testing.T) {
	r := &RetryProvider{config: fastRetryConfig(3)}

	wait := r.backoff(0, &ErrThrottled{RetryAfter: 42 * time.Millisecond})
	if wait != 42*time.Millisecond {
		t.Errorf("backoff = %v, want the server-provided 42ms", wait)
	}
}

func TestBackoffCappedAtMaxWait(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{
		MaxAttempts: 10,
		InitialWait: time.Second,
		MaxWait:     2 * time.Second,
		Multiplier:  10,
	}}

	// With ±20% jitter the cap can be exceeded by at most 20%.
	wait := r.backoff(5, &ErrUnavailable{})
	if wait > 2400*time.Millisecond {
		t.Errorf("backoff = %v, want ≤ 2.4s", wait)
	}
}
