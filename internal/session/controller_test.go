package session

import (
	"context"
	"errors"
	"testing"

	"github.com/jeevibe/jeevibe/internal/backend"
	"github.com/jeevibe/jeevibe/internal/quiz"
)

func newTestController(t *testing.T, n int) (*Controller, *backend.MockClient) {
	t.Helper()
	mock := backend.NewMockClient()
	c := NewController(testManifest(n), mock, nil)
	c.Start(context.Background())
	return c, mock
}

func queueGraded(mock *backend.MockClient, questionID string, correct bool) {
	mock.QueueSubmit(backend.MockSubmitResult{Record: gradedAnswer(questionID, correct)})
}

func queueNetworkError(mock *backend.MockClient) {
	mock.QueueSubmit(backend.MockSubmitResult{
		Err: &backend.RequestError{Endpoint: "/v1/sessions/s1/answers", Err: errors.New("connection reset")},
	})
}

// Three questions, two answered correctly. The whole flow: submit,
// advance, complete on the final advance.
func TestFullSessionFlow(t *testing.T) {
	ctx := context.Background()
	c, mock := newTestController(t, 3)

	answers := []struct {
		answer  string
		correct bool
	}{
		{"42", true}, {"7", false}, {"9.8", true},
	}

	var summary *quiz.SessionSummary
	for i, a := range answers {
		q := c.State().CurrentQuestion()
		queueGraded(mock, q.ID, a.correct)

		rec, err := c.Submit(ctx, a.answer)
		if err != nil {
			t.Fatalf("Submit(%d): %v", i, err)
		}
		if rec.Correct != a.correct {
			t.Errorf("Submit(%d).Correct = %v, want %v", i, rec.Correct, a.correct)
		}

		if i == len(answers)-1 {
			mock.QueueComplete(backend.MockCompleteResult{Summary: &quiz.SessionSummary{
				SessionID: "s1", CorrectCount: 2, TotalCount: 3, Passed: true,
				Source: quiz.SummaryFromServer,
			}})
		}
		summary, err = c.Advance(ctx)
		if err != nil {
			t.Fatalf("Advance(%d): %v", i, err)
		}
	}

	if summary == nil {
		t.Fatal("final Advance should return the summary")
	}
	if summary.CorrectCount != 2 || summary.TotalCount != 3 {
		t.Errorf("summary = %d/%d, want 2/3", summary.CorrectCount, summary.TotalCount)
	}
	if !c.State().IsComplete() {
		t.Error("session should be complete")
	}
	if got := len(mock.CompleteCalls); got != 1 {
		t.Errorf("complete calls = %d, want exactly 1", got)
	}
	if got := c.State().CorrectCount(); got != 2 {
		t.Errorf("CorrectCount() = %d, want 2", got)
	}
}

func TestSubmitFailureHoldsRetrySlot(t *testing.T) {
	ctx := context.Background()
	c, mock := newTestController(t, 2)

	queueNetworkError(mock)
	_, err := c.Submit(ctx, "42")
	if err == nil {
		t.Fatal("expected submit error")
	}

	pending := c.State().Pending()
	if pending == nil {
		t.Fatal("failed submission should be held for retry")
	}
	if pending.QuestionID != "q1" || pending.Answer != "42" {
		t.Errorf("pending = %+v, want q1/42", pending)
	}
	if c.State().IsAnswered("q1") {
		t.Error("failed submission must not create an answer record")
	}

	// Retry re-sends the identical stored payload and clears the slot.
	queueGraded(mock, "q1", true)
	rec, err := c.RetryFailed(ctx)
	if err != nil {
		t.Fatalf("RetryFailed: %v", err)
	}
	if !rec.Correct {
		t.Error("retry result should be recorded")
	}
	if c.State().Pending() != nil {
		t.Error("successful retry should clear the pending slot")
	}

	if len(mock.SubmitCalls) != 2 {
		t.Fatalf("submit calls = %d, want 2", len(mock.SubmitCalls))
	}
	first, second := mock.SubmitCalls[0], mock.SubmitCalls[1]
	if first != second {
		t.Errorf("retry payload %+v differs from original %+v", second, first)
	}
	if first.AttemptID == "" {
		t.Error("submission should carry an attempt ID")
	}
}

// A newer failure replaces the held one: last failure wins.
func TestPendingReplacedByNewerFailure(t *testing.T) {
	ctx := context.Background()
	c, mock := newTestController(t, 2)

	queueNetworkError(mock)
	_, _ = c.Submit(ctx, "first")

	queueNetworkError(mock)
	_, _ = c.Submit(ctx, "second")

	pending := c.State().Pending()
	if pending == nil || pending.Answer != "second" {
		t.Errorf("pending = %+v, want the later failure", pending)
	}
}

func TestDismissFailed(t *testing.T) {
	ctx := context.Background()
	c, mock := newTestController(t, 1)

	queueNetworkError(mock)
	_, _ = c.Submit(ctx, "42")

	c.DismissFailed()
	if c.State().Pending() != nil {
		t.Error("dismiss should clear the pending slot")
	}
	if _, err := c.RetryFailed(ctx); err == nil {
		t.Error("retry with nothing pending should fail")
	}
}

func TestNoRetrySlotWhenPolicyForbids(t *testing.T) {
	ctx := context.Background()
	mock := backend.NewMockClient()
	m := testManifest(1)
	m.Kind = quiz.SessionUnlock
	c := NewController(m, mock, nil)
	c.Start(ctx)

	queueNetworkError(mock)
	_, err := c.Submit(ctx, "42")
	if err == nil {
		t.Fatal("expected submit error")
	}
	if c.State().Pending() != nil {
		t.Error("unlock sessions do not hold failed submissions")
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestController(t, 2)

	_, err := c.Advance(ctx)
	if _, ok := err.(*InvalidStateError); !ok {
		t.Errorf("Advance on unanswered question = %v, want *InvalidStateError", err)
	}
	if got := c.State().CurrentIndex(); got != 0 {
		t.Errorf("index = %d, want unchanged 0", got)
	}
}

func TestCompleteRequiresAllResolved(t *testing.T) {
	ctx := context.Background()
	c, mock := newTestController(t, 2)

	queueGraded(mock, "q1", true)
	if _, err := c.Submit(ctx, "42"); err != nil {
		t.Fatal(err)
	}

	_, err := c.Complete(ctx)
	if _, ok := err.(*InvalidStateError); !ok {
		t.Errorf("Complete with open questions = %v, want *InvalidStateError", err)
	}
	if len(mock.CompleteCalls) != 0 {
		t.Error("no network call may be made before all questions resolve")
	}
}

func TestSubmitRejectedWhileInFlight(t *testing.T) {
	c, _ := newTestController(t, 1)

	c.inflight.Store(true)
	_, err := c.Submit(context.Background(), "42")
	var stateErr *InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("Submit while in flight = %v, want *InvalidStateError", err)
	}
}

func TestSubmitValidation(t *testing.T) {
	ctx := context.Background()
	c, mock := newTestController(t, 1)

	if _, err := c.Submit(ctx, ""); err == nil {
		t.Error("empty answer should be rejected before any network call")
	}
	if len(mock.SubmitCalls) != 0 {
		t.Error("rejected submit must not reach the backend")
	}

	queueGraded(mock, "q1", true)
	if _, err := c.Submit(ctx, "42"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Submit(ctx, "43"); err == nil {
		t.Error("re-submitting a graded question should be rejected")
	}
}

func TestAlreadyCompletedFallsBackToLocalSummary(t *testing.T) {
	ctx := context.Background()
	c, mock := newTestController(t, 2)

	for _, id := range []string{"q1", "q2"} {
		queueGraded(mock, id, true)
		if _, err := c.Submit(ctx, "42"); err != nil {
			t.Fatal(err)
		}
		if _, err := c.Advance(ctx); id == "q1" && err != nil {
			t.Fatal(err)
		}
	}

	// First attempt timed out client-side but landed server-side; the
	// retry sees "already completed" and must not surface an error.
	mock.QueueComplete(backend.MockCompleteResult{Err: backend.ErrAlreadyCompleted})
	summary, err := c.Complete(ctx)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if summary.Source != quiz.SummaryFromLocal {
		t.Errorf("summary.Source = %q, want local fallback", summary.Source)
	}
	if summary.CorrectCount != 2 || summary.TotalCount != 2 {
		t.Errorf("summary = %d/%d, want 2/2", summary.CorrectCount, summary.TotalCount)
	}
	if !c.State().IsComplete() {
		t.Error("fallback still finalizes the session")
	}
}

func TestCompleteIsIdempotentAfterSuccess(t *testing.T) {
	ctx := context.Background()
	c, mock := newTestController(t, 1)

	queueGraded(mock, "q1", true)
	if _, err := c.Submit(ctx, "42"); err != nil {
		t.Fatal(err)
	}

	mock.QueueComplete(backend.MockCompleteResult{Summary: &quiz.SessionSummary{
		SessionID: "s1", CorrectCount: 1, TotalCount: 1, Passed: true,
		Source: quiz.SummaryFromServer,
	}})

	first, err := c.Complete(ctx)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Complete(ctx)
	if err != nil {
		t.Fatalf("second Complete: %v", err)
	}
	if first != second {
		t.Error("second Complete should return the cached summary")
	}
	if len(mock.CompleteCalls) != 1 {
		t.Errorf("complete calls = %d, want 1", len(mock.CompleteCalls))
	}
}

func TestCompleteFailureLeavesSessionOpen(t *testing.T) {
	ctx := context.Background()
	c, mock := newTestController(t, 1)

	queueGraded(mock, "q1", true)
	if _, err := c.Submit(ctx, "42"); err != nil {
		t.Fatal(err)
	}

	mock.QueueComplete(backend.MockCompleteResult{
		Err: &backend.RequestError{Endpoint: "/v1/sessions/s1/complete", StatusCode: 503},
	})
	if _, err := c.Complete(ctx); err == nil {
		t.Fatal("expected completion error")
	}
	if c.State().IsComplete() {
		t.Error("failed completion must not finalize the session")
	}

	// Retry succeeds.
	mock.QueueComplete(backend.MockCompleteResult{Summary: &quiz.SessionSummary{
		SessionID: "s1", CorrectCount: 1, TotalCount: 1, Passed: true,
		Source: quiz.SummaryFromServer,
	}})
	if _, err := c.Complete(ctx); err != nil {
		t.Fatalf("retried Complete: %v", err)
	}
	if !c.State().IsComplete() {
		t.Error("session should be complete after a successful retry")
	}
}

func TestSkipOnlyMalformed(t *testing.T) {
	ctx := context.Background()
	m := testManifest(2)
	m.Questions[0].Prompt = "" // malformed: empty prompt
	mock := backend.NewMockClient()
	c := NewController(m, mock, nil)
	c.Start(ctx)

	if err := c.Skip(ctx); err != nil {
		t.Fatalf("Skip malformed: %v", err)
	}
	if !c.State().IsSkipped("q1") {
		t.Error("q1 should be skipped")
	}
	if _, err := c.Advance(ctx); err != nil {
		t.Fatalf("Advance past skipped: %v", err)
	}

	// q2 is well-formed and cannot be skipped.
	err := c.Skip(ctx)
	if _, ok := err.(*InvalidStateError); !ok {
		t.Errorf("Skip well-formed question = %v, want *InvalidStateError", err)
	}
}

func TestSkippedExcludedFromLocalSummary(t *testing.T) {
	ctx := context.Background()
	m := testManifest(3)
	m.Questions[1].Prompt = ""
	mock := backend.NewMockClient()
	c := NewController(m, mock, nil)
	c.Start(ctx)

	queueGraded(mock, "q1", true)
	if _, err := c.Submit(ctx, "42"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Advance(ctx); err != nil {
		t.Fatal(err)
	}
	if err := c.Skip(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Advance(ctx); err != nil {
		t.Fatal(err)
	}
	queueGraded(mock, "q3", false)
	if _, err := c.Submit(ctx, "7"); err != nil {
		t.Fatal(err)
	}

	summary, err := c.LocalSummary()
	if err != nil {
		t.Fatal(err)
	}
	if summary.CorrectCount != 1 || summary.TotalCount != 3 {
		t.Errorf("summary = %d/%d, want 1/3", summary.CorrectCount, summary.TotalCount)
	}
	var skipped int
	for _, r := range summary.PerQuestion {
		if r.Skipped {
			skipped++
		}
	}
	if skipped != 1 {
		t.Errorf("skipped results = %d, want 1", skipped)
	}
}

func TestSubmitAfterComplete(t *testing.T) {
	ctx := context.Background()
	c, mock := newTestController(t, 1)

	queueGraded(mock, "q1", true)
	if _, err := c.Submit(ctx, "42"); err != nil {
		t.Fatal(err)
	}
	mock.QueueComplete(backend.MockCompleteResult{Summary: &quiz.SessionSummary{
		SessionID: "s1", CorrectCount: 1, TotalCount: 1, Passed: true,
	}})
	if _, err := c.Advance(ctx); err != nil {
		t.Fatal(err)
	}

	_, err := c.Submit(ctx, "43")
	if _, ok := err.(*InvalidStateError); !ok {
		t.Errorf("Submit after complete = %v, want *InvalidStateError", err)
	}
}
