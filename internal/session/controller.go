package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jeevibe/jeevibe/internal/backend"
	"github.com/jeevibe/jeevibe/internal/quiz"
	"github.com/jeevibe/jeevibe/internal/store"
)

// Controller drives one quiz session: it owns the state, talks to the
// grading backend, and records outcomes in the local event log. All
// methods are called from the UI event loop; the only concurrency
// hazard is an in-flight network call overlapping a second trigger,
// guarded by the inflight flag.
type Controller struct {
	policy Policy
	state  *State
	client backend.Client
	events store.EventRepo // may be nil

	inflight atomic.Bool

	startedAt         time.Time
	questionStartedAt time.Time

	summary *quiz.SessionSummary

	now func() time.Time
}

// NewController builds a controller for a server-issued manifest, with
// the policy derived from the manifest's session kind. events may be
// nil; event logging is best-effort either way.
func NewController(m *quiz.Manifest, client backend.Client, events store.EventRepo) *Controller {
	return NewControllerWithPolicy(m, PolicyFor(m.Kind), client, events)
}

// NewControllerWithPolicy builds a controller with an explicit policy.
func NewControllerWithPolicy(m *quiz.Manifest, policy Policy, client backend.Client, events store.EventRepo) *Controller {
	return &Controller{
		policy: policy,
		state:  NewState(m),
		client: client,
		events: events,
		now:    time.Now,
	}
}

// Start stamps the session and question timers and records the start
// event. Call once, before the first Submit.
func (c *Controller) Start(ctx context.Context) {
	c.startedAt = c.now()
	c.questionStartedAt = c.startedAt
	c.logSession(ctx, store.ActionStart, nil)
}

// State exposes the session state for read-only queries by the view.
func (c *Controller) State() *State { return c.state }

// Policy returns the session's policy.
func (c *Controller) Policy() Policy { return c.policy }

// Elapsed returns time spent on the current question.
func (c *Controller) Elapsed() time.Duration {
	if c.questionStartedAt.IsZero() {
		return 0
	}
	return c.now().Sub(c.questionStartedAt)
}

// Summary returns the session summary, or nil before completion.
func (c *Controller) Summary() *quiz.SessionSummary { return c.summary }

// Submit grades the given answer for the current question. Exactly one
// network call is made; on failure the submission is held in the retry
// slot (when the policy allows retries) and the error is returned.
func (c *Controller) Submit(ctx context.Context, answer string) (*quiz.AnswerRecord, error) {
	if c.state.IsComplete() {
		return nil, &InvalidStateError{Op: "submit", Reason: "session already complete"}
	}
	if answer == "" {
		return nil, &InvalidStateError{Op: "submit", Reason: "no answer selected"}
	}
	q := c.state.CurrentQuestion()
	if q == nil {
		return nil, &InvalidStateError{Op: "submit", Reason: "no current question"}
	}
	if c.state.IsAnswered(q.ID) {
		return nil, &InvalidStateError{Op: "submit", Reason: "question " + q.ID + " already graded"}
	}

	elapsed := int(c.Elapsed().Seconds())
	return c.submit(ctx, q.ID, uuid.NewString(), answer, elapsed)
}

// RetryFailed re-sends the held failed submission with its original
// attempt ID, answer, and elapsed time.
func (c *Controller) RetryFailed(ctx context.Context) (*quiz.AnswerRecord, error) {
	pending := c.state.Pending()
	if pending == nil {
		return nil, &InvalidStateError{Op: "retry", Reason: "no failed submission pending"}
	}
	return c.submit(ctx, pending.QuestionID, pending.AttemptID, pending.Answer, pending.ElapsedSeconds)
}

// DismissFailed drops the held failed submission without retrying.
func (c *Controller) DismissFailed() {
	c.state.pending = nil
}

// submit performs the guarded network call and merges the result.
func (c *Controller) submit(ctx context.Context, questionID, attemptID, answer string, elapsed int) (*quiz.AnswerRecord, error) {
	if !c.inflight.CompareAndSwap(false, true) {
		return nil, &InvalidStateError{Op: "submit", Reason: "submission already in flight"}
	}
	defer c.inflight.Store(false)

	rec, err := c.client.SubmitAnswer(ctx, backend.SubmitRequest{
		SessionID:        c.state.ID,
		QuestionID:       questionID,
		AttemptID:        attemptID,
		Answer:           answer,
		TimeTakenSeconds: elapsed,
	})
	if err != nil {
		// Last failure wins: a new failed submission replaces any
		// previously held one.
		if c.policy.AllowsRetry {
			c.state.pending = &PendingAnswer{
				QuestionID:     questionID,
				AttemptID:      attemptID,
				Answer:         answer,
				ElapsedSeconds: elapsed,
				Err:            err,
			}
		}
		return nil, err
	}

	if p := c.state.Pending(); p != nil && p.QuestionID == questionID {
		c.state.pending = nil
	}
	if err := c.state.recordAnswer(rec); err != nil {
		return nil, err
	}
	c.logAnswer(ctx, rec)
	return rec, nil
}

// Skip excludes the current question from the session. Only malformed
// questions may be skipped; well-formed ones must be answered.
func (c *Controller) Skip(ctx context.Context) error {
	q := c.state.CurrentQuestion()
	if q == nil {
		return &InvalidStateError{Op: "skip", Reason: "no current question"}
	}
	if err := q.Validate(); err == nil {
		return &InvalidStateError{Op: "skip", Reason: "question " + q.ID + " is well-formed"}
	}
	c.state.markSkipped(q.ID)
	c.logSkip(ctx, q)
	return nil
}

// Advance moves to the next question once the current one is resolved.
// On the last question it finalizes the session instead and returns
// the summary; otherwise the summary is nil.
func (c *Controller) Advance(ctx context.Context) (*quiz.SessionSummary, error) {
	if c.state.IsComplete() {
		return nil, &InvalidStateError{Op: "advance", Reason: "session already complete"}
	}
	if !c.state.currentResolved() {
		return nil, &InvalidStateError{Op: "advance", Reason: "current question unanswered"}
	}
	if !c.state.HasMoreQuestions() {
		return c.Complete(ctx)
	}
	c.state.advance()
	c.questionStartedAt = c.now()
	return nil, nil
}

// Complete finalizes the session server-side. A server report that the
// session was already completed (a retry after a timeout on a call
// that landed) is a success: the summary is synthesized locally. Any
// other failure leaves the session open so the caller can retry.
func (c *Controller) Complete(ctx context.Context) (*quiz.SessionSummary, error) {
	if c.state.IsComplete() {
		return c.summary, nil
	}
	if !c.state.allResolved() {
		return nil, &InvalidStateError{Op: "complete", Reason: "unanswered questions remain"}
	}
	if !c.inflight.CompareAndSwap(false, true) {
		return nil, &InvalidStateError{Op: "complete", Reason: "request already in flight"}
	}
	defer c.inflight.Store(false)

	summary, err := c.client.CompleteSession(ctx, c.state.ID)
	switch {
	case err == nil:
	case errors.Is(err, backend.ErrAlreadyCompleted):
		summary = c.localSummary()
	default:
		return nil, err
	}

	c.state.complete = true
	c.summary = summary
	c.logSession(ctx, store.ActionComplete, summary)
	return summary, nil
}

// LocalSummary synthesizes a summary from local answer records. Used
// when completion keeps failing after every question is resolved, so
// the user still gets a result screen.
func (c *Controller) LocalSummary() (*quiz.SessionSummary, error) {
	if !c.state.allResolved() {
		return nil, &InvalidStateError{Op: "local summary", Reason: "unanswered questions remain"}
	}
	return c.localSummary(), nil
}

func (c *Controller) localSummary() *quiz.SessionSummary {
	correct := c.state.CorrectCount()
	perQuestion := make([]quiz.QuestionResult, 0, c.state.Total())
	for i := range c.state.Questions {
		q := &c.state.Questions[i]
		res := quiz.QuestionResult{QuestionID: q.ID}
		if rec, ok := c.state.Answer(q.ID); ok {
			res.Correct = rec.Correct
		} else {
			res.Skipped = true
		}
		perQuestion = append(perQuestion, res)
	}
	return &quiz.SessionSummary{
		SessionID:    c.state.ID,
		CorrectCount: correct,
		TotalCount:   c.state.Total(),
		Passed:       c.policy.Passed(correct),
		PerQuestion:  perQuestion,
		CompletedAt:  c.now(),
		Source:       quiz.SummaryFromLocal,
	}
}

// Abandon records that the user left the session without finishing.
func (c *Controller) Abandon(ctx context.Context) {
	if c.state.IsComplete() {
		return
	}
	c.logSession(ctx, store.ActionAbandon, nil)
}

func (c *Controller) logAnswer(ctx context.Context, rec *quiz.AnswerRecord) {
	if c.events == nil {
		return
	}
	var subject, chapter string
	for i := range c.state.Questions {
		if c.state.Questions[i].ID == rec.QuestionID {
			subject = c.state.Questions[i].Subject
			chapter = c.state.Questions[i].Chapter
			break
		}
	}
	err := c.events.AppendAnswer(ctx, store.AnswerEventData{
		SessionID:     c.state.ID,
		Kind:          string(c.state.Kind),
		QuestionID:    rec.QuestionID,
		Subject:       subject,
		Chapter:       chapter,
		Answer:        rec.Answer,
		CorrectAnswer: rec.CorrectAnswer,
		Correct:       rec.Correct,
		TimeTakenSecs: rec.TimeTakenSeconds,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log answer event: %v\n", err)
	}
}

func (c *Controller) logSkip(ctx context.Context, q *quiz.Question) {
	if c.events == nil {
		return
	}
	err := c.events.AppendAnswer(ctx, store.AnswerEventData{
		SessionID:  c.state.ID,
		Kind:       string(c.state.Kind),
		QuestionID: q.ID,
		Subject:    q.Subject,
		Chapter:    q.Chapter,
		Skipped:    true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log skip event: %v\n", err)
	}
}

func (c *Controller) logSession(ctx context.Context, action string, summary *quiz.SessionSummary) {
	if c.events == nil {
		return
	}
	data := store.SessionEventData{
		SessionID: c.state.ID,
		Kind:      string(c.state.Kind),
		Action:    action,
	}
	if summary != nil {
		data.TotalQuestions = summary.TotalCount
		data.CorrectAnswers = summary.CorrectCount
		data.Passed = summary.Passed
		data.SummarySource = string(summary.Source)
	}
	if !c.startedAt.IsZero() && action != store.ActionStart {
		data.DurationSecs = int(c.now().Sub(c.startedAt).Seconds())
	}
	if err := c.events.AppendSession(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
	}
}
