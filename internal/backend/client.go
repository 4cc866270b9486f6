package backend

import (
	"context"

	"github.com/jeevibe/jeevibe/internal/quiz"
)

// SubmitRequest carries one answer to the grader. Exactly one network
// call is made per invocation; requests are never cached client-side.
// AttemptID identifies the submission across retries so the server can
// deduplicate a retry of a call that actually landed.
type SubmitRequest struct {
	SessionID        string `json:"session_id"`
	QuestionID       string `json:"question_id"`
	AttemptID        string `json:"attempt_id"`
	Answer           string `json:"answer"`
	TimeTakenSeconds int    `json:"time_taken_seconds"`
}

// Client is the gateway to the JEEVibe quiz API.
type Client interface {
	// DailyQuiz fetches today's quiz manifest for the signed-in user.
	DailyQuiz(ctx context.Context) (*quiz.Manifest, error)

	// ChapterQuiz fetches a practice manifest for a chapter. count <= 0
	// means the server default.
	ChapterQuiz(ctx context.Context, subject, chapter string, count int) (*quiz.Manifest, error)

	// SubmitAnswer grades one answer and returns the full record,
	// including the worked explanation.
	SubmitAnswer(ctx context.Context, req SubmitRequest) (*quiz.AnswerRecord, error)

	// CompleteSession finalizes the session server-side. Returns
	// ErrAlreadyCompleted when the server had already finalized it
	// (e.g. a retry after a timeout on a call that actually landed).
	CompleteSession(ctx context.Context, sessionID string) (*quiz.SessionSummary, error)
}
