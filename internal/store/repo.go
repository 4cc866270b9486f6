package store

import (
	"context"
	"time"

	"github.com/jeevibe/jeevibe/ent"
)

// AnswerEventData captures one graded or skipped answer.
type AnswerEventData struct {
	SessionID     string
	Kind          string
	QuestionID    string
	Subject       string
	Chapter       string
	Answer        string
	CorrectAnswer string
	Correct       bool
	Skipped       bool
	TimeTakenSecs int
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID      string
	Kind           string
	Action         string // start, complete, abandon
	TotalQuestions int
	CorrectAnswers int
	Passed         bool
	SummarySource  string
	DurationSecs   int
}

// APIRequestEventData captures one backend API call.
type APIRequestEventData struct {
	Endpoint     string
	Method       string
	StatusCode   int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// TutorRequestEventData captures one AI tutor call.
type TutorRequestEventData struct {
	Provider     string
	Model        string
	QuestionID   string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// SubjectStats aggregates answer outcomes for one subject.
type SubjectStats struct {
	Subject   string
	Attempted int
	Correct   int
}

// Accuracy returns the fraction of attempted answers that were correct.
func (s SubjectStats) Accuracy() float64 {
	if s.Attempted == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted)
}

// SessionRow is a completed-session line for the stats view.
type SessionRow struct {
	SessionID      string
	Kind           string
	TotalQuestions int
	CorrectAnswers int
	Passed         bool
	Timestamp      time.Time
}

// EventRepo provides append and query access to the local event log.
type EventRepo interface {
	// AppendAnswer records a graded or skipped answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendSession records a session lifecycle event.
	AppendSession(ctx context.Context, data SessionEventData) error

	// AppendAPIRequest records a backend API call.
	AppendAPIRequest(ctx context.Context, data APIRequestEventData) error

	// AppendTutorRequest records an AI tutor call.
	AppendTutorRequest(ctx context.Context, data TutorRequestEventData) error

	// SubjectAccuracy aggregates per-subject answer stats, skipped
	// answers excluded.
	SubjectAccuracy(ctx context.Context) ([]SubjectStats, error)

	// RecentSessions returns the latest completed sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRow, error)

	// CompletedSessionTimes returns timestamps of all completed
	// sessions, newest first. Used for streak computation.
	CompletedSessionTimes(ctx context.Context) ([]time.Time, error)
}

// eventRepo implements EventRepo on the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)
