package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jeevibe/jeevibe/internal/quiz"
	"github.com/jeevibe/jeevibe/internal/store"
)

// LoggingClient is a decorator that records every gateway call as an
// event in the local store.
type LoggingClient struct {
	inner Client
	repo  store.EventRepo
}

// WithLogging wraps a Client with event logging.
func WithLogging(c Client, repo store.EventRepo) Client {
	return &LoggingClient{inner: c, repo: repo}
}

var _ Client = (*LoggingClient)(nil)

func (l *LoggingClient) DailyQuiz(ctx context.Context) (*quiz.Manifest, error) {
	start := time.Now()
	m, err := l.inner.DailyQuiz(ctx)
	l.log(ctx, "/v1/quizzes/daily", http.MethodGet, start, err)
	return m, err
}

func (l *LoggingClient) ChapterQuiz(ctx context.Context, subject, chapter string, count int) (*quiz.Manifest, error) {
	start := time.Now()
	m, err := l.inner.ChapterQuiz(ctx, subject, chapter, count)
	l.log(ctx, "/v1/quizzes/chapter", http.MethodGet, start, err)
	return m, err
}

func (l *LoggingClient) SubmitAnswer(ctx context.Context, req SubmitRequest) (*quiz.AnswerRecord, error) {
	start := time.Now()
	rec, err := l.inner.SubmitAnswer(ctx, req)
	l.log(ctx, "/v1/sessions/{id}/answers", http.MethodPost, start, err)
	return rec, err
}

func (l *LoggingClient) CompleteSession(ctx context.Context, sessionID string) (*quiz.SessionSummary, error) {
	start := time.Now()
	summary, err := l.inner.CompleteSession(ctx, sessionID)
	l.log(ctx, "/v1/sessions/{id}/complete", http.MethodPost, start, err)
	return summary, err
}

// log appends the event but never fails the request over a logging
// problem.
func (l *LoggingClient) log(ctx context.Context, endpoint, method string, start time.Time, callErr error) {
	data := store.APIRequestEventData{
		Endpoint:  endpoint,
		Method:    method,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   callErr == nil,
	}
	if callErr != nil {
		data.ErrorMessage = callErr.Error()
		var reqErr *RequestError
		if errors.As(callErr, &reqErr) {
			data.StatusCode = reqErr.StatusCode
		}
	}

	if err := l.repo.AppendAPIRequest(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log API request event: %v\n", err)
	}
}
