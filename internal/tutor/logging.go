package tutor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jeevibe/jeevibe/internal/store"
)

// LoggingProvider is a decorator that records every tutor exchange as
// an event in the local store.
type LoggingProvider struct {
	inner Provider
	repo  store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, repo: repo}
}

func (l *LoggingProvider) Chat(ctx context.Context, req ChatRequest) (*Reply, error) {
	start := time.Now()
	reply, err := l.inner.Chat(ctx, req)

	data := store.TutorRequestEventData{
		Provider:   l.inner.ModelID(),
		Model:      l.inner.ModelID(),
		QuestionID: req.QuestionID,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if reply != nil {
		data.Model = reply.Model
		data.InputTokens = reply.Usage.InputTokens
		data.OutputTokens = reply.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but never fail the exchange over it.
	if logErr := l.repo.AppendTutorRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log tutor request event: %v\n", logErr)
	}

	return reply, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
