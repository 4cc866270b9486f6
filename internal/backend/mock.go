package backend

import (
	"context"
	"sync"

	"github.com/jeevibe/jeevibe/internal/quiz"
)

// MockSubmitResult is a canned response for MockClient.SubmitAnswer.
type MockSubmitResult struct {
	Record *quiz.AnswerRecord
	Err    error
}

// MockCompleteResult is a canned response for MockClient.CompleteSession.
type MockCompleteResult struct {
	Summary *quiz.SessionSummary
	Err     error
}

// MockClient is a deterministic Client for testing. Submit and complete
// responses are consumed in FIFO order; all calls are recorded.
type MockClient struct {
	mu sync.Mutex

	Manifest    *quiz.Manifest
	ManifestErr error

	submitQueue   []MockSubmitResult
	completeQueue []MockCompleteResult

	SubmitCalls   []SubmitRequest
	CompleteCalls []string
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates an empty mock client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// QueueSubmit appends a canned submit response.
func (m *MockClient) QueueSubmit(res MockSubmitResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitQueue = append(m.submitQueue, res)
}

// QueueComplete appends a canned complete response.
func (m *MockClient) QueueComplete(res MockCompleteResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completeQueue = append(m.completeQueue, res)
}

func (m *MockClient) DailyQuiz(_ context.Context) (*quiz.Manifest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Manifest, m.ManifestErr
}

func (m *MockClient) ChapterQuiz(_ context.Context, _, _ string, _ int) (*quiz.Manifest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Manifest, m.ManifestErr
}

func (m *MockClient) SubmitAnswer(_ context.Context, req SubmitRequest) (*quiz.AnswerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SubmitCalls = append(m.SubmitCalls, req)

	if len(m.submitQueue) == 0 {
		return nil, &RequestError{Endpoint: "mock submit", Err: errExhausted}
	}
	res := m.submitQueue[0]
	m.submitQueue = m.submitQueue[1:]
	return res.Record, res.Err
}

func (m *MockClient) CompleteSession(_ context.Context, sessionID string) (*quiz.SessionSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CompleteCalls = append(m.CompleteCalls, sessionID)

	if len(m.completeQueue) == 0 {
		return nil, &RequestError{Endpoint: "mock complete", Err: errExhausted}
	}
	res := m.completeQueue[0]
	m.completeQueue = m.completeQueue[1:]
	return res.Summary, res.Err
}

var errExhausted = &exhaustedError{}

type exhaustedError struct{}

func (*exhaustedError) Error() string { return "mock response queue exhausted" }
