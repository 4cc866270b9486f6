package tutor

import (
	"context"
	"sync"
)

// MockReply is a canned response for the MockProvider.
type MockReply struct {
	Text  string
	Usage Usage
	Err   error
}

// MockProvider is a deterministic Provider for testing. It returns
// canned replies in FIFO order and records all requests.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply
	Calls   []ChatRequest
}

// NewMockProvider creates a MockProvider with the given canned replies.
func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

// Chat returns the next canned reply, or ErrUnavailable when the queue
// is empty.
func (m *MockProvider) Chat(_ context.Context, req ChatRequest) (*Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.replies) == 0 {
		return nil, &ErrUnavailable{}
	}

	reply := m.replies[0]
	m.replies = m.replies[1:]

	if reply.Err != nil {
		return nil, reply.Err
	}
	return &Reply{Text: reply.Text, Usage: reply.Usage, Model: "mock"}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddReply appends a canned reply to the queue.
func (m *MockProvider) AddReply(reply MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, reply)
}

// CallCount returns the number of Chat calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
