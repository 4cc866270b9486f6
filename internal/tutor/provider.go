package tutor

import "context"

// Provider is the abstraction over AI tutor backends. The tutor is a
// plain-text chat: no structured output, the reply is rendered as-is.
type Provider interface {
	// Chat sends the conversation and returns the tutor's reply.
	Chat(ctx context.Context, req ChatRequest) (*Reply, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// ChatRequest describes one tutor exchange.
type ChatRequest struct {
	// QuestionID tags the request for the local event log.
	QuestionID string

	// System sets the tutor's role and constraints.
	System string

	// Messages is the conversation so far, ending with the student's
	// latest message.
	Messages []Message

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means the
	// provider default.
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleStudent Role = "user"
	RoleTutor   Role = "assistant"
)

// Reply is the tutor's answer to one ChatRequest.
type Reply struct {
	// Text is the reply body, plain text or light markdown.
	Text string

	// Usage reports token consumption for this exchange.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// Truncated is set when the reply hit the MaxTokens cap.
	Truncated bool
}

// Usage tracks token consumption for a single exchange.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
