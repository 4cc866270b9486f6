package tutor

import (
	"context"
	"strings"
	"testing"

	"github.com/jeevibe/jeevibe/internal/quiz"
)

func testQuestion() *quiz.Question {
	return &quiz.Question{
		ID:      "q1",
		Subject: "physics",
		Chapter: "kinematics",
		Prompt:  "A ball is dropped from 20 m. How long until it lands?",
		Kind:    quiz.KindMultipleChoice,
		Options: []quiz.Option{
			{ID: "a", Text: "1 s"},
			{ID: "b", Text: "2 s"},
			{ID: "c", Text: "4 s"},
		},
	}
}

func testRecord() *quiz.AnswerRecord {
	return &quiz.AnswerRecord{
		QuestionID:    "q1",
		Answer:        "a",
		Correct:       false,
		CorrectAnswer: "b",
		Explanation: quiz.Explanation{
			Approach:   "Use h = (1/2) g t^2.",
			Steps:      []string{"Solve t = sqrt(2h/g).", "t = sqrt(40/9.8) ≈ 2 s."},
			KeyInsight: "Time depends only on height in free fall.",
		},
	}
}

func TestChatFoldsQuestionIntoSystemPrompt(t *testing.T) {
	mock := NewMockProvider(MockReply{Text: "Because free fall time is sqrt(2h/g)."})
	chat := NewChat(mock, DefaultConfig(), testQuestion(), testRecord())

	reply, err := chat.Ask(context.Background(), "why is it 2 seconds?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if reply == "" {
		t.Fatal("expected a reply")
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]

	if req.QuestionID != "q1" {
		t.Errorf("QuestionID = %q, want q1", req.QuestionID)
	}
	for _, fragment := range []string{
		"A ball is dropped from 20 m",
		"b) 2 s",
		`"1 s"`,     // the student's wrong answer, rendered as option text
		"incorrectly",
		"h = (1/2) g t^2",
		"Time depends only on height",
	} {
		if !strings.Contains(req.System, fragment) {
			t.Errorf("system prompt missing %q", fragment)
		}
	}
}

func TestChatKeepsHistory(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Text: "first reply"},
		MockReply{Text: "second reply"},
	)
	chat := NewChat(mock, DefaultConfig(), testQuestion(), testRecord())
	ctx := context.Background()

	if _, err := chat.Ask(ctx, "first question"); err != nil {
		t.Fatal(err)
	}
	if _, err := chat.Ask(ctx, "follow up"); err != nil {
		t.Fatal(err)
	}

	second := mock.Calls[1]
	if len(second.Messages) != 3 {
		t.Fatalf("second request messages = %d, want 3", len(second.Messages))
	}
	if second.Messages[1].Role != RoleTutor || second.Messages[1].Content != "first reply" {
		t.Errorf("history not carried: %+v", second.Messages)
	}
	if got := chat.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
}

func TestChatFailedAskDoesNotGrowHistory(t *testing.T) {
	mock := NewMockProvider(MockReply{Err: &ErrUnavailable{}})
	chat := NewChat(mock, DefaultConfig(), testQuestion(), testRecord())

	if _, err := chat.Ask(context.Background(), "hello?"); err == nil {
		t.Fatal("expected error")
	}
	if got := chat.Len(); got != 0 {
		t.Errorf("Len() after failed ask = %d, want 0", got)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	mock := NewMockProvider()
	chat := NewChat(mock, DefaultConfig(), testQuestion(), testRecord())

	if _, err := chat.Ask(context.Background(), "   "); err == nil {
		t.Error("blank message should be rejected")
	}
	if mock.CallCount() != 0 {
		t.Error("no provider call should be made for a blank message")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"unknown provider", Config{Provider: "llama-at-home"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
