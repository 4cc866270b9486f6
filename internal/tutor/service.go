package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/jeevibe/jeevibe/internal/quiz"
)

const systemPrompt = `You are a patient JEE tutor helping a student review a quiz question they just attempted. Be concise and concrete. Work from the official explanation when one is given; do not contradict the graded correct answer. Use plain text with at most light markdown.`

// Chat is one tutoring conversation anchored to a graded question.
// Not safe for concurrent use; the UI drives it turn by turn.
type Chat struct {
	provider  Provider
	maxTokens int

	questionID string
	system     string
	messages   []Message
}

// NewChat opens a conversation about a graded answer. The question,
// the student's answer, and the grader's explanation are folded into
// the context so follow-up questions need no repetition.
func NewChat(provider Provider, cfg Config, q *quiz.Question, rec *quiz.AnswerRecord) *Chat {
	return &Chat{
		provider:   provider,
		maxTokens:  cfg.MaxTokens,
		questionID: q.ID,
		system:     systemPrompt + "\n\n" + questionContext(q, rec),
	}
}

// Ask sends the student's message and returns the tutor's reply. The
// exchange is appended to the conversation on success.
func (c *Chat) Ask(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty message")
	}

	messages := append(append([]Message{}, c.messages...), Message{
		Role:    RoleStudent,
		Content: text,
	})

	reply, err := c.provider.Chat(ctx, ChatRequest{
		QuestionID: c.questionID,
		System:     c.system,
		Messages:   messages,
		MaxTokens:  c.maxTokens,
	})
	if err != nil {
		return "", err
	}

	c.messages = append(messages, Message{Role: RoleTutor, Content: reply.Text})
	return reply.Text, nil
}

// Len returns the number of turns exchanged so far.
func (c *Chat) Len() int { return len(c.messages) }

// questionContext renders the graded question for the system prompt.
func questionContext(q *quiz.Question, rec *quiz.AnswerRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question (%s, %s):\n%s\n", q.Subject, q.Chapter, q.Prompt)
	if len(q.Options) > 0 {
		b.WriteString("\nOptions:\n")
		for _, opt := range q.Options {
			fmt.Fprintf(&b, "  %s) %s\n", opt.ID, opt.Text)
		}
	}

	verdict := "incorrectly"
	if rec.Correct {
		verdict = "correctly"
	}
	fmt.Fprintf(&b, "\nThe student answered %q (%s). Correct answer: %q.\n",
		q.OptionText(rec.Answer), verdict, q.OptionText(rec.CorrectAnswer))

	exp := rec.Explanation
	if exp.Approach != "" {
		fmt.Fprintf(&b, "\nOfficial approach: %s\n", exp.Approach)
	}
	if len(exp.Steps) > 0 {
		b.WriteString("Steps:\n")
		for i, step := range exp.Steps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
	}
	if exp.KeyInsight != "" {
		fmt.Fprintf(&b, "Key insight: %s\n", exp.KeyInsight)
	}
	if exp.DistractorAnalysis != "" {
		fmt.Fprintf(&b, "Distractor analysis: %s\n", exp.DistractorAnalysis)
	}
	if len(exp.CommonMistakes) > 0 {
		b.WriteString("Common mistakes: " + strings.Join(exp.CommonMistakes, "; ") + "\n")
	}

	return b.String()
}
