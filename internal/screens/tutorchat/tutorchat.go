package tutorchat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	quizpkg "github.com/jeevibe/jeevibe/internal/quiz"
	"github.com/jeevibe/jeevibe/internal/router"
	"github.com/jeevibe/jeevibe/internal/screen"
	"github.com/jeevibe/jeevibe/internal/tutor"
	"github.com/jeevibe/jeevibe/internal/ui/layout"
	"github.com/jeevibe/jeevibe/internal/ui/theme"
)

// turn is one rendered exchange in the transcript.
type turn struct {
	student bool
	text    string
}

// replyMsg delivers the tutor's answer to a question.
type replyMsg struct {
	gen  int
	text string
	err  error
}

// Screen is a tutoring conversation about one graded question.
type Screen struct {
	chat    *tutor.Chat
	subject string
	chapter string

	input   textinput.Model
	turns   []turn
	waiting bool
	errText string

	gen int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New opens a tutor chat seeded with the question and the graded answer.
func New(provider tutor.Provider, cfg tutor.Config, q *quizpkg.Question, rec *quizpkg.AnswerRecord) *Screen {
	ti := textinput.New()
	ti.Placeholder = "Ask the tutor..."
	ti.CharLimit = 400
	ti.Focus()

	return &Screen{
		chat:    tutor.NewChat(provider, cfg, q, rec),
		subject: q.Subject,
		chapter: q.Chapter,
		input:   ti,
	}
}

func (s *Screen) Init() tea.Cmd { return s.input.Focus() }

func (s *Screen) Title() string { return "Tutor" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back to quiz"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		if msg.gen != s.gen {
			return s, nil
		}
		s.waiting = false
		if msg.err != nil {
			s.errText = describeTutorError(msg.err)
			// Drop the unanswered question so retyping it works.
			if n := len(s.turns); n > 0 && s.turns[n-1].student {
				s.input.SetValue(s.turns[n-1].text)
				s.turns = s.turns[:n-1]
			}
			return s, nil
		}
		s.turns = append(s.turns, turn{text: msg.text})
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			s.gen++
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return s.send()
		}
	}

	if !s.waiting {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) send() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(s.input.Value())
	if text == "" || s.waiting {
		return s, nil
	}

	s.turns = append(s.turns, turn{student: true, text: text})
	s.input.SetValue("")
	s.waiting = true
	s.errText = ""

	gen := s.gen
	chat := s.chat
	return s, func() tea.Msg {
		reply, err := chat.Ask(context.Background(), text)
		return replyMsg{gen: gen, text: reply, err: err}
	}
}

func (s *Screen) View(width, height int) string {
	bodyWidth := min(width-8, 76)
	var b strings.Builder

	b.WriteString("  " + theme.Subtitle.Render(fmt.Sprintf("%s · %s", s.subject, s.chapter)))
	b.WriteString("\n\n")

	if len(s.turns) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Ask anything about this question.")))
		b.WriteString("\n")
	}

	student := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	tutorLabel := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	body := lipgloss.NewStyle().Width(bodyWidth).Foreground(theme.Text)

	// Render the most recent turns that fit the available rows.
	transcript := make([]string, 0, len(s.turns))
	for _, t := range s.turns {
		var label string
		if t.student {
			label = student.Render("You")
		} else {
			label = tutorLabel.Render("Tutor")
		}
		transcript = append(transcript, label+"\n"+body.Render(t.text))
	}
	joined := strings.Join(transcript, "\n\n")
	available := height - 8
	if available > 0 {
		lines := strings.Split(joined, "\n")
		if len(lines) > available {
			lines = lines[len(lines)-available:]
		}
		joined = strings.Join(lines, "\n")
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(joined))
	b.WriteString("\n\n")

	if s.waiting {
		b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(theme.Hint.Render("Tutor is thinking...")))
		b.WriteString("\n\n")
	}
	if s.errText != "" {
		b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(theme.Warning.Render(s.errText)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(s.input.View()))
	return b.String()
}

func describeTutorError(err error) string {
	var throttled *tutor.ErrThrottled
	switch {
	case errors.As(err, &throttled):
		return "The tutor is busy right now. Try again in a moment."
	case errors.As(err, new(*tutor.ErrUnavailable)):
		return "The tutor is unreachable. Check your connection and API key."
	default:
		return fmt.Sprintf("Tutor error: %v", err)
	}
}
