package practice

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jeevibe/jeevibe/internal/backend"
	quizpkg "github.com/jeevibe/jeevibe/internal/quiz"
	"github.com/jeevibe/jeevibe/internal/router"
	"github.com/jeevibe/jeevibe/internal/screen"
	"github.com/jeevibe/jeevibe/internal/screens/quiz"
	"github.com/jeevibe/jeevibe/internal/store"
	"github.com/jeevibe/jeevibe/internal/tutor"
	"github.com/jeevibe/jeevibe/internal/ui/layout"
	"github.com/jeevibe/jeevibe/internal/ui/theme"
)

// step tracks which form field has focus.
type step int

const (
	stepSubject step = iota
	stepChapter
	stepCount
)

var subjects = []string{"Physics", "Chemistry", "Mathematics"}

// defaultCount is used when the count field is left empty; the server
// applies its own default for zero.
const defaultCount = 10

// Screen collects subject, chapter, and question count, then starts a
// chapter practice session.
type Screen struct {
	client backend.Client
	events store.EventRepo
	tutorP tutor.Provider
	tutorC tutor.Config

	step    step
	subject int
	chapter textinput.Model
	count   textinput.Model
	errText string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the chapter practice form.
func New(client backend.Client, events store.EventRepo, tutorP tutor.Provider, tutorC tutor.Config) *Screen {
	chapter := textinput.New()
	chapter.Placeholder = "e.g. Kinematics"
	chapter.CharLimit = 60

	count := textinput.New()
	count.Placeholder = strconv.Itoa(defaultCount)
	count.CharLimit = 2

	return &Screen{
		client:  client,
		events:  events,
		tutorP:  tutorP,
		tutorC:  tutorC,
		chapter: chapter,
		count:   count,
	}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Chapter Practice" }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
	if s.step == stepSubject {
		hints[0] = layout.KeyHint{Key: "↑/↓", Description: "Subject"}
	}
	return hints
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.updateFocused(msg)
	}

	switch kmsg.String() {
	case "tab", "down":
		if s.step == stepSubject && kmsg.String() == "down" {
			s.subject = (s.subject + 1) % len(subjects)
			return s, nil
		}
		return s.focusNext()
	case "shift+tab", "up":
		if s.step == stepSubject && kmsg.String() == "up" {
			s.subject = (s.subject + len(subjects) - 1) % len(subjects)
			return s, nil
		}
		return s.focusPrev()
	case "enter":
		return s.start()
	}

	return s.updateFocused(msg)
}

func (s *Screen) updateFocused(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.step {
	case stepChapter:
		s.chapter, cmd = s.chapter.Update(msg)
	case stepCount:
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			if key := kmsg.String(); len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return s, nil
			}
		}
		s.count, cmd = s.count.Update(msg)
	}
	return s, cmd
}

func (s *Screen) focusNext() (screen.Screen, tea.Cmd) {
	switch s.step {
	case stepSubject:
		s.step = stepChapter
		return s, s.chapter.Focus()
	case stepChapter:
		s.chapter.Blur()
		s.step = stepCount
		return s, s.count.Focus()
	}
	return s, nil
}

func (s *Screen) focusPrev() (screen.Screen, tea.Cmd) {
	switch s.step {
	case stepCount:
		s.count.Blur()
		s.step = stepChapter
		return s, s.chapter.Focus()
	case stepChapter:
		s.chapter.Blur()
		s.step = stepSubject
	}
	return s, nil
}

func (s *Screen) start() (screen.Screen, tea.Cmd) {
	chapter := strings.TrimSpace(s.chapter.Value())
	if chapter == "" {
		s.errText = "Enter a chapter to practice."
		s.step = stepChapter
		return s, s.chapter.Focus()
	}

	count := defaultCount
	if v := strings.TrimSpace(s.count.Value()); v != "" {
		count, _ = strconv.Atoi(v)
	}

	req := quiz.Request{
		Kind:    quizpkg.SessionChapterPractice,
		Subject: strings.ToLower(subjects[s.subject]),
		Chapter: chapter,
		Count:   count,
	}
	next := quiz.New(s.client, s.events, s.tutorP, s.tutorC, req)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *Screen) View(width, height int) string {
	label := func(text string, active bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if active {
			style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		return style.Render(text)
	}

	var b strings.Builder
	b.WriteString(label("Subject", s.step == stepSubject) + "\n")
	for i, sub := range subjects {
		switch {
		case i == s.subject && s.step == stepSubject:
			b.WriteString(theme.Selected.Render("  ▸ "+sub) + "\n")
		case i == s.subject:
			b.WriteString(theme.Unselected.Render("  ▸ "+sub) + "\n")
		default:
			b.WriteString(theme.Hint.Render("    "+sub) + "\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(label("Chapter", s.step == stepChapter) + "\n")
	b.WriteString("  " + s.chapter.View() + "\n\n")

	b.WriteString(label("Questions", s.step == stepCount) + "\n")
	b.WriteString("  " + s.count.View() + "\n")

	if s.errText != "" {
		b.WriteString("\n" + theme.Warning.Render(s.errText) + "\n")
	}

	form := theme.Card.Render(b.String())
	return "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, form)
}
