package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	quizpkg "github.com/jeevibe/jeevibe/internal/quiz"
	"github.com/jeevibe/jeevibe/internal/router"
	"github.com/jeevibe/jeevibe/internal/screen"
	"github.com/jeevibe/jeevibe/internal/ui/components"
	"github.com/jeevibe/jeevibe/internal/ui/layout"
	"github.com/jeevibe/jeevibe/internal/ui/theme"
)

// Screen shows the result of a completed session.
type Screen struct {
	summary *quizpkg.SessionSummary
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a summary screen.
func New(s *quizpkg.SessionSummary) *Screen {
	return &Screen{summary: s}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Results" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder
	b.WriteString("\n\n")

	if sum.Passed {
		b.WriteString(centered(width, theme.Correct.Render("Quiz passed!")))
	} else {
		b.WriteString(centered(width, theme.Incorrect.Render("Keep practicing")))
	}
	b.WriteString("\n\n")

	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d / %d correct", sum.CorrectCount, sum.TotalCount))))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", sum.Accuracy(), true, min(width-20, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if len(sum.PerQuestion) > 0 {
		var lines []string
		for i, r := range sum.PerQuestion {
			switch {
			case r.Skipped:
				lines = append(lines, theme.Hint.Render(fmt.Sprintf("Q%d  skipped", i+1)))
			case r.Correct:
				lines = append(lines, theme.Correct.Render(fmt.Sprintf("Q%d  ✓", i+1)))
			default:
				lines = append(lines, theme.Incorrect.Render(fmt.Sprintf("Q%d  ✗", i+1)))
			}
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n")))
		b.WriteString("\n\n")
	}

	if sum.Source == quizpkg.SummaryFromLocal {
		b.WriteString(centered(width, theme.Hint.Render("Computed locally; the server will catch up.")))
		b.WriteString("\n")
	}

	b.WriteString(centered(width, theme.Hint.Render("Press any key to continue")))
	return b.String()
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
