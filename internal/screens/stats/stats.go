package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jeevibe/jeevibe/internal/progress"
	"github.com/jeevibe/jeevibe/internal/router"
	"github.com/jeevibe/jeevibe/internal/screen"
	"github.com/jeevibe/jeevibe/internal/store"
	"github.com/jeevibe/jeevibe/internal/ui/components"
	"github.com/jeevibe/jeevibe/internal/ui/layout"
	"github.com/jeevibe/jeevibe/internal/ui/theme"
)

// reportMsg delivers the assembled progress report.
type reportMsg struct {
	report *progress.Report
	err    error
}

// Screen shows streaks, per-subject accuracy, and recent sessions from
// the local event log.
type Screen struct {
	events store.EventRepo

	report *progress.Report
	errMsg string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a progress screen backed by the local event log.
func New(events store.EventRepo) *Screen {
	return &Screen{events: events}
}

func (s *Screen) Init() tea.Cmd {
	events := s.events
	return func() tea.Msg {
		report, err := progress.BuildReport(context.Background(), events, time.Now())
		return reportMsg{report: report, err: err}
	}
}

func (s *Screen) Title() string { return "My Progress" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.report = msg.report
		}
		return s, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render("\n\n" + theme.Warning.Render("Could not load progress: "+s.errMsg))
	}
	if s.report == nil {
		return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Render("\n\n" + theme.Hint.Render("Crunching the numbers..."))
	}

	r := s.report
	var b strings.Builder
	b.WriteString("\n")

	// Streak card.
	streakLine := fmt.Sprintf("★ %d day streak", r.Streak)
	if r.Streak == 0 {
		streakLine = "No streak yet. A daily quiz starts one."
	}
	card := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(streakLine) +
			"\n" + theme.Hint.Render(fmt.Sprintf("Best: %d days · Next milestone: %d days", r.BestStreak, r.NextMilestone)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	// Per-subject accuracy.
	if len(r.Subjects) > 0 {
		b.WriteString("  " + theme.Subtitle.Render("Accuracy by subject"))
		b.WriteString("\n")
		barWidth := min(width-12, 60)
		for _, sub := range r.Subjects {
			label := fmt.Sprintf("%-11s", sub.Subject)
			bar := components.NewProgressBar(label, sub.Accuracy(), true, barWidth)
			b.WriteString("    " + bar.View())
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d/%d", sub.Correct, sub.Attempted)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Recent sessions.
	if len(r.Recent) > 0 {
		b.WriteString("  " + theme.Subtitle.Render("Recent sessions"))
		b.WriteString("\n")
		for _, row := range r.Recent {
			verdict := theme.Incorrect.Render("✗")
			if row.Passed {
				verdict = theme.Correct.Render("✓")
			}
			b.WriteString(fmt.Sprintf("    %s  %s  %s",
				theme.Hint.Render(row.Timestamp.Format("Jan 2")),
				theme.Body.Render(fmt.Sprintf("%-17s %d/%d", kindLabel(row.Kind), row.CorrectAnswers, row.TotalQuestions)),
				verdict))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Complete a quiz to see it here.")))
		b.WriteString("\n")
	}

	return b.String()
}

func kindLabel(kind string) string {
	switch kind {
	case "daily":
		return "Daily Quiz"
	case "chapter_practice":
		return "Chapter Practice"
	case "unlock":
		return "Unlock Quiz"
	case "follow_up":
		return "Follow-up"
	case "weak_spot":
		return "Weak Spots"
	default:
		return kind
	}
}
