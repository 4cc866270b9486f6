package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	quizpkg "github.com/jeevibe/jeevibe/internal/quiz"
	"github.com/jeevibe/jeevibe/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	switch {
	case s.confirming:
		return renderQuitConfirm(width)
	case s.phase == phaseLoading || s.ctrl == nil:
		return centered(width, theme.Hint.Render("\n\n\n  Loading your quiz..."))
	case s.phase == phaseFeedback:
		return s.renderFeedback(width)
	case s.phase == phaseCompleting:
		return centered(width, theme.Hint.Render("\n\n\n  Finishing up..."))
	default:
		return s.renderQuestion(width)
	}
}

func (s *Screen) renderQuestion(width int) string {
	state := s.ctrl.State()
	q := state.CurrentQuestion()
	if q == nil {
		return centered(width, theme.Hint.Render("\n\n  Finishing up..."))
	}

	var b strings.Builder

	// Info line: subject/chapter left, progress and timer right.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", q.Subject, q.Chapter))

	right := fmt.Sprintf("Q %d/%d", state.CurrentIndex()+1, state.Total())
	if s.ctrl.Policy().HasTimer {
		mins := int(s.elapsed.Minutes())
		secs := int(s.elapsed.Seconds()) % 60
		right += fmt.Sprintf("  %d:%02d", mins, secs)
	}
	rightStyled := theme.Hint.Render(right)

	pad := width - lipgloss.Width(left) - lipgloss.Width(rightStyled) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + rightStyled)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	// Prompt.
	promptStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, promptStyle.Render(q.Prompt)))
	b.WriteString("\n\n")

	// Answer area.
	if q.Kind == quizpkg.KindMultipleChoice {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
	} else {
		b.WriteString(centered(width, "Answer: "+s.input.View()))
	}

	if s.phase == phaseSubmitting {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint.Render("Checking...")))
	}

	if s.banner != "" {
		b.WriteString("\n\n")
		b.WriteString(s.renderBanner(width))
	}

	return b.String()
}

func (s *Screen) renderFeedback(width int) string {
	rec := s.lastRecord
	q := s.ctrl.State().CurrentQuestion()

	var b strings.Builder
	b.WriteString("\n")

	if rec != nil {
		if rec.Correct {
			b.WriteString(centered(width, theme.Correct.Render("Correct!")))
		} else {
			b.WriteString(centered(width, theme.Incorrect.Render("Not quite")))
			if q != nil {
				b.WriteString("\n")
				b.WriteString(centered(width, theme.Hint.Render(
					"Correct answer: "+q.OptionText(rec.CorrectAnswer))))
			}
		}
		b.WriteString("\n\n")

		if q != nil && q.Kind == quizpkg.KindMultipleChoice {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
			b.WriteString("\n")
		}

		b.WriteString(renderExplanation(rec.Explanation, width))
	}

	if s.banner != "" {
		b.WriteString("\n")
		b.WriteString(s.renderBanner(width))
	}

	b.WriteString("\n")
	hint := "Press Enter to continue"
	if s.tutorP != nil {
		hint += ", T to ask the tutor"
	}
	b.WriteString(centered(width, theme.Hint.Render(hint)))

	return b.String()
}

func renderExplanation(exp quizpkg.Explanation, width int) string {
	bodyWidth := min(width-8, 76)
	body := lipgloss.NewStyle().Width(bodyWidth).Foreground(theme.Text)
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder
	if exp.Approach != "" {
		b.WriteString(label.Render("Approach") + "\n")
		b.WriteString(body.Render(exp.Approach) + "\n\n")
	}
	for i, step := range exp.Steps {
		b.WriteString(body.Render(fmt.Sprintf("%d. %s", i+1, step)) + "\n")
	}
	if len(exp.Steps) > 0 {
		b.WriteString("\n")
	}
	if exp.KeyInsight != "" {
		b.WriteString(label.Render("Key insight") + "\n")
		b.WriteString(body.Render(exp.KeyInsight) + "\n")
	}
	if b.Len() == 0 {
		return ""
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *Screen) renderBanner(width int) string {
	text := s.banner
	if s.retryable {
		text += "  [R] Retry  [D] Dismiss"
	}
	banner := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1).
		Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, banner)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Leave this quiz?")))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Hint.Render("Answers already submitted are saved; the rest is lost.")))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Correct.Render("[Y] Yes, leave")))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Selected.Render("[N] No, keep going")))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return centered(width, lipgloss.NewStyle().Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg)))
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
