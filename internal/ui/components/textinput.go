package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput wraps bubbles/textinput for numerical answers. JEE
// numerical answers can be negative and fractional, so the filter
// allows digits, one leading minus, and one decimal point.
type AnswerInput struct {
	Model textinput.Model
}

// NewAnswerInput creates a focused numerical answer input.
func NewAnswerInput() AnswerInput {
	ti := textinput.New()
	ti.Placeholder = "Type your answer..."
	ti.CharLimit = 12
	ti.Focus()
	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages, filtering out characters that cannot occur
// in a numerical answer.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key := kmsg.String(); len(key) == 1 && !allowedAnswerChar(key[0], a.Model.Value()) {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input.
func (a AnswerInput) View() string {
	return a.Model.View()
}

// Value returns the trimmed input value.
func (a AnswerInput) Value() string {
	return strings.TrimSpace(a.Model.Value())
}

func allowedAnswerChar(c byte, current string) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '-':
		return current == ""
	case c == '.':
		return !strings.Contains(current, ".")
	default:
		return false
	}
}
