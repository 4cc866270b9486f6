package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/jeevibe/jeevibe/internal/quiz"
	"github.com/jeevibe/jeevibe/internal/ui/theme"
)

// OptionList is a multiple-choice selector over quiz options. Grading
// is server-side: the correct option is only known after submission,
// so the component switches to graded rendering when Grade is called.
type OptionList struct {
	Options  []quiz.Option
	Selected int

	graded    bool
	chosenID  string
	correctID string
}

// NewOptionList creates an option list with the first option selected.
func NewOptionList(options []quiz.Option) OptionList {
	return OptionList{Options: options}
}

// Update handles keyboard navigation. Selection by digit (1-4) moves
// the cursor; Enter confirms at the screen level.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.graded {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(o.Options) {
			o.Selected = idx
		}
	}

	return o, nil
}

// Value returns the currently selected option ID, or "" when there is
// no selection.
func (o OptionList) Value() string {
	if o.Selected < 0 || o.Selected >= len(o.Options) {
		return ""
	}
	return o.Options[o.Selected].ID
}

// Grade switches to graded rendering: the chosen and correct options
// are highlighted, navigation stops.
func (o *OptionList) Grade(chosenID, correctID string) {
	o.graded = true
	o.chosenID = chosenID
	o.correctID = correctID
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if !o.graded && i == o.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt.Text)

		switch {
		case o.graded && opt.ID == o.correctID:
			s += theme.Correct.Render(line) + "\n"
		case o.graded && opt.ID == o.chosenID:
			s += theme.Incorrect.Render(line) + "\n"
		case o.graded:
			s += theme.Hint.Render(line) + "\n"
		case i == o.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
