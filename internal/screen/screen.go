package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/jeevibe/jeevibe/internal/ui/layout"
)

// Screen is implemented by every application screen.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface screens implement to
// provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackBlocker is an optional interface screens implement to block the
// global Esc-to-go-back handling, e.g. mid-session where leaving means
// abandoning the quiz.
type BackBlocker interface {
	BlocksBack() bool
}
