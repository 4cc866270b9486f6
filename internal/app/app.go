package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jeevibe/jeevibe/internal/backend"
	"github.com/jeevibe/jeevibe/internal/progress"
	"github.com/jeevibe/jeevibe/internal/router"
	"github.com/jeevibe/jeevibe/internal/screen"
	"github.com/jeevibe/jeevibe/internal/screens/home"
	"github.com/jeevibe/jeevibe/internal/store"
	"github.com/jeevibe/jeevibe/internal/tutor"
	"github.com/jeevibe/jeevibe/internal/ui/layout"
)

// Deps carries everything the TUI needs. TutorProvider may be nil when
// no tutor API key is configured.
type Deps struct {
	Client        backend.Client
	Events        store.EventRepo
	TutorProvider tutor.Provider
	TutorConfig   tutor.Config

	// Initial, when set, is pushed on top of the home screen at
	// startup, e.g. `jeevibe daily` jumping straight into a quiz.
	Initial screen.Screen
}

// Model is the root Bubble Tea model.
type Model struct {
	router  *router.Router
	events  store.EventRepo
	initial screen.Screen
	width   int
	height  int
	streak  int
}

// streakMsg carries the day streak computed from the local event log.
type streakMsg int

func newModel(deps Deps) Model {
	root := home.New(deps.Client, deps.Events, deps.TutorProvider, deps.TutorConfig)
	return Model{
		router:  router.New(root),
		events:  deps.Events,
		initial: deps.Initial,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init(), m.loadStreak()}
	if m.initial != nil {
		initial := m.initial
		cmds = append(cmds, func() tea.Msg {
			return router.PushScreenMsg{Screen: initial}
		})
	}
	return tea.Batch(cmds...)
}

func (m Model) loadStreak() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		if events == nil {
			return streakMsg(0)
		}
		times, err := events.CompletedSessionTimes(context.Background())
		if err != nil {
			return streakMsg(0)
		}
		return streakMsg(progress.DailyStreak(times, time.Now()))
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case streakMsg:
		m.streak = int(msg)
		return m, nil

	case router.PopScreenMsg:
		// Coming back to the menu after a session; the streak may have
		// just grown.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadStreak())

	case router.ReplaceScreenMsg:
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.loadStreak())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if blocker, ok := m.router.Active().(screen.BackBlocker); ok && blocker.BlocksBack() {
				break // the screen handles Esc itself
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.streak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
