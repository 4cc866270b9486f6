package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jeevibe/jeevibe/internal/backend"
	quizpkg "github.com/jeevibe/jeevibe/internal/quiz"
	"github.com/jeevibe/jeevibe/internal/router"
	"github.com/jeevibe/jeevibe/internal/screen"
	"github.com/jeevibe/jeevibe/internal/screens/practice"
	"github.com/jeevibe/jeevibe/internal/screens/quiz"
	"github.com/jeevibe/jeevibe/internal/screens/stats"
	"github.com/jeevibe/jeevibe/internal/store"
	"github.com/jeevibe/jeevibe/internal/tutor"
	"github.com/jeevibe/jeevibe/internal/ui/components"
	"github.com/jeevibe/jeevibe/internal/ui/layout"
	"github.com/jeevibe/jeevibe/internal/ui/theme"
)

// Screen is the root menu.
type Screen struct {
	menu components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the home screen. tutorP may be nil.
func New(client backend.Client, events store.EventRepo, tutorP tutor.Provider, tutorC tutor.Config) *Screen {
	// Screens are built fresh on each selection so no state leaks
	// between visits.
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: build()} }
		}
	}

	items := []components.MenuItem{
		{
			Label: "Daily Quiz",
			Action: push(func() screen.Screen {
				return quiz.New(client, events, tutorP, tutorC, quiz.Request{Kind: quizpkg.SessionDaily})
			}),
		},
		{
			Label: "Chapter Practice",
			Action: push(func() screen.Screen {
				return practice.New(client, events, tutorP, tutorC)
			}),
		},
		{
			Label: "My Progress",
			Action: push(func() screen.Screen {
				return stats.New(events)
			}),
		},
		{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	return &Screen{menu: components.NewMenu(items)}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return "Home" }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("Ready to practice?")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Short daily sessions beat marathon cramming.")))
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	return b.String()
}
