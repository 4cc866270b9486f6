package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jeevibe/jeevibe/internal/screen"
)

// fakeScreen is a minimal screen.Screen for router tests.
type fakeScreen struct {
	name  string
	inits int
}

func (f *fakeScreen) Init() tea.Cmd                            { f.inits++; return nil }
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd)  { return f, nil }
func (f *fakeScreen) View(int, int) string                     { return f.name }
func (f *fakeScreen) Title() string                            { return f.name }

func TestPushPop(t *testing.T) {
	root := &fakeScreen{name: "home"}
	r := New(root)

	if got := r.Depth(); got != 1 {
		t.Fatalf("Depth() = %d, want 1", got)
	}

	quiz := &fakeScreen{name: "quiz"}
	r.Push(quiz)

	if r.Active() != quiz {
		t.Error("pushed screen should be active")
	}
	if quiz.inits != 1 {
		t.Errorf("pushed screen inits = %d, want 1", quiz.inits)
	}

	r.Pop()
	if r.Active() != root {
		t.Error("pop should reveal the root screen")
	}
}

func TestPopNeverEmptiesStack(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.Pop()
	r.Pop()

	if got := r.Depth(); got != 1 {
		t.Errorf("Depth() = %d, want 1 (root cannot be popped)", got)
	}
	if r.Active() == nil {
		t.Error("root screen must survive")
	}
}

func TestReplace(t *testing.T) {
	root := &fakeScreen{name: "home"}
	r := New(root)
	quiz := &fakeScreen{name: "quiz"}
	r.Push(quiz)

	summary := &fakeScreen{name: "summary"}
	r.Replace(summary)

	if r.Active() != summary {
		t.Error("replace should swap the top screen")
	}
	if got := r.Depth(); got != 2 {
		t.Errorf("Depth() = %d, want 2", got)
	}
	if summary.inits != 1 {
		t.Errorf("replaced-in screen inits = %d, want 1", summary.inits)
	}

	// Popping after replace reveals the root, not the quiz screen.
	r.Pop()
	if r.Active() != root {
		t.Error("pop after replace should reveal root")
	}
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "home"})

	r.Update(PushScreenMsg{Screen: &fakeScreen{name: "stats"}})
	if got := r.Depth(); got != 2 {
		t.Errorf("Depth() after push msg = %d, want 2", got)
	}

	r.Update(PopScreenMsg{})
	if got := r.Depth(); got != 1 {
		t.Errorf("Depth() after pop msg = %d, want 1", got)
	}
}
