package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jeevibe/jeevibe/internal/backend"
	quizpkg "github.com/jeevibe/jeevibe/internal/quiz"
	"github.com/jeevibe/jeevibe/internal/router"
	"github.com/jeevibe/jeevibe/internal/screen"
	"github.com/jeevibe/jeevibe/internal/screens/summary"
	"github.com/jeevibe/jeevibe/internal/screens/tutorchat"
	"github.com/jeevibe/jeevibe/internal/session"
	"github.com/jeevibe/jeevibe/internal/store"
	"github.com/jeevibe/jeevibe/internal/tutor"
	"github.com/jeevibe/jeevibe/internal/ui/components"
	"github.com/jeevibe/jeevibe/internal/ui/layout"
)

// phase is the screen's display state.
type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseSubmitting
	phaseFeedback
	phaseCompleting
	phaseError
)

// Request selects which quiz to fetch.
type Request struct {
	Kind    quizpkg.SessionKind
	Subject string // chapter practice only
	Chapter string // chapter practice only
	Count   int    // chapter practice only, 0 = server default
}

// Screen drives one quiz session end to end: fetch manifest, present
// questions, submit answers, show feedback, finalize.
type Screen struct {
	client backend.Client
	events store.EventRepo
	tutorP tutor.Provider // nil when no tutor is configured
	tutorC tutor.Config
	req    Request

	ctrl  *session.Controller
	phase phase

	options components.OptionList
	input   components.AnswerInput

	lastRecord *quizpkg.AnswerRecord
	banner     string // inline error banner; empty means none
	retryable  bool   // banner offers the retry action
	errMsg     string
	elapsed    time.Duration
	confirming bool // quit confirmation overlay

	// gen invalidates in-flight async results after the screen moves
	// on; a stale result is discarded instead of mutating state.
	gen int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.BackBlocker = (*Screen)(nil)

// New creates a quiz screen. tutorP may be nil; the tutor affordance
// is hidden then.
func New(client backend.Client, events store.EventRepo, tutorP tutor.Provider, tutorC tutor.Config, req Request) *Screen {
	return &Screen{
		client: client,
		events: events,
		tutorP: tutorP,
		tutorC: tutorC,
		req:    req,
		phase:  phaseLoading,
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.fetchManifest(), tickCmd())
}

func (s *Screen) Title() string {
	switch s.req.Kind {
	case quizpkg.SessionDaily:
		return "Daily Quiz"
	case quizpkg.SessionChapterPractice:
		return "Chapter Practice"
	case quizpkg.SessionUnlock:
		return "Unlock Quiz"
	case quizpkg.SessionWeakSpot:
		return "Weak Spots"
	default:
		return "Quiz"
	}
}

// BlocksBack keeps the global Esc handler away mid-session; leaving is
// routed through the quit confirmation instead.
func (s *Screen) BlocksBack() bool {
	return s.phase != phaseError
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseQuestion:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
		}
		if s.banner != "" && s.retryable {
			hints = append(hints,
				layout.KeyHint{Key: "R", Description: "Retry"},
				layout.KeyHint{Key: "D", Description: "Dismiss"},
			)
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
	case phaseFeedback:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
		}
		if s.tutorP != nil {
			hints = append(hints, layout.KeyHint{Key: "T", Description: "Ask tutor"})
		}
		return hints
	}
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case manifestMsg:
		return s.handleManifest(msg)
	case submitResultMsg:
		return s.handleSubmitResult(msg)
	case advanceMsg:
		return s.handleAdvance(msg)
	case timerTickMsg:
		return s.handleTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the numerical input while answering.
	if s.phase == phaseQuestion && s.currentKind() == quizpkg.KindNumerical {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *Screen) handleManifest(msg manifestMsg) (screen.Screen, tea.Cmd) {
	if msg.gen != s.gen {
		return s, nil
	}
	if msg.err != nil {
		s.phase = phaseError
		s.errMsg = describeError(msg.err)
		return s, nil
	}

	s.ctrl = session.NewController(msg.manifest, s.client, s.events)
	s.ctrl.Start(context.Background())
	return s.presentCurrent()
}

// presentCurrent sets up input for the current question, skipping
// malformed questions. Skipping the last question triggers completion.
func (s *Screen) presentCurrent() (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	for {
		q := s.ctrl.State().CurrentQuestion()
		if q == nil {
			return s.startAdvance()
		}
		if q.Validate() == nil {
			break
		}
		if err := s.ctrl.Skip(ctx); err != nil {
			s.phase = phaseError
			s.errMsg = err.Error()
			return s, nil
		}
		if !s.ctrl.State().HasMoreQuestions() {
			return s.startAdvance()
		}
		if _, err := s.ctrl.Advance(ctx); err != nil {
			s.phase = phaseError
			s.errMsg = err.Error()
			return s, nil
		}
	}

	q := s.ctrl.State().CurrentQuestion()
	s.phase = phaseQuestion
	s.banner = ""
	s.lastRecord = nil
	s.elapsed = 0

	var cmd tea.Cmd
	if q.Kind == quizpkg.KindMultipleChoice {
		s.options = components.NewOptionList(q.Options)
	} else {
		s.input = components.NewAnswerInput()
		cmd = s.input.Init()
	}
	return s, cmd
}

func (s *Screen) handleSubmitResult(msg submitResultMsg) (screen.Screen, tea.Cmd) {
	if msg.gen != s.gen {
		return s, nil
	}

	if msg.err != nil {
		s.phase = phaseQuestion
		s.banner = describeError(msg.err)
		s.retryable = !errors.Is(msg.err, backend.ErrAuthRequired) && s.ctrl.State().Pending() != nil
		return s, nil
	}

	s.lastRecord = msg.record
	s.banner = ""
	if s.currentKind() == quizpkg.KindMultipleChoice {
		s.options.Grade(msg.record.Answer, msg.record.CorrectAnswer)
	}
	s.phase = phaseFeedback
	return s, nil
}

func (s *Screen) handleAdvance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if msg.gen != s.gen {
		return s, nil
	}

	if msg.err != nil {
		// Completion failed; stay on feedback with a retry banner.
		s.phase = phaseFeedback
		s.banner = describeError(msg.err)
		s.retryable = true
		return s, nil
	}

	if msg.summary != nil {
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(msg.summary)}
		}
	}

	return s.presentCurrent()
}

func (s *Screen) handleTick() (screen.Screen, tea.Cmd) {
	if s.ctrl != nil && s.phase == phaseQuestion {
		s.elapsed = s.ctrl.Elapsed()
	}
	if s.phase == phaseError {
		return s, nil
	}
	return s, tickCmd()
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.phase == phaseError {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirming {
		switch key {
		case "y", "Y":
			if s.ctrl != nil {
				s.ctrl.Abandon(context.Background())
			}
			s.gen++ // discard anything still in flight
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	if key == "esc" {
		s.confirming = true
		return s, nil
	}

	switch s.phase {
	case phaseQuestion:
		return s.handleQuestionKey(msg, key)
	case phaseFeedback:
		return s.handleFeedbackKey(key)
	}

	return s, nil
}

func (s *Screen) handleQuestionKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	if s.banner != "" && s.retryable {
		switch key {
		case "r", "R":
			return s.startRetry()
		case "d", "D":
			s.ctrl.DismissFailed()
			s.banner = ""
			return s, nil
		}
	}

	if key == "enter" {
		return s.startSubmit()
	}

	var cmd tea.Cmd
	if s.currentKind() == quizpkg.KindMultipleChoice {
		s.options, cmd = s.options.Update(msg)
	} else {
		s.input, cmd = s.input.Update(msg)
	}
	return s, cmd
}

func (s *Screen) handleFeedbackKey(key string) (screen.Screen, tea.Cmd) {
	if s.banner != "" && s.retryable {
		switch key {
		case "r", "R":
			return s.startAdvance()
		}
	}

	switch key {
	case "t", "T":
		if s.tutorP != nil && s.lastRecord != nil {
			q := s.ctrl.State().CurrentQuestion()
			if q != nil {
				chat := tutorchat.New(s.tutorP, s.tutorC, q, s.lastRecord)
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: chat} }
			}
		}
	case "enter", " ":
		return s.startAdvance()
	}

	return s, nil
}

func (s *Screen) startSubmit() (screen.Screen, tea.Cmd) {
	var answer string
	if s.currentKind() == quizpkg.KindMultipleChoice {
		answer = s.options.Value()
	} else {
		answer = s.input.Value()
	}
	if answer == "" {
		return s, nil
	}

	s.phase = phaseSubmitting
	s.banner = ""
	gen := s.gen
	ctrl := s.ctrl
	return s, func() tea.Msg {
		rec, err := ctrl.Submit(context.Background(), answer)
		return submitResultMsg{gen: gen, record: rec, err: err}
	}
}

func (s *Screen) startRetry() (screen.Screen, tea.Cmd) {
	s.phase = phaseSubmitting
	s.banner = ""
	gen := s.gen
	ctrl := s.ctrl
	return s, func() tea.Msg {
		rec, err := ctrl.RetryFailed(context.Background())
		return submitResultMsg{gen: gen, record: rec, err: err, retry: true}
	}
}

func (s *Screen) startAdvance() (screen.Screen, tea.Cmd) {
	s.phase = phaseCompleting
	s.banner = ""
	gen := s.gen
	ctrl := s.ctrl
	return s, func() tea.Msg {
		sum, err := ctrl.Advance(context.Background())
		return advanceMsg{gen: gen, summary: sum, err: err}
	}
}

func (s *Screen) fetchManifest() tea.Cmd {
	gen := s.gen
	req := s.req
	client := s.client
	return func() tea.Msg {
		ctx := context.Background()
		var m *quizpkg.Manifest
		var err error
		if req.Kind == quizpkg.SessionChapterPractice {
			m, err = client.ChapterQuiz(ctx, req.Subject, req.Chapter, req.Count)
		} else {
			m, err = client.DailyQuiz(ctx)
		}
		return manifestMsg{gen: gen, manifest: m, err: err}
	}
}

func (s *Screen) currentKind() quizpkg.Kind {
	if s.ctrl == nil {
		return ""
	}
	q := s.ctrl.State().CurrentQuestion()
	if q == nil {
		return ""
	}
	return q.Kind
}

// describeError maps gateway errors to user-facing banner text.
func describeError(err error) string {
	switch {
	case errors.Is(err, backend.ErrAuthRequired):
		return "Your sign-in expired. Run `jeevibe login` and try again."
	case errors.Is(err, backend.ErrClientOutdated):
		return "This version of JEEVibe is no longer supported. Please update."
	default:
		var reqErr *backend.RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode == 0 {
			return "Network error. Check your connection."
		}
		return fmt.Sprintf("Something went wrong: %v", err)
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
