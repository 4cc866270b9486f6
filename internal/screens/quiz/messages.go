package quiz

import (
	"time"

	quizpkg "github.com/jeevibe/jeevibe/internal/quiz"
)

// manifestMsg is sent when the session manifest has been fetched.
type manifestMsg struct {
	gen      int
	manifest *quizpkg.Manifest
	err      error
}

// submitResultMsg is sent when an answer submission resolves.
type submitResultMsg struct {
	gen    int
	record *quizpkg.AnswerRecord
	err    error
	retry  bool // the submission came from the retry slot
}

// advanceMsg is sent when Advance resolves; summary is non-nil when
// the session just completed.
type advanceMsg struct {
	gen     int
	summary *quizpkg.SessionSummary
	err     error
}

// timerTickMsg updates the per-question timer display.
type timerTickMsg time.Time
