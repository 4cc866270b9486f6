package session

import "github.com/jeevibe/jeevibe/internal/quiz"

// Policy captures the per-variant knobs of a bounded quiz session. All
// session kinds share one controller; only the policy differs.
type Policy struct {
	// QuestionCount is the expected session length. Zero means the
	// server decides (chapter practice with a user-chosen count).
	QuestionCount int

	// PassThreshold is the minimum correct answers to pass. Zero means
	// the session has no pass/fail outcome.
	PassThreshold int

	// HasTimer enables the visible per-question timer. Elapsed time is
	// reported to the grader either way.
	HasTimer bool

	// AllowsRetry keeps a failed submission in the retry slot. When
	// false a failed submission is discarded and the user answers again.
	AllowsRetry bool
}

// PolicyFor returns the policy for a session kind. Unknown kinds get
// the practice policy, which is the most permissive.
func PolicyFor(kind quiz.SessionKind) Policy {
	switch kind {
	case quiz.SessionDaily:
		return Policy{QuestionCount: 5, PassThreshold: 3, HasTimer: true, AllowsRetry: true}
	case quiz.SessionUnlock:
		return Policy{QuestionCount: 3, PassThreshold: 2, AllowsRetry: false}
	case quiz.SessionFollowUp:
		return Policy{QuestionCount: 3, PassThreshold: 2, AllowsRetry: true}
	case quiz.SessionWeakSpot:
		return Policy{QuestionCount: 5, PassThreshold: 3, HasTimer: true, AllowsRetry: true}
	default:
		return Policy{AllowsRetry: true}
	}
}

// Passed reports whether a correct count meets the policy's threshold.
// Threshold-less sessions always pass.
func (p Policy) Passed(correct int) bool {
	if p.PassThreshold <= 0 {
		return true
	}
	return correct >= p.PassThreshold
}
