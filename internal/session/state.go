package session

import "github.com/jeevibe/jeevibe/internal/quiz"

// PendingAnswer is the single retry-eligible submission slot held after
// a failed submit. Retrying re-sends exactly these values, including
// the attempt ID so the server can deduplicate.
type PendingAnswer struct {
	QuestionID     string
	AttemptID      string
	Answer         string
	ElapsedSeconds int
	Err            error
}

// State holds one session's in-memory progress. The question list is
// fixed at creation; the index never decreases. State is not safe for
// concurrent use; the controller serializes all mutation.
type State struct {
	ID        string
	Kind      quiz.SessionKind
	Questions []quiz.Question

	index    int
	answers  map[string]*quiz.AnswerRecord
	skipped  map[string]bool
	pending  *PendingAnswer
	complete bool
}

// NewState builds session state from a server-issued manifest.
func NewState(m *quiz.Manifest) *State {
	return &State{
		ID:        m.SessionID,
		Kind:      m.Kind,
		Questions: m.Questions,
		answers:   make(map[string]*quiz.AnswerRecord),
		skipped:   make(map[string]bool),
	}
}

// CurrentIndex returns the zero-based position of the current question.
func (s *State) CurrentIndex() int { return s.index }

// Total returns the number of questions in the session.
func (s *State) Total() int { return len(s.Questions) }

// CurrentQuestion returns the question at the current index, or nil
// when the index has moved past the last question.
func (s *State) CurrentQuestion() *quiz.Question {
	if s.index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.index]
}

// HasMoreQuestions reports whether a question after the current one
// remains.
func (s *State) HasMoreQuestions() bool {
	return s.index+1 < len(s.Questions)
}

// IsComplete reports whether the session reached its terminal state.
func (s *State) IsComplete() bool { return s.complete }

// IsAnswered reports whether a question has a graded record.
func (s *State) IsAnswered(questionID string) bool {
	_, ok := s.answers[questionID]
	return ok
}

// IsSkipped reports whether a question was skipped as malformed.
func (s *State) IsSkipped(questionID string) bool {
	return s.skipped[questionID]
}

// Answer returns the graded record for a question, if any.
func (s *State) Answer(questionID string) (*quiz.AnswerRecord, bool) {
	rec, ok := s.answers[questionID]
	return rec, ok
}

// CorrectCount returns how many graded answers were correct.
func (s *State) CorrectCount() int {
	n := 0
	for _, rec := range s.answers {
		if rec.Correct {
			n++
		}
	}
	return n
}

// ResolvedCount returns how many questions are answered or skipped.
func (s *State) ResolvedCount() int {
	return len(s.answers) + len(s.skipped)
}

// Pending returns the held failed submission, or nil.
func (s *State) Pending() *PendingAnswer { return s.pending }

// allResolved reports whether every question is answered or skipped.
func (s *State) allResolved() bool {
	for i := range s.Questions {
		id := s.Questions[i].ID
		if !s.IsAnswered(id) && !s.skipped[id] {
			return false
		}
	}
	return true
}

// currentResolved reports whether the current question is answered or
// skipped, which is the precondition for advancing.
func (s *State) currentResolved() bool {
	q := s.CurrentQuestion()
	if q == nil {
		return true
	}
	return s.IsAnswered(q.ID) || s.skipped[q.ID]
}

// recordAnswer stores a graded record. A record is written once; a
// second grade for the same question is a contract violation because
// retries only exist for submissions that never got graded.
func (s *State) recordAnswer(rec *quiz.AnswerRecord) error {
	if s.complete {
		return &InvalidStateError{Op: "record answer", Reason: "session already complete"}
	}
	if _, ok := s.answers[rec.QuestionID]; ok {
		return &InvalidStateError{Op: "record answer", Reason: "question " + rec.QuestionID + " already graded"}
	}
	s.answers[rec.QuestionID] = rec
	delete(s.skipped, rec.QuestionID)
	return nil
}

// markSkipped excludes a question from the answered-count requirement.
func (s *State) markSkipped(questionID string) {
	s.skipped[questionID] = true
}

// advance moves the index forward one question. The caller checks the
// current question is resolved first.
func (s *State) advance() {
	if s.index < len(s.Questions) {
		s.index++
	}
}
