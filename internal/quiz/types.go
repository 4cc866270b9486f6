package quiz

import "time"

// Kind is the answer format of a question.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindNumerical      Kind = "numerical"
)

// SessionKind identifies which bounded quiz flow a session belongs to.
// The backend decides question selection per kind; the client only
// varies the session policy.
type SessionKind string

const (
	SessionDaily           SessionKind = "daily"
	SessionChapterPractice SessionKind = "chapter_practice"
	SessionUnlock          SessionKind = "unlock"
	SessionFollowUp        SessionKind = "follow_up"
	SessionWeakSpot        SessionKind = "weak_spot"
)

// Option is one selectable choice of a multiple-choice question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is a single served question. Immutable once loaded.
type Question struct {
	ID         string   `json:"id"`
	Subject    string   `json:"subject"`
	Chapter    string   `json:"chapter"`
	Prompt     string   `json:"prompt"`
	PromptHTML string   `json:"prompt_html,omitempty"`
	Kind       Kind     `json:"kind"`
	Options    []Option `json:"options,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
}

// Validate reports whether the question is well-formed enough to serve.
// Malformed questions are skipped by the session controller rather than
// blocking completion.
func (q *Question) Validate() error {
	if q.ID == "" {
		return &MalformedQuestionError{Reason: "missing id"}
	}
	if q.Prompt == "" && q.PromptHTML == "" {
		return &MalformedQuestionError{QuestionID: q.ID, Reason: "empty prompt"}
	}
	switch q.Kind {
	case KindMultipleChoice:
		if len(q.Options) < 2 {
			return &MalformedQuestionError{QuestionID: q.ID, Reason: "multiple choice with fewer than 2 options"}
		}
		for _, opt := range q.Options {
			if opt.ID == "" {
				return &MalformedQuestionError{QuestionID: q.ID, Reason: "option with empty id"}
			}
		}
	case KindNumerical:
		// No option constraints.
	default:
		return &MalformedQuestionError{QuestionID: q.ID, Reason: "unknown kind " + string(q.Kind)}
	}
	return nil
}

// OptionText returns the display text for an option ID, or the ID itself
// when the option is unknown (e.g. correct answers for numerical questions).
func (q *Question) OptionText(id string) string {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt.Text
		}
	}
	return id
}

// MalformedQuestionError describes a question that failed validation.
type MalformedQuestionError struct {
	QuestionID string
	Reason     string
}

func (e *MalformedQuestionError) Error() string {
	if e.QuestionID == "" {
		return "malformed question: " + e.Reason
	}
	return "malformed question " + e.QuestionID + ": " + e.Reason
}

// Explanation is the worked solution returned by the grader.
type Explanation struct {
	Approach           string   `json:"approach,omitempty"`
	Steps              []string `json:"steps,omitempty"`
	KeyInsight         string   `json:"key_insight,omitempty"`
	DistractorAnalysis string   `json:"distractor_analysis,omitempty"`
	CommonMistakes     []string `json:"common_mistakes,omitempty"`
}

// AnswerRecord is the graded result of one submitted answer. One record
// exists per question; it is never overwritten once graded.
type AnswerRecord struct {
	QuestionID       string      `json:"question_id"`
	Answer           string      `json:"answer"`
	Correct          bool        `json:"correct"`
	CorrectAnswer    string      `json:"correct_answer"`
	Explanation      Explanation `json:"explanation"`
	TimeTakenSeconds int         `json:"time_taken_seconds"`
}

// SummarySource records where a session summary came from.
type SummarySource string

const (
	// SummaryFromServer means the completion endpoint produced the summary.
	SummaryFromServer SummarySource = "server"
	// SummaryFromLocal means the summary was synthesized from local answer
	// records, either because completion failed after all questions were
	// answered or because the server reported the session already complete.
	SummaryFromLocal SummarySource = "local"
)

// QuestionResult is one per-question line of a session summary.
type QuestionResult struct {
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
	Skipped    bool   `json:"skipped,omitempty"`
}

// SessionSummary is the aggregate result of a completed session.
type SessionSummary struct {
	SessionID    string           `json:"session_id"`
	CorrectCount int              `json:"correct_count"`
	TotalCount   int              `json:"total_count"`
	Passed       bool             `json:"passed"`
	PerQuestion  []QuestionResult `json:"per_question,omitempty"`
	CompletedAt  time.Time        `json:"completed_at"`
	Source       SummarySource    `json:"source"`
}

// Accuracy returns the fraction of answered questions that were correct.
func (s *SessionSummary) Accuracy() float64 {
	if s.TotalCount == 0 {
		return 0
	}
	return float64(s.CorrectCount) / float64(s.TotalCount)
}
