package session

import (
	"fmt"
	"testing"

	"github.com/jeevibe/jeevibe/internal/quiz"
)

func testManifest(n int) *quiz.Manifest {
	m := &quiz.Manifest{SessionID: "s1", Kind: quiz.SessionDaily}
	for i := 1; i <= n; i++ {
		m.Questions = append(m.Questions, quiz.Question{
			ID:      fmt.Sprintf("q%d", i),
			Subject: "physics",
			Chapter: "kinematics",
			Prompt:  fmt.Sprintf("question %d", i),
			Kind:    quiz.KindNumerical,
		})
	}
	return m
}

func gradedAnswer(questionID string, correct bool) *quiz.AnswerRecord {
	return &quiz.AnswerRecord{
		QuestionID:    questionID,
		Answer:        "42",
		Correct:       correct,
		CorrectAnswer: "42",
	}
}

func TestStateInitial(t *testing.T) {
	s := NewState(testManifest(3))

	if got := s.CurrentIndex(); got != 0 {
		t.Errorf("CurrentIndex() = %d, want 0", got)
	}
	if got := s.Total(); got != 3 {
		t.Errorf("Total() = %d, want 3", got)
	}
	if q := s.CurrentQuestion(); q == nil || q.ID != "q1" {
		t.Errorf("CurrentQuestion() = %v, want q1", q)
	}
	if s.IsComplete() {
		t.Error("new session should not be complete")
	}
	if !s.HasMoreQuestions() {
		t.Error("expected more questions after q1")
	}
}

func TestRecordAnswerOnce(t *testing.T) {
	s := NewState(testManifest(2))

	if err := s.recordAnswer(gradedAnswer("q1", true)); err != nil {
		t.Fatalf("recordAnswer: %v", err)
	}
	if !s.IsAnswered("q1") {
		t.Error("q1 should be answered")
	}

	// A second grade for the same question must be rejected.
	err := s.recordAnswer(gradedAnswer("q1", false))
	if _, ok := err.(*InvalidStateError); !ok {
		t.Errorf("second recordAnswer error = %v, want *InvalidStateError", err)
	}
	rec, _ := s.Answer("q1")
	if !rec.Correct {
		t.Error("original record must not be overwritten")
	}
}

func TestRecordAnswerAfterComplete(t *testing.T) {
	s := NewState(testManifest(1))
	s.complete = true

	err := s.recordAnswer(gradedAnswer("q1", true))
	if _, ok := err.(*InvalidStateError); !ok {
		t.Errorf("recordAnswer on complete session = %v, want *InvalidStateError", err)
	}
}

func TestAdvanceIsMonotone(t *testing.T) {
	s := NewState(testManifest(2))

	if err := s.recordAnswer(gradedAnswer("q1", true)); err != nil {
		t.Fatal(err)
	}
	s.advance()
	if got := s.CurrentIndex(); got != 1 {
		t.Errorf("CurrentIndex() = %d, want 1", got)
	}

	// Advancing past the end clamps at len(questions).
	s.advance()
	s.advance()
	if got := s.CurrentIndex(); got != 2 {
		t.Errorf("CurrentIndex() = %d, want 2", got)
	}
	if q := s.CurrentQuestion(); q != nil {
		t.Errorf("CurrentQuestion() past the end = %v, want nil", q)
	}
}

func TestCorrectCount(t *testing.T) {
	s := NewState(testManifest(3))
	for _, a := range []struct {
		id      string
		correct bool
	}{
		{"q1", true}, {"q2", false}, {"q3", true},
	} {
		if err := s.recordAnswer(gradedAnswer(a.id, a.correct)); err != nil {
			t.Fatal(err)
		}
	}

	if got := s.CorrectCount(); got != 2 {
		t.Errorf("CorrectCount() = %d, want 2", got)
	}
	if !s.allResolved() {
		t.Error("all questions answered, allResolved() should be true")
	}
}

func TestSkippedCountsAsResolved(t *testing.T) {
	s := NewState(testManifest(2))

	s.markSkipped("q1")
	if !s.currentResolved() {
		t.Error("skipped current question should count as resolved")
	}
	if s.allResolved() {
		t.Error("q2 is still open")
	}

	if err := s.recordAnswer(gradedAnswer("q2", true)); err != nil {
		t.Fatal(err)
	}
	if !s.allResolved() {
		t.Error("answered + skipped should resolve the session")
	}
	if got := s.ResolvedCount(); got != 2 {
		t.Errorf("ResolvedCount() = %d, want 2", got)
	}
}

func TestPolicyFor(t *testing.T) {
	tests := []struct {
		kind      quiz.SessionKind
		count     int
		threshold int
		retry     bool
	}{
		{quiz.SessionDaily, 5, 3, true},
		{quiz.SessionUnlock, 3, 2, false},
		{quiz.SessionFollowUp, 3, 2, true},
		{quiz.SessionWeakSpot, 5, 3, true},
		{quiz.SessionChapterPractice, 0, 0, true},
	}

	for _, tt := range tests {
		p := PolicyFor(tt.kind)
		if p.QuestionCount != tt.count || p.PassThreshold != tt.threshold || p.AllowsRetry != tt.retry {
			t.Errorf("PolicyFor(%s) = %+v", tt.kind, p)
		}
	}
}

func TestPolicyPassed(t *testing.T) {
	daily := PolicyFor(quiz.SessionDaily)
	if daily.Passed(2) {
		t.Error("2/5 should not pass the daily quiz")
	}
	if !daily.Passed(3) {
		t.Error("3/5 should pass the daily quiz")
	}

	practice := PolicyFor(quiz.SessionChapterPractice)
	if !practice.Passed(0) {
		t.Error("practice sessions have no pass threshold")
	}
}
