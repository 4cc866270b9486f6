package quiz

import "testing"

func mcq(id string) Question {
	return Question{
		ID:      id,
		Subject: "physics",
		Chapter: "kinematics",
		Prompt:  "A ball is dropped from 20 m. Time to hit the ground?",
		Kind:    KindMultipleChoice,
		Options: []Option{
			{ID: "a", Text: "1 s"},
			{ID: "b", Text: "2 s"},
			{ID: "c", Text: "4 s"},
			{ID: "d", Text: "0.5 s"},
		},
	}
}

func TestQuestionValidate_OK(t *testing.T) {
	q := mcq("q1")
	if err := q.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	num := Question{ID: "q2", Prompt: "Evaluate the limit.", Kind: KindNumerical}
	if err := num.Validate(); err != nil {
		t.Errorf("Validate() numerical = %v, want nil", err)
	}
}

func TestQuestionValidate_EmptyPrompt(t *testing.T) {
	q := mcq("q1")
	q.Prompt = ""

	if err := q.Validate(); err == nil {
		t.Error("expected error for empty prompt")
	}

	// HTML-only prompt is acceptable.
	q.PromptHTML = "<p>2 + 2 = ?</p>"
	if err := q.Validate(); err != nil {
		t.Errorf("Validate() with HTML prompt = %v, want nil", err)
	}
}

func TestQuestionValidate_TooFewOptions(t *testing.T) {
	q := mcq("q1")
	q.Options = q.Options[:1]

	if err := q.Validate(); err == nil {
		t.Error("expected error for single-option multiple choice")
	}
}

func TestQuestionValidate_UnknownKind(t *testing.T) {
	q := mcq("q1")
	q.Kind = "essay"

	if err := q.Validate(); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestOptionText(t *testing.T) {
	q := mcq("q1")

	if got := q.OptionText("b"); got != "2 s" {
		t.Errorf("OptionText(b) = %q, want %q", got, "2 s")
	}
	// Unknown IDs pass through; numerical answers have no option entry.
	if got := q.OptionText("42"); got != "42" {
		t.Errorf("OptionText(42) = %q, want %q", got, "42")
	}
}

func TestSummaryAccuracy(t *testing.T) {
	s := SessionSummary{CorrectCount: 2, TotalCount: 3}
	if acc := s.Accuracy(); acc < 0.66 || acc > 0.67 {
		t.Errorf("Accuracy() = %f, want ~0.667", acc)
	}

	empty := SessionSummary{}
	if acc := empty.Accuracy(); acc != 0 {
		t.Errorf("Accuracy() on empty summary = %f, want 0", acc)
	}
}
