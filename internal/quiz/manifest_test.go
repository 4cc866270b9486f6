package quiz

import (
	"strings"
	"testing"
)

const validManifest = `{
	"session_id": "sess-123",
	"kind": "daily",
	"questions": [
		{
			"id": "q1",
			"subject": "physics",
			"chapter": "kinematics",
			"prompt": "A ball is dropped from 20 m. Time to hit the ground?",
			"kind": "multiple_choice",
			"options": [
				{"id": "a", "text": "1 s"},
				{"id": "b", "text": "2 s"}
			]
		},
		{
			"id": "q2",
			"subject": "maths",
			"chapter": "limits",
			"prompt": "Evaluate lim x->0 sin(x)/x.",
			"kind": "numerical"
		}
	]
}`

func TestParseManifest_Valid(t *testing.T) {
	m, err := ParseManifest([]byte(validManifest))
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}

	if m.SessionID != "sess-123" {
		t.Errorf("SessionID = %q, want %q", m.SessionID, "sess-123")
	}
	if m.Kind != SessionDaily {
		t.Errorf("Kind = %q, want %q", m.Kind, SessionDaily)
	}
	if len(m.Questions) != 2 {
		t.Fatalf("len(Questions) = %d, want 2", len(m.Questions))
	}
	if m.Questions[1].Kind != KindNumerical {
		t.Errorf("Questions[1].Kind = %q, want numerical", m.Questions[1].Kind)
	}
}

func TestParseManifest_InvalidJSON(t *testing.T) {
	if _, err := ParseManifest([]byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseManifest_MissingSessionID(t *testing.T) {
	payload := strings.Replace(validManifest, `"session_id": "sess-123",`, "", 1)
	if _, err := ParseManifest([]byte(payload)); err == nil {
		t.Error("expected schema validation error for missing session_id")
	}
}

func TestParseManifest_UnknownKind(t *testing.T) {
	payload := strings.Replace(validManifest, `"kind": "daily"`, `"kind": "marathon"`, 1)
	if _, err := ParseManifest([]byte(payload)); err == nil {
		t.Error("expected schema validation error for unknown session kind")
	}
}

func TestParseManifest_EmptyQuestions(t *testing.T) {
	payload := `{"session_id": "s", "kind": "daily", "questions": []}`
	if _, err := ParseManifest([]byte(payload)); err == nil {
		t.Error("expected schema validation error for empty question list")
	}
}
