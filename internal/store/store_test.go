package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Interleave event types; the shared counter must keep them ordered.
	if err := repo.AppendSession(ctx, SessionEventData{
		SessionID: "s1", Kind: "daily", Action: ActionStart,
	}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendAnswer(ctx, AnswerEventData{
		SessionID: "s1", Kind: "daily", QuestionID: "q1",
		Subject: "physics", Correct: true,
	}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendAPIRequest(ctx, APIRequestEventData{
		Endpoint: "/v1/sessions/s1/answers", Method: "POST",
		StatusCode: 200, Success: true,
	}); err != nil {
		t.Fatal(err)
	}

	seq := s.seq
	next, err := seq.Next(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if next != 4 {
		t.Errorf("next sequence = %d, want 4 after three events", next)
	}
}

func TestSubjectAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", Kind: "daily", QuestionID: "q1", Subject: "physics", Correct: true},
		{SessionID: "s1", Kind: "daily", QuestionID: "q2", Subject: "physics", Correct: false},
		{SessionID: "s1", Kind: "daily", QuestionID: "q3", Subject: "maths", Correct: true},
		// Skipped answers must not count toward accuracy.
		{SessionID: "s1", Kind: "daily", QuestionID: "q4", Subject: "physics", Skipped: true},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := repo.SubjectAccuracy(ctx)
	if err != nil {
		t.Fatal(err)
	}

	byName := make(map[string]SubjectStats)
	for _, st := range stats {
		byName[st.Subject] = st
	}

	phys := byName["physics"]
	if phys.Attempted != 2 || phys.Correct != 1 {
		t.Errorf("physics = %d/%d, want 1/2", phys.Correct, phys.Attempted)
	}
	if acc := phys.Accuracy(); acc != 0.5 {
		t.Errorf("physics accuracy = %f, want 0.5", acc)
	}

	maths := byName["maths"]
	if maths.Attempted != 1 || maths.Correct != 1 {
		t.Errorf("maths = %d/%d, want 1/1", maths.Correct, maths.Attempted)
	}
}

func TestRecentSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", Kind: "daily", Action: ActionStart},
		{SessionID: "s1", Kind: "daily", Action: ActionComplete,
			TotalQuestions: 5, CorrectAnswers: 4, Passed: true, SummarySource: "server"},
		{SessionID: "s2", Kind: "unlock", Action: ActionAbandon},
	}
	for _, e := range events {
		if err := repo.AppendSession(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}

	// Only the completed session shows up.
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].SessionID != "s1" || !rows[0].Passed || rows[0].CorrectAnswers != 4 {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

func TestCompletedSessionTimes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"s1", "s2"} {
		if err := repo.AppendSession(ctx, SessionEventData{
			SessionID: id, Kind: "daily", Action: ActionComplete,
		}); err != nil {
			t.Fatal(err)
		}
	}

	times, err := repo.CompletedSessionTimes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(times) != 2 {
		t.Errorf("len(times) = %d, want 2", len(times))
	}
}
