package progress

import (
	"context"
	"testing"
	"time"

	"github.com/jeevibe/jeevibe/internal/store"
)

// stubRepo implements store.EventRepo with canned query results.
type stubRepo struct {
	store.EventRepo

	times    []time.Time
	subjects []store.SubjectStats
	recent   []store.SessionRow
}

func (s *stubRepo) CompletedSessionTimes(context.Context) ([]time.Time, error) {
	return s.times, nil
}

func (s *stubRepo) SubjectAccuracy(context.Context) ([]store.SubjectStats, error) {
	return s.subjects, nil
}

func (s *stubRepo) RecentSessions(context.Context, int) ([]store.SessionRow, error) {
	return s.recent, nil
}

func TestBuildReport(t *testing.T) {
	now := day(t, "2026-08-23 18:00")
	repo := &stubRepo{
		times: []time.Time{
			day(t, "2026-08-23 08:00"),
			day(t, "2026-08-22 08:00"),
		},
		subjects: []store.SubjectStats{
			{Subject: "physics", Attempted: 10, Correct: 7},
		},
		recent: []store.SessionRow{
			{SessionID: "s1", Kind: "daily", TotalQuestions: 5, CorrectAnswers: 4, Passed: true},
		},
	}

	report, err := BuildReport(context.Background(), repo, now)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if report.Streak != 2 {
		t.Errorf("Streak = %d, want 2", report.Streak)
	}
	if report.BestStreak != 2 {
		t.Errorf("BestStreak = %d, want 2", report.BestStreak)
	}
	if report.NextMilestone != 3 {
		t.Errorf("NextMilestone = %d, want 3", report.NextMilestone)
	}
	if len(report.Subjects) != 1 || report.Subjects[0].Subject != "physics" {
		t.Errorf("unexpected subjects: %+v", report.Subjects)
	}
	if len(report.Recent) != 1 || !report.Recent[0].Passed {
		t.Errorf("unexpected recent sessions: %+v", report.Recent)
	}
}
