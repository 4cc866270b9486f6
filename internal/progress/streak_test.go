package progress

import (
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		t.Fatal(err)
	}
	return tm
}

func TestDailyStreak(t *testing.T) {
	now := day(t, "2026-08-23 18:00")

	tests := []struct {
		name        string
		completions []string
		want        int
	}{
		{"no sessions", nil, 0},
		{"one today", []string{"2026-08-23 09:00"}, 1},
		{"one yesterday keeps streak alive", []string{"2026-08-22 21:00"}, 1},
		{"two days ago is broken", []string{"2026-08-21 10:00"}, 0},
		{
			"three consecutive days",
			[]string{"2026-08-23 08:00", "2026-08-22 08:00", "2026-08-21 08:00"},
			3,
		},
		{
			"gap breaks the run",
			[]string{"2026-08-23 08:00", "2026-08-22 08:00", "2026-08-20 08:00"},
			2,
		},
		{
			"multiple sessions one day count once",
			[]string{"2026-08-23 08:00", "2026-08-23 20:00", "2026-08-22 08:00"},
			2,
		},
		{
			"yesterday anchored run",
			[]string{"2026-08-22 08:00", "2026-08-21 08:00", "2026-08-20 08:00"},
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var completions []time.Time
			for _, c := range tt.completions {
				completions = append(completions, day(t, c))
			}
			if got := DailyStreak(completions, now); got != tt.want {
				t.Errorf("DailyStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBestStreak(t *testing.T) {
	tests := []struct {
		name        string
		completions []string
		want        int
	}{
		{"no sessions", nil, 0},
		{"single day", []string{"2026-08-23 09:00"}, 1},
		{
			"old run longer than current",
			[]string{
				"2026-08-10 08:00", "2026-08-11 08:00", "2026-08-12 08:00",
				"2026-08-22 08:00", "2026-08-23 08:00",
			},
			3,
		},
		{
			"duplicates within a day count once",
			[]string{"2026-08-22 08:00", "2026-08-22 20:00", "2026-08-23 08:00"},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var completions []time.Time
			for _, c := range tt.completions {
				completions = append(completions, day(t, c))
			}
			if got := BestStreak(completions, time.UTC); got != tt.want {
				t.Errorf("BestStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 3},
		{2, 3},
		{3, 7},
		{7, 14},
		{20, 21},
		{21, 30},
		{30, 60},
		{65, 90},
	}

	for _, tt := range tests {
		if got := NextMilestone(tt.current); got != tt.want {
			t.Errorf("NextMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}
