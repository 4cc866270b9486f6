package progress

import (
	"sort"
	"time"
)

// BaseMilestone is the first streak length worth celebrating.
const BaseMilestone = 3

// milestones are the named streak lengths below the repeating band.
var milestones = []int{3, 7, 14, 21, 30}

// NextMilestone returns the next streak milestone above the current
// streak length. Beyond 30 days, every 30 is a milestone.
func NextMilestone(current int) int {
	for _, m := range milestones {
		if m > current {
			return m
		}
	}
	return ((current / 30) + 1) * 30
}

// DailyStreak counts consecutive calendar days with at least one
// completed session, ending today or yesterday. A session completed
// yesterday keeps the streak alive until the end of today; a gap of a
// full day breaks it.
func DailyStreak(completions []time.Time, now time.Time) int {
	if len(completions) == 0 {
		return 0
	}

	days := make(map[string]bool, len(completions))
	for _, c := range completions {
		days[dayKey(c.In(now.Location()))] = true
	}

	cursor := now
	if !days[dayKey(cursor)] {
		// No session yet today; the streak may still end yesterday.
		cursor = cursor.AddDate(0, 0, -1)
		if !days[dayKey(cursor)] {
			return 0
		}
	}

	streak := 0
	for days[dayKey(cursor)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// BestStreak returns the longest run of consecutive calendar days with
// at least one completed session, in the given location.
func BestStreak(completions []time.Time, loc *time.Location) int {
	if len(completions) == 0 {
		return 0
	}

	days := make(map[string]bool, len(completions))
	uniq := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		local := c.In(loc)
		key := dayKey(local)
		if !days[key] {
			days[key] = true
			uniq = append(uniq, time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc))
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i].Before(uniq[j]) })

	best, run := 1, 1
	for i := 1; i < len(uniq); i++ {
		if uniq[i-1].AddDate(0, 0, 1).Equal(uniq[i]) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
