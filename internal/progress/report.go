package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/jeevibe/jeevibe/internal/store"
)

// Report aggregates local progress for the stats view.
type Report struct {
	Streak        int
	BestStreak    int
	NextMilestone int
	Subjects      []store.SubjectStats
	Recent        []store.SessionRow
}

// recentLimit caps how many completed sessions the report lists.
const recentLimit = 10

// BuildReport assembles a progress report from the local event log.
func BuildReport(ctx context.Context, repo store.EventRepo, now time.Time) (*Report, error) {
	times, err := repo.CompletedSessionTimes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load completion times: %w", err)
	}

	subjects, err := repo.SubjectAccuracy(ctx)
	if err != nil {
		return nil, fmt.Errorf("load subject accuracy: %w", err)
	}

	recent, err := repo.RecentSessions(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("load recent sessions: %w", err)
	}

	streak := DailyStreak(times, now)
	return &Report{
		Streak:        streak,
		BestStreak:    BestStreak(times, now.Location()),
		NextMilestone: NextMilestone(streak),
		Subjects:      subjects,
		Recent:        recent,
	}, nil
}
