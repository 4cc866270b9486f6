package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jeevibe/jeevibe/ent"
	"github.com/jeevibe/jeevibe/ent/sessionevent"
)

// ActionStart, ActionComplete and ActionAbandon are the session
// lifecycle actions recorded in the event log.
const (
	ActionStart    = "start"
	ActionComplete = "complete"
	ActionAbandon  = "abandon"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetKind(data.Kind).
		SetAction(data.Action).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectAnswers(data.CorrectAnswers).
		SetPassed(data.Passed).
		SetSummarySource(data.SummarySource).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRow, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action(ActionComplete)).
		Order(ent.Desc(sessionevent.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	rows := make([]SessionRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, SessionRow{
			SessionID:      e.SessionID,
			Kind:           e.Kind,
			TotalQuestions: e.TotalQuestions,
			CorrectAnswers: e.CorrectAnswers,
			Passed:         e.Passed,
			Timestamp:      e.Timestamp,
		})
	}
	return rows, nil
}

func (r *eventRepo) CompletedSessionTimes(ctx context.Context) ([]time.Time, error) {
	events, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action(ActionComplete)).
		Order(ent.Desc(sessionevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query completed sessions: %w", err)
	}

	times := make([]time.Time, 0, len(events))
	for _, e := range events {
		times = append(times, e.Timestamp)
	}
	return times, nil
}
