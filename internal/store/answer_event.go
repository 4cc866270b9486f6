package store

import (
	"context"
	"fmt"

	"github.com/jeevibe/jeevibe/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetKind(data.Kind).
		SetQuestionID(data.QuestionID).
		SetSubject(data.Subject).
		SetChapter(data.Chapter).
		SetAnswer(data.Answer).
		SetCorrectAnswer(data.CorrectAnswer).
		SetCorrect(data.Correct).
		SetSkipped(data.Skipped).
		SetTimeTakenSecs(data.TimeTakenSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) SubjectAccuracy(ctx context.Context) ([]SubjectStats, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.Skipped(false)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	bySubject := make(map[string]*SubjectStats)
	var order []string
	for _, e := range events {
		st, ok := bySubject[e.Subject]
		if !ok {
			st = &SubjectStats{Subject: e.Subject}
			bySubject[e.Subject] = st
			order = append(order, e.Subject)
		}
		st.Attempted++
		if e.Correct {
			st.Correct++
		}
	}

	out := make([]SubjectStats, 0, len(order))
	for _, subj := range order {
		out = append(out, *bySubject[subj])
	}
	return out, nil
}
