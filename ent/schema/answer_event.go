package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one graded (or skipped) answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("kind").
			NotEmpty().
			Comment("Session kind: daily, chapter_practice, unlock, follow_up, weak_spot"),
		field.String("question_id").
			NotEmpty().
			Comment("Server-issued question ID"),
		field.String("subject").
			Default("").
			Comment("Subject the question belongs to"),
		field.String("chapter").
			Default("").
			Comment("Chapter the question belongs to"),
		field.String("answer").
			Default("").
			Comment("Submitted answer (option ID or numeric text; empty when skipped)"),
		field.String("correct_answer").
			Default("").
			Comment("Canonical answer returned by the grader"),
		field.Bool("correct").
			Comment("Grader verdict"),
		field.Bool("skipped").
			Default(false).
			Comment("True when the question was skipped as malformed"),
		field.Int("time_taken_secs").
			Default(0).
			Comment("Seconds from display to submission"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("subject"),
		index.Fields("correct"),
	}
}
