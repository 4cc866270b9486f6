package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/complete/abandon).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Server-issued session ID grouping events"),
		field.String("kind").
			NotEmpty().
			Comment("Session kind: daily, chapter_practice, unlock, follow_up, weak_spot"),
		field.String("action").
			NotEmpty().
			Comment("start, complete, or abandon"),
		field.Int("total_questions").
			Default(0).
			Comment("Question count (on complete only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct count (on complete only)"),
		field.Bool("passed").
			Default(false).
			Comment("Pass verdict (on complete only)"),
		field.String("summary_source").
			Default("").
			Comment("server or local (on complete only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock session duration in seconds"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("kind"),
	}
}
