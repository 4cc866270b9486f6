package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// APIRequestEvent records every backend API call for debugging flaky
// submissions and for the stats view.
type APIRequestEvent struct {
	ent.Schema
}

func (APIRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (APIRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("endpoint").
			NotEmpty().
			Comment("API path, e.g. /v1/sessions/{id}/answers"),
		field.String("method").
			NotEmpty().
			Comment("HTTP method"),
		field.Int("status_code").
			Default(0).
			Comment("Response status; 0 for transport failures"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the request"),
		field.Bool("success").
			Comment("Whether the call succeeded"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (APIRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("endpoint"),
		index.Fields("success"),
	}
}
