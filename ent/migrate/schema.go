// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIRequestEventsColumns holds the columns for the "api_request_events" table.
	APIRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "method", Type: field.TypeString},
		{Name: "status_code", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// APIRequestEventsTable holds the schema information for the "api_request_events" table.
	APIRequestEventsTable = &schema.Table{
		Name:       "api_request_events",
		Columns:    APIRequestEventsColumns,
		PrimaryKey: []*schema.Column{APIRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "apirequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[1]},
			},
			{
				Name:    "apirequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[2]},
			},
			{
				Name:    "apirequestevent_endpoint",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[3]},
			},
			{
				Name:    "apirequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{APIRequestEventsColumns[7]},
			},
		},
	}
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "chapter", Type: field.TypeString, Default: ""},
		{Name: "answer", Type: field.TypeString, Default: ""},
		{Name: "correct_answer", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "skipped", Type: field.TypeBool, Default: false},
		{Name: "time_taken_secs", Type: field.TypeInt, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_subject",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[6]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[10]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "passed", Type: field.TypeBool, Default: false},
		{Name: "summary_source", Type: field.TypeString, Default: ""},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
			{
				Name:    "sessionevent_kind",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// TutorRequestEventsColumns holds the columns for the "tutor_request_events" table.
	TutorRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString, Default: ""},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// TutorRequestEventsTable holds the schema information for the "tutor_request_events" table.
	TutorRequestEventsTable = &schema.Table{
		Name:       "tutor_request_events",
		Columns:    TutorRequestEventsColumns,
		PrimaryKey: []*schema.Column{TutorRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TutorRequestEventsColumns[1]},
			},
			{
				Name:    "tutorrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TutorRequestEventsColumns[2]},
			},
			{
				Name:    "tutorrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{TutorRequestEventsColumns[3]},
			},
			{
				Name:    "tutorrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{TutorRequestEventsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIRequestEventsTable,
		AnswerEventsTable,
		SessionEventsTable,
		TutorRequestEventsTable,
	}
)

func init() {
}
