// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIRequestEvent is the predicate function for apirequestevent builders.
type APIRequestEvent func(*sql.Selector)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// TutorRequestEvent is the predicate function for tutorrequestevent builders.
type TutorRequestEvent func(*sql.Selector)
