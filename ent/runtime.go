// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jeevibe/jeevibe/ent/answerevent"
	"github.com/jeevibe/jeevibe/ent/apirequestevent"
	"github.com/jeevibe/jeevibe/ent/schema"
	"github.com/jeevibe/jeevibe/ent/sessionevent"
	"github.com/jeevibe/jeevibe/ent/tutorrequestevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apirequesteventMixin := schema.APIRequestEvent{}.Mixin()
	apirequesteventMixinFields0 := apirequesteventMixin[0].Fields()
	_ = apirequesteventMixinFields0
	apirequesteventFields := schema.APIRequestEvent{}.Fields()
	_ = apirequesteventFields
	// apirequesteventDescTimestamp is the schema descriptor for timestamp field.
	apirequesteventDescTimestamp := apirequesteventMixinFields0[1].Descriptor()
	// apirequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	apirequestevent.DefaultTimestamp = apirequesteventDescTimestamp.Default.(func() time.Time)
	// apirequesteventDescEndpoint is the schema descriptor for endpoint field.
	apirequesteventDescEndpoint := apirequesteventFields[0].Descriptor()
	// apirequestevent.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	apirequestevent.EndpointValidator = apirequesteventDescEndpoint.Validators[0].(func(string) error)
	// apirequesteventDescMethod is the schema descriptor for method field.
	apirequesteventDescMethod := apirequesteventFields[1].Descriptor()
	// apirequestevent.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	apirequestevent.MethodValidator = apirequesteventDescMethod.Validators[0].(func(string) error)
	// apirequesteventDescStatusCode is the schema descriptor for status_code field.
	apirequesteventDescStatusCode := apirequesteventFields[2].Descriptor()
	// apirequestevent.DefaultStatusCode holds the default value on creation for the status_code field.
	apirequestevent.DefaultStatusCode = apirequesteventDescStatusCode.Default.(int)
	// apirequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	apirequesteventDescLatencyMs := apirequesteventFields[3].Descriptor()
	// apirequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	apirequestevent.DefaultLatencyMs = apirequesteventDescLatencyMs.Default.(int64)
	// apirequesteventDescErrorMessage is the schema descriptor for error_message field.
	apirequesteventDescErrorMessage := apirequesteventFields[5].Descriptor()
	// apirequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	apirequestevent.DefaultErrorMessage = apirequesteventDescErrorMessage.Default.(string)
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescKind is the schema descriptor for kind field.
	answereventDescKind := answereventFields[1].Descriptor()
	// answerevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	answerevent.KindValidator = answereventDescKind.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescSubject is the schema descriptor for subject field.
	answereventDescSubject := answereventFields[3].Descriptor()
	// answerevent.DefaultSubject holds the default value on creation for the subject field.
	answerevent.DefaultSubject = answereventDescSubject.Default.(string)
	// answereventDescChapter is the schema descriptor for chapter field.
	answereventDescChapter := answereventFields[4].Descriptor()
	// answerevent.DefaultChapter holds the default value on creation for the chapter field.
	answerevent.DefaultChapter = answereventDescChapter.Default.(string)
	// answereventDescAnswer is the schema descriptor for answer field.
	answereventDescAnswer := answereventFields[5].Descriptor()
	// answerevent.DefaultAnswer holds the default value on creation for the answer field.
	answerevent.DefaultAnswer = answereventDescAnswer.Default.(string)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[6].Descriptor()
	// answerevent.DefaultCorrectAnswer holds the default value on creation for the correct_answer field.
	answerevent.DefaultCorrectAnswer = answereventDescCorrectAnswer.Default.(string)
	// answereventDescSkipped is the schema descriptor for skipped field.
	answereventDescSkipped := answereventFields[8].Descriptor()
	// answerevent.DefaultSkipped holds the default value on creation for the skipped field.
	answerevent.DefaultSkipped = answereventDescSkipped.Default.(bool)
	// answereventDescTimeTakenSecs is the schema descriptor for time_taken_secs field.
	answereventDescTimeTakenSecs := answereventFields[9].Descriptor()
	// answerevent.DefaultTimeTakenSecs holds the default value on creation for the time_taken_secs field.
	answerevent.DefaultTimeTakenSecs = answereventDescTimeTakenSecs.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescKind is the schema descriptor for kind field.
	sessioneventDescKind := sessioneventFields[1].Descriptor()
	// sessionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	sessionevent.KindValidator = sessioneventDescKind.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTotalQuestions is the schema descriptor for total_questions field.
	sessioneventDescTotalQuestions := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	sessionevent.DefaultTotalQuestions = sessioneventDescTotalQuestions.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescPassed is the schema descriptor for passed field.
	sessioneventDescPassed := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultPassed holds the default value on creation for the passed field.
	sessionevent.DefaultPassed = sessioneventDescPassed.Default.(bool)
	// sessioneventDescSummarySource is the schema descriptor for summary_source field.
	sessioneventDescSummarySource := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultSummarySource holds the default value on creation for the summary_source field.
	sessionevent.DefaultSummarySource = sessioneventDescSummarySource.Default.(string)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	tutorrequesteventMixin := schema.TutorRequestEvent{}.Mixin()
	tutorrequesteventMixinFields0 := tutorrequesteventMixin[0].Fields()
	_ = tutorrequesteventMixinFields0
	tutorrequesteventFields := schema.TutorRequestEvent{}.Fields()
	_ = tutorrequesteventFields
	// tutorrequesteventDescTimestamp is the schema descriptor for timestamp field.
	tutorrequesteventDescTimestamp := tutorrequesteventMixinFields0[1].Descriptor()
	// tutorrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	tutorrequestevent.DefaultTimestamp = tutorrequesteventDescTimestamp.Default.(func() time.Time)
	// tutorrequesteventDescQuestionID is the schema descriptor for question_id field.
	tutorrequesteventDescQuestionID := tutorrequesteventFields[2].Descriptor()
	// tutorrequestevent.DefaultQuestionID holds the default value on creation for the question_id field.
	tutorrequestevent.DefaultQuestionID = tutorrequesteventDescQuestionID.Default.(string)
	// tutorrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	tutorrequesteventDescInputTokens := tutorrequesteventFields[3].Descriptor()
	// tutorrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	tutorrequestevent.DefaultInputTokens = tutorrequesteventDescInputTokens.Default.(int)
	// tutorrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	tutorrequesteventDescOutputTokens := tutorrequesteventFields[4].Descriptor()
	// tutorrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	tutorrequestevent.DefaultOutputTokens = tutorrequesteventDescOutputTokens.Default.(int)
	// tutorrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	tutorrequesteventDescLatencyMs := tutorrequesteventFields[5].Descriptor()
	// tutorrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	tutorrequestevent.DefaultLatencyMs = tutorrequesteventDescLatencyMs.Default.(int64)
	// tutorrequesteventDescErrorMessage is the schema descriptor for error_message field.
	tutorrequesteventDescErrorMessage := tutorrequesteventFields[7].Descriptor()
	// tutorrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	tutorrequestevent.DefaultErrorMessage = tutorrequesteventDescErrorMessage.Default.(string)
}
