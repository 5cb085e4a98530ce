// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/patenteapp/patente/ent/answerevent"
	"github.com/patenteapp/patente/ent/examevent"
	"github.com/patenteapp/patente/ent/lessonevent"
	"github.com/patenteapp/patente/ent/llmrequestevent"
	"github.com/patenteapp/patente/ent/mistakeevent"
	"github.com/patenteapp/patente/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[0].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventFields[1].Descriptor()
	// answerevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	answerevent.ModeValidator = answereventDescMode.Validators[0].(func(string) error)
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescTimestamp is the schema descriptor for timestamp field.
	exameventDescTimestamp := exameventMixinFields0[1].Descriptor()
	// examevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examevent.DefaultTimestamp = exameventDescTimestamp.Default.(func() time.Time)
	// exameventDescExamID is the schema descriptor for exam_id field.
	exameventDescExamID := exameventFields[0].Descriptor()
	// examevent.ExamIDValidator is a validator for the "exam_id" field. It is called by the builders before save.
	examevent.ExamIDValidator = exameventDescExamID.Validators[0].(func(string) error)
	// exameventDescUserID is the schema descriptor for user_id field.
	exameventDescUserID := exameventFields[1].Descriptor()
	// examevent.DefaultUserID holds the default value on creation for the user_id field.
	examevent.DefaultUserID = exameventDescUserID.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescLessonID is the schema descriptor for lesson_id field.
	lessoneventDescLessonID := lessoneventFields[0].Descriptor()
	// lessonevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessonevent.LessonIDValidator = lessoneventDescLessonID.Validators[0].(func(string) error)
	// lessoneventDescAction is the schema descriptor for action field.
	lessoneventDescAction := lessoneventFields[1].Descriptor()
	// lessonevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	lessonevent.ActionValidator = lessoneventDescAction.Validators[0].(func(string) error)
	mistakeeventMixin := schema.MistakeEvent{}.Mixin()
	mistakeeventMixinFields0 := mistakeeventMixin[0].Fields()
	_ = mistakeeventMixinFields0
	mistakeeventFields := schema.MistakeEvent{}.Fields()
	_ = mistakeeventFields
	// mistakeeventDescTimestamp is the schema descriptor for timestamp field.
	mistakeeventDescTimestamp := mistakeeventMixinFields0[1].Descriptor()
	// mistakeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	mistakeevent.DefaultTimestamp = mistakeeventDescTimestamp.Default.(func() time.Time)
	// mistakeeventDescQuestionID is the schema descriptor for question_id field.
	mistakeeventDescQuestionID := mistakeeventFields[0].Descriptor()
	// mistakeevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	mistakeevent.QuestionIDValidator = mistakeeventDescQuestionID.Validators[0].(func(string) error)
	// mistakeeventDescAction is the schema descriptor for action field.
	mistakeeventDescAction := mistakeeventFields[1].Descriptor()
	// mistakeevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	mistakeevent.ActionValidator = mistakeeventDescAction.Validators[0].(func(string) error)
}
