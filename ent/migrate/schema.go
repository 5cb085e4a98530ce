// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeBool},
		{Name: "correct_answer", Type: field.TypeBool},
		{Name: "correct", Type: field.TypeBool},
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
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_mode",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[7]},
			},
		},
	}
	// ExamEventsColumns holds the columns for the "exam_events" table.
	ExamEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "exam_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "passed", Type: field.TypeBool},
		{Name: "time_spent_secs", Type: field.TypeInt},
		{Name: "answers", Type: field.TypeJSON},
	}
	// ExamEventsTable holds the schema information for the "exam_events" table.
	ExamEventsTable = &schema.Table{
		Name:       "exam_events",
		Columns:    ExamEventsColumns,
		PrimaryKey: []*schema.Column{ExamEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "examevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExamEventsColumns[1]},
			},
			{
				Name:    "examevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExamEventsColumns[2]},
			},
			{
				Name:    "examevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ExamEventsColumns[4]},
			},
			{
				Name:    "examevent_passed",
				Unique:  false,
				Columns: []*schema.Column{ExamEventsColumns[7]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2]},
			},
			{
				Name:    "lessonevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[3]},
			},
		},
	}
	// MistakeEventsColumns holds the columns for the "mistake_events" table.
	MistakeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
	}
	// MistakeEventsTable holds the schema information for the "mistake_events" table.
	MistakeEventsTable = &schema.Table{
		Name:       "mistake_events",
		Columns:    MistakeEventsColumns,
		PrimaryKey: []*schema.Column{MistakeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mistakeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MistakeEventsColumns[1]},
			},
			{
				Name:    "mistakeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MistakeEventsColumns[2]},
			},
			{
				Name:    "mistakeevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{MistakeEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		ExamEventsTable,
		LlmRequestEventsTable,
		LessonEventsTable,
		MistakeEventsTable,
	}
)

func init() {
}
