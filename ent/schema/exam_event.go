package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamEvent records one finished mock-exam attempt.
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// ExamAnswer is the serialized form of a single graded exam answer.
type ExamAnswer struct {
	QuestionID string `json:"question_id"`
	UserAnswer bool   `json:"user_answer"`
	Correct    bool   `json:"correct"`
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("exam_id").
			NotEmpty().
			Unique().
			Comment("UUID of the exam attempt"),
		field.String("user_id").
			Default("").
			Comment("Learner identifier; empty when no profile is set"),
		field.Int("score").
			Comment("Count of correct answers"),
		field.Int("total").
			Comment("Count of sampled questions"),
		field.Bool("passed").
			Comment("score/total >= 0.8"),
		field.Int("time_spent_secs").
			Comment("Seconds from start to finish"),
		field.JSON("answers", []ExamAnswer{}).
			Comment("Per-question graded answers, in sample order"),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("passed"),
	}
}
