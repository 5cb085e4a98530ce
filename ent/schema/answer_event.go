package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer in any mode.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Comment("Question that was answered"),
		field.String("mode").
			NotEmpty().
			Comment("exam, truefalse, understand, or lesson"),
		field.Bool("user_answer").
			Comment("The learner's true/false choice"),
		field.Bool("correct_answer").
			Comment("The question's stored answer"),
		field.Bool("correct").
			Comment("Whether the answer matched"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("mode"),
		index.Fields("correct"),
	}
}
