package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MistakeEvent records a change to the mistake set. The live set is
// rebuilt by replaying these events in sequence order.
type MistakeEvent struct {
	ent.Schema
}

func (MistakeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MistakeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Comment("Question the mistake refers to"),
		field.String("action").
			NotEmpty().
			Comment("record or clear"),
	}
}

func (MistakeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
	}
}
