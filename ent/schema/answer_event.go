package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records the grading outcome of a single free-text answer
// within a round.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("round_id").
			NotEmpty().
			Comment("Links to RoundEvent"),
		field.String("prompt_text").
			NotEmpty().
			Comment("The writing prompt shown"),
		field.String("badge").
			Default("").
			Comment("Prompt badge: structure, ser, accent, vocab"),
		field.String("answer_text").
			Comment("What the learner wrote"),
		field.Bool("ok").
			Comment("Final verdict after any AI upgrade"),
		field.String("reason").
			Default("").
			Comment("Local failure reason when not ok"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Error tags detected on this answer"),
		field.String("suggestion").
			Default("").
			Comment("Model sentence shown to the learner"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("round_id"),
		index.Fields("ok"),
	}
}
