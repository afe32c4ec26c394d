package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundEvent records the outcome of a completed writing round.
type RoundEvent struct {
	ent.Schema
}

func (RoundEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RoundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("round_id").
			NotEmpty().
			Comment("UUID grouping the round's answer and drill events"),
		field.String("lang").
			NotEmpty().
			Comment("Target language code, e.g. es"),
		field.String("theme").
			NotEmpty().
			Comment("Prompt theme the round drew from"),
		field.Int("level").
			Comment("Difficulty level at round start"),
		field.Int("wrong_count").
			Default(0).
			Comment("Answers judged wrong after any AI upgrade"),
		field.Int("score").
			Default(0).
			Comment("Round score"),
		field.String("focus_tag").
			Default("").
			Comment("Selected remediation focus"),
		field.Bool("used_fallback").
			Default(false).
			Comment("True when AI grading was unavailable and local verdicts stood"),
		field.Int("elapsed_secs").
			Default(0).
			Comment("Wall-clock duration of the answer phase"),
	}
}

func (RoundEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("round_id"),
		index.Fields("theme"),
		index.Fields("level"),
	}
}
