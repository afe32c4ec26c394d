package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DrillEvent records one submission inside a remediation gate.
type DrillEvent struct {
	ent.Schema
}

func (DrillEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DrillEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("round_id").
			NotEmpty().
			Comment("Round whose focus triggered the gate"),
		field.String("kind").
			NotEmpty().
			Comment("Drill family: spelling, verb, gender, order, be, connector, detail, upgrade"),
		field.String("variant").
			NotEmpty().
			Comment("choice or type"),
		field.String("prompt").
			NotEmpty().
			Comment("Exercise prompt shown"),
		field.String("response").
			Comment("Learner's submission"),
		field.Bool("correct").
			Comment("Whether the submission was accepted"),
		field.Int("streak_after").
			Default(0).
			Comment("Streak value after this submission"),
		field.Int("target").
			Comment("Streak target of the gate"),
		field.Bool("cleared").
			Default(false).
			Comment("True on the submission that cleared the gate"),
	}
}

func (DrillEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("round_id"),
		index.Fields("kind"),
		index.Fields("correct"),
	}
}
