package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity — one unit of user work.
// Lifecycle state is derived from fields: PENDING (actual_start null, not
// completed), ACTIVE (actual_start set, not completed), COMPLETED.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			MaxLen(200),
		field.String("description").
			MaxLen(1000).
			Default(""),
		field.String("context").
			MaxLen(1000).
			Default("").
			Comment("Task-specific hint fed to the LLM"),
		field.Time("due_date").
			Optional().
			Nillable(),
		field.Time("scheduled_start").
			Optional().
			Nillable(),
		field.Time("scheduled_end").
			Optional().
			Nillable(),
		field.Time("actual_start").
			Optional().
			Nillable(),
		field.Time("actual_end").
			Optional().
			Nillable(),
		field.Float("priority").
			Default(0).
			Comment("Conventionally in [0,10]; the store is permissive, the LLM validator is strict"),
		field.Bool("completed").
			Default(false),
		field.Bool("needs_scheduling").
			Default(false).
			Comment("scheduled_* fields are fallback placeholders awaiting the reconciler"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("completed"),
		index.Fields("scheduled_start"),
		index.Fields("needs_scheduling"),
		index.Fields("actual_start"),
	}
}
