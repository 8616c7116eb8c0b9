package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMCall holds the schema definition for the LLMCall entity.
// Append-only audit record: one row per terminal LLM call outcome
// (success or exhausted retries), never per retried attempt.
type LLMCall struct {
	ent.Schema
}

// Fields of the LLMCall.
func (LLMCall) Fields() []ent.Field {
	return []ent.Field{
		field.String("module_name").
			NotEmpty().
			Comment("Logical call: TimeSlotScheduler, TaskPrioritizer, ChatAssistant"),
		field.Text("inputs").
			Comment("Serialized call inputs, JSON when possible"),
		field.Text("outputs").
			Comment("Serialized call outputs or terminal error"),
		field.Float("duration_ms"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the LLMCall.
func (LLMCall) Indexes() []ent.Index {
	return []ent.Index{
		// Newest-first reads and retention cutoff scans
		index.Fields("created_at"),
	}
}
