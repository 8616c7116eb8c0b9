package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChatMessage holds the schema definition for the ChatMessage entity.
// Append-only transcript of assistant conversations, read newest-first.
type ChatMessage struct {
	ent.Schema
}

// Fields of the ChatMessage.
func (ChatMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Text("user_message"),
		field.Text("assistant_response"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ChatMessage.
func (ChatMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Transcript ordering and retention cutoff scans
		index.Fields("created_at"),
	}
}
