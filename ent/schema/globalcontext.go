package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GlobalContext holds the schema definition for the GlobalContext entity.
// A singleton text blob of user preferences fed as a system-wide hint to
// every LLM call. The unique index on the discriminator column enforces
// at most one row; readers use get-or-create.
type GlobalContext struct {
	ent.Schema
}

// Fields of the GlobalContext.
func (GlobalContext) Fields() []ent.Field {
	return []ent.Field{
		field.Bool("singleton").
			Default(true).
			Comment("Discriminator column, always true"),
		field.Text("context").
			MaxLen(5000).
			Default(""),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the GlobalContext.
func (GlobalContext) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("singleton").
			Unique(),
	}
}
