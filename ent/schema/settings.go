package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Settings holds the schema definition for the Settings entity.
// Singleton row holding the active LLM model identifier and max-token cap.
// Same discriminator pattern as GlobalContext.
type Settings struct {
	ent.Schema
}

// Fields of the Settings.
func (Settings) Fields() []ent.Field {
	return []ent.Field{
		field.Bool("singleton").
			Default(true),
		field.String("llm_model").
			Default("").
			Comment("provider/model identifier, e.g. 'openrouter/deepseek/deepseek-v3.2-exp'"),
		field.Int("max_tokens").
			Default(2000),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Settings.
func (Settings) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("singleton").
			Unique(),
	}
}
