package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContextualMemory is a free-form note about a warehouse captured outside the
// structured TruthCore: supplier remarks from SMS, admin annotations, tour
// feedback. Memories feed the instant-book depth factor and the LLM match
// reasoning prompt.
type ContextualMemory struct {
	ent.Schema
}

// Fields of the ContextualMemory.
func (ContextualMemory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("warehouse_id"),
		field.Enum("category").
			Values("operations", "access", "condition", "pricing", "availability", "general").
			Default("general"),
		field.Text("content").
			NotEmpty(),
		field.Enum("source").
			Values("supplier_sms", "admin", "tour_feedback", "onboarding").
			Default("admin"),
		field.String("recorded_by").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ContextualMemory.
func (ContextualMemory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("warehouse", Warehouse.Type).
			Ref("memories").
			Field("warehouse_id").
			Unique().
			Required(),
	}
}

// Indexes of the ContextualMemory.
func (ContextualMemory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("warehouse_id", "created_at"),
		index.Fields("category"),
	}
}
