package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToggleHistory is one flip of a warehouse's activation switch. The churn
// detection job counts rows per warehouse over a sliding window and flags
// ping-ponging suppliers for admin review.
type ToggleHistory struct {
	ent.Schema
}

// Fields of the ToggleHistory.
func (ToggleHistory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("toggle_id").
			Unique().
			Immutable(),
		field.String("warehouse_id").
			Immutable(),
		field.Enum("new_state").
			Values("on", "off").
			Immutable(),
		field.Enum("source").
			Values("sms", "web", "admin", "system").
			Immutable(),
		field.String("toggled_by").
			Optional().
			Immutable(),
		field.String("reason").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ToggleHistory.
func (ToggleHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("warehouse", Warehouse.Type).
			Ref("toggle_history").
			Field("warehouse_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ToggleHistory.
func (ToggleHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("warehouse_id", "created_at"),
	}
}
