package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EngagementEvent is one row in the append-only audit log of an engagement.
// Every field is immutable; rows are never updated or deleted. Transition
// records and the events each transition guarantees (address_revealed,
// tour_completed, ...) are written in the same transaction as the status
// change itself.
type EngagementEvent struct {
	ent.Schema
}

// Fields of the EngagementEvent.
func (EngagementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("engagement_id").
			Immutable(),
		field.String("event_type").
			NotEmpty().
			Immutable(),
		field.Enum("actor_role").
			Values("buyer", "supplier", "admin", "system").
			Immutable(),
		field.String("actor_id").
			Optional().
			Immutable().
			Comment("Empty for system actors"),
		field.String("from_status").
			Optional().
			Immutable(),
		field.String("to_status").
			Optional().
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EngagementEvent.
func (EngagementEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("engagement", Engagement.Type).
			Ref("events").
			Field("engagement_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EngagementEvent.
func (EngagementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("engagement_id", "created_at"),
		index.Fields("event_type"),
	}
}
