package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PropertyQuestion is a buyer question about a warehouse that the knowledge
// base could not answer. It is routed to the supplier over SMS; the answer is
// folded back into PropertyKnowledge so the next buyer gets it instantly.
type PropertyQuestion struct {
	ent.Schema
}

// Fields of the PropertyQuestion.
func (PropertyQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("question_id").
			Unique().
			Immutable(),
		field.String("warehouse_id"),
		field.String("engagement_id").
			Optional().
			Comment("Set when the question pauses a post-tour decision timer"),
		field.String("asked_by_phone").
			Optional(),
		field.String("asked_by_user_id").
			Optional(),
		field.Text("question_text").
			NotEmpty(),
		field.Enum("status").
			Values("pending", "routed", "answered", "expired").
			Default("pending"),
		field.Text("answer_text").
			Optional(),
		field.Enum("answer_source").
			Values("knowledge", "supplier", "admin").
			Optional().
			Nillable(),
		field.Time("routed_at").
			Optional().
			Nillable(),
		field.Time("answered_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PropertyQuestion.
func (PropertyQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("warehouse", Warehouse.Type).
			Ref("questions").
			Field("warehouse_id").
			Unique().
			Required(),
	}
}

// Indexes of the PropertyQuestion.
func (PropertyQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("warehouse_id", "status"),
		index.Fields("status", "routed_at"),
		index.Fields("engagement_id"),
	}
}
