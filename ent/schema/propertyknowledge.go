package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PropertyKnowledge is one learned fact about a warehouse, keyed by topic.
// Facts come from supplier answers to routed questions or from admin entry,
// and are upserted so each (warehouse, topic) pair holds the latest answer.
type PropertyKnowledge struct {
	ent.Schema
}

// Fields of the PropertyKnowledge.
func (PropertyKnowledge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("knowledge_id").
			Unique().
			Immutable(),
		field.String("warehouse_id"),
		field.String("topic").
			NotEmpty().
			Comment("Normalized lowercase topic key, e.g. loading_dock_hours"),
		field.Text("content").
			NotEmpty(),
		field.Enum("source").
			Values("supplier", "admin", "onboarding").
			Default("supplier"),
		field.String("source_question_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PropertyKnowledge.
func (PropertyKnowledge) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("warehouse", Warehouse.Type).
			Ref("knowledge").
			Field("warehouse_id").
			Unique().
			Required(),
	}
}

// Indexes of the PropertyKnowledge.
func (PropertyKnowledge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("warehouse_id", "topic").
			Unique(),
	}
}

// Annotations of the PropertyKnowledge.
func (PropertyKnowledge) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "property_knowledge"},
	}
}
