package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Warehouse is a physical building. Identity is immutable; listing parameters
// live on the attached TruthCore. supplier_status tracks how far along the
// network funnel the building is.
type Warehouse struct {
	ent.Schema
}

// Fields of the Warehouse.
func (Warehouse) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("warehouse_id").
			Unique().
			Immutable(),
		field.String("company_id"),
		field.String("address").
			NotEmpty(),
		field.String("city").
			NotEmpty(),
		field.String("state").
			NotEmpty().
			Comment("Two-letter US state code"),
		field.String("zip").
			Optional(),
		field.Float("lat").
			Optional().
			Nillable(),
		field.Float("lng").
			Optional().
			Nillable(),
		field.Int("building_sqft").
			Optional().
			Comment("Gross building size; rentable range lives on TruthCore"),
		field.Int("year_built").
			Optional(),
		field.String("construction_type").
			Optional(),
		field.JSON("gallery", []string{}).
			Optional().
			Comment("Image URLs"),
		field.String("contact_phone").
			Optional().
			Comment("Required for DLA outreach"),
		field.Enum("supplier_status").
			Values("third_party", "earncheck_only", "interested", "in_network", "declined", "unresponsive").
			Default("third_party"),
		field.Time("last_outreach_at").
			Optional().
			Nillable(),
		field.Int("outreach_count").
			Default(0),
		field.String("created_by").
			Optional().
			Comment("Audit only; authorization goes through company_id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Warehouse.
func (Warehouse) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("warehouses").
			Field("company_id").
			Unique().
			Required(),
		edge.To("truth_core", TruthCore.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("matches", Match.Type),
		edge.To("memories", ContextualMemory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("questions", PropertyQuestion.Type),
		edge.To("knowledge", PropertyKnowledge.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("dla_tokens", DLAToken.Type),
		edge.To("toggle_history", ToggleHistory.Type),
		edge.To("supplier_agreements", SupplierAgreement.Type),
	}
}

// Indexes of the Warehouse.
func (Warehouse) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("supplier_status"),
		index.Fields("company_id"),
		index.Fields("state", "city"),
		index.Fields("zip"),
	}
}
