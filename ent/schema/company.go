package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Company is the organizational access boundary. Every warehouse belongs to a
// company; authorization always resolves through company membership.
type Company struct {
	ent.Schema
}

// Fields of the Company.
func (Company) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("company_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("phone").
			Optional(),
		field.String("billing_email").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Company.
func (Company) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("users", User.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
		edge.To("warehouses", Warehouse.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}
