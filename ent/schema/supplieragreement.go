package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SupplierAgreement is the standing network agreement between the exchange
// and a supplier for one warehouse. A warehouse cannot be generally matchable
// until an agreement here is signed; DLA acceptance creates one implicitly.
type SupplierAgreement struct {
	ent.Schema
}

// Fields of the SupplierAgreement.
func (SupplierAgreement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("supplier_agreement_id").
			Unique().
			Immutable(),
		field.String("warehouse_id"),
		field.Enum("status").
			Values("draft", "sent", "signed", "terminated").
			Default("draft"),
		field.Enum("origin").
			Values("onboarding", "dla", "admin").
			Default("onboarding"),
		field.String("external_ref").
			Optional(),
		field.Time("signed_at").
			Optional().
			Nillable(),
		field.Time("terminated_at").
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

// Edges of the SupplierAgreement.
func (SupplierAgreement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("warehouse", Warehouse.Type).
			Ref("supplier_agreements").
			Field("warehouse_id").
			Unique().
			Required(),
	}
}

// Indexes of the SupplierAgreement.
func (SupplierAgreement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("warehouse_id", "status"),
		// A warehouse carries at most one signed network agreement
		index.Fields("warehouse_id").
			Unique().
			Annotations(entsql.IndexWhere("status = 'signed'")),
	}
}
