package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PaymentRecord is one monthly billing cycle on an active engagement. The two
// sides settle independently, so buyer and supplier each carry their own
// status. wex_amount is always buyer_amount minus supplier_amount. The
// billing job creates rows keyed on (engagement_id, period_start) so a rerun
// for the same month is a no-op.
type PaymentRecord struct {
	ent.Schema
}

// Fields of the PaymentRecord.
func (PaymentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("payment_id").
			Unique().
			Immutable(),
		field.String("engagement_id").
			Immutable(),
		field.Time("period_start").
			Immutable(),
		field.Time("period_end").
			Immutable(),
		field.Time("due_date").
			Immutable(),
		field.Float("buyer_amount"),
		field.Float("supplier_amount"),
		field.Float("wex_amount").
			Comment("Spread retained by the exchange; equals buyer_amount - supplier_amount"),
		field.Enum("buyer_status").
			Values("upcoming", "invoiced", "paid", "failed", "refunded").
			Default("upcoming"),
		field.Enum("supplier_status").
			Values("upcoming", "invoiced", "paid", "failed", "refunded").
			Default("upcoming"),
		field.Time("buyer_paid_at").
			Optional().
			Nillable(),
		field.Time("supplier_paid_at").
			Optional().
			Nillable(),
		field.String("external_ref").
			Optional().
			Comment("Invoice or charge id at the payment provider"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PaymentRecord.
func (PaymentRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("engagement", Engagement.Type).
			Ref("payments").
			Field("engagement_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PaymentRecord.
func (PaymentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("engagement_id", "period_start").
			Unique(),
		index.Fields("buyer_status", "due_date"),
		index.Fields("supplier_status", "due_date"),
	}
}
