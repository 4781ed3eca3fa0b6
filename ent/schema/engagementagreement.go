package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EngagementAgreement tracks one document on an engagement: the buyer
// guarantee (single sign) or the lease agreement (dual sign). Agreements are
// versioned; re-sending voids the previous version and creates the next.
// Pricing is snapshotted so the signed paper never drifts from what either
// side saw.
type EngagementAgreement struct {
	ent.Schema
}

// Fields of the EngagementAgreement.
func (EngagementAgreement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agreement_id").
			Unique().
			Immutable(),
		field.String("engagement_id").
			Immutable(),
		field.Enum("agreement_type").
			Values("guarantee", "lease").
			Immutable(),
		field.Int("version").
			Default(1).
			Immutable(),
		field.Enum("status").
			Values("draft", "sent", "signed", "voided", "expired").
			Default("draft"),
		field.Time("buyer_signed_at").
			Optional().
			Nillable(),
		field.Time("supplier_signed_at").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Optional().
			Nillable(),

		// Pricing snapshot at send time.
		field.Int("sqft").
			Optional(),
		field.Float("buyer_rate").
			Optional(),
		field.Float("supplier_rate").
			Optional(),
		field.Float("monthly_buyer_total").
			Optional(),
		field.Float("monthly_supplier_payout").
			Optional(),

		field.String("external_ref").
			Optional().
			Comment("Envelope id at the e-sign provider"),
		field.String("document_url").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the EngagementAgreement.
func (EngagementAgreement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("engagement", Engagement.Type).
			Ref("agreements").
			Field("engagement_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EngagementAgreement.
func (EngagementAgreement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("engagement_id", "agreement_type", "version").
			Unique(),
		index.Fields("status"),
	}
}
