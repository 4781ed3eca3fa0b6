package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DLAToken is an opaque time-bounded capability binding one off-network
// warehouse to one buyer need. It drives the four-step supplier flow
// (confirm, rate, agree, outcome); the token itself is the only credential.
// Tokens expire after 48 hours by default.
type DLAToken struct {
	ent.Schema
}

// Fields of the DLAToken.
func (DLAToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dla_token_id").
			Unique().
			Immutable(),
		field.String("token").
			NotEmpty().
			Unique().
			Immutable().
			Comment("32-char hex capability value"),
		field.String("warehouse_id").
			Immutable(),
		field.String("buyer_need_id").
			Immutable().
			Comment("The demand that triggered the outreach"),
		field.Enum("status").
			Values("pending", "interested", "rate_decided", "confirmed", "declined", "expired").
			Default("pending"),
		field.Float("suggested_rate").
			Optional().
			Nillable().
			Comment("Blended rate proposal computed at the rate step"),
		field.Float("final_rate").
			Optional().
			Nillable().
			Comment("Accepted or countered rate; written to the TruthCore on confirm"),
		field.Int("proposed_sqft").
			Immutable().
			Comment("Anonymized buyer requirement shown to the supplier"),
		field.Time("expires_at").
			Immutable(),
		field.Time("confirmed_at").
			Optional().
			Nillable(),
		field.Time("responded_at").
			Optional().
			Nillable(),
		field.String("outcome_note").
			Optional().
			Comment("Non-conversion detail, mirrored into a ContextualMemory"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DLAToken.
func (DLAToken) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("warehouse", Warehouse.Type).
			Ref("dla_tokens").
			Field("warehouse_id").
			Unique().
			Required().
			Immutable(),
		edge.From("buyer_need", BuyerNeed.Type).
			Ref("dla_tokens").
			Field("buyer_need_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DLAToken.
func (DLAToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "expires_at"),
		// One live offer per warehouse and need at a time
		index.Fields("warehouse_id", "buyer_need_id").
			Unique().
			Annotations(entsql.IndexWhere("status IN ('pending', 'interested')")),
	}
}
