package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BuyerNeed is one demand record: what a buyer wants, where, and when.
// Created from web forms or distilled out of SMS conversations.
type BuyerNeed struct {
	ent.Schema
}

// Fields of the BuyerNeed.
func (BuyerNeed) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("buyer_need_id").
			Unique().
			Immutable(),
		field.String("buyer_id").
			Optional().
			Comment("Empty for anonymous SMS demand until an account exists"),
		field.String("phone").
			Optional().
			Comment("Set when the need originated from an SMS conversation"),
		field.String("city"),
		field.String("state"),
		field.Float("lat").
			Optional().
			Nillable(),
		field.Float("lng").
			Optional().
			Nillable(),
		field.Float("radius_miles").
			Default(25),
		field.Int("min_sqft"),
		field.Int("max_sqft"),
		field.String("use_type").
			Comment("Buyer-side need key resolved against the use-type matrix"),
		field.Time("needed_from").
			Optional().
			Nillable(),
		field.Int("duration_months").
			Optional(),
		field.Float("max_budget_per_sqft").
			Optional().
			Nillable(),
		field.JSON("requirements", map[string]interface{}{}).
			Optional().
			Comment("Free-form requirement map fed to the LLM feature pass"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the BuyerNeed.
func (BuyerNeed) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("buyer", User.Type).
			Ref("buyer_needs").
			Field("buyer_id").
			Unique(),
		edge.To("matches", Match.Type),
		edge.To("dla_tokens", DLAToken.Type),
	}
}

// Indexes of the BuyerNeed.
func (BuyerNeed) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("buyer_id"),
		index.Fields("phone"),
		index.Fields("created_at"),
	}
}
