package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Match is a scored (BuyerNeed x Warehouse) pair produced by the clearing
// engine. composite_score is the weighted sum of the six dimension scores and
// always lands in [0,100]. Only Tier-1 results are persisted.
type Match struct {
	ent.Schema
}

// Fields of the Match.
func (Match) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("match_id").
			Unique().
			Immutable(),
		field.String("buyer_need_id"),
		field.String("warehouse_id"),
		field.Float("composite_score"),
		field.Float("location_score"),
		field.Float("size_score"),
		field.Float("use_type_score"),
		field.Float("feature_score"),
		field.Float("timing_score"),
		field.Float("budget_score"),
		field.Float("distance_miles").
			Optional().
			Nillable(),
		field.Text("reasoning").
			Optional().
			Comment("LLM feature-pass reasoning; empty when the pass degraded"),
		field.JSON("callouts", []string{}).
			Optional().
			Comment("Short human-readable score callouts for display"),
		field.Bool("instant_book_eligible").
			Default(false),
		field.Bool("within_budget").
			Default(true),
		field.Float("buyer_rate").
			Comment("Snapshot of the derived buyer rate at scoring time"),
		field.Enum("status").
			Values("pending", "presented", "accepted", "declined").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Match.
func (Match) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("buyer_need", BuyerNeed.Type).
			Ref("matches").
			Field("buyer_need_id").
			Unique().
			Required(),
		edge.From("warehouse", Warehouse.Type).
			Ref("matches").
			Field("warehouse_id").
			Unique().
			Required(),
		edge.To("instant_book_score", InstantBookScore.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("engagement", Engagement.Type).
			Unique(),
	}
}

// Indexes of the Match.
func (Match) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("buyer_need_id", "warehouse_id").
			Unique(),
		index.Fields("warehouse_id"),
		index.Fields("status"),
		index.Fields("buyer_need_id", "composite_score"),
	}
}
