package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MarketRate caches the NNN rate band for one zipcode. Rows are populated by
// a grounded-search LLM fetch and live for 30 days; a stale row is treated as
// a miss and refetched. The static per-state table in pkg/marketrate backstops
// zipcodes that were never fetched.
type MarketRate struct {
	ent.Schema
}

// Fields of the MarketRate.
func (MarketRate) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("market_rate_id").
			Unique().
			Immutable(),
		field.String("zip").
			NotEmpty().
			Unique(),
		field.String("state").
			Optional().
			MaxLen(2).
			Comment("Two-letter state code, uppercase"),
		field.Float("rate_low"),
		field.Float("rate_high"),
		field.Enum("source").
			Values("llm_search", "admin").
			Default("llm_search"),
		field.Time("fetched_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the MarketRate.
func (MarketRate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("fetched_at"),
	}
}
