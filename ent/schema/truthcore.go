package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TruthCore holds the canonical, mutable listing parameters of one warehouse.
// A warehouse with activation_status=on and supplier_status=in_network is
// eligible for Tier-1 clearing.
type TruthCore struct {
	ent.Schema
}

// Fields of the TruthCore.
func (TruthCore) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("truth_core_id").
			Unique().
			Immutable(),
		field.String("warehouse_id").
			Unique(),
		field.Int("min_sqft").
			Comment("Smallest rentable carve-out"),
		field.Int("max_sqft").
			Comment("Largest rentable block"),
		field.Enum("activity_tier").
			Values("storage_only", "storage_office", "storage_light_assembly", "cold_storage").
			Default("storage_only"),
		field.Time("available_from").
			Optional().
			Nillable(),
		field.Time("available_until").
			Optional().
			Nillable(),
		field.Float("supplier_rate_per_sqft").
			Comment("Monthly asking rate per sqft; buyer rate is derived, never stored here"),
		field.Enum("activation_status").
			Values("on", "off").
			Default("off"),
		field.Int("trust_level").
			Default(0).
			Comment("0-5, earned through verified activity"),
		field.Int("dock_doors").
			Default(0),
		field.Float("clear_height_ft").
			Optional(),
		field.Bool("has_office_space").
			Default(false),
		field.Bool("has_sprinkler").
			Default(false),
		field.String("power_service").
			Optional().
			Comment("e.g. 400A 3-phase"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the TruthCore.
func (TruthCore) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("warehouse", Warehouse.Type).
			Ref("truth_core").
			Field("warehouse_id").
			Unique().
			Required(),
	}
}

// Indexes of the TruthCore.
func (TruthCore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activation_status"),
	}
}
