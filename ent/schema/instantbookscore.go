package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// InstantBookScore is the five-factor breakdown behind a match's
// instant_book_eligible flag. One row per persisted match.
type InstantBookScore struct {
	ent.Schema
}

// Fields of the InstantBookScore.
func (InstantBookScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("instant_book_score_id").
			Unique().
			Immutable(),
		field.String("match_id").
			Unique(),
		field.Float("truth_core_completeness"),
		field.Float("contextual_memory_depth"),
		field.Float("supplier_trust_level"),
		field.Float("match_specificity"),
		field.Float("feature_alignment"),
		field.Float("total"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the InstantBookScore.
func (InstantBookScore) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("match", Match.Type).
			Ref("instant_book_score").
			Field("match_id").
			Unique().
			Required(),
	}
}
