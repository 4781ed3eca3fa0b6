package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SearchSession records one clearing run presented over SMS or the public
// search surface. The token lets the prospect continue on the web without an
// account for 48 hours; sessions also let an admin replay exactly what a
// prospect saw.
type SearchSession struct {
	ent.Schema
}

// Fields of the SearchSession.
func (SearchSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("search_session_id").
			Unique().
			Immutable(),
		field.String("token").
			NotEmpty().
			Unique().
			Immutable().
			Comment("URL-safe random value"),
		field.String("phone").
			Optional(),
		field.String("buyer_need_id").
			Optional(),
		field.JSON("criteria", map[string]interface{}{}).
			Comment("Search parameters as submitted"),
		field.JSON("result_matches", []string{}).
			Optional().
			Comment("Match ids returned, best first"),
		field.Int("result_count").
			Default(0),
		field.Bool("dla_triggered").
			Default(false),
		field.Time("expires_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the SearchSession.
func (SearchSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("phone"),
		index.Fields("expires_at"),
	}
}
