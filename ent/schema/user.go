package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User belongs to a Company. The persona decides which side of the market the
// user acts for; company_role gates intra-company administration.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("company_id"),
		field.String("email").
			Unique(),
		field.String("phone").
			Optional().
			Comment("E.164, used to link SMS conversations to accounts"),
		field.String("first_name").
			Optional(),
		field.String("last_name").
			Optional(),
		field.Enum("persona").
			Values("buyer", "supplier", "admin").
			Default("buyer"),
		field.Enum("company_role").
			Values("admin", "member").
			Default("member"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("company", Company.Type).
			Ref("users").
			Field("company_id").
			Unique().
			Required(),
		edge.To("buyer_needs", BuyerNeed.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("company_id"),
		index.Fields("phone"),
	}
}
