package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UploadToken is a short-lived link that lets a buyer submit one onboarding
// document (insurance certificate, company docs) without a full session.
// Tokens are single purpose and consumed on upload.
type UploadToken struct {
	ent.Schema
}

// Fields of the UploadToken.
func (UploadToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("upload_token_id").
			Unique().
			Immutable(),
		field.String("token").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("engagement_id").
			Immutable(),
		field.Enum("purpose").
			Values("insurance", "company_docs").
			Immutable(),
		field.Enum("status").
			Values("pending", "used", "expired").
			Default("pending"),
		field.String("uploaded_file_url").
			Optional(),
		field.Time("expires_at").
			Immutable(),
		field.Time("used_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the UploadToken.
func (UploadToken) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("engagement", Engagement.Type).
			Ref("upload_tokens").
			Field("engagement_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UploadToken.
func (UploadToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "expires_at"),
		index.Fields("engagement_id", "purpose"),
	}
}
