package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification is one outbound message in the delivery outbox. Rows are
// written in the same transaction as the state change that caused them; the
// drain loop hands pending rows to the channel sender and records the result,
// so a crash between commit and send never loses a message.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("notification_id").
			Unique().
			Immutable(),
		field.Enum("channel").
			Values("sms", "email").
			Immutable(),
		field.String("recipient").
			NotEmpty().
			Immutable().
			Comment("Phone for sms, address for email"),
		field.String("subject").
			Optional(),
		field.Text("body").
			NotEmpty(),
		field.String("ref_type").
			Optional().
			Comment("Domain object that produced this, e.g. engagement, dla_token"),
		field.String("ref_id").
			Optional(),
		field.String("dedupe_key").
			Optional().
			Unique().
			Comment("Set by idempotent jobs so retries cannot double-send"),
		field.Enum("status").
			Values("pending", "sent", "failed", "cancelled").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.String("last_error").
			Optional(),
		field.Time("scheduled_for").
			Optional().
			Nillable().
			Comment("Empty means send on next drain"),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("ref_type", "ref_id"),
	}
}
