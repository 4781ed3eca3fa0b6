package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InboundMessage is a durable work item for the SMS pipeline. The webhook
// handler inserts rows and returns immediately; pool workers claim them with
// FOR UPDATE SKIP LOCKED, one phone at a time, so a burst from the same
// number is processed strictly in arrival order.
type InboundMessage struct {
	ent.Schema
}

// Fields of the InboundMessage.
func (InboundMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("conversation_id"),
		field.String("phone").
			NotEmpty(),
		field.Text("body"),
		field.String("provider_ref").
			Optional().
			Comment("Carrier message id, used to drop duplicate webhook deliveries"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed", "discarded").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.String("claimed_by").
			Optional().
			Comment("Worker id holding the claim"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("failure_reason").
			Optional(),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the InboundMessage.
func (InboundMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required(),
	}
}

// Indexes of the InboundMessage.
func (InboundMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "received_at"),
		index.Fields("phone", "status"),
		index.Fields("provider_ref").
			Unique(),
	}
}
