package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation is the durable SMS thread state for one phone number. All
// inbound processing for a phone serializes on this row. The orchestrator
// loads it at the top of every turn, merges newly extracted criteria, records
// what was presented so short replies like "the second one" resolve next
// turn, and schedules the next re-engagement nudge from the phase stall
// table.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("phone").
			NotEmpty().
			Unique().
			Comment("E.164 normalized"),
		field.Enum("persona").
			Values("buyer", "supplier", "unknown").
			Default("unknown"),
		field.Enum("phase").
			Values(
				"intake",
				"qualifying",
				"presenting",
				"property_focused",
				"awaiting_answer",
				"collecting_info",
				"commitment",
				"guarantee_pending",
				"tour_scheduling",
			).
			Default("intake"),
		field.Int("turn_count").
			Default(0),
		field.JSON("criteria", map[string]interface{}{}).
			Optional().
			Comment("Last-known merged search criteria"),
		field.JSON("presented_matches", []string{}).
			Optional().
			Comment("Match ids in the order last shown, for ordinal references"),
		field.String("focused_match_id").
			Optional().
			Comment("Fallback target when the buyer says just 'it' or 'that one'"),

		// Identity capture.
		field.String("renter_first_name").
			Optional(),
		field.String("renter_last_name").
			Optional(),
		field.String("buyer_email").
			Optional(),
		field.Enum("name_status").
			Values("none", "requested", "provided", "declined").
			Default("none"),
		field.Int("name_requested_at_turn").
			Optional(),

		// Domain links.
		field.String("user_id").
			Optional(),
		field.String("buyer_need_id").
			Optional().
			Comment("The need this thread is currently shopping for"),
		field.String("warehouse_id").
			Optional().
			Comment("Supplier threads pin to their warehouse"),
		field.String("engagement_id").
			Optional(),

		// One-shot handoff tokens.
		field.String("guarantee_link_token").
			Optional(),
		field.String("search_session_token").
			Optional(),

		field.Enum("status").
			Values("active", "stalled", "opted_out", "closed").
			Default("active"),
		field.Int("reengagement_stage").
			Default(0).
			Comment("0 none, then 1..3 as nudges go out"),
		field.Time("next_reengagement_at").
			Optional().
			Nillable(),
		field.Time("last_inbound_at").
			Optional().
			Nillable(),
		field.Time("last_outbound_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", InboundMessage.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_reengagement_at"),
		index.Fields("phase"),
		index.Fields("persona"),
	}
}
