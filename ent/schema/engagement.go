package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Engagement is the central lifecycle object bridging an accepted match to an
// active lease. Status moves only through the transition table in
// pkg/engagement; terminal states are never revisited. All pricing fields are
// snapshots taken when the engagement was created so later TruthCore edits
// cannot move money on in-flight deals.
type Engagement struct {
	ent.Schema
}

// Fields of the Engagement.
func (Engagement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("engagement_id").
			Unique().
			Immutable(),
		field.String("match_id").
			Unique(),
		field.String("buyer_need_id"),
		field.String("warehouse_id"),
		field.String("buyer_id").
			Optional().
			Comment("Set at account_created; SMS deals start anonymous"),
		field.String("company_id").
			Comment("Supplier company, denormalized for authorization checks"),
		field.Enum("status").
			Values(
				"deal_ping_sent",
				"deal_ping_accepted",
				"deal_ping_declined",
				"deal_ping_expired",
				"matched",
				"buyer_reviewing",
				"buyer_accepted",
				"contact_captured",
				"account_created",
				"guarantee_signed",
				"address_revealed",
				"tour_requested",
				"tour_confirmed",
				"tour_rescheduled",
				"tour_completed",
				"instant_book_requested",
				"instant_book_confirmed",
				"buyer_confirmed",
				"agreement_sent",
				"agreement_signed",
				"onboarding",
				"active",
				"completed",
				"declined_by_buyer",
				"declined_by_supplier",
				"expired",
				"cancelled",
			).
			Default("matched"),
		field.Enum("tier").
			Values("tier1", "tier2").
			Default("tier1"),
		field.Enum("path").
			Values("tour", "instant_book").
			Optional().
			Nillable().
			Comment("Chosen by the buyer at accept time"),

		// Deal ping.
		field.Time("deal_ping_sent_at").
			Optional().
			Nillable(),
		field.Time("deal_ping_expires_at").
			Optional().
			Nillable(),

		// Buyer funnel.
		field.Time("buyer_accepted_at").
			Optional().
			Nillable(),
		field.Time("contact_captured_at").
			Optional().
			Nillable(),
		field.Time("account_created_at").
			Optional().
			Nillable(),
		field.Time("guarantee_signed_at").
			Optional().
			Nillable(),
		field.Time("address_revealed_at").
			Optional().
			Nillable(),

		// Tour path.
		field.Time("tour_requested_at").
			Optional().
			Nillable(),
		field.Time("tour_confirmed_at").
			Optional().
			Nillable(),
		field.Time("tour_scheduled_for").
			Optional().
			Nillable(),
		field.Time("tour_completed_at").
			Optional().
			Nillable(),
		field.Int("tour_reschedule_count").
			Default(0),

		// Instant book path.
		field.Time("instant_book_requested_at").
			Optional().
			Nillable(),
		field.Time("instant_book_confirmed_at").
			Optional().
			Nillable(),

		// Agreement and lease.
		field.Time("buyer_confirmed_at").
			Optional().
			Nillable(),
		field.Time("agreement_sent_at").
			Optional().
			Nillable(),
		field.Time("agreement_signed_at").
			Optional().
			Nillable(),
		field.Time("lease_start_date").
			Optional().
			Nillable(),
		field.Time("lease_end_date").
			Optional().
			Nillable(),
		field.Time("activated_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),

		// Onboarding gate flags for onboarding -> active.
		field.Bool("insurance_uploaded").
			Default(false),
		field.Bool("company_docs_uploaded").
			Default(false),
		field.Bool("payment_method_added").
			Default(false),

		// Pricing snapshot. Buyer-side and supplier-side numbers are never
		// shown across the aisle; the serializers enforce that.
		field.Int("sqft").
			Optional(),
		field.Float("supplier_rate").
			Optional(),
		field.Float("buyer_rate").
			Optional(),
		field.Float("monthly_supplier_payout").
			Optional(),
		field.Float("monthly_buyer_total").
			Optional(),

		// Decline / cancel provenance.
		field.Enum("declined_by").
			Values("buyer", "supplier", "system", "admin").
			Optional().
			Nillable(),
		field.String("decline_reason").
			Optional(),
		field.String("cancel_reason").
			Optional(),

		// Scheduler bookkeeping.
		field.Time("decision_timer_paused_at").
			Optional().
			Nillable().
			Comment("Set while a routed supplier question blocks the post-tour decision clock"),
		field.Bool("admin_flagged").
			Default(false),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Engagement.
func (Engagement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("match", Match.Type).
			Ref("engagement").
			Field("match_id").
			Unique().
			Required(),
		edge.To("events", EngagementEvent.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
		edge.To("agreements", EngagementAgreement.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
		edge.To("payments", PaymentRecord.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
		edge.To("upload_tokens", UploadToken.Type),
	}
}

// Indexes of the Engagement.
func (Engagement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("warehouse_id"),
		index.Fields("buyer_need_id"),
		index.Fields("company_id"),
		index.Fields("status", "deal_ping_expires_at"),
		index.Fields("status", "updated_at"),
		index.Fields("status", "lease_start_date"),
	}
}
