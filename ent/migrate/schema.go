// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BuyerNeedsColumns holds the columns for the "buyer_needs" table.
	BuyerNeedsColumns = []*schema.Column{
		{Name: "buyer_need_id", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString},
		{Name: "state", Type: field.TypeString},
		{Name: "lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "lng", Type: field.TypeFloat64, Nullable: true},
		{Name: "radius_miles", Type: field.TypeFloat64, Default: 25},
		{Name: "min_sqft", Type: field.TypeInt},
		{Name: "max_sqft", Type: field.TypeInt},
		{Name: "use_type", Type: field.TypeString},
		{Name: "needed_from", Type: field.TypeTime, Nullable: true},
		{Name: "duration_months", Type: field.TypeInt, Nullable: true},
		{Name: "max_budget_per_sqft", Type: field.TypeFloat64, Nullable: true},
		{Name: "requirements", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "buyer_id", Type: field.TypeString, Nullable: true},
	}
	// BuyerNeedsTable holds the schema information for the "buyer_needs" table.
	BuyerNeedsTable = &schema.Table{
		Name:       "buyer_needs",
		Columns:    BuyerNeedsColumns,
		PrimaryKey: []*schema.Column{BuyerNeedsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "buyer_needs_users_buyer_needs",
				Columns:    []*schema.Column{BuyerNeedsColumns[16]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "buyerneed_buyer_id",
				Unique:  false,
				Columns: []*schema.Column{BuyerNeedsColumns[16]},
			},
			{
				Name:    "buyerneed_phone",
				Unique:  false,
				Columns: []*schema.Column{BuyerNeedsColumns[1]},
			},
			{
				Name:    "buyerneed_created_at",
				Unique:  false,
				Columns: []*schema.Column{BuyerNeedsColumns[14]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "company_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "billing_email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
	}
	// ContextualMemoriesColumns holds the columns for the "contextual_memories" table.
	ContextualMemoriesColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"operations", "access", "condition", "pricing", "availability", "general"}, Default: "general"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"supplier_sms", "admin", "tour_feedback", "onboarding"}, Default: "admin"},
		{Name: "recorded_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "warehouse_id", Type: field.TypeString},
	}
	// ContextualMemoriesTable holds the schema information for the "contextual_memories" table.
	ContextualMemoriesTable = &schema.Table{
		Name:       "contextual_memories",
		Columns:    ContextualMemoriesColumns,
		PrimaryKey: []*schema.Column{ContextualMemoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contextual_memories_warehouses_memories",
				Columns:    []*schema.Column{ContextualMemoriesColumns[6]},
				RefColumns: []*schema.Column{WarehousesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contextualmemory_warehouse_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContextualMemoriesColumns[6], ContextualMemoriesColumns[5]},
			},
			{
				Name:    "contextualmemory_category",
				Unique:  false,
				Columns: []*schema.Column{ContextualMemoriesColumns[1]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Unique: true},
		{Name: "persona", Type: field.TypeEnum, Enums: []string{"buyer", "supplier", "unknown"}, Default: "unknown"},
		{Name: "phase", Type: field.TypeEnum, Enums: []string{"intake", "qualifying", "presenting", "property_focused", "awaiting_answer", "collecting_info", "commitment", "guarantee_pending", "tour_scheduling"}, Default: "intake"},
		{Name: "turn_count", Type: field.TypeInt, Default: 0},
		{Name: "criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "presented_matches", Type: field.TypeJSON, Nullable: true},
		{Name: "focused_match_id", Type: field.TypeString, Nullable: true},
		{Name: "renter_first_name", Type: field.TypeString, Nullable: true},
		{Name: "renter_last_name", Type: field.TypeString, Nullable: true},
		{Name: "buyer_email", Type: field.TypeString, Nullable: true},
		{Name: "name_status", Type: field.TypeEnum, Enums: []string{"none", "requested", "provided", "declined"}, Default: "none"},
		{Name: "name_requested_at_turn", Type: field.TypeInt, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "buyer_need_id", Type: field.TypeString, Nullable: true},
		{Name: "warehouse_id", Type: field.TypeString, Nullable: true},
		{Name: "engagement_id", Type: field.TypeString, Nullable: true},
		{Name: "guarantee_link_token", Type: field.TypeString, Nullable: true},
		{Name: "search_session_token", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "stalled", "opted_out", "closed"}, Default: "active"},
		{Name: "reengagement_stage", Type: field.TypeInt, Default: 0},
		{Name: "next_reengagement_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_inbound_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_outbound_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_status_next_reengagement_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[19], ConversationsColumns[21]},
			},
			{
				Name:    "conversation_phase",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[3]},
			},
			{
				Name:    "conversation_persona",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[2]},
			},
		},
	}
	// DlaTokensColumns holds the columns for the "dla_tokens" table.
	DlaTokensColumns = []*schema.Column{
		{Name: "dla_token_id", Type: field.TypeString, Unique: true},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "interested", "rate_decided", "confirmed", "declined", "expired"}, Default: "pending"},
		{Name: "suggested_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "final_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "proposed_sqft", Type: field.TypeInt},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
		{Name: "outcome_note", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "buyer_need_id", Type: field.TypeString},
		{Name: "warehouse_id", Type: field.TypeString},
	}
	// DlaTokensTable holds the schema information for the "dla_tokens" table.
	DlaTokensTable = &schema.Table{
		Name:       "dla_tokens",
		Columns:    DlaTokensColumns,
		PrimaryKey: []*schema.Column{DlaTokensColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dla_tokens_buyer_needs_dla_tokens",
				Columns:    []*schema.Column{DlaTokensColumns[12]},
				RefColumns: []*schema.Column{BuyerNeedsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "dla_tokens_warehouses_dla_tokens",
				Columns:    []*schema.Column{DlaTokensColumns[13]},
				RefColumns: []*schema.Column{WarehousesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dlatoken_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{DlaTokensColumns[2], DlaTokensColumns[6]},
			},
			{
				Name:    "dlatoken_warehouse_id_buyer_need_id",
				Unique:  true,
				Columns: []*schema.Column{DlaTokensColumns[13], DlaTokensColumns[12]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status IN ('pending', 'interested')",
				},
			},
		},
	}
	// EngagementsColumns holds the columns for the "engagements" table.
	EngagementsColumns = []*schema.Column{
		{Name: "engagement_id", Type: field.TypeString, Unique: true},
		{Name: "buyer_need_id", Type: field.TypeString},
		{Name: "warehouse_id", Type: field.TypeString},
		{Name: "buyer_id", Type: field.TypeString, Nullable: true},
		{Name: "company_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"deal_ping_sent", "deal_ping_accepted", "deal_ping_declined", "deal_ping_expired", "matched", "buyer_reviewing", "buyer_accepted", "contact_captured", "account_created", "guarantee_signed", "address_revealed", "tour_requested", "tour_confirmed", "tour_rescheduled", "tour_completed", "instant_book_requested", "instant_book_confirmed", "buyer_confirmed", "agreement_sent", "agreement_signed", "onboarding", "active", "completed", "declined_by_buyer", "declined_by_supplier", "expired", "cancelled"}, Default: "matched"},
		{Name: "tier", Type: field.TypeEnum, Enums: []string{"tier1", "tier2"}, Default: "tier1"},
		{Name: "path", Type: field.TypeEnum, Nullable: true, Enums: []string{"tour", "instant_book"}},
		{Name: "deal_ping_sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "deal_ping_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "buyer_accepted_at", Type: field.TypeTime, Nullable: true},
		{Name: "contact_captured_at", Type: field.TypeTime, Nullable: true},
		{Name: "account_created_at", Type: field.TypeTime, Nullable: true},
		{Name: "guarantee_signed_at", Type: field.TypeTime, Nullable: true},
		{Name: "address_revealed_at", Type: field.TypeTime, Nullable: true},
		{Name: "tour_requested_at", Type: field.TypeTime, Nullable: true},
		{Name: "tour_confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "tour_scheduled_for", Type: field.TypeTime, Nullable: true},
		{Name: "tour_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "tour_reschedule_count", Type: field.TypeInt, Default: 0},
		{Name: "instant_book_requested_at", Type: field.TypeTime, Nullable: true},
		{Name: "instant_book_confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "buyer_confirmed_at", Type: field.TypeTime, Nullable: true},
		{Name: "agreement_sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "agreement_signed_at", Type: field.TypeTime, Nullable: true},
		{Name: "lease_start_date", Type: field.TypeTime, Nullable: true},
		{Name: "lease_end_date", Type: field.TypeTime, Nullable: true},
		{Name: "activated_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "insurance_uploaded", Type: field.TypeBool, Default: false},
		{Name: "company_docs_uploaded", Type: field.TypeBool, Default: false},
		{Name: "payment_method_added", Type: field.TypeBool, Default: false},
		{Name: "sqft", Type: field.TypeInt, Nullable: true},
		{Name: "supplier_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "buyer_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "monthly_supplier_payout", Type: field.TypeFloat64, Nullable: true},
		{Name: "monthly_buyer_total", Type: field.TypeFloat64, Nullable: true},
		{Name: "declined_by", Type: field.TypeEnum, Nullable: true, Enums: []string{"buyer", "supplier", "system", "admin"}},
		{Name: "decline_reason", Type: field.TypeString, Nullable: true},
		{Name: "cancel_reason", Type: field.TypeString, Nullable: true},
		{Name: "decision_timer_paused_at", Type: field.TypeTime, Nullable: true},
		{Name: "admin_flagged", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "match_id", Type: field.TypeString, Unique: true},
	}
	// EngagementsTable holds the schema information for the "engagements" table.
	EngagementsTable = &schema.Table{
		Name:       "engagements",
		Columns:    EngagementsColumns,
		PrimaryKey: []*schema.Column{EngagementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "engagements_matches_engagement",
				Columns:    []*schema.Column{EngagementsColumns[44]},
				RefColumns: []*schema.Column{MatchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "engagement_status",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[5]},
			},
			{
				Name:    "engagement_warehouse_id",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[2]},
			},
			{
				Name:    "engagement_buyer_need_id",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[1]},
			},
			{
				Name:    "engagement_company_id",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[4]},
			},
			{
				Name:    "engagement_status_deal_ping_expires_at",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[5], EngagementsColumns[9]},
			},
			{
				Name:    "engagement_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[5], EngagementsColumns[43]},
			},
			{
				Name:    "engagement_status_lease_start_date",
				Unique:  false,
				Columns: []*schema.Column{EngagementsColumns[5], EngagementsColumns[25]},
			},
		},
	}
	// EngagementAgreementsColumns holds the columns for the "engagement_agreements" table.
	EngagementAgreementsColumns = []*schema.Column{
		{Name: "agreement_id", Type: field.TypeString, Unique: true},
		{Name: "agreement_type", Type: field.TypeEnum, Enums: []string{"guarantee", "lease"}},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "sent", "signed", "voided", "expired"}, Default: "draft"},
		{Name: "buyer_signed_at", Type: field.TypeTime, Nullable: true},
		{Name: "supplier_signed_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "sqft", Type: field.TypeInt, Nullable: true},
		{Name: "buyer_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "supplier_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "monthly_buyer_total", Type: field.TypeFloat64, Nullable: true},
		{Name: "monthly_supplier_payout", Type: field.TypeFloat64, Nullable: true},
		{Name: "external_ref", Type: field.TypeString, Nullable: true},
		{Name: "document_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "engagement_id", Type: field.TypeString},
	}
	// EngagementAgreementsTable holds the schema information for the "engagement_agreements" table.
	EngagementAgreementsTable = &schema.Table{
		Name:       "engagement_agreements",
		Columns:    EngagementAgreementsColumns,
		PrimaryKey: []*schema.Column{EngagementAgreementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "engagement_agreements_engagements_agreements",
				Columns:    []*schema.Column{EngagementAgreementsColumns[16]},
				RefColumns: []*schema.Column{EngagementsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "engagementagreement_engagement_id_agreement_type_version",
				Unique:  true,
				Columns: []*schema.Column{EngagementAgreementsColumns[16], EngagementAgreementsColumns[1], EngagementAgreementsColumns[2]},
			},
			{
				Name:    "engagementagreement_status",
				Unique:  false,
				Columns: []*schema.Column{EngagementAgreementsColumns[3]},
			},
		},
	}
	// EngagementEventsColumns holds the columns for the "engagement_events" table.
	EngagementEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "actor_role", Type: field.TypeEnum, Enums: []string{"buyer", "supplier", "admin", "system"}},
		{Name: "actor_id", Type: field.TypeString, Nullable: true},
		{Name: "from_status", Type: field.TypeString, Nullable: true},
		{Name: "to_status", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "engagement_id", Type: field.TypeString},
	}
	// EngagementEventsTable holds the schema information for the "engagement_events" table.
	EngagementEventsTable = &schema.Table{
		Name:       "engagement_events",
		Columns:    EngagementEventsColumns,
		PrimaryKey: []*schema.Column{EngagementEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "engagement_events_engagements_events",
				Columns:    []*schema.Column{EngagementEventsColumns[8]},
				RefColumns: []*schema.Column{EngagementsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "engagementevent_engagement_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EngagementEventsColumns[8], EngagementEventsColumns[7]},
			},
			{
				Name:    "engagementevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{EngagementEventsColumns[1]},
			},
		},
	}
	// InboundMessagesColumns holds the columns for the "inbound_messages" table.
	InboundMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "provider_ref", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed", "discarded"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// InboundMessagesTable holds the schema information for the "inbound_messages" table.
	InboundMessagesTable = &schema.Table{
		Name:       "inbound_messages",
		Columns:    InboundMessagesColumns,
		PrimaryKey: []*schema.Column{InboundMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inbound_messages_conversations_messages",
				Columns:    []*schema.Column{InboundMessagesColumns[12]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inboundmessage_status_received_at",
				Unique:  false,
				Columns: []*schema.Column{InboundMessagesColumns[4], InboundMessagesColumns[11]},
			},
			{
				Name:    "inboundmessage_phone_status",
				Unique:  false,
				Columns: []*schema.Column{InboundMessagesColumns[1], InboundMessagesColumns[4]},
			},
			{
				Name:    "inboundmessage_provider_ref",
				Unique:  true,
				Columns: []*schema.Column{InboundMessagesColumns[3]},
			},
		},
	}
	// InstantBookScoresColumns holds the columns for the "instant_book_scores" table.
	InstantBookScoresColumns = []*schema.Column{
		{Name: "instant_book_score_id", Type: field.TypeString, Unique: true},
		{Name: "truth_core_completeness", Type: field.TypeFloat64},
		{Name: "contextual_memory_depth", Type: field.TypeFloat64},
		{Name: "supplier_trust_level", Type: field.TypeFloat64},
		{Name: "match_specificity", Type: field.TypeFloat64},
		{Name: "feature_alignment", Type: field.TypeFloat64},
		{Name: "total", Type: field.TypeFloat64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "match_id", Type: field.TypeString, Unique: true},
	}
	// InstantBookScoresTable holds the schema information for the "instant_book_scores" table.
	InstantBookScoresTable = &schema.Table{
		Name:       "instant_book_scores",
		Columns:    InstantBookScoresColumns,
		PrimaryKey: []*schema.Column{InstantBookScoresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "instant_book_scores_matches_instant_book_score",
				Columns:    []*schema.Column{InstantBookScoresColumns[8]},
				RefColumns: []*schema.Column{MatchesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// MarketRatesColumns holds the columns for the "market_rates" table.
	MarketRatesColumns = []*schema.Column{
		{Name: "market_rate_id", Type: field.TypeString, Unique: true},
		{Name: "zip", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeString, Nullable: true, Size: 2},
		{Name: "rate_low", Type: field.TypeFloat64},
		{Name: "rate_high", Type: field.TypeFloat64},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"llm_search", "admin"}, Default: "llm_search"},
		{Name: "fetched_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MarketRatesTable holds the schema information for the "market_rates" table.
	MarketRatesTable = &schema.Table{
		Name:       "market_rates",
		Columns:    MarketRatesColumns,
		PrimaryKey: []*schema.Column{MarketRatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "marketrate_state",
				Unique:  false,
				Columns: []*schema.Column{MarketRatesColumns[2]},
			},
			{
				Name:    "marketrate_fetched_at",
				Unique:  false,
				Columns: []*schema.Column{MarketRatesColumns[6]},
			},
		},
	}
	// MatchesColumns holds the columns for the "matches" table.
	MatchesColumns = []*schema.Column{
		{Name: "match_id", Type: field.TypeString, Unique: true},
		{Name: "composite_score", Type: field.TypeFloat64},
		{Name: "location_score", Type: field.TypeFloat64},
		{Name: "size_score", Type: field.TypeFloat64},
		{Name: "use_type_score", Type: field.TypeFloat64},
		{Name: "feature_score", Type: field.TypeFloat64},
		{Name: "timing_score", Type: field.TypeFloat64},
		{Name: "budget_score", Type: field.TypeFloat64},
		{Name: "distance_miles", Type: field.TypeFloat64, Nullable: true},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "callouts", Type: field.TypeJSON, Nullable: true},
		{Name: "instant_book_eligible", Type: field.TypeBool, Default: false},
		{Name: "within_budget", Type: field.TypeBool, Default: true},
		{Name: "buyer_rate", Type: field.TypeFloat64},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "presented", "accepted", "declined"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "buyer_need_id", Type: field.TypeString},
		{Name: "warehouse_id", Type: field.TypeString},
	}
	// MatchesTable holds the schema information for the "matches" table.
	MatchesTable = &schema.Table{
		Name:       "matches",
		Columns:    MatchesColumns,
		PrimaryKey: []*schema.Column{MatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "matches_buyer_needs_matches",
				Columns:    []*schema.Column{MatchesColumns[17]},
				RefColumns: []*schema.Column{BuyerNeedsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "matches_warehouses_matches",
				Columns:    []*schema.Column{MatchesColumns[18]},
				RefColumns: []*schema.Column{WarehousesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "match_buyer_need_id_warehouse_id",
				Unique:  true,
				Columns: []*schema.Column{MatchesColumns[17], MatchesColumns[18]},
			},
			{
				Name:    "match_warehouse_id",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[18]},
			},
			{
				Name:    "match_status",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[14]},
			},
			{
				Name:    "match_buyer_need_id_composite_score",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[17], MatchesColumns[1]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "notification_id", Type: field.TypeString, Unique: true},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"sms", "email"}},
		{Name: "recipient", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "ref_type", Type: field.TypeString, Nullable: true},
		{Name: "ref_id", Type: field.TypeString, Nullable: true},
		{Name: "dedupe_key", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "failed", "cancelled"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "scheduled_for", Type: field.TypeTime, Nullable: true},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "notification_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[8], NotificationsColumns[13]},
			},
			{
				Name:    "notification_ref_type_ref_id",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[5], NotificationsColumns[6]},
			},
		},
	}
	// PaymentRecordsColumns holds the columns for the "payment_records" table.
	PaymentRecordsColumns = []*schema.Column{
		{Name: "payment_id", Type: field.TypeString, Unique: true},
		{Name: "period_start", Type: field.TypeTime},
		{Name: "period_end", Type: field.TypeTime},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "buyer_amount", Type: field.TypeFloat64},
		{Name: "supplier_amount", Type: field.TypeFloat64},
		{Name: "wex_amount", Type: field.TypeFloat64},
		{Name: "buyer_status", Type: field.TypeEnum, Enums: []string{"upcoming", "invoiced", "paid", "failed", "refunded"}, Default: "upcoming"},
		{Name: "supplier_status", Type: field.TypeEnum, Enums: []string{"upcoming", "invoiced", "paid", "failed", "refunded"}, Default: "upcoming"},
		{Name: "buyer_paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "supplier_paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "external_ref", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "engagement_id", Type: field.TypeString},
	}
	// PaymentRecordsTable holds the schema information for the "payment_records" table.
	PaymentRecordsTable = &schema.Table{
		Name:       "payment_records",
		Columns:    PaymentRecordsColumns,
		PrimaryKey: []*schema.Column{PaymentRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payment_records_engagements_payments",
				Columns:    []*schema.Column{PaymentRecordsColumns[14]},
				RefColumns: []*schema.Column{EngagementsColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "paymentrecord_engagement_id_period_start",
				Unique:  true,
				Columns: []*schema.Column{PaymentRecordsColumns[14], PaymentRecordsColumns[1]},
			},
			{
				Name:    "paymentrecord_buyer_status_due_date",
				Unique:  false,
				Columns: []*schema.Column{PaymentRecordsColumns[7], PaymentRecordsColumns[3]},
			},
			{
				Name:    "paymentrecord_supplier_status_due_date",
				Unique:  false,
				Columns: []*schema.Column{PaymentRecordsColumns[8], PaymentRecordsColumns[3]},
			},
		},
	}
	// PropertyKnowledgeColumns holds the columns for the "property_knowledge" table.
	PropertyKnowledgeColumns = []*schema.Column{
		{Name: "knowledge_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"supplier", "admin", "onboarding"}, Default: "supplier"},
		{Name: "source_question_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "warehouse_id", Type: field.TypeString},
	}
	// PropertyKnowledgeTable holds the schema information for the "property_knowledge" table.
	PropertyKnowledgeTable = &schema.Table{
		Name:       "property_knowledge",
		Columns:    PropertyKnowledgeColumns,
		PrimaryKey: []*schema.Column{PropertyKnowledgeColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "property_knowledge_warehouses_knowledge",
				Columns:    []*schema.Column{PropertyKnowledgeColumns[7]},
				RefColumns: []*schema.Column{WarehousesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "propertyknowledge_warehouse_id_topic",
				Unique:  true,
				Columns: []*schema.Column{PropertyKnowledgeColumns[7], PropertyKnowledgeColumns[1]},
			},
		},
	}
	// PropertyQuestionsColumns holds the columns for the "property_questions" table.
	PropertyQuestionsColumns = []*schema.Column{
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "engagement_id", Type: field.TypeString, Nullable: true},
		{Name: "asked_by_phone", Type: field.TypeString, Nullable: true},
		{Name: "asked_by_user_id", Type: field.TypeString, Nullable: true},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "routed", "answered", "expired"}, Default: "pending"},
		{Name: "answer_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "answer_source", Type: field.TypeEnum, Nullable: true, Enums: []string{"knowledge", "supplier", "admin"}},
		{Name: "routed_at", Type: field.TypeTime, Nullable: true},
		{Name: "answered_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "warehouse_id", Type: field.TypeString},
	}
	// PropertyQuestionsTable holds the schema information for the "property_questions" table.
	PropertyQuestionsTable = &schema.Table{
		Name:       "property_questions",
		Columns:    PropertyQuestionsColumns,
		PrimaryKey: []*schema.Column{PropertyQuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "property_questions_warehouses_questions",
				Columns:    []*schema.Column{PropertyQuestionsColumns[12]},
				RefColumns: []*schema.Column{WarehousesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "propertyquestion_warehouse_id_status",
				Unique:  false,
				Columns: []*schema.Column{PropertyQuestionsColumns[12], PropertyQuestionsColumns[5]},
			},
			{
				Name:    "propertyquestion_status_routed_at",
				Unique:  false,
				Columns: []*schema.Column{PropertyQuestionsColumns[5], PropertyQuestionsColumns[8]},
			},
			{
				Name:    "propertyquestion_engagement_id",
				Unique:  false,
				Columns: []*schema.Column{PropertyQuestionsColumns[1]},
			},
		},
	}
	// SearchSessionsColumns holds the columns for the "search_sessions" table.
	SearchSessionsColumns = []*schema.Column{
		{Name: "search_session_id", Type: field.TypeString, Unique: true},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "buyer_need_id", Type: field.TypeString, Nullable: true},
		{Name: "criteria", Type: field.TypeJSON},
		{Name: "result_matches", Type: field.TypeJSON, Nullable: true},
		{Name: "result_count", Type: field.TypeInt, Default: 0},
		{Name: "dla_triggered", Type: field.TypeBool, Default: false},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SearchSessionsTable holds the schema information for the "search_sessions" table.
	SearchSessionsTable = &schema.Table{
		Name:       "search_sessions",
		Columns:    SearchSessionsColumns,
		PrimaryKey: []*schema.Column{SearchSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "searchsession_phone",
				Unique:  false,
				Columns: []*schema.Column{SearchSessionsColumns[2]},
			},
			{
				Name:    "searchsession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{SearchSessionsColumns[8]},
			},
		},
	}
	// SupplierAgreementsColumns holds the columns for the "supplier_agreements" table.
	SupplierAgreementsColumns = []*schema.Column{
		{Name: "supplier_agreement_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "sent", "signed", "terminated"}, Default: "draft"},
		{Name: "origin", Type: field.TypeEnum, Enums: []string{"onboarding", "dla", "admin"}, Default: "onboarding"},
		{Name: "external_ref", Type: field.TypeString, Nullable: true},
		{Name: "signed_at", Type: field.TypeTime, Nullable: true},
		{Name: "terminated_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "warehouse_id", Type: field.TypeString},
	}
	// SupplierAgreementsTable holds the schema information for the "supplier_agreements" table.
	SupplierAgreementsTable = &schema.Table{
		Name:       "supplier_agreements",
		Columns:    SupplierAgreementsColumns,
		PrimaryKey: []*schema.Column{SupplierAgreementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "supplier_agreements_warehouses_supplier_agreements",
				Columns:    []*schema.Column{SupplierAgreementsColumns[8]},
				RefColumns: []*schema.Column{WarehousesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "supplieragreement_warehouse_id_status",
				Unique:  false,
				Columns: []*schema.Column{SupplierAgreementsColumns[8], SupplierAgreementsColumns[1]},
			},
			{
				Name:    "supplieragreement_warehouse_id",
				Unique:  true,
				Columns: []*schema.Column{SupplierAgreementsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'signed'",
				},
			},
		},
	}
	// ToggleHistoriesColumns holds the columns for the "toggle_histories" table.
	ToggleHistoriesColumns = []*schema.Column{
		{Name: "toggle_id", Type: field.TypeString, Unique: true},
		{Name: "new_state", Type: field.TypeEnum, Enums: []string{"on", "off"}},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"sms", "web", "admin", "system"}},
		{Name: "toggled_by", Type: field.TypeString, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "warehouse_id", Type: field.TypeString},
	}
	// ToggleHistoriesTable holds the schema information for the "toggle_histories" table.
	ToggleHistoriesTable = &schema.Table{
		Name:       "toggle_histories",
		Columns:    ToggleHistoriesColumns,
		PrimaryKey: []*schema.Column{ToggleHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "toggle_histories_warehouses_toggle_history",
				Columns:    []*schema.Column{ToggleHistoriesColumns[6]},
				RefColumns: []*schema.Column{WarehousesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "togglehistory_warehouse_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ToggleHistoriesColumns[6], ToggleHistoriesColumns[5]},
			},
		},
	}
	// TruthCoresColumns holds the columns for the "truth_cores" table.
	TruthCoresColumns = []*schema.Column{
		{Name: "truth_core_id", Type: field.TypeString, Unique: true},
		{Name: "min_sqft", Type: field.TypeInt},
		{Name: "max_sqft", Type: field.TypeInt},
		{Name: "activity_tier", Type: field.TypeEnum, Enums: []string{"storage_only", "storage_office", "storage_light_assembly", "cold_storage"}, Default: "storage_only"},
		{Name: "available_from", Type: field.TypeTime, Nullable: true},
		{Name: "available_until", Type: field.TypeTime, Nullable: true},
		{Name: "supplier_rate_per_sqft", Type: field.TypeFloat64},
		{Name: "activation_status", Type: field.TypeEnum, Enums: []string{"on", "off"}, Default: "off"},
		{Name: "trust_level", Type: field.TypeInt, Default: 0},
		{Name: "dock_doors", Type: field.TypeInt, Default: 0},
		{Name: "clear_height_ft", Type: field.TypeFloat64, Nullable: true},
		{Name: "has_office_space", Type: field.TypeBool, Default: false},
		{Name: "has_sprinkler", Type: field.TypeBool, Default: false},
		{Name: "power_service", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "warehouse_id", Type: field.TypeString, Unique: true},
	}
	// TruthCoresTable holds the schema information for the "truth_cores" table.
	TruthCoresTable = &schema.Table{
		Name:       "truth_cores",
		Columns:    TruthCoresColumns,
		PrimaryKey: []*schema.Column{TruthCoresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "truth_cores_warehouses_truth_core",
				Columns:    []*schema.Column{TruthCoresColumns[16]},
				RefColumns: []*schema.Column{WarehousesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "truthcore_activation_status",
				Unique:  false,
				Columns: []*schema.Column{TruthCoresColumns[7]},
			},
		},
	}
	// UploadTokensColumns holds the columns for the "upload_tokens" table.
	UploadTokensColumns = []*schema.Column{
		{Name: "upload_token_id", Type: field.TypeString, Unique: true},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "purpose", Type: field.TypeEnum, Enums: []string{"insurance", "company_docs"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "used", "expired"}, Default: "pending"},
		{Name: "uploaded_file_url", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "used_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "engagement_id", Type: field.TypeString},
	}
	// UploadTokensTable holds the schema information for the "upload_tokens" table.
	UploadTokensTable = &schema.Table{
		Name:       "upload_tokens",
		Columns:    UploadTokensColumns,
		PrimaryKey: []*schema.Column{UploadTokensColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "upload_tokens_engagements_upload_tokens",
				Columns:    []*schema.Column{UploadTokensColumns[8]},
				RefColumns: []*schema.Column{EngagementsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "uploadtoken_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{UploadTokensColumns[3], UploadTokensColumns[5]},
			},
			{
				Name:    "uploadtoken_engagement_id_purpose",
				Unique:  false,
				Columns: []*schema.Column{UploadTokensColumns[8], UploadTokensColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "persona", Type: field.TypeEnum, Enums: []string{"buyer", "supplier", "admin"}, Default: "buyer"},
		{Name: "company_role", Type: field.TypeEnum, Enums: []string{"admin", "member"}, Default: "member"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_companies_users",
				Columns:    []*schema.Column{UsersColumns[9]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_company_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9]},
			},
			{
				Name:    "user_phone",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// WarehousesColumns holds the columns for the "warehouses" table.
	WarehousesColumns = []*schema.Column{
		{Name: "warehouse_id", Type: field.TypeString, Unique: true},
		{Name: "address", Type: field.TypeString},
		{Name: "city", Type: field.TypeString},
		{Name: "state", Type: field.TypeString},
		{Name: "zip", Type: field.TypeString, Nullable: true},
		{Name: "lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "lng", Type: field.TypeFloat64, Nullable: true},
		{Name: "building_sqft", Type: field.TypeInt, Nullable: true},
		{Name: "year_built", Type: field.TypeInt, Nullable: true},
		{Name: "construction_type", Type: field.TypeString, Nullable: true},
		{Name: "gallery", Type: field.TypeJSON, Nullable: true},
		{Name: "contact_phone", Type: field.TypeString, Nullable: true},
		{Name: "supplier_status", Type: field.TypeEnum, Enums: []string{"third_party", "earncheck_only", "interested", "in_network", "declined", "unresponsive"}, Default: "third_party"},
		{Name: "last_outreach_at", Type: field.TypeTime, Nullable: true},
		{Name: "outreach_count", Type: field.TypeInt, Default: 0},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "company_id", Type: field.TypeString},
	}
	// WarehousesTable holds the schema information for the "warehouses" table.
	WarehousesTable = &schema.Table{
		Name:       "warehouses",
		Columns:    WarehousesColumns,
		PrimaryKey: []*schema.Column{WarehousesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "warehouses_companies_warehouses",
				Columns:    []*schema.Column{WarehousesColumns[18]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "warehouse_supplier_status",
				Unique:  false,
				Columns: []*schema.Column{WarehousesColumns[12]},
			},
			{
				Name:    "warehouse_company_id",
				Unique:  false,
				Columns: []*schema.Column{WarehousesColumns[18]},
			},
			{
				Name:    "warehouse_state_city",
				Unique:  false,
				Columns: []*schema.Column{WarehousesColumns[3], WarehousesColumns[2]},
			},
			{
				Name:    "warehouse_zip",
				Unique:  false,
				Columns: []*schema.Column{WarehousesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BuyerNeedsTable,
		CompaniesTable,
		ContextualMemoriesTable,
		ConversationsTable,
		DlaTokensTable,
		EngagementsTable,
		EngagementAgreementsTable,
		EngagementEventsTable,
		InboundMessagesTable,
		InstantBookScoresTable,
		MarketRatesTable,
		MatchesTable,
		NotificationsTable,
		PaymentRecordsTable,
		PropertyKnowledgeTable,
		PropertyQuestionsTable,
		SearchSessionsTable,
		SupplierAgreementsTable,
		ToggleHistoriesTable,
		TruthCoresTable,
		UploadTokensTable,
		UsersTable,
		WarehousesTable,
	}
)

func init() {
	BuyerNeedsTable.ForeignKeys[0].RefTable = UsersTable
	ContextualMemoriesTable.ForeignKeys[0].RefTable = WarehousesTable
	DlaTokensTable.ForeignKeys[0].RefTable = BuyerNeedsTable
	DlaTokensTable.ForeignKeys[1].RefTable = WarehousesTable
	EngagementsTable.ForeignKeys[0].RefTable = MatchesTable
	EngagementAgreementsTable.ForeignKeys[0].RefTable = EngagementsTable
	EngagementEventsTable.ForeignKeys[0].RefTable = EngagementsTable
	InboundMessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	InstantBookScoresTable.ForeignKeys[0].RefTable = MatchesTable
	MatchesTable.ForeignKeys[0].RefTable = BuyerNeedsTable
	MatchesTable.ForeignKeys[1].RefTable = WarehousesTable
	PaymentRecordsTable.ForeignKeys[0].RefTable = EngagementsTable
	PropertyKnowledgeTable.ForeignKeys[0].RefTable = WarehousesTable
	PropertyKnowledgeTable.Annotation = &entsql.Annotation{
		Table: "property_knowledge",
	}
	PropertyQuestionsTable.ForeignKeys[0].RefTable = WarehousesTable
	SupplierAgreementsTable.ForeignKeys[0].RefTable = WarehousesTable
	ToggleHistoriesTable.ForeignKeys[0].RefTable = WarehousesTable
	TruthCoresTable.ForeignKeys[0].RefTable = WarehousesTable
	UploadTokensTable.ForeignKeys[0].RefTable = EngagementsTable
	UsersTable.ForeignKeys[0].RefTable = CompaniesTable
	WarehousesTable.ForeignKeys[0].RefTable = CompaniesTable
}
