// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conversation type in the database.
	Label = "conversation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "conversation_id"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldPersona holds the string denoting the persona field in the database.
	FieldPersona = "persona"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldTurnCount holds the string denoting the turn_count field in the database.
	FieldTurnCount = "turn_count"
	// FieldCriteria holds the string denoting the criteria field in the database.
	FieldCriteria = "criteria"
	// FieldPresentedMatches holds the string denoting the presented_matches field in the database.
	FieldPresentedMatches = "presented_matches"
	// FieldFocusedMatchID holds the string denoting the focused_match_id field in the database.
	FieldFocusedMatchID = "focused_match_id"
	// FieldRenterFirstName holds the string denoting the renter_first_name field in the database.
	FieldRenterFirstName = "renter_first_name"
	// FieldRenterLastName holds the string denoting the renter_last_name field in the database.
	FieldRenterLastName = "renter_last_name"
	// FieldBuyerEmail holds the string denoting the buyer_email field in the database.
	FieldBuyerEmail = "buyer_email"
	// FieldNameStatus holds the string denoting the name_status field in the database.
	FieldNameStatus = "name_status"
	// FieldNameRequestedAtTurn holds the string denoting the name_requested_at_turn field in the database.
	FieldNameRequestedAtTurn = "name_requested_at_turn"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBuyerNeedID holds the string denoting the buyer_need_id field in the database.
	FieldBuyerNeedID = "buyer_need_id"
	// FieldWarehouseID holds the string denoting the warehouse_id field in the database.
	FieldWarehouseID = "warehouse_id"
	// FieldEngagementID holds the string denoting the engagement_id field in the database.
	FieldEngagementID = "engagement_id"
	// FieldGuaranteeLinkToken holds the string denoting the guarantee_link_token field in the database.
	FieldGuaranteeLinkToken = "guarantee_link_token"
	// FieldSearchSessionToken holds the string denoting the search_session_token field in the database.
	FieldSearchSessionToken = "search_session_token"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReengagementStage holds the string denoting the reengagement_stage field in the database.
	FieldReengagementStage = "reengagement_stage"
	// FieldNextReengagementAt holds the string denoting the next_reengagement_at field in the database.
	FieldNextReengagementAt = "next_reengagement_at"
	// FieldLastInboundAt holds the string denoting the last_inbound_at field in the database.
	FieldLastInboundAt = "last_inbound_at"
	// FieldLastOutboundAt holds the string denoting the last_outbound_at field in the database.
	FieldLastOutboundAt = "last_outbound_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// InboundMessageFieldID holds the string denoting the ID field of the InboundMessage.
	InboundMessageFieldID = "message_id"
	// Table holds the table name of the conversation in the database.
	Table = "conversations"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "inbound_messages"
	// MessagesInverseTable is the table name for the InboundMessage entity.
	// It exists in this package in order to avoid circular dependency with the "inboundmessage" package.
	MessagesInverseTable = "inbound_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "conversation_id"
)

// Columns holds all SQL columns for conversation fields.
var Columns = []string{
	FieldID,
	FieldPhone,
	FieldPersona,
	FieldPhase,
	FieldTurnCount,
	FieldCriteria,
	FieldPresentedMatches,
	FieldFocusedMatchID,
	FieldRenterFirstName,
	FieldRenterLastName,
	FieldBuyerEmail,
	FieldNameStatus,
	FieldNameRequestedAtTurn,
	FieldUserID,
	FieldBuyerNeedID,
	FieldWarehouseID,
	FieldEngagementID,
	FieldGuaranteeLinkToken,
	FieldSearchSessionToken,
	FieldStatus,
	FieldReengagementStage,
	FieldNextReengagementAt,
	FieldLastInboundAt,
	FieldLastOutboundAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// DefaultTurnCount holds the default value on creation for the "turn_count" field.
	DefaultTurnCount int
	// DefaultReengagementStage holds the default value on creation for the "reengagement_stage" field.
	DefaultReengagementStage int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Persona defines the type for the "persona" enum field.
type Persona string

// PersonaUnknown is the default value of the Persona enum.
const DefaultPersona = PersonaUnknown

// Persona values.
const (
	PersonaBuyer    Persona = "buyer"
	PersonaSupplier Persona = "supplier"
	PersonaUnknown  Persona = "unknown"
)

func (pe Persona) String() string {
	return string(pe)
}

// PersonaValidator is a validator for the "persona" field enum values. It is called by the builders before save.
func PersonaValidator(pe Persona) error {
	switch pe {
	case PersonaBuyer, PersonaSupplier, PersonaUnknown:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for persona field: %q", pe)
	}
}

// Phase defines the type for the "phase" enum field.
type Phase string

// PhaseIntake is the default value of the Phase enum.
const DefaultPhase = PhaseIntake

// Phase values.
const (
	PhaseIntake           Phase = "intake"
	PhaseQualifying       Phase = "qualifying"
	PhasePresenting       Phase = "presenting"
	PhasePropertyFocused  Phase = "property_focused"
	PhaseAwaitingAnswer   Phase = "awaiting_answer"
	PhaseCollectingInfo   Phase = "collecting_info"
	PhaseCommitment       Phase = "commitment"
	PhaseGuaranteePending Phase = "guarantee_pending"
	PhaseTourScheduling   Phase = "tour_scheduling"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseIntake, PhaseQualifying, PhasePresenting, PhasePropertyFocused, PhaseAwaitingAnswer, PhaseCollectingInfo, PhaseCommitment, PhaseGuaranteePending, PhaseTourScheduling:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for phase field: %q", ph)
	}
}

// NameStatus defines the type for the "name_status" enum field.
type NameStatus string

// NameStatusNone is the default value of the NameStatus enum.
const DefaultNameStatus = NameStatusNone

// NameStatus values.
const (
	NameStatusNone      NameStatus = "none"
	NameStatusRequested NameStatus = "requested"
	NameStatusProvided  NameStatus = "provided"
	NameStatusDeclined  NameStatus = "declined"
)

func (ns NameStatus) String() string {
	return string(ns)
}

// NameStatusValidator is a validator for the "name_status" field enum values. It is called by the builders before save.
func NameStatusValidator(ns NameStatus) error {
	switch ns {
	case NameStatusNone, NameStatusRequested, NameStatusProvided, NameStatusDeclined:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for name_status field: %q", ns)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusStalled  Status = "stalled"
	StatusOptedOut Status = "opted_out"
	StatusClosed   Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusStalled, StatusOptedOut, StatusClosed:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Conversation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByPersona orders the results by the persona field.
func ByPersona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersona, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// ByTurnCount orders the results by the turn_count field.
func ByTurnCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurnCount, opts...).ToFunc()
}

// ByFocusedMatchID orders the results by the focused_match_id field.
func ByFocusedMatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocusedMatchID, opts...).ToFunc()
}

// ByRenterFirstName orders the results by the renter_first_name field.
func ByRenterFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenterFirstName, opts...).ToFunc()
}

// ByRenterLastName orders the results by the renter_last_name field.
func ByRenterLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRenterLastName, opts...).ToFunc()
}

// ByBuyerEmail orders the results by the buyer_email field.
func ByBuyerEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerEmail, opts...).ToFunc()
}

// ByNameStatus orders the results by the name_status field.
func ByNameStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameStatus, opts...).ToFunc()
}

// ByNameRequestedAtTurn orders the results by the name_requested_at_turn field.
func ByNameRequestedAtTurn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameRequestedAtTurn, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByBuyerNeedID orders the results by the buyer_need_id field.
func ByBuyerNeedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerNeedID, opts...).ToFunc()
}

// ByWarehouseID orders the results by the warehouse_id field.
func ByWarehouseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarehouseID, opts...).ToFunc()
}

// ByEngagementID orders the results by the engagement_id field.
func ByEngagementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementID, opts...).ToFunc()
}

// ByGuaranteeLinkToken orders the results by the guarantee_link_token field.
func ByGuaranteeLinkToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuaranteeLinkToken, opts...).ToFunc()
}

// BySearchSessionToken orders the results by the search_session_token field.
func BySearchSessionToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchSessionToken, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReengagementStage orders the results by the reengagement_stage field.
func ByReengagementStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReengagementStage, opts...).ToFunc()
}

// ByNextReengagementAt orders the results by the next_reengagement_at field.
func ByNextReengagementAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReengagementAt, opts...).ToFunc()
}

// ByLastInboundAt orders the results by the last_inbound_at field.
func ByLastInboundAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInboundAt, opts...).ToFunc()
}

// ByLastOutboundAt orders the results by the last_outbound_at field.
func ByLastOutboundAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastOutboundAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, InboundMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
