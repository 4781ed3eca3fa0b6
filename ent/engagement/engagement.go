// Code generated by ent, DO NOT EDIT.

package engagement

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the engagement type in the database.
	Label = "engagement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "engagement_id"
	// FieldMatchID holds the string denoting the match_id field in the database.
	FieldMatchID = "match_id"
	// FieldBuyerNeedID holds the string denoting the buyer_need_id field in the database.
	FieldBuyerNeedID = "buyer_need_id"
	// FieldWarehouseID holds the string denoting the warehouse_id field in the database.
	FieldWarehouseID = "warehouse_id"
	// FieldBuyerID holds the string denoting the buyer_id field in the database.
	FieldBuyerID = "buyer_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldDealPingSentAt holds the string denoting the deal_ping_sent_at field in the database.
	FieldDealPingSentAt = "deal_ping_sent_at"
	// FieldDealPingExpiresAt holds the string denoting the deal_ping_expires_at field in the database.
	FieldDealPingExpiresAt = "deal_ping_expires_at"
	// FieldBuyerAcceptedAt holds the string denoting the buyer_accepted_at field in the database.
	FieldBuyerAcceptedAt = "buyer_accepted_at"
	// FieldContactCapturedAt holds the string denoting the contact_captured_at field in the database.
	FieldContactCapturedAt = "contact_captured_at"
	// FieldAccountCreatedAt holds the string denoting the account_created_at field in the database.
	FieldAccountCreatedAt = "account_created_at"
	// FieldGuaranteeSignedAt holds the string denoting the guarantee_signed_at field in the database.
	FieldGuaranteeSignedAt = "guarantee_signed_at"
	// FieldAddressRevealedAt holds the string denoting the address_revealed_at field in the database.
	FieldAddressRevealedAt = "address_revealed_at"
	// FieldTourRequestedAt holds the string denoting the tour_requested_at field in the database.
	FieldTourRequestedAt = "tour_requested_at"
	// FieldTourConfirmedAt holds the string denoting the tour_confirmed_at field in the database.
	FieldTourConfirmedAt = "tour_confirmed_at"
	// FieldTourScheduledFor holds the string denoting the tour_scheduled_for field in the database.
	FieldTourScheduledFor = "tour_scheduled_for"
	// FieldTourCompletedAt holds the string denoting the tour_completed_at field in the database.
	FieldTourCompletedAt = "tour_completed_at"
	// FieldTourRescheduleCount holds the string denoting the tour_reschedule_count field in the database.
	FieldTourRescheduleCount = "tour_reschedule_count"
	// FieldInstantBookRequestedAt holds the string denoting the instant_book_requested_at field in the database.
	FieldInstantBookRequestedAt = "instant_book_requested_at"
	// FieldInstantBookConfirmedAt holds the string denoting the instant_book_confirmed_at field in the database.
	FieldInstantBookConfirmedAt = "instant_book_confirmed_at"
	// FieldBuyerConfirmedAt holds the string denoting the buyer_confirmed_at field in the database.
	FieldBuyerConfirmedAt = "buyer_confirmed_at"
	// FieldAgreementSentAt holds the string denoting the agreement_sent_at field in the database.
	FieldAgreementSentAt = "agreement_sent_at"
	// FieldAgreementSignedAt holds the string denoting the agreement_signed_at field in the database.
	FieldAgreementSignedAt = "agreement_signed_at"
	// FieldLeaseStartDate holds the string denoting the lease_start_date field in the database.
	FieldLeaseStartDate = "lease_start_date"
	// FieldLeaseEndDate holds the string denoting the lease_end_date field in the database.
	FieldLeaseEndDate = "lease_end_date"
	// FieldActivatedAt holds the string denoting the activated_at field in the database.
	FieldActivatedAt = "activated_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldInsuranceUploaded holds the string denoting the insurance_uploaded field in the database.
	FieldInsuranceUploaded = "insurance_uploaded"
	// FieldCompanyDocsUploaded holds the string denoting the company_docs_uploaded field in the database.
	FieldCompanyDocsUploaded = "company_docs_uploaded"
	// FieldPaymentMethodAdded holds the string denoting the payment_method_added field in the database.
	FieldPaymentMethodAdded = "payment_method_added"
	// FieldSqft holds the string denoting the sqft field in the database.
	FieldSqft = "sqft"
	// FieldSupplierRate holds the string denoting the supplier_rate field in the database.
	FieldSupplierRate = "supplier_rate"
	// FieldBuyerRate holds the string denoting the buyer_rate field in the database.
	FieldBuyerRate = "buyer_rate"
	// FieldMonthlySupplierPayout holds the string denoting the monthly_supplier_payout field in the database.
	FieldMonthlySupplierPayout = "monthly_supplier_payout"
	// FieldMonthlyBuyerTotal holds the string denoting the monthly_buyer_total field in the database.
	FieldMonthlyBuyerTotal = "monthly_buyer_total"
	// FieldDeclinedBy holds the string denoting the declined_by field in the database.
	FieldDeclinedBy = "declined_by"
	// FieldDeclineReason holds the string denoting the decline_reason field in the database.
	FieldDeclineReason = "decline_reason"
	// FieldCancelReason holds the string denoting the cancel_reason field in the database.
	FieldCancelReason = "cancel_reason"
	// FieldDecisionTimerPausedAt holds the string denoting the decision_timer_paused_at field in the database.
	FieldDecisionTimerPausedAt = "decision_timer_paused_at"
	// FieldAdminFlagged holds the string denoting the admin_flagged field in the database.
	FieldAdminFlagged = "admin_flagged"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMatch holds the string denoting the match edge name in mutations.
	EdgeMatch = "match"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeAgreements holds the string denoting the agreements edge name in mutations.
	EdgeAgreements = "agreements"
	// EdgePayments holds the string denoting the payments edge name in mutations.
	EdgePayments = "payments"
	// EdgeUploadTokens holds the string denoting the upload_tokens edge name in mutations.
	EdgeUploadTokens = "upload_tokens"
	// MatchFieldID holds the string denoting the ID field of the Match.
	MatchFieldID = "match_id"
	// EngagementEventFieldID holds the string denoting the ID field of the EngagementEvent.
	EngagementEventFieldID = "event_id"
	// EngagementAgreementFieldID holds the string denoting the ID field of the EngagementAgreement.
	EngagementAgreementFieldID = "agreement_id"
	// PaymentRecordFieldID holds the string denoting the ID field of the PaymentRecord.
	PaymentRecordFieldID = "payment_id"
	// UploadTokenFieldID holds the string denoting the ID field of the UploadToken.
	UploadTokenFieldID = "upload_token_id"
	// Table holds the table name of the engagement in the database.
	Table = "engagements"
	// MatchTable is the table that holds the match relation/edge.
	MatchTable = "engagements"
	// MatchInverseTable is the table name for the Match entity.
	// It exists in this package in order to avoid circular dependency with the "match" package.
	MatchInverseTable = "matches"
	// MatchColumn is the table column denoting the match relation/edge.
	MatchColumn = "match_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "engagement_events"
	// EventsInverseTable is the table name for the EngagementEvent entity.
	// It exists in this package in order to avoid circular dependency with the "engagementevent" package.
	EventsInverseTable = "engagement_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "engagement_id"
	// AgreementsTable is the table that holds the agreements relation/edge.
	AgreementsTable = "engagement_agreements"
	// AgreementsInverseTable is the table name for the EngagementAgreement entity.
	// It exists in this package in order to avoid circular dependency with the "engagementagreement" package.
	AgreementsInverseTable = "engagement_agreements"
	// AgreementsColumn is the table column denoting the agreements relation/edge.
	AgreementsColumn = "engagement_id"
	// PaymentsTable is the table that holds the payments relation/edge.
	PaymentsTable = "payment_records"
	// PaymentsInverseTable is the table name for the PaymentRecord entity.
	// It exists in this package in order to avoid circular dependency with the "paymentrecord" package.
	PaymentsInverseTable = "payment_records"
	// PaymentsColumn is the table column denoting the payments relation/edge.
	PaymentsColumn = "engagement_id"
	// UploadTokensTable is the table that holds the upload_tokens relation/edge.
	UploadTokensTable = "upload_tokens"
	// UploadTokensInverseTable is the table name for the UploadToken entity.
	// It exists in this package in order to avoid circular dependency with the "uploadtoken" package.
	UploadTokensInverseTable = "upload_tokens"
	// UploadTokensColumn is the table column denoting the upload_tokens relation/edge.
	UploadTokensColumn = "engagement_id"
)

// Columns holds all SQL columns for engagement fields.
var Columns = []string{
	FieldID,
	FieldMatchID,
	FieldBuyerNeedID,
	FieldWarehouseID,
	FieldBuyerID,
	FieldCompanyID,
	FieldStatus,
	FieldTier,
	FieldPath,
	FieldDealPingSentAt,
	FieldDealPingExpiresAt,
	FieldBuyerAcceptedAt,
	FieldContactCapturedAt,
	FieldAccountCreatedAt,
	FieldGuaranteeSignedAt,
	FieldAddressRevealedAt,
	FieldTourRequestedAt,
	FieldTourConfirmedAt,
	FieldTourScheduledFor,
	FieldTourCompletedAt,
	FieldTourRescheduleCount,
	FieldInstantBookRequestedAt,
	FieldInstantBookConfirmedAt,
	FieldBuyerConfirmedAt,
	FieldAgreementSentAt,
	FieldAgreementSignedAt,
	FieldLeaseStartDate,
	FieldLeaseEndDate,
	FieldActivatedAt,
	FieldCompletedAt,
	FieldInsuranceUploaded,
	FieldCompanyDocsUploaded,
	FieldPaymentMethodAdded,
	FieldSqft,
	FieldSupplierRate,
	FieldBuyerRate,
	FieldMonthlySupplierPayout,
	FieldMonthlyBuyerTotal,
	FieldDeclinedBy,
	FieldDeclineReason,
	FieldCancelReason,
	FieldDecisionTimerPausedAt,
	FieldAdminFlagged,
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
	// DefaultTourRescheduleCount holds the default value on creation for the "tour_reschedule_count" field.
	DefaultTourRescheduleCount int
	// DefaultInsuranceUploaded holds the default value on creation for the "insurance_uploaded" field.
	DefaultInsuranceUploaded bool
	// DefaultCompanyDocsUploaded holds the default value on creation for the "company_docs_uploaded" field.
	DefaultCompanyDocsUploaded bool
	// DefaultPaymentMethodAdded holds the default value on creation for the "payment_method_added" field.
	DefaultPaymentMethodAdded bool
	// DefaultAdminFlagged holds the default value on creation for the "admin_flagged" field.
	DefaultAdminFlagged bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusMatched is the default value of the Status enum.
const DefaultStatus = StatusMatched

// Status values.
const (
	StatusDealPingSent         Status = "deal_ping_sent"
	StatusDealPingAccepted     Status = "deal_ping_accepted"
	StatusDealPingDeclined     Status = "deal_ping_declined"
	StatusDealPingExpired      Status = "deal_ping_expired"
	StatusMatched              Status = "matched"
	StatusBuyerReviewing       Status = "buyer_reviewing"
	StatusBuyerAccepted        Status = "buyer_accepted"
	StatusContactCaptured      Status = "contact_captured"
	StatusAccountCreated       Status = "account_created"
	StatusGuaranteeSigned      Status = "guarantee_signed"
	StatusAddressRevealed      Status = "address_revealed"
	StatusTourRequested        Status = "tour_requested"
	StatusTourConfirmed        Status = "tour_confirmed"
	StatusTourRescheduled      Status = "tour_rescheduled"
	StatusTourCompleted        Status = "tour_completed"
	StatusInstantBookRequested Status = "instant_book_requested"
	StatusInstantBookConfirmed Status = "instant_book_confirmed"
	StatusBuyerConfirmed       Status = "buyer_confirmed"
	StatusAgreementSent        Status = "agreement_sent"
	StatusAgreementSigned      Status = "agreement_signed"
	StatusOnboarding           Status = "onboarding"
	StatusActive               Status = "active"
	StatusCompleted            Status = "completed"
	StatusDeclinedByBuyer      Status = "declined_by_buyer"
	StatusDeclinedBySupplier   Status = "declined_by_supplier"
	StatusExpired              Status = "expired"
	StatusCancelled            Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDealPingSent, StatusDealPingAccepted, StatusDealPingDeclined, StatusDealPingExpired, StatusMatched, StatusBuyerReviewing, StatusBuyerAccepted, StatusContactCaptured, StatusAccountCreated, StatusGuaranteeSigned, StatusAddressRevealed, StatusTourRequested, StatusTourConfirmed, StatusTourRescheduled, StatusTourCompleted, StatusInstantBookRequested, StatusInstantBookConfirmed, StatusBuyerConfirmed, StatusAgreementSent, StatusAgreementSigned, StatusOnboarding, StatusActive, StatusCompleted, StatusDeclinedByBuyer, StatusDeclinedBySupplier, StatusExpired, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("engagement: invalid enum value for status field: %q", s)
	}
}

// Tier defines the type for the "tier" enum field.
type Tier string

// TierTier1 is the default value of the Tier enum.
const DefaultTier = TierTier1

// Tier values.
const (
	TierTier1 Tier = "tier1"
	TierTier2 Tier = "tier2"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierTier1, TierTier2:
		return nil
	default:
		return fmt.Errorf("engagement: invalid enum value for tier field: %q", t)
	}
}

// Path defines the type for the "path" enum field.
type Path string

// Path values.
const (
	PathTour        Path = "tour"
	PathInstantBook Path = "instant_book"
)

func (_path Path) String() string {
	return string(_path)
}

// PathValidator is a validator for the "path" field enum values. It is called by the builders before save.
func PathValidator(_path Path) error {
	switch _path {
	case PathTour, PathInstantBook:
		return nil
	default:
		return fmt.Errorf("engagement: invalid enum value for path field: %q", _path)
	}
}

// DeclinedBy defines the type for the "declined_by" enum field.
type DeclinedBy string

// DeclinedBy values.
const (
	DeclinedByBuyer    DeclinedBy = "buyer"
	DeclinedBySupplier DeclinedBy = "supplier"
	DeclinedBySystem   DeclinedBy = "system"
	DeclinedByAdmin    DeclinedBy = "admin"
)

func (db DeclinedBy) String() string {
	return string(db)
}

// DeclinedByValidator is a validator for the "declined_by" field enum values. It is called by the builders before save.
func DeclinedByValidator(db DeclinedBy) error {
	switch db {
	case DeclinedByBuyer, DeclinedBySupplier, DeclinedBySystem, DeclinedByAdmin:
		return nil
	default:
		return fmt.Errorf("engagement: invalid enum value for declined_by field: %q", db)
	}
}

// OrderOption defines the ordering options for the Engagement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMatchID orders the results by the match_id field.
func ByMatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchID, opts...).ToFunc()
}

// ByBuyerNeedID orders the results by the buyer_need_id field.
func ByBuyerNeedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerNeedID, opts...).ToFunc()
}

// ByWarehouseID orders the results by the warehouse_id field.
func ByWarehouseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarehouseID, opts...).ToFunc()
}

// ByBuyerID orders the results by the buyer_id field.
func ByBuyerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByDealPingSentAt orders the results by the deal_ping_sent_at field.
func ByDealPingSentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDealPingSentAt, opts...).ToFunc()
}

// ByDealPingExpiresAt orders the results by the deal_ping_expires_at field.
func ByDealPingExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDealPingExpiresAt, opts...).ToFunc()
}

// ByBuyerAcceptedAt orders the results by the buyer_accepted_at field.
func ByBuyerAcceptedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerAcceptedAt, opts...).ToFunc()
}

// ByContactCapturedAt orders the results by the contact_captured_at field.
func ByContactCapturedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactCapturedAt, opts...).ToFunc()
}

// ByAccountCreatedAt orders the results by the account_created_at field.
func ByAccountCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountCreatedAt, opts...).ToFunc()
}

// ByGuaranteeSignedAt orders the results by the guarantee_signed_at field.
func ByGuaranteeSignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGuaranteeSignedAt, opts...).ToFunc()
}

// ByAddressRevealedAt orders the results by the address_revealed_at field.
func ByAddressRevealedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddressRevealedAt, opts...).ToFunc()
}

// ByTourRequestedAt orders the results by the tour_requested_at field.
func ByTourRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTourRequestedAt, opts...).ToFunc()
}

// ByTourConfirmedAt orders the results by the tour_confirmed_at field.
func ByTourConfirmedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTourConfirmedAt, opts...).ToFunc()
}

// ByTourScheduledFor orders the results by the tour_scheduled_for field.
func ByTourScheduledFor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTourScheduledFor, opts...).ToFunc()
}

// ByTourCompletedAt orders the results by the tour_completed_at field.
func ByTourCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTourCompletedAt, opts...).ToFunc()
}

// ByTourRescheduleCount orders the results by the tour_reschedule_count field.
func ByTourRescheduleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTourRescheduleCount, opts...).ToFunc()
}

// ByInstantBookRequestedAt orders the results by the instant_book_requested_at field.
func ByInstantBookRequestedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstantBookRequestedAt, opts...).ToFunc()
}

// ByInstantBookConfirmedAt orders the results by the instant_book_confirmed_at field.
func ByInstantBookConfirmedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstantBookConfirmedAt, opts...).ToFunc()
}

// ByBuyerConfirmedAt orders the results by the buyer_confirmed_at field.
func ByBuyerConfirmedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerConfirmedAt, opts...).ToFunc()
}

// ByAgreementSentAt orders the results by the agreement_sent_at field.
func ByAgreementSentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgreementSentAt, opts...).ToFunc()
}

// ByAgreementSignedAt orders the results by the agreement_signed_at field.
func ByAgreementSignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgreementSignedAt, opts...).ToFunc()
}

// ByLeaseStartDate orders the results by the lease_start_date field.
func ByLeaseStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseStartDate, opts...).ToFunc()
}

// ByLeaseEndDate orders the results by the lease_end_date field.
func ByLeaseEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseEndDate, opts...).ToFunc()
}

// ByActivatedAt orders the results by the activated_at field.
func ByActivatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByInsuranceUploaded orders the results by the insurance_uploaded field.
func ByInsuranceUploaded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInsuranceUploaded, opts...).ToFunc()
}

// ByCompanyDocsUploaded orders the results by the company_docs_uploaded field.
func ByCompanyDocsUploaded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyDocsUploaded, opts...).ToFunc()
}

// ByPaymentMethodAdded orders the results by the payment_method_added field.
func ByPaymentMethodAdded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMethodAdded, opts...).ToFunc()
}

// BySqft orders the results by the sqft field.
func BySqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSqft, opts...).ToFunc()
}

// BySupplierRate orders the results by the supplier_rate field.
func BySupplierRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierRate, opts...).ToFunc()
}

// ByBuyerRate orders the results by the buyer_rate field.
func ByBuyerRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerRate, opts...).ToFunc()
}

// ByMonthlySupplierPayout orders the results by the monthly_supplier_payout field.
func ByMonthlySupplierPayout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlySupplierPayout, opts...).ToFunc()
}

// ByMonthlyBuyerTotal orders the results by the monthly_buyer_total field.
func ByMonthlyBuyerTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyBuyerTotal, opts...).ToFunc()
}

// ByDeclinedBy orders the results by the declined_by field.
func ByDeclinedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeclinedBy, opts...).ToFunc()
}

// ByDeclineReason orders the results by the decline_reason field.
func ByDeclineReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeclineReason, opts...).ToFunc()
}

// ByCancelReason orders the results by the cancel_reason field.
func ByCancelReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelReason, opts...).ToFunc()
}

// ByDecisionTimerPausedAt orders the results by the decision_timer_paused_at field.
func ByDecisionTimerPausedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDecisionTimerPausedAt, opts...).ToFunc()
}

// ByAdminFlagged orders the results by the admin_flagged field.
func ByAdminFlagged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminFlagged, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMatchField orders the results by match field.
func ByMatchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatchStep(), sql.OrderByField(field, opts...))
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgreementsCount orders the results by agreements count.
func ByAgreementsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgreementsStep(), opts...)
	}
}

// ByAgreements orders the results by agreements terms.
func ByAgreements(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgreementsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPaymentsCount orders the results by payments count.
func ByPaymentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPaymentsStep(), opts...)
	}
}

// ByPayments orders the results by payments terms.
func ByPayments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPaymentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByUploadTokensCount orders the results by upload_tokens count.
func ByUploadTokensCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newUploadTokensStep(), opts...)
	}
}

// ByUploadTokens orders the results by upload_tokens terms.
func ByUploadTokens(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUploadTokensStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMatchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchInverseTable, MatchFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, MatchTable, MatchColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EngagementEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newAgreementsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgreementsInverseTable, EngagementAgreementFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgreementsTable, AgreementsColumn),
	)
}
func newPaymentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PaymentsInverseTable, PaymentRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PaymentsTable, PaymentsColumn),
	)
}
func newUploadTokensStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UploadTokensInverseTable, UploadTokenFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, UploadTokensTable, UploadTokensColumn),
	)
}
