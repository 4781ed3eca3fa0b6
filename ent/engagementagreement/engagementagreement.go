// Code generated by ent, DO NOT EDIT.

package engagementagreement

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the engagementagreement type in the database.
	Label = "engagement_agreement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agreement_id"
	// FieldEngagementID holds the string denoting the engagement_id field in the database.
	FieldEngagementID = "engagement_id"
	// FieldAgreementType holds the string denoting the agreement_type field in the database.
	FieldAgreementType = "agreement_type"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldBuyerSignedAt holds the string denoting the buyer_signed_at field in the database.
	FieldBuyerSignedAt = "buyer_signed_at"
	// FieldSupplierSignedAt holds the string denoting the supplier_signed_at field in the database.
	FieldSupplierSignedAt = "supplier_signed_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldSqft holds the string denoting the sqft field in the database.
	FieldSqft = "sqft"
	// FieldBuyerRate holds the string denoting the buyer_rate field in the database.
	FieldBuyerRate = "buyer_rate"
	// FieldSupplierRate holds the string denoting the supplier_rate field in the database.
	FieldSupplierRate = "supplier_rate"
	// FieldMonthlyBuyerTotal holds the string denoting the monthly_buyer_total field in the database.
	FieldMonthlyBuyerTotal = "monthly_buyer_total"
	// FieldMonthlySupplierPayout holds the string denoting the monthly_supplier_payout field in the database.
	FieldMonthlySupplierPayout = "monthly_supplier_payout"
	// FieldExternalRef holds the string denoting the external_ref field in the database.
	FieldExternalRef = "external_ref"
	// FieldDocumentURL holds the string denoting the document_url field in the database.
	FieldDocumentURL = "document_url"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEngagement holds the string denoting the engagement edge name in mutations.
	EdgeEngagement = "engagement"
	// EngagementFieldID holds the string denoting the ID field of the Engagement.
	EngagementFieldID = "engagement_id"
	// Table holds the table name of the engagementagreement in the database.
	Table = "engagement_agreements"
	// EngagementTable is the table that holds the engagement relation/edge.
	EngagementTable = "engagement_agreements"
	// EngagementInverseTable is the table name for the Engagement entity.
	// It exists in this package in order to avoid circular dependency with the "engagement" package.
	EngagementInverseTable = "engagements"
	// EngagementColumn is the table column denoting the engagement relation/edge.
	EngagementColumn = "engagement_id"
)

// Columns holds all SQL columns for engagementagreement fields.
var Columns = []string{
	FieldID,
	FieldEngagementID,
	FieldAgreementType,
	FieldVersion,
	FieldStatus,
	FieldBuyerSignedAt,
	FieldSupplierSignedAt,
	FieldExpiresAt,
	FieldSqft,
	FieldBuyerRate,
	FieldSupplierRate,
	FieldMonthlyBuyerTotal,
	FieldMonthlySupplierPayout,
	FieldExternalRef,
	FieldDocumentURL,
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
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AgreementType defines the type for the "agreement_type" enum field.
type AgreementType string

// AgreementType values.
const (
	AgreementTypeGuarantee AgreementType = "guarantee"
	AgreementTypeLease     AgreementType = "lease"
)

func (at AgreementType) String() string {
	return string(at)
}

// AgreementTypeValidator is a validator for the "agreement_type" field enum values. It is called by the builders before save.
func AgreementTypeValidator(at AgreementType) error {
	switch at {
	case AgreementTypeGuarantee, AgreementTypeLease:
		return nil
	default:
		return fmt.Errorf("engagementagreement: invalid enum value for agreement_type field: %q", at)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusSigned  Status = "signed"
	StatusVoided  Status = "voided"
	StatusExpired Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusSent, StatusSigned, StatusVoided, StatusExpired:
		return nil
	default:
		return fmt.Errorf("engagementagreement: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the EngagementAgreement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEngagementID orders the results by the engagement_id field.
func ByEngagementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementID, opts...).ToFunc()
}

// ByAgreementType orders the results by the agreement_type field.
func ByAgreementType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgreementType, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByBuyerSignedAt orders the results by the buyer_signed_at field.
func ByBuyerSignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerSignedAt, opts...).ToFunc()
}

// BySupplierSignedAt orders the results by the supplier_signed_at field.
func BySupplierSignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierSignedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// BySqft orders the results by the sqft field.
func BySqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSqft, opts...).ToFunc()
}

// ByBuyerRate orders the results by the buyer_rate field.
func ByBuyerRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerRate, opts...).ToFunc()
}

// BySupplierRate orders the results by the supplier_rate field.
func BySupplierRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierRate, opts...).ToFunc()
}

// ByMonthlyBuyerTotal orders the results by the monthly_buyer_total field.
func ByMonthlyBuyerTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyBuyerTotal, opts...).ToFunc()
}

// ByMonthlySupplierPayout orders the results by the monthly_supplier_payout field.
func ByMonthlySupplierPayout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlySupplierPayout, opts...).ToFunc()
}

// ByExternalRef orders the results by the external_ref field.
func ByExternalRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalRef, opts...).ToFunc()
}

// ByDocumentURL orders the results by the document_url field.
func ByDocumentURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentURL, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEngagementField orders the results by engagement field.
func ByEngagementField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEngagementStep(), sql.OrderByField(field, opts...))
	}
}
func newEngagementStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EngagementInverseTable, EngagementFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EngagementTable, EngagementColumn),
	)
}
