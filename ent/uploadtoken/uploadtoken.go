// Code generated by ent, DO NOT EDIT.

package uploadtoken

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the uploadtoken type in the database.
	Label = "upload_token"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "upload_token_id"
	// FieldToken holds the string denoting the token field in the database.
	FieldToken = "token"
	// FieldEngagementID holds the string denoting the engagement_id field in the database.
	FieldEngagementID = "engagement_id"
	// FieldPurpose holds the string denoting the purpose field in the database.
	FieldPurpose = "purpose"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldUploadedFileURL holds the string denoting the uploaded_file_url field in the database.
	FieldUploadedFileURL = "uploaded_file_url"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldUsedAt holds the string denoting the used_at field in the database.
	FieldUsedAt = "used_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEngagement holds the string denoting the engagement edge name in mutations.
	EdgeEngagement = "engagement"
	// EngagementFieldID holds the string denoting the ID field of the Engagement.
	EngagementFieldID = "engagement_id"
	// Table holds the table name of the uploadtoken in the database.
	Table = "upload_tokens"
	// EngagementTable is the table that holds the engagement relation/edge.
	EngagementTable = "upload_tokens"
	// EngagementInverseTable is the table name for the Engagement entity.
	// It exists in this package in order to avoid circular dependency with the "engagement" package.
	EngagementInverseTable = "engagements"
	// EngagementColumn is the table column denoting the engagement relation/edge.
	EngagementColumn = "engagement_id"
)

// Columns holds all SQL columns for uploadtoken fields.
var Columns = []string{
	FieldID,
	FieldToken,
	FieldEngagementID,
	FieldPurpose,
	FieldStatus,
	FieldUploadedFileURL,
	FieldExpiresAt,
	FieldUsedAt,
	FieldCreatedAt,
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
	// TokenValidator is a validator for the "token" field. It is called by the builders before save.
	TokenValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Purpose defines the type for the "purpose" enum field.
type Purpose string

// Purpose values.
const (
	PurposeInsurance   Purpose = "insurance"
	PurposeCompanyDocs Purpose = "company_docs"
)

func (pu Purpose) String() string {
	return string(pu)
}

// PurposeValidator is a validator for the "purpose" field enum values. It is called by the builders before save.
func PurposeValidator(pu Purpose) error {
	switch pu {
	case PurposeInsurance, PurposeCompanyDocs:
		return nil
	default:
		return fmt.Errorf("uploadtoken: invalid enum value for purpose field: %q", pu)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending Status = "pending"
	StatusUsed    Status = "used"
	StatusExpired Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusUsed, StatusExpired:
		return nil
	default:
		return fmt.Errorf("uploadtoken: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the UploadToken queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByToken orders the results by the token field.
func ByToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToken, opts...).ToFunc()
}

// ByEngagementID orders the results by the engagement_id field.
func ByEngagementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementID, opts...).ToFunc()
}

// ByPurpose orders the results by the purpose field.
func ByPurpose(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurpose, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByUploadedFileURL orders the results by the uploaded_file_url field.
func ByUploadedFileURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedFileURL, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByUsedAt orders the results by the used_at field.
func ByUsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
