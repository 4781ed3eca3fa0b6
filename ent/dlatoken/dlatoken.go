// Code generated by ent, DO NOT EDIT.

package dlatoken

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the dlatoken type in the database.
	Label = "dla_token"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "dla_token_id"
	// FieldToken holds the string denoting the token field in the database.
	FieldToken = "token"
	// FieldWarehouseID holds the string denoting the warehouse_id field in the database.
	FieldWarehouseID = "warehouse_id"
	// FieldBuyerNeedID holds the string denoting the buyer_need_id field in the database.
	FieldBuyerNeedID = "buyer_need_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSuggestedRate holds the string denoting the suggested_rate field in the database.
	FieldSuggestedRate = "suggested_rate"
	// FieldFinalRate holds the string denoting the final_rate field in the database.
	FieldFinalRate = "final_rate"
	// FieldProposedSqft holds the string denoting the proposed_sqft field in the database.
	FieldProposedSqft = "proposed_sqft"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldConfirmedAt holds the string denoting the confirmed_at field in the database.
	FieldConfirmedAt = "confirmed_at"
	// FieldRespondedAt holds the string denoting the responded_at field in the database.
	FieldRespondedAt = "responded_at"
	// FieldOutcomeNote holds the string denoting the outcome_note field in the database.
	FieldOutcomeNote = "outcome_note"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWarehouse holds the string denoting the warehouse edge name in mutations.
	EdgeWarehouse = "warehouse"
	// EdgeBuyerNeed holds the string denoting the buyer_need edge name in mutations.
	EdgeBuyerNeed = "buyer_need"
	// WarehouseFieldID holds the string denoting the ID field of the Warehouse.
	WarehouseFieldID = "warehouse_id"
	// BuyerNeedFieldID holds the string denoting the ID field of the BuyerNeed.
	BuyerNeedFieldID = "buyer_need_id"
	// Table holds the table name of the dlatoken in the database.
	Table = "dla_tokens"
	// WarehouseTable is the table that holds the warehouse relation/edge.
	WarehouseTable = "dla_tokens"
	// WarehouseInverseTable is the table name for the Warehouse entity.
	// It exists in this package in order to avoid circular dependency with the "warehouse" package.
	WarehouseInverseTable = "warehouses"
	// WarehouseColumn is the table column denoting the warehouse relation/edge.
	WarehouseColumn = "warehouse_id"
	// BuyerNeedTable is the table that holds the buyer_need relation/edge.
	BuyerNeedTable = "dla_tokens"
	// BuyerNeedInverseTable is the table name for the BuyerNeed entity.
	// It exists in this package in order to avoid circular dependency with the "buyerneed" package.
	BuyerNeedInverseTable = "buyer_needs"
	// BuyerNeedColumn is the table column denoting the buyer_need relation/edge.
	BuyerNeedColumn = "buyer_need_id"
)

// Columns holds all SQL columns for dlatoken fields.
var Columns = []string{
	FieldID,
	FieldToken,
	FieldWarehouseID,
	FieldBuyerNeedID,
	FieldStatus,
	FieldSuggestedRate,
	FieldFinalRate,
	FieldProposedSqft,
	FieldExpiresAt,
	FieldConfirmedAt,
	FieldRespondedAt,
	FieldOutcomeNote,
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
	// TokenValidator is a validator for the "token" field. It is called by the builders before save.
	TokenValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending     Status = "pending"
	StatusInterested  Status = "interested"
	StatusRateDecided Status = "rate_decided"
	StatusConfirmed   Status = "confirmed"
	StatusDeclined    Status = "declined"
	StatusExpired     Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInterested, StatusRateDecided, StatusConfirmed, StatusDeclined, StatusExpired:
		return nil
	default:
		return fmt.Errorf("dlatoken: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DLAToken queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByToken orders the results by the token field.
func ByToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToken, opts...).ToFunc()
}

// ByWarehouseID orders the results by the warehouse_id field.
func ByWarehouseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarehouseID, opts...).ToFunc()
}

// ByBuyerNeedID orders the results by the buyer_need_id field.
func ByBuyerNeedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerNeedID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySuggestedRate orders the results by the suggested_rate field.
func BySuggestedRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedRate, opts...).ToFunc()
}

// ByFinalRate orders the results by the final_rate field.
func ByFinalRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalRate, opts...).ToFunc()
}

// ByProposedSqft orders the results by the proposed_sqft field.
func ByProposedSqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposedSqft, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByConfirmedAt orders the results by the confirmed_at field.
func ByConfirmedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfirmedAt, opts...).ToFunc()
}

// ByRespondedAt orders the results by the responded_at field.
func ByRespondedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRespondedAt, opts...).ToFunc()
}

// ByOutcomeNote orders the results by the outcome_note field.
func ByOutcomeNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcomeNote, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByWarehouseField orders the results by warehouse field.
func ByWarehouseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWarehouseStep(), sql.OrderByField(field, opts...))
	}
}

// ByBuyerNeedField orders the results by buyer_need field.
func ByBuyerNeedField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuyerNeedStep(), sql.OrderByField(field, opts...))
	}
}
func newWarehouseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WarehouseInverseTable, WarehouseFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WarehouseTable, WarehouseColumn),
	)
}
func newBuyerNeedStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuyerNeedInverseTable, BuyerNeedFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BuyerNeedTable, BuyerNeedColumn),
	)
}
