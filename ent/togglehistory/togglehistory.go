// Code generated by ent, DO NOT EDIT.

package togglehistory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the togglehistory type in the database.
	Label = "toggle_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "toggle_id"
	// FieldWarehouseID holds the string denoting the warehouse_id field in the database.
	FieldWarehouseID = "warehouse_id"
	// FieldNewState holds the string denoting the new_state field in the database.
	FieldNewState = "new_state"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldToggledBy holds the string denoting the toggled_by field in the database.
	FieldToggledBy = "toggled_by"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWarehouse holds the string denoting the warehouse edge name in mutations.
	EdgeWarehouse = "warehouse"
	// WarehouseFieldID holds the string denoting the ID field of the Warehouse.
	WarehouseFieldID = "warehouse_id"
	// Table holds the table name of the togglehistory in the database.
	Table = "toggle_histories"
	// WarehouseTable is the table that holds the warehouse relation/edge.
	WarehouseTable = "toggle_histories"
	// WarehouseInverseTable is the table name for the Warehouse entity.
	// It exists in this package in order to avoid circular dependency with the "warehouse" package.
	WarehouseInverseTable = "warehouses"
	// WarehouseColumn is the table column denoting the warehouse relation/edge.
	WarehouseColumn = "warehouse_id"
)

// Columns holds all SQL columns for togglehistory fields.
var Columns = []string{
	FieldID,
	FieldWarehouseID,
	FieldNewState,
	FieldSource,
	FieldToggledBy,
	FieldReason,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// NewState defines the type for the "new_state" enum field.
type NewState string

// NewState values.
const (
	NewStateOn  NewState = "on"
	NewStateOff NewState = "off"
)

func (ns NewState) String() string {
	return string(ns)
}

// NewStateValidator is a validator for the "new_state" field enum values. It is called by the builders before save.
func NewStateValidator(ns NewState) error {
	switch ns {
	case NewStateOn, NewStateOff:
		return nil
	default:
		return fmt.Errorf("togglehistory: invalid enum value for new_state field: %q", ns)
	}
}

// Source defines the type for the "source" enum field.
type Source string

// Source values.
const (
	SourceSms    Source = "sms"
	SourceWeb    Source = "web"
	SourceAdmin  Source = "admin"
	SourceSystem Source = "system"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceSms, SourceWeb, SourceAdmin, SourceSystem:
		return nil
	default:
		return fmt.Errorf("togglehistory: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the ToggleHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWarehouseID orders the results by the warehouse_id field.
func ByWarehouseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarehouseID, opts...).ToFunc()
}

// ByNewState orders the results by the new_state field.
func ByNewState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewState, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByToggledBy orders the results by the toggled_by field.
func ByToggledBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToggledBy, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWarehouseField orders the results by warehouse field.
func ByWarehouseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWarehouseStep(), sql.OrderByField(field, opts...))
	}
}
func newWarehouseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WarehouseInverseTable, WarehouseFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WarehouseTable, WarehouseColumn),
	)
}
