// Code generated by ent, DO NOT EDIT.

package supplieragreement

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the supplieragreement type in the database.
	Label = "supplier_agreement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "supplier_agreement_id"
	// FieldWarehouseID holds the string denoting the warehouse_id field in the database.
	FieldWarehouseID = "warehouse_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOrigin holds the string denoting the origin field in the database.
	FieldOrigin = "origin"
	// FieldExternalRef holds the string denoting the external_ref field in the database.
	FieldExternalRef = "external_ref"
	// FieldSignedAt holds the string denoting the signed_at field in the database.
	FieldSignedAt = "signed_at"
	// FieldTerminatedAt holds the string denoting the terminated_at field in the database.
	FieldTerminatedAt = "terminated_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWarehouse holds the string denoting the warehouse edge name in mutations.
	EdgeWarehouse = "warehouse"
	// WarehouseFieldID holds the string denoting the ID field of the Warehouse.
	WarehouseFieldID = "warehouse_id"
	// Table holds the table name of the supplieragreement in the database.
	Table = "supplier_agreements"
	// WarehouseTable is the table that holds the warehouse relation/edge.
	WarehouseTable = "supplier_agreements"
	// WarehouseInverseTable is the table name for the Warehouse entity.
	// It exists in this package in order to avoid circular dependency with the "warehouse" package.
	WarehouseInverseTable = "warehouses"
	// WarehouseColumn is the table column denoting the warehouse relation/edge.
	WarehouseColumn = "warehouse_id"
)

// Columns holds all SQL columns for supplieragreement fields.
var Columns = []string{
	FieldID,
	FieldWarehouseID,
	FieldStatus,
	FieldOrigin,
	FieldExternalRef,
	FieldSignedAt,
	FieldTerminatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft      Status = "draft"
	StatusSent       Status = "sent"
	StatusSigned     Status = "signed"
	StatusTerminated Status = "terminated"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusSent, StatusSigned, StatusTerminated:
		return nil
	default:
		return fmt.Errorf("supplieragreement: invalid enum value for status field: %q", s)
	}
}

// Origin defines the type for the "origin" enum field.
type Origin string

// OriginOnboarding is the default value of the Origin enum.
const DefaultOrigin = OriginOnboarding

// Origin values.
const (
	OriginOnboarding Origin = "onboarding"
	OriginDla        Origin = "dla"
	OriginAdmin      Origin = "admin"
)

func (o Origin) String() string {
	return string(o)
}

// OriginValidator is a validator for the "origin" field enum values. It is called by the builders before save.
func OriginValidator(o Origin) error {
	switch o {
	case OriginOnboarding, OriginDla, OriginAdmin:
		return nil
	default:
		return fmt.Errorf("supplieragreement: invalid enum value for origin field: %q", o)
	}
}

// OrderOption defines the ordering options for the SupplierAgreement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWarehouseID orders the results by the warehouse_id field.
func ByWarehouseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarehouseID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOrigin orders the results by the origin field.
func ByOrigin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrigin, opts...).ToFunc()
}

// ByExternalRef orders the results by the external_ref field.
func ByExternalRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalRef, opts...).ToFunc()
}

// BySignedAt orders the results by the signed_at field.
func BySignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignedAt, opts...).ToFunc()
}

// ByTerminatedAt orders the results by the terminated_at field.
func ByTerminatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminatedAt, opts...).ToFunc()
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
func newWarehouseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WarehouseInverseTable, WarehouseFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WarehouseTable, WarehouseColumn),
	)
}
