// Code generated by ent, DO NOT EDIT.

package contextualmemory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the contextualmemory type in the database.
	Label = "contextual_memory"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "memory_id"
	// FieldWarehouseID holds the string denoting the warehouse_id field in the database.
	FieldWarehouseID = "warehouse_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldRecordedBy holds the string denoting the recorded_by field in the database.
	FieldRecordedBy = "recorded_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWarehouse holds the string denoting the warehouse edge name in mutations.
	EdgeWarehouse = "warehouse"
	// WarehouseFieldID holds the string denoting the ID field of the Warehouse.
	WarehouseFieldID = "warehouse_id"
	// Table holds the table name of the contextualmemory in the database.
	Table = "contextual_memories"
	// WarehouseTable is the table that holds the warehouse relation/edge.
	WarehouseTable = "contextual_memories"
	// WarehouseInverseTable is the table name for the Warehouse entity.
	// It exists in this package in order to avoid circular dependency with the "warehouse" package.
	WarehouseInverseTable = "warehouses"
	// WarehouseColumn is the table column denoting the warehouse relation/edge.
	WarehouseColumn = "warehouse_id"
)

// Columns holds all SQL columns for contextualmemory fields.
var Columns = []string{
	FieldID,
	FieldWarehouseID,
	FieldCategory,
	FieldContent,
	FieldSource,
	FieldRecordedBy,
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
	// ContentValidator is a validator for the "content" field. It is called by the builders before save.
	ContentValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Category defines the type for the "category" enum field.
type Category string

// CategoryGeneral is the default value of the Category enum.
const DefaultCategory = CategoryGeneral

// Category values.
const (
	CategoryOperations   Category = "operations"
	CategoryAccess       Category = "access"
	CategoryCondition    Category = "condition"
	CategoryPricing      Category = "pricing"
	CategoryAvailability Category = "availability"
	CategoryGeneral      Category = "general"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryOperations, CategoryAccess, CategoryCondition, CategoryPricing, CategoryAvailability, CategoryGeneral:
		return nil
	default:
		return fmt.Errorf("contextualmemory: invalid enum value for category field: %q", c)
	}
}

// Source defines the type for the "source" enum field.
type Source string

// SourceAdmin is the default value of the Source enum.
const DefaultSource = SourceAdmin

// Source values.
const (
	SourceSupplierSms  Source = "supplier_sms"
	SourceAdmin        Source = "admin"
	SourceTourFeedback Source = "tour_feedback"
	SourceOnboarding   Source = "onboarding"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceSupplierSms, SourceAdmin, SourceTourFeedback, SourceOnboarding:
		return nil
	default:
		return fmt.Errorf("contextualmemory: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the ContextualMemory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWarehouseID orders the results by the warehouse_id field.
func ByWarehouseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarehouseID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByRecordedBy orders the results by the recorded_by field.
func ByRecordedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecordedBy, opts...).ToFunc()
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
