// Code generated by ent, DO NOT EDIT.

package propertyquestion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the propertyquestion type in the database.
	Label = "property_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "question_id"
	// FieldWarehouseID holds the string denoting the warehouse_id field in the database.
	FieldWarehouseID = "warehouse_id"
	// FieldEngagementID holds the string denoting the engagement_id field in the database.
	FieldEngagementID = "engagement_id"
	// FieldAskedByPhone holds the string denoting the asked_by_phone field in the database.
	FieldAskedByPhone = "asked_by_phone"
	// FieldAskedByUserID holds the string denoting the asked_by_user_id field in the database.
	FieldAskedByUserID = "asked_by_user_id"
	// FieldQuestionText holds the string denoting the question_text field in the database.
	FieldQuestionText = "question_text"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAnswerText holds the string denoting the answer_text field in the database.
	FieldAnswerText = "answer_text"
	// FieldAnswerSource holds the string denoting the answer_source field in the database.
	FieldAnswerSource = "answer_source"
	// FieldRoutedAt holds the string denoting the routed_at field in the database.
	FieldRoutedAt = "routed_at"
	// FieldAnsweredAt holds the string denoting the answered_at field in the database.
	FieldAnsweredAt = "answered_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWarehouse holds the string denoting the warehouse edge name in mutations.
	EdgeWarehouse = "warehouse"
	// WarehouseFieldID holds the string denoting the ID field of the Warehouse.
	WarehouseFieldID = "warehouse_id"
	// Table holds the table name of the propertyquestion in the database.
	Table = "property_questions"
	// WarehouseTable is the table that holds the warehouse relation/edge.
	WarehouseTable = "property_questions"
	// WarehouseInverseTable is the table name for the Warehouse entity.
	// It exists in this package in order to avoid circular dependency with the "warehouse" package.
	WarehouseInverseTable = "warehouses"
	// WarehouseColumn is the table column denoting the warehouse relation/edge.
	WarehouseColumn = "warehouse_id"
)

// Columns holds all SQL columns for propertyquestion fields.
var Columns = []string{
	FieldID,
	FieldWarehouseID,
	FieldEngagementID,
	FieldAskedByPhone,
	FieldAskedByUserID,
	FieldQuestionText,
	FieldStatus,
	FieldAnswerText,
	FieldAnswerSource,
	FieldRoutedAt,
	FieldAnsweredAt,
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
	// QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	QuestionTextValidator func(string) error
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
	StatusPending  Status = "pending"
	StatusRouted   Status = "routed"
	StatusAnswered Status = "answered"
	StatusExpired  Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRouted, StatusAnswered, StatusExpired:
		return nil
	default:
		return fmt.Errorf("propertyquestion: invalid enum value for status field: %q", s)
	}
}

// AnswerSource defines the type for the "answer_source" enum field.
type AnswerSource string

// AnswerSource values.
const (
	AnswerSourceKnowledge AnswerSource = "knowledge"
	AnswerSourceSupplier  AnswerSource = "supplier"
	AnswerSourceAdmin     AnswerSource = "admin"
)

func (as AnswerSource) String() string {
	return string(as)
}

// AnswerSourceValidator is a validator for the "answer_source" field enum values. It is called by the builders before save.
func AnswerSourceValidator(as AnswerSource) error {
	switch as {
	case AnswerSourceKnowledge, AnswerSourceSupplier, AnswerSourceAdmin:
		return nil
	default:
		return fmt.Errorf("propertyquestion: invalid enum value for answer_source field: %q", as)
	}
}

// OrderOption defines the ordering options for the PropertyQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWarehouseID orders the results by the warehouse_id field.
func ByWarehouseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarehouseID, opts...).ToFunc()
}

// ByEngagementID orders the results by the engagement_id field.
func ByEngagementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementID, opts...).ToFunc()
}

// ByAskedByPhone orders the results by the asked_by_phone field.
func ByAskedByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAskedByPhone, opts...).ToFunc()
}

// ByAskedByUserID orders the results by the asked_by_user_id field.
func ByAskedByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAskedByUserID, opts...).ToFunc()
}

// ByQuestionText orders the results by the question_text field.
func ByQuestionText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionText, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAnswerText orders the results by the answer_text field.
func ByAnswerText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerText, opts...).ToFunc()
}

// ByAnswerSource orders the results by the answer_source field.
func ByAnswerSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerSource, opts...).ToFunc()
}

// ByRoutedAt orders the results by the routed_at field.
func ByRoutedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoutedAt, opts...).ToFunc()
}

// ByAnsweredAt orders the results by the answered_at field.
func ByAnsweredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnsweredAt, opts...).ToFunc()
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
