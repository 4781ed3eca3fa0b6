// Code generated by ent, DO NOT EDIT.

package paymentrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the paymentrecord type in the database.
	Label = "payment_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "payment_id"
	// FieldEngagementID holds the string denoting the engagement_id field in the database.
	FieldEngagementID = "engagement_id"
	// FieldPeriodStart holds the string denoting the period_start field in the database.
	FieldPeriodStart = "period_start"
	// FieldPeriodEnd holds the string denoting the period_end field in the database.
	FieldPeriodEnd = "period_end"
	// FieldDueDate holds the string denoting the due_date field in the database.
	FieldDueDate = "due_date"
	// FieldBuyerAmount holds the string denoting the buyer_amount field in the database.
	FieldBuyerAmount = "buyer_amount"
	// FieldSupplierAmount holds the string denoting the supplier_amount field in the database.
	FieldSupplierAmount = "supplier_amount"
	// FieldWexAmount holds the string denoting the wex_amount field in the database.
	FieldWexAmount = "wex_amount"
	// FieldBuyerStatus holds the string denoting the buyer_status field in the database.
	FieldBuyerStatus = "buyer_status"
	// FieldSupplierStatus holds the string denoting the supplier_status field in the database.
	FieldSupplierStatus = "supplier_status"
	// FieldBuyerPaidAt holds the string denoting the buyer_paid_at field in the database.
	FieldBuyerPaidAt = "buyer_paid_at"
	// FieldSupplierPaidAt holds the string denoting the supplier_paid_at field in the database.
	FieldSupplierPaidAt = "supplier_paid_at"
	// FieldExternalRef holds the string denoting the external_ref field in the database.
	FieldExternalRef = "external_ref"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEngagement holds the string denoting the engagement edge name in mutations.
	EdgeEngagement = "engagement"
	// EngagementFieldID holds the string denoting the ID field of the Engagement.
	EngagementFieldID = "engagement_id"
	// Table holds the table name of the paymentrecord in the database.
	Table = "payment_records"
	// EngagementTable is the table that holds the engagement relation/edge.
	EngagementTable = "payment_records"
	// EngagementInverseTable is the table name for the Engagement entity.
	// It exists in this package in order to avoid circular dependency with the "engagement" package.
	EngagementInverseTable = "engagements"
	// EngagementColumn is the table column denoting the engagement relation/edge.
	EngagementColumn = "engagement_id"
)

// Columns holds all SQL columns for paymentrecord fields.
var Columns = []string{
	FieldID,
	FieldEngagementID,
	FieldPeriodStart,
	FieldPeriodEnd,
	FieldDueDate,
	FieldBuyerAmount,
	FieldSupplierAmount,
	FieldWexAmount,
	FieldBuyerStatus,
	FieldSupplierStatus,
	FieldBuyerPaidAt,
	FieldSupplierPaidAt,
	FieldExternalRef,
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

// BuyerStatus defines the type for the "buyer_status" enum field.
type BuyerStatus string

// BuyerStatusUpcoming is the default value of the BuyerStatus enum.
const DefaultBuyerStatus = BuyerStatusUpcoming

// BuyerStatus values.
const (
	BuyerStatusUpcoming BuyerStatus = "upcoming"
	BuyerStatusInvoiced BuyerStatus = "invoiced"
	BuyerStatusPaid     BuyerStatus = "paid"
	BuyerStatusFailed   BuyerStatus = "failed"
	BuyerStatusRefunded BuyerStatus = "refunded"
)

func (bs BuyerStatus) String() string {
	return string(bs)
}

// BuyerStatusValidator is a validator for the "buyer_status" field enum values. It is called by the builders before save.
func BuyerStatusValidator(bs BuyerStatus) error {
	switch bs {
	case BuyerStatusUpcoming, BuyerStatusInvoiced, BuyerStatusPaid, BuyerStatusFailed, BuyerStatusRefunded:
		return nil
	default:
		return fmt.Errorf("paymentrecord: invalid enum value for buyer_status field: %q", bs)
	}
}

// SupplierStatus defines the type for the "supplier_status" enum field.
type SupplierStatus string

// SupplierStatusUpcoming is the default value of the SupplierStatus enum.
const DefaultSupplierStatus = SupplierStatusUpcoming

// SupplierStatus values.
const (
	SupplierStatusUpcoming SupplierStatus = "upcoming"
	SupplierStatusInvoiced SupplierStatus = "invoiced"
	SupplierStatusPaid     SupplierStatus = "paid"
	SupplierStatusFailed   SupplierStatus = "failed"
	SupplierStatusRefunded SupplierStatus = "refunded"
)

func (ss SupplierStatus) String() string {
	return string(ss)
}

// SupplierStatusValidator is a validator for the "supplier_status" field enum values. It is called by the builders before save.
func SupplierStatusValidator(ss SupplierStatus) error {
	switch ss {
	case SupplierStatusUpcoming, SupplierStatusInvoiced, SupplierStatusPaid, SupplierStatusFailed, SupplierStatusRefunded:
		return nil
	default:
		return fmt.Errorf("paymentrecord: invalid enum value for supplier_status field: %q", ss)
	}
}

// OrderOption defines the ordering options for the PaymentRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEngagementID orders the results by the engagement_id field.
func ByEngagementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementID, opts...).ToFunc()
}

// ByPeriodStart orders the results by the period_start field.
func ByPeriodStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodStart, opts...).ToFunc()
}

// ByPeriodEnd orders the results by the period_end field.
func ByPeriodEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriodEnd, opts...).ToFunc()
}

// ByDueDate orders the results by the due_date field.
func ByDueDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDueDate, opts...).ToFunc()
}

// ByBuyerAmount orders the results by the buyer_amount field.
func ByBuyerAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerAmount, opts...).ToFunc()
}

// BySupplierAmount orders the results by the supplier_amount field.
func BySupplierAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierAmount, opts...).ToFunc()
}

// ByWexAmount orders the results by the wex_amount field.
func ByWexAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWexAmount, opts...).ToFunc()
}

// ByBuyerStatus orders the results by the buyer_status field.
func ByBuyerStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerStatus, opts...).ToFunc()
}

// BySupplierStatus orders the results by the supplier_status field.
func BySupplierStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierStatus, opts...).ToFunc()
}

// ByBuyerPaidAt orders the results by the buyer_paid_at field.
func ByBuyerPaidAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerPaidAt, opts...).ToFunc()
}

// BySupplierPaidAt orders the results by the supplier_paid_at field.
func BySupplierPaidAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierPaidAt, opts...).ToFunc()
}

// ByExternalRef orders the results by the external_ref field.
func ByExternalRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalRef, opts...).ToFunc()
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
