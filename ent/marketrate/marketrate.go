// Code generated by ent, DO NOT EDIT.

package marketrate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the marketrate type in the database.
	Label = "market_rate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "market_rate_id"
	// FieldZip holds the string denoting the zip field in the database.
	FieldZip = "zip"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldRateLow holds the string denoting the rate_low field in the database.
	FieldRateLow = "rate_low"
	// FieldRateHigh holds the string denoting the rate_high field in the database.
	FieldRateHigh = "rate_high"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldFetchedAt holds the string denoting the fetched_at field in the database.
	FieldFetchedAt = "fetched_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the marketrate in the database.
	Table = "market_rates"
)

// Columns holds all SQL columns for marketrate fields.
var Columns = []string{
	FieldID,
	FieldZip,
	FieldState,
	FieldRateLow,
	FieldRateHigh,
	FieldSource,
	FieldFetchedAt,
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
	// ZipValidator is a validator for the "zip" field. It is called by the builders before save.
	ZipValidator func(string) error
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Source defines the type for the "source" enum field.
type Source string

// SourceLlmSearch is the default value of the Source enum.
const DefaultSource = SourceLlmSearch

// Source values.
const (
	SourceLlmSearch Source = "llm_search"
	SourceAdmin     Source = "admin"
)

func (s Source) String() string {
	return string(s)
}

// SourceValidator is a validator for the "source" field enum values. It is called by the builders before save.
func SourceValidator(s Source) error {
	switch s {
	case SourceLlmSearch, SourceAdmin:
		return nil
	default:
		return fmt.Errorf("marketrate: invalid enum value for source field: %q", s)
	}
}

// OrderOption defines the ordering options for the MarketRate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByZip orders the results by the zip field.
func ByZip(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZip, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByRateLow orders the results by the rate_low field.
func ByRateLow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateLow, opts...).ToFunc()
}

// ByRateHigh orders the results by the rate_high field.
func ByRateHigh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateHigh, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByFetchedAt orders the results by the fetched_at field.
func ByFetchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
