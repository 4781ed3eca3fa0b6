// Code generated by ent, DO NOT EDIT.

package searchsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the searchsession type in the database.
	Label = "search_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "search_session_id"
	// FieldToken holds the string denoting the token field in the database.
	FieldToken = "token"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldBuyerNeedID holds the string denoting the buyer_need_id field in the database.
	FieldBuyerNeedID = "buyer_need_id"
	// FieldCriteria holds the string denoting the criteria field in the database.
	FieldCriteria = "criteria"
	// FieldResultMatches holds the string denoting the result_matches field in the database.
	FieldResultMatches = "result_matches"
	// FieldResultCount holds the string denoting the result_count field in the database.
	FieldResultCount = "result_count"
	// FieldDlaTriggered holds the string denoting the dla_triggered field in the database.
	FieldDlaTriggered = "dla_triggered"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the searchsession in the database.
	Table = "search_sessions"
)

// Columns holds all SQL columns for searchsession fields.
var Columns = []string{
	FieldID,
	FieldToken,
	FieldPhone,
	FieldBuyerNeedID,
	FieldCriteria,
	FieldResultMatches,
	FieldResultCount,
	FieldDlaTriggered,
	FieldExpiresAt,
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
	// DefaultResultCount holds the default value on creation for the "result_count" field.
	DefaultResultCount int
	// DefaultDlaTriggered holds the default value on creation for the "dla_triggered" field.
	DefaultDlaTriggered bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the SearchSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByToken orders the results by the token field.
func ByToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToken, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByBuyerNeedID orders the results by the buyer_need_id field.
func ByBuyerNeedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerNeedID, opts...).ToFunc()
}

// ByResultCount orders the results by the result_count field.
func ByResultCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultCount, opts...).ToFunc()
}

// ByDlaTriggered orders the results by the dla_triggered field.
func ByDlaTriggered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDlaTriggered, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
