// Code generated by ent, DO NOT EDIT.

package instantbookscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the instantbookscore type in the database.
	Label = "instant_book_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "instant_book_score_id"
	// FieldMatchID holds the string denoting the match_id field in the database.
	FieldMatchID = "match_id"
	// FieldTruthCoreCompleteness holds the string denoting the truth_core_completeness field in the database.
	FieldTruthCoreCompleteness = "truth_core_completeness"
	// FieldContextualMemoryDepth holds the string denoting the contextual_memory_depth field in the database.
	FieldContextualMemoryDepth = "contextual_memory_depth"
	// FieldSupplierTrustLevel holds the string denoting the supplier_trust_level field in the database.
	FieldSupplierTrustLevel = "supplier_trust_level"
	// FieldMatchSpecificity holds the string denoting the match_specificity field in the database.
	FieldMatchSpecificity = "match_specificity"
	// FieldFeatureAlignment holds the string denoting the feature_alignment field in the database.
	FieldFeatureAlignment = "feature_alignment"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMatch holds the string denoting the match edge name in mutations.
	EdgeMatch = "match"
	// MatchFieldID holds the string denoting the ID field of the Match.
	MatchFieldID = "match_id"
	// Table holds the table name of the instantbookscore in the database.
	Table = "instant_book_scores"
	// MatchTable is the table that holds the match relation/edge.
	MatchTable = "instant_book_scores"
	// MatchInverseTable is the table name for the Match entity.
	// It exists in this package in order to avoid circular dependency with the "match" package.
	MatchInverseTable = "matches"
	// MatchColumn is the table column denoting the match relation/edge.
	MatchColumn = "match_id"
)

// Columns holds all SQL columns for instantbookscore fields.
var Columns = []string{
	FieldID,
	FieldMatchID,
	FieldTruthCoreCompleteness,
	FieldContextualMemoryDepth,
	FieldSupplierTrustLevel,
	FieldMatchSpecificity,
	FieldFeatureAlignment,
	FieldTotal,
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

// OrderOption defines the ordering options for the InstantBookScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMatchID orders the results by the match_id field.
func ByMatchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchID, opts...).ToFunc()
}

// ByTruthCoreCompleteness orders the results by the truth_core_completeness field.
func ByTruthCoreCompleteness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTruthCoreCompleteness, opts...).ToFunc()
}

// ByContextualMemoryDepth orders the results by the contextual_memory_depth field.
func ByContextualMemoryDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextualMemoryDepth, opts...).ToFunc()
}

// BySupplierTrustLevel orders the results by the supplier_trust_level field.
func BySupplierTrustLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierTrustLevel, opts...).ToFunc()
}

// ByMatchSpecificity orders the results by the match_specificity field.
func ByMatchSpecificity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchSpecificity, opts...).ToFunc()
}

// ByFeatureAlignment orders the results by the feature_alignment field.
func ByFeatureAlignment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatureAlignment, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMatchField orders the results by match field.
func ByMatchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatchStep(), sql.OrderByField(field, opts...))
	}
}
func newMatchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchInverseTable, MatchFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, MatchTable, MatchColumn),
	)
}
