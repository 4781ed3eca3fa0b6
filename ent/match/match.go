// Code generated by ent, DO NOT EDIT.

package match

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the match type in the database.
	Label = "match"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "match_id"
	// FieldBuyerNeedID holds the string denoting the buyer_need_id field in the database.
	FieldBuyerNeedID = "buyer_need_id"
	// FieldWarehouseID holds the string denoting the warehouse_id field in the database.
	FieldWarehouseID = "warehouse_id"
	// FieldCompositeScore holds the string denoting the composite_score field in the database.
	FieldCompositeScore = "composite_score"
	// FieldLocationScore holds the string denoting the location_score field in the database.
	FieldLocationScore = "location_score"
	// FieldSizeScore holds the string denoting the size_score field in the database.
	FieldSizeScore = "size_score"
	// FieldUseTypeScore holds the string denoting the use_type_score field in the database.
	FieldUseTypeScore = "use_type_score"
	// FieldFeatureScore holds the string denoting the feature_score field in the database.
	FieldFeatureScore = "feature_score"
	// FieldTimingScore holds the string denoting the timing_score field in the database.
	FieldTimingScore = "timing_score"
	// FieldBudgetScore holds the string denoting the budget_score field in the database.
	FieldBudgetScore = "budget_score"
	// FieldDistanceMiles holds the string denoting the distance_miles field in the database.
	FieldDistanceMiles = "distance_miles"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldCallouts holds the string denoting the callouts field in the database.
	FieldCallouts = "callouts"
	// FieldInstantBookEligible holds the string denoting the instant_book_eligible field in the database.
	FieldInstantBookEligible = "instant_book_eligible"
	// FieldWithinBudget holds the string denoting the within_budget field in the database.
	FieldWithinBudget = "within_budget"
	// FieldBuyerRate holds the string denoting the buyer_rate field in the database.
	FieldBuyerRate = "buyer_rate"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBuyerNeed holds the string denoting the buyer_need edge name in mutations.
	EdgeBuyerNeed = "buyer_need"
	// EdgeWarehouse holds the string denoting the warehouse edge name in mutations.
	EdgeWarehouse = "warehouse"
	// EdgeInstantBookScore holds the string denoting the instant_book_score edge name in mutations.
	EdgeInstantBookScore = "instant_book_score"
	// EdgeEngagement holds the string denoting the engagement edge name in mutations.
	EdgeEngagement = "engagement"
	// BuyerNeedFieldID holds the string denoting the ID field of the BuyerNeed.
	BuyerNeedFieldID = "buyer_need_id"
	// WarehouseFieldID holds the string denoting the ID field of the Warehouse.
	WarehouseFieldID = "warehouse_id"
	// InstantBookScoreFieldID holds the string denoting the ID field of the InstantBookScore.
	InstantBookScoreFieldID = "instant_book_score_id"
	// EngagementFieldID holds the string denoting the ID field of the Engagement.
	EngagementFieldID = "engagement_id"
	// Table holds the table name of the match in the database.
	Table = "matches"
	// BuyerNeedTable is the table that holds the buyer_need relation/edge.
	BuyerNeedTable = "matches"
	// BuyerNeedInverseTable is the table name for the BuyerNeed entity.
	// It exists in this package in order to avoid circular dependency with the "buyerneed" package.
	BuyerNeedInverseTable = "buyer_needs"
	// BuyerNeedColumn is the table column denoting the buyer_need relation/edge.
	BuyerNeedColumn = "buyer_need_id"
	// WarehouseTable is the table that holds the warehouse relation/edge.
	WarehouseTable = "matches"
	// WarehouseInverseTable is the table name for the Warehouse entity.
	// It exists in this package in order to avoid circular dependency with the "warehouse" package.
	WarehouseInverseTable = "warehouses"
	// WarehouseColumn is the table column denoting the warehouse relation/edge.
	WarehouseColumn = "warehouse_id"
	// InstantBookScoreTable is the table that holds the instant_book_score relation/edge.
	InstantBookScoreTable = "instant_book_scores"
	// InstantBookScoreInverseTable is the table name for the InstantBookScore entity.
	// It exists in this package in order to avoid circular dependency with the "instantbookscore" package.
	InstantBookScoreInverseTable = "instant_book_scores"
	// InstantBookScoreColumn is the table column denoting the instant_book_score relation/edge.
	InstantBookScoreColumn = "match_id"
	// EngagementTable is the table that holds the engagement relation/edge.
	EngagementTable = "engagements"
	// EngagementInverseTable is the table name for the Engagement entity.
	// It exists in this package in order to avoid circular dependency with the "engagement" package.
	EngagementInverseTable = "engagements"
	// EngagementColumn is the table column denoting the engagement relation/edge.
	EngagementColumn = "match_id"
)

// Columns holds all SQL columns for match fields.
var Columns = []string{
	FieldID,
	FieldBuyerNeedID,
	FieldWarehouseID,
	FieldCompositeScore,
	FieldLocationScore,
	FieldSizeScore,
	FieldUseTypeScore,
	FieldFeatureScore,
	FieldTimingScore,
	FieldBudgetScore,
	FieldDistanceMiles,
	FieldReasoning,
	FieldCallouts,
	FieldInstantBookEligible,
	FieldWithinBudget,
	FieldBuyerRate,
	FieldStatus,
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
	// DefaultInstantBookEligible holds the default value on creation for the "instant_book_eligible" field.
	DefaultInstantBookEligible bool
	// DefaultWithinBudget holds the default value on creation for the "within_budget" field.
	DefaultWithinBudget bool
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
	StatusPending   Status = "pending"
	StatusPresented Status = "presented"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusPresented, StatusAccepted, StatusDeclined:
		return nil
	default:
		return fmt.Errorf("match: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Match queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBuyerNeedID orders the results by the buyer_need_id field.
func ByBuyerNeedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerNeedID, opts...).ToFunc()
}

// ByWarehouseID orders the results by the warehouse_id field.
func ByWarehouseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarehouseID, opts...).ToFunc()
}

// ByCompositeScore orders the results by the composite_score field.
func ByCompositeScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompositeScore, opts...).ToFunc()
}

// ByLocationScore orders the results by the location_score field.
func ByLocationScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocationScore, opts...).ToFunc()
}

// BySizeScore orders the results by the size_score field.
func BySizeScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeScore, opts...).ToFunc()
}

// ByUseTypeScore orders the results by the use_type_score field.
func ByUseTypeScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUseTypeScore, opts...).ToFunc()
}

// ByFeatureScore orders the results by the feature_score field.
func ByFeatureScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeatureScore, opts...).ToFunc()
}

// ByTimingScore orders the results by the timing_score field.
func ByTimingScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimingScore, opts...).ToFunc()
}

// ByBudgetScore orders the results by the budget_score field.
func ByBudgetScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBudgetScore, opts...).ToFunc()
}

// ByDistanceMiles orders the results by the distance_miles field.
func ByDistanceMiles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistanceMiles, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByInstantBookEligible orders the results by the instant_book_eligible field.
func ByInstantBookEligible(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstantBookEligible, opts...).ToFunc()
}

// ByWithinBudget orders the results by the within_budget field.
func ByWithinBudget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWithinBudget, opts...).ToFunc()
}

// ByBuyerRate orders the results by the buyer_rate field.
func ByBuyerRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerRate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBuyerNeedField orders the results by buyer_need field.
func ByBuyerNeedField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuyerNeedStep(), sql.OrderByField(field, opts...))
	}
}

// ByWarehouseField orders the results by warehouse field.
func ByWarehouseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWarehouseStep(), sql.OrderByField(field, opts...))
	}
}

// ByInstantBookScoreField orders the results by instant_book_score field.
func ByInstantBookScoreField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInstantBookScoreStep(), sql.OrderByField(field, opts...))
	}
}

// ByEngagementField orders the results by engagement field.
func ByEngagementField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEngagementStep(), sql.OrderByField(field, opts...))
	}
}
func newBuyerNeedStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuyerNeedInverseTable, BuyerNeedFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BuyerNeedTable, BuyerNeedColumn),
	)
}
func newWarehouseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WarehouseInverseTable, WarehouseFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WarehouseTable, WarehouseColumn),
	)
}
func newInstantBookScoreStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InstantBookScoreInverseTable, InstantBookScoreFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, InstantBookScoreTable, InstantBookScoreColumn),
	)
}
func newEngagementStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EngagementInverseTable, EngagementFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, EngagementTable, EngagementColumn),
	)
}
