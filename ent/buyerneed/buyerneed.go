// Code generated by ent, DO NOT EDIT.

package buyerneed

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the buyerneed type in the database.
	Label = "buyer_need"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "buyer_need_id"
	// FieldBuyerID holds the string denoting the buyer_id field in the database.
	FieldBuyerID = "buyer_id"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldLat holds the string denoting the lat field in the database.
	FieldLat = "lat"
	// FieldLng holds the string denoting the lng field in the database.
	FieldLng = "lng"
	// FieldRadiusMiles holds the string denoting the radius_miles field in the database.
	FieldRadiusMiles = "radius_miles"
	// FieldMinSqft holds the string denoting the min_sqft field in the database.
	FieldMinSqft = "min_sqft"
	// FieldMaxSqft holds the string denoting the max_sqft field in the database.
	FieldMaxSqft = "max_sqft"
	// FieldUseType holds the string denoting the use_type field in the database.
	FieldUseType = "use_type"
	// FieldNeededFrom holds the string denoting the needed_from field in the database.
	FieldNeededFrom = "needed_from"
	// FieldDurationMonths holds the string denoting the duration_months field in the database.
	FieldDurationMonths = "duration_months"
	// FieldMaxBudgetPerSqft holds the string denoting the max_budget_per_sqft field in the database.
	FieldMaxBudgetPerSqft = "max_budget_per_sqft"
	// FieldRequirements holds the string denoting the requirements field in the database.
	FieldRequirements = "requirements"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBuyer holds the string denoting the buyer edge name in mutations.
	EdgeBuyer = "buyer"
	// EdgeMatches holds the string denoting the matches edge name in mutations.
	EdgeMatches = "matches"
	// EdgeDlaTokens holds the string denoting the dla_tokens edge name in mutations.
	EdgeDlaTokens = "dla_tokens"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// MatchFieldID holds the string denoting the ID field of the Match.
	MatchFieldID = "match_id"
	// DLATokenFieldID holds the string denoting the ID field of the DLAToken.
	DLATokenFieldID = "dla_token_id"
	// Table holds the table name of the buyerneed in the database.
	Table = "buyer_needs"
	// BuyerTable is the table that holds the buyer relation/edge.
	BuyerTable = "buyer_needs"
	// BuyerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	BuyerInverseTable = "users"
	// BuyerColumn is the table column denoting the buyer relation/edge.
	BuyerColumn = "buyer_id"
	// MatchesTable is the table that holds the matches relation/edge.
	MatchesTable = "matches"
	// MatchesInverseTable is the table name for the Match entity.
	// It exists in this package in order to avoid circular dependency with the "match" package.
	MatchesInverseTable = "matches"
	// MatchesColumn is the table column denoting the matches relation/edge.
	MatchesColumn = "buyer_need_id"
	// DlaTokensTable is the table that holds the dla_tokens relation/edge.
	DlaTokensTable = "dla_tokens"
	// DlaTokensInverseTable is the table name for the DLAToken entity.
	// It exists in this package in order to avoid circular dependency with the "dlatoken" package.
	DlaTokensInverseTable = "dla_tokens"
	// DlaTokensColumn is the table column denoting the dla_tokens relation/edge.
	DlaTokensColumn = "buyer_need_id"
)

// Columns holds all SQL columns for buyerneed fields.
var Columns = []string{
	FieldID,
	FieldBuyerID,
	FieldPhone,
	FieldCity,
	FieldState,
	FieldLat,
	FieldLng,
	FieldRadiusMiles,
	FieldMinSqft,
	FieldMaxSqft,
	FieldUseType,
	FieldNeededFrom,
	FieldDurationMonths,
	FieldMaxBudgetPerSqft,
	FieldRequirements,
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
	// DefaultRadiusMiles holds the default value on creation for the "radius_miles" field.
	DefaultRadiusMiles float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the BuyerNeed queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBuyerID orders the results by the buyer_id field.
func ByBuyerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerID, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByLat orders the results by the lat field.
func ByLat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLat, opts...).ToFunc()
}

// ByLng orders the results by the lng field.
func ByLng(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLng, opts...).ToFunc()
}

// ByRadiusMiles orders the results by the radius_miles field.
func ByRadiusMiles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRadiusMiles, opts...).ToFunc()
}

// ByMinSqft orders the results by the min_sqft field.
func ByMinSqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinSqft, opts...).ToFunc()
}

// ByMaxSqft orders the results by the max_sqft field.
func ByMaxSqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxSqft, opts...).ToFunc()
}

// ByUseType orders the results by the use_type field.
func ByUseType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUseType, opts...).ToFunc()
}

// ByNeededFrom orders the results by the needed_from field.
func ByNeededFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeededFrom, opts...).ToFunc()
}

// ByDurationMonths orders the results by the duration_months field.
func ByDurationMonths(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMonths, opts...).ToFunc()
}

// ByMaxBudgetPerSqft orders the results by the max_budget_per_sqft field.
func ByMaxBudgetPerSqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxBudgetPerSqft, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBuyerField orders the results by buyer field.
func ByBuyerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuyerStep(), sql.OrderByField(field, opts...))
	}
}

// ByMatchesCount orders the results by matches count.
func ByMatchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMatchesStep(), opts...)
	}
}

// ByMatches orders the results by matches terms.
func ByMatches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDlaTokensCount orders the results by dla_tokens count.
func ByDlaTokensCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDlaTokensStep(), opts...)
	}
}

// ByDlaTokens orders the results by dla_tokens terms.
func ByDlaTokens(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDlaTokensStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBuyerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuyerInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BuyerTable, BuyerColumn),
	)
}
func newMatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchesInverseTable, MatchFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
	)
}
func newDlaTokensStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DlaTokensInverseTable, DLATokenFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DlaTokensTable, DlaTokensColumn),
	)
}
