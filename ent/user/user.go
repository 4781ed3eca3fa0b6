// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldPersona holds the string denoting the persona field in the database.
	FieldPersona = "persona"
	// FieldCompanyRole holds the string denoting the company_role field in the database.
	FieldCompanyRole = "company_role"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeBuyerNeeds holds the string denoting the buyer_needs edge name in mutations.
	EdgeBuyerNeeds = "buyer_needs"
	// CompanyFieldID holds the string denoting the ID field of the Company.
	CompanyFieldID = "company_id"
	// BuyerNeedFieldID holds the string denoting the ID field of the BuyerNeed.
	BuyerNeedFieldID = "buyer_need_id"
	// Table holds the table name of the user in the database.
	Table = "users"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "users"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
	// BuyerNeedsTable is the table that holds the buyer_needs relation/edge.
	BuyerNeedsTable = "buyer_needs"
	// BuyerNeedsInverseTable is the table name for the BuyerNeed entity.
	// It exists in this package in order to avoid circular dependency with the "buyerneed" package.
	BuyerNeedsInverseTable = "buyer_needs"
	// BuyerNeedsColumn is the table column denoting the buyer_needs relation/edge.
	BuyerNeedsColumn = "buyer_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldEmail,
	FieldPhone,
	FieldFirstName,
	FieldLastName,
	FieldPersona,
	FieldCompanyRole,
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

// Persona defines the type for the "persona" enum field.
type Persona string

// PersonaBuyer is the default value of the Persona enum.
const DefaultPersona = PersonaBuyer

// Persona values.
const (
	PersonaBuyer    Persona = "buyer"
	PersonaSupplier Persona = "supplier"
	PersonaAdmin    Persona = "admin"
)

func (pe Persona) String() string {
	return string(pe)
}

// PersonaValidator is a validator for the "persona" field enum values. It is called by the builders before save.
func PersonaValidator(pe Persona) error {
	switch pe {
	case PersonaBuyer, PersonaSupplier, PersonaAdmin:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for persona field: %q", pe)
	}
}

// CompanyRole defines the type for the "company_role" enum field.
type CompanyRole string

// CompanyRoleMember is the default value of the CompanyRole enum.
const DefaultCompanyRole = CompanyRoleMember

// CompanyRole values.
const (
	CompanyRoleAdmin  CompanyRole = "admin"
	CompanyRoleMember CompanyRole = "member"
)

func (cr CompanyRole) String() string {
	return string(cr)
}

// CompanyRoleValidator is a validator for the "company_role" field enum values. It is called by the builders before save.
func CompanyRoleValidator(cr CompanyRole) error {
	switch cr {
	case CompanyRoleAdmin, CompanyRoleMember:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for company_role field: %q", cr)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByPersona orders the results by the persona field.
func ByPersona(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersona, opts...).ToFunc()
}

// ByCompanyRole orders the results by the company_role field.
func ByCompanyRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyRole, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCompanyField orders the results by company field.
func ByCompanyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCompanyStep(), sql.OrderByField(field, opts...))
	}
}

// ByBuyerNeedsCount orders the results by buyer_needs count.
func ByBuyerNeedsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBuyerNeedsStep(), opts...)
	}
}

// ByBuyerNeeds orders the results by buyer_needs terms.
func ByBuyerNeeds(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuyerNeedsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, CompanyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
func newBuyerNeedsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuyerNeedsInverseTable, BuyerNeedFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BuyerNeedsTable, BuyerNeedsColumn),
	)
}
