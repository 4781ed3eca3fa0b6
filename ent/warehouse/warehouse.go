// Code generated by ent, DO NOT EDIT.

package warehouse

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the warehouse type in the database.
	Label = "warehouse"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "warehouse_id"
	// FieldCompanyID holds the string denoting the company_id field in the database.
	FieldCompanyID = "company_id"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldZip holds the string denoting the zip field in the database.
	FieldZip = "zip"
	// FieldLat holds the string denoting the lat field in the database.
	FieldLat = "lat"
	// FieldLng holds the string denoting the lng field in the database.
	FieldLng = "lng"
	// FieldBuildingSqft holds the string denoting the building_sqft field in the database.
	FieldBuildingSqft = "building_sqft"
	// FieldYearBuilt holds the string denoting the year_built field in the database.
	FieldYearBuilt = "year_built"
	// FieldConstructionType holds the string denoting the construction_type field in the database.
	FieldConstructionType = "construction_type"
	// FieldGallery holds the string denoting the gallery field in the database.
	FieldGallery = "gallery"
	// FieldContactPhone holds the string denoting the contact_phone field in the database.
	FieldContactPhone = "contact_phone"
	// FieldSupplierStatus holds the string denoting the supplier_status field in the database.
	FieldSupplierStatus = "supplier_status"
	// FieldLastOutreachAt holds the string denoting the last_outreach_at field in the database.
	FieldLastOutreachAt = "last_outreach_at"
	// FieldOutreachCount holds the string denoting the outreach_count field in the database.
	FieldOutreachCount = "outreach_count"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCompany holds the string denoting the company edge name in mutations.
	EdgeCompany = "company"
	// EdgeTruthCore holds the string denoting the truth_core edge name in mutations.
	EdgeTruthCore = "truth_core"
	// EdgeMatches holds the string denoting the matches edge name in mutations.
	EdgeMatches = "matches"
	// EdgeMemories holds the string denoting the memories edge name in mutations.
	EdgeMemories = "memories"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// EdgeKnowledge holds the string denoting the knowledge edge name in mutations.
	EdgeKnowledge = "knowledge"
	// EdgeDlaTokens holds the string denoting the dla_tokens edge name in mutations.
	EdgeDlaTokens = "dla_tokens"
	// EdgeToggleHistory holds the string denoting the toggle_history edge name in mutations.
	EdgeToggleHistory = "toggle_history"
	// EdgeSupplierAgreements holds the string denoting the supplier_agreements edge name in mutations.
	EdgeSupplierAgreements = "supplier_agreements"
	// CompanyFieldID holds the string denoting the ID field of the Company.
	CompanyFieldID = "company_id"
	// TruthCoreFieldID holds the string denoting the ID field of the TruthCore.
	TruthCoreFieldID = "truth_core_id"
	// MatchFieldID holds the string denoting the ID field of the Match.
	MatchFieldID = "match_id"
	// ContextualMemoryFieldID holds the string denoting the ID field of the ContextualMemory.
	ContextualMemoryFieldID = "memory_id"
	// PropertyQuestionFieldID holds the string denoting the ID field of the PropertyQuestion.
	PropertyQuestionFieldID = "question_id"
	// PropertyKnowledgeFieldID holds the string denoting the ID field of the PropertyKnowledge.
	PropertyKnowledgeFieldID = "knowledge_id"
	// DLATokenFieldID holds the string denoting the ID field of the DLAToken.
	DLATokenFieldID = "dla_token_id"
	// ToggleHistoryFieldID holds the string denoting the ID field of the ToggleHistory.
	ToggleHistoryFieldID = "toggle_id"
	// SupplierAgreementFieldID holds the string denoting the ID field of the SupplierAgreement.
	SupplierAgreementFieldID = "supplier_agreement_id"
	// Table holds the table name of the warehouse in the database.
	Table = "warehouses"
	// CompanyTable is the table that holds the company relation/edge.
	CompanyTable = "warehouses"
	// CompanyInverseTable is the table name for the Company entity.
	// It exists in this package in order to avoid circular dependency with the "company" package.
	CompanyInverseTable = "companies"
	// CompanyColumn is the table column denoting the company relation/edge.
	CompanyColumn = "company_id"
	// TruthCoreTable is the table that holds the truth_core relation/edge.
	TruthCoreTable = "truth_cores"
	// TruthCoreInverseTable is the table name for the TruthCore entity.
	// It exists in this package in order to avoid circular dependency with the "truthcore" package.
	TruthCoreInverseTable = "truth_cores"
	// TruthCoreColumn is the table column denoting the truth_core relation/edge.
	TruthCoreColumn = "warehouse_id"
	// MatchesTable is the table that holds the matches relation/edge.
	MatchesTable = "matches"
	// MatchesInverseTable is the table name for the Match entity.
	// It exists in this package in order to avoid circular dependency with the "match" package.
	MatchesInverseTable = "matches"
	// MatchesColumn is the table column denoting the matches relation/edge.
	MatchesColumn = "warehouse_id"
	// MemoriesTable is the table that holds the memories relation/edge.
	MemoriesTable = "contextual_memories"
	// MemoriesInverseTable is the table name for the ContextualMemory entity.
	// It exists in this package in order to avoid circular dependency with the "contextualmemory" package.
	MemoriesInverseTable = "contextual_memories"
	// MemoriesColumn is the table column denoting the memories relation/edge.
	MemoriesColumn = "warehouse_id"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "property_questions"
	// QuestionsInverseTable is the table name for the PropertyQuestion entity.
	// It exists in this package in order to avoid circular dependency with the "propertyquestion" package.
	QuestionsInverseTable = "property_questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "warehouse_id"
	// KnowledgeTable is the table that holds the knowledge relation/edge.
	KnowledgeTable = "property_knowledge"
	// KnowledgeInverseTable is the table name for the PropertyKnowledge entity.
	// It exists in this package in order to avoid circular dependency with the "propertyknowledge" package.
	KnowledgeInverseTable = "property_knowledge"
	// KnowledgeColumn is the table column denoting the knowledge relation/edge.
	KnowledgeColumn = "warehouse_id"
	// DlaTokensTable is the table that holds the dla_tokens relation/edge.
	DlaTokensTable = "dla_tokens"
	// DlaTokensInverseTable is the table name for the DLAToken entity.
	// It exists in this package in order to avoid circular dependency with the "dlatoken" package.
	DlaTokensInverseTable = "dla_tokens"
	// DlaTokensColumn is the table column denoting the dla_tokens relation/edge.
	DlaTokensColumn = "warehouse_id"
	// ToggleHistoryTable is the table that holds the toggle_history relation/edge.
	ToggleHistoryTable = "toggle_histories"
	// ToggleHistoryInverseTable is the table name for the ToggleHistory entity.
	// It exists in this package in order to avoid circular dependency with the "togglehistory" package.
	ToggleHistoryInverseTable = "toggle_histories"
	// ToggleHistoryColumn is the table column denoting the toggle_history relation/edge.
	ToggleHistoryColumn = "warehouse_id"
	// SupplierAgreementsTable is the table that holds the supplier_agreements relation/edge.
	SupplierAgreementsTable = "supplier_agreements"
	// SupplierAgreementsInverseTable is the table name for the SupplierAgreement entity.
	// It exists in this package in order to avoid circular dependency with the "supplieragreement" package.
	SupplierAgreementsInverseTable = "supplier_agreements"
	// SupplierAgreementsColumn is the table column denoting the supplier_agreements relation/edge.
	SupplierAgreementsColumn = "warehouse_id"
)

// Columns holds all SQL columns for warehouse fields.
var Columns = []string{
	FieldID,
	FieldCompanyID,
	FieldAddress,
	FieldCity,
	FieldState,
	FieldZip,
	FieldLat,
	FieldLng,
	FieldBuildingSqft,
	FieldYearBuilt,
	FieldConstructionType,
	FieldGallery,
	FieldContactPhone,
	FieldSupplierStatus,
	FieldLastOutreachAt,
	FieldOutreachCount,
	FieldCreatedBy,
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
	// AddressValidator is a validator for the "address" field. It is called by the builders before save.
	AddressValidator func(string) error
	// CityValidator is a validator for the "city" field. It is called by the builders before save.
	CityValidator func(string) error
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// DefaultOutreachCount holds the default value on creation for the "outreach_count" field.
	DefaultOutreachCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// SupplierStatus defines the type for the "supplier_status" enum field.
type SupplierStatus string

// SupplierStatusThirdParty is the default value of the SupplierStatus enum.
const DefaultSupplierStatus = SupplierStatusThirdParty

// SupplierStatus values.
const (
	SupplierStatusThirdParty    SupplierStatus = "third_party"
	SupplierStatusEarncheckOnly SupplierStatus = "earncheck_only"
	SupplierStatusInterested    SupplierStatus = "interested"
	SupplierStatusInNetwork     SupplierStatus = "in_network"
	SupplierStatusDeclined      SupplierStatus = "declined"
	SupplierStatusUnresponsive  SupplierStatus = "unresponsive"
)

func (ss SupplierStatus) String() string {
	return string(ss)
}

// SupplierStatusValidator is a validator for the "supplier_status" field enum values. It is called by the builders before save.
func SupplierStatusValidator(ss SupplierStatus) error {
	switch ss {
	case SupplierStatusThirdParty, SupplierStatusEarncheckOnly, SupplierStatusInterested, SupplierStatusInNetwork, SupplierStatusDeclined, SupplierStatusUnresponsive:
		return nil
	default:
		return fmt.Errorf("warehouse: invalid enum value for supplier_status field: %q", ss)
	}
}

// OrderOption defines the ordering options for the Warehouse queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCompanyID orders the results by the company_id field.
func ByCompanyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyID, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByZip orders the results by the zip field.
func ByZip(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZip, opts...).ToFunc()
}

// ByLat orders the results by the lat field.
func ByLat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLat, opts...).ToFunc()
}

// ByLng orders the results by the lng field.
func ByLng(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLng, opts...).ToFunc()
}

// ByBuildingSqft orders the results by the building_sqft field.
func ByBuildingSqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuildingSqft, opts...).ToFunc()
}

// ByYearBuilt orders the results by the year_built field.
func ByYearBuilt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYearBuilt, opts...).ToFunc()
}

// ByConstructionType orders the results by the construction_type field.
func ByConstructionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConstructionType, opts...).ToFunc()
}

// ByContactPhone orders the results by the contact_phone field.
func ByContactPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactPhone, opts...).ToFunc()
}

// BySupplierStatus orders the results by the supplier_status field.
func BySupplierStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierStatus, opts...).ToFunc()
}

// ByLastOutreachAt orders the results by the last_outreach_at field.
func ByLastOutreachAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastOutreachAt, opts...).ToFunc()
}

// ByOutreachCount orders the results by the outreach_count field.
func ByOutreachCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutreachCount, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
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

// ByTruthCoreField orders the results by truth_core field.
func ByTruthCoreField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTruthCoreStep(), sql.OrderByField(field, opts...))
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

// ByMemoriesCount orders the results by memories count.
func ByMemoriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMemoriesStep(), opts...)
	}
}

// ByMemories orders the results by memories terms.
func ByMemories(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMemoriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByKnowledgeCount orders the results by knowledge count.
func ByKnowledgeCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKnowledgeStep(), opts...)
	}
}

// ByKnowledge orders the results by knowledge terms.
func ByKnowledge(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnowledgeStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByToggleHistoryCount orders the results by toggle_history count.
func ByToggleHistoryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newToggleHistoryStep(), opts...)
	}
}

// ByToggleHistory orders the results by toggle_history terms.
func ByToggleHistory(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToggleHistoryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySupplierAgreementsCount orders the results by supplier_agreements count.
func BySupplierAgreementsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSupplierAgreementsStep(), opts...)
	}
}

// BySupplierAgreements orders the results by supplier_agreements terms.
func BySupplierAgreements(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSupplierAgreementsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCompanyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CompanyInverseTable, CompanyFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CompanyTable, CompanyColumn),
	)
}
func newTruthCoreStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TruthCoreInverseTable, TruthCoreFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, TruthCoreTable, TruthCoreColumn),
	)
}
func newMatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchesInverseTable, MatchFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
	)
}
func newMemoriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MemoriesInverseTable, ContextualMemoryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MemoriesTable, MemoriesColumn),
	)
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, PropertyQuestionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}
func newKnowledgeStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnowledgeInverseTable, PropertyKnowledgeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, KnowledgeTable, KnowledgeColumn),
	)
}
func newDlaTokensStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DlaTokensInverseTable, DLATokenFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DlaTokensTable, DlaTokensColumn),
	)
}
func newToggleHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToggleHistoryInverseTable, ToggleHistoryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ToggleHistoryTable, ToggleHistoryColumn),
	)
}
func newSupplierAgreementsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SupplierAgreementsInverseTable, SupplierAgreementFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SupplierAgreementsTable, SupplierAgreementsColumn),
	)
}
