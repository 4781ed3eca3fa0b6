// Code generated by ent, DO NOT EDIT.

package truthcore

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the truthcore type in the database.
	Label = "truth_core"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "truth_core_id"
	// FieldWarehouseID holds the string denoting the warehouse_id field in the database.
	FieldWarehouseID = "warehouse_id"
	// FieldMinSqft holds the string denoting the min_sqft field in the database.
	FieldMinSqft = "min_sqft"
	// FieldMaxSqft holds the string denoting the max_sqft field in the database.
	FieldMaxSqft = "max_sqft"
	// FieldActivityTier holds the string denoting the activity_tier field in the database.
	FieldActivityTier = "activity_tier"
	// FieldAvailableFrom holds the string denoting the available_from field in the database.
	FieldAvailableFrom = "available_from"
	// FieldAvailableUntil holds the string denoting the available_until field in the database.
	FieldAvailableUntil = "available_until"
	// FieldSupplierRatePerSqft holds the string denoting the supplier_rate_per_sqft field in the database.
	FieldSupplierRatePerSqft = "supplier_rate_per_sqft"
	// FieldActivationStatus holds the string denoting the activation_status field in the database.
	FieldActivationStatus = "activation_status"
	// FieldTrustLevel holds the string denoting the trust_level field in the database.
	FieldTrustLevel = "trust_level"
	// FieldDockDoors holds the string denoting the dock_doors field in the database.
	FieldDockDoors = "dock_doors"
	// FieldClearHeightFt holds the string denoting the clear_height_ft field in the database.
	FieldClearHeightFt = "clear_height_ft"
	// FieldHasOfficeSpace holds the string denoting the has_office_space field in the database.
	FieldHasOfficeSpace = "has_office_space"
	// FieldHasSprinkler holds the string denoting the has_sprinkler field in the database.
	FieldHasSprinkler = "has_sprinkler"
	// FieldPowerService holds the string denoting the power_service field in the database.
	FieldPowerService = "power_service"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeWarehouse holds the string denoting the warehouse edge name in mutations.
	EdgeWarehouse = "warehouse"
	// WarehouseFieldID holds the string denoting the ID field of the Warehouse.
	WarehouseFieldID = "warehouse_id"
	// Table holds the table name of the truthcore in the database.
	Table = "truth_cores"
	// WarehouseTable is the table that holds the warehouse relation/edge.
	WarehouseTable = "truth_cores"
	// WarehouseInverseTable is the table name for the Warehouse entity.
	// It exists in this package in order to avoid circular dependency with the "warehouse" package.
	WarehouseInverseTable = "warehouses"
	// WarehouseColumn is the table column denoting the warehouse relation/edge.
	WarehouseColumn = "warehouse_id"
)

// Columns holds all SQL columns for truthcore fields.
var Columns = []string{
	FieldID,
	FieldWarehouseID,
	FieldMinSqft,
	FieldMaxSqft,
	FieldActivityTier,
	FieldAvailableFrom,
	FieldAvailableUntil,
	FieldSupplierRatePerSqft,
	FieldActivationStatus,
	FieldTrustLevel,
	FieldDockDoors,
	FieldClearHeightFt,
	FieldHasOfficeSpace,
	FieldHasSprinkler,
	FieldPowerService,
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
	// DefaultTrustLevel holds the default value on creation for the "trust_level" field.
	DefaultTrustLevel int
	// DefaultDockDoors holds the default value on creation for the "dock_doors" field.
	DefaultDockDoors int
	// DefaultHasOfficeSpace holds the default value on creation for the "has_office_space" field.
	DefaultHasOfficeSpace bool
	// DefaultHasSprinkler holds the default value on creation for the "has_sprinkler" field.
	DefaultHasSprinkler bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ActivityTier defines the type for the "activity_tier" enum field.
type ActivityTier string

// ActivityTierStorageOnly is the default value of the ActivityTier enum.
const DefaultActivityTier = ActivityTierStorageOnly

// ActivityTier values.
const (
	ActivityTierStorageOnly          ActivityTier = "storage_only"
	ActivityTierStorageOffice        ActivityTier = "storage_office"
	ActivityTierStorageLightAssembly ActivityTier = "storage_light_assembly"
	ActivityTierColdStorage          ActivityTier = "cold_storage"
)

func (at ActivityTier) String() string {
	return string(at)
}

// ActivityTierValidator is a validator for the "activity_tier" field enum values. It is called by the builders before save.
func ActivityTierValidator(at ActivityTier) error {
	switch at {
	case ActivityTierStorageOnly, ActivityTierStorageOffice, ActivityTierStorageLightAssembly, ActivityTierColdStorage:
		return nil
	default:
		return fmt.Errorf("truthcore: invalid enum value for activity_tier field: %q", at)
	}
}

// ActivationStatus defines the type for the "activation_status" enum field.
type ActivationStatus string

// ActivationStatusOff is the default value of the ActivationStatus enum.
const DefaultActivationStatus = ActivationStatusOff

// ActivationStatus values.
const (
	ActivationStatusOn  ActivationStatus = "on"
	ActivationStatusOff ActivationStatus = "off"
)

func (as ActivationStatus) String() string {
	return string(as)
}

// ActivationStatusValidator is a validator for the "activation_status" field enum values. It is called by the builders before save.
func ActivationStatusValidator(as ActivationStatus) error {
	switch as {
	case ActivationStatusOn, ActivationStatusOff:
		return nil
	default:
		return fmt.Errorf("truthcore: invalid enum value for activation_status field: %q", as)
	}
}

// OrderOption defines the ordering options for the TruthCore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWarehouseID orders the results by the warehouse_id field.
func ByWarehouseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWarehouseID, opts...).ToFunc()
}

// ByMinSqft orders the results by the min_sqft field.
func ByMinSqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinSqft, opts...).ToFunc()
}

// ByMaxSqft orders the results by the max_sqft field.
func ByMaxSqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxSqft, opts...).ToFunc()
}

// ByActivityTier orders the results by the activity_tier field.
func ByActivityTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityTier, opts...).ToFunc()
}

// ByAvailableFrom orders the results by the available_from field.
func ByAvailableFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailableFrom, opts...).ToFunc()
}

// ByAvailableUntil orders the results by the available_until field.
func ByAvailableUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailableUntil, opts...).ToFunc()
}

// BySupplierRatePerSqft orders the results by the supplier_rate_per_sqft field.
func BySupplierRatePerSqft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierRatePerSqft, opts...).ToFunc()
}

// ByActivationStatus orders the results by the activation_status field.
func ByActivationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivationStatus, opts...).ToFunc()
}

// ByTrustLevel orders the results by the trust_level field.
func ByTrustLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrustLevel, opts...).ToFunc()
}

// ByDockDoors orders the results by the dock_doors field.
func ByDockDoors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDockDoors, opts...).ToFunc()
}

// ByClearHeightFt orders the results by the clear_height_ft field.
func ByClearHeightFt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClearHeightFt, opts...).ToFunc()
}

// ByHasOfficeSpace orders the results by the has_office_space field.
func ByHasOfficeSpace(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasOfficeSpace, opts...).ToFunc()
}

// ByHasSprinkler orders the results by the has_sprinkler field.
func ByHasSprinkler(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasSprinkler, opts...).ToFunc()
}

// ByPowerService orders the results by the power_service field.
func ByPowerService(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPowerService, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, WarehouseTable, WarehouseColumn),
	)
}
