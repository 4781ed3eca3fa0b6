// Code generated by ent, DO NOT EDIT.

package truthcore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldContainsFold(FieldID, id))
}

// WarehouseID applies equality check predicate on the "warehouse_id" field. It's identical to WarehouseIDEQ.
func WarehouseID(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldWarehouseID, v))
}

// MinSqft applies equality check predicate on the "min_sqft" field. It's identical to MinSqftEQ.
func MinSqft(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldMinSqft, v))
}

// MaxSqft applies equality check predicate on the "max_sqft" field. It's identical to MaxSqftEQ.
func MaxSqft(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldMaxSqft, v))
}

// AvailableFrom applies equality check predicate on the "available_from" field. It's identical to AvailableFromEQ.
func AvailableFrom(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldAvailableFrom, v))
}

// AvailableUntil applies equality check predicate on the "available_until" field. It's identical to AvailableUntilEQ.
func AvailableUntil(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldAvailableUntil, v))
}

// SupplierRatePerSqft applies equality check predicate on the "supplier_rate_per_sqft" field. It's identical to SupplierRatePerSqftEQ.
func SupplierRatePerSqft(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldSupplierRatePerSqft, v))
}

// TrustLevel applies equality check predicate on the "trust_level" field. It's identical to TrustLevelEQ.
func TrustLevel(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldTrustLevel, v))
}

// DockDoors applies equality check predicate on the "dock_doors" field. It's identical to DockDoorsEQ.
func DockDoors(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldDockDoors, v))
}

// ClearHeightFt applies equality check predicate on the "clear_height_ft" field. It's identical to ClearHeightFtEQ.
func ClearHeightFt(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldClearHeightFt, v))
}

// HasOfficeSpace applies equality check predicate on the "has_office_space" field. It's identical to HasOfficeSpaceEQ.
func HasOfficeSpace(v bool) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldHasOfficeSpace, v))
}

// HasSprinkler applies equality check predicate on the "has_sprinkler" field. It's identical to HasSprinklerEQ.
func HasSprinkler(v bool) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldHasSprinkler, v))
}

// PowerService applies equality check predicate on the "power_service" field. It's identical to PowerServiceEQ.
func PowerService(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldPowerService, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldUpdatedAt, v))
}

// WarehouseIDEQ applies the EQ predicate on the "warehouse_id" field.
func WarehouseIDEQ(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldWarehouseID, v))
}

// WarehouseIDNEQ applies the NEQ predicate on the "warehouse_id" field.
func WarehouseIDNEQ(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldWarehouseID, v))
}

// WarehouseIDIn applies the In predicate on the "warehouse_id" field.
func WarehouseIDIn(vs ...string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldWarehouseID, vs...))
}

// WarehouseIDNotIn applies the NotIn predicate on the "warehouse_id" field.
func WarehouseIDNotIn(vs ...string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldWarehouseID, vs...))
}

// WarehouseIDGT applies the GT predicate on the "warehouse_id" field.
func WarehouseIDGT(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldWarehouseID, v))
}

// WarehouseIDGTE applies the GTE predicate on the "warehouse_id" field.
func WarehouseIDGTE(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldWarehouseID, v))
}

// WarehouseIDLT applies the LT predicate on the "warehouse_id" field.
func WarehouseIDLT(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldWarehouseID, v))
}

// WarehouseIDLTE applies the LTE predicate on the "warehouse_id" field.
func WarehouseIDLTE(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldWarehouseID, v))
}

// WarehouseIDContains applies the Contains predicate on the "warehouse_id" field.
func WarehouseIDContains(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldContains(FieldWarehouseID, v))
}

// WarehouseIDHasPrefix applies the HasPrefix predicate on the "warehouse_id" field.
func WarehouseIDHasPrefix(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldHasPrefix(FieldWarehouseID, v))
}

// WarehouseIDHasSuffix applies the HasSuffix predicate on the "warehouse_id" field.
func WarehouseIDHasSuffix(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldHasSuffix(FieldWarehouseID, v))
}

// WarehouseIDEqualFold applies the EqualFold predicate on the "warehouse_id" field.
func WarehouseIDEqualFold(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEqualFold(FieldWarehouseID, v))
}

// WarehouseIDContainsFold applies the ContainsFold predicate on the "warehouse_id" field.
func WarehouseIDContainsFold(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldContainsFold(FieldWarehouseID, v))
}

// MinSqftEQ applies the EQ predicate on the "min_sqft" field.
func MinSqftEQ(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldMinSqft, v))
}

// MinSqftNEQ applies the NEQ predicate on the "min_sqft" field.
func MinSqftNEQ(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldMinSqft, v))
}

// MinSqftIn applies the In predicate on the "min_sqft" field.
func MinSqftIn(vs ...int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldMinSqft, vs...))
}

// MinSqftNotIn applies the NotIn predicate on the "min_sqft" field.
func MinSqftNotIn(vs ...int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldMinSqft, vs...))
}

// MinSqftGT applies the GT predicate on the "min_sqft" field.
func MinSqftGT(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldMinSqft, v))
}

// MinSqftGTE applies the GTE predicate on the "min_sqft" field.
func MinSqftGTE(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldMinSqft, v))
}

// MinSqftLT applies the LT predicate on the "min_sqft" field.
func MinSqftLT(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldMinSqft, v))
}

// MinSqftLTE applies the LTE predicate on the "min_sqft" field.
func MinSqftLTE(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldMinSqft, v))
}

// MaxSqftEQ applies the EQ predicate on the "max_sqft" field.
func MaxSqftEQ(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldMaxSqft, v))
}

// MaxSqftNEQ applies the NEQ predicate on the "max_sqft" field.
func MaxSqftNEQ(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldMaxSqft, v))
}

// MaxSqftIn applies the In predicate on the "max_sqft" field.
func MaxSqftIn(vs ...int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldMaxSqft, vs...))
}

// MaxSqftNotIn applies the NotIn predicate on the "max_sqft" field.
func MaxSqftNotIn(vs ...int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldMaxSqft, vs...))
}

// MaxSqftGT applies the GT predicate on the "max_sqft" field.
func MaxSqftGT(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldMaxSqft, v))
}

// MaxSqftGTE applies the GTE predicate on the "max_sqft" field.
func MaxSqftGTE(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldMaxSqft, v))
}

// MaxSqftLT applies the LT predicate on the "max_sqft" field.
func MaxSqftLT(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldMaxSqft, v))
}

// MaxSqftLTE applies the LTE predicate on the "max_sqft" field.
func MaxSqftLTE(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldMaxSqft, v))
}

// ActivityTierEQ applies the EQ predicate on the "activity_tier" field.
func ActivityTierEQ(v ActivityTier) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldActivityTier, v))
}

// ActivityTierNEQ applies the NEQ predicate on the "activity_tier" field.
func ActivityTierNEQ(v ActivityTier) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldActivityTier, v))
}

// ActivityTierIn applies the In predicate on the "activity_tier" field.
func ActivityTierIn(vs ...ActivityTier) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldActivityTier, vs...))
}

// ActivityTierNotIn applies the NotIn predicate on the "activity_tier" field.
func ActivityTierNotIn(vs ...ActivityTier) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldActivityTier, vs...))
}

// AvailableFromEQ applies the EQ predicate on the "available_from" field.
func AvailableFromEQ(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldAvailableFrom, v))
}

// AvailableFromNEQ applies the NEQ predicate on the "available_from" field.
func AvailableFromNEQ(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldAvailableFrom, v))
}

// AvailableFromIn applies the In predicate on the "available_from" field.
func AvailableFromIn(vs ...time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldAvailableFrom, vs...))
}

// AvailableFromNotIn applies the NotIn predicate on the "available_from" field.
func AvailableFromNotIn(vs ...time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldAvailableFrom, vs...))
}

// AvailableFromGT applies the GT predicate on the "available_from" field.
func AvailableFromGT(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldAvailableFrom, v))
}

// AvailableFromGTE applies the GTE predicate on the "available_from" field.
func AvailableFromGTE(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldAvailableFrom, v))
}

// AvailableFromLT applies the LT predicate on the "available_from" field.
func AvailableFromLT(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldAvailableFrom, v))
}

// AvailableFromLTE applies the LTE predicate on the "available_from" field.
func AvailableFromLTE(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldAvailableFrom, v))
}

// AvailableFromIsNil applies the IsNil predicate on the "available_from" field.
func AvailableFromIsNil() predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIsNull(FieldAvailableFrom))
}

// AvailableFromNotNil applies the NotNil predicate on the "available_from" field.
func AvailableFromNotNil() predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotNull(FieldAvailableFrom))
}

// AvailableUntilEQ applies the EQ predicate on the "available_until" field.
func AvailableUntilEQ(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldAvailableUntil, v))
}

// AvailableUntilNEQ applies the NEQ predicate on the "available_until" field.
func AvailableUntilNEQ(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldAvailableUntil, v))
}

// AvailableUntilIn applies the In predicate on the "available_until" field.
func AvailableUntilIn(vs ...time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldAvailableUntil, vs...))
}

// AvailableUntilNotIn applies the NotIn predicate on the "available_until" field.
func AvailableUntilNotIn(vs ...time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldAvailableUntil, vs...))
}

// AvailableUntilGT applies the GT predicate on the "available_until" field.
func AvailableUntilGT(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldAvailableUntil, v))
}

// AvailableUntilGTE applies the GTE predicate on the "available_until" field.
func AvailableUntilGTE(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldAvailableUntil, v))
}

// AvailableUntilLT applies the LT predicate on the "available_until" field.
func AvailableUntilLT(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldAvailableUntil, v))
}

// AvailableUntilLTE applies the LTE predicate on the "available_until" field.
func AvailableUntilLTE(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldAvailableUntil, v))
}

// AvailableUntilIsNil applies the IsNil predicate on the "available_until" field.
func AvailableUntilIsNil() predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIsNull(FieldAvailableUntil))
}

// AvailableUntilNotNil applies the NotNil predicate on the "available_until" field.
func AvailableUntilNotNil() predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotNull(FieldAvailableUntil))
}

// SupplierRatePerSqftEQ applies the EQ predicate on the "supplier_rate_per_sqft" field.
func SupplierRatePerSqftEQ(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldSupplierRatePerSqft, v))
}

// SupplierRatePerSqftNEQ applies the NEQ predicate on the "supplier_rate_per_sqft" field.
func SupplierRatePerSqftNEQ(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldSupplierRatePerSqft, v))
}

// SupplierRatePerSqftIn applies the In predicate on the "supplier_rate_per_sqft" field.
func SupplierRatePerSqftIn(vs ...float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldSupplierRatePerSqft, vs...))
}

// SupplierRatePerSqftNotIn applies the NotIn predicate on the "supplier_rate_per_sqft" field.
func SupplierRatePerSqftNotIn(vs ...float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldSupplierRatePerSqft, vs...))
}

// SupplierRatePerSqftGT applies the GT predicate on the "supplier_rate_per_sqft" field.
func SupplierRatePerSqftGT(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldSupplierRatePerSqft, v))
}

// SupplierRatePerSqftGTE applies the GTE predicate on the "supplier_rate_per_sqft" field.
func SupplierRatePerSqftGTE(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldSupplierRatePerSqft, v))
}

// SupplierRatePerSqftLT applies the LT predicate on the "supplier_rate_per_sqft" field.
func SupplierRatePerSqftLT(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldSupplierRatePerSqft, v))
}

// SupplierRatePerSqftLTE applies the LTE predicate on the "supplier_rate_per_sqft" field.
func SupplierRatePerSqftLTE(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldSupplierRatePerSqft, v))
}

// ActivationStatusEQ applies the EQ predicate on the "activation_status" field.
func ActivationStatusEQ(v ActivationStatus) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldActivationStatus, v))
}

// ActivationStatusNEQ applies the NEQ predicate on the "activation_status" field.
func ActivationStatusNEQ(v ActivationStatus) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldActivationStatus, v))
}

// ActivationStatusIn applies the In predicate on the "activation_status" field.
func ActivationStatusIn(vs ...ActivationStatus) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldActivationStatus, vs...))
}

// ActivationStatusNotIn applies the NotIn predicate on the "activation_status" field.
func ActivationStatusNotIn(vs ...ActivationStatus) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldActivationStatus, vs...))
}

// TrustLevelEQ applies the EQ predicate on the "trust_level" field.
func TrustLevelEQ(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldTrustLevel, v))
}

// TrustLevelNEQ applies the NEQ predicate on the "trust_level" field.
func TrustLevelNEQ(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldTrustLevel, v))
}

// TrustLevelIn applies the In predicate on the "trust_level" field.
func TrustLevelIn(vs ...int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldTrustLevel, vs...))
}

// TrustLevelNotIn applies the NotIn predicate on the "trust_level" field.
func TrustLevelNotIn(vs ...int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldTrustLevel, vs...))
}

// TrustLevelGT applies the GT predicate on the "trust_level" field.
func TrustLevelGT(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldTrustLevel, v))
}

// TrustLevelGTE applies the GTE predicate on the "trust_level" field.
func TrustLevelGTE(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldTrustLevel, v))
}

// TrustLevelLT applies the LT predicate on the "trust_level" field.
func TrustLevelLT(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldTrustLevel, v))
}

// TrustLevelLTE applies the LTE predicate on the "trust_level" field.
func TrustLevelLTE(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldTrustLevel, v))
}

// DockDoorsEQ applies the EQ predicate on the "dock_doors" field.
func DockDoorsEQ(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldDockDoors, v))
}

// DockDoorsNEQ applies the NEQ predicate on the "dock_doors" field.
func DockDoorsNEQ(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldDockDoors, v))
}

// DockDoorsIn applies the In predicate on the "dock_doors" field.
func DockDoorsIn(vs ...int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldDockDoors, vs...))
}

// DockDoorsNotIn applies the NotIn predicate on the "dock_doors" field.
func DockDoorsNotIn(vs ...int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldDockDoors, vs...))
}

// DockDoorsGT applies the GT predicate on the "dock_doors" field.
func DockDoorsGT(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldDockDoors, v))
}

// DockDoorsGTE applies the GTE predicate on the "dock_doors" field.
func DockDoorsGTE(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldDockDoors, v))
}

// DockDoorsLT applies the LT predicate on the "dock_doors" field.
func DockDoorsLT(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldDockDoors, v))
}

// DockDoorsLTE applies the LTE predicate on the "dock_doors" field.
func DockDoorsLTE(v int) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldDockDoors, v))
}

// ClearHeightFtEQ applies the EQ predicate on the "clear_height_ft" field.
func ClearHeightFtEQ(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldClearHeightFt, v))
}

// ClearHeightFtNEQ applies the NEQ predicate on the "clear_height_ft" field.
func ClearHeightFtNEQ(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldClearHeightFt, v))
}

// ClearHeightFtIn applies the In predicate on the "clear_height_ft" field.
func ClearHeightFtIn(vs ...float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldClearHeightFt, vs...))
}

// ClearHeightFtNotIn applies the NotIn predicate on the "clear_height_ft" field.
func ClearHeightFtNotIn(vs ...float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldClearHeightFt, vs...))
}

// ClearHeightFtGT applies the GT predicate on the "clear_height_ft" field.
func ClearHeightFtGT(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldClearHeightFt, v))
}

// ClearHeightFtGTE applies the GTE predicate on the "clear_height_ft" field.
func ClearHeightFtGTE(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldClearHeightFt, v))
}

// ClearHeightFtLT applies the LT predicate on the "clear_height_ft" field.
func ClearHeightFtLT(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldClearHeightFt, v))
}

// ClearHeightFtLTE applies the LTE predicate on the "clear_height_ft" field.
func ClearHeightFtLTE(v float64) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldClearHeightFt, v))
}

// ClearHeightFtIsNil applies the IsNil predicate on the "clear_height_ft" field.
func ClearHeightFtIsNil() predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIsNull(FieldClearHeightFt))
}

// ClearHeightFtNotNil applies the NotNil predicate on the "clear_height_ft" field.
func ClearHeightFtNotNil() predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotNull(FieldClearHeightFt))
}

// HasOfficeSpaceEQ applies the EQ predicate on the "has_office_space" field.
func HasOfficeSpaceEQ(v bool) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldHasOfficeSpace, v))
}

// HasOfficeSpaceNEQ applies the NEQ predicate on the "has_office_space" field.
func HasOfficeSpaceNEQ(v bool) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldHasOfficeSpace, v))
}

// HasSprinklerEQ applies the EQ predicate on the "has_sprinkler" field.
func HasSprinklerEQ(v bool) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldHasSprinkler, v))
}

// HasSprinklerNEQ applies the NEQ predicate on the "has_sprinkler" field.
func HasSprinklerNEQ(v bool) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldHasSprinkler, v))
}

// PowerServiceEQ applies the EQ predicate on the "power_service" field.
func PowerServiceEQ(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldPowerService, v))
}

// PowerServiceNEQ applies the NEQ predicate on the "power_service" field.
func PowerServiceNEQ(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldPowerService, v))
}

// PowerServiceIn applies the In predicate on the "power_service" field.
func PowerServiceIn(vs ...string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldPowerService, vs...))
}

// PowerServiceNotIn applies the NotIn predicate on the "power_service" field.
func PowerServiceNotIn(vs ...string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldPowerService, vs...))
}

// PowerServiceGT applies the GT predicate on the "power_service" field.
func PowerServiceGT(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldPowerService, v))
}

// PowerServiceGTE applies the GTE predicate on the "power_service" field.
func PowerServiceGTE(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldPowerService, v))
}

// PowerServiceLT applies the LT predicate on the "power_service" field.
func PowerServiceLT(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldPowerService, v))
}

// PowerServiceLTE applies the LTE predicate on the "power_service" field.
func PowerServiceLTE(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldPowerService, v))
}

// PowerServiceContains applies the Contains predicate on the "power_service" field.
func PowerServiceContains(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldContains(FieldPowerService, v))
}

// PowerServiceHasPrefix applies the HasPrefix predicate on the "power_service" field.
func PowerServiceHasPrefix(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldHasPrefix(FieldPowerService, v))
}

// PowerServiceHasSuffix applies the HasSuffix predicate on the "power_service" field.
func PowerServiceHasSuffix(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldHasSuffix(FieldPowerService, v))
}

// PowerServiceIsNil applies the IsNil predicate on the "power_service" field.
func PowerServiceIsNil() predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIsNull(FieldPowerService))
}

// PowerServiceNotNil applies the NotNil predicate on the "power_service" field.
func PowerServiceNotNil() predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotNull(FieldPowerService))
}

// PowerServiceEqualFold applies the EqualFold predicate on the "power_service" field.
func PowerServiceEqualFold(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEqualFold(FieldPowerService, v))
}

// PowerServiceContainsFold applies the ContainsFold predicate on the "power_service" field.
func PowerServiceContainsFold(v string) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldContainsFold(FieldPowerService, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TruthCore {
	return predicate.TruthCore(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasWarehouse applies the HasEdge predicate on the "warehouse" edge.
func HasWarehouse() predicate.TruthCore {
	return predicate.TruthCore(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, WarehouseTable, WarehouseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWarehouseWith applies the HasEdge predicate on the "warehouse" edge with a given conditions (other predicates).
func HasWarehouseWith(preds ...predicate.Warehouse) predicate.TruthCore {
	return predicate.TruthCore(func(s *sql.Selector) {
		step := newWarehouseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TruthCore) predicate.TruthCore {
	return predicate.TruthCore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TruthCore) predicate.TruthCore {
	return predicate.TruthCore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TruthCore) predicate.TruthCore {
	return predicate.TruthCore(sql.NotPredicates(p))
}
