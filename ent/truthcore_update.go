// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// TruthCoreUpdate is the builder for updating TruthCore entities.
type TruthCoreUpdate struct {
	config
	hooks    []Hook
	mutation *TruthCoreMutation
}

// Where appends a list predicates to the TruthCoreUpdate builder.
func (_u *TruthCoreUpdate) Where(ps ...predicate.TruthCore) *TruthCoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *TruthCoreUpdate) SetWarehouseID(v string) *TruthCoreUpdate {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableWarehouseID(v *string) *TruthCoreUpdate {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetMinSqft sets the "min_sqft" field.
func (_u *TruthCoreUpdate) SetMinSqft(v int) *TruthCoreUpdate {
	_u.mutation.ResetMinSqft()
	_u.mutation.SetMinSqft(v)
	return _u
}

// SetNillableMinSqft sets the "min_sqft" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableMinSqft(v *int) *TruthCoreUpdate {
	if v != nil {
		_u.SetMinSqft(*v)
	}
	return _u
}

// AddMinSqft adds value to the "min_sqft" field.
func (_u *TruthCoreUpdate) AddMinSqft(v int) *TruthCoreUpdate {
	_u.mutation.AddMinSqft(v)
	return _u
}

// SetMaxSqft sets the "max_sqft" field.
func (_u *TruthCoreUpdate) SetMaxSqft(v int) *TruthCoreUpdate {
	_u.mutation.ResetMaxSqft()
	_u.mutation.SetMaxSqft(v)
	return _u
}

// SetNillableMaxSqft sets the "max_sqft" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableMaxSqft(v *int) *TruthCoreUpdate {
	if v != nil {
		_u.SetMaxSqft(*v)
	}
	return _u
}

// AddMaxSqft adds value to the "max_sqft" field.
func (_u *TruthCoreUpdate) AddMaxSqft(v int) *TruthCoreUpdate {
	_u.mutation.AddMaxSqft(v)
	return _u
}

// SetActivityTier sets the "activity_tier" field.
func (_u *TruthCoreUpdate) SetActivityTier(v truthcore.ActivityTier) *TruthCoreUpdate {
	_u.mutation.SetActivityTier(v)
	return _u
}

// SetNillableActivityTier sets the "activity_tier" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableActivityTier(v *truthcore.ActivityTier) *TruthCoreUpdate {
	if v != nil {
		_u.SetActivityTier(*v)
	}
	return _u
}

// SetAvailableFrom sets the "available_from" field.
func (_u *TruthCoreUpdate) SetAvailableFrom(v time.Time) *TruthCoreUpdate {
	_u.mutation.SetAvailableFrom(v)
	return _u
}

// SetNillableAvailableFrom sets the "available_from" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableAvailableFrom(v *time.Time) *TruthCoreUpdate {
	if v != nil {
		_u.SetAvailableFrom(*v)
	}
	return _u
}

// ClearAvailableFrom clears the value of the "available_from" field.
func (_u *TruthCoreUpdate) ClearAvailableFrom() *TruthCoreUpdate {
	_u.mutation.ClearAvailableFrom()
	return _u
}

// SetAvailableUntil sets the "available_until" field.
func (_u *TruthCoreUpdate) SetAvailableUntil(v time.Time) *TruthCoreUpdate {
	_u.mutation.SetAvailableUntil(v)
	return _u
}

// SetNillableAvailableUntil sets the "available_until" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableAvailableUntil(v *time.Time) *TruthCoreUpdate {
	if v != nil {
		_u.SetAvailableUntil(*v)
	}
	return _u
}

// ClearAvailableUntil clears the value of the "available_until" field.
func (_u *TruthCoreUpdate) ClearAvailableUntil() *TruthCoreUpdate {
	_u.mutation.ClearAvailableUntil()
	return _u
}

// SetSupplierRatePerSqft sets the "supplier_rate_per_sqft" field.
func (_u *TruthCoreUpdate) SetSupplierRatePerSqft(v float64) *TruthCoreUpdate {
	_u.mutation.ResetSupplierRatePerSqft()
	_u.mutation.SetSupplierRatePerSqft(v)
	return _u
}

// SetNillableSupplierRatePerSqft sets the "supplier_rate_per_sqft" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableSupplierRatePerSqft(v *float64) *TruthCoreUpdate {
	if v != nil {
		_u.SetSupplierRatePerSqft(*v)
	}
	return _u
}

// AddSupplierRatePerSqft adds value to the "supplier_rate_per_sqft" field.
func (_u *TruthCoreUpdate) AddSupplierRatePerSqft(v float64) *TruthCoreUpdate {
	_u.mutation.AddSupplierRatePerSqft(v)
	return _u
}

// SetActivationStatus sets the "activation_status" field.
func (_u *TruthCoreUpdate) SetActivationStatus(v truthcore.ActivationStatus) *TruthCoreUpdate {
	_u.mutation.SetActivationStatus(v)
	return _u
}

// SetNillableActivationStatus sets the "activation_status" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableActivationStatus(v *truthcore.ActivationStatus) *TruthCoreUpdate {
	if v != nil {
		_u.SetActivationStatus(*v)
	}
	return _u
}

// SetTrustLevel sets the "trust_level" field.
func (_u *TruthCoreUpdate) SetTrustLevel(v int) *TruthCoreUpdate {
	_u.mutation.ResetTrustLevel()
	_u.mutation.SetTrustLevel(v)
	return _u
}

// SetNillableTrustLevel sets the "trust_level" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableTrustLevel(v *int) *TruthCoreUpdate {
	if v != nil {
		_u.SetTrustLevel(*v)
	}
	return _u
}

// AddTrustLevel adds value to the "trust_level" field.
func (_u *TruthCoreUpdate) AddTrustLevel(v int) *TruthCoreUpdate {
	_u.mutation.AddTrustLevel(v)
	return _u
}

// SetDockDoors sets the "dock_doors" field.
func (_u *TruthCoreUpdate) SetDockDoors(v int) *TruthCoreUpdate {
	_u.mutation.ResetDockDoors()
	_u.mutation.SetDockDoors(v)
	return _u
}

// SetNillableDockDoors sets the "dock_doors" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableDockDoors(v *int) *TruthCoreUpdate {
	if v != nil {
		_u.SetDockDoors(*v)
	}
	return _u
}

// AddDockDoors adds value to the "dock_doors" field.
func (_u *TruthCoreUpdate) AddDockDoors(v int) *TruthCoreUpdate {
	_u.mutation.AddDockDoors(v)
	return _u
}

// SetClearHeightFt sets the "clear_height_ft" field.
func (_u *TruthCoreUpdate) SetClearHeightFt(v float64) *TruthCoreUpdate {
	_u.mutation.ResetClearHeightFt()
	_u.mutation.SetClearHeightFt(v)
	return _u
}

// SetNillableClearHeightFt sets the "clear_height_ft" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableClearHeightFt(v *float64) *TruthCoreUpdate {
	if v != nil {
		_u.SetClearHeightFt(*v)
	}
	return _u
}

// AddClearHeightFt adds value to the "clear_height_ft" field.
func (_u *TruthCoreUpdate) AddClearHeightFt(v float64) *TruthCoreUpdate {
	_u.mutation.AddClearHeightFt(v)
	return _u
}

// ClearClearHeightFt clears the value of the "clear_height_ft" field.
func (_u *TruthCoreUpdate) ClearClearHeightFt() *TruthCoreUpdate {
	_u.mutation.ClearClearHeightFt()
	return _u
}

// SetHasOfficeSpace sets the "has_office_space" field.
func (_u *TruthCoreUpdate) SetHasOfficeSpace(v bool) *TruthCoreUpdate {
	_u.mutation.SetHasOfficeSpace(v)
	return _u
}

// SetNillableHasOfficeSpace sets the "has_office_space" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableHasOfficeSpace(v *bool) *TruthCoreUpdate {
	if v != nil {
		_u.SetHasOfficeSpace(*v)
	}
	return _u
}

// SetHasSprinkler sets the "has_sprinkler" field.
func (_u *TruthCoreUpdate) SetHasSprinkler(v bool) *TruthCoreUpdate {
	_u.mutation.SetHasSprinkler(v)
	return _u
}

// SetNillableHasSprinkler sets the "has_sprinkler" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillableHasSprinkler(v *bool) *TruthCoreUpdate {
	if v != nil {
		_u.SetHasSprinkler(*v)
	}
	return _u
}

// SetPowerService sets the "power_service" field.
func (_u *TruthCoreUpdate) SetPowerService(v string) *TruthCoreUpdate {
	_u.mutation.SetPowerService(v)
	return _u
}

// SetNillablePowerService sets the "power_service" field if the given value is not nil.
func (_u *TruthCoreUpdate) SetNillablePowerService(v *string) *TruthCoreUpdate {
	if v != nil {
		_u.SetPowerService(*v)
	}
	return _u
}

// ClearPowerService clears the value of the "power_service" field.
func (_u *TruthCoreUpdate) ClearPowerService() *TruthCoreUpdate {
	_u.mutation.ClearPowerService()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TruthCoreUpdate) SetUpdatedAt(v time.Time) *TruthCoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_u *TruthCoreUpdate) SetWarehouse(v *Warehouse) *TruthCoreUpdate {
	return _u.SetWarehouseID(v.ID)
}

// Mutation returns the TruthCoreMutation object of the builder.
func (_u *TruthCoreUpdate) Mutation() *TruthCoreMutation {
	return _u.mutation
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (_u *TruthCoreUpdate) ClearWarehouse() *TruthCoreUpdate {
	_u.mutation.ClearWarehouse()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TruthCoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TruthCoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TruthCoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TruthCoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TruthCoreUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := truthcore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TruthCoreUpdate) check() error {
	if v, ok := _u.mutation.ActivityTier(); ok {
		if err := truthcore.ActivityTierValidator(v); err != nil {
			return &ValidationError{Name: "activity_tier", err: fmt.Errorf(`ent: validator failed for field "TruthCore.activity_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivationStatus(); ok {
		if err := truthcore.ActivationStatusValidator(v); err != nil {
			return &ValidationError{Name: "activation_status", err: fmt.Errorf(`ent: validator failed for field "TruthCore.activation_status": %w`, err)}
		}
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TruthCore.warehouse"`)
	}
	return nil
}

func (_u *TruthCoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(truthcore.Table, truthcore.Columns, sqlgraph.NewFieldSpec(truthcore.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MinSqft(); ok {
		_spec.SetField(truthcore.FieldMinSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinSqft(); ok {
		_spec.AddField(truthcore.FieldMinSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSqft(); ok {
		_spec.SetField(truthcore.FieldMaxSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSqft(); ok {
		_spec.AddField(truthcore.FieldMaxSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActivityTier(); ok {
		_spec.SetField(truthcore.FieldActivityTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AvailableFrom(); ok {
		_spec.SetField(truthcore.FieldAvailableFrom, field.TypeTime, value)
	}
	if _u.mutation.AvailableFromCleared() {
		_spec.ClearField(truthcore.FieldAvailableFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.AvailableUntil(); ok {
		_spec.SetField(truthcore.FieldAvailableUntil, field.TypeTime, value)
	}
	if _u.mutation.AvailableUntilCleared() {
		_spec.ClearField(truthcore.FieldAvailableUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.SupplierRatePerSqft(); ok {
		_spec.SetField(truthcore.FieldSupplierRatePerSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupplierRatePerSqft(); ok {
		_spec.AddField(truthcore.FieldSupplierRatePerSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActivationStatus(); ok {
		_spec.SetField(truthcore.FieldActivationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TrustLevel(); ok {
		_spec.SetField(truthcore.FieldTrustLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrustLevel(); ok {
		_spec.AddField(truthcore.FieldTrustLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DockDoors(); ok {
		_spec.SetField(truthcore.FieldDockDoors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDockDoors(); ok {
		_spec.AddField(truthcore.FieldDockDoors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClearHeightFt(); ok {
		_spec.SetField(truthcore.FieldClearHeightFt, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClearHeightFt(); ok {
		_spec.AddField(truthcore.FieldClearHeightFt, field.TypeFloat64, value)
	}
	if _u.mutation.ClearHeightFtCleared() {
		_spec.ClearField(truthcore.FieldClearHeightFt, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HasOfficeSpace(); ok {
		_spec.SetField(truthcore.FieldHasOfficeSpace, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasSprinkler(); ok {
		_spec.SetField(truthcore.FieldHasSprinkler, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PowerService(); ok {
		_spec.SetField(truthcore.FieldPowerService, field.TypeString, value)
	}
	if _u.mutation.PowerServiceCleared() {
		_spec.ClearField(truthcore.FieldPowerService, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(truthcore.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WarehouseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   truthcore.WarehouseTable,
			Columns: []string{truthcore.WarehouseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WarehouseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   truthcore.WarehouseTable,
			Columns: []string{truthcore.WarehouseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{truthcore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TruthCoreUpdateOne is the builder for updating a single TruthCore entity.
type TruthCoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TruthCoreMutation
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *TruthCoreUpdateOne) SetWarehouseID(v string) *TruthCoreUpdateOne {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableWarehouseID(v *string) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetMinSqft sets the "min_sqft" field.
func (_u *TruthCoreUpdateOne) SetMinSqft(v int) *TruthCoreUpdateOne {
	_u.mutation.ResetMinSqft()
	_u.mutation.SetMinSqft(v)
	return _u
}

// SetNillableMinSqft sets the "min_sqft" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableMinSqft(v *int) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetMinSqft(*v)
	}
	return _u
}

// AddMinSqft adds value to the "min_sqft" field.
func (_u *TruthCoreUpdateOne) AddMinSqft(v int) *TruthCoreUpdateOne {
	_u.mutation.AddMinSqft(v)
	return _u
}

// SetMaxSqft sets the "max_sqft" field.
func (_u *TruthCoreUpdateOne) SetMaxSqft(v int) *TruthCoreUpdateOne {
	_u.mutation.ResetMaxSqft()
	_u.mutation.SetMaxSqft(v)
	return _u
}

// SetNillableMaxSqft sets the "max_sqft" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableMaxSqft(v *int) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetMaxSqft(*v)
	}
	return _u
}

// AddMaxSqft adds value to the "max_sqft" field.
func (_u *TruthCoreUpdateOne) AddMaxSqft(v int) *TruthCoreUpdateOne {
	_u.mutation.AddMaxSqft(v)
	return _u
}

// SetActivityTier sets the "activity_tier" field.
func (_u *TruthCoreUpdateOne) SetActivityTier(v truthcore.ActivityTier) *TruthCoreUpdateOne {
	_u.mutation.SetActivityTier(v)
	return _u
}

// SetNillableActivityTier sets the "activity_tier" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableActivityTier(v *truthcore.ActivityTier) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetActivityTier(*v)
	}
	return _u
}

// SetAvailableFrom sets the "available_from" field.
func (_u *TruthCoreUpdateOne) SetAvailableFrom(v time.Time) *TruthCoreUpdateOne {
	_u.mutation.SetAvailableFrom(v)
	return _u
}

// SetNillableAvailableFrom sets the "available_from" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableAvailableFrom(v *time.Time) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetAvailableFrom(*v)
	}
	return _u
}

// ClearAvailableFrom clears the value of the "available_from" field.
func (_u *TruthCoreUpdateOne) ClearAvailableFrom() *TruthCoreUpdateOne {
	_u.mutation.ClearAvailableFrom()
	return _u
}

// SetAvailableUntil sets the "available_until" field.
func (_u *TruthCoreUpdateOne) SetAvailableUntil(v time.Time) *TruthCoreUpdateOne {
	_u.mutation.SetAvailableUntil(v)
	return _u
}

// SetNillableAvailableUntil sets the "available_until" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableAvailableUntil(v *time.Time) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetAvailableUntil(*v)
	}
	return _u
}

// ClearAvailableUntil clears the value of the "available_until" field.
func (_u *TruthCoreUpdateOne) ClearAvailableUntil() *TruthCoreUpdateOne {
	_u.mutation.ClearAvailableUntil()
	return _u
}

// SetSupplierRatePerSqft sets the "supplier_rate_per_sqft" field.
func (_u *TruthCoreUpdateOne) SetSupplierRatePerSqft(v float64) *TruthCoreUpdateOne {
	_u.mutation.ResetSupplierRatePerSqft()
	_u.mutation.SetSupplierRatePerSqft(v)
	return _u
}

// SetNillableSupplierRatePerSqft sets the "supplier_rate_per_sqft" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableSupplierRatePerSqft(v *float64) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetSupplierRatePerSqft(*v)
	}
	return _u
}

// AddSupplierRatePerSqft adds value to the "supplier_rate_per_sqft" field.
func (_u *TruthCoreUpdateOne) AddSupplierRatePerSqft(v float64) *TruthCoreUpdateOne {
	_u.mutation.AddSupplierRatePerSqft(v)
	return _u
}

// SetActivationStatus sets the "activation_status" field.
func (_u *TruthCoreUpdateOne) SetActivationStatus(v truthcore.ActivationStatus) *TruthCoreUpdateOne {
	_u.mutation.SetActivationStatus(v)
	return _u
}

// SetNillableActivationStatus sets the "activation_status" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableActivationStatus(v *truthcore.ActivationStatus) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetActivationStatus(*v)
	}
	return _u
}

// SetTrustLevel sets the "trust_level" field.
func (_u *TruthCoreUpdateOne) SetTrustLevel(v int) *TruthCoreUpdateOne {
	_u.mutation.ResetTrustLevel()
	_u.mutation.SetTrustLevel(v)
	return _u
}

// SetNillableTrustLevel sets the "trust_level" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableTrustLevel(v *int) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetTrustLevel(*v)
	}
	return _u
}

// AddTrustLevel adds value to the "trust_level" field.
func (_u *TruthCoreUpdateOne) AddTrustLevel(v int) *TruthCoreUpdateOne {
	_u.mutation.AddTrustLevel(v)
	return _u
}

// SetDockDoors sets the "dock_doors" field.
func (_u *TruthCoreUpdateOne) SetDockDoors(v int) *TruthCoreUpdateOne {
	_u.mutation.ResetDockDoors()
	_u.mutation.SetDockDoors(v)
	return _u
}

// SetNillableDockDoors sets the "dock_doors" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableDockDoors(v *int) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetDockDoors(*v)
	}
	return _u
}

// AddDockDoors adds value to the "dock_doors" field.
func (_u *TruthCoreUpdateOne) AddDockDoors(v int) *TruthCoreUpdateOne {
	_u.mutation.AddDockDoors(v)
	return _u
}

// SetClearHeightFt sets the "clear_height_ft" field.
func (_u *TruthCoreUpdateOne) SetClearHeightFt(v float64) *TruthCoreUpdateOne {
	_u.mutation.ResetClearHeightFt()
	_u.mutation.SetClearHeightFt(v)
	return _u
}

// SetNillableClearHeightFt sets the "clear_height_ft" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableClearHeightFt(v *float64) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetClearHeightFt(*v)
	}
	return _u
}

// AddClearHeightFt adds value to the "clear_height_ft" field.
func (_u *TruthCoreUpdateOne) AddClearHeightFt(v float64) *TruthCoreUpdateOne {
	_u.mutation.AddClearHeightFt(v)
	return _u
}

// ClearClearHeightFt clears the value of the "clear_height_ft" field.
func (_u *TruthCoreUpdateOne) ClearClearHeightFt() *TruthCoreUpdateOne {
	_u.mutation.ClearClearHeightFt()
	return _u
}

// SetHasOfficeSpace sets the "has_office_space" field.
func (_u *TruthCoreUpdateOne) SetHasOfficeSpace(v bool) *TruthCoreUpdateOne {
	_u.mutation.SetHasOfficeSpace(v)
	return _u
}

// SetNillableHasOfficeSpace sets the "has_office_space" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableHasOfficeSpace(v *bool) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetHasOfficeSpace(*v)
	}
	return _u
}

// SetHasSprinkler sets the "has_sprinkler" field.
func (_u *TruthCoreUpdateOne) SetHasSprinkler(v bool) *TruthCoreUpdateOne {
	_u.mutation.SetHasSprinkler(v)
	return _u
}

// SetNillableHasSprinkler sets the "has_sprinkler" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillableHasSprinkler(v *bool) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetHasSprinkler(*v)
	}
	return _u
}

// SetPowerService sets the "power_service" field.
func (_u *TruthCoreUpdateOne) SetPowerService(v string) *TruthCoreUpdateOne {
	_u.mutation.SetPowerService(v)
	return _u
}

// SetNillablePowerService sets the "power_service" field if the given value is not nil.
func (_u *TruthCoreUpdateOne) SetNillablePowerService(v *string) *TruthCoreUpdateOne {
	if v != nil {
		_u.SetPowerService(*v)
	}
	return _u
}

// ClearPowerService clears the value of the "power_service" field.
func (_u *TruthCoreUpdateOne) ClearPowerService() *TruthCoreUpdateOne {
	_u.mutation.ClearPowerService()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TruthCoreUpdateOne) SetUpdatedAt(v time.Time) *TruthCoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_u *TruthCoreUpdateOne) SetWarehouse(v *Warehouse) *TruthCoreUpdateOne {
	return _u.SetWarehouseID(v.ID)
}

// Mutation returns the TruthCoreMutation object of the builder.
func (_u *TruthCoreUpdateOne) Mutation() *TruthCoreMutation {
	return _u.mutation
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (_u *TruthCoreUpdateOne) ClearWarehouse() *TruthCoreUpdateOne {
	_u.mutation.ClearWarehouse()
	return _u
}

// Where appends a list predicates to the TruthCoreUpdate builder.
func (_u *TruthCoreUpdateOne) Where(ps ...predicate.TruthCore) *TruthCoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TruthCoreUpdateOne) Select(field string, fields ...string) *TruthCoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TruthCore entity.
func (_u *TruthCoreUpdateOne) Save(ctx context.Context) (*TruthCore, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TruthCoreUpdateOne) SaveX(ctx context.Context) *TruthCore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TruthCoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TruthCoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TruthCoreUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := truthcore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TruthCoreUpdateOne) check() error {
	if v, ok := _u.mutation.ActivityTier(); ok {
		if err := truthcore.ActivityTierValidator(v); err != nil {
			return &ValidationError{Name: "activity_tier", err: fmt.Errorf(`ent: validator failed for field "TruthCore.activity_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivationStatus(); ok {
		if err := truthcore.ActivationStatusValidator(v); err != nil {
			return &ValidationError{Name: "activation_status", err: fmt.Errorf(`ent: validator failed for field "TruthCore.activation_status": %w`, err)}
		}
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TruthCore.warehouse"`)
	}
	return nil
}

func (_u *TruthCoreUpdateOne) sqlSave(ctx context.Context) (_node *TruthCore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(truthcore.Table, truthcore.Columns, sqlgraph.NewFieldSpec(truthcore.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TruthCore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, truthcore.FieldID)
		for _, f := range fields {
			if !truthcore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != truthcore.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MinSqft(); ok {
		_spec.SetField(truthcore.FieldMinSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinSqft(); ok {
		_spec.AddField(truthcore.FieldMinSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSqft(); ok {
		_spec.SetField(truthcore.FieldMaxSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSqft(); ok {
		_spec.AddField(truthcore.FieldMaxSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActivityTier(); ok {
		_spec.SetField(truthcore.FieldActivityTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AvailableFrom(); ok {
		_spec.SetField(truthcore.FieldAvailableFrom, field.TypeTime, value)
	}
	if _u.mutation.AvailableFromCleared() {
		_spec.ClearField(truthcore.FieldAvailableFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.AvailableUntil(); ok {
		_spec.SetField(truthcore.FieldAvailableUntil, field.TypeTime, value)
	}
	if _u.mutation.AvailableUntilCleared() {
		_spec.ClearField(truthcore.FieldAvailableUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.SupplierRatePerSqft(); ok {
		_spec.SetField(truthcore.FieldSupplierRatePerSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupplierRatePerSqft(); ok {
		_spec.AddField(truthcore.FieldSupplierRatePerSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActivationStatus(); ok {
		_spec.SetField(truthcore.FieldActivationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TrustLevel(); ok {
		_spec.SetField(truthcore.FieldTrustLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrustLevel(); ok {
		_spec.AddField(truthcore.FieldTrustLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DockDoors(); ok {
		_spec.SetField(truthcore.FieldDockDoors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDockDoors(); ok {
		_spec.AddField(truthcore.FieldDockDoors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClearHeightFt(); ok {
		_spec.SetField(truthcore.FieldClearHeightFt, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClearHeightFt(); ok {
		_spec.AddField(truthcore.FieldClearHeightFt, field.TypeFloat64, value)
	}
	if _u.mutation.ClearHeightFtCleared() {
		_spec.ClearField(truthcore.FieldClearHeightFt, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HasOfficeSpace(); ok {
		_spec.SetField(truthcore.FieldHasOfficeSpace, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasSprinkler(); ok {
		_spec.SetField(truthcore.FieldHasSprinkler, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PowerService(); ok {
		_spec.SetField(truthcore.FieldPowerService, field.TypeString, value)
	}
	if _u.mutation.PowerServiceCleared() {
		_spec.ClearField(truthcore.FieldPowerService, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(truthcore.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WarehouseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   truthcore.WarehouseTable,
			Columns: []string{truthcore.WarehouseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WarehouseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   truthcore.WarehouseTable,
			Columns: []string{truthcore.WarehouseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TruthCore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{truthcore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
