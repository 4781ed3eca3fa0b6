// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/truthcore"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// TruthCoreCreate is the builder for creating a TruthCore entity.
type TruthCoreCreate struct {
	config
	mutation *TruthCoreMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWarehouseID sets the "warehouse_id" field.
func (_c *TruthCoreCreate) SetWarehouseID(v string) *TruthCoreCreate {
	_c.mutation.SetWarehouseID(v)
	return _c
}

// SetMinSqft sets the "min_sqft" field.
func (_c *TruthCoreCreate) SetMinSqft(v int) *TruthCoreCreate {
	_c.mutation.SetMinSqft(v)
	return _c
}

// SetMaxSqft sets the "max_sqft" field.
func (_c *TruthCoreCreate) SetMaxSqft(v int) *TruthCoreCreate {
	_c.mutation.SetMaxSqft(v)
	return _c
}

// SetActivityTier sets the "activity_tier" field.
func (_c *TruthCoreCreate) SetActivityTier(v truthcore.ActivityTier) *TruthCoreCreate {
	_c.mutation.SetActivityTier(v)
	return _c
}

// SetNillableActivityTier sets the "activity_tier" field if the given value is not nil.
func (_c *TruthCoreCreate) SetNillableActivityTier(v *truthcore.ActivityTier) *TruthCoreCreate {
	if v != nil {
		_c.SetActivityTier(*v)
	}
	return _c
}

// SetAvailableFrom sets the "available_from" field.
func (_c *TruthCoreCreate) SetAvailableFrom(v time.Time) *TruthCoreCreate {
	_c.mutation.SetAvailableFrom(v)
	return _c
}

// SetNillableAvailableFrom sets the "available_from" field if the given value is not nil.
func (_c *TruthCoreCreate) SetNillableAvailableFrom(v *time.Time) *TruthCoreCreate {
	if v != nil {
		_c.SetAvailableFrom(*v)
	}
	return _c
}

// SetAvailableUntil sets the "available_until" field.
func (_c *TruthCoreCreate) SetAvailableUntil(v time.Time) *TruthCoreCreate {
	_c.mutation.SetAvailableUntil(v)
	return _c
}

// SetNillableAvailableUntil sets the "available_until" field if the given value is not nil.
func (_c *TruthCoreCreate) SetNillableAvailableUntil(v *time.Time) *TruthCoreCreate {
	if v != nil {
		_c.SetAvailableUntil(*v)
	}
	return _c
}

// SetSupplierRatePerSqft sets the "supplier_rate_per_sqft" field.
func (_c *TruthCoreCreate) SetSupplierRatePerSqft(v float64) *TruthCoreCreate {
	_c.mutation.SetSupplierRatePerSqft(v)
	return _c
}

// SetActivationStatus sets the "activation_status" field.
func (_c *TruthCoreCreate) SetActivationStatus(v truthcore.ActivationStatus) *TruthCoreCreate {
	_c.mutation.SetActivationStatus(v)
	return _c
}

// SetNillableActivationStatus sets the "activation_status" field if the given value is not nil.
func (_c *TruthCoreCreate) SetNillableActivationStatus(v *truthcore.ActivationStatus) *TruthCoreCreate {
	if v != nil {
		_c.SetActivationStatus(*v)
	}
	return _c
}

// SetTrustLevel sets the "trust_level" field.
func (_c *TruthCoreCreate) SetTrustLevel(v int) *TruthCoreCreate {
	_c.mutation.SetTrustLevel(v)
	return _c
}

// SetNillableTrustLevel sets the "trust_level" field if the given value is not nil.
func (_c *TruthCoreCreate) SetNillableTrustLevel(v *int) *TruthCoreCreate {
	if v != nil {
		_c.SetTrustLevel(*v)
	}
	return _c
}

// SetDockDoors sets the "dock_doors" field.
func (_c *TruthCoreCreate) SetDockDoors(v int) *TruthCoreCreate {
	_c.mutation.SetDockDoors(v)
	return _c
}

// SetNillableDockDoors sets the "dock_doors" field if the given value is not nil.
func (_c *TruthCoreCreate) SetNillableDockDoors(v *int) *TruthCoreCreate {
	if v != nil {
		_c.SetDockDoors(*v)
	}
	return _c
}

// SetClearHeightFt sets the "clear_height_ft" field.
func (_c *TruthCoreCreate) SetClearHeightFt(v float64) *TruthCoreCreate {
	_c.mutation.SetClearHeightFt(v)
	return _c
}

// SetNillableClearHeightFt sets the "clear_height_ft" field if the given value is not nil.
func (_c *TruthCoreCreate) SetNillableClearHeightFt(v *float64) *TruthCoreCreate {
	if v != nil {
		_c.SetClearHeightFt(*v)
	}
	return _c
}

// SetHasOfficeSpace sets the "has_office_space" field.
func (_c *TruthCoreCreate) SetHasOfficeSpace(v bool) *TruthCoreCreate {
	_c.mutation.SetHasOfficeSpace(v)
	return _c
}

// SetNillableHasOfficeSpace sets the "has_office_space" field if the given value is not nil.
func (_c *TruthCoreCreate) SetNillableHasOfficeSpace(v *bool) *TruthCoreCreate {
	if v != nil {
		_c.SetHasOfficeSpace(*v)
	}
	return _c
}

// SetHasSprinkler sets the "has_sprinkler" field.
func (_c *TruthCoreCreate) SetHasSprinkler(v bool) *TruthCoreCreate {
	_c.mutation.SetHasSprinkler(v)
	return _c
}

// SetNillableHasSprinkler sets the "has_sprinkler" field if the given value is not nil.
func (_c *TruthCoreCreate) SetNillableHasSprinkler(v *bool) *TruthCoreCreate {
	if v != nil {
		_c.SetHasSprinkler(*v)
	}
	return _c
}

// SetPowerService sets the "power_service" field.
func (_c *TruthCoreCreate) SetPowerService(v string) *TruthCoreCreate {
	_c.mutation.SetPowerService(v)
	return _c
}

// SetNillablePowerService sets the "power_service" field if the given value is not nil.
func (_c *TruthCoreCreate) SetNillablePowerService(v *string) *TruthCoreCreate {
	if v != nil {
		_c.SetPowerService(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TruthCoreCreate) SetCreatedAt(v time.Time) *TruthCoreCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TruthCoreCreate) SetNillableCreatedAt(v *time.Time) *TruthCoreCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TruthCoreCreate) SetUpdatedAt(v time.Time) *TruthCoreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TruthCoreCreate) SetNillableUpdatedAt(v *time.Time) *TruthCoreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TruthCoreCreate) SetID(v string) *TruthCoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_c *TruthCoreCreate) SetWarehouse(v *Warehouse) *TruthCoreCreate {
	return _c.SetWarehouseID(v.ID)
}

// Mutation returns the TruthCoreMutation object of the builder.
func (_c *TruthCoreCreate) Mutation() *TruthCoreMutation {
	return _c.mutation
}

// Save creates the TruthCore in the database.
func (_c *TruthCoreCreate) Save(ctx context.Context) (*TruthCore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TruthCoreCreate) SaveX(ctx context.Context) *TruthCore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TruthCoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TruthCoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TruthCoreCreate) defaults() {
	if _, ok := _c.mutation.ActivityTier(); !ok {
		v := truthcore.DefaultActivityTier
		_c.mutation.SetActivityTier(v)
	}
	if _, ok := _c.mutation.ActivationStatus(); !ok {
		v := truthcore.DefaultActivationStatus
		_c.mutation.SetActivationStatus(v)
	}
	if _, ok := _c.mutation.TrustLevel(); !ok {
		v := truthcore.DefaultTrustLevel
		_c.mutation.SetTrustLevel(v)
	}
	if _, ok := _c.mutation.DockDoors(); !ok {
		v := truthcore.DefaultDockDoors
		_c.mutation.SetDockDoors(v)
	}
	if _, ok := _c.mutation.HasOfficeSpace(); !ok {
		v := truthcore.DefaultHasOfficeSpace
		_c.mutation.SetHasOfficeSpace(v)
	}
	if _, ok := _c.mutation.HasSprinkler(); !ok {
		v := truthcore.DefaultHasSprinkler
		_c.mutation.SetHasSprinkler(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := truthcore.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := truthcore.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TruthCoreCreate) check() error {
	if _, ok := _c.mutation.WarehouseID(); !ok {
		return &ValidationError{Name: "warehouse_id", err: errors.New(`ent: missing required field "TruthCore.warehouse_id"`)}
	}
	if _, ok := _c.mutation.MinSqft(); !ok {
		return &ValidationError{Name: "min_sqft", err: errors.New(`ent: missing required field "TruthCore.min_sqft"`)}
	}
	if _, ok := _c.mutation.MaxSqft(); !ok {
		return &ValidationError{Name: "max_sqft", err: errors.New(`ent: missing required field "TruthCore.max_sqft"`)}
	}
	if _, ok := _c.mutation.ActivityTier(); !ok {
		return &ValidationError{Name: "activity_tier", err: errors.New(`ent: missing required field "TruthCore.activity_tier"`)}
	}
	if v, ok := _c.mutation.ActivityTier(); ok {
		if err := truthcore.ActivityTierValidator(v); err != nil {
			return &ValidationError{Name: "activity_tier", err: fmt.Errorf(`ent: validator failed for field "TruthCore.activity_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SupplierRatePerSqft(); !ok {
		return &ValidationError{Name: "supplier_rate_per_sqft", err: errors.New(`ent: missing required field "TruthCore.supplier_rate_per_sqft"`)}
	}
	if _, ok := _c.mutation.ActivationStatus(); !ok {
		return &ValidationError{Name: "activation_status", err: errors.New(`ent: missing required field "TruthCore.activation_status"`)}
	}
	if v, ok := _c.mutation.ActivationStatus(); ok {
		if err := truthcore.ActivationStatusValidator(v); err != nil {
			return &ValidationError{Name: "activation_status", err: fmt.Errorf(`ent: validator failed for field "TruthCore.activation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TrustLevel(); !ok {
		return &ValidationError{Name: "trust_level", err: errors.New(`ent: missing required field "TruthCore.trust_level"`)}
	}
	if _, ok := _c.mutation.DockDoors(); !ok {
		return &ValidationError{Name: "dock_doors", err: errors.New(`ent: missing required field "TruthCore.dock_doors"`)}
	}
	if _, ok := _c.mutation.HasOfficeSpace(); !ok {
		return &ValidationError{Name: "has_office_space", err: errors.New(`ent: missing required field "TruthCore.has_office_space"`)}
	}
	if _, ok := _c.mutation.HasSprinkler(); !ok {
		return &ValidationError{Name: "has_sprinkler", err: errors.New(`ent: missing required field "TruthCore.has_sprinkler"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TruthCore.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TruthCore.updated_at"`)}
	}
	if len(_c.mutation.WarehouseIDs()) == 0 {
		return &ValidationError{Name: "warehouse", err: errors.New(`ent: missing required edge "TruthCore.warehouse"`)}
	}
	return nil
}

func (_c *TruthCoreCreate) sqlSave(ctx context.Context) (*TruthCore, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TruthCore.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TruthCoreCreate) createSpec() (*TruthCore, *sqlgraph.CreateSpec) {
	var (
		_node = &TruthCore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(truthcore.Table, sqlgraph.NewFieldSpec(truthcore.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MinSqft(); ok {
		_spec.SetField(truthcore.FieldMinSqft, field.TypeInt, value)
		_node.MinSqft = value
	}
	if value, ok := _c.mutation.MaxSqft(); ok {
		_spec.SetField(truthcore.FieldMaxSqft, field.TypeInt, value)
		_node.MaxSqft = value
	}
	if value, ok := _c.mutation.ActivityTier(); ok {
		_spec.SetField(truthcore.FieldActivityTier, field.TypeEnum, value)
		_node.ActivityTier = value
	}
	if value, ok := _c.mutation.AvailableFrom(); ok {
		_spec.SetField(truthcore.FieldAvailableFrom, field.TypeTime, value)
		_node.AvailableFrom = &value
	}
	if value, ok := _c.mutation.AvailableUntil(); ok {
		_spec.SetField(truthcore.FieldAvailableUntil, field.TypeTime, value)
		_node.AvailableUntil = &value
	}
	if value, ok := _c.mutation.SupplierRatePerSqft(); ok {
		_spec.SetField(truthcore.FieldSupplierRatePerSqft, field.TypeFloat64, value)
		_node.SupplierRatePerSqft = value
	}
	if value, ok := _c.mutation.ActivationStatus(); ok {
		_spec.SetField(truthcore.FieldActivationStatus, field.TypeEnum, value)
		_node.ActivationStatus = value
	}
	if value, ok := _c.mutation.TrustLevel(); ok {
		_spec.SetField(truthcore.FieldTrustLevel, field.TypeInt, value)
		_node.TrustLevel = value
	}
	if value, ok := _c.mutation.DockDoors(); ok {
		_spec.SetField(truthcore.FieldDockDoors, field.TypeInt, value)
		_node.DockDoors = value
	}
	if value, ok := _c.mutation.ClearHeightFt(); ok {
		_spec.SetField(truthcore.FieldClearHeightFt, field.TypeFloat64, value)
		_node.ClearHeightFt = value
	}
	if value, ok := _c.mutation.HasOfficeSpace(); ok {
		_spec.SetField(truthcore.FieldHasOfficeSpace, field.TypeBool, value)
		_node.HasOfficeSpace = value
	}
	if value, ok := _c.mutation.HasSprinkler(); ok {
		_spec.SetField(truthcore.FieldHasSprinkler, field.TypeBool, value)
		_node.HasSprinkler = value
	}
	if value, ok := _c.mutation.PowerService(); ok {
		_spec.SetField(truthcore.FieldPowerService, field.TypeString, value)
		_node.PowerService = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(truthcore.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(truthcore.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WarehouseIDs(); len(nodes) > 0 {
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
		_node.WarehouseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TruthCore.Create().
//		SetWarehouseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TruthCoreUpsert) {
//			SetWarehouseID(v+v).
//		}).
//		Exec(ctx)
func (_c *TruthCoreCreate) OnConflict(opts ...sql.ConflictOption) *TruthCoreUpsertOne {
	_c.conflict = opts
	return &TruthCoreUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TruthCore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TruthCoreCreate) OnConflictColumns(columns ...string) *TruthCoreUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TruthCoreUpsertOne{
		create: _c,
	}
}

type (
	// TruthCoreUpsertOne is the builder for "upsert"-ing
	//  one TruthCore node.
	TruthCoreUpsertOne struct {
		create *TruthCoreCreate
	}

	// TruthCoreUpsert is the "OnConflict" setter.
	TruthCoreUpsert struct {
		*sql.UpdateSet
	}
)

// SetWarehouseID sets the "warehouse_id" field.
func (u *TruthCoreUpsert) SetWarehouseID(v string) *TruthCoreUpsert {
	u.Set(truthcore.FieldWarehouseID, v)
	return u
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateWarehouseID() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldWarehouseID)
	return u
}

// SetMinSqft sets the "min_sqft" field.
func (u *TruthCoreUpsert) SetMinSqft(v int) *TruthCoreUpsert {
	u.Set(truthcore.FieldMinSqft, v)
	return u
}

// UpdateMinSqft sets the "min_sqft" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateMinSqft() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldMinSqft)
	return u
}

// AddMinSqft adds v to the "min_sqft" field.
func (u *TruthCoreUpsert) AddMinSqft(v int) *TruthCoreUpsert {
	u.Add(truthcore.FieldMinSqft, v)
	return u
}

// SetMaxSqft sets the "max_sqft" field.
func (u *TruthCoreUpsert) SetMaxSqft(v int) *TruthCoreUpsert {
	u.Set(truthcore.FieldMaxSqft, v)
	return u
}

// UpdateMaxSqft sets the "max_sqft" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateMaxSqft() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldMaxSqft)
	return u
}

// AddMaxSqft adds v to the "max_sqft" field.
func (u *TruthCoreUpsert) AddMaxSqft(v int) *TruthCoreUpsert {
	u.Add(truthcore.FieldMaxSqft, v)
	return u
}

// SetActivityTier sets the "activity_tier" field.
func (u *TruthCoreUpsert) SetActivityTier(v truthcore.ActivityTier) *TruthCoreUpsert {
	u.Set(truthcore.FieldActivityTier, v)
	return u
}

// UpdateActivityTier sets the "activity_tier" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateActivityTier() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldActivityTier)
	return u
}

// SetAvailableFrom sets the "available_from" field.
func (u *TruthCoreUpsert) SetAvailableFrom(v time.Time) *TruthCoreUpsert {
	u.Set(truthcore.FieldAvailableFrom, v)
	return u
}

// UpdateAvailableFrom sets the "available_from" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateAvailableFrom() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldAvailableFrom)
	return u
}

// ClearAvailableFrom clears the value of the "available_from" field.
func (u *TruthCoreUpsert) ClearAvailableFrom() *TruthCoreUpsert {
	u.SetNull(truthcore.FieldAvailableFrom)
	return u
}

// SetAvailableUntil sets the "available_until" field.
func (u *TruthCoreUpsert) SetAvailableUntil(v time.Time) *TruthCoreUpsert {
	u.Set(truthcore.FieldAvailableUntil, v)
	return u
}

// UpdateAvailableUntil sets the "available_until" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateAvailableUntil() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldAvailableUntil)
	return u
}

// ClearAvailableUntil clears the value of the "available_until" field.
func (u *TruthCoreUpsert) ClearAvailableUntil() *TruthCoreUpsert {
	u.SetNull(truthcore.FieldAvailableUntil)
	return u
}

// SetSupplierRatePerSqft sets the "supplier_rate_per_sqft" field.
func (u *TruthCoreUpsert) SetSupplierRatePerSqft(v float64) *TruthCoreUpsert {
	u.Set(truthcore.FieldSupplierRatePerSqft, v)
	return u
}

// UpdateSupplierRatePerSqft sets the "supplier_rate_per_sqft" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateSupplierRatePerSqft() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldSupplierRatePerSqft)
	return u
}

// AddSupplierRatePerSqft adds v to the "supplier_rate_per_sqft" field.
func (u *TruthCoreUpsert) AddSupplierRatePerSqft(v float64) *TruthCoreUpsert {
	u.Add(truthcore.FieldSupplierRatePerSqft, v)
	return u
}

// SetActivationStatus sets the "activation_status" field.
func (u *TruthCoreUpsert) SetActivationStatus(v truthcore.ActivationStatus) *TruthCoreUpsert {
	u.Set(truthcore.FieldActivationStatus, v)
	return u
}

// UpdateActivationStatus sets the "activation_status" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateActivationStatus() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldActivationStatus)
	return u
}

// SetTrustLevel sets the "trust_level" field.
func (u *TruthCoreUpsert) SetTrustLevel(v int) *TruthCoreUpsert {
	u.Set(truthcore.FieldTrustLevel, v)
	return u
}

// UpdateTrustLevel sets the "trust_level" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateTrustLevel() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldTrustLevel)
	return u
}

// AddTrustLevel adds v to the "trust_level" field.
func (u *TruthCoreUpsert) AddTrustLevel(v int) *TruthCoreUpsert {
	u.Add(truthcore.FieldTrustLevel, v)
	return u
}

// SetDockDoors sets the "dock_doors" field.
func (u *TruthCoreUpsert) SetDockDoors(v int) *TruthCoreUpsert {
	u.Set(truthcore.FieldDockDoors, v)
	return u
}

// UpdateDockDoors sets the "dock_doors" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateDockDoors() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldDockDoors)
	return u
}

// AddDockDoors adds v to the "dock_doors" field.
func (u *TruthCoreUpsert) AddDockDoors(v int) *TruthCoreUpsert {
	u.Add(truthcore.FieldDockDoors, v)
	return u
}

// SetClearHeightFt sets the "clear_height_ft" field.
func (u *TruthCoreUpsert) SetClearHeightFt(v float64) *TruthCoreUpsert {
	u.Set(truthcore.FieldClearHeightFt, v)
	return u
}

// UpdateClearHeightFt sets the "clear_height_ft" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateClearHeightFt() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldClearHeightFt)
	return u
}

// AddClearHeightFt adds v to the "clear_height_ft" field.
func (u *TruthCoreUpsert) AddClearHeightFt(v float64) *TruthCoreUpsert {
	u.Add(truthcore.FieldClearHeightFt, v)
	return u
}

// ClearClearHeightFt clears the value of the "clear_height_ft" field.
func (u *TruthCoreUpsert) ClearClearHeightFt() *TruthCoreUpsert {
	u.SetNull(truthcore.FieldClearHeightFt)
	return u
}

// SetHasOfficeSpace sets the "has_office_space" field.
func (u *TruthCoreUpsert) SetHasOfficeSpace(v bool) *TruthCoreUpsert {
	u.Set(truthcore.FieldHasOfficeSpace, v)
	return u
}

// UpdateHasOfficeSpace sets the "has_office_space" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateHasOfficeSpace() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldHasOfficeSpace)
	return u
}

// SetHasSprinkler sets the "has_sprinkler" field.
func (u *TruthCoreUpsert) SetHasSprinkler(v bool) *TruthCoreUpsert {
	u.Set(truthcore.FieldHasSprinkler, v)
	return u
}

// UpdateHasSprinkler sets the "has_sprinkler" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateHasSprinkler() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldHasSprinkler)
	return u
}

// SetPowerService sets the "power_service" field.
func (u *TruthCoreUpsert) SetPowerService(v string) *TruthCoreUpsert {
	u.Set(truthcore.FieldPowerService, v)
	return u
}

// UpdatePowerService sets the "power_service" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdatePowerService() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldPowerService)
	return u
}

// ClearPowerService clears the value of the "power_service" field.
func (u *TruthCoreUpsert) ClearPowerService() *TruthCoreUpsert {
	u.SetNull(truthcore.FieldPowerService)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TruthCoreUpsert) SetUpdatedAt(v time.Time) *TruthCoreUpsert {
	u.Set(truthcore.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TruthCoreUpsert) UpdateUpdatedAt() *TruthCoreUpsert {
	u.SetExcluded(truthcore.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TruthCore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(truthcore.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TruthCoreUpsertOne) UpdateNewValues() *TruthCoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(truthcore.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(truthcore.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TruthCore.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TruthCoreUpsertOne) Ignore() *TruthCoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TruthCoreUpsertOne) DoNothing() *TruthCoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TruthCoreCreate.OnConflict
// documentation for more info.
func (u *TruthCoreUpsertOne) Update(set func(*TruthCoreUpsert)) *TruthCoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TruthCoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *TruthCoreUpsertOne) SetWarehouseID(v string) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateWarehouseID() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetMinSqft sets the "min_sqft" field.
func (u *TruthCoreUpsertOne) SetMinSqft(v int) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetMinSqft(v)
	})
}

// AddMinSqft adds v to the "min_sqft" field.
func (u *TruthCoreUpsertOne) AddMinSqft(v int) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.AddMinSqft(v)
	})
}

// UpdateMinSqft sets the "min_sqft" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateMinSqft() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateMinSqft()
	})
}

// SetMaxSqft sets the "max_sqft" field.
func (u *TruthCoreUpsertOne) SetMaxSqft(v int) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetMaxSqft(v)
	})
}

// AddMaxSqft adds v to the "max_sqft" field.
func (u *TruthCoreUpsertOne) AddMaxSqft(v int) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.AddMaxSqft(v)
	})
}

// UpdateMaxSqft sets the "max_sqft" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateMaxSqft() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateMaxSqft()
	})
}

// SetActivityTier sets the "activity_tier" field.
func (u *TruthCoreUpsertOne) SetActivityTier(v truthcore.ActivityTier) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetActivityTier(v)
	})
}

// UpdateActivityTier sets the "activity_tier" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateActivityTier() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateActivityTier()
	})
}

// SetAvailableFrom sets the "available_from" field.
func (u *TruthCoreUpsertOne) SetAvailableFrom(v time.Time) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetAvailableFrom(v)
	})
}

// UpdateAvailableFrom sets the "available_from" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateAvailableFrom() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateAvailableFrom()
	})
}

// ClearAvailableFrom clears the value of the "available_from" field.
func (u *TruthCoreUpsertOne) ClearAvailableFrom() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.ClearAvailableFrom()
	})
}

// SetAvailableUntil sets the "available_until" field.
func (u *TruthCoreUpsertOne) SetAvailableUntil(v time.Time) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetAvailableUntil(v)
	})
}

// UpdateAvailableUntil sets the "available_until" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateAvailableUntil() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateAvailableUntil()
	})
}

// ClearAvailableUntil clears the value of the "available_until" field.
func (u *TruthCoreUpsertOne) ClearAvailableUntil() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.ClearAvailableUntil()
	})
}

// SetSupplierRatePerSqft sets the "supplier_rate_per_sqft" field.
func (u *TruthCoreUpsertOne) SetSupplierRatePerSqft(v float64) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetSupplierRatePerSqft(v)
	})
}

// AddSupplierRatePerSqft adds v to the "supplier_rate_per_sqft" field.
func (u *TruthCoreUpsertOne) AddSupplierRatePerSqft(v float64) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.AddSupplierRatePerSqft(v)
	})
}

// UpdateSupplierRatePerSqft sets the "supplier_rate_per_sqft" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateSupplierRatePerSqft() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateSupplierRatePerSqft()
	})
}

// SetActivationStatus sets the "activation_status" field.
func (u *TruthCoreUpsertOne) SetActivationStatus(v truthcore.ActivationStatus) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetActivationStatus(v)
	})
}

// UpdateActivationStatus sets the "activation_status" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateActivationStatus() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateActivationStatus()
	})
}

// SetTrustLevel sets the "trust_level" field.
func (u *TruthCoreUpsertOne) SetTrustLevel(v int) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetTrustLevel(v)
	})
}

// AddTrustLevel adds v to the "trust_level" field.
func (u *TruthCoreUpsertOne) AddTrustLevel(v int) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.AddTrustLevel(v)
	})
}

// UpdateTrustLevel sets the "trust_level" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateTrustLevel() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateTrustLevel()
	})
}

// SetDockDoors sets the "dock_doors" field.
func (u *TruthCoreUpsertOne) SetDockDoors(v int) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetDockDoors(v)
	})
}

// AddDockDoors adds v to the "dock_doors" field.
func (u *TruthCoreUpsertOne) AddDockDoors(v int) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.AddDockDoors(v)
	})
}

// UpdateDockDoors sets the "dock_doors" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateDockDoors() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateDockDoors()
	})
}

// SetClearHeightFt sets the "clear_height_ft" field.
func (u *TruthCoreUpsertOne) SetClearHeightFt(v float64) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetClearHeightFt(v)
	})
}

// AddClearHeightFt adds v to the "clear_height_ft" field.
func (u *TruthCoreUpsertOne) AddClearHeightFt(v float64) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.AddClearHeightFt(v)
	})
}

// UpdateClearHeightFt sets the "clear_height_ft" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateClearHeightFt() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateClearHeightFt()
	})
}

// ClearClearHeightFt clears the value of the "clear_height_ft" field.
func (u *TruthCoreUpsertOne) ClearClearHeightFt() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.ClearClearHeightFt()
	})
}

// SetHasOfficeSpace sets the "has_office_space" field.
func (u *TruthCoreUpsertOne) SetHasOfficeSpace(v bool) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetHasOfficeSpace(v)
	})
}

// UpdateHasOfficeSpace sets the "has_office_space" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateHasOfficeSpace() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateHasOfficeSpace()
	})
}

// SetHasSprinkler sets the "has_sprinkler" field.
func (u *TruthCoreUpsertOne) SetHasSprinkler(v bool) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetHasSprinkler(v)
	})
}

// UpdateHasSprinkler sets the "has_sprinkler" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateHasSprinkler() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateHasSprinkler()
	})
}

// SetPowerService sets the "power_service" field.
func (u *TruthCoreUpsertOne) SetPowerService(v string) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetPowerService(v)
	})
}

// UpdatePowerService sets the "power_service" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdatePowerService() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdatePowerService()
	})
}

// ClearPowerService clears the value of the "power_service" field.
func (u *TruthCoreUpsertOne) ClearPowerService() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.ClearPowerService()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TruthCoreUpsertOne) SetUpdatedAt(v time.Time) *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TruthCoreUpsertOne) UpdateUpdatedAt() *TruthCoreUpsertOne {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TruthCoreUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TruthCoreCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TruthCoreUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TruthCoreUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TruthCoreUpsertOne.ID is not supported by MySQL driver. Use TruthCoreUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TruthCoreUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TruthCoreCreateBulk is the builder for creating many TruthCore entities in bulk.
type TruthCoreCreateBulk struct {
	config
	err      error
	builders []*TruthCoreCreate
	conflict []sql.ConflictOption
}

// Save creates the TruthCore entities in the database.
func (_c *TruthCoreCreateBulk) Save(ctx context.Context) ([]*TruthCore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TruthCore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TruthCoreMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TruthCoreCreateBulk) SaveX(ctx context.Context) []*TruthCore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TruthCoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TruthCoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TruthCore.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TruthCoreUpsert) {
//			SetWarehouseID(v+v).
//		}).
//		Exec(ctx)
func (_c *TruthCoreCreateBulk) OnConflict(opts ...sql.ConflictOption) *TruthCoreUpsertBulk {
	_c.conflict = opts
	return &TruthCoreUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TruthCore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TruthCoreCreateBulk) OnConflictColumns(columns ...string) *TruthCoreUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TruthCoreUpsertBulk{
		create: _c,
	}
}

// TruthCoreUpsertBulk is the builder for "upsert"-ing
// a bulk of TruthCore nodes.
type TruthCoreUpsertBulk struct {
	create *TruthCoreCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TruthCore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(truthcore.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TruthCoreUpsertBulk) UpdateNewValues() *TruthCoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(truthcore.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(truthcore.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TruthCore.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TruthCoreUpsertBulk) Ignore() *TruthCoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TruthCoreUpsertBulk) DoNothing() *TruthCoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TruthCoreCreateBulk.OnConflict
// documentation for more info.
func (u *TruthCoreUpsertBulk) Update(set func(*TruthCoreUpsert)) *TruthCoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TruthCoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *TruthCoreUpsertBulk) SetWarehouseID(v string) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateWarehouseID() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetMinSqft sets the "min_sqft" field.
func (u *TruthCoreUpsertBulk) SetMinSqft(v int) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetMinSqft(v)
	})
}

// AddMinSqft adds v to the "min_sqft" field.
func (u *TruthCoreUpsertBulk) AddMinSqft(v int) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.AddMinSqft(v)
	})
}

// UpdateMinSqft sets the "min_sqft" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateMinSqft() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateMinSqft()
	})
}

// SetMaxSqft sets the "max_sqft" field.
func (u *TruthCoreUpsertBulk) SetMaxSqft(v int) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetMaxSqft(v)
	})
}

// AddMaxSqft adds v to the "max_sqft" field.
func (u *TruthCoreUpsertBulk) AddMaxSqft(v int) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.AddMaxSqft(v)
	})
}

// UpdateMaxSqft sets the "max_sqft" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateMaxSqft() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateMaxSqft()
	})
}

// SetActivityTier sets the "activity_tier" field.
func (u *TruthCoreUpsertBulk) SetActivityTier(v truthcore.ActivityTier) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetActivityTier(v)
	})
}

// UpdateActivityTier sets the "activity_tier" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateActivityTier() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateActivityTier()
	})
}

// SetAvailableFrom sets the "available_from" field.
func (u *TruthCoreUpsertBulk) SetAvailableFrom(v time.Time) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetAvailableFrom(v)
	})
}

// UpdateAvailableFrom sets the "available_from" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateAvailableFrom() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateAvailableFrom()
	})
}

// ClearAvailableFrom clears the value of the "available_from" field.
func (u *TruthCoreUpsertBulk) ClearAvailableFrom() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.ClearAvailableFrom()
	})
}

// SetAvailableUntil sets the "available_until" field.
func (u *TruthCoreUpsertBulk) SetAvailableUntil(v time.Time) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetAvailableUntil(v)
	})
}

// UpdateAvailableUntil sets the "available_until" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateAvailableUntil() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateAvailableUntil()
	})
}

// ClearAvailableUntil clears the value of the "available_until" field.
func (u *TruthCoreUpsertBulk) ClearAvailableUntil() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.ClearAvailableUntil()
	})
}

// SetSupplierRatePerSqft sets the "supplier_rate_per_sqft" field.
func (u *TruthCoreUpsertBulk) SetSupplierRatePerSqft(v float64) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetSupplierRatePerSqft(v)
	})
}

// AddSupplierRatePerSqft adds v to the "supplier_rate_per_sqft" field.
func (u *TruthCoreUpsertBulk) AddSupplierRatePerSqft(v float64) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.AddSupplierRatePerSqft(v)
	})
}

// UpdateSupplierRatePerSqft sets the "supplier_rate_per_sqft" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateSupplierRatePerSqft() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateSupplierRatePerSqft()
	})
}

// SetActivationStatus sets the "activation_status" field.
func (u *TruthCoreUpsertBulk) SetActivationStatus(v truthcore.ActivationStatus) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetActivationStatus(v)
	})
}

// UpdateActivationStatus sets the "activation_status" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateActivationStatus() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateActivationStatus()
	})
}

// SetTrustLevel sets the "trust_level" field.
func (u *TruthCoreUpsertBulk) SetTrustLevel(v int) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetTrustLevel(v)
	})
}

// AddTrustLevel adds v to the "trust_level" field.
func (u *TruthCoreUpsertBulk) AddTrustLevel(v int) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.AddTrustLevel(v)
	})
}

// UpdateTrustLevel sets the "trust_level" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateTrustLevel() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateTrustLevel()
	})
}

// SetDockDoors sets the "dock_doors" field.
func (u *TruthCoreUpsertBulk) SetDockDoors(v int) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetDockDoors(v)
	})
}

// AddDockDoors adds v to the "dock_doors" field.
func (u *TruthCoreUpsertBulk) AddDockDoors(v int) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.AddDockDoors(v)
	})
}

// UpdateDockDoors sets the "dock_doors" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateDockDoors() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateDockDoors()
	})
}

// SetClearHeightFt sets the "clear_height_ft" field.
func (u *TruthCoreUpsertBulk) SetClearHeightFt(v float64) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetClearHeightFt(v)
	})
}

// AddClearHeightFt adds v to the "clear_height_ft" field.
func (u *TruthCoreUpsertBulk) AddClearHeightFt(v float64) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.AddClearHeightFt(v)
	})
}

// UpdateClearHeightFt sets the "clear_height_ft" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateClearHeightFt() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateClearHeightFt()
	})
}

// ClearClearHeightFt clears the value of the "clear_height_ft" field.
func (u *TruthCoreUpsertBulk) ClearClearHeightFt() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.ClearClearHeightFt()
	})
}

// SetHasOfficeSpace sets the "has_office_space" field.
func (u *TruthCoreUpsertBulk) SetHasOfficeSpace(v bool) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetHasOfficeSpace(v)
	})
}

// UpdateHasOfficeSpace sets the "has_office_space" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateHasOfficeSpace() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateHasOfficeSpace()
	})
}

// SetHasSprinkler sets the "has_sprinkler" field.
func (u *TruthCoreUpsertBulk) SetHasSprinkler(v bool) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetHasSprinkler(v)
	})
}

// UpdateHasSprinkler sets the "has_sprinkler" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateHasSprinkler() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateHasSprinkler()
	})
}

// SetPowerService sets the "power_service" field.
func (u *TruthCoreUpsertBulk) SetPowerService(v string) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetPowerService(v)
	})
}

// UpdatePowerService sets the "power_service" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdatePowerService() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdatePowerService()
	})
}

// ClearPowerService clears the value of the "power_service" field.
func (u *TruthCoreUpsertBulk) ClearPowerService() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.ClearPowerService()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TruthCoreUpsertBulk) SetUpdatedAt(v time.Time) *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TruthCoreUpsertBulk) UpdateUpdatedAt() *TruthCoreUpsertBulk {
	return u.Update(func(s *TruthCoreUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TruthCoreUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TruthCoreCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TruthCoreCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TruthCoreUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
