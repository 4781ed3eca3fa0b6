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
	"github.com/warehouse-exchange/wex/ent/supplieragreement"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// SupplierAgreementCreate is the builder for creating a SupplierAgreement entity.
type SupplierAgreementCreate struct {
	config
	mutation *SupplierAgreementMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWarehouseID sets the "warehouse_id" field.
func (_c *SupplierAgreementCreate) SetWarehouseID(v string) *SupplierAgreementCreate {
	_c.mutation.SetWarehouseID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SupplierAgreementCreate) SetStatus(v supplieragreement.Status) *SupplierAgreementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SupplierAgreementCreate) SetNillableStatus(v *supplieragreement.Status) *SupplierAgreementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetOrigin sets the "origin" field.
func (_c *SupplierAgreementCreate) SetOrigin(v supplieragreement.Origin) *SupplierAgreementCreate {
	_c.mutation.SetOrigin(v)
	return _c
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_c *SupplierAgreementCreate) SetNillableOrigin(v *supplieragreement.Origin) *SupplierAgreementCreate {
	if v != nil {
		_c.SetOrigin(*v)
	}
	return _c
}

// SetExternalRef sets the "external_ref" field.
func (_c *SupplierAgreementCreate) SetExternalRef(v string) *SupplierAgreementCreate {
	_c.mutation.SetExternalRef(v)
	return _c
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_c *SupplierAgreementCreate) SetNillableExternalRef(v *string) *SupplierAgreementCreate {
	if v != nil {
		_c.SetExternalRef(*v)
	}
	return _c
}

// SetSignedAt sets the "signed_at" field.
func (_c *SupplierAgreementCreate) SetSignedAt(v time.Time) *SupplierAgreementCreate {
	_c.mutation.SetSignedAt(v)
	return _c
}

// SetNillableSignedAt sets the "signed_at" field if the given value is not nil.
func (_c *SupplierAgreementCreate) SetNillableSignedAt(v *time.Time) *SupplierAgreementCreate {
	if v != nil {
		_c.SetSignedAt(*v)
	}
	return _c
}

// SetTerminatedAt sets the "terminated_at" field.
func (_c *SupplierAgreementCreate) SetTerminatedAt(v time.Time) *SupplierAgreementCreate {
	_c.mutation.SetTerminatedAt(v)
	return _c
}

// SetNillableTerminatedAt sets the "terminated_at" field if the given value is not nil.
func (_c *SupplierAgreementCreate) SetNillableTerminatedAt(v *time.Time) *SupplierAgreementCreate {
	if v != nil {
		_c.SetTerminatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SupplierAgreementCreate) SetCreatedAt(v time.Time) *SupplierAgreementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SupplierAgreementCreate) SetNillableCreatedAt(v *time.Time) *SupplierAgreementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SupplierAgreementCreate) SetUpdatedAt(v time.Time) *SupplierAgreementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SupplierAgreementCreate) SetNillableUpdatedAt(v *time.Time) *SupplierAgreementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SupplierAgreementCreate) SetID(v string) *SupplierAgreementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_c *SupplierAgreementCreate) SetWarehouse(v *Warehouse) *SupplierAgreementCreate {
	return _c.SetWarehouseID(v.ID)
}

// Mutation returns the SupplierAgreementMutation object of the builder.
func (_c *SupplierAgreementCreate) Mutation() *SupplierAgreementMutation {
	return _c.mutation
}

// Save creates the SupplierAgreement in the database.
func (_c *SupplierAgreementCreate) Save(ctx context.Context) (*SupplierAgreement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SupplierAgreementCreate) SaveX(ctx context.Context) *SupplierAgreement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierAgreementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierAgreementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SupplierAgreementCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := supplieragreement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Origin(); !ok {
		v := supplieragreement.DefaultOrigin
		_c.mutation.SetOrigin(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := supplieragreement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := supplieragreement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SupplierAgreementCreate) check() error {
	if _, ok := _c.mutation.WarehouseID(); !ok {
		return &ValidationError{Name: "warehouse_id", err: errors.New(`ent: missing required field "SupplierAgreement.warehouse_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SupplierAgreement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := supplieragreement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SupplierAgreement.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Origin(); !ok {
		return &ValidationError{Name: "origin", err: errors.New(`ent: missing required field "SupplierAgreement.origin"`)}
	}
	if v, ok := _c.mutation.Origin(); ok {
		if err := supplieragreement.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "SupplierAgreement.origin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SupplierAgreement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SupplierAgreement.updated_at"`)}
	}
	if len(_c.mutation.WarehouseIDs()) == 0 {
		return &ValidationError{Name: "warehouse", err: errors.New(`ent: missing required edge "SupplierAgreement.warehouse"`)}
	}
	return nil
}

func (_c *SupplierAgreementCreate) sqlSave(ctx context.Context) (*SupplierAgreement, error) {
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
			return nil, fmt.Errorf("unexpected SupplierAgreement.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SupplierAgreementCreate) createSpec() (*SupplierAgreement, *sqlgraph.CreateSpec) {
	var (
		_node = &SupplierAgreement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(supplieragreement.Table, sqlgraph.NewFieldSpec(supplieragreement.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(supplieragreement.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Origin(); ok {
		_spec.SetField(supplieragreement.FieldOrigin, field.TypeEnum, value)
		_node.Origin = value
	}
	if value, ok := _c.mutation.ExternalRef(); ok {
		_spec.SetField(supplieragreement.FieldExternalRef, field.TypeString, value)
		_node.ExternalRef = value
	}
	if value, ok := _c.mutation.SignedAt(); ok {
		_spec.SetField(supplieragreement.FieldSignedAt, field.TypeTime, value)
		_node.SignedAt = &value
	}
	if value, ok := _c.mutation.TerminatedAt(); ok {
		_spec.SetField(supplieragreement.FieldTerminatedAt, field.TypeTime, value)
		_node.TerminatedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(supplieragreement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(supplieragreement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WarehouseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   supplieragreement.WarehouseTable,
			Columns: []string{supplieragreement.WarehouseColumn},
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
//	client.SupplierAgreement.Create().
//		SetWarehouseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SupplierAgreementUpsert) {
//			SetWarehouseID(v+v).
//		}).
//		Exec(ctx)
func (_c *SupplierAgreementCreate) OnConflict(opts ...sql.ConflictOption) *SupplierAgreementUpsertOne {
	_c.conflict = opts
	return &SupplierAgreementUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SupplierAgreement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SupplierAgreementCreate) OnConflictColumns(columns ...string) *SupplierAgreementUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SupplierAgreementUpsertOne{
		create: _c,
	}
}

type (
	// SupplierAgreementUpsertOne is the builder for "upsert"-ing
	//  one SupplierAgreement node.
	SupplierAgreementUpsertOne struct {
		create *SupplierAgreementCreate
	}

	// SupplierAgreementUpsert is the "OnConflict" setter.
	SupplierAgreementUpsert struct {
		*sql.UpdateSet
	}
)

// SetWarehouseID sets the "warehouse_id" field.
func (u *SupplierAgreementUpsert) SetWarehouseID(v string) *SupplierAgreementUpsert {
	u.Set(supplieragreement.FieldWarehouseID, v)
	return u
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *SupplierAgreementUpsert) UpdateWarehouseID() *SupplierAgreementUpsert {
	u.SetExcluded(supplieragreement.FieldWarehouseID)
	return u
}

// SetStatus sets the "status" field.
func (u *SupplierAgreementUpsert) SetStatus(v supplieragreement.Status) *SupplierAgreementUpsert {
	u.Set(supplieragreement.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SupplierAgreementUpsert) UpdateStatus() *SupplierAgreementUpsert {
	u.SetExcluded(supplieragreement.FieldStatus)
	return u
}

// SetOrigin sets the "origin" field.
func (u *SupplierAgreementUpsert) SetOrigin(v supplieragreement.Origin) *SupplierAgreementUpsert {
	u.Set(supplieragreement.FieldOrigin, v)
	return u
}

// UpdateOrigin sets the "origin" field to the value that was provided on create.
func (u *SupplierAgreementUpsert) UpdateOrigin() *SupplierAgreementUpsert {
	u.SetExcluded(supplieragreement.FieldOrigin)
	return u
}

// SetExternalRef sets the "external_ref" field.
func (u *SupplierAgreementUpsert) SetExternalRef(v string) *SupplierAgreementUpsert {
	u.Set(supplieragreement.FieldExternalRef, v)
	return u
}

// UpdateExternalRef sets the "external_ref" field to the value that was provided on create.
func (u *SupplierAgreementUpsert) UpdateExternalRef() *SupplierAgreementUpsert {
	u.SetExcluded(supplieragreement.FieldExternalRef)
	return u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (u *SupplierAgreementUpsert) ClearExternalRef() *SupplierAgreementUpsert {
	u.SetNull(supplieragreement.FieldExternalRef)
	return u
}

// SetSignedAt sets the "signed_at" field.
func (u *SupplierAgreementUpsert) SetSignedAt(v time.Time) *SupplierAgreementUpsert {
	u.Set(supplieragreement.FieldSignedAt, v)
	return u
}

// UpdateSignedAt sets the "signed_at" field to the value that was provided on create.
func (u *SupplierAgreementUpsert) UpdateSignedAt() *SupplierAgreementUpsert {
	u.SetExcluded(supplieragreement.FieldSignedAt)
	return u
}

// ClearSignedAt clears the value of the "signed_at" field.
func (u *SupplierAgreementUpsert) ClearSignedAt() *SupplierAgreementUpsert {
	u.SetNull(supplieragreement.FieldSignedAt)
	return u
}

// SetTerminatedAt sets the "terminated_at" field.
func (u *SupplierAgreementUpsert) SetTerminatedAt(v time.Time) *SupplierAgreementUpsert {
	u.Set(supplieragreement.FieldTerminatedAt, v)
	return u
}

// UpdateTerminatedAt sets the "terminated_at" field to the value that was provided on create.
func (u *SupplierAgreementUpsert) UpdateTerminatedAt() *SupplierAgreementUpsert {
	u.SetExcluded(supplieragreement.FieldTerminatedAt)
	return u
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (u *SupplierAgreementUpsert) ClearTerminatedAt() *SupplierAgreementUpsert {
	u.SetNull(supplieragreement.FieldTerminatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SupplierAgreementUpsert) SetUpdatedAt(v time.Time) *SupplierAgreementUpsert {
	u.Set(supplieragreement.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SupplierAgreementUpsert) UpdateUpdatedAt() *SupplierAgreementUpsert {
	u.SetExcluded(supplieragreement.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SupplierAgreement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(supplieragreement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SupplierAgreementUpsertOne) UpdateNewValues() *SupplierAgreementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(supplieragreement.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(supplieragreement.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SupplierAgreement.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SupplierAgreementUpsertOne) Ignore() *SupplierAgreementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SupplierAgreementUpsertOne) DoNothing() *SupplierAgreementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SupplierAgreementCreate.OnConflict
// documentation for more info.
func (u *SupplierAgreementUpsertOne) Update(set func(*SupplierAgreementUpsert)) *SupplierAgreementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SupplierAgreementUpsert{UpdateSet: update})
	}))
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *SupplierAgreementUpsertOne) SetWarehouseID(v string) *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *SupplierAgreementUpsertOne) UpdateWarehouseID() *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetStatus sets the "status" field.
func (u *SupplierAgreementUpsertOne) SetStatus(v supplieragreement.Status) *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SupplierAgreementUpsertOne) UpdateStatus() *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateStatus()
	})
}

// SetOrigin sets the "origin" field.
func (u *SupplierAgreementUpsertOne) SetOrigin(v supplieragreement.Origin) *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetOrigin(v)
	})
}

// UpdateOrigin sets the "origin" field to the value that was provided on create.
func (u *SupplierAgreementUpsertOne) UpdateOrigin() *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateOrigin()
	})
}

// SetExternalRef sets the "external_ref" field.
func (u *SupplierAgreementUpsertOne) SetExternalRef(v string) *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetExternalRef(v)
	})
}

// UpdateExternalRef sets the "external_ref" field to the value that was provided on create.
func (u *SupplierAgreementUpsertOne) UpdateExternalRef() *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateExternalRef()
	})
}

// ClearExternalRef clears the value of the "external_ref" field.
func (u *SupplierAgreementUpsertOne) ClearExternalRef() *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.ClearExternalRef()
	})
}

// SetSignedAt sets the "signed_at" field.
func (u *SupplierAgreementUpsertOne) SetSignedAt(v time.Time) *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetSignedAt(v)
	})
}

// UpdateSignedAt sets the "signed_at" field to the value that was provided on create.
func (u *SupplierAgreementUpsertOne) UpdateSignedAt() *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateSignedAt()
	})
}

// ClearSignedAt clears the value of the "signed_at" field.
func (u *SupplierAgreementUpsertOne) ClearSignedAt() *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.ClearSignedAt()
	})
}

// SetTerminatedAt sets the "terminated_at" field.
func (u *SupplierAgreementUpsertOne) SetTerminatedAt(v time.Time) *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetTerminatedAt(v)
	})
}

// UpdateTerminatedAt sets the "terminated_at" field to the value that was provided on create.
func (u *SupplierAgreementUpsertOne) UpdateTerminatedAt() *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateTerminatedAt()
	})
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (u *SupplierAgreementUpsertOne) ClearTerminatedAt() *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.ClearTerminatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SupplierAgreementUpsertOne) SetUpdatedAt(v time.Time) *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SupplierAgreementUpsertOne) UpdateUpdatedAt() *SupplierAgreementUpsertOne {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SupplierAgreementUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SupplierAgreementCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SupplierAgreementUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SupplierAgreementUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SupplierAgreementUpsertOne.ID is not supported by MySQL driver. Use SupplierAgreementUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SupplierAgreementUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SupplierAgreementCreateBulk is the builder for creating many SupplierAgreement entities in bulk.
type SupplierAgreementCreateBulk struct {
	config
	err      error
	builders []*SupplierAgreementCreate
	conflict []sql.ConflictOption
}

// Save creates the SupplierAgreement entities in the database.
func (_c *SupplierAgreementCreateBulk) Save(ctx context.Context) ([]*SupplierAgreement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SupplierAgreement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SupplierAgreementMutation)
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
func (_c *SupplierAgreementCreateBulk) SaveX(ctx context.Context) []*SupplierAgreement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SupplierAgreementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SupplierAgreementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SupplierAgreement.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SupplierAgreementUpsert) {
//			SetWarehouseID(v+v).
//		}).
//		Exec(ctx)
func (_c *SupplierAgreementCreateBulk) OnConflict(opts ...sql.ConflictOption) *SupplierAgreementUpsertBulk {
	_c.conflict = opts
	return &SupplierAgreementUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SupplierAgreement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SupplierAgreementCreateBulk) OnConflictColumns(columns ...string) *SupplierAgreementUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SupplierAgreementUpsertBulk{
		create: _c,
	}
}

// SupplierAgreementUpsertBulk is the builder for "upsert"-ing
// a bulk of SupplierAgreement nodes.
type SupplierAgreementUpsertBulk struct {
	create *SupplierAgreementCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SupplierAgreement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(supplieragreement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SupplierAgreementUpsertBulk) UpdateNewValues() *SupplierAgreementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(supplieragreement.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(supplieragreement.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SupplierAgreement.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SupplierAgreementUpsertBulk) Ignore() *SupplierAgreementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SupplierAgreementUpsertBulk) DoNothing() *SupplierAgreementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SupplierAgreementCreateBulk.OnConflict
// documentation for more info.
func (u *SupplierAgreementUpsertBulk) Update(set func(*SupplierAgreementUpsert)) *SupplierAgreementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SupplierAgreementUpsert{UpdateSet: update})
	}))
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *SupplierAgreementUpsertBulk) SetWarehouseID(v string) *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *SupplierAgreementUpsertBulk) UpdateWarehouseID() *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetStatus sets the "status" field.
func (u *SupplierAgreementUpsertBulk) SetStatus(v supplieragreement.Status) *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SupplierAgreementUpsertBulk) UpdateStatus() *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateStatus()
	})
}

// SetOrigin sets the "origin" field.
func (u *SupplierAgreementUpsertBulk) SetOrigin(v supplieragreement.Origin) *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetOrigin(v)
	})
}

// UpdateOrigin sets the "origin" field to the value that was provided on create.
func (u *SupplierAgreementUpsertBulk) UpdateOrigin() *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateOrigin()
	})
}

// SetExternalRef sets the "external_ref" field.
func (u *SupplierAgreementUpsertBulk) SetExternalRef(v string) *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetExternalRef(v)
	})
}

// UpdateExternalRef sets the "external_ref" field to the value that was provided on create.
func (u *SupplierAgreementUpsertBulk) UpdateExternalRef() *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateExternalRef()
	})
}

// ClearExternalRef clears the value of the "external_ref" field.
func (u *SupplierAgreementUpsertBulk) ClearExternalRef() *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.ClearExternalRef()
	})
}

// SetSignedAt sets the "signed_at" field.
func (u *SupplierAgreementUpsertBulk) SetSignedAt(v time.Time) *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetSignedAt(v)
	})
}

// UpdateSignedAt sets the "signed_at" field to the value that was provided on create.
func (u *SupplierAgreementUpsertBulk) UpdateSignedAt() *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateSignedAt()
	})
}

// ClearSignedAt clears the value of the "signed_at" field.
func (u *SupplierAgreementUpsertBulk) ClearSignedAt() *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.ClearSignedAt()
	})
}

// SetTerminatedAt sets the "terminated_at" field.
func (u *SupplierAgreementUpsertBulk) SetTerminatedAt(v time.Time) *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetTerminatedAt(v)
	})
}

// UpdateTerminatedAt sets the "terminated_at" field to the value that was provided on create.
func (u *SupplierAgreementUpsertBulk) UpdateTerminatedAt() *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateTerminatedAt()
	})
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (u *SupplierAgreementUpsertBulk) ClearTerminatedAt() *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.ClearTerminatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SupplierAgreementUpsertBulk) SetUpdatedAt(v time.Time) *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SupplierAgreementUpsertBulk) UpdateUpdatedAt() *SupplierAgreementUpsertBulk {
	return u.Update(func(s *SupplierAgreementUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SupplierAgreementUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SupplierAgreementCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SupplierAgreementCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SupplierAgreementUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
