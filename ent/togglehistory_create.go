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
	"github.com/warehouse-exchange/wex/ent/togglehistory"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// ToggleHistoryCreate is the builder for creating a ToggleHistory entity.
type ToggleHistoryCreate struct {
	config
	mutation *ToggleHistoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWarehouseID sets the "warehouse_id" field.
func (_c *ToggleHistoryCreate) SetWarehouseID(v string) *ToggleHistoryCreate {
	_c.mutation.SetWarehouseID(v)
	return _c
}

// SetNewState sets the "new_state" field.
func (_c *ToggleHistoryCreate) SetNewState(v togglehistory.NewState) *ToggleHistoryCreate {
	_c.mutation.SetNewState(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ToggleHistoryCreate) SetSource(v togglehistory.Source) *ToggleHistoryCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetToggledBy sets the "toggled_by" field.
func (_c *ToggleHistoryCreate) SetToggledBy(v string) *ToggleHistoryCreate {
	_c.mutation.SetToggledBy(v)
	return _c
}

// SetNillableToggledBy sets the "toggled_by" field if the given value is not nil.
func (_c *ToggleHistoryCreate) SetNillableToggledBy(v *string) *ToggleHistoryCreate {
	if v != nil {
		_c.SetToggledBy(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *ToggleHistoryCreate) SetReason(v string) *ToggleHistoryCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ToggleHistoryCreate) SetNillableReason(v *string) *ToggleHistoryCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToggleHistoryCreate) SetCreatedAt(v time.Time) *ToggleHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToggleHistoryCreate) SetNillableCreatedAt(v *time.Time) *ToggleHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToggleHistoryCreate) SetID(v string) *ToggleHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_c *ToggleHistoryCreate) SetWarehouse(v *Warehouse) *ToggleHistoryCreate {
	return _c.SetWarehouseID(v.ID)
}

// Mutation returns the ToggleHistoryMutation object of the builder.
func (_c *ToggleHistoryCreate) Mutation() *ToggleHistoryMutation {
	return _c.mutation
}

// Save creates the ToggleHistory in the database.
func (_c *ToggleHistoryCreate) Save(ctx context.Context) (*ToggleHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToggleHistoryCreate) SaveX(ctx context.Context) *ToggleHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToggleHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToggleHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToggleHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := togglehistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToggleHistoryCreate) check() error {
	if _, ok := _c.mutation.WarehouseID(); !ok {
		return &ValidationError{Name: "warehouse_id", err: errors.New(`ent: missing required field "ToggleHistory.warehouse_id"`)}
	}
	if _, ok := _c.mutation.NewState(); !ok {
		return &ValidationError{Name: "new_state", err: errors.New(`ent: missing required field "ToggleHistory.new_state"`)}
	}
	if v, ok := _c.mutation.NewState(); ok {
		if err := togglehistory.NewStateValidator(v); err != nil {
			return &ValidationError{Name: "new_state", err: fmt.Errorf(`ent: validator failed for field "ToggleHistory.new_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ToggleHistory.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := togglehistory.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ToggleHistory.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToggleHistory.created_at"`)}
	}
	if len(_c.mutation.WarehouseIDs()) == 0 {
		return &ValidationError{Name: "warehouse", err: errors.New(`ent: missing required edge "ToggleHistory.warehouse"`)}
	}
	return nil
}

func (_c *ToggleHistoryCreate) sqlSave(ctx context.Context) (*ToggleHistory, error) {
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
			return nil, fmt.Errorf("unexpected ToggleHistory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToggleHistoryCreate) createSpec() (*ToggleHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &ToggleHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(togglehistory.Table, sqlgraph.NewFieldSpec(togglehistory.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.NewState(); ok {
		_spec.SetField(togglehistory.FieldNewState, field.TypeEnum, value)
		_node.NewState = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(togglehistory.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ToggledBy(); ok {
		_spec.SetField(togglehistory.FieldToggledBy, field.TypeString, value)
		_node.ToggledBy = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(togglehistory.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(togglehistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WarehouseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   togglehistory.WarehouseTable,
			Columns: []string{togglehistory.WarehouseColumn},
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
//	client.ToggleHistory.Create().
//		SetWarehouseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToggleHistoryUpsert) {
//			SetWarehouseID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToggleHistoryCreate) OnConflict(opts ...sql.ConflictOption) *ToggleHistoryUpsertOne {
	_c.conflict = opts
	return &ToggleHistoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToggleHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToggleHistoryCreate) OnConflictColumns(columns ...string) *ToggleHistoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToggleHistoryUpsertOne{
		create: _c,
	}
}

type (
	// ToggleHistoryUpsertOne is the builder for "upsert"-ing
	//  one ToggleHistory node.
	ToggleHistoryUpsertOne struct {
		create *ToggleHistoryCreate
	}

	// ToggleHistoryUpsert is the "OnConflict" setter.
	ToggleHistoryUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ToggleHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(togglehistory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToggleHistoryUpsertOne) UpdateNewValues() *ToggleHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(togglehistory.FieldID)
		}
		if _, exists := u.create.mutation.WarehouseID(); exists {
			s.SetIgnore(togglehistory.FieldWarehouseID)
		}
		if _, exists := u.create.mutation.NewState(); exists {
			s.SetIgnore(togglehistory.FieldNewState)
		}
		if _, exists := u.create.mutation.Source(); exists {
			s.SetIgnore(togglehistory.FieldSource)
		}
		if _, exists := u.create.mutation.ToggledBy(); exists {
			s.SetIgnore(togglehistory.FieldToggledBy)
		}
		if _, exists := u.create.mutation.Reason(); exists {
			s.SetIgnore(togglehistory.FieldReason)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(togglehistory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToggleHistory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ToggleHistoryUpsertOne) Ignore() *ToggleHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToggleHistoryUpsertOne) DoNothing() *ToggleHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToggleHistoryCreate.OnConflict
// documentation for more info.
func (u *ToggleHistoryUpsertOne) Update(set func(*ToggleHistoryUpsert)) *ToggleHistoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToggleHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ToggleHistoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToggleHistoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToggleHistoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ToggleHistoryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ToggleHistoryUpsertOne.ID is not supported by MySQL driver. Use ToggleHistoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ToggleHistoryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ToggleHistoryCreateBulk is the builder for creating many ToggleHistory entities in bulk.
type ToggleHistoryCreateBulk struct {
	config
	err      error
	builders []*ToggleHistoryCreate
	conflict []sql.ConflictOption
}

// Save creates the ToggleHistory entities in the database.
func (_c *ToggleHistoryCreateBulk) Save(ctx context.Context) ([]*ToggleHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToggleHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToggleHistoryMutation)
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
func (_c *ToggleHistoryCreateBulk) SaveX(ctx context.Context) []*ToggleHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToggleHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToggleHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToggleHistory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToggleHistoryUpsert) {
//			SetWarehouseID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToggleHistoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ToggleHistoryUpsertBulk {
	_c.conflict = opts
	return &ToggleHistoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToggleHistory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToggleHistoryCreateBulk) OnConflictColumns(columns ...string) *ToggleHistoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToggleHistoryUpsertBulk{
		create: _c,
	}
}

// ToggleHistoryUpsertBulk is the builder for "upsert"-ing
// a bulk of ToggleHistory nodes.
type ToggleHistoryUpsertBulk struct {
	create *ToggleHistoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ToggleHistory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(togglehistory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToggleHistoryUpsertBulk) UpdateNewValues() *ToggleHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(togglehistory.FieldID)
			}
			if _, exists := b.mutation.WarehouseID(); exists {
				s.SetIgnore(togglehistory.FieldWarehouseID)
			}
			if _, exists := b.mutation.NewState(); exists {
				s.SetIgnore(togglehistory.FieldNewState)
			}
			if _, exists := b.mutation.Source(); exists {
				s.SetIgnore(togglehistory.FieldSource)
			}
			if _, exists := b.mutation.ToggledBy(); exists {
				s.SetIgnore(togglehistory.FieldToggledBy)
			}
			if _, exists := b.mutation.Reason(); exists {
				s.SetIgnore(togglehistory.FieldReason)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(togglehistory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToggleHistory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ToggleHistoryUpsertBulk) Ignore() *ToggleHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToggleHistoryUpsertBulk) DoNothing() *ToggleHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToggleHistoryCreateBulk.OnConflict
// documentation for more info.
func (u *ToggleHistoryUpsertBulk) Update(set func(*ToggleHistoryUpsert)) *ToggleHistoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToggleHistoryUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ToggleHistoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ToggleHistoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToggleHistoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToggleHistoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
