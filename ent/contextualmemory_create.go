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
	"github.com/warehouse-exchange/wex/ent/contextualmemory"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// ContextualMemoryCreate is the builder for creating a ContextualMemory entity.
type ContextualMemoryCreate struct {
	config
	mutation *ContextualMemoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWarehouseID sets the "warehouse_id" field.
func (_c *ContextualMemoryCreate) SetWarehouseID(v string) *ContextualMemoryCreate {
	_c.mutation.SetWarehouseID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ContextualMemoryCreate) SetCategory(v contextualmemory.Category) *ContextualMemoryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ContextualMemoryCreate) SetNillableCategory(v *contextualmemory.Category) *ContextualMemoryCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *ContextualMemoryCreate) SetContent(v string) *ContextualMemoryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ContextualMemoryCreate) SetSource(v contextualmemory.Source) *ContextualMemoryCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ContextualMemoryCreate) SetNillableSource(v *contextualmemory.Source) *ContextualMemoryCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetRecordedBy sets the "recorded_by" field.
func (_c *ContextualMemoryCreate) SetRecordedBy(v string) *ContextualMemoryCreate {
	_c.mutation.SetRecordedBy(v)
	return _c
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_c *ContextualMemoryCreate) SetNillableRecordedBy(v *string) *ContextualMemoryCreate {
	if v != nil {
		_c.SetRecordedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContextualMemoryCreate) SetCreatedAt(v time.Time) *ContextualMemoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContextualMemoryCreate) SetNillableCreatedAt(v *time.Time) *ContextualMemoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContextualMemoryCreate) SetID(v string) *ContextualMemoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_c *ContextualMemoryCreate) SetWarehouse(v *Warehouse) *ContextualMemoryCreate {
	return _c.SetWarehouseID(v.ID)
}

// Mutation returns the ContextualMemoryMutation object of the builder.
func (_c *ContextualMemoryCreate) Mutation() *ContextualMemoryMutation {
	return _c.mutation
}

// Save creates the ContextualMemory in the database.
func (_c *ContextualMemoryCreate) Save(ctx context.Context) (*ContextualMemory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContextualMemoryCreate) SaveX(ctx context.Context) *ContextualMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextualMemoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextualMemoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContextualMemoryCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := contextualmemory.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := contextualmemory.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contextualmemory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContextualMemoryCreate) check() error {
	if _, ok := _c.mutation.WarehouseID(); !ok {
		return &ValidationError{Name: "warehouse_id", err: errors.New(`ent: missing required field "ContextualMemory.warehouse_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ContextualMemory.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := contextualmemory.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ContextualMemory.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ContextualMemory.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := contextualmemory.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "ContextualMemory.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ContextualMemory.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := contextualmemory.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ContextualMemory.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContextualMemory.created_at"`)}
	}
	if len(_c.mutation.WarehouseIDs()) == 0 {
		return &ValidationError{Name: "warehouse", err: errors.New(`ent: missing required edge "ContextualMemory.warehouse"`)}
	}
	return nil
}

func (_c *ContextualMemoryCreate) sqlSave(ctx context.Context) (*ContextualMemory, error) {
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
			return nil, fmt.Errorf("unexpected ContextualMemory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContextualMemoryCreate) createSpec() (*ContextualMemory, *sqlgraph.CreateSpec) {
	var (
		_node = &ContextualMemory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contextualmemory.Table, sqlgraph.NewFieldSpec(contextualmemory.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(contextualmemory.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(contextualmemory.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(contextualmemory.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.RecordedBy(); ok {
		_spec.SetField(contextualmemory.FieldRecordedBy, field.TypeString, value)
		_node.RecordedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contextualmemory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.WarehouseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextualmemory.WarehouseTable,
			Columns: []string{contextualmemory.WarehouseColumn},
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
//	client.ContextualMemory.Create().
//		SetWarehouseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContextualMemoryUpsert) {
//			SetWarehouseID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContextualMemoryCreate) OnConflict(opts ...sql.ConflictOption) *ContextualMemoryUpsertOne {
	_c.conflict = opts
	return &ContextualMemoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContextualMemory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContextualMemoryCreate) OnConflictColumns(columns ...string) *ContextualMemoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContextualMemoryUpsertOne{
		create: _c,
	}
}

type (
	// ContextualMemoryUpsertOne is the builder for "upsert"-ing
	//  one ContextualMemory node.
	ContextualMemoryUpsertOne struct {
		create *ContextualMemoryCreate
	}

	// ContextualMemoryUpsert is the "OnConflict" setter.
	ContextualMemoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetWarehouseID sets the "warehouse_id" field.
func (u *ContextualMemoryUpsert) SetWarehouseID(v string) *ContextualMemoryUpsert {
	u.Set(contextualmemory.FieldWarehouseID, v)
	return u
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *ContextualMemoryUpsert) UpdateWarehouseID() *ContextualMemoryUpsert {
	u.SetExcluded(contextualmemory.FieldWarehouseID)
	return u
}

// SetCategory sets the "category" field.
func (u *ContextualMemoryUpsert) SetCategory(v contextualmemory.Category) *ContextualMemoryUpsert {
	u.Set(contextualmemory.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ContextualMemoryUpsert) UpdateCategory() *ContextualMemoryUpsert {
	u.SetExcluded(contextualmemory.FieldCategory)
	return u
}

// SetContent sets the "content" field.
func (u *ContextualMemoryUpsert) SetContent(v string) *ContextualMemoryUpsert {
	u.Set(contextualmemory.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ContextualMemoryUpsert) UpdateContent() *ContextualMemoryUpsert {
	u.SetExcluded(contextualmemory.FieldContent)
	return u
}

// SetSource sets the "source" field.
func (u *ContextualMemoryUpsert) SetSource(v contextualmemory.Source) *ContextualMemoryUpsert {
	u.Set(contextualmemory.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ContextualMemoryUpsert) UpdateSource() *ContextualMemoryUpsert {
	u.SetExcluded(contextualmemory.FieldSource)
	return u
}

// SetRecordedBy sets the "recorded_by" field.
func (u *ContextualMemoryUpsert) SetRecordedBy(v string) *ContextualMemoryUpsert {
	u.Set(contextualmemory.FieldRecordedBy, v)
	return u
}

// UpdateRecordedBy sets the "recorded_by" field to the value that was provided on create.
func (u *ContextualMemoryUpsert) UpdateRecordedBy() *ContextualMemoryUpsert {
	u.SetExcluded(contextualmemory.FieldRecordedBy)
	return u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (u *ContextualMemoryUpsert) ClearRecordedBy() *ContextualMemoryUpsert {
	u.SetNull(contextualmemory.FieldRecordedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ContextualMemory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contextualmemory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContextualMemoryUpsertOne) UpdateNewValues() *ContextualMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(contextualmemory.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(contextualmemory.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContextualMemory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContextualMemoryUpsertOne) Ignore() *ContextualMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContextualMemoryUpsertOne) DoNothing() *ContextualMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContextualMemoryCreate.OnConflict
// documentation for more info.
func (u *ContextualMemoryUpsertOne) Update(set func(*ContextualMemoryUpsert)) *ContextualMemoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContextualMemoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *ContextualMemoryUpsertOne) SetWarehouseID(v string) *ContextualMemoryUpsertOne {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *ContextualMemoryUpsertOne) UpdateWarehouseID() *ContextualMemoryUpsertOne {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetCategory sets the "category" field.
func (u *ContextualMemoryUpsertOne) SetCategory(v contextualmemory.Category) *ContextualMemoryUpsertOne {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ContextualMemoryUpsertOne) UpdateCategory() *ContextualMemoryUpsertOne {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.UpdateCategory()
	})
}

// SetContent sets the "content" field.
func (u *ContextualMemoryUpsertOne) SetContent(v string) *ContextualMemoryUpsertOne {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ContextualMemoryUpsertOne) UpdateContent() *ContextualMemoryUpsertOne {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.UpdateContent()
	})
}

// SetSource sets the "source" field.
func (u *ContextualMemoryUpsertOne) SetSource(v contextualmemory.Source) *ContextualMemoryUpsertOne {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ContextualMemoryUpsertOne) UpdateSource() *ContextualMemoryUpsertOne {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.UpdateSource()
	})
}

// SetRecordedBy sets the "recorded_by" field.
func (u *ContextualMemoryUpsertOne) SetRecordedBy(v string) *ContextualMemoryUpsertOne {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.SetRecordedBy(v)
	})
}

// UpdateRecordedBy sets the "recorded_by" field to the value that was provided on create.
func (u *ContextualMemoryUpsertOne) UpdateRecordedBy() *ContextualMemoryUpsertOne {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.UpdateRecordedBy()
	})
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (u *ContextualMemoryUpsertOne) ClearRecordedBy() *ContextualMemoryUpsertOne {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.ClearRecordedBy()
	})
}

// Exec executes the query.
func (u *ContextualMemoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContextualMemoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContextualMemoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContextualMemoryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ContextualMemoryUpsertOne.ID is not supported by MySQL driver. Use ContextualMemoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContextualMemoryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContextualMemoryCreateBulk is the builder for creating many ContextualMemory entities in bulk.
type ContextualMemoryCreateBulk struct {
	config
	err      error
	builders []*ContextualMemoryCreate
	conflict []sql.ConflictOption
}

// Save creates the ContextualMemory entities in the database.
func (_c *ContextualMemoryCreateBulk) Save(ctx context.Context) ([]*ContextualMemory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContextualMemory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContextualMemoryMutation)
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
func (_c *ContextualMemoryCreateBulk) SaveX(ctx context.Context) []*ContextualMemory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContextualMemoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContextualMemoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ContextualMemory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContextualMemoryUpsert) {
//			SetWarehouseID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContextualMemoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContextualMemoryUpsertBulk {
	_c.conflict = opts
	return &ContextualMemoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ContextualMemory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContextualMemoryCreateBulk) OnConflictColumns(columns ...string) *ContextualMemoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContextualMemoryUpsertBulk{
		create: _c,
	}
}

// ContextualMemoryUpsertBulk is the builder for "upsert"-ing
// a bulk of ContextualMemory nodes.
type ContextualMemoryUpsertBulk struct {
	create *ContextualMemoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ContextualMemory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contextualmemory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContextualMemoryUpsertBulk) UpdateNewValues() *ContextualMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(contextualmemory.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(contextualmemory.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ContextualMemory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContextualMemoryUpsertBulk) Ignore() *ContextualMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContextualMemoryUpsertBulk) DoNothing() *ContextualMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContextualMemoryCreateBulk.OnConflict
// documentation for more info.
func (u *ContextualMemoryUpsertBulk) Update(set func(*ContextualMemoryUpsert)) *ContextualMemoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContextualMemoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *ContextualMemoryUpsertBulk) SetWarehouseID(v string) *ContextualMemoryUpsertBulk {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *ContextualMemoryUpsertBulk) UpdateWarehouseID() *ContextualMemoryUpsertBulk {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetCategory sets the "category" field.
func (u *ContextualMemoryUpsertBulk) SetCategory(v contextualmemory.Category) *ContextualMemoryUpsertBulk {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *ContextualMemoryUpsertBulk) UpdateCategory() *ContextualMemoryUpsertBulk {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.UpdateCategory()
	})
}

// SetContent sets the "content" field.
func (u *ContextualMemoryUpsertBulk) SetContent(v string) *ContextualMemoryUpsertBulk {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ContextualMemoryUpsertBulk) UpdateContent() *ContextualMemoryUpsertBulk {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.UpdateContent()
	})
}

// SetSource sets the "source" field.
func (u *ContextualMemoryUpsertBulk) SetSource(v contextualmemory.Source) *ContextualMemoryUpsertBulk {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *ContextualMemoryUpsertBulk) UpdateSource() *ContextualMemoryUpsertBulk {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.UpdateSource()
	})
}

// SetRecordedBy sets the "recorded_by" field.
func (u *ContextualMemoryUpsertBulk) SetRecordedBy(v string) *ContextualMemoryUpsertBulk {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.SetRecordedBy(v)
	})
}

// UpdateRecordedBy sets the "recorded_by" field to the value that was provided on create.
func (u *ContextualMemoryUpsertBulk) UpdateRecordedBy() *ContextualMemoryUpsertBulk {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.UpdateRecordedBy()
	})
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (u *ContextualMemoryUpsertBulk) ClearRecordedBy() *ContextualMemoryUpsertBulk {
	return u.Update(func(s *ContextualMemoryUpsert) {
		s.ClearRecordedBy()
	})
}

// Exec executes the query.
func (u *ContextualMemoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContextualMemoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContextualMemoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContextualMemoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
