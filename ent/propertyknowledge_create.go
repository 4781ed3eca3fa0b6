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
	"github.com/warehouse-exchange/wex/ent/propertyknowledge"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// PropertyKnowledgeCreate is the builder for creating a PropertyKnowledge entity.
type PropertyKnowledgeCreate struct {
	config
	mutation *PropertyKnowledgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWarehouseID sets the "warehouse_id" field.
func (_c *PropertyKnowledgeCreate) SetWarehouseID(v string) *PropertyKnowledgeCreate {
	_c.mutation.SetWarehouseID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *PropertyKnowledgeCreate) SetTopic(v string) *PropertyKnowledgeCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *PropertyKnowledgeCreate) SetContent(v string) *PropertyKnowledgeCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *PropertyKnowledgeCreate) SetSource(v propertyknowledge.Source) *PropertyKnowledgeCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *PropertyKnowledgeCreate) SetNillableSource(v *propertyknowledge.Source) *PropertyKnowledgeCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetSourceQuestionID sets the "source_question_id" field.
func (_c *PropertyKnowledgeCreate) SetSourceQuestionID(v string) *PropertyKnowledgeCreate {
	_c.mutation.SetSourceQuestionID(v)
	return _c
}

// SetNillableSourceQuestionID sets the "source_question_id" field if the given value is not nil.
func (_c *PropertyKnowledgeCreate) SetNillableSourceQuestionID(v *string) *PropertyKnowledgeCreate {
	if v != nil {
		_c.SetSourceQuestionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PropertyKnowledgeCreate) SetCreatedAt(v time.Time) *PropertyKnowledgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PropertyKnowledgeCreate) SetNillableCreatedAt(v *time.Time) *PropertyKnowledgeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PropertyKnowledgeCreate) SetUpdatedAt(v time.Time) *PropertyKnowledgeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PropertyKnowledgeCreate) SetNillableUpdatedAt(v *time.Time) *PropertyKnowledgeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PropertyKnowledgeCreate) SetID(v string) *PropertyKnowledgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_c *PropertyKnowledgeCreate) SetWarehouse(v *Warehouse) *PropertyKnowledgeCreate {
	return _c.SetWarehouseID(v.ID)
}

// Mutation returns the PropertyKnowledgeMutation object of the builder.
func (_c *PropertyKnowledgeCreate) Mutation() *PropertyKnowledgeMutation {
	return _c.mutation
}

// Save creates the PropertyKnowledge in the database.
func (_c *PropertyKnowledgeCreate) Save(ctx context.Context) (*PropertyKnowledge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PropertyKnowledgeCreate) SaveX(ctx context.Context) *PropertyKnowledge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PropertyKnowledgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PropertyKnowledgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PropertyKnowledgeCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := propertyknowledge.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := propertyknowledge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := propertyknowledge.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PropertyKnowledgeCreate) check() error {
	if _, ok := _c.mutation.WarehouseID(); !ok {
		return &ValidationError{Name: "warehouse_id", err: errors.New(`ent: missing required field "PropertyKnowledge.warehouse_id"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "PropertyKnowledge.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := propertyknowledge.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "PropertyKnowledge.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "PropertyKnowledge.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := propertyknowledge.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "PropertyKnowledge.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "PropertyKnowledge.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := propertyknowledge.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PropertyKnowledge.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PropertyKnowledge.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PropertyKnowledge.updated_at"`)}
	}
	if len(_c.mutation.WarehouseIDs()) == 0 {
		return &ValidationError{Name: "warehouse", err: errors.New(`ent: missing required edge "PropertyKnowledge.warehouse"`)}
	}
	return nil
}

func (_c *PropertyKnowledgeCreate) sqlSave(ctx context.Context) (*PropertyKnowledge, error) {
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
			return nil, fmt.Errorf("unexpected PropertyKnowledge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PropertyKnowledgeCreate) createSpec() (*PropertyKnowledge, *sqlgraph.CreateSpec) {
	var (
		_node = &PropertyKnowledge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(propertyknowledge.Table, sqlgraph.NewFieldSpec(propertyknowledge.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(propertyknowledge.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(propertyknowledge.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(propertyknowledge.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SourceQuestionID(); ok {
		_spec.SetField(propertyknowledge.FieldSourceQuestionID, field.TypeString, value)
		_node.SourceQuestionID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(propertyknowledge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(propertyknowledge.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WarehouseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   propertyknowledge.WarehouseTable,
			Columns: []string{propertyknowledge.WarehouseColumn},
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
//	client.PropertyKnowledge.Create().
//		SetWarehouseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PropertyKnowledgeUpsert) {
//			SetWarehouseID(v+v).
//		}).
//		Exec(ctx)
func (_c *PropertyKnowledgeCreate) OnConflict(opts ...sql.ConflictOption) *PropertyKnowledgeUpsertOne {
	_c.conflict = opts
	return &PropertyKnowledgeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PropertyKnowledge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PropertyKnowledgeCreate) OnConflictColumns(columns ...string) *PropertyKnowledgeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PropertyKnowledgeUpsertOne{
		create: _c,
	}
}

type (
	// PropertyKnowledgeUpsertOne is the builder for "upsert"-ing
	//  one PropertyKnowledge node.
	PropertyKnowledgeUpsertOne struct {
		create *PropertyKnowledgeCreate
	}

	// PropertyKnowledgeUpsert is the "OnConflict" setter.
	PropertyKnowledgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetWarehouseID sets the "warehouse_id" field.
func (u *PropertyKnowledgeUpsert) SetWarehouseID(v string) *PropertyKnowledgeUpsert {
	u.Set(propertyknowledge.FieldWarehouseID, v)
	return u
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsert) UpdateWarehouseID() *PropertyKnowledgeUpsert {
	u.SetExcluded(propertyknowledge.FieldWarehouseID)
	return u
}

// SetTopic sets the "topic" field.
func (u *PropertyKnowledgeUpsert) SetTopic(v string) *PropertyKnowledgeUpsert {
	u.Set(propertyknowledge.FieldTopic, v)
	return u
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsert) UpdateTopic() *PropertyKnowledgeUpsert {
	u.SetExcluded(propertyknowledge.FieldTopic)
	return u
}

// SetContent sets the "content" field.
func (u *PropertyKnowledgeUpsert) SetContent(v string) *PropertyKnowledgeUpsert {
	u.Set(propertyknowledge.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsert) UpdateContent() *PropertyKnowledgeUpsert {
	u.SetExcluded(propertyknowledge.FieldContent)
	return u
}

// SetSource sets the "source" field.
func (u *PropertyKnowledgeUpsert) SetSource(v propertyknowledge.Source) *PropertyKnowledgeUpsert {
	u.Set(propertyknowledge.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsert) UpdateSource() *PropertyKnowledgeUpsert {
	u.SetExcluded(propertyknowledge.FieldSource)
	return u
}

// SetSourceQuestionID sets the "source_question_id" field.
func (u *PropertyKnowledgeUpsert) SetSourceQuestionID(v string) *PropertyKnowledgeUpsert {
	u.Set(propertyknowledge.FieldSourceQuestionID, v)
	return u
}

// UpdateSourceQuestionID sets the "source_question_id" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsert) UpdateSourceQuestionID() *PropertyKnowledgeUpsert {
	u.SetExcluded(propertyknowledge.FieldSourceQuestionID)
	return u
}

// ClearSourceQuestionID clears the value of the "source_question_id" field.
func (u *PropertyKnowledgeUpsert) ClearSourceQuestionID() *PropertyKnowledgeUpsert {
	u.SetNull(propertyknowledge.FieldSourceQuestionID)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PropertyKnowledgeUpsert) SetUpdatedAt(v time.Time) *PropertyKnowledgeUpsert {
	u.Set(propertyknowledge.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsert) UpdateUpdatedAt() *PropertyKnowledgeUpsert {
	u.SetExcluded(propertyknowledge.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PropertyKnowledge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(propertyknowledge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PropertyKnowledgeUpsertOne) UpdateNewValues() *PropertyKnowledgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(propertyknowledge.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(propertyknowledge.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PropertyKnowledge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PropertyKnowledgeUpsertOne) Ignore() *PropertyKnowledgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PropertyKnowledgeUpsertOne) DoNothing() *PropertyKnowledgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PropertyKnowledgeCreate.OnConflict
// documentation for more info.
func (u *PropertyKnowledgeUpsertOne) Update(set func(*PropertyKnowledgeUpsert)) *PropertyKnowledgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PropertyKnowledgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *PropertyKnowledgeUpsertOne) SetWarehouseID(v string) *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsertOne) UpdateWarehouseID() *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetTopic sets the "topic" field.
func (u *PropertyKnowledgeUpsertOne) SetTopic(v string) *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsertOne) UpdateTopic() *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.UpdateTopic()
	})
}

// SetContent sets the "content" field.
func (u *PropertyKnowledgeUpsertOne) SetContent(v string) *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsertOne) UpdateContent() *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.UpdateContent()
	})
}

// SetSource sets the "source" field.
func (u *PropertyKnowledgeUpsertOne) SetSource(v propertyknowledge.Source) *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsertOne) UpdateSource() *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.UpdateSource()
	})
}

// SetSourceQuestionID sets the "source_question_id" field.
func (u *PropertyKnowledgeUpsertOne) SetSourceQuestionID(v string) *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.SetSourceQuestionID(v)
	})
}

// UpdateSourceQuestionID sets the "source_question_id" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsertOne) UpdateSourceQuestionID() *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.UpdateSourceQuestionID()
	})
}

// ClearSourceQuestionID clears the value of the "source_question_id" field.
func (u *PropertyKnowledgeUpsertOne) ClearSourceQuestionID() *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.ClearSourceQuestionID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PropertyKnowledgeUpsertOne) SetUpdatedAt(v time.Time) *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsertOne) UpdateUpdatedAt() *PropertyKnowledgeUpsertOne {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PropertyKnowledgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PropertyKnowledgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PropertyKnowledgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PropertyKnowledgeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PropertyKnowledgeUpsertOne.ID is not supported by MySQL driver. Use PropertyKnowledgeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PropertyKnowledgeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PropertyKnowledgeCreateBulk is the builder for creating many PropertyKnowledge entities in bulk.
type PropertyKnowledgeCreateBulk struct {
	config
	err      error
	builders []*PropertyKnowledgeCreate
	conflict []sql.ConflictOption
}

// Save creates the PropertyKnowledge entities in the database.
func (_c *PropertyKnowledgeCreateBulk) Save(ctx context.Context) ([]*PropertyKnowledge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PropertyKnowledge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PropertyKnowledgeMutation)
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
func (_c *PropertyKnowledgeCreateBulk) SaveX(ctx context.Context) []*PropertyKnowledge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PropertyKnowledgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PropertyKnowledgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PropertyKnowledge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PropertyKnowledgeUpsert) {
//			SetWarehouseID(v+v).
//		}).
//		Exec(ctx)
func (_c *PropertyKnowledgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *PropertyKnowledgeUpsertBulk {
	_c.conflict = opts
	return &PropertyKnowledgeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PropertyKnowledge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PropertyKnowledgeCreateBulk) OnConflictColumns(columns ...string) *PropertyKnowledgeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PropertyKnowledgeUpsertBulk{
		create: _c,
	}
}

// PropertyKnowledgeUpsertBulk is the builder for "upsert"-ing
// a bulk of PropertyKnowledge nodes.
type PropertyKnowledgeUpsertBulk struct {
	create *PropertyKnowledgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PropertyKnowledge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(propertyknowledge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PropertyKnowledgeUpsertBulk) UpdateNewValues() *PropertyKnowledgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(propertyknowledge.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(propertyknowledge.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PropertyKnowledge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PropertyKnowledgeUpsertBulk) Ignore() *PropertyKnowledgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PropertyKnowledgeUpsertBulk) DoNothing() *PropertyKnowledgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PropertyKnowledgeCreateBulk.OnConflict
// documentation for more info.
func (u *PropertyKnowledgeUpsertBulk) Update(set func(*PropertyKnowledgeUpsert)) *PropertyKnowledgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PropertyKnowledgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *PropertyKnowledgeUpsertBulk) SetWarehouseID(v string) *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsertBulk) UpdateWarehouseID() *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetTopic sets the "topic" field.
func (u *PropertyKnowledgeUpsertBulk) SetTopic(v string) *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.SetTopic(v)
	})
}

// UpdateTopic sets the "topic" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsertBulk) UpdateTopic() *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.UpdateTopic()
	})
}

// SetContent sets the "content" field.
func (u *PropertyKnowledgeUpsertBulk) SetContent(v string) *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsertBulk) UpdateContent() *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.UpdateContent()
	})
}

// SetSource sets the "source" field.
func (u *PropertyKnowledgeUpsertBulk) SetSource(v propertyknowledge.Source) *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsertBulk) UpdateSource() *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.UpdateSource()
	})
}

// SetSourceQuestionID sets the "source_question_id" field.
func (u *PropertyKnowledgeUpsertBulk) SetSourceQuestionID(v string) *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.SetSourceQuestionID(v)
	})
}

// UpdateSourceQuestionID sets the "source_question_id" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsertBulk) UpdateSourceQuestionID() *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.UpdateSourceQuestionID()
	})
}

// ClearSourceQuestionID clears the value of the "source_question_id" field.
func (u *PropertyKnowledgeUpsertBulk) ClearSourceQuestionID() *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.ClearSourceQuestionID()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PropertyKnowledgeUpsertBulk) SetUpdatedAt(v time.Time) *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PropertyKnowledgeUpsertBulk) UpdateUpdatedAt() *PropertyKnowledgeUpsertBulk {
	return u.Update(func(s *PropertyKnowledgeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PropertyKnowledgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PropertyKnowledgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PropertyKnowledgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PropertyKnowledgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
