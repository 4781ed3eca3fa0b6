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
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
)

// EngagementEventCreate is the builder for creating a EngagementEvent entity.
type EngagementEventCreate struct {
	config
	mutation *EngagementEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEngagementID sets the "engagement_id" field.
func (_c *EngagementEventCreate) SetEngagementID(v string) *EngagementEventCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *EngagementEventCreate) SetEventType(v string) *EngagementEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetActorRole sets the "actor_role" field.
func (_c *EngagementEventCreate) SetActorRole(v engagementevent.ActorRole) *EngagementEventCreate {
	_c.mutation.SetActorRole(v)
	return _c
}

// SetActorID sets the "actor_id" field.
func (_c *EngagementEventCreate) SetActorID(v string) *EngagementEventCreate {
	_c.mutation.SetActorID(v)
	return _c
}

// SetNillableActorID sets the "actor_id" field if the given value is not nil.
func (_c *EngagementEventCreate) SetNillableActorID(v *string) *EngagementEventCreate {
	if v != nil {
		_c.SetActorID(*v)
	}
	return _c
}

// SetFromStatus sets the "from_status" field.
func (_c *EngagementEventCreate) SetFromStatus(v string) *EngagementEventCreate {
	_c.mutation.SetFromStatus(v)
	return _c
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (_c *EngagementEventCreate) SetNillableFromStatus(v *string) *EngagementEventCreate {
	if v != nil {
		_c.SetFromStatus(*v)
	}
	return _c
}

// SetToStatus sets the "to_status" field.
func (_c *EngagementEventCreate) SetToStatus(v string) *EngagementEventCreate {
	_c.mutation.SetToStatus(v)
	return _c
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (_c *EngagementEventCreate) SetNillableToStatus(v *string) *EngagementEventCreate {
	if v != nil {
		_c.SetToStatus(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *EngagementEventCreate) SetMetadata(v map[string]interface{}) *EngagementEventCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EngagementEventCreate) SetCreatedAt(v time.Time) *EngagementEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EngagementEventCreate) SetNillableCreatedAt(v *time.Time) *EngagementEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EngagementEventCreate) SetID(v string) *EngagementEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEngagement sets the "engagement" edge to the Engagement entity.
func (_c *EngagementEventCreate) SetEngagement(v *Engagement) *EngagementEventCreate {
	return _c.SetEngagementID(v.ID)
}

// Mutation returns the EngagementEventMutation object of the builder.
func (_c *EngagementEventCreate) Mutation() *EngagementEventMutation {
	return _c.mutation
}

// Save creates the EngagementEvent in the database.
func (_c *EngagementEventCreate) Save(ctx context.Context) (*EngagementEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EngagementEventCreate) SaveX(ctx context.Context) *EngagementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EngagementEventCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := engagementevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EngagementEventCreate) check() error {
	if _, ok := _c.mutation.EngagementID(); !ok {
		return &ValidationError{Name: "engagement_id", err: errors.New(`ent: missing required field "EngagementEvent.engagement_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "EngagementEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := engagementevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "EngagementEvent.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActorRole(); !ok {
		return &ValidationError{Name: "actor_role", err: errors.New(`ent: missing required field "EngagementEvent.actor_role"`)}
	}
	if v, ok := _c.mutation.ActorRole(); ok {
		if err := engagementevent.ActorRoleValidator(v); err != nil {
			return &ValidationError{Name: "actor_role", err: fmt.Errorf(`ent: validator failed for field "EngagementEvent.actor_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EngagementEvent.created_at"`)}
	}
	if len(_c.mutation.EngagementIDs()) == 0 {
		return &ValidationError{Name: "engagement", err: errors.New(`ent: missing required edge "EngagementEvent.engagement"`)}
	}
	return nil
}

func (_c *EngagementEventCreate) sqlSave(ctx context.Context) (*EngagementEvent, error) {
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
			return nil, fmt.Errorf("unexpected EngagementEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EngagementEventCreate) createSpec() (*EngagementEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EngagementEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(engagementevent.Table, sqlgraph.NewFieldSpec(engagementevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(engagementevent.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ActorRole(); ok {
		_spec.SetField(engagementevent.FieldActorRole, field.TypeEnum, value)
		_node.ActorRole = value
	}
	if value, ok := _c.mutation.ActorID(); ok {
		_spec.SetField(engagementevent.FieldActorID, field.TypeString, value)
		_node.ActorID = value
	}
	if value, ok := _c.mutation.FromStatus(); ok {
		_spec.SetField(engagementevent.FieldFromStatus, field.TypeString, value)
		_node.FromStatus = value
	}
	if value, ok := _c.mutation.ToStatus(); ok {
		_spec.SetField(engagementevent.FieldToStatus, field.TypeString, value)
		_node.ToStatus = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(engagementevent.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(engagementevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EngagementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   engagementevent.EngagementTable,
			Columns: []string{engagementevent.EngagementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EngagementID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EngagementEvent.Create().
//		SetEngagementID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EngagementEventUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *EngagementEventCreate) OnConflict(opts ...sql.ConflictOption) *EngagementEventUpsertOne {
	_c.conflict = opts
	return &EngagementEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EngagementEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EngagementEventCreate) OnConflictColumns(columns ...string) *EngagementEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EngagementEventUpsertOne{
		create: _c,
	}
}

type (
	// EngagementEventUpsertOne is the builder for "upsert"-ing
	//  one EngagementEvent node.
	EngagementEventUpsertOne struct {
		create *EngagementEventCreate
	}

	// EngagementEventUpsert is the "OnConflict" setter.
	EngagementEventUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EngagementEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(engagementevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EngagementEventUpsertOne) UpdateNewValues() *EngagementEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(engagementevent.FieldID)
		}
		if _, exists := u.create.mutation.EngagementID(); exists {
			s.SetIgnore(engagementevent.FieldEngagementID)
		}
		if _, exists := u.create.mutation.EventType(); exists {
			s.SetIgnore(engagementevent.FieldEventType)
		}
		if _, exists := u.create.mutation.ActorRole(); exists {
			s.SetIgnore(engagementevent.FieldActorRole)
		}
		if _, exists := u.create.mutation.ActorID(); exists {
			s.SetIgnore(engagementevent.FieldActorID)
		}
		if _, exists := u.create.mutation.FromStatus(); exists {
			s.SetIgnore(engagementevent.FieldFromStatus)
		}
		if _, exists := u.create.mutation.ToStatus(); exists {
			s.SetIgnore(engagementevent.FieldToStatus)
		}
		if _, exists := u.create.mutation.Metadata(); exists {
			s.SetIgnore(engagementevent.FieldMetadata)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(engagementevent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EngagementEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EngagementEventUpsertOne) Ignore() *EngagementEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EngagementEventUpsertOne) DoNothing() *EngagementEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EngagementEventCreate.OnConflict
// documentation for more info.
func (u *EngagementEventUpsertOne) Update(set func(*EngagementEventUpsert)) *EngagementEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EngagementEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *EngagementEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EngagementEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EngagementEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EngagementEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EngagementEventUpsertOne.ID is not supported by MySQL driver. Use EngagementEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EngagementEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EngagementEventCreateBulk is the builder for creating many EngagementEvent entities in bulk.
type EngagementEventCreateBulk struct {
	config
	err      error
	builders []*EngagementEventCreate
	conflict []sql.ConflictOption
}

// Save creates the EngagementEvent entities in the database.
func (_c *EngagementEventCreateBulk) Save(ctx context.Context) ([]*EngagementEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EngagementEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EngagementEventMutation)
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
func (_c *EngagementEventCreateBulk) SaveX(ctx context.Context) []*EngagementEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EngagementEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EngagementEventUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *EngagementEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EngagementEventUpsertBulk {
	_c.conflict = opts
	return &EngagementEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EngagementEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EngagementEventCreateBulk) OnConflictColumns(columns ...string) *EngagementEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EngagementEventUpsertBulk{
		create: _c,
	}
}

// EngagementEventUpsertBulk is the builder for "upsert"-ing
// a bulk of EngagementEvent nodes.
type EngagementEventUpsertBulk struct {
	create *EngagementEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EngagementEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(engagementevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EngagementEventUpsertBulk) UpdateNewValues() *EngagementEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(engagementevent.FieldID)
			}
			if _, exists := b.mutation.EngagementID(); exists {
				s.SetIgnore(engagementevent.FieldEngagementID)
			}
			if _, exists := b.mutation.EventType(); exists {
				s.SetIgnore(engagementevent.FieldEventType)
			}
			if _, exists := b.mutation.ActorRole(); exists {
				s.SetIgnore(engagementevent.FieldActorRole)
			}
			if _, exists := b.mutation.ActorID(); exists {
				s.SetIgnore(engagementevent.FieldActorID)
			}
			if _, exists := b.mutation.FromStatus(); exists {
				s.SetIgnore(engagementevent.FieldFromStatus)
			}
			if _, exists := b.mutation.ToStatus(); exists {
				s.SetIgnore(engagementevent.FieldToStatus)
			}
			if _, exists := b.mutation.Metadata(); exists {
				s.SetIgnore(engagementevent.FieldMetadata)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(engagementevent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EngagementEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EngagementEventUpsertBulk) Ignore() *EngagementEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EngagementEventUpsertBulk) DoNothing() *EngagementEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EngagementEventCreateBulk.OnConflict
// documentation for more info.
func (u *EngagementEventUpsertBulk) Update(set func(*EngagementEventUpsert)) *EngagementEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EngagementEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *EngagementEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EngagementEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EngagementEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EngagementEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
