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
	"github.com/warehouse-exchange/wex/ent/searchsession"
)

// SearchSessionCreate is the builder for creating a SearchSession entity.
type SearchSessionCreate struct {
	config
	mutation *SearchSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetToken sets the "token" field.
func (_c *SearchSessionCreate) SetToken(v string) *SearchSessionCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *SearchSessionCreate) SetPhone(v string) *SearchSessionCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillablePhone(v *string) *SearchSessionCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_c *SearchSessionCreate) SetBuyerNeedID(v string) *SearchSessionCreate {
	_c.mutation.SetBuyerNeedID(v)
	return _c
}

// SetNillableBuyerNeedID sets the "buyer_need_id" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableBuyerNeedID(v *string) *SearchSessionCreate {
	if v != nil {
		_c.SetBuyerNeedID(*v)
	}
	return _c
}

// SetCriteria sets the "criteria" field.
func (_c *SearchSessionCreate) SetCriteria(v map[string]interface{}) *SearchSessionCreate {
	_c.mutation.SetCriteria(v)
	return _c
}

// SetResultMatches sets the "result_matches" field.
func (_c *SearchSessionCreate) SetResultMatches(v []string) *SearchSessionCreate {
	_c.mutation.SetResultMatches(v)
	return _c
}

// SetResultCount sets the "result_count" field.
func (_c *SearchSessionCreate) SetResultCount(v int) *SearchSessionCreate {
	_c.mutation.SetResultCount(v)
	return _c
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableResultCount(v *int) *SearchSessionCreate {
	if v != nil {
		_c.SetResultCount(*v)
	}
	return _c
}

// SetDlaTriggered sets the "dla_triggered" field.
func (_c *SearchSessionCreate) SetDlaTriggered(v bool) *SearchSessionCreate {
	_c.mutation.SetDlaTriggered(v)
	return _c
}

// SetNillableDlaTriggered sets the "dla_triggered" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableDlaTriggered(v *bool) *SearchSessionCreate {
	if v != nil {
		_c.SetDlaTriggered(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *SearchSessionCreate) SetExpiresAt(v time.Time) *SearchSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SearchSessionCreate) SetCreatedAt(v time.Time) *SearchSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SearchSessionCreate) SetNillableCreatedAt(v *time.Time) *SearchSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SearchSessionCreate) SetID(v string) *SearchSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SearchSessionMutation object of the builder.
func (_c *SearchSessionCreate) Mutation() *SearchSessionMutation {
	return _c.mutation
}

// Save creates the SearchSession in the database.
func (_c *SearchSessionCreate) Save(ctx context.Context) (*SearchSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SearchSessionCreate) SaveX(ctx context.Context) *SearchSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SearchSessionCreate) defaults() {
	if _, ok := _c.mutation.ResultCount(); !ok {
		v := searchsession.DefaultResultCount
		_c.mutation.SetResultCount(v)
	}
	if _, ok := _c.mutation.DlaTriggered(); !ok {
		v := searchsession.DefaultDlaTriggered
		_c.mutation.SetDlaTriggered(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := searchsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SearchSessionCreate) check() error {
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "SearchSession.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := searchsession.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "SearchSession.token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Criteria(); !ok {
		return &ValidationError{Name: "criteria", err: errors.New(`ent: missing required field "SearchSession.criteria"`)}
	}
	if _, ok := _c.mutation.ResultCount(); !ok {
		return &ValidationError{Name: "result_count", err: errors.New(`ent: missing required field "SearchSession.result_count"`)}
	}
	if _, ok := _c.mutation.DlaTriggered(); !ok {
		return &ValidationError{Name: "dla_triggered", err: errors.New(`ent: missing required field "SearchSession.dla_triggered"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "SearchSession.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SearchSession.created_at"`)}
	}
	return nil
}

func (_c *SearchSessionCreate) sqlSave(ctx context.Context) (*SearchSession, error) {
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
			return nil, fmt.Errorf("unexpected SearchSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SearchSessionCreate) createSpec() (*SearchSession, *sqlgraph.CreateSpec) {
	var (
		_node = &SearchSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(searchsession.Table, sqlgraph.NewFieldSpec(searchsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(searchsession.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(searchsession.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.BuyerNeedID(); ok {
		_spec.SetField(searchsession.FieldBuyerNeedID, field.TypeString, value)
		_node.BuyerNeedID = value
	}
	if value, ok := _c.mutation.Criteria(); ok {
		_spec.SetField(searchsession.FieldCriteria, field.TypeJSON, value)
		_node.Criteria = value
	}
	if value, ok := _c.mutation.ResultMatches(); ok {
		_spec.SetField(searchsession.FieldResultMatches, field.TypeJSON, value)
		_node.ResultMatches = value
	}
	if value, ok := _c.mutation.ResultCount(); ok {
		_spec.SetField(searchsession.FieldResultCount, field.TypeInt, value)
		_node.ResultCount = value
	}
	if value, ok := _c.mutation.DlaTriggered(); ok {
		_spec.SetField(searchsession.FieldDlaTriggered, field.TypeBool, value)
		_node.DlaTriggered = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(searchsession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(searchsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SearchSession.Create().
//		SetToken(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SearchSessionUpsert) {
//			SetToken(v+v).
//		}).
//		Exec(ctx)
func (_c *SearchSessionCreate) OnConflict(opts ...sql.ConflictOption) *SearchSessionUpsertOne {
	_c.conflict = opts
	return &SearchSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SearchSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SearchSessionCreate) OnConflictColumns(columns ...string) *SearchSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SearchSessionUpsertOne{
		create: _c,
	}
}

type (
	// SearchSessionUpsertOne is the builder for "upsert"-ing
	//  one SearchSession node.
	SearchSessionUpsertOne struct {
		create *SearchSessionCreate
	}

	// SearchSessionUpsert is the "OnConflict" setter.
	SearchSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetPhone sets the "phone" field.
func (u *SearchSessionUpsert) SetPhone(v string) *SearchSessionUpsert {
	u.Set(searchsession.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *SearchSessionUpsert) UpdatePhone() *SearchSessionUpsert {
	u.SetExcluded(searchsession.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *SearchSessionUpsert) ClearPhone() *SearchSessionUpsert {
	u.SetNull(searchsession.FieldPhone)
	return u
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (u *SearchSessionUpsert) SetBuyerNeedID(v string) *SearchSessionUpsert {
	u.Set(searchsession.FieldBuyerNeedID, v)
	return u
}

// UpdateBuyerNeedID sets the "buyer_need_id" field to the value that was provided on create.
func (u *SearchSessionUpsert) UpdateBuyerNeedID() *SearchSessionUpsert {
	u.SetExcluded(searchsession.FieldBuyerNeedID)
	return u
}

// ClearBuyerNeedID clears the value of the "buyer_need_id" field.
func (u *SearchSessionUpsert) ClearBuyerNeedID() *SearchSessionUpsert {
	u.SetNull(searchsession.FieldBuyerNeedID)
	return u
}

// SetCriteria sets the "criteria" field.
func (u *SearchSessionUpsert) SetCriteria(v map[string]interface{}) *SearchSessionUpsert {
	u.Set(searchsession.FieldCriteria, v)
	return u
}

// UpdateCriteria sets the "criteria" field to the value that was provided on create.
func (u *SearchSessionUpsert) UpdateCriteria() *SearchSessionUpsert {
	u.SetExcluded(searchsession.FieldCriteria)
	return u
}

// SetResultMatches sets the "result_matches" field.
func (u *SearchSessionUpsert) SetResultMatches(v []string) *SearchSessionUpsert {
	u.Set(searchsession.FieldResultMatches, v)
	return u
}

// UpdateResultMatches sets the "result_matches" field to the value that was provided on create.
func (u *SearchSessionUpsert) UpdateResultMatches() *SearchSessionUpsert {
	u.SetExcluded(searchsession.FieldResultMatches)
	return u
}

// ClearResultMatches clears the value of the "result_matches" field.
func (u *SearchSessionUpsert) ClearResultMatches() *SearchSessionUpsert {
	u.SetNull(searchsession.FieldResultMatches)
	return u
}

// SetResultCount sets the "result_count" field.
func (u *SearchSessionUpsert) SetResultCount(v int) *SearchSessionUpsert {
	u.Set(searchsession.FieldResultCount, v)
	return u
}

// UpdateResultCount sets the "result_count" field to the value that was provided on create.
func (u *SearchSessionUpsert) UpdateResultCount() *SearchSessionUpsert {
	u.SetExcluded(searchsession.FieldResultCount)
	return u
}

// AddResultCount adds v to the "result_count" field.
func (u *SearchSessionUpsert) AddResultCount(v int) *SearchSessionUpsert {
	u.Add(searchsession.FieldResultCount, v)
	return u
}

// SetDlaTriggered sets the "dla_triggered" field.
func (u *SearchSessionUpsert) SetDlaTriggered(v bool) *SearchSessionUpsert {
	u.Set(searchsession.FieldDlaTriggered, v)
	return u
}

// UpdateDlaTriggered sets the "dla_triggered" field to the value that was provided on create.
func (u *SearchSessionUpsert) UpdateDlaTriggered() *SearchSessionUpsert {
	u.SetExcluded(searchsession.FieldDlaTriggered)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *SearchSessionUpsert) SetExpiresAt(v time.Time) *SearchSessionUpsert {
	u.Set(searchsession.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *SearchSessionUpsert) UpdateExpiresAt() *SearchSessionUpsert {
	u.SetExcluded(searchsession.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SearchSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(searchsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SearchSessionUpsertOne) UpdateNewValues() *SearchSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(searchsession.FieldID)
		}
		if _, exists := u.create.mutation.Token(); exists {
			s.SetIgnore(searchsession.FieldToken)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(searchsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SearchSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SearchSessionUpsertOne) Ignore() *SearchSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SearchSessionUpsertOne) DoNothing() *SearchSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SearchSessionCreate.OnConflict
// documentation for more info.
func (u *SearchSessionUpsertOne) Update(set func(*SearchSessionUpsert)) *SearchSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SearchSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhone sets the "phone" field.
func (u *SearchSessionUpsertOne) SetPhone(v string) *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *SearchSessionUpsertOne) UpdatePhone() *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *SearchSessionUpsertOne) ClearPhone() *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.ClearPhone()
	})
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (u *SearchSessionUpsertOne) SetBuyerNeedID(v string) *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetBuyerNeedID(v)
	})
}

// UpdateBuyerNeedID sets the "buyer_need_id" field to the value that was provided on create.
func (u *SearchSessionUpsertOne) UpdateBuyerNeedID() *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdateBuyerNeedID()
	})
}

// ClearBuyerNeedID clears the value of the "buyer_need_id" field.
func (u *SearchSessionUpsertOne) ClearBuyerNeedID() *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.ClearBuyerNeedID()
	})
}

// SetCriteria sets the "criteria" field.
func (u *SearchSessionUpsertOne) SetCriteria(v map[string]interface{}) *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetCriteria(v)
	})
}

// UpdateCriteria sets the "criteria" field to the value that was provided on create.
func (u *SearchSessionUpsertOne) UpdateCriteria() *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdateCriteria()
	})
}

// SetResultMatches sets the "result_matches" field.
func (u *SearchSessionUpsertOne) SetResultMatches(v []string) *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetResultMatches(v)
	})
}

// UpdateResultMatches sets the "result_matches" field to the value that was provided on create.
func (u *SearchSessionUpsertOne) UpdateResultMatches() *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdateResultMatches()
	})
}

// ClearResultMatches clears the value of the "result_matches" field.
func (u *SearchSessionUpsertOne) ClearResultMatches() *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.ClearResultMatches()
	})
}

// SetResultCount sets the "result_count" field.
func (u *SearchSessionUpsertOne) SetResultCount(v int) *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetResultCount(v)
	})
}

// AddResultCount adds v to the "result_count" field.
func (u *SearchSessionUpsertOne) AddResultCount(v int) *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.AddResultCount(v)
	})
}

// UpdateResultCount sets the "result_count" field to the value that was provided on create.
func (u *SearchSessionUpsertOne) UpdateResultCount() *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdateResultCount()
	})
}

// SetDlaTriggered sets the "dla_triggered" field.
func (u *SearchSessionUpsertOne) SetDlaTriggered(v bool) *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetDlaTriggered(v)
	})
}

// UpdateDlaTriggered sets the "dla_triggered" field to the value that was provided on create.
func (u *SearchSessionUpsertOne) UpdateDlaTriggered() *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdateDlaTriggered()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *SearchSessionUpsertOne) SetExpiresAt(v time.Time) *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *SearchSessionUpsertOne) UpdateExpiresAt() *SearchSessionUpsertOne {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *SearchSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SearchSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SearchSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SearchSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SearchSessionUpsertOne.ID is not supported by MySQL driver. Use SearchSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SearchSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SearchSessionCreateBulk is the builder for creating many SearchSession entities in bulk.
type SearchSessionCreateBulk struct {
	config
	err      error
	builders []*SearchSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the SearchSession entities in the database.
func (_c *SearchSessionCreateBulk) Save(ctx context.Context) ([]*SearchSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SearchSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SearchSessionMutation)
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
func (_c *SearchSessionCreateBulk) SaveX(ctx context.Context) []*SearchSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SearchSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SearchSessionUpsert) {
//			SetToken(v+v).
//		}).
//		Exec(ctx)
func (_c *SearchSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SearchSessionUpsertBulk {
	_c.conflict = opts
	return &SearchSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SearchSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SearchSessionCreateBulk) OnConflictColumns(columns ...string) *SearchSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SearchSessionUpsertBulk{
		create: _c,
	}
}

// SearchSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of SearchSession nodes.
type SearchSessionUpsertBulk struct {
	create *SearchSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SearchSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(searchsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SearchSessionUpsertBulk) UpdateNewValues() *SearchSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(searchsession.FieldID)
			}
			if _, exists := b.mutation.Token(); exists {
				s.SetIgnore(searchsession.FieldToken)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(searchsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SearchSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SearchSessionUpsertBulk) Ignore() *SearchSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SearchSessionUpsertBulk) DoNothing() *SearchSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SearchSessionCreateBulk.OnConflict
// documentation for more info.
func (u *SearchSessionUpsertBulk) Update(set func(*SearchSessionUpsert)) *SearchSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SearchSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhone sets the "phone" field.
func (u *SearchSessionUpsertBulk) SetPhone(v string) *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *SearchSessionUpsertBulk) UpdatePhone() *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *SearchSessionUpsertBulk) ClearPhone() *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.ClearPhone()
	})
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (u *SearchSessionUpsertBulk) SetBuyerNeedID(v string) *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetBuyerNeedID(v)
	})
}

// UpdateBuyerNeedID sets the "buyer_need_id" field to the value that was provided on create.
func (u *SearchSessionUpsertBulk) UpdateBuyerNeedID() *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdateBuyerNeedID()
	})
}

// ClearBuyerNeedID clears the value of the "buyer_need_id" field.
func (u *SearchSessionUpsertBulk) ClearBuyerNeedID() *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.ClearBuyerNeedID()
	})
}

// SetCriteria sets the "criteria" field.
func (u *SearchSessionUpsertBulk) SetCriteria(v map[string]interface{}) *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetCriteria(v)
	})
}

// UpdateCriteria sets the "criteria" field to the value that was provided on create.
func (u *SearchSessionUpsertBulk) UpdateCriteria() *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdateCriteria()
	})
}

// SetResultMatches sets the "result_matches" field.
func (u *SearchSessionUpsertBulk) SetResultMatches(v []string) *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetResultMatches(v)
	})
}

// UpdateResultMatches sets the "result_matches" field to the value that was provided on create.
func (u *SearchSessionUpsertBulk) UpdateResultMatches() *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdateResultMatches()
	})
}

// ClearResultMatches clears the value of the "result_matches" field.
func (u *SearchSessionUpsertBulk) ClearResultMatches() *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.ClearResultMatches()
	})
}

// SetResultCount sets the "result_count" field.
func (u *SearchSessionUpsertBulk) SetResultCount(v int) *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetResultCount(v)
	})
}

// AddResultCount adds v to the "result_count" field.
func (u *SearchSessionUpsertBulk) AddResultCount(v int) *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.AddResultCount(v)
	})
}

// UpdateResultCount sets the "result_count" field to the value that was provided on create.
func (u *SearchSessionUpsertBulk) UpdateResultCount() *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdateResultCount()
	})
}

// SetDlaTriggered sets the "dla_triggered" field.
func (u *SearchSessionUpsertBulk) SetDlaTriggered(v bool) *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetDlaTriggered(v)
	})
}

// UpdateDlaTriggered sets the "dla_triggered" field to the value that was provided on create.
func (u *SearchSessionUpsertBulk) UpdateDlaTriggered() *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdateDlaTriggered()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *SearchSessionUpsertBulk) SetExpiresAt(v time.Time) *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *SearchSessionUpsertBulk) UpdateExpiresAt() *SearchSessionUpsertBulk {
	return u.Update(func(s *SearchSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *SearchSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SearchSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SearchSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SearchSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
