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
	"github.com/warehouse-exchange/wex/ent/marketrate"
)

// MarketRateCreate is the builder for creating a MarketRate entity.
type MarketRateCreate struct {
	config
	mutation *MarketRateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetZip sets the "zip" field.
func (_c *MarketRateCreate) SetZip(v string) *MarketRateCreate {
	_c.mutation.SetZip(v)
	return _c
}

// SetState sets the "state" field.
func (_c *MarketRateCreate) SetState(v string) *MarketRateCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *MarketRateCreate) SetNillableState(v *string) *MarketRateCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetRateLow sets the "rate_low" field.
func (_c *MarketRateCreate) SetRateLow(v float64) *MarketRateCreate {
	_c.mutation.SetRateLow(v)
	return _c
}

// SetRateHigh sets the "rate_high" field.
func (_c *MarketRateCreate) SetRateHigh(v float64) *MarketRateCreate {
	_c.mutation.SetRateHigh(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *MarketRateCreate) SetSource(v marketrate.Source) *MarketRateCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *MarketRateCreate) SetNillableSource(v *marketrate.Source) *MarketRateCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetFetchedAt sets the "fetched_at" field.
func (_c *MarketRateCreate) SetFetchedAt(v time.Time) *MarketRateCreate {
	_c.mutation.SetFetchedAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MarketRateCreate) SetCreatedAt(v time.Time) *MarketRateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MarketRateCreate) SetNillableCreatedAt(v *time.Time) *MarketRateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MarketRateCreate) SetUpdatedAt(v time.Time) *MarketRateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MarketRateCreate) SetNillableUpdatedAt(v *time.Time) *MarketRateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MarketRateCreate) SetID(v string) *MarketRateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MarketRateMutation object of the builder.
func (_c *MarketRateCreate) Mutation() *MarketRateMutation {
	return _c.mutation
}

// Save creates the MarketRate in the database.
func (_c *MarketRateCreate) Save(ctx context.Context) (*MarketRate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MarketRateCreate) SaveX(ctx context.Context) *MarketRate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketRateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketRateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MarketRateCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := marketrate.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := marketrate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := marketrate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MarketRateCreate) check() error {
	if _, ok := _c.mutation.Zip(); !ok {
		return &ValidationError{Name: "zip", err: errors.New(`ent: missing required field "MarketRate.zip"`)}
	}
	if v, ok := _c.mutation.Zip(); ok {
		if err := marketrate.ZipValidator(v); err != nil {
			return &ValidationError{Name: "zip", err: fmt.Errorf(`ent: validator failed for field "MarketRate.zip": %w`, err)}
		}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := marketrate.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "MarketRate.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RateLow(); !ok {
		return &ValidationError{Name: "rate_low", err: errors.New(`ent: missing required field "MarketRate.rate_low"`)}
	}
	if _, ok := _c.mutation.RateHigh(); !ok {
		return &ValidationError{Name: "rate_high", err: errors.New(`ent: missing required field "MarketRate.rate_high"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "MarketRate.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := marketrate.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MarketRate.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "MarketRate.fetched_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MarketRate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MarketRate.updated_at"`)}
	}
	return nil
}

func (_c *MarketRateCreate) sqlSave(ctx context.Context) (*MarketRate, error) {
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
			return nil, fmt.Errorf("unexpected MarketRate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MarketRateCreate) createSpec() (*MarketRate, *sqlgraph.CreateSpec) {
	var (
		_node = &MarketRate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(marketrate.Table, sqlgraph.NewFieldSpec(marketrate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Zip(); ok {
		_spec.SetField(marketrate.FieldZip, field.TypeString, value)
		_node.Zip = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(marketrate.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.RateLow(); ok {
		_spec.SetField(marketrate.FieldRateLow, field.TypeFloat64, value)
		_node.RateLow = value
	}
	if value, ok := _c.mutation.RateHigh(); ok {
		_spec.SetField(marketrate.FieldRateHigh, field.TypeFloat64, value)
		_node.RateHigh = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(marketrate.FieldSource, field.TypeEnum, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.FetchedAt(); ok {
		_spec.SetField(marketrate.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(marketrate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(marketrate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MarketRate.Create().
//		SetZip(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MarketRateUpsert) {
//			SetZip(v+v).
//		}).
//		Exec(ctx)
func (_c *MarketRateCreate) OnConflict(opts ...sql.ConflictOption) *MarketRateUpsertOne {
	_c.conflict = opts
	return &MarketRateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MarketRate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MarketRateCreate) OnConflictColumns(columns ...string) *MarketRateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MarketRateUpsertOne{
		create: _c,
	}
}

type (
	// MarketRateUpsertOne is the builder for "upsert"-ing
	//  one MarketRate node.
	MarketRateUpsertOne struct {
		create *MarketRateCreate
	}

	// MarketRateUpsert is the "OnConflict" setter.
	MarketRateUpsert struct {
		*sql.UpdateSet
	}
)

// SetZip sets the "zip" field.
func (u *MarketRateUpsert) SetZip(v string) *MarketRateUpsert {
	u.Set(marketrate.FieldZip, v)
	return u
}

// UpdateZip sets the "zip" field to the value that was provided on create.
func (u *MarketRateUpsert) UpdateZip() *MarketRateUpsert {
	u.SetExcluded(marketrate.FieldZip)
	return u
}

// SetState sets the "state" field.
func (u *MarketRateUpsert) SetState(v string) *MarketRateUpsert {
	u.Set(marketrate.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *MarketRateUpsert) UpdateState() *MarketRateUpsert {
	u.SetExcluded(marketrate.FieldState)
	return u
}

// ClearState clears the value of the "state" field.
func (u *MarketRateUpsert) ClearState() *MarketRateUpsert {
	u.SetNull(marketrate.FieldState)
	return u
}

// SetRateLow sets the "rate_low" field.
func (u *MarketRateUpsert) SetRateLow(v float64) *MarketRateUpsert {
	u.Set(marketrate.FieldRateLow, v)
	return u
}

// UpdateRateLow sets the "rate_low" field to the value that was provided on create.
func (u *MarketRateUpsert) UpdateRateLow() *MarketRateUpsert {
	u.SetExcluded(marketrate.FieldRateLow)
	return u
}

// AddRateLow adds v to the "rate_low" field.
func (u *MarketRateUpsert) AddRateLow(v float64) *MarketRateUpsert {
	u.Add(marketrate.FieldRateLow, v)
	return u
}

// SetRateHigh sets the "rate_high" field.
func (u *MarketRateUpsert) SetRateHigh(v float64) *MarketRateUpsert {
	u.Set(marketrate.FieldRateHigh, v)
	return u
}

// UpdateRateHigh sets the "rate_high" field to the value that was provided on create.
func (u *MarketRateUpsert) UpdateRateHigh() *MarketRateUpsert {
	u.SetExcluded(marketrate.FieldRateHigh)
	return u
}

// AddRateHigh adds v to the "rate_high" field.
func (u *MarketRateUpsert) AddRateHigh(v float64) *MarketRateUpsert {
	u.Add(marketrate.FieldRateHigh, v)
	return u
}

// SetSource sets the "source" field.
func (u *MarketRateUpsert) SetSource(v marketrate.Source) *MarketRateUpsert {
	u.Set(marketrate.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *MarketRateUpsert) UpdateSource() *MarketRateUpsert {
	u.SetExcluded(marketrate.FieldSource)
	return u
}

// SetFetchedAt sets the "fetched_at" field.
func (u *MarketRateUpsert) SetFetchedAt(v time.Time) *MarketRateUpsert {
	u.Set(marketrate.FieldFetchedAt, v)
	return u
}

// UpdateFetchedAt sets the "fetched_at" field to the value that was provided on create.
func (u *MarketRateUpsert) UpdateFetchedAt() *MarketRateUpsert {
	u.SetExcluded(marketrate.FieldFetchedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MarketRateUpsert) SetUpdatedAt(v time.Time) *MarketRateUpsert {
	u.Set(marketrate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MarketRateUpsert) UpdateUpdatedAt() *MarketRateUpsert {
	u.SetExcluded(marketrate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MarketRate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(marketrate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MarketRateUpsertOne) UpdateNewValues() *MarketRateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(marketrate.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(marketrate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MarketRate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MarketRateUpsertOne) Ignore() *MarketRateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MarketRateUpsertOne) DoNothing() *MarketRateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MarketRateCreate.OnConflict
// documentation for more info.
func (u *MarketRateUpsertOne) Update(set func(*MarketRateUpsert)) *MarketRateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MarketRateUpsert{UpdateSet: update})
	}))
	return u
}

// SetZip sets the "zip" field.
func (u *MarketRateUpsertOne) SetZip(v string) *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetZip(v)
	})
}

// UpdateZip sets the "zip" field to the value that was provided on create.
func (u *MarketRateUpsertOne) UpdateZip() *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateZip()
	})
}

// SetState sets the "state" field.
func (u *MarketRateUpsertOne) SetState(v string) *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *MarketRateUpsertOne) UpdateState() *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *MarketRateUpsertOne) ClearState() *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.ClearState()
	})
}

// SetRateLow sets the "rate_low" field.
func (u *MarketRateUpsertOne) SetRateLow(v float64) *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetRateLow(v)
	})
}

// AddRateLow adds v to the "rate_low" field.
func (u *MarketRateUpsertOne) AddRateLow(v float64) *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.AddRateLow(v)
	})
}

// UpdateRateLow sets the "rate_low" field to the value that was provided on create.
func (u *MarketRateUpsertOne) UpdateRateLow() *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateRateLow()
	})
}

// SetRateHigh sets the "rate_high" field.
func (u *MarketRateUpsertOne) SetRateHigh(v float64) *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetRateHigh(v)
	})
}

// AddRateHigh adds v to the "rate_high" field.
func (u *MarketRateUpsertOne) AddRateHigh(v float64) *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.AddRateHigh(v)
	})
}

// UpdateRateHigh sets the "rate_high" field to the value that was provided on create.
func (u *MarketRateUpsertOne) UpdateRateHigh() *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateRateHigh()
	})
}

// SetSource sets the "source" field.
func (u *MarketRateUpsertOne) SetSource(v marketrate.Source) *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *MarketRateUpsertOne) UpdateSource() *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateSource()
	})
}

// SetFetchedAt sets the "fetched_at" field.
func (u *MarketRateUpsertOne) SetFetchedAt(v time.Time) *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetFetchedAt(v)
	})
}

// UpdateFetchedAt sets the "fetched_at" field to the value that was provided on create.
func (u *MarketRateUpsertOne) UpdateFetchedAt() *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateFetchedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MarketRateUpsertOne) SetUpdatedAt(v time.Time) *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MarketRateUpsertOne) UpdateUpdatedAt() *MarketRateUpsertOne {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MarketRateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MarketRateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MarketRateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MarketRateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MarketRateUpsertOne.ID is not supported by MySQL driver. Use MarketRateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MarketRateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MarketRateCreateBulk is the builder for creating many MarketRate entities in bulk.
type MarketRateCreateBulk struct {
	config
	err      error
	builders []*MarketRateCreate
	conflict []sql.ConflictOption
}

// Save creates the MarketRate entities in the database.
func (_c *MarketRateCreateBulk) Save(ctx context.Context) ([]*MarketRate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MarketRate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MarketRateMutation)
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
func (_c *MarketRateCreateBulk) SaveX(ctx context.Context) []*MarketRate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketRateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketRateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MarketRate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MarketRateUpsert) {
//			SetZip(v+v).
//		}).
//		Exec(ctx)
func (_c *MarketRateCreateBulk) OnConflict(opts ...sql.ConflictOption) *MarketRateUpsertBulk {
	_c.conflict = opts
	return &MarketRateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MarketRate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MarketRateCreateBulk) OnConflictColumns(columns ...string) *MarketRateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MarketRateUpsertBulk{
		create: _c,
	}
}

// MarketRateUpsertBulk is the builder for "upsert"-ing
// a bulk of MarketRate nodes.
type MarketRateUpsertBulk struct {
	create *MarketRateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MarketRate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(marketrate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MarketRateUpsertBulk) UpdateNewValues() *MarketRateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(marketrate.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(marketrate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MarketRate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MarketRateUpsertBulk) Ignore() *MarketRateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MarketRateUpsertBulk) DoNothing() *MarketRateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MarketRateCreateBulk.OnConflict
// documentation for more info.
func (u *MarketRateUpsertBulk) Update(set func(*MarketRateUpsert)) *MarketRateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MarketRateUpsert{UpdateSet: update})
	}))
	return u
}

// SetZip sets the "zip" field.
func (u *MarketRateUpsertBulk) SetZip(v string) *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetZip(v)
	})
}

// UpdateZip sets the "zip" field to the value that was provided on create.
func (u *MarketRateUpsertBulk) UpdateZip() *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateZip()
	})
}

// SetState sets the "state" field.
func (u *MarketRateUpsertBulk) SetState(v string) *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *MarketRateUpsertBulk) UpdateState() *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateState()
	})
}

// ClearState clears the value of the "state" field.
func (u *MarketRateUpsertBulk) ClearState() *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.ClearState()
	})
}

// SetRateLow sets the "rate_low" field.
func (u *MarketRateUpsertBulk) SetRateLow(v float64) *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetRateLow(v)
	})
}

// AddRateLow adds v to the "rate_low" field.
func (u *MarketRateUpsertBulk) AddRateLow(v float64) *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.AddRateLow(v)
	})
}

// UpdateRateLow sets the "rate_low" field to the value that was provided on create.
func (u *MarketRateUpsertBulk) UpdateRateLow() *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateRateLow()
	})
}

// SetRateHigh sets the "rate_high" field.
func (u *MarketRateUpsertBulk) SetRateHigh(v float64) *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetRateHigh(v)
	})
}

// AddRateHigh adds v to the "rate_high" field.
func (u *MarketRateUpsertBulk) AddRateHigh(v float64) *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.AddRateHigh(v)
	})
}

// UpdateRateHigh sets the "rate_high" field to the value that was provided on create.
func (u *MarketRateUpsertBulk) UpdateRateHigh() *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateRateHigh()
	})
}

// SetSource sets the "source" field.
func (u *MarketRateUpsertBulk) SetSource(v marketrate.Source) *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *MarketRateUpsertBulk) UpdateSource() *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateSource()
	})
}

// SetFetchedAt sets the "fetched_at" field.
func (u *MarketRateUpsertBulk) SetFetchedAt(v time.Time) *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetFetchedAt(v)
	})
}

// UpdateFetchedAt sets the "fetched_at" field to the value that was provided on create.
func (u *MarketRateUpsertBulk) UpdateFetchedAt() *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateFetchedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MarketRateUpsertBulk) SetUpdatedAt(v time.Time) *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MarketRateUpsertBulk) UpdateUpdatedAt() *MarketRateUpsertBulk {
	return u.Update(func(s *MarketRateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MarketRateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MarketRateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MarketRateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MarketRateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
