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
	"github.com/warehouse-exchange/wex/ent/marketrate"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// MarketRateUpdate is the builder for updating MarketRate entities.
type MarketRateUpdate struct {
	config
	hooks    []Hook
	mutation *MarketRateMutation
}

// Where appends a list predicates to the MarketRateUpdate builder.
func (_u *MarketRateUpdate) Where(ps ...predicate.MarketRate) *MarketRateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetZip sets the "zip" field.
func (_u *MarketRateUpdate) SetZip(v string) *MarketRateUpdate {
	_u.mutation.SetZip(v)
	return _u
}

// SetNillableZip sets the "zip" field if the given value is not nil.
func (_u *MarketRateUpdate) SetNillableZip(v *string) *MarketRateUpdate {
	if v != nil {
		_u.SetZip(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *MarketRateUpdate) SetState(v string) *MarketRateUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *MarketRateUpdate) SetNillableState(v *string) *MarketRateUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *MarketRateUpdate) ClearState() *MarketRateUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetRateLow sets the "rate_low" field.
func (_u *MarketRateUpdate) SetRateLow(v float64) *MarketRateUpdate {
	_u.mutation.ResetRateLow()
	_u.mutation.SetRateLow(v)
	return _u
}

// SetNillableRateLow sets the "rate_low" field if the given value is not nil.
func (_u *MarketRateUpdate) SetNillableRateLow(v *float64) *MarketRateUpdate {
	if v != nil {
		_u.SetRateLow(*v)
	}
	return _u
}

// AddRateLow adds value to the "rate_low" field.
func (_u *MarketRateUpdate) AddRateLow(v float64) *MarketRateUpdate {
	_u.mutation.AddRateLow(v)
	return _u
}

// SetRateHigh sets the "rate_high" field.
func (_u *MarketRateUpdate) SetRateHigh(v float64) *MarketRateUpdate {
	_u.mutation.ResetRateHigh()
	_u.mutation.SetRateHigh(v)
	return _u
}

// SetNillableRateHigh sets the "rate_high" field if the given value is not nil.
func (_u *MarketRateUpdate) SetNillableRateHigh(v *float64) *MarketRateUpdate {
	if v != nil {
		_u.SetRateHigh(*v)
	}
	return _u
}

// AddRateHigh adds value to the "rate_high" field.
func (_u *MarketRateUpdate) AddRateHigh(v float64) *MarketRateUpdate {
	_u.mutation.AddRateHigh(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *MarketRateUpdate) SetSource(v marketrate.Source) *MarketRateUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MarketRateUpdate) SetNillableSource(v *marketrate.Source) *MarketRateUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *MarketRateUpdate) SetFetchedAt(v time.Time) *MarketRateUpdate {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *MarketRateUpdate) SetNillableFetchedAt(v *time.Time) *MarketRateUpdate {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MarketRateUpdate) SetUpdatedAt(v time.Time) *MarketRateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MarketRateMutation object of the builder.
func (_u *MarketRateUpdate) Mutation() *MarketRateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MarketRateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketRateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MarketRateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketRateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MarketRateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := marketrate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MarketRateUpdate) check() error {
	if v, ok := _u.mutation.Zip(); ok {
		if err := marketrate.ZipValidator(v); err != nil {
			return &ValidationError{Name: "zip", err: fmt.Errorf(`ent: validator failed for field "MarketRate.zip": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := marketrate.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "MarketRate.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := marketrate.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MarketRate.source": %w`, err)}
		}
	}
	return nil
}

func (_u *MarketRateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(marketrate.Table, marketrate.Columns, sqlgraph.NewFieldSpec(marketrate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Zip(); ok {
		_spec.SetField(marketrate.FieldZip, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(marketrate.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(marketrate.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.RateLow(); ok {
		_spec.SetField(marketrate.FieldRateLow, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateLow(); ok {
		_spec.AddField(marketrate.FieldRateLow, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RateHigh(); ok {
		_spec.SetField(marketrate.FieldRateHigh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateHigh(); ok {
		_spec.AddField(marketrate.FieldRateHigh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(marketrate.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(marketrate.FieldFetchedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(marketrate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{marketrate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MarketRateUpdateOne is the builder for updating a single MarketRate entity.
type MarketRateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MarketRateMutation
}

// SetZip sets the "zip" field.
func (_u *MarketRateUpdateOne) SetZip(v string) *MarketRateUpdateOne {
	_u.mutation.SetZip(v)
	return _u
}

// SetNillableZip sets the "zip" field if the given value is not nil.
func (_u *MarketRateUpdateOne) SetNillableZip(v *string) *MarketRateUpdateOne {
	if v != nil {
		_u.SetZip(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *MarketRateUpdateOne) SetState(v string) *MarketRateUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *MarketRateUpdateOne) SetNillableState(v *string) *MarketRateUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *MarketRateUpdateOne) ClearState() *MarketRateUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetRateLow sets the "rate_low" field.
func (_u *MarketRateUpdateOne) SetRateLow(v float64) *MarketRateUpdateOne {
	_u.mutation.ResetRateLow()
	_u.mutation.SetRateLow(v)
	return _u
}

// SetNillableRateLow sets the "rate_low" field if the given value is not nil.
func (_u *MarketRateUpdateOne) SetNillableRateLow(v *float64) *MarketRateUpdateOne {
	if v != nil {
		_u.SetRateLow(*v)
	}
	return _u
}

// AddRateLow adds value to the "rate_low" field.
func (_u *MarketRateUpdateOne) AddRateLow(v float64) *MarketRateUpdateOne {
	_u.mutation.AddRateLow(v)
	return _u
}

// SetRateHigh sets the "rate_high" field.
func (_u *MarketRateUpdateOne) SetRateHigh(v float64) *MarketRateUpdateOne {
	_u.mutation.ResetRateHigh()
	_u.mutation.SetRateHigh(v)
	return _u
}

// SetNillableRateHigh sets the "rate_high" field if the given value is not nil.
func (_u *MarketRateUpdateOne) SetNillableRateHigh(v *float64) *MarketRateUpdateOne {
	if v != nil {
		_u.SetRateHigh(*v)
	}
	return _u
}

// AddRateHigh adds value to the "rate_high" field.
func (_u *MarketRateUpdateOne) AddRateHigh(v float64) *MarketRateUpdateOne {
	_u.mutation.AddRateHigh(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *MarketRateUpdateOne) SetSource(v marketrate.Source) *MarketRateUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MarketRateUpdateOne) SetNillableSource(v *marketrate.Source) *MarketRateUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *MarketRateUpdateOne) SetFetchedAt(v time.Time) *MarketRateUpdateOne {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *MarketRateUpdateOne) SetNillableFetchedAt(v *time.Time) *MarketRateUpdateOne {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MarketRateUpdateOne) SetUpdatedAt(v time.Time) *MarketRateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MarketRateMutation object of the builder.
func (_u *MarketRateUpdateOne) Mutation() *MarketRateMutation {
	return _u.mutation
}

// Where appends a list predicates to the MarketRateUpdate builder.
func (_u *MarketRateUpdateOne) Where(ps ...predicate.MarketRate) *MarketRateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MarketRateUpdateOne) Select(field string, fields ...string) *MarketRateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MarketRate entity.
func (_u *MarketRateUpdateOne) Save(ctx context.Context) (*MarketRate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketRateUpdateOne) SaveX(ctx context.Context) *MarketRate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MarketRateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketRateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MarketRateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := marketrate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MarketRateUpdateOne) check() error {
	if v, ok := _u.mutation.Zip(); ok {
		if err := marketrate.ZipValidator(v); err != nil {
			return &ValidationError{Name: "zip", err: fmt.Errorf(`ent: validator failed for field "MarketRate.zip": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := marketrate.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "MarketRate.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := marketrate.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MarketRate.source": %w`, err)}
		}
	}
	return nil
}

func (_u *MarketRateUpdateOne) sqlSave(ctx context.Context) (_node *MarketRate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(marketrate.Table, marketrate.Columns, sqlgraph.NewFieldSpec(marketrate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MarketRate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, marketrate.FieldID)
		for _, f := range fields {
			if !marketrate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != marketrate.FieldID {
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
	if value, ok := _u.mutation.Zip(); ok {
		_spec.SetField(marketrate.FieldZip, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(marketrate.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(marketrate.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.RateLow(); ok {
		_spec.SetField(marketrate.FieldRateLow, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateLow(); ok {
		_spec.AddField(marketrate.FieldRateLow, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RateHigh(); ok {
		_spec.SetField(marketrate.FieldRateHigh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateHigh(); ok {
		_spec.AddField(marketrate.FieldRateHigh, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(marketrate.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(marketrate.FieldFetchedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(marketrate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MarketRate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{marketrate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
