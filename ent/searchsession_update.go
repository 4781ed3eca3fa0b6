// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/searchsession"
)

// SearchSessionUpdate is the builder for updating SearchSession entities.
type SearchSessionUpdate struct {
	config
	hooks    []Hook
	mutation *SearchSessionMutation
}

// Where appends a list predicates to the SearchSessionUpdate builder.
func (_u *SearchSessionUpdate) Where(ps ...predicate.SearchSession) *SearchSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhone sets the "phone" field.
func (_u *SearchSessionUpdate) SetPhone(v string) *SearchSessionUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillablePhone(v *string) *SearchSessionUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *SearchSessionUpdate) ClearPhone() *SearchSessionUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_u *SearchSessionUpdate) SetBuyerNeedID(v string) *SearchSessionUpdate {
	_u.mutation.SetBuyerNeedID(v)
	return _u
}

// SetNillableBuyerNeedID sets the "buyer_need_id" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableBuyerNeedID(v *string) *SearchSessionUpdate {
	if v != nil {
		_u.SetBuyerNeedID(*v)
	}
	return _u
}

// ClearBuyerNeedID clears the value of the "buyer_need_id" field.
func (_u *SearchSessionUpdate) ClearBuyerNeedID() *SearchSessionUpdate {
	_u.mutation.ClearBuyerNeedID()
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *SearchSessionUpdate) SetCriteria(v map[string]interface{}) *SearchSessionUpdate {
	_u.mutation.SetCriteria(v)
	return _u
}

// SetResultMatches sets the "result_matches" field.
func (_u *SearchSessionUpdate) SetResultMatches(v []string) *SearchSessionUpdate {
	_u.mutation.SetResultMatches(v)
	return _u
}

// AppendResultMatches appends value to the "result_matches" field.
func (_u *SearchSessionUpdate) AppendResultMatches(v []string) *SearchSessionUpdate {
	_u.mutation.AppendResultMatches(v)
	return _u
}

// ClearResultMatches clears the value of the "result_matches" field.
func (_u *SearchSessionUpdate) ClearResultMatches() *SearchSessionUpdate {
	_u.mutation.ClearResultMatches()
	return _u
}

// SetResultCount sets the "result_count" field.
func (_u *SearchSessionUpdate) SetResultCount(v int) *SearchSessionUpdate {
	_u.mutation.ResetResultCount()
	_u.mutation.SetResultCount(v)
	return _u
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableResultCount(v *int) *SearchSessionUpdate {
	if v != nil {
		_u.SetResultCount(*v)
	}
	return _u
}

// AddResultCount adds value to the "result_count" field.
func (_u *SearchSessionUpdate) AddResultCount(v int) *SearchSessionUpdate {
	_u.mutation.AddResultCount(v)
	return _u
}

// SetDlaTriggered sets the "dla_triggered" field.
func (_u *SearchSessionUpdate) SetDlaTriggered(v bool) *SearchSessionUpdate {
	_u.mutation.SetDlaTriggered(v)
	return _u
}

// SetNillableDlaTriggered sets the "dla_triggered" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableDlaTriggered(v *bool) *SearchSessionUpdate {
	if v != nil {
		_u.SetDlaTriggered(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SearchSessionUpdate) SetExpiresAt(v time.Time) *SearchSessionUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SearchSessionUpdate) SetNillableExpiresAt(v *time.Time) *SearchSessionUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the SearchSessionMutation object of the builder.
func (_u *SearchSessionUpdate) Mutation() *SearchSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SearchSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SearchSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SearchSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(searchsession.Table, searchsession.Columns, sqlgraph.NewFieldSpec(searchsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(searchsession.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(searchsession.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerNeedID(); ok {
		_spec.SetField(searchsession.FieldBuyerNeedID, field.TypeString, value)
	}
	if _u.mutation.BuyerNeedIDCleared() {
		_spec.ClearField(searchsession.FieldBuyerNeedID, field.TypeString)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(searchsession.FieldCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ResultMatches(); ok {
		_spec.SetField(searchsession.FieldResultMatches, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultMatches(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, searchsession.FieldResultMatches, value)
		})
	}
	if _u.mutation.ResultMatchesCleared() {
		_spec.ClearField(searchsession.FieldResultMatches, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultCount(); ok {
		_spec.SetField(searchsession.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResultCount(); ok {
		_spec.AddField(searchsession.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DlaTriggered(); ok {
		_spec.SetField(searchsession.FieldDlaTriggered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(searchsession.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SearchSessionUpdateOne is the builder for updating a single SearchSession entity.
type SearchSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SearchSessionMutation
}

// SetPhone sets the "phone" field.
func (_u *SearchSessionUpdateOne) SetPhone(v string) *SearchSessionUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillablePhone(v *string) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *SearchSessionUpdateOne) ClearPhone() *SearchSessionUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_u *SearchSessionUpdateOne) SetBuyerNeedID(v string) *SearchSessionUpdateOne {
	_u.mutation.SetBuyerNeedID(v)
	return _u
}

// SetNillableBuyerNeedID sets the "buyer_need_id" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableBuyerNeedID(v *string) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetBuyerNeedID(*v)
	}
	return _u
}

// ClearBuyerNeedID clears the value of the "buyer_need_id" field.
func (_u *SearchSessionUpdateOne) ClearBuyerNeedID() *SearchSessionUpdateOne {
	_u.mutation.ClearBuyerNeedID()
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *SearchSessionUpdateOne) SetCriteria(v map[string]interface{}) *SearchSessionUpdateOne {
	_u.mutation.SetCriteria(v)
	return _u
}

// SetResultMatches sets the "result_matches" field.
func (_u *SearchSessionUpdateOne) SetResultMatches(v []string) *SearchSessionUpdateOne {
	_u.mutation.SetResultMatches(v)
	return _u
}

// AppendResultMatches appends value to the "result_matches" field.
func (_u *SearchSessionUpdateOne) AppendResultMatches(v []string) *SearchSessionUpdateOne {
	_u.mutation.AppendResultMatches(v)
	return _u
}

// ClearResultMatches clears the value of the "result_matches" field.
func (_u *SearchSessionUpdateOne) ClearResultMatches() *SearchSessionUpdateOne {
	_u.mutation.ClearResultMatches()
	return _u
}

// SetResultCount sets the "result_count" field.
func (_u *SearchSessionUpdateOne) SetResultCount(v int) *SearchSessionUpdateOne {
	_u.mutation.ResetResultCount()
	_u.mutation.SetResultCount(v)
	return _u
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableResultCount(v *int) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetResultCount(*v)
	}
	return _u
}

// AddResultCount adds value to the "result_count" field.
func (_u *SearchSessionUpdateOne) AddResultCount(v int) *SearchSessionUpdateOne {
	_u.mutation.AddResultCount(v)
	return _u
}

// SetDlaTriggered sets the "dla_triggered" field.
func (_u *SearchSessionUpdateOne) SetDlaTriggered(v bool) *SearchSessionUpdateOne {
	_u.mutation.SetDlaTriggered(v)
	return _u
}

// SetNillableDlaTriggered sets the "dla_triggered" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableDlaTriggered(v *bool) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetDlaTriggered(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SearchSessionUpdateOne) SetExpiresAt(v time.Time) *SearchSessionUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SearchSessionUpdateOne) SetNillableExpiresAt(v *time.Time) *SearchSessionUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the SearchSessionMutation object of the builder.
func (_u *SearchSessionUpdateOne) Mutation() *SearchSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SearchSessionUpdate builder.
func (_u *SearchSessionUpdateOne) Where(ps ...predicate.SearchSession) *SearchSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SearchSessionUpdateOne) Select(field string, fields ...string) *SearchSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SearchSession entity.
func (_u *SearchSessionUpdateOne) Save(ctx context.Context) (*SearchSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchSessionUpdateOne) SaveX(ctx context.Context) *SearchSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SearchSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SearchSessionUpdateOne) sqlSave(ctx context.Context) (_node *SearchSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(searchsession.Table, searchsession.Columns, sqlgraph.NewFieldSpec(searchsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SearchSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, searchsession.FieldID)
		for _, f := range fields {
			if !searchsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != searchsession.FieldID {
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
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(searchsession.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(searchsession.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerNeedID(); ok {
		_spec.SetField(searchsession.FieldBuyerNeedID, field.TypeString, value)
	}
	if _u.mutation.BuyerNeedIDCleared() {
		_spec.ClearField(searchsession.FieldBuyerNeedID, field.TypeString)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(searchsession.FieldCriteria, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ResultMatches(); ok {
		_spec.SetField(searchsession.FieldResultMatches, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResultMatches(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, searchsession.FieldResultMatches, value)
		})
	}
	if _u.mutation.ResultMatchesCleared() {
		_spec.ClearField(searchsession.FieldResultMatches, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultCount(); ok {
		_spec.SetField(searchsession.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResultCount(); ok {
		_spec.AddField(searchsession.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DlaTriggered(); ok {
		_spec.SetField(searchsession.FieldDlaTriggered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(searchsession.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &SearchSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
