// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/togglehistory"
)

// ToggleHistoryUpdate is the builder for updating ToggleHistory entities.
type ToggleHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *ToggleHistoryMutation
}

// Where appends a list predicates to the ToggleHistoryUpdate builder.
func (_u *ToggleHistoryUpdate) Where(ps ...predicate.ToggleHistory) *ToggleHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ToggleHistoryMutation object of the builder.
func (_u *ToggleHistoryUpdate) Mutation() *ToggleHistoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToggleHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToggleHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToggleHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToggleHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToggleHistoryUpdate) check() error {
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToggleHistory.warehouse"`)
	}
	return nil
}

func (_u *ToggleHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(togglehistory.Table, togglehistory.Columns, sqlgraph.NewFieldSpec(togglehistory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ToggledByCleared() {
		_spec.ClearField(togglehistory.FieldToggledBy, field.TypeString)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(togglehistory.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{togglehistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToggleHistoryUpdateOne is the builder for updating a single ToggleHistory entity.
type ToggleHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToggleHistoryMutation
}

// Mutation returns the ToggleHistoryMutation object of the builder.
func (_u *ToggleHistoryUpdateOne) Mutation() *ToggleHistoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToggleHistoryUpdate builder.
func (_u *ToggleHistoryUpdateOne) Where(ps ...predicate.ToggleHistory) *ToggleHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToggleHistoryUpdateOne) Select(field string, fields ...string) *ToggleHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToggleHistory entity.
func (_u *ToggleHistoryUpdateOne) Save(ctx context.Context) (*ToggleHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToggleHistoryUpdateOne) SaveX(ctx context.Context) *ToggleHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToggleHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToggleHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToggleHistoryUpdateOne) check() error {
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToggleHistory.warehouse"`)
	}
	return nil
}

func (_u *ToggleHistoryUpdateOne) sqlSave(ctx context.Context) (_node *ToggleHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(togglehistory.Table, togglehistory.Columns, sqlgraph.NewFieldSpec(togglehistory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToggleHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, togglehistory.FieldID)
		for _, f := range fields {
			if !togglehistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != togglehistory.FieldID {
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
	if _u.mutation.ToggledByCleared() {
		_spec.ClearField(togglehistory.FieldToggledBy, field.TypeString)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(togglehistory.FieldReason, field.TypeString)
	}
	_node = &ToggleHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{togglehistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
