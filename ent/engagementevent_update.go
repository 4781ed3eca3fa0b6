// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// EngagementEventUpdate is the builder for updating EngagementEvent entities.
type EngagementEventUpdate struct {
	config
	hooks    []Hook
	mutation *EngagementEventMutation
}

// Where appends a list predicates to the EngagementEventUpdate builder.
func (_u *EngagementEventUpdate) Where(ps ...predicate.EngagementEvent) *EngagementEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the EngagementEventMutation object of the builder.
func (_u *EngagementEventUpdate) Mutation() *EngagementEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EngagementEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EngagementEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementEventUpdate) check() error {
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EngagementEvent.engagement"`)
	}
	return nil
}

func (_u *EngagementEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagementevent.Table, engagementevent.Columns, sqlgraph.NewFieldSpec(engagementevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(engagementevent.FieldActorID, field.TypeString)
	}
	if _u.mutation.FromStatusCleared() {
		_spec.ClearField(engagementevent.FieldFromStatus, field.TypeString)
	}
	if _u.mutation.ToStatusCleared() {
		_spec.ClearField(engagementevent.FieldToStatus, field.TypeString)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(engagementevent.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EngagementEventUpdateOne is the builder for updating a single EngagementEvent entity.
type EngagementEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EngagementEventMutation
}

// Mutation returns the EngagementEventMutation object of the builder.
func (_u *EngagementEventUpdateOne) Mutation() *EngagementEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EngagementEventUpdate builder.
func (_u *EngagementEventUpdateOne) Where(ps ...predicate.EngagementEvent) *EngagementEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EngagementEventUpdateOne) Select(field string, fields ...string) *EngagementEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EngagementEvent entity.
func (_u *EngagementEventUpdateOne) Save(ctx context.Context) (*EngagementEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementEventUpdateOne) SaveX(ctx context.Context) *EngagementEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EngagementEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementEventUpdateOne) check() error {
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EngagementEvent.engagement"`)
	}
	return nil
}

func (_u *EngagementEventUpdateOne) sqlSave(ctx context.Context) (_node *EngagementEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagementevent.Table, engagementevent.Columns, sqlgraph.NewFieldSpec(engagementevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EngagementEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, engagementevent.FieldID)
		for _, f := range fields {
			if !engagementevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != engagementevent.FieldID {
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
	if _u.mutation.ActorIDCleared() {
		_spec.ClearField(engagementevent.FieldActorID, field.TypeString)
	}
	if _u.mutation.FromStatusCleared() {
		_spec.ClearField(engagementevent.FieldFromStatus, field.TypeString)
	}
	if _u.mutation.ToStatusCleared() {
		_spec.ClearField(engagementevent.FieldToStatus, field.TypeString)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(engagementevent.FieldMetadata, field.TypeJSON)
	}
	_node = &EngagementEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagementevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
