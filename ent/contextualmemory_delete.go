// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/contextualmemory"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ContextualMemoryDelete is the builder for deleting a ContextualMemory entity.
type ContextualMemoryDelete struct {
	config
	hooks    []Hook
	mutation *ContextualMemoryMutation
}

// Where appends a list predicates to the ContextualMemoryDelete builder.
func (_d *ContextualMemoryDelete) Where(ps ...predicate.ContextualMemory) *ContextualMemoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ContextualMemoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContextualMemoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ContextualMemoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(contextualmemory.Table, sqlgraph.NewFieldSpec(contextualmemory.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ContextualMemoryDeleteOne is the builder for deleting a single ContextualMemory entity.
type ContextualMemoryDeleteOne struct {
	_d *ContextualMemoryDelete
}

// Where appends a list predicates to the ContextualMemoryDelete builder.
func (_d *ContextualMemoryDeleteOne) Where(ps ...predicate.ContextualMemory) *ContextualMemoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ContextualMemoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{contextualmemory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContextualMemoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
