// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/instantbookscore"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// InstantBookScoreDelete is the builder for deleting a InstantBookScore entity.
type InstantBookScoreDelete struct {
	config
	hooks    []Hook
	mutation *InstantBookScoreMutation
}

// Where appends a list predicates to the InstantBookScoreDelete builder.
func (_d *InstantBookScoreDelete) Where(ps ...predicate.InstantBookScore) *InstantBookScoreDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *InstantBookScoreDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InstantBookScoreDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *InstantBookScoreDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(instantbookscore.Table, sqlgraph.NewFieldSpec(instantbookscore.FieldID, field.TypeString))
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

// InstantBookScoreDeleteOne is the builder for deleting a single InstantBookScore entity.
type InstantBookScoreDeleteOne struct {
	_d *InstantBookScoreDelete
}

// Where appends a list predicates to the InstantBookScoreDelete builder.
func (_d *InstantBookScoreDeleteOne) Where(ps ...predicate.InstantBookScore) *InstantBookScoreDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *InstantBookScoreDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{instantbookscore.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *InstantBookScoreDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
