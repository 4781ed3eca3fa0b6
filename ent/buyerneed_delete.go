// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/buyerneed"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// BuyerNeedDelete is the builder for deleting a BuyerNeed entity.
type BuyerNeedDelete struct {
	config
	hooks    []Hook
	mutation *BuyerNeedMutation
}

// Where appends a list predicates to the BuyerNeedDelete builder.
func (_d *BuyerNeedDelete) Where(ps ...predicate.BuyerNeed) *BuyerNeedDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BuyerNeedDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BuyerNeedDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BuyerNeedDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(buyerneed.Table, sqlgraph.NewFieldSpec(buyerneed.FieldID, field.TypeString))
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

// BuyerNeedDeleteOne is the builder for deleting a single BuyerNeed entity.
type BuyerNeedDeleteOne struct {
	_d *BuyerNeedDelete
}

// Where appends a list predicates to the BuyerNeedDelete builder.
func (_d *BuyerNeedDeleteOne) Where(ps ...predicate.BuyerNeed) *BuyerNeedDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BuyerNeedDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{buyerneed.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BuyerNeedDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
