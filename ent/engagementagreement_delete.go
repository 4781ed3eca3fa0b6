// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/engagementagreement"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// EngagementAgreementDelete is the builder for deleting a EngagementAgreement entity.
type EngagementAgreementDelete struct {
	config
	hooks    []Hook
	mutation *EngagementAgreementMutation
}

// Where appends a list predicates to the EngagementAgreementDelete builder.
func (_d *EngagementAgreementDelete) Where(ps ...predicate.EngagementAgreement) *EngagementAgreementDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EngagementAgreementDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EngagementAgreementDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EngagementAgreementDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(engagementagreement.Table, sqlgraph.NewFieldSpec(engagementagreement.FieldID, field.TypeString))
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

// EngagementAgreementDeleteOne is the builder for deleting a single EngagementAgreement entity.
type EngagementAgreementDeleteOne struct {
	_d *EngagementAgreementDelete
}

// Where appends a list predicates to the EngagementAgreementDelete builder.
func (_d *EngagementAgreementDeleteOne) Where(ps ...predicate.EngagementAgreement) *EngagementAgreementDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EngagementAgreementDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{engagementagreement.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EngagementAgreementDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
