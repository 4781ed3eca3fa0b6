// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/supplieragreement"
)

// SupplierAgreementDelete is the builder for deleting a SupplierAgreement entity.
type SupplierAgreementDelete struct {
	config
	hooks    []Hook
	mutation *SupplierAgreementMutation
}

// Where appends a list predicates to the SupplierAgreementDelete builder.
func (_d *SupplierAgreementDelete) Where(ps ...predicate.SupplierAgreement) *SupplierAgreementDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SupplierAgreementDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SupplierAgreementDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SupplierAgreementDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(supplieragreement.Table, sqlgraph.NewFieldSpec(supplieragreement.FieldID, field.TypeString))
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

// SupplierAgreementDeleteOne is the builder for deleting a single SupplierAgreement entity.
type SupplierAgreementDeleteOne struct {
	_d *SupplierAgreementDelete
}

// Where appends a list predicates to the SupplierAgreementDelete builder.
func (_d *SupplierAgreementDeleteOne) Where(ps ...predicate.SupplierAgreement) *SupplierAgreementDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SupplierAgreementDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{supplieragreement.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SupplierAgreementDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
