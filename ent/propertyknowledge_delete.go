// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/propertyknowledge"
)

// PropertyKnowledgeDelete is the builder for deleting a PropertyKnowledge entity.
type PropertyKnowledgeDelete struct {
	config
	hooks    []Hook
	mutation *PropertyKnowledgeMutation
}

// Where appends a list predicates to the PropertyKnowledgeDelete builder.
func (_d *PropertyKnowledgeDelete) Where(ps ...predicate.PropertyKnowledge) *PropertyKnowledgeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PropertyKnowledgeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PropertyKnowledgeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PropertyKnowledgeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(propertyknowledge.Table, sqlgraph.NewFieldSpec(propertyknowledge.FieldID, field.TypeString))
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

// PropertyKnowledgeDeleteOne is the builder for deleting a single PropertyKnowledge entity.
type PropertyKnowledgeDeleteOne struct {
	_d *PropertyKnowledgeDelete
}

// Where appends a list predicates to the PropertyKnowledgeDelete builder.
func (_d *PropertyKnowledgeDeleteOne) Where(ps ...predicate.PropertyKnowledge) *PropertyKnowledgeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PropertyKnowledgeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{propertyknowledge.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PropertyKnowledgeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
