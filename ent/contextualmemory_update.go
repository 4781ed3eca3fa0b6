// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/contextualmemory"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// ContextualMemoryUpdate is the builder for updating ContextualMemory entities.
type ContextualMemoryUpdate struct {
	config
	hooks    []Hook
	mutation *ContextualMemoryMutation
}

// Where appends a list predicates to the ContextualMemoryUpdate builder.
func (_u *ContextualMemoryUpdate) Where(ps ...predicate.ContextualMemory) *ContextualMemoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *ContextualMemoryUpdate) SetWarehouseID(v string) *ContextualMemoryUpdate {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *ContextualMemoryUpdate) SetNillableWarehouseID(v *string) *ContextualMemoryUpdate {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ContextualMemoryUpdate) SetCategory(v contextualmemory.Category) *ContextualMemoryUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ContextualMemoryUpdate) SetNillableCategory(v *contextualmemory.Category) *ContextualMemoryUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ContextualMemoryUpdate) SetContent(v string) *ContextualMemoryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ContextualMemoryUpdate) SetNillableContent(v *string) *ContextualMemoryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ContextualMemoryUpdate) SetSource(v contextualmemory.Source) *ContextualMemoryUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ContextualMemoryUpdate) SetNillableSource(v *contextualmemory.Source) *ContextualMemoryUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *ContextualMemoryUpdate) SetRecordedBy(v string) *ContextualMemoryUpdate {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *ContextualMemoryUpdate) SetNillableRecordedBy(v *string) *ContextualMemoryUpdate {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (_u *ContextualMemoryUpdate) ClearRecordedBy() *ContextualMemoryUpdate {
	_u.mutation.ClearRecordedBy()
	return _u
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_u *ContextualMemoryUpdate) SetWarehouse(v *Warehouse) *ContextualMemoryUpdate {
	return _u.SetWarehouseID(v.ID)
}

// Mutation returns the ContextualMemoryMutation object of the builder.
func (_u *ContextualMemoryUpdate) Mutation() *ContextualMemoryMutation {
	return _u.mutation
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (_u *ContextualMemoryUpdate) ClearWarehouse() *ContextualMemoryUpdate {
	_u.mutation.ClearWarehouse()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContextualMemoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextualMemoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContextualMemoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextualMemoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextualMemoryUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := contextualmemory.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ContextualMemory.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := contextualmemory.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "ContextualMemory.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := contextualmemory.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ContextualMemory.source": %w`, err)}
		}
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContextualMemory.warehouse"`)
	}
	return nil
}

func (_u *ContextualMemoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextualmemory.Table, contextualmemory.Columns, sqlgraph.NewFieldSpec(contextualmemory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(contextualmemory.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(contextualmemory.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(contextualmemory.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(contextualmemory.FieldRecordedBy, field.TypeString, value)
	}
	if _u.mutation.RecordedByCleared() {
		_spec.ClearField(contextualmemory.FieldRecordedBy, field.TypeString)
	}
	if _u.mutation.WarehouseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextualmemory.WarehouseTable,
			Columns: []string{contextualmemory.WarehouseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WarehouseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextualmemory.WarehouseTable,
			Columns: []string{contextualmemory.WarehouseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextualmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContextualMemoryUpdateOne is the builder for updating a single ContextualMemory entity.
type ContextualMemoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContextualMemoryMutation
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *ContextualMemoryUpdateOne) SetWarehouseID(v string) *ContextualMemoryUpdateOne {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *ContextualMemoryUpdateOne) SetNillableWarehouseID(v *string) *ContextualMemoryUpdateOne {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ContextualMemoryUpdateOne) SetCategory(v contextualmemory.Category) *ContextualMemoryUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ContextualMemoryUpdateOne) SetNillableCategory(v *contextualmemory.Category) *ContextualMemoryUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ContextualMemoryUpdateOne) SetContent(v string) *ContextualMemoryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ContextualMemoryUpdateOne) SetNillableContent(v *string) *ContextualMemoryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ContextualMemoryUpdateOne) SetSource(v contextualmemory.Source) *ContextualMemoryUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ContextualMemoryUpdateOne) SetNillableSource(v *contextualmemory.Source) *ContextualMemoryUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *ContextualMemoryUpdateOne) SetRecordedBy(v string) *ContextualMemoryUpdateOne {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *ContextualMemoryUpdateOne) SetNillableRecordedBy(v *string) *ContextualMemoryUpdateOne {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (_u *ContextualMemoryUpdateOne) ClearRecordedBy() *ContextualMemoryUpdateOne {
	_u.mutation.ClearRecordedBy()
	return _u
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_u *ContextualMemoryUpdateOne) SetWarehouse(v *Warehouse) *ContextualMemoryUpdateOne {
	return _u.SetWarehouseID(v.ID)
}

// Mutation returns the ContextualMemoryMutation object of the builder.
func (_u *ContextualMemoryUpdateOne) Mutation() *ContextualMemoryMutation {
	return _u.mutation
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (_u *ContextualMemoryUpdateOne) ClearWarehouse() *ContextualMemoryUpdateOne {
	_u.mutation.ClearWarehouse()
	return _u
}

// Where appends a list predicates to the ContextualMemoryUpdate builder.
func (_u *ContextualMemoryUpdateOne) Where(ps ...predicate.ContextualMemory) *ContextualMemoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContextualMemoryUpdateOne) Select(field string, fields ...string) *ContextualMemoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContextualMemory entity.
func (_u *ContextualMemoryUpdateOne) Save(ctx context.Context) (*ContextualMemory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContextualMemoryUpdateOne) SaveX(ctx context.Context) *ContextualMemory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContextualMemoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContextualMemoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContextualMemoryUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := contextualmemory.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ContextualMemory.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := contextualmemory.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "ContextualMemory.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := contextualmemory.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ContextualMemory.source": %w`, err)}
		}
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ContextualMemory.warehouse"`)
	}
	return nil
}

func (_u *ContextualMemoryUpdateOne) sqlSave(ctx context.Context) (_node *ContextualMemory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contextualmemory.Table, contextualmemory.Columns, sqlgraph.NewFieldSpec(contextualmemory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContextualMemory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contextualmemory.FieldID)
		for _, f := range fields {
			if !contextualmemory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contextualmemory.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(contextualmemory.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(contextualmemory.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(contextualmemory.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(contextualmemory.FieldRecordedBy, field.TypeString, value)
	}
	if _u.mutation.RecordedByCleared() {
		_spec.ClearField(contextualmemory.FieldRecordedBy, field.TypeString)
	}
	if _u.mutation.WarehouseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextualmemory.WarehouseTable,
			Columns: []string{contextualmemory.WarehouseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WarehouseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contextualmemory.WarehouseTable,
			Columns: []string{contextualmemory.WarehouseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ContextualMemory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contextualmemory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
