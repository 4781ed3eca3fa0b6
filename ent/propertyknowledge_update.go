// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/propertyknowledge"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// PropertyKnowledgeUpdate is the builder for updating PropertyKnowledge entities.
type PropertyKnowledgeUpdate struct {
	config
	hooks    []Hook
	mutation *PropertyKnowledgeMutation
}

// Where appends a list predicates to the PropertyKnowledgeUpdate builder.
func (_u *PropertyKnowledgeUpdate) Where(ps ...predicate.PropertyKnowledge) *PropertyKnowledgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *PropertyKnowledgeUpdate) SetWarehouseID(v string) *PropertyKnowledgeUpdate {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *PropertyKnowledgeUpdate) SetNillableWarehouseID(v *string) *PropertyKnowledgeUpdate {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PropertyKnowledgeUpdate) SetTopic(v string) *PropertyKnowledgeUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PropertyKnowledgeUpdate) SetNillableTopic(v *string) *PropertyKnowledgeUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PropertyKnowledgeUpdate) SetContent(v string) *PropertyKnowledgeUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PropertyKnowledgeUpdate) SetNillableContent(v *string) *PropertyKnowledgeUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *PropertyKnowledgeUpdate) SetSource(v propertyknowledge.Source) *PropertyKnowledgeUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PropertyKnowledgeUpdate) SetNillableSource(v *propertyknowledge.Source) *PropertyKnowledgeUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceQuestionID sets the "source_question_id" field.
func (_u *PropertyKnowledgeUpdate) SetSourceQuestionID(v string) *PropertyKnowledgeUpdate {
	_u.mutation.SetSourceQuestionID(v)
	return _u
}

// SetNillableSourceQuestionID sets the "source_question_id" field if the given value is not nil.
func (_u *PropertyKnowledgeUpdate) SetNillableSourceQuestionID(v *string) *PropertyKnowledgeUpdate {
	if v != nil {
		_u.SetSourceQuestionID(*v)
	}
	return _u
}

// ClearSourceQuestionID clears the value of the "source_question_id" field.
func (_u *PropertyKnowledgeUpdate) ClearSourceQuestionID() *PropertyKnowledgeUpdate {
	_u.mutation.ClearSourceQuestionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PropertyKnowledgeUpdate) SetUpdatedAt(v time.Time) *PropertyKnowledgeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_u *PropertyKnowledgeUpdate) SetWarehouse(v *Warehouse) *PropertyKnowledgeUpdate {
	return _u.SetWarehouseID(v.ID)
}

// Mutation returns the PropertyKnowledgeMutation object of the builder.
func (_u *PropertyKnowledgeUpdate) Mutation() *PropertyKnowledgeMutation {
	return _u.mutation
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (_u *PropertyKnowledgeUpdate) ClearWarehouse() *PropertyKnowledgeUpdate {
	_u.mutation.ClearWarehouse()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PropertyKnowledgeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertyKnowledgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PropertyKnowledgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertyKnowledgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PropertyKnowledgeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := propertyknowledge.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertyKnowledgeUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := propertyknowledge.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "PropertyKnowledge.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := propertyknowledge.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "PropertyKnowledge.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := propertyknowledge.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PropertyKnowledge.source": %w`, err)}
		}
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PropertyKnowledge.warehouse"`)
	}
	return nil
}

func (_u *PropertyKnowledgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(propertyknowledge.Table, propertyknowledge.Columns, sqlgraph.NewFieldSpec(propertyknowledge.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(propertyknowledge.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(propertyknowledge.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(propertyknowledge.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceQuestionID(); ok {
		_spec.SetField(propertyknowledge.FieldSourceQuestionID, field.TypeString, value)
	}
	if _u.mutation.SourceQuestionIDCleared() {
		_spec.ClearField(propertyknowledge.FieldSourceQuestionID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(propertyknowledge.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WarehouseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   propertyknowledge.WarehouseTable,
			Columns: []string{propertyknowledge.WarehouseColumn},
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
			Table:   propertyknowledge.WarehouseTable,
			Columns: []string{propertyknowledge.WarehouseColumn},
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
			err = &NotFoundError{propertyknowledge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PropertyKnowledgeUpdateOne is the builder for updating a single PropertyKnowledge entity.
type PropertyKnowledgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PropertyKnowledgeMutation
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *PropertyKnowledgeUpdateOne) SetWarehouseID(v string) *PropertyKnowledgeUpdateOne {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *PropertyKnowledgeUpdateOne) SetNillableWarehouseID(v *string) *PropertyKnowledgeUpdateOne {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PropertyKnowledgeUpdateOne) SetTopic(v string) *PropertyKnowledgeUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PropertyKnowledgeUpdateOne) SetNillableTopic(v *string) *PropertyKnowledgeUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PropertyKnowledgeUpdateOne) SetContent(v string) *PropertyKnowledgeUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PropertyKnowledgeUpdateOne) SetNillableContent(v *string) *PropertyKnowledgeUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *PropertyKnowledgeUpdateOne) SetSource(v propertyknowledge.Source) *PropertyKnowledgeUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *PropertyKnowledgeUpdateOne) SetNillableSource(v *propertyknowledge.Source) *PropertyKnowledgeUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceQuestionID sets the "source_question_id" field.
func (_u *PropertyKnowledgeUpdateOne) SetSourceQuestionID(v string) *PropertyKnowledgeUpdateOne {
	_u.mutation.SetSourceQuestionID(v)
	return _u
}

// SetNillableSourceQuestionID sets the "source_question_id" field if the given value is not nil.
func (_u *PropertyKnowledgeUpdateOne) SetNillableSourceQuestionID(v *string) *PropertyKnowledgeUpdateOne {
	if v != nil {
		_u.SetSourceQuestionID(*v)
	}
	return _u
}

// ClearSourceQuestionID clears the value of the "source_question_id" field.
func (_u *PropertyKnowledgeUpdateOne) ClearSourceQuestionID() *PropertyKnowledgeUpdateOne {
	_u.mutation.ClearSourceQuestionID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PropertyKnowledgeUpdateOne) SetUpdatedAt(v time.Time) *PropertyKnowledgeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_u *PropertyKnowledgeUpdateOne) SetWarehouse(v *Warehouse) *PropertyKnowledgeUpdateOne {
	return _u.SetWarehouseID(v.ID)
}

// Mutation returns the PropertyKnowledgeMutation object of the builder.
func (_u *PropertyKnowledgeUpdateOne) Mutation() *PropertyKnowledgeMutation {
	return _u.mutation
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (_u *PropertyKnowledgeUpdateOne) ClearWarehouse() *PropertyKnowledgeUpdateOne {
	_u.mutation.ClearWarehouse()
	return _u
}

// Where appends a list predicates to the PropertyKnowledgeUpdate builder.
func (_u *PropertyKnowledgeUpdateOne) Where(ps ...predicate.PropertyKnowledge) *PropertyKnowledgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PropertyKnowledgeUpdateOne) Select(field string, fields ...string) *PropertyKnowledgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PropertyKnowledge entity.
func (_u *PropertyKnowledgeUpdateOne) Save(ctx context.Context) (*PropertyKnowledge, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertyKnowledgeUpdateOne) SaveX(ctx context.Context) *PropertyKnowledge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PropertyKnowledgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertyKnowledgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PropertyKnowledgeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := propertyknowledge.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertyKnowledgeUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := propertyknowledge.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "PropertyKnowledge.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := propertyknowledge.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "PropertyKnowledge.content": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := propertyknowledge.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "PropertyKnowledge.source": %w`, err)}
		}
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PropertyKnowledge.warehouse"`)
	}
	return nil
}

func (_u *PropertyKnowledgeUpdateOne) sqlSave(ctx context.Context) (_node *PropertyKnowledge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(propertyknowledge.Table, propertyknowledge.Columns, sqlgraph.NewFieldSpec(propertyknowledge.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PropertyKnowledge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, propertyknowledge.FieldID)
		for _, f := range fields {
			if !propertyknowledge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != propertyknowledge.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(propertyknowledge.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(propertyknowledge.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(propertyknowledge.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SourceQuestionID(); ok {
		_spec.SetField(propertyknowledge.FieldSourceQuestionID, field.TypeString, value)
	}
	if _u.mutation.SourceQuestionIDCleared() {
		_spec.ClearField(propertyknowledge.FieldSourceQuestionID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(propertyknowledge.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WarehouseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   propertyknowledge.WarehouseTable,
			Columns: []string{propertyknowledge.WarehouseColumn},
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
			Table:   propertyknowledge.WarehouseTable,
			Columns: []string{propertyknowledge.WarehouseColumn},
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
	_node = &PropertyKnowledge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{propertyknowledge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
