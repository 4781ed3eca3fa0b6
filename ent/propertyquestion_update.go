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
	"github.com/warehouse-exchange/wex/ent/propertyquestion"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// PropertyQuestionUpdate is the builder for updating PropertyQuestion entities.
type PropertyQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *PropertyQuestionMutation
}

// Where appends a list predicates to the PropertyQuestionUpdate builder.
func (_u *PropertyQuestionUpdate) Where(ps ...predicate.PropertyQuestion) *PropertyQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *PropertyQuestionUpdate) SetWarehouseID(v string) *PropertyQuestionUpdate {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *PropertyQuestionUpdate) SetNillableWarehouseID(v *string) *PropertyQuestionUpdate {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetEngagementID sets the "engagement_id" field.
func (_u *PropertyQuestionUpdate) SetEngagementID(v string) *PropertyQuestionUpdate {
	_u.mutation.SetEngagementID(v)
	return _u
}

// SetNillableEngagementID sets the "engagement_id" field if the given value is not nil.
func (_u *PropertyQuestionUpdate) SetNillableEngagementID(v *string) *PropertyQuestionUpdate {
	if v != nil {
		_u.SetEngagementID(*v)
	}
	return _u
}

// ClearEngagementID clears the value of the "engagement_id" field.
func (_u *PropertyQuestionUpdate) ClearEngagementID() *PropertyQuestionUpdate {
	_u.mutation.ClearEngagementID()
	return _u
}

// SetAskedByPhone sets the "asked_by_phone" field.
func (_u *PropertyQuestionUpdate) SetAskedByPhone(v string) *PropertyQuestionUpdate {
	_u.mutation.SetAskedByPhone(v)
	return _u
}

// SetNillableAskedByPhone sets the "asked_by_phone" field if the given value is not nil.
func (_u *PropertyQuestionUpdate) SetNillableAskedByPhone(v *string) *PropertyQuestionUpdate {
	if v != nil {
		_u.SetAskedByPhone(*v)
	}
	return _u
}

// ClearAskedByPhone clears the value of the "asked_by_phone" field.
func (_u *PropertyQuestionUpdate) ClearAskedByPhone() *PropertyQuestionUpdate {
	_u.mutation.ClearAskedByPhone()
	return _u
}

// SetAskedByUserID sets the "asked_by_user_id" field.
func (_u *PropertyQuestionUpdate) SetAskedByUserID(v string) *PropertyQuestionUpdate {
	_u.mutation.SetAskedByUserID(v)
	return _u
}

// SetNillableAskedByUserID sets the "asked_by_user_id" field if the given value is not nil.
func (_u *PropertyQuestionUpdate) SetNillableAskedByUserID(v *string) *PropertyQuestionUpdate {
	if v != nil {
		_u.SetAskedByUserID(*v)
	}
	return _u
}

// ClearAskedByUserID clears the value of the "asked_by_user_id" field.
func (_u *PropertyQuestionUpdate) ClearAskedByUserID() *PropertyQuestionUpdate {
	_u.mutation.ClearAskedByUserID()
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *PropertyQuestionUpdate) SetQuestionText(v string) *PropertyQuestionUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *PropertyQuestionUpdate) SetNillableQuestionText(v *string) *PropertyQuestionUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PropertyQuestionUpdate) SetStatus(v propertyquestion.Status) *PropertyQuestionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PropertyQuestionUpdate) SetNillableStatus(v *propertyquestion.Status) *PropertyQuestionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *PropertyQuestionUpdate) SetAnswerText(v string) *PropertyQuestionUpdate {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *PropertyQuestionUpdate) SetNillableAnswerText(v *string) *PropertyQuestionUpdate {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// ClearAnswerText clears the value of the "answer_text" field.
func (_u *PropertyQuestionUpdate) ClearAnswerText() *PropertyQuestionUpdate {
	_u.mutation.ClearAnswerText()
	return _u
}

// SetAnswerSource sets the "answer_source" field.
func (_u *PropertyQuestionUpdate) SetAnswerSource(v propertyquestion.AnswerSource) *PropertyQuestionUpdate {
	_u.mutation.SetAnswerSource(v)
	return _u
}

// SetNillableAnswerSource sets the "answer_source" field if the given value is not nil.
func (_u *PropertyQuestionUpdate) SetNillableAnswerSource(v *propertyquestion.AnswerSource) *PropertyQuestionUpdate {
	if v != nil {
		_u.SetAnswerSource(*v)
	}
	return _u
}

// ClearAnswerSource clears the value of the "answer_source" field.
func (_u *PropertyQuestionUpdate) ClearAnswerSource() *PropertyQuestionUpdate {
	_u.mutation.ClearAnswerSource()
	return _u
}

// SetRoutedAt sets the "routed_at" field.
func (_u *PropertyQuestionUpdate) SetRoutedAt(v time.Time) *PropertyQuestionUpdate {
	_u.mutation.SetRoutedAt(v)
	return _u
}

// SetNillableRoutedAt sets the "routed_at" field if the given value is not nil.
func (_u *PropertyQuestionUpdate) SetNillableRoutedAt(v *time.Time) *PropertyQuestionUpdate {
	if v != nil {
		_u.SetRoutedAt(*v)
	}
	return _u
}

// ClearRoutedAt clears the value of the "routed_at" field.
func (_u *PropertyQuestionUpdate) ClearRoutedAt() *PropertyQuestionUpdate {
	_u.mutation.ClearRoutedAt()
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *PropertyQuestionUpdate) SetAnsweredAt(v time.Time) *PropertyQuestionUpdate {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *PropertyQuestionUpdate) SetNillableAnsweredAt(v *time.Time) *PropertyQuestionUpdate {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *PropertyQuestionUpdate) ClearAnsweredAt() *PropertyQuestionUpdate {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PropertyQuestionUpdate) SetUpdatedAt(v time.Time) *PropertyQuestionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_u *PropertyQuestionUpdate) SetWarehouse(v *Warehouse) *PropertyQuestionUpdate {
	return _u.SetWarehouseID(v.ID)
}

// Mutation returns the PropertyQuestionMutation object of the builder.
func (_u *PropertyQuestionUpdate) Mutation() *PropertyQuestionMutation {
	return _u.mutation
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (_u *PropertyQuestionUpdate) ClearWarehouse() *PropertyQuestionUpdate {
	_u.mutation.ClearWarehouse()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PropertyQuestionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertyQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PropertyQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertyQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PropertyQuestionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := propertyquestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertyQuestionUpdate) check() error {
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := propertyquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "PropertyQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := propertyquestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PropertyQuestion.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerSource(); ok {
		if err := propertyquestion.AnswerSourceValidator(v); err != nil {
			return &ValidationError{Name: "answer_source", err: fmt.Errorf(`ent: validator failed for field "PropertyQuestion.answer_source": %w`, err)}
		}
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PropertyQuestion.warehouse"`)
	}
	return nil
}

func (_u *PropertyQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(propertyquestion.Table, propertyquestion.Columns, sqlgraph.NewFieldSpec(propertyquestion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EngagementID(); ok {
		_spec.SetField(propertyquestion.FieldEngagementID, field.TypeString, value)
	}
	if _u.mutation.EngagementIDCleared() {
		_spec.ClearField(propertyquestion.FieldEngagementID, field.TypeString)
	}
	if value, ok := _u.mutation.AskedByPhone(); ok {
		_spec.SetField(propertyquestion.FieldAskedByPhone, field.TypeString, value)
	}
	if _u.mutation.AskedByPhoneCleared() {
		_spec.ClearField(propertyquestion.FieldAskedByPhone, field.TypeString)
	}
	if value, ok := _u.mutation.AskedByUserID(); ok {
		_spec.SetField(propertyquestion.FieldAskedByUserID, field.TypeString, value)
	}
	if _u.mutation.AskedByUserIDCleared() {
		_spec.ClearField(propertyquestion.FieldAskedByUserID, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(propertyquestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(propertyquestion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(propertyquestion.FieldAnswerText, field.TypeString, value)
	}
	if _u.mutation.AnswerTextCleared() {
		_spec.ClearField(propertyquestion.FieldAnswerText, field.TypeString)
	}
	if value, ok := _u.mutation.AnswerSource(); ok {
		_spec.SetField(propertyquestion.FieldAnswerSource, field.TypeEnum, value)
	}
	if _u.mutation.AnswerSourceCleared() {
		_spec.ClearField(propertyquestion.FieldAnswerSource, field.TypeEnum)
	}
	if value, ok := _u.mutation.RoutedAt(); ok {
		_spec.SetField(propertyquestion.FieldRoutedAt, field.TypeTime, value)
	}
	if _u.mutation.RoutedAtCleared() {
		_spec.ClearField(propertyquestion.FieldRoutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(propertyquestion.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(propertyquestion.FieldAnsweredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(propertyquestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WarehouseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   propertyquestion.WarehouseTable,
			Columns: []string{propertyquestion.WarehouseColumn},
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
			Table:   propertyquestion.WarehouseTable,
			Columns: []string{propertyquestion.WarehouseColumn},
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
			err = &NotFoundError{propertyquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PropertyQuestionUpdateOne is the builder for updating a single PropertyQuestion entity.
type PropertyQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PropertyQuestionMutation
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *PropertyQuestionUpdateOne) SetWarehouseID(v string) *PropertyQuestionUpdateOne {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *PropertyQuestionUpdateOne) SetNillableWarehouseID(v *string) *PropertyQuestionUpdateOne {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetEngagementID sets the "engagement_id" field.
func (_u *PropertyQuestionUpdateOne) SetEngagementID(v string) *PropertyQuestionUpdateOne {
	_u.mutation.SetEngagementID(v)
	return _u
}

// SetNillableEngagementID sets the "engagement_id" field if the given value is not nil.
func (_u *PropertyQuestionUpdateOne) SetNillableEngagementID(v *string) *PropertyQuestionUpdateOne {
	if v != nil {
		_u.SetEngagementID(*v)
	}
	return _u
}

// ClearEngagementID clears the value of the "engagement_id" field.
func (_u *PropertyQuestionUpdateOne) ClearEngagementID() *PropertyQuestionUpdateOne {
	_u.mutation.ClearEngagementID()
	return _u
}

// SetAskedByPhone sets the "asked_by_phone" field.
func (_u *PropertyQuestionUpdateOne) SetAskedByPhone(v string) *PropertyQuestionUpdateOne {
	_u.mutation.SetAskedByPhone(v)
	return _u
}

// SetNillableAskedByPhone sets the "asked_by_phone" field if the given value is not nil.
func (_u *PropertyQuestionUpdateOne) SetNillableAskedByPhone(v *string) *PropertyQuestionUpdateOne {
	if v != nil {
		_u.SetAskedByPhone(*v)
	}
	return _u
}

// ClearAskedByPhone clears the value of the "asked_by_phone" field.
func (_u *PropertyQuestionUpdateOne) ClearAskedByPhone() *PropertyQuestionUpdateOne {
	_u.mutation.ClearAskedByPhone()
	return _u
}

// SetAskedByUserID sets the "asked_by_user_id" field.
func (_u *PropertyQuestionUpdateOne) SetAskedByUserID(v string) *PropertyQuestionUpdateOne {
	_u.mutation.SetAskedByUserID(v)
	return _u
}

// SetNillableAskedByUserID sets the "asked_by_user_id" field if the given value is not nil.
func (_u *PropertyQuestionUpdateOne) SetNillableAskedByUserID(v *string) *PropertyQuestionUpdateOne {
	if v != nil {
		_u.SetAskedByUserID(*v)
	}
	return _u
}

// ClearAskedByUserID clears the value of the "asked_by_user_id" field.
func (_u *PropertyQuestionUpdateOne) ClearAskedByUserID() *PropertyQuestionUpdateOne {
	_u.mutation.ClearAskedByUserID()
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *PropertyQuestionUpdateOne) SetQuestionText(v string) *PropertyQuestionUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *PropertyQuestionUpdateOne) SetNillableQuestionText(v *string) *PropertyQuestionUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PropertyQuestionUpdateOne) SetStatus(v propertyquestion.Status) *PropertyQuestionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PropertyQuestionUpdateOne) SetNillableStatus(v *propertyquestion.Status) *PropertyQuestionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnswerText sets the "answer_text" field.
func (_u *PropertyQuestionUpdateOne) SetAnswerText(v string) *PropertyQuestionUpdateOne {
	_u.mutation.SetAnswerText(v)
	return _u
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_u *PropertyQuestionUpdateOne) SetNillableAnswerText(v *string) *PropertyQuestionUpdateOne {
	if v != nil {
		_u.SetAnswerText(*v)
	}
	return _u
}

// ClearAnswerText clears the value of the "answer_text" field.
func (_u *PropertyQuestionUpdateOne) ClearAnswerText() *PropertyQuestionUpdateOne {
	_u.mutation.ClearAnswerText()
	return _u
}

// SetAnswerSource sets the "answer_source" field.
func (_u *PropertyQuestionUpdateOne) SetAnswerSource(v propertyquestion.AnswerSource) *PropertyQuestionUpdateOne {
	_u.mutation.SetAnswerSource(v)
	return _u
}

// SetNillableAnswerSource sets the "answer_source" field if the given value is not nil.
func (_u *PropertyQuestionUpdateOne) SetNillableAnswerSource(v *propertyquestion.AnswerSource) *PropertyQuestionUpdateOne {
	if v != nil {
		_u.SetAnswerSource(*v)
	}
	return _u
}

// ClearAnswerSource clears the value of the "answer_source" field.
func (_u *PropertyQuestionUpdateOne) ClearAnswerSource() *PropertyQuestionUpdateOne {
	_u.mutation.ClearAnswerSource()
	return _u
}

// SetRoutedAt sets the "routed_at" field.
func (_u *PropertyQuestionUpdateOne) SetRoutedAt(v time.Time) *PropertyQuestionUpdateOne {
	_u.mutation.SetRoutedAt(v)
	return _u
}

// SetNillableRoutedAt sets the "routed_at" field if the given value is not nil.
func (_u *PropertyQuestionUpdateOne) SetNillableRoutedAt(v *time.Time) *PropertyQuestionUpdateOne {
	if v != nil {
		_u.SetRoutedAt(*v)
	}
	return _u
}

// ClearRoutedAt clears the value of the "routed_at" field.
func (_u *PropertyQuestionUpdateOne) ClearRoutedAt() *PropertyQuestionUpdateOne {
	_u.mutation.ClearRoutedAt()
	return _u
}

// SetAnsweredAt sets the "answered_at" field.
func (_u *PropertyQuestionUpdateOne) SetAnsweredAt(v time.Time) *PropertyQuestionUpdateOne {
	_u.mutation.SetAnsweredAt(v)
	return _u
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_u *PropertyQuestionUpdateOne) SetNillableAnsweredAt(v *time.Time) *PropertyQuestionUpdateOne {
	if v != nil {
		_u.SetAnsweredAt(*v)
	}
	return _u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (_u *PropertyQuestionUpdateOne) ClearAnsweredAt() *PropertyQuestionUpdateOne {
	_u.mutation.ClearAnsweredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PropertyQuestionUpdateOne) SetUpdatedAt(v time.Time) *PropertyQuestionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_u *PropertyQuestionUpdateOne) SetWarehouse(v *Warehouse) *PropertyQuestionUpdateOne {
	return _u.SetWarehouseID(v.ID)
}

// Mutation returns the PropertyQuestionMutation object of the builder.
func (_u *PropertyQuestionUpdateOne) Mutation() *PropertyQuestionMutation {
	return _u.mutation
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (_u *PropertyQuestionUpdateOne) ClearWarehouse() *PropertyQuestionUpdateOne {
	_u.mutation.ClearWarehouse()
	return _u
}

// Where appends a list predicates to the PropertyQuestionUpdate builder.
func (_u *PropertyQuestionUpdateOne) Where(ps ...predicate.PropertyQuestion) *PropertyQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PropertyQuestionUpdateOne) Select(field string, fields ...string) *PropertyQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PropertyQuestion entity.
func (_u *PropertyQuestionUpdateOne) Save(ctx context.Context) (*PropertyQuestion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PropertyQuestionUpdateOne) SaveX(ctx context.Context) *PropertyQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PropertyQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PropertyQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PropertyQuestionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := propertyquestion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PropertyQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionText(); ok {
		if err := propertyquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "PropertyQuestion.question_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := propertyquestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PropertyQuestion.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AnswerSource(); ok {
		if err := propertyquestion.AnswerSourceValidator(v); err != nil {
			return &ValidationError{Name: "answer_source", err: fmt.Errorf(`ent: validator failed for field "PropertyQuestion.answer_source": %w`, err)}
		}
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PropertyQuestion.warehouse"`)
	}
	return nil
}

func (_u *PropertyQuestionUpdateOne) sqlSave(ctx context.Context) (_node *PropertyQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(propertyquestion.Table, propertyquestion.Columns, sqlgraph.NewFieldSpec(propertyquestion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PropertyQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, propertyquestion.FieldID)
		for _, f := range fields {
			if !propertyquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != propertyquestion.FieldID {
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
	if value, ok := _u.mutation.EngagementID(); ok {
		_spec.SetField(propertyquestion.FieldEngagementID, field.TypeString, value)
	}
	if _u.mutation.EngagementIDCleared() {
		_spec.ClearField(propertyquestion.FieldEngagementID, field.TypeString)
	}
	if value, ok := _u.mutation.AskedByPhone(); ok {
		_spec.SetField(propertyquestion.FieldAskedByPhone, field.TypeString, value)
	}
	if _u.mutation.AskedByPhoneCleared() {
		_spec.ClearField(propertyquestion.FieldAskedByPhone, field.TypeString)
	}
	if value, ok := _u.mutation.AskedByUserID(); ok {
		_spec.SetField(propertyquestion.FieldAskedByUserID, field.TypeString, value)
	}
	if _u.mutation.AskedByUserIDCleared() {
		_spec.ClearField(propertyquestion.FieldAskedByUserID, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(propertyquestion.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(propertyquestion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AnswerText(); ok {
		_spec.SetField(propertyquestion.FieldAnswerText, field.TypeString, value)
	}
	if _u.mutation.AnswerTextCleared() {
		_spec.ClearField(propertyquestion.FieldAnswerText, field.TypeString)
	}
	if value, ok := _u.mutation.AnswerSource(); ok {
		_spec.SetField(propertyquestion.FieldAnswerSource, field.TypeEnum, value)
	}
	if _u.mutation.AnswerSourceCleared() {
		_spec.ClearField(propertyquestion.FieldAnswerSource, field.TypeEnum)
	}
	if value, ok := _u.mutation.RoutedAt(); ok {
		_spec.SetField(propertyquestion.FieldRoutedAt, field.TypeTime, value)
	}
	if _u.mutation.RoutedAtCleared() {
		_spec.ClearField(propertyquestion.FieldRoutedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AnsweredAt(); ok {
		_spec.SetField(propertyquestion.FieldAnsweredAt, field.TypeTime, value)
	}
	if _u.mutation.AnsweredAtCleared() {
		_spec.ClearField(propertyquestion.FieldAnsweredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(propertyquestion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WarehouseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   propertyquestion.WarehouseTable,
			Columns: []string{propertyquestion.WarehouseColumn},
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
			Table:   propertyquestion.WarehouseTable,
			Columns: []string{propertyquestion.WarehouseColumn},
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
	_node = &PropertyQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{propertyquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
