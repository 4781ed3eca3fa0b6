// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/propertyquestion"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// PropertyQuestionCreate is the builder for creating a PropertyQuestion entity.
type PropertyQuestionCreate struct {
	config
	mutation *PropertyQuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWarehouseID sets the "warehouse_id" field.
func (_c *PropertyQuestionCreate) SetWarehouseID(v string) *PropertyQuestionCreate {
	_c.mutation.SetWarehouseID(v)
	return _c
}

// SetEngagementID sets the "engagement_id" field.
func (_c *PropertyQuestionCreate) SetEngagementID(v string) *PropertyQuestionCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetNillableEngagementID sets the "engagement_id" field if the given value is not nil.
func (_c *PropertyQuestionCreate) SetNillableEngagementID(v *string) *PropertyQuestionCreate {
	if v != nil {
		_c.SetEngagementID(*v)
	}
	return _c
}

// SetAskedByPhone sets the "asked_by_phone" field.
func (_c *PropertyQuestionCreate) SetAskedByPhone(v string) *PropertyQuestionCreate {
	_c.mutation.SetAskedByPhone(v)
	return _c
}

// SetNillableAskedByPhone sets the "asked_by_phone" field if the given value is not nil.
func (_c *PropertyQuestionCreate) SetNillableAskedByPhone(v *string) *PropertyQuestionCreate {
	if v != nil {
		_c.SetAskedByPhone(*v)
	}
	return _c
}

// SetAskedByUserID sets the "asked_by_user_id" field.
func (_c *PropertyQuestionCreate) SetAskedByUserID(v string) *PropertyQuestionCreate {
	_c.mutation.SetAskedByUserID(v)
	return _c
}

// SetNillableAskedByUserID sets the "asked_by_user_id" field if the given value is not nil.
func (_c *PropertyQuestionCreate) SetNillableAskedByUserID(v *string) *PropertyQuestionCreate {
	if v != nil {
		_c.SetAskedByUserID(*v)
	}
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *PropertyQuestionCreate) SetQuestionText(v string) *PropertyQuestionCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PropertyQuestionCreate) SetStatus(v propertyquestion.Status) *PropertyQuestionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PropertyQuestionCreate) SetNillableStatus(v *propertyquestion.Status) *PropertyQuestionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAnswerText sets the "answer_text" field.
func (_c *PropertyQuestionCreate) SetAnswerText(v string) *PropertyQuestionCreate {
	_c.mutation.SetAnswerText(v)
	return _c
}

// SetNillableAnswerText sets the "answer_text" field if the given value is not nil.
func (_c *PropertyQuestionCreate) SetNillableAnswerText(v *string) *PropertyQuestionCreate {
	if v != nil {
		_c.SetAnswerText(*v)
	}
	return _c
}

// SetAnswerSource sets the "answer_source" field.
func (_c *PropertyQuestionCreate) SetAnswerSource(v propertyquestion.AnswerSource) *PropertyQuestionCreate {
	_c.mutation.SetAnswerSource(v)
	return _c
}

// SetNillableAnswerSource sets the "answer_source" field if the given value is not nil.
func (_c *PropertyQuestionCreate) SetNillableAnswerSource(v *propertyquestion.AnswerSource) *PropertyQuestionCreate {
	if v != nil {
		_c.SetAnswerSource(*v)
	}
	return _c
}

// SetRoutedAt sets the "routed_at" field.
func (_c *PropertyQuestionCreate) SetRoutedAt(v time.Time) *PropertyQuestionCreate {
	_c.mutation.SetRoutedAt(v)
	return _c
}

// SetNillableRoutedAt sets the "routed_at" field if the given value is not nil.
func (_c *PropertyQuestionCreate) SetNillableRoutedAt(v *time.Time) *PropertyQuestionCreate {
	if v != nil {
		_c.SetRoutedAt(*v)
	}
	return _c
}

// SetAnsweredAt sets the "answered_at" field.
func (_c *PropertyQuestionCreate) SetAnsweredAt(v time.Time) *PropertyQuestionCreate {
	_c.mutation.SetAnsweredAt(v)
	return _c
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (_c *PropertyQuestionCreate) SetNillableAnsweredAt(v *time.Time) *PropertyQuestionCreate {
	if v != nil {
		_c.SetAnsweredAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PropertyQuestionCreate) SetCreatedAt(v time.Time) *PropertyQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PropertyQuestionCreate) SetNillableCreatedAt(v *time.Time) *PropertyQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PropertyQuestionCreate) SetUpdatedAt(v time.Time) *PropertyQuestionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PropertyQuestionCreate) SetNillableUpdatedAt(v *time.Time) *PropertyQuestionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PropertyQuestionCreate) SetID(v string) *PropertyQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_c *PropertyQuestionCreate) SetWarehouse(v *Warehouse) *PropertyQuestionCreate {
	return _c.SetWarehouseID(v.ID)
}

// Mutation returns the PropertyQuestionMutation object of the builder.
func (_c *PropertyQuestionCreate) Mutation() *PropertyQuestionMutation {
	return _c.mutation
}

// Save creates the PropertyQuestion in the database.
func (_c *PropertyQuestionCreate) Save(ctx context.Context) (*PropertyQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PropertyQuestionCreate) SaveX(ctx context.Context) *PropertyQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PropertyQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PropertyQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PropertyQuestionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := propertyquestion.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := propertyquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := propertyquestion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PropertyQuestionCreate) check() error {
	if _, ok := _c.mutation.WarehouseID(); !ok {
		return &ValidationError{Name: "warehouse_id", err: errors.New(`ent: missing required field "PropertyQuestion.warehouse_id"`)}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "PropertyQuestion.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := propertyquestion.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "PropertyQuestion.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PropertyQuestion.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := propertyquestion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PropertyQuestion.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AnswerSource(); ok {
		if err := propertyquestion.AnswerSourceValidator(v); err != nil {
			return &ValidationError{Name: "answer_source", err: fmt.Errorf(`ent: validator failed for field "PropertyQuestion.answer_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PropertyQuestion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PropertyQuestion.updated_at"`)}
	}
	if len(_c.mutation.WarehouseIDs()) == 0 {
		return &ValidationError{Name: "warehouse", err: errors.New(`ent: missing required edge "PropertyQuestion.warehouse"`)}
	}
	return nil
}

func (_c *PropertyQuestionCreate) sqlSave(ctx context.Context) (*PropertyQuestion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PropertyQuestion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PropertyQuestionCreate) createSpec() (*PropertyQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &PropertyQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(propertyquestion.Table, sqlgraph.NewFieldSpec(propertyquestion.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EngagementID(); ok {
		_spec.SetField(propertyquestion.FieldEngagementID, field.TypeString, value)
		_node.EngagementID = value
	}
	if value, ok := _c.mutation.AskedByPhone(); ok {
		_spec.SetField(propertyquestion.FieldAskedByPhone, field.TypeString, value)
		_node.AskedByPhone = value
	}
	if value, ok := _c.mutation.AskedByUserID(); ok {
		_spec.SetField(propertyquestion.FieldAskedByUserID, field.TypeString, value)
		_node.AskedByUserID = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(propertyquestion.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(propertyquestion.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AnswerText(); ok {
		_spec.SetField(propertyquestion.FieldAnswerText, field.TypeString, value)
		_node.AnswerText = value
	}
	if value, ok := _c.mutation.AnswerSource(); ok {
		_spec.SetField(propertyquestion.FieldAnswerSource, field.TypeEnum, value)
		_node.AnswerSource = &value
	}
	if value, ok := _c.mutation.RoutedAt(); ok {
		_spec.SetField(propertyquestion.FieldRoutedAt, field.TypeTime, value)
		_node.RoutedAt = &value
	}
	if value, ok := _c.mutation.AnsweredAt(); ok {
		_spec.SetField(propertyquestion.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(propertyquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(propertyquestion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WarehouseIDs(); len(nodes) > 0 {
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
		_node.WarehouseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PropertyQuestion.Create().
//		SetWarehouseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PropertyQuestionUpsert) {
//			SetWarehouseID(v+v).
//		}).
//		Exec(ctx)
func (_c *PropertyQuestionCreate) OnConflict(opts ...sql.ConflictOption) *PropertyQuestionUpsertOne {
	_c.conflict = opts
	return &PropertyQuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PropertyQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PropertyQuestionCreate) OnConflictColumns(columns ...string) *PropertyQuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PropertyQuestionUpsertOne{
		create: _c,
	}
}

type (
	// PropertyQuestionUpsertOne is the builder for "upsert"-ing
	//  one PropertyQuestion node.
	PropertyQuestionUpsertOne struct {
		create *PropertyQuestionCreate
	}

	// PropertyQuestionUpsert is the "OnConflict" setter.
	PropertyQuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetWarehouseID sets the "warehouse_id" field.
func (u *PropertyQuestionUpsert) SetWarehouseID(v string) *PropertyQuestionUpsert {
	u.Set(propertyquestion.FieldWarehouseID, v)
	return u
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *PropertyQuestionUpsert) UpdateWarehouseID() *PropertyQuestionUpsert {
	u.SetExcluded(propertyquestion.FieldWarehouseID)
	return u
}

// SetEngagementID sets the "engagement_id" field.
func (u *PropertyQuestionUpsert) SetEngagementID(v string) *PropertyQuestionUpsert {
	u.Set(propertyquestion.FieldEngagementID, v)
	return u
}

// UpdateEngagementID sets the "engagement_id" field to the value that was provided on create.
func (u *PropertyQuestionUpsert) UpdateEngagementID() *PropertyQuestionUpsert {
	u.SetExcluded(propertyquestion.FieldEngagementID)
	return u
}

// ClearEngagementID clears the value of the "engagement_id" field.
func (u *PropertyQuestionUpsert) ClearEngagementID() *PropertyQuestionUpsert {
	u.SetNull(propertyquestion.FieldEngagementID)
	return u
}

// SetAskedByPhone sets the "asked_by_phone" field.
func (u *PropertyQuestionUpsert) SetAskedByPhone(v string) *PropertyQuestionUpsert {
	u.Set(propertyquestion.FieldAskedByPhone, v)
	return u
}

// UpdateAskedByPhone sets the "asked_by_phone" field to the value that was provided on create.
func (u *PropertyQuestionUpsert) UpdateAskedByPhone() *PropertyQuestionUpsert {
	u.SetExcluded(propertyquestion.FieldAskedByPhone)
	return u
}

// ClearAskedByPhone clears the value of the "asked_by_phone" field.
func (u *PropertyQuestionUpsert) ClearAskedByPhone() *PropertyQuestionUpsert {
	u.SetNull(propertyquestion.FieldAskedByPhone)
	return u
}

// SetAskedByUserID sets the "asked_by_user_id" field.
func (u *PropertyQuestionUpsert) SetAskedByUserID(v string) *PropertyQuestionUpsert {
	u.Set(propertyquestion.FieldAskedByUserID, v)
	return u
}

// UpdateAskedByUserID sets the "asked_by_user_id" field to the value that was provided on create.
func (u *PropertyQuestionUpsert) UpdateAskedByUserID() *PropertyQuestionUpsert {
	u.SetExcluded(propertyquestion.FieldAskedByUserID)
	return u
}

// ClearAskedByUserID clears the value of the "asked_by_user_id" field.
func (u *PropertyQuestionUpsert) ClearAskedByUserID() *PropertyQuestionUpsert {
	u.SetNull(propertyquestion.FieldAskedByUserID)
	return u
}

// SetQuestionText sets the "question_text" field.
func (u *PropertyQuestionUpsert) SetQuestionText(v string) *PropertyQuestionUpsert {
	u.Set(propertyquestion.FieldQuestionText, v)
	return u
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *PropertyQuestionUpsert) UpdateQuestionText() *PropertyQuestionUpsert {
	u.SetExcluded(propertyquestion.FieldQuestionText)
	return u
}

// SetStatus sets the "status" field.
func (u *PropertyQuestionUpsert) SetStatus(v propertyquestion.Status) *PropertyQuestionUpsert {
	u.Set(propertyquestion.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PropertyQuestionUpsert) UpdateStatus() *PropertyQuestionUpsert {
	u.SetExcluded(propertyquestion.FieldStatus)
	return u
}

// SetAnswerText sets the "answer_text" field.
func (u *PropertyQuestionUpsert) SetAnswerText(v string) *PropertyQuestionUpsert {
	u.Set(propertyquestion.FieldAnswerText, v)
	return u
}

// UpdateAnswerText sets the "answer_text" field to the value that was provided on create.
func (u *PropertyQuestionUpsert) UpdateAnswerText() *PropertyQuestionUpsert {
	u.SetExcluded(propertyquestion.FieldAnswerText)
	return u
}

// ClearAnswerText clears the value of the "answer_text" field.
func (u *PropertyQuestionUpsert) ClearAnswerText() *PropertyQuestionUpsert {
	u.SetNull(propertyquestion.FieldAnswerText)
	return u
}

// SetAnswerSource sets the "answer_source" field.
func (u *PropertyQuestionUpsert) SetAnswerSource(v propertyquestion.AnswerSource) *PropertyQuestionUpsert {
	u.Set(propertyquestion.FieldAnswerSource, v)
	return u
}

// UpdateAnswerSource sets the "answer_source" field to the value that was provided on create.
func (u *PropertyQuestionUpsert) UpdateAnswerSource() *PropertyQuestionUpsert {
	u.SetExcluded(propertyquestion.FieldAnswerSource)
	return u
}

// ClearAnswerSource clears the value of the "answer_source" field.
func (u *PropertyQuestionUpsert) ClearAnswerSource() *PropertyQuestionUpsert {
	u.SetNull(propertyquestion.FieldAnswerSource)
	return u
}

// SetRoutedAt sets the "routed_at" field.
func (u *PropertyQuestionUpsert) SetRoutedAt(v time.Time) *PropertyQuestionUpsert {
	u.Set(propertyquestion.FieldRoutedAt, v)
	return u
}

// UpdateRoutedAt sets the "routed_at" field to the value that was provided on create.
func (u *PropertyQuestionUpsert) UpdateRoutedAt() *PropertyQuestionUpsert {
	u.SetExcluded(propertyquestion.FieldRoutedAt)
	return u
}

// ClearRoutedAt clears the value of the "routed_at" field.
func (u *PropertyQuestionUpsert) ClearRoutedAt() *PropertyQuestionUpsert {
	u.SetNull(propertyquestion.FieldRoutedAt)
	return u
}

// SetAnsweredAt sets the "answered_at" field.
func (u *PropertyQuestionUpsert) SetAnsweredAt(v time.Time) *PropertyQuestionUpsert {
	u.Set(propertyquestion.FieldAnsweredAt, v)
	return u
}

// UpdateAnsweredAt sets the "answered_at" field to the value that was provided on create.
func (u *PropertyQuestionUpsert) UpdateAnsweredAt() *PropertyQuestionUpsert {
	u.SetExcluded(propertyquestion.FieldAnsweredAt)
	return u
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (u *PropertyQuestionUpsert) ClearAnsweredAt() *PropertyQuestionUpsert {
	u.SetNull(propertyquestion.FieldAnsweredAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PropertyQuestionUpsert) SetUpdatedAt(v time.Time) *PropertyQuestionUpsert {
	u.Set(propertyquestion.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PropertyQuestionUpsert) UpdateUpdatedAt() *PropertyQuestionUpsert {
	u.SetExcluded(propertyquestion.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PropertyQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(propertyquestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PropertyQuestionUpsertOne) UpdateNewValues() *PropertyQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(propertyquestion.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(propertyquestion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PropertyQuestion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PropertyQuestionUpsertOne) Ignore() *PropertyQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PropertyQuestionUpsertOne) DoNothing() *PropertyQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PropertyQuestionCreate.OnConflict
// documentation for more info.
func (u *PropertyQuestionUpsertOne) Update(set func(*PropertyQuestionUpsert)) *PropertyQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PropertyQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *PropertyQuestionUpsertOne) SetWarehouseID(v string) *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *PropertyQuestionUpsertOne) UpdateWarehouseID() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetEngagementID sets the "engagement_id" field.
func (u *PropertyQuestionUpsertOne) SetEngagementID(v string) *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetEngagementID(v)
	})
}

// UpdateEngagementID sets the "engagement_id" field to the value that was provided on create.
func (u *PropertyQuestionUpsertOne) UpdateEngagementID() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateEngagementID()
	})
}

// ClearEngagementID clears the value of the "engagement_id" field.
func (u *PropertyQuestionUpsertOne) ClearEngagementID() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearEngagementID()
	})
}

// SetAskedByPhone sets the "asked_by_phone" field.
func (u *PropertyQuestionUpsertOne) SetAskedByPhone(v string) *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetAskedByPhone(v)
	})
}

// UpdateAskedByPhone sets the "asked_by_phone" field to the value that was provided on create.
func (u *PropertyQuestionUpsertOne) UpdateAskedByPhone() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateAskedByPhone()
	})
}

// ClearAskedByPhone clears the value of the "asked_by_phone" field.
func (u *PropertyQuestionUpsertOne) ClearAskedByPhone() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearAskedByPhone()
	})
}

// SetAskedByUserID sets the "asked_by_user_id" field.
func (u *PropertyQuestionUpsertOne) SetAskedByUserID(v string) *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetAskedByUserID(v)
	})
}

// UpdateAskedByUserID sets the "asked_by_user_id" field to the value that was provided on create.
func (u *PropertyQuestionUpsertOne) UpdateAskedByUserID() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateAskedByUserID()
	})
}

// ClearAskedByUserID clears the value of the "asked_by_user_id" field.
func (u *PropertyQuestionUpsertOne) ClearAskedByUserID() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearAskedByUserID()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *PropertyQuestionUpsertOne) SetQuestionText(v string) *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *PropertyQuestionUpsertOne) UpdateQuestionText() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateQuestionText()
	})
}

// SetStatus sets the "status" field.
func (u *PropertyQuestionUpsertOne) SetStatus(v propertyquestion.Status) *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PropertyQuestionUpsertOne) UpdateStatus() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateStatus()
	})
}

// SetAnswerText sets the "answer_text" field.
func (u *PropertyQuestionUpsertOne) SetAnswerText(v string) *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetAnswerText(v)
	})
}

// UpdateAnswerText sets the "answer_text" field to the value that was provided on create.
func (u *PropertyQuestionUpsertOne) UpdateAnswerText() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateAnswerText()
	})
}

// ClearAnswerText clears the value of the "answer_text" field.
func (u *PropertyQuestionUpsertOne) ClearAnswerText() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearAnswerText()
	})
}

// SetAnswerSource sets the "answer_source" field.
func (u *PropertyQuestionUpsertOne) SetAnswerSource(v propertyquestion.AnswerSource) *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetAnswerSource(v)
	})
}

// UpdateAnswerSource sets the "answer_source" field to the value that was provided on create.
func (u *PropertyQuestionUpsertOne) UpdateAnswerSource() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateAnswerSource()
	})
}

// ClearAnswerSource clears the value of the "answer_source" field.
func (u *PropertyQuestionUpsertOne) ClearAnswerSource() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearAnswerSource()
	})
}

// SetRoutedAt sets the "routed_at" field.
func (u *PropertyQuestionUpsertOne) SetRoutedAt(v time.Time) *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetRoutedAt(v)
	})
}

// UpdateRoutedAt sets the "routed_at" field to the value that was provided on create.
func (u *PropertyQuestionUpsertOne) UpdateRoutedAt() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateRoutedAt()
	})
}

// ClearRoutedAt clears the value of the "routed_at" field.
func (u *PropertyQuestionUpsertOne) ClearRoutedAt() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearRoutedAt()
	})
}

// SetAnsweredAt sets the "answered_at" field.
func (u *PropertyQuestionUpsertOne) SetAnsweredAt(v time.Time) *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetAnsweredAt(v)
	})
}

// UpdateAnsweredAt sets the "answered_at" field to the value that was provided on create.
func (u *PropertyQuestionUpsertOne) UpdateAnsweredAt() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateAnsweredAt()
	})
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (u *PropertyQuestionUpsertOne) ClearAnsweredAt() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearAnsweredAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PropertyQuestionUpsertOne) SetUpdatedAt(v time.Time) *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PropertyQuestionUpsertOne) UpdateUpdatedAt() *PropertyQuestionUpsertOne {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PropertyQuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PropertyQuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PropertyQuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PropertyQuestionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PropertyQuestionUpsertOne.ID is not supported by MySQL driver. Use PropertyQuestionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PropertyQuestionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PropertyQuestionCreateBulk is the builder for creating many PropertyQuestion entities in bulk.
type PropertyQuestionCreateBulk struct {
	config
	err      error
	builders []*PropertyQuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the PropertyQuestion entities in the database.
func (_c *PropertyQuestionCreateBulk) Save(ctx context.Context) ([]*PropertyQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PropertyQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PropertyQuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PropertyQuestionCreateBulk) SaveX(ctx context.Context) []*PropertyQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PropertyQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PropertyQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PropertyQuestion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PropertyQuestionUpsert) {
//			SetWarehouseID(v+v).
//		}).
//		Exec(ctx)
func (_c *PropertyQuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PropertyQuestionUpsertBulk {
	_c.conflict = opts
	return &PropertyQuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PropertyQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PropertyQuestionCreateBulk) OnConflictColumns(columns ...string) *PropertyQuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PropertyQuestionUpsertBulk{
		create: _c,
	}
}

// PropertyQuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of PropertyQuestion nodes.
type PropertyQuestionUpsertBulk struct {
	create *PropertyQuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PropertyQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(propertyquestion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PropertyQuestionUpsertBulk) UpdateNewValues() *PropertyQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(propertyquestion.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(propertyquestion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PropertyQuestion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PropertyQuestionUpsertBulk) Ignore() *PropertyQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PropertyQuestionUpsertBulk) DoNothing() *PropertyQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PropertyQuestionCreateBulk.OnConflict
// documentation for more info.
func (u *PropertyQuestionUpsertBulk) Update(set func(*PropertyQuestionUpsert)) *PropertyQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PropertyQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *PropertyQuestionUpsertBulk) SetWarehouseID(v string) *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *PropertyQuestionUpsertBulk) UpdateWarehouseID() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetEngagementID sets the "engagement_id" field.
func (u *PropertyQuestionUpsertBulk) SetEngagementID(v string) *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetEngagementID(v)
	})
}

// UpdateEngagementID sets the "engagement_id" field to the value that was provided on create.
func (u *PropertyQuestionUpsertBulk) UpdateEngagementID() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateEngagementID()
	})
}

// ClearEngagementID clears the value of the "engagement_id" field.
func (u *PropertyQuestionUpsertBulk) ClearEngagementID() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearEngagementID()
	})
}

// SetAskedByPhone sets the "asked_by_phone" field.
func (u *PropertyQuestionUpsertBulk) SetAskedByPhone(v string) *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetAskedByPhone(v)
	})
}

// UpdateAskedByPhone sets the "asked_by_phone" field to the value that was provided on create.
func (u *PropertyQuestionUpsertBulk) UpdateAskedByPhone() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateAskedByPhone()
	})
}

// ClearAskedByPhone clears the value of the "asked_by_phone" field.
func (u *PropertyQuestionUpsertBulk) ClearAskedByPhone() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearAskedByPhone()
	})
}

// SetAskedByUserID sets the "asked_by_user_id" field.
func (u *PropertyQuestionUpsertBulk) SetAskedByUserID(v string) *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetAskedByUserID(v)
	})
}

// UpdateAskedByUserID sets the "asked_by_user_id" field to the value that was provided on create.
func (u *PropertyQuestionUpsertBulk) UpdateAskedByUserID() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateAskedByUserID()
	})
}

// ClearAskedByUserID clears the value of the "asked_by_user_id" field.
func (u *PropertyQuestionUpsertBulk) ClearAskedByUserID() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearAskedByUserID()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *PropertyQuestionUpsertBulk) SetQuestionText(v string) *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *PropertyQuestionUpsertBulk) UpdateQuestionText() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateQuestionText()
	})
}

// SetStatus sets the "status" field.
func (u *PropertyQuestionUpsertBulk) SetStatus(v propertyquestion.Status) *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PropertyQuestionUpsertBulk) UpdateStatus() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateStatus()
	})
}

// SetAnswerText sets the "answer_text" field.
func (u *PropertyQuestionUpsertBulk) SetAnswerText(v string) *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetAnswerText(v)
	})
}

// UpdateAnswerText sets the "answer_text" field to the value that was provided on create.
func (u *PropertyQuestionUpsertBulk) UpdateAnswerText() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateAnswerText()
	})
}

// ClearAnswerText clears the value of the "answer_text" field.
func (u *PropertyQuestionUpsertBulk) ClearAnswerText() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearAnswerText()
	})
}

// SetAnswerSource sets the "answer_source" field.
func (u *PropertyQuestionUpsertBulk) SetAnswerSource(v propertyquestion.AnswerSource) *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetAnswerSource(v)
	})
}

// UpdateAnswerSource sets the "answer_source" field to the value that was provided on create.
func (u *PropertyQuestionUpsertBulk) UpdateAnswerSource() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateAnswerSource()
	})
}

// ClearAnswerSource clears the value of the "answer_source" field.
func (u *PropertyQuestionUpsertBulk) ClearAnswerSource() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearAnswerSource()
	})
}

// SetRoutedAt sets the "routed_at" field.
func (u *PropertyQuestionUpsertBulk) SetRoutedAt(v time.Time) *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetRoutedAt(v)
	})
}

// UpdateRoutedAt sets the "routed_at" field to the value that was provided on create.
func (u *PropertyQuestionUpsertBulk) UpdateRoutedAt() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateRoutedAt()
	})
}

// ClearRoutedAt clears the value of the "routed_at" field.
func (u *PropertyQuestionUpsertBulk) ClearRoutedAt() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearRoutedAt()
	})
}

// SetAnsweredAt sets the "answered_at" field.
func (u *PropertyQuestionUpsertBulk) SetAnsweredAt(v time.Time) *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetAnsweredAt(v)
	})
}

// UpdateAnsweredAt sets the "answered_at" field to the value that was provided on create.
func (u *PropertyQuestionUpsertBulk) UpdateAnsweredAt() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateAnsweredAt()
	})
}

// ClearAnsweredAt clears the value of the "answered_at" field.
func (u *PropertyQuestionUpsertBulk) ClearAnsweredAt() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.ClearAnsweredAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PropertyQuestionUpsertBulk) SetUpdatedAt(v time.Time) *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PropertyQuestionUpsertBulk) UpdateUpdatedAt() *PropertyQuestionUpsertBulk {
	return u.Update(func(s *PropertyQuestionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PropertyQuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PropertyQuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PropertyQuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PropertyQuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
