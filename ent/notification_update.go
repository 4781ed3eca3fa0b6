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
	"github.com/warehouse-exchange/wex/ent/notification"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// NotificationUpdate is the builder for updating Notification entities.
type NotificationUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationMutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (_u *NotificationUpdate) Where(ps ...predicate.Notification) *NotificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *NotificationUpdate) SetSubject(v string) *NotificationUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableSubject(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *NotificationUpdate) ClearSubject() *NotificationUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *NotificationUpdate) SetBody(v string) *NotificationUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableBody(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetRefType sets the "ref_type" field.
func (_u *NotificationUpdate) SetRefType(v string) *NotificationUpdate {
	_u.mutation.SetRefType(v)
	return _u
}

// SetNillableRefType sets the "ref_type" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableRefType(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetRefType(*v)
	}
	return _u
}

// ClearRefType clears the value of the "ref_type" field.
func (_u *NotificationUpdate) ClearRefType() *NotificationUpdate {
	_u.mutation.ClearRefType()
	return _u
}

// SetRefID sets the "ref_id" field.
func (_u *NotificationUpdate) SetRefID(v string) *NotificationUpdate {
	_u.mutation.SetRefID(v)
	return _u
}

// SetNillableRefID sets the "ref_id" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableRefID(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetRefID(*v)
	}
	return _u
}

// ClearRefID clears the value of the "ref_id" field.
func (_u *NotificationUpdate) ClearRefID() *NotificationUpdate {
	_u.mutation.ClearRefID()
	return _u
}

// SetDedupeKey sets the "dedupe_key" field.
func (_u *NotificationUpdate) SetDedupeKey(v string) *NotificationUpdate {
	_u.mutation.SetDedupeKey(v)
	return _u
}

// SetNillableDedupeKey sets the "dedupe_key" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableDedupeKey(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetDedupeKey(*v)
	}
	return _u
}

// ClearDedupeKey clears the value of the "dedupe_key" field.
func (_u *NotificationUpdate) ClearDedupeKey() *NotificationUpdate {
	_u.mutation.ClearDedupeKey()
	return _u
}

// SetStatus sets the "status" field.
func (_u *NotificationUpdate) SetStatus(v notification.Status) *NotificationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableStatus(v *notification.Status) *NotificationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *NotificationUpdate) SetAttempts(v int) *NotificationUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableAttempts(v *int) *NotificationUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *NotificationUpdate) AddAttempts(v int) *NotificationUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *NotificationUpdate) SetLastError(v string) *NotificationUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableLastError(v *string) *NotificationUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *NotificationUpdate) ClearLastError() *NotificationUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *NotificationUpdate) SetScheduledFor(v time.Time) *NotificationUpdate {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableScheduledFor(v *time.Time) *NotificationUpdate {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (_u *NotificationUpdate) ClearScheduledFor() *NotificationUpdate {
	_u.mutation.ClearScheduledFor()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *NotificationUpdate) SetSentAt(v time.Time) *NotificationUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *NotificationUpdate) SetNillableSentAt(v *time.Time) *NotificationUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *NotificationUpdate) ClearSentAt() *NotificationUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the NotificationMutation object of the builder.
func (_u *NotificationUpdate) Mutation() *NotificationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NotificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NotificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationUpdate) check() error {
	if v, ok := _u.mutation.Body(); ok {
		if err := notification.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Notification.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := notification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Notification.status": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(notification.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(notification.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(notification.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefType(); ok {
		_spec.SetField(notification.FieldRefType, field.TypeString, value)
	}
	if _u.mutation.RefTypeCleared() {
		_spec.ClearField(notification.FieldRefType, field.TypeString)
	}
	if value, ok := _u.mutation.RefID(); ok {
		_spec.SetField(notification.FieldRefID, field.TypeString, value)
	}
	if _u.mutation.RefIDCleared() {
		_spec.ClearField(notification.FieldRefID, field.TypeString)
	}
	if value, ok := _u.mutation.DedupeKey(); ok {
		_spec.SetField(notification.FieldDedupeKey, field.TypeString, value)
	}
	if _u.mutation.DedupeKeyCleared() {
		_spec.ClearField(notification.FieldDedupeKey, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(notification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(notification.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(notification.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(notification.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(notification.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(notification.FieldScheduledFor, field.TypeTime, value)
	}
	if _u.mutation.ScheduledForCleared() {
		_spec.ClearField(notification.FieldScheduledFor, field.TypeTime)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(notification.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(notification.FieldSentAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NotificationUpdateOne is the builder for updating a single Notification entity.
type NotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationMutation
}

// SetSubject sets the "subject" field.
func (_u *NotificationUpdateOne) SetSubject(v string) *NotificationUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableSubject(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *NotificationUpdateOne) ClearSubject() *NotificationUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *NotificationUpdateOne) SetBody(v string) *NotificationUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableBody(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetRefType sets the "ref_type" field.
func (_u *NotificationUpdateOne) SetRefType(v string) *NotificationUpdateOne {
	_u.mutation.SetRefType(v)
	return _u
}

// SetNillableRefType sets the "ref_type" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableRefType(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetRefType(*v)
	}
	return _u
}

// ClearRefType clears the value of the "ref_type" field.
func (_u *NotificationUpdateOne) ClearRefType() *NotificationUpdateOne {
	_u.mutation.ClearRefType()
	return _u
}

// SetRefID sets the "ref_id" field.
func (_u *NotificationUpdateOne) SetRefID(v string) *NotificationUpdateOne {
	_u.mutation.SetRefID(v)
	return _u
}

// SetNillableRefID sets the "ref_id" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableRefID(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetRefID(*v)
	}
	return _u
}

// ClearRefID clears the value of the "ref_id" field.
func (_u *NotificationUpdateOne) ClearRefID() *NotificationUpdateOne {
	_u.mutation.ClearRefID()
	return _u
}

// SetDedupeKey sets the "dedupe_key" field.
func (_u *NotificationUpdateOne) SetDedupeKey(v string) *NotificationUpdateOne {
	_u.mutation.SetDedupeKey(v)
	return _u
}

// SetNillableDedupeKey sets the "dedupe_key" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableDedupeKey(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetDedupeKey(*v)
	}
	return _u
}

// ClearDedupeKey clears the value of the "dedupe_key" field.
func (_u *NotificationUpdateOne) ClearDedupeKey() *NotificationUpdateOne {
	_u.mutation.ClearDedupeKey()
	return _u
}

// SetStatus sets the "status" field.
func (_u *NotificationUpdateOne) SetStatus(v notification.Status) *NotificationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableStatus(v *notification.Status) *NotificationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *NotificationUpdateOne) SetAttempts(v int) *NotificationUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableAttempts(v *int) *NotificationUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *NotificationUpdateOne) AddAttempts(v int) *NotificationUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *NotificationUpdateOne) SetLastError(v string) *NotificationUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableLastError(v *string) *NotificationUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *NotificationUpdateOne) ClearLastError() *NotificationUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *NotificationUpdateOne) SetScheduledFor(v time.Time) *NotificationUpdateOne {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableScheduledFor(v *time.Time) *NotificationUpdateOne {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (_u *NotificationUpdateOne) ClearScheduledFor() *NotificationUpdateOne {
	_u.mutation.ClearScheduledFor()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *NotificationUpdateOne) SetSentAt(v time.Time) *NotificationUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *NotificationUpdateOne) SetNillableSentAt(v *time.Time) *NotificationUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *NotificationUpdateOne) ClearSentAt() *NotificationUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the NotificationMutation object of the builder.
func (_u *NotificationUpdateOne) Mutation() *NotificationMutation {
	return _u.mutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (_u *NotificationUpdateOne) Where(ps ...predicate.Notification) *NotificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NotificationUpdateOne) Select(field string, fields ...string) *NotificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Notification entity.
func (_u *NotificationUpdateOne) Save(ctx context.Context) (*Notification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NotificationUpdateOne) SaveX(ctx context.Context) *Notification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NotificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NotificationUpdateOne) check() error {
	if v, ok := _u.mutation.Body(); ok {
		if err := notification.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Notification.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := notification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Notification.status": %w`, err)}
		}
	}
	return nil
}

func (_u *NotificationUpdateOne) sqlSave(ctx context.Context) (_node *Notification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Notification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notification.FieldID)
		for _, f := range fields {
			if !notification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notification.FieldID {
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
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(notification.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(notification.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(notification.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefType(); ok {
		_spec.SetField(notification.FieldRefType, field.TypeString, value)
	}
	if _u.mutation.RefTypeCleared() {
		_spec.ClearField(notification.FieldRefType, field.TypeString)
	}
	if value, ok := _u.mutation.RefID(); ok {
		_spec.SetField(notification.FieldRefID, field.TypeString, value)
	}
	if _u.mutation.RefIDCleared() {
		_spec.ClearField(notification.FieldRefID, field.TypeString)
	}
	if value, ok := _u.mutation.DedupeKey(); ok {
		_spec.SetField(notification.FieldDedupeKey, field.TypeString, value)
	}
	if _u.mutation.DedupeKeyCleared() {
		_spec.ClearField(notification.FieldDedupeKey, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(notification.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(notification.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(notification.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(notification.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(notification.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(notification.FieldScheduledFor, field.TypeTime, value)
	}
	if _u.mutation.ScheduledForCleared() {
		_spec.ClearField(notification.FieldScheduledFor, field.TypeTime)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(notification.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(notification.FieldSentAt, field.TypeTime)
	}
	_node = &Notification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
