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
	"github.com/warehouse-exchange/wex/ent/notification"
)

// NotificationCreate is the builder for creating a Notification entity.
type NotificationCreate struct {
	config
	mutation *NotificationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChannel sets the "channel" field.
func (_c *NotificationCreate) SetChannel(v notification.Channel) *NotificationCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetRecipient sets the "recipient" field.
func (_c *NotificationCreate) SetRecipient(v string) *NotificationCreate {
	_c.mutation.SetRecipient(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *NotificationCreate) SetSubject(v string) *NotificationCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableSubject(v *string) *NotificationCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *NotificationCreate) SetBody(v string) *NotificationCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetRefType sets the "ref_type" field.
func (_c *NotificationCreate) SetRefType(v string) *NotificationCreate {
	_c.mutation.SetRefType(v)
	return _c
}

// SetNillableRefType sets the "ref_type" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableRefType(v *string) *NotificationCreate {
	if v != nil {
		_c.SetRefType(*v)
	}
	return _c
}

// SetRefID sets the "ref_id" field.
func (_c *NotificationCreate) SetRefID(v string) *NotificationCreate {
	_c.mutation.SetRefID(v)
	return _c
}

// SetNillableRefID sets the "ref_id" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableRefID(v *string) *NotificationCreate {
	if v != nil {
		_c.SetRefID(*v)
	}
	return _c
}

// SetDedupeKey sets the "dedupe_key" field.
func (_c *NotificationCreate) SetDedupeKey(v string) *NotificationCreate {
	_c.mutation.SetDedupeKey(v)
	return _c
}

// SetNillableDedupeKey sets the "dedupe_key" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableDedupeKey(v *string) *NotificationCreate {
	if v != nil {
		_c.SetDedupeKey(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *NotificationCreate) SetStatus(v notification.Status) *NotificationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableStatus(v *notification.Status) *NotificationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *NotificationCreate) SetAttempts(v int) *NotificationCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableAttempts(v *int) *NotificationCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *NotificationCreate) SetLastError(v string) *NotificationCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableLastError(v *string) *NotificationCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetScheduledFor sets the "scheduled_for" field.
func (_c *NotificationCreate) SetScheduledFor(v time.Time) *NotificationCreate {
	_c.mutation.SetScheduledFor(v)
	return _c
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableScheduledFor(v *time.Time) *NotificationCreate {
	if v != nil {
		_c.SetScheduledFor(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *NotificationCreate) SetSentAt(v time.Time) *NotificationCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableSentAt(v *time.Time) *NotificationCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationCreate) SetCreatedAt(v time.Time) *NotificationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationCreate) SetNillableCreatedAt(v *time.Time) *NotificationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NotificationCreate) SetID(v string) *NotificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the NotificationMutation object of the builder.
func (_c *NotificationCreate) Mutation() *NotificationMutation {
	return _c.mutation
}

// Save creates the Notification in the database.
func (_c *NotificationCreate) Save(ctx context.Context) (*Notification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationCreate) SaveX(ctx context.Context) *Notification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := notification.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := notification.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notification.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationCreate) check() error {
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "Notification.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := notification.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`ent: validator failed for field "Notification.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Recipient(); !ok {
		return &ValidationError{Name: "recipient", err: errors.New(`ent: missing required field "Notification.recipient"`)}
	}
	if v, ok := _c.mutation.Recipient(); ok {
		if err := notification.RecipientValidator(v); err != nil {
			return &ValidationError{Name: "recipient", err: fmt.Errorf(`ent: validator failed for field "Notification.recipient": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Notification.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := notification.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Notification.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Notification.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := notification.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Notification.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Notification.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Notification.created_at"`)}
	}
	return nil
}

func (_c *NotificationCreate) sqlSave(ctx context.Context) (*Notification, error) {
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
			return nil, fmt.Errorf("unexpected Notification.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NotificationCreate) createSpec() (*Notification, *sqlgraph.CreateSpec) {
	var (
		_node = &Notification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notification.Table, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(notification.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Recipient(); ok {
		_spec.SetField(notification.FieldRecipient, field.TypeString, value)
		_node.Recipient = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(notification.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(notification.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.RefType(); ok {
		_spec.SetField(notification.FieldRefType, field.TypeString, value)
		_node.RefType = value
	}
	if value, ok := _c.mutation.RefID(); ok {
		_spec.SetField(notification.FieldRefID, field.TypeString, value)
		_node.RefID = value
	}
	if value, ok := _c.mutation.DedupeKey(); ok {
		_spec.SetField(notification.FieldDedupeKey, field.TypeString, value)
		_node.DedupeKey = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(notification.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(notification.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(notification.FieldLastError, field.TypeString, value)
		_node.LastError = value
	}
	if value, ok := _c.mutation.ScheduledFor(); ok {
		_spec.SetField(notification.FieldScheduledFor, field.TypeTime, value)
		_node.ScheduledFor = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(notification.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notification.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Notification.Create().
//		SetChannel(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NotificationUpsert) {
//			SetChannel(v+v).
//		}).
//		Exec(ctx)
func (_c *NotificationCreate) OnConflict(opts ...sql.ConflictOption) *NotificationUpsertOne {
	_c.conflict = opts
	return &NotificationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Notification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NotificationCreate) OnConflictColumns(columns ...string) *NotificationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NotificationUpsertOne{
		create: _c,
	}
}

type (
	// NotificationUpsertOne is the builder for "upsert"-ing
	//  one Notification node.
	NotificationUpsertOne struct {
		create *NotificationCreate
	}

	// NotificationUpsert is the "OnConflict" setter.
	NotificationUpsert struct {
		*sql.UpdateSet
	}
)

// SetSubject sets the "subject" field.
func (u *NotificationUpsert) SetSubject(v string) *NotificationUpsert {
	u.Set(notification.FieldSubject, v)
	return u
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateSubject() *NotificationUpsert {
	u.SetExcluded(notification.FieldSubject)
	return u
}

// ClearSubject clears the value of the "subject" field.
func (u *NotificationUpsert) ClearSubject() *NotificationUpsert {
	u.SetNull(notification.FieldSubject)
	return u
}

// SetBody sets the "body" field.
func (u *NotificationUpsert) SetBody(v string) *NotificationUpsert {
	u.Set(notification.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateBody() *NotificationUpsert {
	u.SetExcluded(notification.FieldBody)
	return u
}

// SetRefType sets the "ref_type" field.
func (u *NotificationUpsert) SetRefType(v string) *NotificationUpsert {
	u.Set(notification.FieldRefType, v)
	return u
}

// UpdateRefType sets the "ref_type" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateRefType() *NotificationUpsert {
	u.SetExcluded(notification.FieldRefType)
	return u
}

// ClearRefType clears the value of the "ref_type" field.
func (u *NotificationUpsert) ClearRefType() *NotificationUpsert {
	u.SetNull(notification.FieldRefType)
	return u
}

// SetRefID sets the "ref_id" field.
func (u *NotificationUpsert) SetRefID(v string) *NotificationUpsert {
	u.Set(notification.FieldRefID, v)
	return u
}

// UpdateRefID sets the "ref_id" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateRefID() *NotificationUpsert {
	u.SetExcluded(notification.FieldRefID)
	return u
}

// ClearRefID clears the value of the "ref_id" field.
func (u *NotificationUpsert) ClearRefID() *NotificationUpsert {
	u.SetNull(notification.FieldRefID)
	return u
}

// SetDedupeKey sets the "dedupe_key" field.
func (u *NotificationUpsert) SetDedupeKey(v string) *NotificationUpsert {
	u.Set(notification.FieldDedupeKey, v)
	return u
}

// UpdateDedupeKey sets the "dedupe_key" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateDedupeKey() *NotificationUpsert {
	u.SetExcluded(notification.FieldDedupeKey)
	return u
}

// ClearDedupeKey clears the value of the "dedupe_key" field.
func (u *NotificationUpsert) ClearDedupeKey() *NotificationUpsert {
	u.SetNull(notification.FieldDedupeKey)
	return u
}

// SetStatus sets the "status" field.
func (u *NotificationUpsert) SetStatus(v notification.Status) *NotificationUpsert {
	u.Set(notification.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateStatus() *NotificationUpsert {
	u.SetExcluded(notification.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *NotificationUpsert) SetAttempts(v int) *NotificationUpsert {
	u.Set(notification.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateAttempts() *NotificationUpsert {
	u.SetExcluded(notification.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *NotificationUpsert) AddAttempts(v int) *NotificationUpsert {
	u.Add(notification.FieldAttempts, v)
	return u
}

// SetLastError sets the "last_error" field.
func (u *NotificationUpsert) SetLastError(v string) *NotificationUpsert {
	u.Set(notification.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateLastError() *NotificationUpsert {
	u.SetExcluded(notification.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *NotificationUpsert) ClearLastError() *NotificationUpsert {
	u.SetNull(notification.FieldLastError)
	return u
}

// SetScheduledFor sets the "scheduled_for" field.
func (u *NotificationUpsert) SetScheduledFor(v time.Time) *NotificationUpsert {
	u.Set(notification.FieldScheduledFor, v)
	return u
}

// UpdateScheduledFor sets the "scheduled_for" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateScheduledFor() *NotificationUpsert {
	u.SetExcluded(notification.FieldScheduledFor)
	return u
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (u *NotificationUpsert) ClearScheduledFor() *NotificationUpsert {
	u.SetNull(notification.FieldScheduledFor)
	return u
}

// SetSentAt sets the "sent_at" field.
func (u *NotificationUpsert) SetSentAt(v time.Time) *NotificationUpsert {
	u.Set(notification.FieldSentAt, v)
	return u
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *NotificationUpsert) UpdateSentAt() *NotificationUpsert {
	u.SetExcluded(notification.FieldSentAt)
	return u
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *NotificationUpsert) ClearSentAt() *NotificationUpsert {
	u.SetNull(notification.FieldSentAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Notification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(notification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NotificationUpsertOne) UpdateNewValues() *NotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(notification.FieldID)
		}
		if _, exists := u.create.mutation.Channel(); exists {
			s.SetIgnore(notification.FieldChannel)
		}
		if _, exists := u.create.mutation.Recipient(); exists {
			s.SetIgnore(notification.FieldRecipient)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(notification.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Notification.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *NotificationUpsertOne) Ignore() *NotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NotificationUpsertOne) DoNothing() *NotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NotificationCreate.OnConflict
// documentation for more info.
func (u *NotificationUpsertOne) Update(set func(*NotificationUpsert)) *NotificationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NotificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubject sets the "subject" field.
func (u *NotificationUpsertOne) SetSubject(v string) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateSubject() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *NotificationUpsertOne) ClearSubject() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearSubject()
	})
}

// SetBody sets the "body" field.
func (u *NotificationUpsertOne) SetBody(v string) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateBody() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateBody()
	})
}

// SetRefType sets the "ref_type" field.
func (u *NotificationUpsertOne) SetRefType(v string) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetRefType(v)
	})
}

// UpdateRefType sets the "ref_type" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateRefType() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateRefType()
	})
}

// ClearRefType clears the value of the "ref_type" field.
func (u *NotificationUpsertOne) ClearRefType() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearRefType()
	})
}

// SetRefID sets the "ref_id" field.
func (u *NotificationUpsertOne) SetRefID(v string) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetRefID(v)
	})
}

// UpdateRefID sets the "ref_id" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateRefID() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateRefID()
	})
}

// ClearRefID clears the value of the "ref_id" field.
func (u *NotificationUpsertOne) ClearRefID() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearRefID()
	})
}

// SetDedupeKey sets the "dedupe_key" field.
func (u *NotificationUpsertOne) SetDedupeKey(v string) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetDedupeKey(v)
	})
}

// UpdateDedupeKey sets the "dedupe_key" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateDedupeKey() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateDedupeKey()
	})
}

// ClearDedupeKey clears the value of the "dedupe_key" field.
func (u *NotificationUpsertOne) ClearDedupeKey() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearDedupeKey()
	})
}

// SetStatus sets the "status" field.
func (u *NotificationUpsertOne) SetStatus(v notification.Status) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateStatus() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *NotificationUpsertOne) SetAttempts(v int) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *NotificationUpsertOne) AddAttempts(v int) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateAttempts() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateAttempts()
	})
}

// SetLastError sets the "last_error" field.
func (u *NotificationUpsertOne) SetLastError(v string) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateLastError() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *NotificationUpsertOne) ClearLastError() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearLastError()
	})
}

// SetScheduledFor sets the "scheduled_for" field.
func (u *NotificationUpsertOne) SetScheduledFor(v time.Time) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetScheduledFor(v)
	})
}

// UpdateScheduledFor sets the "scheduled_for" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateScheduledFor() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateScheduledFor()
	})
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (u *NotificationUpsertOne) ClearScheduledFor() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearScheduledFor()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *NotificationUpsertOne) SetSentAt(v time.Time) *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *NotificationUpsertOne) UpdateSentAt() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateSentAt()
	})
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *NotificationUpsertOne) ClearSentAt() *NotificationUpsertOne {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearSentAt()
	})
}

// Exec executes the query.
func (u *NotificationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for NotificationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NotificationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *NotificationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: NotificationUpsertOne.ID is not supported by MySQL driver. Use NotificationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *NotificationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// NotificationCreateBulk is the builder for creating many Notification entities in bulk.
type NotificationCreateBulk struct {
	config
	err      error
	builders []*NotificationCreate
	conflict []sql.ConflictOption
}

// Save creates the Notification entities in the database.
func (_c *NotificationCreateBulk) Save(ctx context.Context) ([]*Notification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Notification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationMutation)
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
func (_c *NotificationCreateBulk) SaveX(ctx context.Context) []*Notification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Notification.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NotificationUpsert) {
//			SetChannel(v+v).
//		}).
//		Exec(ctx)
func (_c *NotificationCreateBulk) OnConflict(opts ...sql.ConflictOption) *NotificationUpsertBulk {
	_c.conflict = opts
	return &NotificationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Notification.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NotificationCreateBulk) OnConflictColumns(columns ...string) *NotificationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NotificationUpsertBulk{
		create: _c,
	}
}

// NotificationUpsertBulk is the builder for "upsert"-ing
// a bulk of Notification nodes.
type NotificationUpsertBulk struct {
	create *NotificationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Notification.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(notification.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NotificationUpsertBulk) UpdateNewValues() *NotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(notification.FieldID)
			}
			if _, exists := b.mutation.Channel(); exists {
				s.SetIgnore(notification.FieldChannel)
			}
			if _, exists := b.mutation.Recipient(); exists {
				s.SetIgnore(notification.FieldRecipient)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(notification.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Notification.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *NotificationUpsertBulk) Ignore() *NotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NotificationUpsertBulk) DoNothing() *NotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NotificationCreateBulk.OnConflict
// documentation for more info.
func (u *NotificationUpsertBulk) Update(set func(*NotificationUpsert)) *NotificationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NotificationUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubject sets the "subject" field.
func (u *NotificationUpsertBulk) SetSubject(v string) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetSubject(v)
	})
}

// UpdateSubject sets the "subject" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateSubject() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateSubject()
	})
}

// ClearSubject clears the value of the "subject" field.
func (u *NotificationUpsertBulk) ClearSubject() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearSubject()
	})
}

// SetBody sets the "body" field.
func (u *NotificationUpsertBulk) SetBody(v string) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateBody() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateBody()
	})
}

// SetRefType sets the "ref_type" field.
func (u *NotificationUpsertBulk) SetRefType(v string) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetRefType(v)
	})
}

// UpdateRefType sets the "ref_type" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateRefType() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateRefType()
	})
}

// ClearRefType clears the value of the "ref_type" field.
func (u *NotificationUpsertBulk) ClearRefType() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearRefType()
	})
}

// SetRefID sets the "ref_id" field.
func (u *NotificationUpsertBulk) SetRefID(v string) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetRefID(v)
	})
}

// UpdateRefID sets the "ref_id" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateRefID() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateRefID()
	})
}

// ClearRefID clears the value of the "ref_id" field.
func (u *NotificationUpsertBulk) ClearRefID() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearRefID()
	})
}

// SetDedupeKey sets the "dedupe_key" field.
func (u *NotificationUpsertBulk) SetDedupeKey(v string) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetDedupeKey(v)
	})
}

// UpdateDedupeKey sets the "dedupe_key" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateDedupeKey() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateDedupeKey()
	})
}

// ClearDedupeKey clears the value of the "dedupe_key" field.
func (u *NotificationUpsertBulk) ClearDedupeKey() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearDedupeKey()
	})
}

// SetStatus sets the "status" field.
func (u *NotificationUpsertBulk) SetStatus(v notification.Status) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateStatus() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *NotificationUpsertBulk) SetAttempts(v int) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *NotificationUpsertBulk) AddAttempts(v int) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateAttempts() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateAttempts()
	})
}

// SetLastError sets the "last_error" field.
func (u *NotificationUpsertBulk) SetLastError(v string) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateLastError() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *NotificationUpsertBulk) ClearLastError() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearLastError()
	})
}

// SetScheduledFor sets the "scheduled_for" field.
func (u *NotificationUpsertBulk) SetScheduledFor(v time.Time) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetScheduledFor(v)
	})
}

// UpdateScheduledFor sets the "scheduled_for" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateScheduledFor() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateScheduledFor()
	})
}

// ClearScheduledFor clears the value of the "scheduled_for" field.
func (u *NotificationUpsertBulk) ClearScheduledFor() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearScheduledFor()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *NotificationUpsertBulk) SetSentAt(v time.Time) *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *NotificationUpsertBulk) UpdateSentAt() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.UpdateSentAt()
	})
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *NotificationUpsertBulk) ClearSentAt() *NotificationUpsertBulk {
	return u.Update(func(s *NotificationUpsert) {
		s.ClearSentAt()
	})
}

// Exec executes the query.
func (u *NotificationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the NotificationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for NotificationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NotificationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
