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
	"github.com/warehouse-exchange/wex/ent/conversation"
	"github.com/warehouse-exchange/wex/ent/inboundmessage"
)

// InboundMessageCreate is the builder for creating a InboundMessage entity.
type InboundMessageCreate struct {
	config
	mutation *InboundMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConversationID sets the "conversation_id" field.
func (_c *InboundMessageCreate) SetConversationID(v string) *InboundMessageCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *InboundMessageCreate) SetPhone(v string) *InboundMessageCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *InboundMessageCreate) SetBody(v string) *InboundMessageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetProviderRef sets the "provider_ref" field.
func (_c *InboundMessageCreate) SetProviderRef(v string) *InboundMessageCreate {
	_c.mutation.SetProviderRef(v)
	return _c
}

// SetNillableProviderRef sets the "provider_ref" field if the given value is not nil.
func (_c *InboundMessageCreate) SetNillableProviderRef(v *string) *InboundMessageCreate {
	if v != nil {
		_c.SetProviderRef(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InboundMessageCreate) SetStatus(v inboundmessage.Status) *InboundMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InboundMessageCreate) SetNillableStatus(v *inboundmessage.Status) *InboundMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *InboundMessageCreate) SetAttempts(v int) *InboundMessageCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *InboundMessageCreate) SetNillableAttempts(v *int) *InboundMessageCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetClaimedBy sets the "claimed_by" field.
func (_c *InboundMessageCreate) SetClaimedBy(v string) *InboundMessageCreate {
	_c.mutation.SetClaimedBy(v)
	return _c
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_c *InboundMessageCreate) SetNillableClaimedBy(v *string) *InboundMessageCreate {
	if v != nil {
		_c.SetClaimedBy(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *InboundMessageCreate) SetClaimedAt(v time.Time) *InboundMessageCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *InboundMessageCreate) SetNillableClaimedAt(v *time.Time) *InboundMessageCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *InboundMessageCreate) SetHeartbeatAt(v time.Time) *InboundMessageCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *InboundMessageCreate) SetNillableHeartbeatAt(v *time.Time) *InboundMessageCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *InboundMessageCreate) SetCompletedAt(v time.Time) *InboundMessageCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *InboundMessageCreate) SetNillableCompletedAt(v *time.Time) *InboundMessageCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *InboundMessageCreate) SetFailureReason(v string) *InboundMessageCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *InboundMessageCreate) SetNillableFailureReason(v *string) *InboundMessageCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *InboundMessageCreate) SetReceivedAt(v time.Time) *InboundMessageCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *InboundMessageCreate) SetNillableReceivedAt(v *time.Time) *InboundMessageCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InboundMessageCreate) SetID(v string) *InboundMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *InboundMessageCreate) SetConversation(v *Conversation) *InboundMessageCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the InboundMessageMutation object of the builder.
func (_c *InboundMessageCreate) Mutation() *InboundMessageMutation {
	return _c.mutation
}

// Save creates the InboundMessage in the database.
func (_c *InboundMessageCreate) Save(ctx context.Context) (*InboundMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InboundMessageCreate) SaveX(ctx context.Context) *InboundMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboundMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboundMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InboundMessageCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := inboundmessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := inboundmessage.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := inboundmessage.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InboundMessageCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "InboundMessage.conversation_id"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "InboundMessage.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := inboundmessage.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "InboundMessage.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "InboundMessage.body"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "InboundMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := inboundmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InboundMessage.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "InboundMessage.attempts"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "InboundMessage.received_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "InboundMessage.conversation"`)}
	}
	return nil
}

func (_c *InboundMessageCreate) sqlSave(ctx context.Context) (*InboundMessage, error) {
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
			return nil, fmt.Errorf("unexpected InboundMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InboundMessageCreate) createSpec() (*InboundMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &InboundMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inboundmessage.Table, sqlgraph.NewFieldSpec(inboundmessage.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(inboundmessage.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(inboundmessage.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.ProviderRef(); ok {
		_spec.SetField(inboundmessage.FieldProviderRef, field.TypeString, value)
		_node.ProviderRef = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(inboundmessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(inboundmessage.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.ClaimedBy(); ok {
		_spec.SetField(inboundmessage.FieldClaimedBy, field.TypeString, value)
		_node.ClaimedBy = value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(inboundmessage.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(inboundmessage.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(inboundmessage.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(inboundmessage.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(inboundmessage.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inboundmessage.ConversationTable,
			Columns: []string{inboundmessage.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InboundMessage.Create().
//		SetConversationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InboundMessageUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *InboundMessageCreate) OnConflict(opts ...sql.ConflictOption) *InboundMessageUpsertOne {
	_c.conflict = opts
	return &InboundMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InboundMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InboundMessageCreate) OnConflictColumns(columns ...string) *InboundMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InboundMessageUpsertOne{
		create: _c,
	}
}

type (
	// InboundMessageUpsertOne is the builder for "upsert"-ing
	//  one InboundMessage node.
	InboundMessageUpsertOne struct {
		create *InboundMessageCreate
	}

	// InboundMessageUpsert is the "OnConflict" setter.
	InboundMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetConversationID sets the "conversation_id" field.
func (u *InboundMessageUpsert) SetConversationID(v string) *InboundMessageUpsert {
	u.Set(inboundmessage.FieldConversationID, v)
	return u
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *InboundMessageUpsert) UpdateConversationID() *InboundMessageUpsert {
	u.SetExcluded(inboundmessage.FieldConversationID)
	return u
}

// SetPhone sets the "phone" field.
func (u *InboundMessageUpsert) SetPhone(v string) *InboundMessageUpsert {
	u.Set(inboundmessage.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *InboundMessageUpsert) UpdatePhone() *InboundMessageUpsert {
	u.SetExcluded(inboundmessage.FieldPhone)
	return u
}

// SetBody sets the "body" field.
func (u *InboundMessageUpsert) SetBody(v string) *InboundMessageUpsert {
	u.Set(inboundmessage.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *InboundMessageUpsert) UpdateBody() *InboundMessageUpsert {
	u.SetExcluded(inboundmessage.FieldBody)
	return u
}

// SetProviderRef sets the "provider_ref" field.
func (u *InboundMessageUpsert) SetProviderRef(v string) *InboundMessageUpsert {
	u.Set(inboundmessage.FieldProviderRef, v)
	return u
}

// UpdateProviderRef sets the "provider_ref" field to the value that was provided on create.
func (u *InboundMessageUpsert) UpdateProviderRef() *InboundMessageUpsert {
	u.SetExcluded(inboundmessage.FieldProviderRef)
	return u
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (u *InboundMessageUpsert) ClearProviderRef() *InboundMessageUpsert {
	u.SetNull(inboundmessage.FieldProviderRef)
	return u
}

// SetStatus sets the "status" field.
func (u *InboundMessageUpsert) SetStatus(v inboundmessage.Status) *InboundMessageUpsert {
	u.Set(inboundmessage.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InboundMessageUpsert) UpdateStatus() *InboundMessageUpsert {
	u.SetExcluded(inboundmessage.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *InboundMessageUpsert) SetAttempts(v int) *InboundMessageUpsert {
	u.Set(inboundmessage.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *InboundMessageUpsert) UpdateAttempts() *InboundMessageUpsert {
	u.SetExcluded(inboundmessage.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *InboundMessageUpsert) AddAttempts(v int) *InboundMessageUpsert {
	u.Add(inboundmessage.FieldAttempts, v)
	return u
}

// SetClaimedBy sets the "claimed_by" field.
func (u *InboundMessageUpsert) SetClaimedBy(v string) *InboundMessageUpsert {
	u.Set(inboundmessage.FieldClaimedBy, v)
	return u
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *InboundMessageUpsert) UpdateClaimedBy() *InboundMessageUpsert {
	u.SetExcluded(inboundmessage.FieldClaimedBy)
	return u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *InboundMessageUpsert) ClearClaimedBy() *InboundMessageUpsert {
	u.SetNull(inboundmessage.FieldClaimedBy)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *InboundMessageUpsert) SetClaimedAt(v time.Time) *InboundMessageUpsert {
	u.Set(inboundmessage.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *InboundMessageUpsert) UpdateClaimedAt() *InboundMessageUpsert {
	u.SetExcluded(inboundmessage.FieldClaimedAt)
	return u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *InboundMessageUpsert) ClearClaimedAt() *InboundMessageUpsert {
	u.SetNull(inboundmessage.FieldClaimedAt)
	return u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *InboundMessageUpsert) SetHeartbeatAt(v time.Time) *InboundMessageUpsert {
	u.Set(inboundmessage.FieldHeartbeatAt, v)
	return u
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *InboundMessageUpsert) UpdateHeartbeatAt() *InboundMessageUpsert {
	u.SetExcluded(inboundmessage.FieldHeartbeatAt)
	return u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *InboundMessageUpsert) ClearHeartbeatAt() *InboundMessageUpsert {
	u.SetNull(inboundmessage.FieldHeartbeatAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *InboundMessageUpsert) SetCompletedAt(v time.Time) *InboundMessageUpsert {
	u.Set(inboundmessage.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InboundMessageUpsert) UpdateCompletedAt() *InboundMessageUpsert {
	u.SetExcluded(inboundmessage.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InboundMessageUpsert) ClearCompletedAt() *InboundMessageUpsert {
	u.SetNull(inboundmessage.FieldCompletedAt)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *InboundMessageUpsert) SetFailureReason(v string) *InboundMessageUpsert {
	u.Set(inboundmessage.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *InboundMessageUpsert) UpdateFailureReason() *InboundMessageUpsert {
	u.SetExcluded(inboundmessage.FieldFailureReason)
	return u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *InboundMessageUpsert) ClearFailureReason() *InboundMessageUpsert {
	u.SetNull(inboundmessage.FieldFailureReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InboundMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(inboundmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InboundMessageUpsertOne) UpdateNewValues() *InboundMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(inboundmessage.FieldID)
		}
		if _, exists := u.create.mutation.ReceivedAt(); exists {
			s.SetIgnore(inboundmessage.FieldReceivedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InboundMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InboundMessageUpsertOne) Ignore() *InboundMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InboundMessageUpsertOne) DoNothing() *InboundMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InboundMessageCreate.OnConflict
// documentation for more info.
func (u *InboundMessageUpsertOne) Update(set func(*InboundMessageUpsert)) *InboundMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InboundMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *InboundMessageUpsertOne) SetConversationID(v string) *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *InboundMessageUpsertOne) UpdateConversationID() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateConversationID()
	})
}

// SetPhone sets the "phone" field.
func (u *InboundMessageUpsertOne) SetPhone(v string) *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *InboundMessageUpsertOne) UpdatePhone() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdatePhone()
	})
}

// SetBody sets the "body" field.
func (u *InboundMessageUpsertOne) SetBody(v string) *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *InboundMessageUpsertOne) UpdateBody() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateBody()
	})
}

// SetProviderRef sets the "provider_ref" field.
func (u *InboundMessageUpsertOne) SetProviderRef(v string) *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetProviderRef(v)
	})
}

// UpdateProviderRef sets the "provider_ref" field to the value that was provided on create.
func (u *InboundMessageUpsertOne) UpdateProviderRef() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateProviderRef()
	})
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (u *InboundMessageUpsertOne) ClearProviderRef() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.ClearProviderRef()
	})
}

// SetStatus sets the "status" field.
func (u *InboundMessageUpsertOne) SetStatus(v inboundmessage.Status) *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InboundMessageUpsertOne) UpdateStatus() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *InboundMessageUpsertOne) SetAttempts(v int) *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *InboundMessageUpsertOne) AddAttempts(v int) *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *InboundMessageUpsertOne) UpdateAttempts() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateAttempts()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *InboundMessageUpsertOne) SetClaimedBy(v string) *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *InboundMessageUpsertOne) UpdateClaimedBy() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *InboundMessageUpsertOne) ClearClaimedBy() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.ClearClaimedBy()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *InboundMessageUpsertOne) SetClaimedAt(v time.Time) *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *InboundMessageUpsertOne) UpdateClaimedAt() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *InboundMessageUpsertOne) ClearClaimedAt() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.ClearClaimedAt()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *InboundMessageUpsertOne) SetHeartbeatAt(v time.Time) *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *InboundMessageUpsertOne) UpdateHeartbeatAt() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *InboundMessageUpsertOne) ClearHeartbeatAt() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *InboundMessageUpsertOne) SetCompletedAt(v time.Time) *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InboundMessageUpsertOne) UpdateCompletedAt() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InboundMessageUpsertOne) ClearCompletedAt() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.ClearCompletedAt()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *InboundMessageUpsertOne) SetFailureReason(v string) *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *InboundMessageUpsertOne) UpdateFailureReason() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *InboundMessageUpsertOne) ClearFailureReason() *InboundMessageUpsertOne {
	return u.Update(func(s *InboundMessageUpsert) {
		s.ClearFailureReason()
	})
}

// Exec executes the query.
func (u *InboundMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InboundMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InboundMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InboundMessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InboundMessageUpsertOne.ID is not supported by MySQL driver. Use InboundMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InboundMessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InboundMessageCreateBulk is the builder for creating many InboundMessage entities in bulk.
type InboundMessageCreateBulk struct {
	config
	err      error
	builders []*InboundMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the InboundMessage entities in the database.
func (_c *InboundMessageCreateBulk) Save(ctx context.Context) ([]*InboundMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InboundMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InboundMessageMutation)
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
func (_c *InboundMessageCreateBulk) SaveX(ctx context.Context) []*InboundMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InboundMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InboundMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InboundMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InboundMessageUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *InboundMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *InboundMessageUpsertBulk {
	_c.conflict = opts
	return &InboundMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InboundMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InboundMessageCreateBulk) OnConflictColumns(columns ...string) *InboundMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InboundMessageUpsertBulk{
		create: _c,
	}
}

// InboundMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of InboundMessage nodes.
type InboundMessageUpsertBulk struct {
	create *InboundMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InboundMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(inboundmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InboundMessageUpsertBulk) UpdateNewValues() *InboundMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(inboundmessage.FieldID)
			}
			if _, exists := b.mutation.ReceivedAt(); exists {
				s.SetIgnore(inboundmessage.FieldReceivedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InboundMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InboundMessageUpsertBulk) Ignore() *InboundMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InboundMessageUpsertBulk) DoNothing() *InboundMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InboundMessageCreateBulk.OnConflict
// documentation for more info.
func (u *InboundMessageUpsertBulk) Update(set func(*InboundMessageUpsert)) *InboundMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InboundMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *InboundMessageUpsertBulk) SetConversationID(v string) *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *InboundMessageUpsertBulk) UpdateConversationID() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateConversationID()
	})
}

// SetPhone sets the "phone" field.
func (u *InboundMessageUpsertBulk) SetPhone(v string) *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *InboundMessageUpsertBulk) UpdatePhone() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdatePhone()
	})
}

// SetBody sets the "body" field.
func (u *InboundMessageUpsertBulk) SetBody(v string) *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *InboundMessageUpsertBulk) UpdateBody() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateBody()
	})
}

// SetProviderRef sets the "provider_ref" field.
func (u *InboundMessageUpsertBulk) SetProviderRef(v string) *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetProviderRef(v)
	})
}

// UpdateProviderRef sets the "provider_ref" field to the value that was provided on create.
func (u *InboundMessageUpsertBulk) UpdateProviderRef() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateProviderRef()
	})
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (u *InboundMessageUpsertBulk) ClearProviderRef() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.ClearProviderRef()
	})
}

// SetStatus sets the "status" field.
func (u *InboundMessageUpsertBulk) SetStatus(v inboundmessage.Status) *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InboundMessageUpsertBulk) UpdateStatus() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *InboundMessageUpsertBulk) SetAttempts(v int) *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *InboundMessageUpsertBulk) AddAttempts(v int) *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *InboundMessageUpsertBulk) UpdateAttempts() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateAttempts()
	})
}

// SetClaimedBy sets the "claimed_by" field.
func (u *InboundMessageUpsertBulk) SetClaimedBy(v string) *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetClaimedBy(v)
	})
}

// UpdateClaimedBy sets the "claimed_by" field to the value that was provided on create.
func (u *InboundMessageUpsertBulk) UpdateClaimedBy() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateClaimedBy()
	})
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (u *InboundMessageUpsertBulk) ClearClaimedBy() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.ClearClaimedBy()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *InboundMessageUpsertBulk) SetClaimedAt(v time.Time) *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *InboundMessageUpsertBulk) UpdateClaimedAt() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *InboundMessageUpsertBulk) ClearClaimedAt() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.ClearClaimedAt()
	})
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (u *InboundMessageUpsertBulk) SetHeartbeatAt(v time.Time) *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetHeartbeatAt(v)
	})
}

// UpdateHeartbeatAt sets the "heartbeat_at" field to the value that was provided on create.
func (u *InboundMessageUpsertBulk) UpdateHeartbeatAt() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateHeartbeatAt()
	})
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (u *InboundMessageUpsertBulk) ClearHeartbeatAt() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.ClearHeartbeatAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *InboundMessageUpsertBulk) SetCompletedAt(v time.Time) *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InboundMessageUpsertBulk) UpdateCompletedAt() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InboundMessageUpsertBulk) ClearCompletedAt() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.ClearCompletedAt()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *InboundMessageUpsertBulk) SetFailureReason(v string) *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *InboundMessageUpsertBulk) UpdateFailureReason() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *InboundMessageUpsertBulk) ClearFailureReason() *InboundMessageUpsertBulk {
	return u.Update(func(s *InboundMessageUpsert) {
		s.ClearFailureReason()
	})
}

// Exec executes the query.
func (u *InboundMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InboundMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InboundMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InboundMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
