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
	"github.com/warehouse-exchange/wex/ent/conversation"
	"github.com/warehouse-exchange/wex/ent/inboundmessage"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// InboundMessageUpdate is the builder for updating InboundMessage entities.
type InboundMessageUpdate struct {
	config
	hooks    []Hook
	mutation *InboundMessageMutation
}

// Where appends a list predicates to the InboundMessageUpdate builder.
func (_u *InboundMessageUpdate) Where(ps ...predicate.InboundMessage) *InboundMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *InboundMessageUpdate) SetConversationID(v string) *InboundMessageUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *InboundMessageUpdate) SetNillableConversationID(v *string) *InboundMessageUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *InboundMessageUpdate) SetPhone(v string) *InboundMessageUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *InboundMessageUpdate) SetNillablePhone(v *string) *InboundMessageUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *InboundMessageUpdate) SetBody(v string) *InboundMessageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *InboundMessageUpdate) SetNillableBody(v *string) *InboundMessageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetProviderRef sets the "provider_ref" field.
func (_u *InboundMessageUpdate) SetProviderRef(v string) *InboundMessageUpdate {
	_u.mutation.SetProviderRef(v)
	return _u
}

// SetNillableProviderRef sets the "provider_ref" field if the given value is not nil.
func (_u *InboundMessageUpdate) SetNillableProviderRef(v *string) *InboundMessageUpdate {
	if v != nil {
		_u.SetProviderRef(*v)
	}
	return _u
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (_u *InboundMessageUpdate) ClearProviderRef() *InboundMessageUpdate {
	_u.mutation.ClearProviderRef()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InboundMessageUpdate) SetStatus(v inboundmessage.Status) *InboundMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InboundMessageUpdate) SetNillableStatus(v *inboundmessage.Status) *InboundMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *InboundMessageUpdate) SetAttempts(v int) *InboundMessageUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *InboundMessageUpdate) SetNillableAttempts(v *int) *InboundMessageUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *InboundMessageUpdate) AddAttempts(v int) *InboundMessageUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *InboundMessageUpdate) SetClaimedBy(v string) *InboundMessageUpdate {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *InboundMessageUpdate) SetNillableClaimedBy(v *string) *InboundMessageUpdate {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *InboundMessageUpdate) ClearClaimedBy() *InboundMessageUpdate {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *InboundMessageUpdate) SetClaimedAt(v time.Time) *InboundMessageUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *InboundMessageUpdate) SetNillableClaimedAt(v *time.Time) *InboundMessageUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *InboundMessageUpdate) ClearClaimedAt() *InboundMessageUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *InboundMessageUpdate) SetHeartbeatAt(v time.Time) *InboundMessageUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *InboundMessageUpdate) SetNillableHeartbeatAt(v *time.Time) *InboundMessageUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *InboundMessageUpdate) ClearHeartbeatAt() *InboundMessageUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InboundMessageUpdate) SetCompletedAt(v time.Time) *InboundMessageUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InboundMessageUpdate) SetNillableCompletedAt(v *time.Time) *InboundMessageUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InboundMessageUpdate) ClearCompletedAt() *InboundMessageUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *InboundMessageUpdate) SetFailureReason(v string) *InboundMessageUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *InboundMessageUpdate) SetNillableFailureReason(v *string) *InboundMessageUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *InboundMessageUpdate) ClearFailureReason() *InboundMessageUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_u *InboundMessageUpdate) SetConversation(v *Conversation) *InboundMessageUpdate {
	return _u.SetConversationID(v.ID)
}

// Mutation returns the InboundMessageMutation object of the builder.
func (_u *InboundMessageUpdate) Mutation() *InboundMessageMutation {
	return _u.mutation
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (_u *InboundMessageUpdate) ClearConversation() *InboundMessageUpdate {
	_u.mutation.ClearConversation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InboundMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboundMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InboundMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboundMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboundMessageUpdate) check() error {
	if v, ok := _u.mutation.Phone(); ok {
		if err := inboundmessage.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "InboundMessage.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := inboundmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InboundMessage.status": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InboundMessage.conversation"`)
	}
	return nil
}

func (_u *InboundMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboundmessage.Table, inboundmessage.Columns, sqlgraph.NewFieldSpec(inboundmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(inboundmessage.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(inboundmessage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderRef(); ok {
		_spec.SetField(inboundmessage.FieldProviderRef, field.TypeString, value)
	}
	if _u.mutation.ProviderRefCleared() {
		_spec.ClearField(inboundmessage.FieldProviderRef, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inboundmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(inboundmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(inboundmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(inboundmessage.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(inboundmessage.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(inboundmessage.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(inboundmessage.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(inboundmessage.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(inboundmessage.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(inboundmessage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(inboundmessage.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(inboundmessage.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(inboundmessage.FieldFailureReason, field.TypeString)
	}
	if _u.mutation.ConversationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboundmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InboundMessageUpdateOne is the builder for updating a single InboundMessage entity.
type InboundMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InboundMessageMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *InboundMessageUpdateOne) SetConversationID(v string) *InboundMessageUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *InboundMessageUpdateOne) SetNillableConversationID(v *string) *InboundMessageUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *InboundMessageUpdateOne) SetPhone(v string) *InboundMessageUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *InboundMessageUpdateOne) SetNillablePhone(v *string) *InboundMessageUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *InboundMessageUpdateOne) SetBody(v string) *InboundMessageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *InboundMessageUpdateOne) SetNillableBody(v *string) *InboundMessageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetProviderRef sets the "provider_ref" field.
func (_u *InboundMessageUpdateOne) SetProviderRef(v string) *InboundMessageUpdateOne {
	_u.mutation.SetProviderRef(v)
	return _u
}

// SetNillableProviderRef sets the "provider_ref" field if the given value is not nil.
func (_u *InboundMessageUpdateOne) SetNillableProviderRef(v *string) *InboundMessageUpdateOne {
	if v != nil {
		_u.SetProviderRef(*v)
	}
	return _u
}

// ClearProviderRef clears the value of the "provider_ref" field.
func (_u *InboundMessageUpdateOne) ClearProviderRef() *InboundMessageUpdateOne {
	_u.mutation.ClearProviderRef()
	return _u
}

// SetStatus sets the "status" field.
func (_u *InboundMessageUpdateOne) SetStatus(v inboundmessage.Status) *InboundMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InboundMessageUpdateOne) SetNillableStatus(v *inboundmessage.Status) *InboundMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *InboundMessageUpdateOne) SetAttempts(v int) *InboundMessageUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *InboundMessageUpdateOne) SetNillableAttempts(v *int) *InboundMessageUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *InboundMessageUpdateOne) AddAttempts(v int) *InboundMessageUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetClaimedBy sets the "claimed_by" field.
func (_u *InboundMessageUpdateOne) SetClaimedBy(v string) *InboundMessageUpdateOne {
	_u.mutation.SetClaimedBy(v)
	return _u
}

// SetNillableClaimedBy sets the "claimed_by" field if the given value is not nil.
func (_u *InboundMessageUpdateOne) SetNillableClaimedBy(v *string) *InboundMessageUpdateOne {
	if v != nil {
		_u.SetClaimedBy(*v)
	}
	return _u
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (_u *InboundMessageUpdateOne) ClearClaimedBy() *InboundMessageUpdateOne {
	_u.mutation.ClearClaimedBy()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *InboundMessageUpdateOne) SetClaimedAt(v time.Time) *InboundMessageUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *InboundMessageUpdateOne) SetNillableClaimedAt(v *time.Time) *InboundMessageUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *InboundMessageUpdateOne) ClearClaimedAt() *InboundMessageUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *InboundMessageUpdateOne) SetHeartbeatAt(v time.Time) *InboundMessageUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *InboundMessageUpdateOne) SetNillableHeartbeatAt(v *time.Time) *InboundMessageUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *InboundMessageUpdateOne) ClearHeartbeatAt() *InboundMessageUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InboundMessageUpdateOne) SetCompletedAt(v time.Time) *InboundMessageUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InboundMessageUpdateOne) SetNillableCompletedAt(v *time.Time) *InboundMessageUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InboundMessageUpdateOne) ClearCompletedAt() *InboundMessageUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *InboundMessageUpdateOne) SetFailureReason(v string) *InboundMessageUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *InboundMessageUpdateOne) SetNillableFailureReason(v *string) *InboundMessageUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *InboundMessageUpdateOne) ClearFailureReason() *InboundMessageUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_u *InboundMessageUpdateOne) SetConversation(v *Conversation) *InboundMessageUpdateOne {
	return _u.SetConversationID(v.ID)
}

// Mutation returns the InboundMessageMutation object of the builder.
func (_u *InboundMessageUpdateOne) Mutation() *InboundMessageMutation {
	return _u.mutation
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (_u *InboundMessageUpdateOne) ClearConversation() *InboundMessageUpdateOne {
	_u.mutation.ClearConversation()
	return _u
}

// Where appends a list predicates to the InboundMessageUpdate builder.
func (_u *InboundMessageUpdateOne) Where(ps ...predicate.InboundMessage) *InboundMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InboundMessageUpdateOne) Select(field string, fields ...string) *InboundMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InboundMessage entity.
func (_u *InboundMessageUpdateOne) Save(ctx context.Context) (*InboundMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboundMessageUpdateOne) SaveX(ctx context.Context) *InboundMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InboundMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboundMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboundMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Phone(); ok {
		if err := inboundmessage.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "InboundMessage.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := inboundmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "InboundMessage.status": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InboundMessage.conversation"`)
	}
	return nil
}

func (_u *InboundMessageUpdateOne) sqlSave(ctx context.Context) (_node *InboundMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboundmessage.Table, inboundmessage.Columns, sqlgraph.NewFieldSpec(inboundmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InboundMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inboundmessage.FieldID)
		for _, f := range fields {
			if !inboundmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inboundmessage.FieldID {
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
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(inboundmessage.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(inboundmessage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProviderRef(); ok {
		_spec.SetField(inboundmessage.FieldProviderRef, field.TypeString, value)
	}
	if _u.mutation.ProviderRefCleared() {
		_spec.ClearField(inboundmessage.FieldProviderRef, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(inboundmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(inboundmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(inboundmessage.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClaimedBy(); ok {
		_spec.SetField(inboundmessage.FieldClaimedBy, field.TypeString, value)
	}
	if _u.mutation.ClaimedByCleared() {
		_spec.ClearField(inboundmessage.FieldClaimedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(inboundmessage.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(inboundmessage.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(inboundmessage.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(inboundmessage.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(inboundmessage.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(inboundmessage.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(inboundmessage.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(inboundmessage.FieldFailureReason, field.TypeString)
	}
	if _u.mutation.ConversationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InboundMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboundmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
