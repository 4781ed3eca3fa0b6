// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/conversation"
	"github.com/warehouse-exchange/wex/ent/inboundmessage"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ConversationUpdate) SetPhone(v string) *ConversationUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillablePhone(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetPersona sets the "persona" field.
func (_u *ConversationUpdate) SetPersona(v conversation.Persona) *ConversationUpdate {
	_u.mutation.SetPersona(v)
	return _u
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillablePersona(v *conversation.Persona) *ConversationUpdate {
	if v != nil {
		_u.SetPersona(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *ConversationUpdate) SetPhase(v conversation.Phase) *ConversationUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillablePhase(v *conversation.Phase) *ConversationUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *ConversationUpdate) SetTurnCount(v int) *ConversationUpdate {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTurnCount(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *ConversationUpdate) AddTurnCount(v int) *ConversationUpdate {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *ConversationUpdate) SetCriteria(v map[string]interface{}) *ConversationUpdate {
	_u.mutation.SetCriteria(v)
	return _u
}

// ClearCriteria clears the value of the "criteria" field.
func (_u *ConversationUpdate) ClearCriteria() *ConversationUpdate {
	_u.mutation.ClearCriteria()
	return _u
}

// SetPresentedMatches sets the "presented_matches" field.
func (_u *ConversationUpdate) SetPresentedMatches(v []string) *ConversationUpdate {
	_u.mutation.SetPresentedMatches(v)
	return _u
}

// AppendPresentedMatches appends value to the "presented_matches" field.
func (_u *ConversationUpdate) AppendPresentedMatches(v []string) *ConversationUpdate {
	_u.mutation.AppendPresentedMatches(v)
	return _u
}

// ClearPresentedMatches clears the value of the "presented_matches" field.
func (_u *ConversationUpdate) ClearPresentedMatches() *ConversationUpdate {
	_u.mutation.ClearPresentedMatches()
	return _u
}

// SetFocusedMatchID sets the "focused_match_id" field.
func (_u *ConversationUpdate) SetFocusedMatchID(v string) *ConversationUpdate {
	_u.mutation.SetFocusedMatchID(v)
	return _u
}

// SetNillableFocusedMatchID sets the "focused_match_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableFocusedMatchID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetFocusedMatchID(*v)
	}
	return _u
}

// ClearFocusedMatchID clears the value of the "focused_match_id" field.
func (_u *ConversationUpdate) ClearFocusedMatchID() *ConversationUpdate {
	_u.mutation.ClearFocusedMatchID()
	return _u
}

// SetRenterFirstName sets the "renter_first_name" field.
func (_u *ConversationUpdate) SetRenterFirstName(v string) *ConversationUpdate {
	_u.mutation.SetRenterFirstName(v)
	return _u
}

// SetNillableRenterFirstName sets the "renter_first_name" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableRenterFirstName(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetRenterFirstName(*v)
	}
	return _u
}

// ClearRenterFirstName clears the value of the "renter_first_name" field.
func (_u *ConversationUpdate) ClearRenterFirstName() *ConversationUpdate {
	_u.mutation.ClearRenterFirstName()
	return _u
}

// SetRenterLastName sets the "renter_last_name" field.
func (_u *ConversationUpdate) SetRenterLastName(v string) *ConversationUpdate {
	_u.mutation.SetRenterLastName(v)
	return _u
}

// SetNillableRenterLastName sets the "renter_last_name" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableRenterLastName(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetRenterLastName(*v)
	}
	return _u
}

// ClearRenterLastName clears the value of the "renter_last_name" field.
func (_u *ConversationUpdate) ClearRenterLastName() *ConversationUpdate {
	_u.mutation.ClearRenterLastName()
	return _u
}

// SetBuyerEmail sets the "buyer_email" field.
func (_u *ConversationUpdate) SetBuyerEmail(v string) *ConversationUpdate {
	_u.mutation.SetBuyerEmail(v)
	return _u
}

// SetNillableBuyerEmail sets the "buyer_email" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableBuyerEmail(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetBuyerEmail(*v)
	}
	return _u
}

// ClearBuyerEmail clears the value of the "buyer_email" field.
func (_u *ConversationUpdate) ClearBuyerEmail() *ConversationUpdate {
	_u.mutation.ClearBuyerEmail()
	return _u
}

// SetNameStatus sets the "name_status" field.
func (_u *ConversationUpdate) SetNameStatus(v conversation.NameStatus) *ConversationUpdate {
	_u.mutation.SetNameStatus(v)
	return _u
}

// SetNillableNameStatus sets the "name_status" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableNameStatus(v *conversation.NameStatus) *ConversationUpdate {
	if v != nil {
		_u.SetNameStatus(*v)
	}
	return _u
}

// SetNameRequestedAtTurn sets the "name_requested_at_turn" field.
func (_u *ConversationUpdate) SetNameRequestedAtTurn(v int) *ConversationUpdate {
	_u.mutation.ResetNameRequestedAtTurn()
	_u.mutation.SetNameRequestedAtTurn(v)
	return _u
}

// SetNillableNameRequestedAtTurn sets the "name_requested_at_turn" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableNameRequestedAtTurn(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetNameRequestedAtTurn(*v)
	}
	return _u
}

// AddNameRequestedAtTurn adds value to the "name_requested_at_turn" field.
func (_u *ConversationUpdate) AddNameRequestedAtTurn(v int) *ConversationUpdate {
	_u.mutation.AddNameRequestedAtTurn(v)
	return _u
}

// ClearNameRequestedAtTurn clears the value of the "name_requested_at_turn" field.
func (_u *ConversationUpdate) ClearNameRequestedAtTurn() *ConversationUpdate {
	_u.mutation.ClearNameRequestedAtTurn()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConversationUpdate) SetUserID(v string) *ConversationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableUserID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ConversationUpdate) ClearUserID() *ConversationUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_u *ConversationUpdate) SetBuyerNeedID(v string) *ConversationUpdate {
	_u.mutation.SetBuyerNeedID(v)
	return _u
}

// SetNillableBuyerNeedID sets the "buyer_need_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableBuyerNeedID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetBuyerNeedID(*v)
	}
	return _u
}

// ClearBuyerNeedID clears the value of the "buyer_need_id" field.
func (_u *ConversationUpdate) ClearBuyerNeedID() *ConversationUpdate {
	_u.mutation.ClearBuyerNeedID()
	return _u
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *ConversationUpdate) SetWarehouseID(v string) *ConversationUpdate {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableWarehouseID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// ClearWarehouseID clears the value of the "warehouse_id" field.
func (_u *ConversationUpdate) ClearWarehouseID() *ConversationUpdate {
	_u.mutation.ClearWarehouseID()
	return _u
}

// SetEngagementID sets the "engagement_id" field.
func (_u *ConversationUpdate) SetEngagementID(v string) *ConversationUpdate {
	_u.mutation.SetEngagementID(v)
	return _u
}

// SetNillableEngagementID sets the "engagement_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableEngagementID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetEngagementID(*v)
	}
	return _u
}

// ClearEngagementID clears the value of the "engagement_id" field.
func (_u *ConversationUpdate) ClearEngagementID() *ConversationUpdate {
	_u.mutation.ClearEngagementID()
	return _u
}

// SetGuaranteeLinkToken sets the "guarantee_link_token" field.
func (_u *ConversationUpdate) SetGuaranteeLinkToken(v string) *ConversationUpdate {
	_u.mutation.SetGuaranteeLinkToken(v)
	return _u
}

// SetNillableGuaranteeLinkToken sets the "guarantee_link_token" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableGuaranteeLinkToken(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetGuaranteeLinkToken(*v)
	}
	return _u
}

// ClearGuaranteeLinkToken clears the value of the "guarantee_link_token" field.
func (_u *ConversationUpdate) ClearGuaranteeLinkToken() *ConversationUpdate {
	_u.mutation.ClearGuaranteeLinkToken()
	return _u
}

// SetSearchSessionToken sets the "search_session_token" field.
func (_u *ConversationUpdate) SetSearchSessionToken(v string) *ConversationUpdate {
	_u.mutation.SetSearchSessionToken(v)
	return _u
}

// SetNillableSearchSessionToken sets the "search_session_token" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableSearchSessionToken(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetSearchSessionToken(*v)
	}
	return _u
}

// ClearSearchSessionToken clears the value of the "search_session_token" field.
func (_u *ConversationUpdate) ClearSearchSessionToken() *ConversationUpdate {
	_u.mutation.ClearSearchSessionToken()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationUpdate) SetStatus(v conversation.Status) *ConversationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableStatus(v *conversation.Status) *ConversationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReengagementStage sets the "reengagement_stage" field.
func (_u *ConversationUpdate) SetReengagementStage(v int) *ConversationUpdate {
	_u.mutation.ResetReengagementStage()
	_u.mutation.SetReengagementStage(v)
	return _u
}

// SetNillableReengagementStage sets the "reengagement_stage" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableReengagementStage(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetReengagementStage(*v)
	}
	return _u
}

// AddReengagementStage adds value to the "reengagement_stage" field.
func (_u *ConversationUpdate) AddReengagementStage(v int) *ConversationUpdate {
	_u.mutation.AddReengagementStage(v)
	return _u
}

// SetNextReengagementAt sets the "next_reengagement_at" field.
func (_u *ConversationUpdate) SetNextReengagementAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetNextReengagementAt(v)
	return _u
}

// SetNillableNextReengagementAt sets the "next_reengagement_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableNextReengagementAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetNextReengagementAt(*v)
	}
	return _u
}

// ClearNextReengagementAt clears the value of the "next_reengagement_at" field.
func (_u *ConversationUpdate) ClearNextReengagementAt() *ConversationUpdate {
	_u.mutation.ClearNextReengagementAt()
	return _u
}

// SetLastInboundAt sets the "last_inbound_at" field.
func (_u *ConversationUpdate) SetLastInboundAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetLastInboundAt(v)
	return _u
}

// SetNillableLastInboundAt sets the "last_inbound_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastInboundAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetLastInboundAt(*v)
	}
	return _u
}

// ClearLastInboundAt clears the value of the "last_inbound_at" field.
func (_u *ConversationUpdate) ClearLastInboundAt() *ConversationUpdate {
	_u.mutation.ClearLastInboundAt()
	return _u
}

// SetLastOutboundAt sets the "last_outbound_at" field.
func (_u *ConversationUpdate) SetLastOutboundAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetLastOutboundAt(v)
	return _u
}

// SetNillableLastOutboundAt sets the "last_outbound_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastOutboundAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetLastOutboundAt(*v)
	}
	return _u
}

// ClearLastOutboundAt clears the value of the "last_outbound_at" field.
func (_u *ConversationUpdate) ClearLastOutboundAt() *ConversationUpdate {
	_u.mutation.ClearLastOutboundAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdate) SetUpdatedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the InboundMessage entity by IDs.
func (_u *ConversationUpdate) AddMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the InboundMessage entity.
func (_u *ConversationUpdate) AddMessages(v ...*InboundMessage) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the InboundMessage entity.
func (_u *ConversationUpdate) ClearMessages() *ConversationUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to InboundMessage entities by IDs.
func (_u *ConversationUpdate) RemoveMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to InboundMessage entities.
func (_u *ConversationUpdate) RemoveMessages(v ...*InboundMessage) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if v, ok := _u.mutation.Phone(); ok {
		if err := conversation.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Conversation.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Persona(); ok {
		if err := conversation.PersonaValidator(v); err != nil {
			return &ValidationError{Name: "persona", err: fmt.Errorf(`ent: validator failed for field "Conversation.persona": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := conversation.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Conversation.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameStatus(); ok {
		if err := conversation.NameStatusValidator(v); err != nil {
			return &ValidationError{Name: "name_status", err: fmt.Errorf(`ent: validator failed for field "Conversation.name_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(conversation.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(conversation.FieldPersona, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(conversation.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(conversation.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(conversation.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(conversation.FieldCriteria, field.TypeJSON, value)
	}
	if _u.mutation.CriteriaCleared() {
		_spec.ClearField(conversation.FieldCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.PresentedMatches(); ok {
		_spec.SetField(conversation.FieldPresentedMatches, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPresentedMatches(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversation.FieldPresentedMatches, value)
		})
	}
	if _u.mutation.PresentedMatchesCleared() {
		_spec.ClearField(conversation.FieldPresentedMatches, field.TypeJSON)
	}
	if value, ok := _u.mutation.FocusedMatchID(); ok {
		_spec.SetField(conversation.FieldFocusedMatchID, field.TypeString, value)
	}
	if _u.mutation.FocusedMatchIDCleared() {
		_spec.ClearField(conversation.FieldFocusedMatchID, field.TypeString)
	}
	if value, ok := _u.mutation.RenterFirstName(); ok {
		_spec.SetField(conversation.FieldRenterFirstName, field.TypeString, value)
	}
	if _u.mutation.RenterFirstNameCleared() {
		_spec.ClearField(conversation.FieldRenterFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.RenterLastName(); ok {
		_spec.SetField(conversation.FieldRenterLastName, field.TypeString, value)
	}
	if _u.mutation.RenterLastNameCleared() {
		_spec.ClearField(conversation.FieldRenterLastName, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerEmail(); ok {
		_spec.SetField(conversation.FieldBuyerEmail, field.TypeString, value)
	}
	if _u.mutation.BuyerEmailCleared() {
		_spec.ClearField(conversation.FieldBuyerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.NameStatus(); ok {
		_spec.SetField(conversation.FieldNameStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NameRequestedAtTurn(); ok {
		_spec.SetField(conversation.FieldNameRequestedAtTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNameRequestedAtTurn(); ok {
		_spec.AddField(conversation.FieldNameRequestedAtTurn, field.TypeInt, value)
	}
	if _u.mutation.NameRequestedAtTurnCleared() {
		_spec.ClearField(conversation.FieldNameRequestedAtTurn, field.TypeInt)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(conversation.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(conversation.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerNeedID(); ok {
		_spec.SetField(conversation.FieldBuyerNeedID, field.TypeString, value)
	}
	if _u.mutation.BuyerNeedIDCleared() {
		_spec.ClearField(conversation.FieldBuyerNeedID, field.TypeString)
	}
	if value, ok := _u.mutation.WarehouseID(); ok {
		_spec.SetField(conversation.FieldWarehouseID, field.TypeString, value)
	}
	if _u.mutation.WarehouseIDCleared() {
		_spec.ClearField(conversation.FieldWarehouseID, field.TypeString)
	}
	if value, ok := _u.mutation.EngagementID(); ok {
		_spec.SetField(conversation.FieldEngagementID, field.TypeString, value)
	}
	if _u.mutation.EngagementIDCleared() {
		_spec.ClearField(conversation.FieldEngagementID, field.TypeString)
	}
	if value, ok := _u.mutation.GuaranteeLinkToken(); ok {
		_spec.SetField(conversation.FieldGuaranteeLinkToken, field.TypeString, value)
	}
	if _u.mutation.GuaranteeLinkTokenCleared() {
		_spec.ClearField(conversation.FieldGuaranteeLinkToken, field.TypeString)
	}
	if value, ok := _u.mutation.SearchSessionToken(); ok {
		_spec.SetField(conversation.FieldSearchSessionToken, field.TypeString, value)
	}
	if _u.mutation.SearchSessionTokenCleared() {
		_spec.ClearField(conversation.FieldSearchSessionToken, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReengagementStage(); ok {
		_spec.SetField(conversation.FieldReengagementStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReengagementStage(); ok {
		_spec.AddField(conversation.FieldReengagementStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReengagementAt(); ok {
		_spec.SetField(conversation.FieldNextReengagementAt, field.TypeTime, value)
	}
	if _u.mutation.NextReengagementAtCleared() {
		_spec.ClearField(conversation.FieldNextReengagementAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInboundAt(); ok {
		_spec.SetField(conversation.FieldLastInboundAt, field.TypeTime, value)
	}
	if _u.mutation.LastInboundAtCleared() {
		_spec.ClearField(conversation.FieldLastInboundAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastOutboundAt(); ok {
		_spec.SetField(conversation.FieldLastOutboundAt, field.TypeTime, value)
	}
	if _u.mutation.LastOutboundAtCleared() {
		_spec.ClearField(conversation.FieldLastOutboundAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboundmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboundmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboundmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetPhone sets the "phone" field.
func (_u *ConversationUpdateOne) SetPhone(v string) *ConversationUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillablePhone(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetPersona sets the "persona" field.
func (_u *ConversationUpdateOne) SetPersona(v conversation.Persona) *ConversationUpdateOne {
	_u.mutation.SetPersona(v)
	return _u
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillablePersona(v *conversation.Persona) *ConversationUpdateOne {
	if v != nil {
		_u.SetPersona(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *ConversationUpdateOne) SetPhase(v conversation.Phase) *ConversationUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillablePhase(v *conversation.Phase) *ConversationUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *ConversationUpdateOne) SetTurnCount(v int) *ConversationUpdateOne {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTurnCount(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *ConversationUpdateOne) AddTurnCount(v int) *ConversationUpdateOne {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *ConversationUpdateOne) SetCriteria(v map[string]interface{}) *ConversationUpdateOne {
	_u.mutation.SetCriteria(v)
	return _u
}

// ClearCriteria clears the value of the "criteria" field.
func (_u *ConversationUpdateOne) ClearCriteria() *ConversationUpdateOne {
	_u.mutation.ClearCriteria()
	return _u
}

// SetPresentedMatches sets the "presented_matches" field.
func (_u *ConversationUpdateOne) SetPresentedMatches(v []string) *ConversationUpdateOne {
	_u.mutation.SetPresentedMatches(v)
	return _u
}

// AppendPresentedMatches appends value to the "presented_matches" field.
func (_u *ConversationUpdateOne) AppendPresentedMatches(v []string) *ConversationUpdateOne {
	_u.mutation.AppendPresentedMatches(v)
	return _u
}

// ClearPresentedMatches clears the value of the "presented_matches" field.
func (_u *ConversationUpdateOne) ClearPresentedMatches() *ConversationUpdateOne {
	_u.mutation.ClearPresentedMatches()
	return _u
}

// SetFocusedMatchID sets the "focused_match_id" field.
func (_u *ConversationUpdateOne) SetFocusedMatchID(v string) *ConversationUpdateOne {
	_u.mutation.SetFocusedMatchID(v)
	return _u
}

// SetNillableFocusedMatchID sets the "focused_match_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableFocusedMatchID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetFocusedMatchID(*v)
	}
	return _u
}

// ClearFocusedMatchID clears the value of the "focused_match_id" field.
func (_u *ConversationUpdateOne) ClearFocusedMatchID() *ConversationUpdateOne {
	_u.mutation.ClearFocusedMatchID()
	return _u
}

// SetRenterFirstName sets the "renter_first_name" field.
func (_u *ConversationUpdateOne) SetRenterFirstName(v string) *ConversationUpdateOne {
	_u.mutation.SetRenterFirstName(v)
	return _u
}

// SetNillableRenterFirstName sets the "renter_first_name" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableRenterFirstName(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetRenterFirstName(*v)
	}
	return _u
}

// ClearRenterFirstName clears the value of the "renter_first_name" field.
func (_u *ConversationUpdateOne) ClearRenterFirstName() *ConversationUpdateOne {
	_u.mutation.ClearRenterFirstName()
	return _u
}

// SetRenterLastName sets the "renter_last_name" field.
func (_u *ConversationUpdateOne) SetRenterLastName(v string) *ConversationUpdateOne {
	_u.mutation.SetRenterLastName(v)
	return _u
}

// SetNillableRenterLastName sets the "renter_last_name" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableRenterLastName(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetRenterLastName(*v)
	}
	return _u
}

// ClearRenterLastName clears the value of the "renter_last_name" field.
func (_u *ConversationUpdateOne) ClearRenterLastName() *ConversationUpdateOne {
	_u.mutation.ClearRenterLastName()
	return _u
}

// SetBuyerEmail sets the "buyer_email" field.
func (_u *ConversationUpdateOne) SetBuyerEmail(v string) *ConversationUpdateOne {
	_u.mutation.SetBuyerEmail(v)
	return _u
}

// SetNillableBuyerEmail sets the "buyer_email" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableBuyerEmail(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetBuyerEmail(*v)
	}
	return _u
}

// ClearBuyerEmail clears the value of the "buyer_email" field.
func (_u *ConversationUpdateOne) ClearBuyerEmail() *ConversationUpdateOne {
	_u.mutation.ClearBuyerEmail()
	return _u
}

// SetNameStatus sets the "name_status" field.
func (_u *ConversationUpdateOne) SetNameStatus(v conversation.NameStatus) *ConversationUpdateOne {
	_u.mutation.SetNameStatus(v)
	return _u
}

// SetNillableNameStatus sets the "name_status" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableNameStatus(v *conversation.NameStatus) *ConversationUpdateOne {
	if v != nil {
		_u.SetNameStatus(*v)
	}
	return _u
}

// SetNameRequestedAtTurn sets the "name_requested_at_turn" field.
func (_u *ConversationUpdateOne) SetNameRequestedAtTurn(v int) *ConversationUpdateOne {
	_u.mutation.ResetNameRequestedAtTurn()
	_u.mutation.SetNameRequestedAtTurn(v)
	return _u
}

// SetNillableNameRequestedAtTurn sets the "name_requested_at_turn" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableNameRequestedAtTurn(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetNameRequestedAtTurn(*v)
	}
	return _u
}

// AddNameRequestedAtTurn adds value to the "name_requested_at_turn" field.
func (_u *ConversationUpdateOne) AddNameRequestedAtTurn(v int) *ConversationUpdateOne {
	_u.mutation.AddNameRequestedAtTurn(v)
	return _u
}

// ClearNameRequestedAtTurn clears the value of the "name_requested_at_turn" field.
func (_u *ConversationUpdateOne) ClearNameRequestedAtTurn() *ConversationUpdateOne {
	_u.mutation.ClearNameRequestedAtTurn()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConversationUpdateOne) SetUserID(v string) *ConversationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableUserID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ConversationUpdateOne) ClearUserID() *ConversationUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_u *ConversationUpdateOne) SetBuyerNeedID(v string) *ConversationUpdateOne {
	_u.mutation.SetBuyerNeedID(v)
	return _u
}

// SetNillableBuyerNeedID sets the "buyer_need_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableBuyerNeedID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetBuyerNeedID(*v)
	}
	return _u
}

// ClearBuyerNeedID clears the value of the "buyer_need_id" field.
func (_u *ConversationUpdateOne) ClearBuyerNeedID() *ConversationUpdateOne {
	_u.mutation.ClearBuyerNeedID()
	return _u
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *ConversationUpdateOne) SetWarehouseID(v string) *ConversationUpdateOne {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableWarehouseID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// ClearWarehouseID clears the value of the "warehouse_id" field.
func (_u *ConversationUpdateOne) ClearWarehouseID() *ConversationUpdateOne {
	_u.mutation.ClearWarehouseID()
	return _u
}

// SetEngagementID sets the "engagement_id" field.
func (_u *ConversationUpdateOne) SetEngagementID(v string) *ConversationUpdateOne {
	_u.mutation.SetEngagementID(v)
	return _u
}

// SetNillableEngagementID sets the "engagement_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableEngagementID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetEngagementID(*v)
	}
	return _u
}

// ClearEngagementID clears the value of the "engagement_id" field.
func (_u *ConversationUpdateOne) ClearEngagementID() *ConversationUpdateOne {
	_u.mutation.ClearEngagementID()
	return _u
}

// SetGuaranteeLinkToken sets the "guarantee_link_token" field.
func (_u *ConversationUpdateOne) SetGuaranteeLinkToken(v string) *ConversationUpdateOne {
	_u.mutation.SetGuaranteeLinkToken(v)
	return _u
}

// SetNillableGuaranteeLinkToken sets the "guarantee_link_token" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableGuaranteeLinkToken(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetGuaranteeLinkToken(*v)
	}
	return _u
}

// ClearGuaranteeLinkToken clears the value of the "guarantee_link_token" field.
func (_u *ConversationUpdateOne) ClearGuaranteeLinkToken() *ConversationUpdateOne {
	_u.mutation.ClearGuaranteeLinkToken()
	return _u
}

// SetSearchSessionToken sets the "search_session_token" field.
func (_u *ConversationUpdateOne) SetSearchSessionToken(v string) *ConversationUpdateOne {
	_u.mutation.SetSearchSessionToken(v)
	return _u
}

// SetNillableSearchSessionToken sets the "search_session_token" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableSearchSessionToken(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetSearchSessionToken(*v)
	}
	return _u
}

// ClearSearchSessionToken clears the value of the "search_session_token" field.
func (_u *ConversationUpdateOne) ClearSearchSessionToken() *ConversationUpdateOne {
	_u.mutation.ClearSearchSessionToken()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationUpdateOne) SetStatus(v conversation.Status) *ConversationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableStatus(v *conversation.Status) *ConversationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReengagementStage sets the "reengagement_stage" field.
func (_u *ConversationUpdateOne) SetReengagementStage(v int) *ConversationUpdateOne {
	_u.mutation.ResetReengagementStage()
	_u.mutation.SetReengagementStage(v)
	return _u
}

// SetNillableReengagementStage sets the "reengagement_stage" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableReengagementStage(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetReengagementStage(*v)
	}
	return _u
}

// AddReengagementStage adds value to the "reengagement_stage" field.
func (_u *ConversationUpdateOne) AddReengagementStage(v int) *ConversationUpdateOne {
	_u.mutation.AddReengagementStage(v)
	return _u
}

// SetNextReengagementAt sets the "next_reengagement_at" field.
func (_u *ConversationUpdateOne) SetNextReengagementAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetNextReengagementAt(v)
	return _u
}

// SetNillableNextReengagementAt sets the "next_reengagement_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableNextReengagementAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetNextReengagementAt(*v)
	}
	return _u
}

// ClearNextReengagementAt clears the value of the "next_reengagement_at" field.
func (_u *ConversationUpdateOne) ClearNextReengagementAt() *ConversationUpdateOne {
	_u.mutation.ClearNextReengagementAt()
	return _u
}

// SetLastInboundAt sets the "last_inbound_at" field.
func (_u *ConversationUpdateOne) SetLastInboundAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetLastInboundAt(v)
	return _u
}

// SetNillableLastInboundAt sets the "last_inbound_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastInboundAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastInboundAt(*v)
	}
	return _u
}

// ClearLastInboundAt clears the value of the "last_inbound_at" field.
func (_u *ConversationUpdateOne) ClearLastInboundAt() *ConversationUpdateOne {
	_u.mutation.ClearLastInboundAt()
	return _u
}

// SetLastOutboundAt sets the "last_outbound_at" field.
func (_u *ConversationUpdateOne) SetLastOutboundAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetLastOutboundAt(v)
	return _u
}

// SetNillableLastOutboundAt sets the "last_outbound_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastOutboundAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastOutboundAt(*v)
	}
	return _u
}

// ClearLastOutboundAt clears the value of the "last_outbound_at" field.
func (_u *ConversationUpdateOne) ClearLastOutboundAt() *ConversationUpdateOne {
	_u.mutation.ClearLastOutboundAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdateOne) SetUpdatedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the InboundMessage entity by IDs.
func (_u *ConversationUpdateOne) AddMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the InboundMessage entity.
func (_u *ConversationUpdateOne) AddMessages(v ...*InboundMessage) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the InboundMessage entity.
func (_u *ConversationUpdateOne) ClearMessages() *ConversationUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to InboundMessage entities by IDs.
func (_u *ConversationUpdateOne) RemoveMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to InboundMessage entities.
func (_u *ConversationUpdateOne) RemoveMessages(v ...*InboundMessage) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if v, ok := _u.mutation.Phone(); ok {
		if err := conversation.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Conversation.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Persona(); ok {
		if err := conversation.PersonaValidator(v); err != nil {
			return &ValidationError{Name: "persona", err: fmt.Errorf(`ent: validator failed for field "Conversation.persona": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := conversation.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Conversation.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameStatus(); ok {
		if err := conversation.NameStatusValidator(v); err != nil {
			return &ValidationError{Name: "name_status", err: fmt.Errorf(`ent: validator failed for field "Conversation.name_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
		_spec.SetField(conversation.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(conversation.FieldPersona, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(conversation.FieldPhase, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(conversation.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(conversation.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(conversation.FieldCriteria, field.TypeJSON, value)
	}
	if _u.mutation.CriteriaCleared() {
		_spec.ClearField(conversation.FieldCriteria, field.TypeJSON)
	}
	if value, ok := _u.mutation.PresentedMatches(); ok {
		_spec.SetField(conversation.FieldPresentedMatches, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPresentedMatches(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, conversation.FieldPresentedMatches, value)
		})
	}
	if _u.mutation.PresentedMatchesCleared() {
		_spec.ClearField(conversation.FieldPresentedMatches, field.TypeJSON)
	}
	if value, ok := _u.mutation.FocusedMatchID(); ok {
		_spec.SetField(conversation.FieldFocusedMatchID, field.TypeString, value)
	}
	if _u.mutation.FocusedMatchIDCleared() {
		_spec.ClearField(conversation.FieldFocusedMatchID, field.TypeString)
	}
	if value, ok := _u.mutation.RenterFirstName(); ok {
		_spec.SetField(conversation.FieldRenterFirstName, field.TypeString, value)
	}
	if _u.mutation.RenterFirstNameCleared() {
		_spec.ClearField(conversation.FieldRenterFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.RenterLastName(); ok {
		_spec.SetField(conversation.FieldRenterLastName, field.TypeString, value)
	}
	if _u.mutation.RenterLastNameCleared() {
		_spec.ClearField(conversation.FieldRenterLastName, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerEmail(); ok {
		_spec.SetField(conversation.FieldBuyerEmail, field.TypeString, value)
	}
	if _u.mutation.BuyerEmailCleared() {
		_spec.ClearField(conversation.FieldBuyerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.NameStatus(); ok {
		_spec.SetField(conversation.FieldNameStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NameRequestedAtTurn(); ok {
		_spec.SetField(conversation.FieldNameRequestedAtTurn, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNameRequestedAtTurn(); ok {
		_spec.AddField(conversation.FieldNameRequestedAtTurn, field.TypeInt, value)
	}
	if _u.mutation.NameRequestedAtTurnCleared() {
		_spec.ClearField(conversation.FieldNameRequestedAtTurn, field.TypeInt)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(conversation.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(conversation.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerNeedID(); ok {
		_spec.SetField(conversation.FieldBuyerNeedID, field.TypeString, value)
	}
	if _u.mutation.BuyerNeedIDCleared() {
		_spec.ClearField(conversation.FieldBuyerNeedID, field.TypeString)
	}
	if value, ok := _u.mutation.WarehouseID(); ok {
		_spec.SetField(conversation.FieldWarehouseID, field.TypeString, value)
	}
	if _u.mutation.WarehouseIDCleared() {
		_spec.ClearField(conversation.FieldWarehouseID, field.TypeString)
	}
	if value, ok := _u.mutation.EngagementID(); ok {
		_spec.SetField(conversation.FieldEngagementID, field.TypeString, value)
	}
	if _u.mutation.EngagementIDCleared() {
		_spec.ClearField(conversation.FieldEngagementID, field.TypeString)
	}
	if value, ok := _u.mutation.GuaranteeLinkToken(); ok {
		_spec.SetField(conversation.FieldGuaranteeLinkToken, field.TypeString, value)
	}
	if _u.mutation.GuaranteeLinkTokenCleared() {
		_spec.ClearField(conversation.FieldGuaranteeLinkToken, field.TypeString)
	}
	if value, ok := _u.mutation.SearchSessionToken(); ok {
		_spec.SetField(conversation.FieldSearchSessionToken, field.TypeString, value)
	}
	if _u.mutation.SearchSessionTokenCleared() {
		_spec.ClearField(conversation.FieldSearchSessionToken, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReengagementStage(); ok {
		_spec.SetField(conversation.FieldReengagementStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReengagementStage(); ok {
		_spec.AddField(conversation.FieldReengagementStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextReengagementAt(); ok {
		_spec.SetField(conversation.FieldNextReengagementAt, field.TypeTime, value)
	}
	if _u.mutation.NextReengagementAtCleared() {
		_spec.ClearField(conversation.FieldNextReengagementAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInboundAt(); ok {
		_spec.SetField(conversation.FieldLastInboundAt, field.TypeTime, value)
	}
	if _u.mutation.LastInboundAtCleared() {
		_spec.ClearField(conversation.FieldLastInboundAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastOutboundAt(); ok {
		_spec.SetField(conversation.FieldLastOutboundAt, field.TypeTime, value)
	}
	if _u.mutation.LastOutboundAtCleared() {
		_spec.ClearField(conversation.FieldLastOutboundAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboundmessage.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboundmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inboundmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
