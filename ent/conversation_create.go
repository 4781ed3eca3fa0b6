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

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPhone sets the "phone" field.
func (_c *ConversationCreate) SetPhone(v string) *ConversationCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetPersona sets the "persona" field.
func (_c *ConversationCreate) SetPersona(v conversation.Persona) *ConversationCreate {
	_c.mutation.SetPersona(v)
	return _c
}

// SetNillablePersona sets the "persona" field if the given value is not nil.
func (_c *ConversationCreate) SetNillablePersona(v *conversation.Persona) *ConversationCreate {
	if v != nil {
		_c.SetPersona(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *ConversationCreate) SetPhase(v conversation.Phase) *ConversationCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *ConversationCreate) SetNillablePhase(v *conversation.Phase) *ConversationCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetTurnCount sets the "turn_count" field.
func (_c *ConversationCreate) SetTurnCount(v int) *ConversationCreate {
	_c.mutation.SetTurnCount(v)
	return _c
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTurnCount(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTurnCount(*v)
	}
	return _c
}

// SetCriteria sets the "criteria" field.
func (_c *ConversationCreate) SetCriteria(v map[string]interface{}) *ConversationCreate {
	_c.mutation.SetCriteria(v)
	return _c
}

// SetPresentedMatches sets the "presented_matches" field.
func (_c *ConversationCreate) SetPresentedMatches(v []string) *ConversationCreate {
	_c.mutation.SetPresentedMatches(v)
	return _c
}

// SetFocusedMatchID sets the "focused_match_id" field.
func (_c *ConversationCreate) SetFocusedMatchID(v string) *ConversationCreate {
	_c.mutation.SetFocusedMatchID(v)
	return _c
}

// SetNillableFocusedMatchID sets the "focused_match_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableFocusedMatchID(v *string) *ConversationCreate {
	if v != nil {
		_c.SetFocusedMatchID(*v)
	}
	return _c
}

// SetRenterFirstName sets the "renter_first_name" field.
func (_c *ConversationCreate) SetRenterFirstName(v string) *ConversationCreate {
	_c.mutation.SetRenterFirstName(v)
	return _c
}

// SetNillableRenterFirstName sets the "renter_first_name" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableRenterFirstName(v *string) *ConversationCreate {
	if v != nil {
		_c.SetRenterFirstName(*v)
	}
	return _c
}

// SetRenterLastName sets the "renter_last_name" field.
func (_c *ConversationCreate) SetRenterLastName(v string) *ConversationCreate {
	_c.mutation.SetRenterLastName(v)
	return _c
}

// SetNillableRenterLastName sets the "renter_last_name" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableRenterLastName(v *string) *ConversationCreate {
	if v != nil {
		_c.SetRenterLastName(*v)
	}
	return _c
}

// SetBuyerEmail sets the "buyer_email" field.
func (_c *ConversationCreate) SetBuyerEmail(v string) *ConversationCreate {
	_c.mutation.SetBuyerEmail(v)
	return _c
}

// SetNillableBuyerEmail sets the "buyer_email" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableBuyerEmail(v *string) *ConversationCreate {
	if v != nil {
		_c.SetBuyerEmail(*v)
	}
	return _c
}

// SetNameStatus sets the "name_status" field.
func (_c *ConversationCreate) SetNameStatus(v conversation.NameStatus) *ConversationCreate {
	_c.mutation.SetNameStatus(v)
	return _c
}

// SetNillableNameStatus sets the "name_status" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableNameStatus(v *conversation.NameStatus) *ConversationCreate {
	if v != nil {
		_c.SetNameStatus(*v)
	}
	return _c
}

// SetNameRequestedAtTurn sets the "name_requested_at_turn" field.
func (_c *ConversationCreate) SetNameRequestedAtTurn(v int) *ConversationCreate {
	_c.mutation.SetNameRequestedAtTurn(v)
	return _c
}

// SetNillableNameRequestedAtTurn sets the "name_requested_at_turn" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableNameRequestedAtTurn(v *int) *ConversationCreate {
	if v != nil {
		_c.SetNameRequestedAtTurn(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ConversationCreate) SetUserID(v string) *ConversationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableUserID(v *string) *ConversationCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_c *ConversationCreate) SetBuyerNeedID(v string) *ConversationCreate {
	_c.mutation.SetBuyerNeedID(v)
	return _c
}

// SetNillableBuyerNeedID sets the "buyer_need_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableBuyerNeedID(v *string) *ConversationCreate {
	if v != nil {
		_c.SetBuyerNeedID(*v)
	}
	return _c
}

// SetWarehouseID sets the "warehouse_id" field.
func (_c *ConversationCreate) SetWarehouseID(v string) *ConversationCreate {
	_c.mutation.SetWarehouseID(v)
	return _c
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableWarehouseID(v *string) *ConversationCreate {
	if v != nil {
		_c.SetWarehouseID(*v)
	}
	return _c
}

// SetEngagementID sets the "engagement_id" field.
func (_c *ConversationCreate) SetEngagementID(v string) *ConversationCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetNillableEngagementID sets the "engagement_id" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableEngagementID(v *string) *ConversationCreate {
	if v != nil {
		_c.SetEngagementID(*v)
	}
	return _c
}

// SetGuaranteeLinkToken sets the "guarantee_link_token" field.
func (_c *ConversationCreate) SetGuaranteeLinkToken(v string) *ConversationCreate {
	_c.mutation.SetGuaranteeLinkToken(v)
	return _c
}

// SetNillableGuaranteeLinkToken sets the "guarantee_link_token" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableGuaranteeLinkToken(v *string) *ConversationCreate {
	if v != nil {
		_c.SetGuaranteeLinkToken(*v)
	}
	return _c
}

// SetSearchSessionToken sets the "search_session_token" field.
func (_c *ConversationCreate) SetSearchSessionToken(v string) *ConversationCreate {
	_c.mutation.SetSearchSessionToken(v)
	return _c
}

// SetNillableSearchSessionToken sets the "search_session_token" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableSearchSessionToken(v *string) *ConversationCreate {
	if v != nil {
		_c.SetSearchSessionToken(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConversationCreate) SetStatus(v conversation.Status) *ConversationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableStatus(v *conversation.Status) *ConversationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReengagementStage sets the "reengagement_stage" field.
func (_c *ConversationCreate) SetReengagementStage(v int) *ConversationCreate {
	_c.mutation.SetReengagementStage(v)
	return _c
}

// SetNillableReengagementStage sets the "reengagement_stage" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableReengagementStage(v *int) *ConversationCreate {
	if v != nil {
		_c.SetReengagementStage(*v)
	}
	return _c
}

// SetNextReengagementAt sets the "next_reengagement_at" field.
func (_c *ConversationCreate) SetNextReengagementAt(v time.Time) *ConversationCreate {
	_c.mutation.SetNextReengagementAt(v)
	return _c
}

// SetNillableNextReengagementAt sets the "next_reengagement_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableNextReengagementAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetNextReengagementAt(*v)
	}
	return _c
}

// SetLastInboundAt sets the "last_inbound_at" field.
func (_c *ConversationCreate) SetLastInboundAt(v time.Time) *ConversationCreate {
	_c.mutation.SetLastInboundAt(v)
	return _c
}

// SetNillableLastInboundAt sets the "last_inbound_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableLastInboundAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetLastInboundAt(*v)
	}
	return _c
}

// SetLastOutboundAt sets the "last_outbound_at" field.
func (_c *ConversationCreate) SetLastOutboundAt(v time.Time) *ConversationCreate {
	_c.mutation.SetLastOutboundAt(v)
	return _c
}

// SetNillableLastOutboundAt sets the "last_outbound_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableLastOutboundAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetLastOutboundAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationCreate) SetUpdatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableUpdatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationCreate) SetID(v string) *ConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMessageIDs adds the "messages" edge to the InboundMessage entity by IDs.
func (_c *ConversationCreate) AddMessageIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the InboundMessage entity.
func (_c *ConversationCreate) AddMessages(v ...*InboundMessage) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.Persona(); !ok {
		v := conversation.DefaultPersona
		_c.mutation.SetPersona(v)
	}
	if _, ok := _c.mutation.Phase(); !ok {
		v := conversation.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		v := conversation.DefaultTurnCount
		_c.mutation.SetTurnCount(v)
	}
	if _, ok := _c.mutation.NameStatus(); !ok {
		v := conversation.DefaultNameStatus
		_c.mutation.SetNameStatus(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := conversation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ReengagementStage(); !ok {
		v := conversation.DefaultReengagementStage
		_c.mutation.SetReengagementStage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "Conversation.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := conversation.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Conversation.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Persona(); !ok {
		return &ValidationError{Name: "persona", err: errors.New(`ent: missing required field "Conversation.persona"`)}
	}
	if v, ok := _c.mutation.Persona(); ok {
		if err := conversation.PersonaValidator(v); err != nil {
			return &ValidationError{Name: "persona", err: fmt.Errorf(`ent: validator failed for field "Conversation.persona": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "Conversation.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := conversation.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "Conversation.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TurnCount(); !ok {
		return &ValidationError{Name: "turn_count", err: errors.New(`ent: missing required field "Conversation.turn_count"`)}
	}
	if _, ok := _c.mutation.NameStatus(); !ok {
		return &ValidationError{Name: "name_status", err: errors.New(`ent: missing required field "Conversation.name_status"`)}
	}
	if v, ok := _c.mutation.NameStatus(); ok {
		if err := conversation.NameStatusValidator(v); err != nil {
			return &ValidationError{Name: "name_status", err: fmt.Errorf(`ent: validator failed for field "Conversation.name_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Conversation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReengagementStage(); !ok {
		return &ValidationError{Name: "reengagement_stage", err: errors.New(`ent: missing required field "Conversation.reengagement_stage"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conversation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Conversation.updated_at"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
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
			return nil, fmt.Errorf("unexpected Conversation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(conversation.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Persona(); ok {
		_spec.SetField(conversation.FieldPersona, field.TypeEnum, value)
		_node.Persona = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(conversation.FieldPhase, field.TypeEnum, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.TurnCount(); ok {
		_spec.SetField(conversation.FieldTurnCount, field.TypeInt, value)
		_node.TurnCount = value
	}
	if value, ok := _c.mutation.Criteria(); ok {
		_spec.SetField(conversation.FieldCriteria, field.TypeJSON, value)
		_node.Criteria = value
	}
	if value, ok := _c.mutation.PresentedMatches(); ok {
		_spec.SetField(conversation.FieldPresentedMatches, field.TypeJSON, value)
		_node.PresentedMatches = value
	}
	if value, ok := _c.mutation.FocusedMatchID(); ok {
		_spec.SetField(conversation.FieldFocusedMatchID, field.TypeString, value)
		_node.FocusedMatchID = value
	}
	if value, ok := _c.mutation.RenterFirstName(); ok {
		_spec.SetField(conversation.FieldRenterFirstName, field.TypeString, value)
		_node.RenterFirstName = value
	}
	if value, ok := _c.mutation.RenterLastName(); ok {
		_spec.SetField(conversation.FieldRenterLastName, field.TypeString, value)
		_node.RenterLastName = value
	}
	if value, ok := _c.mutation.BuyerEmail(); ok {
		_spec.SetField(conversation.FieldBuyerEmail, field.TypeString, value)
		_node.BuyerEmail = value
	}
	if value, ok := _c.mutation.NameStatus(); ok {
		_spec.SetField(conversation.FieldNameStatus, field.TypeEnum, value)
		_node.NameStatus = value
	}
	if value, ok := _c.mutation.NameRequestedAtTurn(); ok {
		_spec.SetField(conversation.FieldNameRequestedAtTurn, field.TypeInt, value)
		_node.NameRequestedAtTurn = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(conversation.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.BuyerNeedID(); ok {
		_spec.SetField(conversation.FieldBuyerNeedID, field.TypeString, value)
		_node.BuyerNeedID = value
	}
	if value, ok := _c.mutation.WarehouseID(); ok {
		_spec.SetField(conversation.FieldWarehouseID, field.TypeString, value)
		_node.WarehouseID = value
	}
	if value, ok := _c.mutation.EngagementID(); ok {
		_spec.SetField(conversation.FieldEngagementID, field.TypeString, value)
		_node.EngagementID = value
	}
	if value, ok := _c.mutation.GuaranteeLinkToken(); ok {
		_spec.SetField(conversation.FieldGuaranteeLinkToken, field.TypeString, value)
		_node.GuaranteeLinkToken = value
	}
	if value, ok := _c.mutation.SearchSessionToken(); ok {
		_spec.SetField(conversation.FieldSearchSessionToken, field.TypeString, value)
		_node.SearchSessionToken = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReengagementStage(); ok {
		_spec.SetField(conversation.FieldReengagementStage, field.TypeInt, value)
		_node.ReengagementStage = value
	}
	if value, ok := _c.mutation.NextReengagementAt(); ok {
		_spec.SetField(conversation.FieldNextReengagementAt, field.TypeTime, value)
		_node.NextReengagementAt = &value
	}
	if value, ok := _c.mutation.LastInboundAt(); ok {
		_spec.SetField(conversation.FieldLastInboundAt, field.TypeTime, value)
		_node.LastInboundAt = &value
	}
	if value, ok := _c.mutation.LastOutboundAt(); ok {
		_spec.SetField(conversation.FieldLastOutboundAt, field.TypeTime, value)
		_node.LastOutboundAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.Create().
//		SetPhone(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetPhone(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertOne {
	_c.conflict = opts
	return &ConversationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreate) OnConflictColumns(columns ...string) *ConversationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertOne{
		create: _c,
	}
}

type (
	// ConversationUpsertOne is the builder for "upsert"-ing
	//  one Conversation node.
	ConversationUpsertOne struct {
		create *ConversationCreate
	}

	// ConversationUpsert is the "OnConflict" setter.
	ConversationUpsert struct {
		*sql.UpdateSet
	}
)

// SetPhone sets the "phone" field.
func (u *ConversationUpsert) SetPhone(v string) *ConversationUpsert {
	u.Set(conversation.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ConversationUpsert) UpdatePhone() *ConversationUpsert {
	u.SetExcluded(conversation.FieldPhone)
	return u
}

// SetPersona sets the "persona" field.
func (u *ConversationUpsert) SetPersona(v conversation.Persona) *ConversationUpsert {
	u.Set(conversation.FieldPersona, v)
	return u
}

// UpdatePersona sets the "persona" field to the value that was provided on create.
func (u *ConversationUpsert) UpdatePersona() *ConversationUpsert {
	u.SetExcluded(conversation.FieldPersona)
	return u
}

// SetPhase sets the "phase" field.
func (u *ConversationUpsert) SetPhase(v conversation.Phase) *ConversationUpsert {
	u.Set(conversation.FieldPhase, v)
	return u
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *ConversationUpsert) UpdatePhase() *ConversationUpsert {
	u.SetExcluded(conversation.FieldPhase)
	return u
}

// SetTurnCount sets the "turn_count" field.
func (u *ConversationUpsert) SetTurnCount(v int) *ConversationUpsert {
	u.Set(conversation.FieldTurnCount, v)
	return u
}

// UpdateTurnCount sets the "turn_count" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateTurnCount() *ConversationUpsert {
	u.SetExcluded(conversation.FieldTurnCount)
	return u
}

// AddTurnCount adds v to the "turn_count" field.
func (u *ConversationUpsert) AddTurnCount(v int) *ConversationUpsert {
	u.Add(conversation.FieldTurnCount, v)
	return u
}

// SetCriteria sets the "criteria" field.
func (u *ConversationUpsert) SetCriteria(v map[string]interface{}) *ConversationUpsert {
	u.Set(conversation.FieldCriteria, v)
	return u
}

// UpdateCriteria sets the "criteria" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateCriteria() *ConversationUpsert {
	u.SetExcluded(conversation.FieldCriteria)
	return u
}

// ClearCriteria clears the value of the "criteria" field.
func (u *ConversationUpsert) ClearCriteria() *ConversationUpsert {
	u.SetNull(conversation.FieldCriteria)
	return u
}

// SetPresentedMatches sets the "presented_matches" field.
func (u *ConversationUpsert) SetPresentedMatches(v []string) *ConversationUpsert {
	u.Set(conversation.FieldPresentedMatches, v)
	return u
}

// UpdatePresentedMatches sets the "presented_matches" field to the value that was provided on create.
func (u *ConversationUpsert) UpdatePresentedMatches() *ConversationUpsert {
	u.SetExcluded(conversation.FieldPresentedMatches)
	return u
}

// ClearPresentedMatches clears the value of the "presented_matches" field.
func (u *ConversationUpsert) ClearPresentedMatches() *ConversationUpsert {
	u.SetNull(conversation.FieldPresentedMatches)
	return u
}

// SetFocusedMatchID sets the "focused_match_id" field.
func (u *ConversationUpsert) SetFocusedMatchID(v string) *ConversationUpsert {
	u.Set(conversation.FieldFocusedMatchID, v)
	return u
}

// UpdateFocusedMatchID sets the "focused_match_id" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateFocusedMatchID() *ConversationUpsert {
	u.SetExcluded(conversation.FieldFocusedMatchID)
	return u
}

// ClearFocusedMatchID clears the value of the "focused_match_id" field.
func (u *ConversationUpsert) ClearFocusedMatchID() *ConversationUpsert {
	u.SetNull(conversation.FieldFocusedMatchID)
	return u
}

// SetRenterFirstName sets the "renter_first_name" field.
func (u *ConversationUpsert) SetRenterFirstName(v string) *ConversationUpsert {
	u.Set(conversation.FieldRenterFirstName, v)
	return u
}

// UpdateRenterFirstName sets the "renter_first_name" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateRenterFirstName() *ConversationUpsert {
	u.SetExcluded(conversation.FieldRenterFirstName)
	return u
}

// ClearRenterFirstName clears the value of the "renter_first_name" field.
func (u *ConversationUpsert) ClearRenterFirstName() *ConversationUpsert {
	u.SetNull(conversation.FieldRenterFirstName)
	return u
}

// SetRenterLastName sets the "renter_last_name" field.
func (u *ConversationUpsert) SetRenterLastName(v string) *ConversationUpsert {
	u.Set(conversation.FieldRenterLastName, v)
	return u
}

// UpdateRenterLastName sets the "renter_last_name" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateRenterLastName() *ConversationUpsert {
	u.SetExcluded(conversation.FieldRenterLastName)
	return u
}

// ClearRenterLastName clears the value of the "renter_last_name" field.
func (u *ConversationUpsert) ClearRenterLastName() *ConversationUpsert {
	u.SetNull(conversation.FieldRenterLastName)
	return u
}

// SetBuyerEmail sets the "buyer_email" field.
func (u *ConversationUpsert) SetBuyerEmail(v string) *ConversationUpsert {
	u.Set(conversation.FieldBuyerEmail, v)
	return u
}

// UpdateBuyerEmail sets the "buyer_email" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateBuyerEmail() *ConversationUpsert {
	u.SetExcluded(conversation.FieldBuyerEmail)
	return u
}

// ClearBuyerEmail clears the value of the "buyer_email" field.
func (u *ConversationUpsert) ClearBuyerEmail() *ConversationUpsert {
	u.SetNull(conversation.FieldBuyerEmail)
	return u
}

// SetNameStatus sets the "name_status" field.
func (u *ConversationUpsert) SetNameStatus(v conversation.NameStatus) *ConversationUpsert {
	u.Set(conversation.FieldNameStatus, v)
	return u
}

// UpdateNameStatus sets the "name_status" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateNameStatus() *ConversationUpsert {
	u.SetExcluded(conversation.FieldNameStatus)
	return u
}

// SetNameRequestedAtTurn sets the "name_requested_at_turn" field.
func (u *ConversationUpsert) SetNameRequestedAtTurn(v int) *ConversationUpsert {
	u.Set(conversation.FieldNameRequestedAtTurn, v)
	return u
}

// UpdateNameRequestedAtTurn sets the "name_requested_at_turn" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateNameRequestedAtTurn() *ConversationUpsert {
	u.SetExcluded(conversation.FieldNameRequestedAtTurn)
	return u
}

// AddNameRequestedAtTurn adds v to the "name_requested_at_turn" field.
func (u *ConversationUpsert) AddNameRequestedAtTurn(v int) *ConversationUpsert {
	u.Add(conversation.FieldNameRequestedAtTurn, v)
	return u
}

// ClearNameRequestedAtTurn clears the value of the "name_requested_at_turn" field.
func (u *ConversationUpsert) ClearNameRequestedAtTurn() *ConversationUpsert {
	u.SetNull(conversation.FieldNameRequestedAtTurn)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ConversationUpsert) SetUserID(v string) *ConversationUpsert {
	u.Set(conversation.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateUserID() *ConversationUpsert {
	u.SetExcluded(conversation.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *ConversationUpsert) ClearUserID() *ConversationUpsert {
	u.SetNull(conversation.FieldUserID)
	return u
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (u *ConversationUpsert) SetBuyerNeedID(v string) *ConversationUpsert {
	u.Set(conversation.FieldBuyerNeedID, v)
	return u
}

// UpdateBuyerNeedID sets the "buyer_need_id" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateBuyerNeedID() *ConversationUpsert {
	u.SetExcluded(conversation.FieldBuyerNeedID)
	return u
}

// ClearBuyerNeedID clears the value of the "buyer_need_id" field.
func (u *ConversationUpsert) ClearBuyerNeedID() *ConversationUpsert {
	u.SetNull(conversation.FieldBuyerNeedID)
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *ConversationUpsert) SetWarehouseID(v string) *ConversationUpsert {
	u.Set(conversation.FieldWarehouseID, v)
	return u
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateWarehouseID() *ConversationUpsert {
	u.SetExcluded(conversation.FieldWarehouseID)
	return u
}

// ClearWarehouseID clears the value of the "warehouse_id" field.
func (u *ConversationUpsert) ClearWarehouseID() *ConversationUpsert {
	u.SetNull(conversation.FieldWarehouseID)
	return u
}

// SetEngagementID sets the "engagement_id" field.
func (u *ConversationUpsert) SetEngagementID(v string) *ConversationUpsert {
	u.Set(conversation.FieldEngagementID, v)
	return u
}

// UpdateEngagementID sets the "engagement_id" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateEngagementID() *ConversationUpsert {
	u.SetExcluded(conversation.FieldEngagementID)
	return u
}

// ClearEngagementID clears the value of the "engagement_id" field.
func (u *ConversationUpsert) ClearEngagementID() *ConversationUpsert {
	u.SetNull(conversation.FieldEngagementID)
	return u
}

// SetGuaranteeLinkToken sets the "guarantee_link_token" field.
func (u *ConversationUpsert) SetGuaranteeLinkToken(v string) *ConversationUpsert {
	u.Set(conversation.FieldGuaranteeLinkToken, v)
	return u
}

// UpdateGuaranteeLinkToken sets the "guarantee_link_token" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateGuaranteeLinkToken() *ConversationUpsert {
	u.SetExcluded(conversation.FieldGuaranteeLinkToken)
	return u
}

// ClearGuaranteeLinkToken clears the value of the "guarantee_link_token" field.
func (u *ConversationUpsert) ClearGuaranteeLinkToken() *ConversationUpsert {
	u.SetNull(conversation.FieldGuaranteeLinkToken)
	return u
}

// SetSearchSessionToken sets the "search_session_token" field.
func (u *ConversationUpsert) SetSearchSessionToken(v string) *ConversationUpsert {
	u.Set(conversation.FieldSearchSessionToken, v)
	return u
}

// UpdateSearchSessionToken sets the "search_session_token" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateSearchSessionToken() *ConversationUpsert {
	u.SetExcluded(conversation.FieldSearchSessionToken)
	return u
}

// ClearSearchSessionToken clears the value of the "search_session_token" field.
func (u *ConversationUpsert) ClearSearchSessionToken() *ConversationUpsert {
	u.SetNull(conversation.FieldSearchSessionToken)
	return u
}

// SetStatus sets the "status" field.
func (u *ConversationUpsert) SetStatus(v conversation.Status) *ConversationUpsert {
	u.Set(conversation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateStatus() *ConversationUpsert {
	u.SetExcluded(conversation.FieldStatus)
	return u
}

// SetReengagementStage sets the "reengagement_stage" field.
func (u *ConversationUpsert) SetReengagementStage(v int) *ConversationUpsert {
	u.Set(conversation.FieldReengagementStage, v)
	return u
}

// UpdateReengagementStage sets the "reengagement_stage" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateReengagementStage() *ConversationUpsert {
	u.SetExcluded(conversation.FieldReengagementStage)
	return u
}

// AddReengagementStage adds v to the "reengagement_stage" field.
func (u *ConversationUpsert) AddReengagementStage(v int) *ConversationUpsert {
	u.Add(conversation.FieldReengagementStage, v)
	return u
}

// SetNextReengagementAt sets the "next_reengagement_at" field.
func (u *ConversationUpsert) SetNextReengagementAt(v time.Time) *ConversationUpsert {
	u.Set(conversation.FieldNextReengagementAt, v)
	return u
}

// UpdateNextReengagementAt sets the "next_reengagement_at" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateNextReengagementAt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldNextReengagementAt)
	return u
}

// ClearNextReengagementAt clears the value of the "next_reengagement_at" field.
func (u *ConversationUpsert) ClearNextReengagementAt() *ConversationUpsert {
	u.SetNull(conversation.FieldNextReengagementAt)
	return u
}

// SetLastInboundAt sets the "last_inbound_at" field.
func (u *ConversationUpsert) SetLastInboundAt(v time.Time) *ConversationUpsert {
	u.Set(conversation.FieldLastInboundAt, v)
	return u
}

// UpdateLastInboundAt sets the "last_inbound_at" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateLastInboundAt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldLastInboundAt)
	return u
}

// ClearLastInboundAt clears the value of the "last_inbound_at" field.
func (u *ConversationUpsert) ClearLastInboundAt() *ConversationUpsert {
	u.SetNull(conversation.FieldLastInboundAt)
	return u
}

// SetLastOutboundAt sets the "last_outbound_at" field.
func (u *ConversationUpsert) SetLastOutboundAt(v time.Time) *ConversationUpsert {
	u.Set(conversation.FieldLastOutboundAt, v)
	return u
}

// UpdateLastOutboundAt sets the "last_outbound_at" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateLastOutboundAt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldLastOutboundAt)
	return u
}

// ClearLastOutboundAt clears the value of the "last_outbound_at" field.
func (u *ConversationUpsert) ClearLastOutboundAt() *ConversationUpsert {
	u.SetNull(conversation.FieldLastOutboundAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConversationUpsert) SetUpdatedAt(v time.Time) *ConversationUpsert {
	u.Set(conversation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConversationUpsert) UpdateUpdatedAt() *ConversationUpsert {
	u.SetExcluded(conversation.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationUpsertOne) UpdateNewValues() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(conversation.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(conversation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConversationUpsertOne) Ignore() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertOne) DoNothing() *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreate.OnConflict
// documentation for more info.
func (u *ConversationUpsertOne) Update(set func(*ConversationUpsert)) *ConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhone sets the "phone" field.
func (u *ConversationUpsertOne) SetPhone(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdatePhone() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePhone()
	})
}

// SetPersona sets the "persona" field.
func (u *ConversationUpsertOne) SetPersona(v conversation.Persona) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPersona(v)
	})
}

// UpdatePersona sets the "persona" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdatePersona() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePersona()
	})
}

// SetPhase sets the "phase" field.
func (u *ConversationUpsertOne) SetPhase(v conversation.Phase) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdatePhase() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePhase()
	})
}

// SetTurnCount sets the "turn_count" field.
func (u *ConversationUpsertOne) SetTurnCount(v int) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetTurnCount(v)
	})
}

// AddTurnCount adds v to the "turn_count" field.
func (u *ConversationUpsertOne) AddTurnCount(v int) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.AddTurnCount(v)
	})
}

// UpdateTurnCount sets the "turn_count" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateTurnCount() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateTurnCount()
	})
}

// SetCriteria sets the "criteria" field.
func (u *ConversationUpsertOne) SetCriteria(v map[string]interface{}) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetCriteria(v)
	})
}

// UpdateCriteria sets the "criteria" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateCriteria() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateCriteria()
	})
}

// ClearCriteria clears the value of the "criteria" field.
func (u *ConversationUpsertOne) ClearCriteria() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearCriteria()
	})
}

// SetPresentedMatches sets the "presented_matches" field.
func (u *ConversationUpsertOne) SetPresentedMatches(v []string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPresentedMatches(v)
	})
}

// UpdatePresentedMatches sets the "presented_matches" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdatePresentedMatches() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePresentedMatches()
	})
}

// ClearPresentedMatches clears the value of the "presented_matches" field.
func (u *ConversationUpsertOne) ClearPresentedMatches() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearPresentedMatches()
	})
}

// SetFocusedMatchID sets the "focused_match_id" field.
func (u *ConversationUpsertOne) SetFocusedMatchID(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetFocusedMatchID(v)
	})
}

// UpdateFocusedMatchID sets the "focused_match_id" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateFocusedMatchID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateFocusedMatchID()
	})
}

// ClearFocusedMatchID clears the value of the "focused_match_id" field.
func (u *ConversationUpsertOne) ClearFocusedMatchID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearFocusedMatchID()
	})
}

// SetRenterFirstName sets the "renter_first_name" field.
func (u *ConversationUpsertOne) SetRenterFirstName(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetRenterFirstName(v)
	})
}

// UpdateRenterFirstName sets the "renter_first_name" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateRenterFirstName() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateRenterFirstName()
	})
}

// ClearRenterFirstName clears the value of the "renter_first_name" field.
func (u *ConversationUpsertOne) ClearRenterFirstName() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearRenterFirstName()
	})
}

// SetRenterLastName sets the "renter_last_name" field.
func (u *ConversationUpsertOne) SetRenterLastName(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetRenterLastName(v)
	})
}

// UpdateRenterLastName sets the "renter_last_name" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateRenterLastName() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateRenterLastName()
	})
}

// ClearRenterLastName clears the value of the "renter_last_name" field.
func (u *ConversationUpsertOne) ClearRenterLastName() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearRenterLastName()
	})
}

// SetBuyerEmail sets the "buyer_email" field.
func (u *ConversationUpsertOne) SetBuyerEmail(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetBuyerEmail(v)
	})
}

// UpdateBuyerEmail sets the "buyer_email" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateBuyerEmail() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateBuyerEmail()
	})
}

// ClearBuyerEmail clears the value of the "buyer_email" field.
func (u *ConversationUpsertOne) ClearBuyerEmail() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearBuyerEmail()
	})
}

// SetNameStatus sets the "name_status" field.
func (u *ConversationUpsertOne) SetNameStatus(v conversation.NameStatus) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetNameStatus(v)
	})
}

// UpdateNameStatus sets the "name_status" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateNameStatus() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateNameStatus()
	})
}

// SetNameRequestedAtTurn sets the "name_requested_at_turn" field.
func (u *ConversationUpsertOne) SetNameRequestedAtTurn(v int) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetNameRequestedAtTurn(v)
	})
}

// AddNameRequestedAtTurn adds v to the "name_requested_at_turn" field.
func (u *ConversationUpsertOne) AddNameRequestedAtTurn(v int) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.AddNameRequestedAtTurn(v)
	})
}

// UpdateNameRequestedAtTurn sets the "name_requested_at_turn" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateNameRequestedAtTurn() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateNameRequestedAtTurn()
	})
}

// ClearNameRequestedAtTurn clears the value of the "name_requested_at_turn" field.
func (u *ConversationUpsertOne) ClearNameRequestedAtTurn() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearNameRequestedAtTurn()
	})
}

// SetUserID sets the "user_id" field.
func (u *ConversationUpsertOne) SetUserID(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateUserID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *ConversationUpsertOne) ClearUserID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearUserID()
	})
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (u *ConversationUpsertOne) SetBuyerNeedID(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetBuyerNeedID(v)
	})
}

// UpdateBuyerNeedID sets the "buyer_need_id" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateBuyerNeedID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateBuyerNeedID()
	})
}

// ClearBuyerNeedID clears the value of the "buyer_need_id" field.
func (u *ConversationUpsertOne) ClearBuyerNeedID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearBuyerNeedID()
	})
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *ConversationUpsertOne) SetWarehouseID(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateWarehouseID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateWarehouseID()
	})
}

// ClearWarehouseID clears the value of the "warehouse_id" field.
func (u *ConversationUpsertOne) ClearWarehouseID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearWarehouseID()
	})
}

// SetEngagementID sets the "engagement_id" field.
func (u *ConversationUpsertOne) SetEngagementID(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetEngagementID(v)
	})
}

// UpdateEngagementID sets the "engagement_id" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateEngagementID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateEngagementID()
	})
}

// ClearEngagementID clears the value of the "engagement_id" field.
func (u *ConversationUpsertOne) ClearEngagementID() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearEngagementID()
	})
}

// SetGuaranteeLinkToken sets the "guarantee_link_token" field.
func (u *ConversationUpsertOne) SetGuaranteeLinkToken(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetGuaranteeLinkToken(v)
	})
}

// UpdateGuaranteeLinkToken sets the "guarantee_link_token" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateGuaranteeLinkToken() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateGuaranteeLinkToken()
	})
}

// ClearGuaranteeLinkToken clears the value of the "guarantee_link_token" field.
func (u *ConversationUpsertOne) ClearGuaranteeLinkToken() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearGuaranteeLinkToken()
	})
}

// SetSearchSessionToken sets the "search_session_token" field.
func (u *ConversationUpsertOne) SetSearchSessionToken(v string) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetSearchSessionToken(v)
	})
}

// UpdateSearchSessionToken sets the "search_session_token" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateSearchSessionToken() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateSearchSessionToken()
	})
}

// ClearSearchSessionToken clears the value of the "search_session_token" field.
func (u *ConversationUpsertOne) ClearSearchSessionToken() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearSearchSessionToken()
	})
}

// SetStatus sets the "status" field.
func (u *ConversationUpsertOne) SetStatus(v conversation.Status) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateStatus() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateStatus()
	})
}

// SetReengagementStage sets the "reengagement_stage" field.
func (u *ConversationUpsertOne) SetReengagementStage(v int) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetReengagementStage(v)
	})
}

// AddReengagementStage adds v to the "reengagement_stage" field.
func (u *ConversationUpsertOne) AddReengagementStage(v int) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.AddReengagementStage(v)
	})
}

// UpdateReengagementStage sets the "reengagement_stage" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateReengagementStage() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateReengagementStage()
	})
}

// SetNextReengagementAt sets the "next_reengagement_at" field.
func (u *ConversationUpsertOne) SetNextReengagementAt(v time.Time) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetNextReengagementAt(v)
	})
}

// UpdateNextReengagementAt sets the "next_reengagement_at" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateNextReengagementAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateNextReengagementAt()
	})
}

// ClearNextReengagementAt clears the value of the "next_reengagement_at" field.
func (u *ConversationUpsertOne) ClearNextReengagementAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearNextReengagementAt()
	})
}

// SetLastInboundAt sets the "last_inbound_at" field.
func (u *ConversationUpsertOne) SetLastInboundAt(v time.Time) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetLastInboundAt(v)
	})
}

// UpdateLastInboundAt sets the "last_inbound_at" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateLastInboundAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateLastInboundAt()
	})
}

// ClearLastInboundAt clears the value of the "last_inbound_at" field.
func (u *ConversationUpsertOne) ClearLastInboundAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearLastInboundAt()
	})
}

// SetLastOutboundAt sets the "last_outbound_at" field.
func (u *ConversationUpsertOne) SetLastOutboundAt(v time.Time) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetLastOutboundAt(v)
	})
}

// UpdateLastOutboundAt sets the "last_outbound_at" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateLastOutboundAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateLastOutboundAt()
	})
}

// ClearLastOutboundAt clears the value of the "last_outbound_at" field.
func (u *ConversationUpsertOne) ClearLastOutboundAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearLastOutboundAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConversationUpsertOne) SetUpdatedAt(v time.Time) *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConversationUpsertOne) UpdateUpdatedAt() *ConversationUpsertOne {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ConversationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConversationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ConversationUpsertOne.ID is not supported by MySQL driver. Use ConversationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConversationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
	conflict []sql.ConflictOption
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
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
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Conversation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConversationUpsert) {
//			SetPhone(v+v).
//		}).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConversationUpsertBulk {
	_c.conflict = opts
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConversationCreateBulk) OnConflictColumns(columns ...string) *ConversationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConversationUpsertBulk{
		create: _c,
	}
}

// ConversationUpsertBulk is the builder for "upsert"-ing
// a bulk of Conversation nodes.
type ConversationUpsertBulk struct {
	create *ConversationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(conversation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ConversationUpsertBulk) UpdateNewValues() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(conversation.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(conversation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Conversation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConversationUpsertBulk) Ignore() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConversationUpsertBulk) DoNothing() *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConversationCreateBulk.OnConflict
// documentation for more info.
func (u *ConversationUpsertBulk) Update(set func(*ConversationUpsert)) *ConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhone sets the "phone" field.
func (u *ConversationUpsertBulk) SetPhone(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdatePhone() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePhone()
	})
}

// SetPersona sets the "persona" field.
func (u *ConversationUpsertBulk) SetPersona(v conversation.Persona) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPersona(v)
	})
}

// UpdatePersona sets the "persona" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdatePersona() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePersona()
	})
}

// SetPhase sets the "phase" field.
func (u *ConversationUpsertBulk) SetPhase(v conversation.Phase) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPhase(v)
	})
}

// UpdatePhase sets the "phase" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdatePhase() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePhase()
	})
}

// SetTurnCount sets the "turn_count" field.
func (u *ConversationUpsertBulk) SetTurnCount(v int) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetTurnCount(v)
	})
}

// AddTurnCount adds v to the "turn_count" field.
func (u *ConversationUpsertBulk) AddTurnCount(v int) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.AddTurnCount(v)
	})
}

// UpdateTurnCount sets the "turn_count" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateTurnCount() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateTurnCount()
	})
}

// SetCriteria sets the "criteria" field.
func (u *ConversationUpsertBulk) SetCriteria(v map[string]interface{}) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetCriteria(v)
	})
}

// UpdateCriteria sets the "criteria" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateCriteria() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateCriteria()
	})
}

// ClearCriteria clears the value of the "criteria" field.
func (u *ConversationUpsertBulk) ClearCriteria() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearCriteria()
	})
}

// SetPresentedMatches sets the "presented_matches" field.
func (u *ConversationUpsertBulk) SetPresentedMatches(v []string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetPresentedMatches(v)
	})
}

// UpdatePresentedMatches sets the "presented_matches" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdatePresentedMatches() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdatePresentedMatches()
	})
}

// ClearPresentedMatches clears the value of the "presented_matches" field.
func (u *ConversationUpsertBulk) ClearPresentedMatches() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearPresentedMatches()
	})
}

// SetFocusedMatchID sets the "focused_match_id" field.
func (u *ConversationUpsertBulk) SetFocusedMatchID(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetFocusedMatchID(v)
	})
}

// UpdateFocusedMatchID sets the "focused_match_id" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateFocusedMatchID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateFocusedMatchID()
	})
}

// ClearFocusedMatchID clears the value of the "focused_match_id" field.
func (u *ConversationUpsertBulk) ClearFocusedMatchID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearFocusedMatchID()
	})
}

// SetRenterFirstName sets the "renter_first_name" field.
func (u *ConversationUpsertBulk) SetRenterFirstName(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetRenterFirstName(v)
	})
}

// UpdateRenterFirstName sets the "renter_first_name" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateRenterFirstName() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateRenterFirstName()
	})
}

// ClearRenterFirstName clears the value of the "renter_first_name" field.
func (u *ConversationUpsertBulk) ClearRenterFirstName() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearRenterFirstName()
	})
}

// SetRenterLastName sets the "renter_last_name" field.
func (u *ConversationUpsertBulk) SetRenterLastName(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetRenterLastName(v)
	})
}

// UpdateRenterLastName sets the "renter_last_name" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateRenterLastName() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateRenterLastName()
	})
}

// ClearRenterLastName clears the value of the "renter_last_name" field.
func (u *ConversationUpsertBulk) ClearRenterLastName() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearRenterLastName()
	})
}

// SetBuyerEmail sets the "buyer_email" field.
func (u *ConversationUpsertBulk) SetBuyerEmail(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetBuyerEmail(v)
	})
}

// UpdateBuyerEmail sets the "buyer_email" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateBuyerEmail() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateBuyerEmail()
	})
}

// ClearBuyerEmail clears the value of the "buyer_email" field.
func (u *ConversationUpsertBulk) ClearBuyerEmail() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearBuyerEmail()
	})
}

// SetNameStatus sets the "name_status" field.
func (u *ConversationUpsertBulk) SetNameStatus(v conversation.NameStatus) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetNameStatus(v)
	})
}

// UpdateNameStatus sets the "name_status" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateNameStatus() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateNameStatus()
	})
}

// SetNameRequestedAtTurn sets the "name_requested_at_turn" field.
func (u *ConversationUpsertBulk) SetNameRequestedAtTurn(v int) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetNameRequestedAtTurn(v)
	})
}

// AddNameRequestedAtTurn adds v to the "name_requested_at_turn" field.
func (u *ConversationUpsertBulk) AddNameRequestedAtTurn(v int) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.AddNameRequestedAtTurn(v)
	})
}

// UpdateNameRequestedAtTurn sets the "name_requested_at_turn" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateNameRequestedAtTurn() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateNameRequestedAtTurn()
	})
}

// ClearNameRequestedAtTurn clears the value of the "name_requested_at_turn" field.
func (u *ConversationUpsertBulk) ClearNameRequestedAtTurn() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearNameRequestedAtTurn()
	})
}

// SetUserID sets the "user_id" field.
func (u *ConversationUpsertBulk) SetUserID(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateUserID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *ConversationUpsertBulk) ClearUserID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearUserID()
	})
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (u *ConversationUpsertBulk) SetBuyerNeedID(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetBuyerNeedID(v)
	})
}

// UpdateBuyerNeedID sets the "buyer_need_id" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateBuyerNeedID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateBuyerNeedID()
	})
}

// ClearBuyerNeedID clears the value of the "buyer_need_id" field.
func (u *ConversationUpsertBulk) ClearBuyerNeedID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearBuyerNeedID()
	})
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *ConversationUpsertBulk) SetWarehouseID(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateWarehouseID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateWarehouseID()
	})
}

// ClearWarehouseID clears the value of the "warehouse_id" field.
func (u *ConversationUpsertBulk) ClearWarehouseID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearWarehouseID()
	})
}

// SetEngagementID sets the "engagement_id" field.
func (u *ConversationUpsertBulk) SetEngagementID(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetEngagementID(v)
	})
}

// UpdateEngagementID sets the "engagement_id" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateEngagementID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateEngagementID()
	})
}

// ClearEngagementID clears the value of the "engagement_id" field.
func (u *ConversationUpsertBulk) ClearEngagementID() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearEngagementID()
	})
}

// SetGuaranteeLinkToken sets the "guarantee_link_token" field.
func (u *ConversationUpsertBulk) SetGuaranteeLinkToken(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetGuaranteeLinkToken(v)
	})
}

// UpdateGuaranteeLinkToken sets the "guarantee_link_token" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateGuaranteeLinkToken() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateGuaranteeLinkToken()
	})
}

// ClearGuaranteeLinkToken clears the value of the "guarantee_link_token" field.
func (u *ConversationUpsertBulk) ClearGuaranteeLinkToken() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearGuaranteeLinkToken()
	})
}

// SetSearchSessionToken sets the "search_session_token" field.
func (u *ConversationUpsertBulk) SetSearchSessionToken(v string) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetSearchSessionToken(v)
	})
}

// UpdateSearchSessionToken sets the "search_session_token" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateSearchSessionToken() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateSearchSessionToken()
	})
}

// ClearSearchSessionToken clears the value of the "search_session_token" field.
func (u *ConversationUpsertBulk) ClearSearchSessionToken() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearSearchSessionToken()
	})
}

// SetStatus sets the "status" field.
func (u *ConversationUpsertBulk) SetStatus(v conversation.Status) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateStatus() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateStatus()
	})
}

// SetReengagementStage sets the "reengagement_stage" field.
func (u *ConversationUpsertBulk) SetReengagementStage(v int) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetReengagementStage(v)
	})
}

// AddReengagementStage adds v to the "reengagement_stage" field.
func (u *ConversationUpsertBulk) AddReengagementStage(v int) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.AddReengagementStage(v)
	})
}

// UpdateReengagementStage sets the "reengagement_stage" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateReengagementStage() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateReengagementStage()
	})
}

// SetNextReengagementAt sets the "next_reengagement_at" field.
func (u *ConversationUpsertBulk) SetNextReengagementAt(v time.Time) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetNextReengagementAt(v)
	})
}

// UpdateNextReengagementAt sets the "next_reengagement_at" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateNextReengagementAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateNextReengagementAt()
	})
}

// ClearNextReengagementAt clears the value of the "next_reengagement_at" field.
func (u *ConversationUpsertBulk) ClearNextReengagementAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearNextReengagementAt()
	})
}

// SetLastInboundAt sets the "last_inbound_at" field.
func (u *ConversationUpsertBulk) SetLastInboundAt(v time.Time) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetLastInboundAt(v)
	})
}

// UpdateLastInboundAt sets the "last_inbound_at" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateLastInboundAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateLastInboundAt()
	})
}

// ClearLastInboundAt clears the value of the "last_inbound_at" field.
func (u *ConversationUpsertBulk) ClearLastInboundAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearLastInboundAt()
	})
}

// SetLastOutboundAt sets the "last_outbound_at" field.
func (u *ConversationUpsertBulk) SetLastOutboundAt(v time.Time) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetLastOutboundAt(v)
	})
}

// UpdateLastOutboundAt sets the "last_outbound_at" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateLastOutboundAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateLastOutboundAt()
	})
}

// ClearLastOutboundAt clears the value of the "last_outbound_at" field.
func (u *ConversationUpsertBulk) ClearLastOutboundAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.ClearLastOutboundAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConversationUpsertBulk) SetUpdatedAt(v time.Time) *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConversationUpsertBulk) UpdateUpdatedAt() *ConversationUpsertBulk {
	return u.Update(func(s *ConversationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ConversationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConversationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConversationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConversationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
