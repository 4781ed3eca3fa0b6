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
	"github.com/warehouse-exchange/wex/ent/dlatoken"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// DLATokenUpdate is the builder for updating DLAToken entities.
type DLATokenUpdate struct {
	config
	hooks    []Hook
	mutation *DLATokenMutation
}

// Where appends a list predicates to the DLATokenUpdate builder.
func (_u *DLATokenUpdate) Where(ps ...predicate.DLAToken) *DLATokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DLATokenUpdate) SetStatus(v dlatoken.Status) *DLATokenUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DLATokenUpdate) SetNillableStatus(v *dlatoken.Status) *DLATokenUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSuggestedRate sets the "suggested_rate" field.
func (_u *DLATokenUpdate) SetSuggestedRate(v float64) *DLATokenUpdate {
	_u.mutation.ResetSuggestedRate()
	_u.mutation.SetSuggestedRate(v)
	return _u
}

// SetNillableSuggestedRate sets the "suggested_rate" field if the given value is not nil.
func (_u *DLATokenUpdate) SetNillableSuggestedRate(v *float64) *DLATokenUpdate {
	if v != nil {
		_u.SetSuggestedRate(*v)
	}
	return _u
}

// AddSuggestedRate adds value to the "suggested_rate" field.
func (_u *DLATokenUpdate) AddSuggestedRate(v float64) *DLATokenUpdate {
	_u.mutation.AddSuggestedRate(v)
	return _u
}

// ClearSuggestedRate clears the value of the "suggested_rate" field.
func (_u *DLATokenUpdate) ClearSuggestedRate() *DLATokenUpdate {
	_u.mutation.ClearSuggestedRate()
	return _u
}

// SetFinalRate sets the "final_rate" field.
func (_u *DLATokenUpdate) SetFinalRate(v float64) *DLATokenUpdate {
	_u.mutation.ResetFinalRate()
	_u.mutation.SetFinalRate(v)
	return _u
}

// SetNillableFinalRate sets the "final_rate" field if the given value is not nil.
func (_u *DLATokenUpdate) SetNillableFinalRate(v *float64) *DLATokenUpdate {
	if v != nil {
		_u.SetFinalRate(*v)
	}
	return _u
}

// AddFinalRate adds value to the "final_rate" field.
func (_u *DLATokenUpdate) AddFinalRate(v float64) *DLATokenUpdate {
	_u.mutation.AddFinalRate(v)
	return _u
}

// ClearFinalRate clears the value of the "final_rate" field.
func (_u *DLATokenUpdate) ClearFinalRate() *DLATokenUpdate {
	_u.mutation.ClearFinalRate()
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *DLATokenUpdate) SetConfirmedAt(v time.Time) *DLATokenUpdate {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *DLATokenUpdate) SetNillableConfirmedAt(v *time.Time) *DLATokenUpdate {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *DLATokenUpdate) ClearConfirmedAt() *DLATokenUpdate {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *DLATokenUpdate) SetRespondedAt(v time.Time) *DLATokenUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *DLATokenUpdate) SetNillableRespondedAt(v *time.Time) *DLATokenUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *DLATokenUpdate) ClearRespondedAt() *DLATokenUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetOutcomeNote sets the "outcome_note" field.
func (_u *DLATokenUpdate) SetOutcomeNote(v string) *DLATokenUpdate {
	_u.mutation.SetOutcomeNote(v)
	return _u
}

// SetNillableOutcomeNote sets the "outcome_note" field if the given value is not nil.
func (_u *DLATokenUpdate) SetNillableOutcomeNote(v *string) *DLATokenUpdate {
	if v != nil {
		_u.SetOutcomeNote(*v)
	}
	return _u
}

// ClearOutcomeNote clears the value of the "outcome_note" field.
func (_u *DLATokenUpdate) ClearOutcomeNote() *DLATokenUpdate {
	_u.mutation.ClearOutcomeNote()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DLATokenUpdate) SetUpdatedAt(v time.Time) *DLATokenUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DLATokenMutation object of the builder.
func (_u *DLATokenUpdate) Mutation() *DLATokenMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DLATokenUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DLATokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DLATokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DLATokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DLATokenUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dlatoken.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DLATokenUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dlatoken.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DLAToken.status": %w`, err)}
		}
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DLAToken.warehouse"`)
	}
	if _u.mutation.BuyerNeedCleared() && len(_u.mutation.BuyerNeedIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DLAToken.buyer_need"`)
	}
	return nil
}

func (_u *DLATokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dlatoken.Table, dlatoken.Columns, sqlgraph.NewFieldSpec(dlatoken.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dlatoken.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SuggestedRate(); ok {
		_spec.SetField(dlatoken.FieldSuggestedRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuggestedRate(); ok {
		_spec.AddField(dlatoken.FieldSuggestedRate, field.TypeFloat64, value)
	}
	if _u.mutation.SuggestedRateCleared() {
		_spec.ClearField(dlatoken.FieldSuggestedRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FinalRate(); ok {
		_spec.SetField(dlatoken.FieldFinalRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalRate(); ok {
		_spec.AddField(dlatoken.FieldFinalRate, field.TypeFloat64, value)
	}
	if _u.mutation.FinalRateCleared() {
		_spec.ClearField(dlatoken.FieldFinalRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(dlatoken.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(dlatoken.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(dlatoken.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(dlatoken.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OutcomeNote(); ok {
		_spec.SetField(dlatoken.FieldOutcomeNote, field.TypeString, value)
	}
	if _u.mutation.OutcomeNoteCleared() {
		_spec.ClearField(dlatoken.FieldOutcomeNote, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dlatoken.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dlatoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DLATokenUpdateOne is the builder for updating a single DLAToken entity.
type DLATokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DLATokenMutation
}

// SetStatus sets the "status" field.
func (_u *DLATokenUpdateOne) SetStatus(v dlatoken.Status) *DLATokenUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DLATokenUpdateOne) SetNillableStatus(v *dlatoken.Status) *DLATokenUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSuggestedRate sets the "suggested_rate" field.
func (_u *DLATokenUpdateOne) SetSuggestedRate(v float64) *DLATokenUpdateOne {
	_u.mutation.ResetSuggestedRate()
	_u.mutation.SetSuggestedRate(v)
	return _u
}

// SetNillableSuggestedRate sets the "suggested_rate" field if the given value is not nil.
func (_u *DLATokenUpdateOne) SetNillableSuggestedRate(v *float64) *DLATokenUpdateOne {
	if v != nil {
		_u.SetSuggestedRate(*v)
	}
	return _u
}

// AddSuggestedRate adds value to the "suggested_rate" field.
func (_u *DLATokenUpdateOne) AddSuggestedRate(v float64) *DLATokenUpdateOne {
	_u.mutation.AddSuggestedRate(v)
	return _u
}

// ClearSuggestedRate clears the value of the "suggested_rate" field.
func (_u *DLATokenUpdateOne) ClearSuggestedRate() *DLATokenUpdateOne {
	_u.mutation.ClearSuggestedRate()
	return _u
}

// SetFinalRate sets the "final_rate" field.
func (_u *DLATokenUpdateOne) SetFinalRate(v float64) *DLATokenUpdateOne {
	_u.mutation.ResetFinalRate()
	_u.mutation.SetFinalRate(v)
	return _u
}

// SetNillableFinalRate sets the "final_rate" field if the given value is not nil.
func (_u *DLATokenUpdateOne) SetNillableFinalRate(v *float64) *DLATokenUpdateOne {
	if v != nil {
		_u.SetFinalRate(*v)
	}
	return _u
}

// AddFinalRate adds value to the "final_rate" field.
func (_u *DLATokenUpdateOne) AddFinalRate(v float64) *DLATokenUpdateOne {
	_u.mutation.AddFinalRate(v)
	return _u
}

// ClearFinalRate clears the value of the "final_rate" field.
func (_u *DLATokenUpdateOne) ClearFinalRate() *DLATokenUpdateOne {
	_u.mutation.ClearFinalRate()
	return _u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_u *DLATokenUpdateOne) SetConfirmedAt(v time.Time) *DLATokenUpdateOne {
	_u.mutation.SetConfirmedAt(v)
	return _u
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_u *DLATokenUpdateOne) SetNillableConfirmedAt(v *time.Time) *DLATokenUpdateOne {
	if v != nil {
		_u.SetConfirmedAt(*v)
	}
	return _u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (_u *DLATokenUpdateOne) ClearConfirmedAt() *DLATokenUpdateOne {
	_u.mutation.ClearConfirmedAt()
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *DLATokenUpdateOne) SetRespondedAt(v time.Time) *DLATokenUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *DLATokenUpdateOne) SetNillableRespondedAt(v *time.Time) *DLATokenUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *DLATokenUpdateOne) ClearRespondedAt() *DLATokenUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetOutcomeNote sets the "outcome_note" field.
func (_u *DLATokenUpdateOne) SetOutcomeNote(v string) *DLATokenUpdateOne {
	_u.mutation.SetOutcomeNote(v)
	return _u
}

// SetNillableOutcomeNote sets the "outcome_note" field if the given value is not nil.
func (_u *DLATokenUpdateOne) SetNillableOutcomeNote(v *string) *DLATokenUpdateOne {
	if v != nil {
		_u.SetOutcomeNote(*v)
	}
	return _u
}

// ClearOutcomeNote clears the value of the "outcome_note" field.
func (_u *DLATokenUpdateOne) ClearOutcomeNote() *DLATokenUpdateOne {
	_u.mutation.ClearOutcomeNote()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DLATokenUpdateOne) SetUpdatedAt(v time.Time) *DLATokenUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DLATokenMutation object of the builder.
func (_u *DLATokenUpdateOne) Mutation() *DLATokenMutation {
	return _u.mutation
}

// Where appends a list predicates to the DLATokenUpdate builder.
func (_u *DLATokenUpdateOne) Where(ps ...predicate.DLAToken) *DLATokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DLATokenUpdateOne) Select(field string, fields ...string) *DLATokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DLAToken entity.
func (_u *DLATokenUpdateOne) Save(ctx context.Context) (*DLAToken, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DLATokenUpdateOne) SaveX(ctx context.Context) *DLAToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DLATokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DLATokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DLATokenUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dlatoken.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DLATokenUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dlatoken.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DLAToken.status": %w`, err)}
		}
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DLAToken.warehouse"`)
	}
	if _u.mutation.BuyerNeedCleared() && len(_u.mutation.BuyerNeedIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DLAToken.buyer_need"`)
	}
	return nil
}

func (_u *DLATokenUpdateOne) sqlSave(ctx context.Context) (_node *DLAToken, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dlatoken.Table, dlatoken.Columns, sqlgraph.NewFieldSpec(dlatoken.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DLAToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dlatoken.FieldID)
		for _, f := range fields {
			if !dlatoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dlatoken.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dlatoken.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SuggestedRate(); ok {
		_spec.SetField(dlatoken.FieldSuggestedRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSuggestedRate(); ok {
		_spec.AddField(dlatoken.FieldSuggestedRate, field.TypeFloat64, value)
	}
	if _u.mutation.SuggestedRateCleared() {
		_spec.ClearField(dlatoken.FieldSuggestedRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.FinalRate(); ok {
		_spec.SetField(dlatoken.FieldFinalRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalRate(); ok {
		_spec.AddField(dlatoken.FieldFinalRate, field.TypeFloat64, value)
	}
	if _u.mutation.FinalRateCleared() {
		_spec.ClearField(dlatoken.FieldFinalRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ConfirmedAt(); ok {
		_spec.SetField(dlatoken.FieldConfirmedAt, field.TypeTime, value)
	}
	if _u.mutation.ConfirmedAtCleared() {
		_spec.ClearField(dlatoken.FieldConfirmedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(dlatoken.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(dlatoken.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OutcomeNote(); ok {
		_spec.SetField(dlatoken.FieldOutcomeNote, field.TypeString, value)
	}
	if _u.mutation.OutcomeNoteCleared() {
		_spec.ClearField(dlatoken.FieldOutcomeNote, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dlatoken.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DLAToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dlatoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
