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
	"github.com/warehouse-exchange/wex/ent/buyerneed"
	"github.com/warehouse-exchange/wex/ent/dlatoken"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// DLATokenCreate is the builder for creating a DLAToken entity.
type DLATokenCreate struct {
	config
	mutation *DLATokenMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetToken sets the "token" field.
func (_c *DLATokenCreate) SetToken(v string) *DLATokenCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetWarehouseID sets the "warehouse_id" field.
func (_c *DLATokenCreate) SetWarehouseID(v string) *DLATokenCreate {
	_c.mutation.SetWarehouseID(v)
	return _c
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_c *DLATokenCreate) SetBuyerNeedID(v string) *DLATokenCreate {
	_c.mutation.SetBuyerNeedID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DLATokenCreate) SetStatus(v dlatoken.Status) *DLATokenCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DLATokenCreate) SetNillableStatus(v *dlatoken.Status) *DLATokenCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSuggestedRate sets the "suggested_rate" field.
func (_c *DLATokenCreate) SetSuggestedRate(v float64) *DLATokenCreate {
	_c.mutation.SetSuggestedRate(v)
	return _c
}

// SetNillableSuggestedRate sets the "suggested_rate" field if the given value is not nil.
func (_c *DLATokenCreate) SetNillableSuggestedRate(v *float64) *DLATokenCreate {
	if v != nil {
		_c.SetSuggestedRate(*v)
	}
	return _c
}

// SetFinalRate sets the "final_rate" field.
func (_c *DLATokenCreate) SetFinalRate(v float64) *DLATokenCreate {
	_c.mutation.SetFinalRate(v)
	return _c
}

// SetNillableFinalRate sets the "final_rate" field if the given value is not nil.
func (_c *DLATokenCreate) SetNillableFinalRate(v *float64) *DLATokenCreate {
	if v != nil {
		_c.SetFinalRate(*v)
	}
	return _c
}

// SetProposedSqft sets the "proposed_sqft" field.
func (_c *DLATokenCreate) SetProposedSqft(v int) *DLATokenCreate {
	_c.mutation.SetProposedSqft(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *DLATokenCreate) SetExpiresAt(v time.Time) *DLATokenCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetConfirmedAt sets the "confirmed_at" field.
func (_c *DLATokenCreate) SetConfirmedAt(v time.Time) *DLATokenCreate {
	_c.mutation.SetConfirmedAt(v)
	return _c
}

// SetNillableConfirmedAt sets the "confirmed_at" field if the given value is not nil.
func (_c *DLATokenCreate) SetNillableConfirmedAt(v *time.Time) *DLATokenCreate {
	if v != nil {
		_c.SetConfirmedAt(*v)
	}
	return _c
}

// SetRespondedAt sets the "responded_at" field.
func (_c *DLATokenCreate) SetRespondedAt(v time.Time) *DLATokenCreate {
	_c.mutation.SetRespondedAt(v)
	return _c
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_c *DLATokenCreate) SetNillableRespondedAt(v *time.Time) *DLATokenCreate {
	if v != nil {
		_c.SetRespondedAt(*v)
	}
	return _c
}

// SetOutcomeNote sets the "outcome_note" field.
func (_c *DLATokenCreate) SetOutcomeNote(v string) *DLATokenCreate {
	_c.mutation.SetOutcomeNote(v)
	return _c
}

// SetNillableOutcomeNote sets the "outcome_note" field if the given value is not nil.
func (_c *DLATokenCreate) SetNillableOutcomeNote(v *string) *DLATokenCreate {
	if v != nil {
		_c.SetOutcomeNote(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DLATokenCreate) SetCreatedAt(v time.Time) *DLATokenCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DLATokenCreate) SetNillableCreatedAt(v *time.Time) *DLATokenCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DLATokenCreate) SetUpdatedAt(v time.Time) *DLATokenCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DLATokenCreate) SetNillableUpdatedAt(v *time.Time) *DLATokenCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DLATokenCreate) SetID(v string) *DLATokenCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_c *DLATokenCreate) SetWarehouse(v *Warehouse) *DLATokenCreate {
	return _c.SetWarehouseID(v.ID)
}

// SetBuyerNeed sets the "buyer_need" edge to the BuyerNeed entity.
func (_c *DLATokenCreate) SetBuyerNeed(v *BuyerNeed) *DLATokenCreate {
	return _c.SetBuyerNeedID(v.ID)
}

// Mutation returns the DLATokenMutation object of the builder.
func (_c *DLATokenCreate) Mutation() *DLATokenMutation {
	return _c.mutation
}

// Save creates the DLAToken in the database.
func (_c *DLATokenCreate) Save(ctx context.Context) (*DLAToken, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DLATokenCreate) SaveX(ctx context.Context) *DLAToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DLATokenCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DLATokenCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DLATokenCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := dlatoken.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dlatoken.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dlatoken.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DLATokenCreate) check() error {
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "DLAToken.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := dlatoken.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "DLAToken.token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WarehouseID(); !ok {
		return &ValidationError{Name: "warehouse_id", err: errors.New(`ent: missing required field "DLAToken.warehouse_id"`)}
	}
	if _, ok := _c.mutation.BuyerNeedID(); !ok {
		return &ValidationError{Name: "buyer_need_id", err: errors.New(`ent: missing required field "DLAToken.buyer_need_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DLAToken.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := dlatoken.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DLAToken.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProposedSqft(); !ok {
		return &ValidationError{Name: "proposed_sqft", err: errors.New(`ent: missing required field "DLAToken.proposed_sqft"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "DLAToken.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DLAToken.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DLAToken.updated_at"`)}
	}
	if len(_c.mutation.WarehouseIDs()) == 0 {
		return &ValidationError{Name: "warehouse", err: errors.New(`ent: missing required edge "DLAToken.warehouse"`)}
	}
	if len(_c.mutation.BuyerNeedIDs()) == 0 {
		return &ValidationError{Name: "buyer_need", err: errors.New(`ent: missing required edge "DLAToken.buyer_need"`)}
	}
	return nil
}

func (_c *DLATokenCreate) sqlSave(ctx context.Context) (*DLAToken, error) {
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
			return nil, fmt.Errorf("unexpected DLAToken.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DLATokenCreate) createSpec() (*DLAToken, *sqlgraph.CreateSpec) {
	var (
		_node = &DLAToken{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dlatoken.Table, sqlgraph.NewFieldSpec(dlatoken.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(dlatoken.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(dlatoken.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SuggestedRate(); ok {
		_spec.SetField(dlatoken.FieldSuggestedRate, field.TypeFloat64, value)
		_node.SuggestedRate = &value
	}
	if value, ok := _c.mutation.FinalRate(); ok {
		_spec.SetField(dlatoken.FieldFinalRate, field.TypeFloat64, value)
		_node.FinalRate = &value
	}
	if value, ok := _c.mutation.ProposedSqft(); ok {
		_spec.SetField(dlatoken.FieldProposedSqft, field.TypeInt, value)
		_node.ProposedSqft = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(dlatoken.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.ConfirmedAt(); ok {
		_spec.SetField(dlatoken.FieldConfirmedAt, field.TypeTime, value)
		_node.ConfirmedAt = &value
	}
	if value, ok := _c.mutation.RespondedAt(); ok {
		_spec.SetField(dlatoken.FieldRespondedAt, field.TypeTime, value)
		_node.RespondedAt = &value
	}
	if value, ok := _c.mutation.OutcomeNote(); ok {
		_spec.SetField(dlatoken.FieldOutcomeNote, field.TypeString, value)
		_node.OutcomeNote = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dlatoken.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dlatoken.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WarehouseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dlatoken.WarehouseTable,
			Columns: []string{dlatoken.WarehouseColumn},
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
	if nodes := _c.mutation.BuyerNeedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dlatoken.BuyerNeedTable,
			Columns: []string{dlatoken.BuyerNeedColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(buyerneed.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BuyerNeedID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DLAToken.Create().
//		SetToken(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DLATokenUpsert) {
//			SetToken(v+v).
//		}).
//		Exec(ctx)
func (_c *DLATokenCreate) OnConflict(opts ...sql.ConflictOption) *DLATokenUpsertOne {
	_c.conflict = opts
	return &DLATokenUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DLAToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DLATokenCreate) OnConflictColumns(columns ...string) *DLATokenUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DLATokenUpsertOne{
		create: _c,
	}
}

type (
	// DLATokenUpsertOne is the builder for "upsert"-ing
	//  one DLAToken node.
	DLATokenUpsertOne struct {
		create *DLATokenCreate
	}

	// DLATokenUpsert is the "OnConflict" setter.
	DLATokenUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *DLATokenUpsert) SetStatus(v dlatoken.Status) *DLATokenUpsert {
	u.Set(dlatoken.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DLATokenUpsert) UpdateStatus() *DLATokenUpsert {
	u.SetExcluded(dlatoken.FieldStatus)
	return u
}

// SetSuggestedRate sets the "suggested_rate" field.
func (u *DLATokenUpsert) SetSuggestedRate(v float64) *DLATokenUpsert {
	u.Set(dlatoken.FieldSuggestedRate, v)
	return u
}

// UpdateSuggestedRate sets the "suggested_rate" field to the value that was provided on create.
func (u *DLATokenUpsert) UpdateSuggestedRate() *DLATokenUpsert {
	u.SetExcluded(dlatoken.FieldSuggestedRate)
	return u
}

// AddSuggestedRate adds v to the "suggested_rate" field.
func (u *DLATokenUpsert) AddSuggestedRate(v float64) *DLATokenUpsert {
	u.Add(dlatoken.FieldSuggestedRate, v)
	return u
}

// ClearSuggestedRate clears the value of the "suggested_rate" field.
func (u *DLATokenUpsert) ClearSuggestedRate() *DLATokenUpsert {
	u.SetNull(dlatoken.FieldSuggestedRate)
	return u
}

// SetFinalRate sets the "final_rate" field.
func (u *DLATokenUpsert) SetFinalRate(v float64) *DLATokenUpsert {
	u.Set(dlatoken.FieldFinalRate, v)
	return u
}

// UpdateFinalRate sets the "final_rate" field to the value that was provided on create.
func (u *DLATokenUpsert) UpdateFinalRate() *DLATokenUpsert {
	u.SetExcluded(dlatoken.FieldFinalRate)
	return u
}

// AddFinalRate adds v to the "final_rate" field.
func (u *DLATokenUpsert) AddFinalRate(v float64) *DLATokenUpsert {
	u.Add(dlatoken.FieldFinalRate, v)
	return u
}

// ClearFinalRate clears the value of the "final_rate" field.
func (u *DLATokenUpsert) ClearFinalRate() *DLATokenUpsert {
	u.SetNull(dlatoken.FieldFinalRate)
	return u
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *DLATokenUpsert) SetConfirmedAt(v time.Time) *DLATokenUpsert {
	u.Set(dlatoken.FieldConfirmedAt, v)
	return u
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *DLATokenUpsert) UpdateConfirmedAt() *DLATokenUpsert {
	u.SetExcluded(dlatoken.FieldConfirmedAt)
	return u
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *DLATokenUpsert) ClearConfirmedAt() *DLATokenUpsert {
	u.SetNull(dlatoken.FieldConfirmedAt)
	return u
}

// SetRespondedAt sets the "responded_at" field.
func (u *DLATokenUpsert) SetRespondedAt(v time.Time) *DLATokenUpsert {
	u.Set(dlatoken.FieldRespondedAt, v)
	return u
}

// UpdateRespondedAt sets the "responded_at" field to the value that was provided on create.
func (u *DLATokenUpsert) UpdateRespondedAt() *DLATokenUpsert {
	u.SetExcluded(dlatoken.FieldRespondedAt)
	return u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (u *DLATokenUpsert) ClearRespondedAt() *DLATokenUpsert {
	u.SetNull(dlatoken.FieldRespondedAt)
	return u
}

// SetOutcomeNote sets the "outcome_note" field.
func (u *DLATokenUpsert) SetOutcomeNote(v string) *DLATokenUpsert {
	u.Set(dlatoken.FieldOutcomeNote, v)
	return u
}

// UpdateOutcomeNote sets the "outcome_note" field to the value that was provided on create.
func (u *DLATokenUpsert) UpdateOutcomeNote() *DLATokenUpsert {
	u.SetExcluded(dlatoken.FieldOutcomeNote)
	return u
}

// ClearOutcomeNote clears the value of the "outcome_note" field.
func (u *DLATokenUpsert) ClearOutcomeNote() *DLATokenUpsert {
	u.SetNull(dlatoken.FieldOutcomeNote)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DLATokenUpsert) SetUpdatedAt(v time.Time) *DLATokenUpsert {
	u.Set(dlatoken.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DLATokenUpsert) UpdateUpdatedAt() *DLATokenUpsert {
	u.SetExcluded(dlatoken.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DLAToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dlatoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DLATokenUpsertOne) UpdateNewValues() *DLATokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dlatoken.FieldID)
		}
		if _, exists := u.create.mutation.Token(); exists {
			s.SetIgnore(dlatoken.FieldToken)
		}
		if _, exists := u.create.mutation.WarehouseID(); exists {
			s.SetIgnore(dlatoken.FieldWarehouseID)
		}
		if _, exists := u.create.mutation.BuyerNeedID(); exists {
			s.SetIgnore(dlatoken.FieldBuyerNeedID)
		}
		if _, exists := u.create.mutation.ProposedSqft(); exists {
			s.SetIgnore(dlatoken.FieldProposedSqft)
		}
		if _, exists := u.create.mutation.ExpiresAt(); exists {
			s.SetIgnore(dlatoken.FieldExpiresAt)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(dlatoken.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DLAToken.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DLATokenUpsertOne) Ignore() *DLATokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DLATokenUpsertOne) DoNothing() *DLATokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DLATokenCreate.OnConflict
// documentation for more info.
func (u *DLATokenUpsertOne) Update(set func(*DLATokenUpsert)) *DLATokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DLATokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *DLATokenUpsertOne) SetStatus(v dlatoken.Status) *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DLATokenUpsertOne) UpdateStatus() *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateStatus()
	})
}

// SetSuggestedRate sets the "suggested_rate" field.
func (u *DLATokenUpsertOne) SetSuggestedRate(v float64) *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetSuggestedRate(v)
	})
}

// AddSuggestedRate adds v to the "suggested_rate" field.
func (u *DLATokenUpsertOne) AddSuggestedRate(v float64) *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.AddSuggestedRate(v)
	})
}

// UpdateSuggestedRate sets the "suggested_rate" field to the value that was provided on create.
func (u *DLATokenUpsertOne) UpdateSuggestedRate() *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateSuggestedRate()
	})
}

// ClearSuggestedRate clears the value of the "suggested_rate" field.
func (u *DLATokenUpsertOne) ClearSuggestedRate() *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.ClearSuggestedRate()
	})
}

// SetFinalRate sets the "final_rate" field.
func (u *DLATokenUpsertOne) SetFinalRate(v float64) *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetFinalRate(v)
	})
}

// AddFinalRate adds v to the "final_rate" field.
func (u *DLATokenUpsertOne) AddFinalRate(v float64) *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.AddFinalRate(v)
	})
}

// UpdateFinalRate sets the "final_rate" field to the value that was provided on create.
func (u *DLATokenUpsertOne) UpdateFinalRate() *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateFinalRate()
	})
}

// ClearFinalRate clears the value of the "final_rate" field.
func (u *DLATokenUpsertOne) ClearFinalRate() *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.ClearFinalRate()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *DLATokenUpsertOne) SetConfirmedAt(v time.Time) *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *DLATokenUpsertOne) UpdateConfirmedAt() *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *DLATokenUpsertOne) ClearConfirmedAt() *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.ClearConfirmedAt()
	})
}

// SetRespondedAt sets the "responded_at" field.
func (u *DLATokenUpsertOne) SetRespondedAt(v time.Time) *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetRespondedAt(v)
	})
}

// UpdateRespondedAt sets the "responded_at" field to the value that was provided on create.
func (u *DLATokenUpsertOne) UpdateRespondedAt() *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateRespondedAt()
	})
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (u *DLATokenUpsertOne) ClearRespondedAt() *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.ClearRespondedAt()
	})
}

// SetOutcomeNote sets the "outcome_note" field.
func (u *DLATokenUpsertOne) SetOutcomeNote(v string) *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetOutcomeNote(v)
	})
}

// UpdateOutcomeNote sets the "outcome_note" field to the value that was provided on create.
func (u *DLATokenUpsertOne) UpdateOutcomeNote() *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateOutcomeNote()
	})
}

// ClearOutcomeNote clears the value of the "outcome_note" field.
func (u *DLATokenUpsertOne) ClearOutcomeNote() *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.ClearOutcomeNote()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DLATokenUpsertOne) SetUpdatedAt(v time.Time) *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DLATokenUpsertOne) UpdateUpdatedAt() *DLATokenUpsertOne {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DLATokenUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DLATokenCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DLATokenUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DLATokenUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DLATokenUpsertOne.ID is not supported by MySQL driver. Use DLATokenUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DLATokenUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DLATokenCreateBulk is the builder for creating many DLAToken entities in bulk.
type DLATokenCreateBulk struct {
	config
	err      error
	builders []*DLATokenCreate
	conflict []sql.ConflictOption
}

// Save creates the DLAToken entities in the database.
func (_c *DLATokenCreateBulk) Save(ctx context.Context) ([]*DLAToken, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DLAToken, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DLATokenMutation)
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
func (_c *DLATokenCreateBulk) SaveX(ctx context.Context) []*DLAToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DLATokenCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DLATokenCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DLAToken.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DLATokenUpsert) {
//			SetToken(v+v).
//		}).
//		Exec(ctx)
func (_c *DLATokenCreateBulk) OnConflict(opts ...sql.ConflictOption) *DLATokenUpsertBulk {
	_c.conflict = opts
	return &DLATokenUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DLAToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DLATokenCreateBulk) OnConflictColumns(columns ...string) *DLATokenUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DLATokenUpsertBulk{
		create: _c,
	}
}

// DLATokenUpsertBulk is the builder for "upsert"-ing
// a bulk of DLAToken nodes.
type DLATokenUpsertBulk struct {
	create *DLATokenCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DLAToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dlatoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DLATokenUpsertBulk) UpdateNewValues() *DLATokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dlatoken.FieldID)
			}
			if _, exists := b.mutation.Token(); exists {
				s.SetIgnore(dlatoken.FieldToken)
			}
			if _, exists := b.mutation.WarehouseID(); exists {
				s.SetIgnore(dlatoken.FieldWarehouseID)
			}
			if _, exists := b.mutation.BuyerNeedID(); exists {
				s.SetIgnore(dlatoken.FieldBuyerNeedID)
			}
			if _, exists := b.mutation.ProposedSqft(); exists {
				s.SetIgnore(dlatoken.FieldProposedSqft)
			}
			if _, exists := b.mutation.ExpiresAt(); exists {
				s.SetIgnore(dlatoken.FieldExpiresAt)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(dlatoken.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DLAToken.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DLATokenUpsertBulk) Ignore() *DLATokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DLATokenUpsertBulk) DoNothing() *DLATokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DLATokenCreateBulk.OnConflict
// documentation for more info.
func (u *DLATokenUpsertBulk) Update(set func(*DLATokenUpsert)) *DLATokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DLATokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *DLATokenUpsertBulk) SetStatus(v dlatoken.Status) *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DLATokenUpsertBulk) UpdateStatus() *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateStatus()
	})
}

// SetSuggestedRate sets the "suggested_rate" field.
func (u *DLATokenUpsertBulk) SetSuggestedRate(v float64) *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetSuggestedRate(v)
	})
}

// AddSuggestedRate adds v to the "suggested_rate" field.
func (u *DLATokenUpsertBulk) AddSuggestedRate(v float64) *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.AddSuggestedRate(v)
	})
}

// UpdateSuggestedRate sets the "suggested_rate" field to the value that was provided on create.
func (u *DLATokenUpsertBulk) UpdateSuggestedRate() *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateSuggestedRate()
	})
}

// ClearSuggestedRate clears the value of the "suggested_rate" field.
func (u *DLATokenUpsertBulk) ClearSuggestedRate() *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.ClearSuggestedRate()
	})
}

// SetFinalRate sets the "final_rate" field.
func (u *DLATokenUpsertBulk) SetFinalRate(v float64) *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetFinalRate(v)
	})
}

// AddFinalRate adds v to the "final_rate" field.
func (u *DLATokenUpsertBulk) AddFinalRate(v float64) *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.AddFinalRate(v)
	})
}

// UpdateFinalRate sets the "final_rate" field to the value that was provided on create.
func (u *DLATokenUpsertBulk) UpdateFinalRate() *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateFinalRate()
	})
}

// ClearFinalRate clears the value of the "final_rate" field.
func (u *DLATokenUpsertBulk) ClearFinalRate() *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.ClearFinalRate()
	})
}

// SetConfirmedAt sets the "confirmed_at" field.
func (u *DLATokenUpsertBulk) SetConfirmedAt(v time.Time) *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetConfirmedAt(v)
	})
}

// UpdateConfirmedAt sets the "confirmed_at" field to the value that was provided on create.
func (u *DLATokenUpsertBulk) UpdateConfirmedAt() *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateConfirmedAt()
	})
}

// ClearConfirmedAt clears the value of the "confirmed_at" field.
func (u *DLATokenUpsertBulk) ClearConfirmedAt() *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.ClearConfirmedAt()
	})
}

// SetRespondedAt sets the "responded_at" field.
func (u *DLATokenUpsertBulk) SetRespondedAt(v time.Time) *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetRespondedAt(v)
	})
}

// UpdateRespondedAt sets the "responded_at" field to the value that was provided on create.
func (u *DLATokenUpsertBulk) UpdateRespondedAt() *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateRespondedAt()
	})
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (u *DLATokenUpsertBulk) ClearRespondedAt() *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.ClearRespondedAt()
	})
}

// SetOutcomeNote sets the "outcome_note" field.
func (u *DLATokenUpsertBulk) SetOutcomeNote(v string) *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetOutcomeNote(v)
	})
}

// UpdateOutcomeNote sets the "outcome_note" field to the value that was provided on create.
func (u *DLATokenUpsertBulk) UpdateOutcomeNote() *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateOutcomeNote()
	})
}

// ClearOutcomeNote clears the value of the "outcome_note" field.
func (u *DLATokenUpsertBulk) ClearOutcomeNote() *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.ClearOutcomeNote()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DLATokenUpsertBulk) SetUpdatedAt(v time.Time) *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DLATokenUpsertBulk) UpdateUpdatedAt() *DLATokenUpsertBulk {
	return u.Update(func(s *DLATokenUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DLATokenUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DLATokenCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DLATokenCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DLATokenUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
