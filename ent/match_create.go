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
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/instantbookscore"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// MatchCreate is the builder for creating a Match entity.
type MatchCreate struct {
	config
	mutation *MatchMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_c *MatchCreate) SetBuyerNeedID(v string) *MatchCreate {
	_c.mutation.SetBuyerNeedID(v)
	return _c
}

// SetWarehouseID sets the "warehouse_id" field.
func (_c *MatchCreate) SetWarehouseID(v string) *MatchCreate {
	_c.mutation.SetWarehouseID(v)
	return _c
}

// SetCompositeScore sets the "composite_score" field.
func (_c *MatchCreate) SetCompositeScore(v float64) *MatchCreate {
	_c.mutation.SetCompositeScore(v)
	return _c
}

// SetLocationScore sets the "location_score" field.
func (_c *MatchCreate) SetLocationScore(v float64) *MatchCreate {
	_c.mutation.SetLocationScore(v)
	return _c
}

// SetSizeScore sets the "size_score" field.
func (_c *MatchCreate) SetSizeScore(v float64) *MatchCreate {
	_c.mutation.SetSizeScore(v)
	return _c
}

// SetUseTypeScore sets the "use_type_score" field.
func (_c *MatchCreate) SetUseTypeScore(v float64) *MatchCreate {
	_c.mutation.SetUseTypeScore(v)
	return _c
}

// SetFeatureScore sets the "feature_score" field.
func (_c *MatchCreate) SetFeatureScore(v float64) *MatchCreate {
	_c.mutation.SetFeatureScore(v)
	return _c
}

// SetTimingScore sets the "timing_score" field.
func (_c *MatchCreate) SetTimingScore(v float64) *MatchCreate {
	_c.mutation.SetTimingScore(v)
	return _c
}

// SetBudgetScore sets the "budget_score" field.
func (_c *MatchCreate) SetBudgetScore(v float64) *MatchCreate {
	_c.mutation.SetBudgetScore(v)
	return _c
}

// SetDistanceMiles sets the "distance_miles" field.
func (_c *MatchCreate) SetDistanceMiles(v float64) *MatchCreate {
	_c.mutation.SetDistanceMiles(v)
	return _c
}

// SetNillableDistanceMiles sets the "distance_miles" field if the given value is not nil.
func (_c *MatchCreate) SetNillableDistanceMiles(v *float64) *MatchCreate {
	if v != nil {
		_c.SetDistanceMiles(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *MatchCreate) SetReasoning(v string) *MatchCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *MatchCreate) SetNillableReasoning(v *string) *MatchCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetCallouts sets the "callouts" field.
func (_c *MatchCreate) SetCallouts(v []string) *MatchCreate {
	_c.mutation.SetCallouts(v)
	return _c
}

// SetInstantBookEligible sets the "instant_book_eligible" field.
func (_c *MatchCreate) SetInstantBookEligible(v bool) *MatchCreate {
	_c.mutation.SetInstantBookEligible(v)
	return _c
}

// SetNillableInstantBookEligible sets the "instant_book_eligible" field if the given value is not nil.
func (_c *MatchCreate) SetNillableInstantBookEligible(v *bool) *MatchCreate {
	if v != nil {
		_c.SetInstantBookEligible(*v)
	}
	return _c
}

// SetWithinBudget sets the "within_budget" field.
func (_c *MatchCreate) SetWithinBudget(v bool) *MatchCreate {
	_c.mutation.SetWithinBudget(v)
	return _c
}

// SetNillableWithinBudget sets the "within_budget" field if the given value is not nil.
func (_c *MatchCreate) SetNillableWithinBudget(v *bool) *MatchCreate {
	if v != nil {
		_c.SetWithinBudget(*v)
	}
	return _c
}

// SetBuyerRate sets the "buyer_rate" field.
func (_c *MatchCreate) SetBuyerRate(v float64) *MatchCreate {
	_c.mutation.SetBuyerRate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *MatchCreate) SetStatus(v match.Status) *MatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *MatchCreate) SetNillableStatus(v *match.Status) *MatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MatchCreate) SetCreatedAt(v time.Time) *MatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MatchCreate) SetNillableCreatedAt(v *time.Time) *MatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MatchCreate) SetUpdatedAt(v time.Time) *MatchCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MatchCreate) SetNillableUpdatedAt(v *time.Time) *MatchCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MatchCreate) SetID(v string) *MatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetBuyerNeed sets the "buyer_need" edge to the BuyerNeed entity.
func (_c *MatchCreate) SetBuyerNeed(v *BuyerNeed) *MatchCreate {
	return _c.SetBuyerNeedID(v.ID)
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_c *MatchCreate) SetWarehouse(v *Warehouse) *MatchCreate {
	return _c.SetWarehouseID(v.ID)
}

// SetInstantBookScoreID sets the "instant_book_score" edge to the InstantBookScore entity by ID.
func (_c *MatchCreate) SetInstantBookScoreID(id string) *MatchCreate {
	_c.mutation.SetInstantBookScoreID(id)
	return _c
}

// SetNillableInstantBookScoreID sets the "instant_book_score" edge to the InstantBookScore entity by ID if the given value is not nil.
func (_c *MatchCreate) SetNillableInstantBookScoreID(id *string) *MatchCreate {
	if id != nil {
		_c = _c.SetInstantBookScoreID(*id)
	}
	return _c
}

// SetInstantBookScore sets the "instant_book_score" edge to the InstantBookScore entity.
func (_c *MatchCreate) SetInstantBookScore(v *InstantBookScore) *MatchCreate {
	return _c.SetInstantBookScoreID(v.ID)
}

// SetEngagementID sets the "engagement" edge to the Engagement entity by ID.
func (_c *MatchCreate) SetEngagementID(id string) *MatchCreate {
	_c.mutation.SetEngagementID(id)
	return _c
}

// SetNillableEngagementID sets the "engagement" edge to the Engagement entity by ID if the given value is not nil.
func (_c *MatchCreate) SetNillableEngagementID(id *string) *MatchCreate {
	if id != nil {
		_c = _c.SetEngagementID(*id)
	}
	return _c
}

// SetEngagement sets the "engagement" edge to the Engagement entity.
func (_c *MatchCreate) SetEngagement(v *Engagement) *MatchCreate {
	return _c.SetEngagementID(v.ID)
}

// Mutation returns the MatchMutation object of the builder.
func (_c *MatchCreate) Mutation() *MatchMutation {
	return _c.mutation
}

// Save creates the Match in the database.
func (_c *MatchCreate) Save(ctx context.Context) (*Match, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatchCreate) SaveX(ctx context.Context) *Match {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatchCreate) defaults() {
	if _, ok := _c.mutation.InstantBookEligible(); !ok {
		v := match.DefaultInstantBookEligible
		_c.mutation.SetInstantBookEligible(v)
	}
	if _, ok := _c.mutation.WithinBudget(); !ok {
		v := match.DefaultWithinBudget
		_c.mutation.SetWithinBudget(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := match.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := match.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := match.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatchCreate) check() error {
	if _, ok := _c.mutation.BuyerNeedID(); !ok {
		return &ValidationError{Name: "buyer_need_id", err: errors.New(`ent: missing required field "Match.buyer_need_id"`)}
	}
	if _, ok := _c.mutation.WarehouseID(); !ok {
		return &ValidationError{Name: "warehouse_id", err: errors.New(`ent: missing required field "Match.warehouse_id"`)}
	}
	if _, ok := _c.mutation.CompositeScore(); !ok {
		return &ValidationError{Name: "composite_score", err: errors.New(`ent: missing required field "Match.composite_score"`)}
	}
	if _, ok := _c.mutation.LocationScore(); !ok {
		return &ValidationError{Name: "location_score", err: errors.New(`ent: missing required field "Match.location_score"`)}
	}
	if _, ok := _c.mutation.SizeScore(); !ok {
		return &ValidationError{Name: "size_score", err: errors.New(`ent: missing required field "Match.size_score"`)}
	}
	if _, ok := _c.mutation.UseTypeScore(); !ok {
		return &ValidationError{Name: "use_type_score", err: errors.New(`ent: missing required field "Match.use_type_score"`)}
	}
	if _, ok := _c.mutation.FeatureScore(); !ok {
		return &ValidationError{Name: "feature_score", err: errors.New(`ent: missing required field "Match.feature_score"`)}
	}
	if _, ok := _c.mutation.TimingScore(); !ok {
		return &ValidationError{Name: "timing_score", err: errors.New(`ent: missing required field "Match.timing_score"`)}
	}
	if _, ok := _c.mutation.BudgetScore(); !ok {
		return &ValidationError{Name: "budget_score", err: errors.New(`ent: missing required field "Match.budget_score"`)}
	}
	if _, ok := _c.mutation.InstantBookEligible(); !ok {
		return &ValidationError{Name: "instant_book_eligible", err: errors.New(`ent: missing required field "Match.instant_book_eligible"`)}
	}
	if _, ok := _c.mutation.WithinBudget(); !ok {
		return &ValidationError{Name: "within_budget", err: errors.New(`ent: missing required field "Match.within_budget"`)}
	}
	if _, ok := _c.mutation.BuyerRate(); !ok {
		return &ValidationError{Name: "buyer_rate", err: errors.New(`ent: missing required field "Match.buyer_rate"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Match.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := match.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Match.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Match.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Match.updated_at"`)}
	}
	if len(_c.mutation.BuyerNeedIDs()) == 0 {
		return &ValidationError{Name: "buyer_need", err: errors.New(`ent: missing required edge "Match.buyer_need"`)}
	}
	if len(_c.mutation.WarehouseIDs()) == 0 {
		return &ValidationError{Name: "warehouse", err: errors.New(`ent: missing required edge "Match.warehouse"`)}
	}
	return nil
}

func (_c *MatchCreate) sqlSave(ctx context.Context) (*Match, error) {
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
			return nil, fmt.Errorf("unexpected Match.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MatchCreate) createSpec() (*Match, *sqlgraph.CreateSpec) {
	var (
		_node = &Match{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(match.Table, sqlgraph.NewFieldSpec(match.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CompositeScore(); ok {
		_spec.SetField(match.FieldCompositeScore, field.TypeFloat64, value)
		_node.CompositeScore = value
	}
	if value, ok := _c.mutation.LocationScore(); ok {
		_spec.SetField(match.FieldLocationScore, field.TypeFloat64, value)
		_node.LocationScore = value
	}
	if value, ok := _c.mutation.SizeScore(); ok {
		_spec.SetField(match.FieldSizeScore, field.TypeFloat64, value)
		_node.SizeScore = value
	}
	if value, ok := _c.mutation.UseTypeScore(); ok {
		_spec.SetField(match.FieldUseTypeScore, field.TypeFloat64, value)
		_node.UseTypeScore = value
	}
	if value, ok := _c.mutation.FeatureScore(); ok {
		_spec.SetField(match.FieldFeatureScore, field.TypeFloat64, value)
		_node.FeatureScore = value
	}
	if value, ok := _c.mutation.TimingScore(); ok {
		_spec.SetField(match.FieldTimingScore, field.TypeFloat64, value)
		_node.TimingScore = value
	}
	if value, ok := _c.mutation.BudgetScore(); ok {
		_spec.SetField(match.FieldBudgetScore, field.TypeFloat64, value)
		_node.BudgetScore = value
	}
	if value, ok := _c.mutation.DistanceMiles(); ok {
		_spec.SetField(match.FieldDistanceMiles, field.TypeFloat64, value)
		_node.DistanceMiles = &value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(match.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Callouts(); ok {
		_spec.SetField(match.FieldCallouts, field.TypeJSON, value)
		_node.Callouts = value
	}
	if value, ok := _c.mutation.InstantBookEligible(); ok {
		_spec.SetField(match.FieldInstantBookEligible, field.TypeBool, value)
		_node.InstantBookEligible = value
	}
	if value, ok := _c.mutation.WithinBudget(); ok {
		_spec.SetField(match.FieldWithinBudget, field.TypeBool, value)
		_node.WithinBudget = value
	}
	if value, ok := _c.mutation.BuyerRate(); ok {
		_spec.SetField(match.FieldBuyerRate, field.TypeFloat64, value)
		_node.BuyerRate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(match.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(match.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(match.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BuyerNeedIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.BuyerNeedTable,
			Columns: []string{match.BuyerNeedColumn},
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
	if nodes := _c.mutation.WarehouseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   match.WarehouseTable,
			Columns: []string{match.WarehouseColumn},
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
	if nodes := _c.mutation.InstantBookScoreIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   match.InstantBookScoreTable,
			Columns: []string{match.InstantBookScoreColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(instantbookscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EngagementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   match.EngagementTable,
			Columns: []string{match.EngagementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeString),
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
//	client.Match.Create().
//		SetBuyerNeedID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MatchUpsert) {
//			SetBuyerNeedID(v+v).
//		}).
//		Exec(ctx)
func (_c *MatchCreate) OnConflict(opts ...sql.ConflictOption) *MatchUpsertOne {
	_c.conflict = opts
	return &MatchUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Match.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MatchCreate) OnConflictColumns(columns ...string) *MatchUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MatchUpsertOne{
		create: _c,
	}
}

type (
	// MatchUpsertOne is the builder for "upsert"-ing
	//  one Match node.
	MatchUpsertOne struct {
		create *MatchCreate
	}

	// MatchUpsert is the "OnConflict" setter.
	MatchUpsert struct {
		*sql.UpdateSet
	}
)

// SetBuyerNeedID sets the "buyer_need_id" field.
func (u *MatchUpsert) SetBuyerNeedID(v string) *MatchUpsert {
	u.Set(match.FieldBuyerNeedID, v)
	return u
}

// UpdateBuyerNeedID sets the "buyer_need_id" field to the value that was provided on create.
func (u *MatchUpsert) UpdateBuyerNeedID() *MatchUpsert {
	u.SetExcluded(match.FieldBuyerNeedID)
	return u
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *MatchUpsert) SetWarehouseID(v string) *MatchUpsert {
	u.Set(match.FieldWarehouseID, v)
	return u
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *MatchUpsert) UpdateWarehouseID() *MatchUpsert {
	u.SetExcluded(match.FieldWarehouseID)
	return u
}

// SetCompositeScore sets the "composite_score" field.
func (u *MatchUpsert) SetCompositeScore(v float64) *MatchUpsert {
	u.Set(match.FieldCompositeScore, v)
	return u
}

// UpdateCompositeScore sets the "composite_score" field to the value that was provided on create.
func (u *MatchUpsert) UpdateCompositeScore() *MatchUpsert {
	u.SetExcluded(match.FieldCompositeScore)
	return u
}

// AddCompositeScore adds v to the "composite_score" field.
func (u *MatchUpsert) AddCompositeScore(v float64) *MatchUpsert {
	u.Add(match.FieldCompositeScore, v)
	return u
}

// SetLocationScore sets the "location_score" field.
func (u *MatchUpsert) SetLocationScore(v float64) *MatchUpsert {
	u.Set(match.FieldLocationScore, v)
	return u
}

// UpdateLocationScore sets the "location_score" field to the value that was provided on create.
func (u *MatchUpsert) UpdateLocationScore() *MatchUpsert {
	u.SetExcluded(match.FieldLocationScore)
	return u
}

// AddLocationScore adds v to the "location_score" field.
func (u *MatchUpsert) AddLocationScore(v float64) *MatchUpsert {
	u.Add(match.FieldLocationScore, v)
	return u
}

// SetSizeScore sets the "size_score" field.
func (u *MatchUpsert) SetSizeScore(v float64) *MatchUpsert {
	u.Set(match.FieldSizeScore, v)
	return u
}

// UpdateSizeScore sets the "size_score" field to the value that was provided on create.
func (u *MatchUpsert) UpdateSizeScore() *MatchUpsert {
	u.SetExcluded(match.FieldSizeScore)
	return u
}

// AddSizeScore adds v to the "size_score" field.
func (u *MatchUpsert) AddSizeScore(v float64) *MatchUpsert {
	u.Add(match.FieldSizeScore, v)
	return u
}

// SetUseTypeScore sets the "use_type_score" field.
func (u *MatchUpsert) SetUseTypeScore(v float64) *MatchUpsert {
	u.Set(match.FieldUseTypeScore, v)
	return u
}

// UpdateUseTypeScore sets the "use_type_score" field to the value that was provided on create.
func (u *MatchUpsert) UpdateUseTypeScore() *MatchUpsert {
	u.SetExcluded(match.FieldUseTypeScore)
	return u
}

// AddUseTypeScore adds v to the "use_type_score" field.
func (u *MatchUpsert) AddUseTypeScore(v float64) *MatchUpsert {
	u.Add(match.FieldUseTypeScore, v)
	return u
}

// SetFeatureScore sets the "feature_score" field.
func (u *MatchUpsert) SetFeatureScore(v float64) *MatchUpsert {
	u.Set(match.FieldFeatureScore, v)
	return u
}

// UpdateFeatureScore sets the "feature_score" field to the value that was provided on create.
func (u *MatchUpsert) UpdateFeatureScore() *MatchUpsert {
	u.SetExcluded(match.FieldFeatureScore)
	return u
}

// AddFeatureScore adds v to the "feature_score" field.
func (u *MatchUpsert) AddFeatureScore(v float64) *MatchUpsert {
	u.Add(match.FieldFeatureScore, v)
	return u
}

// SetTimingScore sets the "timing_score" field.
func (u *MatchUpsert) SetTimingScore(v float64) *MatchUpsert {
	u.Set(match.FieldTimingScore, v)
	return u
}

// UpdateTimingScore sets the "timing_score" field to the value that was provided on create.
func (u *MatchUpsert) UpdateTimingScore() *MatchUpsert {
	u.SetExcluded(match.FieldTimingScore)
	return u
}

// AddTimingScore adds v to the "timing_score" field.
func (u *MatchUpsert) AddTimingScore(v float64) *MatchUpsert {
	u.Add(match.FieldTimingScore, v)
	return u
}

// SetBudgetScore sets the "budget_score" field.
func (u *MatchUpsert) SetBudgetScore(v float64) *MatchUpsert {
	u.Set(match.FieldBudgetScore, v)
	return u
}

// UpdateBudgetScore sets the "budget_score" field to the value that was provided on create.
func (u *MatchUpsert) UpdateBudgetScore() *MatchUpsert {
	u.SetExcluded(match.FieldBudgetScore)
	return u
}

// AddBudgetScore adds v to the "budget_score" field.
func (u *MatchUpsert) AddBudgetScore(v float64) *MatchUpsert {
	u.Add(match.FieldBudgetScore, v)
	return u
}

// SetDistanceMiles sets the "distance_miles" field.
func (u *MatchUpsert) SetDistanceMiles(v float64) *MatchUpsert {
	u.Set(match.FieldDistanceMiles, v)
	return u
}

// UpdateDistanceMiles sets the "distance_miles" field to the value that was provided on create.
func (u *MatchUpsert) UpdateDistanceMiles() *MatchUpsert {
	u.SetExcluded(match.FieldDistanceMiles)
	return u
}

// AddDistanceMiles adds v to the "distance_miles" field.
func (u *MatchUpsert) AddDistanceMiles(v float64) *MatchUpsert {
	u.Add(match.FieldDistanceMiles, v)
	return u
}

// ClearDistanceMiles clears the value of the "distance_miles" field.
func (u *MatchUpsert) ClearDistanceMiles() *MatchUpsert {
	u.SetNull(match.FieldDistanceMiles)
	return u
}

// SetReasoning sets the "reasoning" field.
func (u *MatchUpsert) SetReasoning(v string) *MatchUpsert {
	u.Set(match.FieldReasoning, v)
	return u
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *MatchUpsert) UpdateReasoning() *MatchUpsert {
	u.SetExcluded(match.FieldReasoning)
	return u
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *MatchUpsert) ClearReasoning() *MatchUpsert {
	u.SetNull(match.FieldReasoning)
	return u
}

// SetCallouts sets the "callouts" field.
func (u *MatchUpsert) SetCallouts(v []string) *MatchUpsert {
	u.Set(match.FieldCallouts, v)
	return u
}

// UpdateCallouts sets the "callouts" field to the value that was provided on create.
func (u *MatchUpsert) UpdateCallouts() *MatchUpsert {
	u.SetExcluded(match.FieldCallouts)
	return u
}

// ClearCallouts clears the value of the "callouts" field.
func (u *MatchUpsert) ClearCallouts() *MatchUpsert {
	u.SetNull(match.FieldCallouts)
	return u
}

// SetInstantBookEligible sets the "instant_book_eligible" field.
func (u *MatchUpsert) SetInstantBookEligible(v bool) *MatchUpsert {
	u.Set(match.FieldInstantBookEligible, v)
	return u
}

// UpdateInstantBookEligible sets the "instant_book_eligible" field to the value that was provided on create.
func (u *MatchUpsert) UpdateInstantBookEligible() *MatchUpsert {
	u.SetExcluded(match.FieldInstantBookEligible)
	return u
}

// SetWithinBudget sets the "within_budget" field.
func (u *MatchUpsert) SetWithinBudget(v bool) *MatchUpsert {
	u.Set(match.FieldWithinBudget, v)
	return u
}

// UpdateWithinBudget sets the "within_budget" field to the value that was provided on create.
func (u *MatchUpsert) UpdateWithinBudget() *MatchUpsert {
	u.SetExcluded(match.FieldWithinBudget)
	return u
}

// SetBuyerRate sets the "buyer_rate" field.
func (u *MatchUpsert) SetBuyerRate(v float64) *MatchUpsert {
	u.Set(match.FieldBuyerRate, v)
	return u
}

// UpdateBuyerRate sets the "buyer_rate" field to the value that was provided on create.
func (u *MatchUpsert) UpdateBuyerRate() *MatchUpsert {
	u.SetExcluded(match.FieldBuyerRate)
	return u
}

// AddBuyerRate adds v to the "buyer_rate" field.
func (u *MatchUpsert) AddBuyerRate(v float64) *MatchUpsert {
	u.Add(match.FieldBuyerRate, v)
	return u
}

// SetStatus sets the "status" field.
func (u *MatchUpsert) SetStatus(v match.Status) *MatchUpsert {
	u.Set(match.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MatchUpsert) UpdateStatus() *MatchUpsert {
	u.SetExcluded(match.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MatchUpsert) SetUpdatedAt(v time.Time) *MatchUpsert {
	u.Set(match.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MatchUpsert) UpdateUpdatedAt() *MatchUpsert {
	u.SetExcluded(match.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Match.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(match.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MatchUpsertOne) UpdateNewValues() *MatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(match.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(match.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Match.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MatchUpsertOne) Ignore() *MatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MatchUpsertOne) DoNothing() *MatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MatchCreate.OnConflict
// documentation for more info.
func (u *MatchUpsertOne) Update(set func(*MatchUpsert)) *MatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MatchUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (u *MatchUpsertOne) SetBuyerNeedID(v string) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetBuyerNeedID(v)
	})
}

// UpdateBuyerNeedID sets the "buyer_need_id" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateBuyerNeedID() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateBuyerNeedID()
	})
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *MatchUpsertOne) SetWarehouseID(v string) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateWarehouseID() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetCompositeScore sets the "composite_score" field.
func (u *MatchUpsertOne) SetCompositeScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetCompositeScore(v)
	})
}

// AddCompositeScore adds v to the "composite_score" field.
func (u *MatchUpsertOne) AddCompositeScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.AddCompositeScore(v)
	})
}

// UpdateCompositeScore sets the "composite_score" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateCompositeScore() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateCompositeScore()
	})
}

// SetLocationScore sets the "location_score" field.
func (u *MatchUpsertOne) SetLocationScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetLocationScore(v)
	})
}

// AddLocationScore adds v to the "location_score" field.
func (u *MatchUpsertOne) AddLocationScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.AddLocationScore(v)
	})
}

// UpdateLocationScore sets the "location_score" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateLocationScore() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateLocationScore()
	})
}

// SetSizeScore sets the "size_score" field.
func (u *MatchUpsertOne) SetSizeScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetSizeScore(v)
	})
}

// AddSizeScore adds v to the "size_score" field.
func (u *MatchUpsertOne) AddSizeScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.AddSizeScore(v)
	})
}

// UpdateSizeScore sets the "size_score" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateSizeScore() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateSizeScore()
	})
}

// SetUseTypeScore sets the "use_type_score" field.
func (u *MatchUpsertOne) SetUseTypeScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetUseTypeScore(v)
	})
}

// AddUseTypeScore adds v to the "use_type_score" field.
func (u *MatchUpsertOne) AddUseTypeScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.AddUseTypeScore(v)
	})
}

// UpdateUseTypeScore sets the "use_type_score" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateUseTypeScore() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateUseTypeScore()
	})
}

// SetFeatureScore sets the "feature_score" field.
func (u *MatchUpsertOne) SetFeatureScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetFeatureScore(v)
	})
}

// AddFeatureScore adds v to the "feature_score" field.
func (u *MatchUpsertOne) AddFeatureScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.AddFeatureScore(v)
	})
}

// UpdateFeatureScore sets the "feature_score" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateFeatureScore() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateFeatureScore()
	})
}

// SetTimingScore sets the "timing_score" field.
func (u *MatchUpsertOne) SetTimingScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetTimingScore(v)
	})
}

// AddTimingScore adds v to the "timing_score" field.
func (u *MatchUpsertOne) AddTimingScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.AddTimingScore(v)
	})
}

// UpdateTimingScore sets the "timing_score" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateTimingScore() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateTimingScore()
	})
}

// SetBudgetScore sets the "budget_score" field.
func (u *MatchUpsertOne) SetBudgetScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetBudgetScore(v)
	})
}

// AddBudgetScore adds v to the "budget_score" field.
func (u *MatchUpsertOne) AddBudgetScore(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.AddBudgetScore(v)
	})
}

// UpdateBudgetScore sets the "budget_score" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateBudgetScore() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateBudgetScore()
	})
}

// SetDistanceMiles sets the "distance_miles" field.
func (u *MatchUpsertOne) SetDistanceMiles(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetDistanceMiles(v)
	})
}

// AddDistanceMiles adds v to the "distance_miles" field.
func (u *MatchUpsertOne) AddDistanceMiles(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.AddDistanceMiles(v)
	})
}

// UpdateDistanceMiles sets the "distance_miles" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateDistanceMiles() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateDistanceMiles()
	})
}

// ClearDistanceMiles clears the value of the "distance_miles" field.
func (u *MatchUpsertOne) ClearDistanceMiles() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.ClearDistanceMiles()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *MatchUpsertOne) SetReasoning(v string) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateReasoning() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateReasoning()
	})
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *MatchUpsertOne) ClearReasoning() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.ClearReasoning()
	})
}

// SetCallouts sets the "callouts" field.
func (u *MatchUpsertOne) SetCallouts(v []string) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetCallouts(v)
	})
}

// UpdateCallouts sets the "callouts" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateCallouts() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateCallouts()
	})
}

// ClearCallouts clears the value of the "callouts" field.
func (u *MatchUpsertOne) ClearCallouts() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.ClearCallouts()
	})
}

// SetInstantBookEligible sets the "instant_book_eligible" field.
func (u *MatchUpsertOne) SetInstantBookEligible(v bool) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetInstantBookEligible(v)
	})
}

// UpdateInstantBookEligible sets the "instant_book_eligible" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateInstantBookEligible() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateInstantBookEligible()
	})
}

// SetWithinBudget sets the "within_budget" field.
func (u *MatchUpsertOne) SetWithinBudget(v bool) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetWithinBudget(v)
	})
}

// UpdateWithinBudget sets the "within_budget" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateWithinBudget() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateWithinBudget()
	})
}

// SetBuyerRate sets the "buyer_rate" field.
func (u *MatchUpsertOne) SetBuyerRate(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetBuyerRate(v)
	})
}

// AddBuyerRate adds v to the "buyer_rate" field.
func (u *MatchUpsertOne) AddBuyerRate(v float64) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.AddBuyerRate(v)
	})
}

// UpdateBuyerRate sets the "buyer_rate" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateBuyerRate() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateBuyerRate()
	})
}

// SetStatus sets the "status" field.
func (u *MatchUpsertOne) SetStatus(v match.Status) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateStatus() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MatchUpsertOne) SetUpdatedAt(v time.Time) *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MatchUpsertOne) UpdateUpdatedAt() *MatchUpsertOne {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MatchUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MatchCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MatchUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MatchUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MatchUpsertOne.ID is not supported by MySQL driver. Use MatchUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MatchUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MatchCreateBulk is the builder for creating many Match entities in bulk.
type MatchCreateBulk struct {
	config
	err      error
	builders []*MatchCreate
	conflict []sql.ConflictOption
}

// Save creates the Match entities in the database.
func (_c *MatchCreateBulk) Save(ctx context.Context) ([]*Match, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Match, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatchMutation)
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
func (_c *MatchCreateBulk) SaveX(ctx context.Context) []*Match {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Match.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MatchUpsert) {
//			SetBuyerNeedID(v+v).
//		}).
//		Exec(ctx)
func (_c *MatchCreateBulk) OnConflict(opts ...sql.ConflictOption) *MatchUpsertBulk {
	_c.conflict = opts
	return &MatchUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Match.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MatchCreateBulk) OnConflictColumns(columns ...string) *MatchUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MatchUpsertBulk{
		create: _c,
	}
}

// MatchUpsertBulk is the builder for "upsert"-ing
// a bulk of Match nodes.
type MatchUpsertBulk struct {
	create *MatchCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Match.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(match.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MatchUpsertBulk) UpdateNewValues() *MatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(match.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(match.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Match.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MatchUpsertBulk) Ignore() *MatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MatchUpsertBulk) DoNothing() *MatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MatchCreateBulk.OnConflict
// documentation for more info.
func (u *MatchUpsertBulk) Update(set func(*MatchUpsert)) *MatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MatchUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (u *MatchUpsertBulk) SetBuyerNeedID(v string) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetBuyerNeedID(v)
	})
}

// UpdateBuyerNeedID sets the "buyer_need_id" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateBuyerNeedID() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateBuyerNeedID()
	})
}

// SetWarehouseID sets the "warehouse_id" field.
func (u *MatchUpsertBulk) SetWarehouseID(v string) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetWarehouseID(v)
	})
}

// UpdateWarehouseID sets the "warehouse_id" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateWarehouseID() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateWarehouseID()
	})
}

// SetCompositeScore sets the "composite_score" field.
func (u *MatchUpsertBulk) SetCompositeScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetCompositeScore(v)
	})
}

// AddCompositeScore adds v to the "composite_score" field.
func (u *MatchUpsertBulk) AddCompositeScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.AddCompositeScore(v)
	})
}

// UpdateCompositeScore sets the "composite_score" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateCompositeScore() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateCompositeScore()
	})
}

// SetLocationScore sets the "location_score" field.
func (u *MatchUpsertBulk) SetLocationScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetLocationScore(v)
	})
}

// AddLocationScore adds v to the "location_score" field.
func (u *MatchUpsertBulk) AddLocationScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.AddLocationScore(v)
	})
}

// UpdateLocationScore sets the "location_score" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateLocationScore() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateLocationScore()
	})
}

// SetSizeScore sets the "size_score" field.
func (u *MatchUpsertBulk) SetSizeScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetSizeScore(v)
	})
}

// AddSizeScore adds v to the "size_score" field.
func (u *MatchUpsertBulk) AddSizeScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.AddSizeScore(v)
	})
}

// UpdateSizeScore sets the "size_score" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateSizeScore() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateSizeScore()
	})
}

// SetUseTypeScore sets the "use_type_score" field.
func (u *MatchUpsertBulk) SetUseTypeScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetUseTypeScore(v)
	})
}

// AddUseTypeScore adds v to the "use_type_score" field.
func (u *MatchUpsertBulk) AddUseTypeScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.AddUseTypeScore(v)
	})
}

// UpdateUseTypeScore sets the "use_type_score" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateUseTypeScore() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateUseTypeScore()
	})
}

// SetFeatureScore sets the "feature_score" field.
func (u *MatchUpsertBulk) SetFeatureScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetFeatureScore(v)
	})
}

// AddFeatureScore adds v to the "feature_score" field.
func (u *MatchUpsertBulk) AddFeatureScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.AddFeatureScore(v)
	})
}

// UpdateFeatureScore sets the "feature_score" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateFeatureScore() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateFeatureScore()
	})
}

// SetTimingScore sets the "timing_score" field.
func (u *MatchUpsertBulk) SetTimingScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetTimingScore(v)
	})
}

// AddTimingScore adds v to the "timing_score" field.
func (u *MatchUpsertBulk) AddTimingScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.AddTimingScore(v)
	})
}

// UpdateTimingScore sets the "timing_score" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateTimingScore() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateTimingScore()
	})
}

// SetBudgetScore sets the "budget_score" field.
func (u *MatchUpsertBulk) SetBudgetScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetBudgetScore(v)
	})
}

// AddBudgetScore adds v to the "budget_score" field.
func (u *MatchUpsertBulk) AddBudgetScore(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.AddBudgetScore(v)
	})
}

// UpdateBudgetScore sets the "budget_score" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateBudgetScore() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateBudgetScore()
	})
}

// SetDistanceMiles sets the "distance_miles" field.
func (u *MatchUpsertBulk) SetDistanceMiles(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetDistanceMiles(v)
	})
}

// AddDistanceMiles adds v to the "distance_miles" field.
func (u *MatchUpsertBulk) AddDistanceMiles(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.AddDistanceMiles(v)
	})
}

// UpdateDistanceMiles sets the "distance_miles" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateDistanceMiles() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateDistanceMiles()
	})
}

// ClearDistanceMiles clears the value of the "distance_miles" field.
func (u *MatchUpsertBulk) ClearDistanceMiles() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.ClearDistanceMiles()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *MatchUpsertBulk) SetReasoning(v string) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateReasoning() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateReasoning()
	})
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *MatchUpsertBulk) ClearReasoning() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.ClearReasoning()
	})
}

// SetCallouts sets the "callouts" field.
func (u *MatchUpsertBulk) SetCallouts(v []string) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetCallouts(v)
	})
}

// UpdateCallouts sets the "callouts" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateCallouts() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateCallouts()
	})
}

// ClearCallouts clears the value of the "callouts" field.
func (u *MatchUpsertBulk) ClearCallouts() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.ClearCallouts()
	})
}

// SetInstantBookEligible sets the "instant_book_eligible" field.
func (u *MatchUpsertBulk) SetInstantBookEligible(v bool) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetInstantBookEligible(v)
	})
}

// UpdateInstantBookEligible sets the "instant_book_eligible" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateInstantBookEligible() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateInstantBookEligible()
	})
}

// SetWithinBudget sets the "within_budget" field.
func (u *MatchUpsertBulk) SetWithinBudget(v bool) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetWithinBudget(v)
	})
}

// UpdateWithinBudget sets the "within_budget" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateWithinBudget() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateWithinBudget()
	})
}

// SetBuyerRate sets the "buyer_rate" field.
func (u *MatchUpsertBulk) SetBuyerRate(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetBuyerRate(v)
	})
}

// AddBuyerRate adds v to the "buyer_rate" field.
func (u *MatchUpsertBulk) AddBuyerRate(v float64) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.AddBuyerRate(v)
	})
}

// UpdateBuyerRate sets the "buyer_rate" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateBuyerRate() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateBuyerRate()
	})
}

// SetStatus sets the "status" field.
func (u *MatchUpsertBulk) SetStatus(v match.Status) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateStatus() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MatchUpsertBulk) SetUpdatedAt(v time.Time) *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MatchUpsertBulk) UpdateUpdatedAt() *MatchUpsertBulk {
	return u.Update(func(s *MatchUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MatchUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MatchCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MatchCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MatchUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
