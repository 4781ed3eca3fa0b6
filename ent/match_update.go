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
	"github.com/warehouse-exchange/wex/ent/buyerneed"
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/instantbookscore"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// MatchUpdate is the builder for updating Match entities.
type MatchUpdate struct {
	config
	hooks    []Hook
	mutation *MatchMutation
}

// Where appends a list predicates to the MatchUpdate builder.
func (_u *MatchUpdate) Where(ps ...predicate.Match) *MatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_u *MatchUpdate) SetBuyerNeedID(v string) *MatchUpdate {
	_u.mutation.SetBuyerNeedID(v)
	return _u
}

// SetNillableBuyerNeedID sets the "buyer_need_id" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableBuyerNeedID(v *string) *MatchUpdate {
	if v != nil {
		_u.SetBuyerNeedID(*v)
	}
	return _u
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *MatchUpdate) SetWarehouseID(v string) *MatchUpdate {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableWarehouseID(v *string) *MatchUpdate {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetCompositeScore sets the "composite_score" field.
func (_u *MatchUpdate) SetCompositeScore(v float64) *MatchUpdate {
	_u.mutation.ResetCompositeScore()
	_u.mutation.SetCompositeScore(v)
	return _u
}

// SetNillableCompositeScore sets the "composite_score" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableCompositeScore(v *float64) *MatchUpdate {
	if v != nil {
		_u.SetCompositeScore(*v)
	}
	return _u
}

// AddCompositeScore adds value to the "composite_score" field.
func (_u *MatchUpdate) AddCompositeScore(v float64) *MatchUpdate {
	_u.mutation.AddCompositeScore(v)
	return _u
}

// SetLocationScore sets the "location_score" field.
func (_u *MatchUpdate) SetLocationScore(v float64) *MatchUpdate {
	_u.mutation.ResetLocationScore()
	_u.mutation.SetLocationScore(v)
	return _u
}

// SetNillableLocationScore sets the "location_score" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableLocationScore(v *float64) *MatchUpdate {
	if v != nil {
		_u.SetLocationScore(*v)
	}
	return _u
}

// AddLocationScore adds value to the "location_score" field.
func (_u *MatchUpdate) AddLocationScore(v float64) *MatchUpdate {
	_u.mutation.AddLocationScore(v)
	return _u
}

// SetSizeScore sets the "size_score" field.
func (_u *MatchUpdate) SetSizeScore(v float64) *MatchUpdate {
	_u.mutation.ResetSizeScore()
	_u.mutation.SetSizeScore(v)
	return _u
}

// SetNillableSizeScore sets the "size_score" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableSizeScore(v *float64) *MatchUpdate {
	if v != nil {
		_u.SetSizeScore(*v)
	}
	return _u
}

// AddSizeScore adds value to the "size_score" field.
func (_u *MatchUpdate) AddSizeScore(v float64) *MatchUpdate {
	_u.mutation.AddSizeScore(v)
	return _u
}

// SetUseTypeScore sets the "use_type_score" field.
func (_u *MatchUpdate) SetUseTypeScore(v float64) *MatchUpdate {
	_u.mutation.ResetUseTypeScore()
	_u.mutation.SetUseTypeScore(v)
	return _u
}

// SetNillableUseTypeScore sets the "use_type_score" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableUseTypeScore(v *float64) *MatchUpdate {
	if v != nil {
		_u.SetUseTypeScore(*v)
	}
	return _u
}

// AddUseTypeScore adds value to the "use_type_score" field.
func (_u *MatchUpdate) AddUseTypeScore(v float64) *MatchUpdate {
	_u.mutation.AddUseTypeScore(v)
	return _u
}

// SetFeatureScore sets the "feature_score" field.
func (_u *MatchUpdate) SetFeatureScore(v float64) *MatchUpdate {
	_u.mutation.ResetFeatureScore()
	_u.mutation.SetFeatureScore(v)
	return _u
}

// SetNillableFeatureScore sets the "feature_score" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableFeatureScore(v *float64) *MatchUpdate {
	if v != nil {
		_u.SetFeatureScore(*v)
	}
	return _u
}

// AddFeatureScore adds value to the "feature_score" field.
func (_u *MatchUpdate) AddFeatureScore(v float64) *MatchUpdate {
	_u.mutation.AddFeatureScore(v)
	return _u
}

// SetTimingScore sets the "timing_score" field.
func (_u *MatchUpdate) SetTimingScore(v float64) *MatchUpdate {
	_u.mutation.ResetTimingScore()
	_u.mutation.SetTimingScore(v)
	return _u
}

// SetNillableTimingScore sets the "timing_score" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableTimingScore(v *float64) *MatchUpdate {
	if v != nil {
		_u.SetTimingScore(*v)
	}
	return _u
}

// AddTimingScore adds value to the "timing_score" field.
func (_u *MatchUpdate) AddTimingScore(v float64) *MatchUpdate {
	_u.mutation.AddTimingScore(v)
	return _u
}

// SetBudgetScore sets the "budget_score" field.
func (_u *MatchUpdate) SetBudgetScore(v float64) *MatchUpdate {
	_u.mutation.ResetBudgetScore()
	_u.mutation.SetBudgetScore(v)
	return _u
}

// SetNillableBudgetScore sets the "budget_score" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableBudgetScore(v *float64) *MatchUpdate {
	if v != nil {
		_u.SetBudgetScore(*v)
	}
	return _u
}

// AddBudgetScore adds value to the "budget_score" field.
func (_u *MatchUpdate) AddBudgetScore(v float64) *MatchUpdate {
	_u.mutation.AddBudgetScore(v)
	return _u
}

// SetDistanceMiles sets the "distance_miles" field.
func (_u *MatchUpdate) SetDistanceMiles(v float64) *MatchUpdate {
	_u.mutation.ResetDistanceMiles()
	_u.mutation.SetDistanceMiles(v)
	return _u
}

// SetNillableDistanceMiles sets the "distance_miles" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableDistanceMiles(v *float64) *MatchUpdate {
	if v != nil {
		_u.SetDistanceMiles(*v)
	}
	return _u
}

// AddDistanceMiles adds value to the "distance_miles" field.
func (_u *MatchUpdate) AddDistanceMiles(v float64) *MatchUpdate {
	_u.mutation.AddDistanceMiles(v)
	return _u
}

// ClearDistanceMiles clears the value of the "distance_miles" field.
func (_u *MatchUpdate) ClearDistanceMiles() *MatchUpdate {
	_u.mutation.ClearDistanceMiles()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *MatchUpdate) SetReasoning(v string) *MatchUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableReasoning(v *string) *MatchUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *MatchUpdate) ClearReasoning() *MatchUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetCallouts sets the "callouts" field.
func (_u *MatchUpdate) SetCallouts(v []string) *MatchUpdate {
	_u.mutation.SetCallouts(v)
	return _u
}

// AppendCallouts appends value to the "callouts" field.
func (_u *MatchUpdate) AppendCallouts(v []string) *MatchUpdate {
	_u.mutation.AppendCallouts(v)
	return _u
}

// ClearCallouts clears the value of the "callouts" field.
func (_u *MatchUpdate) ClearCallouts() *MatchUpdate {
	_u.mutation.ClearCallouts()
	return _u
}

// SetInstantBookEligible sets the "instant_book_eligible" field.
func (_u *MatchUpdate) SetInstantBookEligible(v bool) *MatchUpdate {
	_u.mutation.SetInstantBookEligible(v)
	return _u
}

// SetNillableInstantBookEligible sets the "instant_book_eligible" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableInstantBookEligible(v *bool) *MatchUpdate {
	if v != nil {
		_u.SetInstantBookEligible(*v)
	}
	return _u
}

// SetWithinBudget sets the "within_budget" field.
func (_u *MatchUpdate) SetWithinBudget(v bool) *MatchUpdate {
	_u.mutation.SetWithinBudget(v)
	return _u
}

// SetNillableWithinBudget sets the "within_budget" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableWithinBudget(v *bool) *MatchUpdate {
	if v != nil {
		_u.SetWithinBudget(*v)
	}
	return _u
}

// SetBuyerRate sets the "buyer_rate" field.
func (_u *MatchUpdate) SetBuyerRate(v float64) *MatchUpdate {
	_u.mutation.ResetBuyerRate()
	_u.mutation.SetBuyerRate(v)
	return _u
}

// SetNillableBuyerRate sets the "buyer_rate" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableBuyerRate(v *float64) *MatchUpdate {
	if v != nil {
		_u.SetBuyerRate(*v)
	}
	return _u
}

// AddBuyerRate adds value to the "buyer_rate" field.
func (_u *MatchUpdate) AddBuyerRate(v float64) *MatchUpdate {
	_u.mutation.AddBuyerRate(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MatchUpdate) SetStatus(v match.Status) *MatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MatchUpdate) SetNillableStatus(v *match.Status) *MatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MatchUpdate) SetUpdatedAt(v time.Time) *MatchUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBuyerNeed sets the "buyer_need" edge to the BuyerNeed entity.
func (_u *MatchUpdate) SetBuyerNeed(v *BuyerNeed) *MatchUpdate {
	return _u.SetBuyerNeedID(v.ID)
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_u *MatchUpdate) SetWarehouse(v *Warehouse) *MatchUpdate {
	return _u.SetWarehouseID(v.ID)
}

// SetInstantBookScoreID sets the "instant_book_score" edge to the InstantBookScore entity by ID.
func (_u *MatchUpdate) SetInstantBookScoreID(id string) *MatchUpdate {
	_u.mutation.SetInstantBookScoreID(id)
	return _u
}

// SetNillableInstantBookScoreID sets the "instant_book_score" edge to the InstantBookScore entity by ID if the given value is not nil.
func (_u *MatchUpdate) SetNillableInstantBookScoreID(id *string) *MatchUpdate {
	if id != nil {
		_u = _u.SetInstantBookScoreID(*id)
	}
	return _u
}

// SetInstantBookScore sets the "instant_book_score" edge to the InstantBookScore entity.
func (_u *MatchUpdate) SetInstantBookScore(v *InstantBookScore) *MatchUpdate {
	return _u.SetInstantBookScoreID(v.ID)
}

// SetEngagementID sets the "engagement" edge to the Engagement entity by ID.
func (_u *MatchUpdate) SetEngagementID(id string) *MatchUpdate {
	_u.mutation.SetEngagementID(id)
	return _u
}

// SetNillableEngagementID sets the "engagement" edge to the Engagement entity by ID if the given value is not nil.
func (_u *MatchUpdate) SetNillableEngagementID(id *string) *MatchUpdate {
	if id != nil {
		_u = _u.SetEngagementID(*id)
	}
	return _u
}

// SetEngagement sets the "engagement" edge to the Engagement entity.
func (_u *MatchUpdate) SetEngagement(v *Engagement) *MatchUpdate {
	return _u.SetEngagementID(v.ID)
}

// Mutation returns the MatchMutation object of the builder.
func (_u *MatchUpdate) Mutation() *MatchMutation {
	return _u.mutation
}

// ClearBuyerNeed clears the "buyer_need" edge to the BuyerNeed entity.
func (_u *MatchUpdate) ClearBuyerNeed() *MatchUpdate {
	_u.mutation.ClearBuyerNeed()
	return _u
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (_u *MatchUpdate) ClearWarehouse() *MatchUpdate {
	_u.mutation.ClearWarehouse()
	return _u
}

// ClearInstantBookScore clears the "instant_book_score" edge to the InstantBookScore entity.
func (_u *MatchUpdate) ClearInstantBookScore() *MatchUpdate {
	_u.mutation.ClearInstantBookScore()
	return _u
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (_u *MatchUpdate) ClearEngagement() *MatchUpdate {
	_u.mutation.ClearEngagement()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MatchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MatchUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := match.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := match.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Match.status": %w`, err)}
		}
	}
	if _u.mutation.BuyerNeedCleared() && len(_u.mutation.BuyerNeedIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.buyer_need"`)
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.warehouse"`)
	}
	return nil
}

func (_u *MatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(match.Table, match.Columns, sqlgraph.NewFieldSpec(match.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompositeScore(); ok {
		_spec.SetField(match.FieldCompositeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompositeScore(); ok {
		_spec.AddField(match.FieldCompositeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LocationScore(); ok {
		_spec.SetField(match.FieldLocationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLocationScore(); ok {
		_spec.AddField(match.FieldLocationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SizeScore(); ok {
		_spec.SetField(match.FieldSizeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSizeScore(); ok {
		_spec.AddField(match.FieldSizeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UseTypeScore(); ok {
		_spec.SetField(match.FieldUseTypeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUseTypeScore(); ok {
		_spec.AddField(match.FieldUseTypeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FeatureScore(); ok {
		_spec.SetField(match.FieldFeatureScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFeatureScore(); ok {
		_spec.AddField(match.FieldFeatureScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimingScore(); ok {
		_spec.SetField(match.FieldTimingScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimingScore(); ok {
		_spec.AddField(match.FieldTimingScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BudgetScore(); ok {
		_spec.SetField(match.FieldBudgetScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetScore(); ok {
		_spec.AddField(match.FieldBudgetScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DistanceMiles(); ok {
		_spec.SetField(match.FieldDistanceMiles, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistanceMiles(); ok {
		_spec.AddField(match.FieldDistanceMiles, field.TypeFloat64, value)
	}
	if _u.mutation.DistanceMilesCleared() {
		_spec.ClearField(match.FieldDistanceMiles, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(match.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(match.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Callouts(); ok {
		_spec.SetField(match.FieldCallouts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCallouts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, match.FieldCallouts, value)
		})
	}
	if _u.mutation.CalloutsCleared() {
		_spec.ClearField(match.FieldCallouts, field.TypeJSON)
	}
	if value, ok := _u.mutation.InstantBookEligible(); ok {
		_spec.SetField(match.FieldInstantBookEligible, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WithinBudget(); ok {
		_spec.SetField(match.FieldWithinBudget, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BuyerRate(); ok {
		_spec.SetField(match.FieldBuyerRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBuyerRate(); ok {
		_spec.AddField(match.FieldBuyerRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(match.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(match.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BuyerNeedCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyerNeedIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WarehouseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WarehouseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InstantBookScoreCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstantBookScoreIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EngagementCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EngagementIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{match.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MatchUpdateOne is the builder for updating a single Match entity.
type MatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MatchMutation
}

// SetBuyerNeedID sets the "buyer_need_id" field.
func (_u *MatchUpdateOne) SetBuyerNeedID(v string) *MatchUpdateOne {
	_u.mutation.SetBuyerNeedID(v)
	return _u
}

// SetNillableBuyerNeedID sets the "buyer_need_id" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableBuyerNeedID(v *string) *MatchUpdateOne {
	if v != nil {
		_u.SetBuyerNeedID(*v)
	}
	return _u
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *MatchUpdateOne) SetWarehouseID(v string) *MatchUpdateOne {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableWarehouseID(v *string) *MatchUpdateOne {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetCompositeScore sets the "composite_score" field.
func (_u *MatchUpdateOne) SetCompositeScore(v float64) *MatchUpdateOne {
	_u.mutation.ResetCompositeScore()
	_u.mutation.SetCompositeScore(v)
	return _u
}

// SetNillableCompositeScore sets the "composite_score" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableCompositeScore(v *float64) *MatchUpdateOne {
	if v != nil {
		_u.SetCompositeScore(*v)
	}
	return _u
}

// AddCompositeScore adds value to the "composite_score" field.
func (_u *MatchUpdateOne) AddCompositeScore(v float64) *MatchUpdateOne {
	_u.mutation.AddCompositeScore(v)
	return _u
}

// SetLocationScore sets the "location_score" field.
func (_u *MatchUpdateOne) SetLocationScore(v float64) *MatchUpdateOne {
	_u.mutation.ResetLocationScore()
	_u.mutation.SetLocationScore(v)
	return _u
}

// SetNillableLocationScore sets the "location_score" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableLocationScore(v *float64) *MatchUpdateOne {
	if v != nil {
		_u.SetLocationScore(*v)
	}
	return _u
}

// AddLocationScore adds value to the "location_score" field.
func (_u *MatchUpdateOne) AddLocationScore(v float64) *MatchUpdateOne {
	_u.mutation.AddLocationScore(v)
	return _u
}

// SetSizeScore sets the "size_score" field.
func (_u *MatchUpdateOne) SetSizeScore(v float64) *MatchUpdateOne {
	_u.mutation.ResetSizeScore()
	_u.mutation.SetSizeScore(v)
	return _u
}

// SetNillableSizeScore sets the "size_score" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableSizeScore(v *float64) *MatchUpdateOne {
	if v != nil {
		_u.SetSizeScore(*v)
	}
	return _u
}

// AddSizeScore adds value to the "size_score" field.
func (_u *MatchUpdateOne) AddSizeScore(v float64) *MatchUpdateOne {
	_u.mutation.AddSizeScore(v)
	return _u
}

// SetUseTypeScore sets the "use_type_score" field.
func (_u *MatchUpdateOne) SetUseTypeScore(v float64) *MatchUpdateOne {
	_u.mutation.ResetUseTypeScore()
	_u.mutation.SetUseTypeScore(v)
	return _u
}

// SetNillableUseTypeScore sets the "use_type_score" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableUseTypeScore(v *float64) *MatchUpdateOne {
	if v != nil {
		_u.SetUseTypeScore(*v)
	}
	return _u
}

// AddUseTypeScore adds value to the "use_type_score" field.
func (_u *MatchUpdateOne) AddUseTypeScore(v float64) *MatchUpdateOne {
	_u.mutation.AddUseTypeScore(v)
	return _u
}

// SetFeatureScore sets the "feature_score" field.
func (_u *MatchUpdateOne) SetFeatureScore(v float64) *MatchUpdateOne {
	_u.mutation.ResetFeatureScore()
	_u.mutation.SetFeatureScore(v)
	return _u
}

// SetNillableFeatureScore sets the "feature_score" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableFeatureScore(v *float64) *MatchUpdateOne {
	if v != nil {
		_u.SetFeatureScore(*v)
	}
	return _u
}

// AddFeatureScore adds value to the "feature_score" field.
func (_u *MatchUpdateOne) AddFeatureScore(v float64) *MatchUpdateOne {
	_u.mutation.AddFeatureScore(v)
	return _u
}

// SetTimingScore sets the "timing_score" field.
func (_u *MatchUpdateOne) SetTimingScore(v float64) *MatchUpdateOne {
	_u.mutation.ResetTimingScore()
	_u.mutation.SetTimingScore(v)
	return _u
}

// SetNillableTimingScore sets the "timing_score" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableTimingScore(v *float64) *MatchUpdateOne {
	if v != nil {
		_u.SetTimingScore(*v)
	}
	return _u
}

// AddTimingScore adds value to the "timing_score" field.
func (_u *MatchUpdateOne) AddTimingScore(v float64) *MatchUpdateOne {
	_u.mutation.AddTimingScore(v)
	return _u
}

// SetBudgetScore sets the "budget_score" field.
func (_u *MatchUpdateOne) SetBudgetScore(v float64) *MatchUpdateOne {
	_u.mutation.ResetBudgetScore()
	_u.mutation.SetBudgetScore(v)
	return _u
}

// SetNillableBudgetScore sets the "budget_score" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableBudgetScore(v *float64) *MatchUpdateOne {
	if v != nil {
		_u.SetBudgetScore(*v)
	}
	return _u
}

// AddBudgetScore adds value to the "budget_score" field.
func (_u *MatchUpdateOne) AddBudgetScore(v float64) *MatchUpdateOne {
	_u.mutation.AddBudgetScore(v)
	return _u
}

// SetDistanceMiles sets the "distance_miles" field.
func (_u *MatchUpdateOne) SetDistanceMiles(v float64) *MatchUpdateOne {
	_u.mutation.ResetDistanceMiles()
	_u.mutation.SetDistanceMiles(v)
	return _u
}

// SetNillableDistanceMiles sets the "distance_miles" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableDistanceMiles(v *float64) *MatchUpdateOne {
	if v != nil {
		_u.SetDistanceMiles(*v)
	}
	return _u
}

// AddDistanceMiles adds value to the "distance_miles" field.
func (_u *MatchUpdateOne) AddDistanceMiles(v float64) *MatchUpdateOne {
	_u.mutation.AddDistanceMiles(v)
	return _u
}

// ClearDistanceMiles clears the value of the "distance_miles" field.
func (_u *MatchUpdateOne) ClearDistanceMiles() *MatchUpdateOne {
	_u.mutation.ClearDistanceMiles()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *MatchUpdateOne) SetReasoning(v string) *MatchUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableReasoning(v *string) *MatchUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *MatchUpdateOne) ClearReasoning() *MatchUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetCallouts sets the "callouts" field.
func (_u *MatchUpdateOne) SetCallouts(v []string) *MatchUpdateOne {
	_u.mutation.SetCallouts(v)
	return _u
}

// AppendCallouts appends value to the "callouts" field.
func (_u *MatchUpdateOne) AppendCallouts(v []string) *MatchUpdateOne {
	_u.mutation.AppendCallouts(v)
	return _u
}

// ClearCallouts clears the value of the "callouts" field.
func (_u *MatchUpdateOne) ClearCallouts() *MatchUpdateOne {
	_u.mutation.ClearCallouts()
	return _u
}

// SetInstantBookEligible sets the "instant_book_eligible" field.
func (_u *MatchUpdateOne) SetInstantBookEligible(v bool) *MatchUpdateOne {
	_u.mutation.SetInstantBookEligible(v)
	return _u
}

// SetNillableInstantBookEligible sets the "instant_book_eligible" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableInstantBookEligible(v *bool) *MatchUpdateOne {
	if v != nil {
		_u.SetInstantBookEligible(*v)
	}
	return _u
}

// SetWithinBudget sets the "within_budget" field.
func (_u *MatchUpdateOne) SetWithinBudget(v bool) *MatchUpdateOne {
	_u.mutation.SetWithinBudget(v)
	return _u
}

// SetNillableWithinBudget sets the "within_budget" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableWithinBudget(v *bool) *MatchUpdateOne {
	if v != nil {
		_u.SetWithinBudget(*v)
	}
	return _u
}

// SetBuyerRate sets the "buyer_rate" field.
func (_u *MatchUpdateOne) SetBuyerRate(v float64) *MatchUpdateOne {
	_u.mutation.ResetBuyerRate()
	_u.mutation.SetBuyerRate(v)
	return _u
}

// SetNillableBuyerRate sets the "buyer_rate" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableBuyerRate(v *float64) *MatchUpdateOne {
	if v != nil {
		_u.SetBuyerRate(*v)
	}
	return _u
}

// AddBuyerRate adds value to the "buyer_rate" field.
func (_u *MatchUpdateOne) AddBuyerRate(v float64) *MatchUpdateOne {
	_u.mutation.AddBuyerRate(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *MatchUpdateOne) SetStatus(v match.Status) *MatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableStatus(v *match.Status) *MatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MatchUpdateOne) SetUpdatedAt(v time.Time) *MatchUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBuyerNeed sets the "buyer_need" edge to the BuyerNeed entity.
func (_u *MatchUpdateOne) SetBuyerNeed(v *BuyerNeed) *MatchUpdateOne {
	return _u.SetBuyerNeedID(v.ID)
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_u *MatchUpdateOne) SetWarehouse(v *Warehouse) *MatchUpdateOne {
	return _u.SetWarehouseID(v.ID)
}

// SetInstantBookScoreID sets the "instant_book_score" edge to the InstantBookScore entity by ID.
func (_u *MatchUpdateOne) SetInstantBookScoreID(id string) *MatchUpdateOne {
	_u.mutation.SetInstantBookScoreID(id)
	return _u
}

// SetNillableInstantBookScoreID sets the "instant_book_score" edge to the InstantBookScore entity by ID if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableInstantBookScoreID(id *string) *MatchUpdateOne {
	if id != nil {
		_u = _u.SetInstantBookScoreID(*id)
	}
	return _u
}

// SetInstantBookScore sets the "instant_book_score" edge to the InstantBookScore entity.
func (_u *MatchUpdateOne) SetInstantBookScore(v *InstantBookScore) *MatchUpdateOne {
	return _u.SetInstantBookScoreID(v.ID)
}

// SetEngagementID sets the "engagement" edge to the Engagement entity by ID.
func (_u *MatchUpdateOne) SetEngagementID(id string) *MatchUpdateOne {
	_u.mutation.SetEngagementID(id)
	return _u
}

// SetNillableEngagementID sets the "engagement" edge to the Engagement entity by ID if the given value is not nil.
func (_u *MatchUpdateOne) SetNillableEngagementID(id *string) *MatchUpdateOne {
	if id != nil {
		_u = _u.SetEngagementID(*id)
	}
	return _u
}

// SetEngagement sets the "engagement" edge to the Engagement entity.
func (_u *MatchUpdateOne) SetEngagement(v *Engagement) *MatchUpdateOne {
	return _u.SetEngagementID(v.ID)
}

// Mutation returns the MatchMutation object of the builder.
func (_u *MatchUpdateOne) Mutation() *MatchMutation {
	return _u.mutation
}

// ClearBuyerNeed clears the "buyer_need" edge to the BuyerNeed entity.
func (_u *MatchUpdateOne) ClearBuyerNeed() *MatchUpdateOne {
	_u.mutation.ClearBuyerNeed()
	return _u
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (_u *MatchUpdateOne) ClearWarehouse() *MatchUpdateOne {
	_u.mutation.ClearWarehouse()
	return _u
}

// ClearInstantBookScore clears the "instant_book_score" edge to the InstantBookScore entity.
func (_u *MatchUpdateOne) ClearInstantBookScore() *MatchUpdateOne {
	_u.mutation.ClearInstantBookScore()
	return _u
}

// ClearEngagement clears the "engagement" edge to the Engagement entity.
func (_u *MatchUpdateOne) ClearEngagement() *MatchUpdateOne {
	_u.mutation.ClearEngagement()
	return _u
}

// Where appends a list predicates to the MatchUpdate builder.
func (_u *MatchUpdateOne) Where(ps ...predicate.Match) *MatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MatchUpdateOne) Select(field string, fields ...string) *MatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Match entity.
func (_u *MatchUpdateOne) Save(ctx context.Context) (*Match, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MatchUpdateOne) SaveX(ctx context.Context) *Match {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MatchUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := match.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MatchUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := match.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Match.status": %w`, err)}
		}
	}
	if _u.mutation.BuyerNeedCleared() && len(_u.mutation.BuyerNeedIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.buyer_need"`)
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Match.warehouse"`)
	}
	return nil
}

func (_u *MatchUpdateOne) sqlSave(ctx context.Context) (_node *Match, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(match.Table, match.Columns, sqlgraph.NewFieldSpec(match.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Match.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, match.FieldID)
		for _, f := range fields {
			if !match.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != match.FieldID {
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
	if value, ok := _u.mutation.CompositeScore(); ok {
		_spec.SetField(match.FieldCompositeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompositeScore(); ok {
		_spec.AddField(match.FieldCompositeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LocationScore(); ok {
		_spec.SetField(match.FieldLocationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLocationScore(); ok {
		_spec.AddField(match.FieldLocationScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SizeScore(); ok {
		_spec.SetField(match.FieldSizeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSizeScore(); ok {
		_spec.AddField(match.FieldSizeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UseTypeScore(); ok {
		_spec.SetField(match.FieldUseTypeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUseTypeScore(); ok {
		_spec.AddField(match.FieldUseTypeScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FeatureScore(); ok {
		_spec.SetField(match.FieldFeatureScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFeatureScore(); ok {
		_spec.AddField(match.FieldFeatureScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimingScore(); ok {
		_spec.SetField(match.FieldTimingScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimingScore(); ok {
		_spec.AddField(match.FieldTimingScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BudgetScore(); ok {
		_spec.SetField(match.FieldBudgetScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBudgetScore(); ok {
		_spec.AddField(match.FieldBudgetScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DistanceMiles(); ok {
		_spec.SetField(match.FieldDistanceMiles, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistanceMiles(); ok {
		_spec.AddField(match.FieldDistanceMiles, field.TypeFloat64, value)
	}
	if _u.mutation.DistanceMilesCleared() {
		_spec.ClearField(match.FieldDistanceMiles, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(match.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(match.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Callouts(); ok {
		_spec.SetField(match.FieldCallouts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCallouts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, match.FieldCallouts, value)
		})
	}
	if _u.mutation.CalloutsCleared() {
		_spec.ClearField(match.FieldCallouts, field.TypeJSON)
	}
	if value, ok := _u.mutation.InstantBookEligible(); ok {
		_spec.SetField(match.FieldInstantBookEligible, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WithinBudget(); ok {
		_spec.SetField(match.FieldWithinBudget, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BuyerRate(); ok {
		_spec.SetField(match.FieldBuyerRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBuyerRate(); ok {
		_spec.AddField(match.FieldBuyerRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(match.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(match.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BuyerNeedCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyerNeedIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WarehouseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WarehouseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InstantBookScoreCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InstantBookScoreIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EngagementCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EngagementIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Match{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{match.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
