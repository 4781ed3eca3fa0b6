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
	"github.com/warehouse-exchange/wex/ent/buyerneed"
	"github.com/warehouse-exchange/wex/ent/dlatoken"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/user"
)

// BuyerNeedUpdate is the builder for updating BuyerNeed entities.
type BuyerNeedUpdate struct {
	config
	hooks    []Hook
	mutation *BuyerNeedMutation
}

// Where appends a list predicates to the BuyerNeedUpdate builder.
func (_u *BuyerNeedUpdate) Where(ps ...predicate.BuyerNeed) *BuyerNeedUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBuyerID sets the "buyer_id" field.
func (_u *BuyerNeedUpdate) SetBuyerID(v string) *BuyerNeedUpdate {
	_u.mutation.SetBuyerID(v)
	return _u
}

// SetNillableBuyerID sets the "buyer_id" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillableBuyerID(v *string) *BuyerNeedUpdate {
	if v != nil {
		_u.SetBuyerID(*v)
	}
	return _u
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (_u *BuyerNeedUpdate) ClearBuyerID() *BuyerNeedUpdate {
	_u.mutation.ClearBuyerID()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *BuyerNeedUpdate) SetPhone(v string) *BuyerNeedUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillablePhone(v *string) *BuyerNeedUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *BuyerNeedUpdate) ClearPhone() *BuyerNeedUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetCity sets the "city" field.
func (_u *BuyerNeedUpdate) SetCity(v string) *BuyerNeedUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillableCity(v *string) *BuyerNeedUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *BuyerNeedUpdate) SetState(v string) *BuyerNeedUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillableState(v *string) *BuyerNeedUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLat sets the "lat" field.
func (_u *BuyerNeedUpdate) SetLat(v float64) *BuyerNeedUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillableLat(v *float64) *BuyerNeedUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *BuyerNeedUpdate) AddLat(v float64) *BuyerNeedUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *BuyerNeedUpdate) ClearLat() *BuyerNeedUpdate {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *BuyerNeedUpdate) SetLng(v float64) *BuyerNeedUpdate {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillableLng(v *float64) *BuyerNeedUpdate {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *BuyerNeedUpdate) AddLng(v float64) *BuyerNeedUpdate {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *BuyerNeedUpdate) ClearLng() *BuyerNeedUpdate {
	_u.mutation.ClearLng()
	return _u
}

// SetRadiusMiles sets the "radius_miles" field.
func (_u *BuyerNeedUpdate) SetRadiusMiles(v float64) *BuyerNeedUpdate {
	_u.mutation.ResetRadiusMiles()
	_u.mutation.SetRadiusMiles(v)
	return _u
}

// SetNillableRadiusMiles sets the "radius_miles" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillableRadiusMiles(v *float64) *BuyerNeedUpdate {
	if v != nil {
		_u.SetRadiusMiles(*v)
	}
	return _u
}

// AddRadiusMiles adds value to the "radius_miles" field.
func (_u *BuyerNeedUpdate) AddRadiusMiles(v float64) *BuyerNeedUpdate {
	_u.mutation.AddRadiusMiles(v)
	return _u
}

// SetMinSqft sets the "min_sqft" field.
func (_u *BuyerNeedUpdate) SetMinSqft(v int) *BuyerNeedUpdate {
	_u.mutation.ResetMinSqft()
	_u.mutation.SetMinSqft(v)
	return _u
}

// SetNillableMinSqft sets the "min_sqft" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillableMinSqft(v *int) *BuyerNeedUpdate {
	if v != nil {
		_u.SetMinSqft(*v)
	}
	return _u
}

// AddMinSqft adds value to the "min_sqft" field.
func (_u *BuyerNeedUpdate) AddMinSqft(v int) *BuyerNeedUpdate {
	_u.mutation.AddMinSqft(v)
	return _u
}

// SetMaxSqft sets the "max_sqft" field.
func (_u *BuyerNeedUpdate) SetMaxSqft(v int) *BuyerNeedUpdate {
	_u.mutation.ResetMaxSqft()
	_u.mutation.SetMaxSqft(v)
	return _u
}

// SetNillableMaxSqft sets the "max_sqft" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillableMaxSqft(v *int) *BuyerNeedUpdate {
	if v != nil {
		_u.SetMaxSqft(*v)
	}
	return _u
}

// AddMaxSqft adds value to the "max_sqft" field.
func (_u *BuyerNeedUpdate) AddMaxSqft(v int) *BuyerNeedUpdate {
	_u.mutation.AddMaxSqft(v)
	return _u
}

// SetUseType sets the "use_type" field.
func (_u *BuyerNeedUpdate) SetUseType(v string) *BuyerNeedUpdate {
	_u.mutation.SetUseType(v)
	return _u
}

// SetNillableUseType sets the "use_type" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillableUseType(v *string) *BuyerNeedUpdate {
	if v != nil {
		_u.SetUseType(*v)
	}
	return _u
}

// SetNeededFrom sets the "needed_from" field.
func (_u *BuyerNeedUpdate) SetNeededFrom(v time.Time) *BuyerNeedUpdate {
	_u.mutation.SetNeededFrom(v)
	return _u
}

// SetNillableNeededFrom sets the "needed_from" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillableNeededFrom(v *time.Time) *BuyerNeedUpdate {
	if v != nil {
		_u.SetNeededFrom(*v)
	}
	return _u
}

// ClearNeededFrom clears the value of the "needed_from" field.
func (_u *BuyerNeedUpdate) ClearNeededFrom() *BuyerNeedUpdate {
	_u.mutation.ClearNeededFrom()
	return _u
}

// SetDurationMonths sets the "duration_months" field.
func (_u *BuyerNeedUpdate) SetDurationMonths(v int) *BuyerNeedUpdate {
	_u.mutation.ResetDurationMonths()
	_u.mutation.SetDurationMonths(v)
	return _u
}

// SetNillableDurationMonths sets the "duration_months" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillableDurationMonths(v *int) *BuyerNeedUpdate {
	if v != nil {
		_u.SetDurationMonths(*v)
	}
	return _u
}

// AddDurationMonths adds value to the "duration_months" field.
func (_u *BuyerNeedUpdate) AddDurationMonths(v int) *BuyerNeedUpdate {
	_u.mutation.AddDurationMonths(v)
	return _u
}

// ClearDurationMonths clears the value of the "duration_months" field.
func (_u *BuyerNeedUpdate) ClearDurationMonths() *BuyerNeedUpdate {
	_u.mutation.ClearDurationMonths()
	return _u
}

// SetMaxBudgetPerSqft sets the "max_budget_per_sqft" field.
func (_u *BuyerNeedUpdate) SetMaxBudgetPerSqft(v float64) *BuyerNeedUpdate {
	_u.mutation.ResetMaxBudgetPerSqft()
	_u.mutation.SetMaxBudgetPerSqft(v)
	return _u
}

// SetNillableMaxBudgetPerSqft sets the "max_budget_per_sqft" field if the given value is not nil.
func (_u *BuyerNeedUpdate) SetNillableMaxBudgetPerSqft(v *float64) *BuyerNeedUpdate {
	if v != nil {
		_u.SetMaxBudgetPerSqft(*v)
	}
	return _u
}

// AddMaxBudgetPerSqft adds value to the "max_budget_per_sqft" field.
func (_u *BuyerNeedUpdate) AddMaxBudgetPerSqft(v float64) *BuyerNeedUpdate {
	_u.mutation.AddMaxBudgetPerSqft(v)
	return _u
}

// ClearMaxBudgetPerSqft clears the value of the "max_budget_per_sqft" field.
func (_u *BuyerNeedUpdate) ClearMaxBudgetPerSqft() *BuyerNeedUpdate {
	_u.mutation.ClearMaxBudgetPerSqft()
	return _u
}

// SetRequirements sets the "requirements" field.
func (_u *BuyerNeedUpdate) SetRequirements(v map[string]interface{}) *BuyerNeedUpdate {
	_u.mutation.SetRequirements(v)
	return _u
}

// ClearRequirements clears the value of the "requirements" field.
func (_u *BuyerNeedUpdate) ClearRequirements() *BuyerNeedUpdate {
	_u.mutation.ClearRequirements()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BuyerNeedUpdate) SetUpdatedAt(v time.Time) *BuyerNeedUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBuyer sets the "buyer" edge to the User entity.
func (_u *BuyerNeedUpdate) SetBuyer(v *User) *BuyerNeedUpdate {
	return _u.SetBuyerID(v.ID)
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *BuyerNeedUpdate) AddMatchIDs(ids ...string) *BuyerNeedUpdate {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *BuyerNeedUpdate) AddMatches(v ...*Match) *BuyerNeedUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// AddDlaTokenIDs adds the "dla_tokens" edge to the DLAToken entity by IDs.
func (_u *BuyerNeedUpdate) AddDlaTokenIDs(ids ...string) *BuyerNeedUpdate {
	_u.mutation.AddDlaTokenIDs(ids...)
	return _u
}

// AddDlaTokens adds the "dla_tokens" edges to the DLAToken entity.
func (_u *BuyerNeedUpdate) AddDlaTokens(v ...*DLAToken) *BuyerNeedUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDlaTokenIDs(ids...)
}

// Mutation returns the BuyerNeedMutation object of the builder.
func (_u *BuyerNeedUpdate) Mutation() *BuyerNeedMutation {
	return _u.mutation
}

// ClearBuyer clears the "buyer" edge to the User entity.
func (_u *BuyerNeedUpdate) ClearBuyer() *BuyerNeedUpdate {
	_u.mutation.ClearBuyer()
	return _u
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *BuyerNeedUpdate) ClearMatches() *BuyerNeedUpdate {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *BuyerNeedUpdate) RemoveMatchIDs(ids ...string) *BuyerNeedUpdate {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *BuyerNeedUpdate) RemoveMatches(v ...*Match) *BuyerNeedUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// ClearDlaTokens clears all "dla_tokens" edges to the DLAToken entity.
func (_u *BuyerNeedUpdate) ClearDlaTokens() *BuyerNeedUpdate {
	_u.mutation.ClearDlaTokens()
	return _u
}

// RemoveDlaTokenIDs removes the "dla_tokens" edge to DLAToken entities by IDs.
func (_u *BuyerNeedUpdate) RemoveDlaTokenIDs(ids ...string) *BuyerNeedUpdate {
	_u.mutation.RemoveDlaTokenIDs(ids...)
	return _u
}

// RemoveDlaTokens removes "dla_tokens" edges to DLAToken entities.
func (_u *BuyerNeedUpdate) RemoveDlaTokens(v ...*DLAToken) *BuyerNeedUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDlaTokenIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BuyerNeedUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuyerNeedUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BuyerNeedUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuyerNeedUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BuyerNeedUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := buyerneed.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BuyerNeedUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(buyerneed.Table, buyerneed.Columns, sqlgraph.NewFieldSpec(buyerneed.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(buyerneed.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(buyerneed.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(buyerneed.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(buyerneed.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(buyerneed.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(buyerneed.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(buyerneed.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(buyerneed.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(buyerneed.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(buyerneed.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RadiusMiles(); ok {
		_spec.SetField(buyerneed.FieldRadiusMiles, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRadiusMiles(); ok {
		_spec.AddField(buyerneed.FieldRadiusMiles, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MinSqft(); ok {
		_spec.SetField(buyerneed.FieldMinSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinSqft(); ok {
		_spec.AddField(buyerneed.FieldMinSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSqft(); ok {
		_spec.SetField(buyerneed.FieldMaxSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSqft(); ok {
		_spec.AddField(buyerneed.FieldMaxSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UseType(); ok {
		_spec.SetField(buyerneed.FieldUseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeededFrom(); ok {
		_spec.SetField(buyerneed.FieldNeededFrom, field.TypeTime, value)
	}
	if _u.mutation.NeededFromCleared() {
		_spec.ClearField(buyerneed.FieldNeededFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMonths(); ok {
		_spec.SetField(buyerneed.FieldDurationMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMonths(); ok {
		_spec.AddField(buyerneed.FieldDurationMonths, field.TypeInt, value)
	}
	if _u.mutation.DurationMonthsCleared() {
		_spec.ClearField(buyerneed.FieldDurationMonths, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxBudgetPerSqft(); ok {
		_spec.SetField(buyerneed.FieldMaxBudgetPerSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxBudgetPerSqft(); ok {
		_spec.AddField(buyerneed.FieldMaxBudgetPerSqft, field.TypeFloat64, value)
	}
	if _u.mutation.MaxBudgetPerSqftCleared() {
		_spec.ClearField(buyerneed.FieldMaxBudgetPerSqft, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Requirements(); ok {
		_spec.SetField(buyerneed.FieldRequirements, field.TypeJSON, value)
	}
	if _u.mutation.RequirementsCleared() {
		_spec.ClearField(buyerneed.FieldRequirements, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(buyerneed.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BuyerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   buyerneed.BuyerTable,
			Columns: []string{buyerneed.BuyerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   buyerneed.BuyerTable,
			Columns: []string{buyerneed.BuyerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buyerneed.MatchesTable,
			Columns: []string{buyerneed.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buyerneed.MatchesTable,
			Columns: []string{buyerneed.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buyerneed.MatchesTable,
			Columns: []string{buyerneed.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DlaTokensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buyerneed.DlaTokensTable,
			Columns: []string{buyerneed.DlaTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dlatoken.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDlaTokensIDs(); len(nodes) > 0 && !_u.mutation.DlaTokensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buyerneed.DlaTokensTable,
			Columns: []string{buyerneed.DlaTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dlatoken.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DlaTokensIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buyerneed.DlaTokensTable,
			Columns: []string{buyerneed.DlaTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dlatoken.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{buyerneed.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BuyerNeedUpdateOne is the builder for updating a single BuyerNeed entity.
type BuyerNeedUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BuyerNeedMutation
}

// SetBuyerID sets the "buyer_id" field.
func (_u *BuyerNeedUpdateOne) SetBuyerID(v string) *BuyerNeedUpdateOne {
	_u.mutation.SetBuyerID(v)
	return _u
}

// SetNillableBuyerID sets the "buyer_id" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillableBuyerID(v *string) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetBuyerID(*v)
	}
	return _u
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (_u *BuyerNeedUpdateOne) ClearBuyerID() *BuyerNeedUpdateOne {
	_u.mutation.ClearBuyerID()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *BuyerNeedUpdateOne) SetPhone(v string) *BuyerNeedUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillablePhone(v *string) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *BuyerNeedUpdateOne) ClearPhone() *BuyerNeedUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetCity sets the "city" field.
func (_u *BuyerNeedUpdateOne) SetCity(v string) *BuyerNeedUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillableCity(v *string) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *BuyerNeedUpdateOne) SetState(v string) *BuyerNeedUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillableState(v *string) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLat sets the "lat" field.
func (_u *BuyerNeedUpdateOne) SetLat(v float64) *BuyerNeedUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillableLat(v *float64) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *BuyerNeedUpdateOne) AddLat(v float64) *BuyerNeedUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *BuyerNeedUpdateOne) ClearLat() *BuyerNeedUpdateOne {
	_u.mutation.ClearLat()
	return _u
}

// SetLng sets the "lng" field.
func (_u *BuyerNeedUpdateOne) SetLng(v float64) *BuyerNeedUpdateOne {
	_u.mutation.ResetLng()
	_u.mutation.SetLng(v)
	return _u
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillableLng(v *float64) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetLng(*v)
	}
	return _u
}

// AddLng adds value to the "lng" field.
func (_u *BuyerNeedUpdateOne) AddLng(v float64) *BuyerNeedUpdateOne {
	_u.mutation.AddLng(v)
	return _u
}

// ClearLng clears the value of the "lng" field.
func (_u *BuyerNeedUpdateOne) ClearLng() *BuyerNeedUpdateOne {
	_u.mutation.ClearLng()
	return _u
}

// SetRadiusMiles sets the "radius_miles" field.
func (_u *BuyerNeedUpdateOne) SetRadiusMiles(v float64) *BuyerNeedUpdateOne {
	_u.mutation.ResetRadiusMiles()
	_u.mutation.SetRadiusMiles(v)
	return _u
}

// SetNillableRadiusMiles sets the "radius_miles" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillableRadiusMiles(v *float64) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetRadiusMiles(*v)
	}
	return _u
}

// AddRadiusMiles adds value to the "radius_miles" field.
func (_u *BuyerNeedUpdateOne) AddRadiusMiles(v float64) *BuyerNeedUpdateOne {
	_u.mutation.AddRadiusMiles(v)
	return _u
}

// SetMinSqft sets the "min_sqft" field.
func (_u *BuyerNeedUpdateOne) SetMinSqft(v int) *BuyerNeedUpdateOne {
	_u.mutation.ResetMinSqft()
	_u.mutation.SetMinSqft(v)
	return _u
}

// SetNillableMinSqft sets the "min_sqft" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillableMinSqft(v *int) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetMinSqft(*v)
	}
	return _u
}

// AddMinSqft adds value to the "min_sqft" field.
func (_u *BuyerNeedUpdateOne) AddMinSqft(v int) *BuyerNeedUpdateOne {
	_u.mutation.AddMinSqft(v)
	return _u
}

// SetMaxSqft sets the "max_sqft" field.
func (_u *BuyerNeedUpdateOne) SetMaxSqft(v int) *BuyerNeedUpdateOne {
	_u.mutation.ResetMaxSqft()
	_u.mutation.SetMaxSqft(v)
	return _u
}

// SetNillableMaxSqft sets the "max_sqft" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillableMaxSqft(v *int) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetMaxSqft(*v)
	}
	return _u
}

// AddMaxSqft adds value to the "max_sqft" field.
func (_u *BuyerNeedUpdateOne) AddMaxSqft(v int) *BuyerNeedUpdateOne {
	_u.mutation.AddMaxSqft(v)
	return _u
}

// SetUseType sets the "use_type" field.
func (_u *BuyerNeedUpdateOne) SetUseType(v string) *BuyerNeedUpdateOne {
	_u.mutation.SetUseType(v)
	return _u
}

// SetNillableUseType sets the "use_type" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillableUseType(v *string) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetUseType(*v)
	}
	return _u
}

// SetNeededFrom sets the "needed_from" field.
func (_u *BuyerNeedUpdateOne) SetNeededFrom(v time.Time) *BuyerNeedUpdateOne {
	_u.mutation.SetNeededFrom(v)
	return _u
}

// SetNillableNeededFrom sets the "needed_from" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillableNeededFrom(v *time.Time) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetNeededFrom(*v)
	}
	return _u
}

// ClearNeededFrom clears the value of the "needed_from" field.
func (_u *BuyerNeedUpdateOne) ClearNeededFrom() *BuyerNeedUpdateOne {
	_u.mutation.ClearNeededFrom()
	return _u
}

// SetDurationMonths sets the "duration_months" field.
func (_u *BuyerNeedUpdateOne) SetDurationMonths(v int) *BuyerNeedUpdateOne {
	_u.mutation.ResetDurationMonths()
	_u.mutation.SetDurationMonths(v)
	return _u
}

// SetNillableDurationMonths sets the "duration_months" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillableDurationMonths(v *int) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetDurationMonths(*v)
	}
	return _u
}

// AddDurationMonths adds value to the "duration_months" field.
func (_u *BuyerNeedUpdateOne) AddDurationMonths(v int) *BuyerNeedUpdateOne {
	_u.mutation.AddDurationMonths(v)
	return _u
}

// ClearDurationMonths clears the value of the "duration_months" field.
func (_u *BuyerNeedUpdateOne) ClearDurationMonths() *BuyerNeedUpdateOne {
	_u.mutation.ClearDurationMonths()
	return _u
}

// SetMaxBudgetPerSqft sets the "max_budget_per_sqft" field.
func (_u *BuyerNeedUpdateOne) SetMaxBudgetPerSqft(v float64) *BuyerNeedUpdateOne {
	_u.mutation.ResetMaxBudgetPerSqft()
	_u.mutation.SetMaxBudgetPerSqft(v)
	return _u
}

// SetNillableMaxBudgetPerSqft sets the "max_budget_per_sqft" field if the given value is not nil.
func (_u *BuyerNeedUpdateOne) SetNillableMaxBudgetPerSqft(v *float64) *BuyerNeedUpdateOne {
	if v != nil {
		_u.SetMaxBudgetPerSqft(*v)
	}
	return _u
}

// AddMaxBudgetPerSqft adds value to the "max_budget_per_sqft" field.
func (_u *BuyerNeedUpdateOne) AddMaxBudgetPerSqft(v float64) *BuyerNeedUpdateOne {
	_u.mutation.AddMaxBudgetPerSqft(v)
	return _u
}

// ClearMaxBudgetPerSqft clears the value of the "max_budget_per_sqft" field.
func (_u *BuyerNeedUpdateOne) ClearMaxBudgetPerSqft() *BuyerNeedUpdateOne {
	_u.mutation.ClearMaxBudgetPerSqft()
	return _u
}

// SetRequirements sets the "requirements" field.
func (_u *BuyerNeedUpdateOne) SetRequirements(v map[string]interface{}) *BuyerNeedUpdateOne {
	_u.mutation.SetRequirements(v)
	return _u
}

// ClearRequirements clears the value of the "requirements" field.
func (_u *BuyerNeedUpdateOne) ClearRequirements() *BuyerNeedUpdateOne {
	_u.mutation.ClearRequirements()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BuyerNeedUpdateOne) SetUpdatedAt(v time.Time) *BuyerNeedUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBuyer sets the "buyer" edge to the User entity.
func (_u *BuyerNeedUpdateOne) SetBuyer(v *User) *BuyerNeedUpdateOne {
	return _u.SetBuyerID(v.ID)
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *BuyerNeedUpdateOne) AddMatchIDs(ids ...string) *BuyerNeedUpdateOne {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *BuyerNeedUpdateOne) AddMatches(v ...*Match) *BuyerNeedUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// AddDlaTokenIDs adds the "dla_tokens" edge to the DLAToken entity by IDs.
func (_u *BuyerNeedUpdateOne) AddDlaTokenIDs(ids ...string) *BuyerNeedUpdateOne {
	_u.mutation.AddDlaTokenIDs(ids...)
	return _u
}

// AddDlaTokens adds the "dla_tokens" edges to the DLAToken entity.
func (_u *BuyerNeedUpdateOne) AddDlaTokens(v ...*DLAToken) *BuyerNeedUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDlaTokenIDs(ids...)
}

// Mutation returns the BuyerNeedMutation object of the builder.
func (_u *BuyerNeedUpdateOne) Mutation() *BuyerNeedMutation {
	return _u.mutation
}

// ClearBuyer clears the "buyer" edge to the User entity.
func (_u *BuyerNeedUpdateOne) ClearBuyer() *BuyerNeedUpdateOne {
	_u.mutation.ClearBuyer()
	return _u
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *BuyerNeedUpdateOne) ClearMatches() *BuyerNeedUpdateOne {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *BuyerNeedUpdateOne) RemoveMatchIDs(ids ...string) *BuyerNeedUpdateOne {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *BuyerNeedUpdateOne) RemoveMatches(v ...*Match) *BuyerNeedUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// ClearDlaTokens clears all "dla_tokens" edges to the DLAToken entity.
func (_u *BuyerNeedUpdateOne) ClearDlaTokens() *BuyerNeedUpdateOne {
	_u.mutation.ClearDlaTokens()
	return _u
}

// RemoveDlaTokenIDs removes the "dla_tokens" edge to DLAToken entities by IDs.
func (_u *BuyerNeedUpdateOne) RemoveDlaTokenIDs(ids ...string) *BuyerNeedUpdateOne {
	_u.mutation.RemoveDlaTokenIDs(ids...)
	return _u
}

// RemoveDlaTokens removes "dla_tokens" edges to DLAToken entities.
func (_u *BuyerNeedUpdateOne) RemoveDlaTokens(v ...*DLAToken) *BuyerNeedUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDlaTokenIDs(ids...)
}

// Where appends a list predicates to the BuyerNeedUpdate builder.
func (_u *BuyerNeedUpdateOne) Where(ps ...predicate.BuyerNeed) *BuyerNeedUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BuyerNeedUpdateOne) Select(field string, fields ...string) *BuyerNeedUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BuyerNeed entity.
func (_u *BuyerNeedUpdateOne) Save(ctx context.Context) (*BuyerNeed, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuyerNeedUpdateOne) SaveX(ctx context.Context) *BuyerNeed {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BuyerNeedUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuyerNeedUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BuyerNeedUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := buyerneed.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BuyerNeedUpdateOne) sqlSave(ctx context.Context) (_node *BuyerNeed, err error) {
	_spec := sqlgraph.NewUpdateSpec(buyerneed.Table, buyerneed.Columns, sqlgraph.NewFieldSpec(buyerneed.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BuyerNeed.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, buyerneed.FieldID)
		for _, f := range fields {
			if !buyerneed.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != buyerneed.FieldID {
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
		_spec.SetField(buyerneed.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(buyerneed.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(buyerneed.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(buyerneed.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(buyerneed.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(buyerneed.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(buyerneed.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lng(); ok {
		_spec.SetField(buyerneed.FieldLng, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLng(); ok {
		_spec.AddField(buyerneed.FieldLng, field.TypeFloat64, value)
	}
	if _u.mutation.LngCleared() {
		_spec.ClearField(buyerneed.FieldLng, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RadiusMiles(); ok {
		_spec.SetField(buyerneed.FieldRadiusMiles, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRadiusMiles(); ok {
		_spec.AddField(buyerneed.FieldRadiusMiles, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MinSqft(); ok {
		_spec.SetField(buyerneed.FieldMinSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinSqft(); ok {
		_spec.AddField(buyerneed.FieldMinSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSqft(); ok {
		_spec.SetField(buyerneed.FieldMaxSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSqft(); ok {
		_spec.AddField(buyerneed.FieldMaxSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UseType(); ok {
		_spec.SetField(buyerneed.FieldUseType, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeededFrom(); ok {
		_spec.SetField(buyerneed.FieldNeededFrom, field.TypeTime, value)
	}
	if _u.mutation.NeededFromCleared() {
		_spec.ClearField(buyerneed.FieldNeededFrom, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMonths(); ok {
		_spec.SetField(buyerneed.FieldDurationMonths, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMonths(); ok {
		_spec.AddField(buyerneed.FieldDurationMonths, field.TypeInt, value)
	}
	if _u.mutation.DurationMonthsCleared() {
		_spec.ClearField(buyerneed.FieldDurationMonths, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxBudgetPerSqft(); ok {
		_spec.SetField(buyerneed.FieldMaxBudgetPerSqft, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxBudgetPerSqft(); ok {
		_spec.AddField(buyerneed.FieldMaxBudgetPerSqft, field.TypeFloat64, value)
	}
	if _u.mutation.MaxBudgetPerSqftCleared() {
		_spec.ClearField(buyerneed.FieldMaxBudgetPerSqft, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Requirements(); ok {
		_spec.SetField(buyerneed.FieldRequirements, field.TypeJSON, value)
	}
	if _u.mutation.RequirementsCleared() {
		_spec.ClearField(buyerneed.FieldRequirements, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(buyerneed.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BuyerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   buyerneed.BuyerTable,
			Columns: []string{buyerneed.BuyerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BuyerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   buyerneed.BuyerTable,
			Columns: []string{buyerneed.BuyerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buyerneed.MatchesTable,
			Columns: []string{buyerneed.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buyerneed.MatchesTable,
			Columns: []string{buyerneed.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buyerneed.MatchesTable,
			Columns: []string{buyerneed.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DlaTokensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buyerneed.DlaTokensTable,
			Columns: []string{buyerneed.DlaTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dlatoken.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDlaTokensIDs(); len(nodes) > 0 && !_u.mutation.DlaTokensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buyerneed.DlaTokensTable,
			Columns: []string{buyerneed.DlaTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dlatoken.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DlaTokensIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   buyerneed.DlaTokensTable,
			Columns: []string{buyerneed.DlaTokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dlatoken.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BuyerNeed{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{buyerneed.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
