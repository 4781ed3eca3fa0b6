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
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/user"
)

// BuyerNeedCreate is the builder for creating a BuyerNeed entity.
type BuyerNeedCreate struct {
	config
	mutation *BuyerNeedMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBuyerID sets the "buyer_id" field.
func (_c *BuyerNeedCreate) SetBuyerID(v string) *BuyerNeedCreate {
	_c.mutation.SetBuyerID(v)
	return _c
}

// SetNillableBuyerID sets the "buyer_id" field if the given value is not nil.
func (_c *BuyerNeedCreate) SetNillableBuyerID(v *string) *BuyerNeedCreate {
	if v != nil {
		_c.SetBuyerID(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *BuyerNeedCreate) SetPhone(v string) *BuyerNeedCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *BuyerNeedCreate) SetNillablePhone(v *string) *BuyerNeedCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *BuyerNeedCreate) SetCity(v string) *BuyerNeedCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetState sets the "state" field.
func (_c *BuyerNeedCreate) SetState(v string) *BuyerNeedCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetLat sets the "lat" field.
func (_c *BuyerNeedCreate) SetLat(v float64) *BuyerNeedCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_c *BuyerNeedCreate) SetNillableLat(v *float64) *BuyerNeedCreate {
	if v != nil {
		_c.SetLat(*v)
	}
	return _c
}

// SetLng sets the "lng" field.
func (_c *BuyerNeedCreate) SetLng(v float64) *BuyerNeedCreate {
	_c.mutation.SetLng(v)
	return _c
}

// SetNillableLng sets the "lng" field if the given value is not nil.
func (_c *BuyerNeedCreate) SetNillableLng(v *float64) *BuyerNeedCreate {
	if v != nil {
		_c.SetLng(*v)
	}
	return _c
}

// SetRadiusMiles sets the "radius_miles" field.
func (_c *BuyerNeedCreate) SetRadiusMiles(v float64) *BuyerNeedCreate {
	_c.mutation.SetRadiusMiles(v)
	return _c
}

// SetNillableRadiusMiles sets the "radius_miles" field if the given value is not nil.
func (_c *BuyerNeedCreate) SetNillableRadiusMiles(v *float64) *BuyerNeedCreate {
	if v != nil {
		_c.SetRadiusMiles(*v)
	}
	return _c
}

// SetMinSqft sets the "min_sqft" field.
func (_c *BuyerNeedCreate) SetMinSqft(v int) *BuyerNeedCreate {
	_c.mutation.SetMinSqft(v)
	return _c
}

// SetMaxSqft sets the "max_sqft" field.
func (_c *BuyerNeedCreate) SetMaxSqft(v int) *BuyerNeedCreate {
	_c.mutation.SetMaxSqft(v)
	return _c
}

// SetUseType sets the "use_type" field.
func (_c *BuyerNeedCreate) SetUseType(v string) *BuyerNeedCreate {
	_c.mutation.SetUseType(v)
	return _c
}

// SetNeededFrom sets the "needed_from" field.
func (_c *BuyerNeedCreate) SetNeededFrom(v time.Time) *BuyerNeedCreate {
	_c.mutation.SetNeededFrom(v)
	return _c
}

// SetNillableNeededFrom sets the "needed_from" field if the given value is not nil.
func (_c *BuyerNeedCreate) SetNillableNeededFrom(v *time.Time) *BuyerNeedCreate {
	if v != nil {
		_c.SetNeededFrom(*v)
	}
	return _c
}

// SetDurationMonths sets the "duration_months" field.
func (_c *BuyerNeedCreate) SetDurationMonths(v int) *BuyerNeedCreate {
	_c.mutation.SetDurationMonths(v)
	return _c
}

// SetNillableDurationMonths sets the "duration_months" field if the given value is not nil.
func (_c *BuyerNeedCreate) SetNillableDurationMonths(v *int) *BuyerNeedCreate {
	if v != nil {
		_c.SetDurationMonths(*v)
	}
	return _c
}

// SetMaxBudgetPerSqft sets the "max_budget_per_sqft" field.
func (_c *BuyerNeedCreate) SetMaxBudgetPerSqft(v float64) *BuyerNeedCreate {
	_c.mutation.SetMaxBudgetPerSqft(v)
	return _c
}

// SetNillableMaxBudgetPerSqft sets the "max_budget_per_sqft" field if the given value is not nil.
func (_c *BuyerNeedCreate) SetNillableMaxBudgetPerSqft(v *float64) *BuyerNeedCreate {
	if v != nil {
		_c.SetMaxBudgetPerSqft(*v)
	}
	return _c
}

// SetRequirements sets the "requirements" field.
func (_c *BuyerNeedCreate) SetRequirements(v map[string]interface{}) *BuyerNeedCreate {
	_c.mutation.SetRequirements(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BuyerNeedCreate) SetCreatedAt(v time.Time) *BuyerNeedCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BuyerNeedCreate) SetNillableCreatedAt(v *time.Time) *BuyerNeedCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BuyerNeedCreate) SetUpdatedAt(v time.Time) *BuyerNeedCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BuyerNeedCreate) SetNillableUpdatedAt(v *time.Time) *BuyerNeedCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BuyerNeedCreate) SetID(v string) *BuyerNeedCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetBuyer sets the "buyer" edge to the User entity.
func (_c *BuyerNeedCreate) SetBuyer(v *User) *BuyerNeedCreate {
	return _c.SetBuyerID(v.ID)
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_c *BuyerNeedCreate) AddMatchIDs(ids ...string) *BuyerNeedCreate {
	_c.mutation.AddMatchIDs(ids...)
	return _c
}

// AddMatches adds the "matches" edges to the Match entity.
func (_c *BuyerNeedCreate) AddMatches(v ...*Match) *BuyerNeedCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMatchIDs(ids...)
}

// AddDlaTokenIDs adds the "dla_tokens" edge to the DLAToken entity by IDs.
func (_c *BuyerNeedCreate) AddDlaTokenIDs(ids ...string) *BuyerNeedCreate {
	_c.mutation.AddDlaTokenIDs(ids...)
	return _c
}

// AddDlaTokens adds the "dla_tokens" edges to the DLAToken entity.
func (_c *BuyerNeedCreate) AddDlaTokens(v ...*DLAToken) *BuyerNeedCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDlaTokenIDs(ids...)
}

// Mutation returns the BuyerNeedMutation object of the builder.
func (_c *BuyerNeedCreate) Mutation() *BuyerNeedMutation {
	return _c.mutation
}

// Save creates the BuyerNeed in the database.
func (_c *BuyerNeedCreate) Save(ctx context.Context) (*BuyerNeed, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BuyerNeedCreate) SaveX(ctx context.Context) *BuyerNeed {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuyerNeedCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuyerNeedCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BuyerNeedCreate) defaults() {
	if _, ok := _c.mutation.RadiusMiles(); !ok {
		v := buyerneed.DefaultRadiusMiles
		_c.mutation.SetRadiusMiles(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := buyerneed.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := buyerneed.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BuyerNeedCreate) check() error {
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "BuyerNeed.city"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "BuyerNeed.state"`)}
	}
	if _, ok := _c.mutation.RadiusMiles(); !ok {
		return &ValidationError{Name: "radius_miles", err: errors.New(`ent: missing required field "BuyerNeed.radius_miles"`)}
	}
	if _, ok := _c.mutation.MinSqft(); !ok {
		return &ValidationError{Name: "min_sqft", err: errors.New(`ent: missing required field "BuyerNeed.min_sqft"`)}
	}
	if _, ok := _c.mutation.MaxSqft(); !ok {
		return &ValidationError{Name: "max_sqft", err: errors.New(`ent: missing required field "BuyerNeed.max_sqft"`)}
	}
	if _, ok := _c.mutation.UseType(); !ok {
		return &ValidationError{Name: "use_type", err: errors.New(`ent: missing required field "BuyerNeed.use_type"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BuyerNeed.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BuyerNeed.updated_at"`)}
	}
	return nil
}

func (_c *BuyerNeedCreate) sqlSave(ctx context.Context) (*BuyerNeed, error) {
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
			return nil, fmt.Errorf("unexpected BuyerNeed.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BuyerNeedCreate) createSpec() (*BuyerNeed, *sqlgraph.CreateSpec) {
	var (
		_node = &BuyerNeed{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(buyerneed.Table, sqlgraph.NewFieldSpec(buyerneed.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(buyerneed.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(buyerneed.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(buyerneed.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(buyerneed.FieldLat, field.TypeFloat64, value)
		_node.Lat = &value
	}
	if value, ok := _c.mutation.Lng(); ok {
		_spec.SetField(buyerneed.FieldLng, field.TypeFloat64, value)
		_node.Lng = &value
	}
	if value, ok := _c.mutation.RadiusMiles(); ok {
		_spec.SetField(buyerneed.FieldRadiusMiles, field.TypeFloat64, value)
		_node.RadiusMiles = value
	}
	if value, ok := _c.mutation.MinSqft(); ok {
		_spec.SetField(buyerneed.FieldMinSqft, field.TypeInt, value)
		_node.MinSqft = value
	}
	if value, ok := _c.mutation.MaxSqft(); ok {
		_spec.SetField(buyerneed.FieldMaxSqft, field.TypeInt, value)
		_node.MaxSqft = value
	}
	if value, ok := _c.mutation.UseType(); ok {
		_spec.SetField(buyerneed.FieldUseType, field.TypeString, value)
		_node.UseType = value
	}
	if value, ok := _c.mutation.NeededFrom(); ok {
		_spec.SetField(buyerneed.FieldNeededFrom, field.TypeTime, value)
		_node.NeededFrom = &value
	}
	if value, ok := _c.mutation.DurationMonths(); ok {
		_spec.SetField(buyerneed.FieldDurationMonths, field.TypeInt, value)
		_node.DurationMonths = value
	}
	if value, ok := _c.mutation.MaxBudgetPerSqft(); ok {
		_spec.SetField(buyerneed.FieldMaxBudgetPerSqft, field.TypeFloat64, value)
		_node.MaxBudgetPerSqft = &value
	}
	if value, ok := _c.mutation.Requirements(); ok {
		_spec.SetField(buyerneed.FieldRequirements, field.TypeJSON, value)
		_node.Requirements = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(buyerneed.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(buyerneed.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BuyerIDs(); len(nodes) > 0 {
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
		_node.BuyerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DlaTokensIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BuyerNeed.Create().
//		SetBuyerID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuyerNeedUpsert) {
//			SetBuyerID(v+v).
//		}).
//		Exec(ctx)
func (_c *BuyerNeedCreate) OnConflict(opts ...sql.ConflictOption) *BuyerNeedUpsertOne {
	_c.conflict = opts
	return &BuyerNeedUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BuyerNeed.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuyerNeedCreate) OnConflictColumns(columns ...string) *BuyerNeedUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuyerNeedUpsertOne{
		create: _c,
	}
}

type (
	// BuyerNeedUpsertOne is the builder for "upsert"-ing
	//  one BuyerNeed node.
	BuyerNeedUpsertOne struct {
		create *BuyerNeedCreate
	}

	// BuyerNeedUpsert is the "OnConflict" setter.
	BuyerNeedUpsert struct {
		*sql.UpdateSet
	}
)

// SetBuyerID sets the "buyer_id" field.
func (u *BuyerNeedUpsert) SetBuyerID(v string) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldBuyerID, v)
	return u
}

// UpdateBuyerID sets the "buyer_id" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateBuyerID() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldBuyerID)
	return u
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (u *BuyerNeedUpsert) ClearBuyerID() *BuyerNeedUpsert {
	u.SetNull(buyerneed.FieldBuyerID)
	return u
}

// SetPhone sets the "phone" field.
func (u *BuyerNeedUpsert) SetPhone(v string) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdatePhone() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *BuyerNeedUpsert) ClearPhone() *BuyerNeedUpsert {
	u.SetNull(buyerneed.FieldPhone)
	return u
}

// SetCity sets the "city" field.
func (u *BuyerNeedUpsert) SetCity(v string) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldCity, v)
	return u
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateCity() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldCity)
	return u
}

// SetState sets the "state" field.
func (u *BuyerNeedUpsert) SetState(v string) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateState() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldState)
	return u
}

// SetLat sets the "lat" field.
func (u *BuyerNeedUpsert) SetLat(v float64) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldLat, v)
	return u
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateLat() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldLat)
	return u
}

// AddLat adds v to the "lat" field.
func (u *BuyerNeedUpsert) AddLat(v float64) *BuyerNeedUpsert {
	u.Add(buyerneed.FieldLat, v)
	return u
}

// ClearLat clears the value of the "lat" field.
func (u *BuyerNeedUpsert) ClearLat() *BuyerNeedUpsert {
	u.SetNull(buyerneed.FieldLat)
	return u
}

// SetLng sets the "lng" field.
func (u *BuyerNeedUpsert) SetLng(v float64) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldLng, v)
	return u
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateLng() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldLng)
	return u
}

// AddLng adds v to the "lng" field.
func (u *BuyerNeedUpsert) AddLng(v float64) *BuyerNeedUpsert {
	u.Add(buyerneed.FieldLng, v)
	return u
}

// ClearLng clears the value of the "lng" field.
func (u *BuyerNeedUpsert) ClearLng() *BuyerNeedUpsert {
	u.SetNull(buyerneed.FieldLng)
	return u
}

// SetRadiusMiles sets the "radius_miles" field.
func (u *BuyerNeedUpsert) SetRadiusMiles(v float64) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldRadiusMiles, v)
	return u
}

// UpdateRadiusMiles sets the "radius_miles" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateRadiusMiles() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldRadiusMiles)
	return u
}

// AddRadiusMiles adds v to the "radius_miles" field.
func (u *BuyerNeedUpsert) AddRadiusMiles(v float64) *BuyerNeedUpsert {
	u.Add(buyerneed.FieldRadiusMiles, v)
	return u
}

// SetMinSqft sets the "min_sqft" field.
func (u *BuyerNeedUpsert) SetMinSqft(v int) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldMinSqft, v)
	return u
}

// UpdateMinSqft sets the "min_sqft" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateMinSqft() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldMinSqft)
	return u
}

// AddMinSqft adds v to the "min_sqft" field.
func (u *BuyerNeedUpsert) AddMinSqft(v int) *BuyerNeedUpsert {
	u.Add(buyerneed.FieldMinSqft, v)
	return u
}

// SetMaxSqft sets the "max_sqft" field.
func (u *BuyerNeedUpsert) SetMaxSqft(v int) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldMaxSqft, v)
	return u
}

// UpdateMaxSqft sets the "max_sqft" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateMaxSqft() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldMaxSqft)
	return u
}

// AddMaxSqft adds v to the "max_sqft" field.
func (u *BuyerNeedUpsert) AddMaxSqft(v int) *BuyerNeedUpsert {
	u.Add(buyerneed.FieldMaxSqft, v)
	return u
}

// SetUseType sets the "use_type" field.
func (u *BuyerNeedUpsert) SetUseType(v string) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldUseType, v)
	return u
}

// UpdateUseType sets the "use_type" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateUseType() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldUseType)
	return u
}

// SetNeededFrom sets the "needed_from" field.
func (u *BuyerNeedUpsert) SetNeededFrom(v time.Time) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldNeededFrom, v)
	return u
}

// UpdateNeededFrom sets the "needed_from" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateNeededFrom() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldNeededFrom)
	return u
}

// ClearNeededFrom clears the value of the "needed_from" field.
func (u *BuyerNeedUpsert) ClearNeededFrom() *BuyerNeedUpsert {
	u.SetNull(buyerneed.FieldNeededFrom)
	return u
}

// SetDurationMonths sets the "duration_months" field.
func (u *BuyerNeedUpsert) SetDurationMonths(v int) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldDurationMonths, v)
	return u
}

// UpdateDurationMonths sets the "duration_months" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateDurationMonths() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldDurationMonths)
	return u
}

// AddDurationMonths adds v to the "duration_months" field.
func (u *BuyerNeedUpsert) AddDurationMonths(v int) *BuyerNeedUpsert {
	u.Add(buyerneed.FieldDurationMonths, v)
	return u
}

// ClearDurationMonths clears the value of the "duration_months" field.
func (u *BuyerNeedUpsert) ClearDurationMonths() *BuyerNeedUpsert {
	u.SetNull(buyerneed.FieldDurationMonths)
	return u
}

// SetMaxBudgetPerSqft sets the "max_budget_per_sqft" field.
func (u *BuyerNeedUpsert) SetMaxBudgetPerSqft(v float64) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldMaxBudgetPerSqft, v)
	return u
}

// UpdateMaxBudgetPerSqft sets the "max_budget_per_sqft" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateMaxBudgetPerSqft() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldMaxBudgetPerSqft)
	return u
}

// AddMaxBudgetPerSqft adds v to the "max_budget_per_sqft" field.
func (u *BuyerNeedUpsert) AddMaxBudgetPerSqft(v float64) *BuyerNeedUpsert {
	u.Add(buyerneed.FieldMaxBudgetPerSqft, v)
	return u
}

// ClearMaxBudgetPerSqft clears the value of the "max_budget_per_sqft" field.
func (u *BuyerNeedUpsert) ClearMaxBudgetPerSqft() *BuyerNeedUpsert {
	u.SetNull(buyerneed.FieldMaxBudgetPerSqft)
	return u
}

// SetRequirements sets the "requirements" field.
func (u *BuyerNeedUpsert) SetRequirements(v map[string]interface{}) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldRequirements, v)
	return u
}

// UpdateRequirements sets the "requirements" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateRequirements() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldRequirements)
	return u
}

// ClearRequirements clears the value of the "requirements" field.
func (u *BuyerNeedUpsert) ClearRequirements() *BuyerNeedUpsert {
	u.SetNull(buyerneed.FieldRequirements)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BuyerNeedUpsert) SetUpdatedAt(v time.Time) *BuyerNeedUpsert {
	u.Set(buyerneed.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BuyerNeedUpsert) UpdateUpdatedAt() *BuyerNeedUpsert {
	u.SetExcluded(buyerneed.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BuyerNeed.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(buyerneed.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuyerNeedUpsertOne) UpdateNewValues() *BuyerNeedUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(buyerneed.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(buyerneed.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BuyerNeed.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BuyerNeedUpsertOne) Ignore() *BuyerNeedUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuyerNeedUpsertOne) DoNothing() *BuyerNeedUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuyerNeedCreate.OnConflict
// documentation for more info.
func (u *BuyerNeedUpsertOne) Update(set func(*BuyerNeedUpsert)) *BuyerNeedUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuyerNeedUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuyerID sets the "buyer_id" field.
func (u *BuyerNeedUpsertOne) SetBuyerID(v string) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetBuyerID(v)
	})
}

// UpdateBuyerID sets the "buyer_id" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateBuyerID() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateBuyerID()
	})
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (u *BuyerNeedUpsertOne) ClearBuyerID() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearBuyerID()
	})
}

// SetPhone sets the "phone" field.
func (u *BuyerNeedUpsertOne) SetPhone(v string) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdatePhone() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *BuyerNeedUpsertOne) ClearPhone() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearPhone()
	})
}

// SetCity sets the "city" field.
func (u *BuyerNeedUpsertOne) SetCity(v string) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateCity() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateCity()
	})
}

// SetState sets the "state" field.
func (u *BuyerNeedUpsertOne) SetState(v string) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateState() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateState()
	})
}

// SetLat sets the "lat" field.
func (u *BuyerNeedUpsertOne) SetLat(v float64) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *BuyerNeedUpsertOne) AddLat(v float64) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateLat() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *BuyerNeedUpsertOne) ClearLat() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearLat()
	})
}

// SetLng sets the "lng" field.
func (u *BuyerNeedUpsertOne) SetLng(v float64) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetLng(v)
	})
}

// AddLng adds v to the "lng" field.
func (u *BuyerNeedUpsertOne) AddLng(v float64) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddLng(v)
	})
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateLng() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateLng()
	})
}

// ClearLng clears the value of the "lng" field.
func (u *BuyerNeedUpsertOne) ClearLng() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearLng()
	})
}

// SetRadiusMiles sets the "radius_miles" field.
func (u *BuyerNeedUpsertOne) SetRadiusMiles(v float64) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetRadiusMiles(v)
	})
}

// AddRadiusMiles adds v to the "radius_miles" field.
func (u *BuyerNeedUpsertOne) AddRadiusMiles(v float64) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddRadiusMiles(v)
	})
}

// UpdateRadiusMiles sets the "radius_miles" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateRadiusMiles() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateRadiusMiles()
	})
}

// SetMinSqft sets the "min_sqft" field.
func (u *BuyerNeedUpsertOne) SetMinSqft(v int) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetMinSqft(v)
	})
}

// AddMinSqft adds v to the "min_sqft" field.
func (u *BuyerNeedUpsertOne) AddMinSqft(v int) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddMinSqft(v)
	})
}

// UpdateMinSqft sets the "min_sqft" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateMinSqft() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateMinSqft()
	})
}

// SetMaxSqft sets the "max_sqft" field.
func (u *BuyerNeedUpsertOne) SetMaxSqft(v int) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetMaxSqft(v)
	})
}

// AddMaxSqft adds v to the "max_sqft" field.
func (u *BuyerNeedUpsertOne) AddMaxSqft(v int) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddMaxSqft(v)
	})
}

// UpdateMaxSqft sets the "max_sqft" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateMaxSqft() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateMaxSqft()
	})
}

// SetUseType sets the "use_type" field.
func (u *BuyerNeedUpsertOne) SetUseType(v string) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetUseType(v)
	})
}

// UpdateUseType sets the "use_type" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateUseType() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateUseType()
	})
}

// SetNeededFrom sets the "needed_from" field.
func (u *BuyerNeedUpsertOne) SetNeededFrom(v time.Time) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetNeededFrom(v)
	})
}

// UpdateNeededFrom sets the "needed_from" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateNeededFrom() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateNeededFrom()
	})
}

// ClearNeededFrom clears the value of the "needed_from" field.
func (u *BuyerNeedUpsertOne) ClearNeededFrom() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearNeededFrom()
	})
}

// SetDurationMonths sets the "duration_months" field.
func (u *BuyerNeedUpsertOne) SetDurationMonths(v int) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetDurationMonths(v)
	})
}

// AddDurationMonths adds v to the "duration_months" field.
func (u *BuyerNeedUpsertOne) AddDurationMonths(v int) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddDurationMonths(v)
	})
}

// UpdateDurationMonths sets the "duration_months" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateDurationMonths() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateDurationMonths()
	})
}

// ClearDurationMonths clears the value of the "duration_months" field.
func (u *BuyerNeedUpsertOne) ClearDurationMonths() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearDurationMonths()
	})
}

// SetMaxBudgetPerSqft sets the "max_budget_per_sqft" field.
func (u *BuyerNeedUpsertOne) SetMaxBudgetPerSqft(v float64) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetMaxBudgetPerSqft(v)
	})
}

// AddMaxBudgetPerSqft adds v to the "max_budget_per_sqft" field.
func (u *BuyerNeedUpsertOne) AddMaxBudgetPerSqft(v float64) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddMaxBudgetPerSqft(v)
	})
}

// UpdateMaxBudgetPerSqft sets the "max_budget_per_sqft" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateMaxBudgetPerSqft() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateMaxBudgetPerSqft()
	})
}

// ClearMaxBudgetPerSqft clears the value of the "max_budget_per_sqft" field.
func (u *BuyerNeedUpsertOne) ClearMaxBudgetPerSqft() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearMaxBudgetPerSqft()
	})
}

// SetRequirements sets the "requirements" field.
func (u *BuyerNeedUpsertOne) SetRequirements(v map[string]interface{}) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetRequirements(v)
	})
}

// UpdateRequirements sets the "requirements" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateRequirements() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateRequirements()
	})
}

// ClearRequirements clears the value of the "requirements" field.
func (u *BuyerNeedUpsertOne) ClearRequirements() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearRequirements()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BuyerNeedUpsertOne) SetUpdatedAt(v time.Time) *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BuyerNeedUpsertOne) UpdateUpdatedAt() *BuyerNeedUpsertOne {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BuyerNeedUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuyerNeedCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuyerNeedUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BuyerNeedUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BuyerNeedUpsertOne.ID is not supported by MySQL driver. Use BuyerNeedUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BuyerNeedUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BuyerNeedCreateBulk is the builder for creating many BuyerNeed entities in bulk.
type BuyerNeedCreateBulk struct {
	config
	err      error
	builders []*BuyerNeedCreate
	conflict []sql.ConflictOption
}

// Save creates the BuyerNeed entities in the database.
func (_c *BuyerNeedCreateBulk) Save(ctx context.Context) ([]*BuyerNeed, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BuyerNeed, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BuyerNeedMutation)
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
func (_c *BuyerNeedCreateBulk) SaveX(ctx context.Context) []*BuyerNeed {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuyerNeedCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuyerNeedCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BuyerNeed.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuyerNeedUpsert) {
//			SetBuyerID(v+v).
//		}).
//		Exec(ctx)
func (_c *BuyerNeedCreateBulk) OnConflict(opts ...sql.ConflictOption) *BuyerNeedUpsertBulk {
	_c.conflict = opts
	return &BuyerNeedUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BuyerNeed.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuyerNeedCreateBulk) OnConflictColumns(columns ...string) *BuyerNeedUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuyerNeedUpsertBulk{
		create: _c,
	}
}

// BuyerNeedUpsertBulk is the builder for "upsert"-ing
// a bulk of BuyerNeed nodes.
type BuyerNeedUpsertBulk struct {
	create *BuyerNeedCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BuyerNeed.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(buyerneed.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuyerNeedUpsertBulk) UpdateNewValues() *BuyerNeedUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(buyerneed.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(buyerneed.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BuyerNeed.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BuyerNeedUpsertBulk) Ignore() *BuyerNeedUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuyerNeedUpsertBulk) DoNothing() *BuyerNeedUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuyerNeedCreateBulk.OnConflict
// documentation for more info.
func (u *BuyerNeedUpsertBulk) Update(set func(*BuyerNeedUpsert)) *BuyerNeedUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuyerNeedUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuyerID sets the "buyer_id" field.
func (u *BuyerNeedUpsertBulk) SetBuyerID(v string) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetBuyerID(v)
	})
}

// UpdateBuyerID sets the "buyer_id" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateBuyerID() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateBuyerID()
	})
}

// ClearBuyerID clears the value of the "buyer_id" field.
func (u *BuyerNeedUpsertBulk) ClearBuyerID() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearBuyerID()
	})
}

// SetPhone sets the "phone" field.
func (u *BuyerNeedUpsertBulk) SetPhone(v string) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdatePhone() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *BuyerNeedUpsertBulk) ClearPhone() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearPhone()
	})
}

// SetCity sets the "city" field.
func (u *BuyerNeedUpsertBulk) SetCity(v string) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetCity(v)
	})
}

// UpdateCity sets the "city" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateCity() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateCity()
	})
}

// SetState sets the "state" field.
func (u *BuyerNeedUpsertBulk) SetState(v string) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateState() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateState()
	})
}

// SetLat sets the "lat" field.
func (u *BuyerNeedUpsertBulk) SetLat(v float64) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetLat(v)
	})
}

// AddLat adds v to the "lat" field.
func (u *BuyerNeedUpsertBulk) AddLat(v float64) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddLat(v)
	})
}

// UpdateLat sets the "lat" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateLat() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateLat()
	})
}

// ClearLat clears the value of the "lat" field.
func (u *BuyerNeedUpsertBulk) ClearLat() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearLat()
	})
}

// SetLng sets the "lng" field.
func (u *BuyerNeedUpsertBulk) SetLng(v float64) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetLng(v)
	})
}

// AddLng adds v to the "lng" field.
func (u *BuyerNeedUpsertBulk) AddLng(v float64) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddLng(v)
	})
}

// UpdateLng sets the "lng" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateLng() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateLng()
	})
}

// ClearLng clears the value of the "lng" field.
func (u *BuyerNeedUpsertBulk) ClearLng() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearLng()
	})
}

// SetRadiusMiles sets the "radius_miles" field.
func (u *BuyerNeedUpsertBulk) SetRadiusMiles(v float64) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetRadiusMiles(v)
	})
}

// AddRadiusMiles adds v to the "radius_miles" field.
func (u *BuyerNeedUpsertBulk) AddRadiusMiles(v float64) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddRadiusMiles(v)
	})
}

// UpdateRadiusMiles sets the "radius_miles" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateRadiusMiles() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateRadiusMiles()
	})
}

// SetMinSqft sets the "min_sqft" field.
func (u *BuyerNeedUpsertBulk) SetMinSqft(v int) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetMinSqft(v)
	})
}

// AddMinSqft adds v to the "min_sqft" field.
func (u *BuyerNeedUpsertBulk) AddMinSqft(v int) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddMinSqft(v)
	})
}

// UpdateMinSqft sets the "min_sqft" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateMinSqft() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateMinSqft()
	})
}

// SetMaxSqft sets the "max_sqft" field.
func (u *BuyerNeedUpsertBulk) SetMaxSqft(v int) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetMaxSqft(v)
	})
}

// AddMaxSqft adds v to the "max_sqft" field.
func (u *BuyerNeedUpsertBulk) AddMaxSqft(v int) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddMaxSqft(v)
	})
}

// UpdateMaxSqft sets the "max_sqft" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateMaxSqft() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateMaxSqft()
	})
}

// SetUseType sets the "use_type" field.
func (u *BuyerNeedUpsertBulk) SetUseType(v string) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetUseType(v)
	})
}

// UpdateUseType sets the "use_type" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateUseType() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateUseType()
	})
}

// SetNeededFrom sets the "needed_from" field.
func (u *BuyerNeedUpsertBulk) SetNeededFrom(v time.Time) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetNeededFrom(v)
	})
}

// UpdateNeededFrom sets the "needed_from" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateNeededFrom() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateNeededFrom()
	})
}

// ClearNeededFrom clears the value of the "needed_from" field.
func (u *BuyerNeedUpsertBulk) ClearNeededFrom() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearNeededFrom()
	})
}

// SetDurationMonths sets the "duration_months" field.
func (u *BuyerNeedUpsertBulk) SetDurationMonths(v int) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetDurationMonths(v)
	})
}

// AddDurationMonths adds v to the "duration_months" field.
func (u *BuyerNeedUpsertBulk) AddDurationMonths(v int) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddDurationMonths(v)
	})
}

// UpdateDurationMonths sets the "duration_months" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateDurationMonths() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateDurationMonths()
	})
}

// ClearDurationMonths clears the value of the "duration_months" field.
func (u *BuyerNeedUpsertBulk) ClearDurationMonths() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearDurationMonths()
	})
}

// SetMaxBudgetPerSqft sets the "max_budget_per_sqft" field.
func (u *BuyerNeedUpsertBulk) SetMaxBudgetPerSqft(v float64) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetMaxBudgetPerSqft(v)
	})
}

// AddMaxBudgetPerSqft adds v to the "max_budget_per_sqft" field.
func (u *BuyerNeedUpsertBulk) AddMaxBudgetPerSqft(v float64) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.AddMaxBudgetPerSqft(v)
	})
}

// UpdateMaxBudgetPerSqft sets the "max_budget_per_sqft" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateMaxBudgetPerSqft() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateMaxBudgetPerSqft()
	})
}

// ClearMaxBudgetPerSqft clears the value of the "max_budget_per_sqft" field.
func (u *BuyerNeedUpsertBulk) ClearMaxBudgetPerSqft() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearMaxBudgetPerSqft()
	})
}

// SetRequirements sets the "requirements" field.
func (u *BuyerNeedUpsertBulk) SetRequirements(v map[string]interface{}) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetRequirements(v)
	})
}

// UpdateRequirements sets the "requirements" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateRequirements() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateRequirements()
	})
}

// ClearRequirements clears the value of the "requirements" field.
func (u *BuyerNeedUpsertBulk) ClearRequirements() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.ClearRequirements()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BuyerNeedUpsertBulk) SetUpdatedAt(v time.Time) *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BuyerNeedUpsertBulk) UpdateUpdatedAt() *BuyerNeedUpsertBulk {
	return u.Update(func(s *BuyerNeedUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BuyerNeedUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BuyerNeedCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuyerNeedCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuyerNeedUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
