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
	"github.com/warehouse-exchange/wex/ent/instantbookscore"
	"github.com/warehouse-exchange/wex/ent/match"
)

// InstantBookScoreCreate is the builder for creating a InstantBookScore entity.
type InstantBookScoreCreate struct {
	config
	mutation *InstantBookScoreMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMatchID sets the "match_id" field.
func (_c *InstantBookScoreCreate) SetMatchID(v string) *InstantBookScoreCreate {
	_c.mutation.SetMatchID(v)
	return _c
}

// SetTruthCoreCompleteness sets the "truth_core_completeness" field.
func (_c *InstantBookScoreCreate) SetTruthCoreCompleteness(v float64) *InstantBookScoreCreate {
	_c.mutation.SetTruthCoreCompleteness(v)
	return _c
}

// SetContextualMemoryDepth sets the "contextual_memory_depth" field.
func (_c *InstantBookScoreCreate) SetContextualMemoryDepth(v float64) *InstantBookScoreCreate {
	_c.mutation.SetContextualMemoryDepth(v)
	return _c
}

// SetSupplierTrustLevel sets the "supplier_trust_level" field.
func (_c *InstantBookScoreCreate) SetSupplierTrustLevel(v float64) *InstantBookScoreCreate {
	_c.mutation.SetSupplierTrustLevel(v)
	return _c
}

// SetMatchSpecificity sets the "match_specificity" field.
func (_c *InstantBookScoreCreate) SetMatchSpecificity(v float64) *InstantBookScoreCreate {
	_c.mutation.SetMatchSpecificity(v)
	return _c
}

// SetFeatureAlignment sets the "feature_alignment" field.
func (_c *InstantBookScoreCreate) SetFeatureAlignment(v float64) *InstantBookScoreCreate {
	_c.mutation.SetFeatureAlignment(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *InstantBookScoreCreate) SetTotal(v float64) *InstantBookScoreCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InstantBookScoreCreate) SetCreatedAt(v time.Time) *InstantBookScoreCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InstantBookScoreCreate) SetNillableCreatedAt(v *time.Time) *InstantBookScoreCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InstantBookScoreCreate) SetID(v string) *InstantBookScoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetMatch sets the "match" edge to the Match entity.
func (_c *InstantBookScoreCreate) SetMatch(v *Match) *InstantBookScoreCreate {
	return _c.SetMatchID(v.ID)
}

// Mutation returns the InstantBookScoreMutation object of the builder.
func (_c *InstantBookScoreCreate) Mutation() *InstantBookScoreMutation {
	return _c.mutation
}

// Save creates the InstantBookScore in the database.
func (_c *InstantBookScoreCreate) Save(ctx context.Context) (*InstantBookScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InstantBookScoreCreate) SaveX(ctx context.Context) *InstantBookScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstantBookScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstantBookScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InstantBookScoreCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := instantbookscore.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InstantBookScoreCreate) check() error {
	if _, ok := _c.mutation.MatchID(); !ok {
		return &ValidationError{Name: "match_id", err: errors.New(`ent: missing required field "InstantBookScore.match_id"`)}
	}
	if _, ok := _c.mutation.TruthCoreCompleteness(); !ok {
		return &ValidationError{Name: "truth_core_completeness", err: errors.New(`ent: missing required field "InstantBookScore.truth_core_completeness"`)}
	}
	if _, ok := _c.mutation.ContextualMemoryDepth(); !ok {
		return &ValidationError{Name: "contextual_memory_depth", err: errors.New(`ent: missing required field "InstantBookScore.contextual_memory_depth"`)}
	}
	if _, ok := _c.mutation.SupplierTrustLevel(); !ok {
		return &ValidationError{Name: "supplier_trust_level", err: errors.New(`ent: missing required field "InstantBookScore.supplier_trust_level"`)}
	}
	if _, ok := _c.mutation.MatchSpecificity(); !ok {
		return &ValidationError{Name: "match_specificity", err: errors.New(`ent: missing required field "InstantBookScore.match_specificity"`)}
	}
	if _, ok := _c.mutation.FeatureAlignment(); !ok {
		return &ValidationError{Name: "feature_alignment", err: errors.New(`ent: missing required field "InstantBookScore.feature_alignment"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "InstantBookScore.total"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InstantBookScore.created_at"`)}
	}
	if len(_c.mutation.MatchIDs()) == 0 {
		return &ValidationError{Name: "match", err: errors.New(`ent: missing required edge "InstantBookScore.match"`)}
	}
	return nil
}

func (_c *InstantBookScoreCreate) sqlSave(ctx context.Context) (*InstantBookScore, error) {
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
			return nil, fmt.Errorf("unexpected InstantBookScore.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InstantBookScoreCreate) createSpec() (*InstantBookScore, *sqlgraph.CreateSpec) {
	var (
		_node = &InstantBookScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(instantbookscore.Table, sqlgraph.NewFieldSpec(instantbookscore.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TruthCoreCompleteness(); ok {
		_spec.SetField(instantbookscore.FieldTruthCoreCompleteness, field.TypeFloat64, value)
		_node.TruthCoreCompleteness = value
	}
	if value, ok := _c.mutation.ContextualMemoryDepth(); ok {
		_spec.SetField(instantbookscore.FieldContextualMemoryDepth, field.TypeFloat64, value)
		_node.ContextualMemoryDepth = value
	}
	if value, ok := _c.mutation.SupplierTrustLevel(); ok {
		_spec.SetField(instantbookscore.FieldSupplierTrustLevel, field.TypeFloat64, value)
		_node.SupplierTrustLevel = value
	}
	if value, ok := _c.mutation.MatchSpecificity(); ok {
		_spec.SetField(instantbookscore.FieldMatchSpecificity, field.TypeFloat64, value)
		_node.MatchSpecificity = value
	}
	if value, ok := _c.mutation.FeatureAlignment(); ok {
		_spec.SetField(instantbookscore.FieldFeatureAlignment, field.TypeFloat64, value)
		_node.FeatureAlignment = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(instantbookscore.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(instantbookscore.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.MatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   instantbookscore.MatchTable,
			Columns: []string{instantbookscore.MatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MatchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InstantBookScore.Create().
//		SetMatchID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InstantBookScoreUpsert) {
//			SetMatchID(v+v).
//		}).
//		Exec(ctx)
func (_c *InstantBookScoreCreate) OnConflict(opts ...sql.ConflictOption) *InstantBookScoreUpsertOne {
	_c.conflict = opts
	return &InstantBookScoreUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InstantBookScore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InstantBookScoreCreate) OnConflictColumns(columns ...string) *InstantBookScoreUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InstantBookScoreUpsertOne{
		create: _c,
	}
}

type (
	// InstantBookScoreUpsertOne is the builder for "upsert"-ing
	//  one InstantBookScore node.
	InstantBookScoreUpsertOne struct {
		create *InstantBookScoreCreate
	}

	// InstantBookScoreUpsert is the "OnConflict" setter.
	InstantBookScoreUpsert struct {
		*sql.UpdateSet
	}
)

// SetMatchID sets the "match_id" field.
func (u *InstantBookScoreUpsert) SetMatchID(v string) *InstantBookScoreUpsert {
	u.Set(instantbookscore.FieldMatchID, v)
	return u
}

// UpdateMatchID sets the "match_id" field to the value that was provided on create.
func (u *InstantBookScoreUpsert) UpdateMatchID() *InstantBookScoreUpsert {
	u.SetExcluded(instantbookscore.FieldMatchID)
	return u
}

// SetTruthCoreCompleteness sets the "truth_core_completeness" field.
func (u *InstantBookScoreUpsert) SetTruthCoreCompleteness(v float64) *InstantBookScoreUpsert {
	u.Set(instantbookscore.FieldTruthCoreCompleteness, v)
	return u
}

// UpdateTruthCoreCompleteness sets the "truth_core_completeness" field to the value that was provided on create.
func (u *InstantBookScoreUpsert) UpdateTruthCoreCompleteness() *InstantBookScoreUpsert {
	u.SetExcluded(instantbookscore.FieldTruthCoreCompleteness)
	return u
}

// AddTruthCoreCompleteness adds v to the "truth_core_completeness" field.
func (u *InstantBookScoreUpsert) AddTruthCoreCompleteness(v float64) *InstantBookScoreUpsert {
	u.Add(instantbookscore.FieldTruthCoreCompleteness, v)
	return u
}

// SetContextualMemoryDepth sets the "contextual_memory_depth" field.
func (u *InstantBookScoreUpsert) SetContextualMemoryDepth(v float64) *InstantBookScoreUpsert {
	u.Set(instantbookscore.FieldContextualMemoryDepth, v)
	return u
}

// UpdateContextualMemoryDepth sets the "contextual_memory_depth" field to the value that was provided on create.
func (u *InstantBookScoreUpsert) UpdateContextualMemoryDepth() *InstantBookScoreUpsert {
	u.SetExcluded(instantbookscore.FieldContextualMemoryDepth)
	return u
}

// AddContextualMemoryDepth adds v to the "contextual_memory_depth" field.
func (u *InstantBookScoreUpsert) AddContextualMemoryDepth(v float64) *InstantBookScoreUpsert {
	u.Add(instantbookscore.FieldContextualMemoryDepth, v)
	return u
}

// SetSupplierTrustLevel sets the "supplier_trust_level" field.
func (u *InstantBookScoreUpsert) SetSupplierTrustLevel(v float64) *InstantBookScoreUpsert {
	u.Set(instantbookscore.FieldSupplierTrustLevel, v)
	return u
}

// UpdateSupplierTrustLevel sets the "supplier_trust_level" field to the value that was provided on create.
func (u *InstantBookScoreUpsert) UpdateSupplierTrustLevel() *InstantBookScoreUpsert {
	u.SetExcluded(instantbookscore.FieldSupplierTrustLevel)
	return u
}

// AddSupplierTrustLevel adds v to the "supplier_trust_level" field.
func (u *InstantBookScoreUpsert) AddSupplierTrustLevel(v float64) *InstantBookScoreUpsert {
	u.Add(instantbookscore.FieldSupplierTrustLevel, v)
	return u
}

// SetMatchSpecificity sets the "match_specificity" field.
func (u *InstantBookScoreUpsert) SetMatchSpecificity(v float64) *InstantBookScoreUpsert {
	u.Set(instantbookscore.FieldMatchSpecificity, v)
	return u
}

// UpdateMatchSpecificity sets the "match_specificity" field to the value that was provided on create.
func (u *InstantBookScoreUpsert) UpdateMatchSpecificity() *InstantBookScoreUpsert {
	u.SetExcluded(instantbookscore.FieldMatchSpecificity)
	return u
}

// AddMatchSpecificity adds v to the "match_specificity" field.
func (u *InstantBookScoreUpsert) AddMatchSpecificity(v float64) *InstantBookScoreUpsert {
	u.Add(instantbookscore.FieldMatchSpecificity, v)
	return u
}

// SetFeatureAlignment sets the "feature_alignment" field.
func (u *InstantBookScoreUpsert) SetFeatureAlignment(v float64) *InstantBookScoreUpsert {
	u.Set(instantbookscore.FieldFeatureAlignment, v)
	return u
}

// UpdateFeatureAlignment sets the "feature_alignment" field to the value that was provided on create.
func (u *InstantBookScoreUpsert) UpdateFeatureAlignment() *InstantBookScoreUpsert {
	u.SetExcluded(instantbookscore.FieldFeatureAlignment)
	return u
}

// AddFeatureAlignment adds v to the "feature_alignment" field.
func (u *InstantBookScoreUpsert) AddFeatureAlignment(v float64) *InstantBookScoreUpsert {
	u.Add(instantbookscore.FieldFeatureAlignment, v)
	return u
}

// SetTotal sets the "total" field.
func (u *InstantBookScoreUpsert) SetTotal(v float64) *InstantBookScoreUpsert {
	u.Set(instantbookscore.FieldTotal, v)
	return u
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *InstantBookScoreUpsert) UpdateTotal() *InstantBookScoreUpsert {
	u.SetExcluded(instantbookscore.FieldTotal)
	return u
}

// AddTotal adds v to the "total" field.
func (u *InstantBookScoreUpsert) AddTotal(v float64) *InstantBookScoreUpsert {
	u.Add(instantbookscore.FieldTotal, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InstantBookScore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(instantbookscore.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InstantBookScoreUpsertOne) UpdateNewValues() *InstantBookScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(instantbookscore.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(instantbookscore.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InstantBookScore.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InstantBookScoreUpsertOne) Ignore() *InstantBookScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InstantBookScoreUpsertOne) DoNothing() *InstantBookScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InstantBookScoreCreate.OnConflict
// documentation for more info.
func (u *InstantBookScoreUpsertOne) Update(set func(*InstantBookScoreUpsert)) *InstantBookScoreUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InstantBookScoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetMatchID sets the "match_id" field.
func (u *InstantBookScoreUpsertOne) SetMatchID(v string) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetMatchID(v)
	})
}

// UpdateMatchID sets the "match_id" field to the value that was provided on create.
func (u *InstantBookScoreUpsertOne) UpdateMatchID() *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateMatchID()
	})
}

// SetTruthCoreCompleteness sets the "truth_core_completeness" field.
func (u *InstantBookScoreUpsertOne) SetTruthCoreCompleteness(v float64) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetTruthCoreCompleteness(v)
	})
}

// AddTruthCoreCompleteness adds v to the "truth_core_completeness" field.
func (u *InstantBookScoreUpsertOne) AddTruthCoreCompleteness(v float64) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.AddTruthCoreCompleteness(v)
	})
}

// UpdateTruthCoreCompleteness sets the "truth_core_completeness" field to the value that was provided on create.
func (u *InstantBookScoreUpsertOne) UpdateTruthCoreCompleteness() *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateTruthCoreCompleteness()
	})
}

// SetContextualMemoryDepth sets the "contextual_memory_depth" field.
func (u *InstantBookScoreUpsertOne) SetContextualMemoryDepth(v float64) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetContextualMemoryDepth(v)
	})
}

// AddContextualMemoryDepth adds v to the "contextual_memory_depth" field.
func (u *InstantBookScoreUpsertOne) AddContextualMemoryDepth(v float64) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.AddContextualMemoryDepth(v)
	})
}

// UpdateContextualMemoryDepth sets the "contextual_memory_depth" field to the value that was provided on create.
func (u *InstantBookScoreUpsertOne) UpdateContextualMemoryDepth() *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateContextualMemoryDepth()
	})
}

// SetSupplierTrustLevel sets the "supplier_trust_level" field.
func (u *InstantBookScoreUpsertOne) SetSupplierTrustLevel(v float64) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetSupplierTrustLevel(v)
	})
}

// AddSupplierTrustLevel adds v to the "supplier_trust_level" field.
func (u *InstantBookScoreUpsertOne) AddSupplierTrustLevel(v float64) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.AddSupplierTrustLevel(v)
	})
}

// UpdateSupplierTrustLevel sets the "supplier_trust_level" field to the value that was provided on create.
func (u *InstantBookScoreUpsertOne) UpdateSupplierTrustLevel() *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateSupplierTrustLevel()
	})
}

// SetMatchSpecificity sets the "match_specificity" field.
func (u *InstantBookScoreUpsertOne) SetMatchSpecificity(v float64) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetMatchSpecificity(v)
	})
}

// AddMatchSpecificity adds v to the "match_specificity" field.
func (u *InstantBookScoreUpsertOne) AddMatchSpecificity(v float64) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.AddMatchSpecificity(v)
	})
}

// UpdateMatchSpecificity sets the "match_specificity" field to the value that was provided on create.
func (u *InstantBookScoreUpsertOne) UpdateMatchSpecificity() *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateMatchSpecificity()
	})
}

// SetFeatureAlignment sets the "feature_alignment" field.
func (u *InstantBookScoreUpsertOne) SetFeatureAlignment(v float64) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetFeatureAlignment(v)
	})
}

// AddFeatureAlignment adds v to the "feature_alignment" field.
func (u *InstantBookScoreUpsertOne) AddFeatureAlignment(v float64) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.AddFeatureAlignment(v)
	})
}

// UpdateFeatureAlignment sets the "feature_alignment" field to the value that was provided on create.
func (u *InstantBookScoreUpsertOne) UpdateFeatureAlignment() *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateFeatureAlignment()
	})
}

// SetTotal sets the "total" field.
func (u *InstantBookScoreUpsertOne) SetTotal(v float64) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *InstantBookScoreUpsertOne) AddTotal(v float64) *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *InstantBookScoreUpsertOne) UpdateTotal() *InstantBookScoreUpsertOne {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateTotal()
	})
}

// Exec executes the query.
func (u *InstantBookScoreUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InstantBookScoreCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InstantBookScoreUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InstantBookScoreUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InstantBookScoreUpsertOne.ID is not supported by MySQL driver. Use InstantBookScoreUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InstantBookScoreUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InstantBookScoreCreateBulk is the builder for creating many InstantBookScore entities in bulk.
type InstantBookScoreCreateBulk struct {
	config
	err      error
	builders []*InstantBookScoreCreate
	conflict []sql.ConflictOption
}

// Save creates the InstantBookScore entities in the database.
func (_c *InstantBookScoreCreateBulk) Save(ctx context.Context) ([]*InstantBookScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InstantBookScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InstantBookScoreMutation)
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
func (_c *InstantBookScoreCreateBulk) SaveX(ctx context.Context) []*InstantBookScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InstantBookScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InstantBookScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InstantBookScore.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InstantBookScoreUpsert) {
//			SetMatchID(v+v).
//		}).
//		Exec(ctx)
func (_c *InstantBookScoreCreateBulk) OnConflict(opts ...sql.ConflictOption) *InstantBookScoreUpsertBulk {
	_c.conflict = opts
	return &InstantBookScoreUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InstantBookScore.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InstantBookScoreCreateBulk) OnConflictColumns(columns ...string) *InstantBookScoreUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InstantBookScoreUpsertBulk{
		create: _c,
	}
}

// InstantBookScoreUpsertBulk is the builder for "upsert"-ing
// a bulk of InstantBookScore nodes.
type InstantBookScoreUpsertBulk struct {
	create *InstantBookScoreCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InstantBookScore.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(instantbookscore.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InstantBookScoreUpsertBulk) UpdateNewValues() *InstantBookScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(instantbookscore.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(instantbookscore.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InstantBookScore.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InstantBookScoreUpsertBulk) Ignore() *InstantBookScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InstantBookScoreUpsertBulk) DoNothing() *InstantBookScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InstantBookScoreCreateBulk.OnConflict
// documentation for more info.
func (u *InstantBookScoreUpsertBulk) Update(set func(*InstantBookScoreUpsert)) *InstantBookScoreUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InstantBookScoreUpsert{UpdateSet: update})
	}))
	return u
}

// SetMatchID sets the "match_id" field.
func (u *InstantBookScoreUpsertBulk) SetMatchID(v string) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetMatchID(v)
	})
}

// UpdateMatchID sets the "match_id" field to the value that was provided on create.
func (u *InstantBookScoreUpsertBulk) UpdateMatchID() *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateMatchID()
	})
}

// SetTruthCoreCompleteness sets the "truth_core_completeness" field.
func (u *InstantBookScoreUpsertBulk) SetTruthCoreCompleteness(v float64) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetTruthCoreCompleteness(v)
	})
}

// AddTruthCoreCompleteness adds v to the "truth_core_completeness" field.
func (u *InstantBookScoreUpsertBulk) AddTruthCoreCompleteness(v float64) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.AddTruthCoreCompleteness(v)
	})
}

// UpdateTruthCoreCompleteness sets the "truth_core_completeness" field to the value that was provided on create.
func (u *InstantBookScoreUpsertBulk) UpdateTruthCoreCompleteness() *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateTruthCoreCompleteness()
	})
}

// SetContextualMemoryDepth sets the "contextual_memory_depth" field.
func (u *InstantBookScoreUpsertBulk) SetContextualMemoryDepth(v float64) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetContextualMemoryDepth(v)
	})
}

// AddContextualMemoryDepth adds v to the "contextual_memory_depth" field.
func (u *InstantBookScoreUpsertBulk) AddContextualMemoryDepth(v float64) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.AddContextualMemoryDepth(v)
	})
}

// UpdateContextualMemoryDepth sets the "contextual_memory_depth" field to the value that was provided on create.
func (u *InstantBookScoreUpsertBulk) UpdateContextualMemoryDepth() *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateContextualMemoryDepth()
	})
}

// SetSupplierTrustLevel sets the "supplier_trust_level" field.
func (u *InstantBookScoreUpsertBulk) SetSupplierTrustLevel(v float64) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetSupplierTrustLevel(v)
	})
}

// AddSupplierTrustLevel adds v to the "supplier_trust_level" field.
func (u *InstantBookScoreUpsertBulk) AddSupplierTrustLevel(v float64) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.AddSupplierTrustLevel(v)
	})
}

// UpdateSupplierTrustLevel sets the "supplier_trust_level" field to the value that was provided on create.
func (u *InstantBookScoreUpsertBulk) UpdateSupplierTrustLevel() *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateSupplierTrustLevel()
	})
}

// SetMatchSpecificity sets the "match_specificity" field.
func (u *InstantBookScoreUpsertBulk) SetMatchSpecificity(v float64) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetMatchSpecificity(v)
	})
}

// AddMatchSpecificity adds v to the "match_specificity" field.
func (u *InstantBookScoreUpsertBulk) AddMatchSpecificity(v float64) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.AddMatchSpecificity(v)
	})
}

// UpdateMatchSpecificity sets the "match_specificity" field to the value that was provided on create.
func (u *InstantBookScoreUpsertBulk) UpdateMatchSpecificity() *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateMatchSpecificity()
	})
}

// SetFeatureAlignment sets the "feature_alignment" field.
func (u *InstantBookScoreUpsertBulk) SetFeatureAlignment(v float64) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetFeatureAlignment(v)
	})
}

// AddFeatureAlignment adds v to the "feature_alignment" field.
func (u *InstantBookScoreUpsertBulk) AddFeatureAlignment(v float64) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.AddFeatureAlignment(v)
	})
}

// UpdateFeatureAlignment sets the "feature_alignment" field to the value that was provided on create.
func (u *InstantBookScoreUpsertBulk) UpdateFeatureAlignment() *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateFeatureAlignment()
	})
}

// SetTotal sets the "total" field.
func (u *InstantBookScoreUpsertBulk) SetTotal(v float64) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *InstantBookScoreUpsertBulk) AddTotal(v float64) *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *InstantBookScoreUpsertBulk) UpdateTotal() *InstantBookScoreUpsertBulk {
	return u.Update(func(s *InstantBookScoreUpsert) {
		s.UpdateTotal()
	})
}

// Exec executes the query.
func (u *InstantBookScoreUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InstantBookScoreCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InstantBookScoreCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InstantBookScoreUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
