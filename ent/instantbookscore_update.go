// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/warehouse-exchange/wex/ent/instantbookscore"
	"github.com/warehouse-exchange/wex/ent/match"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// InstantBookScoreUpdate is the builder for updating InstantBookScore entities.
type InstantBookScoreUpdate struct {
	config
	hooks    []Hook
	mutation *InstantBookScoreMutation
}

// Where appends a list predicates to the InstantBookScoreUpdate builder.
func (_u *InstantBookScoreUpdate) Where(ps ...predicate.InstantBookScore) *InstantBookScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMatchID sets the "match_id" field.
func (_u *InstantBookScoreUpdate) SetMatchID(v string) *InstantBookScoreUpdate {
	_u.mutation.SetMatchID(v)
	return _u
}

// SetNillableMatchID sets the "match_id" field if the given value is not nil.
func (_u *InstantBookScoreUpdate) SetNillableMatchID(v *string) *InstantBookScoreUpdate {
	if v != nil {
		_u.SetMatchID(*v)
	}
	return _u
}

// SetTruthCoreCompleteness sets the "truth_core_completeness" field.
func (_u *InstantBookScoreUpdate) SetTruthCoreCompleteness(v float64) *InstantBookScoreUpdate {
	_u.mutation.ResetTruthCoreCompleteness()
	_u.mutation.SetTruthCoreCompleteness(v)
	return _u
}

// SetNillableTruthCoreCompleteness sets the "truth_core_completeness" field if the given value is not nil.
func (_u *InstantBookScoreUpdate) SetNillableTruthCoreCompleteness(v *float64) *InstantBookScoreUpdate {
	if v != nil {
		_u.SetTruthCoreCompleteness(*v)
	}
	return _u
}

// AddTruthCoreCompleteness adds value to the "truth_core_completeness" field.
func (_u *InstantBookScoreUpdate) AddTruthCoreCompleteness(v float64) *InstantBookScoreUpdate {
	_u.mutation.AddTruthCoreCompleteness(v)
	return _u
}

// SetContextualMemoryDepth sets the "contextual_memory_depth" field.
func (_u *InstantBookScoreUpdate) SetContextualMemoryDepth(v float64) *InstantBookScoreUpdate {
	_u.mutation.ResetContextualMemoryDepth()
	_u.mutation.SetContextualMemoryDepth(v)
	return _u
}

// SetNillableContextualMemoryDepth sets the "contextual_memory_depth" field if the given value is not nil.
func (_u *InstantBookScoreUpdate) SetNillableContextualMemoryDepth(v *float64) *InstantBookScoreUpdate {
	if v != nil {
		_u.SetContextualMemoryDepth(*v)
	}
	return _u
}

// AddContextualMemoryDepth adds value to the "contextual_memory_depth" field.
func (_u *InstantBookScoreUpdate) AddContextualMemoryDepth(v float64) *InstantBookScoreUpdate {
	_u.mutation.AddContextualMemoryDepth(v)
	return _u
}

// SetSupplierTrustLevel sets the "supplier_trust_level" field.
func (_u *InstantBookScoreUpdate) SetSupplierTrustLevel(v float64) *InstantBookScoreUpdate {
	_u.mutation.ResetSupplierTrustLevel()
	_u.mutation.SetSupplierTrustLevel(v)
	return _u
}

// SetNillableSupplierTrustLevel sets the "supplier_trust_level" field if the given value is not nil.
func (_u *InstantBookScoreUpdate) SetNillableSupplierTrustLevel(v *float64) *InstantBookScoreUpdate {
	if v != nil {
		_u.SetSupplierTrustLevel(*v)
	}
	return _u
}

// AddSupplierTrustLevel adds value to the "supplier_trust_level" field.
func (_u *InstantBookScoreUpdate) AddSupplierTrustLevel(v float64) *InstantBookScoreUpdate {
	_u.mutation.AddSupplierTrustLevel(v)
	return _u
}

// SetMatchSpecificity sets the "match_specificity" field.
func (_u *InstantBookScoreUpdate) SetMatchSpecificity(v float64) *InstantBookScoreUpdate {
	_u.mutation.ResetMatchSpecificity()
	_u.mutation.SetMatchSpecificity(v)
	return _u
}

// SetNillableMatchSpecificity sets the "match_specificity" field if the given value is not nil.
func (_u *InstantBookScoreUpdate) SetNillableMatchSpecificity(v *float64) *InstantBookScoreUpdate {
	if v != nil {
		_u.SetMatchSpecificity(*v)
	}
	return _u
}

// AddMatchSpecificity adds value to the "match_specificity" field.
func (_u *InstantBookScoreUpdate) AddMatchSpecificity(v float64) *InstantBookScoreUpdate {
	_u.mutation.AddMatchSpecificity(v)
	return _u
}

// SetFeatureAlignment sets the "feature_alignment" field.
func (_u *InstantBookScoreUpdate) SetFeatureAlignment(v float64) *InstantBookScoreUpdate {
	_u.mutation.ResetFeatureAlignment()
	_u.mutation.SetFeatureAlignment(v)
	return _u
}

// SetNillableFeatureAlignment sets the "feature_alignment" field if the given value is not nil.
func (_u *InstantBookScoreUpdate) SetNillableFeatureAlignment(v *float64) *InstantBookScoreUpdate {
	if v != nil {
		_u.SetFeatureAlignment(*v)
	}
	return _u
}

// AddFeatureAlignment adds value to the "feature_alignment" field.
func (_u *InstantBookScoreUpdate) AddFeatureAlignment(v float64) *InstantBookScoreUpdate {
	_u.mutation.AddFeatureAlignment(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *InstantBookScoreUpdate) SetTotal(v float64) *InstantBookScoreUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InstantBookScoreUpdate) SetNillableTotal(v *float64) *InstantBookScoreUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InstantBookScoreUpdate) AddTotal(v float64) *InstantBookScoreUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetMatch sets the "match" edge to the Match entity.
func (_u *InstantBookScoreUpdate) SetMatch(v *Match) *InstantBookScoreUpdate {
	return _u.SetMatchID(v.ID)
}

// Mutation returns the InstantBookScoreMutation object of the builder.
func (_u *InstantBookScoreUpdate) Mutation() *InstantBookScoreMutation {
	return _u.mutation
}

// ClearMatch clears the "match" edge to the Match entity.
func (_u *InstantBookScoreUpdate) ClearMatch() *InstantBookScoreUpdate {
	_u.mutation.ClearMatch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InstantBookScoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstantBookScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InstantBookScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstantBookScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstantBookScoreUpdate) check() error {
	if _u.mutation.MatchCleared() && len(_u.mutation.MatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InstantBookScore.match"`)
	}
	return nil
}

func (_u *InstantBookScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instantbookscore.Table, instantbookscore.Columns, sqlgraph.NewFieldSpec(instantbookscore.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TruthCoreCompleteness(); ok {
		_spec.SetField(instantbookscore.FieldTruthCoreCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTruthCoreCompleteness(); ok {
		_spec.AddField(instantbookscore.FieldTruthCoreCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContextualMemoryDepth(); ok {
		_spec.SetField(instantbookscore.FieldContextualMemoryDepth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContextualMemoryDepth(); ok {
		_spec.AddField(instantbookscore.FieldContextualMemoryDepth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SupplierTrustLevel(); ok {
		_spec.SetField(instantbookscore.FieldSupplierTrustLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupplierTrustLevel(); ok {
		_spec.AddField(instantbookscore.FieldSupplierTrustLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MatchSpecificity(); ok {
		_spec.SetField(instantbookscore.FieldMatchSpecificity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchSpecificity(); ok {
		_spec.AddField(instantbookscore.FieldMatchSpecificity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FeatureAlignment(); ok {
		_spec.SetField(instantbookscore.FieldFeatureAlignment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFeatureAlignment(); ok {
		_spec.AddField(instantbookscore.FieldFeatureAlignment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(instantbookscore.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(instantbookscore.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.MatchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instantbookscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InstantBookScoreUpdateOne is the builder for updating a single InstantBookScore entity.
type InstantBookScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InstantBookScoreMutation
}

// SetMatchID sets the "match_id" field.
func (_u *InstantBookScoreUpdateOne) SetMatchID(v string) *InstantBookScoreUpdateOne {
	_u.mutation.SetMatchID(v)
	return _u
}

// SetNillableMatchID sets the "match_id" field if the given value is not nil.
func (_u *InstantBookScoreUpdateOne) SetNillableMatchID(v *string) *InstantBookScoreUpdateOne {
	if v != nil {
		_u.SetMatchID(*v)
	}
	return _u
}

// SetTruthCoreCompleteness sets the "truth_core_completeness" field.
func (_u *InstantBookScoreUpdateOne) SetTruthCoreCompleteness(v float64) *InstantBookScoreUpdateOne {
	_u.mutation.ResetTruthCoreCompleteness()
	_u.mutation.SetTruthCoreCompleteness(v)
	return _u
}

// SetNillableTruthCoreCompleteness sets the "truth_core_completeness" field if the given value is not nil.
func (_u *InstantBookScoreUpdateOne) SetNillableTruthCoreCompleteness(v *float64) *InstantBookScoreUpdateOne {
	if v != nil {
		_u.SetTruthCoreCompleteness(*v)
	}
	return _u
}

// AddTruthCoreCompleteness adds value to the "truth_core_completeness" field.
func (_u *InstantBookScoreUpdateOne) AddTruthCoreCompleteness(v float64) *InstantBookScoreUpdateOne {
	_u.mutation.AddTruthCoreCompleteness(v)
	return _u
}

// SetContextualMemoryDepth sets the "contextual_memory_depth" field.
func (_u *InstantBookScoreUpdateOne) SetContextualMemoryDepth(v float64) *InstantBookScoreUpdateOne {
	_u.mutation.ResetContextualMemoryDepth()
	_u.mutation.SetContextualMemoryDepth(v)
	return _u
}

// SetNillableContextualMemoryDepth sets the "contextual_memory_depth" field if the given value is not nil.
func (_u *InstantBookScoreUpdateOne) SetNillableContextualMemoryDepth(v *float64) *InstantBookScoreUpdateOne {
	if v != nil {
		_u.SetContextualMemoryDepth(*v)
	}
	return _u
}

// AddContextualMemoryDepth adds value to the "contextual_memory_depth" field.
func (_u *InstantBookScoreUpdateOne) AddContextualMemoryDepth(v float64) *InstantBookScoreUpdateOne {
	_u.mutation.AddContextualMemoryDepth(v)
	return _u
}

// SetSupplierTrustLevel sets the "supplier_trust_level" field.
func (_u *InstantBookScoreUpdateOne) SetSupplierTrustLevel(v float64) *InstantBookScoreUpdateOne {
	_u.mutation.ResetSupplierTrustLevel()
	_u.mutation.SetSupplierTrustLevel(v)
	return _u
}

// SetNillableSupplierTrustLevel sets the "supplier_trust_level" field if the given value is not nil.
func (_u *InstantBookScoreUpdateOne) SetNillableSupplierTrustLevel(v *float64) *InstantBookScoreUpdateOne {
	if v != nil {
		_u.SetSupplierTrustLevel(*v)
	}
	return _u
}

// AddSupplierTrustLevel adds value to the "supplier_trust_level" field.
func (_u *InstantBookScoreUpdateOne) AddSupplierTrustLevel(v float64) *InstantBookScoreUpdateOne {
	_u.mutation.AddSupplierTrustLevel(v)
	return _u
}

// SetMatchSpecificity sets the "match_specificity" field.
func (_u *InstantBookScoreUpdateOne) SetMatchSpecificity(v float64) *InstantBookScoreUpdateOne {
	_u.mutation.ResetMatchSpecificity()
	_u.mutation.SetMatchSpecificity(v)
	return _u
}

// SetNillableMatchSpecificity sets the "match_specificity" field if the given value is not nil.
func (_u *InstantBookScoreUpdateOne) SetNillableMatchSpecificity(v *float64) *InstantBookScoreUpdateOne {
	if v != nil {
		_u.SetMatchSpecificity(*v)
	}
	return _u
}

// AddMatchSpecificity adds value to the "match_specificity" field.
func (_u *InstantBookScoreUpdateOne) AddMatchSpecificity(v float64) *InstantBookScoreUpdateOne {
	_u.mutation.AddMatchSpecificity(v)
	return _u
}

// SetFeatureAlignment sets the "feature_alignment" field.
func (_u *InstantBookScoreUpdateOne) SetFeatureAlignment(v float64) *InstantBookScoreUpdateOne {
	_u.mutation.ResetFeatureAlignment()
	_u.mutation.SetFeatureAlignment(v)
	return _u
}

// SetNillableFeatureAlignment sets the "feature_alignment" field if the given value is not nil.
func (_u *InstantBookScoreUpdateOne) SetNillableFeatureAlignment(v *float64) *InstantBookScoreUpdateOne {
	if v != nil {
		_u.SetFeatureAlignment(*v)
	}
	return _u
}

// AddFeatureAlignment adds value to the "feature_alignment" field.
func (_u *InstantBookScoreUpdateOne) AddFeatureAlignment(v float64) *InstantBookScoreUpdateOne {
	_u.mutation.AddFeatureAlignment(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *InstantBookScoreUpdateOne) SetTotal(v float64) *InstantBookScoreUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *InstantBookScoreUpdateOne) SetNillableTotal(v *float64) *InstantBookScoreUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *InstantBookScoreUpdateOne) AddTotal(v float64) *InstantBookScoreUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetMatch sets the "match" edge to the Match entity.
func (_u *InstantBookScoreUpdateOne) SetMatch(v *Match) *InstantBookScoreUpdateOne {
	return _u.SetMatchID(v.ID)
}

// Mutation returns the InstantBookScoreMutation object of the builder.
func (_u *InstantBookScoreUpdateOne) Mutation() *InstantBookScoreMutation {
	return _u.mutation
}

// ClearMatch clears the "match" edge to the Match entity.
func (_u *InstantBookScoreUpdateOne) ClearMatch() *InstantBookScoreUpdateOne {
	_u.mutation.ClearMatch()
	return _u
}

// Where appends a list predicates to the InstantBookScoreUpdate builder.
func (_u *InstantBookScoreUpdateOne) Where(ps ...predicate.InstantBookScore) *InstantBookScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InstantBookScoreUpdateOne) Select(field string, fields ...string) *InstantBookScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InstantBookScore entity.
func (_u *InstantBookScoreUpdateOne) Save(ctx context.Context) (*InstantBookScore, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InstantBookScoreUpdateOne) SaveX(ctx context.Context) *InstantBookScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InstantBookScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InstantBookScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InstantBookScoreUpdateOne) check() error {
	if _u.mutation.MatchCleared() && len(_u.mutation.MatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InstantBookScore.match"`)
	}
	return nil
}

func (_u *InstantBookScoreUpdateOne) sqlSave(ctx context.Context) (_node *InstantBookScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(instantbookscore.Table, instantbookscore.Columns, sqlgraph.NewFieldSpec(instantbookscore.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InstantBookScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, instantbookscore.FieldID)
		for _, f := range fields {
			if !instantbookscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != instantbookscore.FieldID {
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
	if value, ok := _u.mutation.TruthCoreCompleteness(); ok {
		_spec.SetField(instantbookscore.FieldTruthCoreCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTruthCoreCompleteness(); ok {
		_spec.AddField(instantbookscore.FieldTruthCoreCompleteness, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ContextualMemoryDepth(); ok {
		_spec.SetField(instantbookscore.FieldContextualMemoryDepth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedContextualMemoryDepth(); ok {
		_spec.AddField(instantbookscore.FieldContextualMemoryDepth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SupplierTrustLevel(); ok {
		_spec.SetField(instantbookscore.FieldSupplierTrustLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupplierTrustLevel(); ok {
		_spec.AddField(instantbookscore.FieldSupplierTrustLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MatchSpecificity(); ok {
		_spec.SetField(instantbookscore.FieldMatchSpecificity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMatchSpecificity(); ok {
		_spec.AddField(instantbookscore.FieldMatchSpecificity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FeatureAlignment(); ok {
		_spec.SetField(instantbookscore.FieldFeatureAlignment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFeatureAlignment(); ok {
		_spec.AddField(instantbookscore.FieldFeatureAlignment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(instantbookscore.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(instantbookscore.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.MatchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InstantBookScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{instantbookscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
