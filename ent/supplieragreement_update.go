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
	"github.com/warehouse-exchange/wex/ent/predicate"
	"github.com/warehouse-exchange/wex/ent/supplieragreement"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// SupplierAgreementUpdate is the builder for updating SupplierAgreement entities.
type SupplierAgreementUpdate struct {
	config
	hooks    []Hook
	mutation *SupplierAgreementMutation
}

// Where appends a list predicates to the SupplierAgreementUpdate builder.
func (_u *SupplierAgreementUpdate) Where(ps ...predicate.SupplierAgreement) *SupplierAgreementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *SupplierAgreementUpdate) SetWarehouseID(v string) *SupplierAgreementUpdate {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *SupplierAgreementUpdate) SetNillableWarehouseID(v *string) *SupplierAgreementUpdate {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SupplierAgreementUpdate) SetStatus(v supplieragreement.Status) *SupplierAgreementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SupplierAgreementUpdate) SetNillableStatus(v *supplieragreement.Status) *SupplierAgreementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *SupplierAgreementUpdate) SetOrigin(v supplieragreement.Origin) *SupplierAgreementUpdate {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *SupplierAgreementUpdate) SetNillableOrigin(v *supplieragreement.Origin) *SupplierAgreementUpdate {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetExternalRef sets the "external_ref" field.
func (_u *SupplierAgreementUpdate) SetExternalRef(v string) *SupplierAgreementUpdate {
	_u.mutation.SetExternalRef(v)
	return _u
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_u *SupplierAgreementUpdate) SetNillableExternalRef(v *string) *SupplierAgreementUpdate {
	if v != nil {
		_u.SetExternalRef(*v)
	}
	return _u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (_u *SupplierAgreementUpdate) ClearExternalRef() *SupplierAgreementUpdate {
	_u.mutation.ClearExternalRef()
	return _u
}

// SetSignedAt sets the "signed_at" field.
func (_u *SupplierAgreementUpdate) SetSignedAt(v time.Time) *SupplierAgreementUpdate {
	_u.mutation.SetSignedAt(v)
	return _u
}

// SetNillableSignedAt sets the "signed_at" field if the given value is not nil.
func (_u *SupplierAgreementUpdate) SetNillableSignedAt(v *time.Time) *SupplierAgreementUpdate {
	if v != nil {
		_u.SetSignedAt(*v)
	}
	return _u
}

// ClearSignedAt clears the value of the "signed_at" field.
func (_u *SupplierAgreementUpdate) ClearSignedAt() *SupplierAgreementUpdate {
	_u.mutation.ClearSignedAt()
	return _u
}

// SetTerminatedAt sets the "terminated_at" field.
func (_u *SupplierAgreementUpdate) SetTerminatedAt(v time.Time) *SupplierAgreementUpdate {
	_u.mutation.SetTerminatedAt(v)
	return _u
}

// SetNillableTerminatedAt sets the "terminated_at" field if the given value is not nil.
func (_u *SupplierAgreementUpdate) SetNillableTerminatedAt(v *time.Time) *SupplierAgreementUpdate {
	if v != nil {
		_u.SetTerminatedAt(*v)
	}
	return _u
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (_u *SupplierAgreementUpdate) ClearTerminatedAt() *SupplierAgreementUpdate {
	_u.mutation.ClearTerminatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupplierAgreementUpdate) SetUpdatedAt(v time.Time) *SupplierAgreementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_u *SupplierAgreementUpdate) SetWarehouse(v *Warehouse) *SupplierAgreementUpdate {
	return _u.SetWarehouseID(v.ID)
}

// Mutation returns the SupplierAgreementMutation object of the builder.
func (_u *SupplierAgreementUpdate) Mutation() *SupplierAgreementMutation {
	return _u.mutation
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (_u *SupplierAgreementUpdate) ClearWarehouse() *SupplierAgreementUpdate {
	_u.mutation.ClearWarehouse()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SupplierAgreementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierAgreementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SupplierAgreementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierAgreementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupplierAgreementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supplieragreement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierAgreementUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := supplieragreement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SupplierAgreement.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := supplieragreement.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "SupplierAgreement.origin": %w`, err)}
		}
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SupplierAgreement.warehouse"`)
	}
	return nil
}

func (_u *SupplierAgreementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplieragreement.Table, supplieragreement.Columns, sqlgraph.NewFieldSpec(supplieragreement.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(supplieragreement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(supplieragreement.FieldOrigin, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalRef(); ok {
		_spec.SetField(supplieragreement.FieldExternalRef, field.TypeString, value)
	}
	if _u.mutation.ExternalRefCleared() {
		_spec.ClearField(supplieragreement.FieldExternalRef, field.TypeString)
	}
	if value, ok := _u.mutation.SignedAt(); ok {
		_spec.SetField(supplieragreement.FieldSignedAt, field.TypeTime, value)
	}
	if _u.mutation.SignedAtCleared() {
		_spec.ClearField(supplieragreement.FieldSignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TerminatedAt(); ok {
		_spec.SetField(supplieragreement.FieldTerminatedAt, field.TypeTime, value)
	}
	if _u.mutation.TerminatedAtCleared() {
		_spec.ClearField(supplieragreement.FieldTerminatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supplieragreement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WarehouseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   supplieragreement.WarehouseTable,
			Columns: []string{supplieragreement.WarehouseColumn},
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
			Table:   supplieragreement.WarehouseTable,
			Columns: []string{supplieragreement.WarehouseColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplieragreement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SupplierAgreementUpdateOne is the builder for updating a single SupplierAgreement entity.
type SupplierAgreementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SupplierAgreementMutation
}

// SetWarehouseID sets the "warehouse_id" field.
func (_u *SupplierAgreementUpdateOne) SetWarehouseID(v string) *SupplierAgreementUpdateOne {
	_u.mutation.SetWarehouseID(v)
	return _u
}

// SetNillableWarehouseID sets the "warehouse_id" field if the given value is not nil.
func (_u *SupplierAgreementUpdateOne) SetNillableWarehouseID(v *string) *SupplierAgreementUpdateOne {
	if v != nil {
		_u.SetWarehouseID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SupplierAgreementUpdateOne) SetStatus(v supplieragreement.Status) *SupplierAgreementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SupplierAgreementUpdateOne) SetNillableStatus(v *supplieragreement.Status) *SupplierAgreementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrigin sets the "origin" field.
func (_u *SupplierAgreementUpdateOne) SetOrigin(v supplieragreement.Origin) *SupplierAgreementUpdateOne {
	_u.mutation.SetOrigin(v)
	return _u
}

// SetNillableOrigin sets the "origin" field if the given value is not nil.
func (_u *SupplierAgreementUpdateOne) SetNillableOrigin(v *supplieragreement.Origin) *SupplierAgreementUpdateOne {
	if v != nil {
		_u.SetOrigin(*v)
	}
	return _u
}

// SetExternalRef sets the "external_ref" field.
func (_u *SupplierAgreementUpdateOne) SetExternalRef(v string) *SupplierAgreementUpdateOne {
	_u.mutation.SetExternalRef(v)
	return _u
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_u *SupplierAgreementUpdateOne) SetNillableExternalRef(v *string) *SupplierAgreementUpdateOne {
	if v != nil {
		_u.SetExternalRef(*v)
	}
	return _u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (_u *SupplierAgreementUpdateOne) ClearExternalRef() *SupplierAgreementUpdateOne {
	_u.mutation.ClearExternalRef()
	return _u
}

// SetSignedAt sets the "signed_at" field.
func (_u *SupplierAgreementUpdateOne) SetSignedAt(v time.Time) *SupplierAgreementUpdateOne {
	_u.mutation.SetSignedAt(v)
	return _u
}

// SetNillableSignedAt sets the "signed_at" field if the given value is not nil.
func (_u *SupplierAgreementUpdateOne) SetNillableSignedAt(v *time.Time) *SupplierAgreementUpdateOne {
	if v != nil {
		_u.SetSignedAt(*v)
	}
	return _u
}

// ClearSignedAt clears the value of the "signed_at" field.
func (_u *SupplierAgreementUpdateOne) ClearSignedAt() *SupplierAgreementUpdateOne {
	_u.mutation.ClearSignedAt()
	return _u
}

// SetTerminatedAt sets the "terminated_at" field.
func (_u *SupplierAgreementUpdateOne) SetTerminatedAt(v time.Time) *SupplierAgreementUpdateOne {
	_u.mutation.SetTerminatedAt(v)
	return _u
}

// SetNillableTerminatedAt sets the "terminated_at" field if the given value is not nil.
func (_u *SupplierAgreementUpdateOne) SetNillableTerminatedAt(v *time.Time) *SupplierAgreementUpdateOne {
	if v != nil {
		_u.SetTerminatedAt(*v)
	}
	return _u
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (_u *SupplierAgreementUpdateOne) ClearTerminatedAt() *SupplierAgreementUpdateOne {
	_u.mutation.ClearTerminatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SupplierAgreementUpdateOne) SetUpdatedAt(v time.Time) *SupplierAgreementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWarehouse sets the "warehouse" edge to the Warehouse entity.
func (_u *SupplierAgreementUpdateOne) SetWarehouse(v *Warehouse) *SupplierAgreementUpdateOne {
	return _u.SetWarehouseID(v.ID)
}

// Mutation returns the SupplierAgreementMutation object of the builder.
func (_u *SupplierAgreementUpdateOne) Mutation() *SupplierAgreementMutation {
	return _u.mutation
}

// ClearWarehouse clears the "warehouse" edge to the Warehouse entity.
func (_u *SupplierAgreementUpdateOne) ClearWarehouse() *SupplierAgreementUpdateOne {
	_u.mutation.ClearWarehouse()
	return _u
}

// Where appends a list predicates to the SupplierAgreementUpdate builder.
func (_u *SupplierAgreementUpdateOne) Where(ps ...predicate.SupplierAgreement) *SupplierAgreementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SupplierAgreementUpdateOne) Select(field string, fields ...string) *SupplierAgreementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SupplierAgreement entity.
func (_u *SupplierAgreementUpdateOne) Save(ctx context.Context) (*SupplierAgreement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SupplierAgreementUpdateOne) SaveX(ctx context.Context) *SupplierAgreement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SupplierAgreementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SupplierAgreementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SupplierAgreementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := supplieragreement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SupplierAgreementUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := supplieragreement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SupplierAgreement.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Origin(); ok {
		if err := supplieragreement.OriginValidator(v); err != nil {
			return &ValidationError{Name: "origin", err: fmt.Errorf(`ent: validator failed for field "SupplierAgreement.origin": %w`, err)}
		}
	}
	if _u.mutation.WarehouseCleared() && len(_u.mutation.WarehouseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SupplierAgreement.warehouse"`)
	}
	return nil
}

func (_u *SupplierAgreementUpdateOne) sqlSave(ctx context.Context) (_node *SupplierAgreement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(supplieragreement.Table, supplieragreement.Columns, sqlgraph.NewFieldSpec(supplieragreement.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SupplierAgreement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, supplieragreement.FieldID)
		for _, f := range fields {
			if !supplieragreement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != supplieragreement.FieldID {
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
		_spec.SetField(supplieragreement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Origin(); ok {
		_spec.SetField(supplieragreement.FieldOrigin, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExternalRef(); ok {
		_spec.SetField(supplieragreement.FieldExternalRef, field.TypeString, value)
	}
	if _u.mutation.ExternalRefCleared() {
		_spec.ClearField(supplieragreement.FieldExternalRef, field.TypeString)
	}
	if value, ok := _u.mutation.SignedAt(); ok {
		_spec.SetField(supplieragreement.FieldSignedAt, field.TypeTime, value)
	}
	if _u.mutation.SignedAtCleared() {
		_spec.ClearField(supplieragreement.FieldSignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TerminatedAt(); ok {
		_spec.SetField(supplieragreement.FieldTerminatedAt, field.TypeTime, value)
	}
	if _u.mutation.TerminatedAtCleared() {
		_spec.ClearField(supplieragreement.FieldTerminatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(supplieragreement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WarehouseCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   supplieragreement.WarehouseTable,
			Columns: []string{supplieragreement.WarehouseColumn},
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
			Table:   supplieragreement.WarehouseTable,
			Columns: []string{supplieragreement.WarehouseColumn},
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
	_node = &SupplierAgreement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{supplieragreement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
