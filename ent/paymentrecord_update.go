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
	"github.com/warehouse-exchange/wex/ent/paymentrecord"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// PaymentRecordUpdate is the builder for updating PaymentRecord entities.
type PaymentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentRecordMutation
}

// Where appends a list predicates to the PaymentRecordUpdate builder.
func (_u *PaymentRecordUpdate) Where(ps ...predicate.PaymentRecord) *PaymentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBuyerAmount sets the "buyer_amount" field.
func (_u *PaymentRecordUpdate) SetBuyerAmount(v float64) *PaymentRecordUpdate {
	_u.mutation.ResetBuyerAmount()
	_u.mutation.SetBuyerAmount(v)
	return _u
}

// SetNillableBuyerAmount sets the "buyer_amount" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableBuyerAmount(v *float64) *PaymentRecordUpdate {
	if v != nil {
		_u.SetBuyerAmount(*v)
	}
	return _u
}

// AddBuyerAmount adds value to the "buyer_amount" field.
func (_u *PaymentRecordUpdate) AddBuyerAmount(v float64) *PaymentRecordUpdate {
	_u.mutation.AddBuyerAmount(v)
	return _u
}

// SetSupplierAmount sets the "supplier_amount" field.
func (_u *PaymentRecordUpdate) SetSupplierAmount(v float64) *PaymentRecordUpdate {
	_u.mutation.ResetSupplierAmount()
	_u.mutation.SetSupplierAmount(v)
	return _u
}

// SetNillableSupplierAmount sets the "supplier_amount" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableSupplierAmount(v *float64) *PaymentRecordUpdate {
	if v != nil {
		_u.SetSupplierAmount(*v)
	}
	return _u
}

// AddSupplierAmount adds value to the "supplier_amount" field.
func (_u *PaymentRecordUpdate) AddSupplierAmount(v float64) *PaymentRecordUpdate {
	_u.mutation.AddSupplierAmount(v)
	return _u
}

// SetWexAmount sets the "wex_amount" field.
func (_u *PaymentRecordUpdate) SetWexAmount(v float64) *PaymentRecordUpdate {
	_u.mutation.ResetWexAmount()
	_u.mutation.SetWexAmount(v)
	return _u
}

// SetNillableWexAmount sets the "wex_amount" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableWexAmount(v *float64) *PaymentRecordUpdate {
	if v != nil {
		_u.SetWexAmount(*v)
	}
	return _u
}

// AddWexAmount adds value to the "wex_amount" field.
func (_u *PaymentRecordUpdate) AddWexAmount(v float64) *PaymentRecordUpdate {
	_u.mutation.AddWexAmount(v)
	return _u
}

// SetBuyerStatus sets the "buyer_status" field.
func (_u *PaymentRecordUpdate) SetBuyerStatus(v paymentrecord.BuyerStatus) *PaymentRecordUpdate {
	_u.mutation.SetBuyerStatus(v)
	return _u
}

// SetNillableBuyerStatus sets the "buyer_status" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableBuyerStatus(v *paymentrecord.BuyerStatus) *PaymentRecordUpdate {
	if v != nil {
		_u.SetBuyerStatus(*v)
	}
	return _u
}

// SetSupplierStatus sets the "supplier_status" field.
func (_u *PaymentRecordUpdate) SetSupplierStatus(v paymentrecord.SupplierStatus) *PaymentRecordUpdate {
	_u.mutation.SetSupplierStatus(v)
	return _u
}

// SetNillableSupplierStatus sets the "supplier_status" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableSupplierStatus(v *paymentrecord.SupplierStatus) *PaymentRecordUpdate {
	if v != nil {
		_u.SetSupplierStatus(*v)
	}
	return _u
}

// SetBuyerPaidAt sets the "buyer_paid_at" field.
func (_u *PaymentRecordUpdate) SetBuyerPaidAt(v time.Time) *PaymentRecordUpdate {
	_u.mutation.SetBuyerPaidAt(v)
	return _u
}

// SetNillableBuyerPaidAt sets the "buyer_paid_at" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableBuyerPaidAt(v *time.Time) *PaymentRecordUpdate {
	if v != nil {
		_u.SetBuyerPaidAt(*v)
	}
	return _u
}

// ClearBuyerPaidAt clears the value of the "buyer_paid_at" field.
func (_u *PaymentRecordUpdate) ClearBuyerPaidAt() *PaymentRecordUpdate {
	_u.mutation.ClearBuyerPaidAt()
	return _u
}

// SetSupplierPaidAt sets the "supplier_paid_at" field.
func (_u *PaymentRecordUpdate) SetSupplierPaidAt(v time.Time) *PaymentRecordUpdate {
	_u.mutation.SetSupplierPaidAt(v)
	return _u
}

// SetNillableSupplierPaidAt sets the "supplier_paid_at" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableSupplierPaidAt(v *time.Time) *PaymentRecordUpdate {
	if v != nil {
		_u.SetSupplierPaidAt(*v)
	}
	return _u
}

// ClearSupplierPaidAt clears the value of the "supplier_paid_at" field.
func (_u *PaymentRecordUpdate) ClearSupplierPaidAt() *PaymentRecordUpdate {
	_u.mutation.ClearSupplierPaidAt()
	return _u
}

// SetExternalRef sets the "external_ref" field.
func (_u *PaymentRecordUpdate) SetExternalRef(v string) *PaymentRecordUpdate {
	_u.mutation.SetExternalRef(v)
	return _u
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableExternalRef(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetExternalRef(*v)
	}
	return _u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (_u *PaymentRecordUpdate) ClearExternalRef() *PaymentRecordUpdate {
	_u.mutation.ClearExternalRef()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentRecordUpdate) SetUpdatedAt(v time.Time) *PaymentRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PaymentRecordMutation object of the builder.
func (_u *PaymentRecordUpdate) Mutation() *PaymentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paymentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentRecordUpdate) check() error {
	if v, ok := _u.mutation.BuyerStatus(); ok {
		if err := paymentrecord.BuyerStatusValidator(v); err != nil {
			return &ValidationError{Name: "buyer_status", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.buyer_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SupplierStatus(); ok {
		if err := paymentrecord.SupplierStatusValidator(v); err != nil {
			return &ValidationError{Name: "supplier_status", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.supplier_status": %w`, err)}
		}
	}
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PaymentRecord.engagement"`)
	}
	return nil
}

func (_u *PaymentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentrecord.Table, paymentrecord.Columns, sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BuyerAmount(); ok {
		_spec.SetField(paymentrecord.FieldBuyerAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBuyerAmount(); ok {
		_spec.AddField(paymentrecord.FieldBuyerAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SupplierAmount(); ok {
		_spec.SetField(paymentrecord.FieldSupplierAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupplierAmount(); ok {
		_spec.AddField(paymentrecord.FieldSupplierAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WexAmount(); ok {
		_spec.SetField(paymentrecord.FieldWexAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWexAmount(); ok {
		_spec.AddField(paymentrecord.FieldWexAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BuyerStatus(); ok {
		_spec.SetField(paymentrecord.FieldBuyerStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SupplierStatus(); ok {
		_spec.SetField(paymentrecord.FieldSupplierStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BuyerPaidAt(); ok {
		_spec.SetField(paymentrecord.FieldBuyerPaidAt, field.TypeTime, value)
	}
	if _u.mutation.BuyerPaidAtCleared() {
		_spec.ClearField(paymentrecord.FieldBuyerPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SupplierPaidAt(); ok {
		_spec.SetField(paymentrecord.FieldSupplierPaidAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierPaidAtCleared() {
		_spec.ClearField(paymentrecord.FieldSupplierPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExternalRef(); ok {
		_spec.SetField(paymentrecord.FieldExternalRef, field.TypeString, value)
	}
	if _u.mutation.ExternalRefCleared() {
		_spec.ClearField(paymentrecord.FieldExternalRef, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentRecordUpdateOne is the builder for updating a single PaymentRecord entity.
type PaymentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentRecordMutation
}

// SetBuyerAmount sets the "buyer_amount" field.
func (_u *PaymentRecordUpdateOne) SetBuyerAmount(v float64) *PaymentRecordUpdateOne {
	_u.mutation.ResetBuyerAmount()
	_u.mutation.SetBuyerAmount(v)
	return _u
}

// SetNillableBuyerAmount sets the "buyer_amount" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableBuyerAmount(v *float64) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetBuyerAmount(*v)
	}
	return _u
}

// AddBuyerAmount adds value to the "buyer_amount" field.
func (_u *PaymentRecordUpdateOne) AddBuyerAmount(v float64) *PaymentRecordUpdateOne {
	_u.mutation.AddBuyerAmount(v)
	return _u
}

// SetSupplierAmount sets the "supplier_amount" field.
func (_u *PaymentRecordUpdateOne) SetSupplierAmount(v float64) *PaymentRecordUpdateOne {
	_u.mutation.ResetSupplierAmount()
	_u.mutation.SetSupplierAmount(v)
	return _u
}

// SetNillableSupplierAmount sets the "supplier_amount" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableSupplierAmount(v *float64) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetSupplierAmount(*v)
	}
	return _u
}

// AddSupplierAmount adds value to the "supplier_amount" field.
func (_u *PaymentRecordUpdateOne) AddSupplierAmount(v float64) *PaymentRecordUpdateOne {
	_u.mutation.AddSupplierAmount(v)
	return _u
}

// SetWexAmount sets the "wex_amount" field.
func (_u *PaymentRecordUpdateOne) SetWexAmount(v float64) *PaymentRecordUpdateOne {
	_u.mutation.ResetWexAmount()
	_u.mutation.SetWexAmount(v)
	return _u
}

// SetNillableWexAmount sets the "wex_amount" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableWexAmount(v *float64) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetWexAmount(*v)
	}
	return _u
}

// AddWexAmount adds value to the "wex_amount" field.
func (_u *PaymentRecordUpdateOne) AddWexAmount(v float64) *PaymentRecordUpdateOne {
	_u.mutation.AddWexAmount(v)
	return _u
}

// SetBuyerStatus sets the "buyer_status" field.
func (_u *PaymentRecordUpdateOne) SetBuyerStatus(v paymentrecord.BuyerStatus) *PaymentRecordUpdateOne {
	_u.mutation.SetBuyerStatus(v)
	return _u
}

// SetNillableBuyerStatus sets the "buyer_status" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableBuyerStatus(v *paymentrecord.BuyerStatus) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetBuyerStatus(*v)
	}
	return _u
}

// SetSupplierStatus sets the "supplier_status" field.
func (_u *PaymentRecordUpdateOne) SetSupplierStatus(v paymentrecord.SupplierStatus) *PaymentRecordUpdateOne {
	_u.mutation.SetSupplierStatus(v)
	return _u
}

// SetNillableSupplierStatus sets the "supplier_status" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableSupplierStatus(v *paymentrecord.SupplierStatus) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetSupplierStatus(*v)
	}
	return _u
}

// SetBuyerPaidAt sets the "buyer_paid_at" field.
func (_u *PaymentRecordUpdateOne) SetBuyerPaidAt(v time.Time) *PaymentRecordUpdateOne {
	_u.mutation.SetBuyerPaidAt(v)
	return _u
}

// SetNillableBuyerPaidAt sets the "buyer_paid_at" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableBuyerPaidAt(v *time.Time) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetBuyerPaidAt(*v)
	}
	return _u
}

// ClearBuyerPaidAt clears the value of the "buyer_paid_at" field.
func (_u *PaymentRecordUpdateOne) ClearBuyerPaidAt() *PaymentRecordUpdateOne {
	_u.mutation.ClearBuyerPaidAt()
	return _u
}

// SetSupplierPaidAt sets the "supplier_paid_at" field.
func (_u *PaymentRecordUpdateOne) SetSupplierPaidAt(v time.Time) *PaymentRecordUpdateOne {
	_u.mutation.SetSupplierPaidAt(v)
	return _u
}

// SetNillableSupplierPaidAt sets the "supplier_paid_at" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableSupplierPaidAt(v *time.Time) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetSupplierPaidAt(*v)
	}
	return _u
}

// ClearSupplierPaidAt clears the value of the "supplier_paid_at" field.
func (_u *PaymentRecordUpdateOne) ClearSupplierPaidAt() *PaymentRecordUpdateOne {
	_u.mutation.ClearSupplierPaidAt()
	return _u
}

// SetExternalRef sets the "external_ref" field.
func (_u *PaymentRecordUpdateOne) SetExternalRef(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetExternalRef(v)
	return _u
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableExternalRef(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetExternalRef(*v)
	}
	return _u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (_u *PaymentRecordUpdateOne) ClearExternalRef() *PaymentRecordUpdateOne {
	_u.mutation.ClearExternalRef()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PaymentRecordUpdateOne) SetUpdatedAt(v time.Time) *PaymentRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PaymentRecordMutation object of the builder.
func (_u *PaymentRecordUpdateOne) Mutation() *PaymentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the PaymentRecordUpdate builder.
func (_u *PaymentRecordUpdateOne) Where(ps ...predicate.PaymentRecord) *PaymentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentRecordUpdateOne) Select(field string, fields ...string) *PaymentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaymentRecord entity.
func (_u *PaymentRecordUpdateOne) Save(ctx context.Context) (*PaymentRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentRecordUpdateOne) SaveX(ctx context.Context) *PaymentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PaymentRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paymentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentRecordUpdateOne) check() error {
	if v, ok := _u.mutation.BuyerStatus(); ok {
		if err := paymentrecord.BuyerStatusValidator(v); err != nil {
			return &ValidationError{Name: "buyer_status", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.buyer_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SupplierStatus(); ok {
		if err := paymentrecord.SupplierStatusValidator(v); err != nil {
			return &ValidationError{Name: "supplier_status", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.supplier_status": %w`, err)}
		}
	}
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PaymentRecord.engagement"`)
	}
	return nil
}

func (_u *PaymentRecordUpdateOne) sqlSave(ctx context.Context) (_node *PaymentRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentrecord.Table, paymentrecord.Columns, sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaymentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentrecord.FieldID)
		for _, f := range fields {
			if !paymentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paymentrecord.FieldID {
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
	if value, ok := _u.mutation.BuyerAmount(); ok {
		_spec.SetField(paymentrecord.FieldBuyerAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBuyerAmount(); ok {
		_spec.AddField(paymentrecord.FieldBuyerAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SupplierAmount(); ok {
		_spec.SetField(paymentrecord.FieldSupplierAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupplierAmount(); ok {
		_spec.AddField(paymentrecord.FieldSupplierAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WexAmount(); ok {
		_spec.SetField(paymentrecord.FieldWexAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWexAmount(); ok {
		_spec.AddField(paymentrecord.FieldWexAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BuyerStatus(); ok {
		_spec.SetField(paymentrecord.FieldBuyerStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SupplierStatus(); ok {
		_spec.SetField(paymentrecord.FieldSupplierStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BuyerPaidAt(); ok {
		_spec.SetField(paymentrecord.FieldBuyerPaidAt, field.TypeTime, value)
	}
	if _u.mutation.BuyerPaidAtCleared() {
		_spec.ClearField(paymentrecord.FieldBuyerPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SupplierPaidAt(); ok {
		_spec.SetField(paymentrecord.FieldSupplierPaidAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierPaidAtCleared() {
		_spec.ClearField(paymentrecord.FieldSupplierPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExternalRef(); ok {
		_spec.SetField(paymentrecord.FieldExternalRef, field.TypeString, value)
	}
	if _u.mutation.ExternalRefCleared() {
		_spec.ClearField(paymentrecord.FieldExternalRef, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PaymentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
