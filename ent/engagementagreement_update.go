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
	"github.com/warehouse-exchange/wex/ent/engagementagreement"
	"github.com/warehouse-exchange/wex/ent/predicate"
)

// EngagementAgreementUpdate is the builder for updating EngagementAgreement entities.
type EngagementAgreementUpdate struct {
	config
	hooks    []Hook
	mutation *EngagementAgreementMutation
}

// Where appends a list predicates to the EngagementAgreementUpdate builder.
func (_u *EngagementAgreementUpdate) Where(ps ...predicate.EngagementAgreement) *EngagementAgreementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EngagementAgreementUpdate) SetStatus(v engagementagreement.Status) *EngagementAgreementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EngagementAgreementUpdate) SetNillableStatus(v *engagementagreement.Status) *EngagementAgreementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBuyerSignedAt sets the "buyer_signed_at" field.
func (_u *EngagementAgreementUpdate) SetBuyerSignedAt(v time.Time) *EngagementAgreementUpdate {
	_u.mutation.SetBuyerSignedAt(v)
	return _u
}

// SetNillableBuyerSignedAt sets the "buyer_signed_at" field if the given value is not nil.
func (_u *EngagementAgreementUpdate) SetNillableBuyerSignedAt(v *time.Time) *EngagementAgreementUpdate {
	if v != nil {
		_u.SetBuyerSignedAt(*v)
	}
	return _u
}

// ClearBuyerSignedAt clears the value of the "buyer_signed_at" field.
func (_u *EngagementAgreementUpdate) ClearBuyerSignedAt() *EngagementAgreementUpdate {
	_u.mutation.ClearBuyerSignedAt()
	return _u
}

// SetSupplierSignedAt sets the "supplier_signed_at" field.
func (_u *EngagementAgreementUpdate) SetSupplierSignedAt(v time.Time) *EngagementAgreementUpdate {
	_u.mutation.SetSupplierSignedAt(v)
	return _u
}

// SetNillableSupplierSignedAt sets the "supplier_signed_at" field if the given value is not nil.
func (_u *EngagementAgreementUpdate) SetNillableSupplierSignedAt(v *time.Time) *EngagementAgreementUpdate {
	if v != nil {
		_u.SetSupplierSignedAt(*v)
	}
	return _u
}

// ClearSupplierSignedAt clears the value of the "supplier_signed_at" field.
func (_u *EngagementAgreementUpdate) ClearSupplierSignedAt() *EngagementAgreementUpdate {
	_u.mutation.ClearSupplierSignedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *EngagementAgreementUpdate) SetExpiresAt(v time.Time) *EngagementAgreementUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *EngagementAgreementUpdate) SetNillableExpiresAt(v *time.Time) *EngagementAgreementUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *EngagementAgreementUpdate) ClearExpiresAt() *EngagementAgreementUpdate {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetSqft sets the "sqft" field.
func (_u *EngagementAgreementUpdate) SetSqft(v int) *EngagementAgreementUpdate {
	_u.mutation.ResetSqft()
	_u.mutation.SetSqft(v)
	return _u
}

// SetNillableSqft sets the "sqft" field if the given value is not nil.
func (_u *EngagementAgreementUpdate) SetNillableSqft(v *int) *EngagementAgreementUpdate {
	if v != nil {
		_u.SetSqft(*v)
	}
	return _u
}

// AddSqft adds value to the "sqft" field.
func (_u *EngagementAgreementUpdate) AddSqft(v int) *EngagementAgreementUpdate {
	_u.mutation.AddSqft(v)
	return _u
}

// ClearSqft clears the value of the "sqft" field.
func (_u *EngagementAgreementUpdate) ClearSqft() *EngagementAgreementUpdate {
	_u.mutation.ClearSqft()
	return _u
}

// SetBuyerRate sets the "buyer_rate" field.
func (_u *EngagementAgreementUpdate) SetBuyerRate(v float64) *EngagementAgreementUpdate {
	_u.mutation.ResetBuyerRate()
	_u.mutation.SetBuyerRate(v)
	return _u
}

// SetNillableBuyerRate sets the "buyer_rate" field if the given value is not nil.
func (_u *EngagementAgreementUpdate) SetNillableBuyerRate(v *float64) *EngagementAgreementUpdate {
	if v != nil {
		_u.SetBuyerRate(*v)
	}
	return _u
}

// AddBuyerRate adds value to the "buyer_rate" field.
func (_u *EngagementAgreementUpdate) AddBuyerRate(v float64) *EngagementAgreementUpdate {
	_u.mutation.AddBuyerRate(v)
	return _u
}

// ClearBuyerRate clears the value of the "buyer_rate" field.
func (_u *EngagementAgreementUpdate) ClearBuyerRate() *EngagementAgreementUpdate {
	_u.mutation.ClearBuyerRate()
	return _u
}

// SetSupplierRate sets the "supplier_rate" field.
func (_u *EngagementAgreementUpdate) SetSupplierRate(v float64) *EngagementAgreementUpdate {
	_u.mutation.ResetSupplierRate()
	_u.mutation.SetSupplierRate(v)
	return _u
}

// SetNillableSupplierRate sets the "supplier_rate" field if the given value is not nil.
func (_u *EngagementAgreementUpdate) SetNillableSupplierRate(v *float64) *EngagementAgreementUpdate {
	if v != nil {
		_u.SetSupplierRate(*v)
	}
	return _u
}

// AddSupplierRate adds value to the "supplier_rate" field.
func (_u *EngagementAgreementUpdate) AddSupplierRate(v float64) *EngagementAgreementUpdate {
	_u.mutation.AddSupplierRate(v)
	return _u
}

// ClearSupplierRate clears the value of the "supplier_rate" field.
func (_u *EngagementAgreementUpdate) ClearSupplierRate() *EngagementAgreementUpdate {
	_u.mutation.ClearSupplierRate()
	return _u
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (_u *EngagementAgreementUpdate) SetMonthlyBuyerTotal(v float64) *EngagementAgreementUpdate {
	_u.mutation.ResetMonthlyBuyerTotal()
	_u.mutation.SetMonthlyBuyerTotal(v)
	return _u
}

// SetNillableMonthlyBuyerTotal sets the "monthly_buyer_total" field if the given value is not nil.
func (_u *EngagementAgreementUpdate) SetNillableMonthlyBuyerTotal(v *float64) *EngagementAgreementUpdate {
	if v != nil {
		_u.SetMonthlyBuyerTotal(*v)
	}
	return _u
}

// AddMonthlyBuyerTotal adds value to the "monthly_buyer_total" field.
func (_u *EngagementAgreementUpdate) AddMonthlyBuyerTotal(v float64) *EngagementAgreementUpdate {
	_u.mutation.AddMonthlyBuyerTotal(v)
	return _u
}

// ClearMonthlyBuyerTotal clears the value of the "monthly_buyer_total" field.
func (_u *EngagementAgreementUpdate) ClearMonthlyBuyerTotal() *EngagementAgreementUpdate {
	_u.mutation.ClearMonthlyBuyerTotal()
	return _u
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (_u *EngagementAgreementUpdate) SetMonthlySupplierPayout(v float64) *EngagementAgreementUpdate {
	_u.mutation.ResetMonthlySupplierPayout()
	_u.mutation.SetMonthlySupplierPayout(v)
	return _u
}

// SetNillableMonthlySupplierPayout sets the "monthly_supplier_payout" field if the given value is not nil.
func (_u *EngagementAgreementUpdate) SetNillableMonthlySupplierPayout(v *float64) *EngagementAgreementUpdate {
	if v != nil {
		_u.SetMonthlySupplierPayout(*v)
	}
	return _u
}

// AddMonthlySupplierPayout adds value to the "monthly_supplier_payout" field.
func (_u *EngagementAgreementUpdate) AddMonthlySupplierPayout(v float64) *EngagementAgreementUpdate {
	_u.mutation.AddMonthlySupplierPayout(v)
	return _u
}

// ClearMonthlySupplierPayout clears the value of the "monthly_supplier_payout" field.
func (_u *EngagementAgreementUpdate) ClearMonthlySupplierPayout() *EngagementAgreementUpdate {
	_u.mutation.ClearMonthlySupplierPayout()
	return _u
}

// SetExternalRef sets the "external_ref" field.
func (_u *EngagementAgreementUpdate) SetExternalRef(v string) *EngagementAgreementUpdate {
	_u.mutation.SetExternalRef(v)
	return _u
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_u *EngagementAgreementUpdate) SetNillableExternalRef(v *string) *EngagementAgreementUpdate {
	if v != nil {
		_u.SetExternalRef(*v)
	}
	return _u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (_u *EngagementAgreementUpdate) ClearExternalRef() *EngagementAgreementUpdate {
	_u.mutation.ClearExternalRef()
	return _u
}

// SetDocumentURL sets the "document_url" field.
func (_u *EngagementAgreementUpdate) SetDocumentURL(v string) *EngagementAgreementUpdate {
	_u.mutation.SetDocumentURL(v)
	return _u
}

// SetNillableDocumentURL sets the "document_url" field if the given value is not nil.
func (_u *EngagementAgreementUpdate) SetNillableDocumentURL(v *string) *EngagementAgreementUpdate {
	if v != nil {
		_u.SetDocumentURL(*v)
	}
	return _u
}

// ClearDocumentURL clears the value of the "document_url" field.
func (_u *EngagementAgreementUpdate) ClearDocumentURL() *EngagementAgreementUpdate {
	_u.mutation.ClearDocumentURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EngagementAgreementUpdate) SetUpdatedAt(v time.Time) *EngagementAgreementUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EngagementAgreementMutation object of the builder.
func (_u *EngagementAgreementUpdate) Mutation() *EngagementAgreementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EngagementAgreementUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementAgreementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EngagementAgreementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementAgreementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EngagementAgreementUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := engagementagreement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementAgreementUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := engagementagreement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EngagementAgreement.status": %w`, err)}
		}
	}
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EngagementAgreement.engagement"`)
	}
	return nil
}

func (_u *EngagementAgreementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagementagreement.Table, engagementagreement.Columns, sqlgraph.NewFieldSpec(engagementagreement.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(engagementagreement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BuyerSignedAt(); ok {
		_spec.SetField(engagementagreement.FieldBuyerSignedAt, field.TypeTime, value)
	}
	if _u.mutation.BuyerSignedAtCleared() {
		_spec.ClearField(engagementagreement.FieldBuyerSignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SupplierSignedAt(); ok {
		_spec.SetField(engagementagreement.FieldSupplierSignedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierSignedAtCleared() {
		_spec.ClearField(engagementagreement.FieldSupplierSignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(engagementagreement.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(engagementagreement.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Sqft(); ok {
		_spec.SetField(engagementagreement.FieldSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSqft(); ok {
		_spec.AddField(engagementagreement.FieldSqft, field.TypeInt, value)
	}
	if _u.mutation.SqftCleared() {
		_spec.ClearField(engagementagreement.FieldSqft, field.TypeInt)
	}
	if value, ok := _u.mutation.BuyerRate(); ok {
		_spec.SetField(engagementagreement.FieldBuyerRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBuyerRate(); ok {
		_spec.AddField(engagementagreement.FieldBuyerRate, field.TypeFloat64, value)
	}
	if _u.mutation.BuyerRateCleared() {
		_spec.ClearField(engagementagreement.FieldBuyerRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SupplierRate(); ok {
		_spec.SetField(engagementagreement.FieldSupplierRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupplierRate(); ok {
		_spec.AddField(engagementagreement.FieldSupplierRate, field.TypeFloat64, value)
	}
	if _u.mutation.SupplierRateCleared() {
		_spec.ClearField(engagementagreement.FieldSupplierRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MonthlyBuyerTotal(); ok {
		_spec.SetField(engagementagreement.FieldMonthlyBuyerTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyBuyerTotal(); ok {
		_spec.AddField(engagementagreement.FieldMonthlyBuyerTotal, field.TypeFloat64, value)
	}
	if _u.mutation.MonthlyBuyerTotalCleared() {
		_spec.ClearField(engagementagreement.FieldMonthlyBuyerTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MonthlySupplierPayout(); ok {
		_spec.SetField(engagementagreement.FieldMonthlySupplierPayout, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlySupplierPayout(); ok {
		_spec.AddField(engagementagreement.FieldMonthlySupplierPayout, field.TypeFloat64, value)
	}
	if _u.mutation.MonthlySupplierPayoutCleared() {
		_spec.ClearField(engagementagreement.FieldMonthlySupplierPayout, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExternalRef(); ok {
		_spec.SetField(engagementagreement.FieldExternalRef, field.TypeString, value)
	}
	if _u.mutation.ExternalRefCleared() {
		_spec.ClearField(engagementagreement.FieldExternalRef, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentURL(); ok {
		_spec.SetField(engagementagreement.FieldDocumentURL, field.TypeString, value)
	}
	if _u.mutation.DocumentURLCleared() {
		_spec.ClearField(engagementagreement.FieldDocumentURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(engagementagreement.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagementagreement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EngagementAgreementUpdateOne is the builder for updating a single EngagementAgreement entity.
type EngagementAgreementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EngagementAgreementMutation
}

// SetStatus sets the "status" field.
func (_u *EngagementAgreementUpdateOne) SetStatus(v engagementagreement.Status) *EngagementAgreementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EngagementAgreementUpdateOne) SetNillableStatus(v *engagementagreement.Status) *EngagementAgreementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBuyerSignedAt sets the "buyer_signed_at" field.
func (_u *EngagementAgreementUpdateOne) SetBuyerSignedAt(v time.Time) *EngagementAgreementUpdateOne {
	_u.mutation.SetBuyerSignedAt(v)
	return _u
}

// SetNillableBuyerSignedAt sets the "buyer_signed_at" field if the given value is not nil.
func (_u *EngagementAgreementUpdateOne) SetNillableBuyerSignedAt(v *time.Time) *EngagementAgreementUpdateOne {
	if v != nil {
		_u.SetBuyerSignedAt(*v)
	}
	return _u
}

// ClearBuyerSignedAt clears the value of the "buyer_signed_at" field.
func (_u *EngagementAgreementUpdateOne) ClearBuyerSignedAt() *EngagementAgreementUpdateOne {
	_u.mutation.ClearBuyerSignedAt()
	return _u
}

// SetSupplierSignedAt sets the "supplier_signed_at" field.
func (_u *EngagementAgreementUpdateOne) SetSupplierSignedAt(v time.Time) *EngagementAgreementUpdateOne {
	_u.mutation.SetSupplierSignedAt(v)
	return _u
}

// SetNillableSupplierSignedAt sets the "supplier_signed_at" field if the given value is not nil.
func (_u *EngagementAgreementUpdateOne) SetNillableSupplierSignedAt(v *time.Time) *EngagementAgreementUpdateOne {
	if v != nil {
		_u.SetSupplierSignedAt(*v)
	}
	return _u
}

// ClearSupplierSignedAt clears the value of the "supplier_signed_at" field.
func (_u *EngagementAgreementUpdateOne) ClearSupplierSignedAt() *EngagementAgreementUpdateOne {
	_u.mutation.ClearSupplierSignedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *EngagementAgreementUpdateOne) SetExpiresAt(v time.Time) *EngagementAgreementUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *EngagementAgreementUpdateOne) SetNillableExpiresAt(v *time.Time) *EngagementAgreementUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (_u *EngagementAgreementUpdateOne) ClearExpiresAt() *EngagementAgreementUpdateOne {
	_u.mutation.ClearExpiresAt()
	return _u
}

// SetSqft sets the "sqft" field.
func (_u *EngagementAgreementUpdateOne) SetSqft(v int) *EngagementAgreementUpdateOne {
	_u.mutation.ResetSqft()
	_u.mutation.SetSqft(v)
	return _u
}

// SetNillableSqft sets the "sqft" field if the given value is not nil.
func (_u *EngagementAgreementUpdateOne) SetNillableSqft(v *int) *EngagementAgreementUpdateOne {
	if v != nil {
		_u.SetSqft(*v)
	}
	return _u
}

// AddSqft adds value to the "sqft" field.
func (_u *EngagementAgreementUpdateOne) AddSqft(v int) *EngagementAgreementUpdateOne {
	_u.mutation.AddSqft(v)
	return _u
}

// ClearSqft clears the value of the "sqft" field.
func (_u *EngagementAgreementUpdateOne) ClearSqft() *EngagementAgreementUpdateOne {
	_u.mutation.ClearSqft()
	return _u
}

// SetBuyerRate sets the "buyer_rate" field.
func (_u *EngagementAgreementUpdateOne) SetBuyerRate(v float64) *EngagementAgreementUpdateOne {
	_u.mutation.ResetBuyerRate()
	_u.mutation.SetBuyerRate(v)
	return _u
}

// SetNillableBuyerRate sets the "buyer_rate" field if the given value is not nil.
func (_u *EngagementAgreementUpdateOne) SetNillableBuyerRate(v *float64) *EngagementAgreementUpdateOne {
	if v != nil {
		_u.SetBuyerRate(*v)
	}
	return _u
}

// AddBuyerRate adds value to the "buyer_rate" field.
func (_u *EngagementAgreementUpdateOne) AddBuyerRate(v float64) *EngagementAgreementUpdateOne {
	_u.mutation.AddBuyerRate(v)
	return _u
}

// ClearBuyerRate clears the value of the "buyer_rate" field.
func (_u *EngagementAgreementUpdateOne) ClearBuyerRate() *EngagementAgreementUpdateOne {
	_u.mutation.ClearBuyerRate()
	return _u
}

// SetSupplierRate sets the "supplier_rate" field.
func (_u *EngagementAgreementUpdateOne) SetSupplierRate(v float64) *EngagementAgreementUpdateOne {
	_u.mutation.ResetSupplierRate()
	_u.mutation.SetSupplierRate(v)
	return _u
}

// SetNillableSupplierRate sets the "supplier_rate" field if the given value is not nil.
func (_u *EngagementAgreementUpdateOne) SetNillableSupplierRate(v *float64) *EngagementAgreementUpdateOne {
	if v != nil {
		_u.SetSupplierRate(*v)
	}
	return _u
}

// AddSupplierRate adds value to the "supplier_rate" field.
func (_u *EngagementAgreementUpdateOne) AddSupplierRate(v float64) *EngagementAgreementUpdateOne {
	_u.mutation.AddSupplierRate(v)
	return _u
}

// ClearSupplierRate clears the value of the "supplier_rate" field.
func (_u *EngagementAgreementUpdateOne) ClearSupplierRate() *EngagementAgreementUpdateOne {
	_u.mutation.ClearSupplierRate()
	return _u
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (_u *EngagementAgreementUpdateOne) SetMonthlyBuyerTotal(v float64) *EngagementAgreementUpdateOne {
	_u.mutation.ResetMonthlyBuyerTotal()
	_u.mutation.SetMonthlyBuyerTotal(v)
	return _u
}

// SetNillableMonthlyBuyerTotal sets the "monthly_buyer_total" field if the given value is not nil.
func (_u *EngagementAgreementUpdateOne) SetNillableMonthlyBuyerTotal(v *float64) *EngagementAgreementUpdateOne {
	if v != nil {
		_u.SetMonthlyBuyerTotal(*v)
	}
	return _u
}

// AddMonthlyBuyerTotal adds value to the "monthly_buyer_total" field.
func (_u *EngagementAgreementUpdateOne) AddMonthlyBuyerTotal(v float64) *EngagementAgreementUpdateOne {
	_u.mutation.AddMonthlyBuyerTotal(v)
	return _u
}

// ClearMonthlyBuyerTotal clears the value of the "monthly_buyer_total" field.
func (_u *EngagementAgreementUpdateOne) ClearMonthlyBuyerTotal() *EngagementAgreementUpdateOne {
	_u.mutation.ClearMonthlyBuyerTotal()
	return _u
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (_u *EngagementAgreementUpdateOne) SetMonthlySupplierPayout(v float64) *EngagementAgreementUpdateOne {
	_u.mutation.ResetMonthlySupplierPayout()
	_u.mutation.SetMonthlySupplierPayout(v)
	return _u
}

// SetNillableMonthlySupplierPayout sets the "monthly_supplier_payout" field if the given value is not nil.
func (_u *EngagementAgreementUpdateOne) SetNillableMonthlySupplierPayout(v *float64) *EngagementAgreementUpdateOne {
	if v != nil {
		_u.SetMonthlySupplierPayout(*v)
	}
	return _u
}

// AddMonthlySupplierPayout adds value to the "monthly_supplier_payout" field.
func (_u *EngagementAgreementUpdateOne) AddMonthlySupplierPayout(v float64) *EngagementAgreementUpdateOne {
	_u.mutation.AddMonthlySupplierPayout(v)
	return _u
}

// ClearMonthlySupplierPayout clears the value of the "monthly_supplier_payout" field.
func (_u *EngagementAgreementUpdateOne) ClearMonthlySupplierPayout() *EngagementAgreementUpdateOne {
	_u.mutation.ClearMonthlySupplierPayout()
	return _u
}

// SetExternalRef sets the "external_ref" field.
func (_u *EngagementAgreementUpdateOne) SetExternalRef(v string) *EngagementAgreementUpdateOne {
	_u.mutation.SetExternalRef(v)
	return _u
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_u *EngagementAgreementUpdateOne) SetNillableExternalRef(v *string) *EngagementAgreementUpdateOne {
	if v != nil {
		_u.SetExternalRef(*v)
	}
	return _u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (_u *EngagementAgreementUpdateOne) ClearExternalRef() *EngagementAgreementUpdateOne {
	_u.mutation.ClearExternalRef()
	return _u
}

// SetDocumentURL sets the "document_url" field.
func (_u *EngagementAgreementUpdateOne) SetDocumentURL(v string) *EngagementAgreementUpdateOne {
	_u.mutation.SetDocumentURL(v)
	return _u
}

// SetNillableDocumentURL sets the "document_url" field if the given value is not nil.
func (_u *EngagementAgreementUpdateOne) SetNillableDocumentURL(v *string) *EngagementAgreementUpdateOne {
	if v != nil {
		_u.SetDocumentURL(*v)
	}
	return _u
}

// ClearDocumentURL clears the value of the "document_url" field.
func (_u *EngagementAgreementUpdateOne) ClearDocumentURL() *EngagementAgreementUpdateOne {
	_u.mutation.ClearDocumentURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EngagementAgreementUpdateOne) SetUpdatedAt(v time.Time) *EngagementAgreementUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EngagementAgreementMutation object of the builder.
func (_u *EngagementAgreementUpdateOne) Mutation() *EngagementAgreementMutation {
	return _u.mutation
}

// Where appends a list predicates to the EngagementAgreementUpdate builder.
func (_u *EngagementAgreementUpdateOne) Where(ps ...predicate.EngagementAgreement) *EngagementAgreementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EngagementAgreementUpdateOne) Select(field string, fields ...string) *EngagementAgreementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EngagementAgreement entity.
func (_u *EngagementAgreementUpdateOne) Save(ctx context.Context) (*EngagementAgreement, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EngagementAgreementUpdateOne) SaveX(ctx context.Context) *EngagementAgreement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EngagementAgreementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EngagementAgreementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EngagementAgreementUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := engagementagreement.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EngagementAgreementUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := engagementagreement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EngagementAgreement.status": %w`, err)}
		}
	}
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EngagementAgreement.engagement"`)
	}
	return nil
}

func (_u *EngagementAgreementUpdateOne) sqlSave(ctx context.Context) (_node *EngagementAgreement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(engagementagreement.Table, engagementagreement.Columns, sqlgraph.NewFieldSpec(engagementagreement.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EngagementAgreement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, engagementagreement.FieldID)
		for _, f := range fields {
			if !engagementagreement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != engagementagreement.FieldID {
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
		_spec.SetField(engagementagreement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BuyerSignedAt(); ok {
		_spec.SetField(engagementagreement.FieldBuyerSignedAt, field.TypeTime, value)
	}
	if _u.mutation.BuyerSignedAtCleared() {
		_spec.ClearField(engagementagreement.FieldBuyerSignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SupplierSignedAt(); ok {
		_spec.SetField(engagementagreement.FieldSupplierSignedAt, field.TypeTime, value)
	}
	if _u.mutation.SupplierSignedAtCleared() {
		_spec.ClearField(engagementagreement.FieldSupplierSignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(engagementagreement.FieldExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.ExpiresAtCleared() {
		_spec.ClearField(engagementagreement.FieldExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Sqft(); ok {
		_spec.SetField(engagementagreement.FieldSqft, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSqft(); ok {
		_spec.AddField(engagementagreement.FieldSqft, field.TypeInt, value)
	}
	if _u.mutation.SqftCleared() {
		_spec.ClearField(engagementagreement.FieldSqft, field.TypeInt)
	}
	if value, ok := _u.mutation.BuyerRate(); ok {
		_spec.SetField(engagementagreement.FieldBuyerRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBuyerRate(); ok {
		_spec.AddField(engagementagreement.FieldBuyerRate, field.TypeFloat64, value)
	}
	if _u.mutation.BuyerRateCleared() {
		_spec.ClearField(engagementagreement.FieldBuyerRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SupplierRate(); ok {
		_spec.SetField(engagementagreement.FieldSupplierRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSupplierRate(); ok {
		_spec.AddField(engagementagreement.FieldSupplierRate, field.TypeFloat64, value)
	}
	if _u.mutation.SupplierRateCleared() {
		_spec.ClearField(engagementagreement.FieldSupplierRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MonthlyBuyerTotal(); ok {
		_spec.SetField(engagementagreement.FieldMonthlyBuyerTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyBuyerTotal(); ok {
		_spec.AddField(engagementagreement.FieldMonthlyBuyerTotal, field.TypeFloat64, value)
	}
	if _u.mutation.MonthlyBuyerTotalCleared() {
		_spec.ClearField(engagementagreement.FieldMonthlyBuyerTotal, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MonthlySupplierPayout(); ok {
		_spec.SetField(engagementagreement.FieldMonthlySupplierPayout, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlySupplierPayout(); ok {
		_spec.AddField(engagementagreement.FieldMonthlySupplierPayout, field.TypeFloat64, value)
	}
	if _u.mutation.MonthlySupplierPayoutCleared() {
		_spec.ClearField(engagementagreement.FieldMonthlySupplierPayout, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExternalRef(); ok {
		_spec.SetField(engagementagreement.FieldExternalRef, field.TypeString, value)
	}
	if _u.mutation.ExternalRefCleared() {
		_spec.ClearField(engagementagreement.FieldExternalRef, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentURL(); ok {
		_spec.SetField(engagementagreement.FieldDocumentURL, field.TypeString, value)
	}
	if _u.mutation.DocumentURLCleared() {
		_spec.ClearField(engagementagreement.FieldDocumentURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(engagementagreement.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EngagementAgreement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{engagementagreement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
