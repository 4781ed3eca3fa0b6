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
	"github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementagreement"
)

// EngagementAgreementCreate is the builder for creating a EngagementAgreement entity.
type EngagementAgreementCreate struct {
	config
	mutation *EngagementAgreementMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEngagementID sets the "engagement_id" field.
func (_c *EngagementAgreementCreate) SetEngagementID(v string) *EngagementAgreementCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetAgreementType sets the "agreement_type" field.
func (_c *EngagementAgreementCreate) SetAgreementType(v engagementagreement.AgreementType) *EngagementAgreementCreate {
	_c.mutation.SetAgreementType(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *EngagementAgreementCreate) SetVersion(v int) *EngagementAgreementCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableVersion(v *int) *EngagementAgreementCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EngagementAgreementCreate) SetStatus(v engagementagreement.Status) *EngagementAgreementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableStatus(v *engagementagreement.Status) *EngagementAgreementCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBuyerSignedAt sets the "buyer_signed_at" field.
func (_c *EngagementAgreementCreate) SetBuyerSignedAt(v time.Time) *EngagementAgreementCreate {
	_c.mutation.SetBuyerSignedAt(v)
	return _c
}

// SetNillableBuyerSignedAt sets the "buyer_signed_at" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableBuyerSignedAt(v *time.Time) *EngagementAgreementCreate {
	if v != nil {
		_c.SetBuyerSignedAt(*v)
	}
	return _c
}

// SetSupplierSignedAt sets the "supplier_signed_at" field.
func (_c *EngagementAgreementCreate) SetSupplierSignedAt(v time.Time) *EngagementAgreementCreate {
	_c.mutation.SetSupplierSignedAt(v)
	return _c
}

// SetNillableSupplierSignedAt sets the "supplier_signed_at" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableSupplierSignedAt(v *time.Time) *EngagementAgreementCreate {
	if v != nil {
		_c.SetSupplierSignedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *EngagementAgreementCreate) SetExpiresAt(v time.Time) *EngagementAgreementCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableExpiresAt(v *time.Time) *EngagementAgreementCreate {
	if v != nil {
		_c.SetExpiresAt(*v)
	}
	return _c
}

// SetSqft sets the "sqft" field.
func (_c *EngagementAgreementCreate) SetSqft(v int) *EngagementAgreementCreate {
	_c.mutation.SetSqft(v)
	return _c
}

// SetNillableSqft sets the "sqft" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableSqft(v *int) *EngagementAgreementCreate {
	if v != nil {
		_c.SetSqft(*v)
	}
	return _c
}

// SetBuyerRate sets the "buyer_rate" field.
func (_c *EngagementAgreementCreate) SetBuyerRate(v float64) *EngagementAgreementCreate {
	_c.mutation.SetBuyerRate(v)
	return _c
}

// SetNillableBuyerRate sets the "buyer_rate" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableBuyerRate(v *float64) *EngagementAgreementCreate {
	if v != nil {
		_c.SetBuyerRate(*v)
	}
	return _c
}

// SetSupplierRate sets the "supplier_rate" field.
func (_c *EngagementAgreementCreate) SetSupplierRate(v float64) *EngagementAgreementCreate {
	_c.mutation.SetSupplierRate(v)
	return _c
}

// SetNillableSupplierRate sets the "supplier_rate" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableSupplierRate(v *float64) *EngagementAgreementCreate {
	if v != nil {
		_c.SetSupplierRate(*v)
	}
	return _c
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (_c *EngagementAgreementCreate) SetMonthlyBuyerTotal(v float64) *EngagementAgreementCreate {
	_c.mutation.SetMonthlyBuyerTotal(v)
	return _c
}

// SetNillableMonthlyBuyerTotal sets the "monthly_buyer_total" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableMonthlyBuyerTotal(v *float64) *EngagementAgreementCreate {
	if v != nil {
		_c.SetMonthlyBuyerTotal(*v)
	}
	return _c
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (_c *EngagementAgreementCreate) SetMonthlySupplierPayout(v float64) *EngagementAgreementCreate {
	_c.mutation.SetMonthlySupplierPayout(v)
	return _c
}

// SetNillableMonthlySupplierPayout sets the "monthly_supplier_payout" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableMonthlySupplierPayout(v *float64) *EngagementAgreementCreate {
	if v != nil {
		_c.SetMonthlySupplierPayout(*v)
	}
	return _c
}

// SetExternalRef sets the "external_ref" field.
func (_c *EngagementAgreementCreate) SetExternalRef(v string) *EngagementAgreementCreate {
	_c.mutation.SetExternalRef(v)
	return _c
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableExternalRef(v *string) *EngagementAgreementCreate {
	if v != nil {
		_c.SetExternalRef(*v)
	}
	return _c
}

// SetDocumentURL sets the "document_url" field.
func (_c *EngagementAgreementCreate) SetDocumentURL(v string) *EngagementAgreementCreate {
	_c.mutation.SetDocumentURL(v)
	return _c
}

// SetNillableDocumentURL sets the "document_url" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableDocumentURL(v *string) *EngagementAgreementCreate {
	if v != nil {
		_c.SetDocumentURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EngagementAgreementCreate) SetCreatedAt(v time.Time) *EngagementAgreementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableCreatedAt(v *time.Time) *EngagementAgreementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EngagementAgreementCreate) SetUpdatedAt(v time.Time) *EngagementAgreementCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EngagementAgreementCreate) SetNillableUpdatedAt(v *time.Time) *EngagementAgreementCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EngagementAgreementCreate) SetID(v string) *EngagementAgreementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEngagement sets the "engagement" edge to the Engagement entity.
func (_c *EngagementAgreementCreate) SetEngagement(v *Engagement) *EngagementAgreementCreate {
	return _c.SetEngagementID(v.ID)
}

// Mutation returns the EngagementAgreementMutation object of the builder.
func (_c *EngagementAgreementCreate) Mutation() *EngagementAgreementMutation {
	return _c.mutation
}

// Save creates the EngagementAgreement in the database.
func (_c *EngagementAgreementCreate) Save(ctx context.Context) (*EngagementAgreement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EngagementAgreementCreate) SaveX(ctx context.Context) *EngagementAgreement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementAgreementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementAgreementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EngagementAgreementCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := engagementagreement.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := engagementagreement.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := engagementagreement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := engagementagreement.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EngagementAgreementCreate) check() error {
	if _, ok := _c.mutation.EngagementID(); !ok {
		return &ValidationError{Name: "engagement_id", err: errors.New(`ent: missing required field "EngagementAgreement.engagement_id"`)}
	}
	if _, ok := _c.mutation.AgreementType(); !ok {
		return &ValidationError{Name: "agreement_type", err: errors.New(`ent: missing required field "EngagementAgreement.agreement_type"`)}
	}
	if v, ok := _c.mutation.AgreementType(); ok {
		if err := engagementagreement.AgreementTypeValidator(v); err != nil {
			return &ValidationError{Name: "agreement_type", err: fmt.Errorf(`ent: validator failed for field "EngagementAgreement.agreement_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "EngagementAgreement.version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EngagementAgreement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := engagementagreement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EngagementAgreement.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EngagementAgreement.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EngagementAgreement.updated_at"`)}
	}
	if len(_c.mutation.EngagementIDs()) == 0 {
		return &ValidationError{Name: "engagement", err: errors.New(`ent: missing required edge "EngagementAgreement.engagement"`)}
	}
	return nil
}

func (_c *EngagementAgreementCreate) sqlSave(ctx context.Context) (*EngagementAgreement, error) {
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
			return nil, fmt.Errorf("unexpected EngagementAgreement.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EngagementAgreementCreate) createSpec() (*EngagementAgreement, *sqlgraph.CreateSpec) {
	var (
		_node = &EngagementAgreement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(engagementagreement.Table, sqlgraph.NewFieldSpec(engagementagreement.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgreementType(); ok {
		_spec.SetField(engagementagreement.FieldAgreementType, field.TypeEnum, value)
		_node.AgreementType = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(engagementagreement.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(engagementagreement.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BuyerSignedAt(); ok {
		_spec.SetField(engagementagreement.FieldBuyerSignedAt, field.TypeTime, value)
		_node.BuyerSignedAt = &value
	}
	if value, ok := _c.mutation.SupplierSignedAt(); ok {
		_spec.SetField(engagementagreement.FieldSupplierSignedAt, field.TypeTime, value)
		_node.SupplierSignedAt = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(engagementagreement.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = &value
	}
	if value, ok := _c.mutation.Sqft(); ok {
		_spec.SetField(engagementagreement.FieldSqft, field.TypeInt, value)
		_node.Sqft = value
	}
	if value, ok := _c.mutation.BuyerRate(); ok {
		_spec.SetField(engagementagreement.FieldBuyerRate, field.TypeFloat64, value)
		_node.BuyerRate = value
	}
	if value, ok := _c.mutation.SupplierRate(); ok {
		_spec.SetField(engagementagreement.FieldSupplierRate, field.TypeFloat64, value)
		_node.SupplierRate = value
	}
	if value, ok := _c.mutation.MonthlyBuyerTotal(); ok {
		_spec.SetField(engagementagreement.FieldMonthlyBuyerTotal, field.TypeFloat64, value)
		_node.MonthlyBuyerTotal = value
	}
	if value, ok := _c.mutation.MonthlySupplierPayout(); ok {
		_spec.SetField(engagementagreement.FieldMonthlySupplierPayout, field.TypeFloat64, value)
		_node.MonthlySupplierPayout = value
	}
	if value, ok := _c.mutation.ExternalRef(); ok {
		_spec.SetField(engagementagreement.FieldExternalRef, field.TypeString, value)
		_node.ExternalRef = value
	}
	if value, ok := _c.mutation.DocumentURL(); ok {
		_spec.SetField(engagementagreement.FieldDocumentURL, field.TypeString, value)
		_node.DocumentURL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(engagementagreement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(engagementagreement.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EngagementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   engagementagreement.EngagementTable,
			Columns: []string{engagementagreement.EngagementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(engagement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EngagementID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EngagementAgreement.Create().
//		SetEngagementID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EngagementAgreementUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *EngagementAgreementCreate) OnConflict(opts ...sql.ConflictOption) *EngagementAgreementUpsertOne {
	_c.conflict = opts
	return &EngagementAgreementUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EngagementAgreement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EngagementAgreementCreate) OnConflictColumns(columns ...string) *EngagementAgreementUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EngagementAgreementUpsertOne{
		create: _c,
	}
}

type (
	// EngagementAgreementUpsertOne is the builder for "upsert"-ing
	//  one EngagementAgreement node.
	EngagementAgreementUpsertOne struct {
		create *EngagementAgreementCreate
	}

	// EngagementAgreementUpsert is the "OnConflict" setter.
	EngagementAgreementUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *EngagementAgreementUpsert) SetStatus(v engagementagreement.Status) *EngagementAgreementUpsert {
	u.Set(engagementagreement.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EngagementAgreementUpsert) UpdateStatus() *EngagementAgreementUpsert {
	u.SetExcluded(engagementagreement.FieldStatus)
	return u
}

// SetBuyerSignedAt sets the "buyer_signed_at" field.
func (u *EngagementAgreementUpsert) SetBuyerSignedAt(v time.Time) *EngagementAgreementUpsert {
	u.Set(engagementagreement.FieldBuyerSignedAt, v)
	return u
}

// UpdateBuyerSignedAt sets the "buyer_signed_at" field to the value that was provided on create.
func (u *EngagementAgreementUpsert) UpdateBuyerSignedAt() *EngagementAgreementUpsert {
	u.SetExcluded(engagementagreement.FieldBuyerSignedAt)
	return u
}

// ClearBuyerSignedAt clears the value of the "buyer_signed_at" field.
func (u *EngagementAgreementUpsert) ClearBuyerSignedAt() *EngagementAgreementUpsert {
	u.SetNull(engagementagreement.FieldBuyerSignedAt)
	return u
}

// SetSupplierSignedAt sets the "supplier_signed_at" field.
func (u *EngagementAgreementUpsert) SetSupplierSignedAt(v time.Time) *EngagementAgreementUpsert {
	u.Set(engagementagreement.FieldSupplierSignedAt, v)
	return u
}

// UpdateSupplierSignedAt sets the "supplier_signed_at" field to the value that was provided on create.
func (u *EngagementAgreementUpsert) UpdateSupplierSignedAt() *EngagementAgreementUpsert {
	u.SetExcluded(engagementagreement.FieldSupplierSignedAt)
	return u
}

// ClearSupplierSignedAt clears the value of the "supplier_signed_at" field.
func (u *EngagementAgreementUpsert) ClearSupplierSignedAt() *EngagementAgreementUpsert {
	u.SetNull(engagementagreement.FieldSupplierSignedAt)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *EngagementAgreementUpsert) SetExpiresAt(v time.Time) *EngagementAgreementUpsert {
	u.Set(engagementagreement.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *EngagementAgreementUpsert) UpdateExpiresAt() *EngagementAgreementUpsert {
	u.SetExcluded(engagementagreement.FieldExpiresAt)
	return u
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *EngagementAgreementUpsert) ClearExpiresAt() *EngagementAgreementUpsert {
	u.SetNull(engagementagreement.FieldExpiresAt)
	return u
}

// SetSqft sets the "sqft" field.
func (u *EngagementAgreementUpsert) SetSqft(v int) *EngagementAgreementUpsert {
	u.Set(engagementagreement.FieldSqft, v)
	return u
}

// UpdateSqft sets the "sqft" field to the value that was provided on create.
func (u *EngagementAgreementUpsert) UpdateSqft() *EngagementAgreementUpsert {
	u.SetExcluded(engagementagreement.FieldSqft)
	return u
}

// AddSqft adds v to the "sqft" field.
func (u *EngagementAgreementUpsert) AddSqft(v int) *EngagementAgreementUpsert {
	u.Add(engagementagreement.FieldSqft, v)
	return u
}

// ClearSqft clears the value of the "sqft" field.
func (u *EngagementAgreementUpsert) ClearSqft() *EngagementAgreementUpsert {
	u.SetNull(engagementagreement.FieldSqft)
	return u
}

// SetBuyerRate sets the "buyer_rate" field.
func (u *EngagementAgreementUpsert) SetBuyerRate(v float64) *EngagementAgreementUpsert {
	u.Set(engagementagreement.FieldBuyerRate, v)
	return u
}

// UpdateBuyerRate sets the "buyer_rate" field to the value that was provided on create.
func (u *EngagementAgreementUpsert) UpdateBuyerRate() *EngagementAgreementUpsert {
	u.SetExcluded(engagementagreement.FieldBuyerRate)
	return u
}

// AddBuyerRate adds v to the "buyer_rate" field.
func (u *EngagementAgreementUpsert) AddBuyerRate(v float64) *EngagementAgreementUpsert {
	u.Add(engagementagreement.FieldBuyerRate, v)
	return u
}

// ClearBuyerRate clears the value of the "buyer_rate" field.
func (u *EngagementAgreementUpsert) ClearBuyerRate() *EngagementAgreementUpsert {
	u.SetNull(engagementagreement.FieldBuyerRate)
	return u
}

// SetSupplierRate sets the "supplier_rate" field.
func (u *EngagementAgreementUpsert) SetSupplierRate(v float64) *EngagementAgreementUpsert {
	u.Set(engagementagreement.FieldSupplierRate, v)
	return u
}

// UpdateSupplierRate sets the "supplier_rate" field to the value that was provided on create.
func (u *EngagementAgreementUpsert) UpdateSupplierRate() *EngagementAgreementUpsert {
	u.SetExcluded(engagementagreement.FieldSupplierRate)
	return u
}

// AddSupplierRate adds v to the "supplier_rate" field.
func (u *EngagementAgreementUpsert) AddSupplierRate(v float64) *EngagementAgreementUpsert {
	u.Add(engagementagreement.FieldSupplierRate, v)
	return u
}

// ClearSupplierRate clears the value of the "supplier_rate" field.
func (u *EngagementAgreementUpsert) ClearSupplierRate() *EngagementAgreementUpsert {
	u.SetNull(engagementagreement.FieldSupplierRate)
	return u
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (u *EngagementAgreementUpsert) SetMonthlyBuyerTotal(v float64) *EngagementAgreementUpsert {
	u.Set(engagementagreement.FieldMonthlyBuyerTotal, v)
	return u
}

// UpdateMonthlyBuyerTotal sets the "monthly_buyer_total" field to the value that was provided on create.
func (u *EngagementAgreementUpsert) UpdateMonthlyBuyerTotal() *EngagementAgreementUpsert {
	u.SetExcluded(engagementagreement.FieldMonthlyBuyerTotal)
	return u
}

// AddMonthlyBuyerTotal adds v to the "monthly_buyer_total" field.
func (u *EngagementAgreementUpsert) AddMonthlyBuyerTotal(v float64) *EngagementAgreementUpsert {
	u.Add(engagementagreement.FieldMonthlyBuyerTotal, v)
	return u
}

// ClearMonthlyBuyerTotal clears the value of the "monthly_buyer_total" field.
func (u *EngagementAgreementUpsert) ClearMonthlyBuyerTotal() *EngagementAgreementUpsert {
	u.SetNull(engagementagreement.FieldMonthlyBuyerTotal)
	return u
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (u *EngagementAgreementUpsert) SetMonthlySupplierPayout(v float64) *EngagementAgreementUpsert {
	u.Set(engagementagreement.FieldMonthlySupplierPayout, v)
	return u
}

// UpdateMonthlySupplierPayout sets the "monthly_supplier_payout" field to the value that was provided on create.
func (u *EngagementAgreementUpsert) UpdateMonthlySupplierPayout() *EngagementAgreementUpsert {
	u.SetExcluded(engagementagreement.FieldMonthlySupplierPayout)
	return u
}

// AddMonthlySupplierPayout adds v to the "monthly_supplier_payout" field.
func (u *EngagementAgreementUpsert) AddMonthlySupplierPayout(v float64) *EngagementAgreementUpsert {
	u.Add(engagementagreement.FieldMonthlySupplierPayout, v)
	return u
}

// ClearMonthlySupplierPayout clears the value of the "monthly_supplier_payout" field.
func (u *EngagementAgreementUpsert) ClearMonthlySupplierPayout() *EngagementAgreementUpsert {
	u.SetNull(engagementagreement.FieldMonthlySupplierPayout)
	return u
}

// SetExternalRef sets the "external_ref" field.
func (u *EngagementAgreementUpsert) SetExternalRef(v string) *EngagementAgreementUpsert {
	u.Set(engagementagreement.FieldExternalRef, v)
	return u
}

// UpdateExternalRef sets the "external_ref" field to the value that was provided on create.
func (u *EngagementAgreementUpsert) UpdateExternalRef() *EngagementAgreementUpsert {
	u.SetExcluded(engagementagreement.FieldExternalRef)
	return u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (u *EngagementAgreementUpsert) ClearExternalRef() *EngagementAgreementUpsert {
	u.SetNull(engagementagreement.FieldExternalRef)
	return u
}

// SetDocumentURL sets the "document_url" field.
func (u *EngagementAgreementUpsert) SetDocumentURL(v string) *EngagementAgreementUpsert {
	u.Set(engagementagreement.FieldDocumentURL, v)
	return u
}

// UpdateDocumentURL sets the "document_url" field to the value that was provided on create.
func (u *EngagementAgreementUpsert) UpdateDocumentURL() *EngagementAgreementUpsert {
	u.SetExcluded(engagementagreement.FieldDocumentURL)
	return u
}

// ClearDocumentURL clears the value of the "document_url" field.
func (u *EngagementAgreementUpsert) ClearDocumentURL() *EngagementAgreementUpsert {
	u.SetNull(engagementagreement.FieldDocumentURL)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EngagementAgreementUpsert) SetUpdatedAt(v time.Time) *EngagementAgreementUpsert {
	u.Set(engagementagreement.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EngagementAgreementUpsert) UpdateUpdatedAt() *EngagementAgreementUpsert {
	u.SetExcluded(engagementagreement.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EngagementAgreement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(engagementagreement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EngagementAgreementUpsertOne) UpdateNewValues() *EngagementAgreementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(engagementagreement.FieldID)
		}
		if _, exists := u.create.mutation.EngagementID(); exists {
			s.SetIgnore(engagementagreement.FieldEngagementID)
		}
		if _, exists := u.create.mutation.AgreementType(); exists {
			s.SetIgnore(engagementagreement.FieldAgreementType)
		}
		if _, exists := u.create.mutation.Version(); exists {
			s.SetIgnore(engagementagreement.FieldVersion)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(engagementagreement.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EngagementAgreement.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EngagementAgreementUpsertOne) Ignore() *EngagementAgreementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EngagementAgreementUpsertOne) DoNothing() *EngagementAgreementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EngagementAgreementCreate.OnConflict
// documentation for more info.
func (u *EngagementAgreementUpsertOne) Update(set func(*EngagementAgreementUpsert)) *EngagementAgreementUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EngagementAgreementUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *EngagementAgreementUpsertOne) SetStatus(v engagementagreement.Status) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EngagementAgreementUpsertOne) UpdateStatus() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateStatus()
	})
}

// SetBuyerSignedAt sets the "buyer_signed_at" field.
func (u *EngagementAgreementUpsertOne) SetBuyerSignedAt(v time.Time) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetBuyerSignedAt(v)
	})
}

// UpdateBuyerSignedAt sets the "buyer_signed_at" field to the value that was provided on create.
func (u *EngagementAgreementUpsertOne) UpdateBuyerSignedAt() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateBuyerSignedAt()
	})
}

// ClearBuyerSignedAt clears the value of the "buyer_signed_at" field.
func (u *EngagementAgreementUpsertOne) ClearBuyerSignedAt() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearBuyerSignedAt()
	})
}

// SetSupplierSignedAt sets the "supplier_signed_at" field.
func (u *EngagementAgreementUpsertOne) SetSupplierSignedAt(v time.Time) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetSupplierSignedAt(v)
	})
}

// UpdateSupplierSignedAt sets the "supplier_signed_at" field to the value that was provided on create.
func (u *EngagementAgreementUpsertOne) UpdateSupplierSignedAt() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateSupplierSignedAt()
	})
}

// ClearSupplierSignedAt clears the value of the "supplier_signed_at" field.
func (u *EngagementAgreementUpsertOne) ClearSupplierSignedAt() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearSupplierSignedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *EngagementAgreementUpsertOne) SetExpiresAt(v time.Time) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *EngagementAgreementUpsertOne) UpdateExpiresAt() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *EngagementAgreementUpsertOne) ClearExpiresAt() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearExpiresAt()
	})
}

// SetSqft sets the "sqft" field.
func (u *EngagementAgreementUpsertOne) SetSqft(v int) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetSqft(v)
	})
}

// AddSqft adds v to the "sqft" field.
func (u *EngagementAgreementUpsertOne) AddSqft(v int) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.AddSqft(v)
	})
}

// UpdateSqft sets the "sqft" field to the value that was provided on create.
func (u *EngagementAgreementUpsertOne) UpdateSqft() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateSqft()
	})
}

// ClearSqft clears the value of the "sqft" field.
func (u *EngagementAgreementUpsertOne) ClearSqft() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearSqft()
	})
}

// SetBuyerRate sets the "buyer_rate" field.
func (u *EngagementAgreementUpsertOne) SetBuyerRate(v float64) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetBuyerRate(v)
	})
}

// AddBuyerRate adds v to the "buyer_rate" field.
func (u *EngagementAgreementUpsertOne) AddBuyerRate(v float64) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.AddBuyerRate(v)
	})
}

// UpdateBuyerRate sets the "buyer_rate" field to the value that was provided on create.
func (u *EngagementAgreementUpsertOne) UpdateBuyerRate() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateBuyerRate()
	})
}

// ClearBuyerRate clears the value of the "buyer_rate" field.
func (u *EngagementAgreementUpsertOne) ClearBuyerRate() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearBuyerRate()
	})
}

// SetSupplierRate sets the "supplier_rate" field.
func (u *EngagementAgreementUpsertOne) SetSupplierRate(v float64) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetSupplierRate(v)
	})
}

// AddSupplierRate adds v to the "supplier_rate" field.
func (u *EngagementAgreementUpsertOne) AddSupplierRate(v float64) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.AddSupplierRate(v)
	})
}

// UpdateSupplierRate sets the "supplier_rate" field to the value that was provided on create.
func (u *EngagementAgreementUpsertOne) UpdateSupplierRate() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateSupplierRate()
	})
}

// ClearSupplierRate clears the value of the "supplier_rate" field.
func (u *EngagementAgreementUpsertOne) ClearSupplierRate() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearSupplierRate()
	})
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (u *EngagementAgreementUpsertOne) SetMonthlyBuyerTotal(v float64) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetMonthlyBuyerTotal(v)
	})
}

// AddMonthlyBuyerTotal adds v to the "monthly_buyer_total" field.
func (u *EngagementAgreementUpsertOne) AddMonthlyBuyerTotal(v float64) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.AddMonthlyBuyerTotal(v)
	})
}

// UpdateMonthlyBuyerTotal sets the "monthly_buyer_total" field to the value that was provided on create.
func (u *EngagementAgreementUpsertOne) UpdateMonthlyBuyerTotal() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateMonthlyBuyerTotal()
	})
}

// ClearMonthlyBuyerTotal clears the value of the "monthly_buyer_total" field.
func (u *EngagementAgreementUpsertOne) ClearMonthlyBuyerTotal() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearMonthlyBuyerTotal()
	})
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (u *EngagementAgreementUpsertOne) SetMonthlySupplierPayout(v float64) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetMonthlySupplierPayout(v)
	})
}

// AddMonthlySupplierPayout adds v to the "monthly_supplier_payout" field.
func (u *EngagementAgreementUpsertOne) AddMonthlySupplierPayout(v float64) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.AddMonthlySupplierPayout(v)
	})
}

// UpdateMonthlySupplierPayout sets the "monthly_supplier_payout" field to the value that was provided on create.
func (u *EngagementAgreementUpsertOne) UpdateMonthlySupplierPayout() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateMonthlySupplierPayout()
	})
}

// ClearMonthlySupplierPayout clears the value of the "monthly_supplier_payout" field.
func (u *EngagementAgreementUpsertOne) ClearMonthlySupplierPayout() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearMonthlySupplierPayout()
	})
}

// SetExternalRef sets the "external_ref" field.
func (u *EngagementAgreementUpsertOne) SetExternalRef(v string) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetExternalRef(v)
	})
}

// UpdateExternalRef sets the "external_ref" field to the value that was provided on create.
func (u *EngagementAgreementUpsertOne) UpdateExternalRef() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateExternalRef()
	})
}

// ClearExternalRef clears the value of the "external_ref" field.
func (u *EngagementAgreementUpsertOne) ClearExternalRef() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearExternalRef()
	})
}

// SetDocumentURL sets the "document_url" field.
func (u *EngagementAgreementUpsertOne) SetDocumentURL(v string) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetDocumentURL(v)
	})
}

// UpdateDocumentURL sets the "document_url" field to the value that was provided on create.
func (u *EngagementAgreementUpsertOne) UpdateDocumentURL() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateDocumentURL()
	})
}

// ClearDocumentURL clears the value of the "document_url" field.
func (u *EngagementAgreementUpsertOne) ClearDocumentURL() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearDocumentURL()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EngagementAgreementUpsertOne) SetUpdatedAt(v time.Time) *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EngagementAgreementUpsertOne) UpdateUpdatedAt() *EngagementAgreementUpsertOne {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EngagementAgreementUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EngagementAgreementCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EngagementAgreementUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EngagementAgreementUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EngagementAgreementUpsertOne.ID is not supported by MySQL driver. Use EngagementAgreementUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EngagementAgreementUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EngagementAgreementCreateBulk is the builder for creating many EngagementAgreement entities in bulk.
type EngagementAgreementCreateBulk struct {
	config
	err      error
	builders []*EngagementAgreementCreate
	conflict []sql.ConflictOption
}

// Save creates the EngagementAgreement entities in the database.
func (_c *EngagementAgreementCreateBulk) Save(ctx context.Context) ([]*EngagementAgreement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EngagementAgreement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EngagementAgreementMutation)
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
func (_c *EngagementAgreementCreateBulk) SaveX(ctx context.Context) []*EngagementAgreement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EngagementAgreementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EngagementAgreementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EngagementAgreement.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EngagementAgreementUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *EngagementAgreementCreateBulk) OnConflict(opts ...sql.ConflictOption) *EngagementAgreementUpsertBulk {
	_c.conflict = opts
	return &EngagementAgreementUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EngagementAgreement.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EngagementAgreementCreateBulk) OnConflictColumns(columns ...string) *EngagementAgreementUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EngagementAgreementUpsertBulk{
		create: _c,
	}
}

// EngagementAgreementUpsertBulk is the builder for "upsert"-ing
// a bulk of EngagementAgreement nodes.
type EngagementAgreementUpsertBulk struct {
	create *EngagementAgreementCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EngagementAgreement.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(engagementagreement.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EngagementAgreementUpsertBulk) UpdateNewValues() *EngagementAgreementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(engagementagreement.FieldID)
			}
			if _, exists := b.mutation.EngagementID(); exists {
				s.SetIgnore(engagementagreement.FieldEngagementID)
			}
			if _, exists := b.mutation.AgreementType(); exists {
				s.SetIgnore(engagementagreement.FieldAgreementType)
			}
			if _, exists := b.mutation.Version(); exists {
				s.SetIgnore(engagementagreement.FieldVersion)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(engagementagreement.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EngagementAgreement.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EngagementAgreementUpsertBulk) Ignore() *EngagementAgreementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EngagementAgreementUpsertBulk) DoNothing() *EngagementAgreementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EngagementAgreementCreateBulk.OnConflict
// documentation for more info.
func (u *EngagementAgreementUpsertBulk) Update(set func(*EngagementAgreementUpsert)) *EngagementAgreementUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EngagementAgreementUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *EngagementAgreementUpsertBulk) SetStatus(v engagementagreement.Status) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EngagementAgreementUpsertBulk) UpdateStatus() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateStatus()
	})
}

// SetBuyerSignedAt sets the "buyer_signed_at" field.
func (u *EngagementAgreementUpsertBulk) SetBuyerSignedAt(v time.Time) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetBuyerSignedAt(v)
	})
}

// UpdateBuyerSignedAt sets the "buyer_signed_at" field to the value that was provided on create.
func (u *EngagementAgreementUpsertBulk) UpdateBuyerSignedAt() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateBuyerSignedAt()
	})
}

// ClearBuyerSignedAt clears the value of the "buyer_signed_at" field.
func (u *EngagementAgreementUpsertBulk) ClearBuyerSignedAt() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearBuyerSignedAt()
	})
}

// SetSupplierSignedAt sets the "supplier_signed_at" field.
func (u *EngagementAgreementUpsertBulk) SetSupplierSignedAt(v time.Time) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetSupplierSignedAt(v)
	})
}

// UpdateSupplierSignedAt sets the "supplier_signed_at" field to the value that was provided on create.
func (u *EngagementAgreementUpsertBulk) UpdateSupplierSignedAt() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateSupplierSignedAt()
	})
}

// ClearSupplierSignedAt clears the value of the "supplier_signed_at" field.
func (u *EngagementAgreementUpsertBulk) ClearSupplierSignedAt() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearSupplierSignedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *EngagementAgreementUpsertBulk) SetExpiresAt(v time.Time) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *EngagementAgreementUpsertBulk) UpdateExpiresAt() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateExpiresAt()
	})
}

// ClearExpiresAt clears the value of the "expires_at" field.
func (u *EngagementAgreementUpsertBulk) ClearExpiresAt() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearExpiresAt()
	})
}

// SetSqft sets the "sqft" field.
func (u *EngagementAgreementUpsertBulk) SetSqft(v int) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetSqft(v)
	})
}

// AddSqft adds v to the "sqft" field.
func (u *EngagementAgreementUpsertBulk) AddSqft(v int) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.AddSqft(v)
	})
}

// UpdateSqft sets the "sqft" field to the value that was provided on create.
func (u *EngagementAgreementUpsertBulk) UpdateSqft() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateSqft()
	})
}

// ClearSqft clears the value of the "sqft" field.
func (u *EngagementAgreementUpsertBulk) ClearSqft() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearSqft()
	})
}

// SetBuyerRate sets the "buyer_rate" field.
func (u *EngagementAgreementUpsertBulk) SetBuyerRate(v float64) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetBuyerRate(v)
	})
}

// AddBuyerRate adds v to the "buyer_rate" field.
func (u *EngagementAgreementUpsertBulk) AddBuyerRate(v float64) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.AddBuyerRate(v)
	})
}

// UpdateBuyerRate sets the "buyer_rate" field to the value that was provided on create.
func (u *EngagementAgreementUpsertBulk) UpdateBuyerRate() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateBuyerRate()
	})
}

// ClearBuyerRate clears the value of the "buyer_rate" field.
func (u *EngagementAgreementUpsertBulk) ClearBuyerRate() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearBuyerRate()
	})
}

// SetSupplierRate sets the "supplier_rate" field.
func (u *EngagementAgreementUpsertBulk) SetSupplierRate(v float64) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetSupplierRate(v)
	})
}

// AddSupplierRate adds v to the "supplier_rate" field.
func (u *EngagementAgreementUpsertBulk) AddSupplierRate(v float64) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.AddSupplierRate(v)
	})
}

// UpdateSupplierRate sets the "supplier_rate" field to the value that was provided on create.
func (u *EngagementAgreementUpsertBulk) UpdateSupplierRate() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateSupplierRate()
	})
}

// ClearSupplierRate clears the value of the "supplier_rate" field.
func (u *EngagementAgreementUpsertBulk) ClearSupplierRate() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearSupplierRate()
	})
}

// SetMonthlyBuyerTotal sets the "monthly_buyer_total" field.
func (u *EngagementAgreementUpsertBulk) SetMonthlyBuyerTotal(v float64) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetMonthlyBuyerTotal(v)
	})
}

// AddMonthlyBuyerTotal adds v to the "monthly_buyer_total" field.
func (u *EngagementAgreementUpsertBulk) AddMonthlyBuyerTotal(v float64) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.AddMonthlyBuyerTotal(v)
	})
}

// UpdateMonthlyBuyerTotal sets the "monthly_buyer_total" field to the value that was provided on create.
func (u *EngagementAgreementUpsertBulk) UpdateMonthlyBuyerTotal() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateMonthlyBuyerTotal()
	})
}

// ClearMonthlyBuyerTotal clears the value of the "monthly_buyer_total" field.
func (u *EngagementAgreementUpsertBulk) ClearMonthlyBuyerTotal() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearMonthlyBuyerTotal()
	})
}

// SetMonthlySupplierPayout sets the "monthly_supplier_payout" field.
func (u *EngagementAgreementUpsertBulk) SetMonthlySupplierPayout(v float64) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetMonthlySupplierPayout(v)
	})
}

// AddMonthlySupplierPayout adds v to the "monthly_supplier_payout" field.
func (u *EngagementAgreementUpsertBulk) AddMonthlySupplierPayout(v float64) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.AddMonthlySupplierPayout(v)
	})
}

// UpdateMonthlySupplierPayout sets the "monthly_supplier_payout" field to the value that was provided on create.
func (u *EngagementAgreementUpsertBulk) UpdateMonthlySupplierPayout() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateMonthlySupplierPayout()
	})
}

// ClearMonthlySupplierPayout clears the value of the "monthly_supplier_payout" field.
func (u *EngagementAgreementUpsertBulk) ClearMonthlySupplierPayout() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearMonthlySupplierPayout()
	})
}

// SetExternalRef sets the "external_ref" field.
func (u *EngagementAgreementUpsertBulk) SetExternalRef(v string) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetExternalRef(v)
	})
}

// UpdateExternalRef sets the "external_ref" field to the value that was provided on create.
func (u *EngagementAgreementUpsertBulk) UpdateExternalRef() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateExternalRef()
	})
}

// ClearExternalRef clears the value of the "external_ref" field.
func (u *EngagementAgreementUpsertBulk) ClearExternalRef() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearExternalRef()
	})
}

// SetDocumentURL sets the "document_url" field.
func (u *EngagementAgreementUpsertBulk) SetDocumentURL(v string) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetDocumentURL(v)
	})
}

// UpdateDocumentURL sets the "document_url" field to the value that was provided on create.
func (u *EngagementAgreementUpsertBulk) UpdateDocumentURL() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateDocumentURL()
	})
}

// ClearDocumentURL clears the value of the "document_url" field.
func (u *EngagementAgreementUpsertBulk) ClearDocumentURL() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.ClearDocumentURL()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EngagementAgreementUpsertBulk) SetUpdatedAt(v time.Time) *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EngagementAgreementUpsertBulk) UpdateUpdatedAt() *EngagementAgreementUpsertBulk {
	return u.Update(func(s *EngagementAgreementUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EngagementAgreementUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EngagementAgreementCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EngagementAgreementCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EngagementAgreementUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
