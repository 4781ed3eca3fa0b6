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
	"github.com/warehouse-exchange/wex/ent/paymentrecord"
)

// PaymentRecordCreate is the builder for creating a PaymentRecord entity.
type PaymentRecordCreate struct {
	config
	mutation *PaymentRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEngagementID sets the "engagement_id" field.
func (_c *PaymentRecordCreate) SetEngagementID(v string) *PaymentRecordCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetPeriodStart sets the "period_start" field.
func (_c *PaymentRecordCreate) SetPeriodStart(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetPeriodStart(v)
	return _c
}

// SetPeriodEnd sets the "period_end" field.
func (_c *PaymentRecordCreate) SetPeriodEnd(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetPeriodEnd(v)
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *PaymentRecordCreate) SetDueDate(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetBuyerAmount sets the "buyer_amount" field.
func (_c *PaymentRecordCreate) SetBuyerAmount(v float64) *PaymentRecordCreate {
	_c.mutation.SetBuyerAmount(v)
	return _c
}

// SetSupplierAmount sets the "supplier_amount" field.
func (_c *PaymentRecordCreate) SetSupplierAmount(v float64) *PaymentRecordCreate {
	_c.mutation.SetSupplierAmount(v)
	return _c
}

// SetWexAmount sets the "wex_amount" field.
func (_c *PaymentRecordCreate) SetWexAmount(v float64) *PaymentRecordCreate {
	_c.mutation.SetWexAmount(v)
	return _c
}

// SetBuyerStatus sets the "buyer_status" field.
func (_c *PaymentRecordCreate) SetBuyerStatus(v paymentrecord.BuyerStatus) *PaymentRecordCreate {
	_c.mutation.SetBuyerStatus(v)
	return _c
}

// SetNillableBuyerStatus sets the "buyer_status" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableBuyerStatus(v *paymentrecord.BuyerStatus) *PaymentRecordCreate {
	if v != nil {
		_c.SetBuyerStatus(*v)
	}
	return _c
}

// SetSupplierStatus sets the "supplier_status" field.
func (_c *PaymentRecordCreate) SetSupplierStatus(v paymentrecord.SupplierStatus) *PaymentRecordCreate {
	_c.mutation.SetSupplierStatus(v)
	return _c
}

// SetNillableSupplierStatus sets the "supplier_status" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableSupplierStatus(v *paymentrecord.SupplierStatus) *PaymentRecordCreate {
	if v != nil {
		_c.SetSupplierStatus(*v)
	}
	return _c
}

// SetBuyerPaidAt sets the "buyer_paid_at" field.
func (_c *PaymentRecordCreate) SetBuyerPaidAt(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetBuyerPaidAt(v)
	return _c
}

// SetNillableBuyerPaidAt sets the "buyer_paid_at" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableBuyerPaidAt(v *time.Time) *PaymentRecordCreate {
	if v != nil {
		_c.SetBuyerPaidAt(*v)
	}
	return _c
}

// SetSupplierPaidAt sets the "supplier_paid_at" field.
func (_c *PaymentRecordCreate) SetSupplierPaidAt(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetSupplierPaidAt(v)
	return _c
}

// SetNillableSupplierPaidAt sets the "supplier_paid_at" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableSupplierPaidAt(v *time.Time) *PaymentRecordCreate {
	if v != nil {
		_c.SetSupplierPaidAt(*v)
	}
	return _c
}

// SetExternalRef sets the "external_ref" field.
func (_c *PaymentRecordCreate) SetExternalRef(v string) *PaymentRecordCreate {
	_c.mutation.SetExternalRef(v)
	return _c
}

// SetNillableExternalRef sets the "external_ref" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableExternalRef(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetExternalRef(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaymentRecordCreate) SetCreatedAt(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableCreatedAt(v *time.Time) *PaymentRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PaymentRecordCreate) SetUpdatedAt(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableUpdatedAt(v *time.Time) *PaymentRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaymentRecordCreate) SetID(v string) *PaymentRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEngagement sets the "engagement" edge to the Engagement entity.
func (_c *PaymentRecordCreate) SetEngagement(v *Engagement) *PaymentRecordCreate {
	return _c.SetEngagementID(v.ID)
}

// Mutation returns the PaymentRecordMutation object of the builder.
func (_c *PaymentRecordCreate) Mutation() *PaymentRecordMutation {
	return _c.mutation
}

// Save creates the PaymentRecord in the database.
func (_c *PaymentRecordCreate) Save(ctx context.Context) (*PaymentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentRecordCreate) SaveX(ctx context.Context) *PaymentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentRecordCreate) defaults() {
	if _, ok := _c.mutation.BuyerStatus(); !ok {
		v := paymentrecord.DefaultBuyerStatus
		_c.mutation.SetBuyerStatus(v)
	}
	if _, ok := _c.mutation.SupplierStatus(); !ok {
		v := paymentrecord.DefaultSupplierStatus
		_c.mutation.SetSupplierStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paymentrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := paymentrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentRecordCreate) check() error {
	if _, ok := _c.mutation.EngagementID(); !ok {
		return &ValidationError{Name: "engagement_id", err: errors.New(`ent: missing required field "PaymentRecord.engagement_id"`)}
	}
	if _, ok := _c.mutation.PeriodStart(); !ok {
		return &ValidationError{Name: "period_start", err: errors.New(`ent: missing required field "PaymentRecord.period_start"`)}
	}
	if _, ok := _c.mutation.PeriodEnd(); !ok {
		return &ValidationError{Name: "period_end", err: errors.New(`ent: missing required field "PaymentRecord.period_end"`)}
	}
	if _, ok := _c.mutation.DueDate(); !ok {
		return &ValidationError{Name: "due_date", err: errors.New(`ent: missing required field "PaymentRecord.due_date"`)}
	}
	if _, ok := _c.mutation.BuyerAmount(); !ok {
		return &ValidationError{Name: "buyer_amount", err: errors.New(`ent: missing required field "PaymentRecord.buyer_amount"`)}
	}
	if _, ok := _c.mutation.SupplierAmount(); !ok {
		return &ValidationError{Name: "supplier_amount", err: errors.New(`ent: missing required field "PaymentRecord.supplier_amount"`)}
	}
	if _, ok := _c.mutation.WexAmount(); !ok {
		return &ValidationError{Name: "wex_amount", err: errors.New(`ent: missing required field "PaymentRecord.wex_amount"`)}
	}
	if _, ok := _c.mutation.BuyerStatus(); !ok {
		return &ValidationError{Name: "buyer_status", err: errors.New(`ent: missing required field "PaymentRecord.buyer_status"`)}
	}
	if v, ok := _c.mutation.BuyerStatus(); ok {
		if err := paymentrecord.BuyerStatusValidator(v); err != nil {
			return &ValidationError{Name: "buyer_status", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.buyer_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SupplierStatus(); !ok {
		return &ValidationError{Name: "supplier_status", err: errors.New(`ent: missing required field "PaymentRecord.supplier_status"`)}
	}
	if v, ok := _c.mutation.SupplierStatus(); ok {
		if err := paymentrecord.SupplierStatusValidator(v); err != nil {
			return &ValidationError{Name: "supplier_status", err: fmt.Errorf(`ent: validator failed for field "PaymentRecord.supplier_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PaymentRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PaymentRecord.updated_at"`)}
	}
	if len(_c.mutation.EngagementIDs()) == 0 {
		return &ValidationError{Name: "engagement", err: errors.New(`ent: missing required edge "PaymentRecord.engagement"`)}
	}
	return nil
}

func (_c *PaymentRecordCreate) sqlSave(ctx context.Context) (*PaymentRecord, error) {
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
			return nil, fmt.Errorf("unexpected PaymentRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaymentRecordCreate) createSpec() (*PaymentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PaymentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paymentrecord.Table, sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PeriodStart(); ok {
		_spec.SetField(paymentrecord.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = value
	}
	if value, ok := _c.mutation.PeriodEnd(); ok {
		_spec.SetField(paymentrecord.FieldPeriodEnd, field.TypeTime, value)
		_node.PeriodEnd = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(paymentrecord.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := _c.mutation.BuyerAmount(); ok {
		_spec.SetField(paymentrecord.FieldBuyerAmount, field.TypeFloat64, value)
		_node.BuyerAmount = value
	}
	if value, ok := _c.mutation.SupplierAmount(); ok {
		_spec.SetField(paymentrecord.FieldSupplierAmount, field.TypeFloat64, value)
		_node.SupplierAmount = value
	}
	if value, ok := _c.mutation.WexAmount(); ok {
		_spec.SetField(paymentrecord.FieldWexAmount, field.TypeFloat64, value)
		_node.WexAmount = value
	}
	if value, ok := _c.mutation.BuyerStatus(); ok {
		_spec.SetField(paymentrecord.FieldBuyerStatus, field.TypeEnum, value)
		_node.BuyerStatus = value
	}
	if value, ok := _c.mutation.SupplierStatus(); ok {
		_spec.SetField(paymentrecord.FieldSupplierStatus, field.TypeEnum, value)
		_node.SupplierStatus = value
	}
	if value, ok := _c.mutation.BuyerPaidAt(); ok {
		_spec.SetField(paymentrecord.FieldBuyerPaidAt, field.TypeTime, value)
		_node.BuyerPaidAt = &value
	}
	if value, ok := _c.mutation.SupplierPaidAt(); ok {
		_spec.SetField(paymentrecord.FieldSupplierPaidAt, field.TypeTime, value)
		_node.SupplierPaidAt = &value
	}
	if value, ok := _c.mutation.ExternalRef(); ok {
		_spec.SetField(paymentrecord.FieldExternalRef, field.TypeString, value)
		_node.ExternalRef = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paymentrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(paymentrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.EngagementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentrecord.EngagementTable,
			Columns: []string{paymentrecord.EngagementColumn},
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
//	client.PaymentRecord.Create().
//		SetEngagementID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentRecordUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentRecordCreate) OnConflict(opts ...sql.ConflictOption) *PaymentRecordUpsertOne {
	_c.conflict = opts
	return &PaymentRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentRecordCreate) OnConflictColumns(columns ...string) *PaymentRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentRecordUpsertOne{
		create: _c,
	}
}

type (
	// PaymentRecordUpsertOne is the builder for "upsert"-ing
	//  one PaymentRecord node.
	PaymentRecordUpsertOne struct {
		create *PaymentRecordCreate
	}

	// PaymentRecordUpsert is the "OnConflict" setter.
	PaymentRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetBuyerAmount sets the "buyer_amount" field.
func (u *PaymentRecordUpsert) SetBuyerAmount(v float64) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldBuyerAmount, v)
	return u
}

// UpdateBuyerAmount sets the "buyer_amount" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateBuyerAmount() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldBuyerAmount)
	return u
}

// AddBuyerAmount adds v to the "buyer_amount" field.
func (u *PaymentRecordUpsert) AddBuyerAmount(v float64) *PaymentRecordUpsert {
	u.Add(paymentrecord.FieldBuyerAmount, v)
	return u
}

// SetSupplierAmount sets the "supplier_amount" field.
func (u *PaymentRecordUpsert) SetSupplierAmount(v float64) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldSupplierAmount, v)
	return u
}

// UpdateSupplierAmount sets the "supplier_amount" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateSupplierAmount() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldSupplierAmount)
	return u
}

// AddSupplierAmount adds v to the "supplier_amount" field.
func (u *PaymentRecordUpsert) AddSupplierAmount(v float64) *PaymentRecordUpsert {
	u.Add(paymentrecord.FieldSupplierAmount, v)
	return u
}

// SetWexAmount sets the "wex_amount" field.
func (u *PaymentRecordUpsert) SetWexAmount(v float64) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldWexAmount, v)
	return u
}

// UpdateWexAmount sets the "wex_amount" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateWexAmount() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldWexAmount)
	return u
}

// AddWexAmount adds v to the "wex_amount" field.
func (u *PaymentRecordUpsert) AddWexAmount(v float64) *PaymentRecordUpsert {
	u.Add(paymentrecord.FieldWexAmount, v)
	return u
}

// SetBuyerStatus sets the "buyer_status" field.
func (u *PaymentRecordUpsert) SetBuyerStatus(v paymentrecord.BuyerStatus) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldBuyerStatus, v)
	return u
}

// UpdateBuyerStatus sets the "buyer_status" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateBuyerStatus() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldBuyerStatus)
	return u
}

// SetSupplierStatus sets the "supplier_status" field.
func (u *PaymentRecordUpsert) SetSupplierStatus(v paymentrecord.SupplierStatus) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldSupplierStatus, v)
	return u
}

// UpdateSupplierStatus sets the "supplier_status" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateSupplierStatus() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldSupplierStatus)
	return u
}

// SetBuyerPaidAt sets the "buyer_paid_at" field.
func (u *PaymentRecordUpsert) SetBuyerPaidAt(v time.Time) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldBuyerPaidAt, v)
	return u
}

// UpdateBuyerPaidAt sets the "buyer_paid_at" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateBuyerPaidAt() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldBuyerPaidAt)
	return u
}

// ClearBuyerPaidAt clears the value of the "buyer_paid_at" field.
func (u *PaymentRecordUpsert) ClearBuyerPaidAt() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldBuyerPaidAt)
	return u
}

// SetSupplierPaidAt sets the "supplier_paid_at" field.
func (u *PaymentRecordUpsert) SetSupplierPaidAt(v time.Time) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldSupplierPaidAt, v)
	return u
}

// UpdateSupplierPaidAt sets the "supplier_paid_at" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateSupplierPaidAt() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldSupplierPaidAt)
	return u
}

// ClearSupplierPaidAt clears the value of the "supplier_paid_at" field.
func (u *PaymentRecordUpsert) ClearSupplierPaidAt() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldSupplierPaidAt)
	return u
}

// SetExternalRef sets the "external_ref" field.
func (u *PaymentRecordUpsert) SetExternalRef(v string) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldExternalRef, v)
	return u
}

// UpdateExternalRef sets the "external_ref" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateExternalRef() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldExternalRef)
	return u
}

// ClearExternalRef clears the value of the "external_ref" field.
func (u *PaymentRecordUpsert) ClearExternalRef() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldExternalRef)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentRecordUpsert) SetUpdatedAt(v time.Time) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateUpdatedAt() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymentrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentRecordUpsertOne) UpdateNewValues() *PaymentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(paymentrecord.FieldID)
		}
		if _, exists := u.create.mutation.EngagementID(); exists {
			s.SetIgnore(paymentrecord.FieldEngagementID)
		}
		if _, exists := u.create.mutation.PeriodStart(); exists {
			s.SetIgnore(paymentrecord.FieldPeriodStart)
		}
		if _, exists := u.create.mutation.PeriodEnd(); exists {
			s.SetIgnore(paymentrecord.FieldPeriodEnd)
		}
		if _, exists := u.create.mutation.DueDate(); exists {
			s.SetIgnore(paymentrecord.FieldDueDate)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(paymentrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaymentRecordUpsertOne) Ignore() *PaymentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentRecordUpsertOne) DoNothing() *PaymentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentRecordCreate.OnConflict
// documentation for more info.
func (u *PaymentRecordUpsertOne) Update(set func(*PaymentRecordUpsert)) *PaymentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuyerAmount sets the "buyer_amount" field.
func (u *PaymentRecordUpsertOne) SetBuyerAmount(v float64) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetBuyerAmount(v)
	})
}

// AddBuyerAmount adds v to the "buyer_amount" field.
func (u *PaymentRecordUpsertOne) AddBuyerAmount(v float64) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.AddBuyerAmount(v)
	})
}

// UpdateBuyerAmount sets the "buyer_amount" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateBuyerAmount() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateBuyerAmount()
	})
}

// SetSupplierAmount sets the "supplier_amount" field.
func (u *PaymentRecordUpsertOne) SetSupplierAmount(v float64) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetSupplierAmount(v)
	})
}

// AddSupplierAmount adds v to the "supplier_amount" field.
func (u *PaymentRecordUpsertOne) AddSupplierAmount(v float64) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.AddSupplierAmount(v)
	})
}

// UpdateSupplierAmount sets the "supplier_amount" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateSupplierAmount() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateSupplierAmount()
	})
}

// SetWexAmount sets the "wex_amount" field.
func (u *PaymentRecordUpsertOne) SetWexAmount(v float64) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetWexAmount(v)
	})
}

// AddWexAmount adds v to the "wex_amount" field.
func (u *PaymentRecordUpsertOne) AddWexAmount(v float64) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.AddWexAmount(v)
	})
}

// UpdateWexAmount sets the "wex_amount" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateWexAmount() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateWexAmount()
	})
}

// SetBuyerStatus sets the "buyer_status" field.
func (u *PaymentRecordUpsertOne) SetBuyerStatus(v paymentrecord.BuyerStatus) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetBuyerStatus(v)
	})
}

// UpdateBuyerStatus sets the "buyer_status" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateBuyerStatus() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateBuyerStatus()
	})
}

// SetSupplierStatus sets the "supplier_status" field.
func (u *PaymentRecordUpsertOne) SetSupplierStatus(v paymentrecord.SupplierStatus) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetSupplierStatus(v)
	})
}

// UpdateSupplierStatus sets the "supplier_status" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateSupplierStatus() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateSupplierStatus()
	})
}

// SetBuyerPaidAt sets the "buyer_paid_at" field.
func (u *PaymentRecordUpsertOne) SetBuyerPaidAt(v time.Time) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetBuyerPaidAt(v)
	})
}

// UpdateBuyerPaidAt sets the "buyer_paid_at" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateBuyerPaidAt() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateBuyerPaidAt()
	})
}

// ClearBuyerPaidAt clears the value of the "buyer_paid_at" field.
func (u *PaymentRecordUpsertOne) ClearBuyerPaidAt() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearBuyerPaidAt()
	})
}

// SetSupplierPaidAt sets the "supplier_paid_at" field.
func (u *PaymentRecordUpsertOne) SetSupplierPaidAt(v time.Time) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetSupplierPaidAt(v)
	})
}

// UpdateSupplierPaidAt sets the "supplier_paid_at" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateSupplierPaidAt() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateSupplierPaidAt()
	})
}

// ClearSupplierPaidAt clears the value of the "supplier_paid_at" field.
func (u *PaymentRecordUpsertOne) ClearSupplierPaidAt() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearSupplierPaidAt()
	})
}

// SetExternalRef sets the "external_ref" field.
func (u *PaymentRecordUpsertOne) SetExternalRef(v string) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetExternalRef(v)
	})
}

// UpdateExternalRef sets the "external_ref" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateExternalRef() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateExternalRef()
	})
}

// ClearExternalRef clears the value of the "external_ref" field.
func (u *PaymentRecordUpsertOne) ClearExternalRef() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearExternalRef()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentRecordUpsertOne) SetUpdatedAt(v time.Time) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateUpdatedAt() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PaymentRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaymentRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaymentRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PaymentRecordUpsertOne.ID is not supported by MySQL driver. Use PaymentRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaymentRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaymentRecordCreateBulk is the builder for creating many PaymentRecord entities in bulk.
type PaymentRecordCreateBulk struct {
	config
	err      error
	builders []*PaymentRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the PaymentRecord entities in the database.
func (_c *PaymentRecordCreateBulk) Save(ctx context.Context) ([]*PaymentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaymentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentRecordMutation)
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
func (_c *PaymentRecordCreateBulk) SaveX(ctx context.Context) []*PaymentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentRecordUpsert) {
//			SetEngagementID(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaymentRecordUpsertBulk {
	_c.conflict = opts
	return &PaymentRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentRecordCreateBulk) OnConflictColumns(columns ...string) *PaymentRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentRecordUpsertBulk{
		create: _c,
	}
}

// PaymentRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of PaymentRecord nodes.
type PaymentRecordUpsertBulk struct {
	create *PaymentRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymentrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentRecordUpsertBulk) UpdateNewValues() *PaymentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(paymentrecord.FieldID)
			}
			if _, exists := b.mutation.EngagementID(); exists {
				s.SetIgnore(paymentrecord.FieldEngagementID)
			}
			if _, exists := b.mutation.PeriodStart(); exists {
				s.SetIgnore(paymentrecord.FieldPeriodStart)
			}
			if _, exists := b.mutation.PeriodEnd(); exists {
				s.SetIgnore(paymentrecord.FieldPeriodEnd)
			}
			if _, exists := b.mutation.DueDate(); exists {
				s.SetIgnore(paymentrecord.FieldDueDate)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(paymentrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaymentRecordUpsertBulk) Ignore() *PaymentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentRecordUpsertBulk) DoNothing() *PaymentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentRecordCreateBulk.OnConflict
// documentation for more info.
func (u *PaymentRecordUpsertBulk) Update(set func(*PaymentRecordUpsert)) *PaymentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetBuyerAmount sets the "buyer_amount" field.
func (u *PaymentRecordUpsertBulk) SetBuyerAmount(v float64) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetBuyerAmount(v)
	})
}

// AddBuyerAmount adds v to the "buyer_amount" field.
func (u *PaymentRecordUpsertBulk) AddBuyerAmount(v float64) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.AddBuyerAmount(v)
	})
}

// UpdateBuyerAmount sets the "buyer_amount" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateBuyerAmount() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateBuyerAmount()
	})
}

// SetSupplierAmount sets the "supplier_amount" field.
func (u *PaymentRecordUpsertBulk) SetSupplierAmount(v float64) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetSupplierAmount(v)
	})
}

// AddSupplierAmount adds v to the "supplier_amount" field.
func (u *PaymentRecordUpsertBulk) AddSupplierAmount(v float64) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.AddSupplierAmount(v)
	})
}

// UpdateSupplierAmount sets the "supplier_amount" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateSupplierAmount() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateSupplierAmount()
	})
}

// SetWexAmount sets the "wex_amount" field.
func (u *PaymentRecordUpsertBulk) SetWexAmount(v float64) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetWexAmount(v)
	})
}

// AddWexAmount adds v to the "wex_amount" field.
func (u *PaymentRecordUpsertBulk) AddWexAmount(v float64) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.AddWexAmount(v)
	})
}

// UpdateWexAmount sets the "wex_amount" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateWexAmount() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateWexAmount()
	})
}

// SetBuyerStatus sets the "buyer_status" field.
func (u *PaymentRecordUpsertBulk) SetBuyerStatus(v paymentrecord.BuyerStatus) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetBuyerStatus(v)
	})
}

// UpdateBuyerStatus sets the "buyer_status" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateBuyerStatus() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateBuyerStatus()
	})
}

// SetSupplierStatus sets the "supplier_status" field.
func (u *PaymentRecordUpsertBulk) SetSupplierStatus(v paymentrecord.SupplierStatus) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetSupplierStatus(v)
	})
}

// UpdateSupplierStatus sets the "supplier_status" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateSupplierStatus() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateSupplierStatus()
	})
}

// SetBuyerPaidAt sets the "buyer_paid_at" field.
func (u *PaymentRecordUpsertBulk) SetBuyerPaidAt(v time.Time) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetBuyerPaidAt(v)
	})
}

// UpdateBuyerPaidAt sets the "buyer_paid_at" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateBuyerPaidAt() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateBuyerPaidAt()
	})
}

// ClearBuyerPaidAt clears the value of the "buyer_paid_at" field.
func (u *PaymentRecordUpsertBulk) ClearBuyerPaidAt() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearBuyerPaidAt()
	})
}

// SetSupplierPaidAt sets the "supplier_paid_at" field.
func (u *PaymentRecordUpsertBulk) SetSupplierPaidAt(v time.Time) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetSupplierPaidAt(v)
	})
}

// UpdateSupplierPaidAt sets the "supplier_paid_at" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateSupplierPaidAt() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateSupplierPaidAt()
	})
}

// ClearSupplierPaidAt clears the value of the "supplier_paid_at" field.
func (u *PaymentRecordUpsertBulk) ClearSupplierPaidAt() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearSupplierPaidAt()
	})
}

// SetExternalRef sets the "external_ref" field.
func (u *PaymentRecordUpsertBulk) SetExternalRef(v string) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetExternalRef(v)
	})
}

// UpdateExternalRef sets the "external_ref" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateExternalRef() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateExternalRef()
	})
}

// ClearExternalRef clears the value of the "external_ref" field.
func (u *PaymentRecordUpsertBulk) ClearExternalRef() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearExternalRef()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PaymentRecordUpsertBulk) SetUpdatedAt(v time.Time) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateUpdatedAt() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PaymentRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PaymentRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaymentRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
