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
	"github.com/warehouse-exchange/wex/ent/company"
	"github.com/warehouse-exchange/wex/ent/user"
	"github.com/warehouse-exchange/wex/ent/warehouse"
)

// CompanyCreate is the builder for creating a Company entity.
type CompanyCreate struct {
	config
	mutation *CompanyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *CompanyCreate) SetName(v string) *CompanyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *CompanyCreate) SetPhone(v string) *CompanyCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *CompanyCreate) SetNillablePhone(v *string) *CompanyCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetBillingEmail sets the "billing_email" field.
func (_c *CompanyCreate) SetBillingEmail(v string) *CompanyCreate {
	_c.mutation.SetBillingEmail(v)
	return _c
}

// SetNillableBillingEmail sets the "billing_email" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableBillingEmail(v *string) *CompanyCreate {
	if v != nil {
		_c.SetBillingEmail(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CompanyCreate) SetCreatedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableCreatedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CompanyCreate) SetUpdatedAt(v time.Time) *CompanyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CompanyCreate) SetNillableUpdatedAt(v *time.Time) *CompanyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CompanyCreate) SetID(v string) *CompanyCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddUserIDs adds the "users" edge to the User entity by IDs.
func (_c *CompanyCreate) AddUserIDs(ids ...string) *CompanyCreate {
	_c.mutation.AddUserIDs(ids...)
	return _c
}

// AddUsers adds the "users" edges to the User entity.
func (_c *CompanyCreate) AddUsers(v ...*User) *CompanyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddUserIDs(ids...)
}

// AddWarehouseIDs adds the "warehouses" edge to the Warehouse entity by IDs.
func (_c *CompanyCreate) AddWarehouseIDs(ids ...string) *CompanyCreate {
	_c.mutation.AddWarehouseIDs(ids...)
	return _c
}

// AddWarehouses adds the "warehouses" edges to the Warehouse entity.
func (_c *CompanyCreate) AddWarehouses(v ...*Warehouse) *CompanyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWarehouseIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_c *CompanyCreate) Mutation() *CompanyMutation {
	return _c.mutation
}

// Save creates the Company in the database.
func (_c *CompanyCreate) Save(ctx context.Context) (*Company, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompanyCreate) SaveX(ctx context.Context) *Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompanyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := company.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := company.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompanyCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Company.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := company.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Company.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Company.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Company.updated_at"`)}
	}
	return nil
}

func (_c *CompanyCreate) sqlSave(ctx context.Context) (*Company, error) {
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
			return nil, fmt.Errorf("unexpected Company.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompanyCreate) createSpec() (*Company, *sqlgraph.CreateSpec) {
	var (
		_node = &Company{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(company.Table, sqlgraph.NewFieldSpec(company.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(company.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.BillingEmail(); ok {
		_spec.SetField(company.FieldBillingEmail, field.TypeString, value)
		_node.BillingEmail = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(company.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(company.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UsersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.UsersTable,
			Columns: []string{company.UsersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WarehousesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.WarehousesTable,
			Columns: []string{company.WarehousesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(warehouse.FieldID, field.TypeString),
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
//	client.Company.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompanyUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *CompanyCreate) OnConflict(opts ...sql.ConflictOption) *CompanyUpsertOne {
	_c.conflict = opts
	return &CompanyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompanyCreate) OnConflictColumns(columns ...string) *CompanyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompanyUpsertOne{
		create: _c,
	}
}

type (
	// CompanyUpsertOne is the builder for "upsert"-ing
	//  one Company node.
	CompanyUpsertOne struct {
		create *CompanyCreate
	}

	// CompanyUpsert is the "OnConflict" setter.
	CompanyUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *CompanyUpsert) SetName(v string) *CompanyUpsert {
	u.Set(company.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateName() *CompanyUpsert {
	u.SetExcluded(company.FieldName)
	return u
}

// SetPhone sets the "phone" field.
func (u *CompanyUpsert) SetPhone(v string) *CompanyUpsert {
	u.Set(company.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CompanyUpsert) UpdatePhone() *CompanyUpsert {
	u.SetExcluded(company.FieldPhone)
	return u
}

// ClearPhone clears the value of the "phone" field.
func (u *CompanyUpsert) ClearPhone() *CompanyUpsert {
	u.SetNull(company.FieldPhone)
	return u
}

// SetBillingEmail sets the "billing_email" field.
func (u *CompanyUpsert) SetBillingEmail(v string) *CompanyUpsert {
	u.Set(company.FieldBillingEmail, v)
	return u
}

// UpdateBillingEmail sets the "billing_email" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateBillingEmail() *CompanyUpsert {
	u.SetExcluded(company.FieldBillingEmail)
	return u
}

// ClearBillingEmail clears the value of the "billing_email" field.
func (u *CompanyUpsert) ClearBillingEmail() *CompanyUpsert {
	u.SetNull(company.FieldBillingEmail)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CompanyUpsert) SetUpdatedAt(v time.Time) *CompanyUpsert {
	u.Set(company.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CompanyUpsert) UpdateUpdatedAt() *CompanyUpsert {
	u.SetExcluded(company.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(company.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CompanyUpsertOne) UpdateNewValues() *CompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(company.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(company.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Company.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CompanyUpsertOne) Ignore() *CompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompanyUpsertOne) DoNothing() *CompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompanyCreate.OnConflict
// documentation for more info.
func (u *CompanyUpsertOne) Update(set func(*CompanyUpsert)) *CompanyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompanyUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CompanyUpsertOne) SetName(v string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateName() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateName()
	})
}

// SetPhone sets the "phone" field.
func (u *CompanyUpsertOne) SetPhone(v string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdatePhone() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *CompanyUpsertOne) ClearPhone() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearPhone()
	})
}

// SetBillingEmail sets the "billing_email" field.
func (u *CompanyUpsertOne) SetBillingEmail(v string) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetBillingEmail(v)
	})
}

// UpdateBillingEmail sets the "billing_email" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateBillingEmail() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateBillingEmail()
	})
}

// ClearBillingEmail clears the value of the "billing_email" field.
func (u *CompanyUpsertOne) ClearBillingEmail() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearBillingEmail()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CompanyUpsertOne) SetUpdatedAt(v time.Time) *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CompanyUpsertOne) UpdateUpdatedAt() *CompanyUpsertOne {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CompanyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompanyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompanyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CompanyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CompanyUpsertOne.ID is not supported by MySQL driver. Use CompanyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CompanyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CompanyCreateBulk is the builder for creating many Company entities in bulk.
type CompanyCreateBulk struct {
	config
	err      error
	builders []*CompanyCreate
	conflict []sql.ConflictOption
}

// Save creates the Company entities in the database.
func (_c *CompanyCreateBulk) Save(ctx context.Context) ([]*Company, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Company, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompanyMutation)
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
func (_c *CompanyCreateBulk) SaveX(ctx context.Context) []*Company {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompanyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompanyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Company.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CompanyUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *CompanyCreateBulk) OnConflict(opts ...sql.ConflictOption) *CompanyUpsertBulk {
	_c.conflict = opts
	return &CompanyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CompanyCreateBulk) OnConflictColumns(columns ...string) *CompanyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CompanyUpsertBulk{
		create: _c,
	}
}

// CompanyUpsertBulk is the builder for "upsert"-ing
// a bulk of Company nodes.
type CompanyUpsertBulk struct {
	create *CompanyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(company.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CompanyUpsertBulk) UpdateNewValues() *CompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(company.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(company.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Company.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CompanyUpsertBulk) Ignore() *CompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CompanyUpsertBulk) DoNothing() *CompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CompanyCreateBulk.OnConflict
// documentation for more info.
func (u *CompanyUpsertBulk) Update(set func(*CompanyUpsert)) *CompanyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CompanyUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CompanyUpsertBulk) SetName(v string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateName() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateName()
	})
}

// SetPhone sets the "phone" field.
func (u *CompanyUpsertBulk) SetPhone(v string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdatePhone() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdatePhone()
	})
}

// ClearPhone clears the value of the "phone" field.
func (u *CompanyUpsertBulk) ClearPhone() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearPhone()
	})
}

// SetBillingEmail sets the "billing_email" field.
func (u *CompanyUpsertBulk) SetBillingEmail(v string) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetBillingEmail(v)
	})
}

// UpdateBillingEmail sets the "billing_email" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateBillingEmail() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateBillingEmail()
	})
}

// ClearBillingEmail clears the value of the "billing_email" field.
func (u *CompanyUpsertBulk) ClearBillingEmail() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.ClearBillingEmail()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CompanyUpsertBulk) SetUpdatedAt(v time.Time) *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CompanyUpsertBulk) UpdateUpdatedAt() *CompanyUpsertBulk {
	return u.Update(func(s *CompanyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CompanyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CompanyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CompanyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CompanyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
