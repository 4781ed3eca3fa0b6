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
	"github.com/warehouse-exchange/wex/ent/uploadtoken"
)

// UploadTokenCreate is the builder for creating a UploadToken entity.
type UploadTokenCreate struct {
	config
	mutation *UploadTokenMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetToken sets the "token" field.
func (_c *UploadTokenCreate) SetToken(v string) *UploadTokenCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetEngagementID sets the "engagement_id" field.
func (_c *UploadTokenCreate) SetEngagementID(v string) *UploadTokenCreate {
	_c.mutation.SetEngagementID(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *UploadTokenCreate) SetPurpose(v uploadtoken.Purpose) *UploadTokenCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *UploadTokenCreate) SetStatus(v uploadtoken.Status) *UploadTokenCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UploadTokenCreate) SetNillableStatus(v *uploadtoken.Status) *UploadTokenCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetUploadedFileURL sets the "uploaded_file_url" field.
func (_c *UploadTokenCreate) SetUploadedFileURL(v string) *UploadTokenCreate {
	_c.mutation.SetUploadedFileURL(v)
	return _c
}

// SetNillableUploadedFileURL sets the "uploaded_file_url" field if the given value is not nil.
func (_c *UploadTokenCreate) SetNillableUploadedFileURL(v *string) *UploadTokenCreate {
	if v != nil {
		_c.SetUploadedFileURL(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *UploadTokenCreate) SetExpiresAt(v time.Time) *UploadTokenCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetUsedAt sets the "used_at" field.
func (_c *UploadTokenCreate) SetUsedAt(v time.Time) *UploadTokenCreate {
	_c.mutation.SetUsedAt(v)
	return _c
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_c *UploadTokenCreate) SetNillableUsedAt(v *time.Time) *UploadTokenCreate {
	if v != nil {
		_c.SetUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UploadTokenCreate) SetCreatedAt(v time.Time) *UploadTokenCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UploadTokenCreate) SetNillableCreatedAt(v *time.Time) *UploadTokenCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UploadTokenCreate) SetID(v string) *UploadTokenCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEngagement sets the "engagement" edge to the Engagement entity.
func (_c *UploadTokenCreate) SetEngagement(v *Engagement) *UploadTokenCreate {
	return _c.SetEngagementID(v.ID)
}

// Mutation returns the UploadTokenMutation object of the builder.
func (_c *UploadTokenCreate) Mutation() *UploadTokenMutation {
	return _c.mutation
}

// Save creates the UploadToken in the database.
func (_c *UploadTokenCreate) Save(ctx context.Context) (*UploadToken, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UploadTokenCreate) SaveX(ctx context.Context) *UploadToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadTokenCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadTokenCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UploadTokenCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := uploadtoken.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := uploadtoken.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UploadTokenCreate) check() error {
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "UploadToken.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := uploadtoken.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "UploadToken.token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EngagementID(); !ok {
		return &ValidationError{Name: "engagement_id", err: errors.New(`ent: missing required field "UploadToken.engagement_id"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "UploadToken.purpose"`)}
	}
	if v, ok := _c.mutation.Purpose(); ok {
		if err := uploadtoken.PurposeValidator(v); err != nil {
			return &ValidationError{Name: "purpose", err: fmt.Errorf(`ent: validator failed for field "UploadToken.purpose": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "UploadToken.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := uploadtoken.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadToken.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "UploadToken.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UploadToken.created_at"`)}
	}
	if len(_c.mutation.EngagementIDs()) == 0 {
		return &ValidationError{Name: "engagement", err: errors.New(`ent: missing required edge "UploadToken.engagement"`)}
	}
	return nil
}

func (_c *UploadTokenCreate) sqlSave(ctx context.Context) (*UploadToken, error) {
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
			return nil, fmt.Errorf("unexpected UploadToken.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UploadTokenCreate) createSpec() (*UploadToken, *sqlgraph.CreateSpec) {
	var (
		_node = &UploadToken{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(uploadtoken.Table, sqlgraph.NewFieldSpec(uploadtoken.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(uploadtoken.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(uploadtoken.FieldPurpose, field.TypeEnum, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(uploadtoken.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UploadedFileURL(); ok {
		_spec.SetField(uploadtoken.FieldUploadedFileURL, field.TypeString, value)
		_node.UploadedFileURL = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(uploadtoken.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.UsedAt(); ok {
		_spec.SetField(uploadtoken.FieldUsedAt, field.TypeTime, value)
		_node.UsedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(uploadtoken.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.EngagementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   uploadtoken.EngagementTable,
			Columns: []string{uploadtoken.EngagementColumn},
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
//	client.UploadToken.Create().
//		SetToken(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UploadTokenUpsert) {
//			SetToken(v+v).
//		}).
//		Exec(ctx)
func (_c *UploadTokenCreate) OnConflict(opts ...sql.ConflictOption) *UploadTokenUpsertOne {
	_c.conflict = opts
	return &UploadTokenUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UploadToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UploadTokenCreate) OnConflictColumns(columns ...string) *UploadTokenUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UploadTokenUpsertOne{
		create: _c,
	}
}

type (
	// UploadTokenUpsertOne is the builder for "upsert"-ing
	//  one UploadToken node.
	UploadTokenUpsertOne struct {
		create *UploadTokenCreate
	}

	// UploadTokenUpsert is the "OnConflict" setter.
	UploadTokenUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *UploadTokenUpsert) SetStatus(v uploadtoken.Status) *UploadTokenUpsert {
	u.Set(uploadtoken.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UploadTokenUpsert) UpdateStatus() *UploadTokenUpsert {
	u.SetExcluded(uploadtoken.FieldStatus)
	return u
}

// SetUploadedFileURL sets the "uploaded_file_url" field.
func (u *UploadTokenUpsert) SetUploadedFileURL(v string) *UploadTokenUpsert {
	u.Set(uploadtoken.FieldUploadedFileURL, v)
	return u
}

// UpdateUploadedFileURL sets the "uploaded_file_url" field to the value that was provided on create.
func (u *UploadTokenUpsert) UpdateUploadedFileURL() *UploadTokenUpsert {
	u.SetExcluded(uploadtoken.FieldUploadedFileURL)
	return u
}

// ClearUploadedFileURL clears the value of the "uploaded_file_url" field.
func (u *UploadTokenUpsert) ClearUploadedFileURL() *UploadTokenUpsert {
	u.SetNull(uploadtoken.FieldUploadedFileURL)
	return u
}

// SetUsedAt sets the "used_at" field.
func (u *UploadTokenUpsert) SetUsedAt(v time.Time) *UploadTokenUpsert {
	u.Set(uploadtoken.FieldUsedAt, v)
	return u
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *UploadTokenUpsert) UpdateUsedAt() *UploadTokenUpsert {
	u.SetExcluded(uploadtoken.FieldUsedAt)
	return u
}

// ClearUsedAt clears the value of the "used_at" field.
func (u *UploadTokenUpsert) ClearUsedAt() *UploadTokenUpsert {
	u.SetNull(uploadtoken.FieldUsedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.UploadToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(uploadtoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UploadTokenUpsertOne) UpdateNewValues() *UploadTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(uploadtoken.FieldID)
		}
		if _, exists := u.create.mutation.Token(); exists {
			s.SetIgnore(uploadtoken.FieldToken)
		}
		if _, exists := u.create.mutation.EngagementID(); exists {
			s.SetIgnore(uploadtoken.FieldEngagementID)
		}
		if _, exists := u.create.mutation.Purpose(); exists {
			s.SetIgnore(uploadtoken.FieldPurpose)
		}
		if _, exists := u.create.mutation.ExpiresAt(); exists {
			s.SetIgnore(uploadtoken.FieldExpiresAt)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(uploadtoken.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UploadToken.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UploadTokenUpsertOne) Ignore() *UploadTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UploadTokenUpsertOne) DoNothing() *UploadTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UploadTokenCreate.OnConflict
// documentation for more info.
func (u *UploadTokenUpsertOne) Update(set func(*UploadTokenUpsert)) *UploadTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UploadTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *UploadTokenUpsertOne) SetStatus(v uploadtoken.Status) *UploadTokenUpsertOne {
	return u.Update(func(s *UploadTokenUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UploadTokenUpsertOne) UpdateStatus() *UploadTokenUpsertOne {
	return u.Update(func(s *UploadTokenUpsert) {
		s.UpdateStatus()
	})
}

// SetUploadedFileURL sets the "uploaded_file_url" field.
func (u *UploadTokenUpsertOne) SetUploadedFileURL(v string) *UploadTokenUpsertOne {
	return u.Update(func(s *UploadTokenUpsert) {
		s.SetUploadedFileURL(v)
	})
}

// UpdateUploadedFileURL sets the "uploaded_file_url" field to the value that was provided on create.
func (u *UploadTokenUpsertOne) UpdateUploadedFileURL() *UploadTokenUpsertOne {
	return u.Update(func(s *UploadTokenUpsert) {
		s.UpdateUploadedFileURL()
	})
}

// ClearUploadedFileURL clears the value of the "uploaded_file_url" field.
func (u *UploadTokenUpsertOne) ClearUploadedFileURL() *UploadTokenUpsertOne {
	return u.Update(func(s *UploadTokenUpsert) {
		s.ClearUploadedFileURL()
	})
}

// SetUsedAt sets the "used_at" field.
func (u *UploadTokenUpsertOne) SetUsedAt(v time.Time) *UploadTokenUpsertOne {
	return u.Update(func(s *UploadTokenUpsert) {
		s.SetUsedAt(v)
	})
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *UploadTokenUpsertOne) UpdateUsedAt() *UploadTokenUpsertOne {
	return u.Update(func(s *UploadTokenUpsert) {
		s.UpdateUsedAt()
	})
}

// ClearUsedAt clears the value of the "used_at" field.
func (u *UploadTokenUpsertOne) ClearUsedAt() *UploadTokenUpsertOne {
	return u.Update(func(s *UploadTokenUpsert) {
		s.ClearUsedAt()
	})
}

// Exec executes the query.
func (u *UploadTokenUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UploadTokenCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UploadTokenUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UploadTokenUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: UploadTokenUpsertOne.ID is not supported by MySQL driver. Use UploadTokenUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UploadTokenUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UploadTokenCreateBulk is the builder for creating many UploadToken entities in bulk.
type UploadTokenCreateBulk struct {
	config
	err      error
	builders []*UploadTokenCreate
	conflict []sql.ConflictOption
}

// Save creates the UploadToken entities in the database.
func (_c *UploadTokenCreateBulk) Save(ctx context.Context) ([]*UploadToken, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UploadToken, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UploadTokenMutation)
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
func (_c *UploadTokenCreateBulk) SaveX(ctx context.Context) []*UploadToken {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UploadTokenCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UploadTokenCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.UploadToken.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UploadTokenUpsert) {
//			SetToken(v+v).
//		}).
//		Exec(ctx)
func (_c *UploadTokenCreateBulk) OnConflict(opts ...sql.ConflictOption) *UploadTokenUpsertBulk {
	_c.conflict = opts
	return &UploadTokenUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.UploadToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UploadTokenCreateBulk) OnConflictColumns(columns ...string) *UploadTokenUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UploadTokenUpsertBulk{
		create: _c,
	}
}

// UploadTokenUpsertBulk is the builder for "upsert"-ing
// a bulk of UploadToken nodes.
type UploadTokenUpsertBulk struct {
	create *UploadTokenCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.UploadToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(uploadtoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UploadTokenUpsertBulk) UpdateNewValues() *UploadTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(uploadtoken.FieldID)
			}
			if _, exists := b.mutation.Token(); exists {
				s.SetIgnore(uploadtoken.FieldToken)
			}
			if _, exists := b.mutation.EngagementID(); exists {
				s.SetIgnore(uploadtoken.FieldEngagementID)
			}
			if _, exists := b.mutation.Purpose(); exists {
				s.SetIgnore(uploadtoken.FieldPurpose)
			}
			if _, exists := b.mutation.ExpiresAt(); exists {
				s.SetIgnore(uploadtoken.FieldExpiresAt)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(uploadtoken.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.UploadToken.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UploadTokenUpsertBulk) Ignore() *UploadTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UploadTokenUpsertBulk) DoNothing() *UploadTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UploadTokenCreateBulk.OnConflict
// documentation for more info.
func (u *UploadTokenUpsertBulk) Update(set func(*UploadTokenUpsert)) *UploadTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UploadTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *UploadTokenUpsertBulk) SetStatus(v uploadtoken.Status) *UploadTokenUpsertBulk {
	return u.Update(func(s *UploadTokenUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *UploadTokenUpsertBulk) UpdateStatus() *UploadTokenUpsertBulk {
	return u.Update(func(s *UploadTokenUpsert) {
		s.UpdateStatus()
	})
}

// SetUploadedFileURL sets the "uploaded_file_url" field.
func (u *UploadTokenUpsertBulk) SetUploadedFileURL(v string) *UploadTokenUpsertBulk {
	return u.Update(func(s *UploadTokenUpsert) {
		s.SetUploadedFileURL(v)
	})
}

// UpdateUploadedFileURL sets the "uploaded_file_url" field to the value that was provided on create.
func (u *UploadTokenUpsertBulk) UpdateUploadedFileURL() *UploadTokenUpsertBulk {
	return u.Update(func(s *UploadTokenUpsert) {
		s.UpdateUploadedFileURL()
	})
}

// ClearUploadedFileURL clears the value of the "uploaded_file_url" field.
func (u *UploadTokenUpsertBulk) ClearUploadedFileURL() *UploadTokenUpsertBulk {
	return u.Update(func(s *UploadTokenUpsert) {
		s.ClearUploadedFileURL()
	})
}

// SetUsedAt sets the "used_at" field.
func (u *UploadTokenUpsertBulk) SetUsedAt(v time.Time) *UploadTokenUpsertBulk {
	return u.Update(func(s *UploadTokenUpsert) {
		s.SetUsedAt(v)
	})
}

// UpdateUsedAt sets the "used_at" field to the value that was provided on create.
func (u *UploadTokenUpsertBulk) UpdateUsedAt() *UploadTokenUpsertBulk {
	return u.Update(func(s *UploadTokenUpsert) {
		s.UpdateUsedAt()
	})
}

// ClearUsedAt clears the value of the "used_at" field.
func (u *UploadTokenUpsertBulk) ClearUsedAt() *UploadTokenUpsertBulk {
	return u.Update(func(s *UploadTokenUpsert) {
		s.ClearUsedAt()
	})
}

// Exec executes the query.
func (u *UploadTokenUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UploadTokenCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UploadTokenCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UploadTokenUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
