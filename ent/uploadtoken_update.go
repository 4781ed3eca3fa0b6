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
	"github.com/warehouse-exchange/wex/ent/uploadtoken"
)

// UploadTokenUpdate is the builder for updating UploadToken entities.
type UploadTokenUpdate struct {
	config
	hooks    []Hook
	mutation *UploadTokenMutation
}

// Where appends a list predicates to the UploadTokenUpdate builder.
func (_u *UploadTokenUpdate) Where(ps ...predicate.UploadToken) *UploadTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *UploadTokenUpdate) SetStatus(v uploadtoken.Status) *UploadTokenUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadTokenUpdate) SetNillableStatus(v *uploadtoken.Status) *UploadTokenUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUploadedFileURL sets the "uploaded_file_url" field.
func (_u *UploadTokenUpdate) SetUploadedFileURL(v string) *UploadTokenUpdate {
	_u.mutation.SetUploadedFileURL(v)
	return _u
}

// SetNillableUploadedFileURL sets the "uploaded_file_url" field if the given value is not nil.
func (_u *UploadTokenUpdate) SetNillableUploadedFileURL(v *string) *UploadTokenUpdate {
	if v != nil {
		_u.SetUploadedFileURL(*v)
	}
	return _u
}

// ClearUploadedFileURL clears the value of the "uploaded_file_url" field.
func (_u *UploadTokenUpdate) ClearUploadedFileURL() *UploadTokenUpdate {
	_u.mutation.ClearUploadedFileURL()
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *UploadTokenUpdate) SetUsedAt(v time.Time) *UploadTokenUpdate {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *UploadTokenUpdate) SetNillableUsedAt(v *time.Time) *UploadTokenUpdate {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *UploadTokenUpdate) ClearUsedAt() *UploadTokenUpdate {
	_u.mutation.ClearUsedAt()
	return _u
}

// Mutation returns the UploadTokenMutation object of the builder.
func (_u *UploadTokenUpdate) Mutation() *UploadTokenMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UploadTokenUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UploadTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadTokenUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := uploadtoken.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadToken.status": %w`, err)}
		}
	}
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UploadToken.engagement"`)
	}
	return nil
}

func (_u *UploadTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadtoken.Table, uploadtoken.Columns, sqlgraph.NewFieldSpec(uploadtoken.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(uploadtoken.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UploadedFileURL(); ok {
		_spec.SetField(uploadtoken.FieldUploadedFileURL, field.TypeString, value)
	}
	if _u.mutation.UploadedFileURLCleared() {
		_spec.ClearField(uploadtoken.FieldUploadedFileURL, field.TypeString)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(uploadtoken.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(uploadtoken.FieldUsedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadtoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UploadTokenUpdateOne is the builder for updating a single UploadToken entity.
type UploadTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UploadTokenMutation
}

// SetStatus sets the "status" field.
func (_u *UploadTokenUpdateOne) SetStatus(v uploadtoken.Status) *UploadTokenUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UploadTokenUpdateOne) SetNillableStatus(v *uploadtoken.Status) *UploadTokenUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUploadedFileURL sets the "uploaded_file_url" field.
func (_u *UploadTokenUpdateOne) SetUploadedFileURL(v string) *UploadTokenUpdateOne {
	_u.mutation.SetUploadedFileURL(v)
	return _u
}

// SetNillableUploadedFileURL sets the "uploaded_file_url" field if the given value is not nil.
func (_u *UploadTokenUpdateOne) SetNillableUploadedFileURL(v *string) *UploadTokenUpdateOne {
	if v != nil {
		_u.SetUploadedFileURL(*v)
	}
	return _u
}

// ClearUploadedFileURL clears the value of the "uploaded_file_url" field.
func (_u *UploadTokenUpdateOne) ClearUploadedFileURL() *UploadTokenUpdateOne {
	_u.mutation.ClearUploadedFileURL()
	return _u
}

// SetUsedAt sets the "used_at" field.
func (_u *UploadTokenUpdateOne) SetUsedAt(v time.Time) *UploadTokenUpdateOne {
	_u.mutation.SetUsedAt(v)
	return _u
}

// SetNillableUsedAt sets the "used_at" field if the given value is not nil.
func (_u *UploadTokenUpdateOne) SetNillableUsedAt(v *time.Time) *UploadTokenUpdateOne {
	if v != nil {
		_u.SetUsedAt(*v)
	}
	return _u
}

// ClearUsedAt clears the value of the "used_at" field.
func (_u *UploadTokenUpdateOne) ClearUsedAt() *UploadTokenUpdateOne {
	_u.mutation.ClearUsedAt()
	return _u
}

// Mutation returns the UploadTokenMutation object of the builder.
func (_u *UploadTokenUpdateOne) Mutation() *UploadTokenMutation {
	return _u.mutation
}

// Where appends a list predicates to the UploadTokenUpdate builder.
func (_u *UploadTokenUpdateOne) Where(ps ...predicate.UploadToken) *UploadTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UploadTokenUpdateOne) Select(field string, fields ...string) *UploadTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UploadToken entity.
func (_u *UploadTokenUpdateOne) Save(ctx context.Context) (*UploadToken, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UploadTokenUpdateOne) SaveX(ctx context.Context) *UploadToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UploadTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UploadTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UploadTokenUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := uploadtoken.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "UploadToken.status": %w`, err)}
		}
	}
	if _u.mutation.EngagementCleared() && len(_u.mutation.EngagementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "UploadToken.engagement"`)
	}
	return nil
}

func (_u *UploadTokenUpdateOne) sqlSave(ctx context.Context) (_node *UploadToken, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(uploadtoken.Table, uploadtoken.Columns, sqlgraph.NewFieldSpec(uploadtoken.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UploadToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, uploadtoken.FieldID)
		for _, f := range fields {
			if !uploadtoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != uploadtoken.FieldID {
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
		_spec.SetField(uploadtoken.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UploadedFileURL(); ok {
		_spec.SetField(uploadtoken.FieldUploadedFileURL, field.TypeString, value)
	}
	if _u.mutation.UploadedFileURLCleared() {
		_spec.ClearField(uploadtoken.FieldUploadedFileURL, field.TypeString)
	}
	if value, ok := _u.mutation.UsedAt(); ok {
		_spec.SetField(uploadtoken.FieldUsedAt, field.TypeTime, value)
	}
	if _u.mutation.UsedAtCleared() {
		_spec.ClearField(uploadtoken.FieldUsedAt, field.TypeTime)
	}
	_node = &UploadToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{uploadtoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
