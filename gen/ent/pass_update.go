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
	"github.com/campuspass/campuspass/gen/ent/application"
	"github.com/campuspass/campuspass/gen/ent/pass"
	"github.com/campuspass/campuspass/gen/ent/predicate"
	"github.com/google/uuid"
)

// PassUpdate is the builder for updating Pass entities.
type PassUpdate struct {
	config
	hooks    []Hook
	mutation *PassMutation
}

// Where appends a list predicates to the PassUpdate builder.
func (_u *PassUpdate) Where(ps ...predicate.Pass) *PassUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApplicationID sets the "application_id" field.
func (_u *PassUpdate) SetApplicationID(v uuid.UUID) *PassUpdate {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *PassUpdate) SetNillableApplicationID(v *uuid.UUID) *PassUpdate {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// SetSerial sets the "serial" field.
func (_u *PassUpdate) SetSerial(v string) *PassUpdate {
	_u.mutation.SetSerial(v)
	return _u
}

// SetNillableSerial sets the "serial" field if the given value is not nil.
func (_u *PassUpdate) SetNillableSerial(v *string) *PassUpdate {
	if v != nil {
		_u.SetSerial(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PassUpdate) SetStatus(v string) *PassUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PassUpdate) SetNillableStatus(v *string) *PassUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIssuedAt sets the "issued_at" field.
func (_u *PassUpdate) SetIssuedAt(v time.Time) *PassUpdate {
	_u.mutation.SetIssuedAt(v)
	return _u
}

// SetNillableIssuedAt sets the "issued_at" field if the given value is not nil.
func (_u *PassUpdate) SetNillableIssuedAt(v *time.Time) *PassUpdate {
	if v != nil {
		_u.SetIssuedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PassUpdate) SetExpiresAt(v time.Time) *PassUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PassUpdate) SetNillableExpiresAt(v *time.Time) *PassUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PassUpdate) SetUpdatedAt(v time.Time) *PassUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApplication sets the "application" edge to the Application entity.
func (_u *PassUpdate) SetApplication(v *Application) *PassUpdate {
	return _u.SetApplicationID(v.ID)
}

// Mutation returns the PassMutation object of the builder.
func (_u *PassUpdate) Mutation() *PassMutation {
	return _u.mutation
}

// ClearApplication clears the "application" edge to the Application entity.
func (_u *PassUpdate) ClearApplication() *PassUpdate {
	_u.mutation.ClearApplication()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PassUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PassUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PassUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PassUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PassUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pass.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PassUpdate) check() error {
	if v, ok := _u.mutation.Serial(); ok {
		if err := pass.SerialValidator(v); err != nil {
			return &ValidationError{Name: "serial", err: fmt.Errorf(`ent: validator failed for field "Pass.serial": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pass.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Pass.status": %w`, err)}
		}
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Pass.application"`)
	}
	return nil
}

func (_u *PassUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pass.Table, pass.Columns, sqlgraph.NewFieldSpec(pass.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Serial(); ok {
		_spec.SetField(pass.FieldSerial, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pass.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuedAt(); ok {
		_spec.SetField(pass.FieldIssuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(pass.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pass.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   pass.ApplicationTable,
			Columns: []string{pass.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   pass.ApplicationTable,
			Columns: []string{pass.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pass.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PassUpdateOne is the builder for updating a single Pass entity.
type PassUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PassMutation
}

// SetApplicationID sets the "application_id" field.
func (_u *PassUpdateOne) SetApplicationID(v uuid.UUID) *PassUpdateOne {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *PassUpdateOne) SetNillableApplicationID(v *uuid.UUID) *PassUpdateOne {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// SetSerial sets the "serial" field.
func (_u *PassUpdateOne) SetSerial(v string) *PassUpdateOne {
	_u.mutation.SetSerial(v)
	return _u
}

// SetNillableSerial sets the "serial" field if the given value is not nil.
func (_u *PassUpdateOne) SetNillableSerial(v *string) *PassUpdateOne {
	if v != nil {
		_u.SetSerial(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PassUpdateOne) SetStatus(v string) *PassUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PassUpdateOne) SetNillableStatus(v *string) *PassUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIssuedAt sets the "issued_at" field.
func (_u *PassUpdateOne) SetIssuedAt(v time.Time) *PassUpdateOne {
	_u.mutation.SetIssuedAt(v)
	return _u
}

// SetNillableIssuedAt sets the "issued_at" field if the given value is not nil.
func (_u *PassUpdateOne) SetNillableIssuedAt(v *time.Time) *PassUpdateOne {
	if v != nil {
		_u.SetIssuedAt(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PassUpdateOne) SetExpiresAt(v time.Time) *PassUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PassUpdateOne) SetNillableExpiresAt(v *time.Time) *PassUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PassUpdateOne) SetUpdatedAt(v time.Time) *PassUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetApplication sets the "application" edge to the Application entity.
func (_u *PassUpdateOne) SetApplication(v *Application) *PassUpdateOne {
	return _u.SetApplicationID(v.ID)
}

// Mutation returns the PassMutation object of the builder.
func (_u *PassUpdateOne) Mutation() *PassMutation {
	return _u.mutation
}

// ClearApplication clears the "application" edge to the Application entity.
func (_u *PassUpdateOne) ClearApplication() *PassUpdateOne {
	_u.mutation.ClearApplication()
	return _u
}

// Where appends a list predicates to the PassUpdate builder.
func (_u *PassUpdateOne) Where(ps ...predicate.Pass) *PassUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PassUpdateOne) Select(field string, fields ...string) *PassUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Pass entity.
func (_u *PassUpdateOne) Save(ctx context.Context) (*Pass, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PassUpdateOne) SaveX(ctx context.Context) *Pass {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PassUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PassUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PassUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pass.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PassUpdateOne) check() error {
	if v, ok := _u.mutation.Serial(); ok {
		if err := pass.SerialValidator(v); err != nil {
			return &ValidationError{Name: "serial", err: fmt.Errorf(`ent: validator failed for field "Pass.serial": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pass.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Pass.status": %w`, err)}
		}
	}
	if _u.mutation.ApplicationCleared() && len(_u.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Pass.application"`)
	}
	return nil
}

func (_u *PassUpdateOne) sqlSave(ctx context.Context) (_node *Pass, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pass.Table, pass.Columns, sqlgraph.NewFieldSpec(pass.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Pass.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pass.FieldID)
		for _, f := range fields {
			if !pass.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pass.FieldID {
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
	if value, ok := _u.mutation.Serial(); ok {
		_spec.SetField(pass.FieldSerial, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pass.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.IssuedAt(); ok {
		_spec.SetField(pass.FieldIssuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(pass.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pass.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ApplicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   pass.ApplicationTable,
			Columns: []string{pass.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   pass.ApplicationTable,
			Columns: []string{pass.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Pass{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pass.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
