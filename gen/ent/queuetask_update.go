// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/campuspass/campuspass/gen/ent/predicate"
	"github.com/campuspass/campuspass/gen/ent/queuetask"
	"github.com/google/uuid"
)

// QueueTaskUpdate is the builder for updating QueueTask entities.
type QueueTaskUpdate struct {
	config
	hooks    []Hook
	mutation *QueueTaskMutation
}

// Where appends a list predicates to the QueueTaskUpdate builder.
func (_u *QueueTaskUpdate) Where(ps ...predicate.QueueTask) *QueueTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *QueueTaskUpdate) SetJobID(v uuid.UUID) *QueueTaskUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableJobID(v *uuid.UUID) *QueueTaskUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetLane sets the "lane" field.
func (_u *QueueTaskUpdate) SetLane(v string) *QueueTaskUpdate {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableLane(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QueueTaskUpdate) SetPriority(v int) *QueueTaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillablePriority(v *int) *QueueTaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *QueueTaskUpdate) AddPriority(v int) *QueueTaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueueTaskUpdate) SetPayload(v json.RawMessage) *QueueTaskUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *QueueTaskUpdate) AppendPayload(v json.RawMessage) *QueueTaskUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *QueueTaskUpdate) SetAttempts(v int) *QueueTaskUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableAttempts(v *int) *QueueTaskUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *QueueTaskUpdate) AddAttempts(v int) *QueueTaskUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *QueueTaskUpdate) SetMaxAttempts(v int) *QueueTaskUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableMaxAttempts(v *int) *QueueTaskUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *QueueTaskUpdate) AddMaxAttempts(v int) *QueueTaskUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetBackoffMs sets the "backoff_ms" field.
func (_u *QueueTaskUpdate) SetBackoffMs(v int64) *QueueTaskUpdate {
	_u.mutation.ResetBackoffMs()
	_u.mutation.SetBackoffMs(v)
	return _u
}

// SetNillableBackoffMs sets the "backoff_ms" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableBackoffMs(v *int64) *QueueTaskUpdate {
	if v != nil {
		_u.SetBackoffMs(*v)
	}
	return _u
}

// AddBackoffMs adds value to the "backoff_ms" field.
func (_u *QueueTaskUpdate) AddBackoffMs(v int64) *QueueTaskUpdate {
	_u.mutation.AddBackoffMs(v)
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *QueueTaskUpdate) SetAvailableAt(v time.Time) *QueueTaskUpdate {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableAvailableAt(v *time.Time) *QueueTaskUpdate {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *QueueTaskUpdate) SetLockedBy(v string) *QueueTaskUpdate {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableLockedBy(v *string) *QueueTaskUpdate {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *QueueTaskUpdate) ClearLockedBy() *QueueTaskUpdate {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *QueueTaskUpdate) SetLockedUntil(v time.Time) *QueueTaskUpdate {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *QueueTaskUpdate) SetNillableLockedUntil(v *time.Time) *QueueTaskUpdate {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (_u *QueueTaskUpdate) ClearLockedUntil() *QueueTaskUpdate {
	_u.mutation.ClearLockedUntil()
	return _u
}

// Mutation returns the QueueTaskMutation object of the builder.
func (_u *QueueTaskUpdate) Mutation() *QueueTaskMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueTaskUpdate) check() error {
	if v, ok := _u.mutation.Lane(); ok {
		if err := queuetask.LaneValidator(v); err != nil {
			return &ValidationError{Name: "lane", err: fmt.Errorf(`ent: validator failed for field "QueueTask.lane": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := queuetask.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "QueueTask.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxAttempts(); ok {
		if err := queuetask.MaxAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "max_attempts", err: fmt.Errorf(`ent: validator failed for field "QueueTask.max_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BackoffMs(); ok {
		if err := queuetask.BackoffMsValidator(v); err != nil {
			return &ValidationError{Name: "backoff_ms", err: fmt.Errorf(`ent: validator failed for field "QueueTask.backoff_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuetask.Table, queuetask.Columns, sqlgraph.NewFieldSpec(queuetask.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(queuetask.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(queuetask.FieldLane, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(queuetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(queuetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queuetask.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queuetask.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(queuetask.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(queuetask.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(queuetask.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(queuetask.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BackoffMs(); ok {
		_spec.SetField(queuetask.FieldBackoffMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBackoffMs(); ok {
		_spec.AddField(queuetask.FieldBackoffMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(queuetask.FieldAvailableAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(queuetask.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(queuetask.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(queuetask.FieldLockedUntil, field.TypeTime, value)
	}
	if _u.mutation.LockedUntilCleared() {
		_spec.ClearField(queuetask.FieldLockedUntil, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuetask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueTaskUpdateOne is the builder for updating a single QueueTask entity.
type QueueTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueTaskMutation
}

// SetJobID sets the "job_id" field.
func (_u *QueueTaskUpdateOne) SetJobID(v uuid.UUID) *QueueTaskUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableJobID(v *uuid.UUID) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetLane sets the "lane" field.
func (_u *QueueTaskUpdateOne) SetLane(v string) *QueueTaskUpdateOne {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableLane(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *QueueTaskUpdateOne) SetPriority(v int) *QueueTaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillablePriority(v *int) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *QueueTaskUpdateOne) AddPriority(v int) *QueueTaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *QueueTaskUpdateOne) SetPayload(v json.RawMessage) *QueueTaskUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *QueueTaskUpdateOne) AppendPayload(v json.RawMessage) *QueueTaskUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *QueueTaskUpdateOne) SetAttempts(v int) *QueueTaskUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableAttempts(v *int) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *QueueTaskUpdateOne) AddAttempts(v int) *QueueTaskUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *QueueTaskUpdateOne) SetMaxAttempts(v int) *QueueTaskUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableMaxAttempts(v *int) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *QueueTaskUpdateOne) AddMaxAttempts(v int) *QueueTaskUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetBackoffMs sets the "backoff_ms" field.
func (_u *QueueTaskUpdateOne) SetBackoffMs(v int64) *QueueTaskUpdateOne {
	_u.mutation.ResetBackoffMs()
	_u.mutation.SetBackoffMs(v)
	return _u
}

// SetNillableBackoffMs sets the "backoff_ms" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableBackoffMs(v *int64) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetBackoffMs(*v)
	}
	return _u
}

// AddBackoffMs adds value to the "backoff_ms" field.
func (_u *QueueTaskUpdateOne) AddBackoffMs(v int64) *QueueTaskUpdateOne {
	_u.mutation.AddBackoffMs(v)
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *QueueTaskUpdateOne) SetAvailableAt(v time.Time) *QueueTaskUpdateOne {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableAvailableAt(v *time.Time) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *QueueTaskUpdateOne) SetLockedBy(v string) *QueueTaskUpdateOne {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableLockedBy(v *string) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *QueueTaskUpdateOne) ClearLockedBy() *QueueTaskUpdateOne {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *QueueTaskUpdateOne) SetLockedUntil(v time.Time) *QueueTaskUpdateOne {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *QueueTaskUpdateOne) SetNillableLockedUntil(v *time.Time) *QueueTaskUpdateOne {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (_u *QueueTaskUpdateOne) ClearLockedUntil() *QueueTaskUpdateOne {
	_u.mutation.ClearLockedUntil()
	return _u
}

// Mutation returns the QueueTaskMutation object of the builder.
func (_u *QueueTaskUpdateOne) Mutation() *QueueTaskMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueTaskUpdate builder.
func (_u *QueueTaskUpdateOne) Where(ps ...predicate.QueueTask) *QueueTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueTaskUpdateOne) Select(field string, fields ...string) *QueueTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueTask entity.
func (_u *QueueTaskUpdateOne) Save(ctx context.Context) (*QueueTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueTaskUpdateOne) SaveX(ctx context.Context) *QueueTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueueTaskUpdateOne) check() error {
	if v, ok := _u.mutation.Lane(); ok {
		if err := queuetask.LaneValidator(v); err != nil {
			return &ValidationError{Name: "lane", err: fmt.Errorf(`ent: validator failed for field "QueueTask.lane": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := queuetask.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "QueueTask.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxAttempts(); ok {
		if err := queuetask.MaxAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "max_attempts", err: fmt.Errorf(`ent: validator failed for field "QueueTask.max_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BackoffMs(); ok {
		if err := queuetask.BackoffMsValidator(v); err != nil {
			return &ValidationError{Name: "backoff_ms", err: fmt.Errorf(`ent: validator failed for field "QueueTask.backoff_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *QueueTaskUpdateOne) sqlSave(ctx context.Context) (_node *QueueTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(queuetask.Table, queuetask.Columns, sqlgraph.NewFieldSpec(queuetask.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuetask.FieldID)
		for _, f := range fields {
			if !queuetask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuetask.FieldID {
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
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(queuetask.FieldJobID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(queuetask.FieldLane, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(queuetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(queuetask.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(queuetask.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, queuetask.FieldPayload, value)
		})
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(queuetask.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(queuetask.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(queuetask.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(queuetask.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BackoffMs(); ok {
		_spec.SetField(queuetask.FieldBackoffMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBackoffMs(); ok {
		_spec.AddField(queuetask.FieldBackoffMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(queuetask.FieldAvailableAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(queuetask.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(queuetask.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(queuetask.FieldLockedUntil, field.TypeTime, value)
	}
	if _u.mutation.LockedUntilCleared() {
		_spec.ClearField(queuetask.FieldLockedUntil, field.TypeTime)
	}
	_node = &QueueTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuetask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
