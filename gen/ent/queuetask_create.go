// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/campuspass/campuspass/gen/ent/queuetask"
	"github.com/google/uuid"
)

// QueueTaskCreate is the builder for creating a QueueTask entity.
type QueueTaskCreate struct {
	config
	mutation *QueueTaskMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *QueueTaskCreate) SetJobID(v uuid.UUID) *QueueTaskCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetLane sets the "lane" field.
func (_c *QueueTaskCreate) SetLane(v string) *QueueTaskCreate {
	_c.mutation.SetLane(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *QueueTaskCreate) SetPriority(v int) *QueueTaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillablePriority(v *int) *QueueTaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *QueueTaskCreate) SetPayload(v json.RawMessage) *QueueTaskCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *QueueTaskCreate) SetAttempts(v int) *QueueTaskCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableAttempts(v *int) *QueueTaskCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *QueueTaskCreate) SetMaxAttempts(v int) *QueueTaskCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableMaxAttempts(v *int) *QueueTaskCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetBackoffMs sets the "backoff_ms" field.
func (_c *QueueTaskCreate) SetBackoffMs(v int64) *QueueTaskCreate {
	_c.mutation.SetBackoffMs(v)
	return _c
}

// SetNillableBackoffMs sets the "backoff_ms" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableBackoffMs(v *int64) *QueueTaskCreate {
	if v != nil {
		_c.SetBackoffMs(*v)
	}
	return _c
}

// SetAvailableAt sets the "available_at" field.
func (_c *QueueTaskCreate) SetAvailableAt(v time.Time) *QueueTaskCreate {
	_c.mutation.SetAvailableAt(v)
	return _c
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableAvailableAt(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetAvailableAt(*v)
	}
	return _c
}

// SetLockedBy sets the "locked_by" field.
func (_c *QueueTaskCreate) SetLockedBy(v string) *QueueTaskCreate {
	_c.mutation.SetLockedBy(v)
	return _c
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableLockedBy(v *string) *QueueTaskCreate {
	if v != nil {
		_c.SetLockedBy(*v)
	}
	return _c
}

// SetLockedUntil sets the "locked_until" field.
func (_c *QueueTaskCreate) SetLockedUntil(v time.Time) *QueueTaskCreate {
	_c.mutation.SetLockedUntil(v)
	return _c
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableLockedUntil(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetLockedUntil(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueueTaskCreate) SetCreatedAt(v time.Time) *QueueTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableCreatedAt(v *time.Time) *QueueTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueTaskCreate) SetID(v uuid.UUID) *QueueTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *QueueTaskCreate) SetNillableID(v *uuid.UUID) *QueueTaskCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the QueueTaskMutation object of the builder.
func (_c *QueueTaskCreate) Mutation() *QueueTaskMutation {
	return _c.mutation
}

// Save creates the QueueTask in the database.
func (_c *QueueTaskCreate) Save(ctx context.Context) (*QueueTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueTaskCreate) SaveX(ctx context.Context) *QueueTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueTaskCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := queuetask.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := queuetask.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := queuetask.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.BackoffMs(); !ok {
		v := queuetask.DefaultBackoffMs
		_c.mutation.SetBackoffMs(v)
	}
	if _, ok := _c.mutation.AvailableAt(); !ok {
		v := queuetask.DefaultAvailableAt()
		_c.mutation.SetAvailableAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queuetask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := queuetask.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueTaskCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "QueueTask.job_id"`)}
	}
	if _, ok := _c.mutation.Lane(); !ok {
		return &ValidationError{Name: "lane", err: errors.New(`ent: missing required field "QueueTask.lane"`)}
	}
	if v, ok := _c.mutation.Lane(); ok {
		if err := queuetask.LaneValidator(v); err != nil {
			return &ValidationError{Name: "lane", err: fmt.Errorf(`ent: validator failed for field "QueueTask.lane": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "QueueTask.priority"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "QueueTask.payload"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "QueueTask.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := queuetask.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "QueueTask.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "QueueTask.max_attempts"`)}
	}
	if v, ok := _c.mutation.MaxAttempts(); ok {
		if err := queuetask.MaxAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "max_attempts", err: fmt.Errorf(`ent: validator failed for field "QueueTask.max_attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BackoffMs(); !ok {
		return &ValidationError{Name: "backoff_ms", err: errors.New(`ent: missing required field "QueueTask.backoff_ms"`)}
	}
	if v, ok := _c.mutation.BackoffMs(); ok {
		if err := queuetask.BackoffMsValidator(v); err != nil {
			return &ValidationError{Name: "backoff_ms", err: fmt.Errorf(`ent: validator failed for field "QueueTask.backoff_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AvailableAt(); !ok {
		return &ValidationError{Name: "available_at", err: errors.New(`ent: missing required field "QueueTask.available_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueueTask.created_at"`)}
	}
	return nil
}

func (_c *QueueTaskCreate) sqlSave(ctx context.Context) (*QueueTask, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueTaskCreate) createSpec() (*QueueTask, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuetask.Table, sqlgraph.NewFieldSpec(queuetask.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(queuetask.FieldJobID, field.TypeUUID, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.Lane(); ok {
		_spec.SetField(queuetask.FieldLane, field.TypeString, value)
		_node.Lane = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(queuetask.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(queuetask.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(queuetask.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(queuetask.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.BackoffMs(); ok {
		_spec.SetField(queuetask.FieldBackoffMs, field.TypeInt64, value)
		_node.BackoffMs = value
	}
	if value, ok := _c.mutation.AvailableAt(); ok {
		_spec.SetField(queuetask.FieldAvailableAt, field.TypeTime, value)
		_node.AvailableAt = value
	}
	if value, ok := _c.mutation.LockedBy(); ok {
		_spec.SetField(queuetask.FieldLockedBy, field.TypeString, value)
		_node.LockedBy = &value
	}
	if value, ok := _c.mutation.LockedUntil(); ok {
		_spec.SetField(queuetask.FieldLockedUntil, field.TypeTime, value)
		_node.LockedUntil = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queuetask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// QueueTaskCreateBulk is the builder for creating many QueueTask entities in bulk.
type QueueTaskCreateBulk struct {
	config
	err      error
	builders []*QueueTaskCreate
}

// Save creates the QueueTask entities in the database.
func (_c *QueueTaskCreateBulk) Save(ctx context.Context) ([]*QueueTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueTaskMutation)
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
func (_c *QueueTaskCreateBulk) SaveX(ctx context.Context) []*QueueTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
