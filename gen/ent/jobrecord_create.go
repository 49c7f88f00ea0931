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
	"github.com/campuspass/campuspass/gen/ent/jobrecord"
	"github.com/google/uuid"
)

// JobRecordCreate is the builder for creating a JobRecord entity.
type JobRecordCreate struct {
	config
	mutation *JobRecordMutation
	hooks    []Hook
}

// SetJobType sets the "job_type" field.
func (_c *JobRecordCreate) SetJobType(v string) *JobRecordCreate {
	_c.mutation.SetJobType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobRecordCreate) SetStatus(v string) *JobRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableStatus(v *string) *JobRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalRecords sets the "total_records" field.
func (_c *JobRecordCreate) SetTotalRecords(v int) *JobRecordCreate {
	_c.mutation.SetTotalRecords(v)
	return _c
}

// SetNillableTotalRecords sets the "total_records" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableTotalRecords(v *int) *JobRecordCreate {
	if v != nil {
		_c.SetTotalRecords(*v)
	}
	return _c
}

// SetProcessedRecords sets the "processed_records" field.
func (_c *JobRecordCreate) SetProcessedRecords(v int) *JobRecordCreate {
	_c.mutation.SetProcessedRecords(v)
	return _c
}

// SetNillableProcessedRecords sets the "processed_records" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableProcessedRecords(v *int) *JobRecordCreate {
	if v != nil {
		_c.SetProcessedRecords(*v)
	}
	return _c
}

// SetFailedRecords sets the "failed_records" field.
func (_c *JobRecordCreate) SetFailedRecords(v int) *JobRecordCreate {
	_c.mutation.SetFailedRecords(v)
	return _c
}

// SetNillableFailedRecords sets the "failed_records" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableFailedRecords(v *int) *JobRecordCreate {
	if v != nil {
		_c.SetFailedRecords(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *JobRecordCreate) SetUserID(v uuid.UUID) *JobRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetInstitutionID sets the "institution_id" field.
func (_c *JobRecordCreate) SetInstitutionID(v uuid.UUID) *JobRecordCreate {
	_c.mutation.SetInstitutionID(v)
	return _c
}

// SetNillableInstitutionID sets the "institution_id" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableInstitutionID(v *uuid.UUID) *JobRecordCreate {
	if v != nil {
		_c.SetInstitutionID(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *JobRecordCreate) SetPayload(v json.RawMessage) *JobRecordCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetErrors sets the "errors" field.
func (_c *JobRecordCreate) SetErrors(v []string) *JobRecordCreate {
	_c.mutation.SetErrors(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *JobRecordCreate) SetResult(v json.RawMessage) *JobRecordCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *JobRecordCreate) SetCancelRequested(v bool) *JobRecordCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableCancelRequested(v *bool) *JobRecordCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobRecordCreate) SetCreatedAt(v time.Time) *JobRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableCreatedAt(v *time.Time) *JobRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobRecordCreate) SetUpdatedAt(v time.Time) *JobRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableUpdatedAt(v *time.Time) *JobRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobRecordCreate) SetID(v uuid.UUID) *JobRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobRecordCreate) SetNillableID(v *uuid.UUID) *JobRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the JobRecordMutation object of the builder.
func (_c *JobRecordCreate) Mutation() *JobRecordMutation {
	return _c.mutation
}

// Save creates the JobRecord in the database.
func (_c *JobRecordCreate) Save(ctx context.Context) (*JobRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobRecordCreate) SaveX(ctx context.Context) *JobRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := jobrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalRecords(); !ok {
		v := jobrecord.DefaultTotalRecords
		_c.mutation.SetTotalRecords(v)
	}
	if _, ok := _c.mutation.ProcessedRecords(); !ok {
		v := jobrecord.DefaultProcessedRecords
		_c.mutation.SetProcessedRecords(v)
	}
	if _, ok := _c.mutation.FailedRecords(); !ok {
		v := jobrecord.DefaultFailedRecords
		_c.mutation.SetFailedRecords(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := jobrecord.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := jobrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := jobrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := jobrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobRecordCreate) check() error {
	if _, ok := _c.mutation.JobType(); !ok {
		return &ValidationError{Name: "job_type", err: errors.New(`ent: missing required field "JobRecord.job_type"`)}
	}
	if v, ok := _c.mutation.JobType(); ok {
		if err := jobrecord.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "JobRecord.job_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "JobRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := jobrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalRecords(); !ok {
		return &ValidationError{Name: "total_records", err: errors.New(`ent: missing required field "JobRecord.total_records"`)}
	}
	if v, ok := _c.mutation.TotalRecords(); ok {
		if err := jobrecord.TotalRecordsValidator(v); err != nil {
			return &ValidationError{Name: "total_records", err: fmt.Errorf(`ent: validator failed for field "JobRecord.total_records": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedRecords(); !ok {
		return &ValidationError{Name: "processed_records", err: errors.New(`ent: missing required field "JobRecord.processed_records"`)}
	}
	if v, ok := _c.mutation.ProcessedRecords(); ok {
		if err := jobrecord.ProcessedRecordsValidator(v); err != nil {
			return &ValidationError{Name: "processed_records", err: fmt.Errorf(`ent: validator failed for field "JobRecord.processed_records": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailedRecords(); !ok {
		return &ValidationError{Name: "failed_records", err: errors.New(`ent: missing required field "JobRecord.failed_records"`)}
	}
	if v, ok := _c.mutation.FailedRecords(); ok {
		if err := jobrecord.FailedRecordsValidator(v); err != nil {
			return &ValidationError{Name: "failed_records", err: fmt.Errorf(`ent: validator failed for field "JobRecord.failed_records": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "JobRecord.user_id"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "JobRecord.cancel_requested"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "JobRecord.updated_at"`)}
	}
	return nil
}

func (_c *JobRecordCreate) sqlSave(ctx context.Context) (*JobRecord, error) {
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

func (_c *JobRecordCreate) createSpec() (*JobRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &JobRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobrecord.Table, sqlgraph.NewFieldSpec(jobrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobType(); ok {
		_spec.SetField(jobrecord.FieldJobType, field.TypeString, value)
		_node.JobType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(jobrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalRecords(); ok {
		_spec.SetField(jobrecord.FieldTotalRecords, field.TypeInt, value)
		_node.TotalRecords = value
	}
	if value, ok := _c.mutation.ProcessedRecords(); ok {
		_spec.SetField(jobrecord.FieldProcessedRecords, field.TypeInt, value)
		_node.ProcessedRecords = value
	}
	if value, ok := _c.mutation.FailedRecords(); ok {
		_spec.SetField(jobrecord.FieldFailedRecords, field.TypeInt, value)
		_node.FailedRecords = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(jobrecord.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.InstitutionID(); ok {
		_spec.SetField(jobrecord.FieldInstitutionID, field.TypeUUID, value)
		_node.InstitutionID = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(jobrecord.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Errors(); ok {
		_spec.SetField(jobrecord.FieldErrors, field.TypeJSON, value)
		_node.Errors = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(jobrecord.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(jobrecord.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(jobrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(jobrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// JobRecordCreateBulk is the builder for creating many JobRecord entities in bulk.
type JobRecordCreateBulk struct {
	config
	err      error
	builders []*JobRecordCreate
}

// Save creates the JobRecord entities in the database.
func (_c *JobRecordCreateBulk) Save(ctx context.Context) ([]*JobRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobRecordMutation)
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
func (_c *JobRecordCreateBulk) SaveX(ctx context.Context) []*JobRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
