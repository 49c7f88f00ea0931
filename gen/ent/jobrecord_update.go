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
	"github.com/campuspass/campuspass/gen/ent/jobrecord"
	"github.com/campuspass/campuspass/gen/ent/predicate"
	"github.com/google/uuid"
)

// JobRecordUpdate is the builder for updating JobRecord entities.
type JobRecordUpdate struct {
	config
	hooks    []Hook
	mutation *JobRecordMutation
}

// Where appends a list predicates to the JobRecordUpdate builder.
func (_u *JobRecordUpdate) Where(ps ...predicate.JobRecord) *JobRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobType sets the "job_type" field.
func (_u *JobRecordUpdate) SetJobType(v string) *JobRecordUpdate {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableJobType(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobRecordUpdate) SetStatus(v string) *JobRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableStatus(v *string) *JobRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalRecords sets the "total_records" field.
func (_u *JobRecordUpdate) SetTotalRecords(v int) *JobRecordUpdate {
	_u.mutation.ResetTotalRecords()
	_u.mutation.SetTotalRecords(v)
	return _u
}

// SetNillableTotalRecords sets the "total_records" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableTotalRecords(v *int) *JobRecordUpdate {
	if v != nil {
		_u.SetTotalRecords(*v)
	}
	return _u
}

// AddTotalRecords adds value to the "total_records" field.
func (_u *JobRecordUpdate) AddTotalRecords(v int) *JobRecordUpdate {
	_u.mutation.AddTotalRecords(v)
	return _u
}

// SetProcessedRecords sets the "processed_records" field.
func (_u *JobRecordUpdate) SetProcessedRecords(v int) *JobRecordUpdate {
	_u.mutation.ResetProcessedRecords()
	_u.mutation.SetProcessedRecords(v)
	return _u
}

// SetNillableProcessedRecords sets the "processed_records" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableProcessedRecords(v *int) *JobRecordUpdate {
	if v != nil {
		_u.SetProcessedRecords(*v)
	}
	return _u
}

// AddProcessedRecords adds value to the "processed_records" field.
func (_u *JobRecordUpdate) AddProcessedRecords(v int) *JobRecordUpdate {
	_u.mutation.AddProcessedRecords(v)
	return _u
}

// SetFailedRecords sets the "failed_records" field.
func (_u *JobRecordUpdate) SetFailedRecords(v int) *JobRecordUpdate {
	_u.mutation.ResetFailedRecords()
	_u.mutation.SetFailedRecords(v)
	return _u
}

// SetNillableFailedRecords sets the "failed_records" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableFailedRecords(v *int) *JobRecordUpdate {
	if v != nil {
		_u.SetFailedRecords(*v)
	}
	return _u
}

// AddFailedRecords adds value to the "failed_records" field.
func (_u *JobRecordUpdate) AddFailedRecords(v int) *JobRecordUpdate {
	_u.mutation.AddFailedRecords(v)
	return _u
}

// SetInstitutionID sets the "institution_id" field.
func (_u *JobRecordUpdate) SetInstitutionID(v uuid.UUID) *JobRecordUpdate {
	_u.mutation.SetInstitutionID(v)
	return _u
}

// SetNillableInstitutionID sets the "institution_id" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableInstitutionID(v *uuid.UUID) *JobRecordUpdate {
	if v != nil {
		_u.SetInstitutionID(*v)
	}
	return _u
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (_u *JobRecordUpdate) ClearInstitutionID() *JobRecordUpdate {
	_u.mutation.ClearInstitutionID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobRecordUpdate) SetPayload(v json.RawMessage) *JobRecordUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *JobRecordUpdate) AppendPayload(v json.RawMessage) *JobRecordUpdate {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *JobRecordUpdate) ClearPayload() *JobRecordUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetErrors sets the "errors" field.
func (_u *JobRecordUpdate) SetErrors(v []string) *JobRecordUpdate {
	_u.mutation.SetErrors(v)
	return _u
}

// AppendErrors appends value to the "errors" field.
func (_u *JobRecordUpdate) AppendErrors(v []string) *JobRecordUpdate {
	_u.mutation.AppendErrors(v)
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *JobRecordUpdate) ClearErrors() *JobRecordUpdate {
	_u.mutation.ClearErrors()
	return _u
}

// SetResult sets the "result" field.
func (_u *JobRecordUpdate) SetResult(v json.RawMessage) *JobRecordUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *JobRecordUpdate) AppendResult(v json.RawMessage) *JobRecordUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobRecordUpdate) ClearResult() *JobRecordUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *JobRecordUpdate) SetCancelRequested(v bool) *JobRecordUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *JobRecordUpdate) SetNillableCancelRequested(v *bool) *JobRecordUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobRecordUpdate) SetUpdatedAt(v time.Time) *JobRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobRecordMutation object of the builder.
func (_u *JobRecordUpdate) Mutation() *JobRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRecordUpdate) check() error {
	if v, ok := _u.mutation.JobType(); ok {
		if err := jobrecord.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "JobRecord.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := jobrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalRecords(); ok {
		if err := jobrecord.TotalRecordsValidator(v); err != nil {
			return &ValidationError{Name: "total_records", err: fmt.Errorf(`ent: validator failed for field "JobRecord.total_records": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedRecords(); ok {
		if err := jobrecord.ProcessedRecordsValidator(v); err != nil {
			return &ValidationError{Name: "processed_records", err: fmt.Errorf(`ent: validator failed for field "JobRecord.processed_records": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedRecords(); ok {
		if err := jobrecord.FailedRecordsValidator(v); err != nil {
			return &ValidationError{Name: "failed_records", err: fmt.Errorf(`ent: validator failed for field "JobRecord.failed_records": %w`, err)}
		}
	}
	return nil
}

func (_u *JobRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrecord.Table, jobrecord.Columns, sqlgraph.NewFieldSpec(jobrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(jobrecord.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalRecords(); ok {
		_spec.SetField(jobrecord.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRecords(); ok {
		_spec.AddField(jobrecord.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedRecords(); ok {
		_spec.SetField(jobrecord.FieldProcessedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedRecords(); ok {
		_spec.AddField(jobrecord.FieldProcessedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedRecords(); ok {
		_spec.SetField(jobrecord.FieldFailedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedRecords(); ok {
		_spec.AddField(jobrecord.FieldFailedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InstitutionID(); ok {
		_spec.SetField(jobrecord.FieldInstitutionID, field.TypeUUID, value)
	}
	if _u.mutation.InstitutionIDCleared() {
		_spec.ClearField(jobrecord.FieldInstitutionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(jobrecord.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobrecord.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(jobrecord.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(jobrecord.FieldErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobrecord.FieldErrors, value)
		})
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(jobrecord.FieldErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(jobrecord.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobrecord.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(jobrecord.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(jobrecord.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobRecordUpdateOne is the builder for updating a single JobRecord entity.
type JobRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobRecordMutation
}

// SetJobType sets the "job_type" field.
func (_u *JobRecordUpdateOne) SetJobType(v string) *JobRecordUpdateOne {
	_u.mutation.SetJobType(v)
	return _u
}

// SetNillableJobType sets the "job_type" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableJobType(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetJobType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobRecordUpdateOne) SetStatus(v string) *JobRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableStatus(v *string) *JobRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalRecords sets the "total_records" field.
func (_u *JobRecordUpdateOne) SetTotalRecords(v int) *JobRecordUpdateOne {
	_u.mutation.ResetTotalRecords()
	_u.mutation.SetTotalRecords(v)
	return _u
}

// SetNillableTotalRecords sets the "total_records" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableTotalRecords(v *int) *JobRecordUpdateOne {
	if v != nil {
		_u.SetTotalRecords(*v)
	}
	return _u
}

// AddTotalRecords adds value to the "total_records" field.
func (_u *JobRecordUpdateOne) AddTotalRecords(v int) *JobRecordUpdateOne {
	_u.mutation.AddTotalRecords(v)
	return _u
}

// SetProcessedRecords sets the "processed_records" field.
func (_u *JobRecordUpdateOne) SetProcessedRecords(v int) *JobRecordUpdateOne {
	_u.mutation.ResetProcessedRecords()
	_u.mutation.SetProcessedRecords(v)
	return _u
}

// SetNillableProcessedRecords sets the "processed_records" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableProcessedRecords(v *int) *JobRecordUpdateOne {
	if v != nil {
		_u.SetProcessedRecords(*v)
	}
	return _u
}

// AddProcessedRecords adds value to the "processed_records" field.
func (_u *JobRecordUpdateOne) AddProcessedRecords(v int) *JobRecordUpdateOne {
	_u.mutation.AddProcessedRecords(v)
	return _u
}

// SetFailedRecords sets the "failed_records" field.
func (_u *JobRecordUpdateOne) SetFailedRecords(v int) *JobRecordUpdateOne {
	_u.mutation.ResetFailedRecords()
	_u.mutation.SetFailedRecords(v)
	return _u
}

// SetNillableFailedRecords sets the "failed_records" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableFailedRecords(v *int) *JobRecordUpdateOne {
	if v != nil {
		_u.SetFailedRecords(*v)
	}
	return _u
}

// AddFailedRecords adds value to the "failed_records" field.
func (_u *JobRecordUpdateOne) AddFailedRecords(v int) *JobRecordUpdateOne {
	_u.mutation.AddFailedRecords(v)
	return _u
}

// SetInstitutionID sets the "institution_id" field.
func (_u *JobRecordUpdateOne) SetInstitutionID(v uuid.UUID) *JobRecordUpdateOne {
	_u.mutation.SetInstitutionID(v)
	return _u
}

// SetNillableInstitutionID sets the "institution_id" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableInstitutionID(v *uuid.UUID) *JobRecordUpdateOne {
	if v != nil {
		_u.SetInstitutionID(*v)
	}
	return _u
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (_u *JobRecordUpdateOne) ClearInstitutionID() *JobRecordUpdateOne {
	_u.mutation.ClearInstitutionID()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobRecordUpdateOne) SetPayload(v json.RawMessage) *JobRecordUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// AppendPayload appends value to the "payload" field.
func (_u *JobRecordUpdateOne) AppendPayload(v json.RawMessage) *JobRecordUpdateOne {
	_u.mutation.AppendPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *JobRecordUpdateOne) ClearPayload() *JobRecordUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetErrors sets the "errors" field.
func (_u *JobRecordUpdateOne) SetErrors(v []string) *JobRecordUpdateOne {
	_u.mutation.SetErrors(v)
	return _u
}

// AppendErrors appends value to the "errors" field.
func (_u *JobRecordUpdateOne) AppendErrors(v []string) *JobRecordUpdateOne {
	_u.mutation.AppendErrors(v)
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *JobRecordUpdateOne) ClearErrors() *JobRecordUpdateOne {
	_u.mutation.ClearErrors()
	return _u
}

// SetResult sets the "result" field.
func (_u *JobRecordUpdateOne) SetResult(v json.RawMessage) *JobRecordUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *JobRecordUpdateOne) AppendResult(v json.RawMessage) *JobRecordUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobRecordUpdateOne) ClearResult() *JobRecordUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *JobRecordUpdateOne) SetCancelRequested(v bool) *JobRecordUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *JobRecordUpdateOne) SetNillableCancelRequested(v *bool) *JobRecordUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobRecordUpdateOne) SetUpdatedAt(v time.Time) *JobRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobRecordMutation object of the builder.
func (_u *JobRecordUpdateOne) Mutation() *JobRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobRecordUpdate builder.
func (_u *JobRecordUpdateOne) Where(ps ...predicate.JobRecord) *JobRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobRecordUpdateOne) Select(field string, fields ...string) *JobRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobRecord entity.
func (_u *JobRecordUpdateOne) Save(ctx context.Context) (*JobRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRecordUpdateOne) SaveX(ctx context.Context) *JobRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRecordUpdateOne) check() error {
	if v, ok := _u.mutation.JobType(); ok {
		if err := jobrecord.JobTypeValidator(v); err != nil {
			return &ValidationError{Name: "job_type", err: fmt.Errorf(`ent: validator failed for field "JobRecord.job_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := jobrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobRecord.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalRecords(); ok {
		if err := jobrecord.TotalRecordsValidator(v); err != nil {
			return &ValidationError{Name: "total_records", err: fmt.Errorf(`ent: validator failed for field "JobRecord.total_records": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedRecords(); ok {
		if err := jobrecord.ProcessedRecordsValidator(v); err != nil {
			return &ValidationError{Name: "processed_records", err: fmt.Errorf(`ent: validator failed for field "JobRecord.processed_records": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedRecords(); ok {
		if err := jobrecord.FailedRecordsValidator(v); err != nil {
			return &ValidationError{Name: "failed_records", err: fmt.Errorf(`ent: validator failed for field "JobRecord.failed_records": %w`, err)}
		}
	}
	return nil
}

func (_u *JobRecordUpdateOne) sqlSave(ctx context.Context) (_node *JobRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrecord.Table, jobrecord.Columns, sqlgraph.NewFieldSpec(jobrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobrecord.FieldID)
		for _, f := range fields {
			if !jobrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobrecord.FieldID {
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
	if value, ok := _u.mutation.JobType(); ok {
		_spec.SetField(jobrecord.FieldJobType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalRecords(); ok {
		_spec.SetField(jobrecord.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRecords(); ok {
		_spec.AddField(jobrecord.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedRecords(); ok {
		_spec.SetField(jobrecord.FieldProcessedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedRecords(); ok {
		_spec.AddField(jobrecord.FieldProcessedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedRecords(); ok {
		_spec.SetField(jobrecord.FieldFailedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedRecords(); ok {
		_spec.AddField(jobrecord.FieldFailedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InstitutionID(); ok {
		_spec.SetField(jobrecord.FieldInstitutionID, field.TypeUUID, value)
	}
	if _u.mutation.InstitutionIDCleared() {
		_spec.ClearField(jobrecord.FieldInstitutionID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(jobrecord.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPayload(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobrecord.FieldPayload, value)
		})
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(jobrecord.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(jobrecord.FieldErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobrecord.FieldErrors, value)
		})
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(jobrecord.FieldErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(jobrecord.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobrecord.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(jobrecord.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(jobrecord.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &JobRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
