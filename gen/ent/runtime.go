// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/campuspass/campuspass/db/ent/schema"
	"github.com/campuspass/campuspass/gen/ent/application"
	"github.com/campuspass/campuspass/gen/ent/jobrecord"
	"github.com/campuspass/campuspass/gen/ent/pass"
	"github.com/campuspass/campuspass/gen/ent/queuetask"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescFullName is the schema descriptor for full_name field.
	applicationDescFullName := applicationFields[2].Descriptor()
	// application.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	application.FullNameValidator = applicationDescFullName.Validators[0].(func(string) error)
	// applicationDescEmail is the schema descriptor for email field.
	applicationDescEmail := applicationFields[3].Descriptor()
	// application.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	application.EmailValidator = applicationDescEmail.Validators[0].(func(string) error)
	// applicationDescStatus is the schema descriptor for status field.
	applicationDescStatus := applicationFields[5].Descriptor()
	// application.DefaultStatus holds the default value on creation for the status field.
	application.DefaultStatus = applicationDescStatus.Default.(string)
	// application.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	application.StatusValidator = applicationDescStatus.Validators[0].(func(string) error)
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationFields[7].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationFields[8].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicationDescID is the schema descriptor for id field.
	applicationDescID := applicationFields[0].Descriptor()
	// application.DefaultID holds the default value on creation for the id field.
	application.DefaultID = applicationDescID.Default.(func() uuid.UUID)
	jobrecordFields := schema.JobRecord{}.Fields()
	_ = jobrecordFields
	// jobrecordDescJobType is the schema descriptor for job_type field.
	jobrecordDescJobType := jobrecordFields[1].Descriptor()
	// jobrecord.JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	jobrecord.JobTypeValidator = jobrecordDescJobType.Validators[0].(func(string) error)
	// jobrecordDescStatus is the schema descriptor for status field.
	jobrecordDescStatus := jobrecordFields[2].Descriptor()
	// jobrecord.DefaultStatus holds the default value on creation for the status field.
	jobrecord.DefaultStatus = jobrecordDescStatus.Default.(string)
	// jobrecord.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	jobrecord.StatusValidator = jobrecordDescStatus.Validators[0].(func(string) error)
	// jobrecordDescTotalRecords is the schema descriptor for total_records field.
	jobrecordDescTotalRecords := jobrecordFields[3].Descriptor()
	// jobrecord.DefaultTotalRecords holds the default value on creation for the total_records field.
	jobrecord.DefaultTotalRecords = jobrecordDescTotalRecords.Default.(int)
	// jobrecord.TotalRecordsValidator is a validator for the "total_records" field. It is called by the builders before save.
	jobrecord.TotalRecordsValidator = jobrecordDescTotalRecords.Validators[0].(func(int) error)
	// jobrecordDescProcessedRecords is the schema descriptor for processed_records field.
	jobrecordDescProcessedRecords := jobrecordFields[4].Descriptor()
	// jobrecord.DefaultProcessedRecords holds the default value on creation for the processed_records field.
	jobrecord.DefaultProcessedRecords = jobrecordDescProcessedRecords.Default.(int)
	// jobrecord.ProcessedRecordsValidator is a validator for the "processed_records" field. It is called by the builders before save.
	jobrecord.ProcessedRecordsValidator = jobrecordDescProcessedRecords.Validators[0].(func(int) error)
	// jobrecordDescFailedRecords is the schema descriptor for failed_records field.
	jobrecordDescFailedRecords := jobrecordFields[5].Descriptor()
	// jobrecord.DefaultFailedRecords holds the default value on creation for the failed_records field.
	jobrecord.DefaultFailedRecords = jobrecordDescFailedRecords.Default.(int)
	// jobrecord.FailedRecordsValidator is a validator for the "failed_records" field. It is called by the builders before save.
	jobrecord.FailedRecordsValidator = jobrecordDescFailedRecords.Validators[0].(func(int) error)
	// jobrecordDescCancelRequested is the schema descriptor for cancel_requested field.
	jobrecordDescCancelRequested := jobrecordFields[11].Descriptor()
	// jobrecord.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	jobrecord.DefaultCancelRequested = jobrecordDescCancelRequested.Default.(bool)
	// jobrecordDescCreatedAt is the schema descriptor for created_at field.
	jobrecordDescCreatedAt := jobrecordFields[12].Descriptor()
	// jobrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobrecord.DefaultCreatedAt = jobrecordDescCreatedAt.Default.(func() time.Time)
	// jobrecordDescUpdatedAt is the schema descriptor for updated_at field.
	jobrecordDescUpdatedAt := jobrecordFields[13].Descriptor()
	// jobrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	jobrecord.DefaultUpdatedAt = jobrecordDescUpdatedAt.Default.(func() time.Time)
	// jobrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	jobrecord.UpdateDefaultUpdatedAt = jobrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobrecordDescID is the schema descriptor for id field.
	jobrecordDescID := jobrecordFields[0].Descriptor()
	// jobrecord.DefaultID holds the default value on creation for the id field.
	jobrecord.DefaultID = jobrecordDescID.Default.(func() uuid.UUID)
	passFields := schema.Pass{}.Fields()
	_ = passFields
	// passDescSerial is the schema descriptor for serial field.
	passDescSerial := passFields[2].Descriptor()
	// pass.SerialValidator is a validator for the "serial" field. It is called by the builders before save.
	pass.SerialValidator = passDescSerial.Validators[0].(func(string) error)
	// passDescStatus is the schema descriptor for status field.
	passDescStatus := passFields[3].Descriptor()
	// pass.DefaultStatus holds the default value on creation for the status field.
	pass.DefaultStatus = passDescStatus.Default.(string)
	// pass.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	pass.StatusValidator = passDescStatus.Validators[0].(func(string) error)
	// passDescIssuedAt is the schema descriptor for issued_at field.
	passDescIssuedAt := passFields[4].Descriptor()
	// pass.DefaultIssuedAt holds the default value on creation for the issued_at field.
	pass.DefaultIssuedAt = passDescIssuedAt.Default.(func() time.Time)
	// passDescCreatedAt is the schema descriptor for created_at field.
	passDescCreatedAt := passFields[6].Descriptor()
	// pass.DefaultCreatedAt holds the default value on creation for the created_at field.
	pass.DefaultCreatedAt = passDescCreatedAt.Default.(func() time.Time)
	// passDescUpdatedAt is the schema descriptor for updated_at field.
	passDescUpdatedAt := passFields[7].Descriptor()
	// pass.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pass.DefaultUpdatedAt = passDescUpdatedAt.Default.(func() time.Time)
	// pass.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pass.UpdateDefaultUpdatedAt = passDescUpdatedAt.UpdateDefault.(func() time.Time)
	// passDescID is the schema descriptor for id field.
	passDescID := passFields[0].Descriptor()
	// pass.DefaultID holds the default value on creation for the id field.
	pass.DefaultID = passDescID.Default.(func() uuid.UUID)
	queuetaskFields := schema.QueueTask{}.Fields()
	_ = queuetaskFields
	// queuetaskDescLane is the schema descriptor for lane field.
	queuetaskDescLane := queuetaskFields[2].Descriptor()
	// queuetask.LaneValidator is a validator for the "lane" field. It is called by the builders before save.
	queuetask.LaneValidator = queuetaskDescLane.Validators[0].(func(string) error)
	// queuetaskDescPriority is the schema descriptor for priority field.
	queuetaskDescPriority := queuetaskFields[3].Descriptor()
	// queuetask.DefaultPriority holds the default value on creation for the priority field.
	queuetask.DefaultPriority = queuetaskDescPriority.Default.(int)
	// queuetaskDescAttempts is the schema descriptor for attempts field.
	queuetaskDescAttempts := queuetaskFields[5].Descriptor()
	// queuetask.DefaultAttempts holds the default value on creation for the attempts field.
	queuetask.DefaultAttempts = queuetaskDescAttempts.Default.(int)
	// queuetask.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	queuetask.AttemptsValidator = queuetaskDescAttempts.Validators[0].(func(int) error)
	// queuetaskDescMaxAttempts is the schema descriptor for max_attempts field.
	queuetaskDescMaxAttempts := queuetaskFields[6].Descriptor()
	// queuetask.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	queuetask.DefaultMaxAttempts = queuetaskDescMaxAttempts.Default.(int)
	// queuetask.MaxAttemptsValidator is a validator for the "max_attempts" field. It is called by the builders before save.
	queuetask.MaxAttemptsValidator = queuetaskDescMaxAttempts.Validators[0].(func(int) error)
	// queuetaskDescBackoffMs is the schema descriptor for backoff_ms field.
	queuetaskDescBackoffMs := queuetaskFields[7].Descriptor()
	// queuetask.DefaultBackoffMs holds the default value on creation for the backoff_ms field.
	queuetask.DefaultBackoffMs = queuetaskDescBackoffMs.Default.(int64)
	// queuetask.BackoffMsValidator is a validator for the "backoff_ms" field. It is called by the builders before save.
	queuetask.BackoffMsValidator = queuetaskDescBackoffMs.Validators[0].(func(int64) error)
	// queuetaskDescAvailableAt is the schema descriptor for available_at field.
	queuetaskDescAvailableAt := queuetaskFields[8].Descriptor()
	// queuetask.DefaultAvailableAt holds the default value on creation for the available_at field.
	queuetask.DefaultAvailableAt = queuetaskDescAvailableAt.Default.(func() time.Time)
	// queuetaskDescCreatedAt is the schema descriptor for created_at field.
	queuetaskDescCreatedAt := queuetaskFields[11].Descriptor()
	// queuetask.DefaultCreatedAt holds the default value on creation for the created_at field.
	queuetask.DefaultCreatedAt = queuetaskDescCreatedAt.Default.(func() time.Time)
	// queuetaskDescID is the schema descriptor for id field.
	queuetaskDescID := queuetaskFields[0].Descriptor()
	// queuetask.DefaultID holds the default value on creation for the id field.
	queuetask.DefaultID = queuetaskDescID.Default.(func() uuid.UUID)
}
