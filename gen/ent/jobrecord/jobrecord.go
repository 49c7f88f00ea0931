// Code generated by ent, DO NOT EDIT.

package jobrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the jobrecord type in the database.
	Label = "job_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobType holds the string denoting the job_type field in the database.
	FieldJobType = "job_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalRecords holds the string denoting the total_records field in the database.
	FieldTotalRecords = "total_records"
	// FieldProcessedRecords holds the string denoting the processed_records field in the database.
	FieldProcessedRecords = "processed_records"
	// FieldFailedRecords holds the string denoting the failed_records field in the database.
	FieldFailedRecords = "failed_records"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldInstitutionID holds the string denoting the institution_id field in the database.
	FieldInstitutionID = "institution_id"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldErrors holds the string denoting the errors field in the database.
	FieldErrors = "errors"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the jobrecord in the database.
	Table = "job_records"
)

// Columns holds all SQL columns for jobrecord fields.
var Columns = []string{
	FieldID,
	FieldJobType,
	FieldStatus,
	FieldTotalRecords,
	FieldProcessedRecords,
	FieldFailedRecords,
	FieldUserID,
	FieldInstitutionID,
	FieldPayload,
	FieldErrors,
	FieldResult,
	FieldCancelRequested,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// JobTypeValidator is a validator for the "job_type" field. It is called by the builders before save.
	JobTypeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultTotalRecords holds the default value on creation for the "total_records" field.
	DefaultTotalRecords int
	// TotalRecordsValidator is a validator for the "total_records" field. It is called by the builders before save.
	TotalRecordsValidator func(int) error
	// DefaultProcessedRecords holds the default value on creation for the "processed_records" field.
	DefaultProcessedRecords int
	// ProcessedRecordsValidator is a validator for the "processed_records" field. It is called by the builders before save.
	ProcessedRecordsValidator func(int) error
	// DefaultFailedRecords holds the default value on creation for the "failed_records" field.
	DefaultFailedRecords int
	// FailedRecordsValidator is a validator for the "failed_records" field. It is called by the builders before save.
	FailedRecordsValidator func(int) error
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the JobRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobType orders the results by the job_type field.
func ByJobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalRecords orders the results by the total_records field.
func ByTotalRecords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalRecords, opts...).ToFunc()
}

// ByProcessedRecords orders the results by the processed_records field.
func ByProcessedRecords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedRecords, opts...).ToFunc()
}

// ByFailedRecords orders the results by the failed_records field.
func ByFailedRecords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedRecords, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByInstitutionID orders the results by the institution_id field.
func ByInstitutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstitutionID, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
