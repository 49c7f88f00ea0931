// Code generated by ent, DO NOT EDIT.

package jobrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/campuspass/campuspass/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldID, id))
}

// JobType applies equality check predicate on the "job_type" field. It's identical to JobTypeEQ.
func JobType(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldJobType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldStatus, v))
}

// TotalRecords applies equality check predicate on the "total_records" field. It's identical to TotalRecordsEQ.
func TotalRecords(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldTotalRecords, v))
}

// ProcessedRecords applies equality check predicate on the "processed_records" field. It's identical to ProcessedRecordsEQ.
func ProcessedRecords(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldProcessedRecords, v))
}

// FailedRecords applies equality check predicate on the "failed_records" field. It's identical to FailedRecordsEQ.
func FailedRecords(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldFailedRecords, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldUserID, v))
}

// InstitutionID applies equality check predicate on the "institution_id" field. It's identical to InstitutionIDEQ.
func InstitutionID(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldInstitutionID, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldCancelRequested, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldJobType, vs...))
}

// JobTypeGT applies the GT predicate on the "job_type" field.
func JobTypeGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldJobType, v))
}

// JobTypeGTE applies the GTE predicate on the "job_type" field.
func JobTypeGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldJobType, v))
}

// JobTypeLT applies the LT predicate on the "job_type" field.
func JobTypeLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldJobType, v))
}

// JobTypeLTE applies the LTE predicate on the "job_type" field.
func JobTypeLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldJobType, v))
}

// JobTypeContains applies the Contains predicate on the "job_type" field.
func JobTypeContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldJobType, v))
}

// JobTypeHasPrefix applies the HasPrefix predicate on the "job_type" field.
func JobTypeHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldJobType, v))
}

// JobTypeHasSuffix applies the HasSuffix predicate on the "job_type" field.
func JobTypeHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldJobType, v))
}

// JobTypeEqualFold applies the EqualFold predicate on the "job_type" field.
func JobTypeEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldJobType, v))
}

// JobTypeContainsFold applies the ContainsFold predicate on the "job_type" field.
func JobTypeContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldJobType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldContainsFold(FieldStatus, v))
}

// TotalRecordsEQ applies the EQ predicate on the "total_records" field.
func TotalRecordsEQ(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldTotalRecords, v))
}

// TotalRecordsNEQ applies the NEQ predicate on the "total_records" field.
func TotalRecordsNEQ(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldTotalRecords, v))
}

// TotalRecordsIn applies the In predicate on the "total_records" field.
func TotalRecordsIn(vs ...int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldTotalRecords, vs...))
}

// TotalRecordsNotIn applies the NotIn predicate on the "total_records" field.
func TotalRecordsNotIn(vs ...int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldTotalRecords, vs...))
}

// TotalRecordsGT applies the GT predicate on the "total_records" field.
func TotalRecordsGT(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldTotalRecords, v))
}

// TotalRecordsGTE applies the GTE predicate on the "total_records" field.
func TotalRecordsGTE(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldTotalRecords, v))
}

// TotalRecordsLT applies the LT predicate on the "total_records" field.
func TotalRecordsLT(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldTotalRecords, v))
}

// TotalRecordsLTE applies the LTE predicate on the "total_records" field.
func TotalRecordsLTE(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldTotalRecords, v))
}

// ProcessedRecordsEQ applies the EQ predicate on the "processed_records" field.
func ProcessedRecordsEQ(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldProcessedRecords, v))
}

// ProcessedRecordsNEQ applies the NEQ predicate on the "processed_records" field.
func ProcessedRecordsNEQ(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldProcessedRecords, v))
}

// ProcessedRecordsIn applies the In predicate on the "processed_records" field.
func ProcessedRecordsIn(vs ...int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldProcessedRecords, vs...))
}

// ProcessedRecordsNotIn applies the NotIn predicate on the "processed_records" field.
func ProcessedRecordsNotIn(vs ...int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldProcessedRecords, vs...))
}

// ProcessedRecordsGT applies the GT predicate on the "processed_records" field.
func ProcessedRecordsGT(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldProcessedRecords, v))
}

// ProcessedRecordsGTE applies the GTE predicate on the "processed_records" field.
func ProcessedRecordsGTE(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldProcessedRecords, v))
}

// ProcessedRecordsLT applies the LT predicate on the "processed_records" field.
func ProcessedRecordsLT(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldProcessedRecords, v))
}

// ProcessedRecordsLTE applies the LTE predicate on the "processed_records" field.
func ProcessedRecordsLTE(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldProcessedRecords, v))
}

// FailedRecordsEQ applies the EQ predicate on the "failed_records" field.
func FailedRecordsEQ(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldFailedRecords, v))
}

// FailedRecordsNEQ applies the NEQ predicate on the "failed_records" field.
func FailedRecordsNEQ(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldFailedRecords, v))
}

// FailedRecordsIn applies the In predicate on the "failed_records" field.
func FailedRecordsIn(vs ...int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldFailedRecords, vs...))
}

// FailedRecordsNotIn applies the NotIn predicate on the "failed_records" field.
func FailedRecordsNotIn(vs ...int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldFailedRecords, vs...))
}

// FailedRecordsGT applies the GT predicate on the "failed_records" field.
func FailedRecordsGT(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldFailedRecords, v))
}

// FailedRecordsGTE applies the GTE predicate on the "failed_records" field.
func FailedRecordsGTE(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldFailedRecords, v))
}

// FailedRecordsLT applies the LT predicate on the "failed_records" field.
func FailedRecordsLT(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldFailedRecords, v))
}

// FailedRecordsLTE applies the LTE predicate on the "failed_records" field.
func FailedRecordsLTE(v int) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldFailedRecords, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldUserID, v))
}

// InstitutionIDEQ applies the EQ predicate on the "institution_id" field.
func InstitutionIDEQ(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldInstitutionID, v))
}

// InstitutionIDNEQ applies the NEQ predicate on the "institution_id" field.
func InstitutionIDNEQ(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldInstitutionID, v))
}

// InstitutionIDIn applies the In predicate on the "institution_id" field.
func InstitutionIDIn(vs ...uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldInstitutionID, vs...))
}

// InstitutionIDNotIn applies the NotIn predicate on the "institution_id" field.
func InstitutionIDNotIn(vs ...uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldInstitutionID, vs...))
}

// InstitutionIDGT applies the GT predicate on the "institution_id" field.
func InstitutionIDGT(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldInstitutionID, v))
}

// InstitutionIDGTE applies the GTE predicate on the "institution_id" field.
func InstitutionIDGTE(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldInstitutionID, v))
}

// InstitutionIDLT applies the LT predicate on the "institution_id" field.
func InstitutionIDLT(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldInstitutionID, v))
}

// InstitutionIDLTE applies the LTE predicate on the "institution_id" field.
func InstitutionIDLTE(v uuid.UUID) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldInstitutionID, v))
}

// InstitutionIDIsNil applies the IsNil predicate on the "institution_id" field.
func InstitutionIDIsNil() predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIsNull(FieldInstitutionID))
}

// InstitutionIDNotNil applies the NotNil predicate on the "institution_id" field.
func InstitutionIDNotNil() predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotNull(FieldInstitutionID))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotNull(FieldPayload))
}

// ErrorsIsNil applies the IsNil predicate on the "errors" field.
func ErrorsIsNil() predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIsNull(FieldErrors))
}

// ErrorsNotNil applies the NotNil predicate on the "errors" field.
func ErrorsNotNil() predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotNull(FieldErrors))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotNull(FieldResult))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldCancelRequested, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.JobRecord {
	return predicate.JobRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobRecord) predicate.JobRecord {
	return predicate.JobRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobRecord) predicate.JobRecord {
	return predicate.JobRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobRecord) predicate.JobRecord {
	return predicate.JobRecord(sql.NotPredicates(p))
}
