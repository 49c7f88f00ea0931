package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/gen/ent"
	"github.com/campuspass/campuspass/gen/ent/jobrecord"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

type jobRecordRepo struct {
	ent *ent.Client
	log *slog.Logger
}

// NewJobRecordRepository returns the Ent-backed job record store.
func NewJobRecordRepository(entc *ent.Client, log *slog.Logger) jobs.JobStore {
	return &jobRecordRepo{ent: entc, log: log}
}

func (r *jobRecordRepo) Create(ctx context.Context, rec *entity.JobRecord) error {
	b := r.ent.JobRecord.
		Create().
		SetID(rec.ID).
		SetJobType(rec.JobType).
		SetStatus(string(rec.Status)).
		SetUserID(rec.UserID).
		SetNillableInstitutionID(rec.InstitutionID).
		SetPayload(rec.Payload)
	row, err := b.Save(ctx)
	if err != nil {
		r.log.Error("job_record create failed", "job_id", rec.ID, "err", err)
		return err
	}
	rec.CreatedAt = row.CreatedAt
	rec.UpdatedAt = row.UpdatedAt
	r.log.Info("job_record created", "job_id", rec.ID, "job_type", rec.JobType)
	return nil
}

func (r *jobRecordRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	// No-op once a record is terminal; status moves are monotonic.
	_, err := r.ent.JobRecord.
		Update().
		Where(
			jobrecord.IDEQ(id),
			jobrecord.StatusIn(
				string(constants.JobStatusPending),
				string(constants.JobStatusProcessing),
			),
		).
		SetStatus(string(constants.JobStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("job_record mark processing failed", "job_id", id, "err", err)
	}
	return err
}

func (r *jobRecordRepo) SetTotal(ctx context.Context, id uuid.UUID, total int) error {
	_, err := r.ent.JobRecord.
		UpdateOneID(id).
		SetTotalRecords(total).
		Save(ctx)
	if err != nil {
		r.log.Error("job_record set total failed", "job_id", id, "err", err)
	}
	return err
}

func (r *jobRecordRepo) Progress(ctx context.Context, id uuid.UUID, processed, failed int, errs []string) error {
	_, err := r.ent.JobRecord.
		UpdateOneID(id).
		SetProcessedRecords(processed).
		SetFailedRecords(failed).
		SetErrors(errs).
		Save(ctx)
	if err != nil {
		r.log.Error("job_record progress failed", "job_id", id, "err", err)
	}
	return err
}

func (r *jobRecordRepo) Complete(ctx context.Context, id uuid.UUID, processed, failed int, errs []string, result *entity.JobResult) error {
	b := r.ent.JobRecord.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusCompleted)).
		SetProcessedRecords(processed).
		SetFailedRecords(failed).
		SetErrors(errs)
	if result != nil {
		raw, err := json.Marshal(result)
		if err != nil {
			return err
		}
		b.SetResult(raw)
	}
	if _, err := b.Save(ctx); err != nil {
		r.log.Error("job_record complete failed", "job_id", id, "err", err)
		return err
	}
	r.log.Info("job_record completed", "job_id", id, "processed", processed, "failed", failed)
	return nil
}

func (r *jobRecordRepo) Fail(ctx context.Context, id uuid.UUID, processed, failed int, errs []string) error {
	_, err := r.ent.JobRecord.
		UpdateOneID(id).
		SetStatus(string(constants.JobStatusFailed)).
		SetProcessedRecords(processed).
		SetFailedRecords(failed).
		SetErrors(errs).
		Save(ctx)
	if err != nil {
		r.log.Error("job_record fail failed", "job_id", id, "err", err)
		return err
	}
	r.log.Warn("job_record failed", "job_id", id, "processed", processed, "failed", failed)
	return nil
}

func (r *jobRecordRepo) Get(ctx context.Context, id uuid.UUID) (*entity.JobRecord, error) {
	row, err := r.ent.JobRecord.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toJobRecord(row)
}

func (r *jobRecordRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.JobRecord, error) {
	q := r.ent.JobRecord.
		Query().
		Where(jobrecord.UserIDEQ(userID)).
		Order(ent.Desc(jobrecord.FieldCreatedAt))
	if limit > 0 {
		q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.JobRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := toJobRecord(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *jobRecordRepo) RequestCancel(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.JobRecord.
		Update().
		Where(
			jobrecord.IDEQ(id),
			jobrecord.StatusIn(
				string(constants.JobStatusPending),
				string(constants.JobStatusProcessing),
			),
		).
		SetCancelRequested(true).
		Save(ctx)
	if err != nil {
		r.log.Error("job_record request cancel failed", "job_id", id, "err", err)
		return err
	}
	r.log.Info("job_record cancel requested", "job_id", id)
	return nil
}

func (r *jobRecordRepo) CancelRequested(ctx context.Context, id uuid.UUID) (bool, error) {
	row, err := r.ent.JobRecord.
		Query().
		Where(jobrecord.IDEQ(id)).
		Select(jobrecord.FieldCancelRequested).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return row.CancelRequested, nil
}

func (r *jobRecordRepo) CountByTypeAndStatus(ctx context.Context, jobType string, status constants.JobStatus) (int, error) {
	return r.ent.JobRecord.
		Query().
		Where(
			jobrecord.JobTypeEQ(jobType),
			jobrecord.StatusEQ(string(status)),
		).
		Count(ctx)
}

func toJobRecord(row *ent.JobRecord) (*entity.JobRecord, error) {
	rec := &entity.JobRecord{
		ID:               row.ID,
		JobType:          row.JobType,
		Status:           constants.JobStatus(row.Status),
		TotalRecords:     row.TotalRecords,
		ProcessedRecords: row.ProcessedRecords,
		FailedRecords:    row.FailedRecords,
		UserID:           row.UserID,
		InstitutionID:    row.InstitutionID,
		Payload:          row.Payload,
		Errors:           row.Errors,
		CancelRequested:  row.CancelRequested,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if len(row.Result) > 0 {
		var res entity.JobResult
		if err := json.Unmarshal(row.Result, &res); err != nil {
			return nil, err
		}
		rec.Result = &res
	}
	return rec, nil
}
