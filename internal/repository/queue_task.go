package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/campuspass/campuspass/gen/ent"
	"github.com/campuspass/campuspass/gen/ent/predicate"
	"github.com/campuspass/campuspass/gen/ent/queuetask"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

// claimBatch bounds how many candidate rows a single Claim inspects before
// giving up the poll cycle to a competing worker.
const claimBatch = 8

type queueTaskRepo struct {
	ent *ent.Client
	log *slog.Logger
}

// NewQueueTaskRepository returns the Ent-backed durable task queue.
func NewQueueTaskRepository(entc *ent.Client, log *slog.Logger) jobs.TaskQueue {
	return &queueTaskRepo{ent: entc, log: log}
}

func (r *queueTaskRepo) Enqueue(ctx context.Context, task *entity.QueueTask) error {
	row, err := r.ent.QueueTask.
		Create().
		SetID(task.ID).
		SetJobID(task.JobID).
		SetLane(task.Lane).
		SetPriority(task.Priority).
		SetPayload(task.Payload).
		SetMaxAttempts(task.MaxAttempts).
		SetBackoffMs(task.Backoff.Milliseconds()).
		SetAvailableAt(task.AvailableAt).
		Save(ctx)
	if err != nil {
		r.log.Error("queue_task enqueue failed", "job_id", task.JobID, "lane", task.Lane, "err", err)
		return err
	}
	task.CreatedAt = row.CreatedAt
	r.log.Info("queue_task enqueued", "job_id", task.JobID, "lane", task.Lane, "priority", task.Priority)
	return nil
}

// Claim picks ready, unleased candidates and races a conditional lease
// update; losing the race on a row just moves on to the next candidate.
func (r *queueTaskRepo) Claim(ctx context.Context, lane, workerID string, lease time.Duration) (*entity.QueueTask, error) {
	now := time.Now()
	candidates, err := r.ent.QueueTask.
		Query().
		Where(
			queuetask.LaneEQ(lane),
			queuetask.AvailableAtLTE(now),
			unleased(now),
			attemptsLeft(),
		).
		Order(
			ent.Desc(queuetask.FieldPriority),
			ent.Asc(queuetask.FieldAvailableAt),
			ent.Asc(queuetask.FieldCreatedAt),
		).
		Limit(claimBatch).
		All(ctx)
	if err != nil {
		return nil, err
	}

	until := now.Add(lease)
	for _, c := range candidates {
		n, err := r.ent.QueueTask.
			Update().
			Where(
				queuetask.IDEQ(c.ID),
				unleased(now),
			).
			SetLockedBy(workerID).
			SetLockedUntil(until).
			AddAttempts(1).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			// lost the race for this row
			continue
		}
		task := toQueueTask(c)
		task.Attempts = c.Attempts + 1
		task.LockedBy = &workerID
		task.LockedUntil = &until
		r.log.Debug("queue_task claimed", "job_id", task.JobID, "lane", lane, "worker", workerID, "attempt", task.Attempts)
		return task, nil
	}
	return nil, nil
}

func (r *queueTaskRepo) Ack(ctx context.Context, taskID uuid.UUID) error {
	err := r.ent.QueueTask.DeleteOneID(taskID).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.log.Error("queue_task ack failed", "task_id", taskID, "err", err)
		return err
	}
	return nil
}

func (r *queueTaskRepo) Release(ctx context.Context, taskID uuid.UUID, nextAvailable time.Time) error {
	_, err := r.ent.QueueTask.
		UpdateOneID(taskID).
		ClearLockedBy().
		ClearLockedUntil().
		SetAvailableAt(nextAvailable).
		Save(ctx)
	if err != nil {
		r.log.Error("queue_task release failed", "task_id", taskID, "err", err)
		return err
	}
	r.log.Debug("queue_task released", "task_id", taskID, "available_at", nextAvailable)
	return nil
}

// Remove deletes the queue entry for a job if no worker holds its lease.
func (r *queueTaskRepo) Remove(ctx context.Context, jobID uuid.UUID) (bool, error) {
	n, err := r.ent.QueueTask.
		Delete().
		Where(
			queuetask.JobIDEQ(jobID),
			unleased(time.Now()),
		).
		Exec(ctx)
	if err != nil {
		r.log.Error("queue_task remove failed", "job_id", jobID, "err", err)
		return false, err
	}
	return n > 0, nil
}

// ExpireOverdue removes tasks that have spent their retry budget without a
// live lease, returning them so callers can fail the owning job records.
func (r *queueTaskRepo) ExpireOverdue(ctx context.Context, lane string) ([]*entity.QueueTask, error) {
	now := time.Now()
	rows, err := r.ent.QueueTask.
		Query().
		Where(
			queuetask.LaneEQ(lane),
			unleased(now),
			attemptsSpent(),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	out := make([]*entity.QueueTask, 0, len(rows))
	for _, row := range rows {
		n, err := r.ent.QueueTask.
			Delete().
			Where(queuetask.IDEQ(row.ID), unleased(now)).
			Exec(ctx)
		if err != nil {
			return out, err
		}
		if n == 0 {
			continue
		}
		out = append(out, toQueueTask(row))
		r.log.Warn("queue_task expired", "job_id", row.JobID, "lane", lane, "attempts", row.Attempts)
	}
	return out, nil
}

func (r *queueTaskRepo) Counts(ctx context.Context, lane string) (pending, active int, err error) {
	now := time.Now()
	pending, err = r.ent.QueueTask.
		Query().
		Where(queuetask.LaneEQ(lane), unleased(now)).
		Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	active, err = r.ent.QueueTask.
		Query().
		Where(queuetask.LaneEQ(lane), queuetask.LockedUntilGT(now)).
		Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	return pending, active, nil
}

func (r *queueTaskRepo) Ping(ctx context.Context) error {
	_, err := r.ent.QueueTask.Query().Limit(1).Count(ctx)
	return err
}

// unleased matches rows whose lease is absent or elapsed.
func unleased(now time.Time) predicate.QueueTask {
	return queuetask.Or(
		queuetask.LockedUntilIsNil(),
		queuetask.LockedUntilLT(now),
	)
}

func attemptsLeft() predicate.QueueTask {
	return predicate.QueueTask(func(s *entsql.Selector) {
		s.Where(entsql.ColumnsLT(s.C(queuetask.FieldAttempts), s.C(queuetask.FieldMaxAttempts)))
	})
}

func attemptsSpent() predicate.QueueTask {
	return predicate.QueueTask(func(s *entsql.Selector) {
		s.Where(entsql.ColumnsGTE(s.C(queuetask.FieldAttempts), s.C(queuetask.FieldMaxAttempts)))
	})
}

func toQueueTask(row *ent.QueueTask) *entity.QueueTask {
	return &entity.QueueTask{
		ID:          row.ID,
		JobID:       row.JobID,
		Lane:        row.Lane,
		Priority:    row.Priority,
		Payload:     row.Payload,
		Attempts:    row.Attempts,
		MaxAttempts: row.MaxAttempts,
		Backoff:     time.Duration(row.BackoffMs) * time.Millisecond,
		AvailableAt: row.AvailableAt,
		LockedBy:    row.LockedBy,
		LockedUntil: row.LockedUntil,
		CreatedAt:   row.CreatedAt,
	}
}
