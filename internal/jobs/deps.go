package jobs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
)

// JobStore persists job records. Writes after creation happen only from the
// runner holding the corresponding queue lease, so implementations need no
// per-record locking.
type JobStore interface {
	Create(ctx context.Context, rec *entity.JobRecord) error
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	SetTotal(ctx context.Context, id uuid.UUID, total int) error
	Progress(ctx context.Context, id uuid.UUID, processed, failed int, errs []string) error
	Complete(ctx context.Context, id uuid.UUID, processed, failed int, errs []string, result *entity.JobResult) error
	Fail(ctx context.Context, id uuid.UUID, processed, failed int, errs []string) error
	Get(ctx context.Context, id uuid.UUID) (*entity.JobRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.JobRecord, error)
	RequestCancel(ctx context.Context, id uuid.UUID) error
	CancelRequested(ctx context.Context, id uuid.UUID) (bool, error)
	CountByTypeAndStatus(ctx context.Context, jobType string, status constants.JobStatus) (int, error)
}

// TaskQueue is the durable queue. Claim returns (nil, nil) when no task is
// ready. A claimed task's attempt counter has already been incremented.
type TaskQueue interface {
	Enqueue(ctx context.Context, task *entity.QueueTask) error
	Claim(ctx context.Context, lane, workerID string, lease time.Duration) (*entity.QueueTask, error)
	Ack(ctx context.Context, taskID uuid.UUID) error
	Release(ctx context.Context, taskID uuid.UUID, nextAvailable time.Time) error
	Remove(ctx context.Context, jobID uuid.UUID) (bool, error)
	ExpireOverdue(ctx context.Context, lane string) ([]*entity.QueueTask, error)
	Counts(ctx context.Context, lane string) (pending, active int, err error)
	Ping(ctx context.Context) error
}
