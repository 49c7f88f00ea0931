package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/notify"
)

// Execution is the handler's view of its running job: it accumulates
// per-record counts and errors, throttles progress writes to the job store,
// and answers cancellation polls. One Execution exists per job attempt;
// handlers process chunks sequentially, so it is not safe for concurrent use.
type Execution struct {
	jobID  uuid.UUID
	userID uuid.UUID
	instID *uuid.UUID
	store  JobStore
	notif  notify.Notifier
	logger *slog.Logger

	every    time.Duration
	lastSync time.Time

	total     int
	processed int
	failed    int
	errs      []string
}

// NewExecution builds the progress context for one job attempt. The runner
// is the normal caller; handlers receive it, they do not build it.
func NewExecution(jobID, userID uuid.UUID, instID *uuid.UUID, store JobStore, notif notify.Notifier, every time.Duration, logger *slog.Logger) *Execution {
	if logger == nil {
		logger = slog.Default()
	}
	return &Execution{
		jobID:  jobID,
		userID: userID,
		instID: instID,
		store:  store,
		notif:  notif,
		logger: logger,
		every:  every,
	}
}

// JobID identifies the job record this execution writes to.
func (e *Execution) JobID() uuid.UUID { return e.jobID }

// UserID is the job's owner.
func (e *Execution) UserID() uuid.UUID { return e.userID }

// InstitutionID is the job's institution scope, when set.
func (e *Execution) InstitutionID() *uuid.UUID { return e.instID }

// SetTotal records the discovered input size. Operations that discover
// their size during execution (cleanup) may call it late or repeatedly.
func (e *Execution) SetTotal(ctx context.Context, total int) {
	e.total = total
	if err := e.store.SetTotal(ctx, e.jobID, total); err != nil {
		e.logger.Warn("jobs.progress.total_write_failed", "job_id", e.jobID, "err", err)
	}
}

// Total returns the last value passed to SetTotal.
func (e *Execution) Total() int { return e.total }

// Processed and Failed return the accumulated counters.
func (e *Execution) Processed() int { return e.processed }
func (e *Execution) Failed() int    { return e.failed }

// Errors returns the accumulated record-level errors (capped).
func (e *Execution) Errors() []string { return e.errs }

// RecordSuccess counts n successfully processed records.
func (e *Execution) RecordSuccess(n int) {
	e.processed += n
}

// RecordFailure counts one failed record with its description. Errors past
// the storage cap are counted but not retained.
func (e *Execution) RecordFailure(desc string) {
	e.failed++
	if len(e.errs) < constants.MaxJobErrors {
		e.errs = append(e.errs, desc)
	}
}

// RecordFailuref is RecordFailure with formatting.
func (e *Execution) RecordFailuref(format string, args ...any) {
	e.RecordFailure(fmt.Sprintf(format, args...))
}

// Report flushes progress to the job store at a throttled rate. Handlers
// call it once per chunk; most calls are absorbed without a store write.
func (e *Execution) Report(ctx context.Context) {
	now := time.Now()
	if e.every > 0 && now.Sub(e.lastSync) < e.every {
		return
	}
	e.flush(ctx)
}

// flush writes progress unconditionally.
func (e *Execution) flush(ctx context.Context) {
	e.lastSync = time.Now()
	if err := e.store.Progress(ctx, e.jobID, e.processed, e.failed, e.errs); err != nil {
		e.logger.Warn("jobs.progress.write_failed", "job_id", e.jobID, "err", err)
		return
	}
	if e.notif != nil && e.total > 0 {
		e.notif.Send(ctx, e.userID, notify.Notification{
			Title:    "Job progress",
			Message:  fmt.Sprintf("%d of %d records processed", e.processed+e.failed, e.total),
			Severity: notify.SeverityInfo,
		})
	}
}

// Cancelled polls the cooperative cancellation flag. Handlers check it
// between chunks; a store error reads as "not cancelled" so a flaky store
// cannot abort work.
func (e *Execution) Cancelled(ctx context.Context) bool {
	requested, err := e.store.CancelRequested(ctx, e.jobID)
	if err != nil {
		e.logger.Warn("jobs.cancel.poll_failed", "job_id", e.jobID, "err", err)
		return false
	}
	return requested
}
