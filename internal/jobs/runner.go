package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/notify"
)

// Per-kind executor contracts. Each receives its typed payload and the
// Execution for progress and cancellation; the returned result (if any)
// becomes the job's result descriptor. Executors must tolerate redelivery:
// a prior attempt may have partially applied effects, so creates are guarded
// by existence checks rather than checkpoints.
type (
	ImportExecutor interface {
		Run(ctx context.Context, exec *Execution, p ImportPayload) (*entity.JobResult, error)
	}
	ExportExecutor interface {
		Run(ctx context.Context, exec *Execution, p ExportPayload) (*entity.JobResult, error)
	}
	GeneratePassesExecutor interface {
		Run(ctx context.Context, exec *Execution, p GeneratePassesPayload) (*entity.JobResult, error)
	}
	UpdateStatusExecutor interface {
		Run(ctx context.Context, exec *Execution, p UpdateStatusPayload) (*entity.JobResult, error)
	}
	CleanupExecutor interface {
		Run(ctx context.Context, exec *Execution, p CleanupPayload) (*entity.JobResult, error)
	}
)

// Executors binds one executor per operation kind.
type Executors struct {
	Import         ImportExecutor
	Export         ExportExecutor
	GeneratePasses GeneratePassesExecutor
	UpdateStatus   UpdateStatusExecutor
	Cleanup        CleanupExecutor
}

// Runner executes one claimed queue task to a terminal or retriable
// outcome. It owns the pending->processing transition, the terminal
// transitions, and the completion notification.
type Runner struct {
	store         JobStore
	queue         TaskQueue
	execs         Executors
	notif         notify.Notifier
	progressEvery time.Duration
	maxBackoff    time.Duration
	logger        *slog.Logger
}

func NewRunner(store JobStore, queue TaskQueue, execs Executors, notif notify.Notifier, progressEvery time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if notif == nil {
		notif = notify.NewLogNotifier(logger)
	}
	return &Runner{
		store:         store,
		queue:         queue,
		execs:         execs,
		notif:         notif,
		progressEvery: progressEvery,
		maxBackoff:    30 * time.Minute,
		logger:        logger,
	}
}

// Run drives one leased task through its handler. Transient handler errors
// release the task for queue-level redelivery; everything else acks the
// task and finalizes the job record.
func (r *Runner) Run(ctx context.Context, qt *entity.QueueTask) {
	task, err := DecodeTask(qt.JobID, qt.Payload)
	if err != nil {
		// A payload that does not decode will never decode; fail terminally.
		r.logger.Error("jobs.run.decode_failed", "job_id", qt.JobID, "err", err)
		r.finishFailed(ctx, qt, nil, err.Error())
		return
	}

	if err := r.store.MarkProcessing(ctx, qt.JobID); err != nil {
		r.logger.Error("jobs.run.mark_processing_failed", "job_id", qt.JobID, "err", err)
		_ = r.queue.Release(ctx, qt.ID, time.Now().Add(qt.Backoff))
		return
	}

	exec := NewExecution(task.JobID, task.UserID, task.InstitutionID, r.store, r.notif, r.progressEvery, r.logger)
	start := time.Now()
	result, runErr := r.dispatch(ctx, exec, task)

	switch {
	case runErr == nil:
		exec.flush(ctx)
		if err := r.store.Complete(ctx, task.JobID, exec.Processed(), exec.Failed(), exec.Errors(), result); err != nil {
			r.logger.Error("jobs.run.complete_write_failed", "job_id", task.JobID, "err", err)
		}
		if err := r.queue.Ack(ctx, qt.ID); err != nil {
			r.logger.Error("jobs.run.ack_failed", "job_id", task.JobID, "err", err)
		}
		r.notifyCompleted(ctx, task, exec, result)
		r.logger.Info("jobs.run.ok",
			"job_id", task.JobID,
			"kind", string(task.Payload.Kind()),
			"processed", exec.Processed(),
			"failed", exec.Failed(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)

	case errors.Is(runErr, ErrCancelled):
		r.finishFailed(ctx, qt, exec, ErrCancelled.Error())
		r.notif.Send(ctx, task.UserID, notify.Notification{
			Title:    "Job cancelled",
			Message:  fmt.Sprintf("Stopped after %d records.", exec.Processed()+exec.Failed()),
			Severity: notify.SeverityWarning,
		})
		r.logger.Info("jobs.run.cancelled", "job_id", task.JobID, "processed", exec.Processed())

	case IsFatal(runErr) || qt.Attempts >= qt.MaxAttempts:
		r.finishFailed(ctx, qt, exec, runErr.Error())
		r.notif.Send(ctx, task.UserID, notify.Notification{
			Title:    "Job failed",
			Message:  runErr.Error(),
			Severity: notify.SeverityError,
		})
		r.logger.Error("jobs.run.failed",
			"job_id", task.JobID,
			"kind", string(task.Payload.Kind()),
			"attempts", qt.Attempts,
			"err", runErr,
		)

	default:
		// Transient: flush what we know and let the queue redeliver. The
		// record stays PROCESSING; the handler restarts from record 0 on the
		// next attempt and relies on existence checks for idempotency.
		exec.flush(ctx)
		next := time.Now().Add(r.backoff(qt.Backoff, qt.Attempts))
		if err := r.queue.Release(ctx, qt.ID, next); err != nil {
			r.logger.Error("jobs.run.release_failed", "job_id", task.JobID, "err", err)
		}
		r.logger.Warn("jobs.run.retry_scheduled",
			"job_id", task.JobID,
			"attempt", qt.Attempts,
			"max_attempts", qt.MaxAttempts,
			"next_attempt_at", next,
			"err", runErr,
		)
	}
}

// dispatch routes the task to its executor. The switch is exhaustive over
// the sealed Payload set.
func (r *Runner) dispatch(ctx context.Context, exec *Execution, task Task) (*entity.JobResult, error) {
	switch p := task.Payload.(type) {
	case ImportPayload:
		return r.execs.Import.Run(ctx, exec, p)
	case ExportPayload:
		return r.execs.Export.Run(ctx, exec, p)
	case GeneratePassesPayload:
		return r.execs.GeneratePasses.Run(ctx, exec, p)
	case UpdateStatusPayload:
		return r.execs.UpdateStatus.Run(ctx, exec, p)
	case CleanupPayload:
		return r.execs.Cleanup.Run(ctx, exec, p)
	}
	return nil, Fatal(fmt.Errorf("no executor for payload %T", task.Payload))
}

// finishFailed acks the task and moves the record to FAILED with message
// appended to the error list.
func (r *Runner) finishFailed(ctx context.Context, qt *entity.QueueTask, exec *Execution, message string) {
	processed, failed := 0, 0
	var errs []string
	if exec != nil {
		processed, failed, errs = exec.Processed(), exec.Failed(), exec.Errors()
	}
	errs = append(errs, message)
	if err := r.store.Fail(ctx, qt.JobID, processed, failed, errs); err != nil {
		r.logger.Error("jobs.run.fail_write_failed", "job_id", qt.JobID, "err", err)
	}
	if err := r.queue.Ack(ctx, qt.ID); err != nil {
		r.logger.Error("jobs.run.ack_failed", "job_id", qt.JobID, "err", err)
	}
}

// notifyCompleted sends the single terminal summary. A completed job with
// record-level failures is a qualified success, not a failure.
func (r *Runner) notifyCompleted(ctx context.Context, task Task, exec *Execution, result *entity.JobResult) {
	sev := notify.SeveritySuccess
	msg := fmt.Sprintf("%d records processed.", exec.Processed())
	if exec.Failed() > 0 {
		sev = notify.SeverityWarning
		msg = fmt.Sprintf("%d succeeded, %d failed.", exec.Processed(), exec.Failed())
	}
	n := notify.Notification{
		Title:    fmt.Sprintf("%s completed", taskTitle(task.Payload.Kind())),
		Message:  msg,
		Severity: sev,
	}
	if result != nil {
		n.ActionRef = result.Location
	}
	r.notif.Send(ctx, task.UserID, n)
}

// backoff doubles per delivery attempt, capped.
func (r *Runner) backoff(base time.Duration, attempts int) time.Duration {
	if base <= 0 {
		base = 30 * time.Second
	}
	d := base
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= r.maxBackoff {
			return r.maxBackoff
		}
	}
	return d
}

func taskTitle(k Kind) string {
	switch k {
	case KindImport:
		return "Import"
	case KindExport:
		return "Export"
	case KindGeneratePasses:
		return "Pass generation"
	case KindUpdateStatus:
		return "Status update"
	case KindCleanup:
		return "Cleanup"
	}
	return "Job"
}
