package bulk

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

// CleanupHandler deletes expired passes and stale rejected applications
// older than the retention window. The delete set is evaluated at
// execution time, so the job's total is discovered, not declared: it is
// set retroactively from the delete counts.
type CleanupHandler struct {
	apps          ApplicationStore
	passes        PassStore
	retentionDays int
	logger        *slog.Logger
}

func NewCleanupHandler(apps ApplicationStore, passes PassStore, retentionDays int, logger *slog.Logger) *CleanupHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if retentionDays <= 0 {
		retentionDays = 180
	}
	return &CleanupHandler{apps: apps, passes: passes, retentionDays: retentionDays, logger: logger}
}

func (h *CleanupHandler) Run(ctx context.Context, exec *jobs.Execution, p jobs.CleanupPayload) (*entity.JobResult, error) {
	retention := h.retentionDays
	if p.RetentionDays > 0 {
		retention = p.RetentionDays
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retention)

	deletedPasses, err := h.passes.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("cleanup: expired passes: %w", err)
	}
	exec.RecordSuccess(deletedPasses)
	exec.SetTotal(ctx, deletedPasses)
	exec.Report(ctx)

	if exec.Cancelled(ctx) {
		return nil, jobs.ErrCancelled
	}

	deletedApps, err := h.apps.PurgeRejectedBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("cleanup: rejected applications: %w", err)
	}
	exec.RecordSuccess(deletedApps)
	exec.SetTotal(ctx, deletedPasses+deletedApps)

	h.logger.Info("bulk.cleanup.ok",
		"job_id", exec.JobID(),
		"cutoff", cutoff.Format("2006-01-02"),
		"passes_deleted", deletedPasses,
		"applications_deleted", deletedApps,
	)
	return nil, nil
}
