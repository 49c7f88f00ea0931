package bulk

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

// StatusHandler applies a status transition to a set of passes. It mutates
// only existing rows named by the caller; in expire-due mode the set is
// discovered at execution time instead.
type StatusHandler struct {
	passes PassStore
	logger *slog.Logger
}

func NewStatusHandler(passes PassStore, logger *slog.Logger) *StatusHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusHandler{passes: passes, logger: logger}
}

func (h *StatusHandler) Run(ctx context.Context, exec *jobs.Execution, p jobs.UpdateStatusPayload) (*entity.JobResult, error) {
	ids := p.PassIDs
	if p.ExpireDue {
		if len(ids) > 0 {
			return nil, jobs.Fatal(fmt.Errorf("update status: expireDue excludes explicit pass ids"))
		}
		if p.NewStatus != constants.PassExpired {
			return nil, jobs.Fatal(fmt.Errorf("update status: expireDue requires status %s", constants.PassExpired))
		}
		due, err := h.passes.ListDueForExpiry(ctx, time.Now().UTC())
		if err != nil {
			return nil, fmt.Errorf("update status: list due: %w", err)
		}
		ids = due
	}
	if !validPassStatus(p.NewStatus) {
		return nil, jobs.Fatal(fmt.Errorf("update status: unknown status %q", p.NewStatus))
	}
	exec.SetTotal(ctx, len(ids))

	chunkSize := clampChunkSize(p.ChunkSize)
	for _, chunk := range chunks(ids, chunkSize) {
		if exec.Cancelled(ctx) {
			return nil, jobs.ErrCancelled
		}
		for _, id := range chunk {
			if err := h.updateOne(ctx, id, p.NewStatus); err != nil {
				exec.RecordFailuref("pass %s: %v", id, err)
				continue
			}
			exec.RecordSuccess(1)
		}
		exec.Report(ctx)
	}

	h.logger.Info("bulk.status.ok",
		"job_id", exec.JobID(),
		"status", string(p.NewStatus),
		"updated", exec.Processed(),
		"failed", exec.Failed(),
	)
	return nil, nil
}

func (h *StatusHandler) updateOne(ctx context.Context, id uuid.UUID, newStatus constants.PassStatus) error {
	pass, err := h.passes.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("lookup: %v", err)
	}
	if pass == nil {
		return fmt.Errorf("pass not found")
	}
	if pass.Status == newStatus {
		// Idempotent redelivery: already in the target state.
		return nil
	}
	if !constants.CanTransitionPass(pass.Status, newStatus) {
		return fmt.Errorf("illegal transition %s -> %s", pass.Status, newStatus)
	}
	return h.passes.UpdateStatus(ctx, id, newStatus)
}

func validPassStatus(s constants.PassStatus) bool {
	switch s {
	case constants.PassActive, constants.PassExpired, constants.PassRevoked:
		return true
	}
	return false
}
