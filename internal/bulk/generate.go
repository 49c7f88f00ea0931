package bulk

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

// GenerateHandler issues passes for approved applications. Preconditions
// are re-checked per record at execution time: the approval may have been
// withdrawn between enqueue and run, and a pass may already exist from a
// redelivered attempt. Both are record-level outcomes, never a job abort.
type GenerateHandler struct {
	apps         ApplicationStore
	passes       PassStore
	validityDays int
	logger       *slog.Logger
}

func NewGenerateHandler(apps ApplicationStore, passes PassStore, validityDays int, logger *slog.Logger) *GenerateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	if validityDays <= 0 {
		validityDays = 365
	}
	return &GenerateHandler{apps: apps, passes: passes, validityDays: validityDays, logger: logger}
}

func (h *GenerateHandler) Run(ctx context.Context, exec *jobs.Execution, p jobs.GeneratePassesPayload) (*entity.JobResult, error) {
	if len(p.ApplicationIDs) == 0 {
		return nil, jobs.Fatal(fmt.Errorf("generate: no application ids"))
	}
	exec.SetTotal(ctx, len(p.ApplicationIDs))

	validity := h.validityDays
	if p.ValidityDays > 0 {
		validity = p.ValidityDays
	}

	chunkSize := clampChunkSize(p.ChunkSize)
	for _, chunk := range chunks(p.ApplicationIDs, chunkSize) {
		if exec.Cancelled(ctx) {
			return nil, jobs.ErrCancelled
		}
		for _, appID := range chunk {
			if err := h.generateOne(ctx, appID, validity); err != nil {
				exec.RecordFailuref("application %s: %v", appID, err)
				continue
			}
			exec.RecordSuccess(1)
		}
		exec.Report(ctx)
	}

	h.logger.Info("bulk.generate.ok",
		"job_id", exec.JobID(),
		"requested", len(p.ApplicationIDs),
		"issued", exec.Processed(),
		"failed", exec.Failed(),
	)
	return nil, nil
}

func (h *GenerateHandler) generateOne(ctx context.Context, appID uuid.UUID, validityDays int) error {
	app, err := h.apps.GetByID(ctx, appID)
	if err != nil {
		return fmt.Errorf("lookup: %v", err)
	}
	if app == nil {
		return fmt.Errorf("application not found")
	}
	if app.Status != constants.ApplicationApproved {
		return fmt.Errorf("application not approved")
	}
	exists, err := h.passes.ExistsForApplication(ctx, appID)
	if err != nil {
		return fmt.Errorf("pass lookup: %v", err)
	}
	if exists {
		// Already issued, likely by a previous delivery of this job.
		return nil
	}
	now := time.Now().UTC()
	return h.passes.Create(ctx, &entity.Pass{
		ID:            uuid.New(),
		ApplicationID: appID,
		Serial:        passSerial(appID),
		Status:        constants.PassActive,
		IssuedAt:      now,
		ExpiresAt:     now.AddDate(0, 0, validityDays),
	})
}

// passSerial derives a stable, human-readable serial from the application
// id, so a regenerated pass for the same application gets the same serial.
func passSerial(appID uuid.UUID) string {
	compact := strings.ToUpper(strings.ReplaceAll(appID.String(), "-", ""))
	return "CP-" + compact[:12]
}
