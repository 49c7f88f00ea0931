// Package scheduler enqueues maintenance jobs on calendar expressions. It
// runs no job logic itself: every trigger is a single call into the queue
// manager.
package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/jobs"
)

// Enqueuer is the slice of the queue manager the scheduler needs.
type Enqueuer interface {
	Enqueue(ctx context.Context, task jobs.Task, opts jobs.EnqueueOptions) (uuid.UUID, error)
}

// Scheduler wraps a cron runner with a draining guard: once Stop is called
// no further trigger enqueues work, even if a timer was already due.
type Scheduler struct {
	cron     *cron.Cron
	enq      Enqueuer
	logger   *slog.Logger
	draining atomic.Bool
	system   uuid.UUID
}

func New(enq Enqueuer, systemUser uuid.UUID, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:   cron.New(),
		enq:    enq,
		logger: logger,
		system: systemUser,
	}
}

// Register binds a calendar expression to a task builder. The builder runs
// at trigger time, so each firing enqueues a fresh task.
func (s *Scheduler) Register(name, spec string, build func() (jobs.Task, jobs.EnqueueOptions)) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.fire(name, build)
	})
	if err != nil {
		return err
	}
	s.logger.Info("scheduler.registered", "name", name, "spec", spec)
	return nil
}

// fire enqueues one scheduled task unless the process is draining.
func (s *Scheduler) fire(name string, build func() (jobs.Task, jobs.EnqueueOptions)) {
	if s.draining.Load() {
		s.logger.Info("scheduler.skip_draining", "name", name)
		return
	}
	task, opts := build()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	jobID, err := s.enq.Enqueue(ctx, task, opts)
	if err != nil {
		s.logger.Error("scheduler.enqueue_failed", "name", name, "err", err)
		return
	}
	s.logger.Info("scheduler.enqueued", "name", name, "job_id", jobID)
}

// RegisterDefaults installs the stock maintenance triggers: nightly
// retention cleanup, a weekly application digest export, and an hourly
// sweep expiring passes past their validity window.
func (s *Scheduler) RegisterDefaults(cleanupSpec, digestSpec, expirySpec string, retentionDays int) error {
	if err := s.Register("daily-cleanup", cleanupSpec, func() (jobs.Task, jobs.EnqueueOptions) {
		return jobs.Task{
			UserID:  s.system,
			Payload: jobs.CleanupPayload{RetentionDays: retentionDays},
		}, jobs.EnqueueOptions{}
	}); err != nil {
		return err
	}
	if err := s.Register("weekly-digest", digestSpec, func() (jobs.Task, jobs.EnqueueOptions) {
		from := time.Now().UTC().AddDate(0, 0, -7)
		return jobs.Task{
			UserID:  s.system,
			Payload: jobs.ExportPayload{Format: "csv", From: &from},
		}, jobs.EnqueueOptions{}
	}); err != nil {
		return err
	}
	return s.Register("hourly-expiry", expirySpec, func() (jobs.Task, jobs.EnqueueOptions) {
		return jobs.Task{
			UserID: s.system,
			Payload: jobs.UpdateStatusPayload{
				NewStatus: constants.PassExpired,
				ExpireDue: true,
			},
		}, jobs.EnqueueOptions{}
	})
}

// Start begins the timers.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler.started")
}

// Stop sets the draining guard and halts the timers. Triggers already
// mid-fire observe the guard and become no-ops.
func (s *Scheduler) Stop() {
	s.draining.Store(true)
	s.cron.Stop()
	s.logger.Info("scheduler.stopped")
}
