package jobs

import (
	"context"
	"log/slog"
	"time"
)

// Trigger is anything that can be told to stop producing new work
// (the cron scheduler).
type Trigger interface {
	Stop()
}

// Coordinator runs an ordered shutdown: stop triggers first so no new work
// arrives, then drain the lanes within the grace window, then release
// external resources. Stopping enqueues before draining keeps the drain
// bounded.
type Coordinator struct {
	trigger Trigger
	manager *Manager
	closers []func() error
	grace   time.Duration
	logger  *slog.Logger
}

func NewCoordinator(trigger Trigger, manager *Manager, grace time.Duration, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	if grace <= 0 {
		grace = 30 * time.Second
	}
	return &Coordinator{
		trigger: trigger,
		manager: manager,
		grace:   grace,
		logger:  logger,
	}
}

// AddCloser appends a resource teardown run after the lanes drain, in
// registration order.
func (c *Coordinator) AddCloser(close func() error) {
	c.closers = append(c.closers, close)
}

// Shutdown executes the ordered teardown. It returns the drain error, if
// any; closer failures are logged and do not stop later closers.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	c.logger.Info("shutdown.begin", "grace", c.grace.String())
	if c.trigger != nil {
		c.trigger.Stop()
		c.logger.Info("shutdown.scheduler_stopped")
	}

	drainCtx, cancel := context.WithTimeout(ctx, c.grace)
	defer cancel()
	drainErr := c.manager.Stop(drainCtx)
	if drainErr != nil {
		c.logger.Warn("shutdown.drain_incomplete", "err", drainErr)
	}

	for _, close := range c.closers {
		if err := close(); err != nil {
			c.logger.Error("shutdown.closer_failed", "err", err)
		}
	}
	c.logger.Info("shutdown.done")
	return drainErr
}
