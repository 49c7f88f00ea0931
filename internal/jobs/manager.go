package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
)

// EnqueueOptions tune one enqueue. Zero values fall back to the manager
// defaults.
type EnqueueOptions struct {
	Priority    int
	Delay       time.Duration
	MaxAttempts int
	Backoff     time.Duration
}

// Counts is the per-lane statistics snapshot.
type Counts struct {
	Pending   int `json:"pending"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
}

// ManagerOptions configure worker pools and retry defaults.
type ManagerOptions struct {
	PollInterval  time.Duration
	LeaseTTL      time.Duration
	MaxAttempts   int
	BackoffBase   time.Duration
	ProgressEvery time.Duration
}

type lane struct {
	name        string
	concurrency int
	wakeup      chan struct{}
}

// Manager owns one durable queue lane per operation kind, each with a fixed
// worker pool. Enqueue is a two-step: the job record is created first, the
// queue entry second, so runners never see a task without its record.
type Manager struct {
	store  JobStore
	queue  TaskQueue
	runner *Runner
	opts   ManagerOptions
	logger *slog.Logger

	mu      sync.Mutex
	lanes   map[string]*lane
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewManager(store JobStore, queue TaskQueue, runner *Runner, opts ManagerOptions, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 2 * time.Second
	}
	if opts.LeaseTTL <= 0 {
		opts.LeaseTTL = 5 * time.Minute
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 3
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = 30 * time.Second
	}
	return &Manager{
		store:  store,
		queue:  queue,
		runner: runner,
		opts:   opts,
		logger: logger,
		lanes:  make(map[string]*lane),
	}
}

// CreateLane registers a lane with a fixed worker pool size. Idempotent:
// re-registering an existing lane only raises its concurrency if larger.
// Lanes cannot be added after Start.
func (m *Manager) CreateLane(name string, concurrency int) error {
	if name == "" {
		return fmt.Errorf("lane name is required")
	}
	if concurrency <= 0 {
		concurrency = 1
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return fmt.Errorf("cannot create lane %q: manager already started", name)
	}
	if existing, ok := m.lanes[name]; ok {
		if concurrency > existing.concurrency {
			existing.concurrency = concurrency
		}
		return nil
	}
	m.lanes[name] = &lane{
		name:        name,
		concurrency: concurrency,
		wakeup:      make(chan struct{}, 1),
	}
	return nil
}

// Start pings the queue backend (fail fast when unreachable) and spawns the
// lane worker pools. It returns immediately; workers run until Stop.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.started {
		return fmt.Errorf("job manager already started")
	}
	if err := m.queue.Ping(ctx); err != nil {
		return fmt.Errorf("queue backend unreachable: %w", err)
	}

	workerCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel
	for _, ln := range m.lanes {
		for i := 0; i < ln.concurrency; i++ {
			m.wg.Add(1)
			workerID := fmt.Sprintf("%s-%d", ln.name, i)
			go m.worker(workerCtx, ln, workerID)
		}
		m.logger.Info("jobs.lane.started", "lane", ln.name, "workers", ln.concurrency)
	}
	m.started = true
	return nil
}

// Stop drains the worker pools: workers finish their in-flight job, then
// exit. Stop blocks until all workers return or ctx expires.
func (m *Manager) Stop(ctx context.Context) error {
	m.mu.Lock()
	if !m.started {
		m.mu.Unlock()
		return nil
	}
	m.started = false
	if m.cancel != nil {
		m.cancel()
	}
	m.mu.Unlock()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		m.logger.Info("jobs.manager.stopped")
		return nil
	case <-ctx.Done():
		m.logger.Warn("jobs.manager.stop_timed_out")
		return ctx.Err()
	}
}

// Enqueue creates the job record then the queue entry and wakes the lane.
// It returns the job record id; all outcomes are observed asynchronously.
func (m *Manager) Enqueue(ctx context.Context, task Task, opts EnqueueOptions) (uuid.UUID, error) {
	laneName := LaneFor(task.Payload.Kind())
	m.mu.Lock()
	ln, ok := m.lanes[laneName]
	m.mu.Unlock()
	if !ok {
		return uuid.Nil, fmt.Errorf("lane %q is not registered", laneName)
	}

	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = m.opts.MaxAttempts
	}
	if opts.Backoff <= 0 {
		opts.Backoff = m.opts.BackoffBase
	}

	if task.JobID == uuid.Nil {
		task.JobID = uuid.New()
	}
	payload, err := EncodeTask(task)
	if err != nil {
		return uuid.Nil, err
	}

	rec := &entity.JobRecord{
		ID:            task.JobID,
		JobType:       string(task.Payload.Kind()),
		Status:        constants.JobStatusPending,
		UserID:        task.UserID,
		InstitutionID: task.InstitutionID,
		Payload:       payload,
	}
	// Record first, queue entry second: an orphan record is harmless, an
	// orphan queue entry is not.
	if err := m.store.Create(ctx, rec); err != nil {
		return uuid.Nil, fmt.Errorf("create job record: %w", err)
	}
	qt := &entity.QueueTask{
		ID:          uuid.New(),
		JobID:       task.JobID,
		Lane:        laneName,
		Priority:    opts.Priority,
		Payload:     payload,
		MaxAttempts: opts.MaxAttempts,
		Backoff:     opts.Backoff,
		AvailableAt: time.Now().Add(opts.Delay),
	}
	if err := m.queue.Enqueue(ctx, qt); err != nil {
		// The record stays PENDING with no queue entry; surface the error so
		// the caller can retry the whole enqueue.
		return uuid.Nil, fmt.Errorf("enqueue task: %w", err)
	}

	if opts.Delay <= 0 {
		m.wake(ln)
	}
	m.logger.Info("jobs.enqueue.ok",
		"job_id", task.JobID,
		"kind", string(task.Payload.Kind()),
		"lane", laneName,
		"priority", opts.Priority,
	)
	return task.JobID, nil
}

// Cancel requests cancellation. A task still waiting in the queue is
// removed and its job failed immediately; a leased task gets the
// cooperative flag and stops at the next chunk boundary. Terminal jobs
// cannot be cancelled.
func (m *Manager) Cancel(ctx context.Context, jobID uuid.UUID) (bool, error) {
	rec, err := m.store.Get(ctx, jobID)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, fmt.Errorf("job %s not found", jobID)
	}
	if rec.Status.Terminal() {
		return false, nil
	}
	removed, err := m.queue.Remove(ctx, jobID)
	if err != nil {
		return false, err
	}
	if removed {
		errs := append(rec.Errors, ErrCancelled.Error())
		if err := m.store.Fail(ctx, jobID, rec.ProcessedRecords, rec.FailedRecords, errs); err != nil {
			return false, err
		}
		m.logger.Info("jobs.cancel.removed", "job_id", jobID)
		return true, nil
	}
	if err := m.store.RequestCancel(ctx, jobID); err != nil {
		return false, err
	}
	m.logger.Info("jobs.cancel.requested", "job_id", jobID)
	return true, nil
}

// Stats returns the lane's queue depth plus terminal counts for its kind.
func (m *Manager) Stats(ctx context.Context, laneName string) (Counts, error) {
	m.mu.Lock()
	_, ok := m.lanes[laneName]
	m.mu.Unlock()
	if !ok {
		return Counts{}, fmt.Errorf("lane %q is not registered", laneName)
	}
	pending, active, err := m.queue.Counts(ctx, laneName)
	if err != nil {
		return Counts{}, err
	}
	kind := KindForLane(laneName)
	completed, err := m.store.CountByTypeAndStatus(ctx, string(kind), constants.JobStatusCompleted)
	if err != nil {
		return Counts{}, err
	}
	failed, err := m.store.CountByTypeAndStatus(ctx, string(kind), constants.JobStatusFailed)
	if err != nil {
		return Counts{}, err
	}
	return Counts{Pending: pending, Active: active, Completed: completed, Failed: failed}, nil
}

// StatsAll collects Stats for every registered lane.
func (m *Manager) StatsAll(ctx context.Context) (map[string]Counts, error) {
	m.mu.Lock()
	names := make([]string, 0, len(m.lanes))
	for name := range m.lanes {
		names = append(names, name)
	}
	m.mu.Unlock()

	out := make(map[string]Counts, len(names))
	for _, name := range names {
		c, err := m.Stats(ctx, name)
		if err != nil {
			return nil, err
		}
		out[name] = c
	}
	return out, nil
}

// KindForLane is the inverse of LaneFor.
func KindForLane(lane string) Kind {
	switch lane {
	case constants.LaneImport:
		return KindImport
	case constants.LaneExport:
		return KindExport
	case constants.LanePassGen:
		return KindGeneratePasses
	case constants.LaneStatusUpdate:
		return KindUpdateStatus
	case constants.LaneCleanup:
		return KindCleanup
	}
	return ""
}

func (m *Manager) wake(ln *lane) {
	select {
	case ln.wakeup <- struct{}{}:
	default:
	}
}

// worker polls its lane until the manager stops. Each slot runs exactly one
// job at a time to completion before claiming the next.
func (m *Manager) worker(ctx context.Context, ln *lane, workerID string) {
	defer m.wg.Done()
	ticker := time.NewTicker(m.opts.PollInterval)
	defer ticker.Stop()

	m.logger.Debug("jobs.worker.started", "lane", ln.name, "worker_id", workerID)
	for {
		select {
		case <-ctx.Done():
			m.logger.Debug("jobs.worker.stopping", "lane", ln.name, "worker_id", workerID)
			return
		case <-ticker.C:
			m.drain(ctx, ln, workerID)
		case <-ln.wakeup:
			m.drain(ctx, ln, workerID)
		}
	}
}

// drain claims and runs tasks until the lane is empty or the context ends.
func (m *Manager) drain(ctx context.Context, ln *lane, workerID string) {
	m.sweepExhausted(ctx, ln)
	for {
		if ctx.Err() != nil {
			return
		}
		qt, err := m.queue.Claim(ctx, ln.name, workerID, m.opts.LeaseTTL)
		if err != nil {
			m.logger.Error("jobs.claim.failed", "lane", ln.name, "worker_id", workerID, "err", err)
			return
		}
		if qt == nil {
			return
		}
		m.runner.Run(ctx, qt)
	}
}

// sweepExhausted finalizes tasks whose delivery budget ran out while
// unleased (e.g. a crashed runner consumed the last attempt).
func (m *Manager) sweepExhausted(ctx context.Context, ln *lane) {
	exhausted, err := m.queue.ExpireOverdue(ctx, ln.name)
	if err != nil {
		m.logger.Warn("jobs.sweep.failed", "lane", ln.name, "err", err)
		return
	}
	for _, qt := range exhausted {
		rec, err := m.store.Get(ctx, qt.JobID)
		if err != nil || rec == nil {
			m.logger.Warn("jobs.sweep.record_missing", "job_id", qt.JobID, "err", err)
			continue
		}
		errs := append(rec.Errors, fmt.Sprintf("retry budget exhausted after %d attempts", qt.Attempts))
		if err := m.store.Fail(ctx, qt.JobID, rec.ProcessedRecords, rec.FailedRecords, errs); err != nil {
			m.logger.Error("jobs.sweep.fail_write_failed", "job_id", qt.JobID, "err", err)
		}
		m.logger.Warn("jobs.sweep.exhausted", "job_id", qt.JobID, "lane", ln.name, "attempts", qt.Attempts)
	}
}
