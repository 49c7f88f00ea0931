package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/notify"
)

// fakeStore is an in-memory JobStore tracking every write for assertions.
type fakeStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entity.JobRecord

	createErr error
	markErr   error
	failCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[uuid.UUID]*entity.JobRecord)}
}

func (s *fakeStore) get(id uuid.UUID) *entity.JobRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[id]
}

func (s *fakeStore) Create(_ context.Context, rec *entity.JobRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	cp := *rec
	s.records[rec.ID] = &cp
	return nil
}

func (s *fakeStore) MarkProcessing(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.markErr != nil {
		return s.markErr
	}
	if rec, ok := s.records[id]; ok && !rec.Status.Terminal() {
		rec.Status = constants.JobStatusProcessing
	}
	return nil
}

func (s *fakeStore) SetTotal(_ context.Context, id uuid.UUID, total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[id]; ok {
		rec.TotalRecords = total
	}
	return nil
}

func (s *fakeStore) Progress(_ context.Context, id uuid.UUID, processed, failed int, errs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[id]; ok {
		rec.ProcessedRecords = processed
		rec.FailedRecords = failed
		rec.Errors = errs
	}
	return nil
}

func (s *fakeStore) Complete(_ context.Context, id uuid.UUID, processed, failed int, errs []string, result *entity.JobResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[id]; ok {
		rec.Status = constants.JobStatusCompleted
		rec.ProcessedRecords = processed
		rec.FailedRecords = failed
		rec.Errors = errs
		rec.Result = result
	}
	return nil
}

func (s *fakeStore) Fail(_ context.Context, id uuid.UUID, processed, failed int, errs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failCalls++
	if rec, ok := s.records[id]; ok {
		rec.Status = constants.JobStatusFailed
		rec.ProcessedRecords = processed
		rec.FailedRecords = failed
		rec.Errors = errs
	}
	return nil
}

func (s *fakeStore) Get(_ context.Context, id uuid.UUID) (*entity.JobRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *fakeStore) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.JobRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.JobRecord
	for _, rec := range s.records {
		if rec.UserID == userID {
			cp := *rec
			out = append(out, &cp)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *fakeStore) RequestCancel(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[id]; ok && !rec.Status.Terminal() {
		rec.CancelRequested = true
	}
	return nil
}

func (s *fakeStore) CancelRequested(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[id]; ok {
		return rec.CancelRequested, nil
	}
	return false, nil
}

func (s *fakeStore) CountByTypeAndStatus(_ context.Context, jobType string, status constants.JobStatus) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rec := range s.records {
		if rec.JobType == jobType && rec.Status == status {
			n++
		}
	}
	return n, nil
}

// fakeQueue is an in-memory TaskQueue with lease semantics.
type fakeQueue struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*entity.QueueTask

	enqueueErr error
	releases   []time.Time
	acks       int
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{tasks: make(map[uuid.UUID]*entity.QueueTask)}
}

func (q *fakeQueue) Enqueue(_ context.Context, task *entity.QueueTask) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.enqueueErr != nil {
		return q.enqueueErr
	}
	cp := *task
	q.tasks[task.ID] = &cp
	return nil
}

func (q *fakeQueue) Claim(_ context.Context, lane, workerID string, lease time.Duration) (*entity.QueueTask, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := time.Now()
	for _, t := range q.tasks {
		leased := t.LockedUntil != nil && t.LockedUntil.After(now)
		if t.Lane != lane || leased || t.AvailableAt.After(now) || t.Attempts >= t.MaxAttempts {
			continue
		}
		t.Attempts++
		until := now.Add(lease)
		t.LockedBy = &workerID
		t.LockedUntil = &until
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (q *fakeQueue) Ack(_ context.Context, taskID uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.acks++
	delete(q.tasks, taskID)
	return nil
}

func (q *fakeQueue) Release(_ context.Context, taskID uuid.UUID, nextAvailable time.Time) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.releases = append(q.releases, nextAvailable)
	if t, ok := q.tasks[taskID]; ok {
		t.LockedBy = nil
		t.LockedUntil = nil
		t.AvailableAt = nextAvailable
	}
	return nil
}

func (q *fakeQueue) Remove(_ context.Context, jobID uuid.UUID) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := time.Now()
	for id, t := range q.tasks {
		if t.JobID != jobID {
			continue
		}
		if t.LockedUntil != nil && t.LockedUntil.After(now) {
			return false, nil
		}
		delete(q.tasks, id)
		return true, nil
	}
	return false, nil
}

func (q *fakeQueue) ExpireOverdue(_ context.Context, lane string) ([]*entity.QueueTask, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := time.Now()
	var out []*entity.QueueTask
	for id, t := range q.tasks {
		leased := t.LockedUntil != nil && t.LockedUntil.After(now)
		if t.Lane != lane || leased || t.Attempts < t.MaxAttempts {
			continue
		}
		cp := *t
		out = append(out, &cp)
		delete(q.tasks, id)
	}
	return out, nil
}

func (q *fakeQueue) Counts(_ context.Context, lane string) (int, int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := time.Now()
	pending, active := 0, 0
	for _, t := range q.tasks {
		if t.Lane != lane {
			continue
		}
		if t.LockedUntil != nil && t.LockedUntil.After(now) {
			active++
		} else {
			pending++
		}
	}
	return pending, active, nil
}

func (q *fakeQueue) Ping(context.Context) error { return nil }

func (q *fakeQueue) depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// fakeNotifier records notifications in arrival order.
type fakeNotifier struct {
	mu   sync.Mutex
	sent []notify.Notification
}

func (n *fakeNotifier) Send(_ context.Context, _ uuid.UUID, msg notify.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
}

func (n *fakeNotifier) all() []notify.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Notification(nil), n.sent...)
}
