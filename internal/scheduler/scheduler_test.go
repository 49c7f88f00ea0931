package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/jobs"
)

type captureEnqueuer struct {
	mu    sync.Mutex
	tasks []jobs.Task
}

func (c *captureEnqueuer) Enqueue(_ context.Context, task jobs.Task, _ jobs.EnqueueOptions) (uuid.UUID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = append(c.tasks, task)
	return uuid.New(), nil
}

func (c *captureEnqueuer) all() []jobs.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]jobs.Task(nil), c.tasks...)
}

func TestFireEnqueuesBuiltTask(t *testing.T) {
	enq := &captureEnqueuer{}
	system := uuid.New()
	s := New(enq, system, nil)

	s.fire("test-cleanup", func() (jobs.Task, jobs.EnqueueOptions) {
		return jobs.Task{UserID: system, Payload: jobs.CleanupPayload{RetentionDays: 90}}, jobs.EnqueueOptions{}
	})

	tasks := enq.all()
	require.Len(t, tasks, 1)
	assert.Equal(t, system, tasks[0].UserID)
	assert.Equal(t, jobs.CleanupPayload{RetentionDays: 90}, tasks[0].Payload)
}

func TestFireIsSuppressedWhileDraining(t *testing.T) {
	enq := &captureEnqueuer{}
	s := New(enq, uuid.New(), nil)
	s.Stop()

	s.fire("late-trigger", func() (jobs.Task, jobs.EnqueueOptions) {
		t.Fatal("builder must not run while draining")
		return jobs.Task{}, jobs.EnqueueOptions{}
	})
	assert.Empty(t, enq.all())
}

func TestRegisterRejectsBadSpec(t *testing.T) {
	s := New(&captureEnqueuer{}, uuid.New(), nil)
	err := s.Register("broken", "not a cron spec", func() (jobs.Task, jobs.EnqueueOptions) {
		return jobs.Task{}, jobs.EnqueueOptions{}
	})
	require.Error(t, err)
}

func TestRegisterDefaults(t *testing.T) {
	enq := &captureEnqueuer{}
	system := uuid.New()
	s := New(enq, system, nil)

	require.NoError(t, s.RegisterDefaults("0 2 * * *", "0 8 * * 0", "0 * * * *", 180))
	assert.Len(t, s.cron.Entries(), 3)

	// fire each builder once through the guard path
	s.fire("daily-cleanup", func() (jobs.Task, jobs.EnqueueOptions) {
		return jobs.Task{UserID: system, Payload: jobs.CleanupPayload{RetentionDays: 180}}, jobs.EnqueueOptions{}
	})
	s.fire("hourly-expiry", func() (jobs.Task, jobs.EnqueueOptions) {
		return jobs.Task{UserID: system, Payload: jobs.UpdateStatusPayload{NewStatus: constants.PassExpired, ExpireDue: true}}, jobs.EnqueueOptions{}
	})

	tasks := enq.all()
	require.Len(t, tasks, 2)
	assert.Equal(t, jobs.KindCleanup, tasks[0].Payload.Kind())
	assert.Equal(t, jobs.KindUpdateStatus, tasks[1].Payload.Kind())
}
