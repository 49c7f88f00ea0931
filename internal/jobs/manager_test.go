package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
)

func newTestManager(t *testing.T, exec importFn) (*Manager, *fakeStore, *fakeQueue) {
	t.Helper()
	store := newFakeStore()
	queue := newFakeQueue()
	runner := NewRunner(store, queue, Executors{Import: exec}, nil, 0, nil)
	mgr := NewManager(store, queue, runner, ManagerOptions{
		PollInterval: 10 * time.Millisecond,
		LeaseTTL:     time.Minute,
		MaxAttempts:  3,
		BackoffBase:  time.Second,
	}, nil)
	for _, lane := range constants.Lanes {
		require.NoError(t, mgr.CreateLane(lane, 1))
	}
	return mgr, store, queue
}

func TestEnqueueCreatesRecordBeforeQueueEntry(t *testing.T) {
	mgr, store, queue := newTestManager(t, nil)

	// A failing queue must still leave the job record behind.
	queue.enqueueErr = assert.AnError
	userID := uuid.New()
	_, err := mgr.Enqueue(context.Background(), Task{
		UserID:  userID,
		Payload: ImportPayload{FileRef: "jobs/a.csv"},
	}, EnqueueOptions{})
	require.Error(t, err)

	recs, err := store.ListByUser(context.Background(), userID, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, constants.JobStatusPending, recs[0].Status)
	assert.Equal(t, 0, queue.depth())
}

func TestEnqueueAppliesDefaults(t *testing.T) {
	mgr, store, queue := newTestManager(t, nil)

	jobID, err := mgr.Enqueue(context.Background(), Task{
		UserID:  uuid.New(),
		Payload: ImportPayload{FileRef: "jobs/a.csv"},
	}, EnqueueOptions{})
	require.NoError(t, err)

	rec := store.get(jobID)
	require.NotNil(t, rec)
	assert.Equal(t, string(KindImport), rec.JobType)

	queue.mu.Lock()
	defer queue.mu.Unlock()
	require.Len(t, queue.tasks, 1)
	for _, qt := range queue.tasks {
		assert.Equal(t, jobID, qt.JobID)
		assert.Equal(t, constants.LaneImport, qt.Lane)
		assert.Equal(t, 3, qt.MaxAttempts)
		assert.Equal(t, time.Second, qt.Backoff)
	}
}

func TestEnqueueUnregisteredLane(t *testing.T) {
	store := newFakeStore()
	queue := newFakeQueue()
	mgr := NewManager(store, queue, NewRunner(store, queue, Executors{}, nil, 0, nil), ManagerOptions{}, nil)

	_, err := mgr.Enqueue(context.Background(), Task{
		UserID:  uuid.New(),
		Payload: CleanupPayload{},
	}, EnqueueOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestCreateLaneRules(t *testing.T) {
	mgr, _, _ := newTestManager(t, nil)

	require.Error(t, mgr.CreateLane("", 1))
	// re-registering only raises concurrency
	require.NoError(t, mgr.CreateLane(constants.LaneImport, 4))
	require.NoError(t, mgr.CreateLane(constants.LaneImport, 2))
	assert.Equal(t, 4, mgr.lanes[constants.LaneImport].concurrency)

	require.NoError(t, mgr.Start(context.Background()))
	defer func() { _ = mgr.Stop(context.Background()) }()
	require.Error(t, mgr.CreateLane("late-lane", 1))
}

func TestManagerRunsEnqueuedJob(t *testing.T) {
	var mu sync.Mutex
	var ran []string
	mgr, store, _ := newTestManager(t, func(_ context.Context, exec *Execution, p ImportPayload) (*entity.JobResult, error) {
		mu.Lock()
		ran = append(ran, p.FileRef)
		mu.Unlock()
		exec.RecordSuccess(1)
		return nil, nil
	})

	require.NoError(t, mgr.Start(context.Background()))
	defer func() { _ = mgr.Stop(context.Background()) }()

	jobID, err := mgr.Enqueue(context.Background(), Task{
		UserID:  uuid.New(),
		Payload: ImportPayload{FileRef: "jobs/live.csv"},
	}, EnqueueOptions{})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		rec := store.get(jobID)
		return rec != nil && rec.Status == constants.JobStatusCompleted
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"jobs/live.csv"}, ran)
}

func TestManagerStartTwiceErrors(t *testing.T) {
	store := newFakeStore()
	queue := newFakeQueue()
	mgr := NewManager(store, queue, NewRunner(store, queue, Executors{}, nil, 0, nil), ManagerOptions{}, nil)

	require.NoError(t, mgr.Start(context.Background()))
	require.Error(t, mgr.Start(context.Background()))
	require.NoError(t, mgr.Stop(context.Background()))
}

func TestCancelPendingRemovesAndFails(t *testing.T) {
	mgr, store, queue := newTestManager(t, nil)

	jobID, err := mgr.Enqueue(context.Background(), Task{
		UserID:  uuid.New(),
		Payload: ImportPayload{FileRef: "jobs/a.csv"},
	}, EnqueueOptions{})
	require.NoError(t, err)

	ok, err := mgr.Cancel(context.Background(), jobID)
	require.NoError(t, err)
	assert.True(t, ok)

	rec := store.get(jobID)
	assert.Equal(t, constants.JobStatusFailed, rec.Status)
	assert.Contains(t, rec.Errors, "cancelled by user")
	assert.Equal(t, 0, queue.depth())
}

func TestCancelLeasedSetsFlag(t *testing.T) {
	mgr, store, queue := newTestManager(t, nil)

	jobID, err := mgr.Enqueue(context.Background(), Task{
		UserID:  uuid.New(),
		Payload: ImportPayload{FileRef: "jobs/a.csv"},
	}, EnqueueOptions{})
	require.NoError(t, err)

	claimed, err := queue.Claim(context.Background(), constants.LaneImport, "import-0", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, claimed)

	ok, err := mgr.Cancel(context.Background(), jobID)
	require.NoError(t, err)
	assert.True(t, ok)

	rec := store.get(jobID)
	assert.True(t, rec.CancelRequested)
	assert.False(t, rec.Status.Terminal(), "leased job is flagged, not failed")
	assert.Equal(t, 1, queue.depth(), "leased task cannot be removed")
}

func TestCancelTerminalIsNoop(t *testing.T) {
	mgr, store, _ := newTestManager(t, nil)

	jobID, err := mgr.Enqueue(context.Background(), Task{
		UserID:  uuid.New(),
		Payload: ImportPayload{FileRef: "jobs/a.csv"},
	}, EnqueueOptions{})
	require.NoError(t, err)
	require.NoError(t, store.Complete(context.Background(), jobID, 1, 0, nil, nil))

	ok, err := mgr.Cancel(context.Background(), jobID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSweepExhaustedFailsJob(t *testing.T) {
	mgr, store, queue := newTestManager(t, nil)

	jobID, err := mgr.Enqueue(context.Background(), Task{
		UserID:  uuid.New(),
		Payload: ImportPayload{FileRef: "jobs/a.csv"},
	}, EnqueueOptions{})
	require.NoError(t, err)

	// Simulate a task whose delivery budget was consumed by crashed runs.
	queue.mu.Lock()
	for _, qt := range queue.tasks {
		qt.Attempts = qt.MaxAttempts
	}
	queue.mu.Unlock()

	mgr.sweepExhausted(context.Background(), mgr.lanes[constants.LaneImport])

	rec := store.get(jobID)
	assert.Equal(t, constants.JobStatusFailed, rec.Status)
	require.NotEmpty(t, rec.Errors)
	assert.Contains(t, rec.Errors[len(rec.Errors)-1], "retry budget exhausted")
	assert.Equal(t, 0, queue.depth())
}

func TestStatsCountsQueueAndTerminals(t *testing.T) {
	mgr, store, _ := newTestManager(t, nil)
	ctx := context.Background()

	a, err := mgr.Enqueue(ctx, Task{UserID: uuid.New(), Payload: ImportPayload{FileRef: "jobs/a.csv"}}, EnqueueOptions{})
	require.NoError(t, err)
	_, err = mgr.Enqueue(ctx, Task{UserID: uuid.New(), Payload: ImportPayload{FileRef: "jobs/b.csv"}}, EnqueueOptions{})
	require.NoError(t, err)
	require.NoError(t, store.Complete(ctx, a, 1, 0, nil, nil))

	counts, err := mgr.Stats(ctx, constants.LaneImport)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Pending)
	assert.Equal(t, 0, counts.Active)
	assert.Equal(t, 1, counts.Completed)
	assert.Equal(t, 0, counts.Failed)

	all, err := mgr.StatsAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(constants.Lanes))

	_, err = mgr.Stats(ctx, "bogus")
	require.Error(t, err)
}
