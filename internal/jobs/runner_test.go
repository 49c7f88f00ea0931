package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/notify"
)

type importFn func(ctx context.Context, exec *Execution, p ImportPayload) (*entity.JobResult, error)

func (f importFn) Run(ctx context.Context, exec *Execution, p ImportPayload) (*entity.JobResult, error) {
	return f(ctx, exec, p)
}

// runnerFixture wires a runner with a single stub import executor and one
// enqueued-and-claimed task ready for Run.
func runnerFixture(t *testing.T, exec importFn) (*Runner, *fakeStore, *fakeQueue, *fakeNotifier, *entity.QueueTask) {
	t.Helper()
	store := newFakeStore()
	queue := newFakeQueue()
	notif := &fakeNotifier{}
	runner := NewRunner(store, queue, Executors{Import: exec}, notif, 0, nil)

	jobID, userID := uuid.New(), uuid.New()
	task := Task{JobID: jobID, UserID: userID, Payload: ImportPayload{FileRef: "jobs/a.csv"}}
	payload, err := EncodeTask(task)
	require.NoError(t, err)

	require.NoError(t, store.Create(context.Background(), &entity.JobRecord{
		ID:      jobID,
		JobType: string(KindImport),
		Status:  constants.JobStatusPending,
		UserID:  userID,
		Payload: payload,
	}))
	qt := &entity.QueueTask{
		ID:          uuid.New(),
		JobID:       jobID,
		Lane:        constants.LaneImport,
		Payload:     payload,
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		AvailableAt: time.Now().Add(-time.Second),
	}
	require.NoError(t, queue.Enqueue(context.Background(), qt))
	claimed, err := queue.Claim(context.Background(), constants.LaneImport, "import-0", time.Minute)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	return runner, store, queue, notif, claimed
}

func TestRunnerSuccessWithRecordFailures(t *testing.T) {
	runner, store, queue, notif, qt := runnerFixture(t, func(_ context.Context, exec *Execution, _ ImportPayload) (*entity.JobResult, error) {
		exec.SetTotal(context.Background(), 10)
		exec.RecordSuccess(7)
		for i := 0; i < 3; i++ {
			exec.RecordFailuref("row %d: invalid email", i+2)
		}
		return nil, nil
	})

	runner.Run(context.Background(), qt)

	rec := store.get(qt.JobID)
	require.NotNil(t, rec)
	assert.Equal(t, constants.JobStatusCompleted, rec.Status)
	assert.Equal(t, 7, rec.ProcessedRecords)
	assert.Equal(t, 3, rec.FailedRecords)
	assert.Len(t, rec.Errors, 3)
	assert.Equal(t, 0, queue.depth(), "task should be acked")

	sent := notif.all()
	require.NotEmpty(t, sent)
	last := sent[len(sent)-1]
	assert.Equal(t, notify.SeverityWarning, last.Severity)
	assert.Equal(t, "7 succeeded, 3 failed.", last.Message)
}

func TestRunnerCompletedWithResult(t *testing.T) {
	result := &entity.JobResult{Location: "jobs/out.xlsx", Filename: "out.xlsx"}
	runner, store, _, notif, qt := runnerFixture(t, func(_ context.Context, exec *Execution, _ ImportPayload) (*entity.JobResult, error) {
		exec.RecordSuccess(2)
		return result, nil
	})

	runner.Run(context.Background(), qt)

	rec := store.get(qt.JobID)
	require.NotNil(t, rec.Result)
	assert.Equal(t, "jobs/out.xlsx", rec.Result.Location)

	sent := notif.all()
	require.NotEmpty(t, sent)
	assert.Equal(t, "jobs/out.xlsx", sent[len(sent)-1].ActionRef)
}

func TestRunnerTransientErrorReleasesForRetry(t *testing.T) {
	boom := errors.New("connection reset")
	runner, store, queue, _, qt := runnerFixture(t, func(_ context.Context, exec *Execution, _ ImportPayload) (*entity.JobResult, error) {
		exec.RecordSuccess(4)
		return nil, boom
	})

	before := time.Now()
	runner.Run(context.Background(), qt)

	rec := store.get(qt.JobID)
	assert.Equal(t, constants.JobStatusProcessing, rec.Status, "record must not go terminal on a retriable error")
	assert.Equal(t, 4, rec.ProcessedRecords, "partial progress is flushed before release")
	assert.Equal(t, 1, queue.depth(), "task stays queued")

	require.Len(t, queue.releases, 1)
	next := queue.releases[0]
	assert.GreaterOrEqual(t, next.Sub(before), 29*time.Second)
}

func TestRunnerFatalErrorFailsImmediately(t *testing.T) {
	runner, store, queue, notif, qt := runnerFixture(t, func(context.Context, *Execution, ImportPayload) (*entity.JobResult, error) {
		return nil, Fatal(errors.New("file not found"))
	})

	runner.Run(context.Background(), qt)

	rec := store.get(qt.JobID)
	assert.Equal(t, constants.JobStatusFailed, rec.Status)
	assert.Contains(t, rec.Errors, "file not found")
	assert.Equal(t, 0, queue.depth())

	sent := notif.all()
	require.NotEmpty(t, sent)
	assert.Equal(t, notify.SeverityError, sent[len(sent)-1].Severity)
}

func TestRunnerLastAttemptFailsTerminally(t *testing.T) {
	runner, store, queue, _, qt := runnerFixture(t, func(context.Context, *Execution, ImportPayload) (*entity.JobResult, error) {
		return nil, errors.New("still flaky")
	})
	qt.Attempts = qt.MaxAttempts

	runner.Run(context.Background(), qt)

	rec := store.get(qt.JobID)
	assert.Equal(t, constants.JobStatusFailed, rec.Status)
	assert.Contains(t, rec.Errors, "still flaky")
	assert.Empty(t, queue.releases)
}

func TestRunnerCancelledFailsWithMarker(t *testing.T) {
	runner, store, queue, notif, qt := runnerFixture(t, func(_ context.Context, exec *Execution, _ ImportPayload) (*entity.JobResult, error) {
		exec.RecordSuccess(12)
		return nil, ErrCancelled
	})

	runner.Run(context.Background(), qt)

	rec := store.get(qt.JobID)
	assert.Equal(t, constants.JobStatusFailed, rec.Status)
	assert.Contains(t, rec.Errors, "cancelled by user")
	assert.Equal(t, 12, rec.ProcessedRecords)
	assert.Equal(t, 0, queue.depth())

	sent := notif.all()
	require.NotEmpty(t, sent)
	assert.Equal(t, notify.SeverityWarning, sent[len(sent)-1].Severity)
	assert.Contains(t, sent[len(sent)-1].Message, "12 records")
}

func TestRunnerUndecodablePayloadFailsTerminally(t *testing.T) {
	runner, store, queue, _, qt := runnerFixture(t, func(context.Context, *Execution, ImportPayload) (*entity.JobResult, error) {
		t.Fatal("executor must not run")
		return nil, nil
	})
	qt.Payload = []byte(`{"kind":"import","data":`)

	runner.Run(context.Background(), qt)

	rec := store.get(qt.JobID)
	assert.Equal(t, constants.JobStatusFailed, rec.Status)
	assert.Equal(t, 0, queue.depth())
}

func TestRunnerBackoffDoublesAndCaps(t *testing.T) {
	runner := NewRunner(newFakeStore(), newFakeQueue(), Executors{}, nil, 0, nil)
	base := 30 * time.Second

	assert.Equal(t, 30*time.Second, runner.backoff(base, 1))
	assert.Equal(t, time.Minute, runner.backoff(base, 2))
	assert.Equal(t, 2*time.Minute, runner.backoff(base, 3))
	assert.Equal(t, 30*time.Minute, runner.backoff(base, 20), "backoff is capped")
	assert.Equal(t, 30*time.Second, runner.backoff(0, 1), "zero base falls back to default")
}
