package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
)

func seedRecord(store *fakeStore, jobID, userID uuid.UUID) {
	store.records[jobID] = &entity.JobRecord{
		ID:      jobID,
		JobType: string(KindImport),
		Status:  constants.JobStatusProcessing,
		UserID:  userID,
	}
}

func TestExecutionErrorListIsCapped(t *testing.T) {
	store := newFakeStore()
	jobID, userID := uuid.New(), uuid.New()
	seedRecord(store, jobID, userID)
	exec := NewExecution(jobID, userID, nil, store, nil, 0, nil)

	for i := 0; i < constants.MaxJobErrors+25; i++ {
		exec.RecordFailure(fmt.Sprintf("row %d: bad", i))
	}

	assert.Equal(t, constants.MaxJobErrors+25, exec.Failed())
	assert.Len(t, exec.Errors(), constants.MaxJobErrors)
}

func TestExecutionReportThrottles(t *testing.T) {
	store := newFakeStore()
	jobID, userID := uuid.New(), uuid.New()
	seedRecord(store, jobID, userID)
	exec := NewExecution(jobID, userID, nil, store, nil, time.Hour, nil)

	exec.RecordSuccess(5)
	exec.Report(context.Background()) // first report always writes
	exec.RecordSuccess(5)
	exec.Report(context.Background()) // absorbed by the throttle

	assert.Equal(t, 5, store.get(jobID).ProcessedRecords)

	exec.flush(context.Background())
	assert.Equal(t, 10, store.get(jobID).ProcessedRecords)
}

func TestExecutionProgressNotification(t *testing.T) {
	store := newFakeStore()
	notif := &fakeNotifier{}
	jobID, userID := uuid.New(), uuid.New()
	seedRecord(store, jobID, userID)
	exec := NewExecution(jobID, userID, nil, store, notif, 0, nil)

	// no total yet: flush writes progress but sends nothing
	exec.RecordSuccess(1)
	exec.flush(context.Background())
	assert.Empty(t, notif.all())

	exec.SetTotal(context.Background(), 10)
	exec.RecordSuccess(4)
	exec.flush(context.Background())
	sent := notif.all()
	require.Len(t, sent, 1)
	assert.Equal(t, "5 of 10 records processed", sent[0].Message)
}

func TestExecutionCancelledPoll(t *testing.T) {
	store := newFakeStore()
	jobID, userID := uuid.New(), uuid.New()
	seedRecord(store, jobID, userID)
	exec := NewExecution(jobID, userID, nil, store, nil, 0, nil)

	ctx := context.Background()
	assert.False(t, exec.Cancelled(ctx))

	require.NoError(t, store.RequestCancel(ctx, jobID))
	assert.True(t, exec.Cancelled(ctx))
}
