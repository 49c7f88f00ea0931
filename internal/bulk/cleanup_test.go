package bulk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

func TestCleanupDeletesOnlyBeyondRetention(t *testing.T) {
	now := time.Now().UTC()
	apps := newMemApps()
	passes := newMemPasses()

	// beyond the 180 day window
	passes.add(&entity.Pass{Status: constants.PassExpired, Serial: "CP-OLD", ExpiresAt: now.AddDate(0, 0, -200)})
	apps.add(&entity.Application{Status: constants.ApplicationRejected, Email: "old@x.edu", UpdatedAt: now.AddDate(0, 0, -200)})
	// inside the window, must survive
	passes.add(&entity.Pass{Status: constants.PassExpired, Serial: "CP-NEW", ExpiresAt: now.AddDate(0, 0, -10)})
	apps.add(&entity.Application{Status: constants.ApplicationRejected, Email: "new@x.edu", UpdatedAt: now.AddDate(0, 0, -10)})
	// wrong status, must survive regardless of age
	passes.add(&entity.Pass{Status: constants.PassRevoked, Serial: "CP-REV", ExpiresAt: now.AddDate(0, 0, -400)})
	apps.add(&entity.Application{Status: constants.ApplicationApproved, Email: "approved@x.edu", UpdatedAt: now.AddDate(0, 0, -400)})

	h := NewCleanupHandler(apps, passes, 180, nil)
	store := &recStore{}
	exec := testExecution(t, store, nil)

	_, err := h.Run(context.Background(), exec, jobs.CleanupPayload{})
	require.NoError(t, err)

	assert.Equal(t, 2, exec.Processed(), "one pass and one application deleted")
	assert.Equal(t, 2, store.total, "total is set retroactively from the delete counts")
	assert.Len(t, passes.byID, 2)
	assert.Len(t, apps.byID, 2)
}

func TestCleanupPayloadOverridesRetention(t *testing.T) {
	now := time.Now().UTC()
	apps := newMemApps()
	passes := newMemPasses()
	passes.add(&entity.Pass{Status: constants.PassExpired, Serial: "CP-A", ExpiresAt: now.AddDate(0, 0, -40)})

	h := NewCleanupHandler(apps, passes, 180, nil)
	exec := testExecution(t, &recStore{}, nil)

	_, err := h.Run(context.Background(), exec, jobs.CleanupPayload{RetentionDays: 30})
	require.NoError(t, err)
	assert.Empty(t, passes.byID, "40 days old is past a 30 day window")
}

func TestCleanupCancelBetweenSweeps(t *testing.T) {
	now := time.Now().UTC()
	apps := newMemApps()
	passes := newMemPasses()
	passes.add(&entity.Pass{Status: constants.PassExpired, Serial: "CP-A", ExpiresAt: now.AddDate(0, 0, -300)})
	apps.add(&entity.Application{Status: constants.ApplicationRejected, Email: "old@x.edu", UpdatedAt: now.AddDate(0, 0, -300)})

	h := NewCleanupHandler(apps, passes, 180, nil)
	store := &recStore{cancelled: true}
	exec := testExecution(t, store, nil)

	_, err := h.Run(context.Background(), exec, jobs.CleanupPayload{})
	require.ErrorIs(t, err, jobs.ErrCancelled)
	assert.Empty(t, passes.byID, "first sweep already ran")
	assert.Len(t, apps.byID, 1, "second sweep never started")
}
