package bulk

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

func TestStatusTransitions(t *testing.T) {
	passes := newMemPasses()
	active := passes.add(&entity.Pass{Status: constants.PassActive, Serial: "CP-A"})
	revoked := passes.add(&entity.Pass{Status: constants.PassRevoked, Serial: "CP-B"})
	alreadyExpired := passes.add(&entity.Pass{Status: constants.PassExpired, Serial: "CP-C"})
	missing := uuid.New()

	h := NewStatusHandler(passes, nil)
	exec := testExecution(t, &recStore{}, nil)

	_, err := h.Run(context.Background(), exec, jobs.UpdateStatusPayload{
		PassIDs:   []uuid.UUID{active.ID, revoked.ID, alreadyExpired.ID, missing},
		NewStatus: constants.PassExpired,
	})
	require.NoError(t, err)

	// active -> expired applies; expired -> expired is an idempotent skip;
	// revoked -> expired and the missing id are record failures
	assert.Equal(t, 2, exec.Processed())
	assert.Equal(t, 2, exec.Failed())
	assert.Equal(t, constants.PassExpired, passes.byID[active.ID].Status)
	assert.Equal(t, constants.PassRevoked, passes.byID[revoked.ID].Status)
}

func TestStatusIllegalTransitionMessage(t *testing.T) {
	passes := newMemPasses()
	revoked := passes.add(&entity.Pass{Status: constants.PassRevoked, Serial: "CP-B"})

	h := NewStatusHandler(passes, nil)
	exec := testExecution(t, &recStore{}, nil)

	_, err := h.Run(context.Background(), exec, jobs.UpdateStatusPayload{
		PassIDs:   []uuid.UUID{revoked.ID},
		NewStatus: constants.PassActive,
	})
	require.NoError(t, err)
	require.Len(t, exec.Errors(), 1)
	assert.Contains(t, exec.Errors()[0], "illegal transition REVOKED -> ACTIVE")
}

func TestStatusExpireDueMode(t *testing.T) {
	passes := newMemPasses()
	due := passes.add(&entity.Pass{Status: constants.PassActive, Serial: "CP-A", ExpiresAt: time.Now().Add(-time.Hour)})
	current := passes.add(&entity.Pass{Status: constants.PassActive, Serial: "CP-B", ExpiresAt: time.Now().Add(24 * time.Hour)})

	h := NewStatusHandler(passes, nil)
	store := &recStore{}
	exec := testExecution(t, store, nil)

	_, err := h.Run(context.Background(), exec, jobs.UpdateStatusPayload{
		NewStatus: constants.PassExpired,
		ExpireDue: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.total, "only the overdue pass is selected")
	assert.Equal(t, constants.PassExpired, passes.byID[due.ID].Status)
	assert.Equal(t, constants.PassActive, passes.byID[current.ID].Status)
}

func TestStatusExpireDueValidation(t *testing.T) {
	h := NewStatusHandler(newMemPasses(), nil)
	exec := testExecution(t, &recStore{}, nil)

	_, err := h.Run(context.Background(), exec, jobs.UpdateStatusPayload{
		PassIDs:   []uuid.UUID{uuid.New()},
		NewStatus: constants.PassExpired,
		ExpireDue: true,
	})
	require.Error(t, err)
	assert.True(t, jobs.IsFatal(err), "explicit ids with expireDue is a payload bug")

	_, err = h.Run(context.Background(), exec, jobs.UpdateStatusPayload{
		NewStatus: constants.PassRevoked,
		ExpireDue: true,
	})
	require.Error(t, err)
	assert.True(t, jobs.IsFatal(err))
}

func TestStatusUnknownStatusIsFatal(t *testing.T) {
	h := NewStatusHandler(newMemPasses(), nil)
	exec := testExecution(t, &recStore{}, nil)

	_, err := h.Run(context.Background(), exec, jobs.UpdateStatusPayload{
		PassIDs:   []uuid.UUID{uuid.New()},
		NewStatus: constants.PassStatus("FROZEN"),
	})
	require.Error(t, err)
	assert.True(t, jobs.IsFatal(err))
}
