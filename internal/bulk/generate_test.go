package bulk

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

func TestGenerateIssuesPassesForApproved(t *testing.T) {
	apps := newMemApps()
	passes := newMemPasses()
	approved := apps.add(&entity.Application{Status: constants.ApplicationApproved, Email: "a@x.edu"})
	pending := apps.add(&entity.Application{Status: constants.ApplicationPending, Email: "b@x.edu"})
	missing := uuid.New()

	h := NewGenerateHandler(apps, passes, 30, nil)
	store := &recStore{}
	exec := testExecution(t, store, nil)

	_, err := h.Run(context.Background(), exec, jobs.GeneratePassesPayload{
		ApplicationIDs: []uuid.UUID{approved.ID, pending.ID, missing},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, store.total)
	assert.Equal(t, 1, exec.Processed())
	assert.Equal(t, 2, exec.Failed())

	exists, err := passes.ExistsForApplication(context.Background(), approved.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	var issued *entity.Pass
	for _, p := range passes.byID {
		issued = p
	}
	require.NotNil(t, issued)
	assert.Equal(t, constants.PassActive, issued.Status)
	assert.True(t, strings.HasPrefix(issued.Serial, "CP-"))
	assert.InDelta(t, 30*24, issued.ExpiresAt.Sub(issued.IssuedAt).Hours(), 1)

	joined := strings.Join(exec.Errors(), "; ")
	assert.Contains(t, joined, "not approved")
	assert.Contains(t, joined, "not found")
}

func TestGenerateSkipsExistingPass(t *testing.T) {
	apps := newMemApps()
	passes := newMemPasses()
	approved := apps.add(&entity.Application{Status: constants.ApplicationApproved, Email: "a@x.edu"})
	passes.add(&entity.Pass{ApplicationID: approved.ID, Serial: "CP-EXISTING", Status: constants.PassActive})

	h := NewGenerateHandler(apps, passes, 0, nil)
	exec := testExecution(t, &recStore{}, nil)

	_, err := h.Run(context.Background(), exec, jobs.GeneratePassesPayload{
		ApplicationIDs: []uuid.UUID{approved.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, exec.Processed(), "existing pass counts as processed")
	assert.Equal(t, 0, exec.Failed())
	assert.Equal(t, 0, passes.created, "no second pass is issued")
}

func TestGenerateSerialIsStable(t *testing.T) {
	appID := uuid.New()
	assert.Equal(t, passSerial(appID), passSerial(appID))
	assert.Len(t, passSerial(appID), len("CP-")+12)
	assert.NotEqual(t, passSerial(appID), passSerial(uuid.New()))
}

func TestGenerateEmptyInputIsFatal(t *testing.T) {
	h := NewGenerateHandler(newMemApps(), newMemPasses(), 0, nil)
	exec := testExecution(t, &recStore{}, nil)

	_, err := h.Run(context.Background(), exec, jobs.GeneratePassesPayload{})
	require.Error(t, err)
	assert.True(t, jobs.IsFatal(err))
}

func TestGenerateDefaultValidity(t *testing.T) {
	apps := newMemApps()
	passes := newMemPasses()
	approved := apps.add(&entity.Application{Status: constants.ApplicationApproved, Email: "a@x.edu"})

	h := NewGenerateHandler(apps, passes, 0, nil) // 0 falls back to 365
	exec := testExecution(t, &recStore{}, nil)

	_, err := h.Run(context.Background(), exec, jobs.GeneratePassesPayload{
		ApplicationIDs: []uuid.UUID{approved.ID},
	})
	require.NoError(t, err)

	for _, p := range passes.byID {
		assert.InDelta(t, 365*24, p.ExpiresAt.Sub(p.IssuedAt).Hours(), 25,
			"default validity is one year")
	}
}
