package bulk

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

func importFixture(t *testing.T, csv string) (*ImportHandler, *memApps, *memArtifacts, string) {
	t.Helper()
	apps := newMemApps()
	artifacts := newMemArtifacts()
	h, err := NewImportHandler(apps, artifacts, nil)
	require.NoError(t, err)
	ref, err := artifacts.Write(context.Background(), []byte(csv), "upload.csv")
	require.NoError(t, err)
	return h, apps, artifacts, ref
}

func TestImportCreatesApplications(t *testing.T) {
	h, apps, _, ref := importFixture(t,
		"full_name,email,student_number\n"+
			"Ada Lovelace,ada@example.edu,S-001\n"+
			"Alan Turing,alan@example.edu,S-002\n")

	instID := uuid.New()
	store := &recStore{}
	exec := testExecution(t, store, &instID)

	result, err := h.Run(context.Background(), exec, jobs.ImportPayload{FileRef: ref})
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Equal(t, 2, store.total)
	assert.Equal(t, 2, exec.Processed())
	assert.Equal(t, 0, exec.Failed())

	created, err := apps.FindByNaturalKey(context.Background(), instID, "ada@example.edu")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Ada Lovelace", created.FullName)
	assert.Equal(t, "S-001", created.StudentNumber)
	assert.Equal(t, constants.ApplicationPending, created.Status)
}

func TestImportPartialFailureCompletes(t *testing.T) {
	// row 3 has no email and fails validation; the rest import
	h, _, _, ref := importFixture(t,
		"full_name,email\n"+
			"Ada Lovelace,ada@example.edu\n"+
			"No Email,\n"+
			"Alan Turing,alan@example.edu\n")

	instID := uuid.New()
	exec := testExecution(t, &recStore{}, &instID)

	_, err := h.Run(context.Background(), exec, jobs.ImportPayload{FileRef: ref})
	require.NoError(t, err, "record-level failures never fail the job")
	assert.Equal(t, 2, exec.Processed())
	assert.Equal(t, 1, exec.Failed())
	require.Len(t, exec.Errors(), 1)
	assert.Contains(t, exec.Errors()[0], "row 3")
}

func TestImportDuplicateModes(t *testing.T) {
	csv := "full_name,email,student_number\nAda Lovelace,ada@example.edu,S-900\n"
	instID := uuid.New()

	seed := func(apps *memApps) {
		apps.add(&entity.Application{
			InstitutionID: instID,
			FullName:      "A. Lovelace",
			Email:         "ada@example.edu",
			StudentNumber: "S-001",
			Status:        constants.ApplicationApproved,
		})
	}

	t.Run("default is a record error", func(t *testing.T) {
		h, apps, _, ref := importFixture(t, csv)
		seed(apps)
		exec := testExecution(t, &recStore{}, &instID)
		_, err := h.Run(context.Background(), exec, jobs.ImportPayload{FileRef: ref})
		require.NoError(t, err)
		assert.Equal(t, 1, exec.Failed())
		assert.Contains(t, exec.Errors()[0], "duplicate")
	})

	t.Run("skip counts as processed", func(t *testing.T) {
		h, apps, _, ref := importFixture(t, csv)
		seed(apps)
		exec := testExecution(t, &recStore{}, &instID)
		_, err := h.Run(context.Background(), exec, jobs.ImportPayload{FileRef: ref, SkipDuplicates: true})
		require.NoError(t, err)
		assert.Equal(t, 1, exec.Processed())
		assert.Equal(t, 0, exec.Failed())
		assert.Equal(t, 0, apps.updates)
	})

	t.Run("update overwrites fields but not status", func(t *testing.T) {
		h, apps, _, ref := importFixture(t, csv)
		seed(apps)
		exec := testExecution(t, &recStore{}, &instID)
		_, err := h.Run(context.Background(), exec, jobs.ImportPayload{FileRef: ref, UpdateExisting: true})
		require.NoError(t, err)
		assert.Equal(t, 1, exec.Processed())
		assert.Equal(t, 1, apps.updates)

		updated, err := apps.FindByNaturalKey(context.Background(), instID, "ada@example.edu")
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", updated.FullName)
		assert.Equal(t, "S-900", updated.StudentNumber)
		assert.Equal(t, constants.ApplicationApproved, updated.Status)
	})
}

func TestImportRerunIsIdempotentWithSkip(t *testing.T) {
	csv := "full_name,email\nAda Lovelace,ada@example.edu\nAlan Turing,alan@example.edu\n"
	h, apps, _, ref := importFixture(t, csv)
	instID := uuid.New()

	for i := 0; i < 2; i++ {
		exec := testExecution(t, &recStore{}, &instID)
		_, err := h.Run(context.Background(), exec, jobs.ImportPayload{FileRef: ref, SkipDuplicates: true})
		require.NoError(t, err)
		assert.Equal(t, 2, exec.Processed())
		assert.Equal(t, 0, exec.Failed())
	}
	assert.Len(t, apps.byID, 2)
}

func TestImportMissingFileIsFatal(t *testing.T) {
	h, _, _, _ := importFixture(t, "full_name,email\n")

	exec := testExecution(t, &recStore{}, nil)
	_, err := h.Run(context.Background(), exec, jobs.ImportPayload{FileRef: "jobs/gone.csv"})
	require.Error(t, err)
	assert.True(t, jobs.IsFatal(err), "missing file cannot be fixed by retrying")

	_, err = h.Run(context.Background(), exec, jobs.ImportPayload{})
	require.Error(t, err)
	assert.True(t, jobs.IsFatal(err))
}

func TestImportHeaderWithoutEmailIsFatal(t *testing.T) {
	h, _, _, ref := importFixture(t, "name,surname\nAda,Lovelace\n")

	exec := testExecution(t, &recStore{}, nil)
	_, err := h.Run(context.Background(), exec, jobs.ImportPayload{FileRef: ref})
	require.Error(t, err)
	assert.True(t, jobs.IsFatal(err))
	assert.Contains(t, err.Error(), "email")
}

func TestImportStopsAtChunkBoundaryOnCancel(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("full_name,email\n")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&sb, "Student %d,s%d@example.edu\n", i, i)
	}
	h, apps, _, ref := importFixture(t, sb.String())

	instID := uuid.New()
	store := &recStore{cancelled: true}
	exec := testExecution(t, store, &instID)

	_, err := h.Run(context.Background(), exec, jobs.ImportPayload{FileRef: ref, ChunkSize: 10})
	require.ErrorIs(t, err, jobs.ErrCancelled)
	assert.Empty(t, apps.byID, "cancellation before the first chunk imports nothing")
	assert.Equal(t, 25, store.total, "total is still discovered before cancelling")
}
