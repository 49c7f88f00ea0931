package bulk

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

func seedApps(apps *memApps, instID uuid.UUID, n int, createdAt time.Time) {
	for i := 0; i < n; i++ {
		apps.add(&entity.Application{
			InstitutionID: instID,
			FullName:      "Student",
			Email:         uuid.NewString() + "@example.edu",
			Status:        constants.ApplicationApproved,
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		})
	}
}

func TestExportCSV(t *testing.T) {
	apps := newMemApps()
	artifacts := newMemArtifacts()
	instID := uuid.New()
	seedApps(apps, instID, 3, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	h := NewExportHandler(apps, artifacts, nil)
	store := &recStore{}
	exec := testExecution(t, store, &instID)

	result, err := h.Run(context.Background(), exec, jobs.ExportPayload{Format: "csv"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.NotEmpty(t, result.Filename)
	assert.Equal(t, 3, store.total)
	assert.Equal(t, 3, exec.Processed())

	data, err := artifacts.Read(context.Background(), result.Location)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header plus three rows")
	assert.Equal(t, exportHeaders, records[0])
	assert.Equal(t, "2026-03-01", records[1][4])
}

func TestExportXLSX(t *testing.T) {
	apps := newMemApps()
	artifacts := newMemArtifacts()
	instID := uuid.New()
	seedApps(apps, instID, 2, time.Now().UTC())

	h := NewExportHandler(apps, artifacts, nil)
	exec := testExecution(t, &recStore{}, &instID)

	result, err := h.Run(context.Background(), exec, jobs.ExportPayload{})
	require.NoError(t, err)
	require.NotNil(t, result)

	data, err := artifacts.Read(context.Background(), result.Location)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Applications")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportHeaders, rows[0])
}

func TestExportEmptySetStillProducesArtifact(t *testing.T) {
	h := NewExportHandler(newMemApps(), newMemArtifacts(), nil)
	store := &recStore{}
	exec := testExecution(t, store, nil)

	result, err := h.Run(context.Background(), exec, jobs.ExportPayload{Format: "csv"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 0, store.total)
	assert.Equal(t, 0, exec.Processed())
}

func TestExportFiltersByInstitutionAndDate(t *testing.T) {
	apps := newMemApps()
	instID, otherID := uuid.New(), uuid.New()
	seedApps(apps, instID, 2, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))
	seedApps(apps, instID, 1, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	seedApps(apps, otherID, 5, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC))

	h := NewExportHandler(apps, newMemArtifacts(), nil)
	store := &recStore{}
	exec := testExecution(t, store, &instID)

	from := time.Date(2026, 1, 1, 15, 30, 0, 0, time.UTC) // time-of-day is stripped
	_, err := h.Run(context.Background(), exec, jobs.ExportPayload{Format: "csv", From: &from})
	require.NoError(t, err)
	assert.Equal(t, 2, store.total)
	assert.Equal(t, 2, exec.Processed())
}

func TestExportUnknownFormatIsFatal(t *testing.T) {
	h := NewExportHandler(newMemApps(), newMemArtifacts(), nil)
	exec := testExecution(t, &recStore{}, nil)

	_, err := h.Run(context.Background(), exec, jobs.ExportPayload{Format: "pdf"})
	require.Error(t, err)
	assert.True(t, jobs.IsFatal(err))
}
