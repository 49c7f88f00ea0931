package bulk

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/artifact"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

// importRow is one parsed CSV line, kept with its 1-based file position so
// record-level errors can point at it.
type importRow struct {
	line          int
	fullName      string
	email         string
	studentNumber string
}

// ImportHandler ingests application rows from an uploaded CSV. Duplicate
// handling is governed by the payload: skip, update, or record-level error.
// Rows are re-checked for existence on every attempt, which makes
// redelivery after a partial run safe.
type ImportHandler struct {
	apps      ApplicationStore
	artifacts artifact.Store
	rowSchema *jsonschema.Schema
	logger    *slog.Logger
}

func NewImportHandler(apps ApplicationStore, artifacts artifact.Store, logger *slog.Logger) (*ImportHandler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	schema, err := compileSchema(buildApplicationRowSchema())
	if err != nil {
		return nil, err
	}
	return &ImportHandler{apps: apps, artifacts: artifacts, rowSchema: schema, logger: logger}, nil
}

func (h *ImportHandler) Run(ctx context.Context, exec *jobs.Execution, p jobs.ImportPayload) (*entity.JobResult, error) {
	if p.FileRef == "" {
		return nil, jobs.Fatal(fmt.Errorf("import: file reference is required"))
	}
	data, err := h.artifacts.Read(ctx, p.FileRef)
	if err != nil {
		// A missing or unreadable file will not appear on retry.
		return nil, jobs.Fatal(fmt.Errorf("import: %w", err))
	}

	institutionID := uuid.Nil
	// Task-level scoping: every imported row belongs to the job's institution.
	if inst := exec.InstitutionID(); inst != nil {
		institutionID = *inst
	}

	rows, err := parseImportCSV(bytes.NewReader(data))
	if err != nil {
		return nil, jobs.Fatal(fmt.Errorf("import: %w", err))
	}
	exec.SetTotal(ctx, len(rows))

	chunkSize := clampChunkSize(p.ChunkSize)
	for _, chunk := range chunks(rows, chunkSize) {
		if exec.Cancelled(ctx) {
			return nil, jobs.ErrCancelled
		}
		for _, row := range chunk {
			if err := h.importOne(ctx, institutionID, row, p); err != nil {
				exec.RecordFailuref("row %d: %v", row.line, err)
				continue
			}
			exec.RecordSuccess(1)
		}
		exec.Report(ctx)
	}

	h.logger.Info("bulk.import.ok",
		"job_id", exec.JobID(),
		"rows", len(rows),
		"processed", exec.Processed(),
		"failed", exec.Failed(),
	)
	return nil, nil
}

// importOne validates and applies a single row. Returned errors are
// record-level: they count against the row, never the job.
func (h *ImportHandler) importOne(ctx context.Context, institutionID uuid.UUID, row importRow, p jobs.ImportPayload) error {
	doc := map[string]any{
		"full_name": row.fullName,
		"email":     row.email,
	}
	if row.studentNumber != "" {
		doc["student_number"] = row.studentNumber
	}
	if err := h.rowSchema.Validate(doc); err != nil {
		return fmt.Errorf("invalid row: %v", err)
	}

	existing, err := h.apps.FindByNaturalKey(ctx, institutionID, row.email)
	if err != nil {
		return fmt.Errorf("lookup: %v", err)
	}
	switch {
	case existing == nil:
		return h.apps.Create(ctx, &entity.Application{
			ID:            uuid.New(),
			InstitutionID: institutionID,
			FullName:      row.fullName,
			Email:         row.email,
			StudentNumber: row.studentNumber,
			Status:        constants.ApplicationPending,
		})
	case p.UpdateExisting:
		existing.FullName = row.fullName
		existing.StudentNumber = row.studentNumber
		return h.apps.Update(ctx, existing)
	case p.SkipDuplicates:
		return nil // counted as processed, not failed
	default:
		return fmt.Errorf("duplicate application for %s", row.email)
	}
}

// parseImportCSV reads the header line then the data rows. Recognized
// columns: full_name, email, student_number; order is free, unknown columns
// are ignored.
func parseImportCSV(r io.Reader) ([]importRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["email"]; !ok {
		return nil, fmt.Errorf("header has no email column")
	}

	pick := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []importRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, importRow{
			line:          line,
			fullName:      pick(record, "full_name"),
			email:         pick(record, "email"),
			studentNumber: pick(record, "student_number"),
		})
	}
	return rows, nil
}
