package bulk

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/campuspass/campuspass/internal/artifact"
	"github.com/campuspass/campuspass/internal/entity"
	"github.com/campuspass/campuspass/internal/jobs"
)

// ExportHandler materializes a filtered application set into an XLSX or CSV
// artifact. The total is known up front from a count query, so export
// progress is exact.
type ExportHandler struct {
	apps      ApplicationStore
	artifacts artifact.Store
	logger    *slog.Logger
}

func NewExportHandler(apps ApplicationStore, artifacts artifact.Store, logger *slog.Logger) *ExportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportHandler{apps: apps, artifacts: artifacts, logger: logger}
}

var exportHeaders = []string{
	"Full Name",
	"Email",
	"Student Number",
	"Status",
	"Submitted",
	"Last Updated",
}

func (h *ExportHandler) Run(ctx context.Context, exec *jobs.Execution, p jobs.ExportPayload) (*entity.JobResult, error) {
	start := time.Now()
	format := p.Format
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		return nil, jobs.Fatal(fmt.Errorf("export: unsupported format %q", format))
	}

	filter := entity.ApplicationFilter{
		InstitutionID:  exec.InstitutionID(),
		From:           normalizeDate(p.From),
		To:             normalizeDate(p.To),
		IncludeDeleted: p.IncludeDeleted,
	}
	// Count before materializing so totalRecords is fixed up front.
	total, err := h.apps.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("export: count: %w", err)
	}
	exec.SetTotal(ctx, total)

	apps, err := h.apps.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("export: query: %w", err)
	}
	if exec.Cancelled(ctx) {
		return nil, jobs.ErrCancelled
	}

	var data []byte
	switch format {
	case "xlsx":
		data, err = h.buildXLSX(ctx, exec, apps)
	case "csv":
		data, err = h.buildCSV(ctx, exec, apps)
	}
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("applications-%s.%s", time.Now().UTC().Format("20060102-150405"), format)
	ref, err := h.artifacts.Write(ctx, data, filename)
	if err != nil {
		return nil, fmt.Errorf("export: store artifact: %w", err)
	}

	h.logger.Info("export.artifact.ok",
		"job_id", exec.JobID(),
		"format", format,
		"rows", len(apps),
		"ref", ref,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &entity.JobResult{Location: ref, Filename: filename}, nil
}

func (h *ExportHandler) buildXLSX(ctx context.Context, exec *jobs.Execution, apps []*entity.Application) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Applications"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, hdr := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, hdr)
	}

	row := 2
	for _, batch := range chunks(apps, clampChunkSize(0)) {
		if exec.Cancelled(ctx) {
			return nil, jobs.ErrCancelled
		}
		for _, a := range batch {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
			write(1, a.FullName)
			write(2, a.Email)
			write(3, a.StudentNumber)
			write(4, string(a.Status))
			write(5, a.CreatedAt.UTC().Format("2006-01-02"))
			write(6, a.UpdatedAt.UTC().Format("2006-01-02"))
			row++
			exec.RecordSuccess(1)
		}
		exec.Report(ctx)
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 32)
	_ = f.SetColWidth(sheet, "C", "D", 16)
	_ = f.SetColWidth(sheet, "E", "F", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func (h *ExportHandler) buildCSV(ctx context.Context, exec *jobs.Execution, apps []*entity.Application) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, batch := range chunks(apps, clampChunkSize(0)) {
		if exec.Cancelled(ctx) {
			return nil, jobs.ErrCancelled
		}
		for _, a := range batch {
			record := []string{
				a.FullName,
				a.Email,
				a.StudentNumber,
				string(a.Status),
				a.CreatedAt.UTC().Format("2006-01-02"),
				a.UpdatedAt.UTC().Format("2006-01-02"),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
			exec.RecordSuccess(1)
		}
		exec.Report(ctx)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// normalizeDate strips the time-of-day, matching DATE filter semantics.
func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
