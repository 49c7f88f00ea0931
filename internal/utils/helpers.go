package utils

import (
	"time"

	jobspb "github.com/campuspass/campuspass/gen/proto/jobs/v1"
	"github.com/campuspass/campuspass/internal/entity"
)

func ToPBJobRecord(rec *entity.JobRecord) *jobspb.JobRecord {
	pb := &jobspb.JobRecord{
		Id:               rec.ID.String(),
		JobType:          rec.JobType,
		Status:           string(rec.Status),
		TotalRecords:     int32(rec.TotalRecords),
		ProcessedRecords: int32(rec.ProcessedRecords),
		FailedRecords:    int32(rec.FailedRecords),
		UserId:           rec.UserID.String(),
		Errors:           rec.Errors,
		CancelRequested:  rec.CancelRequested,
		CreatedAt:        rec.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        rec.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if rec.InstitutionID != nil {
		pb.InstitutionId = rec.InstitutionID.String()
	}
	if rec.Result != nil {
		pb.ResultLocation = rec.Result.Location
		pb.ResultFilename = rec.Result.Filename
	}
	return pb
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
