package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/campuspass/campuspass/constants"
)

// JobRecord is the observable state of one background operation. It is
// created before the corresponding queue task becomes visible and is only
// ever written by the runner currently holding the task's lease.
type JobRecord struct {
	ID               uuid.UUID
	JobType          string
	Status           constants.JobStatus
	TotalRecords     int
	ProcessedRecords int
	FailedRecords    int
	UserID           uuid.UUID
	InstitutionID    *uuid.UUID
	Payload          json.RawMessage
	Errors           []string
	Result           *JobResult
	CancelRequested  bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// JobResult describes the artifact produced by a job, when there is one.
type JobResult struct {
	Location string `json:"location"`
	Filename string `json:"filename"`
}
