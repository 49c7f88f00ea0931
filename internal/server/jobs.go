package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	jobspb "github.com/campuspass/campuspass/gen/proto/jobs/v1"
	"github.com/campuspass/campuspass/constants"
	"github.com/campuspass/campuspass/internal/common"
	"github.com/campuspass/campuspass/internal/jobs"
	"github.com/campuspass/campuspass/internal/utils"
)

type JobServer struct {
	jobspb.UnimplementedJobsServiceServer
	mgr    *jobs.Manager
	store  jobs.JobStore
	logger *slog.Logger
}

func NewJobServer(mgr *jobs.Manager, store jobs.JobStore, logger *slog.Logger) *JobServer {
	return &JobServer{
		mgr:    mgr,
		store:  store,
		logger: logger,
	}
}

// EnqueueImport schedules a bulk application import from an uploaded file.
func (s *JobServer) EnqueueImport(ctx context.Context, req *jobspb.EnqueueImportRequest) (*jobspb.EnqueueJobResponse, error) {
	userID, err := parseUUID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	instID, err := parseOptionalUUID(req.GetInstitutionId(), "institution_id")
	if err != nil {
		return nil, err
	}
	if instID == nil {
		return nil, common.InvalidArgumentError("institution_id is required")
	}
	if req.GetFileRef() == "" {
		return nil, common.InvalidArgumentError("file_ref is required")
	}

	task := jobs.Task{
		UserID:        userID,
		InstitutionID: instID,
		Payload: jobs.ImportPayload{
			FileRef:        req.GetFileRef(),
			SkipDuplicates: req.GetSkipDuplicates(),
			UpdateExisting: req.GetUpdateExisting(),
			ChunkSize:      int(req.GetChunkSize()),
		},
	}
	return s.enqueue(ctx, task, int(req.GetPriority()))
}

// EnqueueExport schedules an application export to XLSX or CSV.
func (s *JobServer) EnqueueExport(ctx context.Context, req *jobspb.EnqueueExportRequest) (*jobspb.EnqueueJobResponse, error) {
	userID, err := parseUUID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	instID, err := parseOptionalUUID(req.GetInstitutionId(), "institution_id")
	if err != nil {
		return nil, err
	}

	var from, to *time.Time
	if req.GetFromDate() != "" {
		t, err := utils.ParseYMD(req.GetFromDate())
		if err != nil {
			return nil, common.InvalidArgumentErrorf("invalid from_date %q", req.GetFromDate())
		}
		from = &t
	}
	if req.GetToDate() != "" {
		t, err := utils.ParseYMD(req.GetToDate())
		if err != nil {
			return nil, common.InvalidArgumentErrorf("invalid to_date %q", req.GetToDate())
		}
		to = &t
	}

	task := jobs.Task{
		UserID:        userID,
		InstitutionID: instID,
		Payload: jobs.ExportPayload{
			Format:         req.GetFormat(),
			From:           from,
			To:             to,
			IncludeDeleted: req.GetIncludeDeleted(),
		},
	}
	return s.enqueue(ctx, task, int(req.GetPriority()))
}

// EnqueueGeneratePasses schedules pass issuance for approved applications.
func (s *JobServer) EnqueueGeneratePasses(ctx context.Context, req *jobspb.EnqueueGeneratePassesRequest) (*jobspb.EnqueueJobResponse, error) {
	userID, err := parseUUID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	instID, err := parseOptionalUUID(req.GetInstitutionId(), "institution_id")
	if err != nil {
		return nil, err
	}
	if len(req.GetApplicationIds()) == 0 {
		return nil, common.InvalidArgumentError("application_ids is required")
	}
	appIDs, err := parseUUIDs(req.GetApplicationIds(), "application_ids")
	if err != nil {
		return nil, err
	}

	task := jobs.Task{
		UserID:        userID,
		InstitutionID: instID,
		Payload: jobs.GeneratePassesPayload{
			ApplicationIDs: appIDs,
			ValidityDays:   int(req.GetValidityDays()),
			ChunkSize:      int(req.GetChunkSize()),
		},
	}
	return s.enqueue(ctx, task, int(req.GetPriority()))
}

// EnqueueUpdateStatus schedules a bulk pass status transition, or the
// expiry sweep when expire_due is set.
func (s *JobServer) EnqueueUpdateStatus(ctx context.Context, req *jobspb.EnqueueUpdateStatusRequest) (*jobspb.EnqueueJobResponse, error) {
	userID, err := parseUUID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	passIDs, err := parseUUIDs(req.GetPassIds(), "pass_ids")
	if err != nil {
		return nil, err
	}
	if !req.GetExpireDue() && len(passIDs) == 0 {
		return nil, common.InvalidArgumentError("pass_ids is required")
	}

	task := jobs.Task{
		UserID: userID,
		Payload: jobs.UpdateStatusPayload{
			PassIDs:   passIDs,
			NewStatus: constants.PassStatus(req.GetNewStatus()),
			ExpireDue: req.GetExpireDue(),
			ChunkSize: int(req.GetChunkSize()),
		},
	}
	return s.enqueue(ctx, task, int(req.GetPriority()))
}

// EnqueueCleanup schedules the retention sweep.
func (s *JobServer) EnqueueCleanup(ctx context.Context, req *jobspb.EnqueueCleanupRequest) (*jobspb.EnqueueJobResponse, error) {
	userID, err := parseUUID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	task := jobs.Task{
		UserID: userID,
		Payload: jobs.CleanupPayload{
			RetentionDays: int(req.GetRetentionDays()),
		},
	}
	return s.enqueue(ctx, task, 0)
}

func (s *JobServer) GetJob(ctx context.Context, req *jobspb.GetJobRequest) (*jobspb.GetJobResponse, error) {
	jobID, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.store.Get(ctx, jobID)
	if err != nil {
		s.logger.Warn("get job failed", "job_id", jobID, "err", err)
		return nil, common.InternalError("get job failed")
	}
	if rec == nil {
		return nil, common.NotFoundError("job not found")
	}
	return &jobspb.GetJobResponse{Job: utils.ToPBJobRecord(rec)}, nil
}

func (s *JobServer) ListJobs(ctx context.Context, req *jobspb.ListJobsRequest) (*jobspb.ListJobsResponse, error) {
	userID, err := parseUUID(req.GetUserId(), "user_id")
	if err != nil {
		return nil, err
	}
	recs, err := s.store.ListByUser(ctx, userID, int(req.GetLimit()))
	if err != nil {
		s.logger.Warn("list jobs failed", "user_id", userID, "err", err)
		return nil, common.InternalError("list jobs failed")
	}
	out := make([]*jobspb.JobRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, utils.ToPBJobRecord(rec))
	}
	return &jobspb.ListJobsResponse{Jobs: out}, nil
}

func (s *JobServer) CancelJob(ctx context.Context, req *jobspb.CancelJobRequest) (*jobspb.CancelJobResponse, error) {
	jobID, err := parseUUID(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	rec, err := s.store.Get(ctx, jobID)
	if err != nil {
		s.logger.Warn("cancel job lookup failed", "job_id", jobID, "err", err)
		return nil, common.InternalError("cancel job failed")
	}
	if rec == nil {
		return nil, common.NotFoundError("job not found")
	}
	removed, err := s.mgr.Cancel(ctx, jobID)
	if err != nil {
		s.logger.Warn("cancel job failed", "job_id", jobID, "err", err)
		return nil, common.InternalError("cancel job failed")
	}
	return &jobspb.CancelJobResponse{Removed: removed}, nil
}

func (s *JobServer) GetQueueStats(ctx context.Context, req *jobspb.GetQueueStatsRequest) (*jobspb.GetQueueStatsResponse, error) {
	stats := make(map[string]jobs.Counts)
	if lane := req.GetLane(); lane != "" {
		c, err := s.mgr.Stats(ctx, lane)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("unknown lane %q", lane)
		}
		stats[lane] = c
	} else {
		all, err := s.mgr.StatsAll(ctx)
		if err != nil {
			s.logger.Warn("queue stats failed", "err", err)
			return nil, common.InternalError("queue stats failed")
		}
		stats = all
	}

	out := make([]*jobspb.LaneStats, 0, len(stats))
	for _, lane := range constants.Lanes {
		c, ok := stats[lane]
		if !ok {
			continue
		}
		out = append(out, &jobspb.LaneStats{
			Lane:      lane,
			Pending:   int32(c.Pending),
			Active:    int32(c.Active),
			Completed: int32(c.Completed),
			Failed:    int32(c.Failed),
		})
	}
	return &jobspb.GetQueueStatsResponse{Lanes: out}, nil
}

func (s *JobServer) enqueue(ctx context.Context, task jobs.Task, priority int) (*jobspb.EnqueueJobResponse, error) {
	jobID, err := s.mgr.Enqueue(ctx, task, jobs.EnqueueOptions{Priority: priority})
	if err != nil {
		s.logger.Warn("enqueue failed", "kind", string(task.Payload.Kind()), "err", err)
		return nil, common.InternalError("enqueue failed")
	}
	return &jobspb.EnqueueJobResponse{JobId: jobID.String()}, nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("invalid %s %q", field, s)
	}
	return id, nil
}

func parseOptionalUUID(s, field string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invalid %s %q", field, s)
	}
	return &id, nil
}

func parseUUIDs(ss []string, field string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ss))
	for _, s := range ss {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("invalid %s entry %q", field, s)
		}
		out = append(out, id)
	}
	return out, nil
}
