// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: jobs/v1/jobs.proto

package jobspb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type JobRecord struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobType          string                 `protobuf:"bytes,2,opt,name=job_type,json=jobType,proto3" json:"job_type,omitempty"`
	Status           string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	TotalRecords     int32                  `protobuf:"varint,4,opt,name=total_records,json=totalRecords,proto3" json:"total_records,omitempty"`
	ProcessedRecords int32                  `protobuf:"varint,5,opt,name=processed_records,json=processedRecords,proto3" json:"processed_records,omitempty"`
	FailedRecords    int32                  `protobuf:"varint,6,opt,name=failed_records,json=failedRecords,proto3" json:"failed_records,omitempty"`
	UserId           string                 `protobuf:"bytes,7,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	InstitutionId    string                 `protobuf:"bytes,8,opt,name=institution_id,json=institutionId,proto3" json:"institution_id,omitempty"`
	Errors           []string               `protobuf:"bytes,9,rep,name=errors,proto3" json:"errors,omitempty"`
	ResultLocation   string                 `protobuf:"bytes,10,opt,name=result_location,json=resultLocation,proto3" json:"result_location,omitempty"`
	ResultFilename   string                 `protobuf:"bytes,11,opt,name=result_filename,json=resultFilename,proto3" json:"result_filename,omitempty"`
	CancelRequested  bool                   `protobuf:"varint,12,opt,name=cancel_requested,json=cancelRequested,proto3" json:"cancel_requested,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt        string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *JobRecord) Reset() {
	*x = JobRecord{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobRecord) ProtoMessage() {}

func (x *JobRecord) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobRecord.ProtoReflect.Descriptor instead.
func (*JobRecord) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{0}
}

func (x *JobRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *JobRecord) GetJobType() string {
	if x != nil {
		return x.JobType
	}
	return ""
}

func (x *JobRecord) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *JobRecord) GetTotalRecords() int32 {
	if x != nil {
		return x.TotalRecords
	}
	return 0
}

func (x *JobRecord) GetProcessedRecords() int32 {
	if x != nil {
		return x.ProcessedRecords
	}
	return 0
}

func (x *JobRecord) GetFailedRecords() int32 {
	if x != nil {
		return x.FailedRecords
	}
	return 0
}

func (x *JobRecord) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *JobRecord) GetInstitutionId() string {
	if x != nil {
		return x.InstitutionId
	}
	return ""
}

func (x *JobRecord) GetErrors() []string {
	if x != nil {
		return x.Errors
	}
	return nil
}

func (x *JobRecord) GetResultLocation() string {
	if x != nil {
		return x.ResultLocation
	}
	return ""
}

func (x *JobRecord) GetResultFilename() string {
	if x != nil {
		return x.ResultFilename
	}
	return ""
}

func (x *JobRecord) GetCancelRequested() bool {
	if x != nil {
		return x.CancelRequested
	}
	return false
}

func (x *JobRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *JobRecord) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type EnqueueImportRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	UserId         string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	InstitutionId  string                 `protobuf:"bytes,2,opt,name=institution_id,json=institutionId,proto3" json:"institution_id,omitempty"`
	FileRef        string                 `protobuf:"bytes,3,opt,name=file_ref,json=fileRef,proto3" json:"file_ref,omitempty"`
	SkipDuplicates bool                   `protobuf:"varint,4,opt,name=skip_duplicates,json=skipDuplicates,proto3" json:"skip_duplicates,omitempty"`
	UpdateExisting bool                   `protobuf:"varint,5,opt,name=update_existing,json=updateExisting,proto3" json:"update_existing,omitempty"`
	ChunkSize      int32                  `protobuf:"varint,6,opt,name=chunk_size,json=chunkSize,proto3" json:"chunk_size,omitempty"`
	Priority       int32                  `protobuf:"varint,7,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *EnqueueImportRequest) Reset() {
	*x = EnqueueImportRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueImportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueImportRequest) ProtoMessage() {}

func (x *EnqueueImportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueImportRequest.ProtoReflect.Descriptor instead.
func (*EnqueueImportRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{1}
}

func (x *EnqueueImportRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *EnqueueImportRequest) GetInstitutionId() string {
	if x != nil {
		return x.InstitutionId
	}
	return ""
}

func (x *EnqueueImportRequest) GetFileRef() string {
	if x != nil {
		return x.FileRef
	}
	return ""
}

func (x *EnqueueImportRequest) GetSkipDuplicates() bool {
	if x != nil {
		return x.SkipDuplicates
	}
	return false
}

func (x *EnqueueImportRequest) GetUpdateExisting() bool {
	if x != nil {
		return x.UpdateExisting
	}
	return false
}

func (x *EnqueueImportRequest) GetChunkSize() int32 {
	if x != nil {
		return x.ChunkSize
	}
	return 0
}

func (x *EnqueueImportRequest) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

type EnqueueExportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	InstitutionId string                 `protobuf:"bytes,2,opt,name=institution_id,json=institutionId,proto3" json:"institution_id,omitempty"`
	Format        string                 `protobuf:"bytes,3,opt,name=format,proto3" json:"format,omitempty"`
	// YYYY-MM-DD, empty means unbounded
	FromDate       string `protobuf:"bytes,4,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate         string `protobuf:"bytes,5,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	IncludeDeleted bool   `protobuf:"varint,6,opt,name=include_deleted,json=includeDeleted,proto3" json:"include_deleted,omitempty"`
	Priority       int32  `protobuf:"varint,7,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *EnqueueExportRequest) Reset() {
	*x = EnqueueExportRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueExportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueExportRequest) ProtoMessage() {}

func (x *EnqueueExportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueExportRequest.ProtoReflect.Descriptor instead.
func (*EnqueueExportRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{2}
}

func (x *EnqueueExportRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *EnqueueExportRequest) GetInstitutionId() string {
	if x != nil {
		return x.InstitutionId
	}
	return ""
}

func (x *EnqueueExportRequest) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *EnqueueExportRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *EnqueueExportRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *EnqueueExportRequest) GetIncludeDeleted() bool {
	if x != nil {
		return x.IncludeDeleted
	}
	return false
}

func (x *EnqueueExportRequest) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

type EnqueueGeneratePassesRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	UserId         string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	InstitutionId  string                 `protobuf:"bytes,2,opt,name=institution_id,json=institutionId,proto3" json:"institution_id,omitempty"`
	ApplicationIds []string               `protobuf:"bytes,3,rep,name=application_ids,json=applicationIds,proto3" json:"application_ids,omitempty"`
	ValidityDays   int32                  `protobuf:"varint,4,opt,name=validity_days,json=validityDays,proto3" json:"validity_days,omitempty"`
	ChunkSize      int32                  `protobuf:"varint,5,opt,name=chunk_size,json=chunkSize,proto3" json:"chunk_size,omitempty"`
	Priority       int32                  `protobuf:"varint,6,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *EnqueueGeneratePassesRequest) Reset() {
	*x = EnqueueGeneratePassesRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueGeneratePassesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueGeneratePassesRequest) ProtoMessage() {}

func (x *EnqueueGeneratePassesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueGeneratePassesRequest.ProtoReflect.Descriptor instead.
func (*EnqueueGeneratePassesRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{3}
}

func (x *EnqueueGeneratePassesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *EnqueueGeneratePassesRequest) GetInstitutionId() string {
	if x != nil {
		return x.InstitutionId
	}
	return ""
}

func (x *EnqueueGeneratePassesRequest) GetApplicationIds() []string {
	if x != nil {
		return x.ApplicationIds
	}
	return nil
}

func (x *EnqueueGeneratePassesRequest) GetValidityDays() int32 {
	if x != nil {
		return x.ValidityDays
	}
	return 0
}

func (x *EnqueueGeneratePassesRequest) GetChunkSize() int32 {
	if x != nil {
		return x.ChunkSize
	}
	return 0
}

func (x *EnqueueGeneratePassesRequest) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

type EnqueueUpdateStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	PassIds       []string               `protobuf:"bytes,2,rep,name=pass_ids,json=passIds,proto3" json:"pass_ids,omitempty"`
	NewStatus     string                 `protobuf:"bytes,3,opt,name=new_status,json=newStatus,proto3" json:"new_status,omitempty"`
	ExpireDue     bool                   `protobuf:"varint,4,opt,name=expire_due,json=expireDue,proto3" json:"expire_due,omitempty"`
	ChunkSize     int32                  `protobuf:"varint,5,opt,name=chunk_size,json=chunkSize,proto3" json:"chunk_size,omitempty"`
	Priority      int32                  `protobuf:"varint,6,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueUpdateStatusRequest) Reset() {
	*x = EnqueueUpdateStatusRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueUpdateStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueUpdateStatusRequest) ProtoMessage() {}

func (x *EnqueueUpdateStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueUpdateStatusRequest.ProtoReflect.Descriptor instead.
func (*EnqueueUpdateStatusRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{4}
}

func (x *EnqueueUpdateStatusRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *EnqueueUpdateStatusRequest) GetPassIds() []string {
	if x != nil {
		return x.PassIds
	}
	return nil
}

func (x *EnqueueUpdateStatusRequest) GetNewStatus() string {
	if x != nil {
		return x.NewStatus
	}
	return ""
}

func (x *EnqueueUpdateStatusRequest) GetExpireDue() bool {
	if x != nil {
		return x.ExpireDue
	}
	return false
}

func (x *EnqueueUpdateStatusRequest) GetChunkSize() int32 {
	if x != nil {
		return x.ChunkSize
	}
	return 0
}

func (x *EnqueueUpdateStatusRequest) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

type EnqueueCleanupRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	RetentionDays int32                  `protobuf:"varint,2,opt,name=retention_days,json=retentionDays,proto3" json:"retention_days,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueCleanupRequest) Reset() {
	*x = EnqueueCleanupRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueCleanupRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueCleanupRequest) ProtoMessage() {}

func (x *EnqueueCleanupRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueCleanupRequest.ProtoReflect.Descriptor instead.
func (*EnqueueCleanupRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{5}
}

func (x *EnqueueCleanupRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *EnqueueCleanupRequest) GetRetentionDays() int32 {
	if x != nil {
		return x.RetentionDays
	}
	return 0
}

type EnqueueJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueJobResponse) Reset() {
	*x = EnqueueJobResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueJobResponse) ProtoMessage() {}

func (x *EnqueueJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueJobResponse.ProtoReflect.Descriptor instead.
func (*EnqueueJobResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{6}
}

func (x *EnqueueJobResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{7}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *JobRecord             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{8}
}

func (x *GetJobResponse) GetJob() *JobRecord {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{9}
}

func (x *ListJobsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*JobRecord           `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{10}
}

func (x *ListJobsResponse) GetJobs() []*JobRecord {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{11}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CancelJobResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// true when the job was removed before any worker picked it up
	Removed       bool `protobuf:"varint,1,opt,name=removed,proto3" json:"removed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{12}
}

func (x *CancelJobResponse) GetRemoved() bool {
	if x != nil {
		return x.Removed
	}
	return false
}

type LaneStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lane          string                 `protobuf:"bytes,1,opt,name=lane,proto3" json:"lane,omitempty"`
	Pending       int32                  `protobuf:"varint,2,opt,name=pending,proto3" json:"pending,omitempty"`
	Active        int32                  `protobuf:"varint,3,opt,name=active,proto3" json:"active,omitempty"`
	Completed     int32                  `protobuf:"varint,4,opt,name=completed,proto3" json:"completed,omitempty"`
	Failed        int32                  `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LaneStats) Reset() {
	*x = LaneStats{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LaneStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LaneStats) ProtoMessage() {}

func (x *LaneStats) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LaneStats.ProtoReflect.Descriptor instead.
func (*LaneStats) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{13}
}

func (x *LaneStats) GetLane() string {
	if x != nil {
		return x.Lane
	}
	return ""
}

func (x *LaneStats) GetPending() int32 {
	if x != nil {
		return x.Pending
	}
	return 0
}

func (x *LaneStats) GetActive() int32 {
	if x != nil {
		return x.Active
	}
	return 0
}

func (x *LaneStats) GetCompleted() int32 {
	if x != nil {
		return x.Completed
	}
	return 0
}

func (x *LaneStats) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type GetQueueStatsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// empty requests stats for every lane
	Lane          string `protobuf:"bytes,1,opt,name=lane,proto3" json:"lane,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQueueStatsRequest) Reset() {
	*x = GetQueueStatsRequest{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQueueStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQueueStatsRequest) ProtoMessage() {}

func (x *GetQueueStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQueueStatsRequest.ProtoReflect.Descriptor instead.
func (*GetQueueStatsRequest) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{14}
}

func (x *GetQueueStatsRequest) GetLane() string {
	if x != nil {
		return x.Lane
	}
	return ""
}

type GetQueueStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Lanes         []*LaneStats           `protobuf:"bytes,1,rep,name=lanes,proto3" json:"lanes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQueueStatsResponse) Reset() {
	*x = GetQueueStatsResponse{}
	mi := &file_jobs_v1_jobs_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQueueStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQueueStatsResponse) ProtoMessage() {}

func (x *GetQueueStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobs_v1_jobs_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQueueStatsResponse.ProtoReflect.Descriptor instead.
func (*GetQueueStatsResponse) Descriptor() ([]byte, []int) {
	return file_jobs_v1_jobs_proto_rawDescGZIP(), []int{15}
}

func (x *GetQueueStatsResponse) GetLanes() []*LaneStats {
	if x != nil {
		return x.Lanes
	}
	return nil
}

var File_jobs_v1_jobs_proto protoreflect.FileDescriptor

const file_jobs_v1_jobs_proto_rawDesc = "" +
	"\n" +
	"\x12jobs/v1/jobs.proto\x12\x12campuspass.jobs.v1\"\xda\x03\n" +
	"\tJobRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bjob_type\x18\x02 \x01(\tR\ajobType\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12#\n" +
	"\rtotal_records\x18\x04 \x01(\x05R\ftotalRecords\x12+\n" +
	"\x11processed_records\x18\x05 \x01(\x05R\x10processedRecords\x12%\n" +
	"\x0efailed_records\x18\x06 \x01(\x05R\rfailedRecords\x12\x17\n" +
	"\auser_id\x18\a \x01(\tR\x06userId\x12%\n" +
	"\x0einstitution_id\x18\b \x01(\tR\rinstitutionId\x12\x16\n" +
	"\x06errors\x18\t \x03(\tR\x06errors\x12'\n" +
	"\x0fresult_location\x18\n" +
	" \x01(\tR\x0eresultLocation\x12'\n" +
	"\x0fresult_filename\x18\v \x01(\tR\x0eresultFilename\x12)\n" +
	"\x10cancel_requested\x18\f \x01(\bR\x0fcancelRequested\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\"\xfe\x01\n" +
	"\x14EnqueueImportRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12%\n" +
	"\x0einstitution_id\x18\x02 \x01(\tR\rinstitutionId\x12\x19\n" +
	"\bfile_ref\x18\x03 \x01(\tR\afileRef\x12'\n" +
	"\x0fskip_duplicates\x18\x04 \x01(\bR\x0eskipDuplicates\x12'\n" +
	"\x0fupdate_existing\x18\x05 \x01(\bR\x0eupdateExisting\x12\x1d\n" +
	"\n" +
	"chunk_size\x18\x06 \x01(\x05R\tchunkSize\x12\x1a\n" +
	"\bpriority\x18\a \x01(\x05R\bpriority\"\xe9\x01\n" +
	"\x14EnqueueExportRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12%\n" +
	"\x0einstitution_id\x18\x02 \x01(\tR\rinstitutionId\x12\x16\n" +
	"\x06format\x18\x03 \x01(\tR\x06format\x12\x1b\n" +
	"\tfrom_date\x18\x04 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x05 \x01(\tR\x06toDate\x12'\n" +
	"\x0finclude_deleted\x18\x06 \x01(\bR\x0eincludeDeleted\x12\x1a\n" +
	"\bpriority\x18\a \x01(\x05R\bpriority\"\xe7\x01\n" +
	"\x1cEnqueueGeneratePassesRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12%\n" +
	"\x0einstitution_id\x18\x02 \x01(\tR\rinstitutionId\x12'\n" +
	"\x0fapplication_ids\x18\x03 \x03(\tR\x0eapplicationIds\x12#\n" +
	"\rvalidity_days\x18\x04 \x01(\x05R\fvalidityDays\x12\x1d\n" +
	"\n" +
	"chunk_size\x18\x05 \x01(\x05R\tchunkSize\x12\x1a\n" +
	"\bpriority\x18\x06 \x01(\x05R\bpriority\"\xc9\x01\n" +
	"\x1aEnqueueUpdateStatusRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x19\n" +
	"\bpass_ids\x18\x02 \x03(\tR\apassIds\x12\x1d\n" +
	"\n" +
	"new_status\x18\x03 \x01(\tR\tnewStatus\x12\x1d\n" +
	"\n" +
	"expire_due\x18\x04 \x01(\bR\texpireDue\x12\x1d\n" +
	"\n" +
	"chunk_size\x18\x05 \x01(\x05R\tchunkSize\x12\x1a\n" +
	"\bpriority\x18\x06 \x01(\x05R\bpriority\"W\n" +
	"\x15EnqueueCleanupRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12%\n" +
	"\x0eretention_days\x18\x02 \x01(\x05R\rretentionDays\"+\n" +
	"\x12EnqueueJobResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"A\n" +
	"\x0eGetJobResponse\x12/\n" +
	"\x03job\x18\x01 \x01(\v2\x1d.campuspass.jobs.v1.JobRecordR\x03job\"@\n" +
	"\x0fListJobsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"E\n" +
	"\x10ListJobsResponse\x121\n" +
	"\x04jobs\x18\x01 \x03(\v2\x1d.campuspass.jobs.v1.JobRecordR\x04jobs\")\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"-\n" +
	"\x11CancelJobResponse\x12\x18\n" +
	"\aremoved\x18\x01 \x01(\bR\aremoved\"\x87\x01\n" +
	"\tLaneStats\x12\x12\n" +
	"\x04lane\x18\x01 \x01(\tR\x04lane\x12\x18\n" +
	"\apending\x18\x02 \x01(\x05R\apending\x12\x16\n" +
	"\x06active\x18\x03 \x01(\x05R\x06active\x12\x1c\n" +
	"\tcompleted\x18\x04 \x01(\x05R\tcompleted\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\x05R\x06failed\"*\n" +
	"\x14GetQueueStatsRequest\x12\x12\n" +
	"\x04lane\x18\x01 \x01(\tR\x04lane\"L\n" +
	"\x15GetQueueStatsResponse\x123\n" +
	"\x05lanes\x18\x01 \x03(\v2\x1d.campuspass.jobs.v1.LaneStatsR\x05lanes2\x82\a\n" +
	"\vJobsService\x12a\n" +
	"\rEnqueueImport\x12(.campuspass.jobs.v1.EnqueueImportRequest\x1a&.campuspass.jobs.v1.EnqueueJobResponse\x12a\n" +
	"\rEnqueueExport\x12(.campuspass.jobs.v1.EnqueueExportRequest\x1a&.campuspass.jobs.v1.EnqueueJobResponse\x12q\n" +
	"\x15EnqueueGeneratePasses\x120.campuspass.jobs.v1.EnqueueGeneratePassesRequest\x1a&.campuspass.jobs.v1.EnqueueJobResponse\x12m\n" +
	"\x13EnqueueUpdateStatus\x12..campuspass.jobs.v1.EnqueueUpdateStatusRequest\x1a&.campuspass.jobs.v1.EnqueueJobResponse\x12c\n" +
	"\x0eEnqueueCleanup\x12).campuspass.jobs.v1.EnqueueCleanupRequest\x1a&.campuspass.jobs.v1.EnqueueJobResponse\x12O\n" +
	"\x06GetJob\x12!.campuspass.jobs.v1.GetJobRequest\x1a\".campuspass.jobs.v1.GetJobResponse\x12U\n" +
	"\bListJobs\x12#.campuspass.jobs.v1.ListJobsRequest\x1a$.campuspass.jobs.v1.ListJobsResponse\x12X\n" +
	"\tCancelJob\x12$.campuspass.jobs.v1.CancelJobRequest\x1a%.campuspass.jobs.v1.CancelJobResponse\x12d\n" +
	"\rGetQueueStats\x12(.campuspass.jobs.v1.GetQueueStatsRequest\x1a).campuspass.jobs.v1.GetQueueStatsResponseB;Z9github.com/campuspass/campuspass/gen/proto/jobs/v1;jobspbb\x06proto3"

var (
	file_jobs_v1_jobs_proto_rawDescOnce sync.Once
	file_jobs_v1_jobs_proto_rawDescData []byte
)

func file_jobs_v1_jobs_proto_rawDescGZIP() []byte {
	file_jobs_v1_jobs_proto_rawDescOnce.Do(func() {
		file_jobs_v1_jobs_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_jobs_v1_jobs_proto_rawDesc), len(file_jobs_v1_jobs_proto_rawDesc)))
	})
	return file_jobs_v1_jobs_proto_rawDescData
}

var file_jobs_v1_jobs_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_jobs_v1_jobs_proto_goTypes = []any{
	(*JobRecord)(nil),                    // 0: campuspass.jobs.v1.JobRecord
	(*EnqueueImportRequest)(nil),         // 1: campuspass.jobs.v1.EnqueueImportRequest
	(*EnqueueExportRequest)(nil),         // 2: campuspass.jobs.v1.EnqueueExportRequest
	(*EnqueueGeneratePassesRequest)(nil), // 3: campuspass.jobs.v1.EnqueueGeneratePassesRequest
	(*EnqueueUpdateStatusRequest)(nil),   // 4: campuspass.jobs.v1.EnqueueUpdateStatusRequest
	(*EnqueueCleanupRequest)(nil),        // 5: campuspass.jobs.v1.EnqueueCleanupRequest
	(*EnqueueJobResponse)(nil),           // 6: campuspass.jobs.v1.EnqueueJobResponse
	(*GetJobRequest)(nil),                // 7: campuspass.jobs.v1.GetJobRequest
	(*GetJobResponse)(nil),               // 8: campuspass.jobs.v1.GetJobResponse
	(*ListJobsRequest)(nil),              // 9: campuspass.jobs.v1.ListJobsRequest
	(*ListJobsResponse)(nil),             // 10: campuspass.jobs.v1.ListJobsResponse
	(*CancelJobRequest)(nil),             // 11: campuspass.jobs.v1.CancelJobRequest
	(*CancelJobResponse)(nil),            // 12: campuspass.jobs.v1.CancelJobResponse
	(*LaneStats)(nil),                    // 13: campuspass.jobs.v1.LaneStats
	(*GetQueueStatsRequest)(nil),         // 14: campuspass.jobs.v1.GetQueueStatsRequest
	(*GetQueueStatsResponse)(nil),        // 15: campuspass.jobs.v1.GetQueueStatsResponse
}
var file_jobs_v1_jobs_proto_depIdxs = []int32{
	0,  // 0: campuspass.jobs.v1.GetJobResponse.job:type_name -> campuspass.jobs.v1.JobRecord
	0,  // 1: campuspass.jobs.v1.ListJobsResponse.jobs:type_name -> campuspass.jobs.v1.JobRecord
	13, // 2: campuspass.jobs.v1.GetQueueStatsResponse.lanes:type_name -> campuspass.jobs.v1.LaneStats
	1,  // 3: campuspass.jobs.v1.JobsService.EnqueueImport:input_type -> campuspass.jobs.v1.EnqueueImportRequest
	2,  // 4: campuspass.jobs.v1.JobsService.EnqueueExport:input_type -> campuspass.jobs.v1.EnqueueExportRequest
	3,  // 5: campuspass.jobs.v1.JobsService.EnqueueGeneratePasses:input_type -> campuspass.jobs.v1.EnqueueGeneratePassesRequest
	4,  // 6: campuspass.jobs.v1.JobsService.EnqueueUpdateStatus:input_type -> campuspass.jobs.v1.EnqueueUpdateStatusRequest
	5,  // 7: campuspass.jobs.v1.JobsService.EnqueueCleanup:input_type -> campuspass.jobs.v1.EnqueueCleanupRequest
	7,  // 8: campuspass.jobs.v1.JobsService.GetJob:input_type -> campuspass.jobs.v1.GetJobRequest
	9,  // 9: campuspass.jobs.v1.JobsService.ListJobs:input_type -> campuspass.jobs.v1.ListJobsRequest
	11, // 10: campuspass.jobs.v1.JobsService.CancelJob:input_type -> campuspass.jobs.v1.CancelJobRequest
	14, // 11: campuspass.jobs.v1.JobsService.GetQueueStats:input_type -> campuspass.jobs.v1.GetQueueStatsRequest
	6,  // 12: campuspass.jobs.v1.JobsService.EnqueueImport:output_type -> campuspass.jobs.v1.EnqueueJobResponse
	6,  // 13: campuspass.jobs.v1.JobsService.EnqueueExport:output_type -> campuspass.jobs.v1.EnqueueJobResponse
	6,  // 14: campuspass.jobs.v1.JobsService.EnqueueGeneratePasses:output_type -> campuspass.jobs.v1.EnqueueJobResponse
	6,  // 15: campuspass.jobs.v1.JobsService.EnqueueUpdateStatus:output_type -> campuspass.jobs.v1.EnqueueJobResponse
	6,  // 16: campuspass.jobs.v1.JobsService.EnqueueCleanup:output_type -> campuspass.jobs.v1.EnqueueJobResponse
	8,  // 17: campuspass.jobs.v1.JobsService.GetJob:output_type -> campuspass.jobs.v1.GetJobResponse
	10, // 18: campuspass.jobs.v1.JobsService.ListJobs:output_type -> campuspass.jobs.v1.ListJobsResponse
	12, // 19: campuspass.jobs.v1.JobsService.CancelJob:output_type -> campuspass.jobs.v1.CancelJobResponse
	15, // 20: campuspass.jobs.v1.JobsService.GetQueueStats:output_type -> campuspass.jobs.v1.GetQueueStatsResponse
	12, // [12:21] is the sub-list for method output_type
	3,  // [3:12] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_jobs_v1_jobs_proto_init() }
func file_jobs_v1_jobs_proto_init() {
	if File_jobs_v1_jobs_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_jobs_v1_jobs_proto_rawDesc), len(file_jobs_v1_jobs_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_jobs_v1_jobs_proto_goTypes,
		DependencyIndexes: file_jobs_v1_jobs_proto_depIdxs,
		MessageInfos:      file_jobs_v1_jobs_proto_msgTypes,
	}.Build()
	File_jobs_v1_jobs_proto = out.File
	file_jobs_v1_jobs_proto_goTypes = nil
	file_jobs_v1_jobs_proto_depIdxs = nil
}
