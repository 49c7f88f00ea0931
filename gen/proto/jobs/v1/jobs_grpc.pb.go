// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: jobs/v1/jobs.proto

package jobspb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	JobsService_EnqueueImport_FullMethodName         = "/campuspass.jobs.v1.JobsService/EnqueueImport"
	JobsService_EnqueueExport_FullMethodName         = "/campuspass.jobs.v1.JobsService/EnqueueExport"
	JobsService_EnqueueGeneratePasses_FullMethodName = "/campuspass.jobs.v1.JobsService/EnqueueGeneratePasses"
	JobsService_EnqueueUpdateStatus_FullMethodName   = "/campuspass.jobs.v1.JobsService/EnqueueUpdateStatus"
	JobsService_EnqueueCleanup_FullMethodName        = "/campuspass.jobs.v1.JobsService/EnqueueCleanup"
	JobsService_GetJob_FullMethodName                = "/campuspass.jobs.v1.JobsService/GetJob"
	JobsService_ListJobs_FullMethodName              = "/campuspass.jobs.v1.JobsService/ListJobs"
	JobsService_CancelJob_FullMethodName             = "/campuspass.jobs.v1.JobsService/CancelJob"
	JobsService_GetQueueStats_FullMethodName         = "/campuspass.jobs.v1.JobsService/GetQueueStats"
)

// JobsServiceClient is the client API for JobsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// JobsService enqueues background jobs and exposes their lifecycle.
type JobsServiceClient interface {
	EnqueueImport(ctx context.Context, in *EnqueueImportRequest, opts ...grpc.CallOption) (*EnqueueJobResponse, error)
	EnqueueExport(ctx context.Context, in *EnqueueExportRequest, opts ...grpc.CallOption) (*EnqueueJobResponse, error)
	EnqueueGeneratePasses(ctx context.Context, in *EnqueueGeneratePassesRequest, opts ...grpc.CallOption) (*EnqueueJobResponse, error)
	EnqueueUpdateStatus(ctx context.Context, in *EnqueueUpdateStatusRequest, opts ...grpc.CallOption) (*EnqueueJobResponse, error)
	EnqueueCleanup(ctx context.Context, in *EnqueueCleanupRequest, opts ...grpc.CallOption) (*EnqueueJobResponse, error)
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error)
	CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error)
	GetQueueStats(ctx context.Context, in *GetQueueStatsRequest, opts ...grpc.CallOption) (*GetQueueStatsResponse, error)
}

type jobsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewJobsServiceClient(cc grpc.ClientConnInterface) JobsServiceClient {
	return &jobsServiceClient{cc}
}

func (c *jobsServiceClient) EnqueueImport(ctx context.Context, in *EnqueueImportRequest, opts ...grpc.CallOption) (*EnqueueJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnqueueJobResponse)
	err := c.cc.Invoke(ctx, JobsService_EnqueueImport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobsServiceClient) EnqueueExport(ctx context.Context, in *EnqueueExportRequest, opts ...grpc.CallOption) (*EnqueueJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnqueueJobResponse)
	err := c.cc.Invoke(ctx, JobsService_EnqueueExport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobsServiceClient) EnqueueGeneratePasses(ctx context.Context, in *EnqueueGeneratePassesRequest, opts ...grpc.CallOption) (*EnqueueJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnqueueJobResponse)
	err := c.cc.Invoke(ctx, JobsService_EnqueueGeneratePasses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobsServiceClient) EnqueueUpdateStatus(ctx context.Context, in *EnqueueUpdateStatusRequest, opts ...grpc.CallOption) (*EnqueueJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnqueueJobResponse)
	err := c.cc.Invoke(ctx, JobsService_EnqueueUpdateStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobsServiceClient) EnqueueCleanup(ctx context.Context, in *EnqueueCleanupRequest, opts ...grpc.CallOption) (*EnqueueJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnqueueJobResponse)
	err := c.cc.Invoke(ctx, JobsService_EnqueueCleanup_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobsServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResponse)
	err := c.cc.Invoke(ctx, JobsService_GetJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobsServiceClient) ListJobs(ctx context.Context, in *ListJobsRequest, opts ...grpc.CallOption) (*ListJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListJobsResponse)
	err := c.cc.Invoke(ctx, JobsService_ListJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobsServiceClient) CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelJobResponse)
	err := c.cc.Invoke(ctx, JobsService_CancelJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *jobsServiceClient) GetQueueStats(ctx context.Context, in *GetQueueStatsRequest, opts ...grpc.CallOption) (*GetQueueStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetQueueStatsResponse)
	err := c.cc.Invoke(ctx, JobsService_GetQueueStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// JobsServiceServer is the server API for JobsService service.
// All implementations must embed UnimplementedJobsServiceServer
// for forward compatibility.
//
// JobsService enqueues background jobs and exposes their lifecycle.
type JobsServiceServer interface {
	EnqueueImport(context.Context, *EnqueueImportRequest) (*EnqueueJobResponse, error)
	EnqueueExport(context.Context, *EnqueueExportRequest) (*EnqueueJobResponse, error)
	EnqueueGeneratePasses(context.Context, *EnqueueGeneratePassesRequest) (*EnqueueJobResponse, error)
	EnqueueUpdateStatus(context.Context, *EnqueueUpdateStatusRequest) (*EnqueueJobResponse, error)
	EnqueueCleanup(context.Context, *EnqueueCleanupRequest) (*EnqueueJobResponse, error)
	GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error)
	ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error)
	CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error)
	GetQueueStats(context.Context, *GetQueueStatsRequest) (*GetQueueStatsResponse, error)
	mustEmbedUnimplementedJobsServiceServer()
}

// UnimplementedJobsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedJobsServiceServer struct{}

func (UnimplementedJobsServiceServer) EnqueueImport(context.Context, *EnqueueImportRequest) (*EnqueueJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnqueueImport not implemented")
}
func (UnimplementedJobsServiceServer) EnqueueExport(context.Context, *EnqueueExportRequest) (*EnqueueJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnqueueExport not implemented")
}
func (UnimplementedJobsServiceServer) EnqueueGeneratePasses(context.Context, *EnqueueGeneratePassesRequest) (*EnqueueJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnqueueGeneratePasses not implemented")
}
func (UnimplementedJobsServiceServer) EnqueueUpdateStatus(context.Context, *EnqueueUpdateStatusRequest) (*EnqueueJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnqueueUpdateStatus not implemented")
}
func (UnimplementedJobsServiceServer) EnqueueCleanup(context.Context, *EnqueueCleanupRequest) (*EnqueueJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnqueueCleanup not implemented")
}
func (UnimplementedJobsServiceServer) GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedJobsServiceServer) ListJobs(context.Context, *ListJobsRequest) (*ListJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListJobs not implemented")
}
func (UnimplementedJobsServiceServer) CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelJob not implemented")
}
func (UnimplementedJobsServiceServer) GetQueueStats(context.Context, *GetQueueStatsRequest) (*GetQueueStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetQueueStats not implemented")
}
func (UnimplementedJobsServiceServer) mustEmbedUnimplementedJobsServiceServer() {}
func (UnimplementedJobsServiceServer) testEmbeddedByValue()                     {}

// UnsafeJobsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to JobsServiceServer will
// result in compilation errors.
type UnsafeJobsServiceServer interface {
	mustEmbedUnimplementedJobsServiceServer()
}

func RegisterJobsServiceServer(s grpc.ServiceRegistrar, srv JobsServiceServer) {
	// If the following call pancis, it indicates UnimplementedJobsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&JobsService_ServiceDesc, srv)
}

func _JobsService_EnqueueImport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnqueueImportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobsServiceServer).EnqueueImport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JobsService_EnqueueImport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobsServiceServer).EnqueueImport(ctx, req.(*EnqueueImportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobsService_EnqueueExport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnqueueExportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobsServiceServer).EnqueueExport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JobsService_EnqueueExport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobsServiceServer).EnqueueExport(ctx, req.(*EnqueueExportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobsService_EnqueueGeneratePasses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnqueueGeneratePassesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobsServiceServer).EnqueueGeneratePasses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JobsService_EnqueueGeneratePasses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobsServiceServer).EnqueueGeneratePasses(ctx, req.(*EnqueueGeneratePassesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobsService_EnqueueUpdateStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnqueueUpdateStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobsServiceServer).EnqueueUpdateStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JobsService_EnqueueUpdateStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobsServiceServer).EnqueueUpdateStatus(ctx, req.(*EnqueueUpdateStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobsService_EnqueueCleanup_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnqueueCleanupRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobsServiceServer).EnqueueCleanup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JobsService_EnqueueCleanup_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobsServiceServer).EnqueueCleanup(ctx, req.(*EnqueueCleanupRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobsService_GetJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobsServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JobsService_GetJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobsServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobsService_ListJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobsServiceServer).ListJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JobsService_ListJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobsServiceServer).ListJobs(ctx, req.(*ListJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobsService_CancelJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobsServiceServer).CancelJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JobsService_CancelJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobsServiceServer).CancelJob(ctx, req.(*CancelJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _JobsService_GetQueueStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetQueueStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(JobsServiceServer).GetQueueStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: JobsService_GetQueueStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(JobsServiceServer).GetQueueStats(ctx, req.(*GetQueueStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// JobsService_ServiceDesc is the grpc.ServiceDesc for JobsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var JobsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "campuspass.jobs.v1.JobsService",
	HandlerType: (*JobsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EnqueueImport",
			Handler:    _JobsService_EnqueueImport_Handler,
		},
		{
			MethodName: "EnqueueExport",
			Handler:    _JobsService_EnqueueExport_Handler,
		},
		{
			MethodName: "EnqueueGeneratePasses",
			Handler:    _JobsService_EnqueueGeneratePasses_Handler,
		},
		{
			MethodName: "EnqueueUpdateStatus",
			Handler:    _JobsService_EnqueueUpdateStatus_Handler,
		},
		{
			MethodName: "EnqueueCleanup",
			Handler:    _JobsService_EnqueueCleanup_Handler,
		},
		{
			MethodName: "GetJob",
			Handler:    _JobsService_GetJob_Handler,
		},
		{
			MethodName: "ListJobs",
			Handler:    _JobsService_ListJobs_Handler,
		},
		{
			MethodName: "CancelJob",
			Handler:    _JobsService_CancelJob_Handler,
		},
		{
			MethodName: "GetQueueStats",
			Handler:    _JobsService_GetQueueStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "jobs/v1/jobs.proto",
}
