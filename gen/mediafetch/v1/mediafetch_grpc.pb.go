// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: mediafetch/v1/mediafetch.proto

package mediafetchv1

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
	MediaFetchService_SubmitJob_FullMethodName        = "/mediafetch.v1.MediaFetchService/SubmitJob"
	MediaFetchService_GetJobStatus_FullMethodName     = "/mediafetch.v1.MediaFetchService/GetJobStatus"
	MediaFetchService_GetJobResult_FullMethodName     = "/mediafetch.v1.MediaFetchService/GetJobResult"
	MediaFetchService_CancelJob_FullMethodName        = "/mediafetch.v1.MediaFetchService/CancelJob"
	MediaFetchService_WatchJob_FullMethodName         = "/mediafetch.v1.MediaFetchService/WatchJob"
	MediaFetchService_ListFormats_FullMethodName      = "/mediafetch.v1.MediaFetchService/ListFormats"
	MediaFetchService_ExportJobs_FullMethodName       = "/mediafetch.v1.MediaFetchService/ExportJobs"
	MediaFetchService_AdminGenerateKey_FullMethodName = "/mediafetch.v1.MediaFetchService/AdminGenerateKey"
	MediaFetchService_AdminRevokeKey_FullMethodName   = "/mediafetch.v1.MediaFetchService/AdminRevokeKey"
)

// MediaFetchServiceClient is the client API for MediaFetchService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MediaFetchService is the thin boundary over the download-and-merge
// pipeline. Every call except the admin operations carries an API key in
// the "x-api-key" metadata entry.
type MediaFetchServiceClient interface {
	SubmitJob(ctx context.Context, in *SubmitJobRequest, opts ...grpc.CallOption) (*SubmitJobResponse, error)
	GetJobStatus(ctx context.Context, in *GetJobStatusRequest, opts ...grpc.CallOption) (*GetJobStatusResponse, error)
	GetJobResult(ctx context.Context, in *GetJobResultRequest, opts ...grpc.CallOption) (*GetJobResultResponse, error)
	CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error)
	WatchJob(ctx context.Context, in *WatchJobRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GetJobStatusResponse], error)
	ListFormats(ctx context.Context, in *ListFormatsRequest, opts ...grpc.CallOption) (*ListFormatsResponse, error)
	ExportJobs(ctx context.Context, in *ExportJobsRequest, opts ...grpc.CallOption) (*ExportJobsResponse, error)
	// Admin operations require the master key in "x-master-key" metadata.
	AdminGenerateKey(ctx context.Context, in *AdminGenerateKeyRequest, opts ...grpc.CallOption) (*AdminGenerateKeyResponse, error)
	AdminRevokeKey(ctx context.Context, in *AdminRevokeKeyRequest, opts ...grpc.CallOption) (*AdminRevokeKeyResponse, error)
}

type mediaFetchServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMediaFetchServiceClient(cc grpc.ClientConnInterface) MediaFetchServiceClient {
	return &mediaFetchServiceClient{cc}
}

func (c *mediaFetchServiceClient) SubmitJob(ctx context.Context, in *SubmitJobRequest, opts ...grpc.CallOption) (*SubmitJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitJobResponse)
	err := c.cc.Invoke(ctx, MediaFetchService_SubmitJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaFetchServiceClient) GetJobStatus(ctx context.Context, in *GetJobStatusRequest, opts ...grpc.CallOption) (*GetJobStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobStatusResponse)
	err := c.cc.Invoke(ctx, MediaFetchService_GetJobStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaFetchServiceClient) GetJobResult(ctx context.Context, in *GetJobResultRequest, opts ...grpc.CallOption) (*GetJobResultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResultResponse)
	err := c.cc.Invoke(ctx, MediaFetchService_GetJobResult_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaFetchServiceClient) CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelJobResponse)
	err := c.cc.Invoke(ctx, MediaFetchService_CancelJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaFetchServiceClient) WatchJob(ctx context.Context, in *WatchJobRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GetJobStatusResponse], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &MediaFetchService_ServiceDesc.Streams[0], MediaFetchService_WatchJob_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchJobRequest, GetJobStatusResponse]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type MediaFetchService_WatchJobClient = grpc.ServerStreamingClient[GetJobStatusResponse]

func (c *mediaFetchServiceClient) ListFormats(ctx context.Context, in *ListFormatsRequest, opts ...grpc.CallOption) (*ListFormatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFormatsResponse)
	err := c.cc.Invoke(ctx, MediaFetchService_ListFormats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaFetchServiceClient) ExportJobs(ctx context.Context, in *ExportJobsRequest, opts ...grpc.CallOption) (*ExportJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportJobsResponse)
	err := c.cc.Invoke(ctx, MediaFetchService_ExportJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaFetchServiceClient) AdminGenerateKey(ctx context.Context, in *AdminGenerateKeyRequest, opts ...grpc.CallOption) (*AdminGenerateKeyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminGenerateKeyResponse)
	err := c.cc.Invoke(ctx, MediaFetchService_AdminGenerateKey_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mediaFetchServiceClient) AdminRevokeKey(ctx context.Context, in *AdminRevokeKeyRequest, opts ...grpc.CallOption) (*AdminRevokeKeyResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdminRevokeKeyResponse)
	err := c.cc.Invoke(ctx, MediaFetchService_AdminRevokeKey_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MediaFetchServiceServer is the server API for MediaFetchService service.
// All implementations must embed UnimplementedMediaFetchServiceServer
// for forward compatibility.
//
// MediaFetchService is the thin boundary over the download-and-merge
// pipeline. Every call except the admin operations carries an API key in
// the "x-api-key" metadata entry.
type MediaFetchServiceServer interface {
	SubmitJob(context.Context, *SubmitJobRequest) (*SubmitJobResponse, error)
	GetJobStatus(context.Context, *GetJobStatusRequest) (*GetJobStatusResponse, error)
	GetJobResult(context.Context, *GetJobResultRequest) (*GetJobResultResponse, error)
	CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error)
	WatchJob(*WatchJobRequest, grpc.ServerStreamingServer[GetJobStatusResponse]) error
	ListFormats(context.Context, *ListFormatsRequest) (*ListFormatsResponse, error)
	ExportJobs(context.Context, *ExportJobsRequest) (*ExportJobsResponse, error)
	// Admin operations require the master key in "x-master-key" metadata.
	AdminGenerateKey(context.Context, *AdminGenerateKeyRequest) (*AdminGenerateKeyResponse, error)
	AdminRevokeKey(context.Context, *AdminRevokeKeyRequest) (*AdminRevokeKeyResponse, error)
	mustEmbedUnimplementedMediaFetchServiceServer()
}

// UnimplementedMediaFetchServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMediaFetchServiceServer struct{}

func (UnimplementedMediaFetchServiceServer) SubmitJob(context.Context, *SubmitJobRequest) (*SubmitJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitJob not implemented")
}
func (UnimplementedMediaFetchServiceServer) GetJobStatus(context.Context, *GetJobStatusRequest) (*GetJobStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetJobStatus not implemented")
}
func (UnimplementedMediaFetchServiceServer) GetJobResult(context.Context, *GetJobResultRequest) (*GetJobResultResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetJobResult not implemented")
}
func (UnimplementedMediaFetchServiceServer) CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelJob not implemented")
}
func (UnimplementedMediaFetchServiceServer) WatchJob(*WatchJobRequest, grpc.ServerStreamingServer[GetJobStatusResponse]) error {
	return status.Error(codes.Unimplemented, "method WatchJob not implemented")
}
func (UnimplementedMediaFetchServiceServer) ListFormats(context.Context, *ListFormatsRequest) (*ListFormatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFormats not implemented")
}
func (UnimplementedMediaFetchServiceServer) ExportJobs(context.Context, *ExportJobsRequest) (*ExportJobsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportJobs not implemented")
}
func (UnimplementedMediaFetchServiceServer) AdminGenerateKey(context.Context, *AdminGenerateKeyRequest) (*AdminGenerateKeyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AdminGenerateKey not implemented")
}
func (UnimplementedMediaFetchServiceServer) AdminRevokeKey(context.Context, *AdminRevokeKeyRequest) (*AdminRevokeKeyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AdminRevokeKey not implemented")
}
func (UnimplementedMediaFetchServiceServer) mustEmbedUnimplementedMediaFetchServiceServer() {}
func (UnimplementedMediaFetchServiceServer) testEmbeddedByValue()                           {}

// UnsafeMediaFetchServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MediaFetchServiceServer will
// result in compilation errors.
type UnsafeMediaFetchServiceServer interface {
	mustEmbedUnimplementedMediaFetchServiceServer()
}

func RegisterMediaFetchServiceServer(s grpc.ServiceRegistrar, srv MediaFetchServiceServer) {
	// If the following call panics, it indicates UnimplementedMediaFetchServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MediaFetchService_ServiceDesc, srv)
}

func _MediaFetchService_SubmitJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaFetchServiceServer).SubmitJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MediaFetchService_SubmitJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaFetchServiceServer).SubmitJob(ctx, req.(*SubmitJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaFetchService_GetJobStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaFetchServiceServer).GetJobStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MediaFetchService_GetJobStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaFetchServiceServer).GetJobStatus(ctx, req.(*GetJobStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaFetchService_GetJobResult_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobResultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaFetchServiceServer).GetJobResult(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MediaFetchService_GetJobResult_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaFetchServiceServer).GetJobResult(ctx, req.(*GetJobResultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaFetchService_CancelJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaFetchServiceServer).CancelJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MediaFetchService_CancelJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaFetchServiceServer).CancelJob(ctx, req.(*CancelJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaFetchService_WatchJob_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WatchJobRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(MediaFetchServiceServer).WatchJob(m, &grpc.GenericServerStream[WatchJobRequest, GetJobStatusResponse]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type MediaFetchService_WatchJobServer = grpc.ServerStreamingServer[GetJobStatusResponse]

func _MediaFetchService_ListFormats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFormatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaFetchServiceServer).ListFormats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MediaFetchService_ListFormats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaFetchServiceServer).ListFormats(ctx, req.(*ListFormatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaFetchService_ExportJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaFetchServiceServer).ExportJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MediaFetchService_ExportJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaFetchServiceServer).ExportJobs(ctx, req.(*ExportJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaFetchService_AdminGenerateKey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdminGenerateKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaFetchServiceServer).AdminGenerateKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MediaFetchService_AdminGenerateKey_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaFetchServiceServer).AdminGenerateKey(ctx, req.(*AdminGenerateKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaFetchService_AdminRevokeKey_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdminRevokeKeyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaFetchServiceServer).AdminRevokeKey(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MediaFetchService_AdminRevokeKey_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaFetchServiceServer).AdminRevokeKey(ctx, req.(*AdminRevokeKeyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MediaFetchService_ServiceDesc is the grpc.ServiceDesc for MediaFetchService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MediaFetchService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "mediafetch.v1.MediaFetchService",
	HandlerType: (*MediaFetchServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitJob",
			Handler:    _MediaFetchService_SubmitJob_Handler,
		},
		{
			MethodName: "GetJobStatus",
			Handler:    _MediaFetchService_GetJobStatus_Handler,
		},
		{
			MethodName: "GetJobResult",
			Handler:    _MediaFetchService_GetJobResult_Handler,
		},
		{
			MethodName: "CancelJob",
			Handler:    _MediaFetchService_CancelJob_Handler,
		},
		{
			MethodName: "ListFormats",
			Handler:    _MediaFetchService_ListFormats_Handler,
		},
		{
			MethodName: "ExportJobs",
			Handler:    _MediaFetchService_ExportJobs_Handler,
		},
		{
			MethodName: "AdminGenerateKey",
			Handler:    _MediaFetchService_AdminGenerateKey_Handler,
		},
		{
			MethodName: "AdminRevokeKey",
			Handler:    _MediaFetchService_AdminRevokeKey_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchJob",
			Handler:       _MediaFetchService_WatchJob_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "mediafetch/v1/mediafetch.proto",
}
