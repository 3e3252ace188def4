// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: registry/v1/registry.proto

package registryv1

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
	UploadService_SubmitUpload_FullMethodName = "/registry.v1.UploadService/SubmitUpload"
	UploadService_GetUpload_FullMethodName    = "/registry.v1.UploadService/GetUpload"
	UploadService_ListUploads_FullMethodName  = "/registry.v1.UploadService/ListUploads"
)

// UploadServiceClient is the client API for UploadService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// UploadService is the external submission and status surface for bulk
// elector uploads. Processing itself is asynchronous: submissions land in
// "pending" and are picked up by the upload scheduler.
type UploadServiceClient interface {
	SubmitUpload(ctx context.Context, in *SubmitUploadRequest, opts ...grpc.CallOption) (*SubmitUploadResponse, error)
	GetUpload(ctx context.Context, in *GetUploadRequest, opts ...grpc.CallOption) (*GetUploadResponse, error)
	ListUploads(ctx context.Context, in *ListUploadsRequest, opts ...grpc.CallOption) (*ListUploadsResponse, error)
}

type uploadServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUploadServiceClient(cc grpc.ClientConnInterface) UploadServiceClient {
	return &uploadServiceClient{cc}
}

func (c *uploadServiceClient) SubmitUpload(ctx context.Context, in *SubmitUploadRequest, opts ...grpc.CallOption) (*SubmitUploadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitUploadResponse)
	err := c.cc.Invoke(ctx, UploadService_SubmitUpload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *uploadServiceClient) GetUpload(ctx context.Context, in *GetUploadRequest, opts ...grpc.CallOption) (*GetUploadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetUploadResponse)
	err := c.cc.Invoke(ctx, UploadService_GetUpload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *uploadServiceClient) ListUploads(ctx context.Context, in *ListUploadsRequest, opts ...grpc.CallOption) (*ListUploadsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListUploadsResponse)
	err := c.cc.Invoke(ctx, UploadService_ListUploads_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UploadServiceServer is the server API for UploadService service.
// All implementations must embed UnimplementedUploadServiceServer
// for forward compatibility.
//
// UploadService is the external submission and status surface for bulk
// elector uploads. Processing itself is asynchronous: submissions land in
// "pending" and are picked up by the upload scheduler.
type UploadServiceServer interface {
	SubmitUpload(context.Context, *SubmitUploadRequest) (*SubmitUploadResponse, error)
	GetUpload(context.Context, *GetUploadRequest) (*GetUploadResponse, error)
	ListUploads(context.Context, *ListUploadsRequest) (*ListUploadsResponse, error)
	mustEmbedUnimplementedUploadServiceServer()
}

// UnimplementedUploadServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedUploadServiceServer struct{}

func (UnimplementedUploadServiceServer) SubmitUpload(context.Context, *SubmitUploadRequest) (*SubmitUploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitUpload not implemented")
}
func (UnimplementedUploadServiceServer) GetUpload(context.Context, *GetUploadRequest) (*GetUploadResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUpload not implemented")
}
func (UnimplementedUploadServiceServer) ListUploads(context.Context, *ListUploadsRequest) (*ListUploadsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListUploads not implemented")
}
func (UnimplementedUploadServiceServer) mustEmbedUnimplementedUploadServiceServer() {}
func (UnimplementedUploadServiceServer) testEmbeddedByValue()                       {}

// UnsafeUploadServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to UploadServiceServer will
// result in compilation errors.
type UnsafeUploadServiceServer interface {
	mustEmbedUnimplementedUploadServiceServer()
}

func RegisterUploadServiceServer(s grpc.ServiceRegistrar, srv UploadServiceServer) {
	// If the following call pancis, it indicates UnimplementedUploadServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&UploadService_ServiceDesc, srv)
}

func _UploadService_SubmitUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UploadServiceServer).SubmitUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UploadService_SubmitUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UploadServiceServer).SubmitUpload(ctx, req.(*SubmitUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UploadService_GetUpload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UploadServiceServer).GetUpload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UploadService_GetUpload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UploadServiceServer).GetUpload(ctx, req.(*GetUploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UploadService_ListUploads_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListUploadsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UploadServiceServer).ListUploads(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UploadService_ListUploads_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UploadServiceServer).ListUploads(ctx, req.(*ListUploadsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UploadService_ServiceDesc is the grpc.ServiceDesc for UploadService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var UploadService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "registry.v1.UploadService",
	HandlerType: (*UploadServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitUpload",
			Handler:    _UploadService_SubmitUpload_Handler,
		},
		{
			MethodName: "GetUpload",
			Handler:    _UploadService_GetUpload_Handler,
		},
		{
			MethodName: "ListUploads",
			Handler:    _UploadService_ListUploads_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "registry/v1/registry.proto",
}

const (
	ElectorService_ListElectors_FullMethodName = "/registry.v1.ElectorService/ListElectors"
)

// ElectorServiceClient is the client API for ElectorService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ElectorServiceClient interface {
	ListElectors(ctx context.Context, in *ListElectorsRequest, opts ...grpc.CallOption) (*ListElectorsResponse, error)
}

type electorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewElectorServiceClient(cc grpc.ClientConnInterface) ElectorServiceClient {
	return &electorServiceClient{cc}
}

func (c *electorServiceClient) ListElectors(ctx context.Context, in *ListElectorsRequest, opts ...grpc.CallOption) (*ListElectorsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListElectorsResponse)
	err := c.cc.Invoke(ctx, ElectorService_ListElectors_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ElectorServiceServer is the server API for ElectorService service.
// All implementations must embed UnimplementedElectorServiceServer
// for forward compatibility.
type ElectorServiceServer interface {
	ListElectors(context.Context, *ListElectorsRequest) (*ListElectorsResponse, error)
	mustEmbedUnimplementedElectorServiceServer()
}

// UnimplementedElectorServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedElectorServiceServer struct{}

func (UnimplementedElectorServiceServer) ListElectors(context.Context, *ListElectorsRequest) (*ListElectorsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListElectors not implemented")
}
func (UnimplementedElectorServiceServer) mustEmbedUnimplementedElectorServiceServer() {}
func (UnimplementedElectorServiceServer) testEmbeddedByValue()                        {}

// UnsafeElectorServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ElectorServiceServer will
// result in compilation errors.
type UnsafeElectorServiceServer interface {
	mustEmbedUnimplementedElectorServiceServer()
}

func RegisterElectorServiceServer(s grpc.ServiceRegistrar, srv ElectorServiceServer) {
	// If the following call pancis, it indicates UnimplementedElectorServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ElectorService_ServiceDesc, srv)
}

func _ElectorService_ListElectors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListElectorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ElectorServiceServer).ListElectors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ElectorService_ListElectors_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ElectorServiceServer).ListElectors(ctx, req.(*ListElectorsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ElectorService_ServiceDesc is the grpc.ServiceDesc for ElectorService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ElectorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "registry.v1.ElectorService",
	HandlerType: (*ElectorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListElectors",
			Handler:    _ElectorService_ListElectors_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "registry/v1/registry.proto",
}
