// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: combat.proto

package combatv1

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
	CombatService_Session_FullMethodName            = "/feud.combat.v1.CombatService/Session"
	CombatService_ResolveDisposition_FullMethodName = "/feud.combat.v1.CombatService/ResolveDisposition"
	CombatService_CanAttack_FullMethodName          = "/feud.combat.v1.CombatService/CanAttack"
	CombatService_CombatState_FullMethodName        = "/feud.combat.v1.CombatService/CombatState"
)

// CombatServiceClient is the client API for CombatService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CombatService is the client-facing surface of the relation backend: one
// bidirectional session stream plus unary queries for tooling.
type CombatServiceClient interface {
	Session(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[ClientMessage, ServerEvent], error)
	ResolveDisposition(ctx context.Context, in *DispositionRequest, opts ...grpc.CallOption) (*DispositionResponse, error)
	CanAttack(ctx context.Context, in *AttackCheckRequest, opts ...grpc.CallOption) (*AttackCheckResponse, error)
	CombatState(ctx context.Context, in *CombatStateRequest, opts ...grpc.CallOption) (*CombatStateResponse, error)
}

type combatServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCombatServiceClient(cc grpc.ClientConnInterface) CombatServiceClient {
	return &combatServiceClient{cc}
}

func (c *combatServiceClient) Session(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[ClientMessage, ServerEvent], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &CombatService_ServiceDesc.Streams[0], CombatService_Session_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[ClientMessage, ServerEvent]{ClientStream: stream}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type CombatService_SessionClient = grpc.BidiStreamingClient[ClientMessage, ServerEvent]

func (c *combatServiceClient) ResolveDisposition(ctx context.Context, in *DispositionRequest, opts ...grpc.CallOption) (*DispositionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DispositionResponse)
	err := c.cc.Invoke(ctx, CombatService_ResolveDisposition_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) CanAttack(ctx context.Context, in *AttackCheckRequest, opts ...grpc.CallOption) (*AttackCheckResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AttackCheckResponse)
	err := c.cc.Invoke(ctx, CombatService_CanAttack_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *combatServiceClient) CombatState(ctx context.Context, in *CombatStateRequest, opts ...grpc.CallOption) (*CombatStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CombatStateResponse)
	err := c.cc.Invoke(ctx, CombatService_CombatState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CombatServiceServer is the server API for CombatService service.
// All implementations must embed UnimplementedCombatServiceServer
// for forward compatibility.
//
// CombatService is the client-facing surface of the relation backend: one
// bidirectional session stream plus unary queries for tooling.
type CombatServiceServer interface {
	Session(grpc.BidiStreamingServer[ClientMessage, ServerEvent]) error
	ResolveDisposition(context.Context, *DispositionRequest) (*DispositionResponse, error)
	CanAttack(context.Context, *AttackCheckRequest) (*AttackCheckResponse, error)
	CombatState(context.Context, *CombatStateRequest) (*CombatStateResponse, error)
	mustEmbedUnimplementedCombatServiceServer()
}

// UnimplementedCombatServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCombatServiceServer struct{}

func (UnimplementedCombatServiceServer) Session(grpc.BidiStreamingServer[ClientMessage, ServerEvent]) error {
	return status.Error(codes.Unimplemented, "method Session not implemented")
}
func (UnimplementedCombatServiceServer) ResolveDisposition(context.Context, *DispositionRequest) (*DispositionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ResolveDisposition not implemented")
}
func (UnimplementedCombatServiceServer) CanAttack(context.Context, *AttackCheckRequest) (*AttackCheckResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CanAttack not implemented")
}
func (UnimplementedCombatServiceServer) CombatState(context.Context, *CombatStateRequest) (*CombatStateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CombatState not implemented")
}
func (UnimplementedCombatServiceServer) mustEmbedUnimplementedCombatServiceServer() {}
func (UnimplementedCombatServiceServer) testEmbeddedByValue()                       {}

// UnsafeCombatServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CombatServiceServer will
// result in compilation errors.
type UnsafeCombatServiceServer interface {
	mustEmbedUnimplementedCombatServiceServer()
}

func RegisterCombatServiceServer(s grpc.ServiceRegistrar, srv CombatServiceServer) {
	// If the following call panics, it indicates UnimplementedCombatServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CombatService_ServiceDesc, srv)
}

func _CombatService_Session_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(CombatServiceServer).Session(&grpc.GenericServerStream[ClientMessage, ServerEvent]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type CombatService_SessionServer = grpc.BidiStreamingServer[ClientMessage, ServerEvent]

func _CombatService_ResolveDisposition_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DispositionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).ResolveDisposition(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_ResolveDisposition_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).ResolveDisposition(ctx, req.(*DispositionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_CanAttack_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttackCheckRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).CanAttack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_CanAttack_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).CanAttack(ctx, req.(*AttackCheckRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CombatService_CombatState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CombatStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CombatServiceServer).CombatState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CombatService_CombatState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CombatServiceServer).CombatState(ctx, req.(*CombatStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CombatService_ServiceDesc is the grpc.ServiceDesc for CombatService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CombatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "feud.combat.v1.CombatService",
	HandlerType: (*CombatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ResolveDisposition",
			Handler:    _CombatService_ResolveDisposition_Handler,
		},
		{
			MethodName: "CanAttack",
			Handler:    _CombatService_CanAttack_Handler,
		},
		{
			MethodName: "CombatState",
			Handler:    _CombatService_CombatState_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Session",
			Handler:       _CombatService_Session_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "combat.proto",
}
