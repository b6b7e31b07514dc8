package coordserver

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "hexland.coord.v1.CoordService"

// Full method names, as seen by interceptors.
const (
	IndexMethod    = "/" + ServiceName + "/Index"
	CoordAtMethod  = "/" + ServiceName + "/CoordAt"
	DistanceMethod = "/" + ServiceName + "/Distance"
	AdjacentMethod = "/" + ServiceName + "/Adjacent"
)

// CoordServiceServer is the server API for CoordService. Coordinates
// travel as coordwire-encoded bytes inside the well-known wrapper types.
type CoordServiceServer interface {
	// Index takes one coordinate and returns its index.
	Index(context.Context, *wrapperspb.BytesValue) (*wrapperspb.UInt64Value, error)
	// CoordAt takes an index and returns its coordinate.
	CoordAt(context.Context, *wrapperspb.UInt64Value) (*wrapperspb.BytesValue, error)
	// Distance takes a list of exactly two coordinates.
	Distance(context.Context, *wrapperspb.BytesValue) (*wrapperspb.Int64Value, error)
	// Adjacent takes a list of coordinates and returns all their
	// neighbours, in input order.
	Adjacent(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
}

// RegisterCoordServiceServer registers srv with s.
func RegisterCoordServiceServer(s grpc.ServiceRegistrar, srv CoordServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ServiceDesc describes CoordService for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CoordServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Index", Handler: indexHandler},
		{MethodName: "CoordAt", Handler: coordAtHandler},
		{MethodName: "Distance", Handler: distanceHandler},
		{MethodName: "Adjacent", Handler: adjacentHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func indexHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordServiceServer).Index(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: IndexMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordServiceServer).Index(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func coordAtHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.UInt64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordServiceServer).CoordAt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CoordAtMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordServiceServer).CoordAt(ctx, req.(*wrapperspb.UInt64Value))
	}
	return interceptor(ctx, in, info, handler)
}

func distanceHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordServiceServer).Distance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DistanceMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordServiceServer).Distance(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func adjacentHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CoordServiceServer).Adjacent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AdjacentMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CoordServiceServer).Adjacent(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}
