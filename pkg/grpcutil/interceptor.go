package grpcutil

import (
	"context"

	"google.golang.org/grpc"
	grpcmd "google.golang.org/grpc/metadata"

	"github.com/nmxmxh/wirecall/pkg/metadata"
)

// NewClientInterceptor returns a gRPC unary client interceptor that merges
// metadata attached via metadata.NewOutgoingContext into the outgoing gRPC
// context, joining with any metadata already attached the gRPC way.
func NewClientInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if md, ok := metadata.FromOutgoingContext(ctx); ok {
			g := ToGRPC(md)
			if existing, ok := grpcmd.FromOutgoingContext(ctx); ok {
				g = grpcmd.Join(existing, g)
			}
			ctx = grpcmd.NewOutgoingContext(ctx, g)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// NewServerInterceptor returns a gRPC unary server interceptor that lifts
// the incoming gRPC metadata into a wirecall container, readable by
// handlers via metadata.FromIncomingContext.
func NewServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		_ *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if g, ok := grpcmd.FromIncomingContext(ctx); ok {
			ctx = metadata.NewIncomingContext(ctx, FromGRPC(g))
		}
		return handler(ctx, req)
	}
}
