package metadata

import "context"

// Key types (unexported).
type (
	outgoingKeyType struct{}
	incomingKeyType struct{}
)

var (
	outgoingKey = outgoingKeyType{}
	incomingKey = incomingKeyType{}
)

// NewOutgoingContext attaches md as the metadata to send with outbound
// calls made from ctx. The MD is stored by reference: mutations made
// before the call is issued are visible to the transport.
func NewOutgoingContext(ctx context.Context, md *MD) context.Context {
	return context.WithValue(ctx, outgoingKey, md)
}

// FromOutgoingContext returns the metadata attached for outbound calls.
func FromOutgoingContext(ctx context.Context) (*MD, bool) {
	md, ok := ctx.Value(outgoingKey).(*MD)
	return md, ok
}

// NewIncomingContext attaches metadata received from the peer. Handlers
// read it back with FromIncomingContext.
func NewIncomingContext(ctx context.Context, md *MD) context.Context {
	return context.WithValue(ctx, incomingKey, md)
}

// FromIncomingContext returns the metadata the peer sent with the current
// call. Handlers that pass the MD to other goroutines should hand out
// Clone()s instead of the shared instance.
func FromIncomingContext(ctx context.Context) (*MD, bool) {
	md, ok := ctx.Value(incomingKey).(*MD)
	return md, ok
}
