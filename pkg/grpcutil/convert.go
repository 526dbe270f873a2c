// Package grpcutil bridges wirecall metadata to gRPC for gateway and proxy
// code that speaks both.
package grpcutil

import (
	grpcmd "google.golang.org/grpc/metadata"

	"github.com/nmxmxh/wirecall/pkg/metadata"
)

// ToGRPC converts md to a gRPC metadata.MD, preserving per-key value order.
// Binary values are passed through as raw bytes: grpc-go stores "-bin"
// values unencoded and base64s them at its own transport layer.
func ToGRPC(md *metadata.MD) grpcmd.MD {
	wire := md.ToWire()
	out := make(grpcmd.MD, len(wire))
	for k, vs := range wire {
		ss := make([]string, len(vs))
		for i, v := range vs {
			if v.IsBinary() {
				ss[i] = string(v.Bytes())
			} else {
				ss[i] = v.Text()
			}
		}
		out[k] = ss
	}
	return out
}

// FromGRPC converts a gRPC metadata.MD to a wirecall container. Keys in a
// grpc MD are already normalized and validated, so this is a trusted bulk
// import; "-bin" values are wrapped as binary without decoding, matching
// how grpc-go hands them to applications.
func FromGRPC(g grpcmd.MD) *metadata.MD {
	wire := make(metadata.Wire, len(g))
	for k, ss := range g {
		binary := metadata.DefaultOracle.KeyIsBinary(k)
		vs := make([]metadata.Value, len(ss))
		for i, s := range ss {
			if binary {
				vs[i] = metadata.Binary([]byte(s))
			} else {
				vs[i] = metadata.String(s)
			}
		}
		wire[k] = vs
	}
	return metadata.FromWire(wire)
}
