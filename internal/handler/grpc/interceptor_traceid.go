package grpc

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// traceIDKey is the metadata counterpart of the HTTP X-Trace-ID header.
const traceIDKey = "x-trace-id"

// withTraceID reuses the caller's trace id or generates one, returns it in
// the response header and stores a child logger carrying it in the context.
func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 && values[0] != "" {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = h.traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return handler(ctx, req)
}
