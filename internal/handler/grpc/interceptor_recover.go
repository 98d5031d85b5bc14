package grpc

import (
	"context"
	"runtime/debug"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/video-blog/internal/app"
	"github.com/MKhiriev/video-blog/internal/logger"
)

// withRecover converts a panic in a later interceptor or handler into
// codes.Internal.
func (h *Handler) withRecover(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if rvr := recover(); rvr != nil {
			logger.FromContext(ctx).Error().
				Str("method", info.FullMethod).
				Any("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			resp, err = nil, status.Error(codes.Internal, app.MsgInternalServerError)
		}
	}()

	return handler(ctx, req)
}
