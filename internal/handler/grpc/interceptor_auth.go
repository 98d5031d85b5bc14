package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/utils"
)

// publicMethods are served without a bearer token.
var publicMethods = map[string]bool{
	FullMethod(MethodRegister): true,
	FullMethod(MethodLogin):    true,
}

// withAuth is the gRPC counterpart of the HTTP auth middleware: it reads
// "authorization: Bearer <token>" from the incoming metadata, verifies the
// token and stores the caller's user id in the context.
func (h *Handler) withAuth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, statusFromError(ctx, ErrMissingMetadata)
	}

	values := md.Get(authorizationKey)
	if len(values) == 0 || values[0] == "" {
		return nil, statusFromError(ctx, ErrEmptyAuthorizationHeader)
	}

	tokenString, err := utils.ParseBearerToken(values[0])
	if err != nil {
		return nil, statusFromError(ctx, ErrInvalidAuthorizationHeader)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}

	ctx = utils.WithUserID(ctx, token.UserID)
	l := logger.FromContext(ctx).With().Int64("user_id", token.UserID).Logger()

	return handler(l.WithContext(ctx), req)
}
