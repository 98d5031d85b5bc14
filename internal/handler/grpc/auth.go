package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/utils"
	"github.com/MKhiriev/video-blog/models"
)

// authorizationKey is the metadata key carrying "Bearer <token>".
const authorizationKey = "authorization"

func (h *Handler) Register(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	registeredUser, err := h.services.AuthService.RegisterUser(ctx, *user)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", registeredUser.UserID).Msg("user registered")

	return h.issueToken(ctx, registeredUser)
}

func (h *Handler) Login(ctx context.Context, credentials *models.Credentials) (*models.AuthResponse, error) {
	foundUser, err := h.services.AuthService.Login(ctx, *credentials)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}

	return h.issueToken(ctx, foundUser)
}

// issueToken returns the token in the response and, like the HTTP API's
// Authorization header, in the "authorization" response header.
func (h *Handler) issueToken(ctx context.Context, user models.User) (*models.AuthResponse, error) {
	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}

	_ = grpc.SetHeader(ctx, metadata.Pairs(authorizationKey, utils.BearerHeader(token.SignedString)))

	return &models.AuthResponse{AccessToken: token.SignedString}, nil
}
