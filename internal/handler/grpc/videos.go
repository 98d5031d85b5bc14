package grpc

import (
	"context"

	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/utils"
	"github.com/MKhiriev/video-blog/models"
)

func (h *Handler) ListVideos(ctx context.Context, _ *Empty) ([]models.Video, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, statusFromError(ctx, ErrNoUserIDInContext)
	}

	videos, err := h.services.VideoService.ListVideos(ctx, userID)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}
	return videos, nil
}

func (h *Handler) GetVideo(ctx context.Context, req *VideoRequest) (*models.Video, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, statusFromError(ctx, ErrNoUserIDInContext)
	}

	video, err := h.services.VideoService.GetVideo(ctx, req.ID, userID)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}
	return &video, nil
}

func (h *Handler) CreateVideo(ctx context.Context, req *models.NewVideo) (*models.Video, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, statusFromError(ctx, ErrNoUserIDInContext)
	}

	video, err := h.services.VideoService.CreateVideo(ctx, userID, *req)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}

	logger.FromContext(ctx).Info().Int64("video_id", video.ID).Msg("video created")
	return &video, nil
}

func (h *Handler) UpdateVideo(ctx context.Context, req *UpdateVideoRequest) (*models.Video, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, statusFromError(ctx, ErrNoUserIDInContext)
	}

	video, err := h.services.VideoService.UpdateVideo(ctx, req.ID, userID, req.VideoUpdate)
	if err != nil {
		return nil, statusFromError(ctx, err)
	}
	return &video, nil
}

func (h *Handler) DeleteVideo(ctx context.Context, req *VideoRequest) (*Empty, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, statusFromError(ctx, ErrNoUserIDInContext)
	}

	if err := h.services.VideoService.DeleteVideo(ctx, req.ID, userID); err != nil {
		return nil, statusFromError(ctx, err)
	}

	logger.FromContext(ctx).Info().Int64("video_id", req.ID).Msg("video deleted")
	return &Empty{}, nil
}
