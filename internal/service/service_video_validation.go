package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/validators"
	"github.com/MKhiriev/video-blog/models"
)

// videoValidationService rejects malformed identifiers and payloads before
// they reach the wrapped VideoService.
type videoValidationService struct {
	inner     VideoService
	validator validators.Validator
}

func NewVideoValidationService() VideoServiceWrapper {
	return &videoValidationService{
		validator: validators.NewVideoValidator(),
	}
}

func (v *videoValidationService) ListVideos(ctx context.Context, ownerID int64) ([]models.Video, error) {
	if err := v.validateIDs(ctx, models.Video{UserID: ownerID}, validators.FieldUserID); err != nil {
		return nil, err
	}

	return v.inner.ListVideos(ctx, ownerID)
}

func (v *videoValidationService) CreateVideo(ctx context.Context, ownerID int64, video models.NewVideo) (models.Video, error) {
	if err := v.validateIDs(ctx, models.Video{UserID: ownerID}, validators.FieldUserID); err != nil {
		return models.Video{}, err
	}
	if err := v.validator.Validate(ctx, video); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", ownerID).Msg("invalid video payload")
		return models.Video{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateVideo(ctx, ownerID, video)
}

func (v *videoValidationService) GetVideo(ctx context.Context, id, ownerID int64) (models.Video, error) {
	if err := v.validateIDs(ctx, models.Video{ID: id, UserID: ownerID}, validators.FieldID, validators.FieldUserID); err != nil {
		return models.Video{}, err
	}

	return v.inner.GetVideo(ctx, id, ownerID)
}

func (v *videoValidationService) UpdateVideo(ctx context.Context, id, ownerID int64, update models.VideoUpdate) (models.Video, error) {
	if err := v.validateIDs(ctx, models.Video{ID: id, UserID: ownerID}, validators.FieldID, validators.FieldUserID); err != nil {
		return models.Video{}, err
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", ownerID).Int64("video_id", id).Msg("invalid video update")
		return models.Video{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateVideo(ctx, id, ownerID, update)
}

func (v *videoValidationService) DeleteVideo(ctx context.Context, id, ownerID int64) error {
	if err := v.validateIDs(ctx, models.Video{ID: id, UserID: ownerID}, validators.FieldID, validators.FieldUserID); err != nil {
		return err
	}

	return v.inner.DeleteVideo(ctx, id, ownerID)
}

func (v *videoValidationService) Wrap(inner VideoService) VideoService {
	v.inner = inner
	return v
}

func (v *videoValidationService) validateIDs(ctx context.Context, video models.Video, fields ...string) error {
	if err := v.validator.Validate(ctx, video, fields...); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", video.UserID).Int64("video_id", video.ID).Msg("invalid identifiers")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
