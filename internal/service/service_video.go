package service

import (
	"context"

	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/store"
	"github.com/MKhiriev/video-blog/models"
)

type videoService struct {
	videoRepository store.VideoRepository

	logger *logger.Logger
}

func NewVideoService(videoRepository store.VideoRepository, logger *logger.Logger) VideoService {
	return &videoService{
		videoRepository: videoRepository,
		logger:          logger,
	}
}

func (v *videoService) ListVideos(ctx context.Context, ownerID int64) ([]models.Video, error) {
	return v.videoRepository.ListVideos(ctx, ownerID)
}

// CreateVideo stores video for ownerID. The owner always comes from the
// caller's identity, never from the payload.
func (v *videoService) CreateVideo(ctx context.Context, ownerID int64, video models.NewVideo) (models.Video, error) {
	return v.videoRepository.CreateVideo(ctx, models.Video{
		UserID:      ownerID,
		Name:        video.Name,
		Description: video.Description,
	})
}

func (v *videoService) GetVideo(ctx context.Context, id, ownerID int64) (models.Video, error) {
	return v.videoRepository.GetVideo(ctx, id, ownerID)
}

func (v *videoService) UpdateVideo(ctx context.Context, id, ownerID int64, update models.VideoUpdate) (models.Video, error) {
	return v.videoRepository.UpdateVideo(ctx, id, ownerID, update)
}

func (v *videoService) DeleteVideo(ctx context.Context, id, ownerID int64) error {
	return v.videoRepository.DeleteVideo(ctx, id, ownerID)
}
