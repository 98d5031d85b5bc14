package service

import (
	"github.com/MKhiriev/video-blog/internal/config"
	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/store"
)

type Services struct {
	AuthService  AuthService
	VideoService VideoService
}

// NewServices builds the service layer over storages. The video service is
// wrapped with request validation, so nothing reaches the store unchecked.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, logger),
		VideoService: NewVideoValidationService().Wrap(NewVideoService(storages.VideoRepository, logger)),
	}
}
