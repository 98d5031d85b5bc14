package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/video-blog/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VideoService manages videos on behalf of their owner. Every operation is
// scoped to ownerID: a video owned by someone else is reported exactly like
// a missing one.
type VideoService interface {
	ListVideos(ctx context.Context, ownerID int64) ([]models.Video, error)
	CreateVideo(ctx context.Context, ownerID int64, video models.NewVideo) (models.Video, error)
	GetVideo(ctx context.Context, id, ownerID int64) (models.Video, error)
	UpdateVideo(ctx context.Context, id, ownerID int64, update models.VideoUpdate) (models.Video, error)
	DeleteVideo(ctx context.Context, id, ownerID int64) error
}

// VideoServiceWrapper defines middleware composition for VideoService.
// Implementations wrap an existing VideoService to add behavior such as
// logging or validating.
type VideoServiceWrapper interface {
	Wrap(VideoService) VideoService // returns a decorated VideoService applying additional behavior
}
