package store

import (
	"context"

	"github.com/MKhiriev/video-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser stores user (only its PasswordHash, never the plaintext
	// password) and returns it with the generated id.
	// Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user registered with email or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// VideoRepository persists videos. Every method is scoped to ownerID: a
// video owned by someone else behaves exactly like a missing one.
type VideoRepository interface {
	ListVideos(ctx context.Context, ownerID int64) ([]models.Video, error)
	CreateVideo(ctx context.Context, video models.Video) (models.Video, error)
	GetVideo(ctx context.Context, id, ownerID int64) (models.Video, error)
	UpdateVideo(ctx context.Context, id, ownerID int64, update models.VideoUpdate) (models.Video, error)
	DeleteVideo(ctx context.Context, id, ownerID int64) error
}

// ErrorClassificator maps driver-specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
