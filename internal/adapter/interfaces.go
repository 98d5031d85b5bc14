// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the video-blog HTTP API.
//
// [ServerAdapter] mirrors the server routes one method per operation. Failed
// responses are mapped to the sentinel errors in errors.go so callers can use
// [errors.Is]; the wrapped message is the server's {"message"} text.
package adapter

import (
	"context"

	"github.com/MKhiriev/video-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with a video-blog server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent video
	// requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none has been set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	ListVideos(ctx context.Context) ([]models.Video, error)
	CreateVideo(ctx context.Context, video models.NewVideo) (models.Video, error)
	GetVideo(ctx context.Context, id int64) (models.Video, error)
	UpdateVideo(ctx context.Context, id int64, update models.VideoUpdate) (models.Video, error)
	DeleteVideo(ctx context.Context, id int64) error
}
