package grpc

import "github.com/MKhiriev/video-blog/models"

// Empty is the request of ListVideos and the response of DeleteVideo.
type Empty struct{}

// VideoRequest addresses one video of the caller.
type VideoRequest struct {
	ID int64 `json:"id"`
}

// UpdateVideoRequest is a VideoRequest carrying the fields to change.
type UpdateVideoRequest struct {
	ID int64 `json:"id"`
	models.VideoUpdate
}
