package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/utils"
	"github.com/MKhiriev/video-blog/models"
)

func (h *Handler) listVideos(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext)
		return
	}

	videos, err := h.services.VideoService.ListVideos(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, videos, http.StatusOK)
}

func (h *Handler) createVideo(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserIDInContext)
		return
	}

	var video models.NewVideo
	if err := utils.DecodeJSON(r.Body, &video); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.VideoService.CreateVideo(r.Context(), userID, video)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("video_id", created.ID).Msg("video created")
	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) getVideo(w http.ResponseWriter, r *http.Request) {
	userID, videoID, err := videoRequestIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	video, err := h.services.VideoService.GetVideo(r.Context(), videoID, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, video, http.StatusOK)
}

func (h *Handler) updateVideo(w http.ResponseWriter, r *http.Request) {
	userID, videoID, err := videoRequestIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.VideoUpdate
	if err := utils.DecodeJSON(r.Body, &update); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.VideoService.UpdateVideo(r.Context(), videoID, userID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteVideo(w http.ResponseWriter, r *http.Request) {
	userID, videoID, err := videoRequestIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.VideoService.DeleteVideo(r.Context(), videoID, userID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("video_id", videoID).Msg("video deleted")
	w.WriteHeader(http.StatusNoContent)
}

// videoRequestIDs returns the caller's id and the {id} path parameter.
func videoRequestIDs(r *http.Request) (userID, videoID int64, err error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, 0, ErrNoUserIDInContext
	}

	videoID, err = strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidVideoID, err)
	}

	return userID, videoID, nil
}
