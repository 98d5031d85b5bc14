package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/video-blog/internal/app"
	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/service"
	"github.com/MKhiriev/video-blog/internal/store"
	"github.com/MKhiriev/video-blog/internal/utils"
	"github.com/MKhiriev/video-blog/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	ErrInvalidJSON:                {http.StatusBadRequest, app.MsgInvalidJSON},
	ErrInvalidVideoID:             {http.StatusBadRequest, app.MsgInvalidVideoID},
	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error()},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, ErrInvalidAuthorizationHeader.Error()},
	ErrNoUserIDInContext:          {http.StatusUnauthorized, app.MsgUnauthorized},

	service.ErrWrongPassword:           {http.StatusBadRequest, app.MsgInvalidCredentials},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	store.ErrNoUserWasFound:     {http.StatusBadRequest, app.MsgInvalidCredentials},
	store.ErrEmailAlreadyExists: {http.StatusBadRequest, app.MsgEmailAlreadyExists},
	store.ErrVideoNotFound:      {http.StatusBadRequest, app.MsgVideoNotFound},
}

// responseFromError maps err onto a status code and an envelope message.
// Validation failures carry the per-field details; anything unknown becomes
// a generic 500 so internals never leak to the client.
func responseFromError(err error) (int, string) {
	if errors.Is(err, service.ErrInvalidDataProvided) {
		var fieldErrs validators.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return http.StatusBadRequest, app.MsgInvalidDataProvided + ": " + fieldErrs.Error()
		}
		return http.StatusBadRequest, app.MsgInvalidDataProvided
	}

	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes the matching error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
