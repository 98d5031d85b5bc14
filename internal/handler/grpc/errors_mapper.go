package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/video-blog/internal/app"
	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/service"
	"github.com/MKhiriev/video-blog/internal/store"
	"github.com/MKhiriev/video-blog/internal/validators"
)

type errorStatus struct {
	code    codes.Code
	message string
}

var errorStatusMap = map[error]errorStatus{
	ErrMissingMetadata:            {codes.Unauthenticated, ErrEmptyAuthorizationHeader.Error()},
	ErrEmptyAuthorizationHeader:   {codes.Unauthenticated, ErrEmptyAuthorizationHeader.Error()},
	ErrInvalidAuthorizationHeader: {codes.Unauthenticated, ErrInvalidAuthorizationHeader.Error()},
	ErrNoUserIDInContext:          {codes.Unauthenticated, app.MsgUnauthorized},

	service.ErrWrongPassword:           {codes.InvalidArgument, app.MsgInvalidCredentials},
	service.ErrTokenIsExpiredOrInvalid: {codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid},

	store.ErrNoUserWasFound:     {codes.InvalidArgument, app.MsgInvalidCredentials},
	store.ErrEmailAlreadyExists: {codes.AlreadyExists, app.MsgEmailAlreadyExists},
	store.ErrVideoNotFound:      {codes.NotFound, app.MsgVideoNotFound},
}

// toStatus maps err onto a gRPC status whose message matches the HTTP error
// envelope. Unknown errors become codes.Internal with a generic message.
func toStatus(err error) *status.Status {
	if errors.Is(err, service.ErrInvalidDataProvided) {
		var fieldErrs validators.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return status.New(codes.InvalidArgument, app.MsgInvalidDataProvided+": "+fieldErrs.Error())
		}
		return status.New(codes.InvalidArgument, app.MsgInvalidDataProvided)
	}

	for target, st := range errorStatusMap {
		if errors.Is(err, target) {
			return status.New(st.code, st.message)
		}
	}
	return status.New(codes.Internal, app.MsgInternalServerError)
}

// statusFromError logs err and converts it into a status error.
func statusFromError(ctx context.Context, err error) error {
	st := toStatus(err)

	log := logger.FromContext(ctx)
	if st.Code() == codes.Internal {
		log.Err(err).Str("code", st.Code().String()).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("code", st.Code().String()).Msg("request rejected")
	}

	return st.Err()
}
