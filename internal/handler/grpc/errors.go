package grpc

import "errors"

var (
	ErrMissingMetadata            = errors.New("missing metadata")
	ErrEmptyAuthorizationHeader   = errors.New("empty `authorization` metadata")
	ErrInvalidAuthorizationHeader = errors.New("invalid `authorization` metadata")
	ErrNoUserIDInContext          = errors.New("no authenticated user in request context")
)
