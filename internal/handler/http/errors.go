// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUserIDInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserIDInContext = errors.New("no authenticated user in request context")
)

// Request decoding errors.
var (
	ErrInvalidJSON    = errors.New("invalid JSON was passed")
	ErrInvalidVideoID = errors.New("invalid video id")
)

// Envelope messages for requests that never reach a handler.
var (
	ErrRouteNotFound    = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
