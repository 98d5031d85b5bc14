// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// video-blog transports.
//
// All Msg* constants are the client-facing messages of the error envelope.
// The HTTP and gRPC error mappers both use them, so a failure reads the same
// on either transport.
package app

const (
	// MsgInvalidDataProvided prefixes validation failures; field details
	// follow after a colon.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when a request body cannot be decoded or
	// carries fields the endpoint does not accept.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidVideoID is returned when the video id in the path is not an
	// integer.
	MsgInvalidVideoID = "invalid video id"

	// MsgInvalidCredentials is shared by unknown email and wrong password so
	// that login does not reveal which accounts exist.
	MsgInvalidCredentials = "invalid email/password"

	// MsgEmailAlreadyExists is returned when registration hits a taken email.
	MsgEmailAlreadyExists = "email is already registered"

	// MsgVideoNotFound covers both missing videos and videos owned by
	// someone else.
	MsgVideoNotFound = "video not found"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUnauthorized is returned when a protected handler has no
	// authenticated caller.
	MsgUnauthorized = "unauthorized"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
