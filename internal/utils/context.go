// Package utils provides small helpers shared by the video-blog layers:
// typed context keys, password hashing, JWT issuing and parsing, JSON
// response writing and the resty-based HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values stored by this
// package never collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated user's id is stored
// by the auth middleware and interceptor.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID under UserIDCtxKey.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
