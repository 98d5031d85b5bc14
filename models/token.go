package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an access token issued to a user after registration or login.
//
// It is used directly as the claims type when parsing, so the embedded
// [jwt.RegisteredClaims] carry the subject (user id), issuer and expiry.
type Token struct {
	// Token is the underlying JWT, set after signing or parsing.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form handed to
	// clients as the bearer credential.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 user id.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the signed token.
func (t *Token) String() string {
	return t.SignedString
}
