package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/video-blog/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidTokenParams    = errors.New("invalid params for generating JWT token")
	ErrInvalidAuthorization  = errors.New("invalid authorization header")
	ErrEmptyTokenSubject     = errors.New("empty subject in token")
	ErrInvalidTokenSubject   = errors.New("token subject is not a user id")
	ErrUnexpectedTokenClaims = errors.New("unexpected token claims type")
)

const bearerScheme = "Bearer"

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for userID.
//
// The token carries the standard claims:
//   - iss: issuer
//   - sub: the user id as a decimal string
//   - iat: now
//   - exp: now plus tokenDuration
//
// issuer and signKey must be non-empty and tokenDuration non-zero.
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies the signature, algorithm, issuer and
// expiry of tokenString and extracts the user id from its subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return models.Token{}, ErrUnexpectedTokenClaims
	}
	if claims.Subject == "" {
		return models.Token{}, ErrEmptyTokenSubject
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidTokenSubject, err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) {
		return "", ErrInvalidAuthorization
	}
	return parts[1], nil
}

// BearerHeader formats token as an Authorization header value.
func BearerHeader(token string) string {
	return bearerScheme + " " + token
}
