package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 123, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.NotNil(t, token.Token)
	assert.Equal(t, int64(123), token.UserID)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken("test-issuer", 456, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)

	assert.Equal(t, int64(456), parsed.UserID)
	assert.Equal(t, generated.SignedString, parsed.SignedString)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(456), userID)
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	generated, _ := GenerateJWTToken("test-issuer", 1, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(generated.SignedString, "wrong-key", "test-issuer")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, _ := GenerateJWTToken("test-issuer", 1, -time.Second, "key")

	_, err := ValidateAndParseJWTToken(generated.SignedString, "key", "test-issuer")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, _ := GenerateJWTToken("issuer-a", 1, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(generated.SignedString, "key", "issuer-b")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_OtherAlgorithmRejected(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	claims := &jwt.RegisteredClaims{Issuer: "iss", Subject: "1"}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
}

func TestValidateAndParseJWTToken_BadSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		wantErr error
	}{
		{"empty subject", "", ErrEmptyTokenSubject},
		{"non numeric subject", "ann", ErrInvalidTokenSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &jwt.RegisteredClaims{
				Issuer:    "iss",
				Subject:   tt.subject,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			}
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
			require.NoError(t, err)

			_, err = ValidateAndParseJWTToken(signed, "key", "iss")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"surrounding spaces", "  Bearer   abc  ", "abc", false},
		{"empty", "", "", true},
		{"scheme only", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorization)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBearerHeader(t *testing.T) {
	assert.Equal(t, "Bearer token", BearerHeader("token"))
}
