package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/video-blog/internal/config"
	"github.com/MKhiriev/video-blog/internal/logger"
	"github.com/MKhiriev/video-blog/internal/mock"
	. "github.com/MKhiriev/video-blog/internal/service"
	"github.com/MKhiriev/video-blog/internal/store"
	"github.com/MKhiriev/video-blog/internal/utils"
	"github.com/MKhiriev/video-blog/internal/validators"
	"github.com/MKhiriev/video-blog/models"
)

const (
	testHashKey = "pepper"
	testSignKey = "sign-key"
	testIssuer  = "video-blog-test"
)

func testAppConfig() config.App {
	return config.App{
		PasswordHashKey: testHashKey,
		TokenSignKey:    testSignKey,
		TokenIssuer:     testIssuer,
		TokenDuration:   time.Hour,
	}
}

// newTestAuthSvc builds an authService over a mocked UserRepository.
func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testAppConfig(), logger.Nop()), repo
}

func storedUser(t *testing.T, id int64, email, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password, testHashKey)
	require.NoError(t, err)
	return models.User{UserID: id, Name: "Ann", Email: email, PasswordHash: hash}
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Empty(t, u.Password, "plaintext password must not reach the store")
			assert.True(t, utils.CheckPassword(u.PasswordHash, "secret", testHashKey))
			assert.Equal(t, "ann@example.com", u.Email)
			u.UserID = 7
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.User{Name: "Ann", Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Empty(t, user.Password)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Name: "", Email: "not-an-email", Password: strings.Repeat("p", 101)})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	var verrs validators.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 3)
	assert.ErrorIs(t, err, validators.ErrEmptyValue)
	assert.ErrorIs(t, err, validators.ErrInvalidEmail)
	assert.ErrorIs(t, err, validators.ErrValueTooLong)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Name: "Ann", Email: "ann@example.com", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	stored := storedUser(t, 3, "ann@example.com", "secret")

	repo.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(stored, nil)

	user, err := svc.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "ann@example.com").Return(storedUser(t, 3, "ann@example.com", "secret"), nil)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "ann@example.com", Password: "other"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Login(context.Background(), models.Credentials{Email: "nobody@example.com", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{"empty email", models.Credentials{Password: "secret"}},
		{"empty password", models.Credentials{Email: "ann@example.com"}},
		{"password too long", models.Credentials{Email: "ann@example.com", Password: strings.Repeat("p", 101)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.credentials)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_RegisterThenLogin_SameSubject(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	var persisted models.User
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.UserID = 42
			persisted = u
			return u, nil
		},
	)
	repo.EXPECT().FindUserByEmail(ctx, "ann@example.com").DoAndReturn(
		func(context.Context, string) (models.User, error) { return persisted, nil },
	)

	registered, err := svc.RegisterUser(ctx, models.User{Name: "Ann", Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)
	registerToken, err := svc.CreateToken(ctx, registered)
	require.NoError(t, err)

	loggedIn, err := svc.Login(ctx, models.Credentials{Email: "ann@example.com", Password: "secret"})
	require.NoError(t, err)
	loginToken, err := svc.CreateToken(ctx, loggedIn)
	require.NoError(t, err)

	fromRegister, err := svc.ParseToken(ctx, registerToken.String())
	require.NoError(t, err)
	fromLogin, err := svc.ParseToken(ctx, loginToken.String())
	require.NoError(t, err)

	assert.Equal(t, int64(42), fromRegister.UserID)
	assert.Equal(t, fromRegister.UserID, fromLogin.UserID)
}

func TestAuthService_CreateToken_Failure(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenSignKey = ""
	svc := NewAuthService(nil, cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejections(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	foreignKey, err := utils.GenerateJWTToken(testIssuer, 1, time.Hour, "another-key")
	require.NoError(t, err)
	foreignIssuer, err := utils.GenerateJWTToken("someone-else", 1, time.Hour, testSignKey)
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken(testIssuer, 1, -time.Minute, testSignKey)
	require.NoError(t, err)
	zeroSubject, err := utils.GenerateJWTToken(testIssuer, 0, time.Hour, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"foreign key", foreignKey.String()},
		{"foreign issuer", foreignIssuer.String()},
		{"expired", expired.String()},
		{"zero subject", zeroSubject.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
