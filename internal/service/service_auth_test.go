package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/mock"
	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

const testSignKey = "test-sign-key"

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	users := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, config.App{
		TokenSignKey:         testSignKey,
		AccessTokenDuration:  10 * time.Minute,
		RefreshTokenDuration: 30 * time.Minute,
	}, logger.Nop())

	return svc, users
}

func storedUser(t *testing.T, password string, roles ...models.Role) models.User {
	t.Helper()

	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)

	return models.User{UserID: 1, Username: "alice", PasswordHash: hash, Roles: roles}
}

func TestAuthenticate_IssuesTokenPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").
		Return(storedUser(t, "secret", models.RoleManager, models.RoleUser), nil)

	pair, err := svc.Authenticate(ctx, "alice", "secret", "http://localhost/login")
	require.NoError(t, err)
	require.NotNil(t, pair.AccessToken)
	require.NotNil(t, pair.RefreshToken)

	assert.Equal(t, "alice", pair.AccessToken.Subject)
	assert.Equal(t, "http://localhost/login", pair.AccessToken.Issuer)
	assert.Equal(t, []string{"MANAGER", "USER"}, pair.AccessToken.Roles)
	assert.Equal(t, models.AccessTokenType, pair.AccessToken.TokenType)

	assert.Empty(t, pair.RefreshToken.Roles)
	assert.Equal(t, models.RefreshTokenType, pair.RefreshToken.TokenType)
	assert.True(t, pair.RefreshToken.ExpiresAt.After(pair.AccessToken.ExpiresAt.Time))

	// round trip
	identity, err := svc.ParseAccessToken(ctx, pair.AccessToken.String())
	require.NoError(t, err)
	assert.Equal(t, models.Identity{Username: "alice", Roles: []models.Role{models.RoleManager, models.RoleUser}}, identity)
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		password string
		found    models.User
		findErr  error
	}{
		{name: "wrong password", password: "nope", found: storedUser(t, "secret", models.RoleUser)},
		{name: "unknown user", password: "secret", findErr: store.ErrNoUserWasFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users := newTestAuthSvc(t, ctrl)

			users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(tt.found, tt.findErr)

			_, err := svc.Authenticate(context.Background(), "alice", tt.password, "iss")
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthenticate_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Authenticate(context.Background(), "", "secret", "iss")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestParseAccessToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	past := time.Now().Add(-time.Hour)
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
		Roles:     []string{"USER"},
		TokenType: models.AccessTokenType,
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(context.Background(), expired)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseAccessToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	refresh, err := utils.GenerateJWTToken(utils.TokenParams{
		Subject: "alice", TokenType: models.RefreshTokenType, Duration: time.Minute,
	}, testSignKey)
	require.NoError(t, err)

	foreign, err := utils.GenerateJWTToken(utils.TokenParams{
		Subject: "alice", TokenType: models.AccessTokenType, Duration: time.Minute,
	}, "another-key")
	require.NoError(t, err)

	for name, token := range map[string]string{
		"malformed":     "not-a-jwt",
		"refresh token": refresh.String(),
		"wrong key":     foreign.String(),
		"empty":         "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseAccessToken(context.Background(), token)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestRefresh_ReloadsRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(storedUser(t, "secret", models.RoleUser), nil),
		users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{Username: "alice", Roles: []models.Role{models.RoleAdmin}}, nil),
	)

	pair, err := svc.Authenticate(ctx, "alice", "secret", "iss")
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, pair.RefreshToken.String(), "iss")
	require.NoError(t, err)
	assert.Equal(t, []string{"ADMIN"}, refreshed.AccessToken.Roles)
	assert.Equal(t, pair.RefreshToken.String(), refreshed.RefreshToken.String())

	_, err = svc.Refresh(ctx, pair.AccessToken.String(), "iss")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
