package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

// authService is the concrete implementation of AuthService.
// It verifies bcrypt password hashes and issues HS256 tokens. The service
// keeps no state between calls; all settings are read-only after
// construction.
type authService struct {
	// userRepository is used to look up users and their roles.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		tokenSignKey:         cfg.TokenSignKey,
		accessTokenDuration:  cfg.AccessTokenDuration,
		refreshTokenDuration: cfg.RefreshTokenDuration,
		logger:               logger,
	}
}

// Authenticate verifies username and password and issues a token pair.
//
// Returns:
//   - ErrInvalidDataProvided if username or password is empty;
//   - ErrInvalidCredentials if the user does not exist or the password does
//     not match. Both cases produce the same error;
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Authenticate(ctx context.Context, username, password, issuer string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.TokenPair{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "*authService.Authenticate").Str("username", username).Msg("unknown username")
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by username failed")
		return models.TokenPair{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := utils.CheckPassword(user.PasswordHash, password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Int64("user_id", user.UserID).Msg("error comparing password")
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if !ok {
		log.Info().Str("func", "*authService.Authenticate").Int64("user_id", user.UserID).Msg("wrong password")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	accessToken, err := a.issue(user.Username, user.Roles, models.AccessTokenType, a.accessTokenDuration, issuer)
	if err != nil {
		return models.TokenPair{}, err
	}

	refreshToken, err := a.issue(user.Username, nil, models.RefreshTokenType, a.refreshTokenDuration, issuer)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh verifies refreshToken and issues a new access token carrying the
// roles currently stored for the user. The refresh token is returned as is.
func (a *authService) Refresh(ctx context.Context, refreshToken, issuer string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := a.parse(refreshToken, models.RefreshTokenType)
	if err != nil {
		return models.TokenPair{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, token.Subject)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "*authService.Refresh").Str("username", token.Subject).Msg("refresh token of a removed user")
		return models.TokenPair{}, ErrTokenInvalid
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Refresh").Msg("user search by username failed")
		return models.TokenPair{}, fmt.Errorf("user search by username failed: %w", err)
	}

	accessToken, err := a.issue(user.Username, user.Roles, models.AccessTokenType, a.accessTokenDuration, issuer)
	if err != nil {
		return models.TokenPair{}, err
	}

	return models.TokenPair{AccessToken: accessToken, RefreshToken: token}, nil
}

// ParseAccessToken validates an access token.
//
// Any failure is reported as ErrTokenExpired when the exp claim is in the
// past and as ErrTokenInvalid otherwise, so callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseAccessToken(ctx context.Context, tokenString string) (models.Identity, error) {
	token, err := a.parse(tokenString, models.AccessTokenType)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseAccessToken").Msg("rejected access token")
		return models.Identity{}, err
	}

	return token.Identity(), nil
}

func (a *authService) parse(tokenString string, tokenType models.TokenType) (*models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if token.TokenType != tokenType {
		return nil, fmt.Errorf("%w: %s token given where %s token expected", ErrTokenInvalid, token.TokenType, tokenType)
	}

	return token, nil
}

func (a *authService) issue(username string, roles []models.Role, tokenType models.TokenType, duration time.Duration, issuer string) (*models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:    issuer,
		Subject:   username,
		Roles:     models.RolesToStrings(roles),
		TokenType: tokenType,
		Duration:  duration,
	}, a.tokenSignKey)
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.issue").Str("token_type", string(tokenType)).Msg("error issuing token")
		return nil, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
