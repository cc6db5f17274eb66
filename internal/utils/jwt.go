package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-car-rental/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenParams is returned by [GenerateJWTToken] when a required
// parameter is missing.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

var (
	// ErrNoBearerToken is returned by [ParseBearerToken] when the header is
	// absent or uses another scheme.
	ErrNoBearerToken = errors.New("no bearer token in authorization header")

	// ErrEmptyBearerToken is returned by [ParseBearerToken] for a Bearer
	// header without a token.
	ErrEmptyBearerToken = errors.New("empty bearer token in authorization header")
)

const bearerPrefix = "Bearer "

// TokenParams describes a token to be issued.
type TokenParams struct {
	Issuer    string
	Subject   string
	Roles     []string
	TokenType models.TokenType
	Duration  time.Duration
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the following claims:
//   - Issuer    (iss): the URL of the request that triggered the issuance
//   - Subject   (sub): the username
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus params.Duration
//   - roles, token_type: see [models.Claims]
//
// Subject, Duration, TokenType and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Issuer:    "http://localhost:8080/login",
//	    Subject:   "john",
//	    Roles:     []string{"USER"},
//	    TokenType: models.AccessTokenType,
//	    Duration:  10 * time.Minute,
//	}, "secret")
func GenerateJWTToken(params TokenParams, signKey string) (*models.Token, error) {
	if params.Subject == "" || params.Duration <= 0 || params.TokenType == "" || signKey == "" {
		return nil, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   params.Subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Roles:     params.Roles,
		TokenType: params.TokenType,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return nil, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return &models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies the signature and expiry of tokenString
// and returns its claims.
//
// Only HS256 is accepted and the exp claim is mandatory. The issuer is not
// validated. Errors wrap the jwt sentinel errors, so callers can tell an
// expired token apart with errors.Is(err, jwt.ErrTokenExpired).
func ValidateAndParseJWTToken(tokenString, tokenSignKey string) (*models.Token, error) {
	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", jwt.ErrTokenInvalidSubject)
	}

	return &models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is case sensitive.
func ParseBearerToken(authorizationHeader string) (string, error) {
	token, ok := strings.CutPrefix(authorizationHeader, bearerPrefix)
	if !ok {
		return "", ErrNoBearerToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyBearerToken
	}

	return token, nil
}
