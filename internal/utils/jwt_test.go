package utils

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/MKhiriev/go-car-rental/models"
	"github.com/golang-jwt/jwt/v5"
)

const testSignKey = "secret-key"

func accessParams(subject string, roles ...string) TokenParams {
	return TokenParams{
		Issuer:    "http://localhost/login",
		Subject:   subject,
		Roles:     roles,
		TokenType: models.AccessTokenType,
		Duration:  time.Minute,
	}
}

func signClaims(t *testing.T, method jwt.SigningMethod, key any, claims models.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(accessParams("john", "USER", "MANAGER"), testSignKey)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Subject != "john" {
		t.Errorf("expected subject 'john', got %s", token.Subject)
	}
	if token.Issuer != "http://localhost/login" {
		t.Errorf("unexpected issuer %s", token.Issuer)
	}
	if token.TokenType != models.AccessTokenType {
		t.Errorf("unexpected token type %s", token.TokenType)
	}
	if got := token.ExpiresAt.Sub(token.IssuedAt.Time); got != time.Minute {
		t.Errorf("expected lifetime 1m, got %s", got)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params TokenParams
		key    string
	}{
		{"empty subject", TokenParams{Duration: time.Hour, TokenType: models.AccessTokenType}, "key"},
		{"zero duration", TokenParams{Subject: "john", TokenType: models.AccessTokenType}, "key"},
		{"no token type", TokenParams{Subject: "john", Duration: time.Hour}, "key"},
		{"empty key", accessParams("john"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.params, tt.key)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	roles := []string{"ADMIN", "MANAGER", "USER"}
	generated, err := GenerateJWTToken(accessParams("admin", roles...), testSignKey)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testSignKey)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}

	identity := parsed.Identity()
	if identity.Username != "admin" {
		t.Errorf("expected username admin, got %s", identity.Username)
	}
	if !slices.Equal(models.RolesToStrings(identity.Roles), roles) {
		t.Errorf("expected roles %v, got %v", roles, identity.Roles)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	generated, _ := GenerateJWTToken(accessParams("john"), "correct-key")

	_, err := ValidateAndParseJWTToken(generated.SignedString, "wrong-key")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	now := time.Now()
	expired := signClaims(t, jwt.SigningMethodHS256, []byte(testSignKey), models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "john",
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		},
		TokenType: models.AccessTokenType,
	})

	_, err := ValidateAndParseJWTToken(expired, testSignKey)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	noExp := signClaims(t, jwt.SigningMethodHS256, []byte(testSignKey), models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "john"},
	})

	if _, err := ValidateAndParseJWTToken(noExp, testSignKey); err == nil {
		t.Error("expected error for token without exp, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongAlgorithm(t *testing.T) {
	hs512 := signClaims(t, jwt.SigningMethodHS512, []byte(testSignKey), models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "john",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := ValidateAndParseJWTToken(hs512, testSignKey); err == nil {
		t.Error("expected error for HS512 token, got nil")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	noSub := signClaims(t, jwt.SigningMethodHS256, []byte(testSignKey), models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := ValidateAndParseJWTToken(noSub, testSignKey)
	if !errors.Is(err, jwt.ErrTokenInvalidSubject) {
		t.Errorf("expected jwt.ErrTokenInvalidSubject, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey)
	if !errors.Is(err, jwt.ErrTokenMalformed) {
		t.Errorf("expected jwt.ErrTokenMalformed, got %v", err)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty", header: "", wantErr: ErrNoBearerToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrNoBearerToken},
		{name: "scheme without space", header: "Bearer", wantErr: ErrNoBearerToken},
		{name: "lowercase scheme", header: "bearer abc", wantErr: ErrNoBearerToken},
		{name: "no token", header: "Bearer   ", wantErr: ErrEmptyBearerToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("got (%q, %v), want %q", got, err, tt.want)
			}
		})
	}
}
