// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	AccessTokenType  TokenType = "access"
	RefreshTokenType TokenType = "refresh"
)

// Claims is the JWT claim set issued by the authentication gate.
//
// The subject ("sub") carries the username and the issuer ("iss") carries the
// URL of the login request. Roles are present on access tokens only.
type Claims struct {
	jwt.RegisteredClaims

	// Roles lists the role names granted to the subject.
	Roles []string `json:"roles,omitempty"`

	// TokenType tells access tokens apart from refresh tokens, so a refresh
	// token can never be used to reach a protected endpoint.
	TokenType TokenType `json:"token_type"`
}

// Token is a signed JWT together with its decoded claims.
type Token struct {
	Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// Identity returns the principal described by the token claims.
func (t *Token) Identity() Identity {
	return Identity{
		Username: t.Subject,
		Roles:    RolesFromStrings(t.Roles),
	}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  *Token
	RefreshToken *Token
}
